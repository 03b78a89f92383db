// Package tui provides the interactive terminal editor for a schedule file.
// It maps keystrokes onto session commands and renders the session state;
// all domain behavior lives in the session and schedule packages.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/nordlys/scdmod/internal/session"
	"github.com/nordlys/scdmod/internal/tui/ui"
	"github.com/nordlys/scdmod/internal/tui/views"
)

// Screen identifies the active screen.
type Screen int

const (
	// ScreenMain browses the schedule.
	ScreenMain Screen = iota
	// ScreenAdding walks the entry form field by field.
	ScreenAdding
	// ScreenSelecting has an option picker open for experiment or mode.
	ScreenSelecting
	// ScreenRemoving navigates the schedule to mark an entry for removal.
	ScreenRemoving
	// ScreenExiting shows the additions/deletions diff and asks to write.
	ScreenExiting
)

// Model is the root TUI model.
type Model struct {
	session *session.Session

	screen Screen
	width  int
	height int
	offset int // schedule viewport offset; survives selection clearing

	confirmed bool

	styles ui.Styles
	keys   ui.KeyMap
}

// New creates the TUI model over an editing session.
func New(sess *session.Session, themeName string) Model {
	provider := ui.NewThemeProvider(themeName)
	return Model{
		session: sess,
		screen:  ScreenMain,
		styles:  provider.Styles(),
		keys:    ui.DefaultKeyMap(),
	}
}

// Confirmed reports whether the user chose to write the schedule on exit.
func (m Model) Confirmed() bool {
	return m.confirmed
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch m.screen {
		case ScreenMain:
			return m.updateMain(msg)
		case ScreenAdding:
			return m.updateAdding(msg)
		case ScreenSelecting:
			return m.updateSelecting(msg)
		case ScreenRemoving:
			return m.updateRemoving(msg)
		case ScreenExiting:
			return m.updateExiting(msg)
		}
	}
	return m, nil
}

func (m Model) updateMain(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Add):
		m.session.StartAdd()
		m.screen = ScreenAdding
	case key.Matches(msg, m.keys.Remove):
		m.screen = ScreenRemoving
	case key.Matches(msg, m.keys.Quit):
		m.screen = ScreenExiting
	}
	return m, nil
}

func (m Model) updateExiting(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Yes):
		m.confirmed = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.No):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back):
		m.screen = ScreenMain
	}
	return m, nil
}

func (m Model) updateRemoving(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.screen = ScreenExiting
	case key.Matches(msg, m.keys.Confirm):
		m.session.RemoveSelected()
		m.screen = ScreenMain
	case key.Matches(msg, m.keys.Down):
		m.session.Entries.Next()
		m.ensureVisible()
	case key.Matches(msg, m.keys.Up):
		m.session.Entries.Previous()
		m.ensureVisible()
	case key.Matches(msg, m.keys.First):
		m.session.Entries.First()
		m.ensureVisible()
	case key.Matches(msg, m.keys.Last):
		m.session.Entries.Last()
		m.ensureVisible()
	case key.Matches(msg, m.keys.PageDown):
		m.offset = clamp(m.offset+m.pageSize(), 0, maxOffset(m.session.Entries.Len(), m.pageSize()))
	case key.Matches(msg, m.keys.PageUp):
		m.offset = clamp(m.offset-m.pageSize(), 0, maxOffset(m.session.Entries.Len(), m.pageSize()))
	case key.Matches(msg, m.keys.Cancel):
		// Clearing the selection keeps the viewport offset where it is.
		m.session.Entries.ClearSelection()
		m.screen = ScreenMain
	}
	return m, nil
}

func (m Model) updateSelecting(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	current, _ := m.session.Editing()

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.screen = ScreenExiting
	case key.Matches(msg, m.keys.Confirm), key.Matches(msg, m.keys.ClosePick):
		m.screen = ScreenAdding
	case key.Matches(msg, m.keys.Cancel):
		m.session.Cancel()
		m.screen = ScreenMain
	case key.Matches(msg, m.keys.Down):
		m.pickerFor(current).next()
	case key.Matches(msg, m.keys.Up):
		m.pickerFor(current).previous()
	case key.Matches(msg, m.keys.First):
		m.pickerFor(current).first()
	case key.Matches(msg, m.keys.Last):
		m.pickerFor(current).last()
	}
	return m, nil
}

func (m Model) updateAdding(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	current, editing := m.session.Editing()
	if !editing {
		m.screen = ScreenMain
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Confirm):
		if current == session.FieldDone {
			if err := m.session.Submit(); err == nil {
				m.screen = ScreenMain
			}
			// On failure the session has refocused the offending field.
		} else {
			m.session.Forward()
		}
	case key.Matches(msg, m.keys.EndJump):
		m.session.JumpToDone()
	case key.Matches(msg, m.keys.Backspace):
		m.session.Backspace()
	case key.Matches(msg, m.keys.Cancel):
		m.session.Cancel()
		m.screen = ScreenMain
	case key.Matches(msg, m.keys.Down):
		m.session.Forward()
	case key.Matches(msg, m.keys.Up):
		m.session.Backward()
	case key.Matches(msg, m.keys.OpenPick):
		if current == session.FieldExperiment || current == session.FieldMode {
			m.session.ClearError()
			m.screen = ScreenSelecting
		}
	default:
		if msg.Type == tea.KeyRunes {
			for _, r := range msg.Runes {
				m.session.TypeRune(r)
			}
		} else if msg.Type == tea.KeySpace {
			m.session.TypeRune(' ')
		}
	}
	return m, nil
}

// picker adapts either option list behind a common navigation surface.
type picker struct {
	next     func()
	previous func()
	first    func()
	last     func()
}

func (m Model) pickerFor(f session.Field) picker {
	if f == session.FieldMode {
		l := &m.session.Modes
		return picker{l.Next, l.Previous, l.First, l.Last}
	}
	l := &m.session.Experiments
	return picker{l.Next, l.Previous, l.First, l.Last}
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Header.Render("Modify Borealis schedule"))
	b.WriteString("\n")

	switch m.screen {
	case ScreenExiting:
		b.WriteString(views.RenderExit(m.session, m.styles, m.keys))
	case ScreenAdding:
		b.WriteString(views.RenderEditor(m.session, m.styles, false))
	case ScreenSelecting:
		b.WriteString(views.RenderEditor(m.session, m.styles, true))
	default:
		b.WriteString(views.RenderSchedule(m.session, m.styles, m.pageSize(), m.offset))
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return m.styles.App.Render(b.String())
}

func (m Model) renderFooter() string {
	var mode string
	switch m.screen {
	case ScreenMain:
		mode = m.styles.FooterMode.Render("Normal Mode")
	case ScreenAdding, ScreenSelecting:
		mode = m.styles.FooterEditing.Render("Adding Mode")
	case ScreenRemoving:
		mode = m.styles.FooterEditing.Render("Removing Mode")
	case ScreenExiting:
		mode = m.styles.ErrorBox.Render("Exiting")
	}

	var status string
	if current, editing := m.session.Editing(); editing {
		status = m.styles.FooterEditing.Render("Editing " + current.String())
	} else {
		status = m.styles.FooterIdle.Render("Not Editing Anything")
	}

	return mode + m.styles.FooterIdle.Render(" | ") + status +
		m.styles.FooterIdle.Render(" | ") + m.renderHints()
}

func (m Model) renderHints() string {
	pair := func(k, hint string) string {
		return m.styles.Key.Render("("+k+")") + m.styles.Hint.Render(" "+hint)
	}

	switch m.screen {
	case ScreenAdding:
		return strings.Join([]string{
			pair("esc", "cancel"),
			pair("tab/↑↓", "switch field"),
			pair("end", "jump to done"),
			pair("→ ←", "open/close picker"),
			pair("enter", "complete"),
		}, m.styles.Hint.Render(" / "))
	case ScreenSelecting, ScreenRemoving:
		return strings.Join([]string{
			pair("esc", "cancel"),
			pair("↑↓ g G", "navigate"),
			pair("enter", "select"),
		}, m.styles.Hint.Render(" / "))
	default:
		return strings.Join([]string{
			pair("q", "quit"),
			pair("a", "add a schedule line"),
			pair("r", "remove a schedule line"),
		}, m.styles.Hint.Render(" / "))
	}
}

func (m Model) pageSize() int {
	// Header, footer and padding take up six rows.
	size := m.height - 6
	if size < 1 {
		size = 10
	}
	return size
}

// ensureVisible scrolls the viewport so the cursor row stays on screen.
func (m *Model) ensureVisible() {
	cursor := m.session.Entries.Index()
	if cursor < 0 {
		return
	}
	if cursor < m.offset {
		m.offset = cursor
	}
	if cursor >= m.offset+m.pageSize() {
		m.offset = cursor - m.pageSize() + 1
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func maxOffset(length, page int) int {
	if length <= page {
		return 0
	}
	return length - page
}

// Run starts the editor and reports whether the user confirmed the write.
func Run(sess *session.Session, themeName string) (bool, error) {
	p := tea.NewProgram(New(sess, themeName), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return false, err
	}
	return final.(Model).Confirmed(), nil
}
