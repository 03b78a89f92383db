package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/nordlys/scdmod/internal/schedule"
	"github.com/nordlys/scdmod/internal/session"
	"github.com/nordlys/scdmod/internal/tui/ui"
)

// RenderExit renders the pre-write confirmation: the additions and
// deletions ledgers side by side, then the write/discard/back prompt.
func RenderExit(sess *session.Session, styles ui.Styles, keys ui.KeyMap) string {
	additions := renderLedger("Additions", sess.Additions(), styles.Additions)
	deletions := renderLedger("Deletions", sess.Deletions(), styles.Deletions)

	prompt := strings.Join([]string{
		styles.ExitHint.Render("Write to file ") + styles.Key.Render("("+keys.Yes.Help().Key+")"),
		styles.ExitHint.Render("Cancel changes and quit ") + styles.Key.Render("("+keys.No.Help().Key+")"),
		styles.ExitHint.Render("Go back to editing ") + styles.Key.Render("("+keys.Back.Help().Key+")"),
	}, styles.ExitHint.Render("  /  "))

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, additions, " ", deletions),
		prompt,
	)
}

func renderLedger(title string, entries []schedule.Entry, style lipgloss.Style) string {
	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n")
	for _, e := range entries {
		b.WriteString(schedule.Encode(e))
		b.WriteString("\n")
	}
	return style.Render(b.String())
}
