package ui

import (
	"github.com/charmbracelet/lipgloss"
	tint "github.com/lrstanley/bubbletint"
)

// Styles contains all the styles used in the TUI.
type Styles struct {
	// Frame
	App    lipgloss.Style
	Header lipgloss.Style

	// Schedule list
	ListTitle    lipgloss.Style
	LineNormal   lipgloss.Style
	LineSelected lipgloss.Style

	// Footer
	FooterMode    lipgloss.Style
	FooterEditing lipgloss.Style
	FooterIdle    lipgloss.Style
	Key           lipgloss.Style
	Hint          lipgloss.Style

	// Editor popup
	EditorTitle lipgloss.Style
	FieldLabel  lipgloss.Style
	FieldActive lipgloss.Style
	Restriction lipgloss.Style
	ErrorBox    lipgloss.Style

	// Pickers
	PickerTitle    lipgloss.Style
	PickerItem     lipgloss.Style
	PickerItemAlt  lipgloss.Style
	PickerSelected lipgloss.Style

	// Exit screen
	Additions lipgloss.Style
	Deletions lipgloss.Style
	ExitHint  lipgloss.Style
}

// DefaultStyles returns the default TUI styles.
func DefaultStyles() Styles {
	primary := lipgloss.Color("40")    // Green
	selected := lipgloss.Color("120")  // Light green
	muted := lipgloss.Color("240")     // Gray
	keyColor := lipgloss.Color("227")  // Light yellow
	hintColor := lipgloss.Color("111") // Light blue
	added := lipgloss.Color("120")
	removed := lipgloss.Color("203")
	errColor := lipgloss.Color("196")

	return styleSet(primary, selected, muted, keyColor, hintColor, added, removed, errColor)
}

// NewStylesFromRegistry creates a Styles struct using colors from a
// bubbletint registry, mapping theme colors onto the UI roles.
func NewStylesFromRegistry(r *tint.Registry) Styles {
	return styleSet(
		r.Green(),
		r.BrightGreen(),
		r.BrightBlack(),
		r.BrightYellow(),
		r.BrightBlue(),
		r.BrightGreen(),
		r.BrightRed(),
		r.Red(),
	)
}

func styleSet(primary, selected, muted, keyColor, hintColor, added, removed, errColor lipgloss.TerminalColor) Styles {
	return Styles{
		App: lipgloss.NewStyle().Padding(0, 1),
		Header: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true).
			Border(lipgloss.NormalBorder()).
			Padding(0, 1),

		ListTitle: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true),
		LineNormal: lipgloss.NewStyle(),
		LineSelected: lipgloss.NewStyle().
			Foreground(selected).
			Bold(true).
			Reverse(true),

		FooterMode: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true),
		FooterEditing: lipgloss.NewStyle().
			Foreground(keyColor),
		FooterIdle: lipgloss.NewStyle().
			Foreground(muted),
		Key: lipgloss.NewStyle().
			Foreground(keyColor).
			Bold(true),
		Hint: lipgloss.NewStyle().
			Foreground(hintColor),

		EditorTitle: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true),
		FieldLabel: lipgloss.NewStyle(),
		FieldActive: lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(keyColor),
		Restriction: lipgloss.NewStyle().
			Foreground(hintColor),
		ErrorBox: lipgloss.NewStyle().
			Foreground(errColor).
			Bold(true),

		PickerTitle: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true),
		PickerItem:    lipgloss.NewStyle(),
		PickerItemAlt: lipgloss.NewStyle().Foreground(muted),
		PickerSelected: lipgloss.NewStyle().
			Foreground(selected).
			Bold(true).
			Reverse(true),

		Additions: lipgloss.NewStyle().
			Foreground(added).
			Border(lipgloss.NormalBorder()).
			Padding(0, 1),
		Deletions: lipgloss.NewStyle().
			Foreground(removed).
			Border(lipgloss.NormalBorder()).
			Padding(0, 1),
		ExitHint: lipgloss.NewStyle().
			Foreground(hintColor),
	}
}
