package ui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap contains the key bindings for the TUI. Plain letters that double
// as text input (a, r, q, y, n, b, g, G) are matched per screen so typing
// into a field buffer is never intercepted.
type KeyMap struct {
	// List navigation
	Up       key.Binding
	Down     key.Binding
	First    key.Binding
	Last     key.Binding
	PageUp   key.Binding
	PageDown key.Binding

	// Screen actions
	Add    key.Binding
	Remove key.Binding
	Quit   key.Binding

	// Editor
	Confirm   key.Binding
	Cancel    key.Binding
	EndJump   key.Binding
	Backspace key.Binding
	OpenPick  key.Binding
	ClosePick key.Binding

	// Exit screen
	Yes  key.Binding
	No   key.Binding
	Back key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "tab"),
			key.WithHelp("↓/tab", "down"),
		),
		First: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "first"),
		),
		Last: key.NewBinding(
			key.WithKeys("G"),
			key.WithHelp("G", "last"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "page down"),
		),

		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add entry"),
		),
		Remove: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "remove entry"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),

		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		EndJump: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("end", "jump to done"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("⌫", "delete char"),
		),
		OpenPick: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "open picker"),
		),
		ClosePick: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "close picker"),
		),

		Yes: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "write and quit"),
		),
		No: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "discard and quit"),
		),
		Back: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "back to editing"),
		),
	}
}
