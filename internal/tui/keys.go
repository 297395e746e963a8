package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap holds the editor's key bindings. The Letter bindings are the
// plain-key shortcuts that only act while the selected field is unchanged;
// otherwise those runes are typed into the buffer.
type KeyMap struct {
	Next     key.Binding
	Previous key.Binding
	Apply    key.Binding
	Delete   key.Binding
	Save     key.Binding
	Reload   key.Binding
	Reset    key.Binding
	Quit     key.Binding
	Help     key.Binding

	LetterSave   key.Binding
	LetterReload key.Binding
	LetterReset  key.Binding
	LetterQuit   key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		Previous: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous field"),
		),
		Apply: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "apply / toggle"),
		),
		Delete: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("backspace", "delete char"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save"),
		),
		Reload: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "reload"),
		),
		Reset: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("ctrl+x", "reset to defaults"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		LetterSave: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "save"),
		),
		LetterReload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		LetterReset: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "reset"),
		),
		LetterQuit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns the bindings shown in the status bar.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Apply, k.Save, k.Reload, k.Help, k.Quit}
}

// FullHelp returns every binding, grouped for the help overlay.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Previous, k.Apply, k.Delete},
		{k.Save, k.Reload, k.Reset, k.Quit},
		{k.LetterSave, k.LetterReload, k.LetterReset, k.LetterQuit, k.Help},
	}
}
