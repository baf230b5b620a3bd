package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// KeyMap holds the bindings shared by the selector and the wizard steps
// that are not text input.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Back   key.Binding
	// Quit only binds ctrl+c so that q can be typed into text fields.
	Quit key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑", "navigate")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "navigate")),
		Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// HelpText renders the bindings as a single help line.
func (k KeyMap) HelpText() string {
	up, down := k.Up.Help(), k.Down.Help()
	parts := []string{up.Key + "/" + down.Key + " " + up.Desc}
	for _, b := range []key.Binding{k.Select, k.Back, k.Quit} {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}
