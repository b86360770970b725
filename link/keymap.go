package link

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the key bindings a focused link responds to.
type KeyMap struct {
	Activate key.Binding
}

// DefaultKeyMap activates on enter.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Activate: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
	}
}

// ShortHelp satisfies the help bubble's KeyMap interface.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Activate}
}

// FullHelp satisfies the help bubble's KeyMap interface.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Activate}}
}
