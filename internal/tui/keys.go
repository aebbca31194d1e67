package tui

import "charm.land/bubbles/v2/key"

type keyMap struct {
	Grow   key.Binding
	Shrink key.Binding
	Toggle key.Binding
	Focus  key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Grow: key.NewBinding(
			key.WithKeys("ctrl+right", "ctrl+down", "+", "="),
			key.WithHelp("+", "grow"),
		),
		Shrink: key.NewBinding(
			key.WithKeys("ctrl+left", "ctrl+up", "-"),
			key.WithHelp("-", "shrink"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch pane"),
		),
		// Any digit is accepted; only 1 and 2 name a pane.
		Focus: key.NewBinding(
			key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1/2", "focus pane"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Grow, k.Shrink, k.Toggle, k.Focus, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
