package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap binds the decision keys shared by the suggest and confirm
// prompts.
type keyMap struct {
	Accept key.Binding
	Reject key.Binding
	Quit   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Accept: key.NewBinding(
			key.WithKeys("a", "y", "enter"),
			key.WithHelp("a", "accept"),
		),
		Reject: key.NewBinding(
			key.WithKeys("r", "n"),
			key.WithHelp("r", "reject"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
