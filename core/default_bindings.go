package core

import "github.com/charmbracelet/bubbles/key"

const (
	scopeIdle   = "slider:idle"
	scopeResult = "slider:result"
)

func DefaultKeyBindings() []KeyBinding {
	return []KeyBinding{
		{
			Action:  "quit",
			Binding: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
			Scopes:  []string{"*"},
		},
		{
			Action:  "clear",
			Binding: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear result")),
			Scopes:  []string{scopeResult},
		},
	}
}
