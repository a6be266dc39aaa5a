package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/nhath/quill/internal/config"
)

type keyMap struct {
	Submit       key.Binding
	Copy         key.Binding
	SwitchFocus  key.Binding
	NextOption   key.Binding
	PrevOption   key.Binding
	History      key.Binding
	ReloadSchema key.Binding
	Quit         key.Binding

	// Fixed navigation keys
	Up     key.Binding
	Down   key.Binding
	Accept key.Binding
	Close  key.Binding
	Delete key.Binding
}

func binding(keys []string, fallback, desc string) key.Binding {
	if len(keys) == 0 {
		keys = []string{fallback}
	}
	return key.NewBinding(key.WithKeys(keys...), key.WithHelp(keys[0], desc))
}

func newKeyMap(k config.KeyMap) keyMap {
	return keyMap{
		Submit:       binding(k.Submit, "ctrl+s", "Generate"),
		Copy:         binding(k.Copy, "ctrl+y", "Copy SQL"),
		SwitchFocus:  binding(k.SwitchFocus, "tab", "Switch field"),
		NextOption:   binding(k.NextOption, "ctrl+n", "Next option"),
		PrevOption:   binding(k.PrevOption, "ctrl+p", "Prev option"),
		History:      binding(k.History, "ctrl+h", "History"),
		ReloadSchema: binding(k.ReloadSchema, "ctrl+r", "Reload schema"),
		Quit:         binding(k.Quit, "ctrl+c", "Quit"),

		Up:     key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "Up")),
		Down:   key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "Down")),
		Accept: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "Select")),
		Close:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "Close")),
		Delete: key.NewBinding(key.WithKeys("x", "delete"), key.WithHelp("x", "Delete")),
	}
}
