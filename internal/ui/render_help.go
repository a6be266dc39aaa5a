package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

func (m Model) renderHelp() string {
	hint := func(b key.Binding) string {
		h := b.Help()
		return m.styles.HelpKey.Render(h.Key) + m.styles.HelpDesc.Render(" "+h.Desc)
	}

	var hints []string
	switch {
	case m.historyOpen:
		hints = append(hints, hint(m.keys.Accept), hint(m.keys.Delete), hint(m.keys.Close))
	case m.suggestions.Visible():
		hints = append(hints, hint(m.keys.Up), hint(m.keys.Down), hint(m.keys.Accept), hint(m.keys.Close))
	default:
		hints = append(hints, hint(m.keys.Submit), hint(m.keys.SwitchFocus))
		if len(m.options) > 0 {
			hints = append(hints, hint(m.keys.Copy))
		}
		if len(m.options) > 1 {
			hints = append(hints, hint(m.keys.NextOption))
		}
		hints = append(hints, hint(m.keys.History))
		if m.profile != nil {
			hints = append(hints, hint(m.keys.ReloadSchema))
		}
	}
	hints = append(hints, hint(m.keys.Quit))

	return strings.Join(hints, "  ")
}
