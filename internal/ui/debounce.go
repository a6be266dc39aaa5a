package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// debounceCmd schedules a DebounceMsg for the given ID. Bumping
// m.debounceID cancels every earlier schedule.
func debounceCmd(id int, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return DebounceMsg{ID: id}
	})
}

// cancelDebounce invalidates any pending debounce tick
func (m Model) cancelDebounce() Model {
	m.debounceID++
	return m
}
