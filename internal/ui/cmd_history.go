package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhath/quill/internal/history"
)

const historyPageSize = 100

// loadHistoryCmd loads past submissions from SQLite
func (m Model) loadHistoryCmd() tea.Cmd {
	store := m.store
	return func() tea.Msg {
		entries, err := store.List(historyPageSize, 0)
		return HistoryLoadedMsg{Entries: entries, Err: err}
	}
}

// saveHistoryCmd records a completed submission
func (m Model) saveHistoryCmd(entry *history.Entry) tea.Cmd {
	if m.store == nil {
		return nil
	}
	store := m.store
	return func() tea.Msg {
		return HistorySavedMsg{Entry: entry, Err: store.Add(entry)}
	}
}

// deleteHistoryCmd removes an entry
func (m Model) deleteHistoryCmd(id int64) tea.Cmd {
	store := m.store
	return func() tea.Msg {
		return HistoryDeletedMsg{ID: id, Err: store.Delete(id)}
	}
}
