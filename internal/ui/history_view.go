package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"

	"github.com/nhath/quill/internal/autocomplete"
	"github.com/nhath/quill/internal/history"
	"github.com/nhath/quill/internal/ui/components/table"
)

// openHistory shows the popup and reloads its entries
func (m Model) openHistory() (Model, tea.Cmd) {
	if m.store == nil {
		return m.setNotice("History is disabled", true)
	}
	m.historyOpen = true
	m.suggestions = m.suggestions.Hide()
	m = m.rebuildHistoryTable()
	return m, m.loadHistoryCmd()
}

func (m Model) rebuildHistoryTable() Model {
	m.historyTable = table.FromHistory(m.historyEntries, m.config.Theme, m.popupWidth())
	return m
}

func (m Model) popupWidth() int {
	w := m.width - 10
	if w > 140 {
		w = 140
	}
	if w < 40 {
		w = 40
	}
	return w
}

// updateHistoryPopup routes keys while the popup is open
func (m Model) updateHistoryPopup(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.historyTable.GetIsFilterInputFocused() {
		var cmd tea.Cmd
		m.historyTable, cmd = m.historyTable.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Close), key.Matches(msg, m.keys.History):
		m.historyOpen = false
		return m, nil
	case key.Matches(msg, m.keys.Accept):
		id, ok := table.SelectedID(m.historyTable)
		if !ok {
			return m, nil
		}
		m.historyOpen = false
		return m.restoreEntry(id), nil
	case key.Matches(msg, m.keys.Delete):
		if id, ok := table.SelectedID(m.historyTable); ok {
			return m, m.deleteHistoryCmd(id)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.historyTable, cmd = m.historyTable.Update(msg)
	return m, cmd
}

// restoreEntry puts a past submission back into the form
func (m Model) restoreEntry(id int64) Model {
	var entry *history.Entry
	for i := range m.historyEntries {
		if m.historyEntries[i].ID == id {
			entry = &m.historyEntries[i]
			break
		}
	}
	if entry == nil {
		return m
	}

	m = m.cancelDebounce()
	m.suggestSeq++
	// A submission still in flight belongs to the replaced question
	m.submitSeq++
	m.suggestions = m.suggestions.SetItems(nil).Hide()
	m.question.SetValue(entry.Question)
	m.question.CursorEnd()

	m.options = nil
	m.optionIdx = 0
	m.state = RequestState{}
	switch entry.Status {
	case history.StatusSuccess:
		m.options = []autocomplete.Option{{CompletionText: entry.Completion, SQLQuery: entry.SQL}}
	case history.StatusError:
		m.state = RequestState{Kind: Failed, Message: restoredErrorMessage(entry.ErrorMessage)}
	}
	return m.refreshResults()
}

// restoredErrorMessage only lets the user-facing error texts back into the
// banner; anything else is an unclassified failure.
func restoredErrorMessage(stored string) string {
	switch stored {
	case MsgBackendError, MsgUnreachable:
		return stored
	}
	return MsgBackendError
}

func (m Model) handleHistoryLoaded(msg HistoryLoadedMsg) (Model, tea.Cmd) {
	if msg.Err != nil {
		m.log.Error().Err(msg.Err).Msg("history load failed")
		return m.setNotice("Could not load history", true)
	}
	m.historyEntries = msg.Entries
	return m.rebuildHistoryTable(), nil
}

func (m Model) handleHistorySaved(msg HistorySavedMsg) (Model, tea.Cmd) {
	if msg.Err != nil {
		m.log.Error().Err(msg.Err).Msg("history save failed")
		return m, nil
	}
	m.historyEntries = append([]history.Entry{*msg.Entry}, m.historyEntries...)
	if len(m.historyEntries) > historyPageSize {
		m.historyEntries = m.historyEntries[:historyPageSize]
	}
	if m.historyOpen {
		m = m.rebuildHistoryTable()
	}
	return m, nil
}

func (m Model) handleHistoryDeleted(msg HistoryDeletedMsg) (Model, tea.Cmd) {
	if msg.Err != nil {
		m.log.Error().Err(msg.Err).Int64("id", msg.ID).Msg("history delete failed")
		return m.setNotice("Could not delete history entry", true)
	}
	kept := make([]history.Entry, 0, len(m.historyEntries))
	for _, e := range m.historyEntries {
		if e.ID != msg.ID {
			kept = append(kept, e)
		}
	}
	m.historyEntries = kept
	return m.rebuildHistoryTable(), nil
}

// renderHistoryPopup composites the history table over main
func (m Model) renderHistoryPopup(main string) string {
	title := m.styles.Title.Render("History")
	box := m.styles.Popup.Render(lipgloss.JoinVertical(lipgloss.Left, title, "", m.historyTable.View()))
	return overlay.Composite(box, main, overlay.Center, overlay.Center, 0, 0)
}
