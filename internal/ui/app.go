// internal/ui/app.go
package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles messages and updates model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m = m.layout()
		if m.historyOpen {
			m = m.rebuildHistoryTable()
		}
		return m, nil

	case DebounceMsg:
		return m.handleDebounce(msg)

	case SuggestionsMsg:
		return m.handleSuggestions(msg)

	case SubmitResultMsg:
		return m.handleSubmitResult(msg)

	case ClipboardCopiedMsg:
		return m.handleClipboard(msg)

	case NoticeExpiredMsg:
		if msg.ID == m.noticeID {
			m.notice = ""
			m.noticeIsErr = false
		}
		return m, nil

	case SchemaLoadedMsg:
		return m.handleSchemaLoaded(msg)

	case HistoryLoadedMsg:
		return m.handleHistoryLoaded(msg)

	case HistorySavedMsg:
		return m.handleHistorySaved(msg)

	case HistoryDeletedMsg:
		return m.handleHistoryDeleted(msg)

	case spinner.TickMsg:
		if m.state.Kind != Loading && !m.schemaLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Cursor blink and other passthrough messages
	return m.updateFocused(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	if m.historyOpen {
		return m.updateHistoryPopup(msg)
	}

	// Suggestion list interaction
	if m.focus == FieldQuestion && m.suggestions.Visible() {
		switch {
		case key.Matches(msg, m.keys.Up):
			m.suggestions = m.suggestions.MoveUp()
			return m, nil
		case key.Matches(msg, m.keys.Down):
			m.suggestions = m.suggestions.MoveDown()
			return m, nil
		case key.Matches(msg, m.keys.Accept), msg.String() == "tab":
			return m.selectSuggestion()
		case key.Matches(msg, m.keys.Close):
			m.suggestions = m.suggestions.Hide()
			return m, nil
		}
	}

	switch {
	case key.Matches(msg, m.keys.Submit),
		m.focus == FieldQuestion && key.Matches(msg, m.keys.Accept):
		// The submit button is disabled while a submission is in flight
		if m.state.Kind == Loading {
			return m, nil
		}
		m.suggestions = m.suggestions.Hide()
		m = m.cancelDebounce()
		return m.submit("")

	case key.Matches(msg, m.keys.SwitchFocus):
		return m.switchFocus(), nil

	case key.Matches(msg, m.keys.Copy):
		return m.copySelected()

	case key.Matches(msg, m.keys.NextOption):
		return m.moveOption(1), nil

	case key.Matches(msg, m.keys.PrevOption):
		return m.moveOption(-1), nil

	case key.Matches(msg, m.keys.History):
		return m.openHistory()

	case key.Matches(msg, m.keys.ReloadSchema):
		return m.reloadSchema()
	}

	if msg.Type == tea.KeyPgUp || msg.Type == tea.KeyPgDown {
		var cmd tea.Cmd
		m.results, cmd = m.results.Update(msg)
		return m, cmd
	}

	return m.updateFocused(msg)
}

// updateFocused forwards msg to the focused text area and runs the edit
// rules when the question changed.
func (m Model) updateFocused(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.focus == FieldSchema {
		m.schema, cmd = m.schema.Update(msg)
		return m, cmd
	}

	before := m.question.Value()
	m.question, cmd = m.question.Update(msg)
	if m.question.Value() == before {
		return m, cmd
	}

	m, editCmd := m.questionEdited()
	return m, tea.Batch(cmd, editCmd)
}

func (m Model) switchFocus() Model {
	if m.focus == FieldQuestion {
		m.focus = FieldSchema
		m.question.Blur()
		m.schema.Focus()
		m.suggestions = m.suggestions.Hide()
	} else {
		m.focus = FieldQuestion
		m.schema.Blur()
		m.question.Focus()
	}
	return m
}
