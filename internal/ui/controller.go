package ui

import (
	"errors"
	"strings"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhath/quill/internal/autocomplete"
	"github.com/nhath/quill/internal/history"
)

// questionEdited runs after every change to the question draft
func (m Model) questionEdited() (Model, tea.Cmd) {
	if m.state.Kind == Failed {
		m.state = RequestState{}
	}
	m = m.cancelDebounce()

	if !m.questionLongEnough(m.question.Value()) {
		// Responses already in flight must not repopulate the list
		m.suggestSeq++
		m.suggestions = m.suggestions.SetItems(nil).Hide()
		return m, nil
	}
	return m, debounceCmd(m.debounceID, m.config.Debounce())
}

func (m Model) questionLongEnough(q string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(q)) >= m.config.MinQuestionLen
}

// handleDebounce issues the live-suggestion fetch for the latest timer only
func (m Model) handleDebounce(msg DebounceMsg) (Model, tea.Cmd) {
	if msg.ID != m.debounceID {
		return m, nil
	}
	question := m.question.Value()
	if !m.questionLongEnough(question) {
		return m, nil
	}
	m.suggestSeq++
	m.log.Debug().Uint64("seq", m.suggestSeq).Str("question", question).Msg("fetch suggestions")
	return m, m.fetchSuggestionsCmd(m.suggestSeq, question, m.schema.Value())
}

// handleSuggestions applies a live-suggestion response if it is the latest
func (m Model) handleSuggestions(msg SuggestionsMsg) (Model, tea.Cmd) {
	if msg.Seq != m.suggestSeq {
		m.log.Debug().Uint64("seq", msg.Seq).Uint64("latest", m.suggestSeq).Msg("stale suggestions dropped")
		return m, nil
	}
	if msg.Err != nil {
		m.log.Warn().Err(msg.Err).Msg("suggestion fetch failed")
		return m, nil
	}

	m.suggestions = m.suggestions.SetItems(msg.Items)
	if len(msg.Items) > 0 && m.focus == FieldQuestion {
		m.suggestions = m.suggestions.Show()
	} else {
		m.suggestions = m.suggestions.Hide()
	}
	return m, nil
}

// selectSuggestion replaces the question with the chosen suggestion and
// submits it immediately.
func (m Model) selectSuggestion() (Model, tea.Cmd) {
	text := m.suggestions.SelectedItem()
	if text == "" {
		return m, nil
	}
	m = m.cancelDebounce()
	m.suggestSeq++
	m.suggestions = m.suggestions.Hide()
	m.question.SetValue(text)
	m.question.CursorEnd()
	return m.submit(text)
}

// submit validates the form and issues a full submission. A non-empty
// override replaces the question draft as the request text.
func (m Model) submit(override string) (Model, tea.Cmd) {
	m.options = nil
	m.optionIdx = 0
	m = m.refreshResults()

	question := m.question.Value()
	if override != "" {
		question = override
	}
	schema := m.schema.Value()

	if strings.TrimSpace(question) == "" || strings.TrimSpace(schema) == "" {
		m.state = RequestState{Kind: Failed, Message: MsgMissingInput}
		return m, nil
	}

	m.state = RequestState{Kind: Loading}
	m.submitSeq++
	m.log.Info().Uint64("seq", m.submitSeq).Str("question", question).Msg("submit")
	return m, tea.Batch(m.submitCmd(m.submitSeq, question, schema), m.spinner.Tick)
}

// handleSubmitResult applies the latest submission response
func (m Model) handleSubmitResult(msg SubmitResultMsg) (Model, tea.Cmd) {
	if msg.Seq != m.submitSeq {
		m.log.Debug().Uint64("seq", msg.Seq).Uint64("latest", m.submitSeq).Msg("stale submission dropped")
		return m, nil
	}

	entry := &history.Entry{
		Question:   msg.Question,
		DurationMs: msg.Duration.Milliseconds(),
	}

	if msg.Err != nil {
		m.log.Error().Err(msg.Err).Msg("submission failed")
		m.state = RequestState{Kind: Failed, Message: submitErrorMessage(msg.Err)}
		entry.Status = history.StatusError
		entry.ErrorMessage = m.state.Message
		m = m.refreshResults()
		return m, m.saveHistoryCmd(entry)
	}

	valid := autocomplete.ValidOptions(msg.Options)
	if !m.config.Display.ShowAllOptions && len(valid) > 1 {
		valid = valid[:1]
	}
	m.state = RequestState{}
	m.options = valid
	m.optionIdx = 0

	if len(valid) == 0 {
		entry.Status = history.StatusEmpty
	} else {
		entry.Status = history.StatusSuccess
		entry.Completion = valid[0].CompletionText
		entry.SQL = valid[0].SQLQuery
	}
	m = m.refreshResults()
	return m, m.saveHistoryCmd(entry)
}

func submitErrorMessage(err error) string {
	if errors.Is(err, autocomplete.ErrBackend) {
		return MsgBackendError
	}
	return MsgUnreachable
}

// selectedOption returns the option whose card is selected
func (m Model) selectedOption() (autocomplete.Option, bool) {
	if m.optionIdx < 0 || m.optionIdx >= len(m.options) {
		return autocomplete.Option{}, false
	}
	return m.options[m.optionIdx], true
}

// moveOption cycles the selected card
func (m Model) moveOption(delta int) Model {
	if len(m.options) == 0 {
		return m
	}
	m.optionIdx = (m.optionIdx + delta + len(m.options)) % len(m.options)
	return m.refreshResults()
}

// copySelected copies the SQL of the selected card
func (m Model) copySelected() (Model, tea.Cmd) {
	opt, ok := m.selectedOption()
	if !ok {
		return m, nil
	}
	return m, m.copyToClipboardCmd(opt.SQLQuery)
}

// handleClipboard always acknowledges the copy attempt
func (m Model) handleClipboard(msg ClipboardCopiedMsg) (Model, tea.Cmd) {
	if msg.Err != nil {
		m.log.Warn().Err(msg.Err).Msg("clipboard write failed")
		return m.setNotice(MsgCopyFailed, true)
	}
	return m.setNotice(MsgCopied, false)
}

// setNotice shows a transient status bar message
func (m Model) setNotice(text string, isErr bool) (Model, tea.Cmd) {
	m.noticeID++
	m.notice = text
	m.noticeIsErr = isErr
	return m, expireNoticeCmd(m.noticeID)
}

// handleSchemaLoaded replaces the schema text with the introspected one
func (m Model) handleSchemaLoaded(msg SchemaLoadedMsg) (Model, tea.Cmd) {
	m.schemaLoading = false
	if msg.Err != nil {
		m.log.Error().Err(msg.Err).Str("profile", msg.Profile).Msg("schema load failed")
		return m.setNotice("Could not load schema from "+msg.Profile, true)
	}
	m.schema.SetValue(msg.Schema)
	return m.setNotice("Schema loaded from "+msg.Profile, false)
}

// reloadSchema introspects the active profile again
func (m Model) reloadSchema() (Model, tea.Cmd) {
	if m.profile == nil {
		return m.setNotice("No profile selected (start with -profile)", true)
	}
	if m.schemaLoading {
		return m, nil
	}
	m.schemaLoading = true
	return m, tea.Batch(m.loadSchemaCmd(m.profile), m.spinner.Tick)
}
