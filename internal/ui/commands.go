package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhath/quill/internal/autocomplete"
)

// fetchSuggestionsCmd requests live completions for a partial question
func (m Model) fetchSuggestionsCmd(seq uint64, question, schema string) tea.Cmd {
	completer := m.completer
	timeout := m.config.Timeout()
	limit := m.config.MaxSuggestions
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		options, err := completer.Complete(ctx, autocomplete.NewRequest(question, schema))
		if err != nil {
			return SuggestionsMsg{Seq: seq, Err: err}
		}
		return SuggestionsMsg{Seq: seq, Items: autocomplete.Completions(options, limit)}
	}
}

// submitCmd issues a full submission
func (m Model) submitCmd(seq uint64, question, schema string) tea.Cmd {
	completer := m.completer
	timeout := m.config.Timeout()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		start := time.Now()
		options, err := completer.Complete(ctx, autocomplete.NewRequest(question, schema))
		return SubmitResultMsg{
			Seq:      seq,
			Question: question,
			Options:  options,
			Err:      err,
			Duration: time.Since(start),
		}
	}
}
