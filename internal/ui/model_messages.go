// internal/ui/model_messages.go
// Consolidated message types for Bubble Tea Update cycle
package ui

import (
	"time"

	"github.com/nhath/quill/internal/autocomplete"
	"github.com/nhath/quill/internal/history"
)

// DebounceMsg fires when a debounce timer elapses. Only the latest ID is live.
type DebounceMsg struct {
	ID int
}

// SuggestionsMsg carries the result of a live-suggestion fetch
type SuggestionsMsg struct {
	Seq   uint64
	Items []string
	Err   error
}

// SubmitResultMsg carries the result of a full submission
type SubmitResultMsg struct {
	Seq      uint64
	Question string
	Options  []autocomplete.Option
	Err      error
	Duration time.Duration
}

// ClipboardCopiedMsg is sent when clipboard copy completes
type ClipboardCopiedMsg struct {
	Text string
	Err  error
}

// NoticeExpiredMsg clears a transient status notice
type NoticeExpiredMsg struct {
	ID int
}

// HistoryLoadedMsg is sent when history loads from SQLite
type HistoryLoadedMsg struct {
	Entries []history.Entry
	Err     error
}

// HistorySavedMsg is sent after a submission is recorded
type HistorySavedMsg struct {
	Entry *history.Entry
	Err   error
}

// HistoryDeletedMsg is sent after an entry is removed
type HistoryDeletedMsg struct {
	ID  int64
	Err error
}

// SchemaLoadedMsg is sent when schema introspection of a profile completes
type SchemaLoadedMsg struct {
	Profile string
	Schema  string
	Err     error
}
