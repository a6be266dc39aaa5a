// internal/ui/model_types.go
// Type definitions for the UI layer
package ui

// RequestKind is the phase of the full-submission lifecycle
type RequestKind int

const (
	Idle RequestKind = iota
	Loading
	Failed
)

// RequestState governs the submit label and the error banner
type RequestState struct {
	Kind    RequestKind
	Message string // set when Kind is Failed
}

// Error returns the banner message, or "" when there is none
func (s RequestState) Error() string {
	if s.Kind == Failed {
		return s.Message
	}
	return ""
}

// Field identifies the focused text area
type Field int

const (
	FieldQuestion Field = iota
	FieldSchema
)

// User-facing messages
const (
	MsgMissingInput    = "Please provide both a question and a schema."
	MsgBackendError    = "Backend returned an error. Check server logs."
	MsgUnreachable     = "Could not reach backend. Make sure it is running."
	MsgCopied          = "SQL copied to clipboard"
	MsgCopyFailed      = "Could not copy SQL"
	LabelSubmit        = "Generate autocomplete suggestions"
	LabelSubmitLoading = "Generating..."
)
