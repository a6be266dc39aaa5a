// Package autocomplete talks to the remote SQL autocomplete service and
// normalizes its responses into fixed records.
package autocomplete

import "context"

// Message is one entry of the conversation history sent with a request.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request is the body of a POST to the autocomplete endpoint
type Request struct {
	UserInput           string    `json:"userInput"`
	SchemaDescription   string    `json:"schemaDescription"`
	ConversationHistory []Message `json:"conversationHistory"`
}

// NewRequest builds a request with an empty (non-nil) conversation history.
func NewRequest(question, schema string) Request {
	return Request{
		UserInput:           question,
		SchemaDescription:   schema,
		ConversationHistory: []Message{},
	}
}

// Option is a completed question paired with its SQL.
type Option struct {
	CompletionText string `json:"completionText"`
	SQLQuery       string `json:"sqlQuery"`
}

// Completer is implemented by anything that can answer autocomplete requests.
type Completer interface {
	Complete(ctx context.Context, req Request) ([]Option, error)
}
