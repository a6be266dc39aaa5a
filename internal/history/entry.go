// internal/history/entry.go
package history

import "time"

// Submission outcomes recorded in history
const (
	StatusSuccess = "success"
	StatusEmpty   = "empty" // service answered but no option was usable
	StatusError   = "error"
)

// Entry represents a single completed submission
type Entry struct {
	ID           int64
	Question     string
	Completion   string
	SQL          string
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message,omitempty"`
	DurationMs   int64
	CreatedAt    time.Time
}

// QuestionPreview returns a truncated version of the question
func (e *Entry) QuestionPreview(maxLen int) string {
	q := []rune(e.Question)
	if maxLen <= 3 || len(q) <= maxLen {
		return e.Question
	}
	return string(q[:maxLen-3]) + "..."
}
