package autocomplete

import (
	"errors"
	"fmt"
)

var (
	// ErrBackend classifies any non-2xx answer from the service.
	ErrBackend = errors.New("backend returned an error")
	// ErrUnreachable classifies transport and decoding failures.
	ErrUnreachable = errors.New("backend unreachable")
)

// StatusError carries the status and body of a non-2xx response
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("autocomplete failed status=%d body=%s", e.StatusCode, e.Body)
}

// Is reports StatusError as ErrBackend.
func (e *StatusError) Is(target error) bool {
	return target == ErrBackend
}
