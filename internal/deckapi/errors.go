package deckapi

import "fmt"

// ErrUnavailable is a transient transport failure: connectivity, timeout,
// or a 5xx from the deck service. Retryable.
type ErrUnavailable struct {
	Status int // HTTP status, 0 for transport-level failures
	Err    error
}

func (e *ErrUnavailable) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("deck service unavailable (HTTP %d): %v", e.Status, e.Err)
	}
	return fmt.Sprintf("deck service unavailable: %v", e.Err)
}

func (e *ErrUnavailable) Unwrap() error { return e.Err }

// ErrBadPayload means a response failed normalization or schema validation.
// A malformed payload is a data inconsistency, not a transient fault; it is
// never retried.
type ErrBadPayload struct {
	Op  string
	Err error
}

func (e *ErrBadPayload) Error() string {
	return fmt.Sprintf("bad payload from %s: %v", e.Op, e.Err)
}

func (e *ErrBadPayload) Unwrap() error { return e.Err }
