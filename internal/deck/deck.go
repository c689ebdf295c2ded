package deck

import "errors"

// Status describes the server-side lifecycle of a deck.
type Status string

const (
	StatusReady      Status = "ready"
	StatusGenerating Status = "generating"
	StatusFailed     Status = "failed"
	StatusUnknown    Status = "unknown"
)

// ParseStatus maps a server status string to a Status. Unrecognized values
// map to StatusUnknown rather than failing, so a new server-side state never
// blocks the client.
func ParseStatus(s string) Status {
	switch Status(s) {
	case StatusReady, StatusGenerating, StatusFailed:
		return Status(s)
	}
	return StatusUnknown
}

// Deck holds deck metadata. The engine only ever mutates locally cached
// display fields; the deck itself is owned by the server.
type Deck struct {
	ID            string
	Title         string
	QuestionCount int
	TargetCount   int
	Status        Status
}

// Ready reports whether the deck can be opened for a session.
func (d *Deck) Ready() bool {
	return d.Status == StatusReady
}

var (
	// ErrDeckNotFound is a terminal state: the deck does not exist
	// server-side. Never retried.
	ErrDeckNotFound = errors.New("deck not found")

	// ErrQuestionNotFound indicates a submission referenced a question the
	// server does not know. Never retried.
	ErrQuestionNotFound = errors.New("question not found")
)
