package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int    // max results (0 = unlimited)
	After  int64  // sequence > After
	DeckID string // filter by deck ("" = all decks)
}

// AnswerEventData captures one answered question for the local history.
type AnswerEventData struct {
	SessionID      string
	DeckID         string
	QuestionID     string
	SelectedLetter string
	SelectedText   string
	CorrectLetter  string
	Correct        bool
	TimeMs         int
	Mode           string
}

// SessionEventData captures a run lifecycle transition.
type SessionEventData struct {
	SessionID      string
	DeckID         string
	Action         string
	Mode           string
	Scope          string
	Answered       int
	CorrectAnswers int
	DurationSecs   int
}

// SyncEventData captures one mutating call against the deck service.
type SyncEventData struct {
	DeckID       string
	Op           string
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// SyncRecord is a persisted sync event as returned by queries.
type SyncRecord struct {
	Sequence  int64
	Timestamp time.Time
	SyncEventData
}

// DeckStats aggregates the local answer history for one deck.
type DeckStats struct {
	DeckID     string
	Attempts   int // finished runs
	Answered   int // answer events, all runs
	Correct    int
	AvgTimeMs  int
	LastPlayed time.Time
}

// Accuracy returns the fraction of answers that were correct, 0 when
// nothing has been answered.
func (s DeckStats) Accuracy() float64 {
	if s.Answered == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Answered)
}

// EventRepo provides append and query access to the local event log.
type EventRepo interface {
	// AppendAnswerEvent records one answered question.
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error

	// AppendSessionEvent records a run lifecycle transition.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// AppendSyncEvent records a call against the deck service.
	AppendSyncEvent(ctx context.Context, data SyncEventData) error

	// StatsByDeck aggregates the answer history grouped by deck.
	StatsByDeck(ctx context.Context) ([]DeckStats, error)

	// QuerySyncEvents returns sync events, newest first.
	QuerySyncEvents(ctx context.Context, opts QueryOpts) ([]SyncRecord, error)

	// LastPlayed returns the timestamp of the most recent answer for a
	// deck, or the zero time if the deck has never been played.
	LastPlayed(ctx context.Context, deckID string) (time.Time, error)
}

// ProgressSnapshot is the cached server progress for one deck.
type ProgressSnapshot struct {
	DeckID            string    `json:"deck_id"`
	Status            string    `json:"status"`
	LastAnsweredIndex int       `json:"last_answered_index"`
	Answered          int       `json:"answered"`
	Correct           int       `json:"correct"`
	Attempts          int       `json:"attempts"`
	FetchedAt         time.Time `json:"fetched_at"`
}

// Snapshot wraps a ProgressSnapshot with its position in the event log.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      ProgressSnapshot
}

// SnapshotRepo manages cached deck progress.
type SnapshotRepo interface {
	// Save stores a new snapshot for the deck in snap.Data.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot for a deck, or nil if
	// none exists.
	Latest(ctx context.Context, deckID string) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots per deck.
	Prune(ctx context.Context, keep int) error
}
