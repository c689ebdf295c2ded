package deckapi

import (
	"context"
	"time"

	"github.com/deckplay/deckplay/internal/deck"
	"github.com/deckplay/deckplay/internal/store"
)

// loggingRepository decorates a Repository, appending a SyncEvent for every
// mutating call. A TUI has no stderr to write to mid-session, so degraded
// syncs are persisted and surfaced by `deckplay stats`.
type loggingRepository struct {
	inner  deck.Repository
	events store.EventRepo
}

// WithLogging wraps a Repository with sync-event logging.
func WithLogging(r deck.Repository, events store.EventRepo) deck.Repository {
	return &loggingRepository{inner: r, events: events}
}

func (l *loggingRepository) log(ctx context.Context, deckID, op string, start time.Time, err error) {
	data := store.SyncEventData{
		DeckID:    deckID,
		Op:        op,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
	}
	if err != nil {
		data.ErrorMessage = err.Error()
	}
	// Telemetry must never fail the operation it describes.
	_ = l.events.AppendSyncEvent(ctx, data)
}

func (l *loggingRepository) GetDeck(ctx context.Context, deckID string) (*deck.Deck, error) {
	return l.inner.GetDeck(ctx, deckID)
}

func (l *loggingRepository) StartOrFetchProgress(ctx context.Context, deckID string) (*deck.Progress, error) {
	start := time.Now()
	p, err := l.inner.StartOrFetchProgress(ctx, deckID)
	l.log(ctx, deckID, "start-or-fetch-progress", start, err)
	return p, err
}

func (l *loggingRepository) ListQuestions(ctx context.Context, deckID string) ([]deck.Question, error) {
	return l.inner.ListQuestions(ctx, deckID)
}

func (l *loggingRepository) ListReviewQuestions(ctx context.Context, deckID string, scope deck.ReviewScope) ([]deck.Question, error) {
	return l.inner.ListReviewQuestions(ctx, deckID, scope)
}

func (l *loggingRepository) SubmitAnswer(ctx context.Context, deckID, questionID, letter string, elapsedMs int) (*deck.SubmitResult, error) {
	start := time.Now()
	res, err := l.inner.SubmitAnswer(ctx, deckID, questionID, letter, elapsedMs)
	l.log(ctx, deckID, "submit-answer", start, err)
	return res, err
}

func (l *loggingRepository) ResetProgress(ctx context.Context, deckID string) error {
	start := time.Now()
	err := l.inner.ResetProgress(ctx, deckID)
	l.log(ctx, deckID, "reset-progress", start, err)
	return err
}

func (l *loggingRepository) RetakeWrong(ctx context.Context, deckID string) (*deck.Progress, error) {
	start := time.Now()
	p, err := l.inner.RetakeWrong(ctx, deckID)
	l.log(ctx, deckID, "retake-wrong", start, err)
	return p, err
}
