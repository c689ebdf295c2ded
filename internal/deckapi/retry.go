package deckapi

import (
	"context"
	"errors"
	"time"

	"github.com/deckplay/deckplay/internal/deck"
)

// retryRepository decorates a deck.Repository with a fixed-backoff retry for
// transient failures. Not-found and payload errors are terminal and pass
// through untouched.
type retryRepository struct {
	inner deck.Repository
	cfg   RetryConfig
}

// WithRetry wraps a Repository with the retry policy.
func WithRetry(r deck.Repository, cfg RetryConfig) deck.Repository {
	return &retryRepository{inner: r, cfg: cfg}
}

func retry[T any](ctx context.Context, cfg RetryConfig, op func() (T, error)) (T, error) {
	var zero T
	var lastErr error
	for attempt := 0; attempt < cfg.MaxAttempts; attempt++ {
		v, err := op()
		if err == nil {
			return v, nil
		}
		lastErr = err

		if !retryable(err) {
			return zero, err
		}
		if attempt == cfg.MaxAttempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(cfg.Backoff):
		}
	}
	return zero, lastErr
}

// retryable reports whether an error is worth a second attempt.
func retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if errors.Is(err, deck.ErrDeckNotFound) || errors.Is(err, deck.ErrQuestionNotFound) {
		return false
	}
	var bad *ErrBadPayload
	if errors.As(err, &bad) {
		return false
	}
	return true
}

func (r *retryRepository) GetDeck(ctx context.Context, deckID string) (*deck.Deck, error) {
	return retry(ctx, r.cfg, func() (*deck.Deck, error) {
		return r.inner.GetDeck(ctx, deckID)
	})
}

func (r *retryRepository) StartOrFetchProgress(ctx context.Context, deckID string) (*deck.Progress, error) {
	return retry(ctx, r.cfg, func() (*deck.Progress, error) {
		return r.inner.StartOrFetchProgress(ctx, deckID)
	})
}

func (r *retryRepository) ListQuestions(ctx context.Context, deckID string) ([]deck.Question, error) {
	return retry(ctx, r.cfg, func() ([]deck.Question, error) {
		return r.inner.ListQuestions(ctx, deckID)
	})
}

func (r *retryRepository) ListReviewQuestions(ctx context.Context, deckID string, scope deck.ReviewScope) ([]deck.Question, error) {
	return retry(ctx, r.cfg, func() ([]deck.Question, error) {
		return r.inner.ListReviewQuestions(ctx, deckID, scope)
	})
}

func (r *retryRepository) SubmitAnswer(ctx context.Context, deckID, questionID, letter string, elapsedMs int) (*deck.SubmitResult, error) {
	return retry(ctx, r.cfg, func() (*deck.SubmitResult, error) {
		return r.inner.SubmitAnswer(ctx, deckID, questionID, letter, elapsedMs)
	})
}

func (r *retryRepository) ResetProgress(ctx context.Context, deckID string) error {
	_, err := retry(ctx, r.cfg, func() (struct{}, error) {
		return struct{}{}, r.inner.ResetProgress(ctx, deckID)
	})
	return err
}

func (r *retryRepository) RetakeWrong(ctx context.Context, deckID string) (*deck.Progress, error) {
	return retry(ctx, r.cfg, func() (*deck.Progress, error) {
		return r.inner.RetakeWrong(ctx, deckID)
	})
}
