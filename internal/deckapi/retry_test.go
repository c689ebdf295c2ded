package deckapi

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/deckplay/deckplay/internal/deck"
	"github.com/deckplay/deckplay/internal/session"
)

func fastRetry() RetryConfig {
	return RetryConfig{MaxAttempts: 2, Backoff: time.Millisecond}
}

func TestRetry_TransientThenSuccess(t *testing.T) {
	attempts := 0
	mock := &Mock{
		SubmitAnswerFunc: func(ctx context.Context, deckID, questionID, letter string, elapsedMs int) (*deck.SubmitResult, error) {
			attempts++
			if attempts == 1 {
				return nil, &ErrUnavailable{Err: errors.New("timeout")}
			}
			return &deck.SubmitResult{Progress: &deck.Progress{Answered: 1}}, nil
		},
	}
	repo := WithRetry(mock, fastRetry())

	res, err := repo.SubmitAnswer(context.Background(), "d1", "q1", "B", 2000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Progress.Answered != 1 {
		t.Errorf("result came from the wrong attempt: %+v", res)
	}
	if attempts != 2 {
		t.Errorf("attempts = %d, want 2", attempts)
	}
}

func TestRetry_GivesUpAfterOneRetry(t *testing.T) {
	mock := &Mock{
		SubmitAnswerFunc: func(ctx context.Context, deckID, questionID, letter string, elapsedMs int) (*deck.SubmitResult, error) {
			return nil, &ErrUnavailable{Err: errors.New("down")}
		},
	}
	repo := WithRetry(mock, fastRetry())

	_, err := repo.SubmitAnswer(context.Background(), "d1", "q1", "B", 2000)
	var unavail *ErrUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("err = %v, want ErrUnavailable", err)
	}
	if got := mock.Calls("SubmitAnswer"); got != 2 {
		t.Errorf("calls = %d, want exactly 2 (one retry)", got)
	}
}

func TestRetry_NotFoundNeverRetried(t *testing.T) {
	mock := &Mock{
		GetDeckFunc: func(ctx context.Context, deckID string) (*deck.Deck, error) {
			return nil, deck.ErrDeckNotFound
		},
	}
	repo := WithRetry(mock, fastRetry())

	_, err := repo.GetDeck(context.Background(), "missing")
	if !errors.Is(err, deck.ErrDeckNotFound) {
		t.Fatalf("err = %v, want ErrDeckNotFound", err)
	}
	if got := mock.Calls("GetDeck"); got != 1 {
		t.Errorf("calls = %d, want 1 (terminal errors pass through)", got)
	}
}

func TestRetry_BadPayloadNeverRetried(t *testing.T) {
	mock := &Mock{
		ListQuestionsFunc: func(ctx context.Context, deckID string) ([]deck.Question, error) {
			return nil, &ErrBadPayload{Op: "list questions", Err: errors.New("two correct flags")}
		},
	}
	repo := WithRetry(mock, fastRetry())

	_, err := repo.ListQuestions(context.Background(), "d1")
	var bad *ErrBadPayload
	if !errors.As(err, &bad) {
		t.Fatalf("err = %v, want ErrBadPayload", err)
	}
	if got := mock.Calls("ListQuestions"); got != 1 {
		t.Errorf("calls = %d, want 1", got)
	}
}

func TestRetry_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	mock := &Mock{
		GetDeckFunc: func(ctx context.Context, deckID string) (*deck.Deck, error) {
			return nil, &ErrUnavailable{Err: errors.New("down")}
		},
	}
	repo := WithRetry(mock, RetryConfig{MaxAttempts: 2, Backoff: time.Minute})

	_, err := repo.GetDeck(ctx, "d1")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

// End-to-end reconciliation: the first submit attempt fails, the retry
// succeeds, and the controller's cached progress reflects the retry payload
// while the optimistic record is untouched throughout.
func TestRetry_SubmissionReconciliation(t *testing.T) {
	attempts := 0
	mock := &Mock{
		ListQuestionsFunc: func(ctx context.Context, deckID string) ([]deck.Question, error) {
			return []deck.Question{{
				ID:     "q1",
				Prompt: "2 + 2?",
				Options: []deck.Option{
					{Letter: "A", Text: "3"},
					{Letter: "B", Text: "4", Correct: true},
				},
				CorrectLetter: "B",
			}}, nil
		},
		SubmitAnswerFunc: func(ctx context.Context, deckID, questionID, letter string, elapsedMs int) (*deck.SubmitResult, error) {
			attempts++
			if attempts == 1 {
				return nil, &ErrUnavailable{Err: errors.New("flaky")}
			}
			return &deck.SubmitResult{
				Progress: &deck.Progress{Status: deck.ProgressInProgress, Answered: 1, Correct: 1},
			}, nil
		},
	}

	c := session.NewController(WithRetry(mock, fastRetry()), "d1")
	if _, err := c.Open(context.Background()); err != nil {
		t.Fatal(err)
	}

	rec, err := c.Submit("q1", "4", 2*time.Second)
	if err != nil {
		t.Fatal(err)
	}
	if err := c.SyncAnswer(context.Background(), "q1"); err != nil {
		t.Fatalf("sync should succeed via retry: %v", err)
	}

	if attempts != 2 {
		t.Errorf("attempts = %d, want 2", attempts)
	}
	if p := c.Progress(); p.Answered != 1 || p.Correct != 1 {
		t.Errorf("cached progress = %+v, want the retry's payload", p)
	}
	if got := c.Session().Answers["q1"]; got != rec || !got.Correct {
		t.Error("optimistic record must be untouched by reconciliation")
	}
}
