package deckapi

import (
	"context"
	"sync"

	"github.com/deckplay/deckplay/internal/deck"
)

// Mock is a scriptable in-memory Repository for tests. Unset function
// fields return zero values; call counts are tracked per operation.
type Mock struct {
	GetDeckFunc              func(ctx context.Context, deckID string) (*deck.Deck, error)
	StartOrFetchProgressFunc func(ctx context.Context, deckID string) (*deck.Progress, error)
	ListQuestionsFunc        func(ctx context.Context, deckID string) ([]deck.Question, error)
	ListReviewQuestionsFunc  func(ctx context.Context, deckID string, scope deck.ReviewScope) ([]deck.Question, error)
	SubmitAnswerFunc         func(ctx context.Context, deckID, questionID, letter string, elapsedMs int) (*deck.SubmitResult, error)
	ResetProgressFunc        func(ctx context.Context, deckID string) error
	RetakeWrongFunc          func(ctx context.Context, deckID string) (*deck.Progress, error)

	mu    sync.Mutex
	calls map[string]int
}

var _ deck.Repository = (*Mock)(nil)

func (m *Mock) record(op string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.calls == nil {
		m.calls = make(map[string]int)
	}
	m.calls[op]++
}

// Calls returns the number of times the named operation was invoked.
func (m *Mock) Calls(op string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[op]
}

func (m *Mock) GetDeck(ctx context.Context, deckID string) (*deck.Deck, error) {
	m.record("GetDeck")
	if m.GetDeckFunc != nil {
		return m.GetDeckFunc(ctx, deckID)
	}
	return &deck.Deck{ID: deckID, Status: deck.StatusReady}, nil
}

func (m *Mock) StartOrFetchProgress(ctx context.Context, deckID string) (*deck.Progress, error) {
	m.record("StartOrFetchProgress")
	if m.StartOrFetchProgressFunc != nil {
		return m.StartOrFetchProgressFunc(ctx, deckID)
	}
	return &deck.Progress{Status: deck.ProgressNotStarted, Mode: deck.ModeFull}, nil
}

func (m *Mock) ListQuestions(ctx context.Context, deckID string) ([]deck.Question, error) {
	m.record("ListQuestions")
	if m.ListQuestionsFunc != nil {
		return m.ListQuestionsFunc(ctx, deckID)
	}
	return nil, nil
}

func (m *Mock) ListReviewQuestions(ctx context.Context, deckID string, scope deck.ReviewScope) ([]deck.Question, error) {
	m.record("ListReviewQuestions")
	if m.ListReviewQuestionsFunc != nil {
		return m.ListReviewQuestionsFunc(ctx, deckID, scope)
	}
	return nil, nil
}

func (m *Mock) SubmitAnswer(ctx context.Context, deckID, questionID, letter string, elapsedMs int) (*deck.SubmitResult, error) {
	m.record("SubmitAnswer")
	if m.SubmitAnswerFunc != nil {
		return m.SubmitAnswerFunc(ctx, deckID, questionID, letter, elapsedMs)
	}
	return &deck.SubmitResult{}, nil
}

func (m *Mock) ResetProgress(ctx context.Context, deckID string) error {
	m.record("ResetProgress")
	if m.ResetProgressFunc != nil {
		return m.ResetProgressFunc(ctx, deckID)
	}
	return nil
}

func (m *Mock) RetakeWrong(ctx context.Context, deckID string) (*deck.Progress, error) {
	m.record("RetakeWrong")
	if m.RetakeWrongFunc != nil {
		return m.RetakeWrongFunc(ctx, deckID)
	}
	return &deck.Progress{Status: deck.ProgressNotStarted, Mode: deck.ModeRetake}, nil
}
