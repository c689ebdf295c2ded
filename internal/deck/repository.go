package deck

import "context"

// SubmitResult is the server response to an answer submission. Only the
// progress counters matter to the client; per-question correctness was
// already graded locally.
type SubmitResult struct {
	Progress *Progress
}

// Repository is the contract the engine requires from the deck service.
// Implementations are transport adapters; the engine never sees wire shapes.
type Repository interface {
	// GetDeck fetches deck metadata.
	GetDeck(ctx context.Context, deckID string) (*Deck, error)

	// StartOrFetchProgress returns the progress record for a deck, creating
	// a not-started one server-side if none exists.
	StartOrFetchProgress(ctx context.Context, deckID string) (*Progress, error)

	// ListQuestions returns the deck's full question set in display order.
	ListQuestions(ctx context.Context, deckID string) ([]Question, error)

	// ListReviewQuestions returns a read-only subset with prior answers
	// carried inline.
	ListReviewQuestions(ctx context.Context, deckID string, scope ReviewScope) ([]Question, error)

	// SubmitAnswer records an answer server-side and returns the refreshed
	// progress counters.
	SubmitAnswer(ctx context.Context, deckID, questionID, letter string, elapsedMs int) (*SubmitResult, error)

	// ResetProgress discards the progress record for a deck.
	ResetProgress(ctx context.Context, deckID string) error

	// RetakeWrong narrows the active question set to previously incorrect
	// items and returns the reset progress for the narrowed run.
	RetakeWrong(ctx context.Context, deckID string) (*Progress, error)
}
