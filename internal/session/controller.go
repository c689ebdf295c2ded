package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/deckplay/deckplay/internal/deck"
)

// EntryState is the result of opening a deck.
type EntryState int

const (
	// EntryFresh means no meaningful prior progress exists; a hydrated
	// session is available immediately.
	EntryFresh EntryState = iota

	// EntryDecisionRequired means prior progress exists (in-progress or
	// completed) and the controller is waiting for an explicit user choice.
	// No questions have been loaded.
	EntryDecisionRequired
)

// EntryChoice is the user's answer to an entry decision.
type EntryChoice int

const (
	ChoiceContinue EntryChoice = iota
	ChoiceStartOver
	ChoiceRestart
	ChoiceReviewWrong
	ChoiceReviewAll
	ChoiceRetakeWrong
)

// Controller resolves entry state for a deck and owns the active session.
// It is the only writer of the answer-record map (through Session.Submit)
// and the only component that talks to the repository.
type Controller struct {
	repo     deck.Repository
	deckID   string
	deck     *deck.Deck
	progress *deck.Progress
	session  *Session
}

// NewController creates a controller bound to one deck.
func NewController(repo deck.Repository, deckID string) *Controller {
	return &Controller{repo: repo, deckID: deckID}
}

// Deck returns cached deck metadata (nil before Open).
func (c *Controller) Deck() *deck.Deck { return c.deck }

// Progress returns the cached progress record (nil before Open).
func (c *Controller) Progress() *deck.Progress { return c.progress }

// Session returns the active session, nil while an entry decision is pending.
func (c *Controller) Session() *Session { return c.session }

// Open resolves the entry state for the deck. With in-progress or completed
// prior progress it returns EntryDecisionRequired without loading questions;
// the caller must follow up with Resolve. Everything else, including an
// unrecognized progress status, proceeds as a fresh session.
func (c *Controller) Open(ctx context.Context) (EntryState, error) {
	d, err := c.repo.GetDeck(ctx, c.deckID)
	if err != nil {
		return 0, fmt.Errorf("get deck: %w", err)
	}
	c.deck = d

	p, err := c.repo.StartOrFetchProgress(ctx, c.deckID)
	if err != nil {
		return 0, fmt.Errorf("fetch progress: %w", err)
	}
	c.progress = p

	if p.NeedsEntryDecision() {
		return EntryDecisionRequired, nil
	}

	if err := c.loadFresh(ctx); err != nil {
		return 0, err
	}
	return EntryFresh, nil
}

// Resolve consumes the user's entry choice and transitions to a concrete
// session. Any prior session state is discarded.
func (c *Controller) Resolve(ctx context.Context, choice EntryChoice) (*Session, error) {
	c.session = nil

	switch choice {
	case ChoiceContinue:
		return c.resumeSession(ctx)

	case ChoiceStartOver, ChoiceRestart:
		if err := c.repo.ResetProgress(ctx, c.deckID); err != nil {
			return nil, fmt.Errorf("reset progress: %w", err)
		}
		c.progress = &deck.Progress{Status: deck.ProgressNotStarted, Mode: deck.ModeFull}
		if err := c.loadFresh(ctx); err != nil {
			return nil, err
		}
		return c.session, nil

	case ChoiceReviewWrong:
		return c.reviewSession(ctx, deck.ScopeWrong)

	case ChoiceReviewAll:
		return c.reviewSession(ctx, deck.ScopeAll)

	case ChoiceRetakeWrong:
		p, err := c.repo.RetakeWrong(ctx, c.deckID)
		if err != nil {
			return nil, fmt.Errorf("retake wrong: %w", err)
		}
		c.progress = p
		if err := c.loadFresh(ctx); err != nil {
			return nil, err
		}
		c.session.Mode = deck.ModeRetake
		return c.session, nil
	}

	return nil, fmt.Errorf("unknown entry choice %d", choice)
}

func (c *Controller) loadFresh(ctx context.Context) error {
	questions, err := c.repo.ListQuestions(ctx, c.deckID)
	if err != nil {
		return fmt.Errorf("list questions: %w", err)
	}
	c.session = newSession(uuid.New().String(), c.deck, questions, false)
	return nil
}

// resumeSession loads the full set and positions the cursor at the first
// unanswered question: min(lastAnsweredIndex+1, count-1).
func (c *Controller) resumeSession(ctx context.Context) (*Session, error) {
	questions, err := c.repo.ListQuestions(ctx, c.deckID)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	s := newSession(uuid.New().String(), c.deck, questions, false)
	if c.progress != nil && len(questions) > 0 {
		cursor := c.progress.LastAnsweredIndex + 1
		if cursor > len(questions)-1 {
			cursor = len(questions) - 1
		}
		if cursor < 0 {
			cursor = 0
		}
		s.Cursor = cursor
	}
	c.session = s
	return s, nil
}

// reviewSession loads a scoped, read-only question list. Review never
// mutates the progress record.
func (c *Controller) reviewSession(ctx context.Context, scope deck.ReviewScope) (*Session, error) {
	questions, err := c.repo.ListReviewQuestions(ctx, c.deckID, scope)
	if err != nil {
		return nil, fmt.Errorf("list review questions: %w", err)
	}
	s := newSession(uuid.New().String(), c.deck, questions, true)
	s.Scope = scope
	c.session = s
	return s, nil
}

// Submit runs the optimistic half of the answer pipeline against the active
// session. The caller is expected to follow up with SyncAnswer off the hot
// path; the returned record is already final for per-question correctness.
func (c *Controller) Submit(questionID, selectedText string, elapsed time.Duration) (*AnswerRecord, error) {
	if c.session == nil {
		return nil, fmt.Errorf("no active session")
	}
	return c.session.Submit(questionID, selectedText, elapsed)
}

// SyncAnswer reconciles one recorded answer with the server. On success the
// server's progress counters overwrite the local cache; per-question
// correctness shown to the user is never revisited. On failure the
// optimistic record stays intact and the error is returned for logging —
// an unsynced answer is a degraded state, not a fatal one. Retries are the
// repository adapter's concern.
func (c *Controller) SyncAnswer(ctx context.Context, questionID string) error {
	if c.session == nil {
		return fmt.Errorf("no active session")
	}
	rec, ok := c.session.Answers[questionID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownQuestion, questionID)
	}

	res, err := c.repo.SubmitAnswer(ctx, c.deckID, questionID, rec.SelectedLetter, rec.ElapsedMs)
	if err != nil {
		return fmt.Errorf("submit answer: %w", err)
	}
	if res != nil && res.Progress != nil {
		c.progress = res.Progress
	}
	return nil
}

// Summary aggregates the current attempt. Server counters are preferred
// when the cached progress carries any; elapsed-time statistics always come
// from local records.
func (c *Controller) Summary() Summary {
	var p *deck.Progress
	if c.session == nil || !c.session.Review {
		p = c.progress
	}
	var answers map[string]*AnswerRecord
	if c.session != nil {
		answers = c.session.Answers
	}
	return Aggregate(p, answers)
}
