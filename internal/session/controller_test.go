package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/deckplay/deckplay/internal/deck"
)

// fakeRepo is a minimal scriptable repository for controller tests.
type fakeRepo struct {
	deck      *deck.Deck
	progress  *deck.Progress
	questions []deck.Question
	review    []deck.Question

	submitErr    error
	submitResult *deck.SubmitResult

	resetCalls  int
	submitCalls int
	retakeCalls int
}

func (f *fakeRepo) GetDeck(ctx context.Context, deckID string) (*deck.Deck, error) {
	if f.deck == nil {
		return nil, deck.ErrDeckNotFound
	}
	return f.deck, nil
}

func (f *fakeRepo) StartOrFetchProgress(ctx context.Context, deckID string) (*deck.Progress, error) {
	return f.progress, nil
}

func (f *fakeRepo) ListQuestions(ctx context.Context, deckID string) ([]deck.Question, error) {
	return f.questions, nil
}

func (f *fakeRepo) ListReviewQuestions(ctx context.Context, deckID string, scope deck.ReviewScope) ([]deck.Question, error) {
	return f.review, nil
}

func (f *fakeRepo) SubmitAnswer(ctx context.Context, deckID, questionID, letter string, elapsedMs int) (*deck.SubmitResult, error) {
	f.submitCalls++
	if f.submitErr != nil {
		return nil, f.submitErr
	}
	return f.submitResult, nil
}

func (f *fakeRepo) ResetProgress(ctx context.Context, deckID string) error {
	f.resetCalls++
	f.progress = &deck.Progress{Status: deck.ProgressNotStarted, Mode: deck.ModeFull}
	return nil
}

func (f *fakeRepo) RetakeWrong(ctx context.Context, deckID string) (*deck.Progress, error) {
	f.retakeCalls++
	return &deck.Progress{Status: deck.ProgressNotStarted, Mode: deck.ModeRetake}, nil
}

func readyRepo(status deck.ProgressStatus) *fakeRepo {
	return &fakeRepo{
		deck:      &deck.Deck{ID: "d1", Title: "Biology", QuestionCount: 3, Status: deck.StatusReady},
		progress:  &deck.Progress{Status: status},
		questions: testQuestions(),
	}
}

func TestOpen_FreshDeck(t *testing.T) {
	repo := readyRepo(deck.ProgressNotStarted)
	c := NewController(repo, "d1")

	state, err := c.Open(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state != EntryFresh {
		t.Fatalf("state = %d, want EntryFresh", state)
	}
	s := c.Session()
	if s == nil {
		t.Fatal("expected a hydrated session")
	}
	if s.Cursor != 0 {
		t.Errorf("cursor = %d, want 0", s.Cursor)
	}
	if len(s.Questions) != 3 {
		t.Errorf("%d questions loaded, want 3", len(s.Questions))
	}
}

func TestOpen_CompletedRequiresDecision(t *testing.T) {
	repo := readyRepo(deck.ProgressCompleted)
	c := NewController(repo, "d1")

	state, err := c.Open(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state != EntryDecisionRequired {
		t.Fatalf("state = %d, want EntryDecisionRequired", state)
	}
	// The controller must not auto-load questions before a choice is made.
	if c.Session() != nil {
		t.Error("no session may exist before the entry choice")
	}
}

func TestOpen_UnknownStatusFailsOpen(t *testing.T) {
	repo := readyRepo(deck.ProgressUnknown)
	c := NewController(repo, "d1")

	state, err := c.Open(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state != EntryFresh {
		t.Errorf("unrecognized status must proceed without a decision, got %d", state)
	}
}

func TestOpen_DeckNotFound(t *testing.T) {
	c := NewController(&fakeRepo{}, "missing")
	_, err := c.Open(context.Background())
	if !errors.Is(err, deck.ErrDeckNotFound) {
		t.Errorf("err = %v, want ErrDeckNotFound", err)
	}
}

func TestResolve_ContinuePositionsCursor(t *testing.T) {
	tests := []struct {
		name         string
		lastAnswered int
		wantCursor   int
	}{
		{"middle of deck", 0, 1},
		{"clamped at end", 2, 2},
		{"beyond end", 9, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := readyRepo(deck.ProgressInProgress)
			repo.progress.LastAnsweredIndex = tt.lastAnswered
			c := NewController(repo, "d1")
			if _, err := c.Open(context.Background()); err != nil {
				t.Fatal(err)
			}

			s, err := c.Resolve(context.Background(), ChoiceContinue)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if s.Cursor != tt.wantCursor {
				t.Errorf("cursor = %d, want %d", s.Cursor, tt.wantCursor)
			}
		})
	}
}

func TestResolve_ContinueHydratesPriorAnswers(t *testing.T) {
	repo := readyRepo(deck.ProgressInProgress)
	repo.questions[0].Prior = &deck.PriorAnswer{Letter: "B", Text: "4", Correct: true, ElapsedSec: 2}
	c := NewController(repo, "d1")
	if _, err := c.Open(context.Background()); err != nil {
		t.Fatal(err)
	}

	s, err := c.Resolve(context.Background(), ChoiceContinue)
	if err != nil {
		t.Fatal(err)
	}
	if !s.Answered("q1") {
		t.Error("expected q1 hydrated from its prior answer")
	}
}

func TestResolve_StartOverResets(t *testing.T) {
	repo := readyRepo(deck.ProgressCompleted)
	c := NewController(repo, "d1")
	if _, err := c.Open(context.Background()); err != nil {
		t.Fatal(err)
	}

	s, err := c.Resolve(context.Background(), ChoiceStartOver)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.resetCalls != 1 {
		t.Errorf("resetCalls = %d, want 1", repo.resetCalls)
	}
	if s.Cursor != 0 || s.Review {
		t.Error("start over must yield a fresh writable session at question 0")
	}
	if c.Progress().Status != deck.ProgressNotStarted {
		t.Errorf("cached progress status = %q, want not-started", c.Progress().Status)
	}
}

func TestResolve_ReviewIsReadOnlyAndNonMutating(t *testing.T) {
	repo := readyRepo(deck.ProgressCompleted)
	repo.progress.Answered = 3
	repo.progress.Correct = 2
	repo.review = []deck.Question{
		{
			ID: "q2",
			Options: []deck.Option{
				{Letter: "A", Text: "Paris", Correct: true},
				{Letter: "B", Text: "Lyon"},
			},
			CorrectLetter: "A",
			Prior:         &deck.PriorAnswer{Letter: "B", Text: "Lyon", Correct: false, ElapsedSec: 8},
		},
	}
	c := NewController(repo, "d1")
	if _, err := c.Open(context.Background()); err != nil {
		t.Fatal(err)
	}

	before := c.Summary()

	s, err := c.Resolve(context.Background(), ChoiceReviewWrong)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !s.Review || s.Scope != deck.ScopeWrong {
		t.Error("expected a read-only wrong-scoped session")
	}
	if s.Cursor != 0 {
		t.Errorf("review cursor = %d, want 0", s.Cursor)
	}
	if !s.Answered("q2") {
		t.Error("review session must hydrate the prior answer")
	}
	if repo.resetCalls != 0 || repo.submitCalls != 0 {
		t.Error("review must not mutate the progress record")
	}

	// The primary attempt's aggregate is unchanged by entering review.
	after := Aggregate(c.Progress(), nil)
	if after.Total != before.Total || after.Correct != before.Correct {
		t.Errorf("aggregate changed by review: %+v → %+v", before, after)
	}
}

func TestResolve_RetakeWrong(t *testing.T) {
	repo := readyRepo(deck.ProgressCompleted)
	c := NewController(repo, "d1")
	if _, err := c.Open(context.Background()); err != nil {
		t.Fatal(err)
	}

	s, err := c.Resolve(context.Background(), ChoiceRetakeWrong)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.retakeCalls != 1 {
		t.Errorf("retakeCalls = %d, want 1", repo.retakeCalls)
	}
	if s.Mode != deck.ModeRetake {
		t.Errorf("mode = %q, want retake-subset", s.Mode)
	}
	if s.Review {
		t.Error("retake session must be writable")
	}
}

func TestSyncAnswer_OverwritesCachedProgress(t *testing.T) {
	repo := readyRepo(deck.ProgressNotStarted)
	repo.submitResult = &deck.SubmitResult{
		Progress: &deck.Progress{Status: deck.ProgressInProgress, Answered: 1, Correct: 1, LastAnsweredIndex: 0},
	}
	c := NewController(repo, "d1")
	if _, err := c.Open(context.Background()); err != nil {
		t.Fatal(err)
	}

	if _, err := c.Submit("q1", "4", 2*time.Second); err != nil {
		t.Fatal(err)
	}
	if err := c.SyncAnswer(context.Background(), "q1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p := c.Progress()
	if p.Answered != 1 || p.Correct != 1 {
		t.Errorf("cached progress = %+v, want server counters", p)
	}
}

func TestSyncAnswer_FailureKeepsOptimisticRecord(t *testing.T) {
	repo := readyRepo(deck.ProgressNotStarted)
	repo.submitErr = errors.New("connection refused")
	c := NewController(repo, "d1")
	if _, err := c.Open(context.Background()); err != nil {
		t.Fatal(err)
	}

	rec, err := c.Submit("q1", "4", 2*time.Second)
	if err != nil {
		t.Fatal(err)
	}
	if err := c.SyncAnswer(context.Background(), "q1"); err == nil {
		t.Fatal("expected a sync error")
	}

	// Never roll back a shown grade.
	got := c.Session().Answers["q1"]
	if got != rec || !got.Correct {
		t.Error("optimistic record must survive a failed sync untouched")
	}
}

func TestSyncAnswer_UnknownQuestion(t *testing.T) {
	repo := readyRepo(deck.ProgressNotStarted)
	c := NewController(repo, "d1")
	if _, err := c.Open(context.Background()); err != nil {
		t.Fatal(err)
	}
	if err := c.SyncAnswer(context.Background(), "q9"); !errors.Is(err, ErrUnknownQuestion) {
		t.Errorf("err = %v, want ErrUnknownQuestion", err)
	}
}
