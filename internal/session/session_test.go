package session

import (
	"errors"
	"testing"
	"time"

	"github.com/deckplay/deckplay/internal/deck"
)

func testQuestions() []deck.Question {
	return []deck.Question{
		{
			ID:     "q1",
			Prompt: "2 + 2?",
			Options: []deck.Option{
				{Letter: "A", Text: "3", Explanation: "One short."},
				{Letter: "B", Text: "4", Correct: true, Explanation: "Basic addition."},
			},
			CorrectLetter: "B",
		},
		{
			ID:     "q2",
			Prompt: "Capital of France?",
			Options: []deck.Option{
				{Letter: "A", Text: "Paris", Correct: true, Explanation: "Since 987."},
				{Letter: "B", Text: "Lyon", Explanation: "Second city."},
			},
			CorrectLetter: "A",
		},
		{
			ID:     "q3",
			Prompt: "Largest ocean?",
			Options: []deck.Option{
				{Letter: "A", Text: "Atlantic", Explanation: "Second largest."},
				{Letter: "B", Text: "Pacific", Correct: true, Explanation: "By far."},
			},
			CorrectLetter: "B",
		},
	}
}

func testSession() *Session {
	d := &deck.Deck{ID: "d1", Title: "Test Deck", Status: deck.StatusReady}
	return newSession("test-session", d, testQuestions(), false)
}

func TestSubmit_OptimisticRecord(t *testing.T) {
	s := testSession()

	rec, err := s.Submit("q1", "4", 2*time.Second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !rec.Correct {
		t.Error("expected a correct grading")
	}
	if rec.SelectedLetter != "B" {
		t.Errorf("SelectedLetter = %q, want B", rec.SelectedLetter)
	}
	if rec.CorrectLetter != "B" {
		t.Errorf("CorrectLetter = %q, want B", rec.CorrectLetter)
	}
	if rec.ElapsedMs != 2000 {
		t.Errorf("ElapsedMs = %d, want 2000", rec.ElapsedMs)
	}
	if rec.Explanation != "Basic addition." {
		t.Errorf("Explanation = %q", rec.Explanation)
	}
}

func TestSubmit_Idempotent(t *testing.T) {
	s := testSession()

	first, err := s.Submit("q1", "3", 2*time.Second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Re-selecting — even a different option — is a no-op.
	second, err := s.Submit("q1", "4", 9*time.Second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second != first {
		t.Error("second submit must return the existing record")
	}
	if second.ElapsedMs != 2000 {
		t.Errorf("elapsed changed to %d, want first-recorded 2000", second.ElapsedMs)
	}
	if len(s.Answers) != 1 {
		t.Errorf("%d records for one question, want 1", len(s.Answers))
	}
}

func TestSubmit_ReviewModeRejected(t *testing.T) {
	d := &deck.Deck{ID: "d1"}
	s := newSession("rev", d, testQuestions(), true)

	_, err := s.Submit("q1", "4", time.Second)
	if !errors.Is(err, ErrReviewMode) {
		t.Errorf("err = %v, want ErrReviewMode", err)
	}
	if len(s.Answers) != 0 {
		t.Error("review submit must not create a record")
	}
}

func TestSubmit_OptionMismatchFailsClosed(t *testing.T) {
	s := testSession()

	_, err := s.Submit("q1", "42", time.Second)
	if !errors.Is(err, ErrOptionMismatch) {
		t.Errorf("err = %v, want ErrOptionMismatch", err)
	}
	if s.Answered("q1") {
		t.Error("no record may exist after a failed option lookup")
	}
}

func TestSubmit_UnknownQuestion(t *testing.T) {
	s := testSession()
	_, err := s.Submit("q99", "4", time.Second)
	if !errors.Is(err, ErrUnknownQuestion) {
		t.Errorf("err = %v, want ErrUnknownQuestion", err)
	}
}

func TestSubmit_WhitespaceNormalizedMatch(t *testing.T) {
	s := testSession()
	rec, err := s.Submit("q2", "  Paris ", time.Second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !rec.Correct {
		t.Error("padded text must still match the option")
	}
}

func TestAdvance_FinishesPastLastQuestion(t *testing.T) {
	s := testSession()

	if !s.Advance() || !s.Advance() {
		t.Fatal("expected two advances within the deck")
	}
	if s.Advance() {
		t.Error("advancing past the last question must return false")
	}
	if !s.Finished {
		t.Error("session must be finished after advancing past the end")
	}
}

func TestRetreat(t *testing.T) {
	s := testSession()
	if s.Retreat() {
		t.Error("retreat at question 0 must fail")
	}
	s.Advance()
	if !s.Retreat() || s.Cursor != 0 {
		t.Errorf("cursor = %d after retreat, want 0", s.Cursor)
	}
}

func TestSubmitDoesNotAdvance(t *testing.T) {
	s := testSession()
	if _, err := s.Submit("q1", "4", time.Second); err != nil {
		t.Fatal(err)
	}
	if s.Cursor != 0 {
		t.Errorf("cursor moved to %d on submit; navigation is explicit", s.Cursor)
	}
}

func TestHydrationFromPriorAnswers(t *testing.T) {
	qs := testQuestions()
	qs[0].Prior = &deck.PriorAnswer{Letter: "B", Text: "4", Correct: true, ElapsedSec: 3}
	qs[1].Prior = &deck.PriorAnswer{Letter: "B", Text: "Lyon", Correct: false, ElapsedSec: 8}

	s := newSession("resume", &deck.Deck{ID: "d1"}, qs, false)

	if len(s.Answers) != 2 {
		t.Fatalf("%d hydrated records, want 2", len(s.Answers))
	}
	rec := s.Answers["q2"]
	if rec.Correct {
		t.Error("hydrated q2 must be incorrect")
	}
	if rec.Explanation != "Second city." {
		t.Errorf("hydrated explanation = %q", rec.Explanation)
	}
	if rec.Seconds() != 8 {
		t.Errorf("hydrated seconds = %d, want 8", rec.Seconds())
	}
}

func TestToggleExplainAll(t *testing.T) {
	s := testSession()
	if _, err := s.Submit("q1", "3", time.Second); err != nil {
		t.Fatal(err)
	}

	s.ToggleExplainAll("q1")
	if !s.Answers["q1"].ExplainAll {
		t.Error("expected ExplainAll true after toggle")
	}
	s.ToggleExplainAll("q1")
	if s.Answers["q1"].ExplainAll {
		t.Error("expected ExplainAll false after second toggle")
	}

	// Toggling an unanswered question is a no-op.
	s.ToggleExplainAll("q2")
	if s.Answered("q2") {
		t.Error("toggle must not create a record")
	}
}
