package summary

import (
	"context"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/deckplay/deckplay/internal/deck"
	"github.com/deckplay/deckplay/internal/deckapi"
	"github.com/deckplay/deckplay/internal/session"
)

func testController(t *testing.T) *session.Controller {
	t.Helper()

	mock := &deckapi.Mock{
		ListQuestionsFunc: func(ctx context.Context, deckID string) ([]deck.Question, error) {
			return []deck.Question{
				{
					ID:     "q1",
					Prompt: "2 + 2?",
					Options: []deck.Option{
						{Letter: "A", Text: "3"},
						{Letter: "B", Text: "4", Correct: true},
					},
					CorrectLetter: "B",
				},
				{
					ID:     "q2",
					Prompt: "Capital of France?",
					Options: []deck.Option{
						{Letter: "A", Text: "Paris", Correct: true},
						{Letter: "B", Text: "Lyon"},
					},
					CorrectLetter: "A",
				},
			}, nil
		},
	}

	ctrl := session.NewController(mock, "d1")
	if _, err := ctrl.Open(context.Background()); err != nil {
		t.Fatalf("open controller: %v", err)
	}
	return ctrl
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testController(t), 0)
	if s.Title() != "Run Summary" {
		t.Errorf("Title = %q, want %q", s.Title(), "Run Summary")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	ctrl := testController(t)
	if _, err := ctrl.Submit("q1", "4", 2*time.Second); err != nil {
		t.Fatalf("submit: %v", err)
	}

	s := New(ctrl, 0)
	view := s.View(80, 24)
	if view == "" {
		t.Error("expected non-empty summary view")
	}
}

func TestSummaryScreen_UnsyncedWarning(t *testing.T) {
	s := New(testController(t), 2)
	view := s.View(80, 24)
	if view == "" {
		t.Error("expected non-empty view with unsynced warning")
	}
}

func TestSummaryScreen_Navigation_Enter(t *testing.T) {
	s := New(testController(t), 0)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Error("expected a command on Enter (quit)")
	}
}

func TestSummaryScreen_Navigation_Esc(t *testing.T) {
	s := New(testController(t), 0)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Error("expected a command on Esc (quit)")
	}
}

func TestFormatSecs(t *testing.T) {
	tests := []struct {
		secs int
		want string
	}{
		{0, "0:00"},
		{59, "0:59"},
		{61, "1:01"},
		{600, "10:00"},
	}
	for _, tt := range tests {
		if got := formatSecs(tt.secs); got != tt.want {
			t.Errorf("formatSecs(%d) = %q, want %q", tt.secs, got, tt.want)
		}
	}
}
