package entry

import (
	"context"
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/deckplay/deckplay/internal/deck"
	"github.com/deckplay/deckplay/internal/deckapi"
	"github.com/deckplay/deckplay/internal/router"
	"github.com/deckplay/deckplay/internal/screens/quiz"
	"github.com/deckplay/deckplay/internal/session"
)

func testQuestions() []deck.Question {
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
	}
}

// openEntry creates an entry screen and runs the open command synchronously.
func openEntry(t *testing.T, mock *deckapi.Mock) (*EntryScreen, tea.Cmd) {
	t.Helper()

	e := New(mock, "d1", nil, nil)
	msg := e.openCmd()()
	next, cmd := e.Update(msg)
	return next.(*EntryScreen), cmd
}

func TestEntry_FreshDeckEntersQuiz(t *testing.T) {
	mock := &deckapi.Mock{
		ListQuestionsFunc: func(ctx context.Context, deckID string) ([]deck.Question, error) {
			return testQuestions(), nil
		},
	}

	e, cmd := openEntry(t, mock)
	if e.hasMenu {
		t.Fatal("fresh deck should not show a menu")
	}
	if cmd == nil {
		t.Fatal("expected a screen transition command")
	}

	msg := cmd()
	rep, ok := msg.(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", msg)
	}
	if _, ok := rep.Screen.(*quiz.QuizScreen); !ok {
		t.Fatalf("expected quiz screen, got %T", rep.Screen)
	}
}

func TestEntry_InProgressShowsContinueMenu(t *testing.T) {
	mock := &deckapi.Mock{
		StartOrFetchProgressFunc: func(ctx context.Context, deckID string) (*deck.Progress, error) {
			return &deck.Progress{
				Status:            deck.ProgressInProgress,
				LastAnsweredIndex: 2,
				Answered:          3,
			}, nil
		},
	}

	e, _ := openEntry(t, mock)
	if !e.hasMenu {
		t.Fatal("expected decision menu for in-progress deck")
	}
	if got := len(e.menu.Items); got != 2 {
		t.Fatalf("menu items = %d, want 2", got)
	}
	if e.menu.Items[0].Label != "Continue" {
		t.Errorf("first item = %q, want Continue", e.menu.Items[0].Label)
	}
	if e.menu.Items[1].Label != "Start over" {
		t.Errorf("second item = %q, want Start over", e.menu.Items[1].Label)
	}
}

func TestEntry_CompletedShowsReviewMenu(t *testing.T) {
	mock := &deckapi.Mock{
		StartOrFetchProgressFunc: func(ctx context.Context, deckID string) (*deck.Progress, error) {
			return &deck.Progress{
				Status:   deck.ProgressCompleted,
				Answered: 5,
				Correct:  3,
			}, nil
		},
	}

	e, _ := openEntry(t, mock)
	if !e.hasMenu {
		t.Fatal("expected decision menu for completed deck")
	}
	if got := len(e.menu.Items); got != 4 {
		t.Fatalf("menu items = %d, want 4", got)
	}
	for _, item := range e.menu.Items {
		if item.Disabled {
			t.Errorf("item %q should be enabled with wrong answers present", item.Label)
		}
	}
}

func TestEntry_PerfectScoreDisablesRetake(t *testing.T) {
	mock := &deckapi.Mock{
		StartOrFetchProgressFunc: func(ctx context.Context, deckID string) (*deck.Progress, error) {
			return &deck.Progress{
				Status:   deck.ProgressCompleted,
				Answered: 5,
				Correct:  5,
			}, nil
		},
	}

	e, _ := openEntry(t, mock)
	found := false
	for _, item := range e.menu.Items {
		if item.Label == "Retake wrong answers" {
			found = true
			if !item.Disabled {
				t.Error("retake should be disabled when every answer was correct")
			}
		}
	}
	if !found {
		t.Fatal("retake item missing")
	}
}

func TestEntry_OpenErrorQuitsOnKey(t *testing.T) {
	mock := &deckapi.Mock{
		GetDeckFunc: func(ctx context.Context, deckID string) (*deck.Deck, error) {
			return nil, errors.New("server exploded")
		},
	}

	e, _ := openEntry(t, mock)
	if e.errMsg == "" {
		t.Fatal("expected error message after failed open")
	}

	_, cmd := e.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("key press on error screen should quit")
	}
}

func TestEntry_GeneratingStartsPoller(t *testing.T) {
	mock := &deckapi.Mock{
		GetDeckFunc: func(ctx context.Context, deckID string) (*deck.Deck, error) {
			return &deck.Deck{
				ID:            deckID,
				Title:         "WIP Deck",
				Status:        deck.StatusGenerating,
				QuestionCount: 3,
				TargetCount:   10,
			}, nil
		},
	}

	e, cmd := openEntry(t, mock)
	defer e.stopPoller()

	if e.poller == nil {
		t.Fatal("expected poller for generating deck")
	}
	if cmd == nil {
		t.Fatal("expected a wait command for poller updates")
	}

	view := e.View(80, 24)
	if view == "" {
		t.Error("generating view should not be empty")
	}
}

func TestEntry_ResolveContinueEntersQuiz(t *testing.T) {
	mock := &deckapi.Mock{
		StartOrFetchProgressFunc: func(ctx context.Context, deckID string) (*deck.Progress, error) {
			return &deck.Progress{
				Status:            deck.ProgressInProgress,
				LastAnsweredIndex: 0,
				Answered:          1,
			}, nil
		},
		ListQuestionsFunc: func(ctx context.Context, deckID string) ([]deck.Question, error) {
			return testQuestions(), nil
		},
	}

	e, _ := openEntry(t, mock)
	if _, err := e.ctrl.Resolve(context.Background(), session.ChoiceContinue); err != nil {
		t.Fatalf("resolve: %v", err)
	}

	next, cmd := e.Update(resolveDoneMsg{Choice: session.ChoiceContinue})
	e = next.(*EntryScreen)
	if cmd == nil {
		t.Fatal("expected a screen transition command")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Error("resolve should replace with the quiz screen")
	}
}

func TestEntry_ResolveErrorShowsMessage(t *testing.T) {
	mock := &deckapi.Mock{}

	e, _ := openEntry(t, mock)
	next, _ := e.Update(resolveDoneMsg{Choice: session.ChoiceContinue, Err: errors.New("boom")})
	e = next.(*EntryScreen)
	if e.errMsg != "boom" {
		t.Errorf("errMsg = %q, want boom", e.errMsg)
	}
}
