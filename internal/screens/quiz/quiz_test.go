package quiz

import (
	"context"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/deckplay/deckplay/internal/deck"
	"github.com/deckplay/deckplay/internal/deckapi"
	"github.com/deckplay/deckplay/internal/session"
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
				{Letter: "A", Text: "Paris", Correct: true},
				{Letter: "B", Text: "Lyon"},
			},
			CorrectLetter: "A",
		},
	}
}

func testScreen(t *testing.T) (*QuizScreen, *deckapi.Mock) {
	t.Helper()

	mock := &deckapi.Mock{
		ListQuestionsFunc: func(ctx context.Context, deckID string) ([]deck.Question, error) {
			return testQuestions(), nil
		},
	}
	ctrl := session.NewController(mock, "d1")
	if _, err := ctrl.Open(context.Background()); err != nil {
		t.Fatalf("open controller: %v", err)
	}

	s := New(ctrl, nil)
	s.Init()
	return s, mock
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestQuiz_LetterKeyAnswers(t *testing.T) {
	s, _ := testScreen(t)

	_, cmd := s.Update(keyPress('b'))
	if cmd == nil {
		t.Fatal("expected a sync command after answering")
	}

	sess := s.ctrl.Session()
	rec := sess.Answers["q1"]
	if rec == nil {
		t.Fatal("expected an answer record for q1")
	}
	if !rec.Correct || rec.SelectedLetter != "B" {
		t.Errorf("record = %+v, want correct B", rec)
	}
	if tmr := s.timers["q1"]; tmr == nil || !tmr.Frozen() {
		t.Error("expected the question timer to freeze on submit")
	}
}

func TestQuiz_EnterSubmitsCursorOption(t *testing.T) {
	s, _ := testScreen(t)

	s.Update(keyPress('j')) // move cursor to B
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	rec := s.ctrl.Session().Answers["q1"]
	if rec == nil || rec.SelectedLetter != "B" {
		t.Fatalf("record = %+v, want selection B", rec)
	}
}

func TestQuiz_CannotAdvancePastUnanswered(t *testing.T) {
	s, _ := testScreen(t)

	s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	if got := s.ctrl.Session().Cursor; got != 0 {
		t.Errorf("cursor = %d, want 0 before answering", got)
	}

	s.Update(keyPress('a'))
	s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	if got := s.ctrl.Session().Cursor; got != 1 {
		t.Errorf("cursor = %d, want 1 after answering", got)
	}
}

func TestQuiz_SecondSubmitIsNoop(t *testing.T) {
	s, _ := testScreen(t)

	s.Update(keyPress('a'))
	first := s.ctrl.Session().Answers["q1"]

	s.Update(keyPress('b'))
	second := s.ctrl.Session().Answers["q1"]
	if second != first || second.SelectedLetter != "A" {
		t.Errorf("record changed on re-submit: %+v", second)
	}
}

func TestQuiz_ExplainAllToggle(t *testing.T) {
	s, _ := testScreen(t)

	// Ignored before an answer exists.
	s.Update(keyPress('e'))
	if rec := s.ctrl.Session().Answers["q1"]; rec != nil {
		t.Fatalf("unexpected record: %+v", rec)
	}

	s.Update(keyPress('a'))
	s.Update(keyPress('e'))
	rec := s.ctrl.Session().Answers["q1"]
	if rec == nil || !rec.ExplainAll {
		t.Errorf("record = %+v, want ExplainAll set", rec)
	}
}

func TestQuiz_FinishPastLastQuestion(t *testing.T) {
	s, _ := testScreen(t)

	s.Update(keyPress('b'))
	s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	s.Update(keyPress('a'))

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	if cmd == nil {
		t.Fatal("expected a finish command past the last question")
	}
	msg := cmd()
	if _, ok := msg.(finishMsg); !ok {
		t.Fatalf("msg = %T, want finishMsg", msg)
	}
	if !s.ctrl.Session().Finished {
		t.Error("expected session marked finished")
	}
}

func TestQuiz_SyncFailureCountsUnsynced(t *testing.T) {
	s, _ := testScreen(t)

	s.Update(syncDoneMsg{QuestionID: "q1", Err: context.DeadlineExceeded})
	if s.unsynced != 1 {
		t.Errorf("unsynced = %d, want 1", s.unsynced)
	}
	s.Update(syncDoneMsg{QuestionID: "q2"})
	if s.unsynced != 1 {
		t.Errorf("unsynced = %d after success, want 1", s.unsynced)
	}
}

func TestQuiz_SyncCmdSubmitsToServer(t *testing.T) {
	s, mock := testScreen(t)

	_, cmd := s.Update(keyPress('b'))
	msg := cmd()
	done, ok := msg.(syncDoneMsg)
	if !ok {
		t.Fatalf("msg = %T, want syncDoneMsg", msg)
	}
	if done.Err != nil {
		t.Fatalf("sync error: %v", done.Err)
	}
	if got := mock.Calls("SubmitAnswer"); got != 1 {
		t.Errorf("SubmitAnswer calls = %d, want 1", got)
	}
}

func TestQuiz_AwayTimeNotBilled(t *testing.T) {
	s, _ := testScreen(t)

	s.Update(keyPress('b'))                       // answer q1
	s.Update(tea.KeyPressMsg{Code: tea.KeyRight}) // to q2, clock starts
	s.Update(tea.KeyPressMsg{Code: tea.KeyLeft})  // back to q1's explanation

	if tmr := s.timers["q2"]; tmr == nil || tmr.Running() {
		t.Fatal("q2 clock should pause while q1 is on screen")
	}

	time.Sleep(200 * time.Millisecond) // dwell on the answered question

	s.Update(tea.KeyPressMsg{Code: tea.KeyRight}) // return to q2
	if tmr := s.timers["q2"]; tmr == nil || !tmr.Running() {
		t.Fatal("q2 clock should resume when it becomes current again")
	}
	s.Update(keyPress('a')) // answer immediately

	rec := s.ctrl.Session().Answers["q2"]
	if rec == nil {
		t.Fatal("expected an answer record for q2")
	}
	if rec.ElapsedMs >= 150 {
		t.Errorf("ElapsedMs = %d, time away from q2 was billed to it", rec.ElapsedMs)
	}
}

func TestQuiz_RetreatToUnansweredRearmsTick(t *testing.T) {
	s, _ := testScreen(t)
	sess := s.ctrl.Session()

	// Land on q2 with q1 still unanswered, as resume-with-gaps can.
	sess.Advance()
	s.ensureTimer(time.Now())

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	if cmd == nil {
		t.Fatal("expected a tick command for the running clock")
	}
	if tmr := s.timers["q1"]; tmr == nil || !tmr.Running() {
		t.Error("q1 clock should run once it becomes current")
	}
}

func TestQuiz_RetreatToAnsweredReturnsNoTick(t *testing.T) {
	s, _ := testScreen(t)

	s.Update(keyPress('b'))
	s.Update(tea.KeyPressMsg{Code: tea.KeyRight})

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	if cmd != nil {
		t.Error("a frozen clock needs no repaint ticks")
	}
}

func TestQuiz_ViewRendersStates(t *testing.T) {
	s, _ := testScreen(t)

	if view := s.View(80, 24); view == "" {
		t.Fatal("expected non-empty view before answering")
	}
	s.Update(keyPress('a')) // wrong answer
	if view := s.View(80, 24); view == "" {
		t.Fatal("expected non-empty view after answering")
	}
}
