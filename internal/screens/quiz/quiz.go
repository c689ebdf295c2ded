package quiz

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/deckplay/deckplay/internal/router"
	"github.com/deckplay/deckplay/internal/screen"
	"github.com/deckplay/deckplay/internal/screens/summary"
	"github.com/deckplay/deckplay/internal/session"
	"github.com/deckplay/deckplay/internal/store"
	"github.com/deckplay/deckplay/internal/timer"
	"github.com/deckplay/deckplay/internal/ui/layout"
)

// QuizScreen plays through the active session one question at a time.
// Submitting is optimistic: the local record is written and rendered
// immediately, the server sync runs as a background command and only
// flips a degraded-sync marker when it fails.
type QuizScreen struct {
	ctrl      *session.Controller
	eventRepo store.EventRepo

	timers   map[string]*timer.QuestionTimer
	cursor   int // option cursor for the current question
	unsynced int // answers whose background sync failed
	errMsg   string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a QuizScreen over a controller with a loaded session.
func New(ctrl *session.Controller, eventRepo store.EventRepo) *QuizScreen {
	return &QuizScreen{
		ctrl:      ctrl,
		eventRepo: eventRepo,
		timers:    make(map[string]*timer.QuestionTimer),
	}
}

func (s *QuizScreen) Init() tea.Cmd {
	s.ensureTimer(time.Now())
	return tickCmd()
}

func (s *QuizScreen) Title() string {
	sess := s.ctrl.Session()
	if sess == nil {
		return "Quiz"
	}
	if sess.Review {
		return "Review: " + sess.Deck.Title
	}
	return sess.Deck.Title
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	sess := s.ctrl.Session()
	if sess == nil {
		return nil
	}
	if sess.Review {
		return []layout.KeyHint{
			{Key: "←/→", Description: "Navigate"},
			{Key: "E", Description: "Explain all"},
			{Key: "Esc", Description: "Finish"},
		}
	}
	if s.currentAnswered() {
		return []layout.KeyHint{
			{Key: "→", Description: "Next"},
			{Key: "E", Description: "Explain all"},
			{Key: "Esc", Description: "End run"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑/↓ or A-E", Description: "Choose"},
		{Key: "Enter", Description: "Answer"},
		{Key: "Esc", Description: "End run"},
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		return s.handleTick()

	case syncDoneMsg:
		if msg.Err != nil {
			s.unsynced++
		}
		return s, nil

	case finishMsg:
		return s.handleFinish()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *QuizScreen) handleTick() (screen.Screen, tea.Cmd) {
	sess := s.ctrl.Session()
	if sess == nil || sess.Finished {
		return s, nil
	}
	// Only a running clock needs repaints.
	if t := s.currentTimer(); t != nil && t.Running() {
		return s, tickCmd()
	}
	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	sess := s.ctrl.Session()
	if sess == nil {
		return s, nil
	}

	key := msg.String()
	switch key {
	case "esc", "q":
		return s, func() tea.Msg { return finishMsg{} }

	case "left", "h":
		now := time.Now()
		out := s.currentTimer()
		if sess.Retreat() {
			if out != nil {
				out.Pause(now)
			}
			s.cursor = 0
			if t := s.ensureTimer(now); t != nil && t.Running() {
				return s, tickCmd()
			}
		}
		return s, nil

	case "right", "l":
		if !sess.Review && !s.currentAnswered() {
			return s, nil // answering is the only way forward
		}
		return s.advance()

	case "e":
		if q := sess.Current(); q != nil && sess.Answers[q.ID] != nil {
			sess.ToggleExplainAll(q.ID)
		}
		return s, nil

	case "enter":
		if sess.Review || s.currentAnswered() {
			return s.advance()
		}
		return s.submit(s.cursor)
	}

	if sess.Review || s.currentAnswered() {
		return s, nil
	}

	q := sess.Current()
	if q == nil {
		return s, nil
	}

	switch key {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(q.Options)-1 {
			s.cursor++
		}
	default:
		// Letter keys answer directly.
		for i := range q.Options {
			if key == lowerLetter(q.Options[i].Letter) {
				return s.submit(i)
			}
		}
	}
	return s, nil
}

// submit runs the optimistic pipeline for the option at index i and kicks
// off the background sync.
func (s *QuizScreen) submit(i int) (screen.Screen, tea.Cmd) {
	sess := s.ctrl.Session()
	q := sess.Current()
	if q == nil || i < 0 || i >= len(q.Options) {
		return s, nil
	}

	now := time.Now()
	t := s.ensureTimer(now)
	elapsed := t.Elapsed(now)
	t.Freeze(now)

	rec, err := s.ctrl.Submit(q.ID, q.Options[i].Text, elapsed)
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}

	if s.eventRepo != nil {
		_ = s.eventRepo.AppendAnswerEvent(context.Background(), store.AnswerEventData{
			SessionID:      sess.ID,
			DeckID:         sess.Deck.ID,
			QuestionID:     rec.QuestionID,
			SelectedLetter: rec.SelectedLetter,
			SelectedText:   rec.SelectedText,
			CorrectLetter:  rec.CorrectLetter,
			Correct:        rec.Correct,
			TimeMs:         rec.ElapsedMs,
			Mode:           string(sess.Mode),
		})
	}

	return s, s.syncCmd(rec.QuestionID)
}

// syncCmd reconciles one answer with the server off the Update loop.
func (s *QuizScreen) syncCmd(questionID string) tea.Cmd {
	return func() tea.Msg {
		err := s.ctrl.SyncAnswer(context.Background(), questionID)
		return syncDoneMsg{QuestionID: questionID, Err: err}
	}
}

// advance moves to the next question, or finishes past the last one.
func (s *QuizScreen) advance() (screen.Screen, tea.Cmd) {
	sess := s.ctrl.Session()
	now := time.Now()
	out := s.currentTimer()
	if !sess.Advance() {
		return s, func() tea.Msg { return finishMsg{} }
	}
	if out != nil {
		out.Pause(now)
	}
	s.cursor = 0
	s.ensureTimer(now)
	return s, tickCmd()
}

func (s *QuizScreen) handleFinish() (screen.Screen, tea.Cmd) {
	sess := s.ctrl.Session()
	if sess == nil {
		return s, tea.Quit
	}

	if s.eventRepo != nil && !sess.Review {
		sum := s.ctrl.Summary()
		_ = s.eventRepo.AppendSessionEvent(context.Background(), store.SessionEventData{
			SessionID:      sess.ID,
			DeckID:         sess.Deck.ID,
			Action:         "finish",
			Mode:           string(sess.Mode),
			Answered:       sum.Total,
			CorrectAnswers: sum.Correct,
			DurationSecs:   sum.TotalTimeSec,
		})
	}

	sc := summary.New(s.ctrl, s.unsynced)
	return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: sc} }
}

// ensureTimer returns the timer for the current question, creating it on
// first display. Answered questions get a frozen timer showing the recorded
// time; unanswered ones run only while current — the clock pauses on
// navigation away and resumes here.
func (s *QuizScreen) ensureTimer(now time.Time) *timer.QuestionTimer {
	sess := s.ctrl.Session()
	q := sess.Current()
	if q == nil {
		return nil
	}

	if t, ok := s.timers[q.ID]; ok {
		t.Start(now) // resume a paused clock; no-op when running or frozen
		return t
	}

	if rec := sess.Answers[q.ID]; rec != nil {
		t := timer.StartFrozen(rec.Seconds())
		s.timers[q.ID] = t
		return t
	}
	if sess.Review {
		// Review clocks never run, even without a recorded time.
		t := timer.StartFrozen(0)
		s.timers[q.ID] = t
		return t
	}

	t := &timer.QuestionTimer{}
	t.Start(now)
	s.timers[q.ID] = t
	return t
}

func (s *QuizScreen) currentTimer() *timer.QuestionTimer {
	q := s.ctrl.Session().Current()
	if q == nil {
		return nil
	}
	return s.timers[q.ID]
}

func (s *QuizScreen) currentAnswered() bool {
	sess := s.ctrl.Session()
	q := sess.Current()
	return q != nil && sess.Answers[q.ID] != nil
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}

func lowerLetter(letter string) string {
	if letter == "" {
		return ""
	}
	c := letter[0]
	if c >= 'A' && c <= 'Z' {
		c += 'a' - 'A'
	}
	return string(c)
}
