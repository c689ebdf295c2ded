package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/deckplay/deckplay/internal/deck"
)

var (
	// ErrReviewMode rejects submissions while replaying answered questions.
	ErrReviewMode = errors.New("session is read-only")

	// ErrOptionMismatch means the selected display text matched no enriched
	// option. The submission fails closed: no record is created.
	ErrOptionMismatch = errors.New("selected text matches no option")

	// ErrUnknownQuestion means the question ID is not part of this session.
	ErrUnknownQuestion = errors.New("question not in session")
)

// Session is the ephemeral state for one deck-open. It owns the question
// cursor and the answer-record map; it is discarded on restart or when the
// user navigates away.
type Session struct {
	ID        string
	Deck      *deck.Deck
	Questions []deck.Question
	Cursor    int
	Answers   map[string]*AnswerRecord
	Review    bool
	Scope     deck.ReviewScope
	Mode      deck.RunMode
	Finished  bool
	StartedAt time.Time
}

// newSession builds a session over a loaded question set, hydrating answer
// records from any questions carrying an inline prior answer.
func newSession(id string, d *deck.Deck, questions []deck.Question, review bool) *Session {
	s := &Session{
		ID:        id,
		Deck:      d,
		Questions: questions,
		Answers:   make(map[string]*AnswerRecord),
		Review:    review,
		Mode:      deck.ModeFull,
		StartedAt: time.Now(),
	}
	for i := range questions {
		q := &questions[i]
		if q.Prior == nil {
			continue
		}
		rec := &AnswerRecord{
			QuestionID:     q.ID,
			SelectedLetter: q.Prior.Letter,
			SelectedText:   q.Prior.Text,
			Correct:        q.Prior.Correct,
			CorrectLetter:  q.CorrectLetter,
			ElapsedMs:      q.Prior.ElapsedSec * 1000,
		}
		if opt := q.OptionByLetter(q.Prior.Letter); opt != nil {
			rec.Explanation = opt.Explanation
		}
		s.Answers[q.ID] = rec
	}
	return s
}

// Current returns the question under the cursor, or nil for an empty set.
func (s *Session) Current() *deck.Question {
	if s.Cursor < 0 || s.Cursor >= len(s.Questions) {
		return nil
	}
	return &s.Questions[s.Cursor]
}

// Record returns the answer record for the current question, or nil.
func (s *Session) Record() *AnswerRecord {
	q := s.Current()
	if q == nil {
		return nil
	}
	return s.Answers[q.ID]
}

// Advance moves the cursor forward. Advancing past the last question marks
// the session finished and returns false. Navigation is always an explicit
// user action; submission never advances.
func (s *Session) Advance() bool {
	if s.Cursor >= len(s.Questions)-1 {
		s.Finished = true
		return false
	}
	s.Cursor++
	return true
}

// Retreat moves the cursor back one question if possible.
func (s *Session) Retreat() bool {
	if s.Cursor <= 0 {
		return false
	}
	s.Cursor--
	return true
}

// Answered reports whether a record exists for the question.
func (s *Session) Answered(questionID string) bool {
	_, ok := s.Answers[questionID]
	return ok
}

// AnsweredCount returns the number of recorded answers.
func (s *Session) AnsweredCount() int {
	return len(s.Answers)
}

// Submit performs the optimistic, synchronous half of the answer pipeline:
// it resolves the selected text against the question's enriched options and
// writes an AnswerRecord. It never touches the network. Submitting a second
// time for the same question is a no-op returning the existing record.
func (s *Session) Submit(questionID, selectedText string, elapsed time.Duration) (*AnswerRecord, error) {
	if s.Review {
		return nil, ErrReviewMode
	}
	if rec, ok := s.Answers[questionID]; ok {
		return rec, nil
	}

	q := s.question(questionID)
	if q == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownQuestion, questionID)
	}

	opt := q.MatchOption(selectedText)
	if opt == nil {
		return nil, fmt.Errorf("%w: %q on question %s", ErrOptionMismatch, selectedText, questionID)
	}

	rec := &AnswerRecord{
		QuestionID:     questionID,
		SelectedText:   opt.Text,
		SelectedLetter: opt.Letter,
		Correct:        opt.Correct,
		CorrectLetter:  q.CorrectLetter,
		Explanation:    opt.Explanation,
		ElapsedMs:      int(elapsed.Milliseconds()),
	}
	s.Answers[questionID] = rec
	return rec, nil
}

// ToggleExplainAll flips the explain-all display flag on an existing record.
func (s *Session) ToggleExplainAll(questionID string) {
	if rec, ok := s.Answers[questionID]; ok {
		rec.ExplainAll = !rec.ExplainAll
	}
}

func (s *Session) question(id string) *deck.Question {
	for i := range s.Questions {
		if s.Questions[i].ID == id {
			return &s.Questions[i]
		}
	}
	return nil
}
