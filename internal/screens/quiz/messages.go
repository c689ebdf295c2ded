package quiz

import "time"

// timerTickMsg drives the visible per-question clock.
type timerTickMsg time.Time

// syncDoneMsg reports the outcome of a background answer sync.
type syncDoneMsg struct {
	QuestionID string
	Err        error
}

// finishMsg ends the run and transitions to the summary screen.
type finishMsg struct{}
