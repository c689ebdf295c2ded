// Package timer tracks per-question elapsed time. One timer is active at a
// time; it runs only while its question is current, pauses when the cursor
// moves away, and freezes the instant an answer is recorded. Internal
// resolution is sub-second, display granularity is whole seconds.
package timer

import "time"

// QuestionTimer measures time spent on a single question. Elapsed time
// accumulates across run segments so time spent away from the question is
// never billed to it.
type QuestionTimer struct {
	startedAt time.Time // zero while paused or frozen
	frozen    bool
	elapsed   time.Duration // accumulated over finished run segments
}

// Start begins (or resumes) timing from now. A running timer keeps its
// original segment; a frozen timer only ever reports its stored elapsed
// time.
func (t *QuestionTimer) Start(now time.Time) {
	if t.frozen || !t.startedAt.IsZero() {
		return
	}
	t.startedAt = now
}

// StartFrozen creates a timer that displays a persisted elapsed time and
// never runs. Used for review mode and resume over already-answered
// questions.
func StartFrozen(elapsedSec int) *QuestionTimer {
	return &QuestionTimer{
		frozen:  true,
		elapsed: time.Duration(elapsedSec) * time.Second,
	}
}

// Pause stops the clock without finalizing it, banking the current segment.
// Start resumes from the banked total. No-op on frozen or paused timers.
func (t *QuestionTimer) Pause(now time.Time) {
	if t.frozen || t.startedAt.IsZero() {
		return
	}
	t.elapsed += now.Sub(t.startedAt)
	t.startedAt = time.Time{}
}

// Freeze stops the timer permanently, storing the elapsed duration.
// Idempotent.
func (t *QuestionTimer) Freeze(now time.Time) {
	if t.frozen {
		return
	}
	if !t.startedAt.IsZero() {
		t.elapsed += now.Sub(t.startedAt)
		t.startedAt = time.Time{}
	}
	t.frozen = true
}

// Frozen reports whether the timer has stopped for good.
func (t *QuestionTimer) Frozen() bool {
	return t.frozen
}

// Running reports whether the clock is currently accruing time.
func (t *QuestionTimer) Running() bool {
	return !t.frozen && !t.startedAt.IsZero()
}

// Elapsed returns the measured duration: banked segments plus the live one
// while running.
func (t *QuestionTimer) Elapsed(now time.Time) time.Duration {
	if t.startedAt.IsZero() {
		return t.elapsed
	}
	return t.elapsed + now.Sub(t.startedAt)
}

// Seconds returns the display value at second granularity.
func (t *QuestionTimer) Seconds(now time.Time) int {
	return int(t.Elapsed(now).Seconds())
}
