package timer

import (
	"testing"
	"time"
)

func TestElapsed_Running(t *testing.T) {
	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	qt := &QuestionTimer{}
	qt.Start(start)

	got := qt.Elapsed(start.Add(2500 * time.Millisecond))
	if got != 2500*time.Millisecond {
		t.Errorf("Elapsed = %v, want 2.5s", got)
	}
	if qt.Seconds(start.Add(2500*time.Millisecond)) != 2 {
		t.Error("Seconds should truncate to whole seconds")
	}
}

func TestFreeze_StopsTheClock(t *testing.T) {
	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	qt := &QuestionTimer{}
	qt.Start(start)
	qt.Freeze(start.Add(5 * time.Second))

	// Time keeps passing; the reading does not.
	if got := qt.Elapsed(start.Add(time.Hour)); got != 5*time.Second {
		t.Errorf("Elapsed after freeze = %v, want 5s", got)
	}
	if !qt.Frozen() {
		t.Error("expected Frozen after Freeze")
	}
}

func TestFreeze_Idempotent(t *testing.T) {
	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	qt := &QuestionTimer{}
	qt.Start(start)
	qt.Freeze(start.Add(3 * time.Second))
	qt.Freeze(start.Add(9 * time.Second))

	if got := qt.Elapsed(start.Add(9 * time.Second)); got != 3*time.Second {
		t.Errorf("second Freeze must not change the reading, got %v", got)
	}
}

func TestPause_BanksElapsedAcrossSegments(t *testing.T) {
	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	qt := &QuestionTimer{}
	qt.Start(start)

	// Run 2s, pause for a minute, resume for 3s.
	qt.Pause(start.Add(2 * time.Second))
	if qt.Running() {
		t.Error("timer should not run while paused")
	}
	if got := qt.Elapsed(start.Add(time.Minute)); got != 2*time.Second {
		t.Errorf("paused Elapsed = %v, want banked 2s", got)
	}

	resume := start.Add(time.Minute)
	qt.Start(resume)
	if got := qt.Elapsed(resume.Add(3 * time.Second)); got != 5*time.Second {
		t.Errorf("Elapsed after resume = %v, want 5s", got)
	}
}

func TestStart_RunningIsNoop(t *testing.T) {
	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	qt := &QuestionTimer{}
	qt.Start(start)

	// A second Start must not restart the live segment.
	qt.Start(start.Add(4 * time.Second))
	if got := qt.Elapsed(start.Add(5 * time.Second)); got != 5*time.Second {
		t.Errorf("Elapsed = %v, want 5s from the original start", got)
	}
}

func TestPause_FrozenIsNoop(t *testing.T) {
	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	qt := &QuestionTimer{}
	qt.Start(start)
	qt.Freeze(start.Add(3 * time.Second))

	qt.Pause(start.Add(10 * time.Second))
	if got := qt.Elapsed(start.Add(10 * time.Second)); got != 3*time.Second {
		t.Errorf("Pause changed a frozen reading, got %v", got)
	}
}

func TestStartFrozen_NeverRuns(t *testing.T) {
	qt := StartFrozen(42)
	now := time.Now()

	if got := qt.Seconds(now); got != 42 {
		t.Errorf("Seconds = %d, want persisted 42", got)
	}

	// Start on a frozen timer is a no-op.
	qt.Start(now)
	if got := qt.Seconds(now.Add(time.Minute)); got != 42 {
		t.Errorf("frozen timer started ticking, got %d", got)
	}
}
