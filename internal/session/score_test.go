package session

import (
	"testing"
	"time"

	"github.com/deckplay/deckplay/internal/deck"
)

func TestAggregate_EmptyNeverDividesByZero(t *testing.T) {
	sum := Aggregate(nil, nil)
	if sum.Total != 0 || sum.Correct != 0 {
		t.Errorf("counts = %d/%d, want 0/0", sum.Total, sum.Correct)
	}
	if sum.Percent != 0 {
		t.Errorf("Percent = %d, want 0", sum.Percent)
	}
	if sum.AvgTimeSec != 0 {
		t.Errorf("AvgTimeSec = %d, want 0", sum.AvgTimeSec)
	}
}

func TestAggregate_LocalReduction(t *testing.T) {
	// Three-question deck: q1 correct in 2s, q2 wrong in 5s, q3 skipped.
	s := testSession()
	if _, err := s.Submit("q1", "4", 2*time.Second); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Submit("q2", "Lyon", 5*time.Second); err != nil {
		t.Fatal(err)
	}

	sum := Aggregate(nil, s.Answers)
	if sum.Total != 2 {
		t.Errorf("Total = %d, want 2", sum.Total)
	}
	if sum.Correct != 1 {
		t.Errorf("Correct = %d, want 1", sum.Correct)
	}
	if sum.Percent != 50 {
		t.Errorf("Percent = %d, want 50", sum.Percent)
	}
	if sum.TotalTimeSec != 7 {
		t.Errorf("TotalTimeSec = %d, want 7", sum.TotalTimeSec)
	}
	if sum.AvgTimeSec != 4 {
		t.Errorf("AvgTimeSec = %d, want 4 (3.5 rounded)", sum.AvgTimeSec)
	}
}

func TestAggregate_PrefersServerCounters(t *testing.T) {
	s := testSession()
	if _, err := s.Submit("q1", "4", 2*time.Second); err != nil {
		t.Fatal(err)
	}

	// Server has seen more answers than this client (another device).
	p := &deck.Progress{Answered: 3, Correct: 2}
	sum := Aggregate(p, s.Answers)
	if sum.Total != 3 || sum.Correct != 2 {
		t.Errorf("counts = %d/%d, want server's 3/2", sum.Total, sum.Correct)
	}
	if sum.Percent != 67 {
		t.Errorf("Percent = %d, want 67", sum.Percent)
	}
	// Time stays local: the server does not echo elapsed time.
	if sum.TotalTimeSec != 2 {
		t.Errorf("TotalTimeSec = %d, want 2", sum.TotalTimeSec)
	}
}

func TestAggregate_EmptyProgressFallsBackToLocal(t *testing.T) {
	s := testSession()
	if _, err := s.Submit("q1", "3", 4*time.Second); err != nil {
		t.Fatal(err)
	}

	p := &deck.Progress{Status: deck.ProgressNotStarted}
	sum := Aggregate(p, s.Answers)
	if sum.Total != 1 || sum.Correct != 0 {
		t.Errorf("counts = %d/%d, want local 1/0", sum.Total, sum.Correct)
	}
}
