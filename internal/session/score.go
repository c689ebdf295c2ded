package session

import (
	"math"

	"github.com/deckplay/deckplay/internal/deck"
)

// Summary holds the reduced statistics for one attempt.
type Summary struct {
	Total        int // questions answered
	Correct      int
	Percent      int // rounded accuracy percentage
	TotalTimeSec int
	AvgTimeSec   int // rounded, 0 when nothing answered
}

// Aggregate reduces an attempt into summary statistics. Server-reported
// counters win when the progress record carries any; otherwise the local
// answer records are reduced. Time statistics are always local — the
// server does not echo elapsed time back. Never divides by zero.
func Aggregate(p *deck.Progress, answers map[string]*AnswerRecord) Summary {
	var sum Summary

	if p != nil && p.Answered > 0 {
		sum.Total = p.Answered
		sum.Correct = p.Correct
	} else {
		for _, rec := range answers {
			sum.Total++
			if rec.Correct {
				sum.Correct++
			}
		}
	}

	if sum.Total > 0 {
		sum.Percent = int(math.Round(float64(sum.Correct) / float64(sum.Total) * 100))
	}

	timed := 0
	for _, rec := range answers {
		sum.TotalTimeSec += rec.Seconds()
		timed++
	}
	if timed > 0 {
		sum.AvgTimeSec = int(math.Round(float64(sum.TotalTimeSec) / float64(timed)))
	}
	return sum
}
