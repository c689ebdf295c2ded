package store

import (
	"context"
	"fmt"

	"github.com/deckplay/deckplay/ent/sessionevent"
)

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetDeckID(data.DeckID).
		SetAction(data.Action).
		SetMode(data.Mode).
		SetScope(data.Scope).
		SetAnswered(data.Answered).
		SetCorrectAnswers(data.CorrectAnswers).
		SetDurationSecs(data.DurationSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

// finishedRuns counts session events with action "finish" per deck.
func (r *eventRepo) finishedRuns(ctx context.Context) (map[string]int, error) {
	events, err := r.client.SessionEvent.Query().
		Where(sessionevent.Action("finish")).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query finished runs: %w", err)
	}

	counts := make(map[string]int)
	for _, e := range events {
		counts[e.DeckID]++
	}
	return counts, nil
}
