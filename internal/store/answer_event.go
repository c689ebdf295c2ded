package store

import (
	"context"
	"fmt"
	"time"

	"github.com/deckplay/deckplay/ent"
	"github.com/deckplay/deckplay/ent/answerevent"
)

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetDeckID(data.DeckID).
		SetQuestionID(data.QuestionID).
		SetSelectedLetter(data.SelectedLetter).
		SetSelectedText(data.SelectedText).
		SetCorrectLetter(data.CorrectLetter).
		SetCorrect(data.Correct).
		SetTimeMs(data.TimeMs).
		SetMode(data.Mode).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) LastPlayed(ctx context.Context, deckID string) (time.Time, error) {
	ae, err := r.client.AnswerEvent.Query().
		Where(answerevent.DeckID(deckID)).
		Order(ent.Desc(answerevent.FieldTimestamp)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return time.Time{}, nil
		}
		return time.Time{}, fmt.Errorf("query last played: %w", err)
	}
	return ae.Timestamp, nil
}

func (r *eventRepo) StatsByDeck(ctx context.Context) ([]DeckStats, error) {
	answers, err := r.client.AnswerEvent.Query().
		Order(ent.Asc(answerevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query answer events: %w", err)
	}

	byDeck := make(map[string]*DeckStats)
	var order []string
	totalTime := make(map[string]int)
	for _, a := range answers {
		st, ok := byDeck[a.DeckID]
		if !ok {
			st = &DeckStats{DeckID: a.DeckID}
			byDeck[a.DeckID] = st
			order = append(order, a.DeckID)
		}
		st.Answered++
		if a.Correct {
			st.Correct++
		}
		totalTime[a.DeckID] += a.TimeMs
		if a.Timestamp.After(st.LastPlayed) {
			st.LastPlayed = a.Timestamp
		}
	}

	attempts, err := r.finishedRuns(ctx)
	if err != nil {
		return nil, err
	}

	stats := make([]DeckStats, 0, len(order))
	for _, id := range order {
		st := byDeck[id]
		if st.Answered > 0 {
			st.AvgTimeMs = totalTime[id] / st.Answered
		}
		st.Attempts = attempts[id]
		stats = append(stats, *st)
	}
	return stats, nil
}
