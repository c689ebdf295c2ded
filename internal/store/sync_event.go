package store

import (
	"context"
	"fmt"

	"github.com/deckplay/deckplay/ent"
	"github.com/deckplay/deckplay/ent/syncevent"
)

func (r *eventRepo) AppendSyncEvent(ctx context.Context, data SyncEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SyncEvent.Create().
		SetSequence(seqNum).
		SetDeckID(data.DeckID).
		SetOp(data.Op).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save sync event: %w", err)
	}
	return nil
}

func (r *eventRepo) QuerySyncEvents(ctx context.Context, opts QueryOpts) ([]SyncRecord, error) {
	q := r.client.SyncEvent.Query().
		Order(ent.Desc(syncevent.FieldSequence))
	if opts.DeckID != "" {
		q = q.Where(syncevent.DeckID(opts.DeckID))
	}
	if opts.After > 0 {
		q = q.Where(syncevent.SequenceGT(opts.After))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query sync events: %w", err)
	}

	records := make([]SyncRecord, 0, len(events))
	for _, e := range events {
		records = append(records, SyncRecord{
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			SyncEventData: SyncEventData{
				DeckID:       e.DeckID,
				Op:           e.Op,
				LatencyMs:    e.LatencyMs,
				Success:      e.Success,
				ErrorMessage: e.ErrorMessage,
			},
		})
	}
	return records, nil
}
