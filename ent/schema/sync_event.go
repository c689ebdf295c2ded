package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SyncEvent records every mutating call against the deck service,
// including ones that failed after retry. Failed syncs never interrupt
// play, so this log is the only place they surface.
type SyncEvent struct {
	ent.Schema
}

func (SyncEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SyncEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("deck_id").
			NotEmpty().
			Comment("Deck the call was for"),
		field.String("op").
			NotEmpty().
			Comment("submit-answer, reset-progress, retake-wrong, start-or-fetch-progress"),
		field.Int64("latency_ms").
			Default(0).
			Comment("Wall-clock time for the call, retries included"),
		field.Bool("success").
			Comment("Whether the call eventually succeeded"),
		field.String("error_message").
			Default("").
			Comment("Final error if it did not"),
	}
}

func (SyncEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("deck_id"),
		index.Fields("op"),
		index.Fields("success"),
	}
}
