package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records run lifecycle events (start/resume/finish/review).
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a run"),
		field.String("deck_id").
			NotEmpty().
			Comment("Deck the run was played against"),
		field.String("action").
			NotEmpty().
			Comment("start, resume, finish, or review"),
		field.String("mode").
			Default("").
			Comment("full or retake"),
		field.String("scope").
			Default("").
			Comment("wrong or all (review only)"),
		field.Int("answered").
			Default(0).
			Comment("Questions answered (on finish only)"),
		field.Int("correct_answers").
			Default(0).
			Comment("Correct answers (on finish only)"),
		field.Int("duration_secs").
			Default(0).
			Comment("Total answering time in seconds (on finish only)"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("deck_id"),
		index.Fields("action"),
	}
}
