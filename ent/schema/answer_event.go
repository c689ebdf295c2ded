package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records a single answered question within a run.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to SessionEvent"),
		field.String("deck_id").
			NotEmpty().
			Comment("Deck the question belongs to"),
		field.String("question_id").
			NotEmpty().
			Comment("Server-side question identifier"),
		field.String("selected_letter").
			NotEmpty().
			Comment("Option letter the player picked"),
		field.String("selected_text").
			NotEmpty().
			Comment("Option text the player picked"),
		field.String("correct_letter").
			NotEmpty().
			Comment("Letter of the answer key"),
		field.Bool("correct").
			Comment("Whether the answer was correct"),
		field.Int("time_ms").
			Comment("Milliseconds spent on the question"),
		field.String("mode").
			NotEmpty().
			Comment("full or retake"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("deck_id"),
		index.Fields("correct"),
	}
}
