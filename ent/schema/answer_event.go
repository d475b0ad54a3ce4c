package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records a prediction or quiz answer.
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
			Comment("UUID grouping events in a session"),
		field.String("game_id").
			NotEmpty().
			Comment("Mini-lab the answer belongs to"),
		field.String("phase").
			NotEmpty().
			Comment("Phase the question was asked in (predict, twist_predict, test)"),
		field.String("question").
			NotEmpty().
			Comment("Question prompt as shown"),
		field.Int("selected").
			Comment("Option index the learner chose"),
		field.Bool("correct").
			Comment("Whether the chosen option was the answer"),
		field.Int64("ms_to_answer").
			Default(0).
			Comment("Milliseconds from display to selection"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("game_id"),
		index.Fields("phase"),
	}
}
