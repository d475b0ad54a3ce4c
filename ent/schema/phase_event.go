package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PhaseEvent records one accepted phase transition inside a lab session.
// This table is the durable sink for the controller's telemetry callback.
type PhaseEvent struct {
	ent.Schema
}

func (PhaseEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (PhaseEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a session"),
		field.String("game_id").
			NotEmpty().
			Comment("Mini-lab the session belongs to"),
		field.String("from_phase").
			NotEmpty().
			Comment("Phase being left"),
		field.String("to_phase").
			NotEmpty().
			Comment("Phase being entered"),
		field.Int64("ms_in_phase").
			Default(0).
			Comment("Milliseconds spent in from_phase"),
	}
}

func (PhaseEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("game_id"),
		index.Fields("from_phase"),
	}
}
