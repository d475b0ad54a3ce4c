package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records lab session lifecycle events (start/end).
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
			Comment("UUID grouping events in a session"),
		field.String("game_id").
			NotEmpty().
			Comment("Mini-lab the session ran"),
		field.String("action").
			NotEmpty().
			Comment("start or end"),
		field.Int("phases_completed").
			Default(0).
			Comment("Phases completed this session (on end only)"),
		field.Int("test_score_pct").
			Default(0).
			Comment("Test phase score percentage (on end only)"),
		field.Int("duration_secs").
			Default(0).
			Comment("Actual duration in seconds (on end only)"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("game_id"),
		index.Fields("action"),
	}
}
