package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ParticipantCursor holds the per-(thread, agent) "last read" pointer.
// last_read_seq is monotone non-decreasing; regressions are rejected upstream.
type ParticipantCursor struct {
	ent.Schema
}

// Fields of the ParticipantCursor.
func (ParticipantCursor) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("cursor_id").
			Unique().
			Immutable(),
		field.String("thread_id").
			Immutable(),
		field.String("agent_id").
			Immutable(),
		field.Int("last_read_seq").
			Min(0).
			Default(0),
		field.String("last_acked_message_id").
			Optional().
			Nillable(),
		field.Time("updated_at").
			Default(time.Now),
	}
}

// Edges of the ParticipantCursor.
func (ParticipantCursor) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("thread", Thread.Type).
			Ref("cursors").
			Field("thread_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ParticipantCursor.
func (ParticipantCursor) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("thread_id", "agent_id").
			Unique(),
	}
}
