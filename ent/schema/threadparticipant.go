package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ThreadParticipant holds the schema definition for thread membership.
// Position preserves insertion order for get_thread responses.
type ThreadParticipant struct {
	ent.Schema
}

// Fields of the ThreadParticipant.
func (ThreadParticipant) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("participant_id").
			Unique().
			Immutable(),
		field.String("thread_id").
			Immutable(),
		field.String("agent_id").
			Immutable(),
		field.Int("position").
			Immutable().
			Comment("Insertion order within the thread"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the ThreadParticipant.
func (ThreadParticipant) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("thread", Thread.Type).
			Ref("participants").
			Field("thread_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ThreadParticipant.
func (ThreadParticipant) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("thread_id", "agent_id").
			Unique(),
	}
}
