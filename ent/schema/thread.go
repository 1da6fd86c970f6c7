package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Thread holds the schema definition for the Thread entity.
// A thread is an ordered, workspace-scoped conversation between agents.
type Thread struct {
	ent.Schema
}

// Fields of the Thread.
func (Thread) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("thread_id").
			Unique().
			Immutable(),
		field.String("workspace_id").
			Immutable().
			Comment("Tenancy boundary; every access is checked against it"),
		field.String("title"),
		field.Enum("type").
			Values("conversation", "workflow", "incident"),
		field.Enum("status").
			Values("active", "blocked", "resolved", "closed").
			Default("active"),
		field.String("escalation_owner_agent_id").
			Optional().
			Nillable().
			Comment("Only set while status = blocked; must be a participant"),
		field.String("escalation_assigned_by_agent_id").
			Optional().
			Nillable(),
		field.Time("escalation_assigned_at").
			Optional().
			Nillable(),
		field.String("created_by").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now),
	}
}

// Edges of the Thread.
func (Thread) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("participants", ThreadParticipant.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("messages", Message.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("cursors", ParticipantCursor.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Thread.
func (Thread) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workspace_id"),
		index.Fields("workspace_id", "status"),
	}
}
