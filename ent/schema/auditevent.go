package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AuditEvent is the append-only audit trail. Audit writes never fail the
// caller; they are fire-and-forget but logged.
type AuditEvent struct {
	ent.Schema
}

// Fields of the AuditEvent.
func (AuditEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("audit_id").
			Unique().
			Immutable(),
		field.String("workspace_id").
			Immutable(),
		field.String("actor_agent_id").
			Optional().
			Nillable().
			Immutable(),
		field.String("actor_role").
			Optional().
			Nillable().
			Immutable(),
		field.String("operation").
			Immutable(),
		field.String("resource_type").
			Immutable(),
		field.String("resource_id").
			Immutable(),
		field.String("thread_id").
			Optional().
			Nillable().
			Immutable(),
		field.String("request_id").
			Optional().
			Nillable().
			Immutable(),
		field.Enum("result").
			Values("success", "rejected").
			Immutable(),
		field.JSON("payload", map[string]interface{}{}).
			Optional().
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the AuditEvent.
func (AuditEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workspace_id", "created_at"),
		index.Fields("thread_id"),
		index.Fields("request_id"),
	}
}
