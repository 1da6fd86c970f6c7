package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TriggerJob holds the schema definition for a durable trigger job.
// The id is derived deterministically from the originating request id (or an
// auto-trigger fingerprint), so insert-or-do-nothing + re-read gives the
// idempotent replay path. All status transitions are CAS on the status column.
type TriggerJob struct {
	ent.Schema
}

// Fields of the TriggerJob.
func (TriggerJob) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("trigger_id").
			Unique().
			Immutable(),
		field.String("thread_id").
			Immutable(),
		field.String("workspace_id").
			Immutable(),
		field.String("target_agent_id").
			Immutable(),
		field.String("target_session_id").
			Optional().
			Nillable(),
		field.String("reason").
			Comment("Free-form; prefixes human_override: and coordinator_override: are reserved"),
		field.Text("prompt"),
		field.Enum("status").
			Values(
				"queued", "triggering", "deferred", "timeout", "failed",
				"fallback_resume", "fallback_spawn", "fallback_running",
				"callback_pending", "callback_retry",
				"callback_delivered", "callback_failed",
			).
			Default("queued"),
		field.Int("attempts").
			Default(0),
		field.Int("max_retries"),
		field.Time("next_retry_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now),
	}
}

// Edges of the TriggerJob.
func (TriggerJob) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("trigger_attempts", TriggerAttempt.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the TriggerJob.
func (TriggerJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workspace_id", "status"),
		index.Fields("status", "next_retry_at"),
		index.Fields("thread_id", "target_agent_id", "reason"),
		index.Fields("status", "updated_at"),
	}
}
