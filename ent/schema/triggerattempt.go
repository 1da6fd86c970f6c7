package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TriggerAttempt is the append-only attempt log for a trigger job.
// attempt_no strictly increases per job; every job state transition is
// accompanied by exactly one attempt row.
type TriggerAttempt struct {
	ent.Schema
}

// Fields of the TriggerAttempt.
func (TriggerAttempt) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("attempt_id").
			Unique().
			Immutable(),
		field.String("trigger_id").
			Immutable(),
		field.Int("attempt_no").
			Min(1).
			Immutable(),
		field.String("attempt_result").
			Immutable(),
		field.String("error_code").
			Optional().
			Nillable().
			Immutable(),
		field.JSON("details", map[string]interface{}{}).
			Optional().
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the TriggerAttempt.
func (TriggerAttempt) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("job", TriggerJob.Type).
			Ref("trigger_attempts").
			Field("trigger_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the TriggerAttempt.
func (TriggerAttempt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("trigger_id", "attempt_no").
			Unique(),
		index.Fields("trigger_id", "created_at"),
	}
}
