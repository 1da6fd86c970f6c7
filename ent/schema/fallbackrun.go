package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// FallbackRun records a single fallback execution (resume or spawn) of a
// trigger job. Exactly one row per fallback execution; keyed by trigger_id.
type FallbackRun struct {
	ent.Schema
}

// Fields of the FallbackRun.
func (FallbackRun) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("trigger_id").
			Unique().
			Immutable(),
		field.String("workspace_id").
			Immutable(),
		field.Int("pid"),
		field.Enum("launch_mode").
			Values("resume", "spawn"),
		field.Enum("status").
			Values("running", "completed", "failed", "timed_out", "killed", "orphaned").
			Default("running"),
		field.Time("started_at").
			Default(time.Now).
			Immutable(),
		field.Time("deadline_at"),
		field.Time("ended_at").
			Optional().
			Nillable(),
		field.String("error_code").
			Optional().
			Nillable(),
	}
}

// Indexes of the FallbackRun.
func (FallbackRun) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workspace_id", "status"),
		index.Fields("status", "deadline_at"),
	}
}
