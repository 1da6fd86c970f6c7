package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionRecord holds the runtime registry entry for an agent.
// Keyed by (agent_id, workspace_id); heartbeat upserts are last-writer-wins
// by last_heartbeat_at, so there is no row-level locking on this table.
type SessionRecord struct {
	ent.Schema
}

// Fields of the SessionRecord.
func (SessionRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("record_id").
			Unique().
			Immutable(),
		field.String("agent_id").
			Immutable(),
		field.String("workspace_id").
			Immutable(),
		field.String("session_id"),
		field.String("runtime").
			Comment("Opaque runtime locator, e.g. tmux:<target>"),
		field.Enum("management_mode").
			Values("managed", "unmanaged"),
		field.Bool("resumable").
			Default(false),
		field.Enum("status").
			Values("active", "idle", "offline"),
		field.Time("last_heartbeat_at"),
		field.Time("updated_at").
			Default(time.Now),
	}
}

// Indexes of the SessionRecord.
func (SessionRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("agent_id", "workspace_id").
			Unique(),
		index.Fields("workspace_id", "status"),
		index.Fields("workspace_id", "last_heartbeat_at"),
	}
}
