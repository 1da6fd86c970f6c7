package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Message holds the schema definition for the Message entity.
// Messages are append-only: once persisted they are never mutated or deleted.
// The (thread_id, seq) unique constraint is what makes the post_message
// compare-and-swap loop safe under concurrent writers.
type Message struct {
	ent.Schema
}

// Fields of the Message.
func (Message) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("message_id").
			Unique().
			Immutable(),
		field.String("thread_id").
			Immutable(),
		field.Int("schema_version").
			Min(1).
			Immutable(),
		field.Int("seq").
			Min(1).
			Immutable().
			Comment("Dense per-thread sequence: the Nth message has seq = N"),
		field.String("sender_agent_id").
			Immutable(),
		field.String("sender_session_id").
			Immutable(),
		field.Enum("kind").
			Values("chat", "event", "system"),
		field.Text("body"),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),
		field.String("in_reply_to").
			Optional().
			Nillable().
			Comment("Must reference an existing message in the same thread"),
		field.String("idempotency_key").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Message.
func (Message) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("thread", Thread.Type).
			Ref("messages").
			Field("thread_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Message.
func (Message) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("thread_id", "seq").
			Unique(),
		index.Fields("thread_id", "sender_agent_id", "idempotency_key").
			Unique().
			Annotations(entsql.IndexWhere("idempotency_key IS NOT NULL")),
		index.Fields("thread_id", "created_at"),
	}
}
