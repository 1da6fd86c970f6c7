// Code generated by ent, DO NOT EDIT.

package message

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/agentfabric/bridge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Message {
	return predicate.Message(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Message {
	return predicate.Message(sql.FieldContainsFold(FieldID, id))
}

// ThreadID applies equality check predicate on the "thread_id" field. It's identical to ThreadIDEQ.
func ThreadID(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldThreadID, v))
}

// SchemaVersion applies equality check predicate on the "schema_version" field. It's identical to SchemaVersionEQ.
func SchemaVersion(v int) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldSchemaVersion, v))
}

// Seq applies equality check predicate on the "seq" field. It's identical to SeqEQ.
func Seq(v int) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldSeq, v))
}

// SenderAgentID applies equality check predicate on the "sender_agent_id" field. It's identical to SenderAgentIDEQ.
func SenderAgentID(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldSenderAgentID, v))
}

// SenderSessionID applies equality check predicate on the "sender_session_id" field. It's identical to SenderSessionIDEQ.
func SenderSessionID(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldSenderSessionID, v))
}

// Body applies equality check predicate on the "body" field. It's identical to BodyEQ.
func Body(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldBody, v))
}

// InReplyTo applies equality check predicate on the "in_reply_to" field. It's identical to InReplyToEQ.
func InReplyTo(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldInReplyTo, v))
}

// IdempotencyKey applies equality check predicate on the "idempotency_key" field. It's identical to IdempotencyKeyEQ.
func IdempotencyKey(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldIdempotencyKey, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldCreatedAt, v))
}

// ThreadIDEQ applies the EQ predicate on the "thread_id" field.
func ThreadIDEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldThreadID, v))
}

// ThreadIDNEQ applies the NEQ predicate on the "thread_id" field.
func ThreadIDNEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldThreadID, v))
}

// ThreadIDIn applies the In predicate on the "thread_id" field.
func ThreadIDIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldThreadID, vs...))
}

// ThreadIDNotIn applies the NotIn predicate on the "thread_id" field.
func ThreadIDNotIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldThreadID, vs...))
}

// ThreadIDGT applies the GT predicate on the "thread_id" field.
func ThreadIDGT(v string) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldThreadID, v))
}

// ThreadIDGTE applies the GTE predicate on the "thread_id" field.
func ThreadIDGTE(v string) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldThreadID, v))
}

// ThreadIDLT applies the LT predicate on the "thread_id" field.
func ThreadIDLT(v string) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldThreadID, v))
}

// ThreadIDLTE applies the LTE predicate on the "thread_id" field.
func ThreadIDLTE(v string) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldThreadID, v))
}

// ThreadIDContains applies the Contains predicate on the "thread_id" field.
func ThreadIDContains(v string) predicate.Message {
	return predicate.Message(sql.FieldContains(FieldThreadID, v))
}

// ThreadIDHasPrefix applies the HasPrefix predicate on the "thread_id" field.
func ThreadIDHasPrefix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasPrefix(FieldThreadID, v))
}

// ThreadIDHasSuffix applies the HasSuffix predicate on the "thread_id" field.
func ThreadIDHasSuffix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasSuffix(FieldThreadID, v))
}

// ThreadIDEqualFold applies the EqualFold predicate on the "thread_id" field.
func ThreadIDEqualFold(v string) predicate.Message {
	return predicate.Message(sql.FieldEqualFold(FieldThreadID, v))
}

// ThreadIDContainsFold applies the ContainsFold predicate on the "thread_id" field.
func ThreadIDContainsFold(v string) predicate.Message {
	return predicate.Message(sql.FieldContainsFold(FieldThreadID, v))
}

// SchemaVersionEQ applies the EQ predicate on the "schema_version" field.
func SchemaVersionEQ(v int) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldSchemaVersion, v))
}

// SchemaVersionNEQ applies the NEQ predicate on the "schema_version" field.
func SchemaVersionNEQ(v int) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldSchemaVersion, v))
}

// SchemaVersionIn applies the In predicate on the "schema_version" field.
func SchemaVersionIn(vs ...int) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldSchemaVersion, vs...))
}

// SchemaVersionNotIn applies the NotIn predicate on the "schema_version" field.
func SchemaVersionNotIn(vs ...int) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldSchemaVersion, vs...))
}

// SchemaVersionGT applies the GT predicate on the "schema_version" field.
func SchemaVersionGT(v int) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldSchemaVersion, v))
}

// SchemaVersionGTE applies the GTE predicate on the "schema_version" field.
func SchemaVersionGTE(v int) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldSchemaVersion, v))
}

// SchemaVersionLT applies the LT predicate on the "schema_version" field.
func SchemaVersionLT(v int) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldSchemaVersion, v))
}

// SchemaVersionLTE applies the LTE predicate on the "schema_version" field.
func SchemaVersionLTE(v int) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldSchemaVersion, v))
}

// SeqEQ applies the EQ predicate on the "seq" field.
func SeqEQ(v int) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldSeq, v))
}

// SeqNEQ applies the NEQ predicate on the "seq" field.
func SeqNEQ(v int) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldSeq, v))
}

// SeqIn applies the In predicate on the "seq" field.
func SeqIn(vs ...int) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldSeq, vs...))
}

// SeqNotIn applies the NotIn predicate on the "seq" field.
func SeqNotIn(vs ...int) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldSeq, vs...))
}

// SeqGT applies the GT predicate on the "seq" field.
func SeqGT(v int) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldSeq, v))
}

// SeqGTE applies the GTE predicate on the "seq" field.
func SeqGTE(v int) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldSeq, v))
}

// SeqLT applies the LT predicate on the "seq" field.
func SeqLT(v int) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldSeq, v))
}

// SeqLTE applies the LTE predicate on the "seq" field.
func SeqLTE(v int) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldSeq, v))
}

// SenderAgentIDEQ applies the EQ predicate on the "sender_agent_id" field.
func SenderAgentIDEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldSenderAgentID, v))
}

// SenderAgentIDNEQ applies the NEQ predicate on the "sender_agent_id" field.
func SenderAgentIDNEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldSenderAgentID, v))
}

// SenderAgentIDIn applies the In predicate on the "sender_agent_id" field.
func SenderAgentIDIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldSenderAgentID, vs...))
}

// SenderAgentIDNotIn applies the NotIn predicate on the "sender_agent_id" field.
func SenderAgentIDNotIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldSenderAgentID, vs...))
}

// SenderAgentIDGT applies the GT predicate on the "sender_agent_id" field.
func SenderAgentIDGT(v string) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldSenderAgentID, v))
}

// SenderAgentIDGTE applies the GTE predicate on the "sender_agent_id" field.
func SenderAgentIDGTE(v string) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldSenderAgentID, v))
}

// SenderAgentIDLT applies the LT predicate on the "sender_agent_id" field.
func SenderAgentIDLT(v string) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldSenderAgentID, v))
}

// SenderAgentIDLTE applies the LTE predicate on the "sender_agent_id" field.
func SenderAgentIDLTE(v string) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldSenderAgentID, v))
}

// SenderAgentIDContains applies the Contains predicate on the "sender_agent_id" field.
func SenderAgentIDContains(v string) predicate.Message {
	return predicate.Message(sql.FieldContains(FieldSenderAgentID, v))
}

// SenderAgentIDHasPrefix applies the HasPrefix predicate on the "sender_agent_id" field.
func SenderAgentIDHasPrefix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasPrefix(FieldSenderAgentID, v))
}

// SenderAgentIDHasSuffix applies the HasSuffix predicate on the "sender_agent_id" field.
func SenderAgentIDHasSuffix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasSuffix(FieldSenderAgentID, v))
}

// SenderAgentIDEqualFold applies the EqualFold predicate on the "sender_agent_id" field.
func SenderAgentIDEqualFold(v string) predicate.Message {
	return predicate.Message(sql.FieldEqualFold(FieldSenderAgentID, v))
}

// SenderAgentIDContainsFold applies the ContainsFold predicate on the "sender_agent_id" field.
func SenderAgentIDContainsFold(v string) predicate.Message {
	return predicate.Message(sql.FieldContainsFold(FieldSenderAgentID, v))
}

// SenderSessionIDEQ applies the EQ predicate on the "sender_session_id" field.
func SenderSessionIDEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldSenderSessionID, v))
}

// SenderSessionIDNEQ applies the NEQ predicate on the "sender_session_id" field.
func SenderSessionIDNEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldSenderSessionID, v))
}

// SenderSessionIDIn applies the In predicate on the "sender_session_id" field.
func SenderSessionIDIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldSenderSessionID, vs...))
}

// SenderSessionIDNotIn applies the NotIn predicate on the "sender_session_id" field.
func SenderSessionIDNotIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldSenderSessionID, vs...))
}

// SenderSessionIDGT applies the GT predicate on the "sender_session_id" field.
func SenderSessionIDGT(v string) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldSenderSessionID, v))
}

// SenderSessionIDGTE applies the GTE predicate on the "sender_session_id" field.
func SenderSessionIDGTE(v string) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldSenderSessionID, v))
}

// SenderSessionIDLT applies the LT predicate on the "sender_session_id" field.
func SenderSessionIDLT(v string) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldSenderSessionID, v))
}

// SenderSessionIDLTE applies the LTE predicate on the "sender_session_id" field.
func SenderSessionIDLTE(v string) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldSenderSessionID, v))
}

// SenderSessionIDContains applies the Contains predicate on the "sender_session_id" field.
func SenderSessionIDContains(v string) predicate.Message {
	return predicate.Message(sql.FieldContains(FieldSenderSessionID, v))
}

// SenderSessionIDHasPrefix applies the HasPrefix predicate on the "sender_session_id" field.
func SenderSessionIDHasPrefix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasPrefix(FieldSenderSessionID, v))
}

// SenderSessionIDHasSuffix applies the HasSuffix predicate on the "sender_session_id" field.
func SenderSessionIDHasSuffix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasSuffix(FieldSenderSessionID, v))
}

// SenderSessionIDEqualFold applies the EqualFold predicate on the "sender_session_id" field.
func SenderSessionIDEqualFold(v string) predicate.Message {
	return predicate.Message(sql.FieldEqualFold(FieldSenderSessionID, v))
}

// SenderSessionIDContainsFold applies the ContainsFold predicate on the "sender_session_id" field.
func SenderSessionIDContainsFold(v string) predicate.Message {
	return predicate.Message(sql.FieldContainsFold(FieldSenderSessionID, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v Kind) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v Kind) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...Kind) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...Kind) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldKind, vs...))
}

// BodyEQ applies the EQ predicate on the "body" field.
func BodyEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldBody, v))
}

// BodyNEQ applies the NEQ predicate on the "body" field.
func BodyNEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldBody, v))
}

// BodyIn applies the In predicate on the "body" field.
func BodyIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldBody, vs...))
}

// BodyNotIn applies the NotIn predicate on the "body" field.
func BodyNotIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldBody, vs...))
}

// BodyGT applies the GT predicate on the "body" field.
func BodyGT(v string) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldBody, v))
}

// BodyGTE applies the GTE predicate on the "body" field.
func BodyGTE(v string) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldBody, v))
}

// BodyLT applies the LT predicate on the "body" field.
func BodyLT(v string) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldBody, v))
}

// BodyLTE applies the LTE predicate on the "body" field.
func BodyLTE(v string) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldBody, v))
}

// BodyContains applies the Contains predicate on the "body" field.
func BodyContains(v string) predicate.Message {
	return predicate.Message(sql.FieldContains(FieldBody, v))
}

// BodyHasPrefix applies the HasPrefix predicate on the "body" field.
func BodyHasPrefix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasPrefix(FieldBody, v))
}

// BodyHasSuffix applies the HasSuffix predicate on the "body" field.
func BodyHasSuffix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasSuffix(FieldBody, v))
}

// BodyEqualFold applies the EqualFold predicate on the "body" field.
func BodyEqualFold(v string) predicate.Message {
	return predicate.Message(sql.FieldEqualFold(FieldBody, v))
}

// BodyContainsFold applies the ContainsFold predicate on the "body" field.
func BodyContainsFold(v string) predicate.Message {
	return predicate.Message(sql.FieldContainsFold(FieldBody, v))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.Message {
	return predicate.Message(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.Message {
	return predicate.Message(sql.FieldNotNull(FieldMetadata))
}

// InReplyToEQ applies the EQ predicate on the "in_reply_to" field.
func InReplyToEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldInReplyTo, v))
}

// InReplyToNEQ applies the NEQ predicate on the "in_reply_to" field.
func InReplyToNEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldInReplyTo, v))
}

// InReplyToIn applies the In predicate on the "in_reply_to" field.
func InReplyToIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldInReplyTo, vs...))
}

// InReplyToNotIn applies the NotIn predicate on the "in_reply_to" field.
func InReplyToNotIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldInReplyTo, vs...))
}

// InReplyToGT applies the GT predicate on the "in_reply_to" field.
func InReplyToGT(v string) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldInReplyTo, v))
}

// InReplyToGTE applies the GTE predicate on the "in_reply_to" field.
func InReplyToGTE(v string) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldInReplyTo, v))
}

// InReplyToLT applies the LT predicate on the "in_reply_to" field.
func InReplyToLT(v string) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldInReplyTo, v))
}

// InReplyToLTE applies the LTE predicate on the "in_reply_to" field.
func InReplyToLTE(v string) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldInReplyTo, v))
}

// InReplyToContains applies the Contains predicate on the "in_reply_to" field.
func InReplyToContains(v string) predicate.Message {
	return predicate.Message(sql.FieldContains(FieldInReplyTo, v))
}

// InReplyToHasPrefix applies the HasPrefix predicate on the "in_reply_to" field.
func InReplyToHasPrefix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasPrefix(FieldInReplyTo, v))
}

// InReplyToHasSuffix applies the HasSuffix predicate on the "in_reply_to" field.
func InReplyToHasSuffix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasSuffix(FieldInReplyTo, v))
}

// InReplyToIsNil applies the IsNil predicate on the "in_reply_to" field.
func InReplyToIsNil() predicate.Message {
	return predicate.Message(sql.FieldIsNull(FieldInReplyTo))
}

// InReplyToNotNil applies the NotNil predicate on the "in_reply_to" field.
func InReplyToNotNil() predicate.Message {
	return predicate.Message(sql.FieldNotNull(FieldInReplyTo))
}

// InReplyToEqualFold applies the EqualFold predicate on the "in_reply_to" field.
func InReplyToEqualFold(v string) predicate.Message {
	return predicate.Message(sql.FieldEqualFold(FieldInReplyTo, v))
}

// InReplyToContainsFold applies the ContainsFold predicate on the "in_reply_to" field.
func InReplyToContainsFold(v string) predicate.Message {
	return predicate.Message(sql.FieldContainsFold(FieldInReplyTo, v))
}

// IdempotencyKeyEQ applies the EQ predicate on the "idempotency_key" field.
func IdempotencyKeyEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldIdempotencyKey, v))
}

// IdempotencyKeyNEQ applies the NEQ predicate on the "idempotency_key" field.
func IdempotencyKeyNEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldIdempotencyKey, v))
}

// IdempotencyKeyIn applies the In predicate on the "idempotency_key" field.
func IdempotencyKeyIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldIdempotencyKey, vs...))
}

// IdempotencyKeyNotIn applies the NotIn predicate on the "idempotency_key" field.
func IdempotencyKeyNotIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldIdempotencyKey, vs...))
}

// IdempotencyKeyGT applies the GT predicate on the "idempotency_key" field.
func IdempotencyKeyGT(v string) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldIdempotencyKey, v))
}

// IdempotencyKeyGTE applies the GTE predicate on the "idempotency_key" field.
func IdempotencyKeyGTE(v string) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldIdempotencyKey, v))
}

// IdempotencyKeyLT applies the LT predicate on the "idempotency_key" field.
func IdempotencyKeyLT(v string) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldIdempotencyKey, v))
}

// IdempotencyKeyLTE applies the LTE predicate on the "idempotency_key" field.
func IdempotencyKeyLTE(v string) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldIdempotencyKey, v))
}

// IdempotencyKeyContains applies the Contains predicate on the "idempotency_key" field.
func IdempotencyKeyContains(v string) predicate.Message {
	return predicate.Message(sql.FieldContains(FieldIdempotencyKey, v))
}

// IdempotencyKeyHasPrefix applies the HasPrefix predicate on the "idempotency_key" field.
func IdempotencyKeyHasPrefix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasPrefix(FieldIdempotencyKey, v))
}

// IdempotencyKeyHasSuffix applies the HasSuffix predicate on the "idempotency_key" field.
func IdempotencyKeyHasSuffix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasSuffix(FieldIdempotencyKey, v))
}

// IdempotencyKeyIsNil applies the IsNil predicate on the "idempotency_key" field.
func IdempotencyKeyIsNil() predicate.Message {
	return predicate.Message(sql.FieldIsNull(FieldIdempotencyKey))
}

// IdempotencyKeyNotNil applies the NotNil predicate on the "idempotency_key" field.
func IdempotencyKeyNotNil() predicate.Message {
	return predicate.Message(sql.FieldNotNull(FieldIdempotencyKey))
}

// IdempotencyKeyEqualFold applies the EqualFold predicate on the "idempotency_key" field.
func IdempotencyKeyEqualFold(v string) predicate.Message {
	return predicate.Message(sql.FieldEqualFold(FieldIdempotencyKey, v))
}

// IdempotencyKeyContainsFold applies the ContainsFold predicate on the "idempotency_key" field.
func IdempotencyKeyContainsFold(v string) predicate.Message {
	return predicate.Message(sql.FieldContainsFold(FieldIdempotencyKey, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldCreatedAt, v))
}

// HasThread applies the HasEdge predicate on the "thread" edge.
func HasThread() predicate.Message {
	return predicate.Message(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ThreadTable, ThreadColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasThreadWith applies the HasEdge predicate on the "thread" edge with a given conditions (other predicates).
func HasThreadWith(preds ...predicate.Thread) predicate.Message {
	return predicate.Message(func(s *sql.Selector) {
		step := newThreadStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Message) predicate.Message {
	return predicate.Message(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Message) predicate.Message {
	return predicate.Message(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Message) predicate.Message {
	return predicate.Message(sql.NotPredicates(p))
}
