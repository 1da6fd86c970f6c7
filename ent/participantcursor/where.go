// Code generated by ent, DO NOT EDIT.

package participantcursor

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/agentfabric/bridge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ParticipantCursor {
	return predicate.ParticipantCursor(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ParticipantCursor {
	return predicate.ParticipantCursor(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ParticipantCursor {
	return predicate.ParticipantCursor(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ParticipantCursor {
	return predicate.ParticipantCursor(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ParticipantCursor {
	return predicate.ParticipantCursor(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ParticipantCursor {
	return predicate.ParticipantCursor(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ParticipantCursor {
	return predicate.ParticipantCursor(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ParticipantCursor {
	return predicate.ParticipantCursor(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ParticipantCursor {
	return predicate.ParticipantCursor(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ParticipantCursor {
	return predicate.ParticipantCursor(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ParticipantCursor {
	return predicate.ParticipantCursor(sql.FieldContainsFold(FieldID, id))
}

// ThreadID applies equality check predicate on the "thread_id" field. It's identical to ThreadIDEQ.
func ThreadID(v string) predicate.ParticipantCursor {
	return predicate.ParticipantCursor(sql.FieldEQ(FieldThreadID, v))
}

// AgentID applies equality check predicate on the "agent_id" field. It's identical to AgentIDEQ.
func AgentID(v string) predicate.ParticipantCursor {
	return predicate.ParticipantCursor(sql.FieldEQ(FieldAgentID, v))
}

// LastReadSeq applies equality check predicate on the "last_read_seq" field. It's identical to LastReadSeqEQ.
func LastReadSeq(v int) predicate.ParticipantCursor {
	return predicate.ParticipantCursor(sql.FieldEQ(FieldLastReadSeq, v))
}

// LastAckedMessageID applies equality check predicate on the "last_acked_message_id" field. It's identical to LastAckedMessageIDEQ.
func LastAckedMessageID(v string) predicate.ParticipantCursor {
	return predicate.ParticipantCursor(sql.FieldEQ(FieldLastAckedMessageID, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ParticipantCursor {
	return predicate.ParticipantCursor(sql.FieldEQ(FieldUpdatedAt, v))
}

// ThreadIDEQ applies the EQ predicate on the "thread_id" field.
func ThreadIDEQ(v string) predicate.ParticipantCursor {
	return predicate.ParticipantCursor(sql.FieldEQ(FieldThreadID, v))
}

// ThreadIDNEQ applies the NEQ predicate on the "thread_id" field.
func ThreadIDNEQ(v string) predicate.ParticipantCursor {
	return predicate.ParticipantCursor(sql.FieldNEQ(FieldThreadID, v))
}

// ThreadIDIn applies the In predicate on the "thread_id" field.
func ThreadIDIn(vs ...string) predicate.ParticipantCursor {
	return predicate.ParticipantCursor(sql.FieldIn(FieldThreadID, vs...))
}

// ThreadIDNotIn applies the NotIn predicate on the "thread_id" field.
func ThreadIDNotIn(vs ...string) predicate.ParticipantCursor {
	return predicate.ParticipantCursor(sql.FieldNotIn(FieldThreadID, vs...))
}

// ThreadIDGT applies the GT predicate on the "thread_id" field.
func ThreadIDGT(v string) predicate.ParticipantCursor {
	return predicate.ParticipantCursor(sql.FieldGT(FieldThreadID, v))
}

// ThreadIDGTE applies the GTE predicate on the "thread_id" field.
func ThreadIDGTE(v string) predicate.ParticipantCursor {
	return predicate.ParticipantCursor(sql.FieldGTE(FieldThreadID, v))
}

// ThreadIDLT applies the LT predicate on the "thread_id" field.
func ThreadIDLT(v string) predicate.ParticipantCursor {
	return predicate.ParticipantCursor(sql.FieldLT(FieldThreadID, v))
}

// ThreadIDLTE applies the LTE predicate on the "thread_id" field.
func ThreadIDLTE(v string) predicate.ParticipantCursor {
	return predicate.ParticipantCursor(sql.FieldLTE(FieldThreadID, v))
}

// ThreadIDContains applies the Contains predicate on the "thread_id" field.
func ThreadIDContains(v string) predicate.ParticipantCursor {
	return predicate.ParticipantCursor(sql.FieldContains(FieldThreadID, v))
}

// ThreadIDHasPrefix applies the HasPrefix predicate on the "thread_id" field.
func ThreadIDHasPrefix(v string) predicate.ParticipantCursor {
	return predicate.ParticipantCursor(sql.FieldHasPrefix(FieldThreadID, v))
}

// ThreadIDHasSuffix applies the HasSuffix predicate on the "thread_id" field.
func ThreadIDHasSuffix(v string) predicate.ParticipantCursor {
	return predicate.ParticipantCursor(sql.FieldHasSuffix(FieldThreadID, v))
}

// ThreadIDEqualFold applies the EqualFold predicate on the "thread_id" field.
func ThreadIDEqualFold(v string) predicate.ParticipantCursor {
	return predicate.ParticipantCursor(sql.FieldEqualFold(FieldThreadID, v))
}

// ThreadIDContainsFold applies the ContainsFold predicate on the "thread_id" field.
func ThreadIDContainsFold(v string) predicate.ParticipantCursor {
	return predicate.ParticipantCursor(sql.FieldContainsFold(FieldThreadID, v))
}

// AgentIDEQ applies the EQ predicate on the "agent_id" field.
func AgentIDEQ(v string) predicate.ParticipantCursor {
	return predicate.ParticipantCursor(sql.FieldEQ(FieldAgentID, v))
}

// AgentIDNEQ applies the NEQ predicate on the "agent_id" field.
func AgentIDNEQ(v string) predicate.ParticipantCursor {
	return predicate.ParticipantCursor(sql.FieldNEQ(FieldAgentID, v))
}

// AgentIDIn applies the In predicate on the "agent_id" field.
func AgentIDIn(vs ...string) predicate.ParticipantCursor {
	return predicate.ParticipantCursor(sql.FieldIn(FieldAgentID, vs...))
}

// AgentIDNotIn applies the NotIn predicate on the "agent_id" field.
func AgentIDNotIn(vs ...string) predicate.ParticipantCursor {
	return predicate.ParticipantCursor(sql.FieldNotIn(FieldAgentID, vs...))
}

// AgentIDGT applies the GT predicate on the "agent_id" field.
func AgentIDGT(v string) predicate.ParticipantCursor {
	return predicate.ParticipantCursor(sql.FieldGT(FieldAgentID, v))
}

// AgentIDGTE applies the GTE predicate on the "agent_id" field.
func AgentIDGTE(v string) predicate.ParticipantCursor {
	return predicate.ParticipantCursor(sql.FieldGTE(FieldAgentID, v))
}

// AgentIDLT applies the LT predicate on the "agent_id" field.
func AgentIDLT(v string) predicate.ParticipantCursor {
	return predicate.ParticipantCursor(sql.FieldLT(FieldAgentID, v))
}

// AgentIDLTE applies the LTE predicate on the "agent_id" field.
func AgentIDLTE(v string) predicate.ParticipantCursor {
	return predicate.ParticipantCursor(sql.FieldLTE(FieldAgentID, v))
}

// AgentIDContains applies the Contains predicate on the "agent_id" field.
func AgentIDContains(v string) predicate.ParticipantCursor {
	return predicate.ParticipantCursor(sql.FieldContains(FieldAgentID, v))
}

// AgentIDHasPrefix applies the HasPrefix predicate on the "agent_id" field.
func AgentIDHasPrefix(v string) predicate.ParticipantCursor {
	return predicate.ParticipantCursor(sql.FieldHasPrefix(FieldAgentID, v))
}

// AgentIDHasSuffix applies the HasSuffix predicate on the "agent_id" field.
func AgentIDHasSuffix(v string) predicate.ParticipantCursor {
	return predicate.ParticipantCursor(sql.FieldHasSuffix(FieldAgentID, v))
}

// AgentIDEqualFold applies the EqualFold predicate on the "agent_id" field.
func AgentIDEqualFold(v string) predicate.ParticipantCursor {
	return predicate.ParticipantCursor(sql.FieldEqualFold(FieldAgentID, v))
}

// AgentIDContainsFold applies the ContainsFold predicate on the "agent_id" field.
func AgentIDContainsFold(v string) predicate.ParticipantCursor {
	return predicate.ParticipantCursor(sql.FieldContainsFold(FieldAgentID, v))
}

// LastReadSeqEQ applies the EQ predicate on the "last_read_seq" field.
func LastReadSeqEQ(v int) predicate.ParticipantCursor {
	return predicate.ParticipantCursor(sql.FieldEQ(FieldLastReadSeq, v))
}

// LastReadSeqNEQ applies the NEQ predicate on the "last_read_seq" field.
func LastReadSeqNEQ(v int) predicate.ParticipantCursor {
	return predicate.ParticipantCursor(sql.FieldNEQ(FieldLastReadSeq, v))
}

// LastReadSeqIn applies the In predicate on the "last_read_seq" field.
func LastReadSeqIn(vs ...int) predicate.ParticipantCursor {
	return predicate.ParticipantCursor(sql.FieldIn(FieldLastReadSeq, vs...))
}

// LastReadSeqNotIn applies the NotIn predicate on the "last_read_seq" field.
func LastReadSeqNotIn(vs ...int) predicate.ParticipantCursor {
	return predicate.ParticipantCursor(sql.FieldNotIn(FieldLastReadSeq, vs...))
}

// LastReadSeqGT applies the GT predicate on the "last_read_seq" field.
func LastReadSeqGT(v int) predicate.ParticipantCursor {
	return predicate.ParticipantCursor(sql.FieldGT(FieldLastReadSeq, v))
}

// LastReadSeqGTE applies the GTE predicate on the "last_read_seq" field.
func LastReadSeqGTE(v int) predicate.ParticipantCursor {
	return predicate.ParticipantCursor(sql.FieldGTE(FieldLastReadSeq, v))
}

// LastReadSeqLT applies the LT predicate on the "last_read_seq" field.
func LastReadSeqLT(v int) predicate.ParticipantCursor {
	return predicate.ParticipantCursor(sql.FieldLT(FieldLastReadSeq, v))
}

// LastReadSeqLTE applies the LTE predicate on the "last_read_seq" field.
func LastReadSeqLTE(v int) predicate.ParticipantCursor {
	return predicate.ParticipantCursor(sql.FieldLTE(FieldLastReadSeq, v))
}

// LastAckedMessageIDEQ applies the EQ predicate on the "last_acked_message_id" field.
func LastAckedMessageIDEQ(v string) predicate.ParticipantCursor {
	return predicate.ParticipantCursor(sql.FieldEQ(FieldLastAckedMessageID, v))
}

// LastAckedMessageIDNEQ applies the NEQ predicate on the "last_acked_message_id" field.
func LastAckedMessageIDNEQ(v string) predicate.ParticipantCursor {
	return predicate.ParticipantCursor(sql.FieldNEQ(FieldLastAckedMessageID, v))
}

// LastAckedMessageIDIn applies the In predicate on the "last_acked_message_id" field.
func LastAckedMessageIDIn(vs ...string) predicate.ParticipantCursor {
	return predicate.ParticipantCursor(sql.FieldIn(FieldLastAckedMessageID, vs...))
}

// LastAckedMessageIDNotIn applies the NotIn predicate on the "last_acked_message_id" field.
func LastAckedMessageIDNotIn(vs ...string) predicate.ParticipantCursor {
	return predicate.ParticipantCursor(sql.FieldNotIn(FieldLastAckedMessageID, vs...))
}

// LastAckedMessageIDGT applies the GT predicate on the "last_acked_message_id" field.
func LastAckedMessageIDGT(v string) predicate.ParticipantCursor {
	return predicate.ParticipantCursor(sql.FieldGT(FieldLastAckedMessageID, v))
}

// LastAckedMessageIDGTE applies the GTE predicate on the "last_acked_message_id" field.
func LastAckedMessageIDGTE(v string) predicate.ParticipantCursor {
	return predicate.ParticipantCursor(sql.FieldGTE(FieldLastAckedMessageID, v))
}

// LastAckedMessageIDLT applies the LT predicate on the "last_acked_message_id" field.
func LastAckedMessageIDLT(v string) predicate.ParticipantCursor {
	return predicate.ParticipantCursor(sql.FieldLT(FieldLastAckedMessageID, v))
}

// LastAckedMessageIDLTE applies the LTE predicate on the "last_acked_message_id" field.
func LastAckedMessageIDLTE(v string) predicate.ParticipantCursor {
	return predicate.ParticipantCursor(sql.FieldLTE(FieldLastAckedMessageID, v))
}

// LastAckedMessageIDContains applies the Contains predicate on the "last_acked_message_id" field.
func LastAckedMessageIDContains(v string) predicate.ParticipantCursor {
	return predicate.ParticipantCursor(sql.FieldContains(FieldLastAckedMessageID, v))
}

// LastAckedMessageIDHasPrefix applies the HasPrefix predicate on the "last_acked_message_id" field.
func LastAckedMessageIDHasPrefix(v string) predicate.ParticipantCursor {
	return predicate.ParticipantCursor(sql.FieldHasPrefix(FieldLastAckedMessageID, v))
}

// LastAckedMessageIDHasSuffix applies the HasSuffix predicate on the "last_acked_message_id" field.
func LastAckedMessageIDHasSuffix(v string) predicate.ParticipantCursor {
	return predicate.ParticipantCursor(sql.FieldHasSuffix(FieldLastAckedMessageID, v))
}

// LastAckedMessageIDIsNil applies the IsNil predicate on the "last_acked_message_id" field.
func LastAckedMessageIDIsNil() predicate.ParticipantCursor {
	return predicate.ParticipantCursor(sql.FieldIsNull(FieldLastAckedMessageID))
}

// LastAckedMessageIDNotNil applies the NotNil predicate on the "last_acked_message_id" field.
func LastAckedMessageIDNotNil() predicate.ParticipantCursor {
	return predicate.ParticipantCursor(sql.FieldNotNull(FieldLastAckedMessageID))
}

// LastAckedMessageIDEqualFold applies the EqualFold predicate on the "last_acked_message_id" field.
func LastAckedMessageIDEqualFold(v string) predicate.ParticipantCursor {
	return predicate.ParticipantCursor(sql.FieldEqualFold(FieldLastAckedMessageID, v))
}

// LastAckedMessageIDContainsFold applies the ContainsFold predicate on the "last_acked_message_id" field.
func LastAckedMessageIDContainsFold(v string) predicate.ParticipantCursor {
	return predicate.ParticipantCursor(sql.FieldContainsFold(FieldLastAckedMessageID, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ParticipantCursor {
	return predicate.ParticipantCursor(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ParticipantCursor {
	return predicate.ParticipantCursor(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ParticipantCursor {
	return predicate.ParticipantCursor(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ParticipantCursor {
	return predicate.ParticipantCursor(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ParticipantCursor {
	return predicate.ParticipantCursor(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ParticipantCursor {
	return predicate.ParticipantCursor(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ParticipantCursor {
	return predicate.ParticipantCursor(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ParticipantCursor {
	return predicate.ParticipantCursor(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasThread applies the HasEdge predicate on the "thread" edge.
func HasThread() predicate.ParticipantCursor {
	return predicate.ParticipantCursor(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ThreadTable, ThreadColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasThreadWith applies the HasEdge predicate on the "thread" edge with a given conditions (other predicates).
func HasThreadWith(preds ...predicate.Thread) predicate.ParticipantCursor {
	return predicate.ParticipantCursor(func(s *sql.Selector) {
		step := newThreadStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ParticipantCursor) predicate.ParticipantCursor {
	return predicate.ParticipantCursor(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ParticipantCursor) predicate.ParticipantCursor {
	return predicate.ParticipantCursor(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ParticipantCursor) predicate.ParticipantCursor {
	return predicate.ParticipantCursor(sql.NotPredicates(p))
}
