// Code generated by ent, DO NOT EDIT.

package triggerattempt

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/agentfabric/bridge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.TriggerAttempt {
	return predicate.TriggerAttempt(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.TriggerAttempt {
	return predicate.TriggerAttempt(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.TriggerAttempt {
	return predicate.TriggerAttempt(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.TriggerAttempt {
	return predicate.TriggerAttempt(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.TriggerAttempt {
	return predicate.TriggerAttempt(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.TriggerAttempt {
	return predicate.TriggerAttempt(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.TriggerAttempt {
	return predicate.TriggerAttempt(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.TriggerAttempt {
	return predicate.TriggerAttempt(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.TriggerAttempt {
	return predicate.TriggerAttempt(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.TriggerAttempt {
	return predicate.TriggerAttempt(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.TriggerAttempt {
	return predicate.TriggerAttempt(sql.FieldContainsFold(FieldID, id))
}

// TriggerID applies equality check predicate on the "trigger_id" field. It's identical to TriggerIDEQ.
func TriggerID(v string) predicate.TriggerAttempt {
	return predicate.TriggerAttempt(sql.FieldEQ(FieldTriggerID, v))
}

// AttemptNo applies equality check predicate on the "attempt_no" field. It's identical to AttemptNoEQ.
func AttemptNo(v int) predicate.TriggerAttempt {
	return predicate.TriggerAttempt(sql.FieldEQ(FieldAttemptNo, v))
}

// AttemptResult applies equality check predicate on the "attempt_result" field. It's identical to AttemptResultEQ.
func AttemptResult(v string) predicate.TriggerAttempt {
	return predicate.TriggerAttempt(sql.FieldEQ(FieldAttemptResult, v))
}

// ErrorCode applies equality check predicate on the "error_code" field. It's identical to ErrorCodeEQ.
func ErrorCode(v string) predicate.TriggerAttempt {
	return predicate.TriggerAttempt(sql.FieldEQ(FieldErrorCode, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TriggerAttempt {
	return predicate.TriggerAttempt(sql.FieldEQ(FieldCreatedAt, v))
}

// TriggerIDEQ applies the EQ predicate on the "trigger_id" field.
func TriggerIDEQ(v string) predicate.TriggerAttempt {
	return predicate.TriggerAttempt(sql.FieldEQ(FieldTriggerID, v))
}

// TriggerIDNEQ applies the NEQ predicate on the "trigger_id" field.
func TriggerIDNEQ(v string) predicate.TriggerAttempt {
	return predicate.TriggerAttempt(sql.FieldNEQ(FieldTriggerID, v))
}

// TriggerIDIn applies the In predicate on the "trigger_id" field.
func TriggerIDIn(vs ...string) predicate.TriggerAttempt {
	return predicate.TriggerAttempt(sql.FieldIn(FieldTriggerID, vs...))
}

// TriggerIDNotIn applies the NotIn predicate on the "trigger_id" field.
func TriggerIDNotIn(vs ...string) predicate.TriggerAttempt {
	return predicate.TriggerAttempt(sql.FieldNotIn(FieldTriggerID, vs...))
}

// TriggerIDGT applies the GT predicate on the "trigger_id" field.
func TriggerIDGT(v string) predicate.TriggerAttempt {
	return predicate.TriggerAttempt(sql.FieldGT(FieldTriggerID, v))
}

// TriggerIDGTE applies the GTE predicate on the "trigger_id" field.
func TriggerIDGTE(v string) predicate.TriggerAttempt {
	return predicate.TriggerAttempt(sql.FieldGTE(FieldTriggerID, v))
}

// TriggerIDLT applies the LT predicate on the "trigger_id" field.
func TriggerIDLT(v string) predicate.TriggerAttempt {
	return predicate.TriggerAttempt(sql.FieldLT(FieldTriggerID, v))
}

// TriggerIDLTE applies the LTE predicate on the "trigger_id" field.
func TriggerIDLTE(v string) predicate.TriggerAttempt {
	return predicate.TriggerAttempt(sql.FieldLTE(FieldTriggerID, v))
}

// TriggerIDContains applies the Contains predicate on the "trigger_id" field.
func TriggerIDContains(v string) predicate.TriggerAttempt {
	return predicate.TriggerAttempt(sql.FieldContains(FieldTriggerID, v))
}

// TriggerIDHasPrefix applies the HasPrefix predicate on the "trigger_id" field.
func TriggerIDHasPrefix(v string) predicate.TriggerAttempt {
	return predicate.TriggerAttempt(sql.FieldHasPrefix(FieldTriggerID, v))
}

// TriggerIDHasSuffix applies the HasSuffix predicate on the "trigger_id" field.
func TriggerIDHasSuffix(v string) predicate.TriggerAttempt {
	return predicate.TriggerAttempt(sql.FieldHasSuffix(FieldTriggerID, v))
}

// TriggerIDEqualFold applies the EqualFold predicate on the "trigger_id" field.
func TriggerIDEqualFold(v string) predicate.TriggerAttempt {
	return predicate.TriggerAttempt(sql.FieldEqualFold(FieldTriggerID, v))
}

// TriggerIDContainsFold applies the ContainsFold predicate on the "trigger_id" field.
func TriggerIDContainsFold(v string) predicate.TriggerAttempt {
	return predicate.TriggerAttempt(sql.FieldContainsFold(FieldTriggerID, v))
}

// AttemptNoEQ applies the EQ predicate on the "attempt_no" field.
func AttemptNoEQ(v int) predicate.TriggerAttempt {
	return predicate.TriggerAttempt(sql.FieldEQ(FieldAttemptNo, v))
}

// AttemptNoNEQ applies the NEQ predicate on the "attempt_no" field.
func AttemptNoNEQ(v int) predicate.TriggerAttempt {
	return predicate.TriggerAttempt(sql.FieldNEQ(FieldAttemptNo, v))
}

// AttemptNoIn applies the In predicate on the "attempt_no" field.
func AttemptNoIn(vs ...int) predicate.TriggerAttempt {
	return predicate.TriggerAttempt(sql.FieldIn(FieldAttemptNo, vs...))
}

// AttemptNoNotIn applies the NotIn predicate on the "attempt_no" field.
func AttemptNoNotIn(vs ...int) predicate.TriggerAttempt {
	return predicate.TriggerAttempt(sql.FieldNotIn(FieldAttemptNo, vs...))
}

// AttemptNoGT applies the GT predicate on the "attempt_no" field.
func AttemptNoGT(v int) predicate.TriggerAttempt {
	return predicate.TriggerAttempt(sql.FieldGT(FieldAttemptNo, v))
}

// AttemptNoGTE applies the GTE predicate on the "attempt_no" field.
func AttemptNoGTE(v int) predicate.TriggerAttempt {
	return predicate.TriggerAttempt(sql.FieldGTE(FieldAttemptNo, v))
}

// AttemptNoLT applies the LT predicate on the "attempt_no" field.
func AttemptNoLT(v int) predicate.TriggerAttempt {
	return predicate.TriggerAttempt(sql.FieldLT(FieldAttemptNo, v))
}

// AttemptNoLTE applies the LTE predicate on the "attempt_no" field.
func AttemptNoLTE(v int) predicate.TriggerAttempt {
	return predicate.TriggerAttempt(sql.FieldLTE(FieldAttemptNo, v))
}

// AttemptResultEQ applies the EQ predicate on the "attempt_result" field.
func AttemptResultEQ(v string) predicate.TriggerAttempt {
	return predicate.TriggerAttempt(sql.FieldEQ(FieldAttemptResult, v))
}

// AttemptResultNEQ applies the NEQ predicate on the "attempt_result" field.
func AttemptResultNEQ(v string) predicate.TriggerAttempt {
	return predicate.TriggerAttempt(sql.FieldNEQ(FieldAttemptResult, v))
}

// AttemptResultIn applies the In predicate on the "attempt_result" field.
func AttemptResultIn(vs ...string) predicate.TriggerAttempt {
	return predicate.TriggerAttempt(sql.FieldIn(FieldAttemptResult, vs...))
}

// AttemptResultNotIn applies the NotIn predicate on the "attempt_result" field.
func AttemptResultNotIn(vs ...string) predicate.TriggerAttempt {
	return predicate.TriggerAttempt(sql.FieldNotIn(FieldAttemptResult, vs...))
}

// AttemptResultGT applies the GT predicate on the "attempt_result" field.
func AttemptResultGT(v string) predicate.TriggerAttempt {
	return predicate.TriggerAttempt(sql.FieldGT(FieldAttemptResult, v))
}

// AttemptResultGTE applies the GTE predicate on the "attempt_result" field.
func AttemptResultGTE(v string) predicate.TriggerAttempt {
	return predicate.TriggerAttempt(sql.FieldGTE(FieldAttemptResult, v))
}

// AttemptResultLT applies the LT predicate on the "attempt_result" field.
func AttemptResultLT(v string) predicate.TriggerAttempt {
	return predicate.TriggerAttempt(sql.FieldLT(FieldAttemptResult, v))
}

// AttemptResultLTE applies the LTE predicate on the "attempt_result" field.
func AttemptResultLTE(v string) predicate.TriggerAttempt {
	return predicate.TriggerAttempt(sql.FieldLTE(FieldAttemptResult, v))
}

// AttemptResultContains applies the Contains predicate on the "attempt_result" field.
func AttemptResultContains(v string) predicate.TriggerAttempt {
	return predicate.TriggerAttempt(sql.FieldContains(FieldAttemptResult, v))
}

// AttemptResultHasPrefix applies the HasPrefix predicate on the "attempt_result" field.
func AttemptResultHasPrefix(v string) predicate.TriggerAttempt {
	return predicate.TriggerAttempt(sql.FieldHasPrefix(FieldAttemptResult, v))
}

// AttemptResultHasSuffix applies the HasSuffix predicate on the "attempt_result" field.
func AttemptResultHasSuffix(v string) predicate.TriggerAttempt {
	return predicate.TriggerAttempt(sql.FieldHasSuffix(FieldAttemptResult, v))
}

// AttemptResultEqualFold applies the EqualFold predicate on the "attempt_result" field.
func AttemptResultEqualFold(v string) predicate.TriggerAttempt {
	return predicate.TriggerAttempt(sql.FieldEqualFold(FieldAttemptResult, v))
}

// AttemptResultContainsFold applies the ContainsFold predicate on the "attempt_result" field.
func AttemptResultContainsFold(v string) predicate.TriggerAttempt {
	return predicate.TriggerAttempt(sql.FieldContainsFold(FieldAttemptResult, v))
}

// ErrorCodeEQ applies the EQ predicate on the "error_code" field.
func ErrorCodeEQ(v string) predicate.TriggerAttempt {
	return predicate.TriggerAttempt(sql.FieldEQ(FieldErrorCode, v))
}

// ErrorCodeNEQ applies the NEQ predicate on the "error_code" field.
func ErrorCodeNEQ(v string) predicate.TriggerAttempt {
	return predicate.TriggerAttempt(sql.FieldNEQ(FieldErrorCode, v))
}

// ErrorCodeIn applies the In predicate on the "error_code" field.
func ErrorCodeIn(vs ...string) predicate.TriggerAttempt {
	return predicate.TriggerAttempt(sql.FieldIn(FieldErrorCode, vs...))
}

// ErrorCodeNotIn applies the NotIn predicate on the "error_code" field.
func ErrorCodeNotIn(vs ...string) predicate.TriggerAttempt {
	return predicate.TriggerAttempt(sql.FieldNotIn(FieldErrorCode, vs...))
}

// ErrorCodeGT applies the GT predicate on the "error_code" field.
func ErrorCodeGT(v string) predicate.TriggerAttempt {
	return predicate.TriggerAttempt(sql.FieldGT(FieldErrorCode, v))
}

// ErrorCodeGTE applies the GTE predicate on the "error_code" field.
func ErrorCodeGTE(v string) predicate.TriggerAttempt {
	return predicate.TriggerAttempt(sql.FieldGTE(FieldErrorCode, v))
}

// ErrorCodeLT applies the LT predicate on the "error_code" field.
func ErrorCodeLT(v string) predicate.TriggerAttempt {
	return predicate.TriggerAttempt(sql.FieldLT(FieldErrorCode, v))
}

// ErrorCodeLTE applies the LTE predicate on the "error_code" field.
func ErrorCodeLTE(v string) predicate.TriggerAttempt {
	return predicate.TriggerAttempt(sql.FieldLTE(FieldErrorCode, v))
}

// ErrorCodeContains applies the Contains predicate on the "error_code" field.
func ErrorCodeContains(v string) predicate.TriggerAttempt {
	return predicate.TriggerAttempt(sql.FieldContains(FieldErrorCode, v))
}

// ErrorCodeHasPrefix applies the HasPrefix predicate on the "error_code" field.
func ErrorCodeHasPrefix(v string) predicate.TriggerAttempt {
	return predicate.TriggerAttempt(sql.FieldHasPrefix(FieldErrorCode, v))
}

// ErrorCodeHasSuffix applies the HasSuffix predicate on the "error_code" field.
func ErrorCodeHasSuffix(v string) predicate.TriggerAttempt {
	return predicate.TriggerAttempt(sql.FieldHasSuffix(FieldErrorCode, v))
}

// ErrorCodeIsNil applies the IsNil predicate on the "error_code" field.
func ErrorCodeIsNil() predicate.TriggerAttempt {
	return predicate.TriggerAttempt(sql.FieldIsNull(FieldErrorCode))
}

// ErrorCodeNotNil applies the NotNil predicate on the "error_code" field.
func ErrorCodeNotNil() predicate.TriggerAttempt {
	return predicate.TriggerAttempt(sql.FieldNotNull(FieldErrorCode))
}

// ErrorCodeEqualFold applies the EqualFold predicate on the "error_code" field.
func ErrorCodeEqualFold(v string) predicate.TriggerAttempt {
	return predicate.TriggerAttempt(sql.FieldEqualFold(FieldErrorCode, v))
}

// ErrorCodeContainsFold applies the ContainsFold predicate on the "error_code" field.
func ErrorCodeContainsFold(v string) predicate.TriggerAttempt {
	return predicate.TriggerAttempt(sql.FieldContainsFold(FieldErrorCode, v))
}

// DetailsIsNil applies the IsNil predicate on the "details" field.
func DetailsIsNil() predicate.TriggerAttempt {
	return predicate.TriggerAttempt(sql.FieldIsNull(FieldDetails))
}

// DetailsNotNil applies the NotNil predicate on the "details" field.
func DetailsNotNil() predicate.TriggerAttempt {
	return predicate.TriggerAttempt(sql.FieldNotNull(FieldDetails))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TriggerAttempt {
	return predicate.TriggerAttempt(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TriggerAttempt {
	return predicate.TriggerAttempt(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TriggerAttempt {
	return predicate.TriggerAttempt(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TriggerAttempt {
	return predicate.TriggerAttempt(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TriggerAttempt {
	return predicate.TriggerAttempt(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TriggerAttempt {
	return predicate.TriggerAttempt(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TriggerAttempt {
	return predicate.TriggerAttempt(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TriggerAttempt {
	return predicate.TriggerAttempt(sql.FieldLTE(FieldCreatedAt, v))
}

// HasJob applies the HasEdge predicate on the "job" edge.
func HasJob() predicate.TriggerAttempt {
	return predicate.TriggerAttempt(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, JobTable, JobColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobWith applies the HasEdge predicate on the "job" edge with a given conditions (other predicates).
func HasJobWith(preds ...predicate.TriggerJob) predicate.TriggerAttempt {
	return predicate.TriggerAttempt(func(s *sql.Selector) {
		step := newJobStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TriggerAttempt) predicate.TriggerAttempt {
	return predicate.TriggerAttempt(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TriggerAttempt) predicate.TriggerAttempt {
	return predicate.TriggerAttempt(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TriggerAttempt) predicate.TriggerAttempt {
	return predicate.TriggerAttempt(sql.NotPredicates(p))
}
