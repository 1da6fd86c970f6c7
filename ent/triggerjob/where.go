// Code generated by ent, DO NOT EDIT.

package triggerjob

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/agentfabric/bridge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldContainsFold(FieldID, id))
}

// ThreadID applies equality check predicate on the "thread_id" field. It's identical to ThreadIDEQ.
func ThreadID(v string) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldEQ(FieldThreadID, v))
}

// WorkspaceID applies equality check predicate on the "workspace_id" field. It's identical to WorkspaceIDEQ.
func WorkspaceID(v string) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldEQ(FieldWorkspaceID, v))
}

// TargetAgentID applies equality check predicate on the "target_agent_id" field. It's identical to TargetAgentIDEQ.
func TargetAgentID(v string) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldEQ(FieldTargetAgentID, v))
}

// TargetSessionID applies equality check predicate on the "target_session_id" field. It's identical to TargetSessionIDEQ.
func TargetSessionID(v string) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldEQ(FieldTargetSessionID, v))
}

// Reason applies equality check predicate on the "reason" field. It's identical to ReasonEQ.
func Reason(v string) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldEQ(FieldReason, v))
}

// Prompt applies equality check predicate on the "prompt" field. It's identical to PromptEQ.
func Prompt(v string) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldEQ(FieldPrompt, v))
}

// Attempts applies equality check predicate on the "attempts" field. It's identical to AttemptsEQ.
func Attempts(v int) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldEQ(FieldAttempts, v))
}

// MaxRetries applies equality check predicate on the "max_retries" field. It's identical to MaxRetriesEQ.
func MaxRetries(v int) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldEQ(FieldMaxRetries, v))
}

// NextRetryAt applies equality check predicate on the "next_retry_at" field. It's identical to NextRetryAtEQ.
func NextRetryAt(v time.Time) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldEQ(FieldNextRetryAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldEQ(FieldUpdatedAt, v))
}

// ThreadIDEQ applies the EQ predicate on the "thread_id" field.
func ThreadIDEQ(v string) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldEQ(FieldThreadID, v))
}

// ThreadIDNEQ applies the NEQ predicate on the "thread_id" field.
func ThreadIDNEQ(v string) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldNEQ(FieldThreadID, v))
}

// ThreadIDIn applies the In predicate on the "thread_id" field.
func ThreadIDIn(vs ...string) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldIn(FieldThreadID, vs...))
}

// ThreadIDNotIn applies the NotIn predicate on the "thread_id" field.
func ThreadIDNotIn(vs ...string) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldNotIn(FieldThreadID, vs...))
}

// ThreadIDGT applies the GT predicate on the "thread_id" field.
func ThreadIDGT(v string) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldGT(FieldThreadID, v))
}

// ThreadIDGTE applies the GTE predicate on the "thread_id" field.
func ThreadIDGTE(v string) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldGTE(FieldThreadID, v))
}

// ThreadIDLT applies the LT predicate on the "thread_id" field.
func ThreadIDLT(v string) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldLT(FieldThreadID, v))
}

// ThreadIDLTE applies the LTE predicate on the "thread_id" field.
func ThreadIDLTE(v string) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldLTE(FieldThreadID, v))
}

// ThreadIDContains applies the Contains predicate on the "thread_id" field.
func ThreadIDContains(v string) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldContains(FieldThreadID, v))
}

// ThreadIDHasPrefix applies the HasPrefix predicate on the "thread_id" field.
func ThreadIDHasPrefix(v string) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldHasPrefix(FieldThreadID, v))
}

// ThreadIDHasSuffix applies the HasSuffix predicate on the "thread_id" field.
func ThreadIDHasSuffix(v string) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldHasSuffix(FieldThreadID, v))
}

// ThreadIDEqualFold applies the EqualFold predicate on the "thread_id" field.
func ThreadIDEqualFold(v string) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldEqualFold(FieldThreadID, v))
}

// ThreadIDContainsFold applies the ContainsFold predicate on the "thread_id" field.
func ThreadIDContainsFold(v string) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldContainsFold(FieldThreadID, v))
}

// WorkspaceIDEQ applies the EQ predicate on the "workspace_id" field.
func WorkspaceIDEQ(v string) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldEQ(FieldWorkspaceID, v))
}

// WorkspaceIDNEQ applies the NEQ predicate on the "workspace_id" field.
func WorkspaceIDNEQ(v string) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldNEQ(FieldWorkspaceID, v))
}

// WorkspaceIDIn applies the In predicate on the "workspace_id" field.
func WorkspaceIDIn(vs ...string) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldIn(FieldWorkspaceID, vs...))
}

// WorkspaceIDNotIn applies the NotIn predicate on the "workspace_id" field.
func WorkspaceIDNotIn(vs ...string) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldNotIn(FieldWorkspaceID, vs...))
}

// WorkspaceIDGT applies the GT predicate on the "workspace_id" field.
func WorkspaceIDGT(v string) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldGT(FieldWorkspaceID, v))
}

// WorkspaceIDGTE applies the GTE predicate on the "workspace_id" field.
func WorkspaceIDGTE(v string) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldGTE(FieldWorkspaceID, v))
}

// WorkspaceIDLT applies the LT predicate on the "workspace_id" field.
func WorkspaceIDLT(v string) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldLT(FieldWorkspaceID, v))
}

// WorkspaceIDLTE applies the LTE predicate on the "workspace_id" field.
func WorkspaceIDLTE(v string) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldLTE(FieldWorkspaceID, v))
}

// WorkspaceIDContains applies the Contains predicate on the "workspace_id" field.
func WorkspaceIDContains(v string) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldContains(FieldWorkspaceID, v))
}

// WorkspaceIDHasPrefix applies the HasPrefix predicate on the "workspace_id" field.
func WorkspaceIDHasPrefix(v string) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldHasPrefix(FieldWorkspaceID, v))
}

// WorkspaceIDHasSuffix applies the HasSuffix predicate on the "workspace_id" field.
func WorkspaceIDHasSuffix(v string) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldHasSuffix(FieldWorkspaceID, v))
}

// WorkspaceIDEqualFold applies the EqualFold predicate on the "workspace_id" field.
func WorkspaceIDEqualFold(v string) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldEqualFold(FieldWorkspaceID, v))
}

// WorkspaceIDContainsFold applies the ContainsFold predicate on the "workspace_id" field.
func WorkspaceIDContainsFold(v string) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldContainsFold(FieldWorkspaceID, v))
}

// TargetAgentIDEQ applies the EQ predicate on the "target_agent_id" field.
func TargetAgentIDEQ(v string) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldEQ(FieldTargetAgentID, v))
}

// TargetAgentIDNEQ applies the NEQ predicate on the "target_agent_id" field.
func TargetAgentIDNEQ(v string) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldNEQ(FieldTargetAgentID, v))
}

// TargetAgentIDIn applies the In predicate on the "target_agent_id" field.
func TargetAgentIDIn(vs ...string) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldIn(FieldTargetAgentID, vs...))
}

// TargetAgentIDNotIn applies the NotIn predicate on the "target_agent_id" field.
func TargetAgentIDNotIn(vs ...string) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldNotIn(FieldTargetAgentID, vs...))
}

// TargetAgentIDGT applies the GT predicate on the "target_agent_id" field.
func TargetAgentIDGT(v string) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldGT(FieldTargetAgentID, v))
}

// TargetAgentIDGTE applies the GTE predicate on the "target_agent_id" field.
func TargetAgentIDGTE(v string) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldGTE(FieldTargetAgentID, v))
}

// TargetAgentIDLT applies the LT predicate on the "target_agent_id" field.
func TargetAgentIDLT(v string) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldLT(FieldTargetAgentID, v))
}

// TargetAgentIDLTE applies the LTE predicate on the "target_agent_id" field.
func TargetAgentIDLTE(v string) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldLTE(FieldTargetAgentID, v))
}

// TargetAgentIDContains applies the Contains predicate on the "target_agent_id" field.
func TargetAgentIDContains(v string) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldContains(FieldTargetAgentID, v))
}

// TargetAgentIDHasPrefix applies the HasPrefix predicate on the "target_agent_id" field.
func TargetAgentIDHasPrefix(v string) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldHasPrefix(FieldTargetAgentID, v))
}

// TargetAgentIDHasSuffix applies the HasSuffix predicate on the "target_agent_id" field.
func TargetAgentIDHasSuffix(v string) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldHasSuffix(FieldTargetAgentID, v))
}

// TargetAgentIDEqualFold applies the EqualFold predicate on the "target_agent_id" field.
func TargetAgentIDEqualFold(v string) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldEqualFold(FieldTargetAgentID, v))
}

// TargetAgentIDContainsFold applies the ContainsFold predicate on the "target_agent_id" field.
func TargetAgentIDContainsFold(v string) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldContainsFold(FieldTargetAgentID, v))
}

// TargetSessionIDEQ applies the EQ predicate on the "target_session_id" field.
func TargetSessionIDEQ(v string) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldEQ(FieldTargetSessionID, v))
}

// TargetSessionIDNEQ applies the NEQ predicate on the "target_session_id" field.
func TargetSessionIDNEQ(v string) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldNEQ(FieldTargetSessionID, v))
}

// TargetSessionIDIn applies the In predicate on the "target_session_id" field.
func TargetSessionIDIn(vs ...string) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldIn(FieldTargetSessionID, vs...))
}

// TargetSessionIDNotIn applies the NotIn predicate on the "target_session_id" field.
func TargetSessionIDNotIn(vs ...string) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldNotIn(FieldTargetSessionID, vs...))
}

// TargetSessionIDGT applies the GT predicate on the "target_session_id" field.
func TargetSessionIDGT(v string) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldGT(FieldTargetSessionID, v))
}

// TargetSessionIDGTE applies the GTE predicate on the "target_session_id" field.
func TargetSessionIDGTE(v string) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldGTE(FieldTargetSessionID, v))
}

// TargetSessionIDLT applies the LT predicate on the "target_session_id" field.
func TargetSessionIDLT(v string) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldLT(FieldTargetSessionID, v))
}

// TargetSessionIDLTE applies the LTE predicate on the "target_session_id" field.
func TargetSessionIDLTE(v string) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldLTE(FieldTargetSessionID, v))
}

// TargetSessionIDContains applies the Contains predicate on the "target_session_id" field.
func TargetSessionIDContains(v string) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldContains(FieldTargetSessionID, v))
}

// TargetSessionIDHasPrefix applies the HasPrefix predicate on the "target_session_id" field.
func TargetSessionIDHasPrefix(v string) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldHasPrefix(FieldTargetSessionID, v))
}

// TargetSessionIDHasSuffix applies the HasSuffix predicate on the "target_session_id" field.
func TargetSessionIDHasSuffix(v string) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldHasSuffix(FieldTargetSessionID, v))
}

// TargetSessionIDIsNil applies the IsNil predicate on the "target_session_id" field.
func TargetSessionIDIsNil() predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldIsNull(FieldTargetSessionID))
}

// TargetSessionIDNotNil applies the NotNil predicate on the "target_session_id" field.
func TargetSessionIDNotNil() predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldNotNull(FieldTargetSessionID))
}

// TargetSessionIDEqualFold applies the EqualFold predicate on the "target_session_id" field.
func TargetSessionIDEqualFold(v string) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldEqualFold(FieldTargetSessionID, v))
}

// TargetSessionIDContainsFold applies the ContainsFold predicate on the "target_session_id" field.
func TargetSessionIDContainsFold(v string) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldContainsFold(FieldTargetSessionID, v))
}

// ReasonEQ applies the EQ predicate on the "reason" field.
func ReasonEQ(v string) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldEQ(FieldReason, v))
}

// ReasonNEQ applies the NEQ predicate on the "reason" field.
func ReasonNEQ(v string) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldNEQ(FieldReason, v))
}

// ReasonIn applies the In predicate on the "reason" field.
func ReasonIn(vs ...string) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldIn(FieldReason, vs...))
}

// ReasonNotIn applies the NotIn predicate on the "reason" field.
func ReasonNotIn(vs ...string) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldNotIn(FieldReason, vs...))
}

// ReasonGT applies the GT predicate on the "reason" field.
func ReasonGT(v string) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldGT(FieldReason, v))
}

// ReasonGTE applies the GTE predicate on the "reason" field.
func ReasonGTE(v string) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldGTE(FieldReason, v))
}

// ReasonLT applies the LT predicate on the "reason" field.
func ReasonLT(v string) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldLT(FieldReason, v))
}

// ReasonLTE applies the LTE predicate on the "reason" field.
func ReasonLTE(v string) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldLTE(FieldReason, v))
}

// ReasonContains applies the Contains predicate on the "reason" field.
func ReasonContains(v string) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldContains(FieldReason, v))
}

// ReasonHasPrefix applies the HasPrefix predicate on the "reason" field.
func ReasonHasPrefix(v string) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldHasPrefix(FieldReason, v))
}

// ReasonHasSuffix applies the HasSuffix predicate on the "reason" field.
func ReasonHasSuffix(v string) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldHasSuffix(FieldReason, v))
}

// ReasonEqualFold applies the EqualFold predicate on the "reason" field.
func ReasonEqualFold(v string) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldEqualFold(FieldReason, v))
}

// ReasonContainsFold applies the ContainsFold predicate on the "reason" field.
func ReasonContainsFold(v string) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldContainsFold(FieldReason, v))
}

// PromptEQ applies the EQ predicate on the "prompt" field.
func PromptEQ(v string) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldEQ(FieldPrompt, v))
}

// PromptNEQ applies the NEQ predicate on the "prompt" field.
func PromptNEQ(v string) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldNEQ(FieldPrompt, v))
}

// PromptIn applies the In predicate on the "prompt" field.
func PromptIn(vs ...string) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldIn(FieldPrompt, vs...))
}

// PromptNotIn applies the NotIn predicate on the "prompt" field.
func PromptNotIn(vs ...string) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldNotIn(FieldPrompt, vs...))
}

// PromptGT applies the GT predicate on the "prompt" field.
func PromptGT(v string) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldGT(FieldPrompt, v))
}

// PromptGTE applies the GTE predicate on the "prompt" field.
func PromptGTE(v string) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldGTE(FieldPrompt, v))
}

// PromptLT applies the LT predicate on the "prompt" field.
func PromptLT(v string) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldLT(FieldPrompt, v))
}

// PromptLTE applies the LTE predicate on the "prompt" field.
func PromptLTE(v string) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldLTE(FieldPrompt, v))
}

// PromptContains applies the Contains predicate on the "prompt" field.
func PromptContains(v string) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldContains(FieldPrompt, v))
}

// PromptHasPrefix applies the HasPrefix predicate on the "prompt" field.
func PromptHasPrefix(v string) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldHasPrefix(FieldPrompt, v))
}

// PromptHasSuffix applies the HasSuffix predicate on the "prompt" field.
func PromptHasSuffix(v string) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldHasSuffix(FieldPrompt, v))
}

// PromptEqualFold applies the EqualFold predicate on the "prompt" field.
func PromptEqualFold(v string) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldEqualFold(FieldPrompt, v))
}

// PromptContainsFold applies the ContainsFold predicate on the "prompt" field.
func PromptContainsFold(v string) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldContainsFold(FieldPrompt, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldNotIn(FieldStatus, vs...))
}

// AttemptsEQ applies the EQ predicate on the "attempts" field.
func AttemptsEQ(v int) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldEQ(FieldAttempts, v))
}

// AttemptsNEQ applies the NEQ predicate on the "attempts" field.
func AttemptsNEQ(v int) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldNEQ(FieldAttempts, v))
}

// AttemptsIn applies the In predicate on the "attempts" field.
func AttemptsIn(vs ...int) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldIn(FieldAttempts, vs...))
}

// AttemptsNotIn applies the NotIn predicate on the "attempts" field.
func AttemptsNotIn(vs ...int) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldNotIn(FieldAttempts, vs...))
}

// AttemptsGT applies the GT predicate on the "attempts" field.
func AttemptsGT(v int) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldGT(FieldAttempts, v))
}

// AttemptsGTE applies the GTE predicate on the "attempts" field.
func AttemptsGTE(v int) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldGTE(FieldAttempts, v))
}

// AttemptsLT applies the LT predicate on the "attempts" field.
func AttemptsLT(v int) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldLT(FieldAttempts, v))
}

// AttemptsLTE applies the LTE predicate on the "attempts" field.
func AttemptsLTE(v int) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldLTE(FieldAttempts, v))
}

// MaxRetriesEQ applies the EQ predicate on the "max_retries" field.
func MaxRetriesEQ(v int) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldEQ(FieldMaxRetries, v))
}

// MaxRetriesNEQ applies the NEQ predicate on the "max_retries" field.
func MaxRetriesNEQ(v int) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldNEQ(FieldMaxRetries, v))
}

// MaxRetriesIn applies the In predicate on the "max_retries" field.
func MaxRetriesIn(vs ...int) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldIn(FieldMaxRetries, vs...))
}

// MaxRetriesNotIn applies the NotIn predicate on the "max_retries" field.
func MaxRetriesNotIn(vs ...int) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldNotIn(FieldMaxRetries, vs...))
}

// MaxRetriesGT applies the GT predicate on the "max_retries" field.
func MaxRetriesGT(v int) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldGT(FieldMaxRetries, v))
}

// MaxRetriesGTE applies the GTE predicate on the "max_retries" field.
func MaxRetriesGTE(v int) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldGTE(FieldMaxRetries, v))
}

// MaxRetriesLT applies the LT predicate on the "max_retries" field.
func MaxRetriesLT(v int) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldLT(FieldMaxRetries, v))
}

// MaxRetriesLTE applies the LTE predicate on the "max_retries" field.
func MaxRetriesLTE(v int) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldLTE(FieldMaxRetries, v))
}

// NextRetryAtEQ applies the EQ predicate on the "next_retry_at" field.
func NextRetryAtEQ(v time.Time) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldEQ(FieldNextRetryAt, v))
}

// NextRetryAtNEQ applies the NEQ predicate on the "next_retry_at" field.
func NextRetryAtNEQ(v time.Time) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldNEQ(FieldNextRetryAt, v))
}

// NextRetryAtIn applies the In predicate on the "next_retry_at" field.
func NextRetryAtIn(vs ...time.Time) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldIn(FieldNextRetryAt, vs...))
}

// NextRetryAtNotIn applies the NotIn predicate on the "next_retry_at" field.
func NextRetryAtNotIn(vs ...time.Time) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldNotIn(FieldNextRetryAt, vs...))
}

// NextRetryAtGT applies the GT predicate on the "next_retry_at" field.
func NextRetryAtGT(v time.Time) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldGT(FieldNextRetryAt, v))
}

// NextRetryAtGTE applies the GTE predicate on the "next_retry_at" field.
func NextRetryAtGTE(v time.Time) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldGTE(FieldNextRetryAt, v))
}

// NextRetryAtLT applies the LT predicate on the "next_retry_at" field.
func NextRetryAtLT(v time.Time) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldLT(FieldNextRetryAt, v))
}

// NextRetryAtLTE applies the LTE predicate on the "next_retry_at" field.
func NextRetryAtLTE(v time.Time) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldLTE(FieldNextRetryAt, v))
}

// NextRetryAtIsNil applies the IsNil predicate on the "next_retry_at" field.
func NextRetryAtIsNil() predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldIsNull(FieldNextRetryAt))
}

// NextRetryAtNotNil applies the NotNil predicate on the "next_retry_at" field.
func NextRetryAtNotNil() predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldNotNull(FieldNextRetryAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.TriggerJob {
	return predicate.TriggerJob(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasTriggerAttempts applies the HasEdge predicate on the "trigger_attempts" edge.
func HasTriggerAttempts() predicate.TriggerJob {
	return predicate.TriggerJob(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, TriggerAttemptsTable, TriggerAttemptsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTriggerAttemptsWith applies the HasEdge predicate on the "trigger_attempts" edge with a given conditions (other predicates).
func HasTriggerAttemptsWith(preds ...predicate.TriggerAttempt) predicate.TriggerJob {
	return predicate.TriggerJob(func(s *sql.Selector) {
		step := newTriggerAttemptsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TriggerJob) predicate.TriggerJob {
	return predicate.TriggerJob(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TriggerJob) predicate.TriggerJob {
	return predicate.TriggerJob(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TriggerJob) predicate.TriggerJob {
	return predicate.TriggerJob(sql.NotPredicates(p))
}
