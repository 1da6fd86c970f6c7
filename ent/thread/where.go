// Code generated by ent, DO NOT EDIT.

package thread

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/agentfabric/bridge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Thread {
	return predicate.Thread(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Thread {
	return predicate.Thread(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Thread {
	return predicate.Thread(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Thread {
	return predicate.Thread(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Thread {
	return predicate.Thread(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Thread {
	return predicate.Thread(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Thread {
	return predicate.Thread(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Thread {
	return predicate.Thread(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Thread {
	return predicate.Thread(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Thread {
	return predicate.Thread(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Thread {
	return predicate.Thread(sql.FieldContainsFold(FieldID, id))
}

// WorkspaceID applies equality check predicate on the "workspace_id" field. It's identical to WorkspaceIDEQ.
func WorkspaceID(v string) predicate.Thread {
	return predicate.Thread(sql.FieldEQ(FieldWorkspaceID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Thread {
	return predicate.Thread(sql.FieldEQ(FieldTitle, v))
}

// EscalationOwnerAgentID applies equality check predicate on the "escalation_owner_agent_id" field. It's identical to EscalationOwnerAgentIDEQ.
func EscalationOwnerAgentID(v string) predicate.Thread {
	return predicate.Thread(sql.FieldEQ(FieldEscalationOwnerAgentID, v))
}

// EscalationAssignedByAgentID applies equality check predicate on the "escalation_assigned_by_agent_id" field. It's identical to EscalationAssignedByAgentIDEQ.
func EscalationAssignedByAgentID(v string) predicate.Thread {
	return predicate.Thread(sql.FieldEQ(FieldEscalationAssignedByAgentID, v))
}

// EscalationAssignedAt applies equality check predicate on the "escalation_assigned_at" field. It's identical to EscalationAssignedAtEQ.
func EscalationAssignedAt(v time.Time) predicate.Thread {
	return predicate.Thread(sql.FieldEQ(FieldEscalationAssignedAt, v))
}

// CreatedBy applies equality check predicate on the "created_by" field. It's identical to CreatedByEQ.
func CreatedBy(v string) predicate.Thread {
	return predicate.Thread(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Thread {
	return predicate.Thread(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Thread {
	return predicate.Thread(sql.FieldEQ(FieldUpdatedAt, v))
}

// WorkspaceIDEQ applies the EQ predicate on the "workspace_id" field.
func WorkspaceIDEQ(v string) predicate.Thread {
	return predicate.Thread(sql.FieldEQ(FieldWorkspaceID, v))
}

// WorkspaceIDNEQ applies the NEQ predicate on the "workspace_id" field.
func WorkspaceIDNEQ(v string) predicate.Thread {
	return predicate.Thread(sql.FieldNEQ(FieldWorkspaceID, v))
}

// WorkspaceIDIn applies the In predicate on the "workspace_id" field.
func WorkspaceIDIn(vs ...string) predicate.Thread {
	return predicate.Thread(sql.FieldIn(FieldWorkspaceID, vs...))
}

// WorkspaceIDNotIn applies the NotIn predicate on the "workspace_id" field.
func WorkspaceIDNotIn(vs ...string) predicate.Thread {
	return predicate.Thread(sql.FieldNotIn(FieldWorkspaceID, vs...))
}

// WorkspaceIDGT applies the GT predicate on the "workspace_id" field.
func WorkspaceIDGT(v string) predicate.Thread {
	return predicate.Thread(sql.FieldGT(FieldWorkspaceID, v))
}

// WorkspaceIDGTE applies the GTE predicate on the "workspace_id" field.
func WorkspaceIDGTE(v string) predicate.Thread {
	return predicate.Thread(sql.FieldGTE(FieldWorkspaceID, v))
}

// WorkspaceIDLT applies the LT predicate on the "workspace_id" field.
func WorkspaceIDLT(v string) predicate.Thread {
	return predicate.Thread(sql.FieldLT(FieldWorkspaceID, v))
}

// WorkspaceIDLTE applies the LTE predicate on the "workspace_id" field.
func WorkspaceIDLTE(v string) predicate.Thread {
	return predicate.Thread(sql.FieldLTE(FieldWorkspaceID, v))
}

// WorkspaceIDContains applies the Contains predicate on the "workspace_id" field.
func WorkspaceIDContains(v string) predicate.Thread {
	return predicate.Thread(sql.FieldContains(FieldWorkspaceID, v))
}

// WorkspaceIDHasPrefix applies the HasPrefix predicate on the "workspace_id" field.
func WorkspaceIDHasPrefix(v string) predicate.Thread {
	return predicate.Thread(sql.FieldHasPrefix(FieldWorkspaceID, v))
}

// WorkspaceIDHasSuffix applies the HasSuffix predicate on the "workspace_id" field.
func WorkspaceIDHasSuffix(v string) predicate.Thread {
	return predicate.Thread(sql.FieldHasSuffix(FieldWorkspaceID, v))
}

// WorkspaceIDEqualFold applies the EqualFold predicate on the "workspace_id" field.
func WorkspaceIDEqualFold(v string) predicate.Thread {
	return predicate.Thread(sql.FieldEqualFold(FieldWorkspaceID, v))
}

// WorkspaceIDContainsFold applies the ContainsFold predicate on the "workspace_id" field.
func WorkspaceIDContainsFold(v string) predicate.Thread {
	return predicate.Thread(sql.FieldContainsFold(FieldWorkspaceID, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Thread {
	return predicate.Thread(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Thread {
	return predicate.Thread(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Thread {
	return predicate.Thread(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Thread {
	return predicate.Thread(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Thread {
	return predicate.Thread(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Thread {
	return predicate.Thread(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Thread {
	return predicate.Thread(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Thread {
	return predicate.Thread(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Thread {
	return predicate.Thread(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Thread {
	return predicate.Thread(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Thread {
	return predicate.Thread(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Thread {
	return predicate.Thread(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Thread {
	return predicate.Thread(sql.FieldContainsFold(FieldTitle, v))
}

// TypeEQ applies the EQ predicate on the "type" field.
func TypeEQ(v Type) predicate.Thread {
	return predicate.Thread(sql.FieldEQ(FieldType, v))
}

// TypeNEQ applies the NEQ predicate on the "type" field.
func TypeNEQ(v Type) predicate.Thread {
	return predicate.Thread(sql.FieldNEQ(FieldType, v))
}

// TypeIn applies the In predicate on the "type" field.
func TypeIn(vs ...Type) predicate.Thread {
	return predicate.Thread(sql.FieldIn(FieldType, vs...))
}

// TypeNotIn applies the NotIn predicate on the "type" field.
func TypeNotIn(vs ...Type) predicate.Thread {
	return predicate.Thread(sql.FieldNotIn(FieldType, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Thread {
	return predicate.Thread(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Thread {
	return predicate.Thread(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Thread {
	return predicate.Thread(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Thread {
	return predicate.Thread(sql.FieldNotIn(FieldStatus, vs...))
}

// EscalationOwnerAgentIDEQ applies the EQ predicate on the "escalation_owner_agent_id" field.
func EscalationOwnerAgentIDEQ(v string) predicate.Thread {
	return predicate.Thread(sql.FieldEQ(FieldEscalationOwnerAgentID, v))
}

// EscalationOwnerAgentIDNEQ applies the NEQ predicate on the "escalation_owner_agent_id" field.
func EscalationOwnerAgentIDNEQ(v string) predicate.Thread {
	return predicate.Thread(sql.FieldNEQ(FieldEscalationOwnerAgentID, v))
}

// EscalationOwnerAgentIDIn applies the In predicate on the "escalation_owner_agent_id" field.
func EscalationOwnerAgentIDIn(vs ...string) predicate.Thread {
	return predicate.Thread(sql.FieldIn(FieldEscalationOwnerAgentID, vs...))
}

// EscalationOwnerAgentIDNotIn applies the NotIn predicate on the "escalation_owner_agent_id" field.
func EscalationOwnerAgentIDNotIn(vs ...string) predicate.Thread {
	return predicate.Thread(sql.FieldNotIn(FieldEscalationOwnerAgentID, vs...))
}

// EscalationOwnerAgentIDGT applies the GT predicate on the "escalation_owner_agent_id" field.
func EscalationOwnerAgentIDGT(v string) predicate.Thread {
	return predicate.Thread(sql.FieldGT(FieldEscalationOwnerAgentID, v))
}

// EscalationOwnerAgentIDGTE applies the GTE predicate on the "escalation_owner_agent_id" field.
func EscalationOwnerAgentIDGTE(v string) predicate.Thread {
	return predicate.Thread(sql.FieldGTE(FieldEscalationOwnerAgentID, v))
}

// EscalationOwnerAgentIDLT applies the LT predicate on the "escalation_owner_agent_id" field.
func EscalationOwnerAgentIDLT(v string) predicate.Thread {
	return predicate.Thread(sql.FieldLT(FieldEscalationOwnerAgentID, v))
}

// EscalationOwnerAgentIDLTE applies the LTE predicate on the "escalation_owner_agent_id" field.
func EscalationOwnerAgentIDLTE(v string) predicate.Thread {
	return predicate.Thread(sql.FieldLTE(FieldEscalationOwnerAgentID, v))
}

// EscalationOwnerAgentIDContains applies the Contains predicate on the "escalation_owner_agent_id" field.
func EscalationOwnerAgentIDContains(v string) predicate.Thread {
	return predicate.Thread(sql.FieldContains(FieldEscalationOwnerAgentID, v))
}

// EscalationOwnerAgentIDHasPrefix applies the HasPrefix predicate on the "escalation_owner_agent_id" field.
func EscalationOwnerAgentIDHasPrefix(v string) predicate.Thread {
	return predicate.Thread(sql.FieldHasPrefix(FieldEscalationOwnerAgentID, v))
}

// EscalationOwnerAgentIDHasSuffix applies the HasSuffix predicate on the "escalation_owner_agent_id" field.
func EscalationOwnerAgentIDHasSuffix(v string) predicate.Thread {
	return predicate.Thread(sql.FieldHasSuffix(FieldEscalationOwnerAgentID, v))
}

// EscalationOwnerAgentIDIsNil applies the IsNil predicate on the "escalation_owner_agent_id" field.
func EscalationOwnerAgentIDIsNil() predicate.Thread {
	return predicate.Thread(sql.FieldIsNull(FieldEscalationOwnerAgentID))
}

// EscalationOwnerAgentIDNotNil applies the NotNil predicate on the "escalation_owner_agent_id" field.
func EscalationOwnerAgentIDNotNil() predicate.Thread {
	return predicate.Thread(sql.FieldNotNull(FieldEscalationOwnerAgentID))
}

// EscalationOwnerAgentIDEqualFold applies the EqualFold predicate on the "escalation_owner_agent_id" field.
func EscalationOwnerAgentIDEqualFold(v string) predicate.Thread {
	return predicate.Thread(sql.FieldEqualFold(FieldEscalationOwnerAgentID, v))
}

// EscalationOwnerAgentIDContainsFold applies the ContainsFold predicate on the "escalation_owner_agent_id" field.
func EscalationOwnerAgentIDContainsFold(v string) predicate.Thread {
	return predicate.Thread(sql.FieldContainsFold(FieldEscalationOwnerAgentID, v))
}

// EscalationAssignedByAgentIDEQ applies the EQ predicate on the "escalation_assigned_by_agent_id" field.
func EscalationAssignedByAgentIDEQ(v string) predicate.Thread {
	return predicate.Thread(sql.FieldEQ(FieldEscalationAssignedByAgentID, v))
}

// EscalationAssignedByAgentIDNEQ applies the NEQ predicate on the "escalation_assigned_by_agent_id" field.
func EscalationAssignedByAgentIDNEQ(v string) predicate.Thread {
	return predicate.Thread(sql.FieldNEQ(FieldEscalationAssignedByAgentID, v))
}

// EscalationAssignedByAgentIDIn applies the In predicate on the "escalation_assigned_by_agent_id" field.
func EscalationAssignedByAgentIDIn(vs ...string) predicate.Thread {
	return predicate.Thread(sql.FieldIn(FieldEscalationAssignedByAgentID, vs...))
}

// EscalationAssignedByAgentIDNotIn applies the NotIn predicate on the "escalation_assigned_by_agent_id" field.
func EscalationAssignedByAgentIDNotIn(vs ...string) predicate.Thread {
	return predicate.Thread(sql.FieldNotIn(FieldEscalationAssignedByAgentID, vs...))
}

// EscalationAssignedByAgentIDGT applies the GT predicate on the "escalation_assigned_by_agent_id" field.
func EscalationAssignedByAgentIDGT(v string) predicate.Thread {
	return predicate.Thread(sql.FieldGT(FieldEscalationAssignedByAgentID, v))
}

// EscalationAssignedByAgentIDGTE applies the GTE predicate on the "escalation_assigned_by_agent_id" field.
func EscalationAssignedByAgentIDGTE(v string) predicate.Thread {
	return predicate.Thread(sql.FieldGTE(FieldEscalationAssignedByAgentID, v))
}

// EscalationAssignedByAgentIDLT applies the LT predicate on the "escalation_assigned_by_agent_id" field.
func EscalationAssignedByAgentIDLT(v string) predicate.Thread {
	return predicate.Thread(sql.FieldLT(FieldEscalationAssignedByAgentID, v))
}

// EscalationAssignedByAgentIDLTE applies the LTE predicate on the "escalation_assigned_by_agent_id" field.
func EscalationAssignedByAgentIDLTE(v string) predicate.Thread {
	return predicate.Thread(sql.FieldLTE(FieldEscalationAssignedByAgentID, v))
}

// EscalationAssignedByAgentIDContains applies the Contains predicate on the "escalation_assigned_by_agent_id" field.
func EscalationAssignedByAgentIDContains(v string) predicate.Thread {
	return predicate.Thread(sql.FieldContains(FieldEscalationAssignedByAgentID, v))
}

// EscalationAssignedByAgentIDHasPrefix applies the HasPrefix predicate on the "escalation_assigned_by_agent_id" field.
func EscalationAssignedByAgentIDHasPrefix(v string) predicate.Thread {
	return predicate.Thread(sql.FieldHasPrefix(FieldEscalationAssignedByAgentID, v))
}

// EscalationAssignedByAgentIDHasSuffix applies the HasSuffix predicate on the "escalation_assigned_by_agent_id" field.
func EscalationAssignedByAgentIDHasSuffix(v string) predicate.Thread {
	return predicate.Thread(sql.FieldHasSuffix(FieldEscalationAssignedByAgentID, v))
}

// EscalationAssignedByAgentIDIsNil applies the IsNil predicate on the "escalation_assigned_by_agent_id" field.
func EscalationAssignedByAgentIDIsNil() predicate.Thread {
	return predicate.Thread(sql.FieldIsNull(FieldEscalationAssignedByAgentID))
}

// EscalationAssignedByAgentIDNotNil applies the NotNil predicate on the "escalation_assigned_by_agent_id" field.
func EscalationAssignedByAgentIDNotNil() predicate.Thread {
	return predicate.Thread(sql.FieldNotNull(FieldEscalationAssignedByAgentID))
}

// EscalationAssignedByAgentIDEqualFold applies the EqualFold predicate on the "escalation_assigned_by_agent_id" field.
func EscalationAssignedByAgentIDEqualFold(v string) predicate.Thread {
	return predicate.Thread(sql.FieldEqualFold(FieldEscalationAssignedByAgentID, v))
}

// EscalationAssignedByAgentIDContainsFold applies the ContainsFold predicate on the "escalation_assigned_by_agent_id" field.
func EscalationAssignedByAgentIDContainsFold(v string) predicate.Thread {
	return predicate.Thread(sql.FieldContainsFold(FieldEscalationAssignedByAgentID, v))
}

// EscalationAssignedAtEQ applies the EQ predicate on the "escalation_assigned_at" field.
func EscalationAssignedAtEQ(v time.Time) predicate.Thread {
	return predicate.Thread(sql.FieldEQ(FieldEscalationAssignedAt, v))
}

// EscalationAssignedAtNEQ applies the NEQ predicate on the "escalation_assigned_at" field.
func EscalationAssignedAtNEQ(v time.Time) predicate.Thread {
	return predicate.Thread(sql.FieldNEQ(FieldEscalationAssignedAt, v))
}

// EscalationAssignedAtIn applies the In predicate on the "escalation_assigned_at" field.
func EscalationAssignedAtIn(vs ...time.Time) predicate.Thread {
	return predicate.Thread(sql.FieldIn(FieldEscalationAssignedAt, vs...))
}

// EscalationAssignedAtNotIn applies the NotIn predicate on the "escalation_assigned_at" field.
func EscalationAssignedAtNotIn(vs ...time.Time) predicate.Thread {
	return predicate.Thread(sql.FieldNotIn(FieldEscalationAssignedAt, vs...))
}

// EscalationAssignedAtGT applies the GT predicate on the "escalation_assigned_at" field.
func EscalationAssignedAtGT(v time.Time) predicate.Thread {
	return predicate.Thread(sql.FieldGT(FieldEscalationAssignedAt, v))
}

// EscalationAssignedAtGTE applies the GTE predicate on the "escalation_assigned_at" field.
func EscalationAssignedAtGTE(v time.Time) predicate.Thread {
	return predicate.Thread(sql.FieldGTE(FieldEscalationAssignedAt, v))
}

// EscalationAssignedAtLT applies the LT predicate on the "escalation_assigned_at" field.
func EscalationAssignedAtLT(v time.Time) predicate.Thread {
	return predicate.Thread(sql.FieldLT(FieldEscalationAssignedAt, v))
}

// EscalationAssignedAtLTE applies the LTE predicate on the "escalation_assigned_at" field.
func EscalationAssignedAtLTE(v time.Time) predicate.Thread {
	return predicate.Thread(sql.FieldLTE(FieldEscalationAssignedAt, v))
}

// EscalationAssignedAtIsNil applies the IsNil predicate on the "escalation_assigned_at" field.
func EscalationAssignedAtIsNil() predicate.Thread {
	return predicate.Thread(sql.FieldIsNull(FieldEscalationAssignedAt))
}

// EscalationAssignedAtNotNil applies the NotNil predicate on the "escalation_assigned_at" field.
func EscalationAssignedAtNotNil() predicate.Thread {
	return predicate.Thread(sql.FieldNotNull(FieldEscalationAssignedAt))
}

// CreatedByEQ applies the EQ predicate on the "created_by" field.
func CreatedByEQ(v string) predicate.Thread {
	return predicate.Thread(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedByNEQ applies the NEQ predicate on the "created_by" field.
func CreatedByNEQ(v string) predicate.Thread {
	return predicate.Thread(sql.FieldNEQ(FieldCreatedBy, v))
}

// CreatedByIn applies the In predicate on the "created_by" field.
func CreatedByIn(vs ...string) predicate.Thread {
	return predicate.Thread(sql.FieldIn(FieldCreatedBy, vs...))
}

// CreatedByNotIn applies the NotIn predicate on the "created_by" field.
func CreatedByNotIn(vs ...string) predicate.Thread {
	return predicate.Thread(sql.FieldNotIn(FieldCreatedBy, vs...))
}

// CreatedByGT applies the GT predicate on the "created_by" field.
func CreatedByGT(v string) predicate.Thread {
	return predicate.Thread(sql.FieldGT(FieldCreatedBy, v))
}

// CreatedByGTE applies the GTE predicate on the "created_by" field.
func CreatedByGTE(v string) predicate.Thread {
	return predicate.Thread(sql.FieldGTE(FieldCreatedBy, v))
}

// CreatedByLT applies the LT predicate on the "created_by" field.
func CreatedByLT(v string) predicate.Thread {
	return predicate.Thread(sql.FieldLT(FieldCreatedBy, v))
}

// CreatedByLTE applies the LTE predicate on the "created_by" field.
func CreatedByLTE(v string) predicate.Thread {
	return predicate.Thread(sql.FieldLTE(FieldCreatedBy, v))
}

// CreatedByContains applies the Contains predicate on the "created_by" field.
func CreatedByContains(v string) predicate.Thread {
	return predicate.Thread(sql.FieldContains(FieldCreatedBy, v))
}

// CreatedByHasPrefix applies the HasPrefix predicate on the "created_by" field.
func CreatedByHasPrefix(v string) predicate.Thread {
	return predicate.Thread(sql.FieldHasPrefix(FieldCreatedBy, v))
}

// CreatedByHasSuffix applies the HasSuffix predicate on the "created_by" field.
func CreatedByHasSuffix(v string) predicate.Thread {
	return predicate.Thread(sql.FieldHasSuffix(FieldCreatedBy, v))
}

// CreatedByIsNil applies the IsNil predicate on the "created_by" field.
func CreatedByIsNil() predicate.Thread {
	return predicate.Thread(sql.FieldIsNull(FieldCreatedBy))
}

// CreatedByNotNil applies the NotNil predicate on the "created_by" field.
func CreatedByNotNil() predicate.Thread {
	return predicate.Thread(sql.FieldNotNull(FieldCreatedBy))
}

// CreatedByEqualFold applies the EqualFold predicate on the "created_by" field.
func CreatedByEqualFold(v string) predicate.Thread {
	return predicate.Thread(sql.FieldEqualFold(FieldCreatedBy, v))
}

// CreatedByContainsFold applies the ContainsFold predicate on the "created_by" field.
func CreatedByContainsFold(v string) predicate.Thread {
	return predicate.Thread(sql.FieldContainsFold(FieldCreatedBy, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Thread {
	return predicate.Thread(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Thread {
	return predicate.Thread(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Thread {
	return predicate.Thread(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Thread {
	return predicate.Thread(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Thread {
	return predicate.Thread(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Thread {
	return predicate.Thread(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Thread {
	return predicate.Thread(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Thread {
	return predicate.Thread(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Thread {
	return predicate.Thread(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Thread {
	return predicate.Thread(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Thread {
	return predicate.Thread(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Thread {
	return predicate.Thread(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Thread {
	return predicate.Thread(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Thread {
	return predicate.Thread(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Thread {
	return predicate.Thread(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Thread {
	return predicate.Thread(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasParticipants applies the HasEdge predicate on the "participants" edge.
func HasParticipants() predicate.Thread {
	return predicate.Thread(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ParticipantsTable, ParticipantsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasParticipantsWith applies the HasEdge predicate on the "participants" edge with a given conditions (other predicates).
func HasParticipantsWith(preds ...predicate.ThreadParticipant) predicate.Thread {
	return predicate.Thread(func(s *sql.Selector) {
		step := newParticipantsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasMessages applies the HasEdge predicate on the "messages" edge.
func HasMessages() predicate.Thread {
	return predicate.Thread(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, MessagesTable, MessagesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMessagesWith applies the HasEdge predicate on the "messages" edge with a given conditions (other predicates).
func HasMessagesWith(preds ...predicate.Message) predicate.Thread {
	return predicate.Thread(func(s *sql.Selector) {
		step := newMessagesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasCursors applies the HasEdge predicate on the "cursors" edge.
func HasCursors() predicate.Thread {
	return predicate.Thread(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, CursorsTable, CursorsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCursorsWith applies the HasEdge predicate on the "cursors" edge with a given conditions (other predicates).
func HasCursorsWith(preds ...predicate.ParticipantCursor) predicate.Thread {
	return predicate.Thread(func(s *sql.Selector) {
		step := newCursorsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Thread) predicate.Thread {
	return predicate.Thread(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Thread) predicate.Thread {
	return predicate.Thread(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Thread) predicate.Thread {
	return predicate.Thread(sql.NotPredicates(p))
}
