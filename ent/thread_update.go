// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agentfabric/bridge/ent/message"
	"github.com/agentfabric/bridge/ent/participantcursor"
	"github.com/agentfabric/bridge/ent/predicate"
	"github.com/agentfabric/bridge/ent/thread"
	"github.com/agentfabric/bridge/ent/threadparticipant"
)

// ThreadUpdate is the builder for updating Thread entities.
type ThreadUpdate struct {
	config
	hooks    []Hook
	mutation *ThreadMutation
}

// Where appends a list predicates to the ThreadUpdate builder.
func (_u *ThreadUpdate) Where(ps ...predicate.Thread) *ThreadUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *ThreadUpdate) SetTitle(v string) *ThreadUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ThreadUpdate) SetNillableTitle(v *string) *ThreadUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetType sets the "type" field.
func (_u *ThreadUpdate) SetType(v thread.Type) *ThreadUpdate {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *ThreadUpdate) SetNillableType(v *thread.Type) *ThreadUpdate {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ThreadUpdate) SetStatus(v thread.Status) *ThreadUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ThreadUpdate) SetNillableStatus(v *thread.Status) *ThreadUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetEscalationOwnerAgentID sets the "escalation_owner_agent_id" field.
func (_u *ThreadUpdate) SetEscalationOwnerAgentID(v string) *ThreadUpdate {
	_u.mutation.SetEscalationOwnerAgentID(v)
	return _u
}

// SetNillableEscalationOwnerAgentID sets the "escalation_owner_agent_id" field if the given value is not nil.
func (_u *ThreadUpdate) SetNillableEscalationOwnerAgentID(v *string) *ThreadUpdate {
	if v != nil {
		_u.SetEscalationOwnerAgentID(*v)
	}
	return _u
}

// ClearEscalationOwnerAgentID clears the value of the "escalation_owner_agent_id" field.
func (_u *ThreadUpdate) ClearEscalationOwnerAgentID() *ThreadUpdate {
	_u.mutation.ClearEscalationOwnerAgentID()
	return _u
}

// SetEscalationAssignedByAgentID sets the "escalation_assigned_by_agent_id" field.
func (_u *ThreadUpdate) SetEscalationAssignedByAgentID(v string) *ThreadUpdate {
	_u.mutation.SetEscalationAssignedByAgentID(v)
	return _u
}

// SetNillableEscalationAssignedByAgentID sets the "escalation_assigned_by_agent_id" field if the given value is not nil.
func (_u *ThreadUpdate) SetNillableEscalationAssignedByAgentID(v *string) *ThreadUpdate {
	if v != nil {
		_u.SetEscalationAssignedByAgentID(*v)
	}
	return _u
}

// ClearEscalationAssignedByAgentID clears the value of the "escalation_assigned_by_agent_id" field.
func (_u *ThreadUpdate) ClearEscalationAssignedByAgentID() *ThreadUpdate {
	_u.mutation.ClearEscalationAssignedByAgentID()
	return _u
}

// SetEscalationAssignedAt sets the "escalation_assigned_at" field.
func (_u *ThreadUpdate) SetEscalationAssignedAt(v time.Time) *ThreadUpdate {
	_u.mutation.SetEscalationAssignedAt(v)
	return _u
}

// SetNillableEscalationAssignedAt sets the "escalation_assigned_at" field if the given value is not nil.
func (_u *ThreadUpdate) SetNillableEscalationAssignedAt(v *time.Time) *ThreadUpdate {
	if v != nil {
		_u.SetEscalationAssignedAt(*v)
	}
	return _u
}

// ClearEscalationAssignedAt clears the value of the "escalation_assigned_at" field.
func (_u *ThreadUpdate) ClearEscalationAssignedAt() *ThreadUpdate {
	_u.mutation.ClearEscalationAssignedAt()
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *ThreadUpdate) SetCreatedBy(v string) *ThreadUpdate {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *ThreadUpdate) SetNillableCreatedBy(v *string) *ThreadUpdate {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (_u *ThreadUpdate) ClearCreatedBy() *ThreadUpdate {
	_u.mutation.ClearCreatedBy()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ThreadUpdate) SetUpdatedAt(v time.Time) *ThreadUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *ThreadUpdate) SetNillableUpdatedAt(v *time.Time) *ThreadUpdate {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// AddParticipantIDs adds the "participants" edge to the ThreadParticipant entity by IDs.
func (_u *ThreadUpdate) AddParticipantIDs(ids ...string) *ThreadUpdate {
	_u.mutation.AddParticipantIDs(ids...)
	return _u
}

// AddParticipants adds the "participants" edges to the ThreadParticipant entity.
func (_u *ThreadUpdate) AddParticipants(v ...*ThreadParticipant) *ThreadUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddParticipantIDs(ids...)
}

// AddMessageIDs adds the "messages" edge to the Message entity by IDs.
func (_u *ThreadUpdate) AddMessageIDs(ids ...string) *ThreadUpdate {
	_u.mutation.AddMessageIDs(ids...)
	return _u
}

// AddMessages adds the "messages" edges to the Message entity.
func (_u *ThreadUpdate) AddMessages(v ...*Message) *ThreadUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMessageIDs(ids...)
}

// AddCursorIDs adds the "cursors" edge to the ParticipantCursor entity by IDs.
func (_u *ThreadUpdate) AddCursorIDs(ids ...string) *ThreadUpdate {
	_u.mutation.AddCursorIDs(ids...)
	return _u
}

// AddCursors adds the "cursors" edges to the ParticipantCursor entity.
func (_u *ThreadUpdate) AddCursors(v ...*ParticipantCursor) *ThreadUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCursorIDs(ids...)
}

// Mutation returns the ThreadMutation object of the builder.
func (_u *ThreadUpdate) Mutation() *ThreadMutation {
	return _u.mutation
}

// ClearParticipants clears all "participants" edges to the ThreadParticipant entity.
func (_u *ThreadUpdate) ClearParticipants() *ThreadUpdate {
	_u.mutation.ClearParticipants()
	return _u
}

// RemoveParticipantIDs removes the "participants" edge to ThreadParticipant entities by IDs.
func (_u *ThreadUpdate) RemoveParticipantIDs(ids ...string) *ThreadUpdate {
	_u.mutation.RemoveParticipantIDs(ids...)
	return _u
}

// RemoveParticipants removes "participants" edges to ThreadParticipant entities.
func (_u *ThreadUpdate) RemoveParticipants(v ...*ThreadParticipant) *ThreadUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveParticipantIDs(ids...)
}

// ClearMessages clears all "messages" edges to the Message entity.
func (_u *ThreadUpdate) ClearMessages() *ThreadUpdate {
	_u.mutation.ClearMessages()
	return _u
}

// RemoveMessageIDs removes the "messages" edge to Message entities by IDs.
func (_u *ThreadUpdate) RemoveMessageIDs(ids ...string) *ThreadUpdate {
	_u.mutation.RemoveMessageIDs(ids...)
	return _u
}

// RemoveMessages removes "messages" edges to Message entities.
func (_u *ThreadUpdate) RemoveMessages(v ...*Message) *ThreadUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMessageIDs(ids...)
}

// ClearCursors clears all "cursors" edges to the ParticipantCursor entity.
func (_u *ThreadUpdate) ClearCursors() *ThreadUpdate {
	_u.mutation.ClearCursors()
	return _u
}

// RemoveCursorIDs removes the "cursors" edge to ParticipantCursor entities by IDs.
func (_u *ThreadUpdate) RemoveCursorIDs(ids ...string) *ThreadUpdate {
	_u.mutation.RemoveCursorIDs(ids...)
	return _u
}

// RemoveCursors removes "cursors" edges to ParticipantCursor entities.
func (_u *ThreadUpdate) RemoveCursors(v ...*ParticipantCursor) *ThreadUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCursorIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ThreadUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ThreadUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ThreadUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ThreadUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ThreadUpdate) check() error {
	if v, ok := _u.mutation.GetType(); ok {
		if err := thread.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Thread.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := thread.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Thread.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ThreadUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(thread.Table, thread.Columns, sqlgraph.NewFieldSpec(thread.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(thread.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(thread.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(thread.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.EscalationOwnerAgentID(); ok {
		_spec.SetField(thread.FieldEscalationOwnerAgentID, field.TypeString, value)
	}
	if _u.mutation.EscalationOwnerAgentIDCleared() {
		_spec.ClearField(thread.FieldEscalationOwnerAgentID, field.TypeString)
	}
	if value, ok := _u.mutation.EscalationAssignedByAgentID(); ok {
		_spec.SetField(thread.FieldEscalationAssignedByAgentID, field.TypeString, value)
	}
	if _u.mutation.EscalationAssignedByAgentIDCleared() {
		_spec.ClearField(thread.FieldEscalationAssignedByAgentID, field.TypeString)
	}
	if value, ok := _u.mutation.EscalationAssignedAt(); ok {
		_spec.SetField(thread.FieldEscalationAssignedAt, field.TypeTime, value)
	}
	if _u.mutation.EscalationAssignedAtCleared() {
		_spec.ClearField(thread.FieldEscalationAssignedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(thread.FieldCreatedBy, field.TypeString, value)
	}
	if _u.mutation.CreatedByCleared() {
		_spec.ClearField(thread.FieldCreatedBy, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(thread.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ParticipantsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   thread.ParticipantsTable,
			Columns: []string{thread.ParticipantsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(threadparticipant.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedParticipantsIDs(); len(nodes) > 0 && !_u.mutation.ParticipantsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   thread.ParticipantsTable,
			Columns: []string{thread.ParticipantsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(threadparticipant.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ParticipantsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   thread.ParticipantsTable,
			Columns: []string{thread.ParticipantsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(threadparticipant.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   thread.MessagesTable,
			Columns: []string{thread.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(message.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMessagesIDs(); len(nodes) > 0 && !_u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   thread.MessagesTable,
			Columns: []string{thread.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(message.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MessagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   thread.MessagesTable,
			Columns: []string{thread.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(message.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CursorsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   thread.CursorsTable,
			Columns: []string{thread.CursorsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(participantcursor.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCursorsIDs(); len(nodes) > 0 && !_u.mutation.CursorsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   thread.CursorsTable,
			Columns: []string{thread.CursorsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(participantcursor.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CursorsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   thread.CursorsTable,
			Columns: []string{thread.CursorsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(participantcursor.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{thread.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ThreadUpdateOne is the builder for updating a single Thread entity.
type ThreadUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ThreadMutation
}

// SetTitle sets the "title" field.
func (_u *ThreadUpdateOne) SetTitle(v string) *ThreadUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ThreadUpdateOne) SetNillableTitle(v *string) *ThreadUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetType sets the "type" field.
func (_u *ThreadUpdateOne) SetType(v thread.Type) *ThreadUpdateOne {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *ThreadUpdateOne) SetNillableType(v *thread.Type) *ThreadUpdateOne {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ThreadUpdateOne) SetStatus(v thread.Status) *ThreadUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ThreadUpdateOne) SetNillableStatus(v *thread.Status) *ThreadUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetEscalationOwnerAgentID sets the "escalation_owner_agent_id" field.
func (_u *ThreadUpdateOne) SetEscalationOwnerAgentID(v string) *ThreadUpdateOne {
	_u.mutation.SetEscalationOwnerAgentID(v)
	return _u
}

// SetNillableEscalationOwnerAgentID sets the "escalation_owner_agent_id" field if the given value is not nil.
func (_u *ThreadUpdateOne) SetNillableEscalationOwnerAgentID(v *string) *ThreadUpdateOne {
	if v != nil {
		_u.SetEscalationOwnerAgentID(*v)
	}
	return _u
}

// ClearEscalationOwnerAgentID clears the value of the "escalation_owner_agent_id" field.
func (_u *ThreadUpdateOne) ClearEscalationOwnerAgentID() *ThreadUpdateOne {
	_u.mutation.ClearEscalationOwnerAgentID()
	return _u
}

// SetEscalationAssignedByAgentID sets the "escalation_assigned_by_agent_id" field.
func (_u *ThreadUpdateOne) SetEscalationAssignedByAgentID(v string) *ThreadUpdateOne {
	_u.mutation.SetEscalationAssignedByAgentID(v)
	return _u
}

// SetNillableEscalationAssignedByAgentID sets the "escalation_assigned_by_agent_id" field if the given value is not nil.
func (_u *ThreadUpdateOne) SetNillableEscalationAssignedByAgentID(v *string) *ThreadUpdateOne {
	if v != nil {
		_u.SetEscalationAssignedByAgentID(*v)
	}
	return _u
}

// ClearEscalationAssignedByAgentID clears the value of the "escalation_assigned_by_agent_id" field.
func (_u *ThreadUpdateOne) ClearEscalationAssignedByAgentID() *ThreadUpdateOne {
	_u.mutation.ClearEscalationAssignedByAgentID()
	return _u
}

// SetEscalationAssignedAt sets the "escalation_assigned_at" field.
func (_u *ThreadUpdateOne) SetEscalationAssignedAt(v time.Time) *ThreadUpdateOne {
	_u.mutation.SetEscalationAssignedAt(v)
	return _u
}

// SetNillableEscalationAssignedAt sets the "escalation_assigned_at" field if the given value is not nil.
func (_u *ThreadUpdateOne) SetNillableEscalationAssignedAt(v *time.Time) *ThreadUpdateOne {
	if v != nil {
		_u.SetEscalationAssignedAt(*v)
	}
	return _u
}

// ClearEscalationAssignedAt clears the value of the "escalation_assigned_at" field.
func (_u *ThreadUpdateOne) ClearEscalationAssignedAt() *ThreadUpdateOne {
	_u.mutation.ClearEscalationAssignedAt()
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *ThreadUpdateOne) SetCreatedBy(v string) *ThreadUpdateOne {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *ThreadUpdateOne) SetNillableCreatedBy(v *string) *ThreadUpdateOne {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (_u *ThreadUpdateOne) ClearCreatedBy() *ThreadUpdateOne {
	_u.mutation.ClearCreatedBy()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ThreadUpdateOne) SetUpdatedAt(v time.Time) *ThreadUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *ThreadUpdateOne) SetNillableUpdatedAt(v *time.Time) *ThreadUpdateOne {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// AddParticipantIDs adds the "participants" edge to the ThreadParticipant entity by IDs.
func (_u *ThreadUpdateOne) AddParticipantIDs(ids ...string) *ThreadUpdateOne {
	_u.mutation.AddParticipantIDs(ids...)
	return _u
}

// AddParticipants adds the "participants" edges to the ThreadParticipant entity.
func (_u *ThreadUpdateOne) AddParticipants(v ...*ThreadParticipant) *ThreadUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddParticipantIDs(ids...)
}

// AddMessageIDs adds the "messages" edge to the Message entity by IDs.
func (_u *ThreadUpdateOne) AddMessageIDs(ids ...string) *ThreadUpdateOne {
	_u.mutation.AddMessageIDs(ids...)
	return _u
}

// AddMessages adds the "messages" edges to the Message entity.
func (_u *ThreadUpdateOne) AddMessages(v ...*Message) *ThreadUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMessageIDs(ids...)
}

// AddCursorIDs adds the "cursors" edge to the ParticipantCursor entity by IDs.
func (_u *ThreadUpdateOne) AddCursorIDs(ids ...string) *ThreadUpdateOne {
	_u.mutation.AddCursorIDs(ids...)
	return _u
}

// AddCursors adds the "cursors" edges to the ParticipantCursor entity.
func (_u *ThreadUpdateOne) AddCursors(v ...*ParticipantCursor) *ThreadUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCursorIDs(ids...)
}

// Mutation returns the ThreadMutation object of the builder.
func (_u *ThreadUpdateOne) Mutation() *ThreadMutation {
	return _u.mutation
}

// ClearParticipants clears all "participants" edges to the ThreadParticipant entity.
func (_u *ThreadUpdateOne) ClearParticipants() *ThreadUpdateOne {
	_u.mutation.ClearParticipants()
	return _u
}

// RemoveParticipantIDs removes the "participants" edge to ThreadParticipant entities by IDs.
func (_u *ThreadUpdateOne) RemoveParticipantIDs(ids ...string) *ThreadUpdateOne {
	_u.mutation.RemoveParticipantIDs(ids...)
	return _u
}

// RemoveParticipants removes "participants" edges to ThreadParticipant entities.
func (_u *ThreadUpdateOne) RemoveParticipants(v ...*ThreadParticipant) *ThreadUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveParticipantIDs(ids...)
}

// ClearMessages clears all "messages" edges to the Message entity.
func (_u *ThreadUpdateOne) ClearMessages() *ThreadUpdateOne {
	_u.mutation.ClearMessages()
	return _u
}

// RemoveMessageIDs removes the "messages" edge to Message entities by IDs.
func (_u *ThreadUpdateOne) RemoveMessageIDs(ids ...string) *ThreadUpdateOne {
	_u.mutation.RemoveMessageIDs(ids...)
	return _u
}

// RemoveMessages removes "messages" edges to Message entities.
func (_u *ThreadUpdateOne) RemoveMessages(v ...*Message) *ThreadUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMessageIDs(ids...)
}

// ClearCursors clears all "cursors" edges to the ParticipantCursor entity.
func (_u *ThreadUpdateOne) ClearCursors() *ThreadUpdateOne {
	_u.mutation.ClearCursors()
	return _u
}

// RemoveCursorIDs removes the "cursors" edge to ParticipantCursor entities by IDs.
func (_u *ThreadUpdateOne) RemoveCursorIDs(ids ...string) *ThreadUpdateOne {
	_u.mutation.RemoveCursorIDs(ids...)
	return _u
}

// RemoveCursors removes "cursors" edges to ParticipantCursor entities.
func (_u *ThreadUpdateOne) RemoveCursors(v ...*ParticipantCursor) *ThreadUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCursorIDs(ids...)
}

// Where appends a list predicates to the ThreadUpdate builder.
func (_u *ThreadUpdateOne) Where(ps ...predicate.Thread) *ThreadUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ThreadUpdateOne) Select(field string, fields ...string) *ThreadUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Thread entity.
func (_u *ThreadUpdateOne) Save(ctx context.Context) (*Thread, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ThreadUpdateOne) SaveX(ctx context.Context) *Thread {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ThreadUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ThreadUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ThreadUpdateOne) check() error {
	if v, ok := _u.mutation.GetType(); ok {
		if err := thread.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Thread.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := thread.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Thread.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ThreadUpdateOne) sqlSave(ctx context.Context) (_node *Thread, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(thread.Table, thread.Columns, sqlgraph.NewFieldSpec(thread.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Thread.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, thread.FieldID)
		for _, f := range fields {
			if !thread.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != thread.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(thread.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(thread.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(thread.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.EscalationOwnerAgentID(); ok {
		_spec.SetField(thread.FieldEscalationOwnerAgentID, field.TypeString, value)
	}
	if _u.mutation.EscalationOwnerAgentIDCleared() {
		_spec.ClearField(thread.FieldEscalationOwnerAgentID, field.TypeString)
	}
	if value, ok := _u.mutation.EscalationAssignedByAgentID(); ok {
		_spec.SetField(thread.FieldEscalationAssignedByAgentID, field.TypeString, value)
	}
	if _u.mutation.EscalationAssignedByAgentIDCleared() {
		_spec.ClearField(thread.FieldEscalationAssignedByAgentID, field.TypeString)
	}
	if value, ok := _u.mutation.EscalationAssignedAt(); ok {
		_spec.SetField(thread.FieldEscalationAssignedAt, field.TypeTime, value)
	}
	if _u.mutation.EscalationAssignedAtCleared() {
		_spec.ClearField(thread.FieldEscalationAssignedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(thread.FieldCreatedBy, field.TypeString, value)
	}
	if _u.mutation.CreatedByCleared() {
		_spec.ClearField(thread.FieldCreatedBy, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(thread.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ParticipantsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   thread.ParticipantsTable,
			Columns: []string{thread.ParticipantsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(threadparticipant.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedParticipantsIDs(); len(nodes) > 0 && !_u.mutation.ParticipantsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   thread.ParticipantsTable,
			Columns: []string{thread.ParticipantsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(threadparticipant.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ParticipantsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   thread.ParticipantsTable,
			Columns: []string{thread.ParticipantsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(threadparticipant.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   thread.MessagesTable,
			Columns: []string{thread.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(message.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMessagesIDs(); len(nodes) > 0 && !_u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   thread.MessagesTable,
			Columns: []string{thread.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(message.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MessagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   thread.MessagesTable,
			Columns: []string{thread.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(message.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CursorsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   thread.CursorsTable,
			Columns: []string{thread.CursorsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(participantcursor.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCursorsIDs(); len(nodes) > 0 && !_u.mutation.CursorsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   thread.CursorsTable,
			Columns: []string{thread.CursorsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(participantcursor.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CursorsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   thread.CursorsTable,
			Columns: []string{thread.CursorsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(participantcursor.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Thread{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{thread.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
