// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agentfabric/bridge/ent/message"
	"github.com/agentfabric/bridge/ent/participantcursor"
	"github.com/agentfabric/bridge/ent/thread"
	"github.com/agentfabric/bridge/ent/threadparticipant"
)

// ThreadCreate is the builder for creating a Thread entity.
type ThreadCreate struct {
	config
	mutation *ThreadMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetWorkspaceID sets the "workspace_id" field.
func (_c *ThreadCreate) SetWorkspaceID(v string) *ThreadCreate {
	_c.mutation.SetWorkspaceID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *ThreadCreate) SetTitle(v string) *ThreadCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetType sets the "type" field.
func (_c *ThreadCreate) SetType(v thread.Type) *ThreadCreate {
	_c.mutation.SetType(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ThreadCreate) SetStatus(v thread.Status) *ThreadCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ThreadCreate) SetNillableStatus(v *thread.Status) *ThreadCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetEscalationOwnerAgentID sets the "escalation_owner_agent_id" field.
func (_c *ThreadCreate) SetEscalationOwnerAgentID(v string) *ThreadCreate {
	_c.mutation.SetEscalationOwnerAgentID(v)
	return _c
}

// SetNillableEscalationOwnerAgentID sets the "escalation_owner_agent_id" field if the given value is not nil.
func (_c *ThreadCreate) SetNillableEscalationOwnerAgentID(v *string) *ThreadCreate {
	if v != nil {
		_c.SetEscalationOwnerAgentID(*v)
	}
	return _c
}

// SetEscalationAssignedByAgentID sets the "escalation_assigned_by_agent_id" field.
func (_c *ThreadCreate) SetEscalationAssignedByAgentID(v string) *ThreadCreate {
	_c.mutation.SetEscalationAssignedByAgentID(v)
	return _c
}

// SetNillableEscalationAssignedByAgentID sets the "escalation_assigned_by_agent_id" field if the given value is not nil.
func (_c *ThreadCreate) SetNillableEscalationAssignedByAgentID(v *string) *ThreadCreate {
	if v != nil {
		_c.SetEscalationAssignedByAgentID(*v)
	}
	return _c
}

// SetEscalationAssignedAt sets the "escalation_assigned_at" field.
func (_c *ThreadCreate) SetEscalationAssignedAt(v time.Time) *ThreadCreate {
	_c.mutation.SetEscalationAssignedAt(v)
	return _c
}

// SetNillableEscalationAssignedAt sets the "escalation_assigned_at" field if the given value is not nil.
func (_c *ThreadCreate) SetNillableEscalationAssignedAt(v *time.Time) *ThreadCreate {
	if v != nil {
		_c.SetEscalationAssignedAt(*v)
	}
	return _c
}

// SetCreatedBy sets the "created_by" field.
func (_c *ThreadCreate) SetCreatedBy(v string) *ThreadCreate {
	_c.mutation.SetCreatedBy(v)
	return _c
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_c *ThreadCreate) SetNillableCreatedBy(v *string) *ThreadCreate {
	if v != nil {
		_c.SetCreatedBy(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ThreadCreate) SetCreatedAt(v time.Time) *ThreadCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ThreadCreate) SetNillableCreatedAt(v *time.Time) *ThreadCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ThreadCreate) SetUpdatedAt(v time.Time) *ThreadCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ThreadCreate) SetNillableUpdatedAt(v *time.Time) *ThreadCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ThreadCreate) SetID(v string) *ThreadCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddParticipantIDs adds the "participants" edge to the ThreadParticipant entity by IDs.
func (_c *ThreadCreate) AddParticipantIDs(ids ...string) *ThreadCreate {
	_c.mutation.AddParticipantIDs(ids...)
	return _c
}

// AddParticipants adds the "participants" edges to the ThreadParticipant entity.
func (_c *ThreadCreate) AddParticipants(v ...*ThreadParticipant) *ThreadCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddParticipantIDs(ids...)
}

// AddMessageIDs adds the "messages" edge to the Message entity by IDs.
func (_c *ThreadCreate) AddMessageIDs(ids ...string) *ThreadCreate {
	_c.mutation.AddMessageIDs(ids...)
	return _c
}

// AddMessages adds the "messages" edges to the Message entity.
func (_c *ThreadCreate) AddMessages(v ...*Message) *ThreadCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMessageIDs(ids...)
}

// AddCursorIDs adds the "cursors" edge to the ParticipantCursor entity by IDs.
func (_c *ThreadCreate) AddCursorIDs(ids ...string) *ThreadCreate {
	_c.mutation.AddCursorIDs(ids...)
	return _c
}

// AddCursors adds the "cursors" edges to the ParticipantCursor entity.
func (_c *ThreadCreate) AddCursors(v ...*ParticipantCursor) *ThreadCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddCursorIDs(ids...)
}

// Mutation returns the ThreadMutation object of the builder.
func (_c *ThreadCreate) Mutation() *ThreadMutation {
	return _c.mutation
}

// Save creates the Thread in the database.
func (_c *ThreadCreate) Save(ctx context.Context) (*Thread, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ThreadCreate) SaveX(ctx context.Context) *Thread {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ThreadCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ThreadCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ThreadCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := thread.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := thread.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := thread.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ThreadCreate) check() error {
	if _, ok := _c.mutation.WorkspaceID(); !ok {
		return &ValidationError{Name: "workspace_id", err: errors.New(`ent: missing required field "Thread.workspace_id"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Thread.title"`)}
	}
	if _, ok := _c.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`ent: missing required field "Thread.type"`)}
	}
	if v, ok := _c.mutation.GetType(); ok {
		if err := thread.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Thread.type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Thread.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := thread.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Thread.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Thread.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Thread.updated_at"`)}
	}
	return nil
}

func (_c *ThreadCreate) sqlSave(ctx context.Context) (*Thread, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Thread.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ThreadCreate) createSpec() (*Thread, *sqlgraph.CreateSpec) {
	var (
		_node = &Thread{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(thread.Table, sqlgraph.NewFieldSpec(thread.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.WorkspaceID(); ok {
		_spec.SetField(thread.FieldWorkspaceID, field.TypeString, value)
		_node.WorkspaceID = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(thread.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.GetType(); ok {
		_spec.SetField(thread.FieldType, field.TypeEnum, value)
		_node.Type = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(thread.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.EscalationOwnerAgentID(); ok {
		_spec.SetField(thread.FieldEscalationOwnerAgentID, field.TypeString, value)
		_node.EscalationOwnerAgentID = &value
	}
	if value, ok := _c.mutation.EscalationAssignedByAgentID(); ok {
		_spec.SetField(thread.FieldEscalationAssignedByAgentID, field.TypeString, value)
		_node.EscalationAssignedByAgentID = &value
	}
	if value, ok := _c.mutation.EscalationAssignedAt(); ok {
		_spec.SetField(thread.FieldEscalationAssignedAt, field.TypeTime, value)
		_node.EscalationAssignedAt = &value
	}
	if value, ok := _c.mutation.CreatedBy(); ok {
		_spec.SetField(thread.FieldCreatedBy, field.TypeString, value)
		_node.CreatedBy = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(thread.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(thread.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ParticipantsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.MessagesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.CursorsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Thread.Create().
//		SetWorkspaceID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ThreadUpsert) {
//			SetWorkspaceID(v+v).
//		}).
//		Exec(ctx)
func (_c *ThreadCreate) OnConflict(opts ...sql.ConflictOption) *ThreadUpsertOne {
	_c.conflict = opts
	return &ThreadUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Thread.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ThreadCreate) OnConflictColumns(columns ...string) *ThreadUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ThreadUpsertOne{
		create: _c,
	}
}

type (
	// ThreadUpsertOne is the builder for "upsert"-ing
	//  one Thread node.
	ThreadUpsertOne struct {
		create *ThreadCreate
	}

	// ThreadUpsert is the "OnConflict" setter.
	ThreadUpsert struct {
		*sql.UpdateSet
	}
)

// SetTitle sets the "title" field.
func (u *ThreadUpsert) SetTitle(v string) *ThreadUpsert {
	u.Set(thread.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ThreadUpsert) UpdateTitle() *ThreadUpsert {
	u.SetExcluded(thread.FieldTitle)
	return u
}

// SetType sets the "type" field.
func (u *ThreadUpsert) SetType(v thread.Type) *ThreadUpsert {
	u.Set(thread.FieldType, v)
	return u
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *ThreadUpsert) UpdateType() *ThreadUpsert {
	u.SetExcluded(thread.FieldType)
	return u
}

// SetStatus sets the "status" field.
func (u *ThreadUpsert) SetStatus(v thread.Status) *ThreadUpsert {
	u.Set(thread.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ThreadUpsert) UpdateStatus() *ThreadUpsert {
	u.SetExcluded(thread.FieldStatus)
	return u
}

// SetEscalationOwnerAgentID sets the "escalation_owner_agent_id" field.
func (u *ThreadUpsert) SetEscalationOwnerAgentID(v string) *ThreadUpsert {
	u.Set(thread.FieldEscalationOwnerAgentID, v)
	return u
}

// UpdateEscalationOwnerAgentID sets the "escalation_owner_agent_id" field to the value that was provided on create.
func (u *ThreadUpsert) UpdateEscalationOwnerAgentID() *ThreadUpsert {
	u.SetExcluded(thread.FieldEscalationOwnerAgentID)
	return u
}

// ClearEscalationOwnerAgentID clears the value of the "escalation_owner_agent_id" field.
func (u *ThreadUpsert) ClearEscalationOwnerAgentID() *ThreadUpsert {
	u.SetNull(thread.FieldEscalationOwnerAgentID)
	return u
}

// SetEscalationAssignedByAgentID sets the "escalation_assigned_by_agent_id" field.
func (u *ThreadUpsert) SetEscalationAssignedByAgentID(v string) *ThreadUpsert {
	u.Set(thread.FieldEscalationAssignedByAgentID, v)
	return u
}

// UpdateEscalationAssignedByAgentID sets the "escalation_assigned_by_agent_id" field to the value that was provided on create.
func (u *ThreadUpsert) UpdateEscalationAssignedByAgentID() *ThreadUpsert {
	u.SetExcluded(thread.FieldEscalationAssignedByAgentID)
	return u
}

// ClearEscalationAssignedByAgentID clears the value of the "escalation_assigned_by_agent_id" field.
func (u *ThreadUpsert) ClearEscalationAssignedByAgentID() *ThreadUpsert {
	u.SetNull(thread.FieldEscalationAssignedByAgentID)
	return u
}

// SetEscalationAssignedAt sets the "escalation_assigned_at" field.
func (u *ThreadUpsert) SetEscalationAssignedAt(v time.Time) *ThreadUpsert {
	u.Set(thread.FieldEscalationAssignedAt, v)
	return u
}

// UpdateEscalationAssignedAt sets the "escalation_assigned_at" field to the value that was provided on create.
func (u *ThreadUpsert) UpdateEscalationAssignedAt() *ThreadUpsert {
	u.SetExcluded(thread.FieldEscalationAssignedAt)
	return u
}

// ClearEscalationAssignedAt clears the value of the "escalation_assigned_at" field.
func (u *ThreadUpsert) ClearEscalationAssignedAt() *ThreadUpsert {
	u.SetNull(thread.FieldEscalationAssignedAt)
	return u
}

// SetCreatedBy sets the "created_by" field.
func (u *ThreadUpsert) SetCreatedBy(v string) *ThreadUpsert {
	u.Set(thread.FieldCreatedBy, v)
	return u
}

// UpdateCreatedBy sets the "created_by" field to the value that was provided on create.
func (u *ThreadUpsert) UpdateCreatedBy() *ThreadUpsert {
	u.SetExcluded(thread.FieldCreatedBy)
	return u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (u *ThreadUpsert) ClearCreatedBy() *ThreadUpsert {
	u.SetNull(thread.FieldCreatedBy)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ThreadUpsert) SetUpdatedAt(v time.Time) *ThreadUpsert {
	u.Set(thread.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ThreadUpsert) UpdateUpdatedAt() *ThreadUpsert {
	u.SetExcluded(thread.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Thread.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(thread.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ThreadUpsertOne) UpdateNewValues() *ThreadUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(thread.FieldID)
		}
		if _, exists := u.create.mutation.WorkspaceID(); exists {
			s.SetIgnore(thread.FieldWorkspaceID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(thread.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Thread.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ThreadUpsertOne) Ignore() *ThreadUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ThreadUpsertOne) DoNothing() *ThreadUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ThreadCreate.OnConflict
// documentation for more info.
func (u *ThreadUpsertOne) Update(set func(*ThreadUpsert)) *ThreadUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ThreadUpsert{UpdateSet: update})
	}))
	return u
}

// SetTitle sets the "title" field.
func (u *ThreadUpsertOne) SetTitle(v string) *ThreadUpsertOne {
	return u.Update(func(s *ThreadUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ThreadUpsertOne) UpdateTitle() *ThreadUpsertOne {
	return u.Update(func(s *ThreadUpsert) {
		s.UpdateTitle()
	})
}

// SetType sets the "type" field.
func (u *ThreadUpsertOne) SetType(v thread.Type) *ThreadUpsertOne {
	return u.Update(func(s *ThreadUpsert) {
		s.SetType(v)
	})
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *ThreadUpsertOne) UpdateType() *ThreadUpsertOne {
	return u.Update(func(s *ThreadUpsert) {
		s.UpdateType()
	})
}

// SetStatus sets the "status" field.
func (u *ThreadUpsertOne) SetStatus(v thread.Status) *ThreadUpsertOne {
	return u.Update(func(s *ThreadUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ThreadUpsertOne) UpdateStatus() *ThreadUpsertOne {
	return u.Update(func(s *ThreadUpsert) {
		s.UpdateStatus()
	})
}

// SetEscalationOwnerAgentID sets the "escalation_owner_agent_id" field.
func (u *ThreadUpsertOne) SetEscalationOwnerAgentID(v string) *ThreadUpsertOne {
	return u.Update(func(s *ThreadUpsert) {
		s.SetEscalationOwnerAgentID(v)
	})
}

// UpdateEscalationOwnerAgentID sets the "escalation_owner_agent_id" field to the value that was provided on create.
func (u *ThreadUpsertOne) UpdateEscalationOwnerAgentID() *ThreadUpsertOne {
	return u.Update(func(s *ThreadUpsert) {
		s.UpdateEscalationOwnerAgentID()
	})
}

// ClearEscalationOwnerAgentID clears the value of the "escalation_owner_agent_id" field.
func (u *ThreadUpsertOne) ClearEscalationOwnerAgentID() *ThreadUpsertOne {
	return u.Update(func(s *ThreadUpsert) {
		s.ClearEscalationOwnerAgentID()
	})
}

// SetEscalationAssignedByAgentID sets the "escalation_assigned_by_agent_id" field.
func (u *ThreadUpsertOne) SetEscalationAssignedByAgentID(v string) *ThreadUpsertOne {
	return u.Update(func(s *ThreadUpsert) {
		s.SetEscalationAssignedByAgentID(v)
	})
}

// UpdateEscalationAssignedByAgentID sets the "escalation_assigned_by_agent_id" field to the value that was provided on create.
func (u *ThreadUpsertOne) UpdateEscalationAssignedByAgentID() *ThreadUpsertOne {
	return u.Update(func(s *ThreadUpsert) {
		s.UpdateEscalationAssignedByAgentID()
	})
}

// ClearEscalationAssignedByAgentID clears the value of the "escalation_assigned_by_agent_id" field.
func (u *ThreadUpsertOne) ClearEscalationAssignedByAgentID() *ThreadUpsertOne {
	return u.Update(func(s *ThreadUpsert) {
		s.ClearEscalationAssignedByAgentID()
	})
}

// SetEscalationAssignedAt sets the "escalation_assigned_at" field.
func (u *ThreadUpsertOne) SetEscalationAssignedAt(v time.Time) *ThreadUpsertOne {
	return u.Update(func(s *ThreadUpsert) {
		s.SetEscalationAssignedAt(v)
	})
}

// UpdateEscalationAssignedAt sets the "escalation_assigned_at" field to the value that was provided on create.
func (u *ThreadUpsertOne) UpdateEscalationAssignedAt() *ThreadUpsertOne {
	return u.Update(func(s *ThreadUpsert) {
		s.UpdateEscalationAssignedAt()
	})
}

// ClearEscalationAssignedAt clears the value of the "escalation_assigned_at" field.
func (u *ThreadUpsertOne) ClearEscalationAssignedAt() *ThreadUpsertOne {
	return u.Update(func(s *ThreadUpsert) {
		s.ClearEscalationAssignedAt()
	})
}

// SetCreatedBy sets the "created_by" field.
func (u *ThreadUpsertOne) SetCreatedBy(v string) *ThreadUpsertOne {
	return u.Update(func(s *ThreadUpsert) {
		s.SetCreatedBy(v)
	})
}

// UpdateCreatedBy sets the "created_by" field to the value that was provided on create.
func (u *ThreadUpsertOne) UpdateCreatedBy() *ThreadUpsertOne {
	return u.Update(func(s *ThreadUpsert) {
		s.UpdateCreatedBy()
	})
}

// ClearCreatedBy clears the value of the "created_by" field.
func (u *ThreadUpsertOne) ClearCreatedBy() *ThreadUpsertOne {
	return u.Update(func(s *ThreadUpsert) {
		s.ClearCreatedBy()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ThreadUpsertOne) SetUpdatedAt(v time.Time) *ThreadUpsertOne {
	return u.Update(func(s *ThreadUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ThreadUpsertOne) UpdateUpdatedAt() *ThreadUpsertOne {
	return u.Update(func(s *ThreadUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ThreadUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ThreadCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ThreadUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ThreadUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ThreadUpsertOne.ID is not supported by MySQL driver. Use ThreadUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ThreadUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ThreadCreateBulk is the builder for creating many Thread entities in bulk.
type ThreadCreateBulk struct {
	config
	err      error
	builders []*ThreadCreate
	conflict []sql.ConflictOption
}

// Save creates the Thread entities in the database.
func (_c *ThreadCreateBulk) Save(ctx context.Context) ([]*Thread, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Thread, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ThreadMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ThreadCreateBulk) SaveX(ctx context.Context) []*Thread {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ThreadCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ThreadCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Thread.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ThreadUpsert) {
//			SetWorkspaceID(v+v).
//		}).
//		Exec(ctx)
func (_c *ThreadCreateBulk) OnConflict(opts ...sql.ConflictOption) *ThreadUpsertBulk {
	_c.conflict = opts
	return &ThreadUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Thread.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ThreadCreateBulk) OnConflictColumns(columns ...string) *ThreadUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ThreadUpsertBulk{
		create: _c,
	}
}

// ThreadUpsertBulk is the builder for "upsert"-ing
// a bulk of Thread nodes.
type ThreadUpsertBulk struct {
	create *ThreadCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Thread.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(thread.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ThreadUpsertBulk) UpdateNewValues() *ThreadUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(thread.FieldID)
			}
			if _, exists := b.mutation.WorkspaceID(); exists {
				s.SetIgnore(thread.FieldWorkspaceID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(thread.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Thread.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ThreadUpsertBulk) Ignore() *ThreadUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ThreadUpsertBulk) DoNothing() *ThreadUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ThreadCreateBulk.OnConflict
// documentation for more info.
func (u *ThreadUpsertBulk) Update(set func(*ThreadUpsert)) *ThreadUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ThreadUpsert{UpdateSet: update})
	}))
	return u
}

// SetTitle sets the "title" field.
func (u *ThreadUpsertBulk) SetTitle(v string) *ThreadUpsertBulk {
	return u.Update(func(s *ThreadUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ThreadUpsertBulk) UpdateTitle() *ThreadUpsertBulk {
	return u.Update(func(s *ThreadUpsert) {
		s.UpdateTitle()
	})
}

// SetType sets the "type" field.
func (u *ThreadUpsertBulk) SetType(v thread.Type) *ThreadUpsertBulk {
	return u.Update(func(s *ThreadUpsert) {
		s.SetType(v)
	})
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *ThreadUpsertBulk) UpdateType() *ThreadUpsertBulk {
	return u.Update(func(s *ThreadUpsert) {
		s.UpdateType()
	})
}

// SetStatus sets the "status" field.
func (u *ThreadUpsertBulk) SetStatus(v thread.Status) *ThreadUpsertBulk {
	return u.Update(func(s *ThreadUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ThreadUpsertBulk) UpdateStatus() *ThreadUpsertBulk {
	return u.Update(func(s *ThreadUpsert) {
		s.UpdateStatus()
	})
}

// SetEscalationOwnerAgentID sets the "escalation_owner_agent_id" field.
func (u *ThreadUpsertBulk) SetEscalationOwnerAgentID(v string) *ThreadUpsertBulk {
	return u.Update(func(s *ThreadUpsert) {
		s.SetEscalationOwnerAgentID(v)
	})
}

// UpdateEscalationOwnerAgentID sets the "escalation_owner_agent_id" field to the value that was provided on create.
func (u *ThreadUpsertBulk) UpdateEscalationOwnerAgentID() *ThreadUpsertBulk {
	return u.Update(func(s *ThreadUpsert) {
		s.UpdateEscalationOwnerAgentID()
	})
}

// ClearEscalationOwnerAgentID clears the value of the "escalation_owner_agent_id" field.
func (u *ThreadUpsertBulk) ClearEscalationOwnerAgentID() *ThreadUpsertBulk {
	return u.Update(func(s *ThreadUpsert) {
		s.ClearEscalationOwnerAgentID()
	})
}

// SetEscalationAssignedByAgentID sets the "escalation_assigned_by_agent_id" field.
func (u *ThreadUpsertBulk) SetEscalationAssignedByAgentID(v string) *ThreadUpsertBulk {
	return u.Update(func(s *ThreadUpsert) {
		s.SetEscalationAssignedByAgentID(v)
	})
}

// UpdateEscalationAssignedByAgentID sets the "escalation_assigned_by_agent_id" field to the value that was provided on create.
func (u *ThreadUpsertBulk) UpdateEscalationAssignedByAgentID() *ThreadUpsertBulk {
	return u.Update(func(s *ThreadUpsert) {
		s.UpdateEscalationAssignedByAgentID()
	})
}

// ClearEscalationAssignedByAgentID clears the value of the "escalation_assigned_by_agent_id" field.
func (u *ThreadUpsertBulk) ClearEscalationAssignedByAgentID() *ThreadUpsertBulk {
	return u.Update(func(s *ThreadUpsert) {
		s.ClearEscalationAssignedByAgentID()
	})
}

// SetEscalationAssignedAt sets the "escalation_assigned_at" field.
func (u *ThreadUpsertBulk) SetEscalationAssignedAt(v time.Time) *ThreadUpsertBulk {
	return u.Update(func(s *ThreadUpsert) {
		s.SetEscalationAssignedAt(v)
	})
}

// UpdateEscalationAssignedAt sets the "escalation_assigned_at" field to the value that was provided on create.
func (u *ThreadUpsertBulk) UpdateEscalationAssignedAt() *ThreadUpsertBulk {
	return u.Update(func(s *ThreadUpsert) {
		s.UpdateEscalationAssignedAt()
	})
}

// ClearEscalationAssignedAt clears the value of the "escalation_assigned_at" field.
func (u *ThreadUpsertBulk) ClearEscalationAssignedAt() *ThreadUpsertBulk {
	return u.Update(func(s *ThreadUpsert) {
		s.ClearEscalationAssignedAt()
	})
}

// SetCreatedBy sets the "created_by" field.
func (u *ThreadUpsertBulk) SetCreatedBy(v string) *ThreadUpsertBulk {
	return u.Update(func(s *ThreadUpsert) {
		s.SetCreatedBy(v)
	})
}

// UpdateCreatedBy sets the "created_by" field to the value that was provided on create.
func (u *ThreadUpsertBulk) UpdateCreatedBy() *ThreadUpsertBulk {
	return u.Update(func(s *ThreadUpsert) {
		s.UpdateCreatedBy()
	})
}

// ClearCreatedBy clears the value of the "created_by" field.
func (u *ThreadUpsertBulk) ClearCreatedBy() *ThreadUpsertBulk {
	return u.Update(func(s *ThreadUpsert) {
		s.ClearCreatedBy()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ThreadUpsertBulk) SetUpdatedAt(v time.Time) *ThreadUpsertBulk {
	return u.Update(func(s *ThreadUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ThreadUpsertBulk) UpdateUpdatedAt() *ThreadUpsertBulk {
	return u.Update(func(s *ThreadUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ThreadUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ThreadCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ThreadCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ThreadUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
