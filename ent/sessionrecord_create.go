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
	"github.com/agentfabric/bridge/ent/sessionrecord"
)

// SessionRecordCreate is the builder for creating a SessionRecord entity.
type SessionRecordCreate struct {
	config
	mutation *SessionRecordMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetAgentID sets the "agent_id" field.
func (_c *SessionRecordCreate) SetAgentID(v string) *SessionRecordCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetWorkspaceID sets the "workspace_id" field.
func (_c *SessionRecordCreate) SetWorkspaceID(v string) *SessionRecordCreate {
	_c.mutation.SetWorkspaceID(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *SessionRecordCreate) SetSessionID(v string) *SessionRecordCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetRuntime sets the "runtime" field.
func (_c *SessionRecordCreate) SetRuntime(v string) *SessionRecordCreate {
	_c.mutation.SetRuntime(v)
	return _c
}

// SetManagementMode sets the "management_mode" field.
func (_c *SessionRecordCreate) SetManagementMode(v sessionrecord.ManagementMode) *SessionRecordCreate {
	_c.mutation.SetManagementMode(v)
	return _c
}

// SetResumable sets the "resumable" field.
func (_c *SessionRecordCreate) SetResumable(v bool) *SessionRecordCreate {
	_c.mutation.SetResumable(v)
	return _c
}

// SetNillableResumable sets the "resumable" field if the given value is not nil.
func (_c *SessionRecordCreate) SetNillableResumable(v *bool) *SessionRecordCreate {
	if v != nil {
		_c.SetResumable(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *SessionRecordCreate) SetStatus(v sessionrecord.Status) *SessionRecordCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_c *SessionRecordCreate) SetLastHeartbeatAt(v time.Time) *SessionRecordCreate {
	_c.mutation.SetLastHeartbeatAt(v)
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SessionRecordCreate) SetUpdatedAt(v time.Time) *SessionRecordCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SessionRecordCreate) SetNillableUpdatedAt(v *time.Time) *SessionRecordCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SessionRecordCreate) SetID(v string) *SessionRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the SessionRecordMutation object of the builder.
func (_c *SessionRecordCreate) Mutation() *SessionRecordMutation {
	return _c.mutation
}

// Save creates the SessionRecord in the database.
func (_c *SessionRecordCreate) Save(ctx context.Context) (*SessionRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SessionRecordCreate) SaveX(ctx context.Context) *SessionRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SessionRecordCreate) defaults() {
	if _, ok := _c.mutation.Resumable(); !ok {
		v := sessionrecord.DefaultResumable
		_c.mutation.SetResumable(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := sessionrecord.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SessionRecordCreate) check() error {
	if _, ok := _c.mutation.AgentID(); !ok {
		return &ValidationError{Name: "agent_id", err: errors.New(`ent: missing required field "SessionRecord.agent_id"`)}
	}
	if _, ok := _c.mutation.WorkspaceID(); !ok {
		return &ValidationError{Name: "workspace_id", err: errors.New(`ent: missing required field "SessionRecord.workspace_id"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "SessionRecord.session_id"`)}
	}
	if _, ok := _c.mutation.Runtime(); !ok {
		return &ValidationError{Name: "runtime", err: errors.New(`ent: missing required field "SessionRecord.runtime"`)}
	}
	if _, ok := _c.mutation.ManagementMode(); !ok {
		return &ValidationError{Name: "management_mode", err: errors.New(`ent: missing required field "SessionRecord.management_mode"`)}
	}
	if v, ok := _c.mutation.ManagementMode(); ok {
		if err := sessionrecord.ManagementModeValidator(v); err != nil {
			return &ValidationError{Name: "management_mode", err: fmt.Errorf(`ent: validator failed for field "SessionRecord.management_mode": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Resumable(); !ok {
		return &ValidationError{Name: "resumable", err: errors.New(`ent: missing required field "SessionRecord.resumable"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "SessionRecord.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := sessionrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SessionRecord.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LastHeartbeatAt(); !ok {
		return &ValidationError{Name: "last_heartbeat_at", err: errors.New(`ent: missing required field "SessionRecord.last_heartbeat_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "SessionRecord.updated_at"`)}
	}
	return nil
}

func (_c *SessionRecordCreate) sqlSave(ctx context.Context) (*SessionRecord, error) {
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
			return nil, fmt.Errorf("unexpected SessionRecord.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SessionRecordCreate) createSpec() (*SessionRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &SessionRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sessionrecord.Table, sqlgraph.NewFieldSpec(sessionrecord.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.AgentID(); ok {
		_spec.SetField(sessionrecord.FieldAgentID, field.TypeString, value)
		_node.AgentID = value
	}
	if value, ok := _c.mutation.WorkspaceID(); ok {
		_spec.SetField(sessionrecord.FieldWorkspaceID, field.TypeString, value)
		_node.WorkspaceID = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(sessionrecord.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Runtime(); ok {
		_spec.SetField(sessionrecord.FieldRuntime, field.TypeString, value)
		_node.Runtime = value
	}
	if value, ok := _c.mutation.ManagementMode(); ok {
		_spec.SetField(sessionrecord.FieldManagementMode, field.TypeEnum, value)
		_node.ManagementMode = value
	}
	if value, ok := _c.mutation.Resumable(); ok {
		_spec.SetField(sessionrecord.FieldResumable, field.TypeBool, value)
		_node.Resumable = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(sessionrecord.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(sessionrecord.FieldLastHeartbeatAt, field.TypeTime, value)
		_node.LastHeartbeatAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(sessionrecord.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SessionRecord.Create().
//		SetAgentID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SessionRecordUpsert) {
//			SetAgentID(v+v).
//		}).
//		Exec(ctx)
func (_c *SessionRecordCreate) OnConflict(opts ...sql.ConflictOption) *SessionRecordUpsertOne {
	_c.conflict = opts
	return &SessionRecordUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SessionRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SessionRecordCreate) OnConflictColumns(columns ...string) *SessionRecordUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SessionRecordUpsertOne{
		create: _c,
	}
}

type (
	// SessionRecordUpsertOne is the builder for "upsert"-ing
	//  one SessionRecord node.
	SessionRecordUpsertOne struct {
		create *SessionRecordCreate
	}

	// SessionRecordUpsert is the "OnConflict" setter.
	SessionRecordUpsert struct {
		*sql.UpdateSet
	}
)

// SetSessionID sets the "session_id" field.
func (u *SessionRecordUpsert) SetSessionID(v string) *SessionRecordUpsert {
	u.Set(sessionrecord.FieldSessionID, v)
	return u
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *SessionRecordUpsert) UpdateSessionID() *SessionRecordUpsert {
	u.SetExcluded(sessionrecord.FieldSessionID)
	return u
}

// SetRuntime sets the "runtime" field.
func (u *SessionRecordUpsert) SetRuntime(v string) *SessionRecordUpsert {
	u.Set(sessionrecord.FieldRuntime, v)
	return u
}

// UpdateRuntime sets the "runtime" field to the value that was provided on create.
func (u *SessionRecordUpsert) UpdateRuntime() *SessionRecordUpsert {
	u.SetExcluded(sessionrecord.FieldRuntime)
	return u
}

// SetManagementMode sets the "management_mode" field.
func (u *SessionRecordUpsert) SetManagementMode(v sessionrecord.ManagementMode) *SessionRecordUpsert {
	u.Set(sessionrecord.FieldManagementMode, v)
	return u
}

// UpdateManagementMode sets the "management_mode" field to the value that was provided on create.
func (u *SessionRecordUpsert) UpdateManagementMode() *SessionRecordUpsert {
	u.SetExcluded(sessionrecord.FieldManagementMode)
	return u
}

// SetResumable sets the "resumable" field.
func (u *SessionRecordUpsert) SetResumable(v bool) *SessionRecordUpsert {
	u.Set(sessionrecord.FieldResumable, v)
	return u
}

// UpdateResumable sets the "resumable" field to the value that was provided on create.
func (u *SessionRecordUpsert) UpdateResumable() *SessionRecordUpsert {
	u.SetExcluded(sessionrecord.FieldResumable)
	return u
}

// SetStatus sets the "status" field.
func (u *SessionRecordUpsert) SetStatus(v sessionrecord.Status) *SessionRecordUpsert {
	u.Set(sessionrecord.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *SessionRecordUpsert) UpdateStatus() *SessionRecordUpsert {
	u.SetExcluded(sessionrecord.FieldStatus)
	return u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (u *SessionRecordUpsert) SetLastHeartbeatAt(v time.Time) *SessionRecordUpsert {
	u.Set(sessionrecord.FieldLastHeartbeatAt, v)
	return u
}

// UpdateLastHeartbeatAt sets the "last_heartbeat_at" field to the value that was provided on create.
func (u *SessionRecordUpsert) UpdateLastHeartbeatAt() *SessionRecordUpsert {
	u.SetExcluded(sessionrecord.FieldLastHeartbeatAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SessionRecordUpsert) SetUpdatedAt(v time.Time) *SessionRecordUpsert {
	u.Set(sessionrecord.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SessionRecordUpsert) UpdateUpdatedAt() *SessionRecordUpsert {
	u.SetExcluded(sessionrecord.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.SessionRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(sessionrecord.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SessionRecordUpsertOne) UpdateNewValues() *SessionRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(sessionrecord.FieldID)
		}
		if _, exists := u.create.mutation.AgentID(); exists {
			s.SetIgnore(sessionrecord.FieldAgentID)
		}
		if _, exists := u.create.mutation.WorkspaceID(); exists {
			s.SetIgnore(sessionrecord.FieldWorkspaceID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SessionRecord.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SessionRecordUpsertOne) Ignore() *SessionRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SessionRecordUpsertOne) DoNothing() *SessionRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SessionRecordCreate.OnConflict
// documentation for more info.
func (u *SessionRecordUpsertOne) Update(set func(*SessionRecordUpsert)) *SessionRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SessionRecordUpsert{UpdateSet: update})
	}))
	return u
}

// SetSessionID sets the "session_id" field.
func (u *SessionRecordUpsertOne) SetSessionID(v string) *SessionRecordUpsertOne {
	return u.Update(func(s *SessionRecordUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *SessionRecordUpsertOne) UpdateSessionID() *SessionRecordUpsertOne {
	return u.Update(func(s *SessionRecordUpsert) {
		s.UpdateSessionID()
	})
}

// SetRuntime sets the "runtime" field.
func (u *SessionRecordUpsertOne) SetRuntime(v string) *SessionRecordUpsertOne {
	return u.Update(func(s *SessionRecordUpsert) {
		s.SetRuntime(v)
	})
}

// UpdateRuntime sets the "runtime" field to the value that was provided on create.
func (u *SessionRecordUpsertOne) UpdateRuntime() *SessionRecordUpsertOne {
	return u.Update(func(s *SessionRecordUpsert) {
		s.UpdateRuntime()
	})
}

// SetManagementMode sets the "management_mode" field.
func (u *SessionRecordUpsertOne) SetManagementMode(v sessionrecord.ManagementMode) *SessionRecordUpsertOne {
	return u.Update(func(s *SessionRecordUpsert) {
		s.SetManagementMode(v)
	})
}

// UpdateManagementMode sets the "management_mode" field to the value that was provided on create.
func (u *SessionRecordUpsertOne) UpdateManagementMode() *SessionRecordUpsertOne {
	return u.Update(func(s *SessionRecordUpsert) {
		s.UpdateManagementMode()
	})
}

// SetResumable sets the "resumable" field.
func (u *SessionRecordUpsertOne) SetResumable(v bool) *SessionRecordUpsertOne {
	return u.Update(func(s *SessionRecordUpsert) {
		s.SetResumable(v)
	})
}

// UpdateResumable sets the "resumable" field to the value that was provided on create.
func (u *SessionRecordUpsertOne) UpdateResumable() *SessionRecordUpsertOne {
	return u.Update(func(s *SessionRecordUpsert) {
		s.UpdateResumable()
	})
}

// SetStatus sets the "status" field.
func (u *SessionRecordUpsertOne) SetStatus(v sessionrecord.Status) *SessionRecordUpsertOne {
	return u.Update(func(s *SessionRecordUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *SessionRecordUpsertOne) UpdateStatus() *SessionRecordUpsertOne {
	return u.Update(func(s *SessionRecordUpsert) {
		s.UpdateStatus()
	})
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (u *SessionRecordUpsertOne) SetLastHeartbeatAt(v time.Time) *SessionRecordUpsertOne {
	return u.Update(func(s *SessionRecordUpsert) {
		s.SetLastHeartbeatAt(v)
	})
}

// UpdateLastHeartbeatAt sets the "last_heartbeat_at" field to the value that was provided on create.
func (u *SessionRecordUpsertOne) UpdateLastHeartbeatAt() *SessionRecordUpsertOne {
	return u.Update(func(s *SessionRecordUpsert) {
		s.UpdateLastHeartbeatAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SessionRecordUpsertOne) SetUpdatedAt(v time.Time) *SessionRecordUpsertOne {
	return u.Update(func(s *SessionRecordUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SessionRecordUpsertOne) UpdateUpdatedAt() *SessionRecordUpsertOne {
	return u.Update(func(s *SessionRecordUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *SessionRecordUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SessionRecordCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SessionRecordUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SessionRecordUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: SessionRecordUpsertOne.ID is not supported by MySQL driver. Use SessionRecordUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SessionRecordUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SessionRecordCreateBulk is the builder for creating many SessionRecord entities in bulk.
type SessionRecordCreateBulk struct {
	config
	err      error
	builders []*SessionRecordCreate
	conflict []sql.ConflictOption
}

// Save creates the SessionRecord entities in the database.
func (_c *SessionRecordCreateBulk) Save(ctx context.Context) ([]*SessionRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SessionRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SessionRecordMutation)
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
func (_c *SessionRecordCreateBulk) SaveX(ctx context.Context) []*SessionRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SessionRecord.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SessionRecordUpsert) {
//			SetAgentID(v+v).
//		}).
//		Exec(ctx)
func (_c *SessionRecordCreateBulk) OnConflict(opts ...sql.ConflictOption) *SessionRecordUpsertBulk {
	_c.conflict = opts
	return &SessionRecordUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SessionRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SessionRecordCreateBulk) OnConflictColumns(columns ...string) *SessionRecordUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SessionRecordUpsertBulk{
		create: _c,
	}
}

// SessionRecordUpsertBulk is the builder for "upsert"-ing
// a bulk of SessionRecord nodes.
type SessionRecordUpsertBulk struct {
	create *SessionRecordCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.SessionRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(sessionrecord.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SessionRecordUpsertBulk) UpdateNewValues() *SessionRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(sessionrecord.FieldID)
			}
			if _, exists := b.mutation.AgentID(); exists {
				s.SetIgnore(sessionrecord.FieldAgentID)
			}
			if _, exists := b.mutation.WorkspaceID(); exists {
				s.SetIgnore(sessionrecord.FieldWorkspaceID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SessionRecord.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SessionRecordUpsertBulk) Ignore() *SessionRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SessionRecordUpsertBulk) DoNothing() *SessionRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SessionRecordCreateBulk.OnConflict
// documentation for more info.
func (u *SessionRecordUpsertBulk) Update(set func(*SessionRecordUpsert)) *SessionRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SessionRecordUpsert{UpdateSet: update})
	}))
	return u
}

// SetSessionID sets the "session_id" field.
func (u *SessionRecordUpsertBulk) SetSessionID(v string) *SessionRecordUpsertBulk {
	return u.Update(func(s *SessionRecordUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *SessionRecordUpsertBulk) UpdateSessionID() *SessionRecordUpsertBulk {
	return u.Update(func(s *SessionRecordUpsert) {
		s.UpdateSessionID()
	})
}

// SetRuntime sets the "runtime" field.
func (u *SessionRecordUpsertBulk) SetRuntime(v string) *SessionRecordUpsertBulk {
	return u.Update(func(s *SessionRecordUpsert) {
		s.SetRuntime(v)
	})
}

// UpdateRuntime sets the "runtime" field to the value that was provided on create.
func (u *SessionRecordUpsertBulk) UpdateRuntime() *SessionRecordUpsertBulk {
	return u.Update(func(s *SessionRecordUpsert) {
		s.UpdateRuntime()
	})
}

// SetManagementMode sets the "management_mode" field.
func (u *SessionRecordUpsertBulk) SetManagementMode(v sessionrecord.ManagementMode) *SessionRecordUpsertBulk {
	return u.Update(func(s *SessionRecordUpsert) {
		s.SetManagementMode(v)
	})
}

// UpdateManagementMode sets the "management_mode" field to the value that was provided on create.
func (u *SessionRecordUpsertBulk) UpdateManagementMode() *SessionRecordUpsertBulk {
	return u.Update(func(s *SessionRecordUpsert) {
		s.UpdateManagementMode()
	})
}

// SetResumable sets the "resumable" field.
func (u *SessionRecordUpsertBulk) SetResumable(v bool) *SessionRecordUpsertBulk {
	return u.Update(func(s *SessionRecordUpsert) {
		s.SetResumable(v)
	})
}

// UpdateResumable sets the "resumable" field to the value that was provided on create.
func (u *SessionRecordUpsertBulk) UpdateResumable() *SessionRecordUpsertBulk {
	return u.Update(func(s *SessionRecordUpsert) {
		s.UpdateResumable()
	})
}

// SetStatus sets the "status" field.
func (u *SessionRecordUpsertBulk) SetStatus(v sessionrecord.Status) *SessionRecordUpsertBulk {
	return u.Update(func(s *SessionRecordUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *SessionRecordUpsertBulk) UpdateStatus() *SessionRecordUpsertBulk {
	return u.Update(func(s *SessionRecordUpsert) {
		s.UpdateStatus()
	})
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (u *SessionRecordUpsertBulk) SetLastHeartbeatAt(v time.Time) *SessionRecordUpsertBulk {
	return u.Update(func(s *SessionRecordUpsert) {
		s.SetLastHeartbeatAt(v)
	})
}

// UpdateLastHeartbeatAt sets the "last_heartbeat_at" field to the value that was provided on create.
func (u *SessionRecordUpsertBulk) UpdateLastHeartbeatAt() *SessionRecordUpsertBulk {
	return u.Update(func(s *SessionRecordUpsert) {
		s.UpdateLastHeartbeatAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SessionRecordUpsertBulk) SetUpdatedAt(v time.Time) *SessionRecordUpsertBulk {
	return u.Update(func(s *SessionRecordUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SessionRecordUpsertBulk) UpdateUpdatedAt() *SessionRecordUpsertBulk {
	return u.Update(func(s *SessionRecordUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *SessionRecordUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the SessionRecordCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SessionRecordCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SessionRecordUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
