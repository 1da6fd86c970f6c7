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
	"github.com/agentfabric/bridge/ent/fallbackrun"
)

// FallbackRunCreate is the builder for creating a FallbackRun entity.
type FallbackRunCreate struct {
	config
	mutation *FallbackRunMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetWorkspaceID sets the "workspace_id" field.
func (_c *FallbackRunCreate) SetWorkspaceID(v string) *FallbackRunCreate {
	_c.mutation.SetWorkspaceID(v)
	return _c
}

// SetPid sets the "pid" field.
func (_c *FallbackRunCreate) SetPid(v int) *FallbackRunCreate {
	_c.mutation.SetPid(v)
	return _c
}

// SetLaunchMode sets the "launch_mode" field.
func (_c *FallbackRunCreate) SetLaunchMode(v fallbackrun.LaunchMode) *FallbackRunCreate {
	_c.mutation.SetLaunchMode(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *FallbackRunCreate) SetStatus(v fallbackrun.Status) *FallbackRunCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *FallbackRunCreate) SetNillableStatus(v *fallbackrun.Status) *FallbackRunCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *FallbackRunCreate) SetStartedAt(v time.Time) *FallbackRunCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *FallbackRunCreate) SetNillableStartedAt(v *time.Time) *FallbackRunCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetDeadlineAt sets the "deadline_at" field.
func (_c *FallbackRunCreate) SetDeadlineAt(v time.Time) *FallbackRunCreate {
	_c.mutation.SetDeadlineAt(v)
	return _c
}

// SetEndedAt sets the "ended_at" field.
func (_c *FallbackRunCreate) SetEndedAt(v time.Time) *FallbackRunCreate {
	_c.mutation.SetEndedAt(v)
	return _c
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_c *FallbackRunCreate) SetNillableEndedAt(v *time.Time) *FallbackRunCreate {
	if v != nil {
		_c.SetEndedAt(*v)
	}
	return _c
}

// SetErrorCode sets the "error_code" field.
func (_c *FallbackRunCreate) SetErrorCode(v string) *FallbackRunCreate {
	_c.mutation.SetErrorCode(v)
	return _c
}

// SetNillableErrorCode sets the "error_code" field if the given value is not nil.
func (_c *FallbackRunCreate) SetNillableErrorCode(v *string) *FallbackRunCreate {
	if v != nil {
		_c.SetErrorCode(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *FallbackRunCreate) SetID(v string) *FallbackRunCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the FallbackRunMutation object of the builder.
func (_c *FallbackRunCreate) Mutation() *FallbackRunMutation {
	return _c.mutation
}

// Save creates the FallbackRun in the database.
func (_c *FallbackRunCreate) Save(ctx context.Context) (*FallbackRun, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FallbackRunCreate) SaveX(ctx context.Context) *FallbackRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FallbackRunCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FallbackRunCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FallbackRunCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := fallbackrun.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := fallbackrun.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FallbackRunCreate) check() error {
	if _, ok := _c.mutation.WorkspaceID(); !ok {
		return &ValidationError{Name: "workspace_id", err: errors.New(`ent: missing required field "FallbackRun.workspace_id"`)}
	}
	if _, ok := _c.mutation.Pid(); !ok {
		return &ValidationError{Name: "pid", err: errors.New(`ent: missing required field "FallbackRun.pid"`)}
	}
	if _, ok := _c.mutation.LaunchMode(); !ok {
		return &ValidationError{Name: "launch_mode", err: errors.New(`ent: missing required field "FallbackRun.launch_mode"`)}
	}
	if v, ok := _c.mutation.LaunchMode(); ok {
		if err := fallbackrun.LaunchModeValidator(v); err != nil {
			return &ValidationError{Name: "launch_mode", err: fmt.Errorf(`ent: validator failed for field "FallbackRun.launch_mode": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "FallbackRun.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := fallbackrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "FallbackRun.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "FallbackRun.started_at"`)}
	}
	if _, ok := _c.mutation.DeadlineAt(); !ok {
		return &ValidationError{Name: "deadline_at", err: errors.New(`ent: missing required field "FallbackRun.deadline_at"`)}
	}
	return nil
}

func (_c *FallbackRunCreate) sqlSave(ctx context.Context) (*FallbackRun, error) {
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
			return nil, fmt.Errorf("unexpected FallbackRun.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *FallbackRunCreate) createSpec() (*FallbackRun, *sqlgraph.CreateSpec) {
	var (
		_node = &FallbackRun{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(fallbackrun.Table, sqlgraph.NewFieldSpec(fallbackrun.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.WorkspaceID(); ok {
		_spec.SetField(fallbackrun.FieldWorkspaceID, field.TypeString, value)
		_node.WorkspaceID = value
	}
	if value, ok := _c.mutation.Pid(); ok {
		_spec.SetField(fallbackrun.FieldPid, field.TypeInt, value)
		_node.Pid = value
	}
	if value, ok := _c.mutation.LaunchMode(); ok {
		_spec.SetField(fallbackrun.FieldLaunchMode, field.TypeEnum, value)
		_node.LaunchMode = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(fallbackrun.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(fallbackrun.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.DeadlineAt(); ok {
		_spec.SetField(fallbackrun.FieldDeadlineAt, field.TypeTime, value)
		_node.DeadlineAt = value
	}
	if value, ok := _c.mutation.EndedAt(); ok {
		_spec.SetField(fallbackrun.FieldEndedAt, field.TypeTime, value)
		_node.EndedAt = &value
	}
	if value, ok := _c.mutation.ErrorCode(); ok {
		_spec.SetField(fallbackrun.FieldErrorCode, field.TypeString, value)
		_node.ErrorCode = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.FallbackRun.Create().
//		SetWorkspaceID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.FallbackRunUpsert) {
//			SetWorkspaceID(v+v).
//		}).
//		Exec(ctx)
func (_c *FallbackRunCreate) OnConflict(opts ...sql.ConflictOption) *FallbackRunUpsertOne {
	_c.conflict = opts
	return &FallbackRunUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.FallbackRun.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *FallbackRunCreate) OnConflictColumns(columns ...string) *FallbackRunUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &FallbackRunUpsertOne{
		create: _c,
	}
}

type (
	// FallbackRunUpsertOne is the builder for "upsert"-ing
	//  one FallbackRun node.
	FallbackRunUpsertOne struct {
		create *FallbackRunCreate
	}

	// FallbackRunUpsert is the "OnConflict" setter.
	FallbackRunUpsert struct {
		*sql.UpdateSet
	}
)

// SetPid sets the "pid" field.
func (u *FallbackRunUpsert) SetPid(v int) *FallbackRunUpsert {
	u.Set(fallbackrun.FieldPid, v)
	return u
}

// UpdatePid sets the "pid" field to the value that was provided on create.
func (u *FallbackRunUpsert) UpdatePid() *FallbackRunUpsert {
	u.SetExcluded(fallbackrun.FieldPid)
	return u
}

// AddPid adds v to the "pid" field.
func (u *FallbackRunUpsert) AddPid(v int) *FallbackRunUpsert {
	u.Add(fallbackrun.FieldPid, v)
	return u
}

// SetLaunchMode sets the "launch_mode" field.
func (u *FallbackRunUpsert) SetLaunchMode(v fallbackrun.LaunchMode) *FallbackRunUpsert {
	u.Set(fallbackrun.FieldLaunchMode, v)
	return u
}

// UpdateLaunchMode sets the "launch_mode" field to the value that was provided on create.
func (u *FallbackRunUpsert) UpdateLaunchMode() *FallbackRunUpsert {
	u.SetExcluded(fallbackrun.FieldLaunchMode)
	return u
}

// SetStatus sets the "status" field.
func (u *FallbackRunUpsert) SetStatus(v fallbackrun.Status) *FallbackRunUpsert {
	u.Set(fallbackrun.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *FallbackRunUpsert) UpdateStatus() *FallbackRunUpsert {
	u.SetExcluded(fallbackrun.FieldStatus)
	return u
}

// SetDeadlineAt sets the "deadline_at" field.
func (u *FallbackRunUpsert) SetDeadlineAt(v time.Time) *FallbackRunUpsert {
	u.Set(fallbackrun.FieldDeadlineAt, v)
	return u
}

// UpdateDeadlineAt sets the "deadline_at" field to the value that was provided on create.
func (u *FallbackRunUpsert) UpdateDeadlineAt() *FallbackRunUpsert {
	u.SetExcluded(fallbackrun.FieldDeadlineAt)
	return u
}

// SetEndedAt sets the "ended_at" field.
func (u *FallbackRunUpsert) SetEndedAt(v time.Time) *FallbackRunUpsert {
	u.Set(fallbackrun.FieldEndedAt, v)
	return u
}

// UpdateEndedAt sets the "ended_at" field to the value that was provided on create.
func (u *FallbackRunUpsert) UpdateEndedAt() *FallbackRunUpsert {
	u.SetExcluded(fallbackrun.FieldEndedAt)
	return u
}

// ClearEndedAt clears the value of the "ended_at" field.
func (u *FallbackRunUpsert) ClearEndedAt() *FallbackRunUpsert {
	u.SetNull(fallbackrun.FieldEndedAt)
	return u
}

// SetErrorCode sets the "error_code" field.
func (u *FallbackRunUpsert) SetErrorCode(v string) *FallbackRunUpsert {
	u.Set(fallbackrun.FieldErrorCode, v)
	return u
}

// UpdateErrorCode sets the "error_code" field to the value that was provided on create.
func (u *FallbackRunUpsert) UpdateErrorCode() *FallbackRunUpsert {
	u.SetExcluded(fallbackrun.FieldErrorCode)
	return u
}

// ClearErrorCode clears the value of the "error_code" field.
func (u *FallbackRunUpsert) ClearErrorCode() *FallbackRunUpsert {
	u.SetNull(fallbackrun.FieldErrorCode)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.FallbackRun.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(fallbackrun.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *FallbackRunUpsertOne) UpdateNewValues() *FallbackRunUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(fallbackrun.FieldID)
		}
		if _, exists := u.create.mutation.WorkspaceID(); exists {
			s.SetIgnore(fallbackrun.FieldWorkspaceID)
		}
		if _, exists := u.create.mutation.StartedAt(); exists {
			s.SetIgnore(fallbackrun.FieldStartedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.FallbackRun.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *FallbackRunUpsertOne) Ignore() *FallbackRunUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *FallbackRunUpsertOne) DoNothing() *FallbackRunUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the FallbackRunCreate.OnConflict
// documentation for more info.
func (u *FallbackRunUpsertOne) Update(set func(*FallbackRunUpsert)) *FallbackRunUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&FallbackRunUpsert{UpdateSet: update})
	}))
	return u
}

// SetPid sets the "pid" field.
func (u *FallbackRunUpsertOne) SetPid(v int) *FallbackRunUpsertOne {
	return u.Update(func(s *FallbackRunUpsert) {
		s.SetPid(v)
	})
}

// AddPid adds v to the "pid" field.
func (u *FallbackRunUpsertOne) AddPid(v int) *FallbackRunUpsertOne {
	return u.Update(func(s *FallbackRunUpsert) {
		s.AddPid(v)
	})
}

// UpdatePid sets the "pid" field to the value that was provided on create.
func (u *FallbackRunUpsertOne) UpdatePid() *FallbackRunUpsertOne {
	return u.Update(func(s *FallbackRunUpsert) {
		s.UpdatePid()
	})
}

// SetLaunchMode sets the "launch_mode" field.
func (u *FallbackRunUpsertOne) SetLaunchMode(v fallbackrun.LaunchMode) *FallbackRunUpsertOne {
	return u.Update(func(s *FallbackRunUpsert) {
		s.SetLaunchMode(v)
	})
}

// UpdateLaunchMode sets the "launch_mode" field to the value that was provided on create.
func (u *FallbackRunUpsertOne) UpdateLaunchMode() *FallbackRunUpsertOne {
	return u.Update(func(s *FallbackRunUpsert) {
		s.UpdateLaunchMode()
	})
}

// SetStatus sets the "status" field.
func (u *FallbackRunUpsertOne) SetStatus(v fallbackrun.Status) *FallbackRunUpsertOne {
	return u.Update(func(s *FallbackRunUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *FallbackRunUpsertOne) UpdateStatus() *FallbackRunUpsertOne {
	return u.Update(func(s *FallbackRunUpsert) {
		s.UpdateStatus()
	})
}

// SetDeadlineAt sets the "deadline_at" field.
func (u *FallbackRunUpsertOne) SetDeadlineAt(v time.Time) *FallbackRunUpsertOne {
	return u.Update(func(s *FallbackRunUpsert) {
		s.SetDeadlineAt(v)
	})
}

// UpdateDeadlineAt sets the "deadline_at" field to the value that was provided on create.
func (u *FallbackRunUpsertOne) UpdateDeadlineAt() *FallbackRunUpsertOne {
	return u.Update(func(s *FallbackRunUpsert) {
		s.UpdateDeadlineAt()
	})
}

// SetEndedAt sets the "ended_at" field.
func (u *FallbackRunUpsertOne) SetEndedAt(v time.Time) *FallbackRunUpsertOne {
	return u.Update(func(s *FallbackRunUpsert) {
		s.SetEndedAt(v)
	})
}

// UpdateEndedAt sets the "ended_at" field to the value that was provided on create.
func (u *FallbackRunUpsertOne) UpdateEndedAt() *FallbackRunUpsertOne {
	return u.Update(func(s *FallbackRunUpsert) {
		s.UpdateEndedAt()
	})
}

// ClearEndedAt clears the value of the "ended_at" field.
func (u *FallbackRunUpsertOne) ClearEndedAt() *FallbackRunUpsertOne {
	return u.Update(func(s *FallbackRunUpsert) {
		s.ClearEndedAt()
	})
}

// SetErrorCode sets the "error_code" field.
func (u *FallbackRunUpsertOne) SetErrorCode(v string) *FallbackRunUpsertOne {
	return u.Update(func(s *FallbackRunUpsert) {
		s.SetErrorCode(v)
	})
}

// UpdateErrorCode sets the "error_code" field to the value that was provided on create.
func (u *FallbackRunUpsertOne) UpdateErrorCode() *FallbackRunUpsertOne {
	return u.Update(func(s *FallbackRunUpsert) {
		s.UpdateErrorCode()
	})
}

// ClearErrorCode clears the value of the "error_code" field.
func (u *FallbackRunUpsertOne) ClearErrorCode() *FallbackRunUpsertOne {
	return u.Update(func(s *FallbackRunUpsert) {
		s.ClearErrorCode()
	})
}

// Exec executes the query.
func (u *FallbackRunUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for FallbackRunCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *FallbackRunUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *FallbackRunUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: FallbackRunUpsertOne.ID is not supported by MySQL driver. Use FallbackRunUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *FallbackRunUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// FallbackRunCreateBulk is the builder for creating many FallbackRun entities in bulk.
type FallbackRunCreateBulk struct {
	config
	err      error
	builders []*FallbackRunCreate
	conflict []sql.ConflictOption
}

// Save creates the FallbackRun entities in the database.
func (_c *FallbackRunCreateBulk) Save(ctx context.Context) ([]*FallbackRun, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*FallbackRun, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FallbackRunMutation)
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
func (_c *FallbackRunCreateBulk) SaveX(ctx context.Context) []*FallbackRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FallbackRunCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FallbackRunCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.FallbackRun.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.FallbackRunUpsert) {
//			SetWorkspaceID(v+v).
//		}).
//		Exec(ctx)
func (_c *FallbackRunCreateBulk) OnConflict(opts ...sql.ConflictOption) *FallbackRunUpsertBulk {
	_c.conflict = opts
	return &FallbackRunUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.FallbackRun.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *FallbackRunCreateBulk) OnConflictColumns(columns ...string) *FallbackRunUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &FallbackRunUpsertBulk{
		create: _c,
	}
}

// FallbackRunUpsertBulk is the builder for "upsert"-ing
// a bulk of FallbackRun nodes.
type FallbackRunUpsertBulk struct {
	create *FallbackRunCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.FallbackRun.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(fallbackrun.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *FallbackRunUpsertBulk) UpdateNewValues() *FallbackRunUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(fallbackrun.FieldID)
			}
			if _, exists := b.mutation.WorkspaceID(); exists {
				s.SetIgnore(fallbackrun.FieldWorkspaceID)
			}
			if _, exists := b.mutation.StartedAt(); exists {
				s.SetIgnore(fallbackrun.FieldStartedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.FallbackRun.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *FallbackRunUpsertBulk) Ignore() *FallbackRunUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *FallbackRunUpsertBulk) DoNothing() *FallbackRunUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the FallbackRunCreateBulk.OnConflict
// documentation for more info.
func (u *FallbackRunUpsertBulk) Update(set func(*FallbackRunUpsert)) *FallbackRunUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&FallbackRunUpsert{UpdateSet: update})
	}))
	return u
}

// SetPid sets the "pid" field.
func (u *FallbackRunUpsertBulk) SetPid(v int) *FallbackRunUpsertBulk {
	return u.Update(func(s *FallbackRunUpsert) {
		s.SetPid(v)
	})
}

// AddPid adds v to the "pid" field.
func (u *FallbackRunUpsertBulk) AddPid(v int) *FallbackRunUpsertBulk {
	return u.Update(func(s *FallbackRunUpsert) {
		s.AddPid(v)
	})
}

// UpdatePid sets the "pid" field to the value that was provided on create.
func (u *FallbackRunUpsertBulk) UpdatePid() *FallbackRunUpsertBulk {
	return u.Update(func(s *FallbackRunUpsert) {
		s.UpdatePid()
	})
}

// SetLaunchMode sets the "launch_mode" field.
func (u *FallbackRunUpsertBulk) SetLaunchMode(v fallbackrun.LaunchMode) *FallbackRunUpsertBulk {
	return u.Update(func(s *FallbackRunUpsert) {
		s.SetLaunchMode(v)
	})
}

// UpdateLaunchMode sets the "launch_mode" field to the value that was provided on create.
func (u *FallbackRunUpsertBulk) UpdateLaunchMode() *FallbackRunUpsertBulk {
	return u.Update(func(s *FallbackRunUpsert) {
		s.UpdateLaunchMode()
	})
}

// SetStatus sets the "status" field.
func (u *FallbackRunUpsertBulk) SetStatus(v fallbackrun.Status) *FallbackRunUpsertBulk {
	return u.Update(func(s *FallbackRunUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *FallbackRunUpsertBulk) UpdateStatus() *FallbackRunUpsertBulk {
	return u.Update(func(s *FallbackRunUpsert) {
		s.UpdateStatus()
	})
}

// SetDeadlineAt sets the "deadline_at" field.
func (u *FallbackRunUpsertBulk) SetDeadlineAt(v time.Time) *FallbackRunUpsertBulk {
	return u.Update(func(s *FallbackRunUpsert) {
		s.SetDeadlineAt(v)
	})
}

// UpdateDeadlineAt sets the "deadline_at" field to the value that was provided on create.
func (u *FallbackRunUpsertBulk) UpdateDeadlineAt() *FallbackRunUpsertBulk {
	return u.Update(func(s *FallbackRunUpsert) {
		s.UpdateDeadlineAt()
	})
}

// SetEndedAt sets the "ended_at" field.
func (u *FallbackRunUpsertBulk) SetEndedAt(v time.Time) *FallbackRunUpsertBulk {
	return u.Update(func(s *FallbackRunUpsert) {
		s.SetEndedAt(v)
	})
}

// UpdateEndedAt sets the "ended_at" field to the value that was provided on create.
func (u *FallbackRunUpsertBulk) UpdateEndedAt() *FallbackRunUpsertBulk {
	return u.Update(func(s *FallbackRunUpsert) {
		s.UpdateEndedAt()
	})
}

// ClearEndedAt clears the value of the "ended_at" field.
func (u *FallbackRunUpsertBulk) ClearEndedAt() *FallbackRunUpsertBulk {
	return u.Update(func(s *FallbackRunUpsert) {
		s.ClearEndedAt()
	})
}

// SetErrorCode sets the "error_code" field.
func (u *FallbackRunUpsertBulk) SetErrorCode(v string) *FallbackRunUpsertBulk {
	return u.Update(func(s *FallbackRunUpsert) {
		s.SetErrorCode(v)
	})
}

// UpdateErrorCode sets the "error_code" field to the value that was provided on create.
func (u *FallbackRunUpsertBulk) UpdateErrorCode() *FallbackRunUpsertBulk {
	return u.Update(func(s *FallbackRunUpsert) {
		s.UpdateErrorCode()
	})
}

// ClearErrorCode clears the value of the "error_code" field.
func (u *FallbackRunUpsertBulk) ClearErrorCode() *FallbackRunUpsertBulk {
	return u.Update(func(s *FallbackRunUpsert) {
		s.ClearErrorCode()
	})
}

// Exec executes the query.
func (u *FallbackRunUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the FallbackRunCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for FallbackRunCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *FallbackRunUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
