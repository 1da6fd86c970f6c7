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
	"github.com/agentfabric/bridge/ent/triggerattempt"
	"github.com/agentfabric/bridge/ent/triggerjob"
)

// TriggerJobCreate is the builder for creating a TriggerJob entity.
type TriggerJobCreate struct {
	config
	mutation *TriggerJobMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetThreadID sets the "thread_id" field.
func (_c *TriggerJobCreate) SetThreadID(v string) *TriggerJobCreate {
	_c.mutation.SetThreadID(v)
	return _c
}

// SetWorkspaceID sets the "workspace_id" field.
func (_c *TriggerJobCreate) SetWorkspaceID(v string) *TriggerJobCreate {
	_c.mutation.SetWorkspaceID(v)
	return _c
}

// SetTargetAgentID sets the "target_agent_id" field.
func (_c *TriggerJobCreate) SetTargetAgentID(v string) *TriggerJobCreate {
	_c.mutation.SetTargetAgentID(v)
	return _c
}

// SetTargetSessionID sets the "target_session_id" field.
func (_c *TriggerJobCreate) SetTargetSessionID(v string) *TriggerJobCreate {
	_c.mutation.SetTargetSessionID(v)
	return _c
}

// SetNillableTargetSessionID sets the "target_session_id" field if the given value is not nil.
func (_c *TriggerJobCreate) SetNillableTargetSessionID(v *string) *TriggerJobCreate {
	if v != nil {
		_c.SetTargetSessionID(*v)
	}
	return _c
}

// SetReason sets the "reason" field.
func (_c *TriggerJobCreate) SetReason(v string) *TriggerJobCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetPrompt sets the "prompt" field.
func (_c *TriggerJobCreate) SetPrompt(v string) *TriggerJobCreate {
	_c.mutation.SetPrompt(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *TriggerJobCreate) SetStatus(v triggerjob.Status) *TriggerJobCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *TriggerJobCreate) SetNillableStatus(v *triggerjob.Status) *TriggerJobCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetAttempts sets the "attempts" field.
func (_c *TriggerJobCreate) SetAttempts(v int) *TriggerJobCreate {
	_c.mutation.SetAttempts(v)
	return _c
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_c *TriggerJobCreate) SetNillableAttempts(v *int) *TriggerJobCreate {
	if v != nil {
		_c.SetAttempts(*v)
	}
	return _c
}

// SetMaxRetries sets the "max_retries" field.
func (_c *TriggerJobCreate) SetMaxRetries(v int) *TriggerJobCreate {
	_c.mutation.SetMaxRetries(v)
	return _c
}

// SetNextRetryAt sets the "next_retry_at" field.
func (_c *TriggerJobCreate) SetNextRetryAt(v time.Time) *TriggerJobCreate {
	_c.mutation.SetNextRetryAt(v)
	return _c
}

// SetNillableNextRetryAt sets the "next_retry_at" field if the given value is not nil.
func (_c *TriggerJobCreate) SetNillableNextRetryAt(v *time.Time) *TriggerJobCreate {
	if v != nil {
		_c.SetNextRetryAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TriggerJobCreate) SetCreatedAt(v time.Time) *TriggerJobCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TriggerJobCreate) SetNillableCreatedAt(v *time.Time) *TriggerJobCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TriggerJobCreate) SetUpdatedAt(v time.Time) *TriggerJobCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TriggerJobCreate) SetNillableUpdatedAt(v *time.Time) *TriggerJobCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TriggerJobCreate) SetID(v string) *TriggerJobCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddTriggerAttemptIDs adds the "trigger_attempts" edge to the TriggerAttempt entity by IDs.
func (_c *TriggerJobCreate) AddTriggerAttemptIDs(ids ...string) *TriggerJobCreate {
	_c.mutation.AddTriggerAttemptIDs(ids...)
	return _c
}

// AddTriggerAttempts adds the "trigger_attempts" edges to the TriggerAttempt entity.
func (_c *TriggerJobCreate) AddTriggerAttempts(v ...*TriggerAttempt) *TriggerJobCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTriggerAttemptIDs(ids...)
}

// Mutation returns the TriggerJobMutation object of the builder.
func (_c *TriggerJobCreate) Mutation() *TriggerJobMutation {
	return _c.mutation
}

// Save creates the TriggerJob in the database.
func (_c *TriggerJobCreate) Save(ctx context.Context) (*TriggerJob, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TriggerJobCreate) SaveX(ctx context.Context) *TriggerJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TriggerJobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TriggerJobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TriggerJobCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := triggerjob.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		v := triggerjob.DefaultAttempts
		_c.mutation.SetAttempts(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := triggerjob.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := triggerjob.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TriggerJobCreate) check() error {
	if _, ok := _c.mutation.ThreadID(); !ok {
		return &ValidationError{Name: "thread_id", err: errors.New(`ent: missing required field "TriggerJob.thread_id"`)}
	}
	if _, ok := _c.mutation.WorkspaceID(); !ok {
		return &ValidationError{Name: "workspace_id", err: errors.New(`ent: missing required field "TriggerJob.workspace_id"`)}
	}
	if _, ok := _c.mutation.TargetAgentID(); !ok {
		return &ValidationError{Name: "target_agent_id", err: errors.New(`ent: missing required field "TriggerJob.target_agent_id"`)}
	}
	if _, ok := _c.mutation.Reason(); !ok {
		return &ValidationError{Name: "reason", err: errors.New(`ent: missing required field "TriggerJob.reason"`)}
	}
	if _, ok := _c.mutation.Prompt(); !ok {
		return &ValidationError{Name: "prompt", err: errors.New(`ent: missing required field "TriggerJob.prompt"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "TriggerJob.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := triggerjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TriggerJob.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		return &ValidationError{Name: "attempts", err: errors.New(`ent: missing required field "TriggerJob.attempts"`)}
	}
	if _, ok := _c.mutation.MaxRetries(); !ok {
		return &ValidationError{Name: "max_retries", err: errors.New(`ent: missing required field "TriggerJob.max_retries"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TriggerJob.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "TriggerJob.updated_at"`)}
	}
	return nil
}

func (_c *TriggerJobCreate) sqlSave(ctx context.Context) (*TriggerJob, error) {
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
			return nil, fmt.Errorf("unexpected TriggerJob.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TriggerJobCreate) createSpec() (*TriggerJob, *sqlgraph.CreateSpec) {
	var (
		_node = &TriggerJob{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(triggerjob.Table, sqlgraph.NewFieldSpec(triggerjob.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ThreadID(); ok {
		_spec.SetField(triggerjob.FieldThreadID, field.TypeString, value)
		_node.ThreadID = value
	}
	if value, ok := _c.mutation.WorkspaceID(); ok {
		_spec.SetField(triggerjob.FieldWorkspaceID, field.TypeString, value)
		_node.WorkspaceID = value
	}
	if value, ok := _c.mutation.TargetAgentID(); ok {
		_spec.SetField(triggerjob.FieldTargetAgentID, field.TypeString, value)
		_node.TargetAgentID = value
	}
	if value, ok := _c.mutation.TargetSessionID(); ok {
		_spec.SetField(triggerjob.FieldTargetSessionID, field.TypeString, value)
		_node.TargetSessionID = &value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(triggerjob.FieldReason, field.TypeString, value)
		_node.Reason = value
	}
	if value, ok := _c.mutation.Prompt(); ok {
		_spec.SetField(triggerjob.FieldPrompt, field.TypeString, value)
		_node.Prompt = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(triggerjob.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Attempts(); ok {
		_spec.SetField(triggerjob.FieldAttempts, field.TypeInt, value)
		_node.Attempts = value
	}
	if value, ok := _c.mutation.MaxRetries(); ok {
		_spec.SetField(triggerjob.FieldMaxRetries, field.TypeInt, value)
		_node.MaxRetries = value
	}
	if value, ok := _c.mutation.NextRetryAt(); ok {
		_spec.SetField(triggerjob.FieldNextRetryAt, field.TypeTime, value)
		_node.NextRetryAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(triggerjob.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(triggerjob.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.TriggerAttemptsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   triggerjob.TriggerAttemptsTable,
			Columns: []string{triggerjob.TriggerAttemptsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(triggerattempt.FieldID, field.TypeString),
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
//	client.TriggerJob.Create().
//		SetThreadID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TriggerJobUpsert) {
//			SetThreadID(v+v).
//		}).
//		Exec(ctx)
func (_c *TriggerJobCreate) OnConflict(opts ...sql.ConflictOption) *TriggerJobUpsertOne {
	_c.conflict = opts
	return &TriggerJobUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TriggerJob.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TriggerJobCreate) OnConflictColumns(columns ...string) *TriggerJobUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TriggerJobUpsertOne{
		create: _c,
	}
}

type (
	// TriggerJobUpsertOne is the builder for "upsert"-ing
	//  one TriggerJob node.
	TriggerJobUpsertOne struct {
		create *TriggerJobCreate
	}

	// TriggerJobUpsert is the "OnConflict" setter.
	TriggerJobUpsert struct {
		*sql.UpdateSet
	}
)

// SetTargetSessionID sets the "target_session_id" field.
func (u *TriggerJobUpsert) SetTargetSessionID(v string) *TriggerJobUpsert {
	u.Set(triggerjob.FieldTargetSessionID, v)
	return u
}

// UpdateTargetSessionID sets the "target_session_id" field to the value that was provided on create.
func (u *TriggerJobUpsert) UpdateTargetSessionID() *TriggerJobUpsert {
	u.SetExcluded(triggerjob.FieldTargetSessionID)
	return u
}

// ClearTargetSessionID clears the value of the "target_session_id" field.
func (u *TriggerJobUpsert) ClearTargetSessionID() *TriggerJobUpsert {
	u.SetNull(triggerjob.FieldTargetSessionID)
	return u
}

// SetReason sets the "reason" field.
func (u *TriggerJobUpsert) SetReason(v string) *TriggerJobUpsert {
	u.Set(triggerjob.FieldReason, v)
	return u
}

// UpdateReason sets the "reason" field to the value that was provided on create.
func (u *TriggerJobUpsert) UpdateReason() *TriggerJobUpsert {
	u.SetExcluded(triggerjob.FieldReason)
	return u
}

// SetPrompt sets the "prompt" field.
func (u *TriggerJobUpsert) SetPrompt(v string) *TriggerJobUpsert {
	u.Set(triggerjob.FieldPrompt, v)
	return u
}

// UpdatePrompt sets the "prompt" field to the value that was provided on create.
func (u *TriggerJobUpsert) UpdatePrompt() *TriggerJobUpsert {
	u.SetExcluded(triggerjob.FieldPrompt)
	return u
}

// SetStatus sets the "status" field.
func (u *TriggerJobUpsert) SetStatus(v triggerjob.Status) *TriggerJobUpsert {
	u.Set(triggerjob.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *TriggerJobUpsert) UpdateStatus() *TriggerJobUpsert {
	u.SetExcluded(triggerjob.FieldStatus)
	return u
}

// SetAttempts sets the "attempts" field.
func (u *TriggerJobUpsert) SetAttempts(v int) *TriggerJobUpsert {
	u.Set(triggerjob.FieldAttempts, v)
	return u
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *TriggerJobUpsert) UpdateAttempts() *TriggerJobUpsert {
	u.SetExcluded(triggerjob.FieldAttempts)
	return u
}

// AddAttempts adds v to the "attempts" field.
func (u *TriggerJobUpsert) AddAttempts(v int) *TriggerJobUpsert {
	u.Add(triggerjob.FieldAttempts, v)
	return u
}

// SetMaxRetries sets the "max_retries" field.
func (u *TriggerJobUpsert) SetMaxRetries(v int) *TriggerJobUpsert {
	u.Set(triggerjob.FieldMaxRetries, v)
	return u
}

// UpdateMaxRetries sets the "max_retries" field to the value that was provided on create.
func (u *TriggerJobUpsert) UpdateMaxRetries() *TriggerJobUpsert {
	u.SetExcluded(triggerjob.FieldMaxRetries)
	return u
}

// AddMaxRetries adds v to the "max_retries" field.
func (u *TriggerJobUpsert) AddMaxRetries(v int) *TriggerJobUpsert {
	u.Add(triggerjob.FieldMaxRetries, v)
	return u
}

// SetNextRetryAt sets the "next_retry_at" field.
func (u *TriggerJobUpsert) SetNextRetryAt(v time.Time) *TriggerJobUpsert {
	u.Set(triggerjob.FieldNextRetryAt, v)
	return u
}

// UpdateNextRetryAt sets the "next_retry_at" field to the value that was provided on create.
func (u *TriggerJobUpsert) UpdateNextRetryAt() *TriggerJobUpsert {
	u.SetExcluded(triggerjob.FieldNextRetryAt)
	return u
}

// ClearNextRetryAt clears the value of the "next_retry_at" field.
func (u *TriggerJobUpsert) ClearNextRetryAt() *TriggerJobUpsert {
	u.SetNull(triggerjob.FieldNextRetryAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TriggerJobUpsert) SetUpdatedAt(v time.Time) *TriggerJobUpsert {
	u.Set(triggerjob.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TriggerJobUpsert) UpdateUpdatedAt() *TriggerJobUpsert {
	u.SetExcluded(triggerjob.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.TriggerJob.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(triggerjob.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TriggerJobUpsertOne) UpdateNewValues() *TriggerJobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(triggerjob.FieldID)
		}
		if _, exists := u.create.mutation.ThreadID(); exists {
			s.SetIgnore(triggerjob.FieldThreadID)
		}
		if _, exists := u.create.mutation.WorkspaceID(); exists {
			s.SetIgnore(triggerjob.FieldWorkspaceID)
		}
		if _, exists := u.create.mutation.TargetAgentID(); exists {
			s.SetIgnore(triggerjob.FieldTargetAgentID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(triggerjob.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TriggerJob.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TriggerJobUpsertOne) Ignore() *TriggerJobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TriggerJobUpsertOne) DoNothing() *TriggerJobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TriggerJobCreate.OnConflict
// documentation for more info.
func (u *TriggerJobUpsertOne) Update(set func(*TriggerJobUpsert)) *TriggerJobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TriggerJobUpsert{UpdateSet: update})
	}))
	return u
}

// SetTargetSessionID sets the "target_session_id" field.
func (u *TriggerJobUpsertOne) SetTargetSessionID(v string) *TriggerJobUpsertOne {
	return u.Update(func(s *TriggerJobUpsert) {
		s.SetTargetSessionID(v)
	})
}

// UpdateTargetSessionID sets the "target_session_id" field to the value that was provided on create.
func (u *TriggerJobUpsertOne) UpdateTargetSessionID() *TriggerJobUpsertOne {
	return u.Update(func(s *TriggerJobUpsert) {
		s.UpdateTargetSessionID()
	})
}

// ClearTargetSessionID clears the value of the "target_session_id" field.
func (u *TriggerJobUpsertOne) ClearTargetSessionID() *TriggerJobUpsertOne {
	return u.Update(func(s *TriggerJobUpsert) {
		s.ClearTargetSessionID()
	})
}

// SetReason sets the "reason" field.
func (u *TriggerJobUpsertOne) SetReason(v string) *TriggerJobUpsertOne {
	return u.Update(func(s *TriggerJobUpsert) {
		s.SetReason(v)
	})
}

// UpdateReason sets the "reason" field to the value that was provided on create.
func (u *TriggerJobUpsertOne) UpdateReason() *TriggerJobUpsertOne {
	return u.Update(func(s *TriggerJobUpsert) {
		s.UpdateReason()
	})
}

// SetPrompt sets the "prompt" field.
func (u *TriggerJobUpsertOne) SetPrompt(v string) *TriggerJobUpsertOne {
	return u.Update(func(s *TriggerJobUpsert) {
		s.SetPrompt(v)
	})
}

// UpdatePrompt sets the "prompt" field to the value that was provided on create.
func (u *TriggerJobUpsertOne) UpdatePrompt() *TriggerJobUpsertOne {
	return u.Update(func(s *TriggerJobUpsert) {
		s.UpdatePrompt()
	})
}

// SetStatus sets the "status" field.
func (u *TriggerJobUpsertOne) SetStatus(v triggerjob.Status) *TriggerJobUpsertOne {
	return u.Update(func(s *TriggerJobUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *TriggerJobUpsertOne) UpdateStatus() *TriggerJobUpsertOne {
	return u.Update(func(s *TriggerJobUpsert) {
		s.UpdateStatus()
	})
}

// SetAttempts sets the "attempts" field.
func (u *TriggerJobUpsertOne) SetAttempts(v int) *TriggerJobUpsertOne {
	return u.Update(func(s *TriggerJobUpsert) {
		s.SetAttempts(v)
	})
}

// AddAttempts adds v to the "attempts" field.
func (u *TriggerJobUpsertOne) AddAttempts(v int) *TriggerJobUpsertOne {
	return u.Update(func(s *TriggerJobUpsert) {
		s.AddAttempts(v)
	})
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *TriggerJobUpsertOne) UpdateAttempts() *TriggerJobUpsertOne {
	return u.Update(func(s *TriggerJobUpsert) {
		s.UpdateAttempts()
	})
}

// SetMaxRetries sets the "max_retries" field.
func (u *TriggerJobUpsertOne) SetMaxRetries(v int) *TriggerJobUpsertOne {
	return u.Update(func(s *TriggerJobUpsert) {
		s.SetMaxRetries(v)
	})
}

// AddMaxRetries adds v to the "max_retries" field.
func (u *TriggerJobUpsertOne) AddMaxRetries(v int) *TriggerJobUpsertOne {
	return u.Update(func(s *TriggerJobUpsert) {
		s.AddMaxRetries(v)
	})
}

// UpdateMaxRetries sets the "max_retries" field to the value that was provided on create.
func (u *TriggerJobUpsertOne) UpdateMaxRetries() *TriggerJobUpsertOne {
	return u.Update(func(s *TriggerJobUpsert) {
		s.UpdateMaxRetries()
	})
}

// SetNextRetryAt sets the "next_retry_at" field.
func (u *TriggerJobUpsertOne) SetNextRetryAt(v time.Time) *TriggerJobUpsertOne {
	return u.Update(func(s *TriggerJobUpsert) {
		s.SetNextRetryAt(v)
	})
}

// UpdateNextRetryAt sets the "next_retry_at" field to the value that was provided on create.
func (u *TriggerJobUpsertOne) UpdateNextRetryAt() *TriggerJobUpsertOne {
	return u.Update(func(s *TriggerJobUpsert) {
		s.UpdateNextRetryAt()
	})
}

// ClearNextRetryAt clears the value of the "next_retry_at" field.
func (u *TriggerJobUpsertOne) ClearNextRetryAt() *TriggerJobUpsertOne {
	return u.Update(func(s *TriggerJobUpsert) {
		s.ClearNextRetryAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TriggerJobUpsertOne) SetUpdatedAt(v time.Time) *TriggerJobUpsertOne {
	return u.Update(func(s *TriggerJobUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TriggerJobUpsertOne) UpdateUpdatedAt() *TriggerJobUpsertOne {
	return u.Update(func(s *TriggerJobUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *TriggerJobUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TriggerJobCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TriggerJobUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TriggerJobUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: TriggerJobUpsertOne.ID is not supported by MySQL driver. Use TriggerJobUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TriggerJobUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TriggerJobCreateBulk is the builder for creating many TriggerJob entities in bulk.
type TriggerJobCreateBulk struct {
	config
	err      error
	builders []*TriggerJobCreate
	conflict []sql.ConflictOption
}

// Save creates the TriggerJob entities in the database.
func (_c *TriggerJobCreateBulk) Save(ctx context.Context) ([]*TriggerJob, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TriggerJob, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TriggerJobMutation)
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
func (_c *TriggerJobCreateBulk) SaveX(ctx context.Context) []*TriggerJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TriggerJobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TriggerJobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TriggerJob.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TriggerJobUpsert) {
//			SetThreadID(v+v).
//		}).
//		Exec(ctx)
func (_c *TriggerJobCreateBulk) OnConflict(opts ...sql.ConflictOption) *TriggerJobUpsertBulk {
	_c.conflict = opts
	return &TriggerJobUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TriggerJob.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TriggerJobCreateBulk) OnConflictColumns(columns ...string) *TriggerJobUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TriggerJobUpsertBulk{
		create: _c,
	}
}

// TriggerJobUpsertBulk is the builder for "upsert"-ing
// a bulk of TriggerJob nodes.
type TriggerJobUpsertBulk struct {
	create *TriggerJobCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.TriggerJob.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(triggerjob.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TriggerJobUpsertBulk) UpdateNewValues() *TriggerJobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(triggerjob.FieldID)
			}
			if _, exists := b.mutation.ThreadID(); exists {
				s.SetIgnore(triggerjob.FieldThreadID)
			}
			if _, exists := b.mutation.WorkspaceID(); exists {
				s.SetIgnore(triggerjob.FieldWorkspaceID)
			}
			if _, exists := b.mutation.TargetAgentID(); exists {
				s.SetIgnore(triggerjob.FieldTargetAgentID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(triggerjob.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TriggerJob.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TriggerJobUpsertBulk) Ignore() *TriggerJobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TriggerJobUpsertBulk) DoNothing() *TriggerJobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TriggerJobCreateBulk.OnConflict
// documentation for more info.
func (u *TriggerJobUpsertBulk) Update(set func(*TriggerJobUpsert)) *TriggerJobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TriggerJobUpsert{UpdateSet: update})
	}))
	return u
}

// SetTargetSessionID sets the "target_session_id" field.
func (u *TriggerJobUpsertBulk) SetTargetSessionID(v string) *TriggerJobUpsertBulk {
	return u.Update(func(s *TriggerJobUpsert) {
		s.SetTargetSessionID(v)
	})
}

// UpdateTargetSessionID sets the "target_session_id" field to the value that was provided on create.
func (u *TriggerJobUpsertBulk) UpdateTargetSessionID() *TriggerJobUpsertBulk {
	return u.Update(func(s *TriggerJobUpsert) {
		s.UpdateTargetSessionID()
	})
}

// ClearTargetSessionID clears the value of the "target_session_id" field.
func (u *TriggerJobUpsertBulk) ClearTargetSessionID() *TriggerJobUpsertBulk {
	return u.Update(func(s *TriggerJobUpsert) {
		s.ClearTargetSessionID()
	})
}

// SetReason sets the "reason" field.
func (u *TriggerJobUpsertBulk) SetReason(v string) *TriggerJobUpsertBulk {
	return u.Update(func(s *TriggerJobUpsert) {
		s.SetReason(v)
	})
}

// UpdateReason sets the "reason" field to the value that was provided on create.
func (u *TriggerJobUpsertBulk) UpdateReason() *TriggerJobUpsertBulk {
	return u.Update(func(s *TriggerJobUpsert) {
		s.UpdateReason()
	})
}

// SetPrompt sets the "prompt" field.
func (u *TriggerJobUpsertBulk) SetPrompt(v string) *TriggerJobUpsertBulk {
	return u.Update(func(s *TriggerJobUpsert) {
		s.SetPrompt(v)
	})
}

// UpdatePrompt sets the "prompt" field to the value that was provided on create.
func (u *TriggerJobUpsertBulk) UpdatePrompt() *TriggerJobUpsertBulk {
	return u.Update(func(s *TriggerJobUpsert) {
		s.UpdatePrompt()
	})
}

// SetStatus sets the "status" field.
func (u *TriggerJobUpsertBulk) SetStatus(v triggerjob.Status) *TriggerJobUpsertBulk {
	return u.Update(func(s *TriggerJobUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *TriggerJobUpsertBulk) UpdateStatus() *TriggerJobUpsertBulk {
	return u.Update(func(s *TriggerJobUpsert) {
		s.UpdateStatus()
	})
}

// SetAttempts sets the "attempts" field.
func (u *TriggerJobUpsertBulk) SetAttempts(v int) *TriggerJobUpsertBulk {
	return u.Update(func(s *TriggerJobUpsert) {
		s.SetAttempts(v)
	})
}

// AddAttempts adds v to the "attempts" field.
func (u *TriggerJobUpsertBulk) AddAttempts(v int) *TriggerJobUpsertBulk {
	return u.Update(func(s *TriggerJobUpsert) {
		s.AddAttempts(v)
	})
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *TriggerJobUpsertBulk) UpdateAttempts() *TriggerJobUpsertBulk {
	return u.Update(func(s *TriggerJobUpsert) {
		s.UpdateAttempts()
	})
}

// SetMaxRetries sets the "max_retries" field.
func (u *TriggerJobUpsertBulk) SetMaxRetries(v int) *TriggerJobUpsertBulk {
	return u.Update(func(s *TriggerJobUpsert) {
		s.SetMaxRetries(v)
	})
}

// AddMaxRetries adds v to the "max_retries" field.
func (u *TriggerJobUpsertBulk) AddMaxRetries(v int) *TriggerJobUpsertBulk {
	return u.Update(func(s *TriggerJobUpsert) {
		s.AddMaxRetries(v)
	})
}

// UpdateMaxRetries sets the "max_retries" field to the value that was provided on create.
func (u *TriggerJobUpsertBulk) UpdateMaxRetries() *TriggerJobUpsertBulk {
	return u.Update(func(s *TriggerJobUpsert) {
		s.UpdateMaxRetries()
	})
}

// SetNextRetryAt sets the "next_retry_at" field.
func (u *TriggerJobUpsertBulk) SetNextRetryAt(v time.Time) *TriggerJobUpsertBulk {
	return u.Update(func(s *TriggerJobUpsert) {
		s.SetNextRetryAt(v)
	})
}

// UpdateNextRetryAt sets the "next_retry_at" field to the value that was provided on create.
func (u *TriggerJobUpsertBulk) UpdateNextRetryAt() *TriggerJobUpsertBulk {
	return u.Update(func(s *TriggerJobUpsert) {
		s.UpdateNextRetryAt()
	})
}

// ClearNextRetryAt clears the value of the "next_retry_at" field.
func (u *TriggerJobUpsertBulk) ClearNextRetryAt() *TriggerJobUpsertBulk {
	return u.Update(func(s *TriggerJobUpsert) {
		s.ClearNextRetryAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TriggerJobUpsertBulk) SetUpdatedAt(v time.Time) *TriggerJobUpsertBulk {
	return u.Update(func(s *TriggerJobUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TriggerJobUpsertBulk) UpdateUpdatedAt() *TriggerJobUpsertBulk {
	return u.Update(func(s *TriggerJobUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *TriggerJobUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the TriggerJobCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TriggerJobCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TriggerJobUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
