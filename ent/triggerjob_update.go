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
	"github.com/agentfabric/bridge/ent/predicate"
	"github.com/agentfabric/bridge/ent/triggerattempt"
	"github.com/agentfabric/bridge/ent/triggerjob"
)

// TriggerJobUpdate is the builder for updating TriggerJob entities.
type TriggerJobUpdate struct {
	config
	hooks    []Hook
	mutation *TriggerJobMutation
}

// Where appends a list predicates to the TriggerJobUpdate builder.
func (_u *TriggerJobUpdate) Where(ps ...predicate.TriggerJob) *TriggerJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTargetSessionID sets the "target_session_id" field.
func (_u *TriggerJobUpdate) SetTargetSessionID(v string) *TriggerJobUpdate {
	_u.mutation.SetTargetSessionID(v)
	return _u
}

// SetNillableTargetSessionID sets the "target_session_id" field if the given value is not nil.
func (_u *TriggerJobUpdate) SetNillableTargetSessionID(v *string) *TriggerJobUpdate {
	if v != nil {
		_u.SetTargetSessionID(*v)
	}
	return _u
}

// ClearTargetSessionID clears the value of the "target_session_id" field.
func (_u *TriggerJobUpdate) ClearTargetSessionID() *TriggerJobUpdate {
	_u.mutation.ClearTargetSessionID()
	return _u
}

// SetReason sets the "reason" field.
func (_u *TriggerJobUpdate) SetReason(v string) *TriggerJobUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *TriggerJobUpdate) SetNillableReason(v *string) *TriggerJobUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *TriggerJobUpdate) SetPrompt(v string) *TriggerJobUpdate {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *TriggerJobUpdate) SetNillablePrompt(v *string) *TriggerJobUpdate {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *TriggerJobUpdate) SetStatus(v triggerjob.Status) *TriggerJobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TriggerJobUpdate) SetNillableStatus(v *triggerjob.Status) *TriggerJobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *TriggerJobUpdate) SetAttempts(v int) *TriggerJobUpdate {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *TriggerJobUpdate) SetNillableAttempts(v *int) *TriggerJobUpdate {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *TriggerJobUpdate) AddAttempts(v int) *TriggerJobUpdate {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetMaxRetries sets the "max_retries" field.
func (_u *TriggerJobUpdate) SetMaxRetries(v int) *TriggerJobUpdate {
	_u.mutation.ResetMaxRetries()
	_u.mutation.SetMaxRetries(v)
	return _u
}

// SetNillableMaxRetries sets the "max_retries" field if the given value is not nil.
func (_u *TriggerJobUpdate) SetNillableMaxRetries(v *int) *TriggerJobUpdate {
	if v != nil {
		_u.SetMaxRetries(*v)
	}
	return _u
}

// AddMaxRetries adds value to the "max_retries" field.
func (_u *TriggerJobUpdate) AddMaxRetries(v int) *TriggerJobUpdate {
	_u.mutation.AddMaxRetries(v)
	return _u
}

// SetNextRetryAt sets the "next_retry_at" field.
func (_u *TriggerJobUpdate) SetNextRetryAt(v time.Time) *TriggerJobUpdate {
	_u.mutation.SetNextRetryAt(v)
	return _u
}

// SetNillableNextRetryAt sets the "next_retry_at" field if the given value is not nil.
func (_u *TriggerJobUpdate) SetNillableNextRetryAt(v *time.Time) *TriggerJobUpdate {
	if v != nil {
		_u.SetNextRetryAt(*v)
	}
	return _u
}

// ClearNextRetryAt clears the value of the "next_retry_at" field.
func (_u *TriggerJobUpdate) ClearNextRetryAt() *TriggerJobUpdate {
	_u.mutation.ClearNextRetryAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TriggerJobUpdate) SetUpdatedAt(v time.Time) *TriggerJobUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *TriggerJobUpdate) SetNillableUpdatedAt(v *time.Time) *TriggerJobUpdate {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// AddTriggerAttemptIDs adds the "trigger_attempts" edge to the TriggerAttempt entity by IDs.
func (_u *TriggerJobUpdate) AddTriggerAttemptIDs(ids ...string) *TriggerJobUpdate {
	_u.mutation.AddTriggerAttemptIDs(ids...)
	return _u
}

// AddTriggerAttempts adds the "trigger_attempts" edges to the TriggerAttempt entity.
func (_u *TriggerJobUpdate) AddTriggerAttempts(v ...*TriggerAttempt) *TriggerJobUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTriggerAttemptIDs(ids...)
}

// Mutation returns the TriggerJobMutation object of the builder.
func (_u *TriggerJobUpdate) Mutation() *TriggerJobMutation {
	return _u.mutation
}

// ClearTriggerAttempts clears all "trigger_attempts" edges to the TriggerAttempt entity.
func (_u *TriggerJobUpdate) ClearTriggerAttempts() *TriggerJobUpdate {
	_u.mutation.ClearTriggerAttempts()
	return _u
}

// RemoveTriggerAttemptIDs removes the "trigger_attempts" edge to TriggerAttempt entities by IDs.
func (_u *TriggerJobUpdate) RemoveTriggerAttemptIDs(ids ...string) *TriggerJobUpdate {
	_u.mutation.RemoveTriggerAttemptIDs(ids...)
	return _u
}

// RemoveTriggerAttempts removes "trigger_attempts" edges to TriggerAttempt entities.
func (_u *TriggerJobUpdate) RemoveTriggerAttempts(v ...*TriggerAttempt) *TriggerJobUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTriggerAttemptIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TriggerJobUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TriggerJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TriggerJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TriggerJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TriggerJobUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := triggerjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TriggerJob.status": %w`, err)}
		}
	}
	return nil
}

func (_u *TriggerJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(triggerjob.Table, triggerjob.Columns, sqlgraph.NewFieldSpec(triggerjob.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TargetSessionID(); ok {
		_spec.SetField(triggerjob.FieldTargetSessionID, field.TypeString, value)
	}
	if _u.mutation.TargetSessionIDCleared() {
		_spec.ClearField(triggerjob.FieldTargetSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(triggerjob.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(triggerjob.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(triggerjob.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(triggerjob.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(triggerjob.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxRetries(); ok {
		_spec.SetField(triggerjob.FieldMaxRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxRetries(); ok {
		_spec.AddField(triggerjob.FieldMaxRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NextRetryAt(); ok {
		_spec.SetField(triggerjob.FieldNextRetryAt, field.TypeTime, value)
	}
	if _u.mutation.NextRetryAtCleared() {
		_spec.ClearField(triggerjob.FieldNextRetryAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(triggerjob.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.TriggerAttemptsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTriggerAttemptsIDs(); len(nodes) > 0 && !_u.mutation.TriggerAttemptsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TriggerAttemptsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{triggerjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TriggerJobUpdateOne is the builder for updating a single TriggerJob entity.
type TriggerJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TriggerJobMutation
}

// SetTargetSessionID sets the "target_session_id" field.
func (_u *TriggerJobUpdateOne) SetTargetSessionID(v string) *TriggerJobUpdateOne {
	_u.mutation.SetTargetSessionID(v)
	return _u
}

// SetNillableTargetSessionID sets the "target_session_id" field if the given value is not nil.
func (_u *TriggerJobUpdateOne) SetNillableTargetSessionID(v *string) *TriggerJobUpdateOne {
	if v != nil {
		_u.SetTargetSessionID(*v)
	}
	return _u
}

// ClearTargetSessionID clears the value of the "target_session_id" field.
func (_u *TriggerJobUpdateOne) ClearTargetSessionID() *TriggerJobUpdateOne {
	_u.mutation.ClearTargetSessionID()
	return _u
}

// SetReason sets the "reason" field.
func (_u *TriggerJobUpdateOne) SetReason(v string) *TriggerJobUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *TriggerJobUpdateOne) SetNillableReason(v *string) *TriggerJobUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *TriggerJobUpdateOne) SetPrompt(v string) *TriggerJobUpdateOne {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *TriggerJobUpdateOne) SetNillablePrompt(v *string) *TriggerJobUpdateOne {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *TriggerJobUpdateOne) SetStatus(v triggerjob.Status) *TriggerJobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TriggerJobUpdateOne) SetNillableStatus(v *triggerjob.Status) *TriggerJobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *TriggerJobUpdateOne) SetAttempts(v int) *TriggerJobUpdateOne {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *TriggerJobUpdateOne) SetNillableAttempts(v *int) *TriggerJobUpdateOne {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *TriggerJobUpdateOne) AddAttempts(v int) *TriggerJobUpdateOne {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetMaxRetries sets the "max_retries" field.
func (_u *TriggerJobUpdateOne) SetMaxRetries(v int) *TriggerJobUpdateOne {
	_u.mutation.ResetMaxRetries()
	_u.mutation.SetMaxRetries(v)
	return _u
}

// SetNillableMaxRetries sets the "max_retries" field if the given value is not nil.
func (_u *TriggerJobUpdateOne) SetNillableMaxRetries(v *int) *TriggerJobUpdateOne {
	if v != nil {
		_u.SetMaxRetries(*v)
	}
	return _u
}

// AddMaxRetries adds value to the "max_retries" field.
func (_u *TriggerJobUpdateOne) AddMaxRetries(v int) *TriggerJobUpdateOne {
	_u.mutation.AddMaxRetries(v)
	return _u
}

// SetNextRetryAt sets the "next_retry_at" field.
func (_u *TriggerJobUpdateOne) SetNextRetryAt(v time.Time) *TriggerJobUpdateOne {
	_u.mutation.SetNextRetryAt(v)
	return _u
}

// SetNillableNextRetryAt sets the "next_retry_at" field if the given value is not nil.
func (_u *TriggerJobUpdateOne) SetNillableNextRetryAt(v *time.Time) *TriggerJobUpdateOne {
	if v != nil {
		_u.SetNextRetryAt(*v)
	}
	return _u
}

// ClearNextRetryAt clears the value of the "next_retry_at" field.
func (_u *TriggerJobUpdateOne) ClearNextRetryAt() *TriggerJobUpdateOne {
	_u.mutation.ClearNextRetryAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TriggerJobUpdateOne) SetUpdatedAt(v time.Time) *TriggerJobUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *TriggerJobUpdateOne) SetNillableUpdatedAt(v *time.Time) *TriggerJobUpdateOne {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// AddTriggerAttemptIDs adds the "trigger_attempts" edge to the TriggerAttempt entity by IDs.
func (_u *TriggerJobUpdateOne) AddTriggerAttemptIDs(ids ...string) *TriggerJobUpdateOne {
	_u.mutation.AddTriggerAttemptIDs(ids...)
	return _u
}

// AddTriggerAttempts adds the "trigger_attempts" edges to the TriggerAttempt entity.
func (_u *TriggerJobUpdateOne) AddTriggerAttempts(v ...*TriggerAttempt) *TriggerJobUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTriggerAttemptIDs(ids...)
}

// Mutation returns the TriggerJobMutation object of the builder.
func (_u *TriggerJobUpdateOne) Mutation() *TriggerJobMutation {
	return _u.mutation
}

// ClearTriggerAttempts clears all "trigger_attempts" edges to the TriggerAttempt entity.
func (_u *TriggerJobUpdateOne) ClearTriggerAttempts() *TriggerJobUpdateOne {
	_u.mutation.ClearTriggerAttempts()
	return _u
}

// RemoveTriggerAttemptIDs removes the "trigger_attempts" edge to TriggerAttempt entities by IDs.
func (_u *TriggerJobUpdateOne) RemoveTriggerAttemptIDs(ids ...string) *TriggerJobUpdateOne {
	_u.mutation.RemoveTriggerAttemptIDs(ids...)
	return _u
}

// RemoveTriggerAttempts removes "trigger_attempts" edges to TriggerAttempt entities.
func (_u *TriggerJobUpdateOne) RemoveTriggerAttempts(v ...*TriggerAttempt) *TriggerJobUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTriggerAttemptIDs(ids...)
}

// Where appends a list predicates to the TriggerJobUpdate builder.
func (_u *TriggerJobUpdateOne) Where(ps ...predicate.TriggerJob) *TriggerJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TriggerJobUpdateOne) Select(field string, fields ...string) *TriggerJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TriggerJob entity.
func (_u *TriggerJobUpdateOne) Save(ctx context.Context) (*TriggerJob, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TriggerJobUpdateOne) SaveX(ctx context.Context) *TriggerJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TriggerJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TriggerJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TriggerJobUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := triggerjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TriggerJob.status": %w`, err)}
		}
	}
	return nil
}

func (_u *TriggerJobUpdateOne) sqlSave(ctx context.Context) (_node *TriggerJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(triggerjob.Table, triggerjob.Columns, sqlgraph.NewFieldSpec(triggerjob.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TriggerJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, triggerjob.FieldID)
		for _, f := range fields {
			if !triggerjob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != triggerjob.FieldID {
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
	if value, ok := _u.mutation.TargetSessionID(); ok {
		_spec.SetField(triggerjob.FieldTargetSessionID, field.TypeString, value)
	}
	if _u.mutation.TargetSessionIDCleared() {
		_spec.ClearField(triggerjob.FieldTargetSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(triggerjob.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(triggerjob.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(triggerjob.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(triggerjob.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(triggerjob.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxRetries(); ok {
		_spec.SetField(triggerjob.FieldMaxRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxRetries(); ok {
		_spec.AddField(triggerjob.FieldMaxRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NextRetryAt(); ok {
		_spec.SetField(triggerjob.FieldNextRetryAt, field.TypeTime, value)
	}
	if _u.mutation.NextRetryAtCleared() {
		_spec.ClearField(triggerjob.FieldNextRetryAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(triggerjob.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.TriggerAttemptsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTriggerAttemptsIDs(); len(nodes) > 0 && !_u.mutation.TriggerAttemptsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TriggerAttemptsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &TriggerJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{triggerjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
