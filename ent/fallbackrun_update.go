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
	"github.com/agentfabric/bridge/ent/fallbackrun"
	"github.com/agentfabric/bridge/ent/predicate"
)

// FallbackRunUpdate is the builder for updating FallbackRun entities.
type FallbackRunUpdate struct {
	config
	hooks    []Hook
	mutation *FallbackRunMutation
}

// Where appends a list predicates to the FallbackRunUpdate builder.
func (_u *FallbackRunUpdate) Where(ps ...predicate.FallbackRun) *FallbackRunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPid sets the "pid" field.
func (_u *FallbackRunUpdate) SetPid(v int) *FallbackRunUpdate {
	_u.mutation.ResetPid()
	_u.mutation.SetPid(v)
	return _u
}

// SetNillablePid sets the "pid" field if the given value is not nil.
func (_u *FallbackRunUpdate) SetNillablePid(v *int) *FallbackRunUpdate {
	if v != nil {
		_u.SetPid(*v)
	}
	return _u
}

// AddPid adds value to the "pid" field.
func (_u *FallbackRunUpdate) AddPid(v int) *FallbackRunUpdate {
	_u.mutation.AddPid(v)
	return _u
}

// SetLaunchMode sets the "launch_mode" field.
func (_u *FallbackRunUpdate) SetLaunchMode(v fallbackrun.LaunchMode) *FallbackRunUpdate {
	_u.mutation.SetLaunchMode(v)
	return _u
}

// SetNillableLaunchMode sets the "launch_mode" field if the given value is not nil.
func (_u *FallbackRunUpdate) SetNillableLaunchMode(v *fallbackrun.LaunchMode) *FallbackRunUpdate {
	if v != nil {
		_u.SetLaunchMode(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *FallbackRunUpdate) SetStatus(v fallbackrun.Status) *FallbackRunUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *FallbackRunUpdate) SetNillableStatus(v *fallbackrun.Status) *FallbackRunUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetDeadlineAt sets the "deadline_at" field.
func (_u *FallbackRunUpdate) SetDeadlineAt(v time.Time) *FallbackRunUpdate {
	_u.mutation.SetDeadlineAt(v)
	return _u
}

// SetNillableDeadlineAt sets the "deadline_at" field if the given value is not nil.
func (_u *FallbackRunUpdate) SetNillableDeadlineAt(v *time.Time) *FallbackRunUpdate {
	if v != nil {
		_u.SetDeadlineAt(*v)
	}
	return _u
}

// SetEndedAt sets the "ended_at" field.
func (_u *FallbackRunUpdate) SetEndedAt(v time.Time) *FallbackRunUpdate {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *FallbackRunUpdate) SetNillableEndedAt(v *time.Time) *FallbackRunUpdate {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// ClearEndedAt clears the value of the "ended_at" field.
func (_u *FallbackRunUpdate) ClearEndedAt() *FallbackRunUpdate {
	_u.mutation.ClearEndedAt()
	return _u
}

// SetErrorCode sets the "error_code" field.
func (_u *FallbackRunUpdate) SetErrorCode(v string) *FallbackRunUpdate {
	_u.mutation.SetErrorCode(v)
	return _u
}

// SetNillableErrorCode sets the "error_code" field if the given value is not nil.
func (_u *FallbackRunUpdate) SetNillableErrorCode(v *string) *FallbackRunUpdate {
	if v != nil {
		_u.SetErrorCode(*v)
	}
	return _u
}

// ClearErrorCode clears the value of the "error_code" field.
func (_u *FallbackRunUpdate) ClearErrorCode() *FallbackRunUpdate {
	_u.mutation.ClearErrorCode()
	return _u
}

// Mutation returns the FallbackRunMutation object of the builder.
func (_u *FallbackRunUpdate) Mutation() *FallbackRunMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FallbackRunUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FallbackRunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FallbackRunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FallbackRunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FallbackRunUpdate) check() error {
	if v, ok := _u.mutation.LaunchMode(); ok {
		if err := fallbackrun.LaunchModeValidator(v); err != nil {
			return &ValidationError{Name: "launch_mode", err: fmt.Errorf(`ent: validator failed for field "FallbackRun.launch_mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := fallbackrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "FallbackRun.status": %w`, err)}
		}
	}
	return nil
}

func (_u *FallbackRunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(fallbackrun.Table, fallbackrun.Columns, sqlgraph.NewFieldSpec(fallbackrun.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Pid(); ok {
		_spec.SetField(fallbackrun.FieldPid, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPid(); ok {
		_spec.AddField(fallbackrun.FieldPid, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LaunchMode(); ok {
		_spec.SetField(fallbackrun.FieldLaunchMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(fallbackrun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DeadlineAt(); ok {
		_spec.SetField(fallbackrun.FieldDeadlineAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(fallbackrun.FieldEndedAt, field.TypeTime, value)
	}
	if _u.mutation.EndedAtCleared() {
		_spec.ClearField(fallbackrun.FieldEndedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorCode(); ok {
		_spec.SetField(fallbackrun.FieldErrorCode, field.TypeString, value)
	}
	if _u.mutation.ErrorCodeCleared() {
		_spec.ClearField(fallbackrun.FieldErrorCode, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{fallbackrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FallbackRunUpdateOne is the builder for updating a single FallbackRun entity.
type FallbackRunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FallbackRunMutation
}

// SetPid sets the "pid" field.
func (_u *FallbackRunUpdateOne) SetPid(v int) *FallbackRunUpdateOne {
	_u.mutation.ResetPid()
	_u.mutation.SetPid(v)
	return _u
}

// SetNillablePid sets the "pid" field if the given value is not nil.
func (_u *FallbackRunUpdateOne) SetNillablePid(v *int) *FallbackRunUpdateOne {
	if v != nil {
		_u.SetPid(*v)
	}
	return _u
}

// AddPid adds value to the "pid" field.
func (_u *FallbackRunUpdateOne) AddPid(v int) *FallbackRunUpdateOne {
	_u.mutation.AddPid(v)
	return _u
}

// SetLaunchMode sets the "launch_mode" field.
func (_u *FallbackRunUpdateOne) SetLaunchMode(v fallbackrun.LaunchMode) *FallbackRunUpdateOne {
	_u.mutation.SetLaunchMode(v)
	return _u
}

// SetNillableLaunchMode sets the "launch_mode" field if the given value is not nil.
func (_u *FallbackRunUpdateOne) SetNillableLaunchMode(v *fallbackrun.LaunchMode) *FallbackRunUpdateOne {
	if v != nil {
		_u.SetLaunchMode(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *FallbackRunUpdateOne) SetStatus(v fallbackrun.Status) *FallbackRunUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *FallbackRunUpdateOne) SetNillableStatus(v *fallbackrun.Status) *FallbackRunUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetDeadlineAt sets the "deadline_at" field.
func (_u *FallbackRunUpdateOne) SetDeadlineAt(v time.Time) *FallbackRunUpdateOne {
	_u.mutation.SetDeadlineAt(v)
	return _u
}

// SetNillableDeadlineAt sets the "deadline_at" field if the given value is not nil.
func (_u *FallbackRunUpdateOne) SetNillableDeadlineAt(v *time.Time) *FallbackRunUpdateOne {
	if v != nil {
		_u.SetDeadlineAt(*v)
	}
	return _u
}

// SetEndedAt sets the "ended_at" field.
func (_u *FallbackRunUpdateOne) SetEndedAt(v time.Time) *FallbackRunUpdateOne {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *FallbackRunUpdateOne) SetNillableEndedAt(v *time.Time) *FallbackRunUpdateOne {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// ClearEndedAt clears the value of the "ended_at" field.
func (_u *FallbackRunUpdateOne) ClearEndedAt() *FallbackRunUpdateOne {
	_u.mutation.ClearEndedAt()
	return _u
}

// SetErrorCode sets the "error_code" field.
func (_u *FallbackRunUpdateOne) SetErrorCode(v string) *FallbackRunUpdateOne {
	_u.mutation.SetErrorCode(v)
	return _u
}

// SetNillableErrorCode sets the "error_code" field if the given value is not nil.
func (_u *FallbackRunUpdateOne) SetNillableErrorCode(v *string) *FallbackRunUpdateOne {
	if v != nil {
		_u.SetErrorCode(*v)
	}
	return _u
}

// ClearErrorCode clears the value of the "error_code" field.
func (_u *FallbackRunUpdateOne) ClearErrorCode() *FallbackRunUpdateOne {
	_u.mutation.ClearErrorCode()
	return _u
}

// Mutation returns the FallbackRunMutation object of the builder.
func (_u *FallbackRunUpdateOne) Mutation() *FallbackRunMutation {
	return _u.mutation
}

// Where appends a list predicates to the FallbackRunUpdate builder.
func (_u *FallbackRunUpdateOne) Where(ps ...predicate.FallbackRun) *FallbackRunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FallbackRunUpdateOne) Select(field string, fields ...string) *FallbackRunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FallbackRun entity.
func (_u *FallbackRunUpdateOne) Save(ctx context.Context) (*FallbackRun, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FallbackRunUpdateOne) SaveX(ctx context.Context) *FallbackRun {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FallbackRunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FallbackRunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FallbackRunUpdateOne) check() error {
	if v, ok := _u.mutation.LaunchMode(); ok {
		if err := fallbackrun.LaunchModeValidator(v); err != nil {
			return &ValidationError{Name: "launch_mode", err: fmt.Errorf(`ent: validator failed for field "FallbackRun.launch_mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := fallbackrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "FallbackRun.status": %w`, err)}
		}
	}
	return nil
}

func (_u *FallbackRunUpdateOne) sqlSave(ctx context.Context) (_node *FallbackRun, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(fallbackrun.Table, fallbackrun.Columns, sqlgraph.NewFieldSpec(fallbackrun.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "FallbackRun.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, fallbackrun.FieldID)
		for _, f := range fields {
			if !fallbackrun.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != fallbackrun.FieldID {
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
	if value, ok := _u.mutation.Pid(); ok {
		_spec.SetField(fallbackrun.FieldPid, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPid(); ok {
		_spec.AddField(fallbackrun.FieldPid, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LaunchMode(); ok {
		_spec.SetField(fallbackrun.FieldLaunchMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(fallbackrun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DeadlineAt(); ok {
		_spec.SetField(fallbackrun.FieldDeadlineAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(fallbackrun.FieldEndedAt, field.TypeTime, value)
	}
	if _u.mutation.EndedAtCleared() {
		_spec.ClearField(fallbackrun.FieldEndedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorCode(); ok {
		_spec.SetField(fallbackrun.FieldErrorCode, field.TypeString, value)
	}
	if _u.mutation.ErrorCodeCleared() {
		_spec.ClearField(fallbackrun.FieldErrorCode, field.TypeString)
	}
	_node = &FallbackRun{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{fallbackrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
