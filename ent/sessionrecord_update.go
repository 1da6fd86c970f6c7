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
	"github.com/agentfabric/bridge/ent/sessionrecord"
)

// SessionRecordUpdate is the builder for updating SessionRecord entities.
type SessionRecordUpdate struct {
	config
	hooks    []Hook
	mutation *SessionRecordMutation
}

// Where appends a list predicates to the SessionRecordUpdate builder.
func (_u *SessionRecordUpdate) Where(ps ...predicate.SessionRecord) *SessionRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *SessionRecordUpdate) SetSessionID(v string) *SessionRecordUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionRecordUpdate) SetNillableSessionID(v *string) *SessionRecordUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetRuntime sets the "runtime" field.
func (_u *SessionRecordUpdate) SetRuntime(v string) *SessionRecordUpdate {
	_u.mutation.SetRuntime(v)
	return _u
}

// SetNillableRuntime sets the "runtime" field if the given value is not nil.
func (_u *SessionRecordUpdate) SetNillableRuntime(v *string) *SessionRecordUpdate {
	if v != nil {
		_u.SetRuntime(*v)
	}
	return _u
}

// SetManagementMode sets the "management_mode" field.
func (_u *SessionRecordUpdate) SetManagementMode(v sessionrecord.ManagementMode) *SessionRecordUpdate {
	_u.mutation.SetManagementMode(v)
	return _u
}

// SetNillableManagementMode sets the "management_mode" field if the given value is not nil.
func (_u *SessionRecordUpdate) SetNillableManagementMode(v *sessionrecord.ManagementMode) *SessionRecordUpdate {
	if v != nil {
		_u.SetManagementMode(*v)
	}
	return _u
}

// SetResumable sets the "resumable" field.
func (_u *SessionRecordUpdate) SetResumable(v bool) *SessionRecordUpdate {
	_u.mutation.SetResumable(v)
	return _u
}

// SetNillableResumable sets the "resumable" field if the given value is not nil.
func (_u *SessionRecordUpdate) SetNillableResumable(v *bool) *SessionRecordUpdate {
	if v != nil {
		_u.SetResumable(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *SessionRecordUpdate) SetStatus(v sessionrecord.Status) *SessionRecordUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SessionRecordUpdate) SetNillableStatus(v *sessionrecord.Status) *SessionRecordUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *SessionRecordUpdate) SetLastHeartbeatAt(v time.Time) *SessionRecordUpdate {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *SessionRecordUpdate) SetNillableLastHeartbeatAt(v *time.Time) *SessionRecordUpdate {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SessionRecordUpdate) SetUpdatedAt(v time.Time) *SessionRecordUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *SessionRecordUpdate) SetNillableUpdatedAt(v *time.Time) *SessionRecordUpdate {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// Mutation returns the SessionRecordMutation object of the builder.
func (_u *SessionRecordUpdate) Mutation() *SessionRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionRecordUpdate) check() error {
	if v, ok := _u.mutation.ManagementMode(); ok {
		if err := sessionrecord.ManagementModeValidator(v); err != nil {
			return &ValidationError{Name: "management_mode", err: fmt.Errorf(`ent: validator failed for field "SessionRecord.management_mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := sessionrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SessionRecord.status": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionrecord.Table, sessionrecord.Columns, sqlgraph.NewFieldSpec(sessionrecord.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(sessionrecord.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Runtime(); ok {
		_spec.SetField(sessionrecord.FieldRuntime, field.TypeString, value)
	}
	if value, ok := _u.mutation.ManagementMode(); ok {
		_spec.SetField(sessionrecord.FieldManagementMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Resumable(); ok {
		_spec.SetField(sessionrecord.FieldResumable, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(sessionrecord.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(sessionrecord.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(sessionrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionRecordUpdateOne is the builder for updating a single SessionRecord entity.
type SessionRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionRecordMutation
}

// SetSessionID sets the "session_id" field.
func (_u *SessionRecordUpdateOne) SetSessionID(v string) *SessionRecordUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionRecordUpdateOne) SetNillableSessionID(v *string) *SessionRecordUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetRuntime sets the "runtime" field.
func (_u *SessionRecordUpdateOne) SetRuntime(v string) *SessionRecordUpdateOne {
	_u.mutation.SetRuntime(v)
	return _u
}

// SetNillableRuntime sets the "runtime" field if the given value is not nil.
func (_u *SessionRecordUpdateOne) SetNillableRuntime(v *string) *SessionRecordUpdateOne {
	if v != nil {
		_u.SetRuntime(*v)
	}
	return _u
}

// SetManagementMode sets the "management_mode" field.
func (_u *SessionRecordUpdateOne) SetManagementMode(v sessionrecord.ManagementMode) *SessionRecordUpdateOne {
	_u.mutation.SetManagementMode(v)
	return _u
}

// SetNillableManagementMode sets the "management_mode" field if the given value is not nil.
func (_u *SessionRecordUpdateOne) SetNillableManagementMode(v *sessionrecord.ManagementMode) *SessionRecordUpdateOne {
	if v != nil {
		_u.SetManagementMode(*v)
	}
	return _u
}

// SetResumable sets the "resumable" field.
func (_u *SessionRecordUpdateOne) SetResumable(v bool) *SessionRecordUpdateOne {
	_u.mutation.SetResumable(v)
	return _u
}

// SetNillableResumable sets the "resumable" field if the given value is not nil.
func (_u *SessionRecordUpdateOne) SetNillableResumable(v *bool) *SessionRecordUpdateOne {
	if v != nil {
		_u.SetResumable(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *SessionRecordUpdateOne) SetStatus(v sessionrecord.Status) *SessionRecordUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SessionRecordUpdateOne) SetNillableStatus(v *sessionrecord.Status) *SessionRecordUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *SessionRecordUpdateOne) SetLastHeartbeatAt(v time.Time) *SessionRecordUpdateOne {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *SessionRecordUpdateOne) SetNillableLastHeartbeatAt(v *time.Time) *SessionRecordUpdateOne {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SessionRecordUpdateOne) SetUpdatedAt(v time.Time) *SessionRecordUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *SessionRecordUpdateOne) SetNillableUpdatedAt(v *time.Time) *SessionRecordUpdateOne {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// Mutation returns the SessionRecordMutation object of the builder.
func (_u *SessionRecordUpdateOne) Mutation() *SessionRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the SessionRecordUpdate builder.
func (_u *SessionRecordUpdateOne) Where(ps ...predicate.SessionRecord) *SessionRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionRecordUpdateOne) Select(field string, fields ...string) *SessionRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SessionRecord entity.
func (_u *SessionRecordUpdateOne) Save(ctx context.Context) (*SessionRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionRecordUpdateOne) SaveX(ctx context.Context) *SessionRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionRecordUpdateOne) check() error {
	if v, ok := _u.mutation.ManagementMode(); ok {
		if err := sessionrecord.ManagementModeValidator(v); err != nil {
			return &ValidationError{Name: "management_mode", err: fmt.Errorf(`ent: validator failed for field "SessionRecord.management_mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := sessionrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SessionRecord.status": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionRecordUpdateOne) sqlSave(ctx context.Context) (_node *SessionRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionrecord.Table, sessionrecord.Columns, sqlgraph.NewFieldSpec(sessionrecord.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SessionRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sessionrecord.FieldID)
		for _, f := range fields {
			if !sessionrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sessionrecord.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(sessionrecord.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Runtime(); ok {
		_spec.SetField(sessionrecord.FieldRuntime, field.TypeString, value)
	}
	if value, ok := _u.mutation.ManagementMode(); ok {
		_spec.SetField(sessionrecord.FieldManagementMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Resumable(); ok {
		_spec.SetField(sessionrecord.FieldResumable, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(sessionrecord.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(sessionrecord.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(sessionrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &SessionRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
