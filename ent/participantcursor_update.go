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
	"github.com/agentfabric/bridge/ent/participantcursor"
	"github.com/agentfabric/bridge/ent/predicate"
)

// ParticipantCursorUpdate is the builder for updating ParticipantCursor entities.
type ParticipantCursorUpdate struct {
	config
	hooks    []Hook
	mutation *ParticipantCursorMutation
}

// Where appends a list predicates to the ParticipantCursorUpdate builder.
func (_u *ParticipantCursorUpdate) Where(ps ...predicate.ParticipantCursor) *ParticipantCursorUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLastReadSeq sets the "last_read_seq" field.
func (_u *ParticipantCursorUpdate) SetLastReadSeq(v int) *ParticipantCursorUpdate {
	_u.mutation.ResetLastReadSeq()
	_u.mutation.SetLastReadSeq(v)
	return _u
}

// SetNillableLastReadSeq sets the "last_read_seq" field if the given value is not nil.
func (_u *ParticipantCursorUpdate) SetNillableLastReadSeq(v *int) *ParticipantCursorUpdate {
	if v != nil {
		_u.SetLastReadSeq(*v)
	}
	return _u
}

// AddLastReadSeq adds value to the "last_read_seq" field.
func (_u *ParticipantCursorUpdate) AddLastReadSeq(v int) *ParticipantCursorUpdate {
	_u.mutation.AddLastReadSeq(v)
	return _u
}

// SetLastAckedMessageID sets the "last_acked_message_id" field.
func (_u *ParticipantCursorUpdate) SetLastAckedMessageID(v string) *ParticipantCursorUpdate {
	_u.mutation.SetLastAckedMessageID(v)
	return _u
}

// SetNillableLastAckedMessageID sets the "last_acked_message_id" field if the given value is not nil.
func (_u *ParticipantCursorUpdate) SetNillableLastAckedMessageID(v *string) *ParticipantCursorUpdate {
	if v != nil {
		_u.SetLastAckedMessageID(*v)
	}
	return _u
}

// ClearLastAckedMessageID clears the value of the "last_acked_message_id" field.
func (_u *ParticipantCursorUpdate) ClearLastAckedMessageID() *ParticipantCursorUpdate {
	_u.mutation.ClearLastAckedMessageID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ParticipantCursorUpdate) SetUpdatedAt(v time.Time) *ParticipantCursorUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *ParticipantCursorUpdate) SetNillableUpdatedAt(v *time.Time) *ParticipantCursorUpdate {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// Mutation returns the ParticipantCursorMutation object of the builder.
func (_u *ParticipantCursorUpdate) Mutation() *ParticipantCursorMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ParticipantCursorUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ParticipantCursorUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ParticipantCursorUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ParticipantCursorUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ParticipantCursorUpdate) check() error {
	if v, ok := _u.mutation.LastReadSeq(); ok {
		if err := participantcursor.LastReadSeqValidator(v); err != nil {
			return &ValidationError{Name: "last_read_seq", err: fmt.Errorf(`ent: validator failed for field "ParticipantCursor.last_read_seq": %w`, err)}
		}
	}
	if _u.mutation.ThreadCleared() && len(_u.mutation.ThreadIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ParticipantCursor.thread"`)
	}
	return nil
}

func (_u *ParticipantCursorUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(participantcursor.Table, participantcursor.Columns, sqlgraph.NewFieldSpec(participantcursor.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LastReadSeq(); ok {
		_spec.SetField(participantcursor.FieldLastReadSeq, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLastReadSeq(); ok {
		_spec.AddField(participantcursor.FieldLastReadSeq, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastAckedMessageID(); ok {
		_spec.SetField(participantcursor.FieldLastAckedMessageID, field.TypeString, value)
	}
	if _u.mutation.LastAckedMessageIDCleared() {
		_spec.ClearField(participantcursor.FieldLastAckedMessageID, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(participantcursor.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{participantcursor.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ParticipantCursorUpdateOne is the builder for updating a single ParticipantCursor entity.
type ParticipantCursorUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ParticipantCursorMutation
}

// SetLastReadSeq sets the "last_read_seq" field.
func (_u *ParticipantCursorUpdateOne) SetLastReadSeq(v int) *ParticipantCursorUpdateOne {
	_u.mutation.ResetLastReadSeq()
	_u.mutation.SetLastReadSeq(v)
	return _u
}

// SetNillableLastReadSeq sets the "last_read_seq" field if the given value is not nil.
func (_u *ParticipantCursorUpdateOne) SetNillableLastReadSeq(v *int) *ParticipantCursorUpdateOne {
	if v != nil {
		_u.SetLastReadSeq(*v)
	}
	return _u
}

// AddLastReadSeq adds value to the "last_read_seq" field.
func (_u *ParticipantCursorUpdateOne) AddLastReadSeq(v int) *ParticipantCursorUpdateOne {
	_u.mutation.AddLastReadSeq(v)
	return _u
}

// SetLastAckedMessageID sets the "last_acked_message_id" field.
func (_u *ParticipantCursorUpdateOne) SetLastAckedMessageID(v string) *ParticipantCursorUpdateOne {
	_u.mutation.SetLastAckedMessageID(v)
	return _u
}

// SetNillableLastAckedMessageID sets the "last_acked_message_id" field if the given value is not nil.
func (_u *ParticipantCursorUpdateOne) SetNillableLastAckedMessageID(v *string) *ParticipantCursorUpdateOne {
	if v != nil {
		_u.SetLastAckedMessageID(*v)
	}
	return _u
}

// ClearLastAckedMessageID clears the value of the "last_acked_message_id" field.
func (_u *ParticipantCursorUpdateOne) ClearLastAckedMessageID() *ParticipantCursorUpdateOne {
	_u.mutation.ClearLastAckedMessageID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ParticipantCursorUpdateOne) SetUpdatedAt(v time.Time) *ParticipantCursorUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *ParticipantCursorUpdateOne) SetNillableUpdatedAt(v *time.Time) *ParticipantCursorUpdateOne {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// Mutation returns the ParticipantCursorMutation object of the builder.
func (_u *ParticipantCursorUpdateOne) Mutation() *ParticipantCursorMutation {
	return _u.mutation
}

// Where appends a list predicates to the ParticipantCursorUpdate builder.
func (_u *ParticipantCursorUpdateOne) Where(ps ...predicate.ParticipantCursor) *ParticipantCursorUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ParticipantCursorUpdateOne) Select(field string, fields ...string) *ParticipantCursorUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ParticipantCursor entity.
func (_u *ParticipantCursorUpdateOne) Save(ctx context.Context) (*ParticipantCursor, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ParticipantCursorUpdateOne) SaveX(ctx context.Context) *ParticipantCursor {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ParticipantCursorUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ParticipantCursorUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ParticipantCursorUpdateOne) check() error {
	if v, ok := _u.mutation.LastReadSeq(); ok {
		if err := participantcursor.LastReadSeqValidator(v); err != nil {
			return &ValidationError{Name: "last_read_seq", err: fmt.Errorf(`ent: validator failed for field "ParticipantCursor.last_read_seq": %w`, err)}
		}
	}
	if _u.mutation.ThreadCleared() && len(_u.mutation.ThreadIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ParticipantCursor.thread"`)
	}
	return nil
}

func (_u *ParticipantCursorUpdateOne) sqlSave(ctx context.Context) (_node *ParticipantCursor, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(participantcursor.Table, participantcursor.Columns, sqlgraph.NewFieldSpec(participantcursor.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ParticipantCursor.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, participantcursor.FieldID)
		for _, f := range fields {
			if !participantcursor.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != participantcursor.FieldID {
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
	if value, ok := _u.mutation.LastReadSeq(); ok {
		_spec.SetField(participantcursor.FieldLastReadSeq, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLastReadSeq(); ok {
		_spec.AddField(participantcursor.FieldLastReadSeq, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastAckedMessageID(); ok {
		_spec.SetField(participantcursor.FieldLastAckedMessageID, field.TypeString, value)
	}
	if _u.mutation.LastAckedMessageIDCleared() {
		_spec.ClearField(participantcursor.FieldLastAckedMessageID, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(participantcursor.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ParticipantCursor{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{participantcursor.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
