// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agentfabric/bridge/ent/predicate"
	"github.com/agentfabric/bridge/ent/triggerattempt"
)

// TriggerAttemptUpdate is the builder for updating TriggerAttempt entities.
type TriggerAttemptUpdate struct {
	config
	hooks    []Hook
	mutation *TriggerAttemptMutation
}

// Where appends a list predicates to the TriggerAttemptUpdate builder.
func (_u *TriggerAttemptUpdate) Where(ps ...predicate.TriggerAttempt) *TriggerAttemptUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the TriggerAttemptMutation object of the builder.
func (_u *TriggerAttemptUpdate) Mutation() *TriggerAttemptMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TriggerAttemptUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TriggerAttemptUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TriggerAttemptUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TriggerAttemptUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TriggerAttemptUpdate) check() error {
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TriggerAttempt.job"`)
	}
	return nil
}

func (_u *TriggerAttemptUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(triggerattempt.Table, triggerattempt.Columns, sqlgraph.NewFieldSpec(triggerattempt.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.ErrorCodeCleared() {
		_spec.ClearField(triggerattempt.FieldErrorCode, field.TypeString)
	}
	if _u.mutation.DetailsCleared() {
		_spec.ClearField(triggerattempt.FieldDetails, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{triggerattempt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TriggerAttemptUpdateOne is the builder for updating a single TriggerAttempt entity.
type TriggerAttemptUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TriggerAttemptMutation
}

// Mutation returns the TriggerAttemptMutation object of the builder.
func (_u *TriggerAttemptUpdateOne) Mutation() *TriggerAttemptMutation {
	return _u.mutation
}

// Where appends a list predicates to the TriggerAttemptUpdate builder.
func (_u *TriggerAttemptUpdateOne) Where(ps ...predicate.TriggerAttempt) *TriggerAttemptUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TriggerAttemptUpdateOne) Select(field string, fields ...string) *TriggerAttemptUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TriggerAttempt entity.
func (_u *TriggerAttemptUpdateOne) Save(ctx context.Context) (*TriggerAttempt, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TriggerAttemptUpdateOne) SaveX(ctx context.Context) *TriggerAttempt {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TriggerAttemptUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TriggerAttemptUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TriggerAttemptUpdateOne) check() error {
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TriggerAttempt.job"`)
	}
	return nil
}

func (_u *TriggerAttemptUpdateOne) sqlSave(ctx context.Context) (_node *TriggerAttempt, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(triggerattempt.Table, triggerattempt.Columns, sqlgraph.NewFieldSpec(triggerattempt.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TriggerAttempt.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, triggerattempt.FieldID)
		for _, f := range fields {
			if !triggerattempt.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != triggerattempt.FieldID {
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
	if _u.mutation.ErrorCodeCleared() {
		_spec.ClearField(triggerattempt.FieldErrorCode, field.TypeString)
	}
	if _u.mutation.DetailsCleared() {
		_spec.ClearField(triggerattempt.FieldDetails, field.TypeJSON)
	}
	_node = &TriggerAttempt{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{triggerattempt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
