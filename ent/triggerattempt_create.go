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

// TriggerAttemptCreate is the builder for creating a TriggerAttempt entity.
type TriggerAttemptCreate struct {
	config
	mutation *TriggerAttemptMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTriggerID sets the "trigger_id" field.
func (_c *TriggerAttemptCreate) SetTriggerID(v string) *TriggerAttemptCreate {
	_c.mutation.SetTriggerID(v)
	return _c
}

// SetAttemptNo sets the "attempt_no" field.
func (_c *TriggerAttemptCreate) SetAttemptNo(v int) *TriggerAttemptCreate {
	_c.mutation.SetAttemptNo(v)
	return _c
}

// SetAttemptResult sets the "attempt_result" field.
func (_c *TriggerAttemptCreate) SetAttemptResult(v string) *TriggerAttemptCreate {
	_c.mutation.SetAttemptResult(v)
	return _c
}

// SetErrorCode sets the "error_code" field.
func (_c *TriggerAttemptCreate) SetErrorCode(v string) *TriggerAttemptCreate {
	_c.mutation.SetErrorCode(v)
	return _c
}

// SetNillableErrorCode sets the "error_code" field if the given value is not nil.
func (_c *TriggerAttemptCreate) SetNillableErrorCode(v *string) *TriggerAttemptCreate {
	if v != nil {
		_c.SetErrorCode(*v)
	}
	return _c
}

// SetDetails sets the "details" field.
func (_c *TriggerAttemptCreate) SetDetails(v map[string]interface{}) *TriggerAttemptCreate {
	_c.mutation.SetDetails(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TriggerAttemptCreate) SetCreatedAt(v time.Time) *TriggerAttemptCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TriggerAttemptCreate) SetNillableCreatedAt(v *time.Time) *TriggerAttemptCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TriggerAttemptCreate) SetID(v string) *TriggerAttemptCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetJobID sets the "job" edge to the TriggerJob entity by ID.
func (_c *TriggerAttemptCreate) SetJobID(id string) *TriggerAttemptCreate {
	_c.mutation.SetJobID(id)
	return _c
}

// SetJob sets the "job" edge to the TriggerJob entity.
func (_c *TriggerAttemptCreate) SetJob(v *TriggerJob) *TriggerAttemptCreate {
	return _c.SetJobID(v.ID)
}

// Mutation returns the TriggerAttemptMutation object of the builder.
func (_c *TriggerAttemptCreate) Mutation() *TriggerAttemptMutation {
	return _c.mutation
}

// Save creates the TriggerAttempt in the database.
func (_c *TriggerAttemptCreate) Save(ctx context.Context) (*TriggerAttempt, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TriggerAttemptCreate) SaveX(ctx context.Context) *TriggerAttempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TriggerAttemptCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TriggerAttemptCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TriggerAttemptCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := triggerattempt.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TriggerAttemptCreate) check() error {
	if _, ok := _c.mutation.TriggerID(); !ok {
		return &ValidationError{Name: "trigger_id", err: errors.New(`ent: missing required field "TriggerAttempt.trigger_id"`)}
	}
	if _, ok := _c.mutation.AttemptNo(); !ok {
		return &ValidationError{Name: "attempt_no", err: errors.New(`ent: missing required field "TriggerAttempt.attempt_no"`)}
	}
	if v, ok := _c.mutation.AttemptNo(); ok {
		if err := triggerattempt.AttemptNoValidator(v); err != nil {
			return &ValidationError{Name: "attempt_no", err: fmt.Errorf(`ent: validator failed for field "TriggerAttempt.attempt_no": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AttemptResult(); !ok {
		return &ValidationError{Name: "attempt_result", err: errors.New(`ent: missing required field "TriggerAttempt.attempt_result"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TriggerAttempt.created_at"`)}
	}
	if len(_c.mutation.JobIDs()) == 0 {
		return &ValidationError{Name: "job", err: errors.New(`ent: missing required edge "TriggerAttempt.job"`)}
	}
	return nil
}

func (_c *TriggerAttemptCreate) sqlSave(ctx context.Context) (*TriggerAttempt, error) {
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
			return nil, fmt.Errorf("unexpected TriggerAttempt.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TriggerAttemptCreate) createSpec() (*TriggerAttempt, *sqlgraph.CreateSpec) {
	var (
		_node = &TriggerAttempt{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(triggerattempt.Table, sqlgraph.NewFieldSpec(triggerattempt.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.AttemptNo(); ok {
		_spec.SetField(triggerattempt.FieldAttemptNo, field.TypeInt, value)
		_node.AttemptNo = value
	}
	if value, ok := _c.mutation.AttemptResult(); ok {
		_spec.SetField(triggerattempt.FieldAttemptResult, field.TypeString, value)
		_node.AttemptResult = value
	}
	if value, ok := _c.mutation.ErrorCode(); ok {
		_spec.SetField(triggerattempt.FieldErrorCode, field.TypeString, value)
		_node.ErrorCode = &value
	}
	if value, ok := _c.mutation.Details(); ok {
		_spec.SetField(triggerattempt.FieldDetails, field.TypeJSON, value)
		_node.Details = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(triggerattempt.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   triggerattempt.JobTable,
			Columns: []string{triggerattempt.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(triggerjob.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.TriggerID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TriggerAttempt.Create().
//		SetTriggerID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TriggerAttemptUpsert) {
//			SetTriggerID(v+v).
//		}).
//		Exec(ctx)
func (_c *TriggerAttemptCreate) OnConflict(opts ...sql.ConflictOption) *TriggerAttemptUpsertOne {
	_c.conflict = opts
	return &TriggerAttemptUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TriggerAttempt.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TriggerAttemptCreate) OnConflictColumns(columns ...string) *TriggerAttemptUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TriggerAttemptUpsertOne{
		create: _c,
	}
}

type (
	// TriggerAttemptUpsertOne is the builder for "upsert"-ing
	//  one TriggerAttempt node.
	TriggerAttemptUpsertOne struct {
		create *TriggerAttemptCreate
	}

	// TriggerAttemptUpsert is the "OnConflict" setter.
	TriggerAttemptUpsert struct {
		*sql.UpdateSet
	}
)

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.TriggerAttempt.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(triggerattempt.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TriggerAttemptUpsertOne) UpdateNewValues() *TriggerAttemptUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(triggerattempt.FieldID)
		}
		if _, exists := u.create.mutation.TriggerID(); exists {
			s.SetIgnore(triggerattempt.FieldTriggerID)
		}
		if _, exists := u.create.mutation.AttemptNo(); exists {
			s.SetIgnore(triggerattempt.FieldAttemptNo)
		}
		if _, exists := u.create.mutation.AttemptResult(); exists {
			s.SetIgnore(triggerattempt.FieldAttemptResult)
		}
		if _, exists := u.create.mutation.ErrorCode(); exists {
			s.SetIgnore(triggerattempt.FieldErrorCode)
		}
		if _, exists := u.create.mutation.Details(); exists {
			s.SetIgnore(triggerattempt.FieldDetails)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(triggerattempt.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TriggerAttempt.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TriggerAttemptUpsertOne) Ignore() *TriggerAttemptUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TriggerAttemptUpsertOne) DoNothing() *TriggerAttemptUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TriggerAttemptCreate.OnConflict
// documentation for more info.
func (u *TriggerAttemptUpsertOne) Update(set func(*TriggerAttemptUpsert)) *TriggerAttemptUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TriggerAttemptUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *TriggerAttemptUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TriggerAttemptCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TriggerAttemptUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TriggerAttemptUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: TriggerAttemptUpsertOne.ID is not supported by MySQL driver. Use TriggerAttemptUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TriggerAttemptUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TriggerAttemptCreateBulk is the builder for creating many TriggerAttempt entities in bulk.
type TriggerAttemptCreateBulk struct {
	config
	err      error
	builders []*TriggerAttemptCreate
	conflict []sql.ConflictOption
}

// Save creates the TriggerAttempt entities in the database.
func (_c *TriggerAttemptCreateBulk) Save(ctx context.Context) ([]*TriggerAttempt, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TriggerAttempt, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TriggerAttemptMutation)
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
func (_c *TriggerAttemptCreateBulk) SaveX(ctx context.Context) []*TriggerAttempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TriggerAttemptCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TriggerAttemptCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TriggerAttempt.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TriggerAttemptUpsert) {
//			SetTriggerID(v+v).
//		}).
//		Exec(ctx)
func (_c *TriggerAttemptCreateBulk) OnConflict(opts ...sql.ConflictOption) *TriggerAttemptUpsertBulk {
	_c.conflict = opts
	return &TriggerAttemptUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TriggerAttempt.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TriggerAttemptCreateBulk) OnConflictColumns(columns ...string) *TriggerAttemptUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TriggerAttemptUpsertBulk{
		create: _c,
	}
}

// TriggerAttemptUpsertBulk is the builder for "upsert"-ing
// a bulk of TriggerAttempt nodes.
type TriggerAttemptUpsertBulk struct {
	create *TriggerAttemptCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.TriggerAttempt.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(triggerattempt.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TriggerAttemptUpsertBulk) UpdateNewValues() *TriggerAttemptUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(triggerattempt.FieldID)
			}
			if _, exists := b.mutation.TriggerID(); exists {
				s.SetIgnore(triggerattempt.FieldTriggerID)
			}
			if _, exists := b.mutation.AttemptNo(); exists {
				s.SetIgnore(triggerattempt.FieldAttemptNo)
			}
			if _, exists := b.mutation.AttemptResult(); exists {
				s.SetIgnore(triggerattempt.FieldAttemptResult)
			}
			if _, exists := b.mutation.ErrorCode(); exists {
				s.SetIgnore(triggerattempt.FieldErrorCode)
			}
			if _, exists := b.mutation.Details(); exists {
				s.SetIgnore(triggerattempt.FieldDetails)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(triggerattempt.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TriggerAttempt.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TriggerAttemptUpsertBulk) Ignore() *TriggerAttemptUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TriggerAttemptUpsertBulk) DoNothing() *TriggerAttemptUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TriggerAttemptCreateBulk.OnConflict
// documentation for more info.
func (u *TriggerAttemptUpsertBulk) Update(set func(*TriggerAttemptUpsert)) *TriggerAttemptUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TriggerAttemptUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *TriggerAttemptUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the TriggerAttemptCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TriggerAttemptCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TriggerAttemptUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
