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
	"github.com/agentfabric/bridge/ent/thread"
	"github.com/agentfabric/bridge/ent/threadparticipant"
)

// ThreadParticipantCreate is the builder for creating a ThreadParticipant entity.
type ThreadParticipantCreate struct {
	config
	mutation *ThreadParticipantMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetThreadID sets the "thread_id" field.
func (_c *ThreadParticipantCreate) SetThreadID(v string) *ThreadParticipantCreate {
	_c.mutation.SetThreadID(v)
	return _c
}

// SetAgentID sets the "agent_id" field.
func (_c *ThreadParticipantCreate) SetAgentID(v string) *ThreadParticipantCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetPosition sets the "position" field.
func (_c *ThreadParticipantCreate) SetPosition(v int) *ThreadParticipantCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ThreadParticipantCreate) SetCreatedAt(v time.Time) *ThreadParticipantCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ThreadParticipantCreate) SetNillableCreatedAt(v *time.Time) *ThreadParticipantCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ThreadParticipantCreate) SetID(v string) *ThreadParticipantCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetThread sets the "thread" edge to the Thread entity.
func (_c *ThreadParticipantCreate) SetThread(v *Thread) *ThreadParticipantCreate {
	return _c.SetThreadID(v.ID)
}

// Mutation returns the ThreadParticipantMutation object of the builder.
func (_c *ThreadParticipantCreate) Mutation() *ThreadParticipantMutation {
	return _c.mutation
}

// Save creates the ThreadParticipant in the database.
func (_c *ThreadParticipantCreate) Save(ctx context.Context) (*ThreadParticipant, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ThreadParticipantCreate) SaveX(ctx context.Context) *ThreadParticipant {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ThreadParticipantCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ThreadParticipantCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ThreadParticipantCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := threadparticipant.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ThreadParticipantCreate) check() error {
	if _, ok := _c.mutation.ThreadID(); !ok {
		return &ValidationError{Name: "thread_id", err: errors.New(`ent: missing required field "ThreadParticipant.thread_id"`)}
	}
	if _, ok := _c.mutation.AgentID(); !ok {
		return &ValidationError{Name: "agent_id", err: errors.New(`ent: missing required field "ThreadParticipant.agent_id"`)}
	}
	if _, ok := _c.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`ent: missing required field "ThreadParticipant.position"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ThreadParticipant.created_at"`)}
	}
	if len(_c.mutation.ThreadIDs()) == 0 {
		return &ValidationError{Name: "thread", err: errors.New(`ent: missing required edge "ThreadParticipant.thread"`)}
	}
	return nil
}

func (_c *ThreadParticipantCreate) sqlSave(ctx context.Context) (*ThreadParticipant, error) {
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
			return nil, fmt.Errorf("unexpected ThreadParticipant.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ThreadParticipantCreate) createSpec() (*ThreadParticipant, *sqlgraph.CreateSpec) {
	var (
		_node = &ThreadParticipant{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(threadparticipant.Table, sqlgraph.NewFieldSpec(threadparticipant.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.AgentID(); ok {
		_spec.SetField(threadparticipant.FieldAgentID, field.TypeString, value)
		_node.AgentID = value
	}
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(threadparticipant.FieldPosition, field.TypeInt, value)
		_node.Position = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(threadparticipant.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ThreadIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   threadparticipant.ThreadTable,
			Columns: []string{threadparticipant.ThreadColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(thread.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ThreadID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ThreadParticipant.Create().
//		SetThreadID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ThreadParticipantUpsert) {
//			SetThreadID(v+v).
//		}).
//		Exec(ctx)
func (_c *ThreadParticipantCreate) OnConflict(opts ...sql.ConflictOption) *ThreadParticipantUpsertOne {
	_c.conflict = opts
	return &ThreadParticipantUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ThreadParticipant.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ThreadParticipantCreate) OnConflictColumns(columns ...string) *ThreadParticipantUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ThreadParticipantUpsertOne{
		create: _c,
	}
}

type (
	// ThreadParticipantUpsertOne is the builder for "upsert"-ing
	//  one ThreadParticipant node.
	ThreadParticipantUpsertOne struct {
		create *ThreadParticipantCreate
	}

	// ThreadParticipantUpsert is the "OnConflict" setter.
	ThreadParticipantUpsert struct {
		*sql.UpdateSet
	}
)

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ThreadParticipant.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(threadparticipant.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ThreadParticipantUpsertOne) UpdateNewValues() *ThreadParticipantUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(threadparticipant.FieldID)
		}
		if _, exists := u.create.mutation.ThreadID(); exists {
			s.SetIgnore(threadparticipant.FieldThreadID)
		}
		if _, exists := u.create.mutation.AgentID(); exists {
			s.SetIgnore(threadparticipant.FieldAgentID)
		}
		if _, exists := u.create.mutation.Position(); exists {
			s.SetIgnore(threadparticipant.FieldPosition)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(threadparticipant.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ThreadParticipant.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ThreadParticipantUpsertOne) Ignore() *ThreadParticipantUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ThreadParticipantUpsertOne) DoNothing() *ThreadParticipantUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ThreadParticipantCreate.OnConflict
// documentation for more info.
func (u *ThreadParticipantUpsertOne) Update(set func(*ThreadParticipantUpsert)) *ThreadParticipantUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ThreadParticipantUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *ThreadParticipantUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ThreadParticipantCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ThreadParticipantUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ThreadParticipantUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ThreadParticipantUpsertOne.ID is not supported by MySQL driver. Use ThreadParticipantUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ThreadParticipantUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ThreadParticipantCreateBulk is the builder for creating many ThreadParticipant entities in bulk.
type ThreadParticipantCreateBulk struct {
	config
	err      error
	builders []*ThreadParticipantCreate
	conflict []sql.ConflictOption
}

// Save creates the ThreadParticipant entities in the database.
func (_c *ThreadParticipantCreateBulk) Save(ctx context.Context) ([]*ThreadParticipant, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ThreadParticipant, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ThreadParticipantMutation)
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
func (_c *ThreadParticipantCreateBulk) SaveX(ctx context.Context) []*ThreadParticipant {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ThreadParticipantCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ThreadParticipantCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ThreadParticipant.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ThreadParticipantUpsert) {
//			SetThreadID(v+v).
//		}).
//		Exec(ctx)
func (_c *ThreadParticipantCreateBulk) OnConflict(opts ...sql.ConflictOption) *ThreadParticipantUpsertBulk {
	_c.conflict = opts
	return &ThreadParticipantUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ThreadParticipant.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ThreadParticipantCreateBulk) OnConflictColumns(columns ...string) *ThreadParticipantUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ThreadParticipantUpsertBulk{
		create: _c,
	}
}

// ThreadParticipantUpsertBulk is the builder for "upsert"-ing
// a bulk of ThreadParticipant nodes.
type ThreadParticipantUpsertBulk struct {
	create *ThreadParticipantCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ThreadParticipant.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(threadparticipant.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ThreadParticipantUpsertBulk) UpdateNewValues() *ThreadParticipantUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(threadparticipant.FieldID)
			}
			if _, exists := b.mutation.ThreadID(); exists {
				s.SetIgnore(threadparticipant.FieldThreadID)
			}
			if _, exists := b.mutation.AgentID(); exists {
				s.SetIgnore(threadparticipant.FieldAgentID)
			}
			if _, exists := b.mutation.Position(); exists {
				s.SetIgnore(threadparticipant.FieldPosition)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(threadparticipant.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ThreadParticipant.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ThreadParticipantUpsertBulk) Ignore() *ThreadParticipantUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ThreadParticipantUpsertBulk) DoNothing() *ThreadParticipantUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ThreadParticipantCreateBulk.OnConflict
// documentation for more info.
func (u *ThreadParticipantUpsertBulk) Update(set func(*ThreadParticipantUpsert)) *ThreadParticipantUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ThreadParticipantUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *ThreadParticipantUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ThreadParticipantCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ThreadParticipantCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ThreadParticipantUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
