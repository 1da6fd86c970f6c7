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
	"github.com/agentfabric/bridge/ent/participantcursor"
	"github.com/agentfabric/bridge/ent/thread"
)

// ParticipantCursorCreate is the builder for creating a ParticipantCursor entity.
type ParticipantCursorCreate struct {
	config
	mutation *ParticipantCursorMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetThreadID sets the "thread_id" field.
func (_c *ParticipantCursorCreate) SetThreadID(v string) *ParticipantCursorCreate {
	_c.mutation.SetThreadID(v)
	return _c
}

// SetAgentID sets the "agent_id" field.
func (_c *ParticipantCursorCreate) SetAgentID(v string) *ParticipantCursorCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetLastReadSeq sets the "last_read_seq" field.
func (_c *ParticipantCursorCreate) SetLastReadSeq(v int) *ParticipantCursorCreate {
	_c.mutation.SetLastReadSeq(v)
	return _c
}

// SetNillableLastReadSeq sets the "last_read_seq" field if the given value is not nil.
func (_c *ParticipantCursorCreate) SetNillableLastReadSeq(v *int) *ParticipantCursorCreate {
	if v != nil {
		_c.SetLastReadSeq(*v)
	}
	return _c
}

// SetLastAckedMessageID sets the "last_acked_message_id" field.
func (_c *ParticipantCursorCreate) SetLastAckedMessageID(v string) *ParticipantCursorCreate {
	_c.mutation.SetLastAckedMessageID(v)
	return _c
}

// SetNillableLastAckedMessageID sets the "last_acked_message_id" field if the given value is not nil.
func (_c *ParticipantCursorCreate) SetNillableLastAckedMessageID(v *string) *ParticipantCursorCreate {
	if v != nil {
		_c.SetLastAckedMessageID(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ParticipantCursorCreate) SetUpdatedAt(v time.Time) *ParticipantCursorCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ParticipantCursorCreate) SetNillableUpdatedAt(v *time.Time) *ParticipantCursorCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ParticipantCursorCreate) SetID(v string) *ParticipantCursorCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetThread sets the "thread" edge to the Thread entity.
func (_c *ParticipantCursorCreate) SetThread(v *Thread) *ParticipantCursorCreate {
	return _c.SetThreadID(v.ID)
}

// Mutation returns the ParticipantCursorMutation object of the builder.
func (_c *ParticipantCursorCreate) Mutation() *ParticipantCursorMutation {
	return _c.mutation
}

// Save creates the ParticipantCursor in the database.
func (_c *ParticipantCursorCreate) Save(ctx context.Context) (*ParticipantCursor, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ParticipantCursorCreate) SaveX(ctx context.Context) *ParticipantCursor {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ParticipantCursorCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ParticipantCursorCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ParticipantCursorCreate) defaults() {
	if _, ok := _c.mutation.LastReadSeq(); !ok {
		v := participantcursor.DefaultLastReadSeq
		_c.mutation.SetLastReadSeq(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := participantcursor.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ParticipantCursorCreate) check() error {
	if _, ok := _c.mutation.ThreadID(); !ok {
		return &ValidationError{Name: "thread_id", err: errors.New(`ent: missing required field "ParticipantCursor.thread_id"`)}
	}
	if _, ok := _c.mutation.AgentID(); !ok {
		return &ValidationError{Name: "agent_id", err: errors.New(`ent: missing required field "ParticipantCursor.agent_id"`)}
	}
	if _, ok := _c.mutation.LastReadSeq(); !ok {
		return &ValidationError{Name: "last_read_seq", err: errors.New(`ent: missing required field "ParticipantCursor.last_read_seq"`)}
	}
	if v, ok := _c.mutation.LastReadSeq(); ok {
		if err := participantcursor.LastReadSeqValidator(v); err != nil {
			return &ValidationError{Name: "last_read_seq", err: fmt.Errorf(`ent: validator failed for field "ParticipantCursor.last_read_seq": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ParticipantCursor.updated_at"`)}
	}
	if len(_c.mutation.ThreadIDs()) == 0 {
		return &ValidationError{Name: "thread", err: errors.New(`ent: missing required edge "ParticipantCursor.thread"`)}
	}
	return nil
}

func (_c *ParticipantCursorCreate) sqlSave(ctx context.Context) (*ParticipantCursor, error) {
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
			return nil, fmt.Errorf("unexpected ParticipantCursor.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ParticipantCursorCreate) createSpec() (*ParticipantCursor, *sqlgraph.CreateSpec) {
	var (
		_node = &ParticipantCursor{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(participantcursor.Table, sqlgraph.NewFieldSpec(participantcursor.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.AgentID(); ok {
		_spec.SetField(participantcursor.FieldAgentID, field.TypeString, value)
		_node.AgentID = value
	}
	if value, ok := _c.mutation.LastReadSeq(); ok {
		_spec.SetField(participantcursor.FieldLastReadSeq, field.TypeInt, value)
		_node.LastReadSeq = value
	}
	if value, ok := _c.mutation.LastAckedMessageID(); ok {
		_spec.SetField(participantcursor.FieldLastAckedMessageID, field.TypeString, value)
		_node.LastAckedMessageID = &value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(participantcursor.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ThreadIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   participantcursor.ThreadTable,
			Columns: []string{participantcursor.ThreadColumn},
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
//	client.ParticipantCursor.Create().
//		SetThreadID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ParticipantCursorUpsert) {
//			SetThreadID(v+v).
//		}).
//		Exec(ctx)
func (_c *ParticipantCursorCreate) OnConflict(opts ...sql.ConflictOption) *ParticipantCursorUpsertOne {
	_c.conflict = opts
	return &ParticipantCursorUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ParticipantCursor.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ParticipantCursorCreate) OnConflictColumns(columns ...string) *ParticipantCursorUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ParticipantCursorUpsertOne{
		create: _c,
	}
}

type (
	// ParticipantCursorUpsertOne is the builder for "upsert"-ing
	//  one ParticipantCursor node.
	ParticipantCursorUpsertOne struct {
		create *ParticipantCursorCreate
	}

	// ParticipantCursorUpsert is the "OnConflict" setter.
	ParticipantCursorUpsert struct {
		*sql.UpdateSet
	}
)

// SetLastReadSeq sets the "last_read_seq" field.
func (u *ParticipantCursorUpsert) SetLastReadSeq(v int) *ParticipantCursorUpsert {
	u.Set(participantcursor.FieldLastReadSeq, v)
	return u
}

// UpdateLastReadSeq sets the "last_read_seq" field to the value that was provided on create.
func (u *ParticipantCursorUpsert) UpdateLastReadSeq() *ParticipantCursorUpsert {
	u.SetExcluded(participantcursor.FieldLastReadSeq)
	return u
}

// AddLastReadSeq adds v to the "last_read_seq" field.
func (u *ParticipantCursorUpsert) AddLastReadSeq(v int) *ParticipantCursorUpsert {
	u.Add(participantcursor.FieldLastReadSeq, v)
	return u
}

// SetLastAckedMessageID sets the "last_acked_message_id" field.
func (u *ParticipantCursorUpsert) SetLastAckedMessageID(v string) *ParticipantCursorUpsert {
	u.Set(participantcursor.FieldLastAckedMessageID, v)
	return u
}

// UpdateLastAckedMessageID sets the "last_acked_message_id" field to the value that was provided on create.
func (u *ParticipantCursorUpsert) UpdateLastAckedMessageID() *ParticipantCursorUpsert {
	u.SetExcluded(participantcursor.FieldLastAckedMessageID)
	return u
}

// ClearLastAckedMessageID clears the value of the "last_acked_message_id" field.
func (u *ParticipantCursorUpsert) ClearLastAckedMessageID() *ParticipantCursorUpsert {
	u.SetNull(participantcursor.FieldLastAckedMessageID)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ParticipantCursorUpsert) SetUpdatedAt(v time.Time) *ParticipantCursorUpsert {
	u.Set(participantcursor.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ParticipantCursorUpsert) UpdateUpdatedAt() *ParticipantCursorUpsert {
	u.SetExcluded(participantcursor.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ParticipantCursor.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(participantcursor.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ParticipantCursorUpsertOne) UpdateNewValues() *ParticipantCursorUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(participantcursor.FieldID)
		}
		if _, exists := u.create.mutation.ThreadID(); exists {
			s.SetIgnore(participantcursor.FieldThreadID)
		}
		if _, exists := u.create.mutation.AgentID(); exists {
			s.SetIgnore(participantcursor.FieldAgentID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ParticipantCursor.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ParticipantCursorUpsertOne) Ignore() *ParticipantCursorUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ParticipantCursorUpsertOne) DoNothing() *ParticipantCursorUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ParticipantCursorCreate.OnConflict
// documentation for more info.
func (u *ParticipantCursorUpsertOne) Update(set func(*ParticipantCursorUpsert)) *ParticipantCursorUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ParticipantCursorUpsert{UpdateSet: update})
	}))
	return u
}

// SetLastReadSeq sets the "last_read_seq" field.
func (u *ParticipantCursorUpsertOne) SetLastReadSeq(v int) *ParticipantCursorUpsertOne {
	return u.Update(func(s *ParticipantCursorUpsert) {
		s.SetLastReadSeq(v)
	})
}

// AddLastReadSeq adds v to the "last_read_seq" field.
func (u *ParticipantCursorUpsertOne) AddLastReadSeq(v int) *ParticipantCursorUpsertOne {
	return u.Update(func(s *ParticipantCursorUpsert) {
		s.AddLastReadSeq(v)
	})
}

// UpdateLastReadSeq sets the "last_read_seq" field to the value that was provided on create.
func (u *ParticipantCursorUpsertOne) UpdateLastReadSeq() *ParticipantCursorUpsertOne {
	return u.Update(func(s *ParticipantCursorUpsert) {
		s.UpdateLastReadSeq()
	})
}

// SetLastAckedMessageID sets the "last_acked_message_id" field.
func (u *ParticipantCursorUpsertOne) SetLastAckedMessageID(v string) *ParticipantCursorUpsertOne {
	return u.Update(func(s *ParticipantCursorUpsert) {
		s.SetLastAckedMessageID(v)
	})
}

// UpdateLastAckedMessageID sets the "last_acked_message_id" field to the value that was provided on create.
func (u *ParticipantCursorUpsertOne) UpdateLastAckedMessageID() *ParticipantCursorUpsertOne {
	return u.Update(func(s *ParticipantCursorUpsert) {
		s.UpdateLastAckedMessageID()
	})
}

// ClearLastAckedMessageID clears the value of the "last_acked_message_id" field.
func (u *ParticipantCursorUpsertOne) ClearLastAckedMessageID() *ParticipantCursorUpsertOne {
	return u.Update(func(s *ParticipantCursorUpsert) {
		s.ClearLastAckedMessageID()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ParticipantCursorUpsertOne) SetUpdatedAt(v time.Time) *ParticipantCursorUpsertOne {
	return u.Update(func(s *ParticipantCursorUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ParticipantCursorUpsertOne) UpdateUpdatedAt() *ParticipantCursorUpsertOne {
	return u.Update(func(s *ParticipantCursorUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ParticipantCursorUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ParticipantCursorCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ParticipantCursorUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ParticipantCursorUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ParticipantCursorUpsertOne.ID is not supported by MySQL driver. Use ParticipantCursorUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ParticipantCursorUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ParticipantCursorCreateBulk is the builder for creating many ParticipantCursor entities in bulk.
type ParticipantCursorCreateBulk struct {
	config
	err      error
	builders []*ParticipantCursorCreate
	conflict []sql.ConflictOption
}

// Save creates the ParticipantCursor entities in the database.
func (_c *ParticipantCursorCreateBulk) Save(ctx context.Context) ([]*ParticipantCursor, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ParticipantCursor, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ParticipantCursorMutation)
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
func (_c *ParticipantCursorCreateBulk) SaveX(ctx context.Context) []*ParticipantCursor {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ParticipantCursorCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ParticipantCursorCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ParticipantCursor.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ParticipantCursorUpsert) {
//			SetThreadID(v+v).
//		}).
//		Exec(ctx)
func (_c *ParticipantCursorCreateBulk) OnConflict(opts ...sql.ConflictOption) *ParticipantCursorUpsertBulk {
	_c.conflict = opts
	return &ParticipantCursorUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ParticipantCursor.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ParticipantCursorCreateBulk) OnConflictColumns(columns ...string) *ParticipantCursorUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ParticipantCursorUpsertBulk{
		create: _c,
	}
}

// ParticipantCursorUpsertBulk is the builder for "upsert"-ing
// a bulk of ParticipantCursor nodes.
type ParticipantCursorUpsertBulk struct {
	create *ParticipantCursorCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ParticipantCursor.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(participantcursor.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ParticipantCursorUpsertBulk) UpdateNewValues() *ParticipantCursorUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(participantcursor.FieldID)
			}
			if _, exists := b.mutation.ThreadID(); exists {
				s.SetIgnore(participantcursor.FieldThreadID)
			}
			if _, exists := b.mutation.AgentID(); exists {
				s.SetIgnore(participantcursor.FieldAgentID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ParticipantCursor.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ParticipantCursorUpsertBulk) Ignore() *ParticipantCursorUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ParticipantCursorUpsertBulk) DoNothing() *ParticipantCursorUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ParticipantCursorCreateBulk.OnConflict
// documentation for more info.
func (u *ParticipantCursorUpsertBulk) Update(set func(*ParticipantCursorUpsert)) *ParticipantCursorUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ParticipantCursorUpsert{UpdateSet: update})
	}))
	return u
}

// SetLastReadSeq sets the "last_read_seq" field.
func (u *ParticipantCursorUpsertBulk) SetLastReadSeq(v int) *ParticipantCursorUpsertBulk {
	return u.Update(func(s *ParticipantCursorUpsert) {
		s.SetLastReadSeq(v)
	})
}

// AddLastReadSeq adds v to the "last_read_seq" field.
func (u *ParticipantCursorUpsertBulk) AddLastReadSeq(v int) *ParticipantCursorUpsertBulk {
	return u.Update(func(s *ParticipantCursorUpsert) {
		s.AddLastReadSeq(v)
	})
}

// UpdateLastReadSeq sets the "last_read_seq" field to the value that was provided on create.
func (u *ParticipantCursorUpsertBulk) UpdateLastReadSeq() *ParticipantCursorUpsertBulk {
	return u.Update(func(s *ParticipantCursorUpsert) {
		s.UpdateLastReadSeq()
	})
}

// SetLastAckedMessageID sets the "last_acked_message_id" field.
func (u *ParticipantCursorUpsertBulk) SetLastAckedMessageID(v string) *ParticipantCursorUpsertBulk {
	return u.Update(func(s *ParticipantCursorUpsert) {
		s.SetLastAckedMessageID(v)
	})
}

// UpdateLastAckedMessageID sets the "last_acked_message_id" field to the value that was provided on create.
func (u *ParticipantCursorUpsertBulk) UpdateLastAckedMessageID() *ParticipantCursorUpsertBulk {
	return u.Update(func(s *ParticipantCursorUpsert) {
		s.UpdateLastAckedMessageID()
	})
}

// ClearLastAckedMessageID clears the value of the "last_acked_message_id" field.
func (u *ParticipantCursorUpsertBulk) ClearLastAckedMessageID() *ParticipantCursorUpsertBulk {
	return u.Update(func(s *ParticipantCursorUpsert) {
		s.ClearLastAckedMessageID()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ParticipantCursorUpsertBulk) SetUpdatedAt(v time.Time) *ParticipantCursorUpsertBulk {
	return u.Update(func(s *ParticipantCursorUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ParticipantCursorUpsertBulk) UpdateUpdatedAt() *ParticipantCursorUpsertBulk {
	return u.Update(func(s *ParticipantCursorUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ParticipantCursorUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ParticipantCursorCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ParticipantCursorCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ParticipantCursorUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
