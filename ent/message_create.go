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
	"github.com/agentfabric/bridge/ent/message"
	"github.com/agentfabric/bridge/ent/thread"
)

// MessageCreate is the builder for creating a Message entity.
type MessageCreate struct {
	config
	mutation *MessageMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetThreadID sets the "thread_id" field.
func (_c *MessageCreate) SetThreadID(v string) *MessageCreate {
	_c.mutation.SetThreadID(v)
	return _c
}

// SetSchemaVersion sets the "schema_version" field.
func (_c *MessageCreate) SetSchemaVersion(v int) *MessageCreate {
	_c.mutation.SetSchemaVersion(v)
	return _c
}

// SetSeq sets the "seq" field.
func (_c *MessageCreate) SetSeq(v int) *MessageCreate {
	_c.mutation.SetSeq(v)
	return _c
}

// SetSenderAgentID sets the "sender_agent_id" field.
func (_c *MessageCreate) SetSenderAgentID(v string) *MessageCreate {
	_c.mutation.SetSenderAgentID(v)
	return _c
}

// SetSenderSessionID sets the "sender_session_id" field.
func (_c *MessageCreate) SetSenderSessionID(v string) *MessageCreate {
	_c.mutation.SetSenderSessionID(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *MessageCreate) SetKind(v message.Kind) *MessageCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetBody sets the "body" field.
func (_c *MessageCreate) SetBody(v string) *MessageCreate {
	_c.mutation.SetBody(v)
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *MessageCreate) SetMetadata(v map[string]interface{}) *MessageCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetInReplyTo sets the "in_reply_to" field.
func (_c *MessageCreate) SetInReplyTo(v string) *MessageCreate {
	_c.mutation.SetInReplyTo(v)
	return _c
}

// SetNillableInReplyTo sets the "in_reply_to" field if the given value is not nil.
func (_c *MessageCreate) SetNillableInReplyTo(v *string) *MessageCreate {
	if v != nil {
		_c.SetInReplyTo(*v)
	}
	return _c
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (_c *MessageCreate) SetIdempotencyKey(v string) *MessageCreate {
	_c.mutation.SetIdempotencyKey(v)
	return _c
}

// SetNillableIdempotencyKey sets the "idempotency_key" field if the given value is not nil.
func (_c *MessageCreate) SetNillableIdempotencyKey(v *string) *MessageCreate {
	if v != nil {
		_c.SetIdempotencyKey(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MessageCreate) SetCreatedAt(v time.Time) *MessageCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MessageCreate) SetNillableCreatedAt(v *time.Time) *MessageCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MessageCreate) SetID(v string) *MessageCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetThread sets the "thread" edge to the Thread entity.
func (_c *MessageCreate) SetThread(v *Thread) *MessageCreate {
	return _c.SetThreadID(v.ID)
}

// Mutation returns the MessageMutation object of the builder.
func (_c *MessageCreate) Mutation() *MessageMutation {
	return _c.mutation
}

// Save creates the Message in the database.
func (_c *MessageCreate) Save(ctx context.Context) (*Message, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MessageCreate) SaveX(ctx context.Context) *Message {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MessageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MessageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MessageCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := message.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MessageCreate) check() error {
	if _, ok := _c.mutation.ThreadID(); !ok {
		return &ValidationError{Name: "thread_id", err: errors.New(`ent: missing required field "Message.thread_id"`)}
	}
	if _, ok := _c.mutation.SchemaVersion(); !ok {
		return &ValidationError{Name: "schema_version", err: errors.New(`ent: missing required field "Message.schema_version"`)}
	}
	if v, ok := _c.mutation.SchemaVersion(); ok {
		if err := message.SchemaVersionValidator(v); err != nil {
			return &ValidationError{Name: "schema_version", err: fmt.Errorf(`ent: validator failed for field "Message.schema_version": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Seq(); !ok {
		return &ValidationError{Name: "seq", err: errors.New(`ent: missing required field "Message.seq"`)}
	}
	if v, ok := _c.mutation.Seq(); ok {
		if err := message.SeqValidator(v); err != nil {
			return &ValidationError{Name: "seq", err: fmt.Errorf(`ent: validator failed for field "Message.seq": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SenderAgentID(); !ok {
		return &ValidationError{Name: "sender_agent_id", err: errors.New(`ent: missing required field "Message.sender_agent_id"`)}
	}
	if _, ok := _c.mutation.SenderSessionID(); !ok {
		return &ValidationError{Name: "sender_session_id", err: errors.New(`ent: missing required field "Message.sender_session_id"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "Message.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := message.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Message.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Body(); !ok {
		return &ValidationError{Name: "body", err: errors.New(`ent: missing required field "Message.body"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Message.created_at"`)}
	}
	if len(_c.mutation.ThreadIDs()) == 0 {
		return &ValidationError{Name: "thread", err: errors.New(`ent: missing required edge "Message.thread"`)}
	}
	return nil
}

func (_c *MessageCreate) sqlSave(ctx context.Context) (*Message, error) {
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
			return nil, fmt.Errorf("unexpected Message.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MessageCreate) createSpec() (*Message, *sqlgraph.CreateSpec) {
	var (
		_node = &Message{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(message.Table, sqlgraph.NewFieldSpec(message.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.SchemaVersion(); ok {
		_spec.SetField(message.FieldSchemaVersion, field.TypeInt, value)
		_node.SchemaVersion = value
	}
	if value, ok := _c.mutation.Seq(); ok {
		_spec.SetField(message.FieldSeq, field.TypeInt, value)
		_node.Seq = value
	}
	if value, ok := _c.mutation.SenderAgentID(); ok {
		_spec.SetField(message.FieldSenderAgentID, field.TypeString, value)
		_node.SenderAgentID = value
	}
	if value, ok := _c.mutation.SenderSessionID(); ok {
		_spec.SetField(message.FieldSenderSessionID, field.TypeString, value)
		_node.SenderSessionID = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(message.FieldKind, field.TypeEnum, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Body(); ok {
		_spec.SetField(message.FieldBody, field.TypeString, value)
		_node.Body = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(message.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.InReplyTo(); ok {
		_spec.SetField(message.FieldInReplyTo, field.TypeString, value)
		_node.InReplyTo = &value
	}
	if value, ok := _c.mutation.IdempotencyKey(); ok {
		_spec.SetField(message.FieldIdempotencyKey, field.TypeString, value)
		_node.IdempotencyKey = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(message.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ThreadIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   message.ThreadTable,
			Columns: []string{message.ThreadColumn},
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
//	client.Message.Create().
//		SetThreadID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MessageUpsert) {
//			SetThreadID(v+v).
//		}).
//		Exec(ctx)
func (_c *MessageCreate) OnConflict(opts ...sql.ConflictOption) *MessageUpsertOne {
	_c.conflict = opts
	return &MessageUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Message.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MessageCreate) OnConflictColumns(columns ...string) *MessageUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MessageUpsertOne{
		create: _c,
	}
}

type (
	// MessageUpsertOne is the builder for "upsert"-ing
	//  one Message node.
	MessageUpsertOne struct {
		create *MessageCreate
	}

	// MessageUpsert is the "OnConflict" setter.
	MessageUpsert struct {
		*sql.UpdateSet
	}
)

// SetKind sets the "kind" field.
func (u *MessageUpsert) SetKind(v message.Kind) *MessageUpsert {
	u.Set(message.FieldKind, v)
	return u
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *MessageUpsert) UpdateKind() *MessageUpsert {
	u.SetExcluded(message.FieldKind)
	return u
}

// SetBody sets the "body" field.
func (u *MessageUpsert) SetBody(v string) *MessageUpsert {
	u.Set(message.FieldBody, v)
	return u
}

// UpdateBody sets the "body" field to the value that was provided on create.
func (u *MessageUpsert) UpdateBody() *MessageUpsert {
	u.SetExcluded(message.FieldBody)
	return u
}

// SetMetadata sets the "metadata" field.
func (u *MessageUpsert) SetMetadata(v map[string]interface{}) *MessageUpsert {
	u.Set(message.FieldMetadata, v)
	return u
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *MessageUpsert) UpdateMetadata() *MessageUpsert {
	u.SetExcluded(message.FieldMetadata)
	return u
}

// ClearMetadata clears the value of the "metadata" field.
func (u *MessageUpsert) ClearMetadata() *MessageUpsert {
	u.SetNull(message.FieldMetadata)
	return u
}

// SetInReplyTo sets the "in_reply_to" field.
func (u *MessageUpsert) SetInReplyTo(v string) *MessageUpsert {
	u.Set(message.FieldInReplyTo, v)
	return u
}

// UpdateInReplyTo sets the "in_reply_to" field to the value that was provided on create.
func (u *MessageUpsert) UpdateInReplyTo() *MessageUpsert {
	u.SetExcluded(message.FieldInReplyTo)
	return u
}

// ClearInReplyTo clears the value of the "in_reply_to" field.
func (u *MessageUpsert) ClearInReplyTo() *MessageUpsert {
	u.SetNull(message.FieldInReplyTo)
	return u
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (u *MessageUpsert) SetIdempotencyKey(v string) *MessageUpsert {
	u.Set(message.FieldIdempotencyKey, v)
	return u
}

// UpdateIdempotencyKey sets the "idempotency_key" field to the value that was provided on create.
func (u *MessageUpsert) UpdateIdempotencyKey() *MessageUpsert {
	u.SetExcluded(message.FieldIdempotencyKey)
	return u
}

// ClearIdempotencyKey clears the value of the "idempotency_key" field.
func (u *MessageUpsert) ClearIdempotencyKey() *MessageUpsert {
	u.SetNull(message.FieldIdempotencyKey)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Message.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(message.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MessageUpsertOne) UpdateNewValues() *MessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(message.FieldID)
		}
		if _, exists := u.create.mutation.ThreadID(); exists {
			s.SetIgnore(message.FieldThreadID)
		}
		if _, exists := u.create.mutation.SchemaVersion(); exists {
			s.SetIgnore(message.FieldSchemaVersion)
		}
		if _, exists := u.create.mutation.Seq(); exists {
			s.SetIgnore(message.FieldSeq)
		}
		if _, exists := u.create.mutation.SenderAgentID(); exists {
			s.SetIgnore(message.FieldSenderAgentID)
		}
		if _, exists := u.create.mutation.SenderSessionID(); exists {
			s.SetIgnore(message.FieldSenderSessionID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(message.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Message.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *MessageUpsertOne) Ignore() *MessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MessageUpsertOne) DoNothing() *MessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MessageCreate.OnConflict
// documentation for more info.
func (u *MessageUpsertOne) Update(set func(*MessageUpsert)) *MessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MessageUpsert{UpdateSet: update})
	}))
	return u
}

// SetKind sets the "kind" field.
func (u *MessageUpsertOne) SetKind(v message.Kind) *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.SetKind(v)
	})
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *MessageUpsertOne) UpdateKind() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateKind()
	})
}

// SetBody sets the "body" field.
func (u *MessageUpsertOne) SetBody(v string) *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.SetBody(v)
	})
}

// UpdateBody sets the "body" field to the value that was provided on create.
func (u *MessageUpsertOne) UpdateBody() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateBody()
	})
}

// SetMetadata sets the "metadata" field.
func (u *MessageUpsertOne) SetMetadata(v map[string]interface{}) *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *MessageUpsertOne) UpdateMetadata() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *MessageUpsertOne) ClearMetadata() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.ClearMetadata()
	})
}

// SetInReplyTo sets the "in_reply_to" field.
func (u *MessageUpsertOne) SetInReplyTo(v string) *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.SetInReplyTo(v)
	})
}

// UpdateInReplyTo sets the "in_reply_to" field to the value that was provided on create.
func (u *MessageUpsertOne) UpdateInReplyTo() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateInReplyTo()
	})
}

// ClearInReplyTo clears the value of the "in_reply_to" field.
func (u *MessageUpsertOne) ClearInReplyTo() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.ClearInReplyTo()
	})
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (u *MessageUpsertOne) SetIdempotencyKey(v string) *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.SetIdempotencyKey(v)
	})
}

// UpdateIdempotencyKey sets the "idempotency_key" field to the value that was provided on create.
func (u *MessageUpsertOne) UpdateIdempotencyKey() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateIdempotencyKey()
	})
}

// ClearIdempotencyKey clears the value of the "idempotency_key" field.
func (u *MessageUpsertOne) ClearIdempotencyKey() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.ClearIdempotencyKey()
	})
}

// Exec executes the query.
func (u *MessageUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MessageCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MessageUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *MessageUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: MessageUpsertOne.ID is not supported by MySQL driver. Use MessageUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *MessageUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// MessageCreateBulk is the builder for creating many Message entities in bulk.
type MessageCreateBulk struct {
	config
	err      error
	builders []*MessageCreate
	conflict []sql.ConflictOption
}

// Save creates the Message entities in the database.
func (_c *MessageCreateBulk) Save(ctx context.Context) ([]*Message, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Message, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MessageMutation)
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
func (_c *MessageCreateBulk) SaveX(ctx context.Context) []*Message {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MessageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MessageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Message.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MessageUpsert) {
//			SetThreadID(v+v).
//		}).
//		Exec(ctx)
func (_c *MessageCreateBulk) OnConflict(opts ...sql.ConflictOption) *MessageUpsertBulk {
	_c.conflict = opts
	return &MessageUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Message.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MessageCreateBulk) OnConflictColumns(columns ...string) *MessageUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MessageUpsertBulk{
		create: _c,
	}
}

// MessageUpsertBulk is the builder for "upsert"-ing
// a bulk of Message nodes.
type MessageUpsertBulk struct {
	create *MessageCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Message.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(message.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MessageUpsertBulk) UpdateNewValues() *MessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(message.FieldID)
			}
			if _, exists := b.mutation.ThreadID(); exists {
				s.SetIgnore(message.FieldThreadID)
			}
			if _, exists := b.mutation.SchemaVersion(); exists {
				s.SetIgnore(message.FieldSchemaVersion)
			}
			if _, exists := b.mutation.Seq(); exists {
				s.SetIgnore(message.FieldSeq)
			}
			if _, exists := b.mutation.SenderAgentID(); exists {
				s.SetIgnore(message.FieldSenderAgentID)
			}
			if _, exists := b.mutation.SenderSessionID(); exists {
				s.SetIgnore(message.FieldSenderSessionID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(message.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Message.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *MessageUpsertBulk) Ignore() *MessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MessageUpsertBulk) DoNothing() *MessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MessageCreateBulk.OnConflict
// documentation for more info.
func (u *MessageUpsertBulk) Update(set func(*MessageUpsert)) *MessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MessageUpsert{UpdateSet: update})
	}))
	return u
}

// SetKind sets the "kind" field.
func (u *MessageUpsertBulk) SetKind(v message.Kind) *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.SetKind(v)
	})
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *MessageUpsertBulk) UpdateKind() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateKind()
	})
}

// SetBody sets the "body" field.
func (u *MessageUpsertBulk) SetBody(v string) *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.SetBody(v)
	})
}

// UpdateBody sets the "body" field to the value that was provided on create.
func (u *MessageUpsertBulk) UpdateBody() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateBody()
	})
}

// SetMetadata sets the "metadata" field.
func (u *MessageUpsertBulk) SetMetadata(v map[string]interface{}) *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *MessageUpsertBulk) UpdateMetadata() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *MessageUpsertBulk) ClearMetadata() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.ClearMetadata()
	})
}

// SetInReplyTo sets the "in_reply_to" field.
func (u *MessageUpsertBulk) SetInReplyTo(v string) *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.SetInReplyTo(v)
	})
}

// UpdateInReplyTo sets the "in_reply_to" field to the value that was provided on create.
func (u *MessageUpsertBulk) UpdateInReplyTo() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateInReplyTo()
	})
}

// ClearInReplyTo clears the value of the "in_reply_to" field.
func (u *MessageUpsertBulk) ClearInReplyTo() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.ClearInReplyTo()
	})
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (u *MessageUpsertBulk) SetIdempotencyKey(v string) *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.SetIdempotencyKey(v)
	})
}

// UpdateIdempotencyKey sets the "idempotency_key" field to the value that was provided on create.
func (u *MessageUpsertBulk) UpdateIdempotencyKey() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateIdempotencyKey()
	})
}

// ClearIdempotencyKey clears the value of the "idempotency_key" field.
func (u *MessageUpsertBulk) ClearIdempotencyKey() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.ClearIdempotencyKey()
	})
}

// Exec executes the query.
func (u *MessageUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the MessageCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MessageCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MessageUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
