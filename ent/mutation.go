// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/agentfabric/bridge/ent/auditevent"
	"github.com/agentfabric/bridge/ent/fallbackrun"
	"github.com/agentfabric/bridge/ent/message"
	"github.com/agentfabric/bridge/ent/participantcursor"
	"github.com/agentfabric/bridge/ent/predicate"
	"github.com/agentfabric/bridge/ent/sessionrecord"
	"github.com/agentfabric/bridge/ent/thread"
	"github.com/agentfabric/bridge/ent/threadparticipant"
	"github.com/agentfabric/bridge/ent/triggerattempt"
	"github.com/agentfabric/bridge/ent/triggerjob"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAuditEvent        = "AuditEvent"
	TypeFallbackRun       = "FallbackRun"
	TypeMessage           = "Message"
	TypeParticipantCursor = "ParticipantCursor"
	TypeSessionRecord     = "SessionRecord"
	TypeThread            = "Thread"
	TypeThreadParticipant = "ThreadParticipant"
	TypeTriggerAttempt    = "TriggerAttempt"
	TypeTriggerJob        = "TriggerJob"
)

// AuditEventMutation represents an operation that mutates the AuditEvent nodes in the graph.
type AuditEventMutation struct {
	config
	op             Op
	typ            string
	id             *string
	workspace_id   *string
	actor_agent_id *string
	actor_role     *string
	operation      *string
	resource_type  *string
	resource_id    *string
	thread_id      *string
	request_id     *string
	result         *auditevent.Result
	payload        *map[string]interface{}
	created_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*AuditEvent, error)
	predicates     []predicate.AuditEvent
}

var _ ent.Mutation = (*AuditEventMutation)(nil)

// auditeventOption allows management of the mutation configuration using functional options.
type auditeventOption func(*AuditEventMutation)

// newAuditEventMutation creates new mutation for the AuditEvent entity.
func newAuditEventMutation(c config, op Op, opts ...auditeventOption) *AuditEventMutation {
	m := &AuditEventMutation{
		config:        c,
		op:            op,
		typ:           TypeAuditEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAuditEventID sets the ID field of the mutation.
func withAuditEventID(id string) auditeventOption {
	return func(m *AuditEventMutation) {
		var (
			err   error
			once  sync.Once
			value *AuditEvent
		)
		m.oldValue = func(ctx context.Context) (*AuditEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AuditEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAuditEvent sets the old AuditEvent of the mutation.
func withAuditEvent(node *AuditEvent) auditeventOption {
	return func(m *AuditEventMutation) {
		m.oldValue = func(context.Context) (*AuditEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AuditEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AuditEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AuditEvent entities.
func (m *AuditEventMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AuditEventMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AuditEventMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AuditEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *AuditEventMutation) SetWorkspaceID(s string) {
	m.workspace_id = &s
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *AuditEventMutation) WorkspaceID() (r string, exists bool) {
	v := m.workspace_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the AuditEvent entity.
// If the AuditEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEventMutation) OldWorkspaceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *AuditEventMutation) ResetWorkspaceID() {
	m.workspace_id = nil
}

// SetActorAgentID sets the "actor_agent_id" field.
func (m *AuditEventMutation) SetActorAgentID(s string) {
	m.actor_agent_id = &s
}

// ActorAgentID returns the value of the "actor_agent_id" field in the mutation.
func (m *AuditEventMutation) ActorAgentID() (r string, exists bool) {
	v := m.actor_agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldActorAgentID returns the old "actor_agent_id" field's value of the AuditEvent entity.
// If the AuditEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEventMutation) OldActorAgentID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActorAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActorAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActorAgentID: %w", err)
	}
	return oldValue.ActorAgentID, nil
}

// ClearActorAgentID clears the value of the "actor_agent_id" field.
func (m *AuditEventMutation) ClearActorAgentID() {
	m.actor_agent_id = nil
	m.clearedFields[auditevent.FieldActorAgentID] = struct{}{}
}

// ActorAgentIDCleared returns if the "actor_agent_id" field was cleared in this mutation.
func (m *AuditEventMutation) ActorAgentIDCleared() bool {
	_, ok := m.clearedFields[auditevent.FieldActorAgentID]
	return ok
}

// ResetActorAgentID resets all changes to the "actor_agent_id" field.
func (m *AuditEventMutation) ResetActorAgentID() {
	m.actor_agent_id = nil
	delete(m.clearedFields, auditevent.FieldActorAgentID)
}

// SetActorRole sets the "actor_role" field.
func (m *AuditEventMutation) SetActorRole(s string) {
	m.actor_role = &s
}

// ActorRole returns the value of the "actor_role" field in the mutation.
func (m *AuditEventMutation) ActorRole() (r string, exists bool) {
	v := m.actor_role
	if v == nil {
		return
	}
	return *v, true
}

// OldActorRole returns the old "actor_role" field's value of the AuditEvent entity.
// If the AuditEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEventMutation) OldActorRole(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActorRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActorRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActorRole: %w", err)
	}
	return oldValue.ActorRole, nil
}

// ClearActorRole clears the value of the "actor_role" field.
func (m *AuditEventMutation) ClearActorRole() {
	m.actor_role = nil
	m.clearedFields[auditevent.FieldActorRole] = struct{}{}
}

// ActorRoleCleared returns if the "actor_role" field was cleared in this mutation.
func (m *AuditEventMutation) ActorRoleCleared() bool {
	_, ok := m.clearedFields[auditevent.FieldActorRole]
	return ok
}

// ResetActorRole resets all changes to the "actor_role" field.
func (m *AuditEventMutation) ResetActorRole() {
	m.actor_role = nil
	delete(m.clearedFields, auditevent.FieldActorRole)
}

// SetOperation sets the "operation" field.
func (m *AuditEventMutation) SetOperation(s string) {
	m.operation = &s
}

// Operation returns the value of the "operation" field in the mutation.
func (m *AuditEventMutation) Operation() (r string, exists bool) {
	v := m.operation
	if v == nil {
		return
	}
	return *v, true
}

// OldOperation returns the old "operation" field's value of the AuditEvent entity.
// If the AuditEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEventMutation) OldOperation(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOperation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOperation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOperation: %w", err)
	}
	return oldValue.Operation, nil
}

// ResetOperation resets all changes to the "operation" field.
func (m *AuditEventMutation) ResetOperation() {
	m.operation = nil
}

// SetResourceType sets the "resource_type" field.
func (m *AuditEventMutation) SetResourceType(s string) {
	m.resource_type = &s
}

// ResourceType returns the value of the "resource_type" field in the mutation.
func (m *AuditEventMutation) ResourceType() (r string, exists bool) {
	v := m.resource_type
	if v == nil {
		return
	}
	return *v, true
}

// OldResourceType returns the old "resource_type" field's value of the AuditEvent entity.
// If the AuditEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEventMutation) OldResourceType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResourceType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResourceType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResourceType: %w", err)
	}
	return oldValue.ResourceType, nil
}

// ResetResourceType resets all changes to the "resource_type" field.
func (m *AuditEventMutation) ResetResourceType() {
	m.resource_type = nil
}

// SetResourceID sets the "resource_id" field.
func (m *AuditEventMutation) SetResourceID(s string) {
	m.resource_id = &s
}

// ResourceID returns the value of the "resource_id" field in the mutation.
func (m *AuditEventMutation) ResourceID() (r string, exists bool) {
	v := m.resource_id
	if v == nil {
		return
	}
	return *v, true
}

// OldResourceID returns the old "resource_id" field's value of the AuditEvent entity.
// If the AuditEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEventMutation) OldResourceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResourceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResourceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResourceID: %w", err)
	}
	return oldValue.ResourceID, nil
}

// ResetResourceID resets all changes to the "resource_id" field.
func (m *AuditEventMutation) ResetResourceID() {
	m.resource_id = nil
}

// SetThreadID sets the "thread_id" field.
func (m *AuditEventMutation) SetThreadID(s string) {
	m.thread_id = &s
}

// ThreadID returns the value of the "thread_id" field in the mutation.
func (m *AuditEventMutation) ThreadID() (r string, exists bool) {
	v := m.thread_id
	if v == nil {
		return
	}
	return *v, true
}

// OldThreadID returns the old "thread_id" field's value of the AuditEvent entity.
// If the AuditEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEventMutation) OldThreadID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldThreadID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldThreadID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldThreadID: %w", err)
	}
	return oldValue.ThreadID, nil
}

// ClearThreadID clears the value of the "thread_id" field.
func (m *AuditEventMutation) ClearThreadID() {
	m.thread_id = nil
	m.clearedFields[auditevent.FieldThreadID] = struct{}{}
}

// ThreadIDCleared returns if the "thread_id" field was cleared in this mutation.
func (m *AuditEventMutation) ThreadIDCleared() bool {
	_, ok := m.clearedFields[auditevent.FieldThreadID]
	return ok
}

// ResetThreadID resets all changes to the "thread_id" field.
func (m *AuditEventMutation) ResetThreadID() {
	m.thread_id = nil
	delete(m.clearedFields, auditevent.FieldThreadID)
}

// SetRequestID sets the "request_id" field.
func (m *AuditEventMutation) SetRequestID(s string) {
	m.request_id = &s
}

// RequestID returns the value of the "request_id" field in the mutation.
func (m *AuditEventMutation) RequestID() (r string, exists bool) {
	v := m.request_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestID returns the old "request_id" field's value of the AuditEvent entity.
// If the AuditEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEventMutation) OldRequestID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestID: %w", err)
	}
	return oldValue.RequestID, nil
}

// ClearRequestID clears the value of the "request_id" field.
func (m *AuditEventMutation) ClearRequestID() {
	m.request_id = nil
	m.clearedFields[auditevent.FieldRequestID] = struct{}{}
}

// RequestIDCleared returns if the "request_id" field was cleared in this mutation.
func (m *AuditEventMutation) RequestIDCleared() bool {
	_, ok := m.clearedFields[auditevent.FieldRequestID]
	return ok
}

// ResetRequestID resets all changes to the "request_id" field.
func (m *AuditEventMutation) ResetRequestID() {
	m.request_id = nil
	delete(m.clearedFields, auditevent.FieldRequestID)
}

// SetResult sets the "result" field.
func (m *AuditEventMutation) SetResult(a auditevent.Result) {
	m.result = &a
}

// Result returns the value of the "result" field in the mutation.
func (m *AuditEventMutation) Result() (r auditevent.Result, exists bool) {
	v := m.result
	if v == nil {
		return
	}
	return *v, true
}

// OldResult returns the old "result" field's value of the AuditEvent entity.
// If the AuditEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEventMutation) OldResult(ctx context.Context) (v auditevent.Result, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResult: %w", err)
	}
	return oldValue.Result, nil
}

// ResetResult resets all changes to the "result" field.
func (m *AuditEventMutation) ResetResult() {
	m.result = nil
}

// SetPayload sets the "payload" field.
func (m *AuditEventMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *AuditEventMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the AuditEvent entity.
// If the AuditEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEventMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ClearPayload clears the value of the "payload" field.
func (m *AuditEventMutation) ClearPayload() {
	m.payload = nil
	m.clearedFields[auditevent.FieldPayload] = struct{}{}
}

// PayloadCleared returns if the "payload" field was cleared in this mutation.
func (m *AuditEventMutation) PayloadCleared() bool {
	_, ok := m.clearedFields[auditevent.FieldPayload]
	return ok
}

// ResetPayload resets all changes to the "payload" field.
func (m *AuditEventMutation) ResetPayload() {
	m.payload = nil
	delete(m.clearedFields, auditevent.FieldPayload)
}

// SetCreatedAt sets the "created_at" field.
func (m *AuditEventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AuditEventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AuditEvent entity.
// If the AuditEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AuditEventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the AuditEventMutation builder.
func (m *AuditEventMutation) Where(ps ...predicate.AuditEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AuditEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AuditEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AuditEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AuditEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AuditEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AuditEvent).
func (m *AuditEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AuditEventMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.workspace_id != nil {
		fields = append(fields, auditevent.FieldWorkspaceID)
	}
	if m.actor_agent_id != nil {
		fields = append(fields, auditevent.FieldActorAgentID)
	}
	if m.actor_role != nil {
		fields = append(fields, auditevent.FieldActorRole)
	}
	if m.operation != nil {
		fields = append(fields, auditevent.FieldOperation)
	}
	if m.resource_type != nil {
		fields = append(fields, auditevent.FieldResourceType)
	}
	if m.resource_id != nil {
		fields = append(fields, auditevent.FieldResourceID)
	}
	if m.thread_id != nil {
		fields = append(fields, auditevent.FieldThreadID)
	}
	if m.request_id != nil {
		fields = append(fields, auditevent.FieldRequestID)
	}
	if m.result != nil {
		fields = append(fields, auditevent.FieldResult)
	}
	if m.payload != nil {
		fields = append(fields, auditevent.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, auditevent.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AuditEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case auditevent.FieldWorkspaceID:
		return m.WorkspaceID()
	case auditevent.FieldActorAgentID:
		return m.ActorAgentID()
	case auditevent.FieldActorRole:
		return m.ActorRole()
	case auditevent.FieldOperation:
		return m.Operation()
	case auditevent.FieldResourceType:
		return m.ResourceType()
	case auditevent.FieldResourceID:
		return m.ResourceID()
	case auditevent.FieldThreadID:
		return m.ThreadID()
	case auditevent.FieldRequestID:
		return m.RequestID()
	case auditevent.FieldResult:
		return m.Result()
	case auditevent.FieldPayload:
		return m.Payload()
	case auditevent.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AuditEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case auditevent.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case auditevent.FieldActorAgentID:
		return m.OldActorAgentID(ctx)
	case auditevent.FieldActorRole:
		return m.OldActorRole(ctx)
	case auditevent.FieldOperation:
		return m.OldOperation(ctx)
	case auditevent.FieldResourceType:
		return m.OldResourceType(ctx)
	case auditevent.FieldResourceID:
		return m.OldResourceID(ctx)
	case auditevent.FieldThreadID:
		return m.OldThreadID(ctx)
	case auditevent.FieldRequestID:
		return m.OldRequestID(ctx)
	case auditevent.FieldResult:
		return m.OldResult(ctx)
	case auditevent.FieldPayload:
		return m.OldPayload(ctx)
	case auditevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AuditEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case auditevent.FieldWorkspaceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case auditevent.FieldActorAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActorAgentID(v)
		return nil
	case auditevent.FieldActorRole:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActorRole(v)
		return nil
	case auditevent.FieldOperation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOperation(v)
		return nil
	case auditevent.FieldResourceType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResourceType(v)
		return nil
	case auditevent.FieldResourceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResourceID(v)
		return nil
	case auditevent.FieldThreadID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetThreadID(v)
		return nil
	case auditevent.FieldRequestID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestID(v)
		return nil
	case auditevent.FieldResult:
		v, ok := value.(auditevent.Result)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResult(v)
		return nil
	case auditevent.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case auditevent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AuditEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AuditEventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AuditEventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AuditEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AuditEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(auditevent.FieldActorAgentID) {
		fields = append(fields, auditevent.FieldActorAgentID)
	}
	if m.FieldCleared(auditevent.FieldActorRole) {
		fields = append(fields, auditevent.FieldActorRole)
	}
	if m.FieldCleared(auditevent.FieldThreadID) {
		fields = append(fields, auditevent.FieldThreadID)
	}
	if m.FieldCleared(auditevent.FieldRequestID) {
		fields = append(fields, auditevent.FieldRequestID)
	}
	if m.FieldCleared(auditevent.FieldPayload) {
		fields = append(fields, auditevent.FieldPayload)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AuditEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AuditEventMutation) ClearField(name string) error {
	switch name {
	case auditevent.FieldActorAgentID:
		m.ClearActorAgentID()
		return nil
	case auditevent.FieldActorRole:
		m.ClearActorRole()
		return nil
	case auditevent.FieldThreadID:
		m.ClearThreadID()
		return nil
	case auditevent.FieldRequestID:
		m.ClearRequestID()
		return nil
	case auditevent.FieldPayload:
		m.ClearPayload()
		return nil
	}
	return fmt.Errorf("unknown AuditEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AuditEventMutation) ResetField(name string) error {
	switch name {
	case auditevent.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case auditevent.FieldActorAgentID:
		m.ResetActorAgentID()
		return nil
	case auditevent.FieldActorRole:
		m.ResetActorRole()
		return nil
	case auditevent.FieldOperation:
		m.ResetOperation()
		return nil
	case auditevent.FieldResourceType:
		m.ResetResourceType()
		return nil
	case auditevent.FieldResourceID:
		m.ResetResourceID()
		return nil
	case auditevent.FieldThreadID:
		m.ResetThreadID()
		return nil
	case auditevent.FieldRequestID:
		m.ResetRequestID()
		return nil
	case auditevent.FieldResult:
		m.ResetResult()
		return nil
	case auditevent.FieldPayload:
		m.ResetPayload()
		return nil
	case auditevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AuditEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AuditEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AuditEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AuditEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AuditEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AuditEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AuditEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AuditEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AuditEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AuditEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AuditEvent edge %s", name)
}

// FallbackRunMutation represents an operation that mutates the FallbackRun nodes in the graph.
type FallbackRunMutation struct {
	config
	op            Op
	typ           string
	id            *string
	workspace_id  *string
	pid           *int
	addpid        *int
	launch_mode   *fallbackrun.LaunchMode
	status        *fallbackrun.Status
	started_at    *time.Time
	deadline_at   *time.Time
	ended_at      *time.Time
	error_code    *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*FallbackRun, error)
	predicates    []predicate.FallbackRun
}

var _ ent.Mutation = (*FallbackRunMutation)(nil)

// fallbackrunOption allows management of the mutation configuration using functional options.
type fallbackrunOption func(*FallbackRunMutation)

// newFallbackRunMutation creates new mutation for the FallbackRun entity.
func newFallbackRunMutation(c config, op Op, opts ...fallbackrunOption) *FallbackRunMutation {
	m := &FallbackRunMutation{
		config:        c,
		op:            op,
		typ:           TypeFallbackRun,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFallbackRunID sets the ID field of the mutation.
func withFallbackRunID(id string) fallbackrunOption {
	return func(m *FallbackRunMutation) {
		var (
			err   error
			once  sync.Once
			value *FallbackRun
		)
		m.oldValue = func(ctx context.Context) (*FallbackRun, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().FallbackRun.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFallbackRun sets the old FallbackRun of the mutation.
func withFallbackRun(node *FallbackRun) fallbackrunOption {
	return func(m *FallbackRunMutation) {
		m.oldValue = func(context.Context) (*FallbackRun, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FallbackRunMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FallbackRunMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of FallbackRun entities.
func (m *FallbackRunMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FallbackRunMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FallbackRunMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().FallbackRun.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *FallbackRunMutation) SetWorkspaceID(s string) {
	m.workspace_id = &s
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *FallbackRunMutation) WorkspaceID() (r string, exists bool) {
	v := m.workspace_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the FallbackRun entity.
// If the FallbackRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FallbackRunMutation) OldWorkspaceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *FallbackRunMutation) ResetWorkspaceID() {
	m.workspace_id = nil
}

// SetPid sets the "pid" field.
func (m *FallbackRunMutation) SetPid(i int) {
	m.pid = &i
	m.addpid = nil
}

// Pid returns the value of the "pid" field in the mutation.
func (m *FallbackRunMutation) Pid() (r int, exists bool) {
	v := m.pid
	if v == nil {
		return
	}
	return *v, true
}

// OldPid returns the old "pid" field's value of the FallbackRun entity.
// If the FallbackRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FallbackRunMutation) OldPid(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPid is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPid requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPid: %w", err)
	}
	return oldValue.Pid, nil
}

// AddPid adds i to the "pid" field.
func (m *FallbackRunMutation) AddPid(i int) {
	if m.addpid != nil {
		*m.addpid += i
	} else {
		m.addpid = &i
	}
}

// AddedPid returns the value that was added to the "pid" field in this mutation.
func (m *FallbackRunMutation) AddedPid() (r int, exists bool) {
	v := m.addpid
	if v == nil {
		return
	}
	return *v, true
}

// ResetPid resets all changes to the "pid" field.
func (m *FallbackRunMutation) ResetPid() {
	m.pid = nil
	m.addpid = nil
}

// SetLaunchMode sets the "launch_mode" field.
func (m *FallbackRunMutation) SetLaunchMode(fm fallbackrun.LaunchMode) {
	m.launch_mode = &fm
}

// LaunchMode returns the value of the "launch_mode" field in the mutation.
func (m *FallbackRunMutation) LaunchMode() (r fallbackrun.LaunchMode, exists bool) {
	v := m.launch_mode
	if v == nil {
		return
	}
	return *v, true
}

// OldLaunchMode returns the old "launch_mode" field's value of the FallbackRun entity.
// If the FallbackRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FallbackRunMutation) OldLaunchMode(ctx context.Context) (v fallbackrun.LaunchMode, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLaunchMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLaunchMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLaunchMode: %w", err)
	}
	return oldValue.LaunchMode, nil
}

// ResetLaunchMode resets all changes to the "launch_mode" field.
func (m *FallbackRunMutation) ResetLaunchMode() {
	m.launch_mode = nil
}

// SetStatus sets the "status" field.
func (m *FallbackRunMutation) SetStatus(f fallbackrun.Status) {
	m.status = &f
}

// Status returns the value of the "status" field in the mutation.
func (m *FallbackRunMutation) Status() (r fallbackrun.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the FallbackRun entity.
// If the FallbackRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FallbackRunMutation) OldStatus(ctx context.Context) (v fallbackrun.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *FallbackRunMutation) ResetStatus() {
	m.status = nil
}

// SetStartedAt sets the "started_at" field.
func (m *FallbackRunMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *FallbackRunMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the FallbackRun entity.
// If the FallbackRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FallbackRunMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *FallbackRunMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetDeadlineAt sets the "deadline_at" field.
func (m *FallbackRunMutation) SetDeadlineAt(t time.Time) {
	m.deadline_at = &t
}

// DeadlineAt returns the value of the "deadline_at" field in the mutation.
func (m *FallbackRunMutation) DeadlineAt() (r time.Time, exists bool) {
	v := m.deadline_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeadlineAt returns the old "deadline_at" field's value of the FallbackRun entity.
// If the FallbackRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FallbackRunMutation) OldDeadlineAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeadlineAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeadlineAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeadlineAt: %w", err)
	}
	return oldValue.DeadlineAt, nil
}

// ResetDeadlineAt resets all changes to the "deadline_at" field.
func (m *FallbackRunMutation) ResetDeadlineAt() {
	m.deadline_at = nil
}

// SetEndedAt sets the "ended_at" field.
func (m *FallbackRunMutation) SetEndedAt(t time.Time) {
	m.ended_at = &t
}

// EndedAt returns the value of the "ended_at" field in the mutation.
func (m *FallbackRunMutation) EndedAt() (r time.Time, exists bool) {
	v := m.ended_at
	if v == nil {
		return
	}
	return *v, true
}

// OldEndedAt returns the old "ended_at" field's value of the FallbackRun entity.
// If the FallbackRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FallbackRunMutation) OldEndedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndedAt: %w", err)
	}
	return oldValue.EndedAt, nil
}

// ClearEndedAt clears the value of the "ended_at" field.
func (m *FallbackRunMutation) ClearEndedAt() {
	m.ended_at = nil
	m.clearedFields[fallbackrun.FieldEndedAt] = struct{}{}
}

// EndedAtCleared returns if the "ended_at" field was cleared in this mutation.
func (m *FallbackRunMutation) EndedAtCleared() bool {
	_, ok := m.clearedFields[fallbackrun.FieldEndedAt]
	return ok
}

// ResetEndedAt resets all changes to the "ended_at" field.
func (m *FallbackRunMutation) ResetEndedAt() {
	m.ended_at = nil
	delete(m.clearedFields, fallbackrun.FieldEndedAt)
}

// SetErrorCode sets the "error_code" field.
func (m *FallbackRunMutation) SetErrorCode(s string) {
	m.error_code = &s
}

// ErrorCode returns the value of the "error_code" field in the mutation.
func (m *FallbackRunMutation) ErrorCode() (r string, exists bool) {
	v := m.error_code
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorCode returns the old "error_code" field's value of the FallbackRun entity.
// If the FallbackRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FallbackRunMutation) OldErrorCode(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorCode: %w", err)
	}
	return oldValue.ErrorCode, nil
}

// ClearErrorCode clears the value of the "error_code" field.
func (m *FallbackRunMutation) ClearErrorCode() {
	m.error_code = nil
	m.clearedFields[fallbackrun.FieldErrorCode] = struct{}{}
}

// ErrorCodeCleared returns if the "error_code" field was cleared in this mutation.
func (m *FallbackRunMutation) ErrorCodeCleared() bool {
	_, ok := m.clearedFields[fallbackrun.FieldErrorCode]
	return ok
}

// ResetErrorCode resets all changes to the "error_code" field.
func (m *FallbackRunMutation) ResetErrorCode() {
	m.error_code = nil
	delete(m.clearedFields, fallbackrun.FieldErrorCode)
}

// Where appends a list predicates to the FallbackRunMutation builder.
func (m *FallbackRunMutation) Where(ps ...predicate.FallbackRun) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FallbackRunMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FallbackRunMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.FallbackRun, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FallbackRunMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FallbackRunMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (FallbackRun).
func (m *FallbackRunMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FallbackRunMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.workspace_id != nil {
		fields = append(fields, fallbackrun.FieldWorkspaceID)
	}
	if m.pid != nil {
		fields = append(fields, fallbackrun.FieldPid)
	}
	if m.launch_mode != nil {
		fields = append(fields, fallbackrun.FieldLaunchMode)
	}
	if m.status != nil {
		fields = append(fields, fallbackrun.FieldStatus)
	}
	if m.started_at != nil {
		fields = append(fields, fallbackrun.FieldStartedAt)
	}
	if m.deadline_at != nil {
		fields = append(fields, fallbackrun.FieldDeadlineAt)
	}
	if m.ended_at != nil {
		fields = append(fields, fallbackrun.FieldEndedAt)
	}
	if m.error_code != nil {
		fields = append(fields, fallbackrun.FieldErrorCode)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FallbackRunMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case fallbackrun.FieldWorkspaceID:
		return m.WorkspaceID()
	case fallbackrun.FieldPid:
		return m.Pid()
	case fallbackrun.FieldLaunchMode:
		return m.LaunchMode()
	case fallbackrun.FieldStatus:
		return m.Status()
	case fallbackrun.FieldStartedAt:
		return m.StartedAt()
	case fallbackrun.FieldDeadlineAt:
		return m.DeadlineAt()
	case fallbackrun.FieldEndedAt:
		return m.EndedAt()
	case fallbackrun.FieldErrorCode:
		return m.ErrorCode()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FallbackRunMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case fallbackrun.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case fallbackrun.FieldPid:
		return m.OldPid(ctx)
	case fallbackrun.FieldLaunchMode:
		return m.OldLaunchMode(ctx)
	case fallbackrun.FieldStatus:
		return m.OldStatus(ctx)
	case fallbackrun.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case fallbackrun.FieldDeadlineAt:
		return m.OldDeadlineAt(ctx)
	case fallbackrun.FieldEndedAt:
		return m.OldEndedAt(ctx)
	case fallbackrun.FieldErrorCode:
		return m.OldErrorCode(ctx)
	}
	return nil, fmt.Errorf("unknown FallbackRun field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FallbackRunMutation) SetField(name string, value ent.Value) error {
	switch name {
	case fallbackrun.FieldWorkspaceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case fallbackrun.FieldPid:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPid(v)
		return nil
	case fallbackrun.FieldLaunchMode:
		v, ok := value.(fallbackrun.LaunchMode)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLaunchMode(v)
		return nil
	case fallbackrun.FieldStatus:
		v, ok := value.(fallbackrun.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case fallbackrun.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case fallbackrun.FieldDeadlineAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeadlineAt(v)
		return nil
	case fallbackrun.FieldEndedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndedAt(v)
		return nil
	case fallbackrun.FieldErrorCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorCode(v)
		return nil
	}
	return fmt.Errorf("unknown FallbackRun field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FallbackRunMutation) AddedFields() []string {
	var fields []string
	if m.addpid != nil {
		fields = append(fields, fallbackrun.FieldPid)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FallbackRunMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case fallbackrun.FieldPid:
		return m.AddedPid()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FallbackRunMutation) AddField(name string, value ent.Value) error {
	switch name {
	case fallbackrun.FieldPid:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPid(v)
		return nil
	}
	return fmt.Errorf("unknown FallbackRun numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FallbackRunMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(fallbackrun.FieldEndedAt) {
		fields = append(fields, fallbackrun.FieldEndedAt)
	}
	if m.FieldCleared(fallbackrun.FieldErrorCode) {
		fields = append(fields, fallbackrun.FieldErrorCode)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FallbackRunMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FallbackRunMutation) ClearField(name string) error {
	switch name {
	case fallbackrun.FieldEndedAt:
		m.ClearEndedAt()
		return nil
	case fallbackrun.FieldErrorCode:
		m.ClearErrorCode()
		return nil
	}
	return fmt.Errorf("unknown FallbackRun nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FallbackRunMutation) ResetField(name string) error {
	switch name {
	case fallbackrun.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case fallbackrun.FieldPid:
		m.ResetPid()
		return nil
	case fallbackrun.FieldLaunchMode:
		m.ResetLaunchMode()
		return nil
	case fallbackrun.FieldStatus:
		m.ResetStatus()
		return nil
	case fallbackrun.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case fallbackrun.FieldDeadlineAt:
		m.ResetDeadlineAt()
		return nil
	case fallbackrun.FieldEndedAt:
		m.ResetEndedAt()
		return nil
	case fallbackrun.FieldErrorCode:
		m.ResetErrorCode()
		return nil
	}
	return fmt.Errorf("unknown FallbackRun field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FallbackRunMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FallbackRunMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FallbackRunMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FallbackRunMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FallbackRunMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FallbackRunMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FallbackRunMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown FallbackRun unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FallbackRunMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown FallbackRun edge %s", name)
}

// MessageMutation represents an operation that mutates the Message nodes in the graph.
type MessageMutation struct {
	config
	op                Op
	typ               string
	id                *string
	schema_version    *int
	addschema_version *int
	seq               *int
	addseq            *int
	sender_agent_id   *string
	sender_session_id *string
	kind              *message.Kind
	body              *string
	metadata          *map[string]interface{}
	in_reply_to       *string
	idempotency_key   *string
	created_at        *time.Time
	clearedFields     map[string]struct{}
	thread            *string
	clearedthread     bool
	done              bool
	oldValue          func(context.Context) (*Message, error)
	predicates        []predicate.Message
}

var _ ent.Mutation = (*MessageMutation)(nil)

// messageOption allows management of the mutation configuration using functional options.
type messageOption func(*MessageMutation)

// newMessageMutation creates new mutation for the Message entity.
func newMessageMutation(c config, op Op, opts ...messageOption) *MessageMutation {
	m := &MessageMutation{
		config:        c,
		op:            op,
		typ:           TypeMessage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMessageID sets the ID field of the mutation.
func withMessageID(id string) messageOption {
	return func(m *MessageMutation) {
		var (
			err   error
			once  sync.Once
			value *Message
		)
		m.oldValue = func(ctx context.Context) (*Message, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Message.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMessage sets the old Message of the mutation.
func withMessage(node *Message) messageOption {
	return func(m *MessageMutation) {
		m.oldValue = func(context.Context) (*Message, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MessageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MessageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Message entities.
func (m *MessageMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MessageMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MessageMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Message.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetThreadID sets the "thread_id" field.
func (m *MessageMutation) SetThreadID(s string) {
	m.thread = &s
}

// ThreadID returns the value of the "thread_id" field in the mutation.
func (m *MessageMutation) ThreadID() (r string, exists bool) {
	v := m.thread
	if v == nil {
		return
	}
	return *v, true
}

// OldThreadID returns the old "thread_id" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldThreadID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldThreadID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldThreadID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldThreadID: %w", err)
	}
	return oldValue.ThreadID, nil
}

// ResetThreadID resets all changes to the "thread_id" field.
func (m *MessageMutation) ResetThreadID() {
	m.thread = nil
}

// SetSchemaVersion sets the "schema_version" field.
func (m *MessageMutation) SetSchemaVersion(i int) {
	m.schema_version = &i
	m.addschema_version = nil
}

// SchemaVersion returns the value of the "schema_version" field in the mutation.
func (m *MessageMutation) SchemaVersion() (r int, exists bool) {
	v := m.schema_version
	if v == nil {
		return
	}
	return *v, true
}

// OldSchemaVersion returns the old "schema_version" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldSchemaVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSchemaVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSchemaVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSchemaVersion: %w", err)
	}
	return oldValue.SchemaVersion, nil
}

// AddSchemaVersion adds i to the "schema_version" field.
func (m *MessageMutation) AddSchemaVersion(i int) {
	if m.addschema_version != nil {
		*m.addschema_version += i
	} else {
		m.addschema_version = &i
	}
}

// AddedSchemaVersion returns the value that was added to the "schema_version" field in this mutation.
func (m *MessageMutation) AddedSchemaVersion() (r int, exists bool) {
	v := m.addschema_version
	if v == nil {
		return
	}
	return *v, true
}

// ResetSchemaVersion resets all changes to the "schema_version" field.
func (m *MessageMutation) ResetSchemaVersion() {
	m.schema_version = nil
	m.addschema_version = nil
}

// SetSeq sets the "seq" field.
func (m *MessageMutation) SetSeq(i int) {
	m.seq = &i
	m.addseq = nil
}

// Seq returns the value of the "seq" field in the mutation.
func (m *MessageMutation) Seq() (r int, exists bool) {
	v := m.seq
	if v == nil {
		return
	}
	return *v, true
}

// OldSeq returns the old "seq" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldSeq(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeq is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeq requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeq: %w", err)
	}
	return oldValue.Seq, nil
}

// AddSeq adds i to the "seq" field.
func (m *MessageMutation) AddSeq(i int) {
	if m.addseq != nil {
		*m.addseq += i
	} else {
		m.addseq = &i
	}
}

// AddedSeq returns the value that was added to the "seq" field in this mutation.
func (m *MessageMutation) AddedSeq() (r int, exists bool) {
	v := m.addseq
	if v == nil {
		return
	}
	return *v, true
}

// ResetSeq resets all changes to the "seq" field.
func (m *MessageMutation) ResetSeq() {
	m.seq = nil
	m.addseq = nil
}

// SetSenderAgentID sets the "sender_agent_id" field.
func (m *MessageMutation) SetSenderAgentID(s string) {
	m.sender_agent_id = &s
}

// SenderAgentID returns the value of the "sender_agent_id" field in the mutation.
func (m *MessageMutation) SenderAgentID() (r string, exists bool) {
	v := m.sender_agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSenderAgentID returns the old "sender_agent_id" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldSenderAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSenderAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSenderAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSenderAgentID: %w", err)
	}
	return oldValue.SenderAgentID, nil
}

// ResetSenderAgentID resets all changes to the "sender_agent_id" field.
func (m *MessageMutation) ResetSenderAgentID() {
	m.sender_agent_id = nil
}

// SetSenderSessionID sets the "sender_session_id" field.
func (m *MessageMutation) SetSenderSessionID(s string) {
	m.sender_session_id = &s
}

// SenderSessionID returns the value of the "sender_session_id" field in the mutation.
func (m *MessageMutation) SenderSessionID() (r string, exists bool) {
	v := m.sender_session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSenderSessionID returns the old "sender_session_id" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldSenderSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSenderSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSenderSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSenderSessionID: %w", err)
	}
	return oldValue.SenderSessionID, nil
}

// ResetSenderSessionID resets all changes to the "sender_session_id" field.
func (m *MessageMutation) ResetSenderSessionID() {
	m.sender_session_id = nil
}

// SetKind sets the "kind" field.
func (m *MessageMutation) SetKind(value message.Kind) {
	m.kind = &value
}

// Kind returns the value of the "kind" field in the mutation.
func (m *MessageMutation) Kind() (r message.Kind, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldKind(ctx context.Context) (v message.Kind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *MessageMutation) ResetKind() {
	m.kind = nil
}

// SetBody sets the "body" field.
func (m *MessageMutation) SetBody(s string) {
	m.body = &s
}

// Body returns the value of the "body" field in the mutation.
func (m *MessageMutation) Body() (r string, exists bool) {
	v := m.body
	if v == nil {
		return
	}
	return *v, true
}

// OldBody returns the old "body" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBody: %w", err)
	}
	return oldValue.Body, nil
}

// ResetBody resets all changes to the "body" field.
func (m *MessageMutation) ResetBody() {
	m.body = nil
}

// SetMetadata sets the "metadata" field.
func (m *MessageMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *MessageMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *MessageMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[message.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *MessageMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[message.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *MessageMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, message.FieldMetadata)
}

// SetInReplyTo sets the "in_reply_to" field.
func (m *MessageMutation) SetInReplyTo(s string) {
	m.in_reply_to = &s
}

// InReplyTo returns the value of the "in_reply_to" field in the mutation.
func (m *MessageMutation) InReplyTo() (r string, exists bool) {
	v := m.in_reply_to
	if v == nil {
		return
	}
	return *v, true
}

// OldInReplyTo returns the old "in_reply_to" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldInReplyTo(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInReplyTo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInReplyTo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInReplyTo: %w", err)
	}
	return oldValue.InReplyTo, nil
}

// ClearInReplyTo clears the value of the "in_reply_to" field.
func (m *MessageMutation) ClearInReplyTo() {
	m.in_reply_to = nil
	m.clearedFields[message.FieldInReplyTo] = struct{}{}
}

// InReplyToCleared returns if the "in_reply_to" field was cleared in this mutation.
func (m *MessageMutation) InReplyToCleared() bool {
	_, ok := m.clearedFields[message.FieldInReplyTo]
	return ok
}

// ResetInReplyTo resets all changes to the "in_reply_to" field.
func (m *MessageMutation) ResetInReplyTo() {
	m.in_reply_to = nil
	delete(m.clearedFields, message.FieldInReplyTo)
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (m *MessageMutation) SetIdempotencyKey(s string) {
	m.idempotency_key = &s
}

// IdempotencyKey returns the value of the "idempotency_key" field in the mutation.
func (m *MessageMutation) IdempotencyKey() (r string, exists bool) {
	v := m.idempotency_key
	if v == nil {
		return
	}
	return *v, true
}

// OldIdempotencyKey returns the old "idempotency_key" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldIdempotencyKey(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIdempotencyKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIdempotencyKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIdempotencyKey: %w", err)
	}
	return oldValue.IdempotencyKey, nil
}

// ClearIdempotencyKey clears the value of the "idempotency_key" field.
func (m *MessageMutation) ClearIdempotencyKey() {
	m.idempotency_key = nil
	m.clearedFields[message.FieldIdempotencyKey] = struct{}{}
}

// IdempotencyKeyCleared returns if the "idempotency_key" field was cleared in this mutation.
func (m *MessageMutation) IdempotencyKeyCleared() bool {
	_, ok := m.clearedFields[message.FieldIdempotencyKey]
	return ok
}

// ResetIdempotencyKey resets all changes to the "idempotency_key" field.
func (m *MessageMutation) ResetIdempotencyKey() {
	m.idempotency_key = nil
	delete(m.clearedFields, message.FieldIdempotencyKey)
}

// SetCreatedAt sets the "created_at" field.
func (m *MessageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MessageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MessageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearThread clears the "thread" edge to the Thread entity.
func (m *MessageMutation) ClearThread() {
	m.clearedthread = true
	m.clearedFields[message.FieldThreadID] = struct{}{}
}

// ThreadCleared reports if the "thread" edge to the Thread entity was cleared.
func (m *MessageMutation) ThreadCleared() bool {
	return m.clearedthread
}

// ThreadIDs returns the "thread" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ThreadID instead. It exists only for internal usage by the builders.
func (m *MessageMutation) ThreadIDs() (ids []string) {
	if id := m.thread; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetThread resets all changes to the "thread" edge.
func (m *MessageMutation) ResetThread() {
	m.thread = nil
	m.clearedthread = false
}

// Where appends a list predicates to the MessageMutation builder.
func (m *MessageMutation) Where(ps ...predicate.Message) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MessageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MessageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Message, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MessageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MessageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Message).
func (m *MessageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MessageMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.thread != nil {
		fields = append(fields, message.FieldThreadID)
	}
	if m.schema_version != nil {
		fields = append(fields, message.FieldSchemaVersion)
	}
	if m.seq != nil {
		fields = append(fields, message.FieldSeq)
	}
	if m.sender_agent_id != nil {
		fields = append(fields, message.FieldSenderAgentID)
	}
	if m.sender_session_id != nil {
		fields = append(fields, message.FieldSenderSessionID)
	}
	if m.kind != nil {
		fields = append(fields, message.FieldKind)
	}
	if m.body != nil {
		fields = append(fields, message.FieldBody)
	}
	if m.metadata != nil {
		fields = append(fields, message.FieldMetadata)
	}
	if m.in_reply_to != nil {
		fields = append(fields, message.FieldInReplyTo)
	}
	if m.idempotency_key != nil {
		fields = append(fields, message.FieldIdempotencyKey)
	}
	if m.created_at != nil {
		fields = append(fields, message.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MessageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case message.FieldThreadID:
		return m.ThreadID()
	case message.FieldSchemaVersion:
		return m.SchemaVersion()
	case message.FieldSeq:
		return m.Seq()
	case message.FieldSenderAgentID:
		return m.SenderAgentID()
	case message.FieldSenderSessionID:
		return m.SenderSessionID()
	case message.FieldKind:
		return m.Kind()
	case message.FieldBody:
		return m.Body()
	case message.FieldMetadata:
		return m.Metadata()
	case message.FieldInReplyTo:
		return m.InReplyTo()
	case message.FieldIdempotencyKey:
		return m.IdempotencyKey()
	case message.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MessageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case message.FieldThreadID:
		return m.OldThreadID(ctx)
	case message.FieldSchemaVersion:
		return m.OldSchemaVersion(ctx)
	case message.FieldSeq:
		return m.OldSeq(ctx)
	case message.FieldSenderAgentID:
		return m.OldSenderAgentID(ctx)
	case message.FieldSenderSessionID:
		return m.OldSenderSessionID(ctx)
	case message.FieldKind:
		return m.OldKind(ctx)
	case message.FieldBody:
		return m.OldBody(ctx)
	case message.FieldMetadata:
		return m.OldMetadata(ctx)
	case message.FieldInReplyTo:
		return m.OldInReplyTo(ctx)
	case message.FieldIdempotencyKey:
		return m.OldIdempotencyKey(ctx)
	case message.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Message field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MessageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case message.FieldThreadID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetThreadID(v)
		return nil
	case message.FieldSchemaVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSchemaVersion(v)
		return nil
	case message.FieldSeq:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeq(v)
		return nil
	case message.FieldSenderAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSenderAgentID(v)
		return nil
	case message.FieldSenderSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSenderSessionID(v)
		return nil
	case message.FieldKind:
		v, ok := value.(message.Kind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case message.FieldBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBody(v)
		return nil
	case message.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case message.FieldInReplyTo:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInReplyTo(v)
		return nil
	case message.FieldIdempotencyKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIdempotencyKey(v)
		return nil
	case message.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Message field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MessageMutation) AddedFields() []string {
	var fields []string
	if m.addschema_version != nil {
		fields = append(fields, message.FieldSchemaVersion)
	}
	if m.addseq != nil {
		fields = append(fields, message.FieldSeq)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MessageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case message.FieldSchemaVersion:
		return m.AddedSchemaVersion()
	case message.FieldSeq:
		return m.AddedSeq()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MessageMutation) AddField(name string, value ent.Value) error {
	switch name {
	case message.FieldSchemaVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSchemaVersion(v)
		return nil
	case message.FieldSeq:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSeq(v)
		return nil
	}
	return fmt.Errorf("unknown Message numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MessageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(message.FieldMetadata) {
		fields = append(fields, message.FieldMetadata)
	}
	if m.FieldCleared(message.FieldInReplyTo) {
		fields = append(fields, message.FieldInReplyTo)
	}
	if m.FieldCleared(message.FieldIdempotencyKey) {
		fields = append(fields, message.FieldIdempotencyKey)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MessageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MessageMutation) ClearField(name string) error {
	switch name {
	case message.FieldMetadata:
		m.ClearMetadata()
		return nil
	case message.FieldInReplyTo:
		m.ClearInReplyTo()
		return nil
	case message.FieldIdempotencyKey:
		m.ClearIdempotencyKey()
		return nil
	}
	return fmt.Errorf("unknown Message nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MessageMutation) ResetField(name string) error {
	switch name {
	case message.FieldThreadID:
		m.ResetThreadID()
		return nil
	case message.FieldSchemaVersion:
		m.ResetSchemaVersion()
		return nil
	case message.FieldSeq:
		m.ResetSeq()
		return nil
	case message.FieldSenderAgentID:
		m.ResetSenderAgentID()
		return nil
	case message.FieldSenderSessionID:
		m.ResetSenderSessionID()
		return nil
	case message.FieldKind:
		m.ResetKind()
		return nil
	case message.FieldBody:
		m.ResetBody()
		return nil
	case message.FieldMetadata:
		m.ResetMetadata()
		return nil
	case message.FieldInReplyTo:
		m.ResetInReplyTo()
		return nil
	case message.FieldIdempotencyKey:
		m.ResetIdempotencyKey()
		return nil
	case message.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Message field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MessageMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.thread != nil {
		edges = append(edges, message.EdgeThread)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MessageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case message.EdgeThread:
		if id := m.thread; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MessageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MessageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MessageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedthread {
		edges = append(edges, message.EdgeThread)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MessageMutation) EdgeCleared(name string) bool {
	switch name {
	case message.EdgeThread:
		return m.clearedthread
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MessageMutation) ClearEdge(name string) error {
	switch name {
	case message.EdgeThread:
		m.ClearThread()
		return nil
	}
	return fmt.Errorf("unknown Message unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MessageMutation) ResetEdge(name string) error {
	switch name {
	case message.EdgeThread:
		m.ResetThread()
		return nil
	}
	return fmt.Errorf("unknown Message edge %s", name)
}

// ParticipantCursorMutation represents an operation that mutates the ParticipantCursor nodes in the graph.
type ParticipantCursorMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	agent_id              *string
	last_read_seq         *int
	addlast_read_seq      *int
	last_acked_message_id *string
	updated_at            *time.Time
	clearedFields         map[string]struct{}
	thread                *string
	clearedthread         bool
	done                  bool
	oldValue              func(context.Context) (*ParticipantCursor, error)
	predicates            []predicate.ParticipantCursor
}

var _ ent.Mutation = (*ParticipantCursorMutation)(nil)

// participantcursorOption allows management of the mutation configuration using functional options.
type participantcursorOption func(*ParticipantCursorMutation)

// newParticipantCursorMutation creates new mutation for the ParticipantCursor entity.
func newParticipantCursorMutation(c config, op Op, opts ...participantcursorOption) *ParticipantCursorMutation {
	m := &ParticipantCursorMutation{
		config:        c,
		op:            op,
		typ:           TypeParticipantCursor,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withParticipantCursorID sets the ID field of the mutation.
func withParticipantCursorID(id string) participantcursorOption {
	return func(m *ParticipantCursorMutation) {
		var (
			err   error
			once  sync.Once
			value *ParticipantCursor
		)
		m.oldValue = func(ctx context.Context) (*ParticipantCursor, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ParticipantCursor.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withParticipantCursor sets the old ParticipantCursor of the mutation.
func withParticipantCursor(node *ParticipantCursor) participantcursorOption {
	return func(m *ParticipantCursorMutation) {
		m.oldValue = func(context.Context) (*ParticipantCursor, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ParticipantCursorMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ParticipantCursorMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ParticipantCursor entities.
func (m *ParticipantCursorMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ParticipantCursorMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ParticipantCursorMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ParticipantCursor.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetThreadID sets the "thread_id" field.
func (m *ParticipantCursorMutation) SetThreadID(s string) {
	m.thread = &s
}

// ThreadID returns the value of the "thread_id" field in the mutation.
func (m *ParticipantCursorMutation) ThreadID() (r string, exists bool) {
	v := m.thread
	if v == nil {
		return
	}
	return *v, true
}

// OldThreadID returns the old "thread_id" field's value of the ParticipantCursor entity.
// If the ParticipantCursor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParticipantCursorMutation) OldThreadID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldThreadID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldThreadID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldThreadID: %w", err)
	}
	return oldValue.ThreadID, nil
}

// ResetThreadID resets all changes to the "thread_id" field.
func (m *ParticipantCursorMutation) ResetThreadID() {
	m.thread = nil
}

// SetAgentID sets the "agent_id" field.
func (m *ParticipantCursorMutation) SetAgentID(s string) {
	m.agent_id = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *ParticipantCursorMutation) AgentID() (r string, exists bool) {
	v := m.agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the ParticipantCursor entity.
// If the ParticipantCursor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParticipantCursorMutation) OldAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *ParticipantCursorMutation) ResetAgentID() {
	m.agent_id = nil
}

// SetLastReadSeq sets the "last_read_seq" field.
func (m *ParticipantCursorMutation) SetLastReadSeq(i int) {
	m.last_read_seq = &i
	m.addlast_read_seq = nil
}

// LastReadSeq returns the value of the "last_read_seq" field in the mutation.
func (m *ParticipantCursorMutation) LastReadSeq() (r int, exists bool) {
	v := m.last_read_seq
	if v == nil {
		return
	}
	return *v, true
}

// OldLastReadSeq returns the old "last_read_seq" field's value of the ParticipantCursor entity.
// If the ParticipantCursor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParticipantCursorMutation) OldLastReadSeq(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastReadSeq is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastReadSeq requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastReadSeq: %w", err)
	}
	return oldValue.LastReadSeq, nil
}

// AddLastReadSeq adds i to the "last_read_seq" field.
func (m *ParticipantCursorMutation) AddLastReadSeq(i int) {
	if m.addlast_read_seq != nil {
		*m.addlast_read_seq += i
	} else {
		m.addlast_read_seq = &i
	}
}

// AddedLastReadSeq returns the value that was added to the "last_read_seq" field in this mutation.
func (m *ParticipantCursorMutation) AddedLastReadSeq() (r int, exists bool) {
	v := m.addlast_read_seq
	if v == nil {
		return
	}
	return *v, true
}

// ResetLastReadSeq resets all changes to the "last_read_seq" field.
func (m *ParticipantCursorMutation) ResetLastReadSeq() {
	m.last_read_seq = nil
	m.addlast_read_seq = nil
}

// SetLastAckedMessageID sets the "last_acked_message_id" field.
func (m *ParticipantCursorMutation) SetLastAckedMessageID(s string) {
	m.last_acked_message_id = &s
}

// LastAckedMessageID returns the value of the "last_acked_message_id" field in the mutation.
func (m *ParticipantCursorMutation) LastAckedMessageID() (r string, exists bool) {
	v := m.last_acked_message_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLastAckedMessageID returns the old "last_acked_message_id" field's value of the ParticipantCursor entity.
// If the ParticipantCursor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParticipantCursorMutation) OldLastAckedMessageID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastAckedMessageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastAckedMessageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastAckedMessageID: %w", err)
	}
	return oldValue.LastAckedMessageID, nil
}

// ClearLastAckedMessageID clears the value of the "last_acked_message_id" field.
func (m *ParticipantCursorMutation) ClearLastAckedMessageID() {
	m.last_acked_message_id = nil
	m.clearedFields[participantcursor.FieldLastAckedMessageID] = struct{}{}
}

// LastAckedMessageIDCleared returns if the "last_acked_message_id" field was cleared in this mutation.
func (m *ParticipantCursorMutation) LastAckedMessageIDCleared() bool {
	_, ok := m.clearedFields[participantcursor.FieldLastAckedMessageID]
	return ok
}

// ResetLastAckedMessageID resets all changes to the "last_acked_message_id" field.
func (m *ParticipantCursorMutation) ResetLastAckedMessageID() {
	m.last_acked_message_id = nil
	delete(m.clearedFields, participantcursor.FieldLastAckedMessageID)
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ParticipantCursorMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ParticipantCursorMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ParticipantCursor entity.
// If the ParticipantCursor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParticipantCursorMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ParticipantCursorMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearThread clears the "thread" edge to the Thread entity.
func (m *ParticipantCursorMutation) ClearThread() {
	m.clearedthread = true
	m.clearedFields[participantcursor.FieldThreadID] = struct{}{}
}

// ThreadCleared reports if the "thread" edge to the Thread entity was cleared.
func (m *ParticipantCursorMutation) ThreadCleared() bool {
	return m.clearedthread
}

// ThreadIDs returns the "thread" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ThreadID instead. It exists only for internal usage by the builders.
func (m *ParticipantCursorMutation) ThreadIDs() (ids []string) {
	if id := m.thread; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetThread resets all changes to the "thread" edge.
func (m *ParticipantCursorMutation) ResetThread() {
	m.thread = nil
	m.clearedthread = false
}

// Where appends a list predicates to the ParticipantCursorMutation builder.
func (m *ParticipantCursorMutation) Where(ps ...predicate.ParticipantCursor) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ParticipantCursorMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ParticipantCursorMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ParticipantCursor, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ParticipantCursorMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ParticipantCursorMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ParticipantCursor).
func (m *ParticipantCursorMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ParticipantCursorMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.thread != nil {
		fields = append(fields, participantcursor.FieldThreadID)
	}
	if m.agent_id != nil {
		fields = append(fields, participantcursor.FieldAgentID)
	}
	if m.last_read_seq != nil {
		fields = append(fields, participantcursor.FieldLastReadSeq)
	}
	if m.last_acked_message_id != nil {
		fields = append(fields, participantcursor.FieldLastAckedMessageID)
	}
	if m.updated_at != nil {
		fields = append(fields, participantcursor.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ParticipantCursorMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case participantcursor.FieldThreadID:
		return m.ThreadID()
	case participantcursor.FieldAgentID:
		return m.AgentID()
	case participantcursor.FieldLastReadSeq:
		return m.LastReadSeq()
	case participantcursor.FieldLastAckedMessageID:
		return m.LastAckedMessageID()
	case participantcursor.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ParticipantCursorMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case participantcursor.FieldThreadID:
		return m.OldThreadID(ctx)
	case participantcursor.FieldAgentID:
		return m.OldAgentID(ctx)
	case participantcursor.FieldLastReadSeq:
		return m.OldLastReadSeq(ctx)
	case participantcursor.FieldLastAckedMessageID:
		return m.OldLastAckedMessageID(ctx)
	case participantcursor.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ParticipantCursor field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ParticipantCursorMutation) SetField(name string, value ent.Value) error {
	switch name {
	case participantcursor.FieldThreadID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetThreadID(v)
		return nil
	case participantcursor.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case participantcursor.FieldLastReadSeq:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastReadSeq(v)
		return nil
	case participantcursor.FieldLastAckedMessageID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastAckedMessageID(v)
		return nil
	case participantcursor.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ParticipantCursor field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ParticipantCursorMutation) AddedFields() []string {
	var fields []string
	if m.addlast_read_seq != nil {
		fields = append(fields, participantcursor.FieldLastReadSeq)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ParticipantCursorMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case participantcursor.FieldLastReadSeq:
		return m.AddedLastReadSeq()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ParticipantCursorMutation) AddField(name string, value ent.Value) error {
	switch name {
	case participantcursor.FieldLastReadSeq:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLastReadSeq(v)
		return nil
	}
	return fmt.Errorf("unknown ParticipantCursor numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ParticipantCursorMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(participantcursor.FieldLastAckedMessageID) {
		fields = append(fields, participantcursor.FieldLastAckedMessageID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ParticipantCursorMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ParticipantCursorMutation) ClearField(name string) error {
	switch name {
	case participantcursor.FieldLastAckedMessageID:
		m.ClearLastAckedMessageID()
		return nil
	}
	return fmt.Errorf("unknown ParticipantCursor nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ParticipantCursorMutation) ResetField(name string) error {
	switch name {
	case participantcursor.FieldThreadID:
		m.ResetThreadID()
		return nil
	case participantcursor.FieldAgentID:
		m.ResetAgentID()
		return nil
	case participantcursor.FieldLastReadSeq:
		m.ResetLastReadSeq()
		return nil
	case participantcursor.FieldLastAckedMessageID:
		m.ResetLastAckedMessageID()
		return nil
	case participantcursor.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ParticipantCursor field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ParticipantCursorMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.thread != nil {
		edges = append(edges, participantcursor.EdgeThread)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ParticipantCursorMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case participantcursor.EdgeThread:
		if id := m.thread; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ParticipantCursorMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ParticipantCursorMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ParticipantCursorMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedthread {
		edges = append(edges, participantcursor.EdgeThread)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ParticipantCursorMutation) EdgeCleared(name string) bool {
	switch name {
	case participantcursor.EdgeThread:
		return m.clearedthread
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ParticipantCursorMutation) ClearEdge(name string) error {
	switch name {
	case participantcursor.EdgeThread:
		m.ClearThread()
		return nil
	}
	return fmt.Errorf("unknown ParticipantCursor unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ParticipantCursorMutation) ResetEdge(name string) error {
	switch name {
	case participantcursor.EdgeThread:
		m.ResetThread()
		return nil
	}
	return fmt.Errorf("unknown ParticipantCursor edge %s", name)
}

// SessionRecordMutation represents an operation that mutates the SessionRecord nodes in the graph.
type SessionRecordMutation struct {
	config
	op                Op
	typ               string
	id                *string
	agent_id          *string
	workspace_id      *string
	session_id        *string
	runtime           *string
	management_mode   *sessionrecord.ManagementMode
	resumable         *bool
	status            *sessionrecord.Status
	last_heartbeat_at *time.Time
	updated_at        *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*SessionRecord, error)
	predicates        []predicate.SessionRecord
}

var _ ent.Mutation = (*SessionRecordMutation)(nil)

// sessionrecordOption allows management of the mutation configuration using functional options.
type sessionrecordOption func(*SessionRecordMutation)

// newSessionRecordMutation creates new mutation for the SessionRecord entity.
func newSessionRecordMutation(c config, op Op, opts ...sessionrecordOption) *SessionRecordMutation {
	m := &SessionRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeSessionRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSessionRecordID sets the ID field of the mutation.
func withSessionRecordID(id string) sessionrecordOption {
	return func(m *SessionRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *SessionRecord
		)
		m.oldValue = func(ctx context.Context) (*SessionRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SessionRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSessionRecord sets the old SessionRecord of the mutation.
func withSessionRecord(node *SessionRecord) sessionrecordOption {
	return func(m *SessionRecordMutation) {
		m.oldValue = func(context.Context) (*SessionRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SessionRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SessionRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SessionRecord entities.
func (m *SessionRecordMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SessionRecordMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SessionRecordMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SessionRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAgentID sets the "agent_id" field.
func (m *SessionRecordMutation) SetAgentID(s string) {
	m.agent_id = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *SessionRecordMutation) AgentID() (r string, exists bool) {
	v := m.agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the SessionRecord entity.
// If the SessionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionRecordMutation) OldAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *SessionRecordMutation) ResetAgentID() {
	m.agent_id = nil
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *SessionRecordMutation) SetWorkspaceID(s string) {
	m.workspace_id = &s
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *SessionRecordMutation) WorkspaceID() (r string, exists bool) {
	v := m.workspace_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the SessionRecord entity.
// If the SessionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionRecordMutation) OldWorkspaceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *SessionRecordMutation) ResetWorkspaceID() {
	m.workspace_id = nil
}

// SetSessionID sets the "session_id" field.
func (m *SessionRecordMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *SessionRecordMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the SessionRecord entity.
// If the SessionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionRecordMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *SessionRecordMutation) ResetSessionID() {
	m.session_id = nil
}

// SetRuntime sets the "runtime" field.
func (m *SessionRecordMutation) SetRuntime(s string) {
	m.runtime = &s
}

// Runtime returns the value of the "runtime" field in the mutation.
func (m *SessionRecordMutation) Runtime() (r string, exists bool) {
	v := m.runtime
	if v == nil {
		return
	}
	return *v, true
}

// OldRuntime returns the old "runtime" field's value of the SessionRecord entity.
// If the SessionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionRecordMutation) OldRuntime(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRuntime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRuntime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRuntime: %w", err)
	}
	return oldValue.Runtime, nil
}

// ResetRuntime resets all changes to the "runtime" field.
func (m *SessionRecordMutation) ResetRuntime() {
	m.runtime = nil
}

// SetManagementMode sets the "management_mode" field.
func (m *SessionRecordMutation) SetManagementMode(sm sessionrecord.ManagementMode) {
	m.management_mode = &sm
}

// ManagementMode returns the value of the "management_mode" field in the mutation.
func (m *SessionRecordMutation) ManagementMode() (r sessionrecord.ManagementMode, exists bool) {
	v := m.management_mode
	if v == nil {
		return
	}
	return *v, true
}

// OldManagementMode returns the old "management_mode" field's value of the SessionRecord entity.
// If the SessionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionRecordMutation) OldManagementMode(ctx context.Context) (v sessionrecord.ManagementMode, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldManagementMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldManagementMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldManagementMode: %w", err)
	}
	return oldValue.ManagementMode, nil
}

// ResetManagementMode resets all changes to the "management_mode" field.
func (m *SessionRecordMutation) ResetManagementMode() {
	m.management_mode = nil
}

// SetResumable sets the "resumable" field.
func (m *SessionRecordMutation) SetResumable(b bool) {
	m.resumable = &b
}

// Resumable returns the value of the "resumable" field in the mutation.
func (m *SessionRecordMutation) Resumable() (r bool, exists bool) {
	v := m.resumable
	if v == nil {
		return
	}
	return *v, true
}

// OldResumable returns the old "resumable" field's value of the SessionRecord entity.
// If the SessionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionRecordMutation) OldResumable(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResumable is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResumable requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResumable: %w", err)
	}
	return oldValue.Resumable, nil
}

// ResetResumable resets all changes to the "resumable" field.
func (m *SessionRecordMutation) ResetResumable() {
	m.resumable = nil
}

// SetStatus sets the "status" field.
func (m *SessionRecordMutation) SetStatus(s sessionrecord.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *SessionRecordMutation) Status() (r sessionrecord.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the SessionRecord entity.
// If the SessionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionRecordMutation) OldStatus(ctx context.Context) (v sessionrecord.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *SessionRecordMutation) ResetStatus() {
	m.status = nil
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (m *SessionRecordMutation) SetLastHeartbeatAt(t time.Time) {
	m.last_heartbeat_at = &t
}

// LastHeartbeatAt returns the value of the "last_heartbeat_at" field in the mutation.
func (m *SessionRecordMutation) LastHeartbeatAt() (r time.Time, exists bool) {
	v := m.last_heartbeat_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastHeartbeatAt returns the old "last_heartbeat_at" field's value of the SessionRecord entity.
// If the SessionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionRecordMutation) OldLastHeartbeatAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastHeartbeatAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastHeartbeatAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastHeartbeatAt: %w", err)
	}
	return oldValue.LastHeartbeatAt, nil
}

// ResetLastHeartbeatAt resets all changes to the "last_heartbeat_at" field.
func (m *SessionRecordMutation) ResetLastHeartbeatAt() {
	m.last_heartbeat_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SessionRecordMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SessionRecordMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the SessionRecord entity.
// If the SessionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionRecordMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SessionRecordMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the SessionRecordMutation builder.
func (m *SessionRecordMutation) Where(ps ...predicate.SessionRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SessionRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SessionRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SessionRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SessionRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SessionRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SessionRecord).
func (m *SessionRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SessionRecordMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.agent_id != nil {
		fields = append(fields, sessionrecord.FieldAgentID)
	}
	if m.workspace_id != nil {
		fields = append(fields, sessionrecord.FieldWorkspaceID)
	}
	if m.session_id != nil {
		fields = append(fields, sessionrecord.FieldSessionID)
	}
	if m.runtime != nil {
		fields = append(fields, sessionrecord.FieldRuntime)
	}
	if m.management_mode != nil {
		fields = append(fields, sessionrecord.FieldManagementMode)
	}
	if m.resumable != nil {
		fields = append(fields, sessionrecord.FieldResumable)
	}
	if m.status != nil {
		fields = append(fields, sessionrecord.FieldStatus)
	}
	if m.last_heartbeat_at != nil {
		fields = append(fields, sessionrecord.FieldLastHeartbeatAt)
	}
	if m.updated_at != nil {
		fields = append(fields, sessionrecord.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SessionRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sessionrecord.FieldAgentID:
		return m.AgentID()
	case sessionrecord.FieldWorkspaceID:
		return m.WorkspaceID()
	case sessionrecord.FieldSessionID:
		return m.SessionID()
	case sessionrecord.FieldRuntime:
		return m.Runtime()
	case sessionrecord.FieldManagementMode:
		return m.ManagementMode()
	case sessionrecord.FieldResumable:
		return m.Resumable()
	case sessionrecord.FieldStatus:
		return m.Status()
	case sessionrecord.FieldLastHeartbeatAt:
		return m.LastHeartbeatAt()
	case sessionrecord.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SessionRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sessionrecord.FieldAgentID:
		return m.OldAgentID(ctx)
	case sessionrecord.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case sessionrecord.FieldSessionID:
		return m.OldSessionID(ctx)
	case sessionrecord.FieldRuntime:
		return m.OldRuntime(ctx)
	case sessionrecord.FieldManagementMode:
		return m.OldManagementMode(ctx)
	case sessionrecord.FieldResumable:
		return m.OldResumable(ctx)
	case sessionrecord.FieldStatus:
		return m.OldStatus(ctx)
	case sessionrecord.FieldLastHeartbeatAt:
		return m.OldLastHeartbeatAt(ctx)
	case sessionrecord.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SessionRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sessionrecord.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case sessionrecord.FieldWorkspaceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case sessionrecord.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case sessionrecord.FieldRuntime:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRuntime(v)
		return nil
	case sessionrecord.FieldManagementMode:
		v, ok := value.(sessionrecord.ManagementMode)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetManagementMode(v)
		return nil
	case sessionrecord.FieldResumable:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResumable(v)
		return nil
	case sessionrecord.FieldStatus:
		v, ok := value.(sessionrecord.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case sessionrecord.FieldLastHeartbeatAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastHeartbeatAt(v)
		return nil
	case sessionrecord.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SessionRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SessionRecordMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SessionRecordMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown SessionRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SessionRecordMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SessionRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SessionRecordMutation) ClearField(name string) error {
	return fmt.Errorf("unknown SessionRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SessionRecordMutation) ResetField(name string) error {
	switch name {
	case sessionrecord.FieldAgentID:
		m.ResetAgentID()
		return nil
	case sessionrecord.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case sessionrecord.FieldSessionID:
		m.ResetSessionID()
		return nil
	case sessionrecord.FieldRuntime:
		m.ResetRuntime()
		return nil
	case sessionrecord.FieldManagementMode:
		m.ResetManagementMode()
		return nil
	case sessionrecord.FieldResumable:
		m.ResetResumable()
		return nil
	case sessionrecord.FieldStatus:
		m.ResetStatus()
		return nil
	case sessionrecord.FieldLastHeartbeatAt:
		m.ResetLastHeartbeatAt()
		return nil
	case sessionrecord.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown SessionRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SessionRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SessionRecordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SessionRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SessionRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SessionRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SessionRecordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SessionRecordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SessionRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SessionRecordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SessionRecord edge %s", name)
}

// ThreadMutation represents an operation that mutates the Thread nodes in the graph.
type ThreadMutation struct {
	config
	op                              Op
	typ                             string
	id                              *string
	workspace_id                    *string
	title                           *string
	_type                           *thread.Type
	status                          *thread.Status
	escalation_owner_agent_id       *string
	escalation_assigned_by_agent_id *string
	escalation_assigned_at          *time.Time
	created_by                      *string
	created_at                      *time.Time
	updated_at                      *time.Time
	clearedFields                   map[string]struct{}
	participants                    map[string]struct{}
	removedparticipants             map[string]struct{}
	clearedparticipants             bool
	messages                        map[string]struct{}
	removedmessages                 map[string]struct{}
	clearedmessages                 bool
	cursors                         map[string]struct{}
	removedcursors                  map[string]struct{}
	clearedcursors                  bool
	done                            bool
	oldValue                        func(context.Context) (*Thread, error)
	predicates                      []predicate.Thread
}

var _ ent.Mutation = (*ThreadMutation)(nil)

// threadOption allows management of the mutation configuration using functional options.
type threadOption func(*ThreadMutation)

// newThreadMutation creates new mutation for the Thread entity.
func newThreadMutation(c config, op Op, opts ...threadOption) *ThreadMutation {
	m := &ThreadMutation{
		config:        c,
		op:            op,
		typ:           TypeThread,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withThreadID sets the ID field of the mutation.
func withThreadID(id string) threadOption {
	return func(m *ThreadMutation) {
		var (
			err   error
			once  sync.Once
			value *Thread
		)
		m.oldValue = func(ctx context.Context) (*Thread, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Thread.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withThread sets the old Thread of the mutation.
func withThread(node *Thread) threadOption {
	return func(m *ThreadMutation) {
		m.oldValue = func(context.Context) (*Thread, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ThreadMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ThreadMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Thread entities.
func (m *ThreadMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ThreadMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ThreadMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Thread.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *ThreadMutation) SetWorkspaceID(s string) {
	m.workspace_id = &s
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *ThreadMutation) WorkspaceID() (r string, exists bool) {
	v := m.workspace_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the Thread entity.
// If the Thread object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThreadMutation) OldWorkspaceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *ThreadMutation) ResetWorkspaceID() {
	m.workspace_id = nil
}

// SetTitle sets the "title" field.
func (m *ThreadMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *ThreadMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Thread entity.
// If the Thread object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThreadMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *ThreadMutation) ResetTitle() {
	m.title = nil
}

// SetType sets the "type" field.
func (m *ThreadMutation) SetType(t thread.Type) {
	m._type = &t
}

// GetType returns the value of the "type" field in the mutation.
func (m *ThreadMutation) GetType() (r thread.Type, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the Thread entity.
// If the Thread object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThreadMutation) OldType(ctx context.Context) (v thread.Type, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *ThreadMutation) ResetType() {
	m._type = nil
}

// SetStatus sets the "status" field.
func (m *ThreadMutation) SetStatus(t thread.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *ThreadMutation) Status() (r thread.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Thread entity.
// If the Thread object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThreadMutation) OldStatus(ctx context.Context) (v thread.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ThreadMutation) ResetStatus() {
	m.status = nil
}

// SetEscalationOwnerAgentID sets the "escalation_owner_agent_id" field.
func (m *ThreadMutation) SetEscalationOwnerAgentID(s string) {
	m.escalation_owner_agent_id = &s
}

// EscalationOwnerAgentID returns the value of the "escalation_owner_agent_id" field in the mutation.
func (m *ThreadMutation) EscalationOwnerAgentID() (r string, exists bool) {
	v := m.escalation_owner_agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEscalationOwnerAgentID returns the old "escalation_owner_agent_id" field's value of the Thread entity.
// If the Thread object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThreadMutation) OldEscalationOwnerAgentID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEscalationOwnerAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEscalationOwnerAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEscalationOwnerAgentID: %w", err)
	}
	return oldValue.EscalationOwnerAgentID, nil
}

// ClearEscalationOwnerAgentID clears the value of the "escalation_owner_agent_id" field.
func (m *ThreadMutation) ClearEscalationOwnerAgentID() {
	m.escalation_owner_agent_id = nil
	m.clearedFields[thread.FieldEscalationOwnerAgentID] = struct{}{}
}

// EscalationOwnerAgentIDCleared returns if the "escalation_owner_agent_id" field was cleared in this mutation.
func (m *ThreadMutation) EscalationOwnerAgentIDCleared() bool {
	_, ok := m.clearedFields[thread.FieldEscalationOwnerAgentID]
	return ok
}

// ResetEscalationOwnerAgentID resets all changes to the "escalation_owner_agent_id" field.
func (m *ThreadMutation) ResetEscalationOwnerAgentID() {
	m.escalation_owner_agent_id = nil
	delete(m.clearedFields, thread.FieldEscalationOwnerAgentID)
}

// SetEscalationAssignedByAgentID sets the "escalation_assigned_by_agent_id" field.
func (m *ThreadMutation) SetEscalationAssignedByAgentID(s string) {
	m.escalation_assigned_by_agent_id = &s
}

// EscalationAssignedByAgentID returns the value of the "escalation_assigned_by_agent_id" field in the mutation.
func (m *ThreadMutation) EscalationAssignedByAgentID() (r string, exists bool) {
	v := m.escalation_assigned_by_agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEscalationAssignedByAgentID returns the old "escalation_assigned_by_agent_id" field's value of the Thread entity.
// If the Thread object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThreadMutation) OldEscalationAssignedByAgentID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEscalationAssignedByAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEscalationAssignedByAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEscalationAssignedByAgentID: %w", err)
	}
	return oldValue.EscalationAssignedByAgentID, nil
}

// ClearEscalationAssignedByAgentID clears the value of the "escalation_assigned_by_agent_id" field.
func (m *ThreadMutation) ClearEscalationAssignedByAgentID() {
	m.escalation_assigned_by_agent_id = nil
	m.clearedFields[thread.FieldEscalationAssignedByAgentID] = struct{}{}
}

// EscalationAssignedByAgentIDCleared returns if the "escalation_assigned_by_agent_id" field was cleared in this mutation.
func (m *ThreadMutation) EscalationAssignedByAgentIDCleared() bool {
	_, ok := m.clearedFields[thread.FieldEscalationAssignedByAgentID]
	return ok
}

// ResetEscalationAssignedByAgentID resets all changes to the "escalation_assigned_by_agent_id" field.
func (m *ThreadMutation) ResetEscalationAssignedByAgentID() {
	m.escalation_assigned_by_agent_id = nil
	delete(m.clearedFields, thread.FieldEscalationAssignedByAgentID)
}

// SetEscalationAssignedAt sets the "escalation_assigned_at" field.
func (m *ThreadMutation) SetEscalationAssignedAt(t time.Time) {
	m.escalation_assigned_at = &t
}

// EscalationAssignedAt returns the value of the "escalation_assigned_at" field in the mutation.
func (m *ThreadMutation) EscalationAssignedAt() (r time.Time, exists bool) {
	v := m.escalation_assigned_at
	if v == nil {
		return
	}
	return *v, true
}

// OldEscalationAssignedAt returns the old "escalation_assigned_at" field's value of the Thread entity.
// If the Thread object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThreadMutation) OldEscalationAssignedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEscalationAssignedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEscalationAssignedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEscalationAssignedAt: %w", err)
	}
	return oldValue.EscalationAssignedAt, nil
}

// ClearEscalationAssignedAt clears the value of the "escalation_assigned_at" field.
func (m *ThreadMutation) ClearEscalationAssignedAt() {
	m.escalation_assigned_at = nil
	m.clearedFields[thread.FieldEscalationAssignedAt] = struct{}{}
}

// EscalationAssignedAtCleared returns if the "escalation_assigned_at" field was cleared in this mutation.
func (m *ThreadMutation) EscalationAssignedAtCleared() bool {
	_, ok := m.clearedFields[thread.FieldEscalationAssignedAt]
	return ok
}

// ResetEscalationAssignedAt resets all changes to the "escalation_assigned_at" field.
func (m *ThreadMutation) ResetEscalationAssignedAt() {
	m.escalation_assigned_at = nil
	delete(m.clearedFields, thread.FieldEscalationAssignedAt)
}

// SetCreatedBy sets the "created_by" field.
func (m *ThreadMutation) SetCreatedBy(s string) {
	m.created_by = &s
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *ThreadMutation) CreatedBy() (r string, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the Thread entity.
// If the Thread object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThreadMutation) OldCreatedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ClearCreatedBy clears the value of the "created_by" field.
func (m *ThreadMutation) ClearCreatedBy() {
	m.created_by = nil
	m.clearedFields[thread.FieldCreatedBy] = struct{}{}
}

// CreatedByCleared returns if the "created_by" field was cleared in this mutation.
func (m *ThreadMutation) CreatedByCleared() bool {
	_, ok := m.clearedFields[thread.FieldCreatedBy]
	return ok
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *ThreadMutation) ResetCreatedBy() {
	m.created_by = nil
	delete(m.clearedFields, thread.FieldCreatedBy)
}

// SetCreatedAt sets the "created_at" field.
func (m *ThreadMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ThreadMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Thread entity.
// If the Thread object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThreadMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ThreadMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ThreadMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ThreadMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Thread entity.
// If the Thread object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThreadMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ThreadMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddParticipantIDs adds the "participants" edge to the ThreadParticipant entity by ids.
func (m *ThreadMutation) AddParticipantIDs(ids ...string) {
	if m.participants == nil {
		m.participants = make(map[string]struct{})
	}
	for i := range ids {
		m.participants[ids[i]] = struct{}{}
	}
}

// ClearParticipants clears the "participants" edge to the ThreadParticipant entity.
func (m *ThreadMutation) ClearParticipants() {
	m.clearedparticipants = true
}

// ParticipantsCleared reports if the "participants" edge to the ThreadParticipant entity was cleared.
func (m *ThreadMutation) ParticipantsCleared() bool {
	return m.clearedparticipants
}

// RemoveParticipantIDs removes the "participants" edge to the ThreadParticipant entity by IDs.
func (m *ThreadMutation) RemoveParticipantIDs(ids ...string) {
	if m.removedparticipants == nil {
		m.removedparticipants = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.participants, ids[i])
		m.removedparticipants[ids[i]] = struct{}{}
	}
}

// RemovedParticipants returns the removed IDs of the "participants" edge to the ThreadParticipant entity.
func (m *ThreadMutation) RemovedParticipantsIDs() (ids []string) {
	for id := range m.removedparticipants {
		ids = append(ids, id)
	}
	return
}

// ParticipantsIDs returns the "participants" edge IDs in the mutation.
func (m *ThreadMutation) ParticipantsIDs() (ids []string) {
	for id := range m.participants {
		ids = append(ids, id)
	}
	return
}

// ResetParticipants resets all changes to the "participants" edge.
func (m *ThreadMutation) ResetParticipants() {
	m.participants = nil
	m.clearedparticipants = false
	m.removedparticipants = nil
}

// AddMessageIDs adds the "messages" edge to the Message entity by ids.
func (m *ThreadMutation) AddMessageIDs(ids ...string) {
	if m.messages == nil {
		m.messages = make(map[string]struct{})
	}
	for i := range ids {
		m.messages[ids[i]] = struct{}{}
	}
}

// ClearMessages clears the "messages" edge to the Message entity.
func (m *ThreadMutation) ClearMessages() {
	m.clearedmessages = true
}

// MessagesCleared reports if the "messages" edge to the Message entity was cleared.
func (m *ThreadMutation) MessagesCleared() bool {
	return m.clearedmessages
}

// RemoveMessageIDs removes the "messages" edge to the Message entity by IDs.
func (m *ThreadMutation) RemoveMessageIDs(ids ...string) {
	if m.removedmessages == nil {
		m.removedmessages = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.messages, ids[i])
		m.removedmessages[ids[i]] = struct{}{}
	}
}

// RemovedMessages returns the removed IDs of the "messages" edge to the Message entity.
func (m *ThreadMutation) RemovedMessagesIDs() (ids []string) {
	for id := range m.removedmessages {
		ids = append(ids, id)
	}
	return
}

// MessagesIDs returns the "messages" edge IDs in the mutation.
func (m *ThreadMutation) MessagesIDs() (ids []string) {
	for id := range m.messages {
		ids = append(ids, id)
	}
	return
}

// ResetMessages resets all changes to the "messages" edge.
func (m *ThreadMutation) ResetMessages() {
	m.messages = nil
	m.clearedmessages = false
	m.removedmessages = nil
}

// AddCursorIDs adds the "cursors" edge to the ParticipantCursor entity by ids.
func (m *ThreadMutation) AddCursorIDs(ids ...string) {
	if m.cursors == nil {
		m.cursors = make(map[string]struct{})
	}
	for i := range ids {
		m.cursors[ids[i]] = struct{}{}
	}
}

// ClearCursors clears the "cursors" edge to the ParticipantCursor entity.
func (m *ThreadMutation) ClearCursors() {
	m.clearedcursors = true
}

// CursorsCleared reports if the "cursors" edge to the ParticipantCursor entity was cleared.
func (m *ThreadMutation) CursorsCleared() bool {
	return m.clearedcursors
}

// RemoveCursorIDs removes the "cursors" edge to the ParticipantCursor entity by IDs.
func (m *ThreadMutation) RemoveCursorIDs(ids ...string) {
	if m.removedcursors == nil {
		m.removedcursors = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.cursors, ids[i])
		m.removedcursors[ids[i]] = struct{}{}
	}
}

// RemovedCursors returns the removed IDs of the "cursors" edge to the ParticipantCursor entity.
func (m *ThreadMutation) RemovedCursorsIDs() (ids []string) {
	for id := range m.removedcursors {
		ids = append(ids, id)
	}
	return
}

// CursorsIDs returns the "cursors" edge IDs in the mutation.
func (m *ThreadMutation) CursorsIDs() (ids []string) {
	for id := range m.cursors {
		ids = append(ids, id)
	}
	return
}

// ResetCursors resets all changes to the "cursors" edge.
func (m *ThreadMutation) ResetCursors() {
	m.cursors = nil
	m.clearedcursors = false
	m.removedcursors = nil
}

// Where appends a list predicates to the ThreadMutation builder.
func (m *ThreadMutation) Where(ps ...predicate.Thread) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ThreadMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ThreadMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Thread, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ThreadMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ThreadMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Thread).
func (m *ThreadMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ThreadMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.workspace_id != nil {
		fields = append(fields, thread.FieldWorkspaceID)
	}
	if m.title != nil {
		fields = append(fields, thread.FieldTitle)
	}
	if m._type != nil {
		fields = append(fields, thread.FieldType)
	}
	if m.status != nil {
		fields = append(fields, thread.FieldStatus)
	}
	if m.escalation_owner_agent_id != nil {
		fields = append(fields, thread.FieldEscalationOwnerAgentID)
	}
	if m.escalation_assigned_by_agent_id != nil {
		fields = append(fields, thread.FieldEscalationAssignedByAgentID)
	}
	if m.escalation_assigned_at != nil {
		fields = append(fields, thread.FieldEscalationAssignedAt)
	}
	if m.created_by != nil {
		fields = append(fields, thread.FieldCreatedBy)
	}
	if m.created_at != nil {
		fields = append(fields, thread.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, thread.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ThreadMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case thread.FieldWorkspaceID:
		return m.WorkspaceID()
	case thread.FieldTitle:
		return m.Title()
	case thread.FieldType:
		return m.GetType()
	case thread.FieldStatus:
		return m.Status()
	case thread.FieldEscalationOwnerAgentID:
		return m.EscalationOwnerAgentID()
	case thread.FieldEscalationAssignedByAgentID:
		return m.EscalationAssignedByAgentID()
	case thread.FieldEscalationAssignedAt:
		return m.EscalationAssignedAt()
	case thread.FieldCreatedBy:
		return m.CreatedBy()
	case thread.FieldCreatedAt:
		return m.CreatedAt()
	case thread.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ThreadMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case thread.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case thread.FieldTitle:
		return m.OldTitle(ctx)
	case thread.FieldType:
		return m.OldType(ctx)
	case thread.FieldStatus:
		return m.OldStatus(ctx)
	case thread.FieldEscalationOwnerAgentID:
		return m.OldEscalationOwnerAgentID(ctx)
	case thread.FieldEscalationAssignedByAgentID:
		return m.OldEscalationAssignedByAgentID(ctx)
	case thread.FieldEscalationAssignedAt:
		return m.OldEscalationAssignedAt(ctx)
	case thread.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	case thread.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case thread.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Thread field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ThreadMutation) SetField(name string, value ent.Value) error {
	switch name {
	case thread.FieldWorkspaceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case thread.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case thread.FieldType:
		v, ok := value.(thread.Type)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case thread.FieldStatus:
		v, ok := value.(thread.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case thread.FieldEscalationOwnerAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEscalationOwnerAgentID(v)
		return nil
	case thread.FieldEscalationAssignedByAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEscalationAssignedByAgentID(v)
		return nil
	case thread.FieldEscalationAssignedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEscalationAssignedAt(v)
		return nil
	case thread.FieldCreatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	case thread.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case thread.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Thread field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ThreadMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ThreadMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ThreadMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Thread numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ThreadMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(thread.FieldEscalationOwnerAgentID) {
		fields = append(fields, thread.FieldEscalationOwnerAgentID)
	}
	if m.FieldCleared(thread.FieldEscalationAssignedByAgentID) {
		fields = append(fields, thread.FieldEscalationAssignedByAgentID)
	}
	if m.FieldCleared(thread.FieldEscalationAssignedAt) {
		fields = append(fields, thread.FieldEscalationAssignedAt)
	}
	if m.FieldCleared(thread.FieldCreatedBy) {
		fields = append(fields, thread.FieldCreatedBy)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ThreadMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ThreadMutation) ClearField(name string) error {
	switch name {
	case thread.FieldEscalationOwnerAgentID:
		m.ClearEscalationOwnerAgentID()
		return nil
	case thread.FieldEscalationAssignedByAgentID:
		m.ClearEscalationAssignedByAgentID()
		return nil
	case thread.FieldEscalationAssignedAt:
		m.ClearEscalationAssignedAt()
		return nil
	case thread.FieldCreatedBy:
		m.ClearCreatedBy()
		return nil
	}
	return fmt.Errorf("unknown Thread nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ThreadMutation) ResetField(name string) error {
	switch name {
	case thread.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case thread.FieldTitle:
		m.ResetTitle()
		return nil
	case thread.FieldType:
		m.ResetType()
		return nil
	case thread.FieldStatus:
		m.ResetStatus()
		return nil
	case thread.FieldEscalationOwnerAgentID:
		m.ResetEscalationOwnerAgentID()
		return nil
	case thread.FieldEscalationAssignedByAgentID:
		m.ResetEscalationAssignedByAgentID()
		return nil
	case thread.FieldEscalationAssignedAt:
		m.ResetEscalationAssignedAt()
		return nil
	case thread.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	case thread.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case thread.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Thread field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ThreadMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.participants != nil {
		edges = append(edges, thread.EdgeParticipants)
	}
	if m.messages != nil {
		edges = append(edges, thread.EdgeMessages)
	}
	if m.cursors != nil {
		edges = append(edges, thread.EdgeCursors)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ThreadMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case thread.EdgeParticipants:
		ids := make([]ent.Value, 0, len(m.participants))
		for id := range m.participants {
			ids = append(ids, id)
		}
		return ids
	case thread.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.messages))
		for id := range m.messages {
			ids = append(ids, id)
		}
		return ids
	case thread.EdgeCursors:
		ids := make([]ent.Value, 0, len(m.cursors))
		for id := range m.cursors {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ThreadMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedparticipants != nil {
		edges = append(edges, thread.EdgeParticipants)
	}
	if m.removedmessages != nil {
		edges = append(edges, thread.EdgeMessages)
	}
	if m.removedcursors != nil {
		edges = append(edges, thread.EdgeCursors)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ThreadMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case thread.EdgeParticipants:
		ids := make([]ent.Value, 0, len(m.removedparticipants))
		for id := range m.removedparticipants {
			ids = append(ids, id)
		}
		return ids
	case thread.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.removedmessages))
		for id := range m.removedmessages {
			ids = append(ids, id)
		}
		return ids
	case thread.EdgeCursors:
		ids := make([]ent.Value, 0, len(m.removedcursors))
		for id := range m.removedcursors {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ThreadMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedparticipants {
		edges = append(edges, thread.EdgeParticipants)
	}
	if m.clearedmessages {
		edges = append(edges, thread.EdgeMessages)
	}
	if m.clearedcursors {
		edges = append(edges, thread.EdgeCursors)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ThreadMutation) EdgeCleared(name string) bool {
	switch name {
	case thread.EdgeParticipants:
		return m.clearedparticipants
	case thread.EdgeMessages:
		return m.clearedmessages
	case thread.EdgeCursors:
		return m.clearedcursors
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ThreadMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Thread unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ThreadMutation) ResetEdge(name string) error {
	switch name {
	case thread.EdgeParticipants:
		m.ResetParticipants()
		return nil
	case thread.EdgeMessages:
		m.ResetMessages()
		return nil
	case thread.EdgeCursors:
		m.ResetCursors()
		return nil
	}
	return fmt.Errorf("unknown Thread edge %s", name)
}

// ThreadParticipantMutation represents an operation that mutates the ThreadParticipant nodes in the graph.
type ThreadParticipantMutation struct {
	config
	op            Op
	typ           string
	id            *string
	agent_id      *string
	position      *int
	addposition   *int
	created_at    *time.Time
	clearedFields map[string]struct{}
	thread        *string
	clearedthread bool
	done          bool
	oldValue      func(context.Context) (*ThreadParticipant, error)
	predicates    []predicate.ThreadParticipant
}

var _ ent.Mutation = (*ThreadParticipantMutation)(nil)

// threadparticipantOption allows management of the mutation configuration using functional options.
type threadparticipantOption func(*ThreadParticipantMutation)

// newThreadParticipantMutation creates new mutation for the ThreadParticipant entity.
func newThreadParticipantMutation(c config, op Op, opts ...threadparticipantOption) *ThreadParticipantMutation {
	m := &ThreadParticipantMutation{
		config:        c,
		op:            op,
		typ:           TypeThreadParticipant,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withThreadParticipantID sets the ID field of the mutation.
func withThreadParticipantID(id string) threadparticipantOption {
	return func(m *ThreadParticipantMutation) {
		var (
			err   error
			once  sync.Once
			value *ThreadParticipant
		)
		m.oldValue = func(ctx context.Context) (*ThreadParticipant, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ThreadParticipant.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withThreadParticipant sets the old ThreadParticipant of the mutation.
func withThreadParticipant(node *ThreadParticipant) threadparticipantOption {
	return func(m *ThreadParticipantMutation) {
		m.oldValue = func(context.Context) (*ThreadParticipant, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ThreadParticipantMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ThreadParticipantMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ThreadParticipant entities.
func (m *ThreadParticipantMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ThreadParticipantMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ThreadParticipantMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ThreadParticipant.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetThreadID sets the "thread_id" field.
func (m *ThreadParticipantMutation) SetThreadID(s string) {
	m.thread = &s
}

// ThreadID returns the value of the "thread_id" field in the mutation.
func (m *ThreadParticipantMutation) ThreadID() (r string, exists bool) {
	v := m.thread
	if v == nil {
		return
	}
	return *v, true
}

// OldThreadID returns the old "thread_id" field's value of the ThreadParticipant entity.
// If the ThreadParticipant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThreadParticipantMutation) OldThreadID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldThreadID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldThreadID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldThreadID: %w", err)
	}
	return oldValue.ThreadID, nil
}

// ResetThreadID resets all changes to the "thread_id" field.
func (m *ThreadParticipantMutation) ResetThreadID() {
	m.thread = nil
}

// SetAgentID sets the "agent_id" field.
func (m *ThreadParticipantMutation) SetAgentID(s string) {
	m.agent_id = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *ThreadParticipantMutation) AgentID() (r string, exists bool) {
	v := m.agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the ThreadParticipant entity.
// If the ThreadParticipant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThreadParticipantMutation) OldAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *ThreadParticipantMutation) ResetAgentID() {
	m.agent_id = nil
}

// SetPosition sets the "position" field.
func (m *ThreadParticipantMutation) SetPosition(i int) {
	m.position = &i
	m.addposition = nil
}

// Position returns the value of the "position" field in the mutation.
func (m *ThreadParticipantMutation) Position() (r int, exists bool) {
	v := m.position
	if v == nil {
		return
	}
	return *v, true
}

// OldPosition returns the old "position" field's value of the ThreadParticipant entity.
// If the ThreadParticipant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThreadParticipantMutation) OldPosition(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPosition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPosition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPosition: %w", err)
	}
	return oldValue.Position, nil
}

// AddPosition adds i to the "position" field.
func (m *ThreadParticipantMutation) AddPosition(i int) {
	if m.addposition != nil {
		*m.addposition += i
	} else {
		m.addposition = &i
	}
}

// AddedPosition returns the value that was added to the "position" field in this mutation.
func (m *ThreadParticipantMutation) AddedPosition() (r int, exists bool) {
	v := m.addposition
	if v == nil {
		return
	}
	return *v, true
}

// ResetPosition resets all changes to the "position" field.
func (m *ThreadParticipantMutation) ResetPosition() {
	m.position = nil
	m.addposition = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ThreadParticipantMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ThreadParticipantMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ThreadParticipant entity.
// If the ThreadParticipant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThreadParticipantMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ThreadParticipantMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearThread clears the "thread" edge to the Thread entity.
func (m *ThreadParticipantMutation) ClearThread() {
	m.clearedthread = true
	m.clearedFields[threadparticipant.FieldThreadID] = struct{}{}
}

// ThreadCleared reports if the "thread" edge to the Thread entity was cleared.
func (m *ThreadParticipantMutation) ThreadCleared() bool {
	return m.clearedthread
}

// ThreadIDs returns the "thread" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ThreadID instead. It exists only for internal usage by the builders.
func (m *ThreadParticipantMutation) ThreadIDs() (ids []string) {
	if id := m.thread; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetThread resets all changes to the "thread" edge.
func (m *ThreadParticipantMutation) ResetThread() {
	m.thread = nil
	m.clearedthread = false
}

// Where appends a list predicates to the ThreadParticipantMutation builder.
func (m *ThreadParticipantMutation) Where(ps ...predicate.ThreadParticipant) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ThreadParticipantMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ThreadParticipantMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ThreadParticipant, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ThreadParticipantMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ThreadParticipantMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ThreadParticipant).
func (m *ThreadParticipantMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ThreadParticipantMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.thread != nil {
		fields = append(fields, threadparticipant.FieldThreadID)
	}
	if m.agent_id != nil {
		fields = append(fields, threadparticipant.FieldAgentID)
	}
	if m.position != nil {
		fields = append(fields, threadparticipant.FieldPosition)
	}
	if m.created_at != nil {
		fields = append(fields, threadparticipant.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ThreadParticipantMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case threadparticipant.FieldThreadID:
		return m.ThreadID()
	case threadparticipant.FieldAgentID:
		return m.AgentID()
	case threadparticipant.FieldPosition:
		return m.Position()
	case threadparticipant.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ThreadParticipantMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case threadparticipant.FieldThreadID:
		return m.OldThreadID(ctx)
	case threadparticipant.FieldAgentID:
		return m.OldAgentID(ctx)
	case threadparticipant.FieldPosition:
		return m.OldPosition(ctx)
	case threadparticipant.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ThreadParticipant field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ThreadParticipantMutation) SetField(name string, value ent.Value) error {
	switch name {
	case threadparticipant.FieldThreadID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetThreadID(v)
		return nil
	case threadparticipant.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case threadparticipant.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPosition(v)
		return nil
	case threadparticipant.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ThreadParticipant field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ThreadParticipantMutation) AddedFields() []string {
	var fields []string
	if m.addposition != nil {
		fields = append(fields, threadparticipant.FieldPosition)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ThreadParticipantMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case threadparticipant.FieldPosition:
		return m.AddedPosition()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ThreadParticipantMutation) AddField(name string, value ent.Value) error {
	switch name {
	case threadparticipant.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPosition(v)
		return nil
	}
	return fmt.Errorf("unknown ThreadParticipant numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ThreadParticipantMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ThreadParticipantMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ThreadParticipantMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ThreadParticipant nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ThreadParticipantMutation) ResetField(name string) error {
	switch name {
	case threadparticipant.FieldThreadID:
		m.ResetThreadID()
		return nil
	case threadparticipant.FieldAgentID:
		m.ResetAgentID()
		return nil
	case threadparticipant.FieldPosition:
		m.ResetPosition()
		return nil
	case threadparticipant.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ThreadParticipant field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ThreadParticipantMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.thread != nil {
		edges = append(edges, threadparticipant.EdgeThread)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ThreadParticipantMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case threadparticipant.EdgeThread:
		if id := m.thread; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ThreadParticipantMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ThreadParticipantMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ThreadParticipantMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedthread {
		edges = append(edges, threadparticipant.EdgeThread)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ThreadParticipantMutation) EdgeCleared(name string) bool {
	switch name {
	case threadparticipant.EdgeThread:
		return m.clearedthread
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ThreadParticipantMutation) ClearEdge(name string) error {
	switch name {
	case threadparticipant.EdgeThread:
		m.ClearThread()
		return nil
	}
	return fmt.Errorf("unknown ThreadParticipant unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ThreadParticipantMutation) ResetEdge(name string) error {
	switch name {
	case threadparticipant.EdgeThread:
		m.ResetThread()
		return nil
	}
	return fmt.Errorf("unknown ThreadParticipant edge %s", name)
}

// TriggerAttemptMutation represents an operation that mutates the TriggerAttempt nodes in the graph.
type TriggerAttemptMutation struct {
	config
	op             Op
	typ            string
	id             *string
	attempt_no     *int
	addattempt_no  *int
	attempt_result *string
	error_code     *string
	details        *map[string]interface{}
	created_at     *time.Time
	clearedFields  map[string]struct{}
	job            *string
	clearedjob     bool
	done           bool
	oldValue       func(context.Context) (*TriggerAttempt, error)
	predicates     []predicate.TriggerAttempt
}

var _ ent.Mutation = (*TriggerAttemptMutation)(nil)

// triggerattemptOption allows management of the mutation configuration using functional options.
type triggerattemptOption func(*TriggerAttemptMutation)

// newTriggerAttemptMutation creates new mutation for the TriggerAttempt entity.
func newTriggerAttemptMutation(c config, op Op, opts ...triggerattemptOption) *TriggerAttemptMutation {
	m := &TriggerAttemptMutation{
		config:        c,
		op:            op,
		typ:           TypeTriggerAttempt,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTriggerAttemptID sets the ID field of the mutation.
func withTriggerAttemptID(id string) triggerattemptOption {
	return func(m *TriggerAttemptMutation) {
		var (
			err   error
			once  sync.Once
			value *TriggerAttempt
		)
		m.oldValue = func(ctx context.Context) (*TriggerAttempt, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TriggerAttempt.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTriggerAttempt sets the old TriggerAttempt of the mutation.
func withTriggerAttempt(node *TriggerAttempt) triggerattemptOption {
	return func(m *TriggerAttemptMutation) {
		m.oldValue = func(context.Context) (*TriggerAttempt, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TriggerAttemptMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TriggerAttemptMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TriggerAttempt entities.
func (m *TriggerAttemptMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TriggerAttemptMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TriggerAttemptMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TriggerAttempt.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTriggerID sets the "trigger_id" field.
func (m *TriggerAttemptMutation) SetTriggerID(s string) {
	m.job = &s
}

// TriggerID returns the value of the "trigger_id" field in the mutation.
func (m *TriggerAttemptMutation) TriggerID() (r string, exists bool) {
	v := m.job
	if v == nil {
		return
	}
	return *v, true
}

// OldTriggerID returns the old "trigger_id" field's value of the TriggerAttempt entity.
// If the TriggerAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TriggerAttemptMutation) OldTriggerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTriggerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTriggerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTriggerID: %w", err)
	}
	return oldValue.TriggerID, nil
}

// ResetTriggerID resets all changes to the "trigger_id" field.
func (m *TriggerAttemptMutation) ResetTriggerID() {
	m.job = nil
}

// SetAttemptNo sets the "attempt_no" field.
func (m *TriggerAttemptMutation) SetAttemptNo(i int) {
	m.attempt_no = &i
	m.addattempt_no = nil
}

// AttemptNo returns the value of the "attempt_no" field in the mutation.
func (m *TriggerAttemptMutation) AttemptNo() (r int, exists bool) {
	v := m.attempt_no
	if v == nil {
		return
	}
	return *v, true
}

// OldAttemptNo returns the old "attempt_no" field's value of the TriggerAttempt entity.
// If the TriggerAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TriggerAttemptMutation) OldAttemptNo(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttemptNo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttemptNo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttemptNo: %w", err)
	}
	return oldValue.AttemptNo, nil
}

// AddAttemptNo adds i to the "attempt_no" field.
func (m *TriggerAttemptMutation) AddAttemptNo(i int) {
	if m.addattempt_no != nil {
		*m.addattempt_no += i
	} else {
		m.addattempt_no = &i
	}
}

// AddedAttemptNo returns the value that was added to the "attempt_no" field in this mutation.
func (m *TriggerAttemptMutation) AddedAttemptNo() (r int, exists bool) {
	v := m.addattempt_no
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttemptNo resets all changes to the "attempt_no" field.
func (m *TriggerAttemptMutation) ResetAttemptNo() {
	m.attempt_no = nil
	m.addattempt_no = nil
}

// SetAttemptResult sets the "attempt_result" field.
func (m *TriggerAttemptMutation) SetAttemptResult(s string) {
	m.attempt_result = &s
}

// AttemptResult returns the value of the "attempt_result" field in the mutation.
func (m *TriggerAttemptMutation) AttemptResult() (r string, exists bool) {
	v := m.attempt_result
	if v == nil {
		return
	}
	return *v, true
}

// OldAttemptResult returns the old "attempt_result" field's value of the TriggerAttempt entity.
// If the TriggerAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TriggerAttemptMutation) OldAttemptResult(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttemptResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttemptResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttemptResult: %w", err)
	}
	return oldValue.AttemptResult, nil
}

// ResetAttemptResult resets all changes to the "attempt_result" field.
func (m *TriggerAttemptMutation) ResetAttemptResult() {
	m.attempt_result = nil
}

// SetErrorCode sets the "error_code" field.
func (m *TriggerAttemptMutation) SetErrorCode(s string) {
	m.error_code = &s
}

// ErrorCode returns the value of the "error_code" field in the mutation.
func (m *TriggerAttemptMutation) ErrorCode() (r string, exists bool) {
	v := m.error_code
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorCode returns the old "error_code" field's value of the TriggerAttempt entity.
// If the TriggerAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TriggerAttemptMutation) OldErrorCode(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorCode: %w", err)
	}
	return oldValue.ErrorCode, nil
}

// ClearErrorCode clears the value of the "error_code" field.
func (m *TriggerAttemptMutation) ClearErrorCode() {
	m.error_code = nil
	m.clearedFields[triggerattempt.FieldErrorCode] = struct{}{}
}

// ErrorCodeCleared returns if the "error_code" field was cleared in this mutation.
func (m *TriggerAttemptMutation) ErrorCodeCleared() bool {
	_, ok := m.clearedFields[triggerattempt.FieldErrorCode]
	return ok
}

// ResetErrorCode resets all changes to the "error_code" field.
func (m *TriggerAttemptMutation) ResetErrorCode() {
	m.error_code = nil
	delete(m.clearedFields, triggerattempt.FieldErrorCode)
}

// SetDetails sets the "details" field.
func (m *TriggerAttemptMutation) SetDetails(value map[string]interface{}) {
	m.details = &value
}

// Details returns the value of the "details" field in the mutation.
func (m *TriggerAttemptMutation) Details() (r map[string]interface{}, exists bool) {
	v := m.details
	if v == nil {
		return
	}
	return *v, true
}

// OldDetails returns the old "details" field's value of the TriggerAttempt entity.
// If the TriggerAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TriggerAttemptMutation) OldDetails(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetails is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetails requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetails: %w", err)
	}
	return oldValue.Details, nil
}

// ClearDetails clears the value of the "details" field.
func (m *TriggerAttemptMutation) ClearDetails() {
	m.details = nil
	m.clearedFields[triggerattempt.FieldDetails] = struct{}{}
}

// DetailsCleared returns if the "details" field was cleared in this mutation.
func (m *TriggerAttemptMutation) DetailsCleared() bool {
	_, ok := m.clearedFields[triggerattempt.FieldDetails]
	return ok
}

// ResetDetails resets all changes to the "details" field.
func (m *TriggerAttemptMutation) ResetDetails() {
	m.details = nil
	delete(m.clearedFields, triggerattempt.FieldDetails)
}

// SetCreatedAt sets the "created_at" field.
func (m *TriggerAttemptMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TriggerAttemptMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TriggerAttempt entity.
// If the TriggerAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TriggerAttemptMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TriggerAttemptMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetJobID sets the "job" edge to the TriggerJob entity by id.
func (m *TriggerAttemptMutation) SetJobID(id string) {
	m.job = &id
}

// ClearJob clears the "job" edge to the TriggerJob entity.
func (m *TriggerAttemptMutation) ClearJob() {
	m.clearedjob = true
	m.clearedFields[triggerattempt.FieldTriggerID] = struct{}{}
}

// JobCleared reports if the "job" edge to the TriggerJob entity was cleared.
func (m *TriggerAttemptMutation) JobCleared() bool {
	return m.clearedjob
}

// JobID returns the "job" edge ID in the mutation.
func (m *TriggerAttemptMutation) JobID() (id string, exists bool) {
	if m.job != nil {
		return *m.job, true
	}
	return
}

// JobIDs returns the "job" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// JobID instead. It exists only for internal usage by the builders.
func (m *TriggerAttemptMutation) JobIDs() (ids []string) {
	if id := m.job; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetJob resets all changes to the "job" edge.
func (m *TriggerAttemptMutation) ResetJob() {
	m.job = nil
	m.clearedjob = false
}

// Where appends a list predicates to the TriggerAttemptMutation builder.
func (m *TriggerAttemptMutation) Where(ps ...predicate.TriggerAttempt) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TriggerAttemptMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TriggerAttemptMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TriggerAttempt, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TriggerAttemptMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TriggerAttemptMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TriggerAttempt).
func (m *TriggerAttemptMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TriggerAttemptMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.job != nil {
		fields = append(fields, triggerattempt.FieldTriggerID)
	}
	if m.attempt_no != nil {
		fields = append(fields, triggerattempt.FieldAttemptNo)
	}
	if m.attempt_result != nil {
		fields = append(fields, triggerattempt.FieldAttemptResult)
	}
	if m.error_code != nil {
		fields = append(fields, triggerattempt.FieldErrorCode)
	}
	if m.details != nil {
		fields = append(fields, triggerattempt.FieldDetails)
	}
	if m.created_at != nil {
		fields = append(fields, triggerattempt.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TriggerAttemptMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case triggerattempt.FieldTriggerID:
		return m.TriggerID()
	case triggerattempt.FieldAttemptNo:
		return m.AttemptNo()
	case triggerattempt.FieldAttemptResult:
		return m.AttemptResult()
	case triggerattempt.FieldErrorCode:
		return m.ErrorCode()
	case triggerattempt.FieldDetails:
		return m.Details()
	case triggerattempt.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TriggerAttemptMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case triggerattempt.FieldTriggerID:
		return m.OldTriggerID(ctx)
	case triggerattempt.FieldAttemptNo:
		return m.OldAttemptNo(ctx)
	case triggerattempt.FieldAttemptResult:
		return m.OldAttemptResult(ctx)
	case triggerattempt.FieldErrorCode:
		return m.OldErrorCode(ctx)
	case triggerattempt.FieldDetails:
		return m.OldDetails(ctx)
	case triggerattempt.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TriggerAttempt field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TriggerAttemptMutation) SetField(name string, value ent.Value) error {
	switch name {
	case triggerattempt.FieldTriggerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTriggerID(v)
		return nil
	case triggerattempt.FieldAttemptNo:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttemptNo(v)
		return nil
	case triggerattempt.FieldAttemptResult:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttemptResult(v)
		return nil
	case triggerattempt.FieldErrorCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorCode(v)
		return nil
	case triggerattempt.FieldDetails:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetails(v)
		return nil
	case triggerattempt.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TriggerAttempt field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TriggerAttemptMutation) AddedFields() []string {
	var fields []string
	if m.addattempt_no != nil {
		fields = append(fields, triggerattempt.FieldAttemptNo)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TriggerAttemptMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case triggerattempt.FieldAttemptNo:
		return m.AddedAttemptNo()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TriggerAttemptMutation) AddField(name string, value ent.Value) error {
	switch name {
	case triggerattempt.FieldAttemptNo:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttemptNo(v)
		return nil
	}
	return fmt.Errorf("unknown TriggerAttempt numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TriggerAttemptMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(triggerattempt.FieldErrorCode) {
		fields = append(fields, triggerattempt.FieldErrorCode)
	}
	if m.FieldCleared(triggerattempt.FieldDetails) {
		fields = append(fields, triggerattempt.FieldDetails)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TriggerAttemptMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TriggerAttemptMutation) ClearField(name string) error {
	switch name {
	case triggerattempt.FieldErrorCode:
		m.ClearErrorCode()
		return nil
	case triggerattempt.FieldDetails:
		m.ClearDetails()
		return nil
	}
	return fmt.Errorf("unknown TriggerAttempt nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TriggerAttemptMutation) ResetField(name string) error {
	switch name {
	case triggerattempt.FieldTriggerID:
		m.ResetTriggerID()
		return nil
	case triggerattempt.FieldAttemptNo:
		m.ResetAttemptNo()
		return nil
	case triggerattempt.FieldAttemptResult:
		m.ResetAttemptResult()
		return nil
	case triggerattempt.FieldErrorCode:
		m.ResetErrorCode()
		return nil
	case triggerattempt.FieldDetails:
		m.ResetDetails()
		return nil
	case triggerattempt.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown TriggerAttempt field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TriggerAttemptMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.job != nil {
		edges = append(edges, triggerattempt.EdgeJob)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TriggerAttemptMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case triggerattempt.EdgeJob:
		if id := m.job; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TriggerAttemptMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TriggerAttemptMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TriggerAttemptMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedjob {
		edges = append(edges, triggerattempt.EdgeJob)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TriggerAttemptMutation) EdgeCleared(name string) bool {
	switch name {
	case triggerattempt.EdgeJob:
		return m.clearedjob
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TriggerAttemptMutation) ClearEdge(name string) error {
	switch name {
	case triggerattempt.EdgeJob:
		m.ClearJob()
		return nil
	}
	return fmt.Errorf("unknown TriggerAttempt unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TriggerAttemptMutation) ResetEdge(name string) error {
	switch name {
	case triggerattempt.EdgeJob:
		m.ResetJob()
		return nil
	}
	return fmt.Errorf("unknown TriggerAttempt edge %s", name)
}

// TriggerJobMutation represents an operation that mutates the TriggerJob nodes in the graph.
type TriggerJobMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	thread_id               *string
	workspace_id            *string
	target_agent_id         *string
	target_session_id       *string
	reason                  *string
	prompt                  *string
	status                  *triggerjob.Status
	attempts                *int
	addattempts             *int
	max_retries             *int
	addmax_retries          *int
	next_retry_at           *time.Time
	created_at              *time.Time
	updated_at              *time.Time
	clearedFields           map[string]struct{}
	trigger_attempts        map[string]struct{}
	removedtrigger_attempts map[string]struct{}
	clearedtrigger_attempts bool
	done                    bool
	oldValue                func(context.Context) (*TriggerJob, error)
	predicates              []predicate.TriggerJob
}

var _ ent.Mutation = (*TriggerJobMutation)(nil)

// triggerjobOption allows management of the mutation configuration using functional options.
type triggerjobOption func(*TriggerJobMutation)

// newTriggerJobMutation creates new mutation for the TriggerJob entity.
func newTriggerJobMutation(c config, op Op, opts ...triggerjobOption) *TriggerJobMutation {
	m := &TriggerJobMutation{
		config:        c,
		op:            op,
		typ:           TypeTriggerJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTriggerJobID sets the ID field of the mutation.
func withTriggerJobID(id string) triggerjobOption {
	return func(m *TriggerJobMutation) {
		var (
			err   error
			once  sync.Once
			value *TriggerJob
		)
		m.oldValue = func(ctx context.Context) (*TriggerJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TriggerJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTriggerJob sets the old TriggerJob of the mutation.
func withTriggerJob(node *TriggerJob) triggerjobOption {
	return func(m *TriggerJobMutation) {
		m.oldValue = func(context.Context) (*TriggerJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TriggerJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TriggerJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TriggerJob entities.
func (m *TriggerJobMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TriggerJobMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TriggerJobMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TriggerJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetThreadID sets the "thread_id" field.
func (m *TriggerJobMutation) SetThreadID(s string) {
	m.thread_id = &s
}

// ThreadID returns the value of the "thread_id" field in the mutation.
func (m *TriggerJobMutation) ThreadID() (r string, exists bool) {
	v := m.thread_id
	if v == nil {
		return
	}
	return *v, true
}

// OldThreadID returns the old "thread_id" field's value of the TriggerJob entity.
// If the TriggerJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TriggerJobMutation) OldThreadID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldThreadID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldThreadID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldThreadID: %w", err)
	}
	return oldValue.ThreadID, nil
}

// ResetThreadID resets all changes to the "thread_id" field.
func (m *TriggerJobMutation) ResetThreadID() {
	m.thread_id = nil
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *TriggerJobMutation) SetWorkspaceID(s string) {
	m.workspace_id = &s
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *TriggerJobMutation) WorkspaceID() (r string, exists bool) {
	v := m.workspace_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the TriggerJob entity.
// If the TriggerJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TriggerJobMutation) OldWorkspaceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *TriggerJobMutation) ResetWorkspaceID() {
	m.workspace_id = nil
}

// SetTargetAgentID sets the "target_agent_id" field.
func (m *TriggerJobMutation) SetTargetAgentID(s string) {
	m.target_agent_id = &s
}

// TargetAgentID returns the value of the "target_agent_id" field in the mutation.
func (m *TriggerJobMutation) TargetAgentID() (r string, exists bool) {
	v := m.target_agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetAgentID returns the old "target_agent_id" field's value of the TriggerJob entity.
// If the TriggerJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TriggerJobMutation) OldTargetAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetAgentID: %w", err)
	}
	return oldValue.TargetAgentID, nil
}

// ResetTargetAgentID resets all changes to the "target_agent_id" field.
func (m *TriggerJobMutation) ResetTargetAgentID() {
	m.target_agent_id = nil
}

// SetTargetSessionID sets the "target_session_id" field.
func (m *TriggerJobMutation) SetTargetSessionID(s string) {
	m.target_session_id = &s
}

// TargetSessionID returns the value of the "target_session_id" field in the mutation.
func (m *TriggerJobMutation) TargetSessionID() (r string, exists bool) {
	v := m.target_session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetSessionID returns the old "target_session_id" field's value of the TriggerJob entity.
// If the TriggerJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TriggerJobMutation) OldTargetSessionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetSessionID: %w", err)
	}
	return oldValue.TargetSessionID, nil
}

// ClearTargetSessionID clears the value of the "target_session_id" field.
func (m *TriggerJobMutation) ClearTargetSessionID() {
	m.target_session_id = nil
	m.clearedFields[triggerjob.FieldTargetSessionID] = struct{}{}
}

// TargetSessionIDCleared returns if the "target_session_id" field was cleared in this mutation.
func (m *TriggerJobMutation) TargetSessionIDCleared() bool {
	_, ok := m.clearedFields[triggerjob.FieldTargetSessionID]
	return ok
}

// ResetTargetSessionID resets all changes to the "target_session_id" field.
func (m *TriggerJobMutation) ResetTargetSessionID() {
	m.target_session_id = nil
	delete(m.clearedFields, triggerjob.FieldTargetSessionID)
}

// SetReason sets the "reason" field.
func (m *TriggerJobMutation) SetReason(s string) {
	m.reason = &s
}

// Reason returns the value of the "reason" field in the mutation.
func (m *TriggerJobMutation) Reason() (r string, exists bool) {
	v := m.reason
	if v == nil {
		return
	}
	return *v, true
}

// OldReason returns the old "reason" field's value of the TriggerJob entity.
// If the TriggerJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TriggerJobMutation) OldReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReason: %w", err)
	}
	return oldValue.Reason, nil
}

// ResetReason resets all changes to the "reason" field.
func (m *TriggerJobMutation) ResetReason() {
	m.reason = nil
}

// SetPrompt sets the "prompt" field.
func (m *TriggerJobMutation) SetPrompt(s string) {
	m.prompt = &s
}

// Prompt returns the value of the "prompt" field in the mutation.
func (m *TriggerJobMutation) Prompt() (r string, exists bool) {
	v := m.prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldPrompt returns the old "prompt" field's value of the TriggerJob entity.
// If the TriggerJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TriggerJobMutation) OldPrompt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrompt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrompt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrompt: %w", err)
	}
	return oldValue.Prompt, nil
}

// ResetPrompt resets all changes to the "prompt" field.
func (m *TriggerJobMutation) ResetPrompt() {
	m.prompt = nil
}

// SetStatus sets the "status" field.
func (m *TriggerJobMutation) SetStatus(t triggerjob.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *TriggerJobMutation) Status() (r triggerjob.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the TriggerJob entity.
// If the TriggerJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TriggerJobMutation) OldStatus(ctx context.Context) (v triggerjob.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TriggerJobMutation) ResetStatus() {
	m.status = nil
}

// SetAttempts sets the "attempts" field.
func (m *TriggerJobMutation) SetAttempts(i int) {
	m.attempts = &i
	m.addattempts = nil
}

// Attempts returns the value of the "attempts" field in the mutation.
func (m *TriggerJobMutation) Attempts() (r int, exists bool) {
	v := m.attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempts returns the old "attempts" field's value of the TriggerJob entity.
// If the TriggerJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TriggerJobMutation) OldAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempts: %w", err)
	}
	return oldValue.Attempts, nil
}

// AddAttempts adds i to the "attempts" field.
func (m *TriggerJobMutation) AddAttempts(i int) {
	if m.addattempts != nil {
		*m.addattempts += i
	} else {
		m.addattempts = &i
	}
}

// AddedAttempts returns the value that was added to the "attempts" field in this mutation.
func (m *TriggerJobMutation) AddedAttempts() (r int, exists bool) {
	v := m.addattempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempts resets all changes to the "attempts" field.
func (m *TriggerJobMutation) ResetAttempts() {
	m.attempts = nil
	m.addattempts = nil
}

// SetMaxRetries sets the "max_retries" field.
func (m *TriggerJobMutation) SetMaxRetries(i int) {
	m.max_retries = &i
	m.addmax_retries = nil
}

// MaxRetries returns the value of the "max_retries" field in the mutation.
func (m *TriggerJobMutation) MaxRetries() (r int, exists bool) {
	v := m.max_retries
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxRetries returns the old "max_retries" field's value of the TriggerJob entity.
// If the TriggerJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TriggerJobMutation) OldMaxRetries(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxRetries is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxRetries requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxRetries: %w", err)
	}
	return oldValue.MaxRetries, nil
}

// AddMaxRetries adds i to the "max_retries" field.
func (m *TriggerJobMutation) AddMaxRetries(i int) {
	if m.addmax_retries != nil {
		*m.addmax_retries += i
	} else {
		m.addmax_retries = &i
	}
}

// AddedMaxRetries returns the value that was added to the "max_retries" field in this mutation.
func (m *TriggerJobMutation) AddedMaxRetries() (r int, exists bool) {
	v := m.addmax_retries
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxRetries resets all changes to the "max_retries" field.
func (m *TriggerJobMutation) ResetMaxRetries() {
	m.max_retries = nil
	m.addmax_retries = nil
}

// SetNextRetryAt sets the "next_retry_at" field.
func (m *TriggerJobMutation) SetNextRetryAt(t time.Time) {
	m.next_retry_at = &t
}

// NextRetryAt returns the value of the "next_retry_at" field in the mutation.
func (m *TriggerJobMutation) NextRetryAt() (r time.Time, exists bool) {
	v := m.next_retry_at
	if v == nil {
		return
	}
	return *v, true
}

// OldNextRetryAt returns the old "next_retry_at" field's value of the TriggerJob entity.
// If the TriggerJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TriggerJobMutation) OldNextRetryAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextRetryAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextRetryAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextRetryAt: %w", err)
	}
	return oldValue.NextRetryAt, nil
}

// ClearNextRetryAt clears the value of the "next_retry_at" field.
func (m *TriggerJobMutation) ClearNextRetryAt() {
	m.next_retry_at = nil
	m.clearedFields[triggerjob.FieldNextRetryAt] = struct{}{}
}

// NextRetryAtCleared returns if the "next_retry_at" field was cleared in this mutation.
func (m *TriggerJobMutation) NextRetryAtCleared() bool {
	_, ok := m.clearedFields[triggerjob.FieldNextRetryAt]
	return ok
}

// ResetNextRetryAt resets all changes to the "next_retry_at" field.
func (m *TriggerJobMutation) ResetNextRetryAt() {
	m.next_retry_at = nil
	delete(m.clearedFields, triggerjob.FieldNextRetryAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *TriggerJobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TriggerJobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TriggerJob entity.
// If the TriggerJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TriggerJobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TriggerJobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TriggerJobMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TriggerJobMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the TriggerJob entity.
// If the TriggerJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TriggerJobMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TriggerJobMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddTriggerAttemptIDs adds the "trigger_attempts" edge to the TriggerAttempt entity by ids.
func (m *TriggerJobMutation) AddTriggerAttemptIDs(ids ...string) {
	if m.trigger_attempts == nil {
		m.trigger_attempts = make(map[string]struct{})
	}
	for i := range ids {
		m.trigger_attempts[ids[i]] = struct{}{}
	}
}

// ClearTriggerAttempts clears the "trigger_attempts" edge to the TriggerAttempt entity.
func (m *TriggerJobMutation) ClearTriggerAttempts() {
	m.clearedtrigger_attempts = true
}

// TriggerAttemptsCleared reports if the "trigger_attempts" edge to the TriggerAttempt entity was cleared.
func (m *TriggerJobMutation) TriggerAttemptsCleared() bool {
	return m.clearedtrigger_attempts
}

// RemoveTriggerAttemptIDs removes the "trigger_attempts" edge to the TriggerAttempt entity by IDs.
func (m *TriggerJobMutation) RemoveTriggerAttemptIDs(ids ...string) {
	if m.removedtrigger_attempts == nil {
		m.removedtrigger_attempts = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.trigger_attempts, ids[i])
		m.removedtrigger_attempts[ids[i]] = struct{}{}
	}
}

// RemovedTriggerAttempts returns the removed IDs of the "trigger_attempts" edge to the TriggerAttempt entity.
func (m *TriggerJobMutation) RemovedTriggerAttemptsIDs() (ids []string) {
	for id := range m.removedtrigger_attempts {
		ids = append(ids, id)
	}
	return
}

// TriggerAttemptsIDs returns the "trigger_attempts" edge IDs in the mutation.
func (m *TriggerJobMutation) TriggerAttemptsIDs() (ids []string) {
	for id := range m.trigger_attempts {
		ids = append(ids, id)
	}
	return
}

// ResetTriggerAttempts resets all changes to the "trigger_attempts" edge.
func (m *TriggerJobMutation) ResetTriggerAttempts() {
	m.trigger_attempts = nil
	m.clearedtrigger_attempts = false
	m.removedtrigger_attempts = nil
}

// Where appends a list predicates to the TriggerJobMutation builder.
func (m *TriggerJobMutation) Where(ps ...predicate.TriggerJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TriggerJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TriggerJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TriggerJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TriggerJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TriggerJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TriggerJob).
func (m *TriggerJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TriggerJobMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.thread_id != nil {
		fields = append(fields, triggerjob.FieldThreadID)
	}
	if m.workspace_id != nil {
		fields = append(fields, triggerjob.FieldWorkspaceID)
	}
	if m.target_agent_id != nil {
		fields = append(fields, triggerjob.FieldTargetAgentID)
	}
	if m.target_session_id != nil {
		fields = append(fields, triggerjob.FieldTargetSessionID)
	}
	if m.reason != nil {
		fields = append(fields, triggerjob.FieldReason)
	}
	if m.prompt != nil {
		fields = append(fields, triggerjob.FieldPrompt)
	}
	if m.status != nil {
		fields = append(fields, triggerjob.FieldStatus)
	}
	if m.attempts != nil {
		fields = append(fields, triggerjob.FieldAttempts)
	}
	if m.max_retries != nil {
		fields = append(fields, triggerjob.FieldMaxRetries)
	}
	if m.next_retry_at != nil {
		fields = append(fields, triggerjob.FieldNextRetryAt)
	}
	if m.created_at != nil {
		fields = append(fields, triggerjob.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, triggerjob.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TriggerJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case triggerjob.FieldThreadID:
		return m.ThreadID()
	case triggerjob.FieldWorkspaceID:
		return m.WorkspaceID()
	case triggerjob.FieldTargetAgentID:
		return m.TargetAgentID()
	case triggerjob.FieldTargetSessionID:
		return m.TargetSessionID()
	case triggerjob.FieldReason:
		return m.Reason()
	case triggerjob.FieldPrompt:
		return m.Prompt()
	case triggerjob.FieldStatus:
		return m.Status()
	case triggerjob.FieldAttempts:
		return m.Attempts()
	case triggerjob.FieldMaxRetries:
		return m.MaxRetries()
	case triggerjob.FieldNextRetryAt:
		return m.NextRetryAt()
	case triggerjob.FieldCreatedAt:
		return m.CreatedAt()
	case triggerjob.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TriggerJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case triggerjob.FieldThreadID:
		return m.OldThreadID(ctx)
	case triggerjob.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case triggerjob.FieldTargetAgentID:
		return m.OldTargetAgentID(ctx)
	case triggerjob.FieldTargetSessionID:
		return m.OldTargetSessionID(ctx)
	case triggerjob.FieldReason:
		return m.OldReason(ctx)
	case triggerjob.FieldPrompt:
		return m.OldPrompt(ctx)
	case triggerjob.FieldStatus:
		return m.OldStatus(ctx)
	case triggerjob.FieldAttempts:
		return m.OldAttempts(ctx)
	case triggerjob.FieldMaxRetries:
		return m.OldMaxRetries(ctx)
	case triggerjob.FieldNextRetryAt:
		return m.OldNextRetryAt(ctx)
	case triggerjob.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case triggerjob.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TriggerJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TriggerJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case triggerjob.FieldThreadID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetThreadID(v)
		return nil
	case triggerjob.FieldWorkspaceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case triggerjob.FieldTargetAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetAgentID(v)
		return nil
	case triggerjob.FieldTargetSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetSessionID(v)
		return nil
	case triggerjob.FieldReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReason(v)
		return nil
	case triggerjob.FieldPrompt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrompt(v)
		return nil
	case triggerjob.FieldStatus:
		v, ok := value.(triggerjob.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case triggerjob.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempts(v)
		return nil
	case triggerjob.FieldMaxRetries:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxRetries(v)
		return nil
	case triggerjob.FieldNextRetryAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextRetryAt(v)
		return nil
	case triggerjob.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case triggerjob.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TriggerJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TriggerJobMutation) AddedFields() []string {
	var fields []string
	if m.addattempts != nil {
		fields = append(fields, triggerjob.FieldAttempts)
	}
	if m.addmax_retries != nil {
		fields = append(fields, triggerjob.FieldMaxRetries)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TriggerJobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case triggerjob.FieldAttempts:
		return m.AddedAttempts()
	case triggerjob.FieldMaxRetries:
		return m.AddedMaxRetries()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TriggerJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case triggerjob.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempts(v)
		return nil
	case triggerjob.FieldMaxRetries:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxRetries(v)
		return nil
	}
	return fmt.Errorf("unknown TriggerJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TriggerJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(triggerjob.FieldTargetSessionID) {
		fields = append(fields, triggerjob.FieldTargetSessionID)
	}
	if m.FieldCleared(triggerjob.FieldNextRetryAt) {
		fields = append(fields, triggerjob.FieldNextRetryAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TriggerJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TriggerJobMutation) ClearField(name string) error {
	switch name {
	case triggerjob.FieldTargetSessionID:
		m.ClearTargetSessionID()
		return nil
	case triggerjob.FieldNextRetryAt:
		m.ClearNextRetryAt()
		return nil
	}
	return fmt.Errorf("unknown TriggerJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TriggerJobMutation) ResetField(name string) error {
	switch name {
	case triggerjob.FieldThreadID:
		m.ResetThreadID()
		return nil
	case triggerjob.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case triggerjob.FieldTargetAgentID:
		m.ResetTargetAgentID()
		return nil
	case triggerjob.FieldTargetSessionID:
		m.ResetTargetSessionID()
		return nil
	case triggerjob.FieldReason:
		m.ResetReason()
		return nil
	case triggerjob.FieldPrompt:
		m.ResetPrompt()
		return nil
	case triggerjob.FieldStatus:
		m.ResetStatus()
		return nil
	case triggerjob.FieldAttempts:
		m.ResetAttempts()
		return nil
	case triggerjob.FieldMaxRetries:
		m.ResetMaxRetries()
		return nil
	case triggerjob.FieldNextRetryAt:
		m.ResetNextRetryAt()
		return nil
	case triggerjob.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case triggerjob.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown TriggerJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TriggerJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.trigger_attempts != nil {
		edges = append(edges, triggerjob.EdgeTriggerAttempts)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TriggerJobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case triggerjob.EdgeTriggerAttempts:
		ids := make([]ent.Value, 0, len(m.trigger_attempts))
		for id := range m.trigger_attempts {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TriggerJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedtrigger_attempts != nil {
		edges = append(edges, triggerjob.EdgeTriggerAttempts)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TriggerJobMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case triggerjob.EdgeTriggerAttempts:
		ids := make([]ent.Value, 0, len(m.removedtrigger_attempts))
		for id := range m.removedtrigger_attempts {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TriggerJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtrigger_attempts {
		edges = append(edges, triggerjob.EdgeTriggerAttempts)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TriggerJobMutation) EdgeCleared(name string) bool {
	switch name {
	case triggerjob.EdgeTriggerAttempts:
		return m.clearedtrigger_attempts
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TriggerJobMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown TriggerJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TriggerJobMutation) ResetEdge(name string) error {
	switch name {
	case triggerjob.EdgeTriggerAttempts:
		m.ResetTriggerAttempts()
		return nil
	}
	return fmt.Errorf("unknown TriggerJob edge %s", name)
}
