// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/agentfabric/bridge/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/agentfabric/bridge/ent/auditevent"
	"github.com/agentfabric/bridge/ent/fallbackrun"
	"github.com/agentfabric/bridge/ent/message"
	"github.com/agentfabric/bridge/ent/participantcursor"
	"github.com/agentfabric/bridge/ent/sessionrecord"
	"github.com/agentfabric/bridge/ent/thread"
	"github.com/agentfabric/bridge/ent/threadparticipant"
	"github.com/agentfabric/bridge/ent/triggerattempt"
	"github.com/agentfabric/bridge/ent/triggerjob"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AuditEvent is the client for interacting with the AuditEvent builders.
	AuditEvent *AuditEventClient
	// FallbackRun is the client for interacting with the FallbackRun builders.
	FallbackRun *FallbackRunClient
	// Message is the client for interacting with the Message builders.
	Message *MessageClient
	// ParticipantCursor is the client for interacting with the ParticipantCursor builders.
	ParticipantCursor *ParticipantCursorClient
	// SessionRecord is the client for interacting with the SessionRecord builders.
	SessionRecord *SessionRecordClient
	// Thread is the client for interacting with the Thread builders.
	Thread *ThreadClient
	// ThreadParticipant is the client for interacting with the ThreadParticipant builders.
	ThreadParticipant *ThreadParticipantClient
	// TriggerAttempt is the client for interacting with the TriggerAttempt builders.
	TriggerAttempt *TriggerAttemptClient
	// TriggerJob is the client for interacting with the TriggerJob builders.
	TriggerJob *TriggerJobClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AuditEvent = NewAuditEventClient(c.config)
	c.FallbackRun = NewFallbackRunClient(c.config)
	c.Message = NewMessageClient(c.config)
	c.ParticipantCursor = NewParticipantCursorClient(c.config)
	c.SessionRecord = NewSessionRecordClient(c.config)
	c.Thread = NewThreadClient(c.config)
	c.ThreadParticipant = NewThreadParticipantClient(c.config)
	c.TriggerAttempt = NewTriggerAttemptClient(c.config)
	c.TriggerJob = NewTriggerJobClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:               ctx,
		config:            cfg,
		AuditEvent:        NewAuditEventClient(cfg),
		FallbackRun:       NewFallbackRunClient(cfg),
		Message:           NewMessageClient(cfg),
		ParticipantCursor: NewParticipantCursorClient(cfg),
		SessionRecord:     NewSessionRecordClient(cfg),
		Thread:            NewThreadClient(cfg),
		ThreadParticipant: NewThreadParticipantClient(cfg),
		TriggerAttempt:    NewTriggerAttemptClient(cfg),
		TriggerJob:        NewTriggerJobClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:               ctx,
		config:            cfg,
		AuditEvent:        NewAuditEventClient(cfg),
		FallbackRun:       NewFallbackRunClient(cfg),
		Message:           NewMessageClient(cfg),
		ParticipantCursor: NewParticipantCursorClient(cfg),
		SessionRecord:     NewSessionRecordClient(cfg),
		Thread:            NewThreadClient(cfg),
		ThreadParticipant: NewThreadParticipantClient(cfg),
		TriggerAttempt:    NewTriggerAttemptClient(cfg),
		TriggerJob:        NewTriggerJobClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AuditEvent.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.AuditEvent, c.FallbackRun, c.Message, c.ParticipantCursor, c.SessionRecord,
		c.Thread, c.ThreadParticipant, c.TriggerAttempt, c.TriggerJob,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AuditEvent, c.FallbackRun, c.Message, c.ParticipantCursor, c.SessionRecord,
		c.Thread, c.ThreadParticipant, c.TriggerAttempt, c.TriggerJob,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AuditEventMutation:
		return c.AuditEvent.mutate(ctx, m)
	case *FallbackRunMutation:
		return c.FallbackRun.mutate(ctx, m)
	case *MessageMutation:
		return c.Message.mutate(ctx, m)
	case *ParticipantCursorMutation:
		return c.ParticipantCursor.mutate(ctx, m)
	case *SessionRecordMutation:
		return c.SessionRecord.mutate(ctx, m)
	case *ThreadMutation:
		return c.Thread.mutate(ctx, m)
	case *ThreadParticipantMutation:
		return c.ThreadParticipant.mutate(ctx, m)
	case *TriggerAttemptMutation:
		return c.TriggerAttempt.mutate(ctx, m)
	case *TriggerJobMutation:
		return c.TriggerJob.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AuditEventClient is a client for the AuditEvent schema.
type AuditEventClient struct {
	config
}

// NewAuditEventClient returns a client for the AuditEvent from the given config.
func NewAuditEventClient(c config) *AuditEventClient {
	return &AuditEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `auditevent.Hooks(f(g(h())))`.
func (c *AuditEventClient) Use(hooks ...Hook) {
	c.hooks.AuditEvent = append(c.hooks.AuditEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `auditevent.Intercept(f(g(h())))`.
func (c *AuditEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.AuditEvent = append(c.inters.AuditEvent, interceptors...)
}

// Create returns a builder for creating a AuditEvent entity.
func (c *AuditEventClient) Create() *AuditEventCreate {
	mutation := newAuditEventMutation(c.config, OpCreate)
	return &AuditEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AuditEvent entities.
func (c *AuditEventClient) CreateBulk(builders ...*AuditEventCreate) *AuditEventCreateBulk {
	return &AuditEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AuditEventClient) MapCreateBulk(slice any, setFunc func(*AuditEventCreate, int)) *AuditEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AuditEventCreateBulk{err: fmt.Errorf("calling to AuditEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AuditEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AuditEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AuditEvent.
func (c *AuditEventClient) Update() *AuditEventUpdate {
	mutation := newAuditEventMutation(c.config, OpUpdate)
	return &AuditEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AuditEventClient) UpdateOne(_m *AuditEvent) *AuditEventUpdateOne {
	mutation := newAuditEventMutation(c.config, OpUpdateOne, withAuditEvent(_m))
	return &AuditEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AuditEventClient) UpdateOneID(id string) *AuditEventUpdateOne {
	mutation := newAuditEventMutation(c.config, OpUpdateOne, withAuditEventID(id))
	return &AuditEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AuditEvent.
func (c *AuditEventClient) Delete() *AuditEventDelete {
	mutation := newAuditEventMutation(c.config, OpDelete)
	return &AuditEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AuditEventClient) DeleteOne(_m *AuditEvent) *AuditEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AuditEventClient) DeleteOneID(id string) *AuditEventDeleteOne {
	builder := c.Delete().Where(auditevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AuditEventDeleteOne{builder}
}

// Query returns a query builder for AuditEvent.
func (c *AuditEventClient) Query() *AuditEventQuery {
	return &AuditEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAuditEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a AuditEvent entity by its id.
func (c *AuditEventClient) Get(ctx context.Context, id string) (*AuditEvent, error) {
	return c.Query().Where(auditevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AuditEventClient) GetX(ctx context.Context, id string) *AuditEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AuditEventClient) Hooks() []Hook {
	return c.hooks.AuditEvent
}

// Interceptors returns the client interceptors.
func (c *AuditEventClient) Interceptors() []Interceptor {
	return c.inters.AuditEvent
}

func (c *AuditEventClient) mutate(ctx context.Context, m *AuditEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AuditEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AuditEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AuditEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AuditEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AuditEvent mutation op: %q", m.Op())
	}
}

// FallbackRunClient is a client for the FallbackRun schema.
type FallbackRunClient struct {
	config
}

// NewFallbackRunClient returns a client for the FallbackRun from the given config.
func NewFallbackRunClient(c config) *FallbackRunClient {
	return &FallbackRunClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `fallbackrun.Hooks(f(g(h())))`.
func (c *FallbackRunClient) Use(hooks ...Hook) {
	c.hooks.FallbackRun = append(c.hooks.FallbackRun, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `fallbackrun.Intercept(f(g(h())))`.
func (c *FallbackRunClient) Intercept(interceptors ...Interceptor) {
	c.inters.FallbackRun = append(c.inters.FallbackRun, interceptors...)
}

// Create returns a builder for creating a FallbackRun entity.
func (c *FallbackRunClient) Create() *FallbackRunCreate {
	mutation := newFallbackRunMutation(c.config, OpCreate)
	return &FallbackRunCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of FallbackRun entities.
func (c *FallbackRunClient) CreateBulk(builders ...*FallbackRunCreate) *FallbackRunCreateBulk {
	return &FallbackRunCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FallbackRunClient) MapCreateBulk(slice any, setFunc func(*FallbackRunCreate, int)) *FallbackRunCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FallbackRunCreateBulk{err: fmt.Errorf("calling to FallbackRunClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FallbackRunCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FallbackRunCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for FallbackRun.
func (c *FallbackRunClient) Update() *FallbackRunUpdate {
	mutation := newFallbackRunMutation(c.config, OpUpdate)
	return &FallbackRunUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FallbackRunClient) UpdateOne(_m *FallbackRun) *FallbackRunUpdateOne {
	mutation := newFallbackRunMutation(c.config, OpUpdateOne, withFallbackRun(_m))
	return &FallbackRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FallbackRunClient) UpdateOneID(id string) *FallbackRunUpdateOne {
	mutation := newFallbackRunMutation(c.config, OpUpdateOne, withFallbackRunID(id))
	return &FallbackRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for FallbackRun.
func (c *FallbackRunClient) Delete() *FallbackRunDelete {
	mutation := newFallbackRunMutation(c.config, OpDelete)
	return &FallbackRunDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FallbackRunClient) DeleteOne(_m *FallbackRun) *FallbackRunDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FallbackRunClient) DeleteOneID(id string) *FallbackRunDeleteOne {
	builder := c.Delete().Where(fallbackrun.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FallbackRunDeleteOne{builder}
}

// Query returns a query builder for FallbackRun.
func (c *FallbackRunClient) Query() *FallbackRunQuery {
	return &FallbackRunQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFallbackRun},
		inters: c.Interceptors(),
	}
}

// Get returns a FallbackRun entity by its id.
func (c *FallbackRunClient) Get(ctx context.Context, id string) (*FallbackRun, error) {
	return c.Query().Where(fallbackrun.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FallbackRunClient) GetX(ctx context.Context, id string) *FallbackRun {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *FallbackRunClient) Hooks() []Hook {
	return c.hooks.FallbackRun
}

// Interceptors returns the client interceptors.
func (c *FallbackRunClient) Interceptors() []Interceptor {
	return c.inters.FallbackRun
}

func (c *FallbackRunClient) mutate(ctx context.Context, m *FallbackRunMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FallbackRunCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FallbackRunUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FallbackRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FallbackRunDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown FallbackRun mutation op: %q", m.Op())
	}
}

// MessageClient is a client for the Message schema.
type MessageClient struct {
	config
}

// NewMessageClient returns a client for the Message from the given config.
func NewMessageClient(c config) *MessageClient {
	return &MessageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `message.Hooks(f(g(h())))`.
func (c *MessageClient) Use(hooks ...Hook) {
	c.hooks.Message = append(c.hooks.Message, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `message.Intercept(f(g(h())))`.
func (c *MessageClient) Intercept(interceptors ...Interceptor) {
	c.inters.Message = append(c.inters.Message, interceptors...)
}

// Create returns a builder for creating a Message entity.
func (c *MessageClient) Create() *MessageCreate {
	mutation := newMessageMutation(c.config, OpCreate)
	return &MessageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Message entities.
func (c *MessageClient) CreateBulk(builders ...*MessageCreate) *MessageCreateBulk {
	return &MessageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MessageClient) MapCreateBulk(slice any, setFunc func(*MessageCreate, int)) *MessageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MessageCreateBulk{err: fmt.Errorf("calling to MessageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MessageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MessageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Message.
func (c *MessageClient) Update() *MessageUpdate {
	mutation := newMessageMutation(c.config, OpUpdate)
	return &MessageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MessageClient) UpdateOne(_m *Message) *MessageUpdateOne {
	mutation := newMessageMutation(c.config, OpUpdateOne, withMessage(_m))
	return &MessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MessageClient) UpdateOneID(id string) *MessageUpdateOne {
	mutation := newMessageMutation(c.config, OpUpdateOne, withMessageID(id))
	return &MessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Message.
func (c *MessageClient) Delete() *MessageDelete {
	mutation := newMessageMutation(c.config, OpDelete)
	return &MessageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MessageClient) DeleteOne(_m *Message) *MessageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MessageClient) DeleteOneID(id string) *MessageDeleteOne {
	builder := c.Delete().Where(message.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MessageDeleteOne{builder}
}

// Query returns a query builder for Message.
func (c *MessageClient) Query() *MessageQuery {
	return &MessageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMessage},
		inters: c.Interceptors(),
	}
}

// Get returns a Message entity by its id.
func (c *MessageClient) Get(ctx context.Context, id string) (*Message, error) {
	return c.Query().Where(message.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MessageClient) GetX(ctx context.Context, id string) *Message {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryThread queries the thread edge of a Message.
func (c *MessageClient) QueryThread(_m *Message) *ThreadQuery {
	query := (&ThreadClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(message.Table, message.FieldID, id),
			sqlgraph.To(thread.Table, thread.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, message.ThreadTable, message.ThreadColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *MessageClient) Hooks() []Hook {
	return c.hooks.Message
}

// Interceptors returns the client interceptors.
func (c *MessageClient) Interceptors() []Interceptor {
	return c.inters.Message
}

func (c *MessageClient) mutate(ctx context.Context, m *MessageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MessageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MessageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MessageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Message mutation op: %q", m.Op())
	}
}

// ParticipantCursorClient is a client for the ParticipantCursor schema.
type ParticipantCursorClient struct {
	config
}

// NewParticipantCursorClient returns a client for the ParticipantCursor from the given config.
func NewParticipantCursorClient(c config) *ParticipantCursorClient {
	return &ParticipantCursorClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `participantcursor.Hooks(f(g(h())))`.
func (c *ParticipantCursorClient) Use(hooks ...Hook) {
	c.hooks.ParticipantCursor = append(c.hooks.ParticipantCursor, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `participantcursor.Intercept(f(g(h())))`.
func (c *ParticipantCursorClient) Intercept(interceptors ...Interceptor) {
	c.inters.ParticipantCursor = append(c.inters.ParticipantCursor, interceptors...)
}

// Create returns a builder for creating a ParticipantCursor entity.
func (c *ParticipantCursorClient) Create() *ParticipantCursorCreate {
	mutation := newParticipantCursorMutation(c.config, OpCreate)
	return &ParticipantCursorCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ParticipantCursor entities.
func (c *ParticipantCursorClient) CreateBulk(builders ...*ParticipantCursorCreate) *ParticipantCursorCreateBulk {
	return &ParticipantCursorCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ParticipantCursorClient) MapCreateBulk(slice any, setFunc func(*ParticipantCursorCreate, int)) *ParticipantCursorCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ParticipantCursorCreateBulk{err: fmt.Errorf("calling to ParticipantCursorClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ParticipantCursorCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ParticipantCursorCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ParticipantCursor.
func (c *ParticipantCursorClient) Update() *ParticipantCursorUpdate {
	mutation := newParticipantCursorMutation(c.config, OpUpdate)
	return &ParticipantCursorUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ParticipantCursorClient) UpdateOne(_m *ParticipantCursor) *ParticipantCursorUpdateOne {
	mutation := newParticipantCursorMutation(c.config, OpUpdateOne, withParticipantCursor(_m))
	return &ParticipantCursorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ParticipantCursorClient) UpdateOneID(id string) *ParticipantCursorUpdateOne {
	mutation := newParticipantCursorMutation(c.config, OpUpdateOne, withParticipantCursorID(id))
	return &ParticipantCursorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ParticipantCursor.
func (c *ParticipantCursorClient) Delete() *ParticipantCursorDelete {
	mutation := newParticipantCursorMutation(c.config, OpDelete)
	return &ParticipantCursorDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ParticipantCursorClient) DeleteOne(_m *ParticipantCursor) *ParticipantCursorDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ParticipantCursorClient) DeleteOneID(id string) *ParticipantCursorDeleteOne {
	builder := c.Delete().Where(participantcursor.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ParticipantCursorDeleteOne{builder}
}

// Query returns a query builder for ParticipantCursor.
func (c *ParticipantCursorClient) Query() *ParticipantCursorQuery {
	return &ParticipantCursorQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeParticipantCursor},
		inters: c.Interceptors(),
	}
}

// Get returns a ParticipantCursor entity by its id.
func (c *ParticipantCursorClient) Get(ctx context.Context, id string) (*ParticipantCursor, error) {
	return c.Query().Where(participantcursor.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ParticipantCursorClient) GetX(ctx context.Context, id string) *ParticipantCursor {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryThread queries the thread edge of a ParticipantCursor.
func (c *ParticipantCursorClient) QueryThread(_m *ParticipantCursor) *ThreadQuery {
	query := (&ThreadClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(participantcursor.Table, participantcursor.FieldID, id),
			sqlgraph.To(thread.Table, thread.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, participantcursor.ThreadTable, participantcursor.ThreadColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ParticipantCursorClient) Hooks() []Hook {
	return c.hooks.ParticipantCursor
}

// Interceptors returns the client interceptors.
func (c *ParticipantCursorClient) Interceptors() []Interceptor {
	return c.inters.ParticipantCursor
}

func (c *ParticipantCursorClient) mutate(ctx context.Context, m *ParticipantCursorMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ParticipantCursorCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ParticipantCursorUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ParticipantCursorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ParticipantCursorDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ParticipantCursor mutation op: %q", m.Op())
	}
}

// SessionRecordClient is a client for the SessionRecord schema.
type SessionRecordClient struct {
	config
}

// NewSessionRecordClient returns a client for the SessionRecord from the given config.
func NewSessionRecordClient(c config) *SessionRecordClient {
	return &SessionRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sessionrecord.Hooks(f(g(h())))`.
func (c *SessionRecordClient) Use(hooks ...Hook) {
	c.hooks.SessionRecord = append(c.hooks.SessionRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sessionrecord.Intercept(f(g(h())))`.
func (c *SessionRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.SessionRecord = append(c.inters.SessionRecord, interceptors...)
}

// Create returns a builder for creating a SessionRecord entity.
func (c *SessionRecordClient) Create() *SessionRecordCreate {
	mutation := newSessionRecordMutation(c.config, OpCreate)
	return &SessionRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SessionRecord entities.
func (c *SessionRecordClient) CreateBulk(builders ...*SessionRecordCreate) *SessionRecordCreateBulk {
	return &SessionRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SessionRecordClient) MapCreateBulk(slice any, setFunc func(*SessionRecordCreate, int)) *SessionRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SessionRecordCreateBulk{err: fmt.Errorf("calling to SessionRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SessionRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SessionRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SessionRecord.
func (c *SessionRecordClient) Update() *SessionRecordUpdate {
	mutation := newSessionRecordMutation(c.config, OpUpdate)
	return &SessionRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SessionRecordClient) UpdateOne(_m *SessionRecord) *SessionRecordUpdateOne {
	mutation := newSessionRecordMutation(c.config, OpUpdateOne, withSessionRecord(_m))
	return &SessionRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SessionRecordClient) UpdateOneID(id string) *SessionRecordUpdateOne {
	mutation := newSessionRecordMutation(c.config, OpUpdateOne, withSessionRecordID(id))
	return &SessionRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SessionRecord.
func (c *SessionRecordClient) Delete() *SessionRecordDelete {
	mutation := newSessionRecordMutation(c.config, OpDelete)
	return &SessionRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SessionRecordClient) DeleteOne(_m *SessionRecord) *SessionRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SessionRecordClient) DeleteOneID(id string) *SessionRecordDeleteOne {
	builder := c.Delete().Where(sessionrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SessionRecordDeleteOne{builder}
}

// Query returns a query builder for SessionRecord.
func (c *SessionRecordClient) Query() *SessionRecordQuery {
	return &SessionRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSessionRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a SessionRecord entity by its id.
func (c *SessionRecordClient) Get(ctx context.Context, id string) (*SessionRecord, error) {
	return c.Query().Where(sessionrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SessionRecordClient) GetX(ctx context.Context, id string) *SessionRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SessionRecordClient) Hooks() []Hook {
	return c.hooks.SessionRecord
}

// Interceptors returns the client interceptors.
func (c *SessionRecordClient) Interceptors() []Interceptor {
	return c.inters.SessionRecord
}

func (c *SessionRecordClient) mutate(ctx context.Context, m *SessionRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SessionRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SessionRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SessionRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SessionRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SessionRecord mutation op: %q", m.Op())
	}
}

// ThreadClient is a client for the Thread schema.
type ThreadClient struct {
	config
}

// NewThreadClient returns a client for the Thread from the given config.
func NewThreadClient(c config) *ThreadClient {
	return &ThreadClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `thread.Hooks(f(g(h())))`.
func (c *ThreadClient) Use(hooks ...Hook) {
	c.hooks.Thread = append(c.hooks.Thread, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `thread.Intercept(f(g(h())))`.
func (c *ThreadClient) Intercept(interceptors ...Interceptor) {
	c.inters.Thread = append(c.inters.Thread, interceptors...)
}

// Create returns a builder for creating a Thread entity.
func (c *ThreadClient) Create() *ThreadCreate {
	mutation := newThreadMutation(c.config, OpCreate)
	return &ThreadCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Thread entities.
func (c *ThreadClient) CreateBulk(builders ...*ThreadCreate) *ThreadCreateBulk {
	return &ThreadCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ThreadClient) MapCreateBulk(slice any, setFunc func(*ThreadCreate, int)) *ThreadCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ThreadCreateBulk{err: fmt.Errorf("calling to ThreadClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ThreadCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ThreadCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Thread.
func (c *ThreadClient) Update() *ThreadUpdate {
	mutation := newThreadMutation(c.config, OpUpdate)
	return &ThreadUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ThreadClient) UpdateOne(_m *Thread) *ThreadUpdateOne {
	mutation := newThreadMutation(c.config, OpUpdateOne, withThread(_m))
	return &ThreadUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ThreadClient) UpdateOneID(id string) *ThreadUpdateOne {
	mutation := newThreadMutation(c.config, OpUpdateOne, withThreadID(id))
	return &ThreadUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Thread.
func (c *ThreadClient) Delete() *ThreadDelete {
	mutation := newThreadMutation(c.config, OpDelete)
	return &ThreadDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ThreadClient) DeleteOne(_m *Thread) *ThreadDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ThreadClient) DeleteOneID(id string) *ThreadDeleteOne {
	builder := c.Delete().Where(thread.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ThreadDeleteOne{builder}
}

// Query returns a query builder for Thread.
func (c *ThreadClient) Query() *ThreadQuery {
	return &ThreadQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeThread},
		inters: c.Interceptors(),
	}
}

// Get returns a Thread entity by its id.
func (c *ThreadClient) Get(ctx context.Context, id string) (*Thread, error) {
	return c.Query().Where(thread.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ThreadClient) GetX(ctx context.Context, id string) *Thread {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryParticipants queries the participants edge of a Thread.
func (c *ThreadClient) QueryParticipants(_m *Thread) *ThreadParticipantQuery {
	query := (&ThreadParticipantClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(thread.Table, thread.FieldID, id),
			sqlgraph.To(threadparticipant.Table, threadparticipant.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, thread.ParticipantsTable, thread.ParticipantsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryMessages queries the messages edge of a Thread.
func (c *ThreadClient) QueryMessages(_m *Thread) *MessageQuery {
	query := (&MessageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(thread.Table, thread.FieldID, id),
			sqlgraph.To(message.Table, message.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, thread.MessagesTable, thread.MessagesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryCursors queries the cursors edge of a Thread.
func (c *ThreadClient) QueryCursors(_m *Thread) *ParticipantCursorQuery {
	query := (&ParticipantCursorClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(thread.Table, thread.FieldID, id),
			sqlgraph.To(participantcursor.Table, participantcursor.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, thread.CursorsTable, thread.CursorsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ThreadClient) Hooks() []Hook {
	return c.hooks.Thread
}

// Interceptors returns the client interceptors.
func (c *ThreadClient) Interceptors() []Interceptor {
	return c.inters.Thread
}

func (c *ThreadClient) mutate(ctx context.Context, m *ThreadMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ThreadCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ThreadUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ThreadUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ThreadDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Thread mutation op: %q", m.Op())
	}
}

// ThreadParticipantClient is a client for the ThreadParticipant schema.
type ThreadParticipantClient struct {
	config
}

// NewThreadParticipantClient returns a client for the ThreadParticipant from the given config.
func NewThreadParticipantClient(c config) *ThreadParticipantClient {
	return &ThreadParticipantClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `threadparticipant.Hooks(f(g(h())))`.
func (c *ThreadParticipantClient) Use(hooks ...Hook) {
	c.hooks.ThreadParticipant = append(c.hooks.ThreadParticipant, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `threadparticipant.Intercept(f(g(h())))`.
func (c *ThreadParticipantClient) Intercept(interceptors ...Interceptor) {
	c.inters.ThreadParticipant = append(c.inters.ThreadParticipant, interceptors...)
}

// Create returns a builder for creating a ThreadParticipant entity.
func (c *ThreadParticipantClient) Create() *ThreadParticipantCreate {
	mutation := newThreadParticipantMutation(c.config, OpCreate)
	return &ThreadParticipantCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ThreadParticipant entities.
func (c *ThreadParticipantClient) CreateBulk(builders ...*ThreadParticipantCreate) *ThreadParticipantCreateBulk {
	return &ThreadParticipantCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ThreadParticipantClient) MapCreateBulk(slice any, setFunc func(*ThreadParticipantCreate, int)) *ThreadParticipantCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ThreadParticipantCreateBulk{err: fmt.Errorf("calling to ThreadParticipantClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ThreadParticipantCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ThreadParticipantCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ThreadParticipant.
func (c *ThreadParticipantClient) Update() *ThreadParticipantUpdate {
	mutation := newThreadParticipantMutation(c.config, OpUpdate)
	return &ThreadParticipantUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ThreadParticipantClient) UpdateOne(_m *ThreadParticipant) *ThreadParticipantUpdateOne {
	mutation := newThreadParticipantMutation(c.config, OpUpdateOne, withThreadParticipant(_m))
	return &ThreadParticipantUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ThreadParticipantClient) UpdateOneID(id string) *ThreadParticipantUpdateOne {
	mutation := newThreadParticipantMutation(c.config, OpUpdateOne, withThreadParticipantID(id))
	return &ThreadParticipantUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ThreadParticipant.
func (c *ThreadParticipantClient) Delete() *ThreadParticipantDelete {
	mutation := newThreadParticipantMutation(c.config, OpDelete)
	return &ThreadParticipantDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ThreadParticipantClient) DeleteOne(_m *ThreadParticipant) *ThreadParticipantDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ThreadParticipantClient) DeleteOneID(id string) *ThreadParticipantDeleteOne {
	builder := c.Delete().Where(threadparticipant.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ThreadParticipantDeleteOne{builder}
}

// Query returns a query builder for ThreadParticipant.
func (c *ThreadParticipantClient) Query() *ThreadParticipantQuery {
	return &ThreadParticipantQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeThreadParticipant},
		inters: c.Interceptors(),
	}
}

// Get returns a ThreadParticipant entity by its id.
func (c *ThreadParticipantClient) Get(ctx context.Context, id string) (*ThreadParticipant, error) {
	return c.Query().Where(threadparticipant.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ThreadParticipantClient) GetX(ctx context.Context, id string) *ThreadParticipant {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryThread queries the thread edge of a ThreadParticipant.
func (c *ThreadParticipantClient) QueryThread(_m *ThreadParticipant) *ThreadQuery {
	query := (&ThreadClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(threadparticipant.Table, threadparticipant.FieldID, id),
			sqlgraph.To(thread.Table, thread.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, threadparticipant.ThreadTable, threadparticipant.ThreadColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ThreadParticipantClient) Hooks() []Hook {
	return c.hooks.ThreadParticipant
}

// Interceptors returns the client interceptors.
func (c *ThreadParticipantClient) Interceptors() []Interceptor {
	return c.inters.ThreadParticipant
}

func (c *ThreadParticipantClient) mutate(ctx context.Context, m *ThreadParticipantMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ThreadParticipantCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ThreadParticipantUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ThreadParticipantUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ThreadParticipantDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ThreadParticipant mutation op: %q", m.Op())
	}
}

// TriggerAttemptClient is a client for the TriggerAttempt schema.
type TriggerAttemptClient struct {
	config
}

// NewTriggerAttemptClient returns a client for the TriggerAttempt from the given config.
func NewTriggerAttemptClient(c config) *TriggerAttemptClient {
	return &TriggerAttemptClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `triggerattempt.Hooks(f(g(h())))`.
func (c *TriggerAttemptClient) Use(hooks ...Hook) {
	c.hooks.TriggerAttempt = append(c.hooks.TriggerAttempt, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `triggerattempt.Intercept(f(g(h())))`.
func (c *TriggerAttemptClient) Intercept(interceptors ...Interceptor) {
	c.inters.TriggerAttempt = append(c.inters.TriggerAttempt, interceptors...)
}

// Create returns a builder for creating a TriggerAttempt entity.
func (c *TriggerAttemptClient) Create() *TriggerAttemptCreate {
	mutation := newTriggerAttemptMutation(c.config, OpCreate)
	return &TriggerAttemptCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TriggerAttempt entities.
func (c *TriggerAttemptClient) CreateBulk(builders ...*TriggerAttemptCreate) *TriggerAttemptCreateBulk {
	return &TriggerAttemptCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TriggerAttemptClient) MapCreateBulk(slice any, setFunc func(*TriggerAttemptCreate, int)) *TriggerAttemptCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TriggerAttemptCreateBulk{err: fmt.Errorf("calling to TriggerAttemptClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TriggerAttemptCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TriggerAttemptCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TriggerAttempt.
func (c *TriggerAttemptClient) Update() *TriggerAttemptUpdate {
	mutation := newTriggerAttemptMutation(c.config, OpUpdate)
	return &TriggerAttemptUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TriggerAttemptClient) UpdateOne(_m *TriggerAttempt) *TriggerAttemptUpdateOne {
	mutation := newTriggerAttemptMutation(c.config, OpUpdateOne, withTriggerAttempt(_m))
	return &TriggerAttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TriggerAttemptClient) UpdateOneID(id string) *TriggerAttemptUpdateOne {
	mutation := newTriggerAttemptMutation(c.config, OpUpdateOne, withTriggerAttemptID(id))
	return &TriggerAttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TriggerAttempt.
func (c *TriggerAttemptClient) Delete() *TriggerAttemptDelete {
	mutation := newTriggerAttemptMutation(c.config, OpDelete)
	return &TriggerAttemptDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TriggerAttemptClient) DeleteOne(_m *TriggerAttempt) *TriggerAttemptDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TriggerAttemptClient) DeleteOneID(id string) *TriggerAttemptDeleteOne {
	builder := c.Delete().Where(triggerattempt.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TriggerAttemptDeleteOne{builder}
}

// Query returns a query builder for TriggerAttempt.
func (c *TriggerAttemptClient) Query() *TriggerAttemptQuery {
	return &TriggerAttemptQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTriggerAttempt},
		inters: c.Interceptors(),
	}
}

// Get returns a TriggerAttempt entity by its id.
func (c *TriggerAttemptClient) Get(ctx context.Context, id string) (*TriggerAttempt, error) {
	return c.Query().Where(triggerattempt.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TriggerAttemptClient) GetX(ctx context.Context, id string) *TriggerAttempt {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryJob queries the job edge of a TriggerAttempt.
func (c *TriggerAttemptClient) QueryJob(_m *TriggerAttempt) *TriggerJobQuery {
	query := (&TriggerJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(triggerattempt.Table, triggerattempt.FieldID, id),
			sqlgraph.To(triggerjob.Table, triggerjob.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, triggerattempt.JobTable, triggerattempt.JobColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TriggerAttemptClient) Hooks() []Hook {
	return c.hooks.TriggerAttempt
}

// Interceptors returns the client interceptors.
func (c *TriggerAttemptClient) Interceptors() []Interceptor {
	return c.inters.TriggerAttempt
}

func (c *TriggerAttemptClient) mutate(ctx context.Context, m *TriggerAttemptMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TriggerAttemptCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TriggerAttemptUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TriggerAttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TriggerAttemptDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TriggerAttempt mutation op: %q", m.Op())
	}
}

// TriggerJobClient is a client for the TriggerJob schema.
type TriggerJobClient struct {
	config
}

// NewTriggerJobClient returns a client for the TriggerJob from the given config.
func NewTriggerJobClient(c config) *TriggerJobClient {
	return &TriggerJobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `triggerjob.Hooks(f(g(h())))`.
func (c *TriggerJobClient) Use(hooks ...Hook) {
	c.hooks.TriggerJob = append(c.hooks.TriggerJob, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `triggerjob.Intercept(f(g(h())))`.
func (c *TriggerJobClient) Intercept(interceptors ...Interceptor) {
	c.inters.TriggerJob = append(c.inters.TriggerJob, interceptors...)
}

// Create returns a builder for creating a TriggerJob entity.
func (c *TriggerJobClient) Create() *TriggerJobCreate {
	mutation := newTriggerJobMutation(c.config, OpCreate)
	return &TriggerJobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TriggerJob entities.
func (c *TriggerJobClient) CreateBulk(builders ...*TriggerJobCreate) *TriggerJobCreateBulk {
	return &TriggerJobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TriggerJobClient) MapCreateBulk(slice any, setFunc func(*TriggerJobCreate, int)) *TriggerJobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TriggerJobCreateBulk{err: fmt.Errorf("calling to TriggerJobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TriggerJobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TriggerJobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TriggerJob.
func (c *TriggerJobClient) Update() *TriggerJobUpdate {
	mutation := newTriggerJobMutation(c.config, OpUpdate)
	return &TriggerJobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TriggerJobClient) UpdateOne(_m *TriggerJob) *TriggerJobUpdateOne {
	mutation := newTriggerJobMutation(c.config, OpUpdateOne, withTriggerJob(_m))
	return &TriggerJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TriggerJobClient) UpdateOneID(id string) *TriggerJobUpdateOne {
	mutation := newTriggerJobMutation(c.config, OpUpdateOne, withTriggerJobID(id))
	return &TriggerJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TriggerJob.
func (c *TriggerJobClient) Delete() *TriggerJobDelete {
	mutation := newTriggerJobMutation(c.config, OpDelete)
	return &TriggerJobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TriggerJobClient) DeleteOne(_m *TriggerJob) *TriggerJobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TriggerJobClient) DeleteOneID(id string) *TriggerJobDeleteOne {
	builder := c.Delete().Where(triggerjob.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TriggerJobDeleteOne{builder}
}

// Query returns a query builder for TriggerJob.
func (c *TriggerJobClient) Query() *TriggerJobQuery {
	return &TriggerJobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTriggerJob},
		inters: c.Interceptors(),
	}
}

// Get returns a TriggerJob entity by its id.
func (c *TriggerJobClient) Get(ctx context.Context, id string) (*TriggerJob, error) {
	return c.Query().Where(triggerjob.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TriggerJobClient) GetX(ctx context.Context, id string) *TriggerJob {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTriggerAttempts queries the trigger_attempts edge of a TriggerJob.
func (c *TriggerJobClient) QueryTriggerAttempts(_m *TriggerJob) *TriggerAttemptQuery {
	query := (&TriggerAttemptClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(triggerjob.Table, triggerjob.FieldID, id),
			sqlgraph.To(triggerattempt.Table, triggerattempt.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, triggerjob.TriggerAttemptsTable, triggerjob.TriggerAttemptsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TriggerJobClient) Hooks() []Hook {
	return c.hooks.TriggerJob
}

// Interceptors returns the client interceptors.
func (c *TriggerJobClient) Interceptors() []Interceptor {
	return c.inters.TriggerJob
}

func (c *TriggerJobClient) mutate(ctx context.Context, m *TriggerJobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TriggerJobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TriggerJobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TriggerJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TriggerJobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TriggerJob mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AuditEvent, FallbackRun, Message, ParticipantCursor, SessionRecord, Thread,
		ThreadParticipant, TriggerAttempt, TriggerJob []ent.Hook
	}
	inters struct {
		AuditEvent, FallbackRun, Message, ParticipantCursor, SessionRecord, Thread,
		ThreadParticipant, TriggerAttempt, TriggerJob []ent.Interceptor
	}
)
