// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/meera/courseforge/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/meera/courseforge/ent/coursesnapshot"
	"github.com/meera/courseforge/ent/llmrequestevent"
	"github.com/meera/courseforge/ent/transitionevent"
	"github.com/meera/courseforge/ent/validationrun"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// CourseSnapshot is the client for interacting with the CourseSnapshot builders.
	CourseSnapshot *CourseSnapshotClient
	// LLMRequestEvent is the client for interacting with the LLMRequestEvent builders.
	LLMRequestEvent *LLMRequestEventClient
	// TransitionEvent is the client for interacting with the TransitionEvent builders.
	TransitionEvent *TransitionEventClient
	// ValidationRun is the client for interacting with the ValidationRun builders.
	ValidationRun *ValidationRunClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.CourseSnapshot = NewCourseSnapshotClient(c.config)
	c.LLMRequestEvent = NewLLMRequestEventClient(c.config)
	c.TransitionEvent = NewTransitionEventClient(c.config)
	c.ValidationRun = NewValidationRunClient(c.config)
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
		ctx:             ctx,
		config:          cfg,
		CourseSnapshot:  NewCourseSnapshotClient(cfg),
		LLMRequestEvent: NewLLMRequestEventClient(cfg),
		TransitionEvent: NewTransitionEventClient(cfg),
		ValidationRun:   NewValidationRunClient(cfg),
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
		ctx:             ctx,
		config:          cfg,
		CourseSnapshot:  NewCourseSnapshotClient(cfg),
		LLMRequestEvent: NewLLMRequestEventClient(cfg),
		TransitionEvent: NewTransitionEventClient(cfg),
		ValidationRun:   NewValidationRunClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		CourseSnapshot.
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
	c.CourseSnapshot.Use(hooks...)
	c.LLMRequestEvent.Use(hooks...)
	c.TransitionEvent.Use(hooks...)
	c.ValidationRun.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.CourseSnapshot.Intercept(interceptors...)
	c.LLMRequestEvent.Intercept(interceptors...)
	c.TransitionEvent.Intercept(interceptors...)
	c.ValidationRun.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *CourseSnapshotMutation:
		return c.CourseSnapshot.mutate(ctx, m)
	case *LLMRequestEventMutation:
		return c.LLMRequestEvent.mutate(ctx, m)
	case *TransitionEventMutation:
		return c.TransitionEvent.mutate(ctx, m)
	case *ValidationRunMutation:
		return c.ValidationRun.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// CourseSnapshotClient is a client for the CourseSnapshot schema.
type CourseSnapshotClient struct {
	config
}

// NewCourseSnapshotClient returns a client for the CourseSnapshot from the given config.
func NewCourseSnapshotClient(c config) *CourseSnapshotClient {
	return &CourseSnapshotClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `coursesnapshot.Hooks(f(g(h())))`.
func (c *CourseSnapshotClient) Use(hooks ...Hook) {
	c.hooks.CourseSnapshot = append(c.hooks.CourseSnapshot, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `coursesnapshot.Intercept(f(g(h())))`.
func (c *CourseSnapshotClient) Intercept(interceptors ...Interceptor) {
	c.inters.CourseSnapshot = append(c.inters.CourseSnapshot, interceptors...)
}

// Create returns a builder for creating a CourseSnapshot entity.
func (c *CourseSnapshotClient) Create() *CourseSnapshotCreate {
	mutation := newCourseSnapshotMutation(c.config, OpCreate)
	return &CourseSnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CourseSnapshot entities.
func (c *CourseSnapshotClient) CreateBulk(builders ...*CourseSnapshotCreate) *CourseSnapshotCreateBulk {
	return &CourseSnapshotCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CourseSnapshotClient) MapCreateBulk(slice any, setFunc func(*CourseSnapshotCreate, int)) *CourseSnapshotCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CourseSnapshotCreateBulk{err: fmt.Errorf("calling to CourseSnapshotClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CourseSnapshotCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CourseSnapshotCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CourseSnapshot.
func (c *CourseSnapshotClient) Update() *CourseSnapshotUpdate {
	mutation := newCourseSnapshotMutation(c.config, OpUpdate)
	return &CourseSnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CourseSnapshotClient) UpdateOne(_m *CourseSnapshot) *CourseSnapshotUpdateOne {
	mutation := newCourseSnapshotMutation(c.config, OpUpdateOne, withCourseSnapshot(_m))
	return &CourseSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CourseSnapshotClient) UpdateOneID(id int) *CourseSnapshotUpdateOne {
	mutation := newCourseSnapshotMutation(c.config, OpUpdateOne, withCourseSnapshotID(id))
	return &CourseSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CourseSnapshot.
func (c *CourseSnapshotClient) Delete() *CourseSnapshotDelete {
	mutation := newCourseSnapshotMutation(c.config, OpDelete)
	return &CourseSnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CourseSnapshotClient) DeleteOne(_m *CourseSnapshot) *CourseSnapshotDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CourseSnapshotClient) DeleteOneID(id int) *CourseSnapshotDeleteOne {
	builder := c.Delete().Where(coursesnapshot.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CourseSnapshotDeleteOne{builder}
}

// Query returns a query builder for CourseSnapshot.
func (c *CourseSnapshotClient) Query() *CourseSnapshotQuery {
	return &CourseSnapshotQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCourseSnapshot},
		inters: c.Interceptors(),
	}
}

// Get returns a CourseSnapshot entity by its id.
func (c *CourseSnapshotClient) Get(ctx context.Context, id int) (*CourseSnapshot, error) {
	return c.Query().Where(coursesnapshot.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CourseSnapshotClient) GetX(ctx context.Context, id int) *CourseSnapshot {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CourseSnapshotClient) Hooks() []Hook {
	return c.hooks.CourseSnapshot
}

// Interceptors returns the client interceptors.
func (c *CourseSnapshotClient) Interceptors() []Interceptor {
	return c.inters.CourseSnapshot
}

func (c *CourseSnapshotClient) mutate(ctx context.Context, m *CourseSnapshotMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CourseSnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CourseSnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CourseSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CourseSnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CourseSnapshot mutation op: %q", m.Op())
	}
}

// LLMRequestEventClient is a client for the LLMRequestEvent schema.
type LLMRequestEventClient struct {
	config
}

// NewLLMRequestEventClient returns a client for the LLMRequestEvent from the given config.
func NewLLMRequestEventClient(c config) *LLMRequestEventClient {
	return &LLMRequestEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `llmrequestevent.Hooks(f(g(h())))`.
func (c *LLMRequestEventClient) Use(hooks ...Hook) {
	c.hooks.LLMRequestEvent = append(c.hooks.LLMRequestEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `llmrequestevent.Intercept(f(g(h())))`.
func (c *LLMRequestEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.LLMRequestEvent = append(c.inters.LLMRequestEvent, interceptors...)
}

// Create returns a builder for creating a LLMRequestEvent entity.
func (c *LLMRequestEventClient) Create() *LLMRequestEventCreate {
	mutation := newLLMRequestEventMutation(c.config, OpCreate)
	return &LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LLMRequestEvent entities.
func (c *LLMRequestEventClient) CreateBulk(builders ...*LLMRequestEventCreate) *LLMRequestEventCreateBulk {
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LLMRequestEventClient) MapCreateBulk(slice any, setFunc func(*LLMRequestEventCreate, int)) *LLMRequestEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LLMRequestEventCreateBulk{err: fmt.Errorf("calling to LLMRequestEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LLMRequestEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Update() *LLMRequestEventUpdate {
	mutation := newLLMRequestEventMutation(c.config, OpUpdate)
	return &LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LLMRequestEventClient) UpdateOne(_m *LLMRequestEvent) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEvent(_m))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LLMRequestEventClient) UpdateOneID(id int) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEventID(id))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Delete() *LLMRequestEventDelete {
	mutation := newLLMRequestEventMutation(c.config, OpDelete)
	return &LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LLMRequestEventClient) DeleteOne(_m *LLMRequestEvent) *LLMRequestEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LLMRequestEventClient) DeleteOneID(id int) *LLMRequestEventDeleteOne {
	builder := c.Delete().Where(llmrequestevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LLMRequestEventDeleteOne{builder}
}

// Query returns a query builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Query() *LLMRequestEventQuery {
	return &LLMRequestEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLLMRequestEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a LLMRequestEvent entity by its id.
func (c *LLMRequestEventClient) Get(ctx context.Context, id int) (*LLMRequestEvent, error) {
	return c.Query().Where(llmrequestevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LLMRequestEventClient) GetX(ctx context.Context, id int) *LLMRequestEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LLMRequestEventClient) Hooks() []Hook {
	return c.hooks.LLMRequestEvent
}

// Interceptors returns the client interceptors.
func (c *LLMRequestEventClient) Interceptors() []Interceptor {
	return c.inters.LLMRequestEvent
}

func (c *LLMRequestEventClient) mutate(ctx context.Context, m *LLMRequestEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LLMRequestEvent mutation op: %q", m.Op())
	}
}

// TransitionEventClient is a client for the TransitionEvent schema.
type TransitionEventClient struct {
	config
}

// NewTransitionEventClient returns a client for the TransitionEvent from the given config.
func NewTransitionEventClient(c config) *TransitionEventClient {
	return &TransitionEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `transitionevent.Hooks(f(g(h())))`.
func (c *TransitionEventClient) Use(hooks ...Hook) {
	c.hooks.TransitionEvent = append(c.hooks.TransitionEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `transitionevent.Intercept(f(g(h())))`.
func (c *TransitionEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.TransitionEvent = append(c.inters.TransitionEvent, interceptors...)
}

// Create returns a builder for creating a TransitionEvent entity.
func (c *TransitionEventClient) Create() *TransitionEventCreate {
	mutation := newTransitionEventMutation(c.config, OpCreate)
	return &TransitionEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TransitionEvent entities.
func (c *TransitionEventClient) CreateBulk(builders ...*TransitionEventCreate) *TransitionEventCreateBulk {
	return &TransitionEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TransitionEventClient) MapCreateBulk(slice any, setFunc func(*TransitionEventCreate, int)) *TransitionEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TransitionEventCreateBulk{err: fmt.Errorf("calling to TransitionEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TransitionEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TransitionEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TransitionEvent.
func (c *TransitionEventClient) Update() *TransitionEventUpdate {
	mutation := newTransitionEventMutation(c.config, OpUpdate)
	return &TransitionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TransitionEventClient) UpdateOne(_m *TransitionEvent) *TransitionEventUpdateOne {
	mutation := newTransitionEventMutation(c.config, OpUpdateOne, withTransitionEvent(_m))
	return &TransitionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TransitionEventClient) UpdateOneID(id int) *TransitionEventUpdateOne {
	mutation := newTransitionEventMutation(c.config, OpUpdateOne, withTransitionEventID(id))
	return &TransitionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TransitionEvent.
func (c *TransitionEventClient) Delete() *TransitionEventDelete {
	mutation := newTransitionEventMutation(c.config, OpDelete)
	return &TransitionEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TransitionEventClient) DeleteOne(_m *TransitionEvent) *TransitionEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TransitionEventClient) DeleteOneID(id int) *TransitionEventDeleteOne {
	builder := c.Delete().Where(transitionevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TransitionEventDeleteOne{builder}
}

// Query returns a query builder for TransitionEvent.
func (c *TransitionEventClient) Query() *TransitionEventQuery {
	return &TransitionEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTransitionEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a TransitionEvent entity by its id.
func (c *TransitionEventClient) Get(ctx context.Context, id int) (*TransitionEvent, error) {
	return c.Query().Where(transitionevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TransitionEventClient) GetX(ctx context.Context, id int) *TransitionEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TransitionEventClient) Hooks() []Hook {
	return c.hooks.TransitionEvent
}

// Interceptors returns the client interceptors.
func (c *TransitionEventClient) Interceptors() []Interceptor {
	return c.inters.TransitionEvent
}

func (c *TransitionEventClient) mutate(ctx context.Context, m *TransitionEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TransitionEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TransitionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TransitionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TransitionEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TransitionEvent mutation op: %q", m.Op())
	}
}

// ValidationRunClient is a client for the ValidationRun schema.
type ValidationRunClient struct {
	config
}

// NewValidationRunClient returns a client for the ValidationRun from the given config.
func NewValidationRunClient(c config) *ValidationRunClient {
	return &ValidationRunClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `validationrun.Hooks(f(g(h())))`.
func (c *ValidationRunClient) Use(hooks ...Hook) {
	c.hooks.ValidationRun = append(c.hooks.ValidationRun, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `validationrun.Intercept(f(g(h())))`.
func (c *ValidationRunClient) Intercept(interceptors ...Interceptor) {
	c.inters.ValidationRun = append(c.inters.ValidationRun, interceptors...)
}

// Create returns a builder for creating a ValidationRun entity.
func (c *ValidationRunClient) Create() *ValidationRunCreate {
	mutation := newValidationRunMutation(c.config, OpCreate)
	return &ValidationRunCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ValidationRun entities.
func (c *ValidationRunClient) CreateBulk(builders ...*ValidationRunCreate) *ValidationRunCreateBulk {
	return &ValidationRunCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ValidationRunClient) MapCreateBulk(slice any, setFunc func(*ValidationRunCreate, int)) *ValidationRunCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ValidationRunCreateBulk{err: fmt.Errorf("calling to ValidationRunClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ValidationRunCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ValidationRunCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ValidationRun.
func (c *ValidationRunClient) Update() *ValidationRunUpdate {
	mutation := newValidationRunMutation(c.config, OpUpdate)
	return &ValidationRunUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ValidationRunClient) UpdateOne(_m *ValidationRun) *ValidationRunUpdateOne {
	mutation := newValidationRunMutation(c.config, OpUpdateOne, withValidationRun(_m))
	return &ValidationRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ValidationRunClient) UpdateOneID(id int) *ValidationRunUpdateOne {
	mutation := newValidationRunMutation(c.config, OpUpdateOne, withValidationRunID(id))
	return &ValidationRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ValidationRun.
func (c *ValidationRunClient) Delete() *ValidationRunDelete {
	mutation := newValidationRunMutation(c.config, OpDelete)
	return &ValidationRunDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ValidationRunClient) DeleteOne(_m *ValidationRun) *ValidationRunDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ValidationRunClient) DeleteOneID(id int) *ValidationRunDeleteOne {
	builder := c.Delete().Where(validationrun.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ValidationRunDeleteOne{builder}
}

// Query returns a query builder for ValidationRun.
func (c *ValidationRunClient) Query() *ValidationRunQuery {
	return &ValidationRunQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeValidationRun},
		inters: c.Interceptors(),
	}
}

// Get returns a ValidationRun entity by its id.
func (c *ValidationRunClient) Get(ctx context.Context, id int) (*ValidationRun, error) {
	return c.Query().Where(validationrun.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ValidationRunClient) GetX(ctx context.Context, id int) *ValidationRun {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ValidationRunClient) Hooks() []Hook {
	return c.hooks.ValidationRun
}

// Interceptors returns the client interceptors.
func (c *ValidationRunClient) Interceptors() []Interceptor {
	return c.inters.ValidationRun
}

func (c *ValidationRunClient) mutate(ctx context.Context, m *ValidationRunMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ValidationRunCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ValidationRunUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ValidationRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ValidationRunDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ValidationRun mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		CourseSnapshot, LLMRequestEvent, TransitionEvent, ValidationRun []ent.Hook
	}
	inters struct {
		CourseSnapshot, LLMRequestEvent, TransitionEvent,
		ValidationRun []ent.Interceptor
	}
)
