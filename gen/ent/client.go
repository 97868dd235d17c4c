// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/policypulse/policypulse/gen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/policypulse/policypulse/gen/ent/analysisjob"
	"github.com/policypulse/policypulse/gen/ent/analysisversion"
	"github.com/policypulse/policypulse/gen/ent/legislation"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AnalysisJob is the client for interacting with the AnalysisJob builders.
	AnalysisJob *AnalysisJobClient
	// AnalysisVersion is the client for interacting with the AnalysisVersion builders.
	AnalysisVersion *AnalysisVersionClient
	// Legislation is the client for interacting with the Legislation builders.
	Legislation *LegislationClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AnalysisJob = NewAnalysisJobClient(c.config)
	c.AnalysisVersion = NewAnalysisVersionClient(c.config)
	c.Legislation = NewLegislationClient(c.config)
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
		AnalysisJob:     NewAnalysisJobClient(cfg),
		AnalysisVersion: NewAnalysisVersionClient(cfg),
		Legislation:     NewLegislationClient(cfg),
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
		AnalysisJob:     NewAnalysisJobClient(cfg),
		AnalysisVersion: NewAnalysisVersionClient(cfg),
		Legislation:     NewLegislationClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AnalysisJob.
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
	c.AnalysisJob.Use(hooks...)
	c.AnalysisVersion.Use(hooks...)
	c.Legislation.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.AnalysisJob.Intercept(interceptors...)
	c.AnalysisVersion.Intercept(interceptors...)
	c.Legislation.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AnalysisJobMutation:
		return c.AnalysisJob.mutate(ctx, m)
	case *AnalysisVersionMutation:
		return c.AnalysisVersion.mutate(ctx, m)
	case *LegislationMutation:
		return c.Legislation.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AnalysisJobClient is a client for the AnalysisJob schema.
type AnalysisJobClient struct {
	config
}

// NewAnalysisJobClient returns a client for the AnalysisJob from the given config.
func NewAnalysisJobClient(c config) *AnalysisJobClient {
	return &AnalysisJobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `analysisjob.Hooks(f(g(h())))`.
func (c *AnalysisJobClient) Use(hooks ...Hook) {
	c.hooks.AnalysisJob = append(c.hooks.AnalysisJob, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `analysisjob.Intercept(f(g(h())))`.
func (c *AnalysisJobClient) Intercept(interceptors ...Interceptor) {
	c.inters.AnalysisJob = append(c.inters.AnalysisJob, interceptors...)
}

// Create returns a builder for creating a AnalysisJob entity.
func (c *AnalysisJobClient) Create() *AnalysisJobCreate {
	mutation := newAnalysisJobMutation(c.config, OpCreate)
	return &AnalysisJobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AnalysisJob entities.
func (c *AnalysisJobClient) CreateBulk(builders ...*AnalysisJobCreate) *AnalysisJobCreateBulk {
	return &AnalysisJobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AnalysisJobClient) MapCreateBulk(slice any, setFunc func(*AnalysisJobCreate, int)) *AnalysisJobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AnalysisJobCreateBulk{err: fmt.Errorf("calling to AnalysisJobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AnalysisJobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AnalysisJobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AnalysisJob.
func (c *AnalysisJobClient) Update() *AnalysisJobUpdate {
	mutation := newAnalysisJobMutation(c.config, OpUpdate)
	return &AnalysisJobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AnalysisJobClient) UpdateOne(_m *AnalysisJob) *AnalysisJobUpdateOne {
	mutation := newAnalysisJobMutation(c.config, OpUpdateOne, withAnalysisJob(_m))
	return &AnalysisJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AnalysisJobClient) UpdateOneID(id uuid.UUID) *AnalysisJobUpdateOne {
	mutation := newAnalysisJobMutation(c.config, OpUpdateOne, withAnalysisJobID(id))
	return &AnalysisJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AnalysisJob.
func (c *AnalysisJobClient) Delete() *AnalysisJobDelete {
	mutation := newAnalysisJobMutation(c.config, OpDelete)
	return &AnalysisJobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AnalysisJobClient) DeleteOne(_m *AnalysisJob) *AnalysisJobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AnalysisJobClient) DeleteOneID(id uuid.UUID) *AnalysisJobDeleteOne {
	builder := c.Delete().Where(analysisjob.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AnalysisJobDeleteOne{builder}
}

// Query returns a query builder for AnalysisJob.
func (c *AnalysisJobClient) Query() *AnalysisJobQuery {
	return &AnalysisJobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAnalysisJob},
		inters: c.Interceptors(),
	}
}

// Get returns a AnalysisJob entity by its id.
func (c *AnalysisJobClient) Get(ctx context.Context, id uuid.UUID) (*AnalysisJob, error) {
	return c.Query().Where(analysisjob.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AnalysisJobClient) GetX(ctx context.Context, id uuid.UUID) *AnalysisJob {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryLegislation queries the legislation edge of a AnalysisJob.
func (c *AnalysisJobClient) QueryLegislation(_m *AnalysisJob) *LegislationQuery {
	query := (&LegislationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(analysisjob.Table, analysisjob.FieldID, id),
			sqlgraph.To(legislation.Table, legislation.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, analysisjob.LegislationTable, analysisjob.LegislationColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AnalysisJobClient) Hooks() []Hook {
	return c.hooks.AnalysisJob
}

// Interceptors returns the client interceptors.
func (c *AnalysisJobClient) Interceptors() []Interceptor {
	return c.inters.AnalysisJob
}

func (c *AnalysisJobClient) mutate(ctx context.Context, m *AnalysisJobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AnalysisJobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AnalysisJobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AnalysisJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AnalysisJobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AnalysisJob mutation op: %q", m.Op())
	}
}

// AnalysisVersionClient is a client for the AnalysisVersion schema.
type AnalysisVersionClient struct {
	config
}

// NewAnalysisVersionClient returns a client for the AnalysisVersion from the given config.
func NewAnalysisVersionClient(c config) *AnalysisVersionClient {
	return &AnalysisVersionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `analysisversion.Hooks(f(g(h())))`.
func (c *AnalysisVersionClient) Use(hooks ...Hook) {
	c.hooks.AnalysisVersion = append(c.hooks.AnalysisVersion, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `analysisversion.Intercept(f(g(h())))`.
func (c *AnalysisVersionClient) Intercept(interceptors ...Interceptor) {
	c.inters.AnalysisVersion = append(c.inters.AnalysisVersion, interceptors...)
}

// Create returns a builder for creating a AnalysisVersion entity.
func (c *AnalysisVersionClient) Create() *AnalysisVersionCreate {
	mutation := newAnalysisVersionMutation(c.config, OpCreate)
	return &AnalysisVersionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AnalysisVersion entities.
func (c *AnalysisVersionClient) CreateBulk(builders ...*AnalysisVersionCreate) *AnalysisVersionCreateBulk {
	return &AnalysisVersionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AnalysisVersionClient) MapCreateBulk(slice any, setFunc func(*AnalysisVersionCreate, int)) *AnalysisVersionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AnalysisVersionCreateBulk{err: fmt.Errorf("calling to AnalysisVersionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AnalysisVersionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AnalysisVersionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AnalysisVersion.
func (c *AnalysisVersionClient) Update() *AnalysisVersionUpdate {
	mutation := newAnalysisVersionMutation(c.config, OpUpdate)
	return &AnalysisVersionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AnalysisVersionClient) UpdateOne(_m *AnalysisVersion) *AnalysisVersionUpdateOne {
	mutation := newAnalysisVersionMutation(c.config, OpUpdateOne, withAnalysisVersion(_m))
	return &AnalysisVersionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AnalysisVersionClient) UpdateOneID(id uuid.UUID) *AnalysisVersionUpdateOne {
	mutation := newAnalysisVersionMutation(c.config, OpUpdateOne, withAnalysisVersionID(id))
	return &AnalysisVersionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AnalysisVersion.
func (c *AnalysisVersionClient) Delete() *AnalysisVersionDelete {
	mutation := newAnalysisVersionMutation(c.config, OpDelete)
	return &AnalysisVersionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AnalysisVersionClient) DeleteOne(_m *AnalysisVersion) *AnalysisVersionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AnalysisVersionClient) DeleteOneID(id uuid.UUID) *AnalysisVersionDeleteOne {
	builder := c.Delete().Where(analysisversion.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AnalysisVersionDeleteOne{builder}
}

// Query returns a query builder for AnalysisVersion.
func (c *AnalysisVersionClient) Query() *AnalysisVersionQuery {
	return &AnalysisVersionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAnalysisVersion},
		inters: c.Interceptors(),
	}
}

// Get returns a AnalysisVersion entity by its id.
func (c *AnalysisVersionClient) Get(ctx context.Context, id uuid.UUID) (*AnalysisVersion, error) {
	return c.Query().Where(analysisversion.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AnalysisVersionClient) GetX(ctx context.Context, id uuid.UUID) *AnalysisVersion {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryLegislation queries the legislation edge of a AnalysisVersion.
func (c *AnalysisVersionClient) QueryLegislation(_m *AnalysisVersion) *LegislationQuery {
	query := (&LegislationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(analysisversion.Table, analysisversion.FieldID, id),
			sqlgraph.To(legislation.Table, legislation.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, analysisversion.LegislationTable, analysisversion.LegislationColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AnalysisVersionClient) Hooks() []Hook {
	return c.hooks.AnalysisVersion
}

// Interceptors returns the client interceptors.
func (c *AnalysisVersionClient) Interceptors() []Interceptor {
	return c.inters.AnalysisVersion
}

func (c *AnalysisVersionClient) mutate(ctx context.Context, m *AnalysisVersionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AnalysisVersionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AnalysisVersionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AnalysisVersionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AnalysisVersionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AnalysisVersion mutation op: %q", m.Op())
	}
}

// LegislationClient is a client for the Legislation schema.
type LegislationClient struct {
	config
}

// NewLegislationClient returns a client for the Legislation from the given config.
func NewLegislationClient(c config) *LegislationClient {
	return &LegislationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `legislation.Hooks(f(g(h())))`.
func (c *LegislationClient) Use(hooks ...Hook) {
	c.hooks.Legislation = append(c.hooks.Legislation, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `legislation.Intercept(f(g(h())))`.
func (c *LegislationClient) Intercept(interceptors ...Interceptor) {
	c.inters.Legislation = append(c.inters.Legislation, interceptors...)
}

// Create returns a builder for creating a Legislation entity.
func (c *LegislationClient) Create() *LegislationCreate {
	mutation := newLegislationMutation(c.config, OpCreate)
	return &LegislationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Legislation entities.
func (c *LegislationClient) CreateBulk(builders ...*LegislationCreate) *LegislationCreateBulk {
	return &LegislationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LegislationClient) MapCreateBulk(slice any, setFunc func(*LegislationCreate, int)) *LegislationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LegislationCreateBulk{err: fmt.Errorf("calling to LegislationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LegislationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LegislationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Legislation.
func (c *LegislationClient) Update() *LegislationUpdate {
	mutation := newLegislationMutation(c.config, OpUpdate)
	return &LegislationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LegislationClient) UpdateOne(_m *Legislation) *LegislationUpdateOne {
	mutation := newLegislationMutation(c.config, OpUpdateOne, withLegislation(_m))
	return &LegislationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LegislationClient) UpdateOneID(id uuid.UUID) *LegislationUpdateOne {
	mutation := newLegislationMutation(c.config, OpUpdateOne, withLegislationID(id))
	return &LegislationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Legislation.
func (c *LegislationClient) Delete() *LegislationDelete {
	mutation := newLegislationMutation(c.config, OpDelete)
	return &LegislationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LegislationClient) DeleteOne(_m *Legislation) *LegislationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LegislationClient) DeleteOneID(id uuid.UUID) *LegislationDeleteOne {
	builder := c.Delete().Where(legislation.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LegislationDeleteOne{builder}
}

// Query returns a query builder for Legislation.
func (c *LegislationClient) Query() *LegislationQuery {
	return &LegislationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLegislation},
		inters: c.Interceptors(),
	}
}

// Get returns a Legislation entity by its id.
func (c *LegislationClient) Get(ctx context.Context, id uuid.UUID) (*Legislation, error) {
	return c.Query().Where(legislation.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LegislationClient) GetX(ctx context.Context, id uuid.UUID) *Legislation {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryVersions queries the versions edge of a Legislation.
func (c *LegislationClient) QueryVersions(_m *Legislation) *AnalysisVersionQuery {
	query := (&AnalysisVersionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(legislation.Table, legislation.FieldID, id),
			sqlgraph.To(analysisversion.Table, analysisversion.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, legislation.VersionsTable, legislation.VersionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryJobs queries the jobs edge of a Legislation.
func (c *LegislationClient) QueryJobs(_m *Legislation) *AnalysisJobQuery {
	query := (&AnalysisJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(legislation.Table, legislation.FieldID, id),
			sqlgraph.To(analysisjob.Table, analysisjob.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, legislation.JobsTable, legislation.JobsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *LegislationClient) Hooks() []Hook {
	return c.hooks.Legislation
}

// Interceptors returns the client interceptors.
func (c *LegislationClient) Interceptors() []Interceptor {
	return c.inters.Legislation
}

func (c *LegislationClient) mutate(ctx context.Context, m *LegislationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LegislationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LegislationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LegislationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LegislationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Legislation mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AnalysisJob, AnalysisVersion, Legislation []ent.Hook
	}
	inters struct {
		AnalysisJob, AnalysisVersion, Legislation []ent.Interceptor
	}
)
