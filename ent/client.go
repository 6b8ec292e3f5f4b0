// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/gearbox-dev/gearbox/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/gearbox-dev/gearbox/ent/costdaily"
	"github.com/gearbox-dev/gearbox/ent/gear"
	"github.com/gearbox-dev/gearbox/ent/job"
	"github.com/gearbox-dev/gearbox/ent/llmcall"
	"github.com/gearbox-dev/gearbox/ent/standingrule"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// CostDaily is the client for interacting with the CostDaily builders.
	CostDaily *CostDailyClient
	// Gear is the client for interacting with the Gear builders.
	Gear *GearClient
	// Job is the client for interacting with the Job builders.
	Job *JobClient
	// LLMCall is the client for interacting with the LLMCall builders.
	LLMCall *LLMCallClient
	// StandingRule is the client for interacting with the StandingRule builders.
	StandingRule *StandingRuleClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.CostDaily = NewCostDailyClient(c.config)
	c.Gear = NewGearClient(c.config)
	c.Job = NewJobClient(c.config)
	c.LLMCall = NewLLMCallClient(c.config)
	c.StandingRule = NewStandingRuleClient(c.config)
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
		ctx:          ctx,
		config:       cfg,
		CostDaily:    NewCostDailyClient(cfg),
		Gear:         NewGearClient(cfg),
		Job:          NewJobClient(cfg),
		LLMCall:      NewLLMCallClient(cfg),
		StandingRule: NewStandingRuleClient(cfg),
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
		ctx:          ctx,
		config:       cfg,
		CostDaily:    NewCostDailyClient(cfg),
		Gear:         NewGearClient(cfg),
		Job:          NewJobClient(cfg),
		LLMCall:      NewLLMCallClient(cfg),
		StandingRule: NewStandingRuleClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		CostDaily.
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
	c.CostDaily.Use(hooks...)
	c.Gear.Use(hooks...)
	c.Job.Use(hooks...)
	c.LLMCall.Use(hooks...)
	c.StandingRule.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.CostDaily.Intercept(interceptors...)
	c.Gear.Intercept(interceptors...)
	c.Job.Intercept(interceptors...)
	c.LLMCall.Intercept(interceptors...)
	c.StandingRule.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *CostDailyMutation:
		return c.CostDaily.mutate(ctx, m)
	case *GearMutation:
		return c.Gear.mutate(ctx, m)
	case *JobMutation:
		return c.Job.mutate(ctx, m)
	case *LLMCallMutation:
		return c.LLMCall.mutate(ctx, m)
	case *StandingRuleMutation:
		return c.StandingRule.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// CostDailyClient is a client for the CostDaily schema.
type CostDailyClient struct {
	config
}

// NewCostDailyClient returns a client for the CostDaily from the given config.
func NewCostDailyClient(c config) *CostDailyClient {
	return &CostDailyClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `costdaily.Hooks(f(g(h())))`.
func (c *CostDailyClient) Use(hooks ...Hook) {
	c.hooks.CostDaily = append(c.hooks.CostDaily, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `costdaily.Intercept(f(g(h())))`.
func (c *CostDailyClient) Intercept(interceptors ...Interceptor) {
	c.inters.CostDaily = append(c.inters.CostDaily, interceptors...)
}

// Create returns a builder for creating a CostDaily entity.
func (c *CostDailyClient) Create() *CostDailyCreate {
	mutation := newCostDailyMutation(c.config, OpCreate)
	return &CostDailyCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CostDaily entities.
func (c *CostDailyClient) CreateBulk(builders ...*CostDailyCreate) *CostDailyCreateBulk {
	return &CostDailyCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CostDailyClient) MapCreateBulk(slice any, setFunc func(*CostDailyCreate, int)) *CostDailyCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CostDailyCreateBulk{err: fmt.Errorf("calling to CostDailyClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CostDailyCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CostDailyCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CostDaily.
func (c *CostDailyClient) Update() *CostDailyUpdate {
	mutation := newCostDailyMutation(c.config, OpUpdate)
	return &CostDailyUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CostDailyClient) UpdateOne(_m *CostDaily) *CostDailyUpdateOne {
	mutation := newCostDailyMutation(c.config, OpUpdateOne, withCostDaily(_m))
	return &CostDailyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CostDailyClient) UpdateOneID(id string) *CostDailyUpdateOne {
	mutation := newCostDailyMutation(c.config, OpUpdateOne, withCostDailyID(id))
	return &CostDailyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CostDaily.
func (c *CostDailyClient) Delete() *CostDailyDelete {
	mutation := newCostDailyMutation(c.config, OpDelete)
	return &CostDailyDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CostDailyClient) DeleteOne(_m *CostDaily) *CostDailyDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CostDailyClient) DeleteOneID(id string) *CostDailyDeleteOne {
	builder := c.Delete().Where(costdaily.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CostDailyDeleteOne{builder}
}

// Query returns a query builder for CostDaily.
func (c *CostDailyClient) Query() *CostDailyQuery {
	return &CostDailyQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCostDaily},
		inters: c.Interceptors(),
	}
}

// Get returns a CostDaily entity by its id.
func (c *CostDailyClient) Get(ctx context.Context, id string) (*CostDaily, error) {
	return c.Query().Where(costdaily.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CostDailyClient) GetX(ctx context.Context, id string) *CostDaily {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CostDailyClient) Hooks() []Hook {
	return c.hooks.CostDaily
}

// Interceptors returns the client interceptors.
func (c *CostDailyClient) Interceptors() []Interceptor {
	return c.inters.CostDaily
}

func (c *CostDailyClient) mutate(ctx context.Context, m *CostDailyMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CostDailyCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CostDailyUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CostDailyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CostDailyDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CostDaily mutation op: %q", m.Op())
	}
}

// GearClient is a client for the Gear schema.
type GearClient struct {
	config
}

// NewGearClient returns a client for the Gear from the given config.
func NewGearClient(c config) *GearClient {
	return &GearClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `gear.Hooks(f(g(h())))`.
func (c *GearClient) Use(hooks ...Hook) {
	c.hooks.Gear = append(c.hooks.Gear, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `gear.Intercept(f(g(h())))`.
func (c *GearClient) Intercept(interceptors ...Interceptor) {
	c.inters.Gear = append(c.inters.Gear, interceptors...)
}

// Create returns a builder for creating a Gear entity.
func (c *GearClient) Create() *GearCreate {
	mutation := newGearMutation(c.config, OpCreate)
	return &GearCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Gear entities.
func (c *GearClient) CreateBulk(builders ...*GearCreate) *GearCreateBulk {
	return &GearCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *GearClient) MapCreateBulk(slice any, setFunc func(*GearCreate, int)) *GearCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &GearCreateBulk{err: fmt.Errorf("calling to GearClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*GearCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &GearCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Gear.
func (c *GearClient) Update() *GearUpdate {
	mutation := newGearMutation(c.config, OpUpdate)
	return &GearUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *GearClient) UpdateOne(_m *Gear) *GearUpdateOne {
	mutation := newGearMutation(c.config, OpUpdateOne, withGear(_m))
	return &GearUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *GearClient) UpdateOneID(id string) *GearUpdateOne {
	mutation := newGearMutation(c.config, OpUpdateOne, withGearID(id))
	return &GearUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Gear.
func (c *GearClient) Delete() *GearDelete {
	mutation := newGearMutation(c.config, OpDelete)
	return &GearDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *GearClient) DeleteOne(_m *Gear) *GearDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *GearClient) DeleteOneID(id string) *GearDeleteOne {
	builder := c.Delete().Where(gear.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &GearDeleteOne{builder}
}

// Query returns a query builder for Gear.
func (c *GearClient) Query() *GearQuery {
	return &GearQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeGear},
		inters: c.Interceptors(),
	}
}

// Get returns a Gear entity by its id.
func (c *GearClient) Get(ctx context.Context, id string) (*Gear, error) {
	return c.Query().Where(gear.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *GearClient) GetX(ctx context.Context, id string) *Gear {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *GearClient) Hooks() []Hook {
	return c.hooks.Gear
}

// Interceptors returns the client interceptors.
func (c *GearClient) Interceptors() []Interceptor {
	return c.inters.Gear
}

func (c *GearClient) mutate(ctx context.Context, m *GearMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&GearCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&GearUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&GearUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&GearDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Gear mutation op: %q", m.Op())
	}
}

// JobClient is a client for the Job schema.
type JobClient struct {
	config
}

// NewJobClient returns a client for the Job from the given config.
func NewJobClient(c config) *JobClient {
	return &JobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `job.Hooks(f(g(h())))`.
func (c *JobClient) Use(hooks ...Hook) {
	c.hooks.Job = append(c.hooks.Job, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `job.Intercept(f(g(h())))`.
func (c *JobClient) Intercept(interceptors ...Interceptor) {
	c.inters.Job = append(c.inters.Job, interceptors...)
}

// Create returns a builder for creating a Job entity.
func (c *JobClient) Create() *JobCreate {
	mutation := newJobMutation(c.config, OpCreate)
	return &JobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Job entities.
func (c *JobClient) CreateBulk(builders ...*JobCreate) *JobCreateBulk {
	return &JobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *JobClient) MapCreateBulk(slice any, setFunc func(*JobCreate, int)) *JobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &JobCreateBulk{err: fmt.Errorf("calling to JobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*JobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &JobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Job.
func (c *JobClient) Update() *JobUpdate {
	mutation := newJobMutation(c.config, OpUpdate)
	return &JobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *JobClient) UpdateOne(_m *Job) *JobUpdateOne {
	mutation := newJobMutation(c.config, OpUpdateOne, withJob(_m))
	return &JobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *JobClient) UpdateOneID(id string) *JobUpdateOne {
	mutation := newJobMutation(c.config, OpUpdateOne, withJobID(id))
	return &JobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Job.
func (c *JobClient) Delete() *JobDelete {
	mutation := newJobMutation(c.config, OpDelete)
	return &JobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *JobClient) DeleteOne(_m *Job) *JobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *JobClient) DeleteOneID(id string) *JobDeleteOne {
	builder := c.Delete().Where(job.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &JobDeleteOne{builder}
}

// Query returns a query builder for Job.
func (c *JobClient) Query() *JobQuery {
	return &JobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeJob},
		inters: c.Interceptors(),
	}
}

// Get returns a Job entity by its id.
func (c *JobClient) Get(ctx context.Context, id string) (*Job, error) {
	return c.Query().Where(job.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *JobClient) GetX(ctx context.Context, id string) *Job {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *JobClient) Hooks() []Hook {
	return c.hooks.Job
}

// Interceptors returns the client interceptors.
func (c *JobClient) Interceptors() []Interceptor {
	return c.inters.Job
}

func (c *JobClient) mutate(ctx context.Context, m *JobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&JobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&JobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&JobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&JobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Job mutation op: %q", m.Op())
	}
}

// LLMCallClient is a client for the LLMCall schema.
type LLMCallClient struct {
	config
}

// NewLLMCallClient returns a client for the LLMCall from the given config.
func NewLLMCallClient(c config) *LLMCallClient {
	return &LLMCallClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `llmcall.Hooks(f(g(h())))`.
func (c *LLMCallClient) Use(hooks ...Hook) {
	c.hooks.LLMCall = append(c.hooks.LLMCall, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `llmcall.Intercept(f(g(h())))`.
func (c *LLMCallClient) Intercept(interceptors ...Interceptor) {
	c.inters.LLMCall = append(c.inters.LLMCall, interceptors...)
}

// Create returns a builder for creating a LLMCall entity.
func (c *LLMCallClient) Create() *LLMCallCreate {
	mutation := newLLMCallMutation(c.config, OpCreate)
	return &LLMCallCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LLMCall entities.
func (c *LLMCallClient) CreateBulk(builders ...*LLMCallCreate) *LLMCallCreateBulk {
	return &LLMCallCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LLMCallClient) MapCreateBulk(slice any, setFunc func(*LLMCallCreate, int)) *LLMCallCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LLMCallCreateBulk{err: fmt.Errorf("calling to LLMCallClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LLMCallCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LLMCallCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LLMCall.
func (c *LLMCallClient) Update() *LLMCallUpdate {
	mutation := newLLMCallMutation(c.config, OpUpdate)
	return &LLMCallUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LLMCallClient) UpdateOne(_m *LLMCall) *LLMCallUpdateOne {
	mutation := newLLMCallMutation(c.config, OpUpdateOne, withLLMCall(_m))
	return &LLMCallUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LLMCallClient) UpdateOneID(id string) *LLMCallUpdateOne {
	mutation := newLLMCallMutation(c.config, OpUpdateOne, withLLMCallID(id))
	return &LLMCallUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LLMCall.
func (c *LLMCallClient) Delete() *LLMCallDelete {
	mutation := newLLMCallMutation(c.config, OpDelete)
	return &LLMCallDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LLMCallClient) DeleteOne(_m *LLMCall) *LLMCallDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LLMCallClient) DeleteOneID(id string) *LLMCallDeleteOne {
	builder := c.Delete().Where(llmcall.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LLMCallDeleteOne{builder}
}

// Query returns a query builder for LLMCall.
func (c *LLMCallClient) Query() *LLMCallQuery {
	return &LLMCallQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLLMCall},
		inters: c.Interceptors(),
	}
}

// Get returns a LLMCall entity by its id.
func (c *LLMCallClient) Get(ctx context.Context, id string) (*LLMCall, error) {
	return c.Query().Where(llmcall.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LLMCallClient) GetX(ctx context.Context, id string) *LLMCall {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LLMCallClient) Hooks() []Hook {
	return c.hooks.LLMCall
}

// Interceptors returns the client interceptors.
func (c *LLMCallClient) Interceptors() []Interceptor {
	return c.inters.LLMCall
}

func (c *LLMCallClient) mutate(ctx context.Context, m *LLMCallMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LLMCallCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LLMCallUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LLMCallUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LLMCallDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LLMCall mutation op: %q", m.Op())
	}
}

// StandingRuleClient is a client for the StandingRule schema.
type StandingRuleClient struct {
	config
}

// NewStandingRuleClient returns a client for the StandingRule from the given config.
func NewStandingRuleClient(c config) *StandingRuleClient {
	return &StandingRuleClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `standingrule.Hooks(f(g(h())))`.
func (c *StandingRuleClient) Use(hooks ...Hook) {
	c.hooks.StandingRule = append(c.hooks.StandingRule, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `standingrule.Intercept(f(g(h())))`.
func (c *StandingRuleClient) Intercept(interceptors ...Interceptor) {
	c.inters.StandingRule = append(c.inters.StandingRule, interceptors...)
}

// Create returns a builder for creating a StandingRule entity.
func (c *StandingRuleClient) Create() *StandingRuleCreate {
	mutation := newStandingRuleMutation(c.config, OpCreate)
	return &StandingRuleCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StandingRule entities.
func (c *StandingRuleClient) CreateBulk(builders ...*StandingRuleCreate) *StandingRuleCreateBulk {
	return &StandingRuleCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StandingRuleClient) MapCreateBulk(slice any, setFunc func(*StandingRuleCreate, int)) *StandingRuleCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StandingRuleCreateBulk{err: fmt.Errorf("calling to StandingRuleClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StandingRuleCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StandingRuleCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StandingRule.
func (c *StandingRuleClient) Update() *StandingRuleUpdate {
	mutation := newStandingRuleMutation(c.config, OpUpdate)
	return &StandingRuleUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StandingRuleClient) UpdateOne(_m *StandingRule) *StandingRuleUpdateOne {
	mutation := newStandingRuleMutation(c.config, OpUpdateOne, withStandingRule(_m))
	return &StandingRuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StandingRuleClient) UpdateOneID(id string) *StandingRuleUpdateOne {
	mutation := newStandingRuleMutation(c.config, OpUpdateOne, withStandingRuleID(id))
	return &StandingRuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StandingRule.
func (c *StandingRuleClient) Delete() *StandingRuleDelete {
	mutation := newStandingRuleMutation(c.config, OpDelete)
	return &StandingRuleDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StandingRuleClient) DeleteOne(_m *StandingRule) *StandingRuleDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StandingRuleClient) DeleteOneID(id string) *StandingRuleDeleteOne {
	builder := c.Delete().Where(standingrule.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StandingRuleDeleteOne{builder}
}

// Query returns a query builder for StandingRule.
func (c *StandingRuleClient) Query() *StandingRuleQuery {
	return &StandingRuleQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStandingRule},
		inters: c.Interceptors(),
	}
}

// Get returns a StandingRule entity by its id.
func (c *StandingRuleClient) Get(ctx context.Context, id string) (*StandingRule, error) {
	return c.Query().Where(standingrule.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StandingRuleClient) GetX(ctx context.Context, id string) *StandingRule {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *StandingRuleClient) Hooks() []Hook {
	return c.hooks.StandingRule
}

// Interceptors returns the client interceptors.
func (c *StandingRuleClient) Interceptors() []Interceptor {
	return c.inters.StandingRule
}

func (c *StandingRuleClient) mutate(ctx context.Context, m *StandingRuleMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StandingRuleCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StandingRuleUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StandingRuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StandingRuleDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StandingRule mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		CostDaily, Gear, Job, LLMCall, StandingRule []ent.Hook
	}
	inters struct {
		CostDaily, Gear, Job, LLMCall, StandingRule []ent.Interceptor
	}
)
