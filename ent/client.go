// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/glocalhq/glocal/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/glocalhq/glocal/ent/asset"
	"github.com/glocalhq/glocal/ent/localizationjob"
	"github.com/glocalhq/glocal/ent/localizedvariant"
	"github.com/glocalhq/glocal/ent/voiceprofile"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Asset is the client for interacting with the Asset builders.
	Asset *AssetClient
	// LocalizationJob is the client for interacting with the LocalizationJob builders.
	LocalizationJob *LocalizationJobClient
	// LocalizedVariant is the client for interacting with the LocalizedVariant builders.
	LocalizedVariant *LocalizedVariantClient
	// VoiceProfile is the client for interacting with the VoiceProfile builders.
	VoiceProfile *VoiceProfileClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Asset = NewAssetClient(c.config)
	c.LocalizationJob = NewLocalizationJobClient(c.config)
	c.LocalizedVariant = NewLocalizedVariantClient(c.config)
	c.VoiceProfile = NewVoiceProfileClient(c.config)
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
		ctx:              ctx,
		config:           cfg,
		Asset:            NewAssetClient(cfg),
		LocalizationJob:  NewLocalizationJobClient(cfg),
		LocalizedVariant: NewLocalizedVariantClient(cfg),
		VoiceProfile:     NewVoiceProfileClient(cfg),
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
		ctx:              ctx,
		config:           cfg,
		Asset:            NewAssetClient(cfg),
		LocalizationJob:  NewLocalizationJobClient(cfg),
		LocalizedVariant: NewLocalizedVariantClient(cfg),
		VoiceProfile:     NewVoiceProfileClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Asset.
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
	c.Asset.Use(hooks...)
	c.LocalizationJob.Use(hooks...)
	c.LocalizedVariant.Use(hooks...)
	c.VoiceProfile.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.Asset.Intercept(interceptors...)
	c.LocalizationJob.Intercept(interceptors...)
	c.LocalizedVariant.Intercept(interceptors...)
	c.VoiceProfile.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AssetMutation:
		return c.Asset.mutate(ctx, m)
	case *LocalizationJobMutation:
		return c.LocalizationJob.mutate(ctx, m)
	case *LocalizedVariantMutation:
		return c.LocalizedVariant.mutate(ctx, m)
	case *VoiceProfileMutation:
		return c.VoiceProfile.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AssetClient is a client for the Asset schema.
type AssetClient struct {
	config
}

// NewAssetClient returns a client for the Asset from the given config.
func NewAssetClient(c config) *AssetClient {
	return &AssetClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `asset.Hooks(f(g(h())))`.
func (c *AssetClient) Use(hooks ...Hook) {
	c.hooks.Asset = append(c.hooks.Asset, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `asset.Intercept(f(g(h())))`.
func (c *AssetClient) Intercept(interceptors ...Interceptor) {
	c.inters.Asset = append(c.inters.Asset, interceptors...)
}

// Create returns a builder for creating a Asset entity.
func (c *AssetClient) Create() *AssetCreate {
	mutation := newAssetMutation(c.config, OpCreate)
	return &AssetCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Asset entities.
func (c *AssetClient) CreateBulk(builders ...*AssetCreate) *AssetCreateBulk {
	return &AssetCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AssetClient) MapCreateBulk(slice any, setFunc func(*AssetCreate, int)) *AssetCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AssetCreateBulk{err: fmt.Errorf("calling to AssetClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AssetCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AssetCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Asset.
func (c *AssetClient) Update() *AssetUpdate {
	mutation := newAssetMutation(c.config, OpUpdate)
	return &AssetUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AssetClient) UpdateOne(_m *Asset) *AssetUpdateOne {
	mutation := newAssetMutation(c.config, OpUpdateOne, withAsset(_m))
	return &AssetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AssetClient) UpdateOneID(id string) *AssetUpdateOne {
	mutation := newAssetMutation(c.config, OpUpdateOne, withAssetID(id))
	return &AssetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Asset.
func (c *AssetClient) Delete() *AssetDelete {
	mutation := newAssetMutation(c.config, OpDelete)
	return &AssetDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AssetClient) DeleteOne(_m *Asset) *AssetDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AssetClient) DeleteOneID(id string) *AssetDeleteOne {
	builder := c.Delete().Where(asset.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AssetDeleteOne{builder}
}

// Query returns a query builder for Asset.
func (c *AssetClient) Query() *AssetQuery {
	return &AssetQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAsset},
		inters: c.Interceptors(),
	}
}

// Get returns a Asset entity by its id.
func (c *AssetClient) Get(ctx context.Context, id string) (*Asset, error) {
	return c.Query().Where(asset.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AssetClient) GetX(ctx context.Context, id string) *Asset {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AssetClient) Hooks() []Hook {
	return c.hooks.Asset
}

// Interceptors returns the client interceptors.
func (c *AssetClient) Interceptors() []Interceptor {
	return c.inters.Asset
}

func (c *AssetClient) mutate(ctx context.Context, m *AssetMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AssetCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AssetUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AssetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AssetDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Asset mutation op: %q", m.Op())
	}
}

// LocalizationJobClient is a client for the LocalizationJob schema.
type LocalizationJobClient struct {
	config
}

// NewLocalizationJobClient returns a client for the LocalizationJob from the given config.
func NewLocalizationJobClient(c config) *LocalizationJobClient {
	return &LocalizationJobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `localizationjob.Hooks(f(g(h())))`.
func (c *LocalizationJobClient) Use(hooks ...Hook) {
	c.hooks.LocalizationJob = append(c.hooks.LocalizationJob, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `localizationjob.Intercept(f(g(h())))`.
func (c *LocalizationJobClient) Intercept(interceptors ...Interceptor) {
	c.inters.LocalizationJob = append(c.inters.LocalizationJob, interceptors...)
}

// Create returns a builder for creating a LocalizationJob entity.
func (c *LocalizationJobClient) Create() *LocalizationJobCreate {
	mutation := newLocalizationJobMutation(c.config, OpCreate)
	return &LocalizationJobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LocalizationJob entities.
func (c *LocalizationJobClient) CreateBulk(builders ...*LocalizationJobCreate) *LocalizationJobCreateBulk {
	return &LocalizationJobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LocalizationJobClient) MapCreateBulk(slice any, setFunc func(*LocalizationJobCreate, int)) *LocalizationJobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LocalizationJobCreateBulk{err: fmt.Errorf("calling to LocalizationJobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LocalizationJobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LocalizationJobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LocalizationJob.
func (c *LocalizationJobClient) Update() *LocalizationJobUpdate {
	mutation := newLocalizationJobMutation(c.config, OpUpdate)
	return &LocalizationJobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LocalizationJobClient) UpdateOne(_m *LocalizationJob) *LocalizationJobUpdateOne {
	mutation := newLocalizationJobMutation(c.config, OpUpdateOne, withLocalizationJob(_m))
	return &LocalizationJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LocalizationJobClient) UpdateOneID(id string) *LocalizationJobUpdateOne {
	mutation := newLocalizationJobMutation(c.config, OpUpdateOne, withLocalizationJobID(id))
	return &LocalizationJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LocalizationJob.
func (c *LocalizationJobClient) Delete() *LocalizationJobDelete {
	mutation := newLocalizationJobMutation(c.config, OpDelete)
	return &LocalizationJobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LocalizationJobClient) DeleteOne(_m *LocalizationJob) *LocalizationJobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LocalizationJobClient) DeleteOneID(id string) *LocalizationJobDeleteOne {
	builder := c.Delete().Where(localizationjob.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LocalizationJobDeleteOne{builder}
}

// Query returns a query builder for LocalizationJob.
func (c *LocalizationJobClient) Query() *LocalizationJobQuery {
	return &LocalizationJobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLocalizationJob},
		inters: c.Interceptors(),
	}
}

// Get returns a LocalizationJob entity by its id.
func (c *LocalizationJobClient) Get(ctx context.Context, id string) (*LocalizationJob, error) {
	return c.Query().Where(localizationjob.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LocalizationJobClient) GetX(ctx context.Context, id string) *LocalizationJob {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryVariants queries the variants edge of a LocalizationJob.
func (c *LocalizationJobClient) QueryVariants(_m *LocalizationJob) *LocalizedVariantQuery {
	query := (&LocalizedVariantClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(localizationjob.Table, localizationjob.FieldID, id),
			sqlgraph.To(localizedvariant.Table, localizedvariant.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, localizationjob.VariantsTable, localizationjob.VariantsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *LocalizationJobClient) Hooks() []Hook {
	return c.hooks.LocalizationJob
}

// Interceptors returns the client interceptors.
func (c *LocalizationJobClient) Interceptors() []Interceptor {
	return c.inters.LocalizationJob
}

func (c *LocalizationJobClient) mutate(ctx context.Context, m *LocalizationJobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LocalizationJobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LocalizationJobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LocalizationJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LocalizationJobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LocalizationJob mutation op: %q", m.Op())
	}
}

// LocalizedVariantClient is a client for the LocalizedVariant schema.
type LocalizedVariantClient struct {
	config
}

// NewLocalizedVariantClient returns a client for the LocalizedVariant from the given config.
func NewLocalizedVariantClient(c config) *LocalizedVariantClient {
	return &LocalizedVariantClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `localizedvariant.Hooks(f(g(h())))`.
func (c *LocalizedVariantClient) Use(hooks ...Hook) {
	c.hooks.LocalizedVariant = append(c.hooks.LocalizedVariant, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `localizedvariant.Intercept(f(g(h())))`.
func (c *LocalizedVariantClient) Intercept(interceptors ...Interceptor) {
	c.inters.LocalizedVariant = append(c.inters.LocalizedVariant, interceptors...)
}

// Create returns a builder for creating a LocalizedVariant entity.
func (c *LocalizedVariantClient) Create() *LocalizedVariantCreate {
	mutation := newLocalizedVariantMutation(c.config, OpCreate)
	return &LocalizedVariantCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LocalizedVariant entities.
func (c *LocalizedVariantClient) CreateBulk(builders ...*LocalizedVariantCreate) *LocalizedVariantCreateBulk {
	return &LocalizedVariantCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LocalizedVariantClient) MapCreateBulk(slice any, setFunc func(*LocalizedVariantCreate, int)) *LocalizedVariantCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LocalizedVariantCreateBulk{err: fmt.Errorf("calling to LocalizedVariantClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LocalizedVariantCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LocalizedVariantCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LocalizedVariant.
func (c *LocalizedVariantClient) Update() *LocalizedVariantUpdate {
	mutation := newLocalizedVariantMutation(c.config, OpUpdate)
	return &LocalizedVariantUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LocalizedVariantClient) UpdateOne(_m *LocalizedVariant) *LocalizedVariantUpdateOne {
	mutation := newLocalizedVariantMutation(c.config, OpUpdateOne, withLocalizedVariant(_m))
	return &LocalizedVariantUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LocalizedVariantClient) UpdateOneID(id string) *LocalizedVariantUpdateOne {
	mutation := newLocalizedVariantMutation(c.config, OpUpdateOne, withLocalizedVariantID(id))
	return &LocalizedVariantUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LocalizedVariant.
func (c *LocalizedVariantClient) Delete() *LocalizedVariantDelete {
	mutation := newLocalizedVariantMutation(c.config, OpDelete)
	return &LocalizedVariantDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LocalizedVariantClient) DeleteOne(_m *LocalizedVariant) *LocalizedVariantDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LocalizedVariantClient) DeleteOneID(id string) *LocalizedVariantDeleteOne {
	builder := c.Delete().Where(localizedvariant.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LocalizedVariantDeleteOne{builder}
}

// Query returns a query builder for LocalizedVariant.
func (c *LocalizedVariantClient) Query() *LocalizedVariantQuery {
	return &LocalizedVariantQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLocalizedVariant},
		inters: c.Interceptors(),
	}
}

// Get returns a LocalizedVariant entity by its id.
func (c *LocalizedVariantClient) Get(ctx context.Context, id string) (*LocalizedVariant, error) {
	return c.Query().Where(localizedvariant.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LocalizedVariantClient) GetX(ctx context.Context, id string) *LocalizedVariant {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryJob queries the job edge of a LocalizedVariant.
func (c *LocalizedVariantClient) QueryJob(_m *LocalizedVariant) *LocalizationJobQuery {
	query := (&LocalizationJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(localizedvariant.Table, localizedvariant.FieldID, id),
			sqlgraph.To(localizationjob.Table, localizationjob.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, localizedvariant.JobTable, localizedvariant.JobColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *LocalizedVariantClient) Hooks() []Hook {
	return c.hooks.LocalizedVariant
}

// Interceptors returns the client interceptors.
func (c *LocalizedVariantClient) Interceptors() []Interceptor {
	return c.inters.LocalizedVariant
}

func (c *LocalizedVariantClient) mutate(ctx context.Context, m *LocalizedVariantMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LocalizedVariantCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LocalizedVariantUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LocalizedVariantUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LocalizedVariantDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LocalizedVariant mutation op: %q", m.Op())
	}
}

// VoiceProfileClient is a client for the VoiceProfile schema.
type VoiceProfileClient struct {
	config
}

// NewVoiceProfileClient returns a client for the VoiceProfile from the given config.
func NewVoiceProfileClient(c config) *VoiceProfileClient {
	return &VoiceProfileClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `voiceprofile.Hooks(f(g(h())))`.
func (c *VoiceProfileClient) Use(hooks ...Hook) {
	c.hooks.VoiceProfile = append(c.hooks.VoiceProfile, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `voiceprofile.Intercept(f(g(h())))`.
func (c *VoiceProfileClient) Intercept(interceptors ...Interceptor) {
	c.inters.VoiceProfile = append(c.inters.VoiceProfile, interceptors...)
}

// Create returns a builder for creating a VoiceProfile entity.
func (c *VoiceProfileClient) Create() *VoiceProfileCreate {
	mutation := newVoiceProfileMutation(c.config, OpCreate)
	return &VoiceProfileCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of VoiceProfile entities.
func (c *VoiceProfileClient) CreateBulk(builders ...*VoiceProfileCreate) *VoiceProfileCreateBulk {
	return &VoiceProfileCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *VoiceProfileClient) MapCreateBulk(slice any, setFunc func(*VoiceProfileCreate, int)) *VoiceProfileCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &VoiceProfileCreateBulk{err: fmt.Errorf("calling to VoiceProfileClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*VoiceProfileCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &VoiceProfileCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for VoiceProfile.
func (c *VoiceProfileClient) Update() *VoiceProfileUpdate {
	mutation := newVoiceProfileMutation(c.config, OpUpdate)
	return &VoiceProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *VoiceProfileClient) UpdateOne(_m *VoiceProfile) *VoiceProfileUpdateOne {
	mutation := newVoiceProfileMutation(c.config, OpUpdateOne, withVoiceProfile(_m))
	return &VoiceProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *VoiceProfileClient) UpdateOneID(id string) *VoiceProfileUpdateOne {
	mutation := newVoiceProfileMutation(c.config, OpUpdateOne, withVoiceProfileID(id))
	return &VoiceProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for VoiceProfile.
func (c *VoiceProfileClient) Delete() *VoiceProfileDelete {
	mutation := newVoiceProfileMutation(c.config, OpDelete)
	return &VoiceProfileDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *VoiceProfileClient) DeleteOne(_m *VoiceProfile) *VoiceProfileDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *VoiceProfileClient) DeleteOneID(id string) *VoiceProfileDeleteOne {
	builder := c.Delete().Where(voiceprofile.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &VoiceProfileDeleteOne{builder}
}

// Query returns a query builder for VoiceProfile.
func (c *VoiceProfileClient) Query() *VoiceProfileQuery {
	return &VoiceProfileQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeVoiceProfile},
		inters: c.Interceptors(),
	}
}

// Get returns a VoiceProfile entity by its id.
func (c *VoiceProfileClient) Get(ctx context.Context, id string) (*VoiceProfile, error) {
	return c.Query().Where(voiceprofile.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *VoiceProfileClient) GetX(ctx context.Context, id string) *VoiceProfile {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *VoiceProfileClient) Hooks() []Hook {
	return c.hooks.VoiceProfile
}

// Interceptors returns the client interceptors.
func (c *VoiceProfileClient) Interceptors() []Interceptor {
	return c.inters.VoiceProfile
}

func (c *VoiceProfileClient) mutate(ctx context.Context, m *VoiceProfileMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&VoiceProfileCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&VoiceProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&VoiceProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&VoiceProfileDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown VoiceProfile mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Asset, LocalizationJob, LocalizedVariant, VoiceProfile []ent.Hook
	}
	inters struct {
		Asset, LocalizationJob, LocalizedVariant, VoiceProfile []ent.Interceptor
	}
)
