// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/SmritaPandey/OCR-admission-forms/gen/ent/migrate"
	"github.com/google/uuid"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/SmritaPandey/OCR-admission-forms/gen/ent/admissionform"
	"github.com/SmritaPandey/OCR-admission-forms/gen/ent/studentdocument"
	"github.com/SmritaPandey/OCR-admission-forms/gen/ent/studentprofile"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AdmissionForm is the client for interacting with the AdmissionForm builders.
	AdmissionForm *AdmissionFormClient
	// StudentDocument is the client for interacting with the StudentDocument builders.
	StudentDocument *StudentDocumentClient
	// StudentProfile is the client for interacting with the StudentProfile builders.
	StudentProfile *StudentProfileClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AdmissionForm = NewAdmissionFormClient(c.config)
	c.StudentDocument = NewStudentDocumentClient(c.config)
	c.StudentProfile = NewStudentProfileClient(c.config)
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
		AdmissionForm:   NewAdmissionFormClient(cfg),
		StudentDocument: NewStudentDocumentClient(cfg),
		StudentProfile:  NewStudentProfileClient(cfg),
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
		AdmissionForm:   NewAdmissionFormClient(cfg),
		StudentDocument: NewStudentDocumentClient(cfg),
		StudentProfile:  NewStudentProfileClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AdmissionForm.
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
	c.AdmissionForm.Use(hooks...)
	c.StudentDocument.Use(hooks...)
	c.StudentProfile.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.AdmissionForm.Intercept(interceptors...)
	c.StudentDocument.Intercept(interceptors...)
	c.StudentProfile.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AdmissionFormMutation:
		return c.AdmissionForm.mutate(ctx, m)
	case *StudentDocumentMutation:
		return c.StudentDocument.mutate(ctx, m)
	case *StudentProfileMutation:
		return c.StudentProfile.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AdmissionFormClient is a client for the AdmissionForm schema.
type AdmissionFormClient struct {
	config
}

// NewAdmissionFormClient returns a client for the AdmissionForm from the given config.
func NewAdmissionFormClient(c config) *AdmissionFormClient {
	return &AdmissionFormClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `admissionform.Hooks(f(g(h())))`.
func (c *AdmissionFormClient) Use(hooks ...Hook) {
	c.hooks.AdmissionForm = append(c.hooks.AdmissionForm, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `admissionform.Intercept(f(g(h())))`.
func (c *AdmissionFormClient) Intercept(interceptors ...Interceptor) {
	c.inters.AdmissionForm = append(c.inters.AdmissionForm, interceptors...)
}

// Create returns a builder for creating a AdmissionForm entity.
func (c *AdmissionFormClient) Create() *AdmissionFormCreate {
	mutation := newAdmissionFormMutation(c.config, OpCreate)
	return &AdmissionFormCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AdmissionForm entities.
func (c *AdmissionFormClient) CreateBulk(builders ...*AdmissionFormCreate) *AdmissionFormCreateBulk {
	return &AdmissionFormCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AdmissionFormClient) MapCreateBulk(slice any, setFunc func(*AdmissionFormCreate, int)) *AdmissionFormCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AdmissionFormCreateBulk{err: fmt.Errorf("calling to AdmissionFormClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AdmissionFormCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AdmissionFormCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AdmissionForm.
func (c *AdmissionFormClient) Update() *AdmissionFormUpdate {
	mutation := newAdmissionFormMutation(c.config, OpUpdate)
	return &AdmissionFormUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AdmissionFormClient) UpdateOne(_m *AdmissionForm) *AdmissionFormUpdateOne {
	mutation := newAdmissionFormMutation(c.config, OpUpdateOne, withAdmissionForm(_m))
	return &AdmissionFormUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AdmissionFormClient) UpdateOneID(id uuid.UUID) *AdmissionFormUpdateOne {
	mutation := newAdmissionFormMutation(c.config, OpUpdateOne, withAdmissionFormID(id))
	return &AdmissionFormUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AdmissionForm.
func (c *AdmissionFormClient) Delete() *AdmissionFormDelete {
	mutation := newAdmissionFormMutation(c.config, OpDelete)
	return &AdmissionFormDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AdmissionFormClient) DeleteOne(_m *AdmissionForm) *AdmissionFormDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AdmissionFormClient) DeleteOneID(id uuid.UUID) *AdmissionFormDeleteOne {
	builder := c.Delete().Where(admissionform.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AdmissionFormDeleteOne{builder}
}

// Query returns a query builder for AdmissionForm.
func (c *AdmissionFormClient) Query() *AdmissionFormQuery {
	return &AdmissionFormQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAdmissionForm},
		inters: c.Interceptors(),
	}
}

// Get returns a AdmissionForm entity by its id.
func (c *AdmissionFormClient) Get(ctx context.Context, id uuid.UUID) (*AdmissionForm, error) {
	return c.Query().Where(admissionform.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AdmissionFormClient) GetX(ctx context.Context, id uuid.UUID) *AdmissionForm {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDocument queries the document edge of a AdmissionForm.
func (c *AdmissionFormClient) QueryDocument(_m *AdmissionForm) *StudentDocumentQuery {
	query := (&StudentDocumentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(admissionform.Table, admissionform.FieldID, id),
			sqlgraph.To(studentdocument.Table, studentdocument.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, admissionform.DocumentTable, admissionform.DocumentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryProfile queries the profile edge of a AdmissionForm.
func (c *AdmissionFormClient) QueryProfile(_m *AdmissionForm) *StudentProfileQuery {
	query := (&StudentProfileClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(admissionform.Table, admissionform.FieldID, id),
			sqlgraph.To(studentprofile.Table, studentprofile.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, admissionform.ProfileTable, admissionform.ProfileColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AdmissionFormClient) Hooks() []Hook {
	return c.hooks.AdmissionForm
}

// Interceptors returns the client interceptors.
func (c *AdmissionFormClient) Interceptors() []Interceptor {
	return c.inters.AdmissionForm
}

func (c *AdmissionFormClient) mutate(ctx context.Context, m *AdmissionFormMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AdmissionFormCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AdmissionFormUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AdmissionFormUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AdmissionFormDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AdmissionForm mutation op: %q", m.Op())
	}
}

// StudentDocumentClient is a client for the StudentDocument schema.
type StudentDocumentClient struct {
	config
}

// NewStudentDocumentClient returns a client for the StudentDocument from the given config.
func NewStudentDocumentClient(c config) *StudentDocumentClient {
	return &StudentDocumentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `studentdocument.Hooks(f(g(h())))`.
func (c *StudentDocumentClient) Use(hooks ...Hook) {
	c.hooks.StudentDocument = append(c.hooks.StudentDocument, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `studentdocument.Intercept(f(g(h())))`.
func (c *StudentDocumentClient) Intercept(interceptors ...Interceptor) {
	c.inters.StudentDocument = append(c.inters.StudentDocument, interceptors...)
}

// Create returns a builder for creating a StudentDocument entity.
func (c *StudentDocumentClient) Create() *StudentDocumentCreate {
	mutation := newStudentDocumentMutation(c.config, OpCreate)
	return &StudentDocumentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StudentDocument entities.
func (c *StudentDocumentClient) CreateBulk(builders ...*StudentDocumentCreate) *StudentDocumentCreateBulk {
	return &StudentDocumentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StudentDocumentClient) MapCreateBulk(slice any, setFunc func(*StudentDocumentCreate, int)) *StudentDocumentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StudentDocumentCreateBulk{err: fmt.Errorf("calling to StudentDocumentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StudentDocumentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StudentDocumentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StudentDocument.
func (c *StudentDocumentClient) Update() *StudentDocumentUpdate {
	mutation := newStudentDocumentMutation(c.config, OpUpdate)
	return &StudentDocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StudentDocumentClient) UpdateOne(_m *StudentDocument) *StudentDocumentUpdateOne {
	mutation := newStudentDocumentMutation(c.config, OpUpdateOne, withStudentDocument(_m))
	return &StudentDocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StudentDocumentClient) UpdateOneID(id uuid.UUID) *StudentDocumentUpdateOne {
	mutation := newStudentDocumentMutation(c.config, OpUpdateOne, withStudentDocumentID(id))
	return &StudentDocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StudentDocument.
func (c *StudentDocumentClient) Delete() *StudentDocumentDelete {
	mutation := newStudentDocumentMutation(c.config, OpDelete)
	return &StudentDocumentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StudentDocumentClient) DeleteOne(_m *StudentDocument) *StudentDocumentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StudentDocumentClient) DeleteOneID(id uuid.UUID) *StudentDocumentDeleteOne {
	builder := c.Delete().Where(studentdocument.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StudentDocumentDeleteOne{builder}
}

// Query returns a query builder for StudentDocument.
func (c *StudentDocumentClient) Query() *StudentDocumentQuery {
	return &StudentDocumentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStudentDocument},
		inters: c.Interceptors(),
	}
}

// Get returns a StudentDocument entity by its id.
func (c *StudentDocumentClient) Get(ctx context.Context, id uuid.UUID) (*StudentDocument, error) {
	return c.Query().Where(studentdocument.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StudentDocumentClient) GetX(ctx context.Context, id uuid.UUID) *StudentDocument {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryForms queries the forms edge of a StudentDocument.
func (c *StudentDocumentClient) QueryForms(_m *StudentDocument) *AdmissionFormQuery {
	query := (&AdmissionFormClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(studentdocument.Table, studentdocument.FieldID, id),
			sqlgraph.To(admissionform.Table, admissionform.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, studentdocument.FormsTable, studentdocument.FormsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *StudentDocumentClient) Hooks() []Hook {
	return c.hooks.StudentDocument
}

// Interceptors returns the client interceptors.
func (c *StudentDocumentClient) Interceptors() []Interceptor {
	return c.inters.StudentDocument
}

func (c *StudentDocumentClient) mutate(ctx context.Context, m *StudentDocumentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StudentDocumentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StudentDocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StudentDocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StudentDocumentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StudentDocument mutation op: %q", m.Op())
	}
}

// StudentProfileClient is a client for the StudentProfile schema.
type StudentProfileClient struct {
	config
}

// NewStudentProfileClient returns a client for the StudentProfile from the given config.
func NewStudentProfileClient(c config) *StudentProfileClient {
	return &StudentProfileClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `studentprofile.Hooks(f(g(h())))`.
func (c *StudentProfileClient) Use(hooks ...Hook) {
	c.hooks.StudentProfile = append(c.hooks.StudentProfile, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `studentprofile.Intercept(f(g(h())))`.
func (c *StudentProfileClient) Intercept(interceptors ...Interceptor) {
	c.inters.StudentProfile = append(c.inters.StudentProfile, interceptors...)
}

// Create returns a builder for creating a StudentProfile entity.
func (c *StudentProfileClient) Create() *StudentProfileCreate {
	mutation := newStudentProfileMutation(c.config, OpCreate)
	return &StudentProfileCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StudentProfile entities.
func (c *StudentProfileClient) CreateBulk(builders ...*StudentProfileCreate) *StudentProfileCreateBulk {
	return &StudentProfileCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StudentProfileClient) MapCreateBulk(slice any, setFunc func(*StudentProfileCreate, int)) *StudentProfileCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StudentProfileCreateBulk{err: fmt.Errorf("calling to StudentProfileClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StudentProfileCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StudentProfileCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StudentProfile.
func (c *StudentProfileClient) Update() *StudentProfileUpdate {
	mutation := newStudentProfileMutation(c.config, OpUpdate)
	return &StudentProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StudentProfileClient) UpdateOne(_m *StudentProfile) *StudentProfileUpdateOne {
	mutation := newStudentProfileMutation(c.config, OpUpdateOne, withStudentProfile(_m))
	return &StudentProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StudentProfileClient) UpdateOneID(id uuid.UUID) *StudentProfileUpdateOne {
	mutation := newStudentProfileMutation(c.config, OpUpdateOne, withStudentProfileID(id))
	return &StudentProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StudentProfile.
func (c *StudentProfileClient) Delete() *StudentProfileDelete {
	mutation := newStudentProfileMutation(c.config, OpDelete)
	return &StudentProfileDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StudentProfileClient) DeleteOne(_m *StudentProfile) *StudentProfileDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StudentProfileClient) DeleteOneID(id uuid.UUID) *StudentProfileDeleteOne {
	builder := c.Delete().Where(studentprofile.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StudentProfileDeleteOne{builder}
}

// Query returns a query builder for StudentProfile.
func (c *StudentProfileClient) Query() *StudentProfileQuery {
	return &StudentProfileQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStudentProfile},
		inters: c.Interceptors(),
	}
}

// Get returns a StudentProfile entity by its id.
func (c *StudentProfileClient) Get(ctx context.Context, id uuid.UUID) (*StudentProfile, error) {
	return c.Query().Where(studentprofile.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StudentProfileClient) GetX(ctx context.Context, id uuid.UUID) *StudentProfile {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryForms queries the forms edge of a StudentProfile.
func (c *StudentProfileClient) QueryForms(_m *StudentProfile) *AdmissionFormQuery {
	query := (&AdmissionFormClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(studentprofile.Table, studentprofile.FieldID, id),
			sqlgraph.To(admissionform.Table, admissionform.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, studentprofile.FormsTable, studentprofile.FormsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *StudentProfileClient) Hooks() []Hook {
	return c.hooks.StudentProfile
}

// Interceptors returns the client interceptors.
func (c *StudentProfileClient) Interceptors() []Interceptor {
	return c.inters.StudentProfile
}

func (c *StudentProfileClient) mutate(ctx context.Context, m *StudentProfileMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StudentProfileCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StudentProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StudentProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StudentProfileDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StudentProfile mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AdmissionForm, StudentDocument, StudentProfile []ent.Hook
	}
	inters struct {
		AdmissionForm, StudentDocument, StudentProfile []ent.Interceptor
	}
)
