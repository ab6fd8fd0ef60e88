// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/sergeville/Archon/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/sergeville/Archon/ent/agent"
	"github.com/sergeville/Archon/ent/auditentry"
	"github.com/sergeville/Archon/ent/conductorlog"
	"github.com/sergeville/Archon/ent/conversationmessage"
	"github.com/sergeville/Archon/ent/councildecision"
	"github.com/sergeville/Archon/ent/handoff"
	"github.com/sergeville/Archon/ent/pattern"
	"github.com/sergeville/Archon/ent/patternobservation"
	"github.com/sergeville/Archon/ent/project"
	"github.com/sergeville/Archon/ent/session"
	"github.com/sergeville/Archon/ent/sessionevent"
	"github.com/sergeville/Archon/ent/sharedcontext"
	"github.com/sergeville/Archon/ent/sharedcontexthistory"
	"github.com/sergeville/Archon/ent/task"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Agent is the client for interacting with the Agent builders.
	Agent *AgentClient
	// AuditEntry is the client for interacting with the AuditEntry builders.
	AuditEntry *AuditEntryClient
	// ConductorLog is the client for interacting with the ConductorLog builders.
	ConductorLog *ConductorLogClient
	// ConversationMessage is the client for interacting with the ConversationMessage builders.
	ConversationMessage *ConversationMessageClient
	// CouncilDecision is the client for interacting with the CouncilDecision builders.
	CouncilDecision *CouncilDecisionClient
	// Handoff is the client for interacting with the Handoff builders.
	Handoff *HandoffClient
	// Pattern is the client for interacting with the Pattern builders.
	Pattern *PatternClient
	// PatternObservation is the client for interacting with the PatternObservation builders.
	PatternObservation *PatternObservationClient
	// Project is the client for interacting with the Project builders.
	Project *ProjectClient
	// Session is the client for interacting with the Session builders.
	Session *SessionClient
	// SessionEvent is the client for interacting with the SessionEvent builders.
	SessionEvent *SessionEventClient
	// SharedContext is the client for interacting with the SharedContext builders.
	SharedContext *SharedContextClient
	// SharedContextHistory is the client for interacting with the SharedContextHistory builders.
	SharedContextHistory *SharedContextHistoryClient
	// Task is the client for interacting with the Task builders.
	Task *TaskClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Agent = NewAgentClient(c.config)
	c.AuditEntry = NewAuditEntryClient(c.config)
	c.ConductorLog = NewConductorLogClient(c.config)
	c.ConversationMessage = NewConversationMessageClient(c.config)
	c.CouncilDecision = NewCouncilDecisionClient(c.config)
	c.Handoff = NewHandoffClient(c.config)
	c.Pattern = NewPatternClient(c.config)
	c.PatternObservation = NewPatternObservationClient(c.config)
	c.Project = NewProjectClient(c.config)
	c.Session = NewSessionClient(c.config)
	c.SessionEvent = NewSessionEventClient(c.config)
	c.SharedContext = NewSharedContextClient(c.config)
	c.SharedContextHistory = NewSharedContextHistoryClient(c.config)
	c.Task = NewTaskClient(c.config)
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
		ctx:                  ctx,
		config:               cfg,
		Agent:                NewAgentClient(cfg),
		AuditEntry:           NewAuditEntryClient(cfg),
		ConductorLog:         NewConductorLogClient(cfg),
		ConversationMessage:  NewConversationMessageClient(cfg),
		CouncilDecision:      NewCouncilDecisionClient(cfg),
		Handoff:              NewHandoffClient(cfg),
		Pattern:              NewPatternClient(cfg),
		PatternObservation:   NewPatternObservationClient(cfg),
		Project:              NewProjectClient(cfg),
		Session:              NewSessionClient(cfg),
		SessionEvent:         NewSessionEventClient(cfg),
		SharedContext:        NewSharedContextClient(cfg),
		SharedContextHistory: NewSharedContextHistoryClient(cfg),
		Task:                 NewTaskClient(cfg),
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
		ctx:                  ctx,
		config:               cfg,
		Agent:                NewAgentClient(cfg),
		AuditEntry:           NewAuditEntryClient(cfg),
		ConductorLog:         NewConductorLogClient(cfg),
		ConversationMessage:  NewConversationMessageClient(cfg),
		CouncilDecision:      NewCouncilDecisionClient(cfg),
		Handoff:              NewHandoffClient(cfg),
		Pattern:              NewPatternClient(cfg),
		PatternObservation:   NewPatternObservationClient(cfg),
		Project:              NewProjectClient(cfg),
		Session:              NewSessionClient(cfg),
		SessionEvent:         NewSessionEventClient(cfg),
		SharedContext:        NewSharedContextClient(cfg),
		SharedContextHistory: NewSharedContextHistoryClient(cfg),
		Task:                 NewTaskClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Agent.
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
		c.Agent, c.AuditEntry, c.ConductorLog, c.ConversationMessage, c.CouncilDecision,
		c.Handoff, c.Pattern, c.PatternObservation, c.Project, c.Session,
		c.SessionEvent, c.SharedContext, c.SharedContextHistory, c.Task,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Agent, c.AuditEntry, c.ConductorLog, c.ConversationMessage, c.CouncilDecision,
		c.Handoff, c.Pattern, c.PatternObservation, c.Project, c.Session,
		c.SessionEvent, c.SharedContext, c.SharedContextHistory, c.Task,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AgentMutation:
		return c.Agent.mutate(ctx, m)
	case *AuditEntryMutation:
		return c.AuditEntry.mutate(ctx, m)
	case *ConductorLogMutation:
		return c.ConductorLog.mutate(ctx, m)
	case *ConversationMessageMutation:
		return c.ConversationMessage.mutate(ctx, m)
	case *CouncilDecisionMutation:
		return c.CouncilDecision.mutate(ctx, m)
	case *HandoffMutation:
		return c.Handoff.mutate(ctx, m)
	case *PatternMutation:
		return c.Pattern.mutate(ctx, m)
	case *PatternObservationMutation:
		return c.PatternObservation.mutate(ctx, m)
	case *ProjectMutation:
		return c.Project.mutate(ctx, m)
	case *SessionMutation:
		return c.Session.mutate(ctx, m)
	case *SessionEventMutation:
		return c.SessionEvent.mutate(ctx, m)
	case *SharedContextMutation:
		return c.SharedContext.mutate(ctx, m)
	case *SharedContextHistoryMutation:
		return c.SharedContextHistory.mutate(ctx, m)
	case *TaskMutation:
		return c.Task.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AgentClient is a client for the Agent schema.
type AgentClient struct {
	config
}

// NewAgentClient returns a client for the Agent from the given config.
func NewAgentClient(c config) *AgentClient {
	return &AgentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agent.Hooks(f(g(h())))`.
func (c *AgentClient) Use(hooks ...Hook) {
	c.hooks.Agent = append(c.hooks.Agent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agent.Intercept(f(g(h())))`.
func (c *AgentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Agent = append(c.inters.Agent, interceptors...)
}

// Create returns a builder for creating a Agent entity.
func (c *AgentClient) Create() *AgentCreate {
	mutation := newAgentMutation(c.config, OpCreate)
	return &AgentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Agent entities.
func (c *AgentClient) CreateBulk(builders ...*AgentCreate) *AgentCreateBulk {
	return &AgentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentClient) MapCreateBulk(slice any, setFunc func(*AgentCreate, int)) *AgentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentCreateBulk{err: fmt.Errorf("calling to AgentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Agent.
func (c *AgentClient) Update() *AgentUpdate {
	mutation := newAgentMutation(c.config, OpUpdate)
	return &AgentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentClient) UpdateOne(_m *Agent) *AgentUpdateOne {
	mutation := newAgentMutation(c.config, OpUpdateOne, withAgent(_m))
	return &AgentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentClient) UpdateOneID(id string) *AgentUpdateOne {
	mutation := newAgentMutation(c.config, OpUpdateOne, withAgentID(id))
	return &AgentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Agent.
func (c *AgentClient) Delete() *AgentDelete {
	mutation := newAgentMutation(c.config, OpDelete)
	return &AgentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentClient) DeleteOne(_m *Agent) *AgentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentClient) DeleteOneID(id string) *AgentDeleteOne {
	builder := c.Delete().Where(agent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentDeleteOne{builder}
}

// Query returns a query builder for Agent.
func (c *AgentClient) Query() *AgentQuery {
	return &AgentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgent},
		inters: c.Interceptors(),
	}
}

// Get returns a Agent entity by its id.
func (c *AgentClient) Get(ctx context.Context, id string) (*Agent, error) {
	return c.Query().Where(agent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentClient) GetX(ctx context.Context, id string) *Agent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AgentClient) Hooks() []Hook {
	return c.hooks.Agent
}

// Interceptors returns the client interceptors.
func (c *AgentClient) Interceptors() []Interceptor {
	return c.inters.Agent
}

func (c *AgentClient) mutate(ctx context.Context, m *AgentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Agent mutation op: %q", m.Op())
	}
}

// AuditEntryClient is a client for the AuditEntry schema.
type AuditEntryClient struct {
	config
}

// NewAuditEntryClient returns a client for the AuditEntry from the given config.
func NewAuditEntryClient(c config) *AuditEntryClient {
	return &AuditEntryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `auditentry.Hooks(f(g(h())))`.
func (c *AuditEntryClient) Use(hooks ...Hook) {
	c.hooks.AuditEntry = append(c.hooks.AuditEntry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `auditentry.Intercept(f(g(h())))`.
func (c *AuditEntryClient) Intercept(interceptors ...Interceptor) {
	c.inters.AuditEntry = append(c.inters.AuditEntry, interceptors...)
}

// Create returns a builder for creating a AuditEntry entity.
func (c *AuditEntryClient) Create() *AuditEntryCreate {
	mutation := newAuditEntryMutation(c.config, OpCreate)
	return &AuditEntryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AuditEntry entities.
func (c *AuditEntryClient) CreateBulk(builders ...*AuditEntryCreate) *AuditEntryCreateBulk {
	return &AuditEntryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AuditEntryClient) MapCreateBulk(slice any, setFunc func(*AuditEntryCreate, int)) *AuditEntryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AuditEntryCreateBulk{err: fmt.Errorf("calling to AuditEntryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AuditEntryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AuditEntryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AuditEntry.
func (c *AuditEntryClient) Update() *AuditEntryUpdate {
	mutation := newAuditEntryMutation(c.config, OpUpdate)
	return &AuditEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AuditEntryClient) UpdateOne(_m *AuditEntry) *AuditEntryUpdateOne {
	mutation := newAuditEntryMutation(c.config, OpUpdateOne, withAuditEntry(_m))
	return &AuditEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AuditEntryClient) UpdateOneID(id string) *AuditEntryUpdateOne {
	mutation := newAuditEntryMutation(c.config, OpUpdateOne, withAuditEntryID(id))
	return &AuditEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AuditEntry.
func (c *AuditEntryClient) Delete() *AuditEntryDelete {
	mutation := newAuditEntryMutation(c.config, OpDelete)
	return &AuditEntryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AuditEntryClient) DeleteOne(_m *AuditEntry) *AuditEntryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AuditEntryClient) DeleteOneID(id string) *AuditEntryDeleteOne {
	builder := c.Delete().Where(auditentry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AuditEntryDeleteOne{builder}
}

// Query returns a query builder for AuditEntry.
func (c *AuditEntryClient) Query() *AuditEntryQuery {
	return &AuditEntryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAuditEntry},
		inters: c.Interceptors(),
	}
}

// Get returns a AuditEntry entity by its id.
func (c *AuditEntryClient) Get(ctx context.Context, id string) (*AuditEntry, error) {
	return c.Query().Where(auditentry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AuditEntryClient) GetX(ctx context.Context, id string) *AuditEntry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AuditEntryClient) Hooks() []Hook {
	return c.hooks.AuditEntry
}

// Interceptors returns the client interceptors.
func (c *AuditEntryClient) Interceptors() []Interceptor {
	return c.inters.AuditEntry
}

func (c *AuditEntryClient) mutate(ctx context.Context, m *AuditEntryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AuditEntryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AuditEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AuditEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AuditEntryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AuditEntry mutation op: %q", m.Op())
	}
}

// ConductorLogClient is a client for the ConductorLog schema.
type ConductorLogClient struct {
	config
}

// NewConductorLogClient returns a client for the ConductorLog from the given config.
func NewConductorLogClient(c config) *ConductorLogClient {
	return &ConductorLogClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `conductorlog.Hooks(f(g(h())))`.
func (c *ConductorLogClient) Use(hooks ...Hook) {
	c.hooks.ConductorLog = append(c.hooks.ConductorLog, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `conductorlog.Intercept(f(g(h())))`.
func (c *ConductorLogClient) Intercept(interceptors ...Interceptor) {
	c.inters.ConductorLog = append(c.inters.ConductorLog, interceptors...)
}

// Create returns a builder for creating a ConductorLog entity.
func (c *ConductorLogClient) Create() *ConductorLogCreate {
	mutation := newConductorLogMutation(c.config, OpCreate)
	return &ConductorLogCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ConductorLog entities.
func (c *ConductorLogClient) CreateBulk(builders ...*ConductorLogCreate) *ConductorLogCreateBulk {
	return &ConductorLogCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ConductorLogClient) MapCreateBulk(slice any, setFunc func(*ConductorLogCreate, int)) *ConductorLogCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ConductorLogCreateBulk{err: fmt.Errorf("calling to ConductorLogClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ConductorLogCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ConductorLogCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ConductorLog.
func (c *ConductorLogClient) Update() *ConductorLogUpdate {
	mutation := newConductorLogMutation(c.config, OpUpdate)
	return &ConductorLogUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ConductorLogClient) UpdateOne(_m *ConductorLog) *ConductorLogUpdateOne {
	mutation := newConductorLogMutation(c.config, OpUpdateOne, withConductorLog(_m))
	return &ConductorLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ConductorLogClient) UpdateOneID(id string) *ConductorLogUpdateOne {
	mutation := newConductorLogMutation(c.config, OpUpdateOne, withConductorLogID(id))
	return &ConductorLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ConductorLog.
func (c *ConductorLogClient) Delete() *ConductorLogDelete {
	mutation := newConductorLogMutation(c.config, OpDelete)
	return &ConductorLogDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ConductorLogClient) DeleteOne(_m *ConductorLog) *ConductorLogDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ConductorLogClient) DeleteOneID(id string) *ConductorLogDeleteOne {
	builder := c.Delete().Where(conductorlog.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ConductorLogDeleteOne{builder}
}

// Query returns a query builder for ConductorLog.
func (c *ConductorLogClient) Query() *ConductorLogQuery {
	return &ConductorLogQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeConductorLog},
		inters: c.Interceptors(),
	}
}

// Get returns a ConductorLog entity by its id.
func (c *ConductorLogClient) Get(ctx context.Context, id string) (*ConductorLog, error) {
	return c.Query().Where(conductorlog.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ConductorLogClient) GetX(ctx context.Context, id string) *ConductorLog {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ConductorLogClient) Hooks() []Hook {
	return c.hooks.ConductorLog
}

// Interceptors returns the client interceptors.
func (c *ConductorLogClient) Interceptors() []Interceptor {
	return c.inters.ConductorLog
}

func (c *ConductorLogClient) mutate(ctx context.Context, m *ConductorLogMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ConductorLogCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ConductorLogUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ConductorLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ConductorLogDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ConductorLog mutation op: %q", m.Op())
	}
}

// ConversationMessageClient is a client for the ConversationMessage schema.
type ConversationMessageClient struct {
	config
}

// NewConversationMessageClient returns a client for the ConversationMessage from the given config.
func NewConversationMessageClient(c config) *ConversationMessageClient {
	return &ConversationMessageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `conversationmessage.Hooks(f(g(h())))`.
func (c *ConversationMessageClient) Use(hooks ...Hook) {
	c.hooks.ConversationMessage = append(c.hooks.ConversationMessage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `conversationmessage.Intercept(f(g(h())))`.
func (c *ConversationMessageClient) Intercept(interceptors ...Interceptor) {
	c.inters.ConversationMessage = append(c.inters.ConversationMessage, interceptors...)
}

// Create returns a builder for creating a ConversationMessage entity.
func (c *ConversationMessageClient) Create() *ConversationMessageCreate {
	mutation := newConversationMessageMutation(c.config, OpCreate)
	return &ConversationMessageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ConversationMessage entities.
func (c *ConversationMessageClient) CreateBulk(builders ...*ConversationMessageCreate) *ConversationMessageCreateBulk {
	return &ConversationMessageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ConversationMessageClient) MapCreateBulk(slice any, setFunc func(*ConversationMessageCreate, int)) *ConversationMessageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ConversationMessageCreateBulk{err: fmt.Errorf("calling to ConversationMessageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ConversationMessageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ConversationMessageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ConversationMessage.
func (c *ConversationMessageClient) Update() *ConversationMessageUpdate {
	mutation := newConversationMessageMutation(c.config, OpUpdate)
	return &ConversationMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ConversationMessageClient) UpdateOne(_m *ConversationMessage) *ConversationMessageUpdateOne {
	mutation := newConversationMessageMutation(c.config, OpUpdateOne, withConversationMessage(_m))
	return &ConversationMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ConversationMessageClient) UpdateOneID(id string) *ConversationMessageUpdateOne {
	mutation := newConversationMessageMutation(c.config, OpUpdateOne, withConversationMessageID(id))
	return &ConversationMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ConversationMessage.
func (c *ConversationMessageClient) Delete() *ConversationMessageDelete {
	mutation := newConversationMessageMutation(c.config, OpDelete)
	return &ConversationMessageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ConversationMessageClient) DeleteOne(_m *ConversationMessage) *ConversationMessageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ConversationMessageClient) DeleteOneID(id string) *ConversationMessageDeleteOne {
	builder := c.Delete().Where(conversationmessage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ConversationMessageDeleteOne{builder}
}

// Query returns a query builder for ConversationMessage.
func (c *ConversationMessageClient) Query() *ConversationMessageQuery {
	return &ConversationMessageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeConversationMessage},
		inters: c.Interceptors(),
	}
}

// Get returns a ConversationMessage entity by its id.
func (c *ConversationMessageClient) Get(ctx context.Context, id string) (*ConversationMessage, error) {
	return c.Query().Where(conversationmessage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ConversationMessageClient) GetX(ctx context.Context, id string) *ConversationMessage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySession queries the session edge of a ConversationMessage.
func (c *ConversationMessageClient) QuerySession(_m *ConversationMessage) *SessionQuery {
	query := (&SessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(conversationmessage.Table, conversationmessage.FieldID, id),
			sqlgraph.To(session.Table, session.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, conversationmessage.SessionTable, conversationmessage.SessionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ConversationMessageClient) Hooks() []Hook {
	return c.hooks.ConversationMessage
}

// Interceptors returns the client interceptors.
func (c *ConversationMessageClient) Interceptors() []Interceptor {
	return c.inters.ConversationMessage
}

func (c *ConversationMessageClient) mutate(ctx context.Context, m *ConversationMessageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ConversationMessageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ConversationMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ConversationMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ConversationMessageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ConversationMessage mutation op: %q", m.Op())
	}
}

// CouncilDecisionClient is a client for the CouncilDecision schema.
type CouncilDecisionClient struct {
	config
}

// NewCouncilDecisionClient returns a client for the CouncilDecision from the given config.
func NewCouncilDecisionClient(c config) *CouncilDecisionClient {
	return &CouncilDecisionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `councildecision.Hooks(f(g(h())))`.
func (c *CouncilDecisionClient) Use(hooks ...Hook) {
	c.hooks.CouncilDecision = append(c.hooks.CouncilDecision, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `councildecision.Intercept(f(g(h())))`.
func (c *CouncilDecisionClient) Intercept(interceptors ...Interceptor) {
	c.inters.CouncilDecision = append(c.inters.CouncilDecision, interceptors...)
}

// Create returns a builder for creating a CouncilDecision entity.
func (c *CouncilDecisionClient) Create() *CouncilDecisionCreate {
	mutation := newCouncilDecisionMutation(c.config, OpCreate)
	return &CouncilDecisionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CouncilDecision entities.
func (c *CouncilDecisionClient) CreateBulk(builders ...*CouncilDecisionCreate) *CouncilDecisionCreateBulk {
	return &CouncilDecisionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CouncilDecisionClient) MapCreateBulk(slice any, setFunc func(*CouncilDecisionCreate, int)) *CouncilDecisionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CouncilDecisionCreateBulk{err: fmt.Errorf("calling to CouncilDecisionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CouncilDecisionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CouncilDecisionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CouncilDecision.
func (c *CouncilDecisionClient) Update() *CouncilDecisionUpdate {
	mutation := newCouncilDecisionMutation(c.config, OpUpdate)
	return &CouncilDecisionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CouncilDecisionClient) UpdateOne(_m *CouncilDecision) *CouncilDecisionUpdateOne {
	mutation := newCouncilDecisionMutation(c.config, OpUpdateOne, withCouncilDecision(_m))
	return &CouncilDecisionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CouncilDecisionClient) UpdateOneID(id string) *CouncilDecisionUpdateOne {
	mutation := newCouncilDecisionMutation(c.config, OpUpdateOne, withCouncilDecisionID(id))
	return &CouncilDecisionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CouncilDecision.
func (c *CouncilDecisionClient) Delete() *CouncilDecisionDelete {
	mutation := newCouncilDecisionMutation(c.config, OpDelete)
	return &CouncilDecisionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CouncilDecisionClient) DeleteOne(_m *CouncilDecision) *CouncilDecisionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CouncilDecisionClient) DeleteOneID(id string) *CouncilDecisionDeleteOne {
	builder := c.Delete().Where(councildecision.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CouncilDecisionDeleteOne{builder}
}

// Query returns a query builder for CouncilDecision.
func (c *CouncilDecisionClient) Query() *CouncilDecisionQuery {
	return &CouncilDecisionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCouncilDecision},
		inters: c.Interceptors(),
	}
}

// Get returns a CouncilDecision entity by its id.
func (c *CouncilDecisionClient) Get(ctx context.Context, id string) (*CouncilDecision, error) {
	return c.Query().Where(councildecision.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CouncilDecisionClient) GetX(ctx context.Context, id string) *CouncilDecision {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CouncilDecisionClient) Hooks() []Hook {
	return c.hooks.CouncilDecision
}

// Interceptors returns the client interceptors.
func (c *CouncilDecisionClient) Interceptors() []Interceptor {
	return c.inters.CouncilDecision
}

func (c *CouncilDecisionClient) mutate(ctx context.Context, m *CouncilDecisionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CouncilDecisionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CouncilDecisionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CouncilDecisionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CouncilDecisionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CouncilDecision mutation op: %q", m.Op())
	}
}

// HandoffClient is a client for the Handoff schema.
type HandoffClient struct {
	config
}

// NewHandoffClient returns a client for the Handoff from the given config.
func NewHandoffClient(c config) *HandoffClient {
	return &HandoffClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `handoff.Hooks(f(g(h())))`.
func (c *HandoffClient) Use(hooks ...Hook) {
	c.hooks.Handoff = append(c.hooks.Handoff, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `handoff.Intercept(f(g(h())))`.
func (c *HandoffClient) Intercept(interceptors ...Interceptor) {
	c.inters.Handoff = append(c.inters.Handoff, interceptors...)
}

// Create returns a builder for creating a Handoff entity.
func (c *HandoffClient) Create() *HandoffCreate {
	mutation := newHandoffMutation(c.config, OpCreate)
	return &HandoffCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Handoff entities.
func (c *HandoffClient) CreateBulk(builders ...*HandoffCreate) *HandoffCreateBulk {
	return &HandoffCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *HandoffClient) MapCreateBulk(slice any, setFunc func(*HandoffCreate, int)) *HandoffCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &HandoffCreateBulk{err: fmt.Errorf("calling to HandoffClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*HandoffCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &HandoffCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Handoff.
func (c *HandoffClient) Update() *HandoffUpdate {
	mutation := newHandoffMutation(c.config, OpUpdate)
	return &HandoffUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *HandoffClient) UpdateOne(_m *Handoff) *HandoffUpdateOne {
	mutation := newHandoffMutation(c.config, OpUpdateOne, withHandoff(_m))
	return &HandoffUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *HandoffClient) UpdateOneID(id string) *HandoffUpdateOne {
	mutation := newHandoffMutation(c.config, OpUpdateOne, withHandoffID(id))
	return &HandoffUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Handoff.
func (c *HandoffClient) Delete() *HandoffDelete {
	mutation := newHandoffMutation(c.config, OpDelete)
	return &HandoffDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *HandoffClient) DeleteOne(_m *Handoff) *HandoffDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *HandoffClient) DeleteOneID(id string) *HandoffDeleteOne {
	builder := c.Delete().Where(handoff.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &HandoffDeleteOne{builder}
}

// Query returns a query builder for Handoff.
func (c *HandoffClient) Query() *HandoffQuery {
	return &HandoffQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeHandoff},
		inters: c.Interceptors(),
	}
}

// Get returns a Handoff entity by its id.
func (c *HandoffClient) Get(ctx context.Context, id string) (*Handoff, error) {
	return c.Query().Where(handoff.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *HandoffClient) GetX(ctx context.Context, id string) *Handoff {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySession queries the session edge of a Handoff.
func (c *HandoffClient) QuerySession(_m *Handoff) *SessionQuery {
	query := (&SessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(handoff.Table, handoff.FieldID, id),
			sqlgraph.To(session.Table, session.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, handoff.SessionTable, handoff.SessionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *HandoffClient) Hooks() []Hook {
	return c.hooks.Handoff
}

// Interceptors returns the client interceptors.
func (c *HandoffClient) Interceptors() []Interceptor {
	return c.inters.Handoff
}

func (c *HandoffClient) mutate(ctx context.Context, m *HandoffMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&HandoffCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&HandoffUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&HandoffUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&HandoffDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Handoff mutation op: %q", m.Op())
	}
}

// PatternClient is a client for the Pattern schema.
type PatternClient struct {
	config
}

// NewPatternClient returns a client for the Pattern from the given config.
func NewPatternClient(c config) *PatternClient {
	return &PatternClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `pattern.Hooks(f(g(h())))`.
func (c *PatternClient) Use(hooks ...Hook) {
	c.hooks.Pattern = append(c.hooks.Pattern, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `pattern.Intercept(f(g(h())))`.
func (c *PatternClient) Intercept(interceptors ...Interceptor) {
	c.inters.Pattern = append(c.inters.Pattern, interceptors...)
}

// Create returns a builder for creating a Pattern entity.
func (c *PatternClient) Create() *PatternCreate {
	mutation := newPatternMutation(c.config, OpCreate)
	return &PatternCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Pattern entities.
func (c *PatternClient) CreateBulk(builders ...*PatternCreate) *PatternCreateBulk {
	return &PatternCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PatternClient) MapCreateBulk(slice any, setFunc func(*PatternCreate, int)) *PatternCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PatternCreateBulk{err: fmt.Errorf("calling to PatternClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PatternCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PatternCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Pattern.
func (c *PatternClient) Update() *PatternUpdate {
	mutation := newPatternMutation(c.config, OpUpdate)
	return &PatternUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PatternClient) UpdateOne(_m *Pattern) *PatternUpdateOne {
	mutation := newPatternMutation(c.config, OpUpdateOne, withPattern(_m))
	return &PatternUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PatternClient) UpdateOneID(id string) *PatternUpdateOne {
	mutation := newPatternMutation(c.config, OpUpdateOne, withPatternID(id))
	return &PatternUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Pattern.
func (c *PatternClient) Delete() *PatternDelete {
	mutation := newPatternMutation(c.config, OpDelete)
	return &PatternDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PatternClient) DeleteOne(_m *Pattern) *PatternDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PatternClient) DeleteOneID(id string) *PatternDeleteOne {
	builder := c.Delete().Where(pattern.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PatternDeleteOne{builder}
}

// Query returns a query builder for Pattern.
func (c *PatternClient) Query() *PatternQuery {
	return &PatternQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePattern},
		inters: c.Interceptors(),
	}
}

// Get returns a Pattern entity by its id.
func (c *PatternClient) Get(ctx context.Context, id string) (*Pattern, error) {
	return c.Query().Where(pattern.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PatternClient) GetX(ctx context.Context, id string) *Pattern {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryObservations queries the observations edge of a Pattern.
func (c *PatternClient) QueryObservations(_m *Pattern) *PatternObservationQuery {
	query := (&PatternObservationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(pattern.Table, pattern.FieldID, id),
			sqlgraph.To(patternobservation.Table, patternobservation.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, pattern.ObservationsTable, pattern.ObservationsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PatternClient) Hooks() []Hook {
	return c.hooks.Pattern
}

// Interceptors returns the client interceptors.
func (c *PatternClient) Interceptors() []Interceptor {
	return c.inters.Pattern
}

func (c *PatternClient) mutate(ctx context.Context, m *PatternMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PatternCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PatternUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PatternUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PatternDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Pattern mutation op: %q", m.Op())
	}
}

// PatternObservationClient is a client for the PatternObservation schema.
type PatternObservationClient struct {
	config
}

// NewPatternObservationClient returns a client for the PatternObservation from the given config.
func NewPatternObservationClient(c config) *PatternObservationClient {
	return &PatternObservationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `patternobservation.Hooks(f(g(h())))`.
func (c *PatternObservationClient) Use(hooks ...Hook) {
	c.hooks.PatternObservation = append(c.hooks.PatternObservation, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `patternobservation.Intercept(f(g(h())))`.
func (c *PatternObservationClient) Intercept(interceptors ...Interceptor) {
	c.inters.PatternObservation = append(c.inters.PatternObservation, interceptors...)
}

// Create returns a builder for creating a PatternObservation entity.
func (c *PatternObservationClient) Create() *PatternObservationCreate {
	mutation := newPatternObservationMutation(c.config, OpCreate)
	return &PatternObservationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PatternObservation entities.
func (c *PatternObservationClient) CreateBulk(builders ...*PatternObservationCreate) *PatternObservationCreateBulk {
	return &PatternObservationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PatternObservationClient) MapCreateBulk(slice any, setFunc func(*PatternObservationCreate, int)) *PatternObservationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PatternObservationCreateBulk{err: fmt.Errorf("calling to PatternObservationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PatternObservationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PatternObservationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PatternObservation.
func (c *PatternObservationClient) Update() *PatternObservationUpdate {
	mutation := newPatternObservationMutation(c.config, OpUpdate)
	return &PatternObservationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PatternObservationClient) UpdateOne(_m *PatternObservation) *PatternObservationUpdateOne {
	mutation := newPatternObservationMutation(c.config, OpUpdateOne, withPatternObservation(_m))
	return &PatternObservationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PatternObservationClient) UpdateOneID(id string) *PatternObservationUpdateOne {
	mutation := newPatternObservationMutation(c.config, OpUpdateOne, withPatternObservationID(id))
	return &PatternObservationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PatternObservation.
func (c *PatternObservationClient) Delete() *PatternObservationDelete {
	mutation := newPatternObservationMutation(c.config, OpDelete)
	return &PatternObservationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PatternObservationClient) DeleteOne(_m *PatternObservation) *PatternObservationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PatternObservationClient) DeleteOneID(id string) *PatternObservationDeleteOne {
	builder := c.Delete().Where(patternobservation.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PatternObservationDeleteOne{builder}
}

// Query returns a query builder for PatternObservation.
func (c *PatternObservationClient) Query() *PatternObservationQuery {
	return &PatternObservationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePatternObservation},
		inters: c.Interceptors(),
	}
}

// Get returns a PatternObservation entity by its id.
func (c *PatternObservationClient) Get(ctx context.Context, id string) (*PatternObservation, error) {
	return c.Query().Where(patternobservation.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PatternObservationClient) GetX(ctx context.Context, id string) *PatternObservation {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryPattern queries the pattern edge of a PatternObservation.
func (c *PatternObservationClient) QueryPattern(_m *PatternObservation) *PatternQuery {
	query := (&PatternClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(patternobservation.Table, patternobservation.FieldID, id),
			sqlgraph.To(pattern.Table, pattern.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, patternobservation.PatternTable, patternobservation.PatternColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PatternObservationClient) Hooks() []Hook {
	return c.hooks.PatternObservation
}

// Interceptors returns the client interceptors.
func (c *PatternObservationClient) Interceptors() []Interceptor {
	return c.inters.PatternObservation
}

func (c *PatternObservationClient) mutate(ctx context.Context, m *PatternObservationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PatternObservationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PatternObservationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PatternObservationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PatternObservationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PatternObservation mutation op: %q", m.Op())
	}
}

// ProjectClient is a client for the Project schema.
type ProjectClient struct {
	config
}

// NewProjectClient returns a client for the Project from the given config.
func NewProjectClient(c config) *ProjectClient {
	return &ProjectClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `project.Hooks(f(g(h())))`.
func (c *ProjectClient) Use(hooks ...Hook) {
	c.hooks.Project = append(c.hooks.Project, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `project.Intercept(f(g(h())))`.
func (c *ProjectClient) Intercept(interceptors ...Interceptor) {
	c.inters.Project = append(c.inters.Project, interceptors...)
}

// Create returns a builder for creating a Project entity.
func (c *ProjectClient) Create() *ProjectCreate {
	mutation := newProjectMutation(c.config, OpCreate)
	return &ProjectCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Project entities.
func (c *ProjectClient) CreateBulk(builders ...*ProjectCreate) *ProjectCreateBulk {
	return &ProjectCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProjectClient) MapCreateBulk(slice any, setFunc func(*ProjectCreate, int)) *ProjectCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProjectCreateBulk{err: fmt.Errorf("calling to ProjectClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProjectCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProjectCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Project.
func (c *ProjectClient) Update() *ProjectUpdate {
	mutation := newProjectMutation(c.config, OpUpdate)
	return &ProjectUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProjectClient) UpdateOne(_m *Project) *ProjectUpdateOne {
	mutation := newProjectMutation(c.config, OpUpdateOne, withProject(_m))
	return &ProjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProjectClient) UpdateOneID(id string) *ProjectUpdateOne {
	mutation := newProjectMutation(c.config, OpUpdateOne, withProjectID(id))
	return &ProjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Project.
func (c *ProjectClient) Delete() *ProjectDelete {
	mutation := newProjectMutation(c.config, OpDelete)
	return &ProjectDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProjectClient) DeleteOne(_m *Project) *ProjectDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProjectClient) DeleteOneID(id string) *ProjectDeleteOne {
	builder := c.Delete().Where(project.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProjectDeleteOne{builder}
}

// Query returns a query builder for Project.
func (c *ProjectClient) Query() *ProjectQuery {
	return &ProjectQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProject},
		inters: c.Interceptors(),
	}
}

// Get returns a Project entity by its id.
func (c *ProjectClient) Get(ctx context.Context, id string) (*Project, error) {
	return c.Query().Where(project.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProjectClient) GetX(ctx context.Context, id string) *Project {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTasks queries the tasks edge of a Project.
func (c *ProjectClient) QueryTasks(_m *Project) *TaskQuery {
	query := (&TaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(project.Table, project.FieldID, id),
			sqlgraph.To(task.Table, task.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, project.TasksTable, project.TasksColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ProjectClient) Hooks() []Hook {
	return c.hooks.Project
}

// Interceptors returns the client interceptors.
func (c *ProjectClient) Interceptors() []Interceptor {
	return c.inters.Project
}

func (c *ProjectClient) mutate(ctx context.Context, m *ProjectMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProjectCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProjectUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProjectDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Project mutation op: %q", m.Op())
	}
}

// SessionClient is a client for the Session schema.
type SessionClient struct {
	config
}

// NewSessionClient returns a client for the Session from the given config.
func NewSessionClient(c config) *SessionClient {
	return &SessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `session.Hooks(f(g(h())))`.
func (c *SessionClient) Use(hooks ...Hook) {
	c.hooks.Session = append(c.hooks.Session, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `session.Intercept(f(g(h())))`.
func (c *SessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Session = append(c.inters.Session, interceptors...)
}

// Create returns a builder for creating a Session entity.
func (c *SessionClient) Create() *SessionCreate {
	mutation := newSessionMutation(c.config, OpCreate)
	return &SessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Session entities.
func (c *SessionClient) CreateBulk(builders ...*SessionCreate) *SessionCreateBulk {
	return &SessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SessionClient) MapCreateBulk(slice any, setFunc func(*SessionCreate, int)) *SessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SessionCreateBulk{err: fmt.Errorf("calling to SessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Session.
func (c *SessionClient) Update() *SessionUpdate {
	mutation := newSessionMutation(c.config, OpUpdate)
	return &SessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SessionClient) UpdateOne(_m *Session) *SessionUpdateOne {
	mutation := newSessionMutation(c.config, OpUpdateOne, withSession(_m))
	return &SessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SessionClient) UpdateOneID(id string) *SessionUpdateOne {
	mutation := newSessionMutation(c.config, OpUpdateOne, withSessionID(id))
	return &SessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Session.
func (c *SessionClient) Delete() *SessionDelete {
	mutation := newSessionMutation(c.config, OpDelete)
	return &SessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SessionClient) DeleteOne(_m *Session) *SessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SessionClient) DeleteOneID(id string) *SessionDeleteOne {
	builder := c.Delete().Where(session.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SessionDeleteOne{builder}
}

// Query returns a query builder for Session.
func (c *SessionClient) Query() *SessionQuery {
	return &SessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSession},
		inters: c.Interceptors(),
	}
}

// Get returns a Session entity by its id.
func (c *SessionClient) Get(ctx context.Context, id string) (*Session, error) {
	return c.Query().Where(session.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SessionClient) GetX(ctx context.Context, id string) *Session {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryEvents queries the events edge of a Session.
func (c *SessionClient) QueryEvents(_m *Session) *SessionEventQuery {
	query := (&SessionEventClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(session.Table, session.FieldID, id),
			sqlgraph.To(sessionevent.Table, sessionevent.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, session.EventsTable, session.EventsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryMessages queries the messages edge of a Session.
func (c *SessionClient) QueryMessages(_m *Session) *ConversationMessageQuery {
	query := (&ConversationMessageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(session.Table, session.FieldID, id),
			sqlgraph.To(conversationmessage.Table, conversationmessage.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, session.MessagesTable, session.MessagesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryHandoffs queries the handoffs edge of a Session.
func (c *SessionClient) QueryHandoffs(_m *Session) *HandoffQuery {
	query := (&HandoffClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(session.Table, session.FieldID, id),
			sqlgraph.To(handoff.Table, handoff.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, session.HandoffsTable, session.HandoffsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SessionClient) Hooks() []Hook {
	return c.hooks.Session
}

// Interceptors returns the client interceptors.
func (c *SessionClient) Interceptors() []Interceptor {
	return c.inters.Session
}

func (c *SessionClient) mutate(ctx context.Context, m *SessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Session mutation op: %q", m.Op())
	}
}

// SessionEventClient is a client for the SessionEvent schema.
type SessionEventClient struct {
	config
}

// NewSessionEventClient returns a client for the SessionEvent from the given config.
func NewSessionEventClient(c config) *SessionEventClient {
	return &SessionEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sessionevent.Hooks(f(g(h())))`.
func (c *SessionEventClient) Use(hooks ...Hook) {
	c.hooks.SessionEvent = append(c.hooks.SessionEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sessionevent.Intercept(f(g(h())))`.
func (c *SessionEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.SessionEvent = append(c.inters.SessionEvent, interceptors...)
}

// Create returns a builder for creating a SessionEvent entity.
func (c *SessionEventClient) Create() *SessionEventCreate {
	mutation := newSessionEventMutation(c.config, OpCreate)
	return &SessionEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SessionEvent entities.
func (c *SessionEventClient) CreateBulk(builders ...*SessionEventCreate) *SessionEventCreateBulk {
	return &SessionEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SessionEventClient) MapCreateBulk(slice any, setFunc func(*SessionEventCreate, int)) *SessionEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SessionEventCreateBulk{err: fmt.Errorf("calling to SessionEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SessionEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SessionEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SessionEvent.
func (c *SessionEventClient) Update() *SessionEventUpdate {
	mutation := newSessionEventMutation(c.config, OpUpdate)
	return &SessionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SessionEventClient) UpdateOne(_m *SessionEvent) *SessionEventUpdateOne {
	mutation := newSessionEventMutation(c.config, OpUpdateOne, withSessionEvent(_m))
	return &SessionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SessionEventClient) UpdateOneID(id string) *SessionEventUpdateOne {
	mutation := newSessionEventMutation(c.config, OpUpdateOne, withSessionEventID(id))
	return &SessionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SessionEvent.
func (c *SessionEventClient) Delete() *SessionEventDelete {
	mutation := newSessionEventMutation(c.config, OpDelete)
	return &SessionEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SessionEventClient) DeleteOne(_m *SessionEvent) *SessionEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SessionEventClient) DeleteOneID(id string) *SessionEventDeleteOne {
	builder := c.Delete().Where(sessionevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SessionEventDeleteOne{builder}
}

// Query returns a query builder for SessionEvent.
func (c *SessionEventClient) Query() *SessionEventQuery {
	return &SessionEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSessionEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a SessionEvent entity by its id.
func (c *SessionEventClient) Get(ctx context.Context, id string) (*SessionEvent, error) {
	return c.Query().Where(sessionevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SessionEventClient) GetX(ctx context.Context, id string) *SessionEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySession queries the session edge of a SessionEvent.
func (c *SessionEventClient) QuerySession(_m *SessionEvent) *SessionQuery {
	query := (&SessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(sessionevent.Table, sessionevent.FieldID, id),
			sqlgraph.To(session.Table, session.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, sessionevent.SessionTable, sessionevent.SessionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SessionEventClient) Hooks() []Hook {
	return c.hooks.SessionEvent
}

// Interceptors returns the client interceptors.
func (c *SessionEventClient) Interceptors() []Interceptor {
	return c.inters.SessionEvent
}

func (c *SessionEventClient) mutate(ctx context.Context, m *SessionEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SessionEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SessionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SessionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SessionEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SessionEvent mutation op: %q", m.Op())
	}
}

// SharedContextClient is a client for the SharedContext schema.
type SharedContextClient struct {
	config
}

// NewSharedContextClient returns a client for the SharedContext from the given config.
func NewSharedContextClient(c config) *SharedContextClient {
	return &SharedContextClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sharedcontext.Hooks(f(g(h())))`.
func (c *SharedContextClient) Use(hooks ...Hook) {
	c.hooks.SharedContext = append(c.hooks.SharedContext, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sharedcontext.Intercept(f(g(h())))`.
func (c *SharedContextClient) Intercept(interceptors ...Interceptor) {
	c.inters.SharedContext = append(c.inters.SharedContext, interceptors...)
}

// Create returns a builder for creating a SharedContext entity.
func (c *SharedContextClient) Create() *SharedContextCreate {
	mutation := newSharedContextMutation(c.config, OpCreate)
	return &SharedContextCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SharedContext entities.
func (c *SharedContextClient) CreateBulk(builders ...*SharedContextCreate) *SharedContextCreateBulk {
	return &SharedContextCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SharedContextClient) MapCreateBulk(slice any, setFunc func(*SharedContextCreate, int)) *SharedContextCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SharedContextCreateBulk{err: fmt.Errorf("calling to SharedContextClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SharedContextCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SharedContextCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SharedContext.
func (c *SharedContextClient) Update() *SharedContextUpdate {
	mutation := newSharedContextMutation(c.config, OpUpdate)
	return &SharedContextUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SharedContextClient) UpdateOne(_m *SharedContext) *SharedContextUpdateOne {
	mutation := newSharedContextMutation(c.config, OpUpdateOne, withSharedContext(_m))
	return &SharedContextUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SharedContextClient) UpdateOneID(id string) *SharedContextUpdateOne {
	mutation := newSharedContextMutation(c.config, OpUpdateOne, withSharedContextID(id))
	return &SharedContextUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SharedContext.
func (c *SharedContextClient) Delete() *SharedContextDelete {
	mutation := newSharedContextMutation(c.config, OpDelete)
	return &SharedContextDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SharedContextClient) DeleteOne(_m *SharedContext) *SharedContextDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SharedContextClient) DeleteOneID(id string) *SharedContextDeleteOne {
	builder := c.Delete().Where(sharedcontext.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SharedContextDeleteOne{builder}
}

// Query returns a query builder for SharedContext.
func (c *SharedContextClient) Query() *SharedContextQuery {
	return &SharedContextQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSharedContext},
		inters: c.Interceptors(),
	}
}

// Get returns a SharedContext entity by its id.
func (c *SharedContextClient) Get(ctx context.Context, id string) (*SharedContext, error) {
	return c.Query().Where(sharedcontext.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SharedContextClient) GetX(ctx context.Context, id string) *SharedContext {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SharedContextClient) Hooks() []Hook {
	return c.hooks.SharedContext
}

// Interceptors returns the client interceptors.
func (c *SharedContextClient) Interceptors() []Interceptor {
	return c.inters.SharedContext
}

func (c *SharedContextClient) mutate(ctx context.Context, m *SharedContextMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SharedContextCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SharedContextUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SharedContextUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SharedContextDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SharedContext mutation op: %q", m.Op())
	}
}

// SharedContextHistoryClient is a client for the SharedContextHistory schema.
type SharedContextHistoryClient struct {
	config
}

// NewSharedContextHistoryClient returns a client for the SharedContextHistory from the given config.
func NewSharedContextHistoryClient(c config) *SharedContextHistoryClient {
	return &SharedContextHistoryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sharedcontexthistory.Hooks(f(g(h())))`.
func (c *SharedContextHistoryClient) Use(hooks ...Hook) {
	c.hooks.SharedContextHistory = append(c.hooks.SharedContextHistory, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sharedcontexthistory.Intercept(f(g(h())))`.
func (c *SharedContextHistoryClient) Intercept(interceptors ...Interceptor) {
	c.inters.SharedContextHistory = append(c.inters.SharedContextHistory, interceptors...)
}

// Create returns a builder for creating a SharedContextHistory entity.
func (c *SharedContextHistoryClient) Create() *SharedContextHistoryCreate {
	mutation := newSharedContextHistoryMutation(c.config, OpCreate)
	return &SharedContextHistoryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SharedContextHistory entities.
func (c *SharedContextHistoryClient) CreateBulk(builders ...*SharedContextHistoryCreate) *SharedContextHistoryCreateBulk {
	return &SharedContextHistoryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SharedContextHistoryClient) MapCreateBulk(slice any, setFunc func(*SharedContextHistoryCreate, int)) *SharedContextHistoryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SharedContextHistoryCreateBulk{err: fmt.Errorf("calling to SharedContextHistoryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SharedContextHistoryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SharedContextHistoryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SharedContextHistory.
func (c *SharedContextHistoryClient) Update() *SharedContextHistoryUpdate {
	mutation := newSharedContextHistoryMutation(c.config, OpUpdate)
	return &SharedContextHistoryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SharedContextHistoryClient) UpdateOne(_m *SharedContextHistory) *SharedContextHistoryUpdateOne {
	mutation := newSharedContextHistoryMutation(c.config, OpUpdateOne, withSharedContextHistory(_m))
	return &SharedContextHistoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SharedContextHistoryClient) UpdateOneID(id string) *SharedContextHistoryUpdateOne {
	mutation := newSharedContextHistoryMutation(c.config, OpUpdateOne, withSharedContextHistoryID(id))
	return &SharedContextHistoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SharedContextHistory.
func (c *SharedContextHistoryClient) Delete() *SharedContextHistoryDelete {
	mutation := newSharedContextHistoryMutation(c.config, OpDelete)
	return &SharedContextHistoryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SharedContextHistoryClient) DeleteOne(_m *SharedContextHistory) *SharedContextHistoryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SharedContextHistoryClient) DeleteOneID(id string) *SharedContextHistoryDeleteOne {
	builder := c.Delete().Where(sharedcontexthistory.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SharedContextHistoryDeleteOne{builder}
}

// Query returns a query builder for SharedContextHistory.
func (c *SharedContextHistoryClient) Query() *SharedContextHistoryQuery {
	return &SharedContextHistoryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSharedContextHistory},
		inters: c.Interceptors(),
	}
}

// Get returns a SharedContextHistory entity by its id.
func (c *SharedContextHistoryClient) Get(ctx context.Context, id string) (*SharedContextHistory, error) {
	return c.Query().Where(sharedcontexthistory.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SharedContextHistoryClient) GetX(ctx context.Context, id string) *SharedContextHistory {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SharedContextHistoryClient) Hooks() []Hook {
	return c.hooks.SharedContextHistory
}

// Interceptors returns the client interceptors.
func (c *SharedContextHistoryClient) Interceptors() []Interceptor {
	return c.inters.SharedContextHistory
}

func (c *SharedContextHistoryClient) mutate(ctx context.Context, m *SharedContextHistoryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SharedContextHistoryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SharedContextHistoryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SharedContextHistoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SharedContextHistoryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SharedContextHistory mutation op: %q", m.Op())
	}
}

// TaskClient is a client for the Task schema.
type TaskClient struct {
	config
}

// NewTaskClient returns a client for the Task from the given config.
func NewTaskClient(c config) *TaskClient {
	return &TaskClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `task.Hooks(f(g(h())))`.
func (c *TaskClient) Use(hooks ...Hook) {
	c.hooks.Task = append(c.hooks.Task, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `task.Intercept(f(g(h())))`.
func (c *TaskClient) Intercept(interceptors ...Interceptor) {
	c.inters.Task = append(c.inters.Task, interceptors...)
}

// Create returns a builder for creating a Task entity.
func (c *TaskClient) Create() *TaskCreate {
	mutation := newTaskMutation(c.config, OpCreate)
	return &TaskCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Task entities.
func (c *TaskClient) CreateBulk(builders ...*TaskCreate) *TaskCreateBulk {
	return &TaskCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TaskClient) MapCreateBulk(slice any, setFunc func(*TaskCreate, int)) *TaskCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TaskCreateBulk{err: fmt.Errorf("calling to TaskClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TaskCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TaskCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Task.
func (c *TaskClient) Update() *TaskUpdate {
	mutation := newTaskMutation(c.config, OpUpdate)
	return &TaskUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TaskClient) UpdateOne(_m *Task) *TaskUpdateOne {
	mutation := newTaskMutation(c.config, OpUpdateOne, withTask(_m))
	return &TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TaskClient) UpdateOneID(id string) *TaskUpdateOne {
	mutation := newTaskMutation(c.config, OpUpdateOne, withTaskID(id))
	return &TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Task.
func (c *TaskClient) Delete() *TaskDelete {
	mutation := newTaskMutation(c.config, OpDelete)
	return &TaskDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TaskClient) DeleteOne(_m *Task) *TaskDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TaskClient) DeleteOneID(id string) *TaskDeleteOne {
	builder := c.Delete().Where(task.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TaskDeleteOne{builder}
}

// Query returns a query builder for Task.
func (c *TaskClient) Query() *TaskQuery {
	return &TaskQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTask},
		inters: c.Interceptors(),
	}
}

// Get returns a Task entity by its id.
func (c *TaskClient) Get(ctx context.Context, id string) (*Task, error) {
	return c.Query().Where(task.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TaskClient) GetX(ctx context.Context, id string) *Task {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryProject queries the project edge of a Task.
func (c *TaskClient) QueryProject(_m *Task) *ProjectQuery {
	query := (&ProjectClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(task.Table, task.FieldID, id),
			sqlgraph.To(project.Table, project.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, task.ProjectTable, task.ProjectColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TaskClient) Hooks() []Hook {
	return c.hooks.Task
}

// Interceptors returns the client interceptors.
func (c *TaskClient) Interceptors() []Interceptor {
	return c.inters.Task
}

func (c *TaskClient) mutate(ctx context.Context, m *TaskMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TaskCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TaskUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TaskDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Task mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Agent, AuditEntry, ConductorLog, ConversationMessage, CouncilDecision, Handoff,
		Pattern, PatternObservation, Project, Session, SessionEvent, SharedContext,
		SharedContextHistory, Task []ent.Hook
	}
	inters struct {
		Agent, AuditEntry, ConductorLog, ConversationMessage, CouncilDecision, Handoff,
		Pattern, PatternObservation, Project, Session, SessionEvent, SharedContext,
		SharedContextHistory, Task []ent.Interceptor
	}
)
