// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/NoAme666/aiquant/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/NoAme666/aiquant/ent/agentprofile"
	"github.com/NoAme666/aiquant/ent/approvalitem"
	"github.com/NoAme666/aiquant/ent/budgetaccount"
	"github.com/NoAme666/aiquant/ent/busmessage"
	"github.com/NoAme666/aiquant/ent/event"
	"github.com/NoAme666/aiquant/ent/feedbackentry"
	"github.com/NoAme666/aiquant/ent/governancedecision"
	"github.com/NoAme666/aiquant/ent/intentionrecord"
	"github.com/NoAme666/aiquant/ent/memoryapproval"
	"github.com/NoAme666/aiquant/ent/memoryrecord"
	"github.com/NoAme666/aiquant/ent/researchcycle"
	"github.com/NoAme666/aiquant/ent/riskrule"
	"github.com/NoAme666/aiquant/ent/toolcall"
	"github.com/NoAme666/aiquant/ent/toolrequest"
	"github.com/NoAme666/aiquant/ent/topicrecord"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AgentProfile is the client for interacting with the AgentProfile builders.
	AgentProfile *AgentProfileClient
	// ApprovalItem is the client for interacting with the ApprovalItem builders.
	ApprovalItem *ApprovalItemClient
	// BudgetAccount is the client for interacting with the BudgetAccount builders.
	BudgetAccount *BudgetAccountClient
	// BusMessage is the client for interacting with the BusMessage builders.
	BusMessage *BusMessageClient
	// Event is the client for interacting with the Event builders.
	Event *EventClient
	// FeedbackEntry is the client for interacting with the FeedbackEntry builders.
	FeedbackEntry *FeedbackEntryClient
	// GovernanceDecision is the client for interacting with the GovernanceDecision builders.
	GovernanceDecision *GovernanceDecisionClient
	// IntentionRecord is the client for interacting with the IntentionRecord builders.
	IntentionRecord *IntentionRecordClient
	// MemoryApproval is the client for interacting with the MemoryApproval builders.
	MemoryApproval *MemoryApprovalClient
	// MemoryRecord is the client for interacting with the MemoryRecord builders.
	MemoryRecord *MemoryRecordClient
	// ResearchCycle is the client for interacting with the ResearchCycle builders.
	ResearchCycle *ResearchCycleClient
	// RiskRule is the client for interacting with the RiskRule builders.
	RiskRule *RiskRuleClient
	// ToolCall is the client for interacting with the ToolCall builders.
	ToolCall *ToolCallClient
	// ToolRequest is the client for interacting with the ToolRequest builders.
	ToolRequest *ToolRequestClient
	// TopicRecord is the client for interacting with the TopicRecord builders.
	TopicRecord *TopicRecordClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AgentProfile = NewAgentProfileClient(c.config)
	c.ApprovalItem = NewApprovalItemClient(c.config)
	c.BudgetAccount = NewBudgetAccountClient(c.config)
	c.BusMessage = NewBusMessageClient(c.config)
	c.Event = NewEventClient(c.config)
	c.FeedbackEntry = NewFeedbackEntryClient(c.config)
	c.GovernanceDecision = NewGovernanceDecisionClient(c.config)
	c.IntentionRecord = NewIntentionRecordClient(c.config)
	c.MemoryApproval = NewMemoryApprovalClient(c.config)
	c.MemoryRecord = NewMemoryRecordClient(c.config)
	c.ResearchCycle = NewResearchCycleClient(c.config)
	c.RiskRule = NewRiskRuleClient(c.config)
	c.ToolCall = NewToolCallClient(c.config)
	c.ToolRequest = NewToolRequestClient(c.config)
	c.TopicRecord = NewTopicRecordClient(c.config)
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
		ctx:                ctx,
		config:             cfg,
		AgentProfile:       NewAgentProfileClient(cfg),
		ApprovalItem:       NewApprovalItemClient(cfg),
		BudgetAccount:      NewBudgetAccountClient(cfg),
		BusMessage:         NewBusMessageClient(cfg),
		Event:              NewEventClient(cfg),
		FeedbackEntry:      NewFeedbackEntryClient(cfg),
		GovernanceDecision: NewGovernanceDecisionClient(cfg),
		IntentionRecord:    NewIntentionRecordClient(cfg),
		MemoryApproval:     NewMemoryApprovalClient(cfg),
		MemoryRecord:       NewMemoryRecordClient(cfg),
		ResearchCycle:      NewResearchCycleClient(cfg),
		RiskRule:           NewRiskRuleClient(cfg),
		ToolCall:           NewToolCallClient(cfg),
		ToolRequest:        NewToolRequestClient(cfg),
		TopicRecord:        NewTopicRecordClient(cfg),
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
		ctx:                ctx,
		config:             cfg,
		AgentProfile:       NewAgentProfileClient(cfg),
		ApprovalItem:       NewApprovalItemClient(cfg),
		BudgetAccount:      NewBudgetAccountClient(cfg),
		BusMessage:         NewBusMessageClient(cfg),
		Event:              NewEventClient(cfg),
		FeedbackEntry:      NewFeedbackEntryClient(cfg),
		GovernanceDecision: NewGovernanceDecisionClient(cfg),
		IntentionRecord:    NewIntentionRecordClient(cfg),
		MemoryApproval:     NewMemoryApprovalClient(cfg),
		MemoryRecord:       NewMemoryRecordClient(cfg),
		ResearchCycle:      NewResearchCycleClient(cfg),
		RiskRule:           NewRiskRuleClient(cfg),
		ToolCall:           NewToolCallClient(cfg),
		ToolRequest:        NewToolRequestClient(cfg),
		TopicRecord:        NewTopicRecordClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AgentProfile.
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
		c.AgentProfile, c.ApprovalItem, c.BudgetAccount, c.BusMessage, c.Event,
		c.FeedbackEntry, c.GovernanceDecision, c.IntentionRecord, c.MemoryApproval,
		c.MemoryRecord, c.ResearchCycle, c.RiskRule, c.ToolCall, c.ToolRequest,
		c.TopicRecord,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AgentProfile, c.ApprovalItem, c.BudgetAccount, c.BusMessage, c.Event,
		c.FeedbackEntry, c.GovernanceDecision, c.IntentionRecord, c.MemoryApproval,
		c.MemoryRecord, c.ResearchCycle, c.RiskRule, c.ToolCall, c.ToolRequest,
		c.TopicRecord,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AgentProfileMutation:
		return c.AgentProfile.mutate(ctx, m)
	case *ApprovalItemMutation:
		return c.ApprovalItem.mutate(ctx, m)
	case *BudgetAccountMutation:
		return c.BudgetAccount.mutate(ctx, m)
	case *BusMessageMutation:
		return c.BusMessage.mutate(ctx, m)
	case *EventMutation:
		return c.Event.mutate(ctx, m)
	case *FeedbackEntryMutation:
		return c.FeedbackEntry.mutate(ctx, m)
	case *GovernanceDecisionMutation:
		return c.GovernanceDecision.mutate(ctx, m)
	case *IntentionRecordMutation:
		return c.IntentionRecord.mutate(ctx, m)
	case *MemoryApprovalMutation:
		return c.MemoryApproval.mutate(ctx, m)
	case *MemoryRecordMutation:
		return c.MemoryRecord.mutate(ctx, m)
	case *ResearchCycleMutation:
		return c.ResearchCycle.mutate(ctx, m)
	case *RiskRuleMutation:
		return c.RiskRule.mutate(ctx, m)
	case *ToolCallMutation:
		return c.ToolCall.mutate(ctx, m)
	case *ToolRequestMutation:
		return c.ToolRequest.mutate(ctx, m)
	case *TopicRecordMutation:
		return c.TopicRecord.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AgentProfileClient is a client for the AgentProfile schema.
type AgentProfileClient struct {
	config
}

// NewAgentProfileClient returns a client for the AgentProfile from the given config.
func NewAgentProfileClient(c config) *AgentProfileClient {
	return &AgentProfileClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agentprofile.Hooks(f(g(h())))`.
func (c *AgentProfileClient) Use(hooks ...Hook) {
	c.hooks.AgentProfile = append(c.hooks.AgentProfile, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agentprofile.Intercept(f(g(h())))`.
func (c *AgentProfileClient) Intercept(interceptors ...Interceptor) {
	c.inters.AgentProfile = append(c.inters.AgentProfile, interceptors...)
}

// Create returns a builder for creating a AgentProfile entity.
func (c *AgentProfileClient) Create() *AgentProfileCreate {
	mutation := newAgentProfileMutation(c.config, OpCreate)
	return &AgentProfileCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AgentProfile entities.
func (c *AgentProfileClient) CreateBulk(builders ...*AgentProfileCreate) *AgentProfileCreateBulk {
	return &AgentProfileCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentProfileClient) MapCreateBulk(slice any, setFunc func(*AgentProfileCreate, int)) *AgentProfileCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentProfileCreateBulk{err: fmt.Errorf("calling to AgentProfileClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentProfileCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentProfileCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AgentProfile.
func (c *AgentProfileClient) Update() *AgentProfileUpdate {
	mutation := newAgentProfileMutation(c.config, OpUpdate)
	return &AgentProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentProfileClient) UpdateOne(_m *AgentProfile) *AgentProfileUpdateOne {
	mutation := newAgentProfileMutation(c.config, OpUpdateOne, withAgentProfile(_m))
	return &AgentProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentProfileClient) UpdateOneID(id string) *AgentProfileUpdateOne {
	mutation := newAgentProfileMutation(c.config, OpUpdateOne, withAgentProfileID(id))
	return &AgentProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AgentProfile.
func (c *AgentProfileClient) Delete() *AgentProfileDelete {
	mutation := newAgentProfileMutation(c.config, OpDelete)
	return &AgentProfileDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentProfileClient) DeleteOne(_m *AgentProfile) *AgentProfileDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentProfileClient) DeleteOneID(id string) *AgentProfileDeleteOne {
	builder := c.Delete().Where(agentprofile.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentProfileDeleteOne{builder}
}

// Query returns a query builder for AgentProfile.
func (c *AgentProfileClient) Query() *AgentProfileQuery {
	return &AgentProfileQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgentProfile},
		inters: c.Interceptors(),
	}
}

// Get returns a AgentProfile entity by its id.
func (c *AgentProfileClient) Get(ctx context.Context, id string) (*AgentProfile, error) {
	return c.Query().Where(agentprofile.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentProfileClient) GetX(ctx context.Context, id string) *AgentProfile {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AgentProfileClient) Hooks() []Hook {
	return c.hooks.AgentProfile
}

// Interceptors returns the client interceptors.
func (c *AgentProfileClient) Interceptors() []Interceptor {
	return c.inters.AgentProfile
}

func (c *AgentProfileClient) mutate(ctx context.Context, m *AgentProfileMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentProfileCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentProfileDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AgentProfile mutation op: %q", m.Op())
	}
}

// ApprovalItemClient is a client for the ApprovalItem schema.
type ApprovalItemClient struct {
	config
}

// NewApprovalItemClient returns a client for the ApprovalItem from the given config.
func NewApprovalItemClient(c config) *ApprovalItemClient {
	return &ApprovalItemClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `approvalitem.Hooks(f(g(h())))`.
func (c *ApprovalItemClient) Use(hooks ...Hook) {
	c.hooks.ApprovalItem = append(c.hooks.ApprovalItem, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `approvalitem.Intercept(f(g(h())))`.
func (c *ApprovalItemClient) Intercept(interceptors ...Interceptor) {
	c.inters.ApprovalItem = append(c.inters.ApprovalItem, interceptors...)
}

// Create returns a builder for creating a ApprovalItem entity.
func (c *ApprovalItemClient) Create() *ApprovalItemCreate {
	mutation := newApprovalItemMutation(c.config, OpCreate)
	return &ApprovalItemCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ApprovalItem entities.
func (c *ApprovalItemClient) CreateBulk(builders ...*ApprovalItemCreate) *ApprovalItemCreateBulk {
	return &ApprovalItemCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ApprovalItemClient) MapCreateBulk(slice any, setFunc func(*ApprovalItemCreate, int)) *ApprovalItemCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ApprovalItemCreateBulk{err: fmt.Errorf("calling to ApprovalItemClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ApprovalItemCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ApprovalItemCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ApprovalItem.
func (c *ApprovalItemClient) Update() *ApprovalItemUpdate {
	mutation := newApprovalItemMutation(c.config, OpUpdate)
	return &ApprovalItemUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ApprovalItemClient) UpdateOne(_m *ApprovalItem) *ApprovalItemUpdateOne {
	mutation := newApprovalItemMutation(c.config, OpUpdateOne, withApprovalItem(_m))
	return &ApprovalItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ApprovalItemClient) UpdateOneID(id string) *ApprovalItemUpdateOne {
	mutation := newApprovalItemMutation(c.config, OpUpdateOne, withApprovalItemID(id))
	return &ApprovalItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ApprovalItem.
func (c *ApprovalItemClient) Delete() *ApprovalItemDelete {
	mutation := newApprovalItemMutation(c.config, OpDelete)
	return &ApprovalItemDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ApprovalItemClient) DeleteOne(_m *ApprovalItem) *ApprovalItemDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ApprovalItemClient) DeleteOneID(id string) *ApprovalItemDeleteOne {
	builder := c.Delete().Where(approvalitem.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ApprovalItemDeleteOne{builder}
}

// Query returns a query builder for ApprovalItem.
func (c *ApprovalItemClient) Query() *ApprovalItemQuery {
	return &ApprovalItemQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeApprovalItem},
		inters: c.Interceptors(),
	}
}

// Get returns a ApprovalItem entity by its id.
func (c *ApprovalItemClient) Get(ctx context.Context, id string) (*ApprovalItem, error) {
	return c.Query().Where(approvalitem.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ApprovalItemClient) GetX(ctx context.Context, id string) *ApprovalItem {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ApprovalItemClient) Hooks() []Hook {
	return c.hooks.ApprovalItem
}

// Interceptors returns the client interceptors.
func (c *ApprovalItemClient) Interceptors() []Interceptor {
	return c.inters.ApprovalItem
}

func (c *ApprovalItemClient) mutate(ctx context.Context, m *ApprovalItemMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ApprovalItemCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ApprovalItemUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ApprovalItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ApprovalItemDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ApprovalItem mutation op: %q", m.Op())
	}
}

// BudgetAccountClient is a client for the BudgetAccount schema.
type BudgetAccountClient struct {
	config
}

// NewBudgetAccountClient returns a client for the BudgetAccount from the given config.
func NewBudgetAccountClient(c config) *BudgetAccountClient {
	return &BudgetAccountClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `budgetaccount.Hooks(f(g(h())))`.
func (c *BudgetAccountClient) Use(hooks ...Hook) {
	c.hooks.BudgetAccount = append(c.hooks.BudgetAccount, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `budgetaccount.Intercept(f(g(h())))`.
func (c *BudgetAccountClient) Intercept(interceptors ...Interceptor) {
	c.inters.BudgetAccount = append(c.inters.BudgetAccount, interceptors...)
}

// Create returns a builder for creating a BudgetAccount entity.
func (c *BudgetAccountClient) Create() *BudgetAccountCreate {
	mutation := newBudgetAccountMutation(c.config, OpCreate)
	return &BudgetAccountCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of BudgetAccount entities.
func (c *BudgetAccountClient) CreateBulk(builders ...*BudgetAccountCreate) *BudgetAccountCreateBulk {
	return &BudgetAccountCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BudgetAccountClient) MapCreateBulk(slice any, setFunc func(*BudgetAccountCreate, int)) *BudgetAccountCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BudgetAccountCreateBulk{err: fmt.Errorf("calling to BudgetAccountClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BudgetAccountCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BudgetAccountCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for BudgetAccount.
func (c *BudgetAccountClient) Update() *BudgetAccountUpdate {
	mutation := newBudgetAccountMutation(c.config, OpUpdate)
	return &BudgetAccountUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BudgetAccountClient) UpdateOne(_m *BudgetAccount) *BudgetAccountUpdateOne {
	mutation := newBudgetAccountMutation(c.config, OpUpdateOne, withBudgetAccount(_m))
	return &BudgetAccountUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BudgetAccountClient) UpdateOneID(id string) *BudgetAccountUpdateOne {
	mutation := newBudgetAccountMutation(c.config, OpUpdateOne, withBudgetAccountID(id))
	return &BudgetAccountUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for BudgetAccount.
func (c *BudgetAccountClient) Delete() *BudgetAccountDelete {
	mutation := newBudgetAccountMutation(c.config, OpDelete)
	return &BudgetAccountDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BudgetAccountClient) DeleteOne(_m *BudgetAccount) *BudgetAccountDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BudgetAccountClient) DeleteOneID(id string) *BudgetAccountDeleteOne {
	builder := c.Delete().Where(budgetaccount.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BudgetAccountDeleteOne{builder}
}

// Query returns a query builder for BudgetAccount.
func (c *BudgetAccountClient) Query() *BudgetAccountQuery {
	return &BudgetAccountQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBudgetAccount},
		inters: c.Interceptors(),
	}
}

// Get returns a BudgetAccount entity by its id.
func (c *BudgetAccountClient) Get(ctx context.Context, id string) (*BudgetAccount, error) {
	return c.Query().Where(budgetaccount.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BudgetAccountClient) GetX(ctx context.Context, id string) *BudgetAccount {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *BudgetAccountClient) Hooks() []Hook {
	return c.hooks.BudgetAccount
}

// Interceptors returns the client interceptors.
func (c *BudgetAccountClient) Interceptors() []Interceptor {
	return c.inters.BudgetAccount
}

func (c *BudgetAccountClient) mutate(ctx context.Context, m *BudgetAccountMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BudgetAccountCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BudgetAccountUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BudgetAccountUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BudgetAccountDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown BudgetAccount mutation op: %q", m.Op())
	}
}

// BusMessageClient is a client for the BusMessage schema.
type BusMessageClient struct {
	config
}

// NewBusMessageClient returns a client for the BusMessage from the given config.
func NewBusMessageClient(c config) *BusMessageClient {
	return &BusMessageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `busmessage.Hooks(f(g(h())))`.
func (c *BusMessageClient) Use(hooks ...Hook) {
	c.hooks.BusMessage = append(c.hooks.BusMessage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `busmessage.Intercept(f(g(h())))`.
func (c *BusMessageClient) Intercept(interceptors ...Interceptor) {
	c.inters.BusMessage = append(c.inters.BusMessage, interceptors...)
}

// Create returns a builder for creating a BusMessage entity.
func (c *BusMessageClient) Create() *BusMessageCreate {
	mutation := newBusMessageMutation(c.config, OpCreate)
	return &BusMessageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of BusMessage entities.
func (c *BusMessageClient) CreateBulk(builders ...*BusMessageCreate) *BusMessageCreateBulk {
	return &BusMessageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BusMessageClient) MapCreateBulk(slice any, setFunc func(*BusMessageCreate, int)) *BusMessageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BusMessageCreateBulk{err: fmt.Errorf("calling to BusMessageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BusMessageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BusMessageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for BusMessage.
func (c *BusMessageClient) Update() *BusMessageUpdate {
	mutation := newBusMessageMutation(c.config, OpUpdate)
	return &BusMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BusMessageClient) UpdateOne(_m *BusMessage) *BusMessageUpdateOne {
	mutation := newBusMessageMutation(c.config, OpUpdateOne, withBusMessage(_m))
	return &BusMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BusMessageClient) UpdateOneID(id string) *BusMessageUpdateOne {
	mutation := newBusMessageMutation(c.config, OpUpdateOne, withBusMessageID(id))
	return &BusMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for BusMessage.
func (c *BusMessageClient) Delete() *BusMessageDelete {
	mutation := newBusMessageMutation(c.config, OpDelete)
	return &BusMessageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BusMessageClient) DeleteOne(_m *BusMessage) *BusMessageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BusMessageClient) DeleteOneID(id string) *BusMessageDeleteOne {
	builder := c.Delete().Where(busmessage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BusMessageDeleteOne{builder}
}

// Query returns a query builder for BusMessage.
func (c *BusMessageClient) Query() *BusMessageQuery {
	return &BusMessageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBusMessage},
		inters: c.Interceptors(),
	}
}

// Get returns a BusMessage entity by its id.
func (c *BusMessageClient) Get(ctx context.Context, id string) (*BusMessage, error) {
	return c.Query().Where(busmessage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BusMessageClient) GetX(ctx context.Context, id string) *BusMessage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *BusMessageClient) Hooks() []Hook {
	return c.hooks.BusMessage
}

// Interceptors returns the client interceptors.
func (c *BusMessageClient) Interceptors() []Interceptor {
	return c.inters.BusMessage
}

func (c *BusMessageClient) mutate(ctx context.Context, m *BusMessageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BusMessageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BusMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BusMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BusMessageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown BusMessage mutation op: %q", m.Op())
	}
}

// EventClient is a client for the Event schema.
type EventClient struct {
	config
}

// NewEventClient returns a client for the Event from the given config.
func NewEventClient(c config) *EventClient {
	return &EventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `event.Hooks(f(g(h())))`.
func (c *EventClient) Use(hooks ...Hook) {
	c.hooks.Event = append(c.hooks.Event, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `event.Intercept(f(g(h())))`.
func (c *EventClient) Intercept(interceptors ...Interceptor) {
	c.inters.Event = append(c.inters.Event, interceptors...)
}

// Create returns a builder for creating a Event entity.
func (c *EventClient) Create() *EventCreate {
	mutation := newEventMutation(c.config, OpCreate)
	return &EventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Event entities.
func (c *EventClient) CreateBulk(builders ...*EventCreate) *EventCreateBulk {
	return &EventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EventClient) MapCreateBulk(slice any, setFunc func(*EventCreate, int)) *EventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EventCreateBulk{err: fmt.Errorf("calling to EventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Event.
func (c *EventClient) Update() *EventUpdate {
	mutation := newEventMutation(c.config, OpUpdate)
	return &EventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EventClient) UpdateOne(_m *Event) *EventUpdateOne {
	mutation := newEventMutation(c.config, OpUpdateOne, withEvent(_m))
	return &EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EventClient) UpdateOneID(id string) *EventUpdateOne {
	mutation := newEventMutation(c.config, OpUpdateOne, withEventID(id))
	return &EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Event.
func (c *EventClient) Delete() *EventDelete {
	mutation := newEventMutation(c.config, OpDelete)
	return &EventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EventClient) DeleteOne(_m *Event) *EventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EventClient) DeleteOneID(id string) *EventDeleteOne {
	builder := c.Delete().Where(event.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EventDeleteOne{builder}
}

// Query returns a query builder for Event.
func (c *EventClient) Query() *EventQuery {
	return &EventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a Event entity by its id.
func (c *EventClient) Get(ctx context.Context, id string) (*Event, error) {
	return c.Query().Where(event.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EventClient) GetX(ctx context.Context, id string) *Event {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *EventClient) Hooks() []Hook {
	return c.hooks.Event
}

// Interceptors returns the client interceptors.
func (c *EventClient) Interceptors() []Interceptor {
	return c.inters.Event
}

func (c *EventClient) mutate(ctx context.Context, m *EventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Event mutation op: %q", m.Op())
	}
}

// FeedbackEntryClient is a client for the FeedbackEntry schema.
type FeedbackEntryClient struct {
	config
}

// NewFeedbackEntryClient returns a client for the FeedbackEntry from the given config.
func NewFeedbackEntryClient(c config) *FeedbackEntryClient {
	return &FeedbackEntryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `feedbackentry.Hooks(f(g(h())))`.
func (c *FeedbackEntryClient) Use(hooks ...Hook) {
	c.hooks.FeedbackEntry = append(c.hooks.FeedbackEntry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `feedbackentry.Intercept(f(g(h())))`.
func (c *FeedbackEntryClient) Intercept(interceptors ...Interceptor) {
	c.inters.FeedbackEntry = append(c.inters.FeedbackEntry, interceptors...)
}

// Create returns a builder for creating a FeedbackEntry entity.
func (c *FeedbackEntryClient) Create() *FeedbackEntryCreate {
	mutation := newFeedbackEntryMutation(c.config, OpCreate)
	return &FeedbackEntryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of FeedbackEntry entities.
func (c *FeedbackEntryClient) CreateBulk(builders ...*FeedbackEntryCreate) *FeedbackEntryCreateBulk {
	return &FeedbackEntryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FeedbackEntryClient) MapCreateBulk(slice any, setFunc func(*FeedbackEntryCreate, int)) *FeedbackEntryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FeedbackEntryCreateBulk{err: fmt.Errorf("calling to FeedbackEntryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FeedbackEntryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FeedbackEntryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for FeedbackEntry.
func (c *FeedbackEntryClient) Update() *FeedbackEntryUpdate {
	mutation := newFeedbackEntryMutation(c.config, OpUpdate)
	return &FeedbackEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FeedbackEntryClient) UpdateOne(_m *FeedbackEntry) *FeedbackEntryUpdateOne {
	mutation := newFeedbackEntryMutation(c.config, OpUpdateOne, withFeedbackEntry(_m))
	return &FeedbackEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FeedbackEntryClient) UpdateOneID(id string) *FeedbackEntryUpdateOne {
	mutation := newFeedbackEntryMutation(c.config, OpUpdateOne, withFeedbackEntryID(id))
	return &FeedbackEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for FeedbackEntry.
func (c *FeedbackEntryClient) Delete() *FeedbackEntryDelete {
	mutation := newFeedbackEntryMutation(c.config, OpDelete)
	return &FeedbackEntryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FeedbackEntryClient) DeleteOne(_m *FeedbackEntry) *FeedbackEntryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FeedbackEntryClient) DeleteOneID(id string) *FeedbackEntryDeleteOne {
	builder := c.Delete().Where(feedbackentry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FeedbackEntryDeleteOne{builder}
}

// Query returns a query builder for FeedbackEntry.
func (c *FeedbackEntryClient) Query() *FeedbackEntryQuery {
	return &FeedbackEntryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFeedbackEntry},
		inters: c.Interceptors(),
	}
}

// Get returns a FeedbackEntry entity by its id.
func (c *FeedbackEntryClient) Get(ctx context.Context, id string) (*FeedbackEntry, error) {
	return c.Query().Where(feedbackentry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FeedbackEntryClient) GetX(ctx context.Context, id string) *FeedbackEntry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *FeedbackEntryClient) Hooks() []Hook {
	return c.hooks.FeedbackEntry
}

// Interceptors returns the client interceptors.
func (c *FeedbackEntryClient) Interceptors() []Interceptor {
	return c.inters.FeedbackEntry
}

func (c *FeedbackEntryClient) mutate(ctx context.Context, m *FeedbackEntryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FeedbackEntryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FeedbackEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FeedbackEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FeedbackEntryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown FeedbackEntry mutation op: %q", m.Op())
	}
}

// GovernanceDecisionClient is a client for the GovernanceDecision schema.
type GovernanceDecisionClient struct {
	config
}

// NewGovernanceDecisionClient returns a client for the GovernanceDecision from the given config.
func NewGovernanceDecisionClient(c config) *GovernanceDecisionClient {
	return &GovernanceDecisionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `governancedecision.Hooks(f(g(h())))`.
func (c *GovernanceDecisionClient) Use(hooks ...Hook) {
	c.hooks.GovernanceDecision = append(c.hooks.GovernanceDecision, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `governancedecision.Intercept(f(g(h())))`.
func (c *GovernanceDecisionClient) Intercept(interceptors ...Interceptor) {
	c.inters.GovernanceDecision = append(c.inters.GovernanceDecision, interceptors...)
}

// Create returns a builder for creating a GovernanceDecision entity.
func (c *GovernanceDecisionClient) Create() *GovernanceDecisionCreate {
	mutation := newGovernanceDecisionMutation(c.config, OpCreate)
	return &GovernanceDecisionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of GovernanceDecision entities.
func (c *GovernanceDecisionClient) CreateBulk(builders ...*GovernanceDecisionCreate) *GovernanceDecisionCreateBulk {
	return &GovernanceDecisionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *GovernanceDecisionClient) MapCreateBulk(slice any, setFunc func(*GovernanceDecisionCreate, int)) *GovernanceDecisionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &GovernanceDecisionCreateBulk{err: fmt.Errorf("calling to GovernanceDecisionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*GovernanceDecisionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &GovernanceDecisionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for GovernanceDecision.
func (c *GovernanceDecisionClient) Update() *GovernanceDecisionUpdate {
	mutation := newGovernanceDecisionMutation(c.config, OpUpdate)
	return &GovernanceDecisionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *GovernanceDecisionClient) UpdateOne(_m *GovernanceDecision) *GovernanceDecisionUpdateOne {
	mutation := newGovernanceDecisionMutation(c.config, OpUpdateOne, withGovernanceDecision(_m))
	return &GovernanceDecisionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *GovernanceDecisionClient) UpdateOneID(id string) *GovernanceDecisionUpdateOne {
	mutation := newGovernanceDecisionMutation(c.config, OpUpdateOne, withGovernanceDecisionID(id))
	return &GovernanceDecisionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for GovernanceDecision.
func (c *GovernanceDecisionClient) Delete() *GovernanceDecisionDelete {
	mutation := newGovernanceDecisionMutation(c.config, OpDelete)
	return &GovernanceDecisionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *GovernanceDecisionClient) DeleteOne(_m *GovernanceDecision) *GovernanceDecisionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *GovernanceDecisionClient) DeleteOneID(id string) *GovernanceDecisionDeleteOne {
	builder := c.Delete().Where(governancedecision.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &GovernanceDecisionDeleteOne{builder}
}

// Query returns a query builder for GovernanceDecision.
func (c *GovernanceDecisionClient) Query() *GovernanceDecisionQuery {
	return &GovernanceDecisionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeGovernanceDecision},
		inters: c.Interceptors(),
	}
}

// Get returns a GovernanceDecision entity by its id.
func (c *GovernanceDecisionClient) Get(ctx context.Context, id string) (*GovernanceDecision, error) {
	return c.Query().Where(governancedecision.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *GovernanceDecisionClient) GetX(ctx context.Context, id string) *GovernanceDecision {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRule queries the rule edge of a GovernanceDecision.
func (c *GovernanceDecisionClient) QueryRule(_m *GovernanceDecision) *RiskRuleQuery {
	query := (&RiskRuleClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(governancedecision.Table, governancedecision.FieldID, id),
			sqlgraph.To(riskrule.Table, riskrule.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, governancedecision.RuleTable, governancedecision.RuleColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *GovernanceDecisionClient) Hooks() []Hook {
	return c.hooks.GovernanceDecision
}

// Interceptors returns the client interceptors.
func (c *GovernanceDecisionClient) Interceptors() []Interceptor {
	return c.inters.GovernanceDecision
}

func (c *GovernanceDecisionClient) mutate(ctx context.Context, m *GovernanceDecisionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&GovernanceDecisionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&GovernanceDecisionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&GovernanceDecisionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&GovernanceDecisionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown GovernanceDecision mutation op: %q", m.Op())
	}
}

// IntentionRecordClient is a client for the IntentionRecord schema.
type IntentionRecordClient struct {
	config
}

// NewIntentionRecordClient returns a client for the IntentionRecord from the given config.
func NewIntentionRecordClient(c config) *IntentionRecordClient {
	return &IntentionRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `intentionrecord.Hooks(f(g(h())))`.
func (c *IntentionRecordClient) Use(hooks ...Hook) {
	c.hooks.IntentionRecord = append(c.hooks.IntentionRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `intentionrecord.Intercept(f(g(h())))`.
func (c *IntentionRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.IntentionRecord = append(c.inters.IntentionRecord, interceptors...)
}

// Create returns a builder for creating a IntentionRecord entity.
func (c *IntentionRecordClient) Create() *IntentionRecordCreate {
	mutation := newIntentionRecordMutation(c.config, OpCreate)
	return &IntentionRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of IntentionRecord entities.
func (c *IntentionRecordClient) CreateBulk(builders ...*IntentionRecordCreate) *IntentionRecordCreateBulk {
	return &IntentionRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *IntentionRecordClient) MapCreateBulk(slice any, setFunc func(*IntentionRecordCreate, int)) *IntentionRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &IntentionRecordCreateBulk{err: fmt.Errorf("calling to IntentionRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*IntentionRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &IntentionRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for IntentionRecord.
func (c *IntentionRecordClient) Update() *IntentionRecordUpdate {
	mutation := newIntentionRecordMutation(c.config, OpUpdate)
	return &IntentionRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *IntentionRecordClient) UpdateOne(_m *IntentionRecord) *IntentionRecordUpdateOne {
	mutation := newIntentionRecordMutation(c.config, OpUpdateOne, withIntentionRecord(_m))
	return &IntentionRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *IntentionRecordClient) UpdateOneID(id string) *IntentionRecordUpdateOne {
	mutation := newIntentionRecordMutation(c.config, OpUpdateOne, withIntentionRecordID(id))
	return &IntentionRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for IntentionRecord.
func (c *IntentionRecordClient) Delete() *IntentionRecordDelete {
	mutation := newIntentionRecordMutation(c.config, OpDelete)
	return &IntentionRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *IntentionRecordClient) DeleteOne(_m *IntentionRecord) *IntentionRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *IntentionRecordClient) DeleteOneID(id string) *IntentionRecordDeleteOne {
	builder := c.Delete().Where(intentionrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &IntentionRecordDeleteOne{builder}
}

// Query returns a query builder for IntentionRecord.
func (c *IntentionRecordClient) Query() *IntentionRecordQuery {
	return &IntentionRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeIntentionRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a IntentionRecord entity by its id.
func (c *IntentionRecordClient) Get(ctx context.Context, id string) (*IntentionRecord, error) {
	return c.Query().Where(intentionrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *IntentionRecordClient) GetX(ctx context.Context, id string) *IntentionRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *IntentionRecordClient) Hooks() []Hook {
	return c.hooks.IntentionRecord
}

// Interceptors returns the client interceptors.
func (c *IntentionRecordClient) Interceptors() []Interceptor {
	return c.inters.IntentionRecord
}

func (c *IntentionRecordClient) mutate(ctx context.Context, m *IntentionRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&IntentionRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&IntentionRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&IntentionRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&IntentionRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown IntentionRecord mutation op: %q", m.Op())
	}
}

// MemoryApprovalClient is a client for the MemoryApproval schema.
type MemoryApprovalClient struct {
	config
}

// NewMemoryApprovalClient returns a client for the MemoryApproval from the given config.
func NewMemoryApprovalClient(c config) *MemoryApprovalClient {
	return &MemoryApprovalClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `memoryapproval.Hooks(f(g(h())))`.
func (c *MemoryApprovalClient) Use(hooks ...Hook) {
	c.hooks.MemoryApproval = append(c.hooks.MemoryApproval, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `memoryapproval.Intercept(f(g(h())))`.
func (c *MemoryApprovalClient) Intercept(interceptors ...Interceptor) {
	c.inters.MemoryApproval = append(c.inters.MemoryApproval, interceptors...)
}

// Create returns a builder for creating a MemoryApproval entity.
func (c *MemoryApprovalClient) Create() *MemoryApprovalCreate {
	mutation := newMemoryApprovalMutation(c.config, OpCreate)
	return &MemoryApprovalCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MemoryApproval entities.
func (c *MemoryApprovalClient) CreateBulk(builders ...*MemoryApprovalCreate) *MemoryApprovalCreateBulk {
	return &MemoryApprovalCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MemoryApprovalClient) MapCreateBulk(slice any, setFunc func(*MemoryApprovalCreate, int)) *MemoryApprovalCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MemoryApprovalCreateBulk{err: fmt.Errorf("calling to MemoryApprovalClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MemoryApprovalCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MemoryApprovalCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MemoryApproval.
func (c *MemoryApprovalClient) Update() *MemoryApprovalUpdate {
	mutation := newMemoryApprovalMutation(c.config, OpUpdate)
	return &MemoryApprovalUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MemoryApprovalClient) UpdateOne(_m *MemoryApproval) *MemoryApprovalUpdateOne {
	mutation := newMemoryApprovalMutation(c.config, OpUpdateOne, withMemoryApproval(_m))
	return &MemoryApprovalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MemoryApprovalClient) UpdateOneID(id string) *MemoryApprovalUpdateOne {
	mutation := newMemoryApprovalMutation(c.config, OpUpdateOne, withMemoryApprovalID(id))
	return &MemoryApprovalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MemoryApproval.
func (c *MemoryApprovalClient) Delete() *MemoryApprovalDelete {
	mutation := newMemoryApprovalMutation(c.config, OpDelete)
	return &MemoryApprovalDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MemoryApprovalClient) DeleteOne(_m *MemoryApproval) *MemoryApprovalDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MemoryApprovalClient) DeleteOneID(id string) *MemoryApprovalDeleteOne {
	builder := c.Delete().Where(memoryapproval.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MemoryApprovalDeleteOne{builder}
}

// Query returns a query builder for MemoryApproval.
func (c *MemoryApprovalClient) Query() *MemoryApprovalQuery {
	return &MemoryApprovalQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMemoryApproval},
		inters: c.Interceptors(),
	}
}

// Get returns a MemoryApproval entity by its id.
func (c *MemoryApprovalClient) Get(ctx context.Context, id string) (*MemoryApproval, error) {
	return c.Query().Where(memoryapproval.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MemoryApprovalClient) GetX(ctx context.Context, id string) *MemoryApproval {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryMemory queries the memory edge of a MemoryApproval.
func (c *MemoryApprovalClient) QueryMemory(_m *MemoryApproval) *MemoryRecordQuery {
	query := (&MemoryRecordClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(memoryapproval.Table, memoryapproval.FieldID, id),
			sqlgraph.To(memoryrecord.Table, memoryrecord.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, memoryapproval.MemoryTable, memoryapproval.MemoryColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *MemoryApprovalClient) Hooks() []Hook {
	return c.hooks.MemoryApproval
}

// Interceptors returns the client interceptors.
func (c *MemoryApprovalClient) Interceptors() []Interceptor {
	return c.inters.MemoryApproval
}

func (c *MemoryApprovalClient) mutate(ctx context.Context, m *MemoryApprovalMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MemoryApprovalCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MemoryApprovalUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MemoryApprovalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MemoryApprovalDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MemoryApproval mutation op: %q", m.Op())
	}
}

// MemoryRecordClient is a client for the MemoryRecord schema.
type MemoryRecordClient struct {
	config
}

// NewMemoryRecordClient returns a client for the MemoryRecord from the given config.
func NewMemoryRecordClient(c config) *MemoryRecordClient {
	return &MemoryRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `memoryrecord.Hooks(f(g(h())))`.
func (c *MemoryRecordClient) Use(hooks ...Hook) {
	c.hooks.MemoryRecord = append(c.hooks.MemoryRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `memoryrecord.Intercept(f(g(h())))`.
func (c *MemoryRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.MemoryRecord = append(c.inters.MemoryRecord, interceptors...)
}

// Create returns a builder for creating a MemoryRecord entity.
func (c *MemoryRecordClient) Create() *MemoryRecordCreate {
	mutation := newMemoryRecordMutation(c.config, OpCreate)
	return &MemoryRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MemoryRecord entities.
func (c *MemoryRecordClient) CreateBulk(builders ...*MemoryRecordCreate) *MemoryRecordCreateBulk {
	return &MemoryRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MemoryRecordClient) MapCreateBulk(slice any, setFunc func(*MemoryRecordCreate, int)) *MemoryRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MemoryRecordCreateBulk{err: fmt.Errorf("calling to MemoryRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MemoryRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MemoryRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MemoryRecord.
func (c *MemoryRecordClient) Update() *MemoryRecordUpdate {
	mutation := newMemoryRecordMutation(c.config, OpUpdate)
	return &MemoryRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MemoryRecordClient) UpdateOne(_m *MemoryRecord) *MemoryRecordUpdateOne {
	mutation := newMemoryRecordMutation(c.config, OpUpdateOne, withMemoryRecord(_m))
	return &MemoryRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MemoryRecordClient) UpdateOneID(id string) *MemoryRecordUpdateOne {
	mutation := newMemoryRecordMutation(c.config, OpUpdateOne, withMemoryRecordID(id))
	return &MemoryRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MemoryRecord.
func (c *MemoryRecordClient) Delete() *MemoryRecordDelete {
	mutation := newMemoryRecordMutation(c.config, OpDelete)
	return &MemoryRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MemoryRecordClient) DeleteOne(_m *MemoryRecord) *MemoryRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MemoryRecordClient) DeleteOneID(id string) *MemoryRecordDeleteOne {
	builder := c.Delete().Where(memoryrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MemoryRecordDeleteOne{builder}
}

// Query returns a query builder for MemoryRecord.
func (c *MemoryRecordClient) Query() *MemoryRecordQuery {
	return &MemoryRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMemoryRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a MemoryRecord entity by its id.
func (c *MemoryRecordClient) Get(ctx context.Context, id string) (*MemoryRecord, error) {
	return c.Query().Where(memoryrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MemoryRecordClient) GetX(ctx context.Context, id string) *MemoryRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryApprovals queries the approvals edge of a MemoryRecord.
func (c *MemoryRecordClient) QueryApprovals(_m *MemoryRecord) *MemoryApprovalQuery {
	query := (&MemoryApprovalClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(memoryrecord.Table, memoryrecord.FieldID, id),
			sqlgraph.To(memoryapproval.Table, memoryapproval.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, memoryrecord.ApprovalsTable, memoryrecord.ApprovalsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *MemoryRecordClient) Hooks() []Hook {
	return c.hooks.MemoryRecord
}

// Interceptors returns the client interceptors.
func (c *MemoryRecordClient) Interceptors() []Interceptor {
	return c.inters.MemoryRecord
}

func (c *MemoryRecordClient) mutate(ctx context.Context, m *MemoryRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MemoryRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MemoryRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MemoryRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MemoryRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MemoryRecord mutation op: %q", m.Op())
	}
}

// ResearchCycleClient is a client for the ResearchCycle schema.
type ResearchCycleClient struct {
	config
}

// NewResearchCycleClient returns a client for the ResearchCycle from the given config.
func NewResearchCycleClient(c config) *ResearchCycleClient {
	return &ResearchCycleClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `researchcycle.Hooks(f(g(h())))`.
func (c *ResearchCycleClient) Use(hooks ...Hook) {
	c.hooks.ResearchCycle = append(c.hooks.ResearchCycle, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `researchcycle.Intercept(f(g(h())))`.
func (c *ResearchCycleClient) Intercept(interceptors ...Interceptor) {
	c.inters.ResearchCycle = append(c.inters.ResearchCycle, interceptors...)
}

// Create returns a builder for creating a ResearchCycle entity.
func (c *ResearchCycleClient) Create() *ResearchCycleCreate {
	mutation := newResearchCycleMutation(c.config, OpCreate)
	return &ResearchCycleCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ResearchCycle entities.
func (c *ResearchCycleClient) CreateBulk(builders ...*ResearchCycleCreate) *ResearchCycleCreateBulk {
	return &ResearchCycleCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ResearchCycleClient) MapCreateBulk(slice any, setFunc func(*ResearchCycleCreate, int)) *ResearchCycleCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ResearchCycleCreateBulk{err: fmt.Errorf("calling to ResearchCycleClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ResearchCycleCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ResearchCycleCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ResearchCycle.
func (c *ResearchCycleClient) Update() *ResearchCycleUpdate {
	mutation := newResearchCycleMutation(c.config, OpUpdate)
	return &ResearchCycleUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ResearchCycleClient) UpdateOne(_m *ResearchCycle) *ResearchCycleUpdateOne {
	mutation := newResearchCycleMutation(c.config, OpUpdateOne, withResearchCycle(_m))
	return &ResearchCycleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ResearchCycleClient) UpdateOneID(id string) *ResearchCycleUpdateOne {
	mutation := newResearchCycleMutation(c.config, OpUpdateOne, withResearchCycleID(id))
	return &ResearchCycleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ResearchCycle.
func (c *ResearchCycleClient) Delete() *ResearchCycleDelete {
	mutation := newResearchCycleMutation(c.config, OpDelete)
	return &ResearchCycleDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ResearchCycleClient) DeleteOne(_m *ResearchCycle) *ResearchCycleDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ResearchCycleClient) DeleteOneID(id string) *ResearchCycleDeleteOne {
	builder := c.Delete().Where(researchcycle.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ResearchCycleDeleteOne{builder}
}

// Query returns a query builder for ResearchCycle.
func (c *ResearchCycleClient) Query() *ResearchCycleQuery {
	return &ResearchCycleQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeResearchCycle},
		inters: c.Interceptors(),
	}
}

// Get returns a ResearchCycle entity by its id.
func (c *ResearchCycleClient) Get(ctx context.Context, id string) (*ResearchCycle, error) {
	return c.Query().Where(researchcycle.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ResearchCycleClient) GetX(ctx context.Context, id string) *ResearchCycle {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ResearchCycleClient) Hooks() []Hook {
	return c.hooks.ResearchCycle
}

// Interceptors returns the client interceptors.
func (c *ResearchCycleClient) Interceptors() []Interceptor {
	return c.inters.ResearchCycle
}

func (c *ResearchCycleClient) mutate(ctx context.Context, m *ResearchCycleMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ResearchCycleCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ResearchCycleUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ResearchCycleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ResearchCycleDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ResearchCycle mutation op: %q", m.Op())
	}
}

// RiskRuleClient is a client for the RiskRule schema.
type RiskRuleClient struct {
	config
}

// NewRiskRuleClient returns a client for the RiskRule from the given config.
func NewRiskRuleClient(c config) *RiskRuleClient {
	return &RiskRuleClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `riskrule.Hooks(f(g(h())))`.
func (c *RiskRuleClient) Use(hooks ...Hook) {
	c.hooks.RiskRule = append(c.hooks.RiskRule, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `riskrule.Intercept(f(g(h())))`.
func (c *RiskRuleClient) Intercept(interceptors ...Interceptor) {
	c.inters.RiskRule = append(c.inters.RiskRule, interceptors...)
}

// Create returns a builder for creating a RiskRule entity.
func (c *RiskRuleClient) Create() *RiskRuleCreate {
	mutation := newRiskRuleMutation(c.config, OpCreate)
	return &RiskRuleCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RiskRule entities.
func (c *RiskRuleClient) CreateBulk(builders ...*RiskRuleCreate) *RiskRuleCreateBulk {
	return &RiskRuleCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RiskRuleClient) MapCreateBulk(slice any, setFunc func(*RiskRuleCreate, int)) *RiskRuleCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RiskRuleCreateBulk{err: fmt.Errorf("calling to RiskRuleClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RiskRuleCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RiskRuleCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RiskRule.
func (c *RiskRuleClient) Update() *RiskRuleUpdate {
	mutation := newRiskRuleMutation(c.config, OpUpdate)
	return &RiskRuleUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RiskRuleClient) UpdateOne(_m *RiskRule) *RiskRuleUpdateOne {
	mutation := newRiskRuleMutation(c.config, OpUpdateOne, withRiskRule(_m))
	return &RiskRuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RiskRuleClient) UpdateOneID(id string) *RiskRuleUpdateOne {
	mutation := newRiskRuleMutation(c.config, OpUpdateOne, withRiskRuleID(id))
	return &RiskRuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RiskRule.
func (c *RiskRuleClient) Delete() *RiskRuleDelete {
	mutation := newRiskRuleMutation(c.config, OpDelete)
	return &RiskRuleDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RiskRuleClient) DeleteOne(_m *RiskRule) *RiskRuleDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RiskRuleClient) DeleteOneID(id string) *RiskRuleDeleteOne {
	builder := c.Delete().Where(riskrule.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RiskRuleDeleteOne{builder}
}

// Query returns a query builder for RiskRule.
func (c *RiskRuleClient) Query() *RiskRuleQuery {
	return &RiskRuleQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRiskRule},
		inters: c.Interceptors(),
	}
}

// Get returns a RiskRule entity by its id.
func (c *RiskRuleClient) Get(ctx context.Context, id string) (*RiskRule, error) {
	return c.Query().Where(riskrule.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RiskRuleClient) GetX(ctx context.Context, id string) *RiskRule {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDecisions queries the decisions edge of a RiskRule.
func (c *RiskRuleClient) QueryDecisions(_m *RiskRule) *GovernanceDecisionQuery {
	query := (&GovernanceDecisionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(riskrule.Table, riskrule.FieldID, id),
			sqlgraph.To(governancedecision.Table, governancedecision.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, riskrule.DecisionsTable, riskrule.DecisionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *RiskRuleClient) Hooks() []Hook {
	return c.hooks.RiskRule
}

// Interceptors returns the client interceptors.
func (c *RiskRuleClient) Interceptors() []Interceptor {
	return c.inters.RiskRule
}

func (c *RiskRuleClient) mutate(ctx context.Context, m *RiskRuleMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RiskRuleCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RiskRuleUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RiskRuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RiskRuleDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RiskRule mutation op: %q", m.Op())
	}
}

// ToolCallClient is a client for the ToolCall schema.
type ToolCallClient struct {
	config
}

// NewToolCallClient returns a client for the ToolCall from the given config.
func NewToolCallClient(c config) *ToolCallClient {
	return &ToolCallClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `toolcall.Hooks(f(g(h())))`.
func (c *ToolCallClient) Use(hooks ...Hook) {
	c.hooks.ToolCall = append(c.hooks.ToolCall, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `toolcall.Intercept(f(g(h())))`.
func (c *ToolCallClient) Intercept(interceptors ...Interceptor) {
	c.inters.ToolCall = append(c.inters.ToolCall, interceptors...)
}

// Create returns a builder for creating a ToolCall entity.
func (c *ToolCallClient) Create() *ToolCallCreate {
	mutation := newToolCallMutation(c.config, OpCreate)
	return &ToolCallCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ToolCall entities.
func (c *ToolCallClient) CreateBulk(builders ...*ToolCallCreate) *ToolCallCreateBulk {
	return &ToolCallCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ToolCallClient) MapCreateBulk(slice any, setFunc func(*ToolCallCreate, int)) *ToolCallCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ToolCallCreateBulk{err: fmt.Errorf("calling to ToolCallClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ToolCallCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ToolCallCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ToolCall.
func (c *ToolCallClient) Update() *ToolCallUpdate {
	mutation := newToolCallMutation(c.config, OpUpdate)
	return &ToolCallUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ToolCallClient) UpdateOne(_m *ToolCall) *ToolCallUpdateOne {
	mutation := newToolCallMutation(c.config, OpUpdateOne, withToolCall(_m))
	return &ToolCallUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ToolCallClient) UpdateOneID(id string) *ToolCallUpdateOne {
	mutation := newToolCallMutation(c.config, OpUpdateOne, withToolCallID(id))
	return &ToolCallUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ToolCall.
func (c *ToolCallClient) Delete() *ToolCallDelete {
	mutation := newToolCallMutation(c.config, OpDelete)
	return &ToolCallDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ToolCallClient) DeleteOne(_m *ToolCall) *ToolCallDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ToolCallClient) DeleteOneID(id string) *ToolCallDeleteOne {
	builder := c.Delete().Where(toolcall.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ToolCallDeleteOne{builder}
}

// Query returns a query builder for ToolCall.
func (c *ToolCallClient) Query() *ToolCallQuery {
	return &ToolCallQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeToolCall},
		inters: c.Interceptors(),
	}
}

// Get returns a ToolCall entity by its id.
func (c *ToolCallClient) Get(ctx context.Context, id string) (*ToolCall, error) {
	return c.Query().Where(toolcall.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ToolCallClient) GetX(ctx context.Context, id string) *ToolCall {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ToolCallClient) Hooks() []Hook {
	return c.hooks.ToolCall
}

// Interceptors returns the client interceptors.
func (c *ToolCallClient) Interceptors() []Interceptor {
	return c.inters.ToolCall
}

func (c *ToolCallClient) mutate(ctx context.Context, m *ToolCallMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ToolCallCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ToolCallUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ToolCallUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ToolCallDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ToolCall mutation op: %q", m.Op())
	}
}

// ToolRequestClient is a client for the ToolRequest schema.
type ToolRequestClient struct {
	config
}

// NewToolRequestClient returns a client for the ToolRequest from the given config.
func NewToolRequestClient(c config) *ToolRequestClient {
	return &ToolRequestClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `toolrequest.Hooks(f(g(h())))`.
func (c *ToolRequestClient) Use(hooks ...Hook) {
	c.hooks.ToolRequest = append(c.hooks.ToolRequest, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `toolrequest.Intercept(f(g(h())))`.
func (c *ToolRequestClient) Intercept(interceptors ...Interceptor) {
	c.inters.ToolRequest = append(c.inters.ToolRequest, interceptors...)
}

// Create returns a builder for creating a ToolRequest entity.
func (c *ToolRequestClient) Create() *ToolRequestCreate {
	mutation := newToolRequestMutation(c.config, OpCreate)
	return &ToolRequestCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ToolRequest entities.
func (c *ToolRequestClient) CreateBulk(builders ...*ToolRequestCreate) *ToolRequestCreateBulk {
	return &ToolRequestCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ToolRequestClient) MapCreateBulk(slice any, setFunc func(*ToolRequestCreate, int)) *ToolRequestCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ToolRequestCreateBulk{err: fmt.Errorf("calling to ToolRequestClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ToolRequestCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ToolRequestCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ToolRequest.
func (c *ToolRequestClient) Update() *ToolRequestUpdate {
	mutation := newToolRequestMutation(c.config, OpUpdate)
	return &ToolRequestUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ToolRequestClient) UpdateOne(_m *ToolRequest) *ToolRequestUpdateOne {
	mutation := newToolRequestMutation(c.config, OpUpdateOne, withToolRequest(_m))
	return &ToolRequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ToolRequestClient) UpdateOneID(id string) *ToolRequestUpdateOne {
	mutation := newToolRequestMutation(c.config, OpUpdateOne, withToolRequestID(id))
	return &ToolRequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ToolRequest.
func (c *ToolRequestClient) Delete() *ToolRequestDelete {
	mutation := newToolRequestMutation(c.config, OpDelete)
	return &ToolRequestDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ToolRequestClient) DeleteOne(_m *ToolRequest) *ToolRequestDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ToolRequestClient) DeleteOneID(id string) *ToolRequestDeleteOne {
	builder := c.Delete().Where(toolrequest.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ToolRequestDeleteOne{builder}
}

// Query returns a query builder for ToolRequest.
func (c *ToolRequestClient) Query() *ToolRequestQuery {
	return &ToolRequestQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeToolRequest},
		inters: c.Interceptors(),
	}
}

// Get returns a ToolRequest entity by its id.
func (c *ToolRequestClient) Get(ctx context.Context, id string) (*ToolRequest, error) {
	return c.Query().Where(toolrequest.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ToolRequestClient) GetX(ctx context.Context, id string) *ToolRequest {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ToolRequestClient) Hooks() []Hook {
	return c.hooks.ToolRequest
}

// Interceptors returns the client interceptors.
func (c *ToolRequestClient) Interceptors() []Interceptor {
	return c.inters.ToolRequest
}

func (c *ToolRequestClient) mutate(ctx context.Context, m *ToolRequestMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ToolRequestCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ToolRequestUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ToolRequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ToolRequestDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ToolRequest mutation op: %q", m.Op())
	}
}

// TopicRecordClient is a client for the TopicRecord schema.
type TopicRecordClient struct {
	config
}

// NewTopicRecordClient returns a client for the TopicRecord from the given config.
func NewTopicRecordClient(c config) *TopicRecordClient {
	return &TopicRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `topicrecord.Hooks(f(g(h())))`.
func (c *TopicRecordClient) Use(hooks ...Hook) {
	c.hooks.TopicRecord = append(c.hooks.TopicRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `topicrecord.Intercept(f(g(h())))`.
func (c *TopicRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.TopicRecord = append(c.inters.TopicRecord, interceptors...)
}

// Create returns a builder for creating a TopicRecord entity.
func (c *TopicRecordClient) Create() *TopicRecordCreate {
	mutation := newTopicRecordMutation(c.config, OpCreate)
	return &TopicRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TopicRecord entities.
func (c *TopicRecordClient) CreateBulk(builders ...*TopicRecordCreate) *TopicRecordCreateBulk {
	return &TopicRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TopicRecordClient) MapCreateBulk(slice any, setFunc func(*TopicRecordCreate, int)) *TopicRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TopicRecordCreateBulk{err: fmt.Errorf("calling to TopicRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TopicRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TopicRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TopicRecord.
func (c *TopicRecordClient) Update() *TopicRecordUpdate {
	mutation := newTopicRecordMutation(c.config, OpUpdate)
	return &TopicRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TopicRecordClient) UpdateOne(_m *TopicRecord) *TopicRecordUpdateOne {
	mutation := newTopicRecordMutation(c.config, OpUpdateOne, withTopicRecord(_m))
	return &TopicRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TopicRecordClient) UpdateOneID(id string) *TopicRecordUpdateOne {
	mutation := newTopicRecordMutation(c.config, OpUpdateOne, withTopicRecordID(id))
	return &TopicRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TopicRecord.
func (c *TopicRecordClient) Delete() *TopicRecordDelete {
	mutation := newTopicRecordMutation(c.config, OpDelete)
	return &TopicRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TopicRecordClient) DeleteOne(_m *TopicRecord) *TopicRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TopicRecordClient) DeleteOneID(id string) *TopicRecordDeleteOne {
	builder := c.Delete().Where(topicrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TopicRecordDeleteOne{builder}
}

// Query returns a query builder for TopicRecord.
func (c *TopicRecordClient) Query() *TopicRecordQuery {
	return &TopicRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTopicRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a TopicRecord entity by its id.
func (c *TopicRecordClient) Get(ctx context.Context, id string) (*TopicRecord, error) {
	return c.Query().Where(topicrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TopicRecordClient) GetX(ctx context.Context, id string) *TopicRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TopicRecordClient) Hooks() []Hook {
	return c.hooks.TopicRecord
}

// Interceptors returns the client interceptors.
func (c *TopicRecordClient) Interceptors() []Interceptor {
	return c.inters.TopicRecord
}

func (c *TopicRecordClient) mutate(ctx context.Context, m *TopicRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TopicRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TopicRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TopicRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TopicRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TopicRecord mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AgentProfile, ApprovalItem, BudgetAccount, BusMessage, Event, FeedbackEntry,
		GovernanceDecision, IntentionRecord, MemoryApproval, MemoryRecord,
		ResearchCycle, RiskRule, ToolCall, ToolRequest, TopicRecord []ent.Hook
	}
	inters struct {
		AgentProfile, ApprovalItem, BudgetAccount, BusMessage, Event, FeedbackEntry,
		GovernanceDecision, IntentionRecord, MemoryApproval, MemoryRecord,
		ResearchCycle, RiskRule, ToolCall, ToolRequest, TopicRecord []ent.Interceptor
	}
)
