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
	"github.com/NoAme666/aiquant/ent/predicate"
	"github.com/NoAme666/aiquant/ent/researchcycle"
	"github.com/NoAme666/aiquant/ent/riskrule"
	"github.com/NoAme666/aiquant/ent/toolcall"
	"github.com/NoAme666/aiquant/ent/toolrequest"
	"github.com/NoAme666/aiquant/ent/topicrecord"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAgentProfile       = "AgentProfile"
	TypeApprovalItem       = "ApprovalItem"
	TypeBudgetAccount      = "BudgetAccount"
	TypeBusMessage         = "BusMessage"
	TypeEvent              = "Event"
	TypeFeedbackEntry      = "FeedbackEntry"
	TypeGovernanceDecision = "GovernanceDecision"
	TypeIntentionRecord    = "IntentionRecord"
	TypeMemoryApproval     = "MemoryApproval"
	TypeMemoryRecord       = "MemoryRecord"
	TypeResearchCycle      = "ResearchCycle"
	TypeRiskRule           = "RiskRule"
	TypeToolCall           = "ToolCall"
	TypeToolRequest        = "ToolRequest"
	TypeTopicRecord        = "TopicRecord"
)

// AgentProfileMutation represents an operation that mutates the AgentProfile nodes in the graph.
type AgentProfileMutation struct {
	config
	op            Op
	typ           string
	id            *string
	name          *string
	department    *string
	team          *string
	reports_to    *string
	role          *string
	is_lead       *bool
	status        *agentprofile.Status
	last_active   *time.Time
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*AgentProfile, error)
	predicates    []predicate.AgentProfile
}

var _ ent.Mutation = (*AgentProfileMutation)(nil)

// agentprofileOption allows management of the mutation configuration using functional options.
type agentprofileOption func(*AgentProfileMutation)

// newAgentProfileMutation creates new mutation for the AgentProfile entity.
func newAgentProfileMutation(c config, op Op, opts ...agentprofileOption) *AgentProfileMutation {
	m := &AgentProfileMutation{
		config:        c,
		op:            op,
		typ:           TypeAgentProfile,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentProfileID sets the ID field of the mutation.
func withAgentProfileID(id string) agentprofileOption {
	return func(m *AgentProfileMutation) {
		var (
			err   error
			once  sync.Once
			value *AgentProfile
		)
		m.oldValue = func(ctx context.Context) (*AgentProfile, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AgentProfile.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgentProfile sets the old AgentProfile of the mutation.
func withAgentProfile(node *AgentProfile) agentprofileOption {
	return func(m *AgentProfileMutation) {
		m.oldValue = func(context.Context) (*AgentProfile, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentProfileMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentProfileMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AgentProfile entities.
func (m *AgentProfileMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentProfileMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentProfileMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AgentProfile.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *AgentProfileMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *AgentProfileMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the AgentProfile entity.
// If the AgentProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentProfileMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *AgentProfileMutation) ResetName() {
	m.name = nil
}

// SetDepartment sets the "department" field.
func (m *AgentProfileMutation) SetDepartment(s string) {
	m.department = &s
}

// Department returns the value of the "department" field in the mutation.
func (m *AgentProfileMutation) Department() (r string, exists bool) {
	v := m.department
	if v == nil {
		return
	}
	return *v, true
}

// OldDepartment returns the old "department" field's value of the AgentProfile entity.
// If the AgentProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentProfileMutation) OldDepartment(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDepartment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDepartment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDepartment: %w", err)
	}
	return oldValue.Department, nil
}

// ResetDepartment resets all changes to the "department" field.
func (m *AgentProfileMutation) ResetDepartment() {
	m.department = nil
}

// SetTeam sets the "team" field.
func (m *AgentProfileMutation) SetTeam(s string) {
	m.team = &s
}

// Team returns the value of the "team" field in the mutation.
func (m *AgentProfileMutation) Team() (r string, exists bool) {
	v := m.team
	if v == nil {
		return
	}
	return *v, true
}

// OldTeam returns the old "team" field's value of the AgentProfile entity.
// If the AgentProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentProfileMutation) OldTeam(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTeam is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTeam requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTeam: %w", err)
	}
	return oldValue.Team, nil
}

// ClearTeam clears the value of the "team" field.
func (m *AgentProfileMutation) ClearTeam() {
	m.team = nil
	m.clearedFields[agentprofile.FieldTeam] = struct{}{}
}

// TeamCleared returns if the "team" field was cleared in this mutation.
func (m *AgentProfileMutation) TeamCleared() bool {
	_, ok := m.clearedFields[agentprofile.FieldTeam]
	return ok
}

// ResetTeam resets all changes to the "team" field.
func (m *AgentProfileMutation) ResetTeam() {
	m.team = nil
	delete(m.clearedFields, agentprofile.FieldTeam)
}

// SetReportsTo sets the "reports_to" field.
func (m *AgentProfileMutation) SetReportsTo(s string) {
	m.reports_to = &s
}

// ReportsTo returns the value of the "reports_to" field in the mutation.
func (m *AgentProfileMutation) ReportsTo() (r string, exists bool) {
	v := m.reports_to
	if v == nil {
		return
	}
	return *v, true
}

// OldReportsTo returns the old "reports_to" field's value of the AgentProfile entity.
// If the AgentProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentProfileMutation) OldReportsTo(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReportsTo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReportsTo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReportsTo: %w", err)
	}
	return oldValue.ReportsTo, nil
}

// ClearReportsTo clears the value of the "reports_to" field.
func (m *AgentProfileMutation) ClearReportsTo() {
	m.reports_to = nil
	m.clearedFields[agentprofile.FieldReportsTo] = struct{}{}
}

// ReportsToCleared returns if the "reports_to" field was cleared in this mutation.
func (m *AgentProfileMutation) ReportsToCleared() bool {
	_, ok := m.clearedFields[agentprofile.FieldReportsTo]
	return ok
}

// ResetReportsTo resets all changes to the "reports_to" field.
func (m *AgentProfileMutation) ResetReportsTo() {
	m.reports_to = nil
	delete(m.clearedFields, agentprofile.FieldReportsTo)
}

// SetRole sets the "role" field.
func (m *AgentProfileMutation) SetRole(s string) {
	m.role = &s
}

// Role returns the value of the "role" field in the mutation.
func (m *AgentProfileMutation) Role() (r string, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the AgentProfile entity.
// If the AgentProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentProfileMutation) OldRole(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *AgentProfileMutation) ResetRole() {
	m.role = nil
}

// SetIsLead sets the "is_lead" field.
func (m *AgentProfileMutation) SetIsLead(b bool) {
	m.is_lead = &b
}

// IsLead returns the value of the "is_lead" field in the mutation.
func (m *AgentProfileMutation) IsLead() (r bool, exists bool) {
	v := m.is_lead
	if v == nil {
		return
	}
	return *v, true
}

// OldIsLead returns the old "is_lead" field's value of the AgentProfile entity.
// If the AgentProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentProfileMutation) OldIsLead(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsLead is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsLead requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsLead: %w", err)
	}
	return oldValue.IsLead, nil
}

// ResetIsLead resets all changes to the "is_lead" field.
func (m *AgentProfileMutation) ResetIsLead() {
	m.is_lead = nil
}

// SetStatus sets the "status" field.
func (m *AgentProfileMutation) SetStatus(a agentprofile.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AgentProfileMutation) Status() (r agentprofile.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the AgentProfile entity.
// If the AgentProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentProfileMutation) OldStatus(ctx context.Context) (v agentprofile.Status, err error) {
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
func (m *AgentProfileMutation) ResetStatus() {
	m.status = nil
}

// SetLastActive sets the "last_active" field.
func (m *AgentProfileMutation) SetLastActive(t time.Time) {
	m.last_active = &t
}

// LastActive returns the value of the "last_active" field in the mutation.
func (m *AgentProfileMutation) LastActive() (r time.Time, exists bool) {
	v := m.last_active
	if v == nil {
		return
	}
	return *v, true
}

// OldLastActive returns the old "last_active" field's value of the AgentProfile entity.
// If the AgentProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentProfileMutation) OldLastActive(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastActive: %w", err)
	}
	return oldValue.LastActive, nil
}

// ClearLastActive clears the value of the "last_active" field.
func (m *AgentProfileMutation) ClearLastActive() {
	m.last_active = nil
	m.clearedFields[agentprofile.FieldLastActive] = struct{}{}
}

// LastActiveCleared returns if the "last_active" field was cleared in this mutation.
func (m *AgentProfileMutation) LastActiveCleared() bool {
	_, ok := m.clearedFields[agentprofile.FieldLastActive]
	return ok
}

// ResetLastActive resets all changes to the "last_active" field.
func (m *AgentProfileMutation) ResetLastActive() {
	m.last_active = nil
	delete(m.clearedFields, agentprofile.FieldLastActive)
}

// SetCreatedAt sets the "created_at" field.
func (m *AgentProfileMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AgentProfileMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AgentProfile entity.
// If the AgentProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentProfileMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *AgentProfileMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the AgentProfileMutation builder.
func (m *AgentProfileMutation) Where(ps ...predicate.AgentProfile) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentProfileMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentProfileMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AgentProfile, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentProfileMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentProfileMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AgentProfile).
func (m *AgentProfileMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentProfileMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.name != nil {
		fields = append(fields, agentprofile.FieldName)
	}
	if m.department != nil {
		fields = append(fields, agentprofile.FieldDepartment)
	}
	if m.team != nil {
		fields = append(fields, agentprofile.FieldTeam)
	}
	if m.reports_to != nil {
		fields = append(fields, agentprofile.FieldReportsTo)
	}
	if m.role != nil {
		fields = append(fields, agentprofile.FieldRole)
	}
	if m.is_lead != nil {
		fields = append(fields, agentprofile.FieldIsLead)
	}
	if m.status != nil {
		fields = append(fields, agentprofile.FieldStatus)
	}
	if m.last_active != nil {
		fields = append(fields, agentprofile.FieldLastActive)
	}
	if m.created_at != nil {
		fields = append(fields, agentprofile.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentProfileMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agentprofile.FieldName:
		return m.Name()
	case agentprofile.FieldDepartment:
		return m.Department()
	case agentprofile.FieldTeam:
		return m.Team()
	case agentprofile.FieldReportsTo:
		return m.ReportsTo()
	case agentprofile.FieldRole:
		return m.Role()
	case agentprofile.FieldIsLead:
		return m.IsLead()
	case agentprofile.FieldStatus:
		return m.Status()
	case agentprofile.FieldLastActive:
		return m.LastActive()
	case agentprofile.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentProfileMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agentprofile.FieldName:
		return m.OldName(ctx)
	case agentprofile.FieldDepartment:
		return m.OldDepartment(ctx)
	case agentprofile.FieldTeam:
		return m.OldTeam(ctx)
	case agentprofile.FieldReportsTo:
		return m.OldReportsTo(ctx)
	case agentprofile.FieldRole:
		return m.OldRole(ctx)
	case agentprofile.FieldIsLead:
		return m.OldIsLead(ctx)
	case agentprofile.FieldStatus:
		return m.OldStatus(ctx)
	case agentprofile.FieldLastActive:
		return m.OldLastActive(ctx)
	case agentprofile.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AgentProfile field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentProfileMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agentprofile.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case agentprofile.FieldDepartment:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDepartment(v)
		return nil
	case agentprofile.FieldTeam:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTeam(v)
		return nil
	case agentprofile.FieldReportsTo:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReportsTo(v)
		return nil
	case agentprofile.FieldRole:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case agentprofile.FieldIsLead:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsLead(v)
		return nil
	case agentprofile.FieldStatus:
		v, ok := value.(agentprofile.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case agentprofile.FieldLastActive:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastActive(v)
		return nil
	case agentprofile.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AgentProfile field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentProfileMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentProfileMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentProfileMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AgentProfile numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentProfileMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agentprofile.FieldTeam) {
		fields = append(fields, agentprofile.FieldTeam)
	}
	if m.FieldCleared(agentprofile.FieldReportsTo) {
		fields = append(fields, agentprofile.FieldReportsTo)
	}
	if m.FieldCleared(agentprofile.FieldLastActive) {
		fields = append(fields, agentprofile.FieldLastActive)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentProfileMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentProfileMutation) ClearField(name string) error {
	switch name {
	case agentprofile.FieldTeam:
		m.ClearTeam()
		return nil
	case agentprofile.FieldReportsTo:
		m.ClearReportsTo()
		return nil
	case agentprofile.FieldLastActive:
		m.ClearLastActive()
		return nil
	}
	return fmt.Errorf("unknown AgentProfile nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentProfileMutation) ResetField(name string) error {
	switch name {
	case agentprofile.FieldName:
		m.ResetName()
		return nil
	case agentprofile.FieldDepartment:
		m.ResetDepartment()
		return nil
	case agentprofile.FieldTeam:
		m.ResetTeam()
		return nil
	case agentprofile.FieldReportsTo:
		m.ResetReportsTo()
		return nil
	case agentprofile.FieldRole:
		m.ResetRole()
		return nil
	case agentprofile.FieldIsLead:
		m.ResetIsLead()
		return nil
	case agentprofile.FieldStatus:
		m.ResetStatus()
		return nil
	case agentprofile.FieldLastActive:
		m.ResetLastActive()
		return nil
	case agentprofile.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AgentProfile field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentProfileMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentProfileMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentProfileMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentProfileMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentProfileMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentProfileMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentProfileMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AgentProfile unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentProfileMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AgentProfile edge %s", name)
}

// ApprovalItemMutation represents an operation that mutates the ApprovalItem nodes in the graph.
type ApprovalItemMutation struct {
	config
	op              Op
	typ             string
	id              *string
	kind            *string
	title           *string
	description     *string
	requester       *string
	data            *map[string]interface{}
	status          *approvalitem.Status
	decision_by     *string
	decision_reason *string
	expires_at      *time.Time
	created_at      *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*ApprovalItem, error)
	predicates      []predicate.ApprovalItem
}

var _ ent.Mutation = (*ApprovalItemMutation)(nil)

// approvalitemOption allows management of the mutation configuration using functional options.
type approvalitemOption func(*ApprovalItemMutation)

// newApprovalItemMutation creates new mutation for the ApprovalItem entity.
func newApprovalItemMutation(c config, op Op, opts ...approvalitemOption) *ApprovalItemMutation {
	m := &ApprovalItemMutation{
		config:        c,
		op:            op,
		typ:           TypeApprovalItem,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withApprovalItemID sets the ID field of the mutation.
func withApprovalItemID(id string) approvalitemOption {
	return func(m *ApprovalItemMutation) {
		var (
			err   error
			once  sync.Once
			value *ApprovalItem
		)
		m.oldValue = func(ctx context.Context) (*ApprovalItem, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ApprovalItem.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withApprovalItem sets the old ApprovalItem of the mutation.
func withApprovalItem(node *ApprovalItem) approvalitemOption {
	return func(m *ApprovalItemMutation) {
		m.oldValue = func(context.Context) (*ApprovalItem, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ApprovalItemMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ApprovalItemMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ApprovalItem entities.
func (m *ApprovalItemMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ApprovalItemMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ApprovalItemMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ApprovalItem.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetKind sets the "kind" field.
func (m *ApprovalItemMutation) SetKind(s string) {
	m.kind = &s
}

// Kind returns the value of the "kind" field in the mutation.
func (m *ApprovalItemMutation) Kind() (r string, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the ApprovalItem entity.
// If the ApprovalItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalItemMutation) OldKind(ctx context.Context) (v string, err error) {
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
func (m *ApprovalItemMutation) ResetKind() {
	m.kind = nil
}

// SetTitle sets the "title" field.
func (m *ApprovalItemMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *ApprovalItemMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the ApprovalItem entity.
// If the ApprovalItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalItemMutation) OldTitle(ctx context.Context) (v string, err error) {
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
func (m *ApprovalItemMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *ApprovalItemMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ApprovalItemMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the ApprovalItem entity.
// If the ApprovalItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalItemMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *ApprovalItemMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[approvalitem.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *ApprovalItemMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[approvalitem.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *ApprovalItemMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, approvalitem.FieldDescription)
}

// SetRequester sets the "requester" field.
func (m *ApprovalItemMutation) SetRequester(s string) {
	m.requester = &s
}

// Requester returns the value of the "requester" field in the mutation.
func (m *ApprovalItemMutation) Requester() (r string, exists bool) {
	v := m.requester
	if v == nil {
		return
	}
	return *v, true
}

// OldRequester returns the old "requester" field's value of the ApprovalItem entity.
// If the ApprovalItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalItemMutation) OldRequester(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequester is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequester requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequester: %w", err)
	}
	return oldValue.Requester, nil
}

// ResetRequester resets all changes to the "requester" field.
func (m *ApprovalItemMutation) ResetRequester() {
	m.requester = nil
}

// SetData sets the "data" field.
func (m *ApprovalItemMutation) SetData(value map[string]interface{}) {
	m.data = &value
}

// Data returns the value of the "data" field in the mutation.
func (m *ApprovalItemMutation) Data() (r map[string]interface{}, exists bool) {
	v := m.data
	if v == nil {
		return
	}
	return *v, true
}

// OldData returns the old "data" field's value of the ApprovalItem entity.
// If the ApprovalItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalItemMutation) OldData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldData: %w", err)
	}
	return oldValue.Data, nil
}

// ClearData clears the value of the "data" field.
func (m *ApprovalItemMutation) ClearData() {
	m.data = nil
	m.clearedFields[approvalitem.FieldData] = struct{}{}
}

// DataCleared returns if the "data" field was cleared in this mutation.
func (m *ApprovalItemMutation) DataCleared() bool {
	_, ok := m.clearedFields[approvalitem.FieldData]
	return ok
}

// ResetData resets all changes to the "data" field.
func (m *ApprovalItemMutation) ResetData() {
	m.data = nil
	delete(m.clearedFields, approvalitem.FieldData)
}

// SetStatus sets the "status" field.
func (m *ApprovalItemMutation) SetStatus(a approvalitem.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *ApprovalItemMutation) Status() (r approvalitem.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ApprovalItem entity.
// If the ApprovalItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalItemMutation) OldStatus(ctx context.Context) (v approvalitem.Status, err error) {
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
func (m *ApprovalItemMutation) ResetStatus() {
	m.status = nil
}

// SetDecisionBy sets the "decision_by" field.
func (m *ApprovalItemMutation) SetDecisionBy(s string) {
	m.decision_by = &s
}

// DecisionBy returns the value of the "decision_by" field in the mutation.
func (m *ApprovalItemMutation) DecisionBy() (r string, exists bool) {
	v := m.decision_by
	if v == nil {
		return
	}
	return *v, true
}

// OldDecisionBy returns the old "decision_by" field's value of the ApprovalItem entity.
// If the ApprovalItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalItemMutation) OldDecisionBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDecisionBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDecisionBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDecisionBy: %w", err)
	}
	return oldValue.DecisionBy, nil
}

// ClearDecisionBy clears the value of the "decision_by" field.
func (m *ApprovalItemMutation) ClearDecisionBy() {
	m.decision_by = nil
	m.clearedFields[approvalitem.FieldDecisionBy] = struct{}{}
}

// DecisionByCleared returns if the "decision_by" field was cleared in this mutation.
func (m *ApprovalItemMutation) DecisionByCleared() bool {
	_, ok := m.clearedFields[approvalitem.FieldDecisionBy]
	return ok
}

// ResetDecisionBy resets all changes to the "decision_by" field.
func (m *ApprovalItemMutation) ResetDecisionBy() {
	m.decision_by = nil
	delete(m.clearedFields, approvalitem.FieldDecisionBy)
}

// SetDecisionReason sets the "decision_reason" field.
func (m *ApprovalItemMutation) SetDecisionReason(s string) {
	m.decision_reason = &s
}

// DecisionReason returns the value of the "decision_reason" field in the mutation.
func (m *ApprovalItemMutation) DecisionReason() (r string, exists bool) {
	v := m.decision_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldDecisionReason returns the old "decision_reason" field's value of the ApprovalItem entity.
// If the ApprovalItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalItemMutation) OldDecisionReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDecisionReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDecisionReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDecisionReason: %w", err)
	}
	return oldValue.DecisionReason, nil
}

// ClearDecisionReason clears the value of the "decision_reason" field.
func (m *ApprovalItemMutation) ClearDecisionReason() {
	m.decision_reason = nil
	m.clearedFields[approvalitem.FieldDecisionReason] = struct{}{}
}

// DecisionReasonCleared returns if the "decision_reason" field was cleared in this mutation.
func (m *ApprovalItemMutation) DecisionReasonCleared() bool {
	_, ok := m.clearedFields[approvalitem.FieldDecisionReason]
	return ok
}

// ResetDecisionReason resets all changes to the "decision_reason" field.
func (m *ApprovalItemMutation) ResetDecisionReason() {
	m.decision_reason = nil
	delete(m.clearedFields, approvalitem.FieldDecisionReason)
}

// SetExpiresAt sets the "expires_at" field.
func (m *ApprovalItemMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *ApprovalItemMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the ApprovalItem entity.
// If the ApprovalItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalItemMutation) OldExpiresAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *ApprovalItemMutation) ResetExpiresAt() {
	m.expires_at = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ApprovalItemMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ApprovalItemMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ApprovalItem entity.
// If the ApprovalItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalItemMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *ApprovalItemMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ApprovalItemMutation builder.
func (m *ApprovalItemMutation) Where(ps ...predicate.ApprovalItem) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ApprovalItemMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ApprovalItemMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ApprovalItem, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ApprovalItemMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ApprovalItemMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ApprovalItem).
func (m *ApprovalItemMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ApprovalItemMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.kind != nil {
		fields = append(fields, approvalitem.FieldKind)
	}
	if m.title != nil {
		fields = append(fields, approvalitem.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, approvalitem.FieldDescription)
	}
	if m.requester != nil {
		fields = append(fields, approvalitem.FieldRequester)
	}
	if m.data != nil {
		fields = append(fields, approvalitem.FieldData)
	}
	if m.status != nil {
		fields = append(fields, approvalitem.FieldStatus)
	}
	if m.decision_by != nil {
		fields = append(fields, approvalitem.FieldDecisionBy)
	}
	if m.decision_reason != nil {
		fields = append(fields, approvalitem.FieldDecisionReason)
	}
	if m.expires_at != nil {
		fields = append(fields, approvalitem.FieldExpiresAt)
	}
	if m.created_at != nil {
		fields = append(fields, approvalitem.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ApprovalItemMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case approvalitem.FieldKind:
		return m.Kind()
	case approvalitem.FieldTitle:
		return m.Title()
	case approvalitem.FieldDescription:
		return m.Description()
	case approvalitem.FieldRequester:
		return m.Requester()
	case approvalitem.FieldData:
		return m.Data()
	case approvalitem.FieldStatus:
		return m.Status()
	case approvalitem.FieldDecisionBy:
		return m.DecisionBy()
	case approvalitem.FieldDecisionReason:
		return m.DecisionReason()
	case approvalitem.FieldExpiresAt:
		return m.ExpiresAt()
	case approvalitem.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ApprovalItemMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case approvalitem.FieldKind:
		return m.OldKind(ctx)
	case approvalitem.FieldTitle:
		return m.OldTitle(ctx)
	case approvalitem.FieldDescription:
		return m.OldDescription(ctx)
	case approvalitem.FieldRequester:
		return m.OldRequester(ctx)
	case approvalitem.FieldData:
		return m.OldData(ctx)
	case approvalitem.FieldStatus:
		return m.OldStatus(ctx)
	case approvalitem.FieldDecisionBy:
		return m.OldDecisionBy(ctx)
	case approvalitem.FieldDecisionReason:
		return m.OldDecisionReason(ctx)
	case approvalitem.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	case approvalitem.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ApprovalItem field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ApprovalItemMutation) SetField(name string, value ent.Value) error {
	switch name {
	case approvalitem.FieldKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case approvalitem.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case approvalitem.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case approvalitem.FieldRequester:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequester(v)
		return nil
	case approvalitem.FieldData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetData(v)
		return nil
	case approvalitem.FieldStatus:
		v, ok := value.(approvalitem.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case approvalitem.FieldDecisionBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDecisionBy(v)
		return nil
	case approvalitem.FieldDecisionReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDecisionReason(v)
		return nil
	case approvalitem.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	case approvalitem.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ApprovalItem field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ApprovalItemMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ApprovalItemMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ApprovalItemMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ApprovalItem numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ApprovalItemMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(approvalitem.FieldDescription) {
		fields = append(fields, approvalitem.FieldDescription)
	}
	if m.FieldCleared(approvalitem.FieldData) {
		fields = append(fields, approvalitem.FieldData)
	}
	if m.FieldCleared(approvalitem.FieldDecisionBy) {
		fields = append(fields, approvalitem.FieldDecisionBy)
	}
	if m.FieldCleared(approvalitem.FieldDecisionReason) {
		fields = append(fields, approvalitem.FieldDecisionReason)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ApprovalItemMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ApprovalItemMutation) ClearField(name string) error {
	switch name {
	case approvalitem.FieldDescription:
		m.ClearDescription()
		return nil
	case approvalitem.FieldData:
		m.ClearData()
		return nil
	case approvalitem.FieldDecisionBy:
		m.ClearDecisionBy()
		return nil
	case approvalitem.FieldDecisionReason:
		m.ClearDecisionReason()
		return nil
	}
	return fmt.Errorf("unknown ApprovalItem nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ApprovalItemMutation) ResetField(name string) error {
	switch name {
	case approvalitem.FieldKind:
		m.ResetKind()
		return nil
	case approvalitem.FieldTitle:
		m.ResetTitle()
		return nil
	case approvalitem.FieldDescription:
		m.ResetDescription()
		return nil
	case approvalitem.FieldRequester:
		m.ResetRequester()
		return nil
	case approvalitem.FieldData:
		m.ResetData()
		return nil
	case approvalitem.FieldStatus:
		m.ResetStatus()
		return nil
	case approvalitem.FieldDecisionBy:
		m.ResetDecisionBy()
		return nil
	case approvalitem.FieldDecisionReason:
		m.ResetDecisionReason()
		return nil
	case approvalitem.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	case approvalitem.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ApprovalItem field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ApprovalItemMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ApprovalItemMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ApprovalItemMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ApprovalItemMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ApprovalItemMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ApprovalItemMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ApprovalItemMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ApprovalItem unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ApprovalItemMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ApprovalItem edge %s", name)
}

// BudgetAccountMutation represents an operation that mutates the BudgetAccount nodes in the graph.
type BudgetAccountMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	account_type          *budgetaccount.AccountType
	base_weekly_points    *int
	addbase_weekly_points *int
	current_period_start  *time.Time
	points_spent          *int
	addpoints_spent       *int
	updated_at            *time.Time
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*BudgetAccount, error)
	predicates            []predicate.BudgetAccount
}

var _ ent.Mutation = (*BudgetAccountMutation)(nil)

// budgetaccountOption allows management of the mutation configuration using functional options.
type budgetaccountOption func(*BudgetAccountMutation)

// newBudgetAccountMutation creates new mutation for the BudgetAccount entity.
func newBudgetAccountMutation(c config, op Op, opts ...budgetaccountOption) *BudgetAccountMutation {
	m := &BudgetAccountMutation{
		config:        c,
		op:            op,
		typ:           TypeBudgetAccount,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBudgetAccountID sets the ID field of the mutation.
func withBudgetAccountID(id string) budgetaccountOption {
	return func(m *BudgetAccountMutation) {
		var (
			err   error
			once  sync.Once
			value *BudgetAccount
		)
		m.oldValue = func(ctx context.Context) (*BudgetAccount, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().BudgetAccount.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBudgetAccount sets the old BudgetAccount of the mutation.
func withBudgetAccount(node *BudgetAccount) budgetaccountOption {
	return func(m *BudgetAccountMutation) {
		m.oldValue = func(context.Context) (*BudgetAccount, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BudgetAccountMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BudgetAccountMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of BudgetAccount entities.
func (m *BudgetAccountMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BudgetAccountMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BudgetAccountMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().BudgetAccount.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAccountType sets the "account_type" field.
func (m *BudgetAccountMutation) SetAccountType(bt budgetaccount.AccountType) {
	m.account_type = &bt
}

// AccountType returns the value of the "account_type" field in the mutation.
func (m *BudgetAccountMutation) AccountType() (r budgetaccount.AccountType, exists bool) {
	v := m.account_type
	if v == nil {
		return
	}
	return *v, true
}

// OldAccountType returns the old "account_type" field's value of the BudgetAccount entity.
// If the BudgetAccount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BudgetAccountMutation) OldAccountType(ctx context.Context) (v budgetaccount.AccountType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccountType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccountType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccountType: %w", err)
	}
	return oldValue.AccountType, nil
}

// ResetAccountType resets all changes to the "account_type" field.
func (m *BudgetAccountMutation) ResetAccountType() {
	m.account_type = nil
}

// SetBaseWeeklyPoints sets the "base_weekly_points" field.
func (m *BudgetAccountMutation) SetBaseWeeklyPoints(i int) {
	m.base_weekly_points = &i
	m.addbase_weekly_points = nil
}

// BaseWeeklyPoints returns the value of the "base_weekly_points" field in the mutation.
func (m *BudgetAccountMutation) BaseWeeklyPoints() (r int, exists bool) {
	v := m.base_weekly_points
	if v == nil {
		return
	}
	return *v, true
}

// OldBaseWeeklyPoints returns the old "base_weekly_points" field's value of the BudgetAccount entity.
// If the BudgetAccount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BudgetAccountMutation) OldBaseWeeklyPoints(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBaseWeeklyPoints is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBaseWeeklyPoints requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBaseWeeklyPoints: %w", err)
	}
	return oldValue.BaseWeeklyPoints, nil
}

// AddBaseWeeklyPoints adds i to the "base_weekly_points" field.
func (m *BudgetAccountMutation) AddBaseWeeklyPoints(i int) {
	if m.addbase_weekly_points != nil {
		*m.addbase_weekly_points += i
	} else {
		m.addbase_weekly_points = &i
	}
}

// AddedBaseWeeklyPoints returns the value that was added to the "base_weekly_points" field in this mutation.
func (m *BudgetAccountMutation) AddedBaseWeeklyPoints() (r int, exists bool) {
	v := m.addbase_weekly_points
	if v == nil {
		return
	}
	return *v, true
}

// ResetBaseWeeklyPoints resets all changes to the "base_weekly_points" field.
func (m *BudgetAccountMutation) ResetBaseWeeklyPoints() {
	m.base_weekly_points = nil
	m.addbase_weekly_points = nil
}

// SetCurrentPeriodStart sets the "current_period_start" field.
func (m *BudgetAccountMutation) SetCurrentPeriodStart(t time.Time) {
	m.current_period_start = &t
}

// CurrentPeriodStart returns the value of the "current_period_start" field in the mutation.
func (m *BudgetAccountMutation) CurrentPeriodStart() (r time.Time, exists bool) {
	v := m.current_period_start
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentPeriodStart returns the old "current_period_start" field's value of the BudgetAccount entity.
// If the BudgetAccount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BudgetAccountMutation) OldCurrentPeriodStart(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentPeriodStart is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentPeriodStart requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentPeriodStart: %w", err)
	}
	return oldValue.CurrentPeriodStart, nil
}

// ResetCurrentPeriodStart resets all changes to the "current_period_start" field.
func (m *BudgetAccountMutation) ResetCurrentPeriodStart() {
	m.current_period_start = nil
}

// SetPointsSpent sets the "points_spent" field.
func (m *BudgetAccountMutation) SetPointsSpent(i int) {
	m.points_spent = &i
	m.addpoints_spent = nil
}

// PointsSpent returns the value of the "points_spent" field in the mutation.
func (m *BudgetAccountMutation) PointsSpent() (r int, exists bool) {
	v := m.points_spent
	if v == nil {
		return
	}
	return *v, true
}

// OldPointsSpent returns the old "points_spent" field's value of the BudgetAccount entity.
// If the BudgetAccount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BudgetAccountMutation) OldPointsSpent(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPointsSpent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPointsSpent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPointsSpent: %w", err)
	}
	return oldValue.PointsSpent, nil
}

// AddPointsSpent adds i to the "points_spent" field.
func (m *BudgetAccountMutation) AddPointsSpent(i int) {
	if m.addpoints_spent != nil {
		*m.addpoints_spent += i
	} else {
		m.addpoints_spent = &i
	}
}

// AddedPointsSpent returns the value that was added to the "points_spent" field in this mutation.
func (m *BudgetAccountMutation) AddedPointsSpent() (r int, exists bool) {
	v := m.addpoints_spent
	if v == nil {
		return
	}
	return *v, true
}

// ResetPointsSpent resets all changes to the "points_spent" field.
func (m *BudgetAccountMutation) ResetPointsSpent() {
	m.points_spent = nil
	m.addpoints_spent = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *BudgetAccountMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *BudgetAccountMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the BudgetAccount entity.
// If the BudgetAccount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BudgetAccountMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *BudgetAccountMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the BudgetAccountMutation builder.
func (m *BudgetAccountMutation) Where(ps ...predicate.BudgetAccount) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BudgetAccountMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BudgetAccountMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.BudgetAccount, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BudgetAccountMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BudgetAccountMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (BudgetAccount).
func (m *BudgetAccountMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BudgetAccountMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.account_type != nil {
		fields = append(fields, budgetaccount.FieldAccountType)
	}
	if m.base_weekly_points != nil {
		fields = append(fields, budgetaccount.FieldBaseWeeklyPoints)
	}
	if m.current_period_start != nil {
		fields = append(fields, budgetaccount.FieldCurrentPeriodStart)
	}
	if m.points_spent != nil {
		fields = append(fields, budgetaccount.FieldPointsSpent)
	}
	if m.updated_at != nil {
		fields = append(fields, budgetaccount.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BudgetAccountMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case budgetaccount.FieldAccountType:
		return m.AccountType()
	case budgetaccount.FieldBaseWeeklyPoints:
		return m.BaseWeeklyPoints()
	case budgetaccount.FieldCurrentPeriodStart:
		return m.CurrentPeriodStart()
	case budgetaccount.FieldPointsSpent:
		return m.PointsSpent()
	case budgetaccount.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BudgetAccountMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case budgetaccount.FieldAccountType:
		return m.OldAccountType(ctx)
	case budgetaccount.FieldBaseWeeklyPoints:
		return m.OldBaseWeeklyPoints(ctx)
	case budgetaccount.FieldCurrentPeriodStart:
		return m.OldCurrentPeriodStart(ctx)
	case budgetaccount.FieldPointsSpent:
		return m.OldPointsSpent(ctx)
	case budgetaccount.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown BudgetAccount field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BudgetAccountMutation) SetField(name string, value ent.Value) error {
	switch name {
	case budgetaccount.FieldAccountType:
		v, ok := value.(budgetaccount.AccountType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccountType(v)
		return nil
	case budgetaccount.FieldBaseWeeklyPoints:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBaseWeeklyPoints(v)
		return nil
	case budgetaccount.FieldCurrentPeriodStart:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentPeriodStart(v)
		return nil
	case budgetaccount.FieldPointsSpent:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPointsSpent(v)
		return nil
	case budgetaccount.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown BudgetAccount field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BudgetAccountMutation) AddedFields() []string {
	var fields []string
	if m.addbase_weekly_points != nil {
		fields = append(fields, budgetaccount.FieldBaseWeeklyPoints)
	}
	if m.addpoints_spent != nil {
		fields = append(fields, budgetaccount.FieldPointsSpent)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BudgetAccountMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case budgetaccount.FieldBaseWeeklyPoints:
		return m.AddedBaseWeeklyPoints()
	case budgetaccount.FieldPointsSpent:
		return m.AddedPointsSpent()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BudgetAccountMutation) AddField(name string, value ent.Value) error {
	switch name {
	case budgetaccount.FieldBaseWeeklyPoints:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBaseWeeklyPoints(v)
		return nil
	case budgetaccount.FieldPointsSpent:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPointsSpent(v)
		return nil
	}
	return fmt.Errorf("unknown BudgetAccount numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BudgetAccountMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BudgetAccountMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BudgetAccountMutation) ClearField(name string) error {
	return fmt.Errorf("unknown BudgetAccount nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BudgetAccountMutation) ResetField(name string) error {
	switch name {
	case budgetaccount.FieldAccountType:
		m.ResetAccountType()
		return nil
	case budgetaccount.FieldBaseWeeklyPoints:
		m.ResetBaseWeeklyPoints()
		return nil
	case budgetaccount.FieldCurrentPeriodStart:
		m.ResetCurrentPeriodStart()
		return nil
	case budgetaccount.FieldPointsSpent:
		m.ResetPointsSpent()
		return nil
	case budgetaccount.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown BudgetAccount field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BudgetAccountMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BudgetAccountMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BudgetAccountMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BudgetAccountMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BudgetAccountMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BudgetAccountMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BudgetAccountMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown BudgetAccount unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BudgetAccountMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown BudgetAccount edge %s", name)
}

// BusMessageMutation represents an operation that mutates the BusMessage nodes in the graph.
type BusMessageMutation struct {
	config
	op            Op
	typ           string
	id            *string
	channel_kind  *string
	channel_id    *string
	from_agent    *string
	to_agent      *string
	subject       *string
	content       *string
	kind          *string
	metadata      *map[string]interface{}
	priority      *int
	addpriority   *int
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*BusMessage, error)
	predicates    []predicate.BusMessage
}

var _ ent.Mutation = (*BusMessageMutation)(nil)

// busmessageOption allows management of the mutation configuration using functional options.
type busmessageOption func(*BusMessageMutation)

// newBusMessageMutation creates new mutation for the BusMessage entity.
func newBusMessageMutation(c config, op Op, opts ...busmessageOption) *BusMessageMutation {
	m := &BusMessageMutation{
		config:        c,
		op:            op,
		typ:           TypeBusMessage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBusMessageID sets the ID field of the mutation.
func withBusMessageID(id string) busmessageOption {
	return func(m *BusMessageMutation) {
		var (
			err   error
			once  sync.Once
			value *BusMessage
		)
		m.oldValue = func(ctx context.Context) (*BusMessage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().BusMessage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBusMessage sets the old BusMessage of the mutation.
func withBusMessage(node *BusMessage) busmessageOption {
	return func(m *BusMessageMutation) {
		m.oldValue = func(context.Context) (*BusMessage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BusMessageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BusMessageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of BusMessage entities.
func (m *BusMessageMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BusMessageMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BusMessageMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().BusMessage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetChannelKind sets the "channel_kind" field.
func (m *BusMessageMutation) SetChannelKind(s string) {
	m.channel_kind = &s
}

// ChannelKind returns the value of the "channel_kind" field in the mutation.
func (m *BusMessageMutation) ChannelKind() (r string, exists bool) {
	v := m.channel_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldChannelKind returns the old "channel_kind" field's value of the BusMessage entity.
// If the BusMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusMessageMutation) OldChannelKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannelKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannelKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannelKind: %w", err)
	}
	return oldValue.ChannelKind, nil
}

// ResetChannelKind resets all changes to the "channel_kind" field.
func (m *BusMessageMutation) ResetChannelKind() {
	m.channel_kind = nil
}

// SetChannelID sets the "channel_id" field.
func (m *BusMessageMutation) SetChannelID(s string) {
	m.channel_id = &s
}

// ChannelID returns the value of the "channel_id" field in the mutation.
func (m *BusMessageMutation) ChannelID() (r string, exists bool) {
	v := m.channel_id
	if v == nil {
		return
	}
	return *v, true
}

// OldChannelID returns the old "channel_id" field's value of the BusMessage entity.
// If the BusMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusMessageMutation) OldChannelID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannelID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannelID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannelID: %w", err)
	}
	return oldValue.ChannelID, nil
}

// ClearChannelID clears the value of the "channel_id" field.
func (m *BusMessageMutation) ClearChannelID() {
	m.channel_id = nil
	m.clearedFields[busmessage.FieldChannelID] = struct{}{}
}

// ChannelIDCleared returns if the "channel_id" field was cleared in this mutation.
func (m *BusMessageMutation) ChannelIDCleared() bool {
	_, ok := m.clearedFields[busmessage.FieldChannelID]
	return ok
}

// ResetChannelID resets all changes to the "channel_id" field.
func (m *BusMessageMutation) ResetChannelID() {
	m.channel_id = nil
	delete(m.clearedFields, busmessage.FieldChannelID)
}

// SetFromAgent sets the "from_agent" field.
func (m *BusMessageMutation) SetFromAgent(s string) {
	m.from_agent = &s
}

// FromAgent returns the value of the "from_agent" field in the mutation.
func (m *BusMessageMutation) FromAgent() (r string, exists bool) {
	v := m.from_agent
	if v == nil {
		return
	}
	return *v, true
}

// OldFromAgent returns the old "from_agent" field's value of the BusMessage entity.
// If the BusMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusMessageMutation) OldFromAgent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFromAgent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFromAgent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFromAgent: %w", err)
	}
	return oldValue.FromAgent, nil
}

// ResetFromAgent resets all changes to the "from_agent" field.
func (m *BusMessageMutation) ResetFromAgent() {
	m.from_agent = nil
}

// SetToAgent sets the "to_agent" field.
func (m *BusMessageMutation) SetToAgent(s string) {
	m.to_agent = &s
}

// ToAgent returns the value of the "to_agent" field in the mutation.
func (m *BusMessageMutation) ToAgent() (r string, exists bool) {
	v := m.to_agent
	if v == nil {
		return
	}
	return *v, true
}

// OldToAgent returns the old "to_agent" field's value of the BusMessage entity.
// If the BusMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusMessageMutation) OldToAgent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToAgent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToAgent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToAgent: %w", err)
	}
	return oldValue.ToAgent, nil
}

// ClearToAgent clears the value of the "to_agent" field.
func (m *BusMessageMutation) ClearToAgent() {
	m.to_agent = nil
	m.clearedFields[busmessage.FieldToAgent] = struct{}{}
}

// ToAgentCleared returns if the "to_agent" field was cleared in this mutation.
func (m *BusMessageMutation) ToAgentCleared() bool {
	_, ok := m.clearedFields[busmessage.FieldToAgent]
	return ok
}

// ResetToAgent resets all changes to the "to_agent" field.
func (m *BusMessageMutation) ResetToAgent() {
	m.to_agent = nil
	delete(m.clearedFields, busmessage.FieldToAgent)
}

// SetSubject sets the "subject" field.
func (m *BusMessageMutation) SetSubject(s string) {
	m.subject = &s
}

// Subject returns the value of the "subject" field in the mutation.
func (m *BusMessageMutation) Subject() (r string, exists bool) {
	v := m.subject
	if v == nil {
		return
	}
	return *v, true
}

// OldSubject returns the old "subject" field's value of the BusMessage entity.
// If the BusMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusMessageMutation) OldSubject(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubject is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubject requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubject: %w", err)
	}
	return oldValue.Subject, nil
}

// ClearSubject clears the value of the "subject" field.
func (m *BusMessageMutation) ClearSubject() {
	m.subject = nil
	m.clearedFields[busmessage.FieldSubject] = struct{}{}
}

// SubjectCleared returns if the "subject" field was cleared in this mutation.
func (m *BusMessageMutation) SubjectCleared() bool {
	_, ok := m.clearedFields[busmessage.FieldSubject]
	return ok
}

// ResetSubject resets all changes to the "subject" field.
func (m *BusMessageMutation) ResetSubject() {
	m.subject = nil
	delete(m.clearedFields, busmessage.FieldSubject)
}

// SetContent sets the "content" field.
func (m *BusMessageMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *BusMessageMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the BusMessage entity.
// If the BusMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusMessageMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *BusMessageMutation) ResetContent() {
	m.content = nil
}

// SetKind sets the "kind" field.
func (m *BusMessageMutation) SetKind(s string) {
	m.kind = &s
}

// Kind returns the value of the "kind" field in the mutation.
func (m *BusMessageMutation) Kind() (r string, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the BusMessage entity.
// If the BusMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusMessageMutation) OldKind(ctx context.Context) (v string, err error) {
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
func (m *BusMessageMutation) ResetKind() {
	m.kind = nil
}

// SetMetadata sets the "metadata" field.
func (m *BusMessageMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *BusMessageMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the BusMessage entity.
// If the BusMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusMessageMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
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
func (m *BusMessageMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[busmessage.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *BusMessageMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[busmessage.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *BusMessageMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, busmessage.FieldMetadata)
}

// SetPriority sets the "priority" field.
func (m *BusMessageMutation) SetPriority(i int) {
	m.priority = &i
	m.addpriority = nil
}

// Priority returns the value of the "priority" field in the mutation.
func (m *BusMessageMutation) Priority() (r int, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the BusMessage entity.
// If the BusMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusMessageMutation) OldPriority(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// AddPriority adds i to the "priority" field.
func (m *BusMessageMutation) AddPriority(i int) {
	if m.addpriority != nil {
		*m.addpriority += i
	} else {
		m.addpriority = &i
	}
}

// AddedPriority returns the value that was added to the "priority" field in this mutation.
func (m *BusMessageMutation) AddedPriority() (r int, exists bool) {
	v := m.addpriority
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriority resets all changes to the "priority" field.
func (m *BusMessageMutation) ResetPriority() {
	m.priority = nil
	m.addpriority = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *BusMessageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BusMessageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the BusMessage entity.
// If the BusMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusMessageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *BusMessageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the BusMessageMutation builder.
func (m *BusMessageMutation) Where(ps ...predicate.BusMessage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BusMessageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BusMessageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.BusMessage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BusMessageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BusMessageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (BusMessage).
func (m *BusMessageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BusMessageMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.channel_kind != nil {
		fields = append(fields, busmessage.FieldChannelKind)
	}
	if m.channel_id != nil {
		fields = append(fields, busmessage.FieldChannelID)
	}
	if m.from_agent != nil {
		fields = append(fields, busmessage.FieldFromAgent)
	}
	if m.to_agent != nil {
		fields = append(fields, busmessage.FieldToAgent)
	}
	if m.subject != nil {
		fields = append(fields, busmessage.FieldSubject)
	}
	if m.content != nil {
		fields = append(fields, busmessage.FieldContent)
	}
	if m.kind != nil {
		fields = append(fields, busmessage.FieldKind)
	}
	if m.metadata != nil {
		fields = append(fields, busmessage.FieldMetadata)
	}
	if m.priority != nil {
		fields = append(fields, busmessage.FieldPriority)
	}
	if m.created_at != nil {
		fields = append(fields, busmessage.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BusMessageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case busmessage.FieldChannelKind:
		return m.ChannelKind()
	case busmessage.FieldChannelID:
		return m.ChannelID()
	case busmessage.FieldFromAgent:
		return m.FromAgent()
	case busmessage.FieldToAgent:
		return m.ToAgent()
	case busmessage.FieldSubject:
		return m.Subject()
	case busmessage.FieldContent:
		return m.Content()
	case busmessage.FieldKind:
		return m.Kind()
	case busmessage.FieldMetadata:
		return m.Metadata()
	case busmessage.FieldPriority:
		return m.Priority()
	case busmessage.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BusMessageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case busmessage.FieldChannelKind:
		return m.OldChannelKind(ctx)
	case busmessage.FieldChannelID:
		return m.OldChannelID(ctx)
	case busmessage.FieldFromAgent:
		return m.OldFromAgent(ctx)
	case busmessage.FieldToAgent:
		return m.OldToAgent(ctx)
	case busmessage.FieldSubject:
		return m.OldSubject(ctx)
	case busmessage.FieldContent:
		return m.OldContent(ctx)
	case busmessage.FieldKind:
		return m.OldKind(ctx)
	case busmessage.FieldMetadata:
		return m.OldMetadata(ctx)
	case busmessage.FieldPriority:
		return m.OldPriority(ctx)
	case busmessage.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown BusMessage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BusMessageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case busmessage.FieldChannelKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannelKind(v)
		return nil
	case busmessage.FieldChannelID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannelID(v)
		return nil
	case busmessage.FieldFromAgent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFromAgent(v)
		return nil
	case busmessage.FieldToAgent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToAgent(v)
		return nil
	case busmessage.FieldSubject:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubject(v)
		return nil
	case busmessage.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case busmessage.FieldKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case busmessage.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case busmessage.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case busmessage.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown BusMessage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BusMessageMutation) AddedFields() []string {
	var fields []string
	if m.addpriority != nil {
		fields = append(fields, busmessage.FieldPriority)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BusMessageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case busmessage.FieldPriority:
		return m.AddedPriority()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BusMessageMutation) AddField(name string, value ent.Value) error {
	switch name {
	case busmessage.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriority(v)
		return nil
	}
	return fmt.Errorf("unknown BusMessage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BusMessageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(busmessage.FieldChannelID) {
		fields = append(fields, busmessage.FieldChannelID)
	}
	if m.FieldCleared(busmessage.FieldToAgent) {
		fields = append(fields, busmessage.FieldToAgent)
	}
	if m.FieldCleared(busmessage.FieldSubject) {
		fields = append(fields, busmessage.FieldSubject)
	}
	if m.FieldCleared(busmessage.FieldMetadata) {
		fields = append(fields, busmessage.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BusMessageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BusMessageMutation) ClearField(name string) error {
	switch name {
	case busmessage.FieldChannelID:
		m.ClearChannelID()
		return nil
	case busmessage.FieldToAgent:
		m.ClearToAgent()
		return nil
	case busmessage.FieldSubject:
		m.ClearSubject()
		return nil
	case busmessage.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown BusMessage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BusMessageMutation) ResetField(name string) error {
	switch name {
	case busmessage.FieldChannelKind:
		m.ResetChannelKind()
		return nil
	case busmessage.FieldChannelID:
		m.ResetChannelID()
		return nil
	case busmessage.FieldFromAgent:
		m.ResetFromAgent()
		return nil
	case busmessage.FieldToAgent:
		m.ResetToAgent()
		return nil
	case busmessage.FieldSubject:
		m.ResetSubject()
		return nil
	case busmessage.FieldContent:
		m.ResetContent()
		return nil
	case busmessage.FieldKind:
		m.ResetKind()
		return nil
	case busmessage.FieldMetadata:
		m.ResetMetadata()
		return nil
	case busmessage.FieldPriority:
		m.ResetPriority()
		return nil
	case busmessage.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown BusMessage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BusMessageMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BusMessageMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BusMessageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BusMessageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BusMessageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BusMessageMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BusMessageMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown BusMessage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BusMessageMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown BusMessage edge %s", name)
}

// EventMutation represents an operation that mutates the Event nodes in the graph.
type EventMutation struct {
	config
	op            Op
	typ           string
	id            *string
	kind          *string
	subject       *string
	actor         *string
	payload       *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Event, error)
	predicates    []predicate.Event
}

var _ ent.Mutation = (*EventMutation)(nil)

// eventOption allows management of the mutation configuration using functional options.
type eventOption func(*EventMutation)

// newEventMutation creates new mutation for the Event entity.
func newEventMutation(c config, op Op, opts ...eventOption) *EventMutation {
	m := &EventMutation{
		config:        c,
		op:            op,
		typ:           TypeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventID sets the ID field of the mutation.
func withEventID(id string) eventOption {
	return func(m *EventMutation) {
		var (
			err   error
			once  sync.Once
			value *Event
		)
		m.oldValue = func(ctx context.Context) (*Event, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Event.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvent sets the old Event of the mutation.
func withEvent(node *Event) eventOption {
	return func(m *EventMutation) {
		m.oldValue = func(context.Context) (*Event, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Event entities.
func (m *EventMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Event.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetKind sets the "kind" field.
func (m *EventMutation) SetKind(s string) {
	m.kind = &s
}

// Kind returns the value of the "kind" field in the mutation.
func (m *EventMutation) Kind() (r string, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldKind(ctx context.Context) (v string, err error) {
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
func (m *EventMutation) ResetKind() {
	m.kind = nil
}

// SetSubject sets the "subject" field.
func (m *EventMutation) SetSubject(s string) {
	m.subject = &s
}

// Subject returns the value of the "subject" field in the mutation.
func (m *EventMutation) Subject() (r string, exists bool) {
	v := m.subject
	if v == nil {
		return
	}
	return *v, true
}

// OldSubject returns the old "subject" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldSubject(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubject is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubject requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubject: %w", err)
	}
	return oldValue.Subject, nil
}

// ClearSubject clears the value of the "subject" field.
func (m *EventMutation) ClearSubject() {
	m.subject = nil
	m.clearedFields[event.FieldSubject] = struct{}{}
}

// SubjectCleared returns if the "subject" field was cleared in this mutation.
func (m *EventMutation) SubjectCleared() bool {
	_, ok := m.clearedFields[event.FieldSubject]
	return ok
}

// ResetSubject resets all changes to the "subject" field.
func (m *EventMutation) ResetSubject() {
	m.subject = nil
	delete(m.clearedFields, event.FieldSubject)
}

// SetActor sets the "actor" field.
func (m *EventMutation) SetActor(s string) {
	m.actor = &s
}

// Actor returns the value of the "actor" field in the mutation.
func (m *EventMutation) Actor() (r string, exists bool) {
	v := m.actor
	if v == nil {
		return
	}
	return *v, true
}

// OldActor returns the old "actor" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldActor(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActor: %w", err)
	}
	return oldValue.Actor, nil
}

// ClearActor clears the value of the "actor" field.
func (m *EventMutation) ClearActor() {
	m.actor = nil
	m.clearedFields[event.FieldActor] = struct{}{}
}

// ActorCleared returns if the "actor" field was cleared in this mutation.
func (m *EventMutation) ActorCleared() bool {
	_, ok := m.clearedFields[event.FieldActor]
	return ok
}

// ResetActor resets all changes to the "actor" field.
func (m *EventMutation) ResetActor() {
	m.actor = nil
	delete(m.clearedFields, event.FieldActor)
}

// SetPayload sets the "payload" field.
func (m *EventMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *EventMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
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
func (m *EventMutation) ClearPayload() {
	m.payload = nil
	m.clearedFields[event.FieldPayload] = struct{}{}
}

// PayloadCleared returns if the "payload" field was cleared in this mutation.
func (m *EventMutation) PayloadCleared() bool {
	_, ok := m.clearedFields[event.FieldPayload]
	return ok
}

// ResetPayload resets all changes to the "payload" field.
func (m *EventMutation) ResetPayload() {
	m.payload = nil
	delete(m.clearedFields, event.FieldPayload)
}

// SetCreatedAt sets the "created_at" field.
func (m *EventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *EventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the EventMutation builder.
func (m *EventMutation) Where(ps ...predicate.Event) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Event, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Event).
func (m *EventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.kind != nil {
		fields = append(fields, event.FieldKind)
	}
	if m.subject != nil {
		fields = append(fields, event.FieldSubject)
	}
	if m.actor != nil {
		fields = append(fields, event.FieldActor)
	}
	if m.payload != nil {
		fields = append(fields, event.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, event.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case event.FieldKind:
		return m.Kind()
	case event.FieldSubject:
		return m.Subject()
	case event.FieldActor:
		return m.Actor()
	case event.FieldPayload:
		return m.Payload()
	case event.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case event.FieldKind:
		return m.OldKind(ctx)
	case event.FieldSubject:
		return m.OldSubject(ctx)
	case event.FieldActor:
		return m.OldActor(ctx)
	case event.FieldPayload:
		return m.OldPayload(ctx)
	case event.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Event field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case event.FieldKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case event.FieldSubject:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubject(v)
		return nil
	case event.FieldActor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActor(v)
		return nil
	case event.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case event.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Event numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(event.FieldSubject) {
		fields = append(fields, event.FieldSubject)
	}
	if m.FieldCleared(event.FieldActor) {
		fields = append(fields, event.FieldActor)
	}
	if m.FieldCleared(event.FieldPayload) {
		fields = append(fields, event.FieldPayload)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventMutation) ClearField(name string) error {
	switch name {
	case event.FieldSubject:
		m.ClearSubject()
		return nil
	case event.FieldActor:
		m.ClearActor()
		return nil
	case event.FieldPayload:
		m.ClearPayload()
		return nil
	}
	return fmt.Errorf("unknown Event nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventMutation) ResetField(name string) error {
	switch name {
	case event.FieldKind:
		m.ResetKind()
		return nil
	case event.FieldSubject:
		m.ResetSubject()
		return nil
	case event.FieldActor:
		m.ResetActor()
		return nil
	case event.FieldPayload:
		m.ResetPayload()
		return nil
	case event.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Event unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Event edge %s", name)
}

// FeedbackEntryMutation represents an operation that mutates the FeedbackEntry nodes in the graph.
type FeedbackEntryMutation struct {
	config
	op            Op
	typ           string
	id            *string
	agent         *string
	category      *feedbackentry.Category
	content       *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*FeedbackEntry, error)
	predicates    []predicate.FeedbackEntry
}

var _ ent.Mutation = (*FeedbackEntryMutation)(nil)

// feedbackentryOption allows management of the mutation configuration using functional options.
type feedbackentryOption func(*FeedbackEntryMutation)

// newFeedbackEntryMutation creates new mutation for the FeedbackEntry entity.
func newFeedbackEntryMutation(c config, op Op, opts ...feedbackentryOption) *FeedbackEntryMutation {
	m := &FeedbackEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeFeedbackEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFeedbackEntryID sets the ID field of the mutation.
func withFeedbackEntryID(id string) feedbackentryOption {
	return func(m *FeedbackEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *FeedbackEntry
		)
		m.oldValue = func(ctx context.Context) (*FeedbackEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().FeedbackEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFeedbackEntry sets the old FeedbackEntry of the mutation.
func withFeedbackEntry(node *FeedbackEntry) feedbackentryOption {
	return func(m *FeedbackEntryMutation) {
		m.oldValue = func(context.Context) (*FeedbackEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FeedbackEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FeedbackEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of FeedbackEntry entities.
func (m *FeedbackEntryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FeedbackEntryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FeedbackEntryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().FeedbackEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAgent sets the "agent" field.
func (m *FeedbackEntryMutation) SetAgent(s string) {
	m.agent = &s
}

// Agent returns the value of the "agent" field in the mutation.
func (m *FeedbackEntryMutation) Agent() (r string, exists bool) {
	v := m.agent
	if v == nil {
		return
	}
	return *v, true
}

// OldAgent returns the old "agent" field's value of the FeedbackEntry entity.
// If the FeedbackEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackEntryMutation) OldAgent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgent: %w", err)
	}
	return oldValue.Agent, nil
}

// ResetAgent resets all changes to the "agent" field.
func (m *FeedbackEntryMutation) ResetAgent() {
	m.agent = nil
}

// SetCategory sets the "category" field.
func (m *FeedbackEntryMutation) SetCategory(f feedbackentry.Category) {
	m.category = &f
}

// Category returns the value of the "category" field in the mutation.
func (m *FeedbackEntryMutation) Category() (r feedbackentry.Category, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the FeedbackEntry entity.
// If the FeedbackEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackEntryMutation) OldCategory(ctx context.Context) (v feedbackentry.Category, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ResetCategory resets all changes to the "category" field.
func (m *FeedbackEntryMutation) ResetCategory() {
	m.category = nil
}

// SetContent sets the "content" field.
func (m *FeedbackEntryMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *FeedbackEntryMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the FeedbackEntry entity.
// If the FeedbackEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackEntryMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *FeedbackEntryMutation) ResetContent() {
	m.content = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *FeedbackEntryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *FeedbackEntryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the FeedbackEntry entity.
// If the FeedbackEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackEntryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *FeedbackEntryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the FeedbackEntryMutation builder.
func (m *FeedbackEntryMutation) Where(ps ...predicate.FeedbackEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FeedbackEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FeedbackEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.FeedbackEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FeedbackEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FeedbackEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (FeedbackEntry).
func (m *FeedbackEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FeedbackEntryMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.agent != nil {
		fields = append(fields, feedbackentry.FieldAgent)
	}
	if m.category != nil {
		fields = append(fields, feedbackentry.FieldCategory)
	}
	if m.content != nil {
		fields = append(fields, feedbackentry.FieldContent)
	}
	if m.created_at != nil {
		fields = append(fields, feedbackentry.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FeedbackEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case feedbackentry.FieldAgent:
		return m.Agent()
	case feedbackentry.FieldCategory:
		return m.Category()
	case feedbackentry.FieldContent:
		return m.Content()
	case feedbackentry.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FeedbackEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case feedbackentry.FieldAgent:
		return m.OldAgent(ctx)
	case feedbackentry.FieldCategory:
		return m.OldCategory(ctx)
	case feedbackentry.FieldContent:
		return m.OldContent(ctx)
	case feedbackentry.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown FeedbackEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FeedbackEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case feedbackentry.FieldAgent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgent(v)
		return nil
	case feedbackentry.FieldCategory:
		v, ok := value.(feedbackentry.Category)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case feedbackentry.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case feedbackentry.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown FeedbackEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FeedbackEntryMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FeedbackEntryMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FeedbackEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown FeedbackEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FeedbackEntryMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FeedbackEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FeedbackEntryMutation) ClearField(name string) error {
	return fmt.Errorf("unknown FeedbackEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FeedbackEntryMutation) ResetField(name string) error {
	switch name {
	case feedbackentry.FieldAgent:
		m.ResetAgent()
		return nil
	case feedbackentry.FieldCategory:
		m.ResetCategory()
		return nil
	case feedbackentry.FieldContent:
		m.ResetContent()
		return nil
	case feedbackentry.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown FeedbackEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FeedbackEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FeedbackEntryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FeedbackEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FeedbackEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FeedbackEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FeedbackEntryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FeedbackEntryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown FeedbackEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FeedbackEntryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown FeedbackEntry edge %s", name)
}

// GovernanceDecisionMutation represents an operation that mutates the GovernanceDecision nodes in the graph.
type GovernanceDecisionMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	participants       *[]string
	appendparticipants []string
	approval_rate      *float64
	addapproval_rate   *float64
	outcome            *governancedecision.Outcome
	decided_at         *time.Time
	clearedFields      map[string]struct{}
	rule               *string
	clearedrule        bool
	done               bool
	oldValue           func(context.Context) (*GovernanceDecision, error)
	predicates         []predicate.GovernanceDecision
}

var _ ent.Mutation = (*GovernanceDecisionMutation)(nil)

// governancedecisionOption allows management of the mutation configuration using functional options.
type governancedecisionOption func(*GovernanceDecisionMutation)

// newGovernanceDecisionMutation creates new mutation for the GovernanceDecision entity.
func newGovernanceDecisionMutation(c config, op Op, opts ...governancedecisionOption) *GovernanceDecisionMutation {
	m := &GovernanceDecisionMutation{
		config:        c,
		op:            op,
		typ:           TypeGovernanceDecision,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGovernanceDecisionID sets the ID field of the mutation.
func withGovernanceDecisionID(id string) governancedecisionOption {
	return func(m *GovernanceDecisionMutation) {
		var (
			err   error
			once  sync.Once
			value *GovernanceDecision
		)
		m.oldValue = func(ctx context.Context) (*GovernanceDecision, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().GovernanceDecision.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGovernanceDecision sets the old GovernanceDecision of the mutation.
func withGovernanceDecision(node *GovernanceDecision) governancedecisionOption {
	return func(m *GovernanceDecisionMutation) {
		m.oldValue = func(context.Context) (*GovernanceDecision, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GovernanceDecisionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GovernanceDecisionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of GovernanceDecision entities.
func (m *GovernanceDecisionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GovernanceDecisionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GovernanceDecisionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().GovernanceDecision.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRuleID sets the "rule_id" field.
func (m *GovernanceDecisionMutation) SetRuleID(s string) {
	m.rule = &s
}

// RuleID returns the value of the "rule_id" field in the mutation.
func (m *GovernanceDecisionMutation) RuleID() (r string, exists bool) {
	v := m.rule
	if v == nil {
		return
	}
	return *v, true
}

// OldRuleID returns the old "rule_id" field's value of the GovernanceDecision entity.
// If the GovernanceDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GovernanceDecisionMutation) OldRuleID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRuleID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRuleID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRuleID: %w", err)
	}
	return oldValue.RuleID, nil
}

// ResetRuleID resets all changes to the "rule_id" field.
func (m *GovernanceDecisionMutation) ResetRuleID() {
	m.rule = nil
}

// SetParticipants sets the "participants" field.
func (m *GovernanceDecisionMutation) SetParticipants(s []string) {
	m.participants = &s
	m.appendparticipants = nil
}

// Participants returns the value of the "participants" field in the mutation.
func (m *GovernanceDecisionMutation) Participants() (r []string, exists bool) {
	v := m.participants
	if v == nil {
		return
	}
	return *v, true
}

// OldParticipants returns the old "participants" field's value of the GovernanceDecision entity.
// If the GovernanceDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GovernanceDecisionMutation) OldParticipants(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParticipants is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParticipants requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParticipants: %w", err)
	}
	return oldValue.Participants, nil
}

// AppendParticipants adds s to the "participants" field.
func (m *GovernanceDecisionMutation) AppendParticipants(s []string) {
	m.appendparticipants = append(m.appendparticipants, s...)
}

// AppendedParticipants returns the list of values that were appended to the "participants" field in this mutation.
func (m *GovernanceDecisionMutation) AppendedParticipants() ([]string, bool) {
	if len(m.appendparticipants) == 0 {
		return nil, false
	}
	return m.appendparticipants, true
}

// ResetParticipants resets all changes to the "participants" field.
func (m *GovernanceDecisionMutation) ResetParticipants() {
	m.participants = nil
	m.appendparticipants = nil
}

// SetApprovalRate sets the "approval_rate" field.
func (m *GovernanceDecisionMutation) SetApprovalRate(f float64) {
	m.approval_rate = &f
	m.addapproval_rate = nil
}

// ApprovalRate returns the value of the "approval_rate" field in the mutation.
func (m *GovernanceDecisionMutation) ApprovalRate() (r float64, exists bool) {
	v := m.approval_rate
	if v == nil {
		return
	}
	return *v, true
}

// OldApprovalRate returns the old "approval_rate" field's value of the GovernanceDecision entity.
// If the GovernanceDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GovernanceDecisionMutation) OldApprovalRate(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApprovalRate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApprovalRate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApprovalRate: %w", err)
	}
	return oldValue.ApprovalRate, nil
}

// AddApprovalRate adds f to the "approval_rate" field.
func (m *GovernanceDecisionMutation) AddApprovalRate(f float64) {
	if m.addapproval_rate != nil {
		*m.addapproval_rate += f
	} else {
		m.addapproval_rate = &f
	}
}

// AddedApprovalRate returns the value that was added to the "approval_rate" field in this mutation.
func (m *GovernanceDecisionMutation) AddedApprovalRate() (r float64, exists bool) {
	v := m.addapproval_rate
	if v == nil {
		return
	}
	return *v, true
}

// ResetApprovalRate resets all changes to the "approval_rate" field.
func (m *GovernanceDecisionMutation) ResetApprovalRate() {
	m.approval_rate = nil
	m.addapproval_rate = nil
}

// SetOutcome sets the "outcome" field.
func (m *GovernanceDecisionMutation) SetOutcome(_go governancedecision.Outcome) {
	m.outcome = &_go
}

// Outcome returns the value of the "outcome" field in the mutation.
func (m *GovernanceDecisionMutation) Outcome() (r governancedecision.Outcome, exists bool) {
	v := m.outcome
	if v == nil {
		return
	}
	return *v, true
}

// OldOutcome returns the old "outcome" field's value of the GovernanceDecision entity.
// If the GovernanceDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GovernanceDecisionMutation) OldOutcome(ctx context.Context) (v governancedecision.Outcome, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutcome is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutcome requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutcome: %w", err)
	}
	return oldValue.Outcome, nil
}

// ResetOutcome resets all changes to the "outcome" field.
func (m *GovernanceDecisionMutation) ResetOutcome() {
	m.outcome = nil
}

// SetDecidedAt sets the "decided_at" field.
func (m *GovernanceDecisionMutation) SetDecidedAt(t time.Time) {
	m.decided_at = &t
}

// DecidedAt returns the value of the "decided_at" field in the mutation.
func (m *GovernanceDecisionMutation) DecidedAt() (r time.Time, exists bool) {
	v := m.decided_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDecidedAt returns the old "decided_at" field's value of the GovernanceDecision entity.
// If the GovernanceDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GovernanceDecisionMutation) OldDecidedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDecidedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDecidedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDecidedAt: %w", err)
	}
	return oldValue.DecidedAt, nil
}

// ResetDecidedAt resets all changes to the "decided_at" field.
func (m *GovernanceDecisionMutation) ResetDecidedAt() {
	m.decided_at = nil
}

// ClearRule clears the "rule" edge to the RiskRule entity.
func (m *GovernanceDecisionMutation) ClearRule() {
	m.clearedrule = true
	m.clearedFields[governancedecision.FieldRuleID] = struct{}{}
}

// RuleCleared reports if the "rule" edge to the RiskRule entity was cleared.
func (m *GovernanceDecisionMutation) RuleCleared() bool {
	return m.clearedrule
}

// RuleIDs returns the "rule" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RuleID instead. It exists only for internal usage by the builders.
func (m *GovernanceDecisionMutation) RuleIDs() (ids []string) {
	if id := m.rule; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRule resets all changes to the "rule" edge.
func (m *GovernanceDecisionMutation) ResetRule() {
	m.rule = nil
	m.clearedrule = false
}

// Where appends a list predicates to the GovernanceDecisionMutation builder.
func (m *GovernanceDecisionMutation) Where(ps ...predicate.GovernanceDecision) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GovernanceDecisionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GovernanceDecisionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.GovernanceDecision, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GovernanceDecisionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GovernanceDecisionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (GovernanceDecision).
func (m *GovernanceDecisionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GovernanceDecisionMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.rule != nil {
		fields = append(fields, governancedecision.FieldRuleID)
	}
	if m.participants != nil {
		fields = append(fields, governancedecision.FieldParticipants)
	}
	if m.approval_rate != nil {
		fields = append(fields, governancedecision.FieldApprovalRate)
	}
	if m.outcome != nil {
		fields = append(fields, governancedecision.FieldOutcome)
	}
	if m.decided_at != nil {
		fields = append(fields, governancedecision.FieldDecidedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GovernanceDecisionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case governancedecision.FieldRuleID:
		return m.RuleID()
	case governancedecision.FieldParticipants:
		return m.Participants()
	case governancedecision.FieldApprovalRate:
		return m.ApprovalRate()
	case governancedecision.FieldOutcome:
		return m.Outcome()
	case governancedecision.FieldDecidedAt:
		return m.DecidedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GovernanceDecisionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case governancedecision.FieldRuleID:
		return m.OldRuleID(ctx)
	case governancedecision.FieldParticipants:
		return m.OldParticipants(ctx)
	case governancedecision.FieldApprovalRate:
		return m.OldApprovalRate(ctx)
	case governancedecision.FieldOutcome:
		return m.OldOutcome(ctx)
	case governancedecision.FieldDecidedAt:
		return m.OldDecidedAt(ctx)
	}
	return nil, fmt.Errorf("unknown GovernanceDecision field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GovernanceDecisionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case governancedecision.FieldRuleID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRuleID(v)
		return nil
	case governancedecision.FieldParticipants:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParticipants(v)
		return nil
	case governancedecision.FieldApprovalRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApprovalRate(v)
		return nil
	case governancedecision.FieldOutcome:
		v, ok := value.(governancedecision.Outcome)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutcome(v)
		return nil
	case governancedecision.FieldDecidedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDecidedAt(v)
		return nil
	}
	return fmt.Errorf("unknown GovernanceDecision field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GovernanceDecisionMutation) AddedFields() []string {
	var fields []string
	if m.addapproval_rate != nil {
		fields = append(fields, governancedecision.FieldApprovalRate)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GovernanceDecisionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case governancedecision.FieldApprovalRate:
		return m.AddedApprovalRate()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GovernanceDecisionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case governancedecision.FieldApprovalRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddApprovalRate(v)
		return nil
	}
	return fmt.Errorf("unknown GovernanceDecision numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GovernanceDecisionMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GovernanceDecisionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GovernanceDecisionMutation) ClearField(name string) error {
	return fmt.Errorf("unknown GovernanceDecision nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GovernanceDecisionMutation) ResetField(name string) error {
	switch name {
	case governancedecision.FieldRuleID:
		m.ResetRuleID()
		return nil
	case governancedecision.FieldParticipants:
		m.ResetParticipants()
		return nil
	case governancedecision.FieldApprovalRate:
		m.ResetApprovalRate()
		return nil
	case governancedecision.FieldOutcome:
		m.ResetOutcome()
		return nil
	case governancedecision.FieldDecidedAt:
		m.ResetDecidedAt()
		return nil
	}
	return fmt.Errorf("unknown GovernanceDecision field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GovernanceDecisionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.rule != nil {
		edges = append(edges, governancedecision.EdgeRule)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GovernanceDecisionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case governancedecision.EdgeRule:
		if id := m.rule; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GovernanceDecisionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GovernanceDecisionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GovernanceDecisionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrule {
		edges = append(edges, governancedecision.EdgeRule)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GovernanceDecisionMutation) EdgeCleared(name string) bool {
	switch name {
	case governancedecision.EdgeRule:
		return m.clearedrule
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GovernanceDecisionMutation) ClearEdge(name string) error {
	switch name {
	case governancedecision.EdgeRule:
		m.ClearRule()
		return nil
	}
	return fmt.Errorf("unknown GovernanceDecision unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GovernanceDecisionMutation) ResetEdge(name string) error {
	switch name {
	case governancedecision.EdgeRule:
		m.ResetRule()
		return nil
	}
	return fmt.Errorf("unknown GovernanceDecision edge %s", name)
}

// IntentionRecordMutation represents an operation that mutates the IntentionRecord nodes in the graph.
type IntentionRecordMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	agent               *string
	kind                *string
	priority            *int
	addpriority         *int
	action_context      *map[string]interface{}
	target_agents       *[]string
	appendtarget_agents []string
	scope               *string
	status              *intentionrecord.Status
	reject_reason       *string
	expires_at          *time.Time
	created_at          *time.Time
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*IntentionRecord, error)
	predicates          []predicate.IntentionRecord
}

var _ ent.Mutation = (*IntentionRecordMutation)(nil)

// intentionrecordOption allows management of the mutation configuration using functional options.
type intentionrecordOption func(*IntentionRecordMutation)

// newIntentionRecordMutation creates new mutation for the IntentionRecord entity.
func newIntentionRecordMutation(c config, op Op, opts ...intentionrecordOption) *IntentionRecordMutation {
	m := &IntentionRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeIntentionRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withIntentionRecordID sets the ID field of the mutation.
func withIntentionRecordID(id string) intentionrecordOption {
	return func(m *IntentionRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *IntentionRecord
		)
		m.oldValue = func(ctx context.Context) (*IntentionRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().IntentionRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withIntentionRecord sets the old IntentionRecord of the mutation.
func withIntentionRecord(node *IntentionRecord) intentionrecordOption {
	return func(m *IntentionRecordMutation) {
		m.oldValue = func(context.Context) (*IntentionRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m IntentionRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m IntentionRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of IntentionRecord entities.
func (m *IntentionRecordMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *IntentionRecordMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *IntentionRecordMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().IntentionRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAgent sets the "agent" field.
func (m *IntentionRecordMutation) SetAgent(s string) {
	m.agent = &s
}

// Agent returns the value of the "agent" field in the mutation.
func (m *IntentionRecordMutation) Agent() (r string, exists bool) {
	v := m.agent
	if v == nil {
		return
	}
	return *v, true
}

// OldAgent returns the old "agent" field's value of the IntentionRecord entity.
// If the IntentionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntentionRecordMutation) OldAgent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgent: %w", err)
	}
	return oldValue.Agent, nil
}

// ResetAgent resets all changes to the "agent" field.
func (m *IntentionRecordMutation) ResetAgent() {
	m.agent = nil
}

// SetKind sets the "kind" field.
func (m *IntentionRecordMutation) SetKind(s string) {
	m.kind = &s
}

// Kind returns the value of the "kind" field in the mutation.
func (m *IntentionRecordMutation) Kind() (r string, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the IntentionRecord entity.
// If the IntentionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntentionRecordMutation) OldKind(ctx context.Context) (v string, err error) {
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
func (m *IntentionRecordMutation) ResetKind() {
	m.kind = nil
}

// SetPriority sets the "priority" field.
func (m *IntentionRecordMutation) SetPriority(i int) {
	m.priority = &i
	m.addpriority = nil
}

// Priority returns the value of the "priority" field in the mutation.
func (m *IntentionRecordMutation) Priority() (r int, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the IntentionRecord entity.
// If the IntentionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntentionRecordMutation) OldPriority(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// AddPriority adds i to the "priority" field.
func (m *IntentionRecordMutation) AddPriority(i int) {
	if m.addpriority != nil {
		*m.addpriority += i
	} else {
		m.addpriority = &i
	}
}

// AddedPriority returns the value that was added to the "priority" field in this mutation.
func (m *IntentionRecordMutation) AddedPriority() (r int, exists bool) {
	v := m.addpriority
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriority resets all changes to the "priority" field.
func (m *IntentionRecordMutation) ResetPriority() {
	m.priority = nil
	m.addpriority = nil
}

// SetActionContext sets the "action_context" field.
func (m *IntentionRecordMutation) SetActionContext(value map[string]interface{}) {
	m.action_context = &value
}

// ActionContext returns the value of the "action_context" field in the mutation.
func (m *IntentionRecordMutation) ActionContext() (r map[string]interface{}, exists bool) {
	v := m.action_context
	if v == nil {
		return
	}
	return *v, true
}

// OldActionContext returns the old "action_context" field's value of the IntentionRecord entity.
// If the IntentionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntentionRecordMutation) OldActionContext(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActionContext is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActionContext requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActionContext: %w", err)
	}
	return oldValue.ActionContext, nil
}

// ClearActionContext clears the value of the "action_context" field.
func (m *IntentionRecordMutation) ClearActionContext() {
	m.action_context = nil
	m.clearedFields[intentionrecord.FieldActionContext] = struct{}{}
}

// ActionContextCleared returns if the "action_context" field was cleared in this mutation.
func (m *IntentionRecordMutation) ActionContextCleared() bool {
	_, ok := m.clearedFields[intentionrecord.FieldActionContext]
	return ok
}

// ResetActionContext resets all changes to the "action_context" field.
func (m *IntentionRecordMutation) ResetActionContext() {
	m.action_context = nil
	delete(m.clearedFields, intentionrecord.FieldActionContext)
}

// SetTargetAgents sets the "target_agents" field.
func (m *IntentionRecordMutation) SetTargetAgents(s []string) {
	m.target_agents = &s
	m.appendtarget_agents = nil
}

// TargetAgents returns the value of the "target_agents" field in the mutation.
func (m *IntentionRecordMutation) TargetAgents() (r []string, exists bool) {
	v := m.target_agents
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetAgents returns the old "target_agents" field's value of the IntentionRecord entity.
// If the IntentionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntentionRecordMutation) OldTargetAgents(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetAgents is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetAgents requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetAgents: %w", err)
	}
	return oldValue.TargetAgents, nil
}

// AppendTargetAgents adds s to the "target_agents" field.
func (m *IntentionRecordMutation) AppendTargetAgents(s []string) {
	m.appendtarget_agents = append(m.appendtarget_agents, s...)
}

// AppendedTargetAgents returns the list of values that were appended to the "target_agents" field in this mutation.
func (m *IntentionRecordMutation) AppendedTargetAgents() ([]string, bool) {
	if len(m.appendtarget_agents) == 0 {
		return nil, false
	}
	return m.appendtarget_agents, true
}

// ClearTargetAgents clears the value of the "target_agents" field.
func (m *IntentionRecordMutation) ClearTargetAgents() {
	m.target_agents = nil
	m.appendtarget_agents = nil
	m.clearedFields[intentionrecord.FieldTargetAgents] = struct{}{}
}

// TargetAgentsCleared returns if the "target_agents" field was cleared in this mutation.
func (m *IntentionRecordMutation) TargetAgentsCleared() bool {
	_, ok := m.clearedFields[intentionrecord.FieldTargetAgents]
	return ok
}

// ResetTargetAgents resets all changes to the "target_agents" field.
func (m *IntentionRecordMutation) ResetTargetAgents() {
	m.target_agents = nil
	m.appendtarget_agents = nil
	delete(m.clearedFields, intentionrecord.FieldTargetAgents)
}

// SetScope sets the "scope" field.
func (m *IntentionRecordMutation) SetScope(s string) {
	m.scope = &s
}

// Scope returns the value of the "scope" field in the mutation.
func (m *IntentionRecordMutation) Scope() (r string, exists bool) {
	v := m.scope
	if v == nil {
		return
	}
	return *v, true
}

// OldScope returns the old "scope" field's value of the IntentionRecord entity.
// If the IntentionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntentionRecordMutation) OldScope(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScope is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScope requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScope: %w", err)
	}
	return oldValue.Scope, nil
}

// ClearScope clears the value of the "scope" field.
func (m *IntentionRecordMutation) ClearScope() {
	m.scope = nil
	m.clearedFields[intentionrecord.FieldScope] = struct{}{}
}

// ScopeCleared returns if the "scope" field was cleared in this mutation.
func (m *IntentionRecordMutation) ScopeCleared() bool {
	_, ok := m.clearedFields[intentionrecord.FieldScope]
	return ok
}

// ResetScope resets all changes to the "scope" field.
func (m *IntentionRecordMutation) ResetScope() {
	m.scope = nil
	delete(m.clearedFields, intentionrecord.FieldScope)
}

// SetStatus sets the "status" field.
func (m *IntentionRecordMutation) SetStatus(i intentionrecord.Status) {
	m.status = &i
}

// Status returns the value of the "status" field in the mutation.
func (m *IntentionRecordMutation) Status() (r intentionrecord.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the IntentionRecord entity.
// If the IntentionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntentionRecordMutation) OldStatus(ctx context.Context) (v intentionrecord.Status, err error) {
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
func (m *IntentionRecordMutation) ResetStatus() {
	m.status = nil
}

// SetRejectReason sets the "reject_reason" field.
func (m *IntentionRecordMutation) SetRejectReason(s string) {
	m.reject_reason = &s
}

// RejectReason returns the value of the "reject_reason" field in the mutation.
func (m *IntentionRecordMutation) RejectReason() (r string, exists bool) {
	v := m.reject_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldRejectReason returns the old "reject_reason" field's value of the IntentionRecord entity.
// If the IntentionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntentionRecordMutation) OldRejectReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRejectReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRejectReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRejectReason: %w", err)
	}
	return oldValue.RejectReason, nil
}

// ClearRejectReason clears the value of the "reject_reason" field.
func (m *IntentionRecordMutation) ClearRejectReason() {
	m.reject_reason = nil
	m.clearedFields[intentionrecord.FieldRejectReason] = struct{}{}
}

// RejectReasonCleared returns if the "reject_reason" field was cleared in this mutation.
func (m *IntentionRecordMutation) RejectReasonCleared() bool {
	_, ok := m.clearedFields[intentionrecord.FieldRejectReason]
	return ok
}

// ResetRejectReason resets all changes to the "reject_reason" field.
func (m *IntentionRecordMutation) ResetRejectReason() {
	m.reject_reason = nil
	delete(m.clearedFields, intentionrecord.FieldRejectReason)
}

// SetExpiresAt sets the "expires_at" field.
func (m *IntentionRecordMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *IntentionRecordMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the IntentionRecord entity.
// If the IntentionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntentionRecordMutation) OldExpiresAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *IntentionRecordMutation) ResetExpiresAt() {
	m.expires_at = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *IntentionRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *IntentionRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the IntentionRecord entity.
// If the IntentionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntentionRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *IntentionRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the IntentionRecordMutation builder.
func (m *IntentionRecordMutation) Where(ps ...predicate.IntentionRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the IntentionRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *IntentionRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.IntentionRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *IntentionRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *IntentionRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (IntentionRecord).
func (m *IntentionRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *IntentionRecordMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.agent != nil {
		fields = append(fields, intentionrecord.FieldAgent)
	}
	if m.kind != nil {
		fields = append(fields, intentionrecord.FieldKind)
	}
	if m.priority != nil {
		fields = append(fields, intentionrecord.FieldPriority)
	}
	if m.action_context != nil {
		fields = append(fields, intentionrecord.FieldActionContext)
	}
	if m.target_agents != nil {
		fields = append(fields, intentionrecord.FieldTargetAgents)
	}
	if m.scope != nil {
		fields = append(fields, intentionrecord.FieldScope)
	}
	if m.status != nil {
		fields = append(fields, intentionrecord.FieldStatus)
	}
	if m.reject_reason != nil {
		fields = append(fields, intentionrecord.FieldRejectReason)
	}
	if m.expires_at != nil {
		fields = append(fields, intentionrecord.FieldExpiresAt)
	}
	if m.created_at != nil {
		fields = append(fields, intentionrecord.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *IntentionRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case intentionrecord.FieldAgent:
		return m.Agent()
	case intentionrecord.FieldKind:
		return m.Kind()
	case intentionrecord.FieldPriority:
		return m.Priority()
	case intentionrecord.FieldActionContext:
		return m.ActionContext()
	case intentionrecord.FieldTargetAgents:
		return m.TargetAgents()
	case intentionrecord.FieldScope:
		return m.Scope()
	case intentionrecord.FieldStatus:
		return m.Status()
	case intentionrecord.FieldRejectReason:
		return m.RejectReason()
	case intentionrecord.FieldExpiresAt:
		return m.ExpiresAt()
	case intentionrecord.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *IntentionRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case intentionrecord.FieldAgent:
		return m.OldAgent(ctx)
	case intentionrecord.FieldKind:
		return m.OldKind(ctx)
	case intentionrecord.FieldPriority:
		return m.OldPriority(ctx)
	case intentionrecord.FieldActionContext:
		return m.OldActionContext(ctx)
	case intentionrecord.FieldTargetAgents:
		return m.OldTargetAgents(ctx)
	case intentionrecord.FieldScope:
		return m.OldScope(ctx)
	case intentionrecord.FieldStatus:
		return m.OldStatus(ctx)
	case intentionrecord.FieldRejectReason:
		return m.OldRejectReason(ctx)
	case intentionrecord.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	case intentionrecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown IntentionRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IntentionRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case intentionrecord.FieldAgent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgent(v)
		return nil
	case intentionrecord.FieldKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case intentionrecord.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case intentionrecord.FieldActionContext:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActionContext(v)
		return nil
	case intentionrecord.FieldTargetAgents:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetAgents(v)
		return nil
	case intentionrecord.FieldScope:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScope(v)
		return nil
	case intentionrecord.FieldStatus:
		v, ok := value.(intentionrecord.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case intentionrecord.FieldRejectReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRejectReason(v)
		return nil
	case intentionrecord.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	case intentionrecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown IntentionRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *IntentionRecordMutation) AddedFields() []string {
	var fields []string
	if m.addpriority != nil {
		fields = append(fields, intentionrecord.FieldPriority)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *IntentionRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case intentionrecord.FieldPriority:
		return m.AddedPriority()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IntentionRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case intentionrecord.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriority(v)
		return nil
	}
	return fmt.Errorf("unknown IntentionRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *IntentionRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(intentionrecord.FieldActionContext) {
		fields = append(fields, intentionrecord.FieldActionContext)
	}
	if m.FieldCleared(intentionrecord.FieldTargetAgents) {
		fields = append(fields, intentionrecord.FieldTargetAgents)
	}
	if m.FieldCleared(intentionrecord.FieldScope) {
		fields = append(fields, intentionrecord.FieldScope)
	}
	if m.FieldCleared(intentionrecord.FieldRejectReason) {
		fields = append(fields, intentionrecord.FieldRejectReason)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *IntentionRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *IntentionRecordMutation) ClearField(name string) error {
	switch name {
	case intentionrecord.FieldActionContext:
		m.ClearActionContext()
		return nil
	case intentionrecord.FieldTargetAgents:
		m.ClearTargetAgents()
		return nil
	case intentionrecord.FieldScope:
		m.ClearScope()
		return nil
	case intentionrecord.FieldRejectReason:
		m.ClearRejectReason()
		return nil
	}
	return fmt.Errorf("unknown IntentionRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *IntentionRecordMutation) ResetField(name string) error {
	switch name {
	case intentionrecord.FieldAgent:
		m.ResetAgent()
		return nil
	case intentionrecord.FieldKind:
		m.ResetKind()
		return nil
	case intentionrecord.FieldPriority:
		m.ResetPriority()
		return nil
	case intentionrecord.FieldActionContext:
		m.ResetActionContext()
		return nil
	case intentionrecord.FieldTargetAgents:
		m.ResetTargetAgents()
		return nil
	case intentionrecord.FieldScope:
		m.ResetScope()
		return nil
	case intentionrecord.FieldStatus:
		m.ResetStatus()
		return nil
	case intentionrecord.FieldRejectReason:
		m.ResetRejectReason()
		return nil
	case intentionrecord.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	case intentionrecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown IntentionRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *IntentionRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *IntentionRecordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *IntentionRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *IntentionRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *IntentionRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *IntentionRecordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *IntentionRecordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown IntentionRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *IntentionRecordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown IntentionRecord edge %s", name)
}

// MemoryApprovalMutation represents an operation that mutates the MemoryApproval nodes in the graph.
type MemoryApprovalMutation struct {
	config
	op            Op
	typ           string
	id            *string
	approver      *string
	approved      *bool
	reason        *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	memory        *string
	clearedmemory bool
	done          bool
	oldValue      func(context.Context) (*MemoryApproval, error)
	predicates    []predicate.MemoryApproval
}

var _ ent.Mutation = (*MemoryApprovalMutation)(nil)

// memoryapprovalOption allows management of the mutation configuration using functional options.
type memoryapprovalOption func(*MemoryApprovalMutation)

// newMemoryApprovalMutation creates new mutation for the MemoryApproval entity.
func newMemoryApprovalMutation(c config, op Op, opts ...memoryapprovalOption) *MemoryApprovalMutation {
	m := &MemoryApprovalMutation{
		config:        c,
		op:            op,
		typ:           TypeMemoryApproval,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMemoryApprovalID sets the ID field of the mutation.
func withMemoryApprovalID(id string) memoryapprovalOption {
	return func(m *MemoryApprovalMutation) {
		var (
			err   error
			once  sync.Once
			value *MemoryApproval
		)
		m.oldValue = func(ctx context.Context) (*MemoryApproval, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MemoryApproval.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMemoryApproval sets the old MemoryApproval of the mutation.
func withMemoryApproval(node *MemoryApproval) memoryapprovalOption {
	return func(m *MemoryApprovalMutation) {
		m.oldValue = func(context.Context) (*MemoryApproval, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MemoryApprovalMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MemoryApprovalMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of MemoryApproval entities.
func (m *MemoryApprovalMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MemoryApprovalMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MemoryApprovalMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MemoryApproval.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetMemoryID sets the "memory_id" field.
func (m *MemoryApprovalMutation) SetMemoryID(s string) {
	m.memory = &s
}

// MemoryID returns the value of the "memory_id" field in the mutation.
func (m *MemoryApprovalMutation) MemoryID() (r string, exists bool) {
	v := m.memory
	if v == nil {
		return
	}
	return *v, true
}

// OldMemoryID returns the old "memory_id" field's value of the MemoryApproval entity.
// If the MemoryApproval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryApprovalMutation) OldMemoryID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMemoryID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMemoryID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMemoryID: %w", err)
	}
	return oldValue.MemoryID, nil
}

// ResetMemoryID resets all changes to the "memory_id" field.
func (m *MemoryApprovalMutation) ResetMemoryID() {
	m.memory = nil
}

// SetApprover sets the "approver" field.
func (m *MemoryApprovalMutation) SetApprover(s string) {
	m.approver = &s
}

// Approver returns the value of the "approver" field in the mutation.
func (m *MemoryApprovalMutation) Approver() (r string, exists bool) {
	v := m.approver
	if v == nil {
		return
	}
	return *v, true
}

// OldApprover returns the old "approver" field's value of the MemoryApproval entity.
// If the MemoryApproval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryApprovalMutation) OldApprover(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApprover is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApprover requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApprover: %w", err)
	}
	return oldValue.Approver, nil
}

// ResetApprover resets all changes to the "approver" field.
func (m *MemoryApprovalMutation) ResetApprover() {
	m.approver = nil
}

// SetApproved sets the "approved" field.
func (m *MemoryApprovalMutation) SetApproved(b bool) {
	m.approved = &b
}

// Approved returns the value of the "approved" field in the mutation.
func (m *MemoryApprovalMutation) Approved() (r bool, exists bool) {
	v := m.approved
	if v == nil {
		return
	}
	return *v, true
}

// OldApproved returns the old "approved" field's value of the MemoryApproval entity.
// If the MemoryApproval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryApprovalMutation) OldApproved(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApproved is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApproved requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApproved: %w", err)
	}
	return oldValue.Approved, nil
}

// ResetApproved resets all changes to the "approved" field.
func (m *MemoryApprovalMutation) ResetApproved() {
	m.approved = nil
}

// SetReason sets the "reason" field.
func (m *MemoryApprovalMutation) SetReason(s string) {
	m.reason = &s
}

// Reason returns the value of the "reason" field in the mutation.
func (m *MemoryApprovalMutation) Reason() (r string, exists bool) {
	v := m.reason
	if v == nil {
		return
	}
	return *v, true
}

// OldReason returns the old "reason" field's value of the MemoryApproval entity.
// If the MemoryApproval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryApprovalMutation) OldReason(ctx context.Context) (v string, err error) {
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

// ClearReason clears the value of the "reason" field.
func (m *MemoryApprovalMutation) ClearReason() {
	m.reason = nil
	m.clearedFields[memoryapproval.FieldReason] = struct{}{}
}

// ReasonCleared returns if the "reason" field was cleared in this mutation.
func (m *MemoryApprovalMutation) ReasonCleared() bool {
	_, ok := m.clearedFields[memoryapproval.FieldReason]
	return ok
}

// ResetReason resets all changes to the "reason" field.
func (m *MemoryApprovalMutation) ResetReason() {
	m.reason = nil
	delete(m.clearedFields, memoryapproval.FieldReason)
}

// SetCreatedAt sets the "created_at" field.
func (m *MemoryApprovalMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MemoryApprovalMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the MemoryApproval entity.
// If the MemoryApproval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryApprovalMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *MemoryApprovalMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearMemory clears the "memory" edge to the MemoryRecord entity.
func (m *MemoryApprovalMutation) ClearMemory() {
	m.clearedmemory = true
	m.clearedFields[memoryapproval.FieldMemoryID] = struct{}{}
}

// MemoryCleared reports if the "memory" edge to the MemoryRecord entity was cleared.
func (m *MemoryApprovalMutation) MemoryCleared() bool {
	return m.clearedmemory
}

// MemoryIDs returns the "memory" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// MemoryID instead. It exists only for internal usage by the builders.
func (m *MemoryApprovalMutation) MemoryIDs() (ids []string) {
	if id := m.memory; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetMemory resets all changes to the "memory" edge.
func (m *MemoryApprovalMutation) ResetMemory() {
	m.memory = nil
	m.clearedmemory = false
}

// Where appends a list predicates to the MemoryApprovalMutation builder.
func (m *MemoryApprovalMutation) Where(ps ...predicate.MemoryApproval) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MemoryApprovalMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MemoryApprovalMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MemoryApproval, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MemoryApprovalMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MemoryApprovalMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MemoryApproval).
func (m *MemoryApprovalMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MemoryApprovalMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.memory != nil {
		fields = append(fields, memoryapproval.FieldMemoryID)
	}
	if m.approver != nil {
		fields = append(fields, memoryapproval.FieldApprover)
	}
	if m.approved != nil {
		fields = append(fields, memoryapproval.FieldApproved)
	}
	if m.reason != nil {
		fields = append(fields, memoryapproval.FieldReason)
	}
	if m.created_at != nil {
		fields = append(fields, memoryapproval.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MemoryApprovalMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case memoryapproval.FieldMemoryID:
		return m.MemoryID()
	case memoryapproval.FieldApprover:
		return m.Approver()
	case memoryapproval.FieldApproved:
		return m.Approved()
	case memoryapproval.FieldReason:
		return m.Reason()
	case memoryapproval.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MemoryApprovalMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case memoryapproval.FieldMemoryID:
		return m.OldMemoryID(ctx)
	case memoryapproval.FieldApprover:
		return m.OldApprover(ctx)
	case memoryapproval.FieldApproved:
		return m.OldApproved(ctx)
	case memoryapproval.FieldReason:
		return m.OldReason(ctx)
	case memoryapproval.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown MemoryApproval field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MemoryApprovalMutation) SetField(name string, value ent.Value) error {
	switch name {
	case memoryapproval.FieldMemoryID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMemoryID(v)
		return nil
	case memoryapproval.FieldApprover:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApprover(v)
		return nil
	case memoryapproval.FieldApproved:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApproved(v)
		return nil
	case memoryapproval.FieldReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReason(v)
		return nil
	case memoryapproval.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown MemoryApproval field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MemoryApprovalMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MemoryApprovalMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MemoryApprovalMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown MemoryApproval numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MemoryApprovalMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(memoryapproval.FieldReason) {
		fields = append(fields, memoryapproval.FieldReason)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MemoryApprovalMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MemoryApprovalMutation) ClearField(name string) error {
	switch name {
	case memoryapproval.FieldReason:
		m.ClearReason()
		return nil
	}
	return fmt.Errorf("unknown MemoryApproval nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MemoryApprovalMutation) ResetField(name string) error {
	switch name {
	case memoryapproval.FieldMemoryID:
		m.ResetMemoryID()
		return nil
	case memoryapproval.FieldApprover:
		m.ResetApprover()
		return nil
	case memoryapproval.FieldApproved:
		m.ResetApproved()
		return nil
	case memoryapproval.FieldReason:
		m.ResetReason()
		return nil
	case memoryapproval.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown MemoryApproval field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MemoryApprovalMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.memory != nil {
		edges = append(edges, memoryapproval.EdgeMemory)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MemoryApprovalMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case memoryapproval.EdgeMemory:
		if id := m.memory; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MemoryApprovalMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MemoryApprovalMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MemoryApprovalMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedmemory {
		edges = append(edges, memoryapproval.EdgeMemory)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MemoryApprovalMutation) EdgeCleared(name string) bool {
	switch name {
	case memoryapproval.EdgeMemory:
		return m.clearedmemory
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MemoryApprovalMutation) ClearEdge(name string) error {
	switch name {
	case memoryapproval.EdgeMemory:
		m.ClearMemory()
		return nil
	}
	return fmt.Errorf("unknown MemoryApproval unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MemoryApprovalMutation) ResetEdge(name string) error {
	switch name {
	case memoryapproval.EdgeMemory:
		m.ResetMemory()
		return nil
	}
	return fmt.Errorf("unknown MemoryApproval edge %s", name)
}

// MemoryRecordMutation represents an operation that mutates the MemoryRecord nodes in the graph.
type MemoryRecordMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	agent               *string
	team                *string
	content             *string
	tags                *[]string
	appendtags          []string
	scope               *memoryrecord.Scope
	confidence          *float64
	addconfidence       *float64
	experiment_id       *string
	data_version_hash   *string
	artifact_id         *string
	embedding           *[]float32
	appendembedding     []float32
	approval_status     *memoryrecord.ApprovalStatus
	needed_approvals    *int
	addneeded_approvals *int
	expires_at          *time.Time
	created_at          *time.Time
	clearedFields       map[string]struct{}
	approvals           map[string]struct{}
	removedapprovals    map[string]struct{}
	clearedapprovals    bool
	done                bool
	oldValue            func(context.Context) (*MemoryRecord, error)
	predicates          []predicate.MemoryRecord
}

var _ ent.Mutation = (*MemoryRecordMutation)(nil)

// memoryrecordOption allows management of the mutation configuration using functional options.
type memoryrecordOption func(*MemoryRecordMutation)

// newMemoryRecordMutation creates new mutation for the MemoryRecord entity.
func newMemoryRecordMutation(c config, op Op, opts ...memoryrecordOption) *MemoryRecordMutation {
	m := &MemoryRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeMemoryRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMemoryRecordID sets the ID field of the mutation.
func withMemoryRecordID(id string) memoryrecordOption {
	return func(m *MemoryRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *MemoryRecord
		)
		m.oldValue = func(ctx context.Context) (*MemoryRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MemoryRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMemoryRecord sets the old MemoryRecord of the mutation.
func withMemoryRecord(node *MemoryRecord) memoryrecordOption {
	return func(m *MemoryRecordMutation) {
		m.oldValue = func(context.Context) (*MemoryRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MemoryRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MemoryRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of MemoryRecord entities.
func (m *MemoryRecordMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MemoryRecordMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MemoryRecordMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MemoryRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAgent sets the "agent" field.
func (m *MemoryRecordMutation) SetAgent(s string) {
	m.agent = &s
}

// Agent returns the value of the "agent" field in the mutation.
func (m *MemoryRecordMutation) Agent() (r string, exists bool) {
	v := m.agent
	if v == nil {
		return
	}
	return *v, true
}

// OldAgent returns the old "agent" field's value of the MemoryRecord entity.
// If the MemoryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryRecordMutation) OldAgent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgent: %w", err)
	}
	return oldValue.Agent, nil
}

// ResetAgent resets all changes to the "agent" field.
func (m *MemoryRecordMutation) ResetAgent() {
	m.agent = nil
}

// SetTeam sets the "team" field.
func (m *MemoryRecordMutation) SetTeam(s string) {
	m.team = &s
}

// Team returns the value of the "team" field in the mutation.
func (m *MemoryRecordMutation) Team() (r string, exists bool) {
	v := m.team
	if v == nil {
		return
	}
	return *v, true
}

// OldTeam returns the old "team" field's value of the MemoryRecord entity.
// If the MemoryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryRecordMutation) OldTeam(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTeam is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTeam requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTeam: %w", err)
	}
	return oldValue.Team, nil
}

// ClearTeam clears the value of the "team" field.
func (m *MemoryRecordMutation) ClearTeam() {
	m.team = nil
	m.clearedFields[memoryrecord.FieldTeam] = struct{}{}
}

// TeamCleared returns if the "team" field was cleared in this mutation.
func (m *MemoryRecordMutation) TeamCleared() bool {
	_, ok := m.clearedFields[memoryrecord.FieldTeam]
	return ok
}

// ResetTeam resets all changes to the "team" field.
func (m *MemoryRecordMutation) ResetTeam() {
	m.team = nil
	delete(m.clearedFields, memoryrecord.FieldTeam)
}

// SetContent sets the "content" field.
func (m *MemoryRecordMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *MemoryRecordMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the MemoryRecord entity.
// If the MemoryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryRecordMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *MemoryRecordMutation) ResetContent() {
	m.content = nil
}

// SetTags sets the "tags" field.
func (m *MemoryRecordMutation) SetTags(s []string) {
	m.tags = &s
	m.appendtags = nil
}

// Tags returns the value of the "tags" field in the mutation.
func (m *MemoryRecordMutation) Tags() (r []string, exists bool) {
	v := m.tags
	if v == nil {
		return
	}
	return *v, true
}

// OldTags returns the old "tags" field's value of the MemoryRecord entity.
// If the MemoryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryRecordMutation) OldTags(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTags: %w", err)
	}
	return oldValue.Tags, nil
}

// AppendTags adds s to the "tags" field.
func (m *MemoryRecordMutation) AppendTags(s []string) {
	m.appendtags = append(m.appendtags, s...)
}

// AppendedTags returns the list of values that were appended to the "tags" field in this mutation.
func (m *MemoryRecordMutation) AppendedTags() ([]string, bool) {
	if len(m.appendtags) == 0 {
		return nil, false
	}
	return m.appendtags, true
}

// ClearTags clears the value of the "tags" field.
func (m *MemoryRecordMutation) ClearTags() {
	m.tags = nil
	m.appendtags = nil
	m.clearedFields[memoryrecord.FieldTags] = struct{}{}
}

// TagsCleared returns if the "tags" field was cleared in this mutation.
func (m *MemoryRecordMutation) TagsCleared() bool {
	_, ok := m.clearedFields[memoryrecord.FieldTags]
	return ok
}

// ResetTags resets all changes to the "tags" field.
func (m *MemoryRecordMutation) ResetTags() {
	m.tags = nil
	m.appendtags = nil
	delete(m.clearedFields, memoryrecord.FieldTags)
}

// SetScope sets the "scope" field.
func (m *MemoryRecordMutation) SetScope(value memoryrecord.Scope) {
	m.scope = &value
}

// Scope returns the value of the "scope" field in the mutation.
func (m *MemoryRecordMutation) Scope() (r memoryrecord.Scope, exists bool) {
	v := m.scope
	if v == nil {
		return
	}
	return *v, true
}

// OldScope returns the old "scope" field's value of the MemoryRecord entity.
// If the MemoryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryRecordMutation) OldScope(ctx context.Context) (v memoryrecord.Scope, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScope is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScope requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScope: %w", err)
	}
	return oldValue.Scope, nil
}

// ResetScope resets all changes to the "scope" field.
func (m *MemoryRecordMutation) ResetScope() {
	m.scope = nil
}

// SetConfidence sets the "confidence" field.
func (m *MemoryRecordMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *MemoryRecordMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the MemoryRecord entity.
// If the MemoryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryRecordMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *MemoryRecordMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *MemoryRecordMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *MemoryRecordMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetExperimentID sets the "experiment_id" field.
func (m *MemoryRecordMutation) SetExperimentID(s string) {
	m.experiment_id = &s
}

// ExperimentID returns the value of the "experiment_id" field in the mutation.
func (m *MemoryRecordMutation) ExperimentID() (r string, exists bool) {
	v := m.experiment_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExperimentID returns the old "experiment_id" field's value of the MemoryRecord entity.
// If the MemoryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryRecordMutation) OldExperimentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExperimentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExperimentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExperimentID: %w", err)
	}
	return oldValue.ExperimentID, nil
}

// ClearExperimentID clears the value of the "experiment_id" field.
func (m *MemoryRecordMutation) ClearExperimentID() {
	m.experiment_id = nil
	m.clearedFields[memoryrecord.FieldExperimentID] = struct{}{}
}

// ExperimentIDCleared returns if the "experiment_id" field was cleared in this mutation.
func (m *MemoryRecordMutation) ExperimentIDCleared() bool {
	_, ok := m.clearedFields[memoryrecord.FieldExperimentID]
	return ok
}

// ResetExperimentID resets all changes to the "experiment_id" field.
func (m *MemoryRecordMutation) ResetExperimentID() {
	m.experiment_id = nil
	delete(m.clearedFields, memoryrecord.FieldExperimentID)
}

// SetDataVersionHash sets the "data_version_hash" field.
func (m *MemoryRecordMutation) SetDataVersionHash(s string) {
	m.data_version_hash = &s
}

// DataVersionHash returns the value of the "data_version_hash" field in the mutation.
func (m *MemoryRecordMutation) DataVersionHash() (r string, exists bool) {
	v := m.data_version_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldDataVersionHash returns the old "data_version_hash" field's value of the MemoryRecord entity.
// If the MemoryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryRecordMutation) OldDataVersionHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDataVersionHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDataVersionHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDataVersionHash: %w", err)
	}
	return oldValue.DataVersionHash, nil
}

// ClearDataVersionHash clears the value of the "data_version_hash" field.
func (m *MemoryRecordMutation) ClearDataVersionHash() {
	m.data_version_hash = nil
	m.clearedFields[memoryrecord.FieldDataVersionHash] = struct{}{}
}

// DataVersionHashCleared returns if the "data_version_hash" field was cleared in this mutation.
func (m *MemoryRecordMutation) DataVersionHashCleared() bool {
	_, ok := m.clearedFields[memoryrecord.FieldDataVersionHash]
	return ok
}

// ResetDataVersionHash resets all changes to the "data_version_hash" field.
func (m *MemoryRecordMutation) ResetDataVersionHash() {
	m.data_version_hash = nil
	delete(m.clearedFields, memoryrecord.FieldDataVersionHash)
}

// SetArtifactID sets the "artifact_id" field.
func (m *MemoryRecordMutation) SetArtifactID(s string) {
	m.artifact_id = &s
}

// ArtifactID returns the value of the "artifact_id" field in the mutation.
func (m *MemoryRecordMutation) ArtifactID() (r string, exists bool) {
	v := m.artifact_id
	if v == nil {
		return
	}
	return *v, true
}

// OldArtifactID returns the old "artifact_id" field's value of the MemoryRecord entity.
// If the MemoryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryRecordMutation) OldArtifactID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArtifactID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArtifactID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArtifactID: %w", err)
	}
	return oldValue.ArtifactID, nil
}

// ClearArtifactID clears the value of the "artifact_id" field.
func (m *MemoryRecordMutation) ClearArtifactID() {
	m.artifact_id = nil
	m.clearedFields[memoryrecord.FieldArtifactID] = struct{}{}
}

// ArtifactIDCleared returns if the "artifact_id" field was cleared in this mutation.
func (m *MemoryRecordMutation) ArtifactIDCleared() bool {
	_, ok := m.clearedFields[memoryrecord.FieldArtifactID]
	return ok
}

// ResetArtifactID resets all changes to the "artifact_id" field.
func (m *MemoryRecordMutation) ResetArtifactID() {
	m.artifact_id = nil
	delete(m.clearedFields, memoryrecord.FieldArtifactID)
}

// SetEmbedding sets the "embedding" field.
func (m *MemoryRecordMutation) SetEmbedding(f []float32) {
	m.embedding = &f
	m.appendembedding = nil
}

// Embedding returns the value of the "embedding" field in the mutation.
func (m *MemoryRecordMutation) Embedding() (r []float32, exists bool) {
	v := m.embedding
	if v == nil {
		return
	}
	return *v, true
}

// OldEmbedding returns the old "embedding" field's value of the MemoryRecord entity.
// If the MemoryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryRecordMutation) OldEmbedding(ctx context.Context) (v []float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmbedding is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmbedding requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmbedding: %w", err)
	}
	return oldValue.Embedding, nil
}

// AppendEmbedding adds f to the "embedding" field.
func (m *MemoryRecordMutation) AppendEmbedding(f []float32) {
	m.appendembedding = append(m.appendembedding, f...)
}

// AppendedEmbedding returns the list of values that were appended to the "embedding" field in this mutation.
func (m *MemoryRecordMutation) AppendedEmbedding() ([]float32, bool) {
	if len(m.appendembedding) == 0 {
		return nil, false
	}
	return m.appendembedding, true
}

// ClearEmbedding clears the value of the "embedding" field.
func (m *MemoryRecordMutation) ClearEmbedding() {
	m.embedding = nil
	m.appendembedding = nil
	m.clearedFields[memoryrecord.FieldEmbedding] = struct{}{}
}

// EmbeddingCleared returns if the "embedding" field was cleared in this mutation.
func (m *MemoryRecordMutation) EmbeddingCleared() bool {
	_, ok := m.clearedFields[memoryrecord.FieldEmbedding]
	return ok
}

// ResetEmbedding resets all changes to the "embedding" field.
func (m *MemoryRecordMutation) ResetEmbedding() {
	m.embedding = nil
	m.appendembedding = nil
	delete(m.clearedFields, memoryrecord.FieldEmbedding)
}

// SetApprovalStatus sets the "approval_status" field.
func (m *MemoryRecordMutation) SetApprovalStatus(ms memoryrecord.ApprovalStatus) {
	m.approval_status = &ms
}

// ApprovalStatus returns the value of the "approval_status" field in the mutation.
func (m *MemoryRecordMutation) ApprovalStatus() (r memoryrecord.ApprovalStatus, exists bool) {
	v := m.approval_status
	if v == nil {
		return
	}
	return *v, true
}

// OldApprovalStatus returns the old "approval_status" field's value of the MemoryRecord entity.
// If the MemoryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryRecordMutation) OldApprovalStatus(ctx context.Context) (v memoryrecord.ApprovalStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApprovalStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApprovalStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApprovalStatus: %w", err)
	}
	return oldValue.ApprovalStatus, nil
}

// ResetApprovalStatus resets all changes to the "approval_status" field.
func (m *MemoryRecordMutation) ResetApprovalStatus() {
	m.approval_status = nil
}

// SetNeededApprovals sets the "needed_approvals" field.
func (m *MemoryRecordMutation) SetNeededApprovals(i int) {
	m.needed_approvals = &i
	m.addneeded_approvals = nil
}

// NeededApprovals returns the value of the "needed_approvals" field in the mutation.
func (m *MemoryRecordMutation) NeededApprovals() (r int, exists bool) {
	v := m.needed_approvals
	if v == nil {
		return
	}
	return *v, true
}

// OldNeededApprovals returns the old "needed_approvals" field's value of the MemoryRecord entity.
// If the MemoryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryRecordMutation) OldNeededApprovals(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNeededApprovals is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNeededApprovals requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNeededApprovals: %w", err)
	}
	return oldValue.NeededApprovals, nil
}

// AddNeededApprovals adds i to the "needed_approvals" field.
func (m *MemoryRecordMutation) AddNeededApprovals(i int) {
	if m.addneeded_approvals != nil {
		*m.addneeded_approvals += i
	} else {
		m.addneeded_approvals = &i
	}
}

// AddedNeededApprovals returns the value that was added to the "needed_approvals" field in this mutation.
func (m *MemoryRecordMutation) AddedNeededApprovals() (r int, exists bool) {
	v := m.addneeded_approvals
	if v == nil {
		return
	}
	return *v, true
}

// ResetNeededApprovals resets all changes to the "needed_approvals" field.
func (m *MemoryRecordMutation) ResetNeededApprovals() {
	m.needed_approvals = nil
	m.addneeded_approvals = nil
}

// SetExpiresAt sets the "expires_at" field.
func (m *MemoryRecordMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *MemoryRecordMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the MemoryRecord entity.
// If the MemoryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryRecordMutation) OldExpiresAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (m *MemoryRecordMutation) ClearExpiresAt() {
	m.expires_at = nil
	m.clearedFields[memoryrecord.FieldExpiresAt] = struct{}{}
}

// ExpiresAtCleared returns if the "expires_at" field was cleared in this mutation.
func (m *MemoryRecordMutation) ExpiresAtCleared() bool {
	_, ok := m.clearedFields[memoryrecord.FieldExpiresAt]
	return ok
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *MemoryRecordMutation) ResetExpiresAt() {
	m.expires_at = nil
	delete(m.clearedFields, memoryrecord.FieldExpiresAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *MemoryRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MemoryRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the MemoryRecord entity.
// If the MemoryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *MemoryRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddApprovalIDs adds the "approvals" edge to the MemoryApproval entity by ids.
func (m *MemoryRecordMutation) AddApprovalIDs(ids ...string) {
	if m.approvals == nil {
		m.approvals = make(map[string]struct{})
	}
	for i := range ids {
		m.approvals[ids[i]] = struct{}{}
	}
}

// ClearApprovals clears the "approvals" edge to the MemoryApproval entity.
func (m *MemoryRecordMutation) ClearApprovals() {
	m.clearedapprovals = true
}

// ApprovalsCleared reports if the "approvals" edge to the MemoryApproval entity was cleared.
func (m *MemoryRecordMutation) ApprovalsCleared() bool {
	return m.clearedapprovals
}

// RemoveApprovalIDs removes the "approvals" edge to the MemoryApproval entity by IDs.
func (m *MemoryRecordMutation) RemoveApprovalIDs(ids ...string) {
	if m.removedapprovals == nil {
		m.removedapprovals = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.approvals, ids[i])
		m.removedapprovals[ids[i]] = struct{}{}
	}
}

// RemovedApprovals returns the removed IDs of the "approvals" edge to the MemoryApproval entity.
func (m *MemoryRecordMutation) RemovedApprovalsIDs() (ids []string) {
	for id := range m.removedapprovals {
		ids = append(ids, id)
	}
	return
}

// ApprovalsIDs returns the "approvals" edge IDs in the mutation.
func (m *MemoryRecordMutation) ApprovalsIDs() (ids []string) {
	for id := range m.approvals {
		ids = append(ids, id)
	}
	return
}

// ResetApprovals resets all changes to the "approvals" edge.
func (m *MemoryRecordMutation) ResetApprovals() {
	m.approvals = nil
	m.clearedapprovals = false
	m.removedapprovals = nil
}

// Where appends a list predicates to the MemoryRecordMutation builder.
func (m *MemoryRecordMutation) Where(ps ...predicate.MemoryRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MemoryRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MemoryRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MemoryRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MemoryRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MemoryRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MemoryRecord).
func (m *MemoryRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MemoryRecordMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.agent != nil {
		fields = append(fields, memoryrecord.FieldAgent)
	}
	if m.team != nil {
		fields = append(fields, memoryrecord.FieldTeam)
	}
	if m.content != nil {
		fields = append(fields, memoryrecord.FieldContent)
	}
	if m.tags != nil {
		fields = append(fields, memoryrecord.FieldTags)
	}
	if m.scope != nil {
		fields = append(fields, memoryrecord.FieldScope)
	}
	if m.confidence != nil {
		fields = append(fields, memoryrecord.FieldConfidence)
	}
	if m.experiment_id != nil {
		fields = append(fields, memoryrecord.FieldExperimentID)
	}
	if m.data_version_hash != nil {
		fields = append(fields, memoryrecord.FieldDataVersionHash)
	}
	if m.artifact_id != nil {
		fields = append(fields, memoryrecord.FieldArtifactID)
	}
	if m.embedding != nil {
		fields = append(fields, memoryrecord.FieldEmbedding)
	}
	if m.approval_status != nil {
		fields = append(fields, memoryrecord.FieldApprovalStatus)
	}
	if m.needed_approvals != nil {
		fields = append(fields, memoryrecord.FieldNeededApprovals)
	}
	if m.expires_at != nil {
		fields = append(fields, memoryrecord.FieldExpiresAt)
	}
	if m.created_at != nil {
		fields = append(fields, memoryrecord.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MemoryRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case memoryrecord.FieldAgent:
		return m.Agent()
	case memoryrecord.FieldTeam:
		return m.Team()
	case memoryrecord.FieldContent:
		return m.Content()
	case memoryrecord.FieldTags:
		return m.Tags()
	case memoryrecord.FieldScope:
		return m.Scope()
	case memoryrecord.FieldConfidence:
		return m.Confidence()
	case memoryrecord.FieldExperimentID:
		return m.ExperimentID()
	case memoryrecord.FieldDataVersionHash:
		return m.DataVersionHash()
	case memoryrecord.FieldArtifactID:
		return m.ArtifactID()
	case memoryrecord.FieldEmbedding:
		return m.Embedding()
	case memoryrecord.FieldApprovalStatus:
		return m.ApprovalStatus()
	case memoryrecord.FieldNeededApprovals:
		return m.NeededApprovals()
	case memoryrecord.FieldExpiresAt:
		return m.ExpiresAt()
	case memoryrecord.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MemoryRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case memoryrecord.FieldAgent:
		return m.OldAgent(ctx)
	case memoryrecord.FieldTeam:
		return m.OldTeam(ctx)
	case memoryrecord.FieldContent:
		return m.OldContent(ctx)
	case memoryrecord.FieldTags:
		return m.OldTags(ctx)
	case memoryrecord.FieldScope:
		return m.OldScope(ctx)
	case memoryrecord.FieldConfidence:
		return m.OldConfidence(ctx)
	case memoryrecord.FieldExperimentID:
		return m.OldExperimentID(ctx)
	case memoryrecord.FieldDataVersionHash:
		return m.OldDataVersionHash(ctx)
	case memoryrecord.FieldArtifactID:
		return m.OldArtifactID(ctx)
	case memoryrecord.FieldEmbedding:
		return m.OldEmbedding(ctx)
	case memoryrecord.FieldApprovalStatus:
		return m.OldApprovalStatus(ctx)
	case memoryrecord.FieldNeededApprovals:
		return m.OldNeededApprovals(ctx)
	case memoryrecord.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	case memoryrecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown MemoryRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MemoryRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case memoryrecord.FieldAgent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgent(v)
		return nil
	case memoryrecord.FieldTeam:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTeam(v)
		return nil
	case memoryrecord.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case memoryrecord.FieldTags:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTags(v)
		return nil
	case memoryrecord.FieldScope:
		v, ok := value.(memoryrecord.Scope)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScope(v)
		return nil
	case memoryrecord.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case memoryrecord.FieldExperimentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExperimentID(v)
		return nil
	case memoryrecord.FieldDataVersionHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDataVersionHash(v)
		return nil
	case memoryrecord.FieldArtifactID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArtifactID(v)
		return nil
	case memoryrecord.FieldEmbedding:
		v, ok := value.([]float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmbedding(v)
		return nil
	case memoryrecord.FieldApprovalStatus:
		v, ok := value.(memoryrecord.ApprovalStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApprovalStatus(v)
		return nil
	case memoryrecord.FieldNeededApprovals:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNeededApprovals(v)
		return nil
	case memoryrecord.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	case memoryrecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown MemoryRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MemoryRecordMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence != nil {
		fields = append(fields, memoryrecord.FieldConfidence)
	}
	if m.addneeded_approvals != nil {
		fields = append(fields, memoryrecord.FieldNeededApprovals)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MemoryRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case memoryrecord.FieldConfidence:
		return m.AddedConfidence()
	case memoryrecord.FieldNeededApprovals:
		return m.AddedNeededApprovals()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MemoryRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case memoryrecord.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	case memoryrecord.FieldNeededApprovals:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNeededApprovals(v)
		return nil
	}
	return fmt.Errorf("unknown MemoryRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MemoryRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(memoryrecord.FieldTeam) {
		fields = append(fields, memoryrecord.FieldTeam)
	}
	if m.FieldCleared(memoryrecord.FieldTags) {
		fields = append(fields, memoryrecord.FieldTags)
	}
	if m.FieldCleared(memoryrecord.FieldExperimentID) {
		fields = append(fields, memoryrecord.FieldExperimentID)
	}
	if m.FieldCleared(memoryrecord.FieldDataVersionHash) {
		fields = append(fields, memoryrecord.FieldDataVersionHash)
	}
	if m.FieldCleared(memoryrecord.FieldArtifactID) {
		fields = append(fields, memoryrecord.FieldArtifactID)
	}
	if m.FieldCleared(memoryrecord.FieldEmbedding) {
		fields = append(fields, memoryrecord.FieldEmbedding)
	}
	if m.FieldCleared(memoryrecord.FieldExpiresAt) {
		fields = append(fields, memoryrecord.FieldExpiresAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MemoryRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MemoryRecordMutation) ClearField(name string) error {
	switch name {
	case memoryrecord.FieldTeam:
		m.ClearTeam()
		return nil
	case memoryrecord.FieldTags:
		m.ClearTags()
		return nil
	case memoryrecord.FieldExperimentID:
		m.ClearExperimentID()
		return nil
	case memoryrecord.FieldDataVersionHash:
		m.ClearDataVersionHash()
		return nil
	case memoryrecord.FieldArtifactID:
		m.ClearArtifactID()
		return nil
	case memoryrecord.FieldEmbedding:
		m.ClearEmbedding()
		return nil
	case memoryrecord.FieldExpiresAt:
		m.ClearExpiresAt()
		return nil
	}
	return fmt.Errorf("unknown MemoryRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MemoryRecordMutation) ResetField(name string) error {
	switch name {
	case memoryrecord.FieldAgent:
		m.ResetAgent()
		return nil
	case memoryrecord.FieldTeam:
		m.ResetTeam()
		return nil
	case memoryrecord.FieldContent:
		m.ResetContent()
		return nil
	case memoryrecord.FieldTags:
		m.ResetTags()
		return nil
	case memoryrecord.FieldScope:
		m.ResetScope()
		return nil
	case memoryrecord.FieldConfidence:
		m.ResetConfidence()
		return nil
	case memoryrecord.FieldExperimentID:
		m.ResetExperimentID()
		return nil
	case memoryrecord.FieldDataVersionHash:
		m.ResetDataVersionHash()
		return nil
	case memoryrecord.FieldArtifactID:
		m.ResetArtifactID()
		return nil
	case memoryrecord.FieldEmbedding:
		m.ResetEmbedding()
		return nil
	case memoryrecord.FieldApprovalStatus:
		m.ResetApprovalStatus()
		return nil
	case memoryrecord.FieldNeededApprovals:
		m.ResetNeededApprovals()
		return nil
	case memoryrecord.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	case memoryrecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown MemoryRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MemoryRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.approvals != nil {
		edges = append(edges, memoryrecord.EdgeApprovals)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MemoryRecordMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case memoryrecord.EdgeApprovals:
		ids := make([]ent.Value, 0, len(m.approvals))
		for id := range m.approvals {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MemoryRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedapprovals != nil {
		edges = append(edges, memoryrecord.EdgeApprovals)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MemoryRecordMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case memoryrecord.EdgeApprovals:
		ids := make([]ent.Value, 0, len(m.removedapprovals))
		for id := range m.removedapprovals {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MemoryRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedapprovals {
		edges = append(edges, memoryrecord.EdgeApprovals)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MemoryRecordMutation) EdgeCleared(name string) bool {
	switch name {
	case memoryrecord.EdgeApprovals:
		return m.clearedapprovals
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MemoryRecordMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown MemoryRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MemoryRecordMutation) ResetEdge(name string) error {
	switch name {
	case memoryrecord.EdgeApprovals:
		m.ResetApprovals()
		return nil
	}
	return fmt.Errorf("unknown MemoryRecord edge %s", name)
}

// ResearchCycleMutation represents an operation that mutates the ResearchCycle nodes in the graph.
type ResearchCycleMutation struct {
	config
	op            Op
	typ           string
	id            *string
	title         *string
	owner         *string
	state         *researchcycle.State
	rejections    *int
	addrejections *int
	history       *[]map[string]interface{}
	appendhistory []map[string]interface{}
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ResearchCycle, error)
	predicates    []predicate.ResearchCycle
}

var _ ent.Mutation = (*ResearchCycleMutation)(nil)

// researchcycleOption allows management of the mutation configuration using functional options.
type researchcycleOption func(*ResearchCycleMutation)

// newResearchCycleMutation creates new mutation for the ResearchCycle entity.
func newResearchCycleMutation(c config, op Op, opts ...researchcycleOption) *ResearchCycleMutation {
	m := &ResearchCycleMutation{
		config:        c,
		op:            op,
		typ:           TypeResearchCycle,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withResearchCycleID sets the ID field of the mutation.
func withResearchCycleID(id string) researchcycleOption {
	return func(m *ResearchCycleMutation) {
		var (
			err   error
			once  sync.Once
			value *ResearchCycle
		)
		m.oldValue = func(ctx context.Context) (*ResearchCycle, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ResearchCycle.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withResearchCycle sets the old ResearchCycle of the mutation.
func withResearchCycle(node *ResearchCycle) researchcycleOption {
	return func(m *ResearchCycleMutation) {
		m.oldValue = func(context.Context) (*ResearchCycle, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ResearchCycleMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ResearchCycleMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ResearchCycle entities.
func (m *ResearchCycleMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ResearchCycleMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ResearchCycleMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ResearchCycle.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTitle sets the "title" field.
func (m *ResearchCycleMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *ResearchCycleMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the ResearchCycle entity.
// If the ResearchCycle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchCycleMutation) OldTitle(ctx context.Context) (v string, err error) {
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
func (m *ResearchCycleMutation) ResetTitle() {
	m.title = nil
}

// SetOwner sets the "owner" field.
func (m *ResearchCycleMutation) SetOwner(s string) {
	m.owner = &s
}

// Owner returns the value of the "owner" field in the mutation.
func (m *ResearchCycleMutation) Owner() (r string, exists bool) {
	v := m.owner
	if v == nil {
		return
	}
	return *v, true
}

// OldOwner returns the old "owner" field's value of the ResearchCycle entity.
// If the ResearchCycle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchCycleMutation) OldOwner(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwner is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwner requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwner: %w", err)
	}
	return oldValue.Owner, nil
}

// ResetOwner resets all changes to the "owner" field.
func (m *ResearchCycleMutation) ResetOwner() {
	m.owner = nil
}

// SetState sets the "state" field.
func (m *ResearchCycleMutation) SetState(r researchcycle.State) {
	m.state = &r
}

// State returns the value of the "state" field in the mutation.
func (m *ResearchCycleMutation) State() (r researchcycle.State, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the ResearchCycle entity.
// If the ResearchCycle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchCycleMutation) OldState(ctx context.Context) (v researchcycle.State, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ResetState resets all changes to the "state" field.
func (m *ResearchCycleMutation) ResetState() {
	m.state = nil
}

// SetRejections sets the "rejections" field.
func (m *ResearchCycleMutation) SetRejections(i int) {
	m.rejections = &i
	m.addrejections = nil
}

// Rejections returns the value of the "rejections" field in the mutation.
func (m *ResearchCycleMutation) Rejections() (r int, exists bool) {
	v := m.rejections
	if v == nil {
		return
	}
	return *v, true
}

// OldRejections returns the old "rejections" field's value of the ResearchCycle entity.
// If the ResearchCycle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchCycleMutation) OldRejections(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRejections is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRejections requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRejections: %w", err)
	}
	return oldValue.Rejections, nil
}

// AddRejections adds i to the "rejections" field.
func (m *ResearchCycleMutation) AddRejections(i int) {
	if m.addrejections != nil {
		*m.addrejections += i
	} else {
		m.addrejections = &i
	}
}

// AddedRejections returns the value that was added to the "rejections" field in this mutation.
func (m *ResearchCycleMutation) AddedRejections() (r int, exists bool) {
	v := m.addrejections
	if v == nil {
		return
	}
	return *v, true
}

// ResetRejections resets all changes to the "rejections" field.
func (m *ResearchCycleMutation) ResetRejections() {
	m.rejections = nil
	m.addrejections = nil
}

// SetHistory sets the "history" field.
func (m *ResearchCycleMutation) SetHistory(value []map[string]interface{}) {
	m.history = &value
	m.appendhistory = nil
}

// History returns the value of the "history" field in the mutation.
func (m *ResearchCycleMutation) History() (r []map[string]interface{}, exists bool) {
	v := m.history
	if v == nil {
		return
	}
	return *v, true
}

// OldHistory returns the old "history" field's value of the ResearchCycle entity.
// If the ResearchCycle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchCycleMutation) OldHistory(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHistory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHistory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHistory: %w", err)
	}
	return oldValue.History, nil
}

// AppendHistory adds value to the "history" field.
func (m *ResearchCycleMutation) AppendHistory(value []map[string]interface{}) {
	m.appendhistory = append(m.appendhistory, value...)
}

// AppendedHistory returns the list of values that were appended to the "history" field in this mutation.
func (m *ResearchCycleMutation) AppendedHistory() ([]map[string]interface{}, bool) {
	if len(m.appendhistory) == 0 {
		return nil, false
	}
	return m.appendhistory, true
}

// ClearHistory clears the value of the "history" field.
func (m *ResearchCycleMutation) ClearHistory() {
	m.history = nil
	m.appendhistory = nil
	m.clearedFields[researchcycle.FieldHistory] = struct{}{}
}

// HistoryCleared returns if the "history" field was cleared in this mutation.
func (m *ResearchCycleMutation) HistoryCleared() bool {
	_, ok := m.clearedFields[researchcycle.FieldHistory]
	return ok
}

// ResetHistory resets all changes to the "history" field.
func (m *ResearchCycleMutation) ResetHistory() {
	m.history = nil
	m.appendhistory = nil
	delete(m.clearedFields, researchcycle.FieldHistory)
}

// SetCreatedAt sets the "created_at" field.
func (m *ResearchCycleMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ResearchCycleMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ResearchCycle entity.
// If the ResearchCycle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchCycleMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *ResearchCycleMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ResearchCycleMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ResearchCycleMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ResearchCycle entity.
// If the ResearchCycle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchCycleMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *ResearchCycleMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the ResearchCycleMutation builder.
func (m *ResearchCycleMutation) Where(ps ...predicate.ResearchCycle) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ResearchCycleMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ResearchCycleMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ResearchCycle, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ResearchCycleMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ResearchCycleMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ResearchCycle).
func (m *ResearchCycleMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ResearchCycleMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.title != nil {
		fields = append(fields, researchcycle.FieldTitle)
	}
	if m.owner != nil {
		fields = append(fields, researchcycle.FieldOwner)
	}
	if m.state != nil {
		fields = append(fields, researchcycle.FieldState)
	}
	if m.rejections != nil {
		fields = append(fields, researchcycle.FieldRejections)
	}
	if m.history != nil {
		fields = append(fields, researchcycle.FieldHistory)
	}
	if m.created_at != nil {
		fields = append(fields, researchcycle.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, researchcycle.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ResearchCycleMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case researchcycle.FieldTitle:
		return m.Title()
	case researchcycle.FieldOwner:
		return m.Owner()
	case researchcycle.FieldState:
		return m.State()
	case researchcycle.FieldRejections:
		return m.Rejections()
	case researchcycle.FieldHistory:
		return m.History()
	case researchcycle.FieldCreatedAt:
		return m.CreatedAt()
	case researchcycle.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ResearchCycleMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case researchcycle.FieldTitle:
		return m.OldTitle(ctx)
	case researchcycle.FieldOwner:
		return m.OldOwner(ctx)
	case researchcycle.FieldState:
		return m.OldState(ctx)
	case researchcycle.FieldRejections:
		return m.OldRejections(ctx)
	case researchcycle.FieldHistory:
		return m.OldHistory(ctx)
	case researchcycle.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case researchcycle.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ResearchCycle field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ResearchCycleMutation) SetField(name string, value ent.Value) error {
	switch name {
	case researchcycle.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case researchcycle.FieldOwner:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwner(v)
		return nil
	case researchcycle.FieldState:
		v, ok := value.(researchcycle.State)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case researchcycle.FieldRejections:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRejections(v)
		return nil
	case researchcycle.FieldHistory:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHistory(v)
		return nil
	case researchcycle.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case researchcycle.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ResearchCycle field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ResearchCycleMutation) AddedFields() []string {
	var fields []string
	if m.addrejections != nil {
		fields = append(fields, researchcycle.FieldRejections)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ResearchCycleMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case researchcycle.FieldRejections:
		return m.AddedRejections()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ResearchCycleMutation) AddField(name string, value ent.Value) error {
	switch name {
	case researchcycle.FieldRejections:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRejections(v)
		return nil
	}
	return fmt.Errorf("unknown ResearchCycle numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ResearchCycleMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(researchcycle.FieldHistory) {
		fields = append(fields, researchcycle.FieldHistory)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ResearchCycleMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ResearchCycleMutation) ClearField(name string) error {
	switch name {
	case researchcycle.FieldHistory:
		m.ClearHistory()
		return nil
	}
	return fmt.Errorf("unknown ResearchCycle nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ResearchCycleMutation) ResetField(name string) error {
	switch name {
	case researchcycle.FieldTitle:
		m.ResetTitle()
		return nil
	case researchcycle.FieldOwner:
		m.ResetOwner()
		return nil
	case researchcycle.FieldState:
		m.ResetState()
		return nil
	case researchcycle.FieldRejections:
		m.ResetRejections()
		return nil
	case researchcycle.FieldHistory:
		m.ResetHistory()
		return nil
	case researchcycle.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case researchcycle.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ResearchCycle field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ResearchCycleMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ResearchCycleMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ResearchCycleMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ResearchCycleMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ResearchCycleMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ResearchCycleMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ResearchCycleMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ResearchCycle unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ResearchCycleMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ResearchCycle edge %s", name)
}

// RiskRuleMutation represents an operation that mutates the RiskRule nodes in the graph.
type RiskRuleMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	kind                  *string
	title                 *string
	description           *string
	parameters            *map[string]float64
	status                *riskrule.Status
	proposer              *string
	required_voters       *[]string
	appendrequired_voters []string
	votes                 *[]map[string]interface{}
	appendvotes           []map[string]interface{}
	effective_from        *time.Time
	suspended_by          *string
	suspend_reason        *string
	created_at            *time.Time
	clearedFields         map[string]struct{}
	decisions             map[string]struct{}
	removeddecisions      map[string]struct{}
	cleareddecisions      bool
	done                  bool
	oldValue              func(context.Context) (*RiskRule, error)
	predicates            []predicate.RiskRule
}

var _ ent.Mutation = (*RiskRuleMutation)(nil)

// riskruleOption allows management of the mutation configuration using functional options.
type riskruleOption func(*RiskRuleMutation)

// newRiskRuleMutation creates new mutation for the RiskRule entity.
func newRiskRuleMutation(c config, op Op, opts ...riskruleOption) *RiskRuleMutation {
	m := &RiskRuleMutation{
		config:        c,
		op:            op,
		typ:           TypeRiskRule,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRiskRuleID sets the ID field of the mutation.
func withRiskRuleID(id string) riskruleOption {
	return func(m *RiskRuleMutation) {
		var (
			err   error
			once  sync.Once
			value *RiskRule
		)
		m.oldValue = func(ctx context.Context) (*RiskRule, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RiskRule.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRiskRule sets the old RiskRule of the mutation.
func withRiskRule(node *RiskRule) riskruleOption {
	return func(m *RiskRuleMutation) {
		m.oldValue = func(context.Context) (*RiskRule, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RiskRuleMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RiskRuleMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of RiskRule entities.
func (m *RiskRuleMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RiskRuleMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RiskRuleMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RiskRule.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetKind sets the "kind" field.
func (m *RiskRuleMutation) SetKind(s string) {
	m.kind = &s
}

// Kind returns the value of the "kind" field in the mutation.
func (m *RiskRuleMutation) Kind() (r string, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the RiskRule entity.
// If the RiskRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RiskRuleMutation) OldKind(ctx context.Context) (v string, err error) {
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
func (m *RiskRuleMutation) ResetKind() {
	m.kind = nil
}

// SetTitle sets the "title" field.
func (m *RiskRuleMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *RiskRuleMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the RiskRule entity.
// If the RiskRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RiskRuleMutation) OldTitle(ctx context.Context) (v string, err error) {
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
func (m *RiskRuleMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *RiskRuleMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *RiskRuleMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the RiskRule entity.
// If the RiskRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RiskRuleMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *RiskRuleMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[riskrule.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *RiskRuleMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[riskrule.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *RiskRuleMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, riskrule.FieldDescription)
}

// SetParameters sets the "parameters" field.
func (m *RiskRuleMutation) SetParameters(value map[string]float64) {
	m.parameters = &value
}

// Parameters returns the value of the "parameters" field in the mutation.
func (m *RiskRuleMutation) Parameters() (r map[string]float64, exists bool) {
	v := m.parameters
	if v == nil {
		return
	}
	return *v, true
}

// OldParameters returns the old "parameters" field's value of the RiskRule entity.
// If the RiskRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RiskRuleMutation) OldParameters(ctx context.Context) (v map[string]float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParameters is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParameters requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParameters: %w", err)
	}
	return oldValue.Parameters, nil
}

// ClearParameters clears the value of the "parameters" field.
func (m *RiskRuleMutation) ClearParameters() {
	m.parameters = nil
	m.clearedFields[riskrule.FieldParameters] = struct{}{}
}

// ParametersCleared returns if the "parameters" field was cleared in this mutation.
func (m *RiskRuleMutation) ParametersCleared() bool {
	_, ok := m.clearedFields[riskrule.FieldParameters]
	return ok
}

// ResetParameters resets all changes to the "parameters" field.
func (m *RiskRuleMutation) ResetParameters() {
	m.parameters = nil
	delete(m.clearedFields, riskrule.FieldParameters)
}

// SetStatus sets the "status" field.
func (m *RiskRuleMutation) SetStatus(r riskrule.Status) {
	m.status = &r
}

// Status returns the value of the "status" field in the mutation.
func (m *RiskRuleMutation) Status() (r riskrule.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the RiskRule entity.
// If the RiskRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RiskRuleMutation) OldStatus(ctx context.Context) (v riskrule.Status, err error) {
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
func (m *RiskRuleMutation) ResetStatus() {
	m.status = nil
}

// SetProposer sets the "proposer" field.
func (m *RiskRuleMutation) SetProposer(s string) {
	m.proposer = &s
}

// Proposer returns the value of the "proposer" field in the mutation.
func (m *RiskRuleMutation) Proposer() (r string, exists bool) {
	v := m.proposer
	if v == nil {
		return
	}
	return *v, true
}

// OldProposer returns the old "proposer" field's value of the RiskRule entity.
// If the RiskRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RiskRuleMutation) OldProposer(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProposer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProposer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProposer: %w", err)
	}
	return oldValue.Proposer, nil
}

// ResetProposer resets all changes to the "proposer" field.
func (m *RiskRuleMutation) ResetProposer() {
	m.proposer = nil
}

// SetRequiredVoters sets the "required_voters" field.
func (m *RiskRuleMutation) SetRequiredVoters(s []string) {
	m.required_voters = &s
	m.appendrequired_voters = nil
}

// RequiredVoters returns the value of the "required_voters" field in the mutation.
func (m *RiskRuleMutation) RequiredVoters() (r []string, exists bool) {
	v := m.required_voters
	if v == nil {
		return
	}
	return *v, true
}

// OldRequiredVoters returns the old "required_voters" field's value of the RiskRule entity.
// If the RiskRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RiskRuleMutation) OldRequiredVoters(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequiredVoters is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequiredVoters requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequiredVoters: %w", err)
	}
	return oldValue.RequiredVoters, nil
}

// AppendRequiredVoters adds s to the "required_voters" field.
func (m *RiskRuleMutation) AppendRequiredVoters(s []string) {
	m.appendrequired_voters = append(m.appendrequired_voters, s...)
}

// AppendedRequiredVoters returns the list of values that were appended to the "required_voters" field in this mutation.
func (m *RiskRuleMutation) AppendedRequiredVoters() ([]string, bool) {
	if len(m.appendrequired_voters) == 0 {
		return nil, false
	}
	return m.appendrequired_voters, true
}

// ResetRequiredVoters resets all changes to the "required_voters" field.
func (m *RiskRuleMutation) ResetRequiredVoters() {
	m.required_voters = nil
	m.appendrequired_voters = nil
}

// SetVotes sets the "votes" field.
func (m *RiskRuleMutation) SetVotes(value []map[string]interface{}) {
	m.votes = &value
	m.appendvotes = nil
}

// Votes returns the value of the "votes" field in the mutation.
func (m *RiskRuleMutation) Votes() (r []map[string]interface{}, exists bool) {
	v := m.votes
	if v == nil {
		return
	}
	return *v, true
}

// OldVotes returns the old "votes" field's value of the RiskRule entity.
// If the RiskRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RiskRuleMutation) OldVotes(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVotes: %w", err)
	}
	return oldValue.Votes, nil
}

// AppendVotes adds value to the "votes" field.
func (m *RiskRuleMutation) AppendVotes(value []map[string]interface{}) {
	m.appendvotes = append(m.appendvotes, value...)
}

// AppendedVotes returns the list of values that were appended to the "votes" field in this mutation.
func (m *RiskRuleMutation) AppendedVotes() ([]map[string]interface{}, bool) {
	if len(m.appendvotes) == 0 {
		return nil, false
	}
	return m.appendvotes, true
}

// ClearVotes clears the value of the "votes" field.
func (m *RiskRuleMutation) ClearVotes() {
	m.votes = nil
	m.appendvotes = nil
	m.clearedFields[riskrule.FieldVotes] = struct{}{}
}

// VotesCleared returns if the "votes" field was cleared in this mutation.
func (m *RiskRuleMutation) VotesCleared() bool {
	_, ok := m.clearedFields[riskrule.FieldVotes]
	return ok
}

// ResetVotes resets all changes to the "votes" field.
func (m *RiskRuleMutation) ResetVotes() {
	m.votes = nil
	m.appendvotes = nil
	delete(m.clearedFields, riskrule.FieldVotes)
}

// SetEffectiveFrom sets the "effective_from" field.
func (m *RiskRuleMutation) SetEffectiveFrom(t time.Time) {
	m.effective_from = &t
}

// EffectiveFrom returns the value of the "effective_from" field in the mutation.
func (m *RiskRuleMutation) EffectiveFrom() (r time.Time, exists bool) {
	v := m.effective_from
	if v == nil {
		return
	}
	return *v, true
}

// OldEffectiveFrom returns the old "effective_from" field's value of the RiskRule entity.
// If the RiskRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RiskRuleMutation) OldEffectiveFrom(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEffectiveFrom is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEffectiveFrom requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEffectiveFrom: %w", err)
	}
	return oldValue.EffectiveFrom, nil
}

// ClearEffectiveFrom clears the value of the "effective_from" field.
func (m *RiskRuleMutation) ClearEffectiveFrom() {
	m.effective_from = nil
	m.clearedFields[riskrule.FieldEffectiveFrom] = struct{}{}
}

// EffectiveFromCleared returns if the "effective_from" field was cleared in this mutation.
func (m *RiskRuleMutation) EffectiveFromCleared() bool {
	_, ok := m.clearedFields[riskrule.FieldEffectiveFrom]
	return ok
}

// ResetEffectiveFrom resets all changes to the "effective_from" field.
func (m *RiskRuleMutation) ResetEffectiveFrom() {
	m.effective_from = nil
	delete(m.clearedFields, riskrule.FieldEffectiveFrom)
}

// SetSuspendedBy sets the "suspended_by" field.
func (m *RiskRuleMutation) SetSuspendedBy(s string) {
	m.suspended_by = &s
}

// SuspendedBy returns the value of the "suspended_by" field in the mutation.
func (m *RiskRuleMutation) SuspendedBy() (r string, exists bool) {
	v := m.suspended_by
	if v == nil {
		return
	}
	return *v, true
}

// OldSuspendedBy returns the old "suspended_by" field's value of the RiskRule entity.
// If the RiskRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RiskRuleMutation) OldSuspendedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuspendedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuspendedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuspendedBy: %w", err)
	}
	return oldValue.SuspendedBy, nil
}

// ClearSuspendedBy clears the value of the "suspended_by" field.
func (m *RiskRuleMutation) ClearSuspendedBy() {
	m.suspended_by = nil
	m.clearedFields[riskrule.FieldSuspendedBy] = struct{}{}
}

// SuspendedByCleared returns if the "suspended_by" field was cleared in this mutation.
func (m *RiskRuleMutation) SuspendedByCleared() bool {
	_, ok := m.clearedFields[riskrule.FieldSuspendedBy]
	return ok
}

// ResetSuspendedBy resets all changes to the "suspended_by" field.
func (m *RiskRuleMutation) ResetSuspendedBy() {
	m.suspended_by = nil
	delete(m.clearedFields, riskrule.FieldSuspendedBy)
}

// SetSuspendReason sets the "suspend_reason" field.
func (m *RiskRuleMutation) SetSuspendReason(s string) {
	m.suspend_reason = &s
}

// SuspendReason returns the value of the "suspend_reason" field in the mutation.
func (m *RiskRuleMutation) SuspendReason() (r string, exists bool) {
	v := m.suspend_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldSuspendReason returns the old "suspend_reason" field's value of the RiskRule entity.
// If the RiskRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RiskRuleMutation) OldSuspendReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuspendReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuspendReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuspendReason: %w", err)
	}
	return oldValue.SuspendReason, nil
}

// ClearSuspendReason clears the value of the "suspend_reason" field.
func (m *RiskRuleMutation) ClearSuspendReason() {
	m.suspend_reason = nil
	m.clearedFields[riskrule.FieldSuspendReason] = struct{}{}
}

// SuspendReasonCleared returns if the "suspend_reason" field was cleared in this mutation.
func (m *RiskRuleMutation) SuspendReasonCleared() bool {
	_, ok := m.clearedFields[riskrule.FieldSuspendReason]
	return ok
}

// ResetSuspendReason resets all changes to the "suspend_reason" field.
func (m *RiskRuleMutation) ResetSuspendReason() {
	m.suspend_reason = nil
	delete(m.clearedFields, riskrule.FieldSuspendReason)
}

// SetCreatedAt sets the "created_at" field.
func (m *RiskRuleMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RiskRuleMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the RiskRule entity.
// If the RiskRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RiskRuleMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *RiskRuleMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddDecisionIDs adds the "decisions" edge to the GovernanceDecision entity by ids.
func (m *RiskRuleMutation) AddDecisionIDs(ids ...string) {
	if m.decisions == nil {
		m.decisions = make(map[string]struct{})
	}
	for i := range ids {
		m.decisions[ids[i]] = struct{}{}
	}
}

// ClearDecisions clears the "decisions" edge to the GovernanceDecision entity.
func (m *RiskRuleMutation) ClearDecisions() {
	m.cleareddecisions = true
}

// DecisionsCleared reports if the "decisions" edge to the GovernanceDecision entity was cleared.
func (m *RiskRuleMutation) DecisionsCleared() bool {
	return m.cleareddecisions
}

// RemoveDecisionIDs removes the "decisions" edge to the GovernanceDecision entity by IDs.
func (m *RiskRuleMutation) RemoveDecisionIDs(ids ...string) {
	if m.removeddecisions == nil {
		m.removeddecisions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.decisions, ids[i])
		m.removeddecisions[ids[i]] = struct{}{}
	}
}

// RemovedDecisions returns the removed IDs of the "decisions" edge to the GovernanceDecision entity.
func (m *RiskRuleMutation) RemovedDecisionsIDs() (ids []string) {
	for id := range m.removeddecisions {
		ids = append(ids, id)
	}
	return
}

// DecisionsIDs returns the "decisions" edge IDs in the mutation.
func (m *RiskRuleMutation) DecisionsIDs() (ids []string) {
	for id := range m.decisions {
		ids = append(ids, id)
	}
	return
}

// ResetDecisions resets all changes to the "decisions" edge.
func (m *RiskRuleMutation) ResetDecisions() {
	m.decisions = nil
	m.cleareddecisions = false
	m.removeddecisions = nil
}

// Where appends a list predicates to the RiskRuleMutation builder.
func (m *RiskRuleMutation) Where(ps ...predicate.RiskRule) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RiskRuleMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RiskRuleMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RiskRule, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RiskRuleMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RiskRuleMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RiskRule).
func (m *RiskRuleMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RiskRuleMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.kind != nil {
		fields = append(fields, riskrule.FieldKind)
	}
	if m.title != nil {
		fields = append(fields, riskrule.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, riskrule.FieldDescription)
	}
	if m.parameters != nil {
		fields = append(fields, riskrule.FieldParameters)
	}
	if m.status != nil {
		fields = append(fields, riskrule.FieldStatus)
	}
	if m.proposer != nil {
		fields = append(fields, riskrule.FieldProposer)
	}
	if m.required_voters != nil {
		fields = append(fields, riskrule.FieldRequiredVoters)
	}
	if m.votes != nil {
		fields = append(fields, riskrule.FieldVotes)
	}
	if m.effective_from != nil {
		fields = append(fields, riskrule.FieldEffectiveFrom)
	}
	if m.suspended_by != nil {
		fields = append(fields, riskrule.FieldSuspendedBy)
	}
	if m.suspend_reason != nil {
		fields = append(fields, riskrule.FieldSuspendReason)
	}
	if m.created_at != nil {
		fields = append(fields, riskrule.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RiskRuleMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case riskrule.FieldKind:
		return m.Kind()
	case riskrule.FieldTitle:
		return m.Title()
	case riskrule.FieldDescription:
		return m.Description()
	case riskrule.FieldParameters:
		return m.Parameters()
	case riskrule.FieldStatus:
		return m.Status()
	case riskrule.FieldProposer:
		return m.Proposer()
	case riskrule.FieldRequiredVoters:
		return m.RequiredVoters()
	case riskrule.FieldVotes:
		return m.Votes()
	case riskrule.FieldEffectiveFrom:
		return m.EffectiveFrom()
	case riskrule.FieldSuspendedBy:
		return m.SuspendedBy()
	case riskrule.FieldSuspendReason:
		return m.SuspendReason()
	case riskrule.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RiskRuleMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case riskrule.FieldKind:
		return m.OldKind(ctx)
	case riskrule.FieldTitle:
		return m.OldTitle(ctx)
	case riskrule.FieldDescription:
		return m.OldDescription(ctx)
	case riskrule.FieldParameters:
		return m.OldParameters(ctx)
	case riskrule.FieldStatus:
		return m.OldStatus(ctx)
	case riskrule.FieldProposer:
		return m.OldProposer(ctx)
	case riskrule.FieldRequiredVoters:
		return m.OldRequiredVoters(ctx)
	case riskrule.FieldVotes:
		return m.OldVotes(ctx)
	case riskrule.FieldEffectiveFrom:
		return m.OldEffectiveFrom(ctx)
	case riskrule.FieldSuspendedBy:
		return m.OldSuspendedBy(ctx)
	case riskrule.FieldSuspendReason:
		return m.OldSuspendReason(ctx)
	case riskrule.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown RiskRule field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RiskRuleMutation) SetField(name string, value ent.Value) error {
	switch name {
	case riskrule.FieldKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case riskrule.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case riskrule.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case riskrule.FieldParameters:
		v, ok := value.(map[string]float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParameters(v)
		return nil
	case riskrule.FieldStatus:
		v, ok := value.(riskrule.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case riskrule.FieldProposer:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProposer(v)
		return nil
	case riskrule.FieldRequiredVoters:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequiredVoters(v)
		return nil
	case riskrule.FieldVotes:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVotes(v)
		return nil
	case riskrule.FieldEffectiveFrom:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEffectiveFrom(v)
		return nil
	case riskrule.FieldSuspendedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuspendedBy(v)
		return nil
	case riskrule.FieldSuspendReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuspendReason(v)
		return nil
	case riskrule.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown RiskRule field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RiskRuleMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RiskRuleMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RiskRuleMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown RiskRule numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RiskRuleMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(riskrule.FieldDescription) {
		fields = append(fields, riskrule.FieldDescription)
	}
	if m.FieldCleared(riskrule.FieldParameters) {
		fields = append(fields, riskrule.FieldParameters)
	}
	if m.FieldCleared(riskrule.FieldVotes) {
		fields = append(fields, riskrule.FieldVotes)
	}
	if m.FieldCleared(riskrule.FieldEffectiveFrom) {
		fields = append(fields, riskrule.FieldEffectiveFrom)
	}
	if m.FieldCleared(riskrule.FieldSuspendedBy) {
		fields = append(fields, riskrule.FieldSuspendedBy)
	}
	if m.FieldCleared(riskrule.FieldSuspendReason) {
		fields = append(fields, riskrule.FieldSuspendReason)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RiskRuleMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RiskRuleMutation) ClearField(name string) error {
	switch name {
	case riskrule.FieldDescription:
		m.ClearDescription()
		return nil
	case riskrule.FieldParameters:
		m.ClearParameters()
		return nil
	case riskrule.FieldVotes:
		m.ClearVotes()
		return nil
	case riskrule.FieldEffectiveFrom:
		m.ClearEffectiveFrom()
		return nil
	case riskrule.FieldSuspendedBy:
		m.ClearSuspendedBy()
		return nil
	case riskrule.FieldSuspendReason:
		m.ClearSuspendReason()
		return nil
	}
	return fmt.Errorf("unknown RiskRule nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RiskRuleMutation) ResetField(name string) error {
	switch name {
	case riskrule.FieldKind:
		m.ResetKind()
		return nil
	case riskrule.FieldTitle:
		m.ResetTitle()
		return nil
	case riskrule.FieldDescription:
		m.ResetDescription()
		return nil
	case riskrule.FieldParameters:
		m.ResetParameters()
		return nil
	case riskrule.FieldStatus:
		m.ResetStatus()
		return nil
	case riskrule.FieldProposer:
		m.ResetProposer()
		return nil
	case riskrule.FieldRequiredVoters:
		m.ResetRequiredVoters()
		return nil
	case riskrule.FieldVotes:
		m.ResetVotes()
		return nil
	case riskrule.FieldEffectiveFrom:
		m.ResetEffectiveFrom()
		return nil
	case riskrule.FieldSuspendedBy:
		m.ResetSuspendedBy()
		return nil
	case riskrule.FieldSuspendReason:
		m.ResetSuspendReason()
		return nil
	case riskrule.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown RiskRule field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RiskRuleMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.decisions != nil {
		edges = append(edges, riskrule.EdgeDecisions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RiskRuleMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case riskrule.EdgeDecisions:
		ids := make([]ent.Value, 0, len(m.decisions))
		for id := range m.decisions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RiskRuleMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removeddecisions != nil {
		edges = append(edges, riskrule.EdgeDecisions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RiskRuleMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case riskrule.EdgeDecisions:
		ids := make([]ent.Value, 0, len(m.removeddecisions))
		for id := range m.removeddecisions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RiskRuleMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddecisions {
		edges = append(edges, riskrule.EdgeDecisions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RiskRuleMutation) EdgeCleared(name string) bool {
	switch name {
	case riskrule.EdgeDecisions:
		return m.cleareddecisions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RiskRuleMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown RiskRule unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RiskRuleMutation) ResetEdge(name string) error {
	switch name {
	case riskrule.EdgeDecisions:
		m.ResetDecisions()
		return nil
	}
	return fmt.Errorf("unknown RiskRule edge %s", name)
}

// ToolCallMutation represents an operation that mutates the ToolCall nodes in the graph.
type ToolCallMutation struct {
	config
	op                Op
	typ               string
	id                *string
	agent             *string
	tool              *string
	args              *map[string]interface{}
	estimated_cost    *int
	addestimated_cost *int
	actual_cost       *int
	addactual_cost    *int
	status            *toolcall.Status
	error_message     *string
	data_version_hash *string
	experiment_id     *string
	meeting_id        *string
	cycle_id          *string
	created_at        *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*ToolCall, error)
	predicates        []predicate.ToolCall
}

var _ ent.Mutation = (*ToolCallMutation)(nil)

// toolcallOption allows management of the mutation configuration using functional options.
type toolcallOption func(*ToolCallMutation)

// newToolCallMutation creates new mutation for the ToolCall entity.
func newToolCallMutation(c config, op Op, opts ...toolcallOption) *ToolCallMutation {
	m := &ToolCallMutation{
		config:        c,
		op:            op,
		typ:           TypeToolCall,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withToolCallID sets the ID field of the mutation.
func withToolCallID(id string) toolcallOption {
	return func(m *ToolCallMutation) {
		var (
			err   error
			once  sync.Once
			value *ToolCall
		)
		m.oldValue = func(ctx context.Context) (*ToolCall, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ToolCall.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withToolCall sets the old ToolCall of the mutation.
func withToolCall(node *ToolCall) toolcallOption {
	return func(m *ToolCallMutation) {
		m.oldValue = func(context.Context) (*ToolCall, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ToolCallMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ToolCallMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ToolCall entities.
func (m *ToolCallMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ToolCallMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ToolCallMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ToolCall.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAgent sets the "agent" field.
func (m *ToolCallMutation) SetAgent(s string) {
	m.agent = &s
}

// Agent returns the value of the "agent" field in the mutation.
func (m *ToolCallMutation) Agent() (r string, exists bool) {
	v := m.agent
	if v == nil {
		return
	}
	return *v, true
}

// OldAgent returns the old "agent" field's value of the ToolCall entity.
// If the ToolCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolCallMutation) OldAgent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgent: %w", err)
	}
	return oldValue.Agent, nil
}

// ResetAgent resets all changes to the "agent" field.
func (m *ToolCallMutation) ResetAgent() {
	m.agent = nil
}

// SetTool sets the "tool" field.
func (m *ToolCallMutation) SetTool(s string) {
	m.tool = &s
}

// Tool returns the value of the "tool" field in the mutation.
func (m *ToolCallMutation) Tool() (r string, exists bool) {
	v := m.tool
	if v == nil {
		return
	}
	return *v, true
}

// OldTool returns the old "tool" field's value of the ToolCall entity.
// If the ToolCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolCallMutation) OldTool(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTool is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTool requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTool: %w", err)
	}
	return oldValue.Tool, nil
}

// ResetTool resets all changes to the "tool" field.
func (m *ToolCallMutation) ResetTool() {
	m.tool = nil
}

// SetArgs sets the "args" field.
func (m *ToolCallMutation) SetArgs(value map[string]interface{}) {
	m.args = &value
}

// Args returns the value of the "args" field in the mutation.
func (m *ToolCallMutation) Args() (r map[string]interface{}, exists bool) {
	v := m.args
	if v == nil {
		return
	}
	return *v, true
}

// OldArgs returns the old "args" field's value of the ToolCall entity.
// If the ToolCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolCallMutation) OldArgs(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArgs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArgs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArgs: %w", err)
	}
	return oldValue.Args, nil
}

// ClearArgs clears the value of the "args" field.
func (m *ToolCallMutation) ClearArgs() {
	m.args = nil
	m.clearedFields[toolcall.FieldArgs] = struct{}{}
}

// ArgsCleared returns if the "args" field was cleared in this mutation.
func (m *ToolCallMutation) ArgsCleared() bool {
	_, ok := m.clearedFields[toolcall.FieldArgs]
	return ok
}

// ResetArgs resets all changes to the "args" field.
func (m *ToolCallMutation) ResetArgs() {
	m.args = nil
	delete(m.clearedFields, toolcall.FieldArgs)
}

// SetEstimatedCost sets the "estimated_cost" field.
func (m *ToolCallMutation) SetEstimatedCost(i int) {
	m.estimated_cost = &i
	m.addestimated_cost = nil
}

// EstimatedCost returns the value of the "estimated_cost" field in the mutation.
func (m *ToolCallMutation) EstimatedCost() (r int, exists bool) {
	v := m.estimated_cost
	if v == nil {
		return
	}
	return *v, true
}

// OldEstimatedCost returns the old "estimated_cost" field's value of the ToolCall entity.
// If the ToolCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolCallMutation) OldEstimatedCost(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEstimatedCost is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEstimatedCost requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEstimatedCost: %w", err)
	}
	return oldValue.EstimatedCost, nil
}

// AddEstimatedCost adds i to the "estimated_cost" field.
func (m *ToolCallMutation) AddEstimatedCost(i int) {
	if m.addestimated_cost != nil {
		*m.addestimated_cost += i
	} else {
		m.addestimated_cost = &i
	}
}

// AddedEstimatedCost returns the value that was added to the "estimated_cost" field in this mutation.
func (m *ToolCallMutation) AddedEstimatedCost() (r int, exists bool) {
	v := m.addestimated_cost
	if v == nil {
		return
	}
	return *v, true
}

// ResetEstimatedCost resets all changes to the "estimated_cost" field.
func (m *ToolCallMutation) ResetEstimatedCost() {
	m.estimated_cost = nil
	m.addestimated_cost = nil
}

// SetActualCost sets the "actual_cost" field.
func (m *ToolCallMutation) SetActualCost(i int) {
	m.actual_cost = &i
	m.addactual_cost = nil
}

// ActualCost returns the value of the "actual_cost" field in the mutation.
func (m *ToolCallMutation) ActualCost() (r int, exists bool) {
	v := m.actual_cost
	if v == nil {
		return
	}
	return *v, true
}

// OldActualCost returns the old "actual_cost" field's value of the ToolCall entity.
// If the ToolCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolCallMutation) OldActualCost(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActualCost is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActualCost requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActualCost: %w", err)
	}
	return oldValue.ActualCost, nil
}

// AddActualCost adds i to the "actual_cost" field.
func (m *ToolCallMutation) AddActualCost(i int) {
	if m.addactual_cost != nil {
		*m.addactual_cost += i
	} else {
		m.addactual_cost = &i
	}
}

// AddedActualCost returns the value that was added to the "actual_cost" field in this mutation.
func (m *ToolCallMutation) AddedActualCost() (r int, exists bool) {
	v := m.addactual_cost
	if v == nil {
		return
	}
	return *v, true
}

// ResetActualCost resets all changes to the "actual_cost" field.
func (m *ToolCallMutation) ResetActualCost() {
	m.actual_cost = nil
	m.addactual_cost = nil
}

// SetStatus sets the "status" field.
func (m *ToolCallMutation) SetStatus(t toolcall.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *ToolCallMutation) Status() (r toolcall.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ToolCall entity.
// If the ToolCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolCallMutation) OldStatus(ctx context.Context) (v toolcall.Status, err error) {
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
func (m *ToolCallMutation) ResetStatus() {
	m.status = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *ToolCallMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ToolCallMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the ToolCall entity.
// If the ToolCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolCallMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ToolCallMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[toolcall.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ToolCallMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[toolcall.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ToolCallMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, toolcall.FieldErrorMessage)
}

// SetDataVersionHash sets the "data_version_hash" field.
func (m *ToolCallMutation) SetDataVersionHash(s string) {
	m.data_version_hash = &s
}

// DataVersionHash returns the value of the "data_version_hash" field in the mutation.
func (m *ToolCallMutation) DataVersionHash() (r string, exists bool) {
	v := m.data_version_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldDataVersionHash returns the old "data_version_hash" field's value of the ToolCall entity.
// If the ToolCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolCallMutation) OldDataVersionHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDataVersionHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDataVersionHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDataVersionHash: %w", err)
	}
	return oldValue.DataVersionHash, nil
}

// ClearDataVersionHash clears the value of the "data_version_hash" field.
func (m *ToolCallMutation) ClearDataVersionHash() {
	m.data_version_hash = nil
	m.clearedFields[toolcall.FieldDataVersionHash] = struct{}{}
}

// DataVersionHashCleared returns if the "data_version_hash" field was cleared in this mutation.
func (m *ToolCallMutation) DataVersionHashCleared() bool {
	_, ok := m.clearedFields[toolcall.FieldDataVersionHash]
	return ok
}

// ResetDataVersionHash resets all changes to the "data_version_hash" field.
func (m *ToolCallMutation) ResetDataVersionHash() {
	m.data_version_hash = nil
	delete(m.clearedFields, toolcall.FieldDataVersionHash)
}

// SetExperimentID sets the "experiment_id" field.
func (m *ToolCallMutation) SetExperimentID(s string) {
	m.experiment_id = &s
}

// ExperimentID returns the value of the "experiment_id" field in the mutation.
func (m *ToolCallMutation) ExperimentID() (r string, exists bool) {
	v := m.experiment_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExperimentID returns the old "experiment_id" field's value of the ToolCall entity.
// If the ToolCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolCallMutation) OldExperimentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExperimentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExperimentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExperimentID: %w", err)
	}
	return oldValue.ExperimentID, nil
}

// ClearExperimentID clears the value of the "experiment_id" field.
func (m *ToolCallMutation) ClearExperimentID() {
	m.experiment_id = nil
	m.clearedFields[toolcall.FieldExperimentID] = struct{}{}
}

// ExperimentIDCleared returns if the "experiment_id" field was cleared in this mutation.
func (m *ToolCallMutation) ExperimentIDCleared() bool {
	_, ok := m.clearedFields[toolcall.FieldExperimentID]
	return ok
}

// ResetExperimentID resets all changes to the "experiment_id" field.
func (m *ToolCallMutation) ResetExperimentID() {
	m.experiment_id = nil
	delete(m.clearedFields, toolcall.FieldExperimentID)
}

// SetMeetingID sets the "meeting_id" field.
func (m *ToolCallMutation) SetMeetingID(s string) {
	m.meeting_id = &s
}

// MeetingID returns the value of the "meeting_id" field in the mutation.
func (m *ToolCallMutation) MeetingID() (r string, exists bool) {
	v := m.meeting_id
	if v == nil {
		return
	}
	return *v, true
}

// OldMeetingID returns the old "meeting_id" field's value of the ToolCall entity.
// If the ToolCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolCallMutation) OldMeetingID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMeetingID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMeetingID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMeetingID: %w", err)
	}
	return oldValue.MeetingID, nil
}

// ClearMeetingID clears the value of the "meeting_id" field.
func (m *ToolCallMutation) ClearMeetingID() {
	m.meeting_id = nil
	m.clearedFields[toolcall.FieldMeetingID] = struct{}{}
}

// MeetingIDCleared returns if the "meeting_id" field was cleared in this mutation.
func (m *ToolCallMutation) MeetingIDCleared() bool {
	_, ok := m.clearedFields[toolcall.FieldMeetingID]
	return ok
}

// ResetMeetingID resets all changes to the "meeting_id" field.
func (m *ToolCallMutation) ResetMeetingID() {
	m.meeting_id = nil
	delete(m.clearedFields, toolcall.FieldMeetingID)
}

// SetCycleID sets the "cycle_id" field.
func (m *ToolCallMutation) SetCycleID(s string) {
	m.cycle_id = &s
}

// CycleID returns the value of the "cycle_id" field in the mutation.
func (m *ToolCallMutation) CycleID() (r string, exists bool) {
	v := m.cycle_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCycleID returns the old "cycle_id" field's value of the ToolCall entity.
// If the ToolCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolCallMutation) OldCycleID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCycleID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCycleID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCycleID: %w", err)
	}
	return oldValue.CycleID, nil
}

// ClearCycleID clears the value of the "cycle_id" field.
func (m *ToolCallMutation) ClearCycleID() {
	m.cycle_id = nil
	m.clearedFields[toolcall.FieldCycleID] = struct{}{}
}

// CycleIDCleared returns if the "cycle_id" field was cleared in this mutation.
func (m *ToolCallMutation) CycleIDCleared() bool {
	_, ok := m.clearedFields[toolcall.FieldCycleID]
	return ok
}

// ResetCycleID resets all changes to the "cycle_id" field.
func (m *ToolCallMutation) ResetCycleID() {
	m.cycle_id = nil
	delete(m.clearedFields, toolcall.FieldCycleID)
}

// SetCreatedAt sets the "created_at" field.
func (m *ToolCallMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ToolCallMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ToolCall entity.
// If the ToolCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolCallMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *ToolCallMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ToolCallMutation builder.
func (m *ToolCallMutation) Where(ps ...predicate.ToolCall) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ToolCallMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ToolCallMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ToolCall, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ToolCallMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ToolCallMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ToolCall).
func (m *ToolCallMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ToolCallMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.agent != nil {
		fields = append(fields, toolcall.FieldAgent)
	}
	if m.tool != nil {
		fields = append(fields, toolcall.FieldTool)
	}
	if m.args != nil {
		fields = append(fields, toolcall.FieldArgs)
	}
	if m.estimated_cost != nil {
		fields = append(fields, toolcall.FieldEstimatedCost)
	}
	if m.actual_cost != nil {
		fields = append(fields, toolcall.FieldActualCost)
	}
	if m.status != nil {
		fields = append(fields, toolcall.FieldStatus)
	}
	if m.error_message != nil {
		fields = append(fields, toolcall.FieldErrorMessage)
	}
	if m.data_version_hash != nil {
		fields = append(fields, toolcall.FieldDataVersionHash)
	}
	if m.experiment_id != nil {
		fields = append(fields, toolcall.FieldExperimentID)
	}
	if m.meeting_id != nil {
		fields = append(fields, toolcall.FieldMeetingID)
	}
	if m.cycle_id != nil {
		fields = append(fields, toolcall.FieldCycleID)
	}
	if m.created_at != nil {
		fields = append(fields, toolcall.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ToolCallMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case toolcall.FieldAgent:
		return m.Agent()
	case toolcall.FieldTool:
		return m.Tool()
	case toolcall.FieldArgs:
		return m.Args()
	case toolcall.FieldEstimatedCost:
		return m.EstimatedCost()
	case toolcall.FieldActualCost:
		return m.ActualCost()
	case toolcall.FieldStatus:
		return m.Status()
	case toolcall.FieldErrorMessage:
		return m.ErrorMessage()
	case toolcall.FieldDataVersionHash:
		return m.DataVersionHash()
	case toolcall.FieldExperimentID:
		return m.ExperimentID()
	case toolcall.FieldMeetingID:
		return m.MeetingID()
	case toolcall.FieldCycleID:
		return m.CycleID()
	case toolcall.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ToolCallMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case toolcall.FieldAgent:
		return m.OldAgent(ctx)
	case toolcall.FieldTool:
		return m.OldTool(ctx)
	case toolcall.FieldArgs:
		return m.OldArgs(ctx)
	case toolcall.FieldEstimatedCost:
		return m.OldEstimatedCost(ctx)
	case toolcall.FieldActualCost:
		return m.OldActualCost(ctx)
	case toolcall.FieldStatus:
		return m.OldStatus(ctx)
	case toolcall.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case toolcall.FieldDataVersionHash:
		return m.OldDataVersionHash(ctx)
	case toolcall.FieldExperimentID:
		return m.OldExperimentID(ctx)
	case toolcall.FieldMeetingID:
		return m.OldMeetingID(ctx)
	case toolcall.FieldCycleID:
		return m.OldCycleID(ctx)
	case toolcall.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ToolCall field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ToolCallMutation) SetField(name string, value ent.Value) error {
	switch name {
	case toolcall.FieldAgent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgent(v)
		return nil
	case toolcall.FieldTool:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTool(v)
		return nil
	case toolcall.FieldArgs:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArgs(v)
		return nil
	case toolcall.FieldEstimatedCost:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEstimatedCost(v)
		return nil
	case toolcall.FieldActualCost:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActualCost(v)
		return nil
	case toolcall.FieldStatus:
		v, ok := value.(toolcall.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case toolcall.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case toolcall.FieldDataVersionHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDataVersionHash(v)
		return nil
	case toolcall.FieldExperimentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExperimentID(v)
		return nil
	case toolcall.FieldMeetingID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMeetingID(v)
		return nil
	case toolcall.FieldCycleID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCycleID(v)
		return nil
	case toolcall.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ToolCall field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ToolCallMutation) AddedFields() []string {
	var fields []string
	if m.addestimated_cost != nil {
		fields = append(fields, toolcall.FieldEstimatedCost)
	}
	if m.addactual_cost != nil {
		fields = append(fields, toolcall.FieldActualCost)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ToolCallMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case toolcall.FieldEstimatedCost:
		return m.AddedEstimatedCost()
	case toolcall.FieldActualCost:
		return m.AddedActualCost()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ToolCallMutation) AddField(name string, value ent.Value) error {
	switch name {
	case toolcall.FieldEstimatedCost:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEstimatedCost(v)
		return nil
	case toolcall.FieldActualCost:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddActualCost(v)
		return nil
	}
	return fmt.Errorf("unknown ToolCall numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ToolCallMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(toolcall.FieldArgs) {
		fields = append(fields, toolcall.FieldArgs)
	}
	if m.FieldCleared(toolcall.FieldErrorMessage) {
		fields = append(fields, toolcall.FieldErrorMessage)
	}
	if m.FieldCleared(toolcall.FieldDataVersionHash) {
		fields = append(fields, toolcall.FieldDataVersionHash)
	}
	if m.FieldCleared(toolcall.FieldExperimentID) {
		fields = append(fields, toolcall.FieldExperimentID)
	}
	if m.FieldCleared(toolcall.FieldMeetingID) {
		fields = append(fields, toolcall.FieldMeetingID)
	}
	if m.FieldCleared(toolcall.FieldCycleID) {
		fields = append(fields, toolcall.FieldCycleID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ToolCallMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ToolCallMutation) ClearField(name string) error {
	switch name {
	case toolcall.FieldArgs:
		m.ClearArgs()
		return nil
	case toolcall.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case toolcall.FieldDataVersionHash:
		m.ClearDataVersionHash()
		return nil
	case toolcall.FieldExperimentID:
		m.ClearExperimentID()
		return nil
	case toolcall.FieldMeetingID:
		m.ClearMeetingID()
		return nil
	case toolcall.FieldCycleID:
		m.ClearCycleID()
		return nil
	}
	return fmt.Errorf("unknown ToolCall nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ToolCallMutation) ResetField(name string) error {
	switch name {
	case toolcall.FieldAgent:
		m.ResetAgent()
		return nil
	case toolcall.FieldTool:
		m.ResetTool()
		return nil
	case toolcall.FieldArgs:
		m.ResetArgs()
		return nil
	case toolcall.FieldEstimatedCost:
		m.ResetEstimatedCost()
		return nil
	case toolcall.FieldActualCost:
		m.ResetActualCost()
		return nil
	case toolcall.FieldStatus:
		m.ResetStatus()
		return nil
	case toolcall.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case toolcall.FieldDataVersionHash:
		m.ResetDataVersionHash()
		return nil
	case toolcall.FieldExperimentID:
		m.ResetExperimentID()
		return nil
	case toolcall.FieldMeetingID:
		m.ResetMeetingID()
		return nil
	case toolcall.FieldCycleID:
		m.ResetCycleID()
		return nil
	case toolcall.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ToolCall field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ToolCallMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ToolCallMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ToolCallMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ToolCallMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ToolCallMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ToolCallMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ToolCallMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ToolCall unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ToolCallMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ToolCall edge %s", name)
}

// ToolRequestMutation represents an operation that mutates the ToolRequest nodes in the graph.
type ToolRequestMutation struct {
	config
	op               Op
	typ              string
	id               *string
	tool_name        *string
	description      *string
	requesters       *[]string
	appendrequesters []string
	request_count    *int
	addrequest_count *int
	urgency          *float64
	addurgency       *float64
	feasibility      *float64
	addfeasibility   *float64
	deployed         *bool
	created_at       *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*ToolRequest, error)
	predicates       []predicate.ToolRequest
}

var _ ent.Mutation = (*ToolRequestMutation)(nil)

// toolrequestOption allows management of the mutation configuration using functional options.
type toolrequestOption func(*ToolRequestMutation)

// newToolRequestMutation creates new mutation for the ToolRequest entity.
func newToolRequestMutation(c config, op Op, opts ...toolrequestOption) *ToolRequestMutation {
	m := &ToolRequestMutation{
		config:        c,
		op:            op,
		typ:           TypeToolRequest,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withToolRequestID sets the ID field of the mutation.
func withToolRequestID(id string) toolrequestOption {
	return func(m *ToolRequestMutation) {
		var (
			err   error
			once  sync.Once
			value *ToolRequest
		)
		m.oldValue = func(ctx context.Context) (*ToolRequest, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ToolRequest.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withToolRequest sets the old ToolRequest of the mutation.
func withToolRequest(node *ToolRequest) toolrequestOption {
	return func(m *ToolRequestMutation) {
		m.oldValue = func(context.Context) (*ToolRequest, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ToolRequestMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ToolRequestMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ToolRequest entities.
func (m *ToolRequestMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ToolRequestMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ToolRequestMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ToolRequest.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetToolName sets the "tool_name" field.
func (m *ToolRequestMutation) SetToolName(s string) {
	m.tool_name = &s
}

// ToolName returns the value of the "tool_name" field in the mutation.
func (m *ToolRequestMutation) ToolName() (r string, exists bool) {
	v := m.tool_name
	if v == nil {
		return
	}
	return *v, true
}

// OldToolName returns the old "tool_name" field's value of the ToolRequest entity.
// If the ToolRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolRequestMutation) OldToolName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToolName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToolName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToolName: %w", err)
	}
	return oldValue.ToolName, nil
}

// ResetToolName resets all changes to the "tool_name" field.
func (m *ToolRequestMutation) ResetToolName() {
	m.tool_name = nil
}

// SetDescription sets the "description" field.
func (m *ToolRequestMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ToolRequestMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the ToolRequest entity.
// If the ToolRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolRequestMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *ToolRequestMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[toolrequest.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *ToolRequestMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[toolrequest.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *ToolRequestMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, toolrequest.FieldDescription)
}

// SetRequesters sets the "requesters" field.
func (m *ToolRequestMutation) SetRequesters(s []string) {
	m.requesters = &s
	m.appendrequesters = nil
}

// Requesters returns the value of the "requesters" field in the mutation.
func (m *ToolRequestMutation) Requesters() (r []string, exists bool) {
	v := m.requesters
	if v == nil {
		return
	}
	return *v, true
}

// OldRequesters returns the old "requesters" field's value of the ToolRequest entity.
// If the ToolRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolRequestMutation) OldRequesters(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequesters is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequesters requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequesters: %w", err)
	}
	return oldValue.Requesters, nil
}

// AppendRequesters adds s to the "requesters" field.
func (m *ToolRequestMutation) AppendRequesters(s []string) {
	m.appendrequesters = append(m.appendrequesters, s...)
}

// AppendedRequesters returns the list of values that were appended to the "requesters" field in this mutation.
func (m *ToolRequestMutation) AppendedRequesters() ([]string, bool) {
	if len(m.appendrequesters) == 0 {
		return nil, false
	}
	return m.appendrequesters, true
}

// ResetRequesters resets all changes to the "requesters" field.
func (m *ToolRequestMutation) ResetRequesters() {
	m.requesters = nil
	m.appendrequesters = nil
}

// SetRequestCount sets the "request_count" field.
func (m *ToolRequestMutation) SetRequestCount(i int) {
	m.request_count = &i
	m.addrequest_count = nil
}

// RequestCount returns the value of the "request_count" field in the mutation.
func (m *ToolRequestMutation) RequestCount() (r int, exists bool) {
	v := m.request_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestCount returns the old "request_count" field's value of the ToolRequest entity.
// If the ToolRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolRequestMutation) OldRequestCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestCount: %w", err)
	}
	return oldValue.RequestCount, nil
}

// AddRequestCount adds i to the "request_count" field.
func (m *ToolRequestMutation) AddRequestCount(i int) {
	if m.addrequest_count != nil {
		*m.addrequest_count += i
	} else {
		m.addrequest_count = &i
	}
}

// AddedRequestCount returns the value that was added to the "request_count" field in this mutation.
func (m *ToolRequestMutation) AddedRequestCount() (r int, exists bool) {
	v := m.addrequest_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRequestCount resets all changes to the "request_count" field.
func (m *ToolRequestMutation) ResetRequestCount() {
	m.request_count = nil
	m.addrequest_count = nil
}

// SetUrgency sets the "urgency" field.
func (m *ToolRequestMutation) SetUrgency(f float64) {
	m.urgency = &f
	m.addurgency = nil
}

// Urgency returns the value of the "urgency" field in the mutation.
func (m *ToolRequestMutation) Urgency() (r float64, exists bool) {
	v := m.urgency
	if v == nil {
		return
	}
	return *v, true
}

// OldUrgency returns the old "urgency" field's value of the ToolRequest entity.
// If the ToolRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolRequestMutation) OldUrgency(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUrgency is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUrgency requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUrgency: %w", err)
	}
	return oldValue.Urgency, nil
}

// AddUrgency adds f to the "urgency" field.
func (m *ToolRequestMutation) AddUrgency(f float64) {
	if m.addurgency != nil {
		*m.addurgency += f
	} else {
		m.addurgency = &f
	}
}

// AddedUrgency returns the value that was added to the "urgency" field in this mutation.
func (m *ToolRequestMutation) AddedUrgency() (r float64, exists bool) {
	v := m.addurgency
	if v == nil {
		return
	}
	return *v, true
}

// ResetUrgency resets all changes to the "urgency" field.
func (m *ToolRequestMutation) ResetUrgency() {
	m.urgency = nil
	m.addurgency = nil
}

// SetFeasibility sets the "feasibility" field.
func (m *ToolRequestMutation) SetFeasibility(f float64) {
	m.feasibility = &f
	m.addfeasibility = nil
}

// Feasibility returns the value of the "feasibility" field in the mutation.
func (m *ToolRequestMutation) Feasibility() (r float64, exists bool) {
	v := m.feasibility
	if v == nil {
		return
	}
	return *v, true
}

// OldFeasibility returns the old "feasibility" field's value of the ToolRequest entity.
// If the ToolRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolRequestMutation) OldFeasibility(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFeasibility is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFeasibility requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFeasibility: %w", err)
	}
	return oldValue.Feasibility, nil
}

// AddFeasibility adds f to the "feasibility" field.
func (m *ToolRequestMutation) AddFeasibility(f float64) {
	if m.addfeasibility != nil {
		*m.addfeasibility += f
	} else {
		m.addfeasibility = &f
	}
}

// AddedFeasibility returns the value that was added to the "feasibility" field in this mutation.
func (m *ToolRequestMutation) AddedFeasibility() (r float64, exists bool) {
	v := m.addfeasibility
	if v == nil {
		return
	}
	return *v, true
}

// ResetFeasibility resets all changes to the "feasibility" field.
func (m *ToolRequestMutation) ResetFeasibility() {
	m.feasibility = nil
	m.addfeasibility = nil
}

// SetDeployed sets the "deployed" field.
func (m *ToolRequestMutation) SetDeployed(b bool) {
	m.deployed = &b
}

// Deployed returns the value of the "deployed" field in the mutation.
func (m *ToolRequestMutation) Deployed() (r bool, exists bool) {
	v := m.deployed
	if v == nil {
		return
	}
	return *v, true
}

// OldDeployed returns the old "deployed" field's value of the ToolRequest entity.
// If the ToolRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolRequestMutation) OldDeployed(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeployed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeployed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeployed: %w", err)
	}
	return oldValue.Deployed, nil
}

// ResetDeployed resets all changes to the "deployed" field.
func (m *ToolRequestMutation) ResetDeployed() {
	m.deployed = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ToolRequestMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ToolRequestMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ToolRequest entity.
// If the ToolRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolRequestMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *ToolRequestMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ToolRequestMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ToolRequestMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ToolRequest entity.
// If the ToolRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolRequestMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *ToolRequestMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the ToolRequestMutation builder.
func (m *ToolRequestMutation) Where(ps ...predicate.ToolRequest) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ToolRequestMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ToolRequestMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ToolRequest, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ToolRequestMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ToolRequestMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ToolRequest).
func (m *ToolRequestMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ToolRequestMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.tool_name != nil {
		fields = append(fields, toolrequest.FieldToolName)
	}
	if m.description != nil {
		fields = append(fields, toolrequest.FieldDescription)
	}
	if m.requesters != nil {
		fields = append(fields, toolrequest.FieldRequesters)
	}
	if m.request_count != nil {
		fields = append(fields, toolrequest.FieldRequestCount)
	}
	if m.urgency != nil {
		fields = append(fields, toolrequest.FieldUrgency)
	}
	if m.feasibility != nil {
		fields = append(fields, toolrequest.FieldFeasibility)
	}
	if m.deployed != nil {
		fields = append(fields, toolrequest.FieldDeployed)
	}
	if m.created_at != nil {
		fields = append(fields, toolrequest.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, toolrequest.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ToolRequestMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case toolrequest.FieldToolName:
		return m.ToolName()
	case toolrequest.FieldDescription:
		return m.Description()
	case toolrequest.FieldRequesters:
		return m.Requesters()
	case toolrequest.FieldRequestCount:
		return m.RequestCount()
	case toolrequest.FieldUrgency:
		return m.Urgency()
	case toolrequest.FieldFeasibility:
		return m.Feasibility()
	case toolrequest.FieldDeployed:
		return m.Deployed()
	case toolrequest.FieldCreatedAt:
		return m.CreatedAt()
	case toolrequest.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ToolRequestMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case toolrequest.FieldToolName:
		return m.OldToolName(ctx)
	case toolrequest.FieldDescription:
		return m.OldDescription(ctx)
	case toolrequest.FieldRequesters:
		return m.OldRequesters(ctx)
	case toolrequest.FieldRequestCount:
		return m.OldRequestCount(ctx)
	case toolrequest.FieldUrgency:
		return m.OldUrgency(ctx)
	case toolrequest.FieldFeasibility:
		return m.OldFeasibility(ctx)
	case toolrequest.FieldDeployed:
		return m.OldDeployed(ctx)
	case toolrequest.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case toolrequest.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ToolRequest field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ToolRequestMutation) SetField(name string, value ent.Value) error {
	switch name {
	case toolrequest.FieldToolName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToolName(v)
		return nil
	case toolrequest.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case toolrequest.FieldRequesters:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequesters(v)
		return nil
	case toolrequest.FieldRequestCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestCount(v)
		return nil
	case toolrequest.FieldUrgency:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUrgency(v)
		return nil
	case toolrequest.FieldFeasibility:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFeasibility(v)
		return nil
	case toolrequest.FieldDeployed:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeployed(v)
		return nil
	case toolrequest.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case toolrequest.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ToolRequest field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ToolRequestMutation) AddedFields() []string {
	var fields []string
	if m.addrequest_count != nil {
		fields = append(fields, toolrequest.FieldRequestCount)
	}
	if m.addurgency != nil {
		fields = append(fields, toolrequest.FieldUrgency)
	}
	if m.addfeasibility != nil {
		fields = append(fields, toolrequest.FieldFeasibility)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ToolRequestMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case toolrequest.FieldRequestCount:
		return m.AddedRequestCount()
	case toolrequest.FieldUrgency:
		return m.AddedUrgency()
	case toolrequest.FieldFeasibility:
		return m.AddedFeasibility()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ToolRequestMutation) AddField(name string, value ent.Value) error {
	switch name {
	case toolrequest.FieldRequestCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRequestCount(v)
		return nil
	case toolrequest.FieldUrgency:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUrgency(v)
		return nil
	case toolrequest.FieldFeasibility:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFeasibility(v)
		return nil
	}
	return fmt.Errorf("unknown ToolRequest numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ToolRequestMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(toolrequest.FieldDescription) {
		fields = append(fields, toolrequest.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ToolRequestMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ToolRequestMutation) ClearField(name string) error {
	switch name {
	case toolrequest.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown ToolRequest nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ToolRequestMutation) ResetField(name string) error {
	switch name {
	case toolrequest.FieldToolName:
		m.ResetToolName()
		return nil
	case toolrequest.FieldDescription:
		m.ResetDescription()
		return nil
	case toolrequest.FieldRequesters:
		m.ResetRequesters()
		return nil
	case toolrequest.FieldRequestCount:
		m.ResetRequestCount()
		return nil
	case toolrequest.FieldUrgency:
		m.ResetUrgency()
		return nil
	case toolrequest.FieldFeasibility:
		m.ResetFeasibility()
		return nil
	case toolrequest.FieldDeployed:
		m.ResetDeployed()
		return nil
	case toolrequest.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case toolrequest.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ToolRequest field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ToolRequestMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ToolRequestMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ToolRequestMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ToolRequestMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ToolRequestMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ToolRequestMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ToolRequestMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ToolRequest unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ToolRequestMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ToolRequest edge %s", name)
}

// TopicRecordMutation represents an operation that mutates the TopicRecord nodes in the graph.
type TopicRecordMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	kind                *string
	title               *string
	description         *string
	priority            *int
	addpriority         *int
	status              *topicrecord.Status
	proposer            *string
	seconds             *[]map[string]interface{}
	appendseconds       []map[string]interface{}
	required_seconds    *int
	addrequired_seconds *int
	meeting_id          *string
	scheduled_at        *time.Time
	expires_at          *time.Time
	resolution          *string
	action_items        *[]map[string]interface{}
	appendaction_items  []map[string]interface{}
	created_at          *time.Time
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*TopicRecord, error)
	predicates          []predicate.TopicRecord
}

var _ ent.Mutation = (*TopicRecordMutation)(nil)

// topicrecordOption allows management of the mutation configuration using functional options.
type topicrecordOption func(*TopicRecordMutation)

// newTopicRecordMutation creates new mutation for the TopicRecord entity.
func newTopicRecordMutation(c config, op Op, opts ...topicrecordOption) *TopicRecordMutation {
	m := &TopicRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeTopicRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTopicRecordID sets the ID field of the mutation.
func withTopicRecordID(id string) topicrecordOption {
	return func(m *TopicRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *TopicRecord
		)
		m.oldValue = func(ctx context.Context) (*TopicRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TopicRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTopicRecord sets the old TopicRecord of the mutation.
func withTopicRecord(node *TopicRecord) topicrecordOption {
	return func(m *TopicRecordMutation) {
		m.oldValue = func(context.Context) (*TopicRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TopicRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TopicRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TopicRecord entities.
func (m *TopicRecordMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TopicRecordMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TopicRecordMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TopicRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetKind sets the "kind" field.
func (m *TopicRecordMutation) SetKind(s string) {
	m.kind = &s
}

// Kind returns the value of the "kind" field in the mutation.
func (m *TopicRecordMutation) Kind() (r string, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the TopicRecord entity.
// If the TopicRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicRecordMutation) OldKind(ctx context.Context) (v string, err error) {
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
func (m *TopicRecordMutation) ResetKind() {
	m.kind = nil
}

// SetTitle sets the "title" field.
func (m *TopicRecordMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *TopicRecordMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the TopicRecord entity.
// If the TopicRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicRecordMutation) OldTitle(ctx context.Context) (v string, err error) {
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
func (m *TopicRecordMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *TopicRecordMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *TopicRecordMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the TopicRecord entity.
// If the TopicRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicRecordMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *TopicRecordMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[topicrecord.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *TopicRecordMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[topicrecord.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *TopicRecordMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, topicrecord.FieldDescription)
}

// SetPriority sets the "priority" field.
func (m *TopicRecordMutation) SetPriority(i int) {
	m.priority = &i
	m.addpriority = nil
}

// Priority returns the value of the "priority" field in the mutation.
func (m *TopicRecordMutation) Priority() (r int, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the TopicRecord entity.
// If the TopicRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicRecordMutation) OldPriority(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// AddPriority adds i to the "priority" field.
func (m *TopicRecordMutation) AddPriority(i int) {
	if m.addpriority != nil {
		*m.addpriority += i
	} else {
		m.addpriority = &i
	}
}

// AddedPriority returns the value that was added to the "priority" field in this mutation.
func (m *TopicRecordMutation) AddedPriority() (r int, exists bool) {
	v := m.addpriority
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriority resets all changes to the "priority" field.
func (m *TopicRecordMutation) ResetPriority() {
	m.priority = nil
	m.addpriority = nil
}

// SetStatus sets the "status" field.
func (m *TopicRecordMutation) SetStatus(t topicrecord.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *TopicRecordMutation) Status() (r topicrecord.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the TopicRecord entity.
// If the TopicRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicRecordMutation) OldStatus(ctx context.Context) (v topicrecord.Status, err error) {
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
func (m *TopicRecordMutation) ResetStatus() {
	m.status = nil
}

// SetProposer sets the "proposer" field.
func (m *TopicRecordMutation) SetProposer(s string) {
	m.proposer = &s
}

// Proposer returns the value of the "proposer" field in the mutation.
func (m *TopicRecordMutation) Proposer() (r string, exists bool) {
	v := m.proposer
	if v == nil {
		return
	}
	return *v, true
}

// OldProposer returns the old "proposer" field's value of the TopicRecord entity.
// If the TopicRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicRecordMutation) OldProposer(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProposer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProposer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProposer: %w", err)
	}
	return oldValue.Proposer, nil
}

// ResetProposer resets all changes to the "proposer" field.
func (m *TopicRecordMutation) ResetProposer() {
	m.proposer = nil
}

// SetSeconds sets the "seconds" field.
func (m *TopicRecordMutation) SetSeconds(value []map[string]interface{}) {
	m.seconds = &value
	m.appendseconds = nil
}

// Seconds returns the value of the "seconds" field in the mutation.
func (m *TopicRecordMutation) Seconds() (r []map[string]interface{}, exists bool) {
	v := m.seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldSeconds returns the old "seconds" field's value of the TopicRecord entity.
// If the TopicRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicRecordMutation) OldSeconds(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeconds: %w", err)
	}
	return oldValue.Seconds, nil
}

// AppendSeconds adds value to the "seconds" field.
func (m *TopicRecordMutation) AppendSeconds(value []map[string]interface{}) {
	m.appendseconds = append(m.appendseconds, value...)
}

// AppendedSeconds returns the list of values that were appended to the "seconds" field in this mutation.
func (m *TopicRecordMutation) AppendedSeconds() ([]map[string]interface{}, bool) {
	if len(m.appendseconds) == 0 {
		return nil, false
	}
	return m.appendseconds, true
}

// ClearSeconds clears the value of the "seconds" field.
func (m *TopicRecordMutation) ClearSeconds() {
	m.seconds = nil
	m.appendseconds = nil
	m.clearedFields[topicrecord.FieldSeconds] = struct{}{}
}

// SecondsCleared returns if the "seconds" field was cleared in this mutation.
func (m *TopicRecordMutation) SecondsCleared() bool {
	_, ok := m.clearedFields[topicrecord.FieldSeconds]
	return ok
}

// ResetSeconds resets all changes to the "seconds" field.
func (m *TopicRecordMutation) ResetSeconds() {
	m.seconds = nil
	m.appendseconds = nil
	delete(m.clearedFields, topicrecord.FieldSeconds)
}

// SetRequiredSeconds sets the "required_seconds" field.
func (m *TopicRecordMutation) SetRequiredSeconds(i int) {
	m.required_seconds = &i
	m.addrequired_seconds = nil
}

// RequiredSeconds returns the value of the "required_seconds" field in the mutation.
func (m *TopicRecordMutation) RequiredSeconds() (r int, exists bool) {
	v := m.required_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldRequiredSeconds returns the old "required_seconds" field's value of the TopicRecord entity.
// If the TopicRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicRecordMutation) OldRequiredSeconds(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequiredSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequiredSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequiredSeconds: %w", err)
	}
	return oldValue.RequiredSeconds, nil
}

// AddRequiredSeconds adds i to the "required_seconds" field.
func (m *TopicRecordMutation) AddRequiredSeconds(i int) {
	if m.addrequired_seconds != nil {
		*m.addrequired_seconds += i
	} else {
		m.addrequired_seconds = &i
	}
}

// AddedRequiredSeconds returns the value that was added to the "required_seconds" field in this mutation.
func (m *TopicRecordMutation) AddedRequiredSeconds() (r int, exists bool) {
	v := m.addrequired_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ResetRequiredSeconds resets all changes to the "required_seconds" field.
func (m *TopicRecordMutation) ResetRequiredSeconds() {
	m.required_seconds = nil
	m.addrequired_seconds = nil
}

// SetMeetingID sets the "meeting_id" field.
func (m *TopicRecordMutation) SetMeetingID(s string) {
	m.meeting_id = &s
}

// MeetingID returns the value of the "meeting_id" field in the mutation.
func (m *TopicRecordMutation) MeetingID() (r string, exists bool) {
	v := m.meeting_id
	if v == nil {
		return
	}
	return *v, true
}

// OldMeetingID returns the old "meeting_id" field's value of the TopicRecord entity.
// If the TopicRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicRecordMutation) OldMeetingID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMeetingID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMeetingID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMeetingID: %w", err)
	}
	return oldValue.MeetingID, nil
}

// ClearMeetingID clears the value of the "meeting_id" field.
func (m *TopicRecordMutation) ClearMeetingID() {
	m.meeting_id = nil
	m.clearedFields[topicrecord.FieldMeetingID] = struct{}{}
}

// MeetingIDCleared returns if the "meeting_id" field was cleared in this mutation.
func (m *TopicRecordMutation) MeetingIDCleared() bool {
	_, ok := m.clearedFields[topicrecord.FieldMeetingID]
	return ok
}

// ResetMeetingID resets all changes to the "meeting_id" field.
func (m *TopicRecordMutation) ResetMeetingID() {
	m.meeting_id = nil
	delete(m.clearedFields, topicrecord.FieldMeetingID)
}

// SetScheduledAt sets the "scheduled_at" field.
func (m *TopicRecordMutation) SetScheduledAt(t time.Time) {
	m.scheduled_at = &t
}

// ScheduledAt returns the value of the "scheduled_at" field in the mutation.
func (m *TopicRecordMutation) ScheduledAt() (r time.Time, exists bool) {
	v := m.scheduled_at
	if v == nil {
		return
	}
	return *v, true
}

// OldScheduledAt returns the old "scheduled_at" field's value of the TopicRecord entity.
// If the TopicRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicRecordMutation) OldScheduledAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScheduledAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScheduledAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScheduledAt: %w", err)
	}
	return oldValue.ScheduledAt, nil
}

// ClearScheduledAt clears the value of the "scheduled_at" field.
func (m *TopicRecordMutation) ClearScheduledAt() {
	m.scheduled_at = nil
	m.clearedFields[topicrecord.FieldScheduledAt] = struct{}{}
}

// ScheduledAtCleared returns if the "scheduled_at" field was cleared in this mutation.
func (m *TopicRecordMutation) ScheduledAtCleared() bool {
	_, ok := m.clearedFields[topicrecord.FieldScheduledAt]
	return ok
}

// ResetScheduledAt resets all changes to the "scheduled_at" field.
func (m *TopicRecordMutation) ResetScheduledAt() {
	m.scheduled_at = nil
	delete(m.clearedFields, topicrecord.FieldScheduledAt)
}

// SetExpiresAt sets the "expires_at" field.
func (m *TopicRecordMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *TopicRecordMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the TopicRecord entity.
// If the TopicRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicRecordMutation) OldExpiresAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *TopicRecordMutation) ResetExpiresAt() {
	m.expires_at = nil
}

// SetResolution sets the "resolution" field.
func (m *TopicRecordMutation) SetResolution(s string) {
	m.resolution = &s
}

// Resolution returns the value of the "resolution" field in the mutation.
func (m *TopicRecordMutation) Resolution() (r string, exists bool) {
	v := m.resolution
	if v == nil {
		return
	}
	return *v, true
}

// OldResolution returns the old "resolution" field's value of the TopicRecord entity.
// If the TopicRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicRecordMutation) OldResolution(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolution is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolution requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolution: %w", err)
	}
	return oldValue.Resolution, nil
}

// ClearResolution clears the value of the "resolution" field.
func (m *TopicRecordMutation) ClearResolution() {
	m.resolution = nil
	m.clearedFields[topicrecord.FieldResolution] = struct{}{}
}

// ResolutionCleared returns if the "resolution" field was cleared in this mutation.
func (m *TopicRecordMutation) ResolutionCleared() bool {
	_, ok := m.clearedFields[topicrecord.FieldResolution]
	return ok
}

// ResetResolution resets all changes to the "resolution" field.
func (m *TopicRecordMutation) ResetResolution() {
	m.resolution = nil
	delete(m.clearedFields, topicrecord.FieldResolution)
}

// SetActionItems sets the "action_items" field.
func (m *TopicRecordMutation) SetActionItems(value []map[string]interface{}) {
	m.action_items = &value
	m.appendaction_items = nil
}

// ActionItems returns the value of the "action_items" field in the mutation.
func (m *TopicRecordMutation) ActionItems() (r []map[string]interface{}, exists bool) {
	v := m.action_items
	if v == nil {
		return
	}
	return *v, true
}

// OldActionItems returns the old "action_items" field's value of the TopicRecord entity.
// If the TopicRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicRecordMutation) OldActionItems(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActionItems is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActionItems requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActionItems: %w", err)
	}
	return oldValue.ActionItems, nil
}

// AppendActionItems adds value to the "action_items" field.
func (m *TopicRecordMutation) AppendActionItems(value []map[string]interface{}) {
	m.appendaction_items = append(m.appendaction_items, value...)
}

// AppendedActionItems returns the list of values that were appended to the "action_items" field in this mutation.
func (m *TopicRecordMutation) AppendedActionItems() ([]map[string]interface{}, bool) {
	if len(m.appendaction_items) == 0 {
		return nil, false
	}
	return m.appendaction_items, true
}

// ClearActionItems clears the value of the "action_items" field.
func (m *TopicRecordMutation) ClearActionItems() {
	m.action_items = nil
	m.appendaction_items = nil
	m.clearedFields[topicrecord.FieldActionItems] = struct{}{}
}

// ActionItemsCleared returns if the "action_items" field was cleared in this mutation.
func (m *TopicRecordMutation) ActionItemsCleared() bool {
	_, ok := m.clearedFields[topicrecord.FieldActionItems]
	return ok
}

// ResetActionItems resets all changes to the "action_items" field.
func (m *TopicRecordMutation) ResetActionItems() {
	m.action_items = nil
	m.appendaction_items = nil
	delete(m.clearedFields, topicrecord.FieldActionItems)
}

// SetCreatedAt sets the "created_at" field.
func (m *TopicRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TopicRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TopicRecord entity.
// If the TopicRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *TopicRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the TopicRecordMutation builder.
func (m *TopicRecordMutation) Where(ps ...predicate.TopicRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TopicRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TopicRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TopicRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TopicRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TopicRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TopicRecord).
func (m *TopicRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TopicRecordMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.kind != nil {
		fields = append(fields, topicrecord.FieldKind)
	}
	if m.title != nil {
		fields = append(fields, topicrecord.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, topicrecord.FieldDescription)
	}
	if m.priority != nil {
		fields = append(fields, topicrecord.FieldPriority)
	}
	if m.status != nil {
		fields = append(fields, topicrecord.FieldStatus)
	}
	if m.proposer != nil {
		fields = append(fields, topicrecord.FieldProposer)
	}
	if m.seconds != nil {
		fields = append(fields, topicrecord.FieldSeconds)
	}
	if m.required_seconds != nil {
		fields = append(fields, topicrecord.FieldRequiredSeconds)
	}
	if m.meeting_id != nil {
		fields = append(fields, topicrecord.FieldMeetingID)
	}
	if m.scheduled_at != nil {
		fields = append(fields, topicrecord.FieldScheduledAt)
	}
	if m.expires_at != nil {
		fields = append(fields, topicrecord.FieldExpiresAt)
	}
	if m.resolution != nil {
		fields = append(fields, topicrecord.FieldResolution)
	}
	if m.action_items != nil {
		fields = append(fields, topicrecord.FieldActionItems)
	}
	if m.created_at != nil {
		fields = append(fields, topicrecord.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TopicRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case topicrecord.FieldKind:
		return m.Kind()
	case topicrecord.FieldTitle:
		return m.Title()
	case topicrecord.FieldDescription:
		return m.Description()
	case topicrecord.FieldPriority:
		return m.Priority()
	case topicrecord.FieldStatus:
		return m.Status()
	case topicrecord.FieldProposer:
		return m.Proposer()
	case topicrecord.FieldSeconds:
		return m.Seconds()
	case topicrecord.FieldRequiredSeconds:
		return m.RequiredSeconds()
	case topicrecord.FieldMeetingID:
		return m.MeetingID()
	case topicrecord.FieldScheduledAt:
		return m.ScheduledAt()
	case topicrecord.FieldExpiresAt:
		return m.ExpiresAt()
	case topicrecord.FieldResolution:
		return m.Resolution()
	case topicrecord.FieldActionItems:
		return m.ActionItems()
	case topicrecord.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TopicRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case topicrecord.FieldKind:
		return m.OldKind(ctx)
	case topicrecord.FieldTitle:
		return m.OldTitle(ctx)
	case topicrecord.FieldDescription:
		return m.OldDescription(ctx)
	case topicrecord.FieldPriority:
		return m.OldPriority(ctx)
	case topicrecord.FieldStatus:
		return m.OldStatus(ctx)
	case topicrecord.FieldProposer:
		return m.OldProposer(ctx)
	case topicrecord.FieldSeconds:
		return m.OldSeconds(ctx)
	case topicrecord.FieldRequiredSeconds:
		return m.OldRequiredSeconds(ctx)
	case topicrecord.FieldMeetingID:
		return m.OldMeetingID(ctx)
	case topicrecord.FieldScheduledAt:
		return m.OldScheduledAt(ctx)
	case topicrecord.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	case topicrecord.FieldResolution:
		return m.OldResolution(ctx)
	case topicrecord.FieldActionItems:
		return m.OldActionItems(ctx)
	case topicrecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TopicRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TopicRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case topicrecord.FieldKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case topicrecord.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case topicrecord.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case topicrecord.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case topicrecord.FieldStatus:
		v, ok := value.(topicrecord.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case topicrecord.FieldProposer:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProposer(v)
		return nil
	case topicrecord.FieldSeconds:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeconds(v)
		return nil
	case topicrecord.FieldRequiredSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequiredSeconds(v)
		return nil
	case topicrecord.FieldMeetingID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMeetingID(v)
		return nil
	case topicrecord.FieldScheduledAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScheduledAt(v)
		return nil
	case topicrecord.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	case topicrecord.FieldResolution:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolution(v)
		return nil
	case topicrecord.FieldActionItems:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActionItems(v)
		return nil
	case topicrecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TopicRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TopicRecordMutation) AddedFields() []string {
	var fields []string
	if m.addpriority != nil {
		fields = append(fields, topicrecord.FieldPriority)
	}
	if m.addrequired_seconds != nil {
		fields = append(fields, topicrecord.FieldRequiredSeconds)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TopicRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case topicrecord.FieldPriority:
		return m.AddedPriority()
	case topicrecord.FieldRequiredSeconds:
		return m.AddedRequiredSeconds()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TopicRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case topicrecord.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriority(v)
		return nil
	case topicrecord.FieldRequiredSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRequiredSeconds(v)
		return nil
	}
	return fmt.Errorf("unknown TopicRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TopicRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(topicrecord.FieldDescription) {
		fields = append(fields, topicrecord.FieldDescription)
	}
	if m.FieldCleared(topicrecord.FieldSeconds) {
		fields = append(fields, topicrecord.FieldSeconds)
	}
	if m.FieldCleared(topicrecord.FieldMeetingID) {
		fields = append(fields, topicrecord.FieldMeetingID)
	}
	if m.FieldCleared(topicrecord.FieldScheduledAt) {
		fields = append(fields, topicrecord.FieldScheduledAt)
	}
	if m.FieldCleared(topicrecord.FieldResolution) {
		fields = append(fields, topicrecord.FieldResolution)
	}
	if m.FieldCleared(topicrecord.FieldActionItems) {
		fields = append(fields, topicrecord.FieldActionItems)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TopicRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TopicRecordMutation) ClearField(name string) error {
	switch name {
	case topicrecord.FieldDescription:
		m.ClearDescription()
		return nil
	case topicrecord.FieldSeconds:
		m.ClearSeconds()
		return nil
	case topicrecord.FieldMeetingID:
		m.ClearMeetingID()
		return nil
	case topicrecord.FieldScheduledAt:
		m.ClearScheduledAt()
		return nil
	case topicrecord.FieldResolution:
		m.ClearResolution()
		return nil
	case topicrecord.FieldActionItems:
		m.ClearActionItems()
		return nil
	}
	return fmt.Errorf("unknown TopicRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TopicRecordMutation) ResetField(name string) error {
	switch name {
	case topicrecord.FieldKind:
		m.ResetKind()
		return nil
	case topicrecord.FieldTitle:
		m.ResetTitle()
		return nil
	case topicrecord.FieldDescription:
		m.ResetDescription()
		return nil
	case topicrecord.FieldPriority:
		m.ResetPriority()
		return nil
	case topicrecord.FieldStatus:
		m.ResetStatus()
		return nil
	case topicrecord.FieldProposer:
		m.ResetProposer()
		return nil
	case topicrecord.FieldSeconds:
		m.ResetSeconds()
		return nil
	case topicrecord.FieldRequiredSeconds:
		m.ResetRequiredSeconds()
		return nil
	case topicrecord.FieldMeetingID:
		m.ResetMeetingID()
		return nil
	case topicrecord.FieldScheduledAt:
		m.ResetScheduledAt()
		return nil
	case topicrecord.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	case topicrecord.FieldResolution:
		m.ResetResolution()
		return nil
	case topicrecord.FieldActionItems:
		m.ResetActionItems()
		return nil
	case topicrecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown TopicRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TopicRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TopicRecordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TopicRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TopicRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TopicRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TopicRecordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TopicRecordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TopicRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TopicRecordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TopicRecord edge %s", name)
}
