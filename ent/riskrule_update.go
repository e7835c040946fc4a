// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/NoAme666/aiquant/ent/governancedecision"
	"github.com/NoAme666/aiquant/ent/predicate"
	"github.com/NoAme666/aiquant/ent/riskrule"
)

// RiskRuleUpdate is the builder for updating RiskRule entities.
type RiskRuleUpdate struct {
	config
	hooks    []Hook
	mutation *RiskRuleMutation
}

// Where appends a list predicates to the RiskRuleUpdate builder.
func (_u *RiskRuleUpdate) Where(ps ...predicate.RiskRule) *RiskRuleUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetKind sets the "kind" field.
func (_u *RiskRuleUpdate) SetKind(v string) *RiskRuleUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *RiskRuleUpdate) SetNillableKind(v *string) *RiskRuleUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *RiskRuleUpdate) SetTitle(v string) *RiskRuleUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *RiskRuleUpdate) SetNillableTitle(v *string) *RiskRuleUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *RiskRuleUpdate) SetDescription(v string) *RiskRuleUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *RiskRuleUpdate) SetNillableDescription(v *string) *RiskRuleUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *RiskRuleUpdate) ClearDescription() *RiskRuleUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetParameters sets the "parameters" field.
func (_u *RiskRuleUpdate) SetParameters(v map[string]float64) *RiskRuleUpdate {
	_u.mutation.SetParameters(v)
	return _u
}

// ClearParameters clears the value of the "parameters" field.
func (_u *RiskRuleUpdate) ClearParameters() *RiskRuleUpdate {
	_u.mutation.ClearParameters()
	return _u
}

// SetStatus sets the "status" field.
func (_u *RiskRuleUpdate) SetStatus(v riskrule.Status) *RiskRuleUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RiskRuleUpdate) SetNillableStatus(v *riskrule.Status) *RiskRuleUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetProposer sets the "proposer" field.
func (_u *RiskRuleUpdate) SetProposer(v string) *RiskRuleUpdate {
	_u.mutation.SetProposer(v)
	return _u
}

// SetNillableProposer sets the "proposer" field if the given value is not nil.
func (_u *RiskRuleUpdate) SetNillableProposer(v *string) *RiskRuleUpdate {
	if v != nil {
		_u.SetProposer(*v)
	}
	return _u
}

// SetRequiredVoters sets the "required_voters" field.
func (_u *RiskRuleUpdate) SetRequiredVoters(v []string) *RiskRuleUpdate {
	_u.mutation.SetRequiredVoters(v)
	return _u
}

// AppendRequiredVoters appends value to the "required_voters" field.
func (_u *RiskRuleUpdate) AppendRequiredVoters(v []string) *RiskRuleUpdate {
	_u.mutation.AppendRequiredVoters(v)
	return _u
}

// SetVotes sets the "votes" field.
func (_u *RiskRuleUpdate) SetVotes(v []map[string]interface{}) *RiskRuleUpdate {
	_u.mutation.SetVotes(v)
	return _u
}

// AppendVotes appends value to the "votes" field.
func (_u *RiskRuleUpdate) AppendVotes(v []map[string]interface{}) *RiskRuleUpdate {
	_u.mutation.AppendVotes(v)
	return _u
}

// ClearVotes clears the value of the "votes" field.
func (_u *RiskRuleUpdate) ClearVotes() *RiskRuleUpdate {
	_u.mutation.ClearVotes()
	return _u
}

// SetEffectiveFrom sets the "effective_from" field.
func (_u *RiskRuleUpdate) SetEffectiveFrom(v time.Time) *RiskRuleUpdate {
	_u.mutation.SetEffectiveFrom(v)
	return _u
}

// SetNillableEffectiveFrom sets the "effective_from" field if the given value is not nil.
func (_u *RiskRuleUpdate) SetNillableEffectiveFrom(v *time.Time) *RiskRuleUpdate {
	if v != nil {
		_u.SetEffectiveFrom(*v)
	}
	return _u
}

// ClearEffectiveFrom clears the value of the "effective_from" field.
func (_u *RiskRuleUpdate) ClearEffectiveFrom() *RiskRuleUpdate {
	_u.mutation.ClearEffectiveFrom()
	return _u
}

// SetSuspendedBy sets the "suspended_by" field.
func (_u *RiskRuleUpdate) SetSuspendedBy(v string) *RiskRuleUpdate {
	_u.mutation.SetSuspendedBy(v)
	return _u
}

// SetNillableSuspendedBy sets the "suspended_by" field if the given value is not nil.
func (_u *RiskRuleUpdate) SetNillableSuspendedBy(v *string) *RiskRuleUpdate {
	if v != nil {
		_u.SetSuspendedBy(*v)
	}
	return _u
}

// ClearSuspendedBy clears the value of the "suspended_by" field.
func (_u *RiskRuleUpdate) ClearSuspendedBy() *RiskRuleUpdate {
	_u.mutation.ClearSuspendedBy()
	return _u
}

// SetSuspendReason sets the "suspend_reason" field.
func (_u *RiskRuleUpdate) SetSuspendReason(v string) *RiskRuleUpdate {
	_u.mutation.SetSuspendReason(v)
	return _u
}

// SetNillableSuspendReason sets the "suspend_reason" field if the given value is not nil.
func (_u *RiskRuleUpdate) SetNillableSuspendReason(v *string) *RiskRuleUpdate {
	if v != nil {
		_u.SetSuspendReason(*v)
	}
	return _u
}

// ClearSuspendReason clears the value of the "suspend_reason" field.
func (_u *RiskRuleUpdate) ClearSuspendReason() *RiskRuleUpdate {
	_u.mutation.ClearSuspendReason()
	return _u
}

// AddDecisionIDs adds the "decisions" edge to the GovernanceDecision entity by IDs.
func (_u *RiskRuleUpdate) AddDecisionIDs(ids ...string) *RiskRuleUpdate {
	_u.mutation.AddDecisionIDs(ids...)
	return _u
}

// AddDecisions adds the "decisions" edges to the GovernanceDecision entity.
func (_u *RiskRuleUpdate) AddDecisions(v ...*GovernanceDecision) *RiskRuleUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDecisionIDs(ids...)
}

// Mutation returns the RiskRuleMutation object of the builder.
func (_u *RiskRuleUpdate) Mutation() *RiskRuleMutation {
	return _u.mutation
}

// ClearDecisions clears all "decisions" edges to the GovernanceDecision entity.
func (_u *RiskRuleUpdate) ClearDecisions() *RiskRuleUpdate {
	_u.mutation.ClearDecisions()
	return _u
}

// RemoveDecisionIDs removes the "decisions" edge to GovernanceDecision entities by IDs.
func (_u *RiskRuleUpdate) RemoveDecisionIDs(ids ...string) *RiskRuleUpdate {
	_u.mutation.RemoveDecisionIDs(ids...)
	return _u
}

// RemoveDecisions removes "decisions" edges to GovernanceDecision entities.
func (_u *RiskRuleUpdate) RemoveDecisions(v ...*GovernanceDecision) *RiskRuleUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDecisionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RiskRuleUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RiskRuleUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RiskRuleUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RiskRuleUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RiskRuleUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := riskrule.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "RiskRule.status": %w`, err)}
		}
	}
	return nil
}

func (_u *RiskRuleUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(riskrule.Table, riskrule.Columns, sqlgraph.NewFieldSpec(riskrule.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(riskrule.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(riskrule.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(riskrule.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(riskrule.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Parameters(); ok {
		_spec.SetField(riskrule.FieldParameters, field.TypeJSON, value)
	}
	if _u.mutation.ParametersCleared() {
		_spec.ClearField(riskrule.FieldParameters, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(riskrule.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Proposer(); ok {
		_spec.SetField(riskrule.FieldProposer, field.TypeString, value)
	}
	if value, ok := _u.mutation.RequiredVoters(); ok {
		_spec.SetField(riskrule.FieldRequiredVoters, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRequiredVoters(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, riskrule.FieldRequiredVoters, value)
		})
	}
	if value, ok := _u.mutation.Votes(); ok {
		_spec.SetField(riskrule.FieldVotes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedVotes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, riskrule.FieldVotes, value)
		})
	}
	if _u.mutation.VotesCleared() {
		_spec.ClearField(riskrule.FieldVotes, field.TypeJSON)
	}
	if value, ok := _u.mutation.EffectiveFrom(); ok {
		_spec.SetField(riskrule.FieldEffectiveFrom, field.TypeTime, value)
	}
	if _u.mutation.EffectiveFromCleared() {
		_spec.ClearField(riskrule.FieldEffectiveFrom, field.TypeTime)
	}
	if value, ok := _u.mutation.SuspendedBy(); ok {
		_spec.SetField(riskrule.FieldSuspendedBy, field.TypeString, value)
	}
	if _u.mutation.SuspendedByCleared() {
		_spec.ClearField(riskrule.FieldSuspendedBy, field.TypeString)
	}
	if value, ok := _u.mutation.SuspendReason(); ok {
		_spec.SetField(riskrule.FieldSuspendReason, field.TypeString, value)
	}
	if _u.mutation.SuspendReasonCleared() {
		_spec.ClearField(riskrule.FieldSuspendReason, field.TypeString)
	}
	if _u.mutation.DecisionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   riskrule.DecisionsTable,
			Columns: []string{riskrule.DecisionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(governancedecision.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDecisionsIDs(); len(nodes) > 0 && !_u.mutation.DecisionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   riskrule.DecisionsTable,
			Columns: []string{riskrule.DecisionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(governancedecision.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DecisionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   riskrule.DecisionsTable,
			Columns: []string{riskrule.DecisionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(governancedecision.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{riskrule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RiskRuleUpdateOne is the builder for updating a single RiskRule entity.
type RiskRuleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RiskRuleMutation
}

// SetKind sets the "kind" field.
func (_u *RiskRuleUpdateOne) SetKind(v string) *RiskRuleUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *RiskRuleUpdateOne) SetNillableKind(v *string) *RiskRuleUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *RiskRuleUpdateOne) SetTitle(v string) *RiskRuleUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *RiskRuleUpdateOne) SetNillableTitle(v *string) *RiskRuleUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *RiskRuleUpdateOne) SetDescription(v string) *RiskRuleUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *RiskRuleUpdateOne) SetNillableDescription(v *string) *RiskRuleUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *RiskRuleUpdateOne) ClearDescription() *RiskRuleUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetParameters sets the "parameters" field.
func (_u *RiskRuleUpdateOne) SetParameters(v map[string]float64) *RiskRuleUpdateOne {
	_u.mutation.SetParameters(v)
	return _u
}

// ClearParameters clears the value of the "parameters" field.
func (_u *RiskRuleUpdateOne) ClearParameters() *RiskRuleUpdateOne {
	_u.mutation.ClearParameters()
	return _u
}

// SetStatus sets the "status" field.
func (_u *RiskRuleUpdateOne) SetStatus(v riskrule.Status) *RiskRuleUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RiskRuleUpdateOne) SetNillableStatus(v *riskrule.Status) *RiskRuleUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetProposer sets the "proposer" field.
func (_u *RiskRuleUpdateOne) SetProposer(v string) *RiskRuleUpdateOne {
	_u.mutation.SetProposer(v)
	return _u
}

// SetNillableProposer sets the "proposer" field if the given value is not nil.
func (_u *RiskRuleUpdateOne) SetNillableProposer(v *string) *RiskRuleUpdateOne {
	if v != nil {
		_u.SetProposer(*v)
	}
	return _u
}

// SetRequiredVoters sets the "required_voters" field.
func (_u *RiskRuleUpdateOne) SetRequiredVoters(v []string) *RiskRuleUpdateOne {
	_u.mutation.SetRequiredVoters(v)
	return _u
}

// AppendRequiredVoters appends value to the "required_voters" field.
func (_u *RiskRuleUpdateOne) AppendRequiredVoters(v []string) *RiskRuleUpdateOne {
	_u.mutation.AppendRequiredVoters(v)
	return _u
}

// SetVotes sets the "votes" field.
func (_u *RiskRuleUpdateOne) SetVotes(v []map[string]interface{}) *RiskRuleUpdateOne {
	_u.mutation.SetVotes(v)
	return _u
}

// AppendVotes appends value to the "votes" field.
func (_u *RiskRuleUpdateOne) AppendVotes(v []map[string]interface{}) *RiskRuleUpdateOne {
	_u.mutation.AppendVotes(v)
	return _u
}

// ClearVotes clears the value of the "votes" field.
func (_u *RiskRuleUpdateOne) ClearVotes() *RiskRuleUpdateOne {
	_u.mutation.ClearVotes()
	return _u
}

// SetEffectiveFrom sets the "effective_from" field.
func (_u *RiskRuleUpdateOne) SetEffectiveFrom(v time.Time) *RiskRuleUpdateOne {
	_u.mutation.SetEffectiveFrom(v)
	return _u
}

// SetNillableEffectiveFrom sets the "effective_from" field if the given value is not nil.
func (_u *RiskRuleUpdateOne) SetNillableEffectiveFrom(v *time.Time) *RiskRuleUpdateOne {
	if v != nil {
		_u.SetEffectiveFrom(*v)
	}
	return _u
}

// ClearEffectiveFrom clears the value of the "effective_from" field.
func (_u *RiskRuleUpdateOne) ClearEffectiveFrom() *RiskRuleUpdateOne {
	_u.mutation.ClearEffectiveFrom()
	return _u
}

// SetSuspendedBy sets the "suspended_by" field.
func (_u *RiskRuleUpdateOne) SetSuspendedBy(v string) *RiskRuleUpdateOne {
	_u.mutation.SetSuspendedBy(v)
	return _u
}

// SetNillableSuspendedBy sets the "suspended_by" field if the given value is not nil.
func (_u *RiskRuleUpdateOne) SetNillableSuspendedBy(v *string) *RiskRuleUpdateOne {
	if v != nil {
		_u.SetSuspendedBy(*v)
	}
	return _u
}

// ClearSuspendedBy clears the value of the "suspended_by" field.
func (_u *RiskRuleUpdateOne) ClearSuspendedBy() *RiskRuleUpdateOne {
	_u.mutation.ClearSuspendedBy()
	return _u
}

// SetSuspendReason sets the "suspend_reason" field.
func (_u *RiskRuleUpdateOne) SetSuspendReason(v string) *RiskRuleUpdateOne {
	_u.mutation.SetSuspendReason(v)
	return _u
}

// SetNillableSuspendReason sets the "suspend_reason" field if the given value is not nil.
func (_u *RiskRuleUpdateOne) SetNillableSuspendReason(v *string) *RiskRuleUpdateOne {
	if v != nil {
		_u.SetSuspendReason(*v)
	}
	return _u
}

// ClearSuspendReason clears the value of the "suspend_reason" field.
func (_u *RiskRuleUpdateOne) ClearSuspendReason() *RiskRuleUpdateOne {
	_u.mutation.ClearSuspendReason()
	return _u
}

// AddDecisionIDs adds the "decisions" edge to the GovernanceDecision entity by IDs.
func (_u *RiskRuleUpdateOne) AddDecisionIDs(ids ...string) *RiskRuleUpdateOne {
	_u.mutation.AddDecisionIDs(ids...)
	return _u
}

// AddDecisions adds the "decisions" edges to the GovernanceDecision entity.
func (_u *RiskRuleUpdateOne) AddDecisions(v ...*GovernanceDecision) *RiskRuleUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDecisionIDs(ids...)
}

// Mutation returns the RiskRuleMutation object of the builder.
func (_u *RiskRuleUpdateOne) Mutation() *RiskRuleMutation {
	return _u.mutation
}

// ClearDecisions clears all "decisions" edges to the GovernanceDecision entity.
func (_u *RiskRuleUpdateOne) ClearDecisions() *RiskRuleUpdateOne {
	_u.mutation.ClearDecisions()
	return _u
}

// RemoveDecisionIDs removes the "decisions" edge to GovernanceDecision entities by IDs.
func (_u *RiskRuleUpdateOne) RemoveDecisionIDs(ids ...string) *RiskRuleUpdateOne {
	_u.mutation.RemoveDecisionIDs(ids...)
	return _u
}

// RemoveDecisions removes "decisions" edges to GovernanceDecision entities.
func (_u *RiskRuleUpdateOne) RemoveDecisions(v ...*GovernanceDecision) *RiskRuleUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDecisionIDs(ids...)
}

// Where appends a list predicates to the RiskRuleUpdate builder.
func (_u *RiskRuleUpdateOne) Where(ps ...predicate.RiskRule) *RiskRuleUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RiskRuleUpdateOne) Select(field string, fields ...string) *RiskRuleUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RiskRule entity.
func (_u *RiskRuleUpdateOne) Save(ctx context.Context) (*RiskRule, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RiskRuleUpdateOne) SaveX(ctx context.Context) *RiskRule {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RiskRuleUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RiskRuleUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RiskRuleUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := riskrule.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "RiskRule.status": %w`, err)}
		}
	}
	return nil
}

func (_u *RiskRuleUpdateOne) sqlSave(ctx context.Context) (_node *RiskRule, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(riskrule.Table, riskrule.Columns, sqlgraph.NewFieldSpec(riskrule.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RiskRule.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, riskrule.FieldID)
		for _, f := range fields {
			if !riskrule.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != riskrule.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(riskrule.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(riskrule.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(riskrule.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(riskrule.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Parameters(); ok {
		_spec.SetField(riskrule.FieldParameters, field.TypeJSON, value)
	}
	if _u.mutation.ParametersCleared() {
		_spec.ClearField(riskrule.FieldParameters, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(riskrule.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Proposer(); ok {
		_spec.SetField(riskrule.FieldProposer, field.TypeString, value)
	}
	if value, ok := _u.mutation.RequiredVoters(); ok {
		_spec.SetField(riskrule.FieldRequiredVoters, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRequiredVoters(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, riskrule.FieldRequiredVoters, value)
		})
	}
	if value, ok := _u.mutation.Votes(); ok {
		_spec.SetField(riskrule.FieldVotes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedVotes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, riskrule.FieldVotes, value)
		})
	}
	if _u.mutation.VotesCleared() {
		_spec.ClearField(riskrule.FieldVotes, field.TypeJSON)
	}
	if value, ok := _u.mutation.EffectiveFrom(); ok {
		_spec.SetField(riskrule.FieldEffectiveFrom, field.TypeTime, value)
	}
	if _u.mutation.EffectiveFromCleared() {
		_spec.ClearField(riskrule.FieldEffectiveFrom, field.TypeTime)
	}
	if value, ok := _u.mutation.SuspendedBy(); ok {
		_spec.SetField(riskrule.FieldSuspendedBy, field.TypeString, value)
	}
	if _u.mutation.SuspendedByCleared() {
		_spec.ClearField(riskrule.FieldSuspendedBy, field.TypeString)
	}
	if value, ok := _u.mutation.SuspendReason(); ok {
		_spec.SetField(riskrule.FieldSuspendReason, field.TypeString, value)
	}
	if _u.mutation.SuspendReasonCleared() {
		_spec.ClearField(riskrule.FieldSuspendReason, field.TypeString)
	}
	if _u.mutation.DecisionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   riskrule.DecisionsTable,
			Columns: []string{riskrule.DecisionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(governancedecision.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDecisionsIDs(); len(nodes) > 0 && !_u.mutation.DecisionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   riskrule.DecisionsTable,
			Columns: []string{riskrule.DecisionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(governancedecision.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DecisionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   riskrule.DecisionsTable,
			Columns: []string{riskrule.DecisionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(governancedecision.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &RiskRule{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{riskrule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
