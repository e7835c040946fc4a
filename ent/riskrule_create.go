// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/NoAme666/aiquant/ent/governancedecision"
	"github.com/NoAme666/aiquant/ent/riskrule"
)

// RiskRuleCreate is the builder for creating a RiskRule entity.
type RiskRuleCreate struct {
	config
	mutation *RiskRuleMutation
	hooks    []Hook
}

// SetKind sets the "kind" field.
func (_c *RiskRuleCreate) SetKind(v string) *RiskRuleCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *RiskRuleCreate) SetTitle(v string) *RiskRuleCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *RiskRuleCreate) SetDescription(v string) *RiskRuleCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *RiskRuleCreate) SetNillableDescription(v *string) *RiskRuleCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetParameters sets the "parameters" field.
func (_c *RiskRuleCreate) SetParameters(v map[string]float64) *RiskRuleCreate {
	_c.mutation.SetParameters(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *RiskRuleCreate) SetStatus(v riskrule.Status) *RiskRuleCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *RiskRuleCreate) SetNillableStatus(v *riskrule.Status) *RiskRuleCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetProposer sets the "proposer" field.
func (_c *RiskRuleCreate) SetProposer(v string) *RiskRuleCreate {
	_c.mutation.SetProposer(v)
	return _c
}

// SetRequiredVoters sets the "required_voters" field.
func (_c *RiskRuleCreate) SetRequiredVoters(v []string) *RiskRuleCreate {
	_c.mutation.SetRequiredVoters(v)
	return _c
}

// SetVotes sets the "votes" field.
func (_c *RiskRuleCreate) SetVotes(v []map[string]interface{}) *RiskRuleCreate {
	_c.mutation.SetVotes(v)
	return _c
}

// SetEffectiveFrom sets the "effective_from" field.
func (_c *RiskRuleCreate) SetEffectiveFrom(v time.Time) *RiskRuleCreate {
	_c.mutation.SetEffectiveFrom(v)
	return _c
}

// SetNillableEffectiveFrom sets the "effective_from" field if the given value is not nil.
func (_c *RiskRuleCreate) SetNillableEffectiveFrom(v *time.Time) *RiskRuleCreate {
	if v != nil {
		_c.SetEffectiveFrom(*v)
	}
	return _c
}

// SetSuspendedBy sets the "suspended_by" field.
func (_c *RiskRuleCreate) SetSuspendedBy(v string) *RiskRuleCreate {
	_c.mutation.SetSuspendedBy(v)
	return _c
}

// SetNillableSuspendedBy sets the "suspended_by" field if the given value is not nil.
func (_c *RiskRuleCreate) SetNillableSuspendedBy(v *string) *RiskRuleCreate {
	if v != nil {
		_c.SetSuspendedBy(*v)
	}
	return _c
}

// SetSuspendReason sets the "suspend_reason" field.
func (_c *RiskRuleCreate) SetSuspendReason(v string) *RiskRuleCreate {
	_c.mutation.SetSuspendReason(v)
	return _c
}

// SetNillableSuspendReason sets the "suspend_reason" field if the given value is not nil.
func (_c *RiskRuleCreate) SetNillableSuspendReason(v *string) *RiskRuleCreate {
	if v != nil {
		_c.SetSuspendReason(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RiskRuleCreate) SetCreatedAt(v time.Time) *RiskRuleCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RiskRuleCreate) SetNillableCreatedAt(v *time.Time) *RiskRuleCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RiskRuleCreate) SetID(v string) *RiskRuleCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddDecisionIDs adds the "decisions" edge to the GovernanceDecision entity by IDs.
func (_c *RiskRuleCreate) AddDecisionIDs(ids ...string) *RiskRuleCreate {
	_c.mutation.AddDecisionIDs(ids...)
	return _c
}

// AddDecisions adds the "decisions" edges to the GovernanceDecision entity.
func (_c *RiskRuleCreate) AddDecisions(v ...*GovernanceDecision) *RiskRuleCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddDecisionIDs(ids...)
}

// Mutation returns the RiskRuleMutation object of the builder.
func (_c *RiskRuleCreate) Mutation() *RiskRuleMutation {
	return _c.mutation
}

// Save creates the RiskRule in the database.
func (_c *RiskRuleCreate) Save(ctx context.Context) (*RiskRule, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RiskRuleCreate) SaveX(ctx context.Context) *RiskRule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RiskRuleCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RiskRuleCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RiskRuleCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := riskrule.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := riskrule.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RiskRuleCreate) check() error {
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "RiskRule.kind"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "RiskRule.title"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "RiskRule.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := riskrule.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "RiskRule.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Proposer(); !ok {
		return &ValidationError{Name: "proposer", err: errors.New(`ent: missing required field "RiskRule.proposer"`)}
	}
	if _, ok := _c.mutation.RequiredVoters(); !ok {
		return &ValidationError{Name: "required_voters", err: errors.New(`ent: missing required field "RiskRule.required_voters"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "RiskRule.created_at"`)}
	}
	return nil
}

func (_c *RiskRuleCreate) sqlSave(ctx context.Context) (*RiskRule, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected RiskRule.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RiskRuleCreate) createSpec() (*RiskRule, *sqlgraph.CreateSpec) {
	var (
		_node = &RiskRule{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(riskrule.Table, sqlgraph.NewFieldSpec(riskrule.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(riskrule.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(riskrule.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(riskrule.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Parameters(); ok {
		_spec.SetField(riskrule.FieldParameters, field.TypeJSON, value)
		_node.Parameters = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(riskrule.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Proposer(); ok {
		_spec.SetField(riskrule.FieldProposer, field.TypeString, value)
		_node.Proposer = value
	}
	if value, ok := _c.mutation.RequiredVoters(); ok {
		_spec.SetField(riskrule.FieldRequiredVoters, field.TypeJSON, value)
		_node.RequiredVoters = value
	}
	if value, ok := _c.mutation.Votes(); ok {
		_spec.SetField(riskrule.FieldVotes, field.TypeJSON, value)
		_node.Votes = value
	}
	if value, ok := _c.mutation.EffectiveFrom(); ok {
		_spec.SetField(riskrule.FieldEffectiveFrom, field.TypeTime, value)
		_node.EffectiveFrom = &value
	}
	if value, ok := _c.mutation.SuspendedBy(); ok {
		_spec.SetField(riskrule.FieldSuspendedBy, field.TypeString, value)
		_node.SuspendedBy = value
	}
	if value, ok := _c.mutation.SuspendReason(); ok {
		_spec.SetField(riskrule.FieldSuspendReason, field.TypeString, value)
		_node.SuspendReason = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(riskrule.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.DecisionsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// RiskRuleCreateBulk is the builder for creating many RiskRule entities in bulk.
type RiskRuleCreateBulk struct {
	config
	err      error
	builders []*RiskRuleCreate
}

// Save creates the RiskRule entities in the database.
func (_c *RiskRuleCreateBulk) Save(ctx context.Context) ([]*RiskRule, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RiskRule, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RiskRuleMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *RiskRuleCreateBulk) SaveX(ctx context.Context) []*RiskRule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RiskRuleCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RiskRuleCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
