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

// GovernanceDecisionCreate is the builder for creating a GovernanceDecision entity.
type GovernanceDecisionCreate struct {
	config
	mutation *GovernanceDecisionMutation
	hooks    []Hook
}

// SetRuleID sets the "rule_id" field.
func (_c *GovernanceDecisionCreate) SetRuleID(v string) *GovernanceDecisionCreate {
	_c.mutation.SetRuleID(v)
	return _c
}

// SetParticipants sets the "participants" field.
func (_c *GovernanceDecisionCreate) SetParticipants(v []string) *GovernanceDecisionCreate {
	_c.mutation.SetParticipants(v)
	return _c
}

// SetApprovalRate sets the "approval_rate" field.
func (_c *GovernanceDecisionCreate) SetApprovalRate(v float64) *GovernanceDecisionCreate {
	_c.mutation.SetApprovalRate(v)
	return _c
}

// SetOutcome sets the "outcome" field.
func (_c *GovernanceDecisionCreate) SetOutcome(v governancedecision.Outcome) *GovernanceDecisionCreate {
	_c.mutation.SetOutcome(v)
	return _c
}

// SetDecidedAt sets the "decided_at" field.
func (_c *GovernanceDecisionCreate) SetDecidedAt(v time.Time) *GovernanceDecisionCreate {
	_c.mutation.SetDecidedAt(v)
	return _c
}

// SetNillableDecidedAt sets the "decided_at" field if the given value is not nil.
func (_c *GovernanceDecisionCreate) SetNillableDecidedAt(v *time.Time) *GovernanceDecisionCreate {
	if v != nil {
		_c.SetDecidedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *GovernanceDecisionCreate) SetID(v string) *GovernanceDecisionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetRule sets the "rule" edge to the RiskRule entity.
func (_c *GovernanceDecisionCreate) SetRule(v *RiskRule) *GovernanceDecisionCreate {
	return _c.SetRuleID(v.ID)
}

// Mutation returns the GovernanceDecisionMutation object of the builder.
func (_c *GovernanceDecisionCreate) Mutation() *GovernanceDecisionMutation {
	return _c.mutation
}

// Save creates the GovernanceDecision in the database.
func (_c *GovernanceDecisionCreate) Save(ctx context.Context) (*GovernanceDecision, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GovernanceDecisionCreate) SaveX(ctx context.Context) *GovernanceDecision {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GovernanceDecisionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GovernanceDecisionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GovernanceDecisionCreate) defaults() {
	if _, ok := _c.mutation.DecidedAt(); !ok {
		v := governancedecision.DefaultDecidedAt()
		_c.mutation.SetDecidedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GovernanceDecisionCreate) check() error {
	if _, ok := _c.mutation.RuleID(); !ok {
		return &ValidationError{Name: "rule_id", err: errors.New(`ent: missing required field "GovernanceDecision.rule_id"`)}
	}
	if _, ok := _c.mutation.Participants(); !ok {
		return &ValidationError{Name: "participants", err: errors.New(`ent: missing required field "GovernanceDecision.participants"`)}
	}
	if _, ok := _c.mutation.ApprovalRate(); !ok {
		return &ValidationError{Name: "approval_rate", err: errors.New(`ent: missing required field "GovernanceDecision.approval_rate"`)}
	}
	if _, ok := _c.mutation.Outcome(); !ok {
		return &ValidationError{Name: "outcome", err: errors.New(`ent: missing required field "GovernanceDecision.outcome"`)}
	}
	if v, ok := _c.mutation.Outcome(); ok {
		if err := governancedecision.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "GovernanceDecision.outcome": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DecidedAt(); !ok {
		return &ValidationError{Name: "decided_at", err: errors.New(`ent: missing required field "GovernanceDecision.decided_at"`)}
	}
	if len(_c.mutation.RuleIDs()) == 0 {
		return &ValidationError{Name: "rule", err: errors.New(`ent: missing required edge "GovernanceDecision.rule"`)}
	}
	return nil
}

func (_c *GovernanceDecisionCreate) sqlSave(ctx context.Context) (*GovernanceDecision, error) {
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
			return nil, fmt.Errorf("unexpected GovernanceDecision.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *GovernanceDecisionCreate) createSpec() (*GovernanceDecision, *sqlgraph.CreateSpec) {
	var (
		_node = &GovernanceDecision{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(governancedecision.Table, sqlgraph.NewFieldSpec(governancedecision.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Participants(); ok {
		_spec.SetField(governancedecision.FieldParticipants, field.TypeJSON, value)
		_node.Participants = value
	}
	if value, ok := _c.mutation.ApprovalRate(); ok {
		_spec.SetField(governancedecision.FieldApprovalRate, field.TypeFloat64, value)
		_node.ApprovalRate = value
	}
	if value, ok := _c.mutation.Outcome(); ok {
		_spec.SetField(governancedecision.FieldOutcome, field.TypeEnum, value)
		_node.Outcome = value
	}
	if value, ok := _c.mutation.DecidedAt(); ok {
		_spec.SetField(governancedecision.FieldDecidedAt, field.TypeTime, value)
		_node.DecidedAt = value
	}
	if nodes := _c.mutation.RuleIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   governancedecision.RuleTable,
			Columns: []string{governancedecision.RuleColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(riskrule.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.RuleID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// GovernanceDecisionCreateBulk is the builder for creating many GovernanceDecision entities in bulk.
type GovernanceDecisionCreateBulk struct {
	config
	err      error
	builders []*GovernanceDecisionCreate
}

// Save creates the GovernanceDecision entities in the database.
func (_c *GovernanceDecisionCreateBulk) Save(ctx context.Context) ([]*GovernanceDecision, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GovernanceDecision, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GovernanceDecisionMutation)
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
func (_c *GovernanceDecisionCreateBulk) SaveX(ctx context.Context) []*GovernanceDecision {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GovernanceDecisionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GovernanceDecisionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
