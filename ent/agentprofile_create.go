// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/NoAme666/aiquant/ent/agentprofile"
)

// AgentProfileCreate is the builder for creating a AgentProfile entity.
type AgentProfileCreate struct {
	config
	mutation *AgentProfileMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *AgentProfileCreate) SetName(v string) *AgentProfileCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDepartment sets the "department" field.
func (_c *AgentProfileCreate) SetDepartment(v string) *AgentProfileCreate {
	_c.mutation.SetDepartment(v)
	return _c
}

// SetTeam sets the "team" field.
func (_c *AgentProfileCreate) SetTeam(v string) *AgentProfileCreate {
	_c.mutation.SetTeam(v)
	return _c
}

// SetNillableTeam sets the "team" field if the given value is not nil.
func (_c *AgentProfileCreate) SetNillableTeam(v *string) *AgentProfileCreate {
	if v != nil {
		_c.SetTeam(*v)
	}
	return _c
}

// SetReportsTo sets the "reports_to" field.
func (_c *AgentProfileCreate) SetReportsTo(v string) *AgentProfileCreate {
	_c.mutation.SetReportsTo(v)
	return _c
}

// SetNillableReportsTo sets the "reports_to" field if the given value is not nil.
func (_c *AgentProfileCreate) SetNillableReportsTo(v *string) *AgentProfileCreate {
	if v != nil {
		_c.SetReportsTo(*v)
	}
	return _c
}

// SetRole sets the "role" field.
func (_c *AgentProfileCreate) SetRole(v string) *AgentProfileCreate {
	_c.mutation.SetRole(v)
	return _c
}

// SetIsLead sets the "is_lead" field.
func (_c *AgentProfileCreate) SetIsLead(v bool) *AgentProfileCreate {
	_c.mutation.SetIsLead(v)
	return _c
}

// SetNillableIsLead sets the "is_lead" field if the given value is not nil.
func (_c *AgentProfileCreate) SetNillableIsLead(v *bool) *AgentProfileCreate {
	if v != nil {
		_c.SetIsLead(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *AgentProfileCreate) SetStatus(v agentprofile.Status) *AgentProfileCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *AgentProfileCreate) SetNillableStatus(v *agentprofile.Status) *AgentProfileCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetLastActive sets the "last_active" field.
func (_c *AgentProfileCreate) SetLastActive(v time.Time) *AgentProfileCreate {
	_c.mutation.SetLastActive(v)
	return _c
}

// SetNillableLastActive sets the "last_active" field if the given value is not nil.
func (_c *AgentProfileCreate) SetNillableLastActive(v *time.Time) *AgentProfileCreate {
	if v != nil {
		_c.SetLastActive(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AgentProfileCreate) SetCreatedAt(v time.Time) *AgentProfileCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AgentProfileCreate) SetNillableCreatedAt(v *time.Time) *AgentProfileCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AgentProfileCreate) SetID(v string) *AgentProfileCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the AgentProfileMutation object of the builder.
func (_c *AgentProfileCreate) Mutation() *AgentProfileMutation {
	return _c.mutation
}

// Save creates the AgentProfile in the database.
func (_c *AgentProfileCreate) Save(ctx context.Context) (*AgentProfile, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentProfileCreate) SaveX(ctx context.Context) *AgentProfile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentProfileCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentProfileCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentProfileCreate) defaults() {
	if _, ok := _c.mutation.IsLead(); !ok {
		v := agentprofile.DefaultIsLead
		_c.mutation.SetIsLead(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := agentprofile.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := agentprofile.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentProfileCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "AgentProfile.name"`)}
	}
	if _, ok := _c.mutation.Department(); !ok {
		return &ValidationError{Name: "department", err: errors.New(`ent: missing required field "AgentProfile.department"`)}
	}
	if _, ok := _c.mutation.Role(); !ok {
		return &ValidationError{Name: "role", err: errors.New(`ent: missing required field "AgentProfile.role"`)}
	}
	if _, ok := _c.mutation.IsLead(); !ok {
		return &ValidationError{Name: "is_lead", err: errors.New(`ent: missing required field "AgentProfile.is_lead"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "AgentProfile.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := agentprofile.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentProfile.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AgentProfile.created_at"`)}
	}
	return nil
}

func (_c *AgentProfileCreate) sqlSave(ctx context.Context) (*AgentProfile, error) {
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
			return nil, fmt.Errorf("unexpected AgentProfile.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AgentProfileCreate) createSpec() (*AgentProfile, *sqlgraph.CreateSpec) {
	var (
		_node = &AgentProfile{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agentprofile.Table, sqlgraph.NewFieldSpec(agentprofile.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(agentprofile.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Department(); ok {
		_spec.SetField(agentprofile.FieldDepartment, field.TypeString, value)
		_node.Department = value
	}
	if value, ok := _c.mutation.Team(); ok {
		_spec.SetField(agentprofile.FieldTeam, field.TypeString, value)
		_node.Team = value
	}
	if value, ok := _c.mutation.ReportsTo(); ok {
		_spec.SetField(agentprofile.FieldReportsTo, field.TypeString, value)
		_node.ReportsTo = value
	}
	if value, ok := _c.mutation.Role(); ok {
		_spec.SetField(agentprofile.FieldRole, field.TypeString, value)
		_node.Role = value
	}
	if value, ok := _c.mutation.IsLead(); ok {
		_spec.SetField(agentprofile.FieldIsLead, field.TypeBool, value)
		_node.IsLead = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(agentprofile.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.LastActive(); ok {
		_spec.SetField(agentprofile.FieldLastActive, field.TypeTime, value)
		_node.LastActive = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(agentprofile.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// AgentProfileCreateBulk is the builder for creating many AgentProfile entities in bulk.
type AgentProfileCreateBulk struct {
	config
	err      error
	builders []*AgentProfileCreate
}

// Save creates the AgentProfile entities in the database.
func (_c *AgentProfileCreateBulk) Save(ctx context.Context) ([]*AgentProfile, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AgentProfile, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentProfileMutation)
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
func (_c *AgentProfileCreateBulk) SaveX(ctx context.Context) []*AgentProfile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentProfileCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentProfileCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
