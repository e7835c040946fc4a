// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/NoAme666/aiquant/ent/approvalitem"
)

// ApprovalItemCreate is the builder for creating a ApprovalItem entity.
type ApprovalItemCreate struct {
	config
	mutation *ApprovalItemMutation
	hooks    []Hook
}

// SetKind sets the "kind" field.
func (_c *ApprovalItemCreate) SetKind(v string) *ApprovalItemCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *ApprovalItemCreate) SetTitle(v string) *ApprovalItemCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *ApprovalItemCreate) SetDescription(v string) *ApprovalItemCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *ApprovalItemCreate) SetNillableDescription(v *string) *ApprovalItemCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetRequester sets the "requester" field.
func (_c *ApprovalItemCreate) SetRequester(v string) *ApprovalItemCreate {
	_c.mutation.SetRequester(v)
	return _c
}

// SetData sets the "data" field.
func (_c *ApprovalItemCreate) SetData(v map[string]interface{}) *ApprovalItemCreate {
	_c.mutation.SetData(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ApprovalItemCreate) SetStatus(v approvalitem.Status) *ApprovalItemCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ApprovalItemCreate) SetNillableStatus(v *approvalitem.Status) *ApprovalItemCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetDecisionBy sets the "decision_by" field.
func (_c *ApprovalItemCreate) SetDecisionBy(v string) *ApprovalItemCreate {
	_c.mutation.SetDecisionBy(v)
	return _c
}

// SetNillableDecisionBy sets the "decision_by" field if the given value is not nil.
func (_c *ApprovalItemCreate) SetNillableDecisionBy(v *string) *ApprovalItemCreate {
	if v != nil {
		_c.SetDecisionBy(*v)
	}
	return _c
}

// SetDecisionReason sets the "decision_reason" field.
func (_c *ApprovalItemCreate) SetDecisionReason(v string) *ApprovalItemCreate {
	_c.mutation.SetDecisionReason(v)
	return _c
}

// SetNillableDecisionReason sets the "decision_reason" field if the given value is not nil.
func (_c *ApprovalItemCreate) SetNillableDecisionReason(v *string) *ApprovalItemCreate {
	if v != nil {
		_c.SetDecisionReason(*v)
	}
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *ApprovalItemCreate) SetExpiresAt(v time.Time) *ApprovalItemCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ApprovalItemCreate) SetCreatedAt(v time.Time) *ApprovalItemCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ApprovalItemCreate) SetNillableCreatedAt(v *time.Time) *ApprovalItemCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ApprovalItemCreate) SetID(v string) *ApprovalItemCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ApprovalItemMutation object of the builder.
func (_c *ApprovalItemCreate) Mutation() *ApprovalItemMutation {
	return _c.mutation
}

// Save creates the ApprovalItem in the database.
func (_c *ApprovalItemCreate) Save(ctx context.Context) (*ApprovalItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ApprovalItemCreate) SaveX(ctx context.Context) *ApprovalItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ApprovalItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ApprovalItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ApprovalItemCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := approvalitem.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := approvalitem.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ApprovalItemCreate) check() error {
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "ApprovalItem.kind"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "ApprovalItem.title"`)}
	}
	if _, ok := _c.mutation.Requester(); !ok {
		return &ValidationError{Name: "requester", err: errors.New(`ent: missing required field "ApprovalItem.requester"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ApprovalItem.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := approvalitem.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ApprovalItem.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExpiresAt(); !ok {
		return &ValidationError{Name: "expires_at", err: errors.New(`ent: missing required field "ApprovalItem.expires_at"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ApprovalItem.created_at"`)}
	}
	return nil
}

func (_c *ApprovalItemCreate) sqlSave(ctx context.Context) (*ApprovalItem, error) {
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
			return nil, fmt.Errorf("unexpected ApprovalItem.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ApprovalItemCreate) createSpec() (*ApprovalItem, *sqlgraph.CreateSpec) {
	var (
		_node = &ApprovalItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(approvalitem.Table, sqlgraph.NewFieldSpec(approvalitem.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(approvalitem.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(approvalitem.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(approvalitem.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Requester(); ok {
		_spec.SetField(approvalitem.FieldRequester, field.TypeString, value)
		_node.Requester = value
	}
	if value, ok := _c.mutation.Data(); ok {
		_spec.SetField(approvalitem.FieldData, field.TypeJSON, value)
		_node.Data = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(approvalitem.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.DecisionBy(); ok {
		_spec.SetField(approvalitem.FieldDecisionBy, field.TypeString, value)
		_node.DecisionBy = value
	}
	if value, ok := _c.mutation.DecisionReason(); ok {
		_spec.SetField(approvalitem.FieldDecisionReason, field.TypeString, value)
		_node.DecisionReason = value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(approvalitem.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(approvalitem.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// ApprovalItemCreateBulk is the builder for creating many ApprovalItem entities in bulk.
type ApprovalItemCreateBulk struct {
	config
	err      error
	builders []*ApprovalItemCreate
}

// Save creates the ApprovalItem entities in the database.
func (_c *ApprovalItemCreateBulk) Save(ctx context.Context) ([]*ApprovalItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ApprovalItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ApprovalItemMutation)
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
func (_c *ApprovalItemCreateBulk) SaveX(ctx context.Context) []*ApprovalItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ApprovalItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ApprovalItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
