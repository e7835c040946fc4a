// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/NoAme666/aiquant/ent/busmessage"
)

// BusMessageCreate is the builder for creating a BusMessage entity.
type BusMessageCreate struct {
	config
	mutation *BusMessageMutation
	hooks    []Hook
}

// SetChannelKind sets the "channel_kind" field.
func (_c *BusMessageCreate) SetChannelKind(v string) *BusMessageCreate {
	_c.mutation.SetChannelKind(v)
	return _c
}

// SetChannelID sets the "channel_id" field.
func (_c *BusMessageCreate) SetChannelID(v string) *BusMessageCreate {
	_c.mutation.SetChannelID(v)
	return _c
}

// SetNillableChannelID sets the "channel_id" field if the given value is not nil.
func (_c *BusMessageCreate) SetNillableChannelID(v *string) *BusMessageCreate {
	if v != nil {
		_c.SetChannelID(*v)
	}
	return _c
}

// SetFromAgent sets the "from_agent" field.
func (_c *BusMessageCreate) SetFromAgent(v string) *BusMessageCreate {
	_c.mutation.SetFromAgent(v)
	return _c
}

// SetToAgent sets the "to_agent" field.
func (_c *BusMessageCreate) SetToAgent(v string) *BusMessageCreate {
	_c.mutation.SetToAgent(v)
	return _c
}

// SetNillableToAgent sets the "to_agent" field if the given value is not nil.
func (_c *BusMessageCreate) SetNillableToAgent(v *string) *BusMessageCreate {
	if v != nil {
		_c.SetToAgent(*v)
	}
	return _c
}

// SetSubject sets the "subject" field.
func (_c *BusMessageCreate) SetSubject(v string) *BusMessageCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_c *BusMessageCreate) SetNillableSubject(v *string) *BusMessageCreate {
	if v != nil {
		_c.SetSubject(*v)
	}
	return _c
}

// SetContent sets the "content" field.
func (_c *BusMessageCreate) SetContent(v string) *BusMessageCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *BusMessageCreate) SetKind(v string) *BusMessageCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *BusMessageCreate) SetMetadata(v map[string]interface{}) *BusMessageCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetPriority sets the "priority" field.
func (_c *BusMessageCreate) SetPriority(v int) *BusMessageCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *BusMessageCreate) SetNillablePriority(v *int) *BusMessageCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *BusMessageCreate) SetCreatedAt(v time.Time) *BusMessageCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BusMessageCreate) SetNillableCreatedAt(v *time.Time) *BusMessageCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BusMessageCreate) SetID(v string) *BusMessageCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the BusMessageMutation object of the builder.
func (_c *BusMessageCreate) Mutation() *BusMessageMutation {
	return _c.mutation
}

// Save creates the BusMessage in the database.
func (_c *BusMessageCreate) Save(ctx context.Context) (*BusMessage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BusMessageCreate) SaveX(ctx context.Context) *BusMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BusMessageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BusMessageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BusMessageCreate) defaults() {
	if _, ok := _c.mutation.Priority(); !ok {
		v := busmessage.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := busmessage.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BusMessageCreate) check() error {
	if _, ok := _c.mutation.ChannelKind(); !ok {
		return &ValidationError{Name: "channel_kind", err: errors.New(`ent: missing required field "BusMessage.channel_kind"`)}
	}
	if _, ok := _c.mutation.FromAgent(); !ok {
		return &ValidationError{Name: "from_agent", err: errors.New(`ent: missing required field "BusMessage.from_agent"`)}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "BusMessage.content"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "BusMessage.kind"`)}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "BusMessage.priority"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "BusMessage.created_at"`)}
	}
	return nil
}

func (_c *BusMessageCreate) sqlSave(ctx context.Context) (*BusMessage, error) {
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
			return nil, fmt.Errorf("unexpected BusMessage.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BusMessageCreate) createSpec() (*BusMessage, *sqlgraph.CreateSpec) {
	var (
		_node = &BusMessage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(busmessage.Table, sqlgraph.NewFieldSpec(busmessage.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ChannelKind(); ok {
		_spec.SetField(busmessage.FieldChannelKind, field.TypeString, value)
		_node.ChannelKind = value
	}
	if value, ok := _c.mutation.ChannelID(); ok {
		_spec.SetField(busmessage.FieldChannelID, field.TypeString, value)
		_node.ChannelID = value
	}
	if value, ok := _c.mutation.FromAgent(); ok {
		_spec.SetField(busmessage.FieldFromAgent, field.TypeString, value)
		_node.FromAgent = value
	}
	if value, ok := _c.mutation.ToAgent(); ok {
		_spec.SetField(busmessage.FieldToAgent, field.TypeString, value)
		_node.ToAgent = value
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(busmessage.FieldSubject, field.TypeString, value)
		_node.Subject = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(busmessage.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(busmessage.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(busmessage.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(busmessage.FieldPriority, field.TypeInt, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(busmessage.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// BusMessageCreateBulk is the builder for creating many BusMessage entities in bulk.
type BusMessageCreateBulk struct {
	config
	err      error
	builders []*BusMessageCreate
}

// Save creates the BusMessage entities in the database.
func (_c *BusMessageCreateBulk) Save(ctx context.Context) ([]*BusMessage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BusMessage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BusMessageMutation)
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
func (_c *BusMessageCreateBulk) SaveX(ctx context.Context) []*BusMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BusMessageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BusMessageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
