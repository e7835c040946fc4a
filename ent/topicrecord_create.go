// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/NoAme666/aiquant/ent/topicrecord"
)

// TopicRecordCreate is the builder for creating a TopicRecord entity.
type TopicRecordCreate struct {
	config
	mutation *TopicRecordMutation
	hooks    []Hook
}

// SetKind sets the "kind" field.
func (_c *TopicRecordCreate) SetKind(v string) *TopicRecordCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *TopicRecordCreate) SetTitle(v string) *TopicRecordCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *TopicRecordCreate) SetDescription(v string) *TopicRecordCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *TopicRecordCreate) SetNillableDescription(v *string) *TopicRecordCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetPriority sets the "priority" field.
func (_c *TopicRecordCreate) SetPriority(v int) *TopicRecordCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *TopicRecordCreate) SetNillablePriority(v *int) *TopicRecordCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *TopicRecordCreate) SetStatus(v topicrecord.Status) *TopicRecordCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *TopicRecordCreate) SetNillableStatus(v *topicrecord.Status) *TopicRecordCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetProposer sets the "proposer" field.
func (_c *TopicRecordCreate) SetProposer(v string) *TopicRecordCreate {
	_c.mutation.SetProposer(v)
	return _c
}

// SetSeconds sets the "seconds" field.
func (_c *TopicRecordCreate) SetSeconds(v []map[string]interface{}) *TopicRecordCreate {
	_c.mutation.SetSeconds(v)
	return _c
}

// SetRequiredSeconds sets the "required_seconds" field.
func (_c *TopicRecordCreate) SetRequiredSeconds(v int) *TopicRecordCreate {
	_c.mutation.SetRequiredSeconds(v)
	return _c
}

// SetNillableRequiredSeconds sets the "required_seconds" field if the given value is not nil.
func (_c *TopicRecordCreate) SetNillableRequiredSeconds(v *int) *TopicRecordCreate {
	if v != nil {
		_c.SetRequiredSeconds(*v)
	}
	return _c
}

// SetMeetingID sets the "meeting_id" field.
func (_c *TopicRecordCreate) SetMeetingID(v string) *TopicRecordCreate {
	_c.mutation.SetMeetingID(v)
	return _c
}

// SetNillableMeetingID sets the "meeting_id" field if the given value is not nil.
func (_c *TopicRecordCreate) SetNillableMeetingID(v *string) *TopicRecordCreate {
	if v != nil {
		_c.SetMeetingID(*v)
	}
	return _c
}

// SetScheduledAt sets the "scheduled_at" field.
func (_c *TopicRecordCreate) SetScheduledAt(v time.Time) *TopicRecordCreate {
	_c.mutation.SetScheduledAt(v)
	return _c
}

// SetNillableScheduledAt sets the "scheduled_at" field if the given value is not nil.
func (_c *TopicRecordCreate) SetNillableScheduledAt(v *time.Time) *TopicRecordCreate {
	if v != nil {
		_c.SetScheduledAt(*v)
	}
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *TopicRecordCreate) SetExpiresAt(v time.Time) *TopicRecordCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetResolution sets the "resolution" field.
func (_c *TopicRecordCreate) SetResolution(v string) *TopicRecordCreate {
	_c.mutation.SetResolution(v)
	return _c
}

// SetNillableResolution sets the "resolution" field if the given value is not nil.
func (_c *TopicRecordCreate) SetNillableResolution(v *string) *TopicRecordCreate {
	if v != nil {
		_c.SetResolution(*v)
	}
	return _c
}

// SetActionItems sets the "action_items" field.
func (_c *TopicRecordCreate) SetActionItems(v []map[string]interface{}) *TopicRecordCreate {
	_c.mutation.SetActionItems(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TopicRecordCreate) SetCreatedAt(v time.Time) *TopicRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TopicRecordCreate) SetNillableCreatedAt(v *time.Time) *TopicRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TopicRecordCreate) SetID(v string) *TopicRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the TopicRecordMutation object of the builder.
func (_c *TopicRecordCreate) Mutation() *TopicRecordMutation {
	return _c.mutation
}

// Save creates the TopicRecord in the database.
func (_c *TopicRecordCreate) Save(ctx context.Context) (*TopicRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TopicRecordCreate) SaveX(ctx context.Context) *TopicRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TopicRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TopicRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TopicRecordCreate) defaults() {
	if _, ok := _c.mutation.Priority(); !ok {
		v := topicrecord.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := topicrecord.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.RequiredSeconds(); !ok {
		v := topicrecord.DefaultRequiredSeconds
		_c.mutation.SetRequiredSeconds(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := topicrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TopicRecordCreate) check() error {
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "TopicRecord.kind"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "TopicRecord.title"`)}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "TopicRecord.priority"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "TopicRecord.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := topicrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TopicRecord.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Proposer(); !ok {
		return &ValidationError{Name: "proposer", err: errors.New(`ent: missing required field "TopicRecord.proposer"`)}
	}
	if _, ok := _c.mutation.RequiredSeconds(); !ok {
		return &ValidationError{Name: "required_seconds", err: errors.New(`ent: missing required field "TopicRecord.required_seconds"`)}
	}
	if _, ok := _c.mutation.ExpiresAt(); !ok {
		return &ValidationError{Name: "expires_at", err: errors.New(`ent: missing required field "TopicRecord.expires_at"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TopicRecord.created_at"`)}
	}
	return nil
}

func (_c *TopicRecordCreate) sqlSave(ctx context.Context) (*TopicRecord, error) {
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
			return nil, fmt.Errorf("unexpected TopicRecord.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TopicRecordCreate) createSpec() (*TopicRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &TopicRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(topicrecord.Table, sqlgraph.NewFieldSpec(topicrecord.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(topicrecord.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(topicrecord.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(topicrecord.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(topicrecord.FieldPriority, field.TypeInt, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(topicrecord.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Proposer(); ok {
		_spec.SetField(topicrecord.FieldProposer, field.TypeString, value)
		_node.Proposer = value
	}
	if value, ok := _c.mutation.Seconds(); ok {
		_spec.SetField(topicrecord.FieldSeconds, field.TypeJSON, value)
		_node.Seconds = value
	}
	if value, ok := _c.mutation.RequiredSeconds(); ok {
		_spec.SetField(topicrecord.FieldRequiredSeconds, field.TypeInt, value)
		_node.RequiredSeconds = value
	}
	if value, ok := _c.mutation.MeetingID(); ok {
		_spec.SetField(topicrecord.FieldMeetingID, field.TypeString, value)
		_node.MeetingID = value
	}
	if value, ok := _c.mutation.ScheduledAt(); ok {
		_spec.SetField(topicrecord.FieldScheduledAt, field.TypeTime, value)
		_node.ScheduledAt = &value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(topicrecord.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = value
	}
	if value, ok := _c.mutation.Resolution(); ok {
		_spec.SetField(topicrecord.FieldResolution, field.TypeString, value)
		_node.Resolution = value
	}
	if value, ok := _c.mutation.ActionItems(); ok {
		_spec.SetField(topicrecord.FieldActionItems, field.TypeJSON, value)
		_node.ActionItems = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(topicrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// TopicRecordCreateBulk is the builder for creating many TopicRecord entities in bulk.
type TopicRecordCreateBulk struct {
	config
	err      error
	builders []*TopicRecordCreate
}

// Save creates the TopicRecord entities in the database.
func (_c *TopicRecordCreateBulk) Save(ctx context.Context) ([]*TopicRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TopicRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TopicRecordMutation)
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
func (_c *TopicRecordCreateBulk) SaveX(ctx context.Context) []*TopicRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TopicRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TopicRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
