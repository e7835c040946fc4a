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
	"github.com/NoAme666/aiquant/ent/predicate"
	"github.com/NoAme666/aiquant/ent/toolrequest"
)

// ToolRequestUpdate is the builder for updating ToolRequest entities.
type ToolRequestUpdate struct {
	config
	hooks    []Hook
	mutation *ToolRequestMutation
}

// Where appends a list predicates to the ToolRequestUpdate builder.
func (_u *ToolRequestUpdate) Where(ps ...predicate.ToolRequest) *ToolRequestUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetToolName sets the "tool_name" field.
func (_u *ToolRequestUpdate) SetToolName(v string) *ToolRequestUpdate {
	_u.mutation.SetToolName(v)
	return _u
}

// SetNillableToolName sets the "tool_name" field if the given value is not nil.
func (_u *ToolRequestUpdate) SetNillableToolName(v *string) *ToolRequestUpdate {
	if v != nil {
		_u.SetToolName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ToolRequestUpdate) SetDescription(v string) *ToolRequestUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ToolRequestUpdate) SetNillableDescription(v *string) *ToolRequestUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ToolRequestUpdate) ClearDescription() *ToolRequestUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetRequesters sets the "requesters" field.
func (_u *ToolRequestUpdate) SetRequesters(v []string) *ToolRequestUpdate {
	_u.mutation.SetRequesters(v)
	return _u
}

// AppendRequesters appends value to the "requesters" field.
func (_u *ToolRequestUpdate) AppendRequesters(v []string) *ToolRequestUpdate {
	_u.mutation.AppendRequesters(v)
	return _u
}

// SetRequestCount sets the "request_count" field.
func (_u *ToolRequestUpdate) SetRequestCount(v int) *ToolRequestUpdate {
	_u.mutation.ResetRequestCount()
	_u.mutation.SetRequestCount(v)
	return _u
}

// SetNillableRequestCount sets the "request_count" field if the given value is not nil.
func (_u *ToolRequestUpdate) SetNillableRequestCount(v *int) *ToolRequestUpdate {
	if v != nil {
		_u.SetRequestCount(*v)
	}
	return _u
}

// AddRequestCount adds value to the "request_count" field.
func (_u *ToolRequestUpdate) AddRequestCount(v int) *ToolRequestUpdate {
	_u.mutation.AddRequestCount(v)
	return _u
}

// SetUrgency sets the "urgency" field.
func (_u *ToolRequestUpdate) SetUrgency(v float64) *ToolRequestUpdate {
	_u.mutation.ResetUrgency()
	_u.mutation.SetUrgency(v)
	return _u
}

// SetNillableUrgency sets the "urgency" field if the given value is not nil.
func (_u *ToolRequestUpdate) SetNillableUrgency(v *float64) *ToolRequestUpdate {
	if v != nil {
		_u.SetUrgency(*v)
	}
	return _u
}

// AddUrgency adds value to the "urgency" field.
func (_u *ToolRequestUpdate) AddUrgency(v float64) *ToolRequestUpdate {
	_u.mutation.AddUrgency(v)
	return _u
}

// SetFeasibility sets the "feasibility" field.
func (_u *ToolRequestUpdate) SetFeasibility(v float64) *ToolRequestUpdate {
	_u.mutation.ResetFeasibility()
	_u.mutation.SetFeasibility(v)
	return _u
}

// SetNillableFeasibility sets the "feasibility" field if the given value is not nil.
func (_u *ToolRequestUpdate) SetNillableFeasibility(v *float64) *ToolRequestUpdate {
	if v != nil {
		_u.SetFeasibility(*v)
	}
	return _u
}

// AddFeasibility adds value to the "feasibility" field.
func (_u *ToolRequestUpdate) AddFeasibility(v float64) *ToolRequestUpdate {
	_u.mutation.AddFeasibility(v)
	return _u
}

// SetDeployed sets the "deployed" field.
func (_u *ToolRequestUpdate) SetDeployed(v bool) *ToolRequestUpdate {
	_u.mutation.SetDeployed(v)
	return _u
}

// SetNillableDeployed sets the "deployed" field if the given value is not nil.
func (_u *ToolRequestUpdate) SetNillableDeployed(v *bool) *ToolRequestUpdate {
	if v != nil {
		_u.SetDeployed(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ToolRequestUpdate) SetUpdatedAt(v time.Time) *ToolRequestUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ToolRequestMutation object of the builder.
func (_u *ToolRequestUpdate) Mutation() *ToolRequestMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ToolRequestUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ToolRequestUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ToolRequestUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ToolRequestUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ToolRequestUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := toolrequest.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ToolRequestUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(toolrequest.Table, toolrequest.Columns, sqlgraph.NewFieldSpec(toolrequest.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ToolName(); ok {
		_spec.SetField(toolrequest.FieldToolName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(toolrequest.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(toolrequest.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Requesters(); ok {
		_spec.SetField(toolrequest.FieldRequesters, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRequesters(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, toolrequest.FieldRequesters, value)
		})
	}
	if value, ok := _u.mutation.RequestCount(); ok {
		_spec.SetField(toolrequest.FieldRequestCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRequestCount(); ok {
		_spec.AddField(toolrequest.FieldRequestCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Urgency(); ok {
		_spec.SetField(toolrequest.FieldUrgency, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedUrgency(); ok {
		_spec.AddField(toolrequest.FieldUrgency, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Feasibility(); ok {
		_spec.SetField(toolrequest.FieldFeasibility, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFeasibility(); ok {
		_spec.AddField(toolrequest.FieldFeasibility, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Deployed(); ok {
		_spec.SetField(toolrequest.FieldDeployed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(toolrequest.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{toolrequest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ToolRequestUpdateOne is the builder for updating a single ToolRequest entity.
type ToolRequestUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ToolRequestMutation
}

// SetToolName sets the "tool_name" field.
func (_u *ToolRequestUpdateOne) SetToolName(v string) *ToolRequestUpdateOne {
	_u.mutation.SetToolName(v)
	return _u
}

// SetNillableToolName sets the "tool_name" field if the given value is not nil.
func (_u *ToolRequestUpdateOne) SetNillableToolName(v *string) *ToolRequestUpdateOne {
	if v != nil {
		_u.SetToolName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ToolRequestUpdateOne) SetDescription(v string) *ToolRequestUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ToolRequestUpdateOne) SetNillableDescription(v *string) *ToolRequestUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ToolRequestUpdateOne) ClearDescription() *ToolRequestUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetRequesters sets the "requesters" field.
func (_u *ToolRequestUpdateOne) SetRequesters(v []string) *ToolRequestUpdateOne {
	_u.mutation.SetRequesters(v)
	return _u
}

// AppendRequesters appends value to the "requesters" field.
func (_u *ToolRequestUpdateOne) AppendRequesters(v []string) *ToolRequestUpdateOne {
	_u.mutation.AppendRequesters(v)
	return _u
}

// SetRequestCount sets the "request_count" field.
func (_u *ToolRequestUpdateOne) SetRequestCount(v int) *ToolRequestUpdateOne {
	_u.mutation.ResetRequestCount()
	_u.mutation.SetRequestCount(v)
	return _u
}

// SetNillableRequestCount sets the "request_count" field if the given value is not nil.
func (_u *ToolRequestUpdateOne) SetNillableRequestCount(v *int) *ToolRequestUpdateOne {
	if v != nil {
		_u.SetRequestCount(*v)
	}
	return _u
}

// AddRequestCount adds value to the "request_count" field.
func (_u *ToolRequestUpdateOne) AddRequestCount(v int) *ToolRequestUpdateOne {
	_u.mutation.AddRequestCount(v)
	return _u
}

// SetUrgency sets the "urgency" field.
func (_u *ToolRequestUpdateOne) SetUrgency(v float64) *ToolRequestUpdateOne {
	_u.mutation.ResetUrgency()
	_u.mutation.SetUrgency(v)
	return _u
}

// SetNillableUrgency sets the "urgency" field if the given value is not nil.
func (_u *ToolRequestUpdateOne) SetNillableUrgency(v *float64) *ToolRequestUpdateOne {
	if v != nil {
		_u.SetUrgency(*v)
	}
	return _u
}

// AddUrgency adds value to the "urgency" field.
func (_u *ToolRequestUpdateOne) AddUrgency(v float64) *ToolRequestUpdateOne {
	_u.mutation.AddUrgency(v)
	return _u
}

// SetFeasibility sets the "feasibility" field.
func (_u *ToolRequestUpdateOne) SetFeasibility(v float64) *ToolRequestUpdateOne {
	_u.mutation.ResetFeasibility()
	_u.mutation.SetFeasibility(v)
	return _u
}

// SetNillableFeasibility sets the "feasibility" field if the given value is not nil.
func (_u *ToolRequestUpdateOne) SetNillableFeasibility(v *float64) *ToolRequestUpdateOne {
	if v != nil {
		_u.SetFeasibility(*v)
	}
	return _u
}

// AddFeasibility adds value to the "feasibility" field.
func (_u *ToolRequestUpdateOne) AddFeasibility(v float64) *ToolRequestUpdateOne {
	_u.mutation.AddFeasibility(v)
	return _u
}

// SetDeployed sets the "deployed" field.
func (_u *ToolRequestUpdateOne) SetDeployed(v bool) *ToolRequestUpdateOne {
	_u.mutation.SetDeployed(v)
	return _u
}

// SetNillableDeployed sets the "deployed" field if the given value is not nil.
func (_u *ToolRequestUpdateOne) SetNillableDeployed(v *bool) *ToolRequestUpdateOne {
	if v != nil {
		_u.SetDeployed(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ToolRequestUpdateOne) SetUpdatedAt(v time.Time) *ToolRequestUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ToolRequestMutation object of the builder.
func (_u *ToolRequestUpdateOne) Mutation() *ToolRequestMutation {
	return _u.mutation
}

// Where appends a list predicates to the ToolRequestUpdate builder.
func (_u *ToolRequestUpdateOne) Where(ps ...predicate.ToolRequest) *ToolRequestUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ToolRequestUpdateOne) Select(field string, fields ...string) *ToolRequestUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ToolRequest entity.
func (_u *ToolRequestUpdateOne) Save(ctx context.Context) (*ToolRequest, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ToolRequestUpdateOne) SaveX(ctx context.Context) *ToolRequest {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ToolRequestUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ToolRequestUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ToolRequestUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := toolrequest.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ToolRequestUpdateOne) sqlSave(ctx context.Context) (_node *ToolRequest, err error) {
	_spec := sqlgraph.NewUpdateSpec(toolrequest.Table, toolrequest.Columns, sqlgraph.NewFieldSpec(toolrequest.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ToolRequest.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, toolrequest.FieldID)
		for _, f := range fields {
			if !toolrequest.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != toolrequest.FieldID {
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
	if value, ok := _u.mutation.ToolName(); ok {
		_spec.SetField(toolrequest.FieldToolName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(toolrequest.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(toolrequest.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Requesters(); ok {
		_spec.SetField(toolrequest.FieldRequesters, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRequesters(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, toolrequest.FieldRequesters, value)
		})
	}
	if value, ok := _u.mutation.RequestCount(); ok {
		_spec.SetField(toolrequest.FieldRequestCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRequestCount(); ok {
		_spec.AddField(toolrequest.FieldRequestCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Urgency(); ok {
		_spec.SetField(toolrequest.FieldUrgency, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedUrgency(); ok {
		_spec.AddField(toolrequest.FieldUrgency, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Feasibility(); ok {
		_spec.SetField(toolrequest.FieldFeasibility, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFeasibility(); ok {
		_spec.AddField(toolrequest.FieldFeasibility, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Deployed(); ok {
		_spec.SetField(toolrequest.FieldDeployed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(toolrequest.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ToolRequest{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{toolrequest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
