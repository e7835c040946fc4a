// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/NoAme666/aiquant/ent/predicate"
	"github.com/NoAme666/aiquant/ent/toolcall"
)

// ToolCallUpdate is the builder for updating ToolCall entities.
type ToolCallUpdate struct {
	config
	hooks    []Hook
	mutation *ToolCallMutation
}

// Where appends a list predicates to the ToolCallUpdate builder.
func (_u *ToolCallUpdate) Where(ps ...predicate.ToolCall) *ToolCallUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAgent sets the "agent" field.
func (_u *ToolCallUpdate) SetAgent(v string) *ToolCallUpdate {
	_u.mutation.SetAgent(v)
	return _u
}

// SetNillableAgent sets the "agent" field if the given value is not nil.
func (_u *ToolCallUpdate) SetNillableAgent(v *string) *ToolCallUpdate {
	if v != nil {
		_u.SetAgent(*v)
	}
	return _u
}

// SetTool sets the "tool" field.
func (_u *ToolCallUpdate) SetTool(v string) *ToolCallUpdate {
	_u.mutation.SetTool(v)
	return _u
}

// SetNillableTool sets the "tool" field if the given value is not nil.
func (_u *ToolCallUpdate) SetNillableTool(v *string) *ToolCallUpdate {
	if v != nil {
		_u.SetTool(*v)
	}
	return _u
}

// SetArgs sets the "args" field.
func (_u *ToolCallUpdate) SetArgs(v map[string]interface{}) *ToolCallUpdate {
	_u.mutation.SetArgs(v)
	return _u
}

// ClearArgs clears the value of the "args" field.
func (_u *ToolCallUpdate) ClearArgs() *ToolCallUpdate {
	_u.mutation.ClearArgs()
	return _u
}

// SetEstimatedCost sets the "estimated_cost" field.
func (_u *ToolCallUpdate) SetEstimatedCost(v int) *ToolCallUpdate {
	_u.mutation.ResetEstimatedCost()
	_u.mutation.SetEstimatedCost(v)
	return _u
}

// SetNillableEstimatedCost sets the "estimated_cost" field if the given value is not nil.
func (_u *ToolCallUpdate) SetNillableEstimatedCost(v *int) *ToolCallUpdate {
	if v != nil {
		_u.SetEstimatedCost(*v)
	}
	return _u
}

// AddEstimatedCost adds value to the "estimated_cost" field.
func (_u *ToolCallUpdate) AddEstimatedCost(v int) *ToolCallUpdate {
	_u.mutation.AddEstimatedCost(v)
	return _u
}

// SetActualCost sets the "actual_cost" field.
func (_u *ToolCallUpdate) SetActualCost(v int) *ToolCallUpdate {
	_u.mutation.ResetActualCost()
	_u.mutation.SetActualCost(v)
	return _u
}

// SetNillableActualCost sets the "actual_cost" field if the given value is not nil.
func (_u *ToolCallUpdate) SetNillableActualCost(v *int) *ToolCallUpdate {
	if v != nil {
		_u.SetActualCost(*v)
	}
	return _u
}

// AddActualCost adds value to the "actual_cost" field.
func (_u *ToolCallUpdate) AddActualCost(v int) *ToolCallUpdate {
	_u.mutation.AddActualCost(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ToolCallUpdate) SetStatus(v toolcall.Status) *ToolCallUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ToolCallUpdate) SetNillableStatus(v *toolcall.Status) *ToolCallUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ToolCallUpdate) SetErrorMessage(v string) *ToolCallUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ToolCallUpdate) SetNillableErrorMessage(v *string) *ToolCallUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ToolCallUpdate) ClearErrorMessage() *ToolCallUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetDataVersionHash sets the "data_version_hash" field.
func (_u *ToolCallUpdate) SetDataVersionHash(v string) *ToolCallUpdate {
	_u.mutation.SetDataVersionHash(v)
	return _u
}

// SetNillableDataVersionHash sets the "data_version_hash" field if the given value is not nil.
func (_u *ToolCallUpdate) SetNillableDataVersionHash(v *string) *ToolCallUpdate {
	if v != nil {
		_u.SetDataVersionHash(*v)
	}
	return _u
}

// ClearDataVersionHash clears the value of the "data_version_hash" field.
func (_u *ToolCallUpdate) ClearDataVersionHash() *ToolCallUpdate {
	_u.mutation.ClearDataVersionHash()
	return _u
}

// SetExperimentID sets the "experiment_id" field.
func (_u *ToolCallUpdate) SetExperimentID(v string) *ToolCallUpdate {
	_u.mutation.SetExperimentID(v)
	return _u
}

// SetNillableExperimentID sets the "experiment_id" field if the given value is not nil.
func (_u *ToolCallUpdate) SetNillableExperimentID(v *string) *ToolCallUpdate {
	if v != nil {
		_u.SetExperimentID(*v)
	}
	return _u
}

// ClearExperimentID clears the value of the "experiment_id" field.
func (_u *ToolCallUpdate) ClearExperimentID() *ToolCallUpdate {
	_u.mutation.ClearExperimentID()
	return _u
}

// SetMeetingID sets the "meeting_id" field.
func (_u *ToolCallUpdate) SetMeetingID(v string) *ToolCallUpdate {
	_u.mutation.SetMeetingID(v)
	return _u
}

// SetNillableMeetingID sets the "meeting_id" field if the given value is not nil.
func (_u *ToolCallUpdate) SetNillableMeetingID(v *string) *ToolCallUpdate {
	if v != nil {
		_u.SetMeetingID(*v)
	}
	return _u
}

// ClearMeetingID clears the value of the "meeting_id" field.
func (_u *ToolCallUpdate) ClearMeetingID() *ToolCallUpdate {
	_u.mutation.ClearMeetingID()
	return _u
}

// SetCycleID sets the "cycle_id" field.
func (_u *ToolCallUpdate) SetCycleID(v string) *ToolCallUpdate {
	_u.mutation.SetCycleID(v)
	return _u
}

// SetNillableCycleID sets the "cycle_id" field if the given value is not nil.
func (_u *ToolCallUpdate) SetNillableCycleID(v *string) *ToolCallUpdate {
	if v != nil {
		_u.SetCycleID(*v)
	}
	return _u
}

// ClearCycleID clears the value of the "cycle_id" field.
func (_u *ToolCallUpdate) ClearCycleID() *ToolCallUpdate {
	_u.mutation.ClearCycleID()
	return _u
}

// Mutation returns the ToolCallMutation object of the builder.
func (_u *ToolCallUpdate) Mutation() *ToolCallMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ToolCallUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ToolCallUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ToolCallUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ToolCallUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ToolCallUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := toolcall.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ToolCall.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ToolCallUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(toolcall.Table, toolcall.Columns, sqlgraph.NewFieldSpec(toolcall.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Agent(); ok {
		_spec.SetField(toolcall.FieldAgent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tool(); ok {
		_spec.SetField(toolcall.FieldTool, field.TypeString, value)
	}
	if value, ok := _u.mutation.Args(); ok {
		_spec.SetField(toolcall.FieldArgs, field.TypeJSON, value)
	}
	if _u.mutation.ArgsCleared() {
		_spec.ClearField(toolcall.FieldArgs, field.TypeJSON)
	}
	if value, ok := _u.mutation.EstimatedCost(); ok {
		_spec.SetField(toolcall.FieldEstimatedCost, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEstimatedCost(); ok {
		_spec.AddField(toolcall.FieldEstimatedCost, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ActualCost(); ok {
		_spec.SetField(toolcall.FieldActualCost, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedActualCost(); ok {
		_spec.AddField(toolcall.FieldActualCost, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(toolcall.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(toolcall.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(toolcall.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.DataVersionHash(); ok {
		_spec.SetField(toolcall.FieldDataVersionHash, field.TypeString, value)
	}
	if _u.mutation.DataVersionHashCleared() {
		_spec.ClearField(toolcall.FieldDataVersionHash, field.TypeString)
	}
	if value, ok := _u.mutation.ExperimentID(); ok {
		_spec.SetField(toolcall.FieldExperimentID, field.TypeString, value)
	}
	if _u.mutation.ExperimentIDCleared() {
		_spec.ClearField(toolcall.FieldExperimentID, field.TypeString)
	}
	if value, ok := _u.mutation.MeetingID(); ok {
		_spec.SetField(toolcall.FieldMeetingID, field.TypeString, value)
	}
	if _u.mutation.MeetingIDCleared() {
		_spec.ClearField(toolcall.FieldMeetingID, field.TypeString)
	}
	if value, ok := _u.mutation.CycleID(); ok {
		_spec.SetField(toolcall.FieldCycleID, field.TypeString, value)
	}
	if _u.mutation.CycleIDCleared() {
		_spec.ClearField(toolcall.FieldCycleID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{toolcall.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ToolCallUpdateOne is the builder for updating a single ToolCall entity.
type ToolCallUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ToolCallMutation
}

// SetAgent sets the "agent" field.
func (_u *ToolCallUpdateOne) SetAgent(v string) *ToolCallUpdateOne {
	_u.mutation.SetAgent(v)
	return _u
}

// SetNillableAgent sets the "agent" field if the given value is not nil.
func (_u *ToolCallUpdateOne) SetNillableAgent(v *string) *ToolCallUpdateOne {
	if v != nil {
		_u.SetAgent(*v)
	}
	return _u
}

// SetTool sets the "tool" field.
func (_u *ToolCallUpdateOne) SetTool(v string) *ToolCallUpdateOne {
	_u.mutation.SetTool(v)
	return _u
}

// SetNillableTool sets the "tool" field if the given value is not nil.
func (_u *ToolCallUpdateOne) SetNillableTool(v *string) *ToolCallUpdateOne {
	if v != nil {
		_u.SetTool(*v)
	}
	return _u
}

// SetArgs sets the "args" field.
func (_u *ToolCallUpdateOne) SetArgs(v map[string]interface{}) *ToolCallUpdateOne {
	_u.mutation.SetArgs(v)
	return _u
}

// ClearArgs clears the value of the "args" field.
func (_u *ToolCallUpdateOne) ClearArgs() *ToolCallUpdateOne {
	_u.mutation.ClearArgs()
	return _u
}

// SetEstimatedCost sets the "estimated_cost" field.
func (_u *ToolCallUpdateOne) SetEstimatedCost(v int) *ToolCallUpdateOne {
	_u.mutation.ResetEstimatedCost()
	_u.mutation.SetEstimatedCost(v)
	return _u
}

// SetNillableEstimatedCost sets the "estimated_cost" field if the given value is not nil.
func (_u *ToolCallUpdateOne) SetNillableEstimatedCost(v *int) *ToolCallUpdateOne {
	if v != nil {
		_u.SetEstimatedCost(*v)
	}
	return _u
}

// AddEstimatedCost adds value to the "estimated_cost" field.
func (_u *ToolCallUpdateOne) AddEstimatedCost(v int) *ToolCallUpdateOne {
	_u.mutation.AddEstimatedCost(v)
	return _u
}

// SetActualCost sets the "actual_cost" field.
func (_u *ToolCallUpdateOne) SetActualCost(v int) *ToolCallUpdateOne {
	_u.mutation.ResetActualCost()
	_u.mutation.SetActualCost(v)
	return _u
}

// SetNillableActualCost sets the "actual_cost" field if the given value is not nil.
func (_u *ToolCallUpdateOne) SetNillableActualCost(v *int) *ToolCallUpdateOne {
	if v != nil {
		_u.SetActualCost(*v)
	}
	return _u
}

// AddActualCost adds value to the "actual_cost" field.
func (_u *ToolCallUpdateOne) AddActualCost(v int) *ToolCallUpdateOne {
	_u.mutation.AddActualCost(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ToolCallUpdateOne) SetStatus(v toolcall.Status) *ToolCallUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ToolCallUpdateOne) SetNillableStatus(v *toolcall.Status) *ToolCallUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ToolCallUpdateOne) SetErrorMessage(v string) *ToolCallUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ToolCallUpdateOne) SetNillableErrorMessage(v *string) *ToolCallUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ToolCallUpdateOne) ClearErrorMessage() *ToolCallUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetDataVersionHash sets the "data_version_hash" field.
func (_u *ToolCallUpdateOne) SetDataVersionHash(v string) *ToolCallUpdateOne {
	_u.mutation.SetDataVersionHash(v)
	return _u
}

// SetNillableDataVersionHash sets the "data_version_hash" field if the given value is not nil.
func (_u *ToolCallUpdateOne) SetNillableDataVersionHash(v *string) *ToolCallUpdateOne {
	if v != nil {
		_u.SetDataVersionHash(*v)
	}
	return _u
}

// ClearDataVersionHash clears the value of the "data_version_hash" field.
func (_u *ToolCallUpdateOne) ClearDataVersionHash() *ToolCallUpdateOne {
	_u.mutation.ClearDataVersionHash()
	return _u
}

// SetExperimentID sets the "experiment_id" field.
func (_u *ToolCallUpdateOne) SetExperimentID(v string) *ToolCallUpdateOne {
	_u.mutation.SetExperimentID(v)
	return _u
}

// SetNillableExperimentID sets the "experiment_id" field if the given value is not nil.
func (_u *ToolCallUpdateOne) SetNillableExperimentID(v *string) *ToolCallUpdateOne {
	if v != nil {
		_u.SetExperimentID(*v)
	}
	return _u
}

// ClearExperimentID clears the value of the "experiment_id" field.
func (_u *ToolCallUpdateOne) ClearExperimentID() *ToolCallUpdateOne {
	_u.mutation.ClearExperimentID()
	return _u
}

// SetMeetingID sets the "meeting_id" field.
func (_u *ToolCallUpdateOne) SetMeetingID(v string) *ToolCallUpdateOne {
	_u.mutation.SetMeetingID(v)
	return _u
}

// SetNillableMeetingID sets the "meeting_id" field if the given value is not nil.
func (_u *ToolCallUpdateOne) SetNillableMeetingID(v *string) *ToolCallUpdateOne {
	if v != nil {
		_u.SetMeetingID(*v)
	}
	return _u
}

// ClearMeetingID clears the value of the "meeting_id" field.
func (_u *ToolCallUpdateOne) ClearMeetingID() *ToolCallUpdateOne {
	_u.mutation.ClearMeetingID()
	return _u
}

// SetCycleID sets the "cycle_id" field.
func (_u *ToolCallUpdateOne) SetCycleID(v string) *ToolCallUpdateOne {
	_u.mutation.SetCycleID(v)
	return _u
}

// SetNillableCycleID sets the "cycle_id" field if the given value is not nil.
func (_u *ToolCallUpdateOne) SetNillableCycleID(v *string) *ToolCallUpdateOne {
	if v != nil {
		_u.SetCycleID(*v)
	}
	return _u
}

// ClearCycleID clears the value of the "cycle_id" field.
func (_u *ToolCallUpdateOne) ClearCycleID() *ToolCallUpdateOne {
	_u.mutation.ClearCycleID()
	return _u
}

// Mutation returns the ToolCallMutation object of the builder.
func (_u *ToolCallUpdateOne) Mutation() *ToolCallMutation {
	return _u.mutation
}

// Where appends a list predicates to the ToolCallUpdate builder.
func (_u *ToolCallUpdateOne) Where(ps ...predicate.ToolCall) *ToolCallUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ToolCallUpdateOne) Select(field string, fields ...string) *ToolCallUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ToolCall entity.
func (_u *ToolCallUpdateOne) Save(ctx context.Context) (*ToolCall, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ToolCallUpdateOne) SaveX(ctx context.Context) *ToolCall {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ToolCallUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ToolCallUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ToolCallUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := toolcall.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ToolCall.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ToolCallUpdateOne) sqlSave(ctx context.Context) (_node *ToolCall, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(toolcall.Table, toolcall.Columns, sqlgraph.NewFieldSpec(toolcall.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ToolCall.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, toolcall.FieldID)
		for _, f := range fields {
			if !toolcall.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != toolcall.FieldID {
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
	if value, ok := _u.mutation.Agent(); ok {
		_spec.SetField(toolcall.FieldAgent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tool(); ok {
		_spec.SetField(toolcall.FieldTool, field.TypeString, value)
	}
	if value, ok := _u.mutation.Args(); ok {
		_spec.SetField(toolcall.FieldArgs, field.TypeJSON, value)
	}
	if _u.mutation.ArgsCleared() {
		_spec.ClearField(toolcall.FieldArgs, field.TypeJSON)
	}
	if value, ok := _u.mutation.EstimatedCost(); ok {
		_spec.SetField(toolcall.FieldEstimatedCost, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEstimatedCost(); ok {
		_spec.AddField(toolcall.FieldEstimatedCost, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ActualCost(); ok {
		_spec.SetField(toolcall.FieldActualCost, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedActualCost(); ok {
		_spec.AddField(toolcall.FieldActualCost, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(toolcall.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(toolcall.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(toolcall.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.DataVersionHash(); ok {
		_spec.SetField(toolcall.FieldDataVersionHash, field.TypeString, value)
	}
	if _u.mutation.DataVersionHashCleared() {
		_spec.ClearField(toolcall.FieldDataVersionHash, field.TypeString)
	}
	if value, ok := _u.mutation.ExperimentID(); ok {
		_spec.SetField(toolcall.FieldExperimentID, field.TypeString, value)
	}
	if _u.mutation.ExperimentIDCleared() {
		_spec.ClearField(toolcall.FieldExperimentID, field.TypeString)
	}
	if value, ok := _u.mutation.MeetingID(); ok {
		_spec.SetField(toolcall.FieldMeetingID, field.TypeString, value)
	}
	if _u.mutation.MeetingIDCleared() {
		_spec.ClearField(toolcall.FieldMeetingID, field.TypeString)
	}
	if value, ok := _u.mutation.CycleID(); ok {
		_spec.SetField(toolcall.FieldCycleID, field.TypeString, value)
	}
	if _u.mutation.CycleIDCleared() {
		_spec.ClearField(toolcall.FieldCycleID, field.TypeString)
	}
	_node = &ToolCall{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{toolcall.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
