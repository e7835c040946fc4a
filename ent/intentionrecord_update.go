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
	"github.com/NoAme666/aiquant/ent/intentionrecord"
	"github.com/NoAme666/aiquant/ent/predicate"
)

// IntentionRecordUpdate is the builder for updating IntentionRecord entities.
type IntentionRecordUpdate struct {
	config
	hooks    []Hook
	mutation *IntentionRecordMutation
}

// Where appends a list predicates to the IntentionRecordUpdate builder.
func (_u *IntentionRecordUpdate) Where(ps ...predicate.IntentionRecord) *IntentionRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAgent sets the "agent" field.
func (_u *IntentionRecordUpdate) SetAgent(v string) *IntentionRecordUpdate {
	_u.mutation.SetAgent(v)
	return _u
}

// SetNillableAgent sets the "agent" field if the given value is not nil.
func (_u *IntentionRecordUpdate) SetNillableAgent(v *string) *IntentionRecordUpdate {
	if v != nil {
		_u.SetAgent(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *IntentionRecordUpdate) SetKind(v string) *IntentionRecordUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *IntentionRecordUpdate) SetNillableKind(v *string) *IntentionRecordUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *IntentionRecordUpdate) SetPriority(v int) *IntentionRecordUpdate {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *IntentionRecordUpdate) SetNillablePriority(v *int) *IntentionRecordUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *IntentionRecordUpdate) AddPriority(v int) *IntentionRecordUpdate {
	_u.mutation.AddPriority(v)
	return _u
}

// SetActionContext sets the "action_context" field.
func (_u *IntentionRecordUpdate) SetActionContext(v map[string]interface{}) *IntentionRecordUpdate {
	_u.mutation.SetActionContext(v)
	return _u
}

// ClearActionContext clears the value of the "action_context" field.
func (_u *IntentionRecordUpdate) ClearActionContext() *IntentionRecordUpdate {
	_u.mutation.ClearActionContext()
	return _u
}

// SetTargetAgents sets the "target_agents" field.
func (_u *IntentionRecordUpdate) SetTargetAgents(v []string) *IntentionRecordUpdate {
	_u.mutation.SetTargetAgents(v)
	return _u
}

// AppendTargetAgents appends value to the "target_agents" field.
func (_u *IntentionRecordUpdate) AppendTargetAgents(v []string) *IntentionRecordUpdate {
	_u.mutation.AppendTargetAgents(v)
	return _u
}

// ClearTargetAgents clears the value of the "target_agents" field.
func (_u *IntentionRecordUpdate) ClearTargetAgents() *IntentionRecordUpdate {
	_u.mutation.ClearTargetAgents()
	return _u
}

// SetScope sets the "scope" field.
func (_u *IntentionRecordUpdate) SetScope(v string) *IntentionRecordUpdate {
	_u.mutation.SetScope(v)
	return _u
}

// SetNillableScope sets the "scope" field if the given value is not nil.
func (_u *IntentionRecordUpdate) SetNillableScope(v *string) *IntentionRecordUpdate {
	if v != nil {
		_u.SetScope(*v)
	}
	return _u
}

// ClearScope clears the value of the "scope" field.
func (_u *IntentionRecordUpdate) ClearScope() *IntentionRecordUpdate {
	_u.mutation.ClearScope()
	return _u
}

// SetStatus sets the "status" field.
func (_u *IntentionRecordUpdate) SetStatus(v intentionrecord.Status) *IntentionRecordUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *IntentionRecordUpdate) SetNillableStatus(v *intentionrecord.Status) *IntentionRecordUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRejectReason sets the "reject_reason" field.
func (_u *IntentionRecordUpdate) SetRejectReason(v string) *IntentionRecordUpdate {
	_u.mutation.SetRejectReason(v)
	return _u
}

// SetNillableRejectReason sets the "reject_reason" field if the given value is not nil.
func (_u *IntentionRecordUpdate) SetNillableRejectReason(v *string) *IntentionRecordUpdate {
	if v != nil {
		_u.SetRejectReason(*v)
	}
	return _u
}

// ClearRejectReason clears the value of the "reject_reason" field.
func (_u *IntentionRecordUpdate) ClearRejectReason() *IntentionRecordUpdate {
	_u.mutation.ClearRejectReason()
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *IntentionRecordUpdate) SetExpiresAt(v time.Time) *IntentionRecordUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *IntentionRecordUpdate) SetNillableExpiresAt(v *time.Time) *IntentionRecordUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// Mutation returns the IntentionRecordMutation object of the builder.
func (_u *IntentionRecordUpdate) Mutation() *IntentionRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *IntentionRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IntentionRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *IntentionRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IntentionRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *IntentionRecordUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := intentionrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "IntentionRecord.status": %w`, err)}
		}
	}
	return nil
}

func (_u *IntentionRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(intentionrecord.Table, intentionrecord.Columns, sqlgraph.NewFieldSpec(intentionrecord.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Agent(); ok {
		_spec.SetField(intentionrecord.FieldAgent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(intentionrecord.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(intentionrecord.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(intentionrecord.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ActionContext(); ok {
		_spec.SetField(intentionrecord.FieldActionContext, field.TypeJSON, value)
	}
	if _u.mutation.ActionContextCleared() {
		_spec.ClearField(intentionrecord.FieldActionContext, field.TypeJSON)
	}
	if value, ok := _u.mutation.TargetAgents(); ok {
		_spec.SetField(intentionrecord.FieldTargetAgents, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTargetAgents(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, intentionrecord.FieldTargetAgents, value)
		})
	}
	if _u.mutation.TargetAgentsCleared() {
		_spec.ClearField(intentionrecord.FieldTargetAgents, field.TypeJSON)
	}
	if value, ok := _u.mutation.Scope(); ok {
		_spec.SetField(intentionrecord.FieldScope, field.TypeString, value)
	}
	if _u.mutation.ScopeCleared() {
		_spec.ClearField(intentionrecord.FieldScope, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(intentionrecord.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RejectReason(); ok {
		_spec.SetField(intentionrecord.FieldRejectReason, field.TypeString, value)
	}
	if _u.mutation.RejectReasonCleared() {
		_spec.ClearField(intentionrecord.FieldRejectReason, field.TypeString)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(intentionrecord.FieldExpiresAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{intentionrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// IntentionRecordUpdateOne is the builder for updating a single IntentionRecord entity.
type IntentionRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *IntentionRecordMutation
}

// SetAgent sets the "agent" field.
func (_u *IntentionRecordUpdateOne) SetAgent(v string) *IntentionRecordUpdateOne {
	_u.mutation.SetAgent(v)
	return _u
}

// SetNillableAgent sets the "agent" field if the given value is not nil.
func (_u *IntentionRecordUpdateOne) SetNillableAgent(v *string) *IntentionRecordUpdateOne {
	if v != nil {
		_u.SetAgent(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *IntentionRecordUpdateOne) SetKind(v string) *IntentionRecordUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *IntentionRecordUpdateOne) SetNillableKind(v *string) *IntentionRecordUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *IntentionRecordUpdateOne) SetPriority(v int) *IntentionRecordUpdateOne {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *IntentionRecordUpdateOne) SetNillablePriority(v *int) *IntentionRecordUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *IntentionRecordUpdateOne) AddPriority(v int) *IntentionRecordUpdateOne {
	_u.mutation.AddPriority(v)
	return _u
}

// SetActionContext sets the "action_context" field.
func (_u *IntentionRecordUpdateOne) SetActionContext(v map[string]interface{}) *IntentionRecordUpdateOne {
	_u.mutation.SetActionContext(v)
	return _u
}

// ClearActionContext clears the value of the "action_context" field.
func (_u *IntentionRecordUpdateOne) ClearActionContext() *IntentionRecordUpdateOne {
	_u.mutation.ClearActionContext()
	return _u
}

// SetTargetAgents sets the "target_agents" field.
func (_u *IntentionRecordUpdateOne) SetTargetAgents(v []string) *IntentionRecordUpdateOne {
	_u.mutation.SetTargetAgents(v)
	return _u
}

// AppendTargetAgents appends value to the "target_agents" field.
func (_u *IntentionRecordUpdateOne) AppendTargetAgents(v []string) *IntentionRecordUpdateOne {
	_u.mutation.AppendTargetAgents(v)
	return _u
}

// ClearTargetAgents clears the value of the "target_agents" field.
func (_u *IntentionRecordUpdateOne) ClearTargetAgents() *IntentionRecordUpdateOne {
	_u.mutation.ClearTargetAgents()
	return _u
}

// SetScope sets the "scope" field.
func (_u *IntentionRecordUpdateOne) SetScope(v string) *IntentionRecordUpdateOne {
	_u.mutation.SetScope(v)
	return _u
}

// SetNillableScope sets the "scope" field if the given value is not nil.
func (_u *IntentionRecordUpdateOne) SetNillableScope(v *string) *IntentionRecordUpdateOne {
	if v != nil {
		_u.SetScope(*v)
	}
	return _u
}

// ClearScope clears the value of the "scope" field.
func (_u *IntentionRecordUpdateOne) ClearScope() *IntentionRecordUpdateOne {
	_u.mutation.ClearScope()
	return _u
}

// SetStatus sets the "status" field.
func (_u *IntentionRecordUpdateOne) SetStatus(v intentionrecord.Status) *IntentionRecordUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *IntentionRecordUpdateOne) SetNillableStatus(v *intentionrecord.Status) *IntentionRecordUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRejectReason sets the "reject_reason" field.
func (_u *IntentionRecordUpdateOne) SetRejectReason(v string) *IntentionRecordUpdateOne {
	_u.mutation.SetRejectReason(v)
	return _u
}

// SetNillableRejectReason sets the "reject_reason" field if the given value is not nil.
func (_u *IntentionRecordUpdateOne) SetNillableRejectReason(v *string) *IntentionRecordUpdateOne {
	if v != nil {
		_u.SetRejectReason(*v)
	}
	return _u
}

// ClearRejectReason clears the value of the "reject_reason" field.
func (_u *IntentionRecordUpdateOne) ClearRejectReason() *IntentionRecordUpdateOne {
	_u.mutation.ClearRejectReason()
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *IntentionRecordUpdateOne) SetExpiresAt(v time.Time) *IntentionRecordUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *IntentionRecordUpdateOne) SetNillableExpiresAt(v *time.Time) *IntentionRecordUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// Mutation returns the IntentionRecordMutation object of the builder.
func (_u *IntentionRecordUpdateOne) Mutation() *IntentionRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the IntentionRecordUpdate builder.
func (_u *IntentionRecordUpdateOne) Where(ps ...predicate.IntentionRecord) *IntentionRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *IntentionRecordUpdateOne) Select(field string, fields ...string) *IntentionRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated IntentionRecord entity.
func (_u *IntentionRecordUpdateOne) Save(ctx context.Context) (*IntentionRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IntentionRecordUpdateOne) SaveX(ctx context.Context) *IntentionRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *IntentionRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IntentionRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *IntentionRecordUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := intentionrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "IntentionRecord.status": %w`, err)}
		}
	}
	return nil
}

func (_u *IntentionRecordUpdateOne) sqlSave(ctx context.Context) (_node *IntentionRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(intentionrecord.Table, intentionrecord.Columns, sqlgraph.NewFieldSpec(intentionrecord.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "IntentionRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, intentionrecord.FieldID)
		for _, f := range fields {
			if !intentionrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != intentionrecord.FieldID {
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
		_spec.SetField(intentionrecord.FieldAgent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(intentionrecord.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(intentionrecord.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(intentionrecord.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ActionContext(); ok {
		_spec.SetField(intentionrecord.FieldActionContext, field.TypeJSON, value)
	}
	if _u.mutation.ActionContextCleared() {
		_spec.ClearField(intentionrecord.FieldActionContext, field.TypeJSON)
	}
	if value, ok := _u.mutation.TargetAgents(); ok {
		_spec.SetField(intentionrecord.FieldTargetAgents, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTargetAgents(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, intentionrecord.FieldTargetAgents, value)
		})
	}
	if _u.mutation.TargetAgentsCleared() {
		_spec.ClearField(intentionrecord.FieldTargetAgents, field.TypeJSON)
	}
	if value, ok := _u.mutation.Scope(); ok {
		_spec.SetField(intentionrecord.FieldScope, field.TypeString, value)
	}
	if _u.mutation.ScopeCleared() {
		_spec.ClearField(intentionrecord.FieldScope, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(intentionrecord.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RejectReason(); ok {
		_spec.SetField(intentionrecord.FieldRejectReason, field.TypeString, value)
	}
	if _u.mutation.RejectReasonCleared() {
		_spec.ClearField(intentionrecord.FieldRejectReason, field.TypeString)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(intentionrecord.FieldExpiresAt, field.TypeTime, value)
	}
	_node = &IntentionRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{intentionrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
