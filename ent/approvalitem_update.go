// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/NoAme666/aiquant/ent/approvalitem"
	"github.com/NoAme666/aiquant/ent/predicate"
)

// ApprovalItemUpdate is the builder for updating ApprovalItem entities.
type ApprovalItemUpdate struct {
	config
	hooks    []Hook
	mutation *ApprovalItemMutation
}

// Where appends a list predicates to the ApprovalItemUpdate builder.
func (_u *ApprovalItemUpdate) Where(ps ...predicate.ApprovalItem) *ApprovalItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetKind sets the "kind" field.
func (_u *ApprovalItemUpdate) SetKind(v string) *ApprovalItemUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *ApprovalItemUpdate) SetNillableKind(v *string) *ApprovalItemUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *ApprovalItemUpdate) SetTitle(v string) *ApprovalItemUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ApprovalItemUpdate) SetNillableTitle(v *string) *ApprovalItemUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ApprovalItemUpdate) SetDescription(v string) *ApprovalItemUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ApprovalItemUpdate) SetNillableDescription(v *string) *ApprovalItemUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ApprovalItemUpdate) ClearDescription() *ApprovalItemUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetRequester sets the "requester" field.
func (_u *ApprovalItemUpdate) SetRequester(v string) *ApprovalItemUpdate {
	_u.mutation.SetRequester(v)
	return _u
}

// SetNillableRequester sets the "requester" field if the given value is not nil.
func (_u *ApprovalItemUpdate) SetNillableRequester(v *string) *ApprovalItemUpdate {
	if v != nil {
		_u.SetRequester(*v)
	}
	return _u
}

// SetData sets the "data" field.
func (_u *ApprovalItemUpdate) SetData(v map[string]interface{}) *ApprovalItemUpdate {
	_u.mutation.SetData(v)
	return _u
}

// ClearData clears the value of the "data" field.
func (_u *ApprovalItemUpdate) ClearData() *ApprovalItemUpdate {
	_u.mutation.ClearData()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ApprovalItemUpdate) SetStatus(v approvalitem.Status) *ApprovalItemUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ApprovalItemUpdate) SetNillableStatus(v *approvalitem.Status) *ApprovalItemUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetDecisionBy sets the "decision_by" field.
func (_u *ApprovalItemUpdate) SetDecisionBy(v string) *ApprovalItemUpdate {
	_u.mutation.SetDecisionBy(v)
	return _u
}

// SetNillableDecisionBy sets the "decision_by" field if the given value is not nil.
func (_u *ApprovalItemUpdate) SetNillableDecisionBy(v *string) *ApprovalItemUpdate {
	if v != nil {
		_u.SetDecisionBy(*v)
	}
	return _u
}

// ClearDecisionBy clears the value of the "decision_by" field.
func (_u *ApprovalItemUpdate) ClearDecisionBy() *ApprovalItemUpdate {
	_u.mutation.ClearDecisionBy()
	return _u
}

// SetDecisionReason sets the "decision_reason" field.
func (_u *ApprovalItemUpdate) SetDecisionReason(v string) *ApprovalItemUpdate {
	_u.mutation.SetDecisionReason(v)
	return _u
}

// SetNillableDecisionReason sets the "decision_reason" field if the given value is not nil.
func (_u *ApprovalItemUpdate) SetNillableDecisionReason(v *string) *ApprovalItemUpdate {
	if v != nil {
		_u.SetDecisionReason(*v)
	}
	return _u
}

// ClearDecisionReason clears the value of the "decision_reason" field.
func (_u *ApprovalItemUpdate) ClearDecisionReason() *ApprovalItemUpdate {
	_u.mutation.ClearDecisionReason()
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *ApprovalItemUpdate) SetExpiresAt(v time.Time) *ApprovalItemUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *ApprovalItemUpdate) SetNillableExpiresAt(v *time.Time) *ApprovalItemUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// Mutation returns the ApprovalItemMutation object of the builder.
func (_u *ApprovalItemUpdate) Mutation() *ApprovalItemMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ApprovalItemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ApprovalItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ApprovalItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ApprovalItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ApprovalItemUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := approvalitem.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ApprovalItem.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ApprovalItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(approvalitem.Table, approvalitem.Columns, sqlgraph.NewFieldSpec(approvalitem.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(approvalitem.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(approvalitem.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(approvalitem.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(approvalitem.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Requester(); ok {
		_spec.SetField(approvalitem.FieldRequester, field.TypeString, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(approvalitem.FieldData, field.TypeJSON, value)
	}
	if _u.mutation.DataCleared() {
		_spec.ClearField(approvalitem.FieldData, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(approvalitem.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DecisionBy(); ok {
		_spec.SetField(approvalitem.FieldDecisionBy, field.TypeString, value)
	}
	if _u.mutation.DecisionByCleared() {
		_spec.ClearField(approvalitem.FieldDecisionBy, field.TypeString)
	}
	if value, ok := _u.mutation.DecisionReason(); ok {
		_spec.SetField(approvalitem.FieldDecisionReason, field.TypeString, value)
	}
	if _u.mutation.DecisionReasonCleared() {
		_spec.ClearField(approvalitem.FieldDecisionReason, field.TypeString)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(approvalitem.FieldExpiresAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{approvalitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ApprovalItemUpdateOne is the builder for updating a single ApprovalItem entity.
type ApprovalItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ApprovalItemMutation
}

// SetKind sets the "kind" field.
func (_u *ApprovalItemUpdateOne) SetKind(v string) *ApprovalItemUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *ApprovalItemUpdateOne) SetNillableKind(v *string) *ApprovalItemUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *ApprovalItemUpdateOne) SetTitle(v string) *ApprovalItemUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ApprovalItemUpdateOne) SetNillableTitle(v *string) *ApprovalItemUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ApprovalItemUpdateOne) SetDescription(v string) *ApprovalItemUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ApprovalItemUpdateOne) SetNillableDescription(v *string) *ApprovalItemUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ApprovalItemUpdateOne) ClearDescription() *ApprovalItemUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetRequester sets the "requester" field.
func (_u *ApprovalItemUpdateOne) SetRequester(v string) *ApprovalItemUpdateOne {
	_u.mutation.SetRequester(v)
	return _u
}

// SetNillableRequester sets the "requester" field if the given value is not nil.
func (_u *ApprovalItemUpdateOne) SetNillableRequester(v *string) *ApprovalItemUpdateOne {
	if v != nil {
		_u.SetRequester(*v)
	}
	return _u
}

// SetData sets the "data" field.
func (_u *ApprovalItemUpdateOne) SetData(v map[string]interface{}) *ApprovalItemUpdateOne {
	_u.mutation.SetData(v)
	return _u
}

// ClearData clears the value of the "data" field.
func (_u *ApprovalItemUpdateOne) ClearData() *ApprovalItemUpdateOne {
	_u.mutation.ClearData()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ApprovalItemUpdateOne) SetStatus(v approvalitem.Status) *ApprovalItemUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ApprovalItemUpdateOne) SetNillableStatus(v *approvalitem.Status) *ApprovalItemUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetDecisionBy sets the "decision_by" field.
func (_u *ApprovalItemUpdateOne) SetDecisionBy(v string) *ApprovalItemUpdateOne {
	_u.mutation.SetDecisionBy(v)
	return _u
}

// SetNillableDecisionBy sets the "decision_by" field if the given value is not nil.
func (_u *ApprovalItemUpdateOne) SetNillableDecisionBy(v *string) *ApprovalItemUpdateOne {
	if v != nil {
		_u.SetDecisionBy(*v)
	}
	return _u
}

// ClearDecisionBy clears the value of the "decision_by" field.
func (_u *ApprovalItemUpdateOne) ClearDecisionBy() *ApprovalItemUpdateOne {
	_u.mutation.ClearDecisionBy()
	return _u
}

// SetDecisionReason sets the "decision_reason" field.
func (_u *ApprovalItemUpdateOne) SetDecisionReason(v string) *ApprovalItemUpdateOne {
	_u.mutation.SetDecisionReason(v)
	return _u
}

// SetNillableDecisionReason sets the "decision_reason" field if the given value is not nil.
func (_u *ApprovalItemUpdateOne) SetNillableDecisionReason(v *string) *ApprovalItemUpdateOne {
	if v != nil {
		_u.SetDecisionReason(*v)
	}
	return _u
}

// ClearDecisionReason clears the value of the "decision_reason" field.
func (_u *ApprovalItemUpdateOne) ClearDecisionReason() *ApprovalItemUpdateOne {
	_u.mutation.ClearDecisionReason()
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *ApprovalItemUpdateOne) SetExpiresAt(v time.Time) *ApprovalItemUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *ApprovalItemUpdateOne) SetNillableExpiresAt(v *time.Time) *ApprovalItemUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// Mutation returns the ApprovalItemMutation object of the builder.
func (_u *ApprovalItemUpdateOne) Mutation() *ApprovalItemMutation {
	return _u.mutation
}

// Where appends a list predicates to the ApprovalItemUpdate builder.
func (_u *ApprovalItemUpdateOne) Where(ps ...predicate.ApprovalItem) *ApprovalItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ApprovalItemUpdateOne) Select(field string, fields ...string) *ApprovalItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ApprovalItem entity.
func (_u *ApprovalItemUpdateOne) Save(ctx context.Context) (*ApprovalItem, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ApprovalItemUpdateOne) SaveX(ctx context.Context) *ApprovalItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ApprovalItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ApprovalItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ApprovalItemUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := approvalitem.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ApprovalItem.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ApprovalItemUpdateOne) sqlSave(ctx context.Context) (_node *ApprovalItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(approvalitem.Table, approvalitem.Columns, sqlgraph.NewFieldSpec(approvalitem.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ApprovalItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, approvalitem.FieldID)
		for _, f := range fields {
			if !approvalitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != approvalitem.FieldID {
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
		_spec.SetField(approvalitem.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(approvalitem.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(approvalitem.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(approvalitem.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Requester(); ok {
		_spec.SetField(approvalitem.FieldRequester, field.TypeString, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(approvalitem.FieldData, field.TypeJSON, value)
	}
	if _u.mutation.DataCleared() {
		_spec.ClearField(approvalitem.FieldData, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(approvalitem.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DecisionBy(); ok {
		_spec.SetField(approvalitem.FieldDecisionBy, field.TypeString, value)
	}
	if _u.mutation.DecisionByCleared() {
		_spec.ClearField(approvalitem.FieldDecisionBy, field.TypeString)
	}
	if value, ok := _u.mutation.DecisionReason(); ok {
		_spec.SetField(approvalitem.FieldDecisionReason, field.TypeString, value)
	}
	if _u.mutation.DecisionReasonCleared() {
		_spec.ClearField(approvalitem.FieldDecisionReason, field.TypeString)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(approvalitem.FieldExpiresAt, field.TypeTime, value)
	}
	_node = &ApprovalItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{approvalitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
