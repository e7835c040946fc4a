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
	"github.com/NoAme666/aiquant/ent/agentprofile"
	"github.com/NoAme666/aiquant/ent/predicate"
)

// AgentProfileUpdate is the builder for updating AgentProfile entities.
type AgentProfileUpdate struct {
	config
	hooks    []Hook
	mutation *AgentProfileMutation
}

// Where appends a list predicates to the AgentProfileUpdate builder.
func (_u *AgentProfileUpdate) Where(ps ...predicate.AgentProfile) *AgentProfileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *AgentProfileUpdate) SetName(v string) *AgentProfileUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AgentProfileUpdate) SetNillableName(v *string) *AgentProfileUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDepartment sets the "department" field.
func (_u *AgentProfileUpdate) SetDepartment(v string) *AgentProfileUpdate {
	_u.mutation.SetDepartment(v)
	return _u
}

// SetNillableDepartment sets the "department" field if the given value is not nil.
func (_u *AgentProfileUpdate) SetNillableDepartment(v *string) *AgentProfileUpdate {
	if v != nil {
		_u.SetDepartment(*v)
	}
	return _u
}

// SetTeam sets the "team" field.
func (_u *AgentProfileUpdate) SetTeam(v string) *AgentProfileUpdate {
	_u.mutation.SetTeam(v)
	return _u
}

// SetNillableTeam sets the "team" field if the given value is not nil.
func (_u *AgentProfileUpdate) SetNillableTeam(v *string) *AgentProfileUpdate {
	if v != nil {
		_u.SetTeam(*v)
	}
	return _u
}

// ClearTeam clears the value of the "team" field.
func (_u *AgentProfileUpdate) ClearTeam() *AgentProfileUpdate {
	_u.mutation.ClearTeam()
	return _u
}

// SetReportsTo sets the "reports_to" field.
func (_u *AgentProfileUpdate) SetReportsTo(v string) *AgentProfileUpdate {
	_u.mutation.SetReportsTo(v)
	return _u
}

// SetNillableReportsTo sets the "reports_to" field if the given value is not nil.
func (_u *AgentProfileUpdate) SetNillableReportsTo(v *string) *AgentProfileUpdate {
	if v != nil {
		_u.SetReportsTo(*v)
	}
	return _u
}

// ClearReportsTo clears the value of the "reports_to" field.
func (_u *AgentProfileUpdate) ClearReportsTo() *AgentProfileUpdate {
	_u.mutation.ClearReportsTo()
	return _u
}

// SetRole sets the "role" field.
func (_u *AgentProfileUpdate) SetRole(v string) *AgentProfileUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *AgentProfileUpdate) SetNillableRole(v *string) *AgentProfileUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetIsLead sets the "is_lead" field.
func (_u *AgentProfileUpdate) SetIsLead(v bool) *AgentProfileUpdate {
	_u.mutation.SetIsLead(v)
	return _u
}

// SetNillableIsLead sets the "is_lead" field if the given value is not nil.
func (_u *AgentProfileUpdate) SetNillableIsLead(v *bool) *AgentProfileUpdate {
	if v != nil {
		_u.SetIsLead(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AgentProfileUpdate) SetStatus(v agentprofile.Status) *AgentProfileUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentProfileUpdate) SetNillableStatus(v *agentprofile.Status) *AgentProfileUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetLastActive sets the "last_active" field.
func (_u *AgentProfileUpdate) SetLastActive(v time.Time) *AgentProfileUpdate {
	_u.mutation.SetLastActive(v)
	return _u
}

// SetNillableLastActive sets the "last_active" field if the given value is not nil.
func (_u *AgentProfileUpdate) SetNillableLastActive(v *time.Time) *AgentProfileUpdate {
	if v != nil {
		_u.SetLastActive(*v)
	}
	return _u
}

// ClearLastActive clears the value of the "last_active" field.
func (_u *AgentProfileUpdate) ClearLastActive() *AgentProfileUpdate {
	_u.mutation.ClearLastActive()
	return _u
}

// Mutation returns the AgentProfileMutation object of the builder.
func (_u *AgentProfileUpdate) Mutation() *AgentProfileMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentProfileUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentProfileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentProfileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentProfileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentProfileUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := agentprofile.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentProfile.status": %w`, err)}
		}
	}
	return nil
}

func (_u *AgentProfileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentprofile.Table, agentprofile.Columns, sqlgraph.NewFieldSpec(agentprofile.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(agentprofile.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Department(); ok {
		_spec.SetField(agentprofile.FieldDepartment, field.TypeString, value)
	}
	if value, ok := _u.mutation.Team(); ok {
		_spec.SetField(agentprofile.FieldTeam, field.TypeString, value)
	}
	if _u.mutation.TeamCleared() {
		_spec.ClearField(agentprofile.FieldTeam, field.TypeString)
	}
	if value, ok := _u.mutation.ReportsTo(); ok {
		_spec.SetField(agentprofile.FieldReportsTo, field.TypeString, value)
	}
	if _u.mutation.ReportsToCleared() {
		_spec.ClearField(agentprofile.FieldReportsTo, field.TypeString)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(agentprofile.FieldRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsLead(); ok {
		_spec.SetField(agentprofile.FieldIsLead, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(agentprofile.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LastActive(); ok {
		_spec.SetField(agentprofile.FieldLastActive, field.TypeTime, value)
	}
	if _u.mutation.LastActiveCleared() {
		_spec.ClearField(agentprofile.FieldLastActive, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentProfileUpdateOne is the builder for updating a single AgentProfile entity.
type AgentProfileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentProfileMutation
}

// SetName sets the "name" field.
func (_u *AgentProfileUpdateOne) SetName(v string) *AgentProfileUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AgentProfileUpdateOne) SetNillableName(v *string) *AgentProfileUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDepartment sets the "department" field.
func (_u *AgentProfileUpdateOne) SetDepartment(v string) *AgentProfileUpdateOne {
	_u.mutation.SetDepartment(v)
	return _u
}

// SetNillableDepartment sets the "department" field if the given value is not nil.
func (_u *AgentProfileUpdateOne) SetNillableDepartment(v *string) *AgentProfileUpdateOne {
	if v != nil {
		_u.SetDepartment(*v)
	}
	return _u
}

// SetTeam sets the "team" field.
func (_u *AgentProfileUpdateOne) SetTeam(v string) *AgentProfileUpdateOne {
	_u.mutation.SetTeam(v)
	return _u
}

// SetNillableTeam sets the "team" field if the given value is not nil.
func (_u *AgentProfileUpdateOne) SetNillableTeam(v *string) *AgentProfileUpdateOne {
	if v != nil {
		_u.SetTeam(*v)
	}
	return _u
}

// ClearTeam clears the value of the "team" field.
func (_u *AgentProfileUpdateOne) ClearTeam() *AgentProfileUpdateOne {
	_u.mutation.ClearTeam()
	return _u
}

// SetReportsTo sets the "reports_to" field.
func (_u *AgentProfileUpdateOne) SetReportsTo(v string) *AgentProfileUpdateOne {
	_u.mutation.SetReportsTo(v)
	return _u
}

// SetNillableReportsTo sets the "reports_to" field if the given value is not nil.
func (_u *AgentProfileUpdateOne) SetNillableReportsTo(v *string) *AgentProfileUpdateOne {
	if v != nil {
		_u.SetReportsTo(*v)
	}
	return _u
}

// ClearReportsTo clears the value of the "reports_to" field.
func (_u *AgentProfileUpdateOne) ClearReportsTo() *AgentProfileUpdateOne {
	_u.mutation.ClearReportsTo()
	return _u
}

// SetRole sets the "role" field.
func (_u *AgentProfileUpdateOne) SetRole(v string) *AgentProfileUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *AgentProfileUpdateOne) SetNillableRole(v *string) *AgentProfileUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetIsLead sets the "is_lead" field.
func (_u *AgentProfileUpdateOne) SetIsLead(v bool) *AgentProfileUpdateOne {
	_u.mutation.SetIsLead(v)
	return _u
}

// SetNillableIsLead sets the "is_lead" field if the given value is not nil.
func (_u *AgentProfileUpdateOne) SetNillableIsLead(v *bool) *AgentProfileUpdateOne {
	if v != nil {
		_u.SetIsLead(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AgentProfileUpdateOne) SetStatus(v agentprofile.Status) *AgentProfileUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentProfileUpdateOne) SetNillableStatus(v *agentprofile.Status) *AgentProfileUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetLastActive sets the "last_active" field.
func (_u *AgentProfileUpdateOne) SetLastActive(v time.Time) *AgentProfileUpdateOne {
	_u.mutation.SetLastActive(v)
	return _u
}

// SetNillableLastActive sets the "last_active" field if the given value is not nil.
func (_u *AgentProfileUpdateOne) SetNillableLastActive(v *time.Time) *AgentProfileUpdateOne {
	if v != nil {
		_u.SetLastActive(*v)
	}
	return _u
}

// ClearLastActive clears the value of the "last_active" field.
func (_u *AgentProfileUpdateOne) ClearLastActive() *AgentProfileUpdateOne {
	_u.mutation.ClearLastActive()
	return _u
}

// Mutation returns the AgentProfileMutation object of the builder.
func (_u *AgentProfileUpdateOne) Mutation() *AgentProfileMutation {
	return _u.mutation
}

// Where appends a list predicates to the AgentProfileUpdate builder.
func (_u *AgentProfileUpdateOne) Where(ps ...predicate.AgentProfile) *AgentProfileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentProfileUpdateOne) Select(field string, fields ...string) *AgentProfileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AgentProfile entity.
func (_u *AgentProfileUpdateOne) Save(ctx context.Context) (*AgentProfile, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentProfileUpdateOne) SaveX(ctx context.Context) *AgentProfile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentProfileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentProfileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentProfileUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := agentprofile.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentProfile.status": %w`, err)}
		}
	}
	return nil
}

func (_u *AgentProfileUpdateOne) sqlSave(ctx context.Context) (_node *AgentProfile, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentprofile.Table, agentprofile.Columns, sqlgraph.NewFieldSpec(agentprofile.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AgentProfile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agentprofile.FieldID)
		for _, f := range fields {
			if !agentprofile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agentprofile.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(agentprofile.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Department(); ok {
		_spec.SetField(agentprofile.FieldDepartment, field.TypeString, value)
	}
	if value, ok := _u.mutation.Team(); ok {
		_spec.SetField(agentprofile.FieldTeam, field.TypeString, value)
	}
	if _u.mutation.TeamCleared() {
		_spec.ClearField(agentprofile.FieldTeam, field.TypeString)
	}
	if value, ok := _u.mutation.ReportsTo(); ok {
		_spec.SetField(agentprofile.FieldReportsTo, field.TypeString, value)
	}
	if _u.mutation.ReportsToCleared() {
		_spec.ClearField(agentprofile.FieldReportsTo, field.TypeString)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(agentprofile.FieldRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsLead(); ok {
		_spec.SetField(agentprofile.FieldIsLead, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(agentprofile.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LastActive(); ok {
		_spec.SetField(agentprofile.FieldLastActive, field.TypeTime, value)
	}
	if _u.mutation.LastActiveCleared() {
		_spec.ClearField(agentprofile.FieldLastActive, field.TypeTime)
	}
	_node = &AgentProfile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
