// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/NoAme666/aiquant/ent/busmessage"
	"github.com/NoAme666/aiquant/ent/predicate"
)

// BusMessageUpdate is the builder for updating BusMessage entities.
type BusMessageUpdate struct {
	config
	hooks    []Hook
	mutation *BusMessageMutation
}

// Where appends a list predicates to the BusMessageUpdate builder.
func (_u *BusMessageUpdate) Where(ps ...predicate.BusMessage) *BusMessageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *BusMessageUpdate) SetMetadata(v map[string]interface{}) *BusMessageUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *BusMessageUpdate) ClearMetadata() *BusMessageUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// Mutation returns the BusMessageMutation object of the builder.
func (_u *BusMessageUpdate) Mutation() *BusMessageMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BusMessageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BusMessageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BusMessageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BusMessageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *BusMessageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(busmessage.Table, busmessage.Columns, sqlgraph.NewFieldSpec(busmessage.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.ChannelIDCleared() {
		_spec.ClearField(busmessage.FieldChannelID, field.TypeString)
	}
	if _u.mutation.ToAgentCleared() {
		_spec.ClearField(busmessage.FieldToAgent, field.TypeString)
	}
	if _u.mutation.SubjectCleared() {
		_spec.ClearField(busmessage.FieldSubject, field.TypeString)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(busmessage.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(busmessage.FieldMetadata, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{busmessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BusMessageUpdateOne is the builder for updating a single BusMessage entity.
type BusMessageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BusMessageMutation
}

// SetMetadata sets the "metadata" field.
func (_u *BusMessageUpdateOne) SetMetadata(v map[string]interface{}) *BusMessageUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *BusMessageUpdateOne) ClearMetadata() *BusMessageUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// Mutation returns the BusMessageMutation object of the builder.
func (_u *BusMessageUpdateOne) Mutation() *BusMessageMutation {
	return _u.mutation
}

// Where appends a list predicates to the BusMessageUpdate builder.
func (_u *BusMessageUpdateOne) Where(ps ...predicate.BusMessage) *BusMessageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BusMessageUpdateOne) Select(field string, fields ...string) *BusMessageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BusMessage entity.
func (_u *BusMessageUpdateOne) Save(ctx context.Context) (*BusMessage, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BusMessageUpdateOne) SaveX(ctx context.Context) *BusMessage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BusMessageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BusMessageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *BusMessageUpdateOne) sqlSave(ctx context.Context) (_node *BusMessage, err error) {
	_spec := sqlgraph.NewUpdateSpec(busmessage.Table, busmessage.Columns, sqlgraph.NewFieldSpec(busmessage.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BusMessage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, busmessage.FieldID)
		for _, f := range fields {
			if !busmessage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != busmessage.FieldID {
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
	if _u.mutation.ChannelIDCleared() {
		_spec.ClearField(busmessage.FieldChannelID, field.TypeString)
	}
	if _u.mutation.ToAgentCleared() {
		_spec.ClearField(busmessage.FieldToAgent, field.TypeString)
	}
	if _u.mutation.SubjectCleared() {
		_spec.ClearField(busmessage.FieldSubject, field.TypeString)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(busmessage.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(busmessage.FieldMetadata, field.TypeJSON)
	}
	_node = &BusMessage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{busmessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
