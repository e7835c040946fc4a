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
	"github.com/NoAme666/aiquant/ent/topicrecord"
)

// TopicRecordUpdate is the builder for updating TopicRecord entities.
type TopicRecordUpdate struct {
	config
	hooks    []Hook
	mutation *TopicRecordMutation
}

// Where appends a list predicates to the TopicRecordUpdate builder.
func (_u *TopicRecordUpdate) Where(ps ...predicate.TopicRecord) *TopicRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetKind sets the "kind" field.
func (_u *TopicRecordUpdate) SetKind(v string) *TopicRecordUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *TopicRecordUpdate) SetNillableKind(v *string) *TopicRecordUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *TopicRecordUpdate) SetTitle(v string) *TopicRecordUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *TopicRecordUpdate) SetNillableTitle(v *string) *TopicRecordUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *TopicRecordUpdate) SetDescription(v string) *TopicRecordUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TopicRecordUpdate) SetNillableDescription(v *string) *TopicRecordUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *TopicRecordUpdate) ClearDescription() *TopicRecordUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetPriority sets the "priority" field.
func (_u *TopicRecordUpdate) SetPriority(v int) *TopicRecordUpdate {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *TopicRecordUpdate) SetNillablePriority(v *int) *TopicRecordUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *TopicRecordUpdate) AddPriority(v int) *TopicRecordUpdate {
	_u.mutation.AddPriority(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *TopicRecordUpdate) SetStatus(v topicrecord.Status) *TopicRecordUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TopicRecordUpdate) SetNillableStatus(v *topicrecord.Status) *TopicRecordUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetProposer sets the "proposer" field.
func (_u *TopicRecordUpdate) SetProposer(v string) *TopicRecordUpdate {
	_u.mutation.SetProposer(v)
	return _u
}

// SetNillableProposer sets the "proposer" field if the given value is not nil.
func (_u *TopicRecordUpdate) SetNillableProposer(v *string) *TopicRecordUpdate {
	if v != nil {
		_u.SetProposer(*v)
	}
	return _u
}

// SetSeconds sets the "seconds" field.
func (_u *TopicRecordUpdate) SetSeconds(v []map[string]interface{}) *TopicRecordUpdate {
	_u.mutation.SetSeconds(v)
	return _u
}

// AppendSeconds appends value to the "seconds" field.
func (_u *TopicRecordUpdate) AppendSeconds(v []map[string]interface{}) *TopicRecordUpdate {
	_u.mutation.AppendSeconds(v)
	return _u
}

// ClearSeconds clears the value of the "seconds" field.
func (_u *TopicRecordUpdate) ClearSeconds() *TopicRecordUpdate {
	_u.mutation.ClearSeconds()
	return _u
}

// SetRequiredSeconds sets the "required_seconds" field.
func (_u *TopicRecordUpdate) SetRequiredSeconds(v int) *TopicRecordUpdate {
	_u.mutation.ResetRequiredSeconds()
	_u.mutation.SetRequiredSeconds(v)
	return _u
}

// SetNillableRequiredSeconds sets the "required_seconds" field if the given value is not nil.
func (_u *TopicRecordUpdate) SetNillableRequiredSeconds(v *int) *TopicRecordUpdate {
	if v != nil {
		_u.SetRequiredSeconds(*v)
	}
	return _u
}

// AddRequiredSeconds adds value to the "required_seconds" field.
func (_u *TopicRecordUpdate) AddRequiredSeconds(v int) *TopicRecordUpdate {
	_u.mutation.AddRequiredSeconds(v)
	return _u
}

// SetMeetingID sets the "meeting_id" field.
func (_u *TopicRecordUpdate) SetMeetingID(v string) *TopicRecordUpdate {
	_u.mutation.SetMeetingID(v)
	return _u
}

// SetNillableMeetingID sets the "meeting_id" field if the given value is not nil.
func (_u *TopicRecordUpdate) SetNillableMeetingID(v *string) *TopicRecordUpdate {
	if v != nil {
		_u.SetMeetingID(*v)
	}
	return _u
}

// ClearMeetingID clears the value of the "meeting_id" field.
func (_u *TopicRecordUpdate) ClearMeetingID() *TopicRecordUpdate {
	_u.mutation.ClearMeetingID()
	return _u
}

// SetScheduledAt sets the "scheduled_at" field.
func (_u *TopicRecordUpdate) SetScheduledAt(v time.Time) *TopicRecordUpdate {
	_u.mutation.SetScheduledAt(v)
	return _u
}

// SetNillableScheduledAt sets the "scheduled_at" field if the given value is not nil.
func (_u *TopicRecordUpdate) SetNillableScheduledAt(v *time.Time) *TopicRecordUpdate {
	if v != nil {
		_u.SetScheduledAt(*v)
	}
	return _u
}

// ClearScheduledAt clears the value of the "scheduled_at" field.
func (_u *TopicRecordUpdate) ClearScheduledAt() *TopicRecordUpdate {
	_u.mutation.ClearScheduledAt()
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *TopicRecordUpdate) SetExpiresAt(v time.Time) *TopicRecordUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *TopicRecordUpdate) SetNillableExpiresAt(v *time.Time) *TopicRecordUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// SetResolution sets the "resolution" field.
func (_u *TopicRecordUpdate) SetResolution(v string) *TopicRecordUpdate {
	_u.mutation.SetResolution(v)
	return _u
}

// SetNillableResolution sets the "resolution" field if the given value is not nil.
func (_u *TopicRecordUpdate) SetNillableResolution(v *string) *TopicRecordUpdate {
	if v != nil {
		_u.SetResolution(*v)
	}
	return _u
}

// ClearResolution clears the value of the "resolution" field.
func (_u *TopicRecordUpdate) ClearResolution() *TopicRecordUpdate {
	_u.mutation.ClearResolution()
	return _u
}

// SetActionItems sets the "action_items" field.
func (_u *TopicRecordUpdate) SetActionItems(v []map[string]interface{}) *TopicRecordUpdate {
	_u.mutation.SetActionItems(v)
	return _u
}

// AppendActionItems appends value to the "action_items" field.
func (_u *TopicRecordUpdate) AppendActionItems(v []map[string]interface{}) *TopicRecordUpdate {
	_u.mutation.AppendActionItems(v)
	return _u
}

// ClearActionItems clears the value of the "action_items" field.
func (_u *TopicRecordUpdate) ClearActionItems() *TopicRecordUpdate {
	_u.mutation.ClearActionItems()
	return _u
}

// Mutation returns the TopicRecordMutation object of the builder.
func (_u *TopicRecordUpdate) Mutation() *TopicRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TopicRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TopicRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TopicRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TopicRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TopicRecordUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := topicrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TopicRecord.status": %w`, err)}
		}
	}
	return nil
}

func (_u *TopicRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(topicrecord.Table, topicrecord.Columns, sqlgraph.NewFieldSpec(topicrecord.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(topicrecord.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(topicrecord.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(topicrecord.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(topicrecord.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(topicrecord.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(topicrecord.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(topicrecord.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Proposer(); ok {
		_spec.SetField(topicrecord.FieldProposer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Seconds(); ok {
		_spec.SetField(topicrecord.FieldSeconds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSeconds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, topicrecord.FieldSeconds, value)
		})
	}
	if _u.mutation.SecondsCleared() {
		_spec.ClearField(topicrecord.FieldSeconds, field.TypeJSON)
	}
	if value, ok := _u.mutation.RequiredSeconds(); ok {
		_spec.SetField(topicrecord.FieldRequiredSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRequiredSeconds(); ok {
		_spec.AddField(topicrecord.FieldRequiredSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MeetingID(); ok {
		_spec.SetField(topicrecord.FieldMeetingID, field.TypeString, value)
	}
	if _u.mutation.MeetingIDCleared() {
		_spec.ClearField(topicrecord.FieldMeetingID, field.TypeString)
	}
	if value, ok := _u.mutation.ScheduledAt(); ok {
		_spec.SetField(topicrecord.FieldScheduledAt, field.TypeTime, value)
	}
	if _u.mutation.ScheduledAtCleared() {
		_spec.ClearField(topicrecord.FieldScheduledAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(topicrecord.FieldExpiresAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Resolution(); ok {
		_spec.SetField(topicrecord.FieldResolution, field.TypeString, value)
	}
	if _u.mutation.ResolutionCleared() {
		_spec.ClearField(topicrecord.FieldResolution, field.TypeString)
	}
	if value, ok := _u.mutation.ActionItems(); ok {
		_spec.SetField(topicrecord.FieldActionItems, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedActionItems(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, topicrecord.FieldActionItems, value)
		})
	}
	if _u.mutation.ActionItemsCleared() {
		_spec.ClearField(topicrecord.FieldActionItems, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{topicrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TopicRecordUpdateOne is the builder for updating a single TopicRecord entity.
type TopicRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TopicRecordMutation
}

// SetKind sets the "kind" field.
func (_u *TopicRecordUpdateOne) SetKind(v string) *TopicRecordUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *TopicRecordUpdateOne) SetNillableKind(v *string) *TopicRecordUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *TopicRecordUpdateOne) SetTitle(v string) *TopicRecordUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *TopicRecordUpdateOne) SetNillableTitle(v *string) *TopicRecordUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *TopicRecordUpdateOne) SetDescription(v string) *TopicRecordUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TopicRecordUpdateOne) SetNillableDescription(v *string) *TopicRecordUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *TopicRecordUpdateOne) ClearDescription() *TopicRecordUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetPriority sets the "priority" field.
func (_u *TopicRecordUpdateOne) SetPriority(v int) *TopicRecordUpdateOne {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *TopicRecordUpdateOne) SetNillablePriority(v *int) *TopicRecordUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *TopicRecordUpdateOne) AddPriority(v int) *TopicRecordUpdateOne {
	_u.mutation.AddPriority(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *TopicRecordUpdateOne) SetStatus(v topicrecord.Status) *TopicRecordUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TopicRecordUpdateOne) SetNillableStatus(v *topicrecord.Status) *TopicRecordUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetProposer sets the "proposer" field.
func (_u *TopicRecordUpdateOne) SetProposer(v string) *TopicRecordUpdateOne {
	_u.mutation.SetProposer(v)
	return _u
}

// SetNillableProposer sets the "proposer" field if the given value is not nil.
func (_u *TopicRecordUpdateOne) SetNillableProposer(v *string) *TopicRecordUpdateOne {
	if v != nil {
		_u.SetProposer(*v)
	}
	return _u
}

// SetSeconds sets the "seconds" field.
func (_u *TopicRecordUpdateOne) SetSeconds(v []map[string]interface{}) *TopicRecordUpdateOne {
	_u.mutation.SetSeconds(v)
	return _u
}

// AppendSeconds appends value to the "seconds" field.
func (_u *TopicRecordUpdateOne) AppendSeconds(v []map[string]interface{}) *TopicRecordUpdateOne {
	_u.mutation.AppendSeconds(v)
	return _u
}

// ClearSeconds clears the value of the "seconds" field.
func (_u *TopicRecordUpdateOne) ClearSeconds() *TopicRecordUpdateOne {
	_u.mutation.ClearSeconds()
	return _u
}

// SetRequiredSeconds sets the "required_seconds" field.
func (_u *TopicRecordUpdateOne) SetRequiredSeconds(v int) *TopicRecordUpdateOne {
	_u.mutation.ResetRequiredSeconds()
	_u.mutation.SetRequiredSeconds(v)
	return _u
}

// SetNillableRequiredSeconds sets the "required_seconds" field if the given value is not nil.
func (_u *TopicRecordUpdateOne) SetNillableRequiredSeconds(v *int) *TopicRecordUpdateOne {
	if v != nil {
		_u.SetRequiredSeconds(*v)
	}
	return _u
}

// AddRequiredSeconds adds value to the "required_seconds" field.
func (_u *TopicRecordUpdateOne) AddRequiredSeconds(v int) *TopicRecordUpdateOne {
	_u.mutation.AddRequiredSeconds(v)
	return _u
}

// SetMeetingID sets the "meeting_id" field.
func (_u *TopicRecordUpdateOne) SetMeetingID(v string) *TopicRecordUpdateOne {
	_u.mutation.SetMeetingID(v)
	return _u
}

// SetNillableMeetingID sets the "meeting_id" field if the given value is not nil.
func (_u *TopicRecordUpdateOne) SetNillableMeetingID(v *string) *TopicRecordUpdateOne {
	if v != nil {
		_u.SetMeetingID(*v)
	}
	return _u
}

// ClearMeetingID clears the value of the "meeting_id" field.
func (_u *TopicRecordUpdateOne) ClearMeetingID() *TopicRecordUpdateOne {
	_u.mutation.ClearMeetingID()
	return _u
}

// SetScheduledAt sets the "scheduled_at" field.
func (_u *TopicRecordUpdateOne) SetScheduledAt(v time.Time) *TopicRecordUpdateOne {
	_u.mutation.SetScheduledAt(v)
	return _u
}

// SetNillableScheduledAt sets the "scheduled_at" field if the given value is not nil.
func (_u *TopicRecordUpdateOne) SetNillableScheduledAt(v *time.Time) *TopicRecordUpdateOne {
	if v != nil {
		_u.SetScheduledAt(*v)
	}
	return _u
}

// ClearScheduledAt clears the value of the "scheduled_at" field.
func (_u *TopicRecordUpdateOne) ClearScheduledAt() *TopicRecordUpdateOne {
	_u.mutation.ClearScheduledAt()
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *TopicRecordUpdateOne) SetExpiresAt(v time.Time) *TopicRecordUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *TopicRecordUpdateOne) SetNillableExpiresAt(v *time.Time) *TopicRecordUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// SetResolution sets the "resolution" field.
func (_u *TopicRecordUpdateOne) SetResolution(v string) *TopicRecordUpdateOne {
	_u.mutation.SetResolution(v)
	return _u
}

// SetNillableResolution sets the "resolution" field if the given value is not nil.
func (_u *TopicRecordUpdateOne) SetNillableResolution(v *string) *TopicRecordUpdateOne {
	if v != nil {
		_u.SetResolution(*v)
	}
	return _u
}

// ClearResolution clears the value of the "resolution" field.
func (_u *TopicRecordUpdateOne) ClearResolution() *TopicRecordUpdateOne {
	_u.mutation.ClearResolution()
	return _u
}

// SetActionItems sets the "action_items" field.
func (_u *TopicRecordUpdateOne) SetActionItems(v []map[string]interface{}) *TopicRecordUpdateOne {
	_u.mutation.SetActionItems(v)
	return _u
}

// AppendActionItems appends value to the "action_items" field.
func (_u *TopicRecordUpdateOne) AppendActionItems(v []map[string]interface{}) *TopicRecordUpdateOne {
	_u.mutation.AppendActionItems(v)
	return _u
}

// ClearActionItems clears the value of the "action_items" field.
func (_u *TopicRecordUpdateOne) ClearActionItems() *TopicRecordUpdateOne {
	_u.mutation.ClearActionItems()
	return _u
}

// Mutation returns the TopicRecordMutation object of the builder.
func (_u *TopicRecordUpdateOne) Mutation() *TopicRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the TopicRecordUpdate builder.
func (_u *TopicRecordUpdateOne) Where(ps ...predicate.TopicRecord) *TopicRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TopicRecordUpdateOne) Select(field string, fields ...string) *TopicRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TopicRecord entity.
func (_u *TopicRecordUpdateOne) Save(ctx context.Context) (*TopicRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TopicRecordUpdateOne) SaveX(ctx context.Context) *TopicRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TopicRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TopicRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TopicRecordUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := topicrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TopicRecord.status": %w`, err)}
		}
	}
	return nil
}

func (_u *TopicRecordUpdateOne) sqlSave(ctx context.Context) (_node *TopicRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(topicrecord.Table, topicrecord.Columns, sqlgraph.NewFieldSpec(topicrecord.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TopicRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, topicrecord.FieldID)
		for _, f := range fields {
			if !topicrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != topicrecord.FieldID {
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
		_spec.SetField(topicrecord.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(topicrecord.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(topicrecord.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(topicrecord.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(topicrecord.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(topicrecord.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(topicrecord.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Proposer(); ok {
		_spec.SetField(topicrecord.FieldProposer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Seconds(); ok {
		_spec.SetField(topicrecord.FieldSeconds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSeconds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, topicrecord.FieldSeconds, value)
		})
	}
	if _u.mutation.SecondsCleared() {
		_spec.ClearField(topicrecord.FieldSeconds, field.TypeJSON)
	}
	if value, ok := _u.mutation.RequiredSeconds(); ok {
		_spec.SetField(topicrecord.FieldRequiredSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRequiredSeconds(); ok {
		_spec.AddField(topicrecord.FieldRequiredSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MeetingID(); ok {
		_spec.SetField(topicrecord.FieldMeetingID, field.TypeString, value)
	}
	if _u.mutation.MeetingIDCleared() {
		_spec.ClearField(topicrecord.FieldMeetingID, field.TypeString)
	}
	if value, ok := _u.mutation.ScheduledAt(); ok {
		_spec.SetField(topicrecord.FieldScheduledAt, field.TypeTime, value)
	}
	if _u.mutation.ScheduledAtCleared() {
		_spec.ClearField(topicrecord.FieldScheduledAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(topicrecord.FieldExpiresAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Resolution(); ok {
		_spec.SetField(topicrecord.FieldResolution, field.TypeString, value)
	}
	if _u.mutation.ResolutionCleared() {
		_spec.ClearField(topicrecord.FieldResolution, field.TypeString)
	}
	if value, ok := _u.mutation.ActionItems(); ok {
		_spec.SetField(topicrecord.FieldActionItems, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedActionItems(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, topicrecord.FieldActionItems, value)
		})
	}
	if _u.mutation.ActionItemsCleared() {
		_spec.ClearField(topicrecord.FieldActionItems, field.TypeJSON)
	}
	_node = &TopicRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{topicrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
