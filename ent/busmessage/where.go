// Code generated by ent, DO NOT EDIT.

package busmessage

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/NoAme666/aiquant/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldContainsFold(FieldID, id))
}

// ChannelKind applies equality check predicate on the "channel_kind" field. It's identical to ChannelKindEQ.
func ChannelKind(v string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldEQ(FieldChannelKind, v))
}

// ChannelID applies equality check predicate on the "channel_id" field. It's identical to ChannelIDEQ.
func ChannelID(v string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldEQ(FieldChannelID, v))
}

// FromAgent applies equality check predicate on the "from_agent" field. It's identical to FromAgentEQ.
func FromAgent(v string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldEQ(FieldFromAgent, v))
}

// ToAgent applies equality check predicate on the "to_agent" field. It's identical to ToAgentEQ.
func ToAgent(v string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldEQ(FieldToAgent, v))
}

// Subject applies equality check predicate on the "subject" field. It's identical to SubjectEQ.
func Subject(v string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldEQ(FieldSubject, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldEQ(FieldContent, v))
}

// Kind applies equality check predicate on the "kind" field. It's identical to KindEQ.
func Kind(v string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldEQ(FieldKind, v))
}

// Priority applies equality check predicate on the "priority" field. It's identical to PriorityEQ.
func Priority(v int) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldEQ(FieldPriority, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldEQ(FieldCreatedAt, v))
}

// ChannelKindEQ applies the EQ predicate on the "channel_kind" field.
func ChannelKindEQ(v string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldEQ(FieldChannelKind, v))
}

// ChannelKindNEQ applies the NEQ predicate on the "channel_kind" field.
func ChannelKindNEQ(v string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldNEQ(FieldChannelKind, v))
}

// ChannelKindIn applies the In predicate on the "channel_kind" field.
func ChannelKindIn(vs ...string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldIn(FieldChannelKind, vs...))
}

// ChannelKindNotIn applies the NotIn predicate on the "channel_kind" field.
func ChannelKindNotIn(vs ...string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldNotIn(FieldChannelKind, vs...))
}

// ChannelKindGT applies the GT predicate on the "channel_kind" field.
func ChannelKindGT(v string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldGT(FieldChannelKind, v))
}

// ChannelKindGTE applies the GTE predicate on the "channel_kind" field.
func ChannelKindGTE(v string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldGTE(FieldChannelKind, v))
}

// ChannelKindLT applies the LT predicate on the "channel_kind" field.
func ChannelKindLT(v string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldLT(FieldChannelKind, v))
}

// ChannelKindLTE applies the LTE predicate on the "channel_kind" field.
func ChannelKindLTE(v string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldLTE(FieldChannelKind, v))
}

// ChannelKindContains applies the Contains predicate on the "channel_kind" field.
func ChannelKindContains(v string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldContains(FieldChannelKind, v))
}

// ChannelKindHasPrefix applies the HasPrefix predicate on the "channel_kind" field.
func ChannelKindHasPrefix(v string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldHasPrefix(FieldChannelKind, v))
}

// ChannelKindHasSuffix applies the HasSuffix predicate on the "channel_kind" field.
func ChannelKindHasSuffix(v string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldHasSuffix(FieldChannelKind, v))
}

// ChannelKindEqualFold applies the EqualFold predicate on the "channel_kind" field.
func ChannelKindEqualFold(v string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldEqualFold(FieldChannelKind, v))
}

// ChannelKindContainsFold applies the ContainsFold predicate on the "channel_kind" field.
func ChannelKindContainsFold(v string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldContainsFold(FieldChannelKind, v))
}

// ChannelIDEQ applies the EQ predicate on the "channel_id" field.
func ChannelIDEQ(v string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldEQ(FieldChannelID, v))
}

// ChannelIDNEQ applies the NEQ predicate on the "channel_id" field.
func ChannelIDNEQ(v string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldNEQ(FieldChannelID, v))
}

// ChannelIDIn applies the In predicate on the "channel_id" field.
func ChannelIDIn(vs ...string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldIn(FieldChannelID, vs...))
}

// ChannelIDNotIn applies the NotIn predicate on the "channel_id" field.
func ChannelIDNotIn(vs ...string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldNotIn(FieldChannelID, vs...))
}

// ChannelIDGT applies the GT predicate on the "channel_id" field.
func ChannelIDGT(v string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldGT(FieldChannelID, v))
}

// ChannelIDGTE applies the GTE predicate on the "channel_id" field.
func ChannelIDGTE(v string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldGTE(FieldChannelID, v))
}

// ChannelIDLT applies the LT predicate on the "channel_id" field.
func ChannelIDLT(v string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldLT(FieldChannelID, v))
}

// ChannelIDLTE applies the LTE predicate on the "channel_id" field.
func ChannelIDLTE(v string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldLTE(FieldChannelID, v))
}

// ChannelIDContains applies the Contains predicate on the "channel_id" field.
func ChannelIDContains(v string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldContains(FieldChannelID, v))
}

// ChannelIDHasPrefix applies the HasPrefix predicate on the "channel_id" field.
func ChannelIDHasPrefix(v string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldHasPrefix(FieldChannelID, v))
}

// ChannelIDHasSuffix applies the HasSuffix predicate on the "channel_id" field.
func ChannelIDHasSuffix(v string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldHasSuffix(FieldChannelID, v))
}

// ChannelIDIsNil applies the IsNil predicate on the "channel_id" field.
func ChannelIDIsNil() predicate.BusMessage {
	return predicate.BusMessage(sql.FieldIsNull(FieldChannelID))
}

// ChannelIDNotNil applies the NotNil predicate on the "channel_id" field.
func ChannelIDNotNil() predicate.BusMessage {
	return predicate.BusMessage(sql.FieldNotNull(FieldChannelID))
}

// ChannelIDEqualFold applies the EqualFold predicate on the "channel_id" field.
func ChannelIDEqualFold(v string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldEqualFold(FieldChannelID, v))
}

// ChannelIDContainsFold applies the ContainsFold predicate on the "channel_id" field.
func ChannelIDContainsFold(v string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldContainsFold(FieldChannelID, v))
}

// FromAgentEQ applies the EQ predicate on the "from_agent" field.
func FromAgentEQ(v string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldEQ(FieldFromAgent, v))
}

// FromAgentNEQ applies the NEQ predicate on the "from_agent" field.
func FromAgentNEQ(v string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldNEQ(FieldFromAgent, v))
}

// FromAgentIn applies the In predicate on the "from_agent" field.
func FromAgentIn(vs ...string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldIn(FieldFromAgent, vs...))
}

// FromAgentNotIn applies the NotIn predicate on the "from_agent" field.
func FromAgentNotIn(vs ...string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldNotIn(FieldFromAgent, vs...))
}

// FromAgentGT applies the GT predicate on the "from_agent" field.
func FromAgentGT(v string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldGT(FieldFromAgent, v))
}

// FromAgentGTE applies the GTE predicate on the "from_agent" field.
func FromAgentGTE(v string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldGTE(FieldFromAgent, v))
}

// FromAgentLT applies the LT predicate on the "from_agent" field.
func FromAgentLT(v string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldLT(FieldFromAgent, v))
}

// FromAgentLTE applies the LTE predicate on the "from_agent" field.
func FromAgentLTE(v string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldLTE(FieldFromAgent, v))
}

// FromAgentContains applies the Contains predicate on the "from_agent" field.
func FromAgentContains(v string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldContains(FieldFromAgent, v))
}

// FromAgentHasPrefix applies the HasPrefix predicate on the "from_agent" field.
func FromAgentHasPrefix(v string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldHasPrefix(FieldFromAgent, v))
}

// FromAgentHasSuffix applies the HasSuffix predicate on the "from_agent" field.
func FromAgentHasSuffix(v string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldHasSuffix(FieldFromAgent, v))
}

// FromAgentEqualFold applies the EqualFold predicate on the "from_agent" field.
func FromAgentEqualFold(v string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldEqualFold(FieldFromAgent, v))
}

// FromAgentContainsFold applies the ContainsFold predicate on the "from_agent" field.
func FromAgentContainsFold(v string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldContainsFold(FieldFromAgent, v))
}

// ToAgentEQ applies the EQ predicate on the "to_agent" field.
func ToAgentEQ(v string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldEQ(FieldToAgent, v))
}

// ToAgentNEQ applies the NEQ predicate on the "to_agent" field.
func ToAgentNEQ(v string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldNEQ(FieldToAgent, v))
}

// ToAgentIn applies the In predicate on the "to_agent" field.
func ToAgentIn(vs ...string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldIn(FieldToAgent, vs...))
}

// ToAgentNotIn applies the NotIn predicate on the "to_agent" field.
func ToAgentNotIn(vs ...string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldNotIn(FieldToAgent, vs...))
}

// ToAgentGT applies the GT predicate on the "to_agent" field.
func ToAgentGT(v string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldGT(FieldToAgent, v))
}

// ToAgentGTE applies the GTE predicate on the "to_agent" field.
func ToAgentGTE(v string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldGTE(FieldToAgent, v))
}

// ToAgentLT applies the LT predicate on the "to_agent" field.
func ToAgentLT(v string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldLT(FieldToAgent, v))
}

// ToAgentLTE applies the LTE predicate on the "to_agent" field.
func ToAgentLTE(v string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldLTE(FieldToAgent, v))
}

// ToAgentContains applies the Contains predicate on the "to_agent" field.
func ToAgentContains(v string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldContains(FieldToAgent, v))
}

// ToAgentHasPrefix applies the HasPrefix predicate on the "to_agent" field.
func ToAgentHasPrefix(v string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldHasPrefix(FieldToAgent, v))
}

// ToAgentHasSuffix applies the HasSuffix predicate on the "to_agent" field.
func ToAgentHasSuffix(v string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldHasSuffix(FieldToAgent, v))
}

// ToAgentIsNil applies the IsNil predicate on the "to_agent" field.
func ToAgentIsNil() predicate.BusMessage {
	return predicate.BusMessage(sql.FieldIsNull(FieldToAgent))
}

// ToAgentNotNil applies the NotNil predicate on the "to_agent" field.
func ToAgentNotNil() predicate.BusMessage {
	return predicate.BusMessage(sql.FieldNotNull(FieldToAgent))
}

// ToAgentEqualFold applies the EqualFold predicate on the "to_agent" field.
func ToAgentEqualFold(v string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldEqualFold(FieldToAgent, v))
}

// ToAgentContainsFold applies the ContainsFold predicate on the "to_agent" field.
func ToAgentContainsFold(v string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldContainsFold(FieldToAgent, v))
}

// SubjectEQ applies the EQ predicate on the "subject" field.
func SubjectEQ(v string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldEQ(FieldSubject, v))
}

// SubjectNEQ applies the NEQ predicate on the "subject" field.
func SubjectNEQ(v string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldNEQ(FieldSubject, v))
}

// SubjectIn applies the In predicate on the "subject" field.
func SubjectIn(vs ...string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldIn(FieldSubject, vs...))
}

// SubjectNotIn applies the NotIn predicate on the "subject" field.
func SubjectNotIn(vs ...string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldNotIn(FieldSubject, vs...))
}

// SubjectGT applies the GT predicate on the "subject" field.
func SubjectGT(v string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldGT(FieldSubject, v))
}

// SubjectGTE applies the GTE predicate on the "subject" field.
func SubjectGTE(v string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldGTE(FieldSubject, v))
}

// SubjectLT applies the LT predicate on the "subject" field.
func SubjectLT(v string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldLT(FieldSubject, v))
}

// SubjectLTE applies the LTE predicate on the "subject" field.
func SubjectLTE(v string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldLTE(FieldSubject, v))
}

// SubjectContains applies the Contains predicate on the "subject" field.
func SubjectContains(v string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldContains(FieldSubject, v))
}

// SubjectHasPrefix applies the HasPrefix predicate on the "subject" field.
func SubjectHasPrefix(v string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldHasPrefix(FieldSubject, v))
}

// SubjectHasSuffix applies the HasSuffix predicate on the "subject" field.
func SubjectHasSuffix(v string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldHasSuffix(FieldSubject, v))
}

// SubjectIsNil applies the IsNil predicate on the "subject" field.
func SubjectIsNil() predicate.BusMessage {
	return predicate.BusMessage(sql.FieldIsNull(FieldSubject))
}

// SubjectNotNil applies the NotNil predicate on the "subject" field.
func SubjectNotNil() predicate.BusMessage {
	return predicate.BusMessage(sql.FieldNotNull(FieldSubject))
}

// SubjectEqualFold applies the EqualFold predicate on the "subject" field.
func SubjectEqualFold(v string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldEqualFold(FieldSubject, v))
}

// SubjectContainsFold applies the ContainsFold predicate on the "subject" field.
func SubjectContainsFold(v string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldContainsFold(FieldSubject, v))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldHasSuffix(FieldContent, v))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldContainsFold(FieldContent, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldNotIn(FieldKind, vs...))
}

// KindGT applies the GT predicate on the "kind" field.
func KindGT(v string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldGT(FieldKind, v))
}

// KindGTE applies the GTE predicate on the "kind" field.
func KindGTE(v string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldGTE(FieldKind, v))
}

// KindLT applies the LT predicate on the "kind" field.
func KindLT(v string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldLT(FieldKind, v))
}

// KindLTE applies the LTE predicate on the "kind" field.
func KindLTE(v string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldLTE(FieldKind, v))
}

// KindContains applies the Contains predicate on the "kind" field.
func KindContains(v string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldContains(FieldKind, v))
}

// KindHasPrefix applies the HasPrefix predicate on the "kind" field.
func KindHasPrefix(v string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldHasPrefix(FieldKind, v))
}

// KindHasSuffix applies the HasSuffix predicate on the "kind" field.
func KindHasSuffix(v string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldHasSuffix(FieldKind, v))
}

// KindEqualFold applies the EqualFold predicate on the "kind" field.
func KindEqualFold(v string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldEqualFold(FieldKind, v))
}

// KindContainsFold applies the ContainsFold predicate on the "kind" field.
func KindContainsFold(v string) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldContainsFold(FieldKind, v))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.BusMessage {
	return predicate.BusMessage(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.BusMessage {
	return predicate.BusMessage(sql.FieldNotNull(FieldMetadata))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v int) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v int) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...int) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...int) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldNotIn(FieldPriority, vs...))
}

// PriorityGT applies the GT predicate on the "priority" field.
func PriorityGT(v int) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldGT(FieldPriority, v))
}

// PriorityGTE applies the GTE predicate on the "priority" field.
func PriorityGTE(v int) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldGTE(FieldPriority, v))
}

// PriorityLT applies the LT predicate on the "priority" field.
func PriorityLT(v int) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldLT(FieldPriority, v))
}

// PriorityLTE applies the LTE predicate on the "priority" field.
func PriorityLTE(v int) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldLTE(FieldPriority, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.BusMessage {
	return predicate.BusMessage(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.BusMessage) predicate.BusMessage {
	return predicate.BusMessage(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.BusMessage) predicate.BusMessage {
	return predicate.BusMessage(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.BusMessage) predicate.BusMessage {
	return predicate.BusMessage(sql.NotPredicates(p))
}
