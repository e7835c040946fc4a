// Code generated by ent, DO NOT EDIT.

package topicrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/NoAme666/aiquant/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldContainsFold(FieldID, id))
}

// Kind applies equality check predicate on the "kind" field. It's identical to KindEQ.
func Kind(v string) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldEQ(FieldKind, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldEQ(FieldTitle, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldEQ(FieldDescription, v))
}

// Priority applies equality check predicate on the "priority" field. It's identical to PriorityEQ.
func Priority(v int) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldEQ(FieldPriority, v))
}

// Proposer applies equality check predicate on the "proposer" field. It's identical to ProposerEQ.
func Proposer(v string) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldEQ(FieldProposer, v))
}

// RequiredSeconds applies equality check predicate on the "required_seconds" field. It's identical to RequiredSecondsEQ.
func RequiredSeconds(v int) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldEQ(FieldRequiredSeconds, v))
}

// MeetingID applies equality check predicate on the "meeting_id" field. It's identical to MeetingIDEQ.
func MeetingID(v string) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldEQ(FieldMeetingID, v))
}

// ScheduledAt applies equality check predicate on the "scheduled_at" field. It's identical to ScheduledAtEQ.
func ScheduledAt(v time.Time) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldEQ(FieldScheduledAt, v))
}

// ExpiresAt applies equality check predicate on the "expires_at" field. It's identical to ExpiresAtEQ.
func ExpiresAt(v time.Time) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldEQ(FieldExpiresAt, v))
}

// Resolution applies equality check predicate on the "resolution" field. It's identical to ResolutionEQ.
func Resolution(v string) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldEQ(FieldResolution, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v string) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v string) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...string) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...string) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldNotIn(FieldKind, vs...))
}

// KindGT applies the GT predicate on the "kind" field.
func KindGT(v string) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldGT(FieldKind, v))
}

// KindGTE applies the GTE predicate on the "kind" field.
func KindGTE(v string) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldGTE(FieldKind, v))
}

// KindLT applies the LT predicate on the "kind" field.
func KindLT(v string) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldLT(FieldKind, v))
}

// KindLTE applies the LTE predicate on the "kind" field.
func KindLTE(v string) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldLTE(FieldKind, v))
}

// KindContains applies the Contains predicate on the "kind" field.
func KindContains(v string) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldContains(FieldKind, v))
}

// KindHasPrefix applies the HasPrefix predicate on the "kind" field.
func KindHasPrefix(v string) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldHasPrefix(FieldKind, v))
}

// KindHasSuffix applies the HasSuffix predicate on the "kind" field.
func KindHasSuffix(v string) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldHasSuffix(FieldKind, v))
}

// KindEqualFold applies the EqualFold predicate on the "kind" field.
func KindEqualFold(v string) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldEqualFold(FieldKind, v))
}

// KindContainsFold applies the ContainsFold predicate on the "kind" field.
func KindContainsFold(v string) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldContainsFold(FieldKind, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldContainsFold(FieldTitle, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldContainsFold(FieldDescription, v))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v int) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v int) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...int) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...int) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldNotIn(FieldPriority, vs...))
}

// PriorityGT applies the GT predicate on the "priority" field.
func PriorityGT(v int) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldGT(FieldPriority, v))
}

// PriorityGTE applies the GTE predicate on the "priority" field.
func PriorityGTE(v int) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldGTE(FieldPriority, v))
}

// PriorityLT applies the LT predicate on the "priority" field.
func PriorityLT(v int) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldLT(FieldPriority, v))
}

// PriorityLTE applies the LTE predicate on the "priority" field.
func PriorityLTE(v int) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldLTE(FieldPriority, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldNotIn(FieldStatus, vs...))
}

// ProposerEQ applies the EQ predicate on the "proposer" field.
func ProposerEQ(v string) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldEQ(FieldProposer, v))
}

// ProposerNEQ applies the NEQ predicate on the "proposer" field.
func ProposerNEQ(v string) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldNEQ(FieldProposer, v))
}

// ProposerIn applies the In predicate on the "proposer" field.
func ProposerIn(vs ...string) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldIn(FieldProposer, vs...))
}

// ProposerNotIn applies the NotIn predicate on the "proposer" field.
func ProposerNotIn(vs ...string) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldNotIn(FieldProposer, vs...))
}

// ProposerGT applies the GT predicate on the "proposer" field.
func ProposerGT(v string) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldGT(FieldProposer, v))
}

// ProposerGTE applies the GTE predicate on the "proposer" field.
func ProposerGTE(v string) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldGTE(FieldProposer, v))
}

// ProposerLT applies the LT predicate on the "proposer" field.
func ProposerLT(v string) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldLT(FieldProposer, v))
}

// ProposerLTE applies the LTE predicate on the "proposer" field.
func ProposerLTE(v string) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldLTE(FieldProposer, v))
}

// ProposerContains applies the Contains predicate on the "proposer" field.
func ProposerContains(v string) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldContains(FieldProposer, v))
}

// ProposerHasPrefix applies the HasPrefix predicate on the "proposer" field.
func ProposerHasPrefix(v string) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldHasPrefix(FieldProposer, v))
}

// ProposerHasSuffix applies the HasSuffix predicate on the "proposer" field.
func ProposerHasSuffix(v string) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldHasSuffix(FieldProposer, v))
}

// ProposerEqualFold applies the EqualFold predicate on the "proposer" field.
func ProposerEqualFold(v string) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldEqualFold(FieldProposer, v))
}

// ProposerContainsFold applies the ContainsFold predicate on the "proposer" field.
func ProposerContainsFold(v string) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldContainsFold(FieldProposer, v))
}

// SecondsIsNil applies the IsNil predicate on the "seconds" field.
func SecondsIsNil() predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldIsNull(FieldSeconds))
}

// SecondsNotNil applies the NotNil predicate on the "seconds" field.
func SecondsNotNil() predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldNotNull(FieldSeconds))
}

// RequiredSecondsEQ applies the EQ predicate on the "required_seconds" field.
func RequiredSecondsEQ(v int) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldEQ(FieldRequiredSeconds, v))
}

// RequiredSecondsNEQ applies the NEQ predicate on the "required_seconds" field.
func RequiredSecondsNEQ(v int) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldNEQ(FieldRequiredSeconds, v))
}

// RequiredSecondsIn applies the In predicate on the "required_seconds" field.
func RequiredSecondsIn(vs ...int) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldIn(FieldRequiredSeconds, vs...))
}

// RequiredSecondsNotIn applies the NotIn predicate on the "required_seconds" field.
func RequiredSecondsNotIn(vs ...int) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldNotIn(FieldRequiredSeconds, vs...))
}

// RequiredSecondsGT applies the GT predicate on the "required_seconds" field.
func RequiredSecondsGT(v int) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldGT(FieldRequiredSeconds, v))
}

// RequiredSecondsGTE applies the GTE predicate on the "required_seconds" field.
func RequiredSecondsGTE(v int) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldGTE(FieldRequiredSeconds, v))
}

// RequiredSecondsLT applies the LT predicate on the "required_seconds" field.
func RequiredSecondsLT(v int) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldLT(FieldRequiredSeconds, v))
}

// RequiredSecondsLTE applies the LTE predicate on the "required_seconds" field.
func RequiredSecondsLTE(v int) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldLTE(FieldRequiredSeconds, v))
}

// MeetingIDEQ applies the EQ predicate on the "meeting_id" field.
func MeetingIDEQ(v string) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldEQ(FieldMeetingID, v))
}

// MeetingIDNEQ applies the NEQ predicate on the "meeting_id" field.
func MeetingIDNEQ(v string) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldNEQ(FieldMeetingID, v))
}

// MeetingIDIn applies the In predicate on the "meeting_id" field.
func MeetingIDIn(vs ...string) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldIn(FieldMeetingID, vs...))
}

// MeetingIDNotIn applies the NotIn predicate on the "meeting_id" field.
func MeetingIDNotIn(vs ...string) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldNotIn(FieldMeetingID, vs...))
}

// MeetingIDGT applies the GT predicate on the "meeting_id" field.
func MeetingIDGT(v string) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldGT(FieldMeetingID, v))
}

// MeetingIDGTE applies the GTE predicate on the "meeting_id" field.
func MeetingIDGTE(v string) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldGTE(FieldMeetingID, v))
}

// MeetingIDLT applies the LT predicate on the "meeting_id" field.
func MeetingIDLT(v string) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldLT(FieldMeetingID, v))
}

// MeetingIDLTE applies the LTE predicate on the "meeting_id" field.
func MeetingIDLTE(v string) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldLTE(FieldMeetingID, v))
}

// MeetingIDContains applies the Contains predicate on the "meeting_id" field.
func MeetingIDContains(v string) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldContains(FieldMeetingID, v))
}

// MeetingIDHasPrefix applies the HasPrefix predicate on the "meeting_id" field.
func MeetingIDHasPrefix(v string) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldHasPrefix(FieldMeetingID, v))
}

// MeetingIDHasSuffix applies the HasSuffix predicate on the "meeting_id" field.
func MeetingIDHasSuffix(v string) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldHasSuffix(FieldMeetingID, v))
}

// MeetingIDIsNil applies the IsNil predicate on the "meeting_id" field.
func MeetingIDIsNil() predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldIsNull(FieldMeetingID))
}

// MeetingIDNotNil applies the NotNil predicate on the "meeting_id" field.
func MeetingIDNotNil() predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldNotNull(FieldMeetingID))
}

// MeetingIDEqualFold applies the EqualFold predicate on the "meeting_id" field.
func MeetingIDEqualFold(v string) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldEqualFold(FieldMeetingID, v))
}

// MeetingIDContainsFold applies the ContainsFold predicate on the "meeting_id" field.
func MeetingIDContainsFold(v string) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldContainsFold(FieldMeetingID, v))
}

// ScheduledAtEQ applies the EQ predicate on the "scheduled_at" field.
func ScheduledAtEQ(v time.Time) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldEQ(FieldScheduledAt, v))
}

// ScheduledAtNEQ applies the NEQ predicate on the "scheduled_at" field.
func ScheduledAtNEQ(v time.Time) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldNEQ(FieldScheduledAt, v))
}

// ScheduledAtIn applies the In predicate on the "scheduled_at" field.
func ScheduledAtIn(vs ...time.Time) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldIn(FieldScheduledAt, vs...))
}

// ScheduledAtNotIn applies the NotIn predicate on the "scheduled_at" field.
func ScheduledAtNotIn(vs ...time.Time) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldNotIn(FieldScheduledAt, vs...))
}

// ScheduledAtGT applies the GT predicate on the "scheduled_at" field.
func ScheduledAtGT(v time.Time) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldGT(FieldScheduledAt, v))
}

// ScheduledAtGTE applies the GTE predicate on the "scheduled_at" field.
func ScheduledAtGTE(v time.Time) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldGTE(FieldScheduledAt, v))
}

// ScheduledAtLT applies the LT predicate on the "scheduled_at" field.
func ScheduledAtLT(v time.Time) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldLT(FieldScheduledAt, v))
}

// ScheduledAtLTE applies the LTE predicate on the "scheduled_at" field.
func ScheduledAtLTE(v time.Time) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldLTE(FieldScheduledAt, v))
}

// ScheduledAtIsNil applies the IsNil predicate on the "scheduled_at" field.
func ScheduledAtIsNil() predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldIsNull(FieldScheduledAt))
}

// ScheduledAtNotNil applies the NotNil predicate on the "scheduled_at" field.
func ScheduledAtNotNil() predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldNotNull(FieldScheduledAt))
}

// ExpiresAtEQ applies the EQ predicate on the "expires_at" field.
func ExpiresAtEQ(v time.Time) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldEQ(FieldExpiresAt, v))
}

// ExpiresAtNEQ applies the NEQ predicate on the "expires_at" field.
func ExpiresAtNEQ(v time.Time) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldNEQ(FieldExpiresAt, v))
}

// ExpiresAtIn applies the In predicate on the "expires_at" field.
func ExpiresAtIn(vs ...time.Time) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldIn(FieldExpiresAt, vs...))
}

// ExpiresAtNotIn applies the NotIn predicate on the "expires_at" field.
func ExpiresAtNotIn(vs ...time.Time) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldNotIn(FieldExpiresAt, vs...))
}

// ExpiresAtGT applies the GT predicate on the "expires_at" field.
func ExpiresAtGT(v time.Time) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldGT(FieldExpiresAt, v))
}

// ExpiresAtGTE applies the GTE predicate on the "expires_at" field.
func ExpiresAtGTE(v time.Time) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldGTE(FieldExpiresAt, v))
}

// ExpiresAtLT applies the LT predicate on the "expires_at" field.
func ExpiresAtLT(v time.Time) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldLT(FieldExpiresAt, v))
}

// ExpiresAtLTE applies the LTE predicate on the "expires_at" field.
func ExpiresAtLTE(v time.Time) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldLTE(FieldExpiresAt, v))
}

// ResolutionEQ applies the EQ predicate on the "resolution" field.
func ResolutionEQ(v string) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldEQ(FieldResolution, v))
}

// ResolutionNEQ applies the NEQ predicate on the "resolution" field.
func ResolutionNEQ(v string) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldNEQ(FieldResolution, v))
}

// ResolutionIn applies the In predicate on the "resolution" field.
func ResolutionIn(vs ...string) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldIn(FieldResolution, vs...))
}

// ResolutionNotIn applies the NotIn predicate on the "resolution" field.
func ResolutionNotIn(vs ...string) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldNotIn(FieldResolution, vs...))
}

// ResolutionGT applies the GT predicate on the "resolution" field.
func ResolutionGT(v string) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldGT(FieldResolution, v))
}

// ResolutionGTE applies the GTE predicate on the "resolution" field.
func ResolutionGTE(v string) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldGTE(FieldResolution, v))
}

// ResolutionLT applies the LT predicate on the "resolution" field.
func ResolutionLT(v string) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldLT(FieldResolution, v))
}

// ResolutionLTE applies the LTE predicate on the "resolution" field.
func ResolutionLTE(v string) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldLTE(FieldResolution, v))
}

// ResolutionContains applies the Contains predicate on the "resolution" field.
func ResolutionContains(v string) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldContains(FieldResolution, v))
}

// ResolutionHasPrefix applies the HasPrefix predicate on the "resolution" field.
func ResolutionHasPrefix(v string) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldHasPrefix(FieldResolution, v))
}

// ResolutionHasSuffix applies the HasSuffix predicate on the "resolution" field.
func ResolutionHasSuffix(v string) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldHasSuffix(FieldResolution, v))
}

// ResolutionIsNil applies the IsNil predicate on the "resolution" field.
func ResolutionIsNil() predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldIsNull(FieldResolution))
}

// ResolutionNotNil applies the NotNil predicate on the "resolution" field.
func ResolutionNotNil() predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldNotNull(FieldResolution))
}

// ResolutionEqualFold applies the EqualFold predicate on the "resolution" field.
func ResolutionEqualFold(v string) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldEqualFold(FieldResolution, v))
}

// ResolutionContainsFold applies the ContainsFold predicate on the "resolution" field.
func ResolutionContainsFold(v string) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldContainsFold(FieldResolution, v))
}

// ActionItemsIsNil applies the IsNil predicate on the "action_items" field.
func ActionItemsIsNil() predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldIsNull(FieldActionItems))
}

// ActionItemsNotNil applies the NotNil predicate on the "action_items" field.
func ActionItemsNotNil() predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldNotNull(FieldActionItems))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TopicRecord {
	return predicate.TopicRecord(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TopicRecord) predicate.TopicRecord {
	return predicate.TopicRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TopicRecord) predicate.TopicRecord {
	return predicate.TopicRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TopicRecord) predicate.TopicRecord {
	return predicate.TopicRecord(sql.NotPredicates(p))
}
