// Code generated by ent, DO NOT EDIT.

package approvalitem

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/NoAme666/aiquant/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldContainsFold(FieldID, id))
}

// Kind applies equality check predicate on the "kind" field. It's identical to KindEQ.
func Kind(v string) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldEQ(FieldKind, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldEQ(FieldTitle, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldEQ(FieldDescription, v))
}

// Requester applies equality check predicate on the "requester" field. It's identical to RequesterEQ.
func Requester(v string) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldEQ(FieldRequester, v))
}

// DecisionBy applies equality check predicate on the "decision_by" field. It's identical to DecisionByEQ.
func DecisionBy(v string) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldEQ(FieldDecisionBy, v))
}

// DecisionReason applies equality check predicate on the "decision_reason" field. It's identical to DecisionReasonEQ.
func DecisionReason(v string) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldEQ(FieldDecisionReason, v))
}

// ExpiresAt applies equality check predicate on the "expires_at" field. It's identical to ExpiresAtEQ.
func ExpiresAt(v time.Time) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldEQ(FieldExpiresAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldEQ(FieldCreatedAt, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v string) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v string) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...string) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...string) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldNotIn(FieldKind, vs...))
}

// KindGT applies the GT predicate on the "kind" field.
func KindGT(v string) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldGT(FieldKind, v))
}

// KindGTE applies the GTE predicate on the "kind" field.
func KindGTE(v string) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldGTE(FieldKind, v))
}

// KindLT applies the LT predicate on the "kind" field.
func KindLT(v string) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldLT(FieldKind, v))
}

// KindLTE applies the LTE predicate on the "kind" field.
func KindLTE(v string) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldLTE(FieldKind, v))
}

// KindContains applies the Contains predicate on the "kind" field.
func KindContains(v string) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldContains(FieldKind, v))
}

// KindHasPrefix applies the HasPrefix predicate on the "kind" field.
func KindHasPrefix(v string) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldHasPrefix(FieldKind, v))
}

// KindHasSuffix applies the HasSuffix predicate on the "kind" field.
func KindHasSuffix(v string) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldHasSuffix(FieldKind, v))
}

// KindEqualFold applies the EqualFold predicate on the "kind" field.
func KindEqualFold(v string) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldEqualFold(FieldKind, v))
}

// KindContainsFold applies the ContainsFold predicate on the "kind" field.
func KindContainsFold(v string) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldContainsFold(FieldKind, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldContainsFold(FieldTitle, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldContainsFold(FieldDescription, v))
}

// RequesterEQ applies the EQ predicate on the "requester" field.
func RequesterEQ(v string) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldEQ(FieldRequester, v))
}

// RequesterNEQ applies the NEQ predicate on the "requester" field.
func RequesterNEQ(v string) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldNEQ(FieldRequester, v))
}

// RequesterIn applies the In predicate on the "requester" field.
func RequesterIn(vs ...string) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldIn(FieldRequester, vs...))
}

// RequesterNotIn applies the NotIn predicate on the "requester" field.
func RequesterNotIn(vs ...string) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldNotIn(FieldRequester, vs...))
}

// RequesterGT applies the GT predicate on the "requester" field.
func RequesterGT(v string) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldGT(FieldRequester, v))
}

// RequesterGTE applies the GTE predicate on the "requester" field.
func RequesterGTE(v string) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldGTE(FieldRequester, v))
}

// RequesterLT applies the LT predicate on the "requester" field.
func RequesterLT(v string) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldLT(FieldRequester, v))
}

// RequesterLTE applies the LTE predicate on the "requester" field.
func RequesterLTE(v string) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldLTE(FieldRequester, v))
}

// RequesterContains applies the Contains predicate on the "requester" field.
func RequesterContains(v string) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldContains(FieldRequester, v))
}

// RequesterHasPrefix applies the HasPrefix predicate on the "requester" field.
func RequesterHasPrefix(v string) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldHasPrefix(FieldRequester, v))
}

// RequesterHasSuffix applies the HasSuffix predicate on the "requester" field.
func RequesterHasSuffix(v string) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldHasSuffix(FieldRequester, v))
}

// RequesterEqualFold applies the EqualFold predicate on the "requester" field.
func RequesterEqualFold(v string) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldEqualFold(FieldRequester, v))
}

// RequesterContainsFold applies the ContainsFold predicate on the "requester" field.
func RequesterContainsFold(v string) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldContainsFold(FieldRequester, v))
}

// DataIsNil applies the IsNil predicate on the "data" field.
func DataIsNil() predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldIsNull(FieldData))
}

// DataNotNil applies the NotNil predicate on the "data" field.
func DataNotNil() predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldNotNull(FieldData))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldNotIn(FieldStatus, vs...))
}

// DecisionByEQ applies the EQ predicate on the "decision_by" field.
func DecisionByEQ(v string) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldEQ(FieldDecisionBy, v))
}

// DecisionByNEQ applies the NEQ predicate on the "decision_by" field.
func DecisionByNEQ(v string) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldNEQ(FieldDecisionBy, v))
}

// DecisionByIn applies the In predicate on the "decision_by" field.
func DecisionByIn(vs ...string) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldIn(FieldDecisionBy, vs...))
}

// DecisionByNotIn applies the NotIn predicate on the "decision_by" field.
func DecisionByNotIn(vs ...string) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldNotIn(FieldDecisionBy, vs...))
}

// DecisionByGT applies the GT predicate on the "decision_by" field.
func DecisionByGT(v string) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldGT(FieldDecisionBy, v))
}

// DecisionByGTE applies the GTE predicate on the "decision_by" field.
func DecisionByGTE(v string) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldGTE(FieldDecisionBy, v))
}

// DecisionByLT applies the LT predicate on the "decision_by" field.
func DecisionByLT(v string) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldLT(FieldDecisionBy, v))
}

// DecisionByLTE applies the LTE predicate on the "decision_by" field.
func DecisionByLTE(v string) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldLTE(FieldDecisionBy, v))
}

// DecisionByContains applies the Contains predicate on the "decision_by" field.
func DecisionByContains(v string) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldContains(FieldDecisionBy, v))
}

// DecisionByHasPrefix applies the HasPrefix predicate on the "decision_by" field.
func DecisionByHasPrefix(v string) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldHasPrefix(FieldDecisionBy, v))
}

// DecisionByHasSuffix applies the HasSuffix predicate on the "decision_by" field.
func DecisionByHasSuffix(v string) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldHasSuffix(FieldDecisionBy, v))
}

// DecisionByIsNil applies the IsNil predicate on the "decision_by" field.
func DecisionByIsNil() predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldIsNull(FieldDecisionBy))
}

// DecisionByNotNil applies the NotNil predicate on the "decision_by" field.
func DecisionByNotNil() predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldNotNull(FieldDecisionBy))
}

// DecisionByEqualFold applies the EqualFold predicate on the "decision_by" field.
func DecisionByEqualFold(v string) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldEqualFold(FieldDecisionBy, v))
}

// DecisionByContainsFold applies the ContainsFold predicate on the "decision_by" field.
func DecisionByContainsFold(v string) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldContainsFold(FieldDecisionBy, v))
}

// DecisionReasonEQ applies the EQ predicate on the "decision_reason" field.
func DecisionReasonEQ(v string) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldEQ(FieldDecisionReason, v))
}

// DecisionReasonNEQ applies the NEQ predicate on the "decision_reason" field.
func DecisionReasonNEQ(v string) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldNEQ(FieldDecisionReason, v))
}

// DecisionReasonIn applies the In predicate on the "decision_reason" field.
func DecisionReasonIn(vs ...string) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldIn(FieldDecisionReason, vs...))
}

// DecisionReasonNotIn applies the NotIn predicate on the "decision_reason" field.
func DecisionReasonNotIn(vs ...string) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldNotIn(FieldDecisionReason, vs...))
}

// DecisionReasonGT applies the GT predicate on the "decision_reason" field.
func DecisionReasonGT(v string) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldGT(FieldDecisionReason, v))
}

// DecisionReasonGTE applies the GTE predicate on the "decision_reason" field.
func DecisionReasonGTE(v string) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldGTE(FieldDecisionReason, v))
}

// DecisionReasonLT applies the LT predicate on the "decision_reason" field.
func DecisionReasonLT(v string) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldLT(FieldDecisionReason, v))
}

// DecisionReasonLTE applies the LTE predicate on the "decision_reason" field.
func DecisionReasonLTE(v string) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldLTE(FieldDecisionReason, v))
}

// DecisionReasonContains applies the Contains predicate on the "decision_reason" field.
func DecisionReasonContains(v string) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldContains(FieldDecisionReason, v))
}

// DecisionReasonHasPrefix applies the HasPrefix predicate on the "decision_reason" field.
func DecisionReasonHasPrefix(v string) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldHasPrefix(FieldDecisionReason, v))
}

// DecisionReasonHasSuffix applies the HasSuffix predicate on the "decision_reason" field.
func DecisionReasonHasSuffix(v string) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldHasSuffix(FieldDecisionReason, v))
}

// DecisionReasonIsNil applies the IsNil predicate on the "decision_reason" field.
func DecisionReasonIsNil() predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldIsNull(FieldDecisionReason))
}

// DecisionReasonNotNil applies the NotNil predicate on the "decision_reason" field.
func DecisionReasonNotNil() predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldNotNull(FieldDecisionReason))
}

// DecisionReasonEqualFold applies the EqualFold predicate on the "decision_reason" field.
func DecisionReasonEqualFold(v string) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldEqualFold(FieldDecisionReason, v))
}

// DecisionReasonContainsFold applies the ContainsFold predicate on the "decision_reason" field.
func DecisionReasonContainsFold(v string) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldContainsFold(FieldDecisionReason, v))
}

// ExpiresAtEQ applies the EQ predicate on the "expires_at" field.
func ExpiresAtEQ(v time.Time) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldEQ(FieldExpiresAt, v))
}

// ExpiresAtNEQ applies the NEQ predicate on the "expires_at" field.
func ExpiresAtNEQ(v time.Time) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldNEQ(FieldExpiresAt, v))
}

// ExpiresAtIn applies the In predicate on the "expires_at" field.
func ExpiresAtIn(vs ...time.Time) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldIn(FieldExpiresAt, vs...))
}

// ExpiresAtNotIn applies the NotIn predicate on the "expires_at" field.
func ExpiresAtNotIn(vs ...time.Time) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldNotIn(FieldExpiresAt, vs...))
}

// ExpiresAtGT applies the GT predicate on the "expires_at" field.
func ExpiresAtGT(v time.Time) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldGT(FieldExpiresAt, v))
}

// ExpiresAtGTE applies the GTE predicate on the "expires_at" field.
func ExpiresAtGTE(v time.Time) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldGTE(FieldExpiresAt, v))
}

// ExpiresAtLT applies the LT predicate on the "expires_at" field.
func ExpiresAtLT(v time.Time) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldLT(FieldExpiresAt, v))
}

// ExpiresAtLTE applies the LTE predicate on the "expires_at" field.
func ExpiresAtLTE(v time.Time) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldLTE(FieldExpiresAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ApprovalItem) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ApprovalItem) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ApprovalItem) predicate.ApprovalItem {
	return predicate.ApprovalItem(sql.NotPredicates(p))
}
