// Code generated by ent, DO NOT EDIT.

package riskrule

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/NoAme666/aiquant/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldContainsFold(FieldID, id))
}

// Kind applies equality check predicate on the "kind" field. It's identical to KindEQ.
func Kind(v string) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldEQ(FieldKind, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldEQ(FieldTitle, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldEQ(FieldDescription, v))
}

// Proposer applies equality check predicate on the "proposer" field. It's identical to ProposerEQ.
func Proposer(v string) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldEQ(FieldProposer, v))
}

// EffectiveFrom applies equality check predicate on the "effective_from" field. It's identical to EffectiveFromEQ.
func EffectiveFrom(v time.Time) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldEQ(FieldEffectiveFrom, v))
}

// SuspendedBy applies equality check predicate on the "suspended_by" field. It's identical to SuspendedByEQ.
func SuspendedBy(v string) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldEQ(FieldSuspendedBy, v))
}

// SuspendReason applies equality check predicate on the "suspend_reason" field. It's identical to SuspendReasonEQ.
func SuspendReason(v string) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldEQ(FieldSuspendReason, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldEQ(FieldCreatedAt, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v string) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v string) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...string) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...string) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldNotIn(FieldKind, vs...))
}

// KindGT applies the GT predicate on the "kind" field.
func KindGT(v string) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldGT(FieldKind, v))
}

// KindGTE applies the GTE predicate on the "kind" field.
func KindGTE(v string) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldGTE(FieldKind, v))
}

// KindLT applies the LT predicate on the "kind" field.
func KindLT(v string) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldLT(FieldKind, v))
}

// KindLTE applies the LTE predicate on the "kind" field.
func KindLTE(v string) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldLTE(FieldKind, v))
}

// KindContains applies the Contains predicate on the "kind" field.
func KindContains(v string) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldContains(FieldKind, v))
}

// KindHasPrefix applies the HasPrefix predicate on the "kind" field.
func KindHasPrefix(v string) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldHasPrefix(FieldKind, v))
}

// KindHasSuffix applies the HasSuffix predicate on the "kind" field.
func KindHasSuffix(v string) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldHasSuffix(FieldKind, v))
}

// KindEqualFold applies the EqualFold predicate on the "kind" field.
func KindEqualFold(v string) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldEqualFold(FieldKind, v))
}

// KindContainsFold applies the ContainsFold predicate on the "kind" field.
func KindContainsFold(v string) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldContainsFold(FieldKind, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldContainsFold(FieldTitle, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.RiskRule {
	return predicate.RiskRule(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.RiskRule {
	return predicate.RiskRule(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldContainsFold(FieldDescription, v))
}

// ParametersIsNil applies the IsNil predicate on the "parameters" field.
func ParametersIsNil() predicate.RiskRule {
	return predicate.RiskRule(sql.FieldIsNull(FieldParameters))
}

// ParametersNotNil applies the NotNil predicate on the "parameters" field.
func ParametersNotNil() predicate.RiskRule {
	return predicate.RiskRule(sql.FieldNotNull(FieldParameters))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldNotIn(FieldStatus, vs...))
}

// ProposerEQ applies the EQ predicate on the "proposer" field.
func ProposerEQ(v string) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldEQ(FieldProposer, v))
}

// ProposerNEQ applies the NEQ predicate on the "proposer" field.
func ProposerNEQ(v string) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldNEQ(FieldProposer, v))
}

// ProposerIn applies the In predicate on the "proposer" field.
func ProposerIn(vs ...string) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldIn(FieldProposer, vs...))
}

// ProposerNotIn applies the NotIn predicate on the "proposer" field.
func ProposerNotIn(vs ...string) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldNotIn(FieldProposer, vs...))
}

// ProposerGT applies the GT predicate on the "proposer" field.
func ProposerGT(v string) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldGT(FieldProposer, v))
}

// ProposerGTE applies the GTE predicate on the "proposer" field.
func ProposerGTE(v string) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldGTE(FieldProposer, v))
}

// ProposerLT applies the LT predicate on the "proposer" field.
func ProposerLT(v string) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldLT(FieldProposer, v))
}

// ProposerLTE applies the LTE predicate on the "proposer" field.
func ProposerLTE(v string) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldLTE(FieldProposer, v))
}

// ProposerContains applies the Contains predicate on the "proposer" field.
func ProposerContains(v string) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldContains(FieldProposer, v))
}

// ProposerHasPrefix applies the HasPrefix predicate on the "proposer" field.
func ProposerHasPrefix(v string) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldHasPrefix(FieldProposer, v))
}

// ProposerHasSuffix applies the HasSuffix predicate on the "proposer" field.
func ProposerHasSuffix(v string) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldHasSuffix(FieldProposer, v))
}

// ProposerEqualFold applies the EqualFold predicate on the "proposer" field.
func ProposerEqualFold(v string) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldEqualFold(FieldProposer, v))
}

// ProposerContainsFold applies the ContainsFold predicate on the "proposer" field.
func ProposerContainsFold(v string) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldContainsFold(FieldProposer, v))
}

// VotesIsNil applies the IsNil predicate on the "votes" field.
func VotesIsNil() predicate.RiskRule {
	return predicate.RiskRule(sql.FieldIsNull(FieldVotes))
}

// VotesNotNil applies the NotNil predicate on the "votes" field.
func VotesNotNil() predicate.RiskRule {
	return predicate.RiskRule(sql.FieldNotNull(FieldVotes))
}

// EffectiveFromEQ applies the EQ predicate on the "effective_from" field.
func EffectiveFromEQ(v time.Time) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldEQ(FieldEffectiveFrom, v))
}

// EffectiveFromNEQ applies the NEQ predicate on the "effective_from" field.
func EffectiveFromNEQ(v time.Time) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldNEQ(FieldEffectiveFrom, v))
}

// EffectiveFromIn applies the In predicate on the "effective_from" field.
func EffectiveFromIn(vs ...time.Time) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldIn(FieldEffectiveFrom, vs...))
}

// EffectiveFromNotIn applies the NotIn predicate on the "effective_from" field.
func EffectiveFromNotIn(vs ...time.Time) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldNotIn(FieldEffectiveFrom, vs...))
}

// EffectiveFromGT applies the GT predicate on the "effective_from" field.
func EffectiveFromGT(v time.Time) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldGT(FieldEffectiveFrom, v))
}

// EffectiveFromGTE applies the GTE predicate on the "effective_from" field.
func EffectiveFromGTE(v time.Time) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldGTE(FieldEffectiveFrom, v))
}

// EffectiveFromLT applies the LT predicate on the "effective_from" field.
func EffectiveFromLT(v time.Time) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldLT(FieldEffectiveFrom, v))
}

// EffectiveFromLTE applies the LTE predicate on the "effective_from" field.
func EffectiveFromLTE(v time.Time) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldLTE(FieldEffectiveFrom, v))
}

// EffectiveFromIsNil applies the IsNil predicate on the "effective_from" field.
func EffectiveFromIsNil() predicate.RiskRule {
	return predicate.RiskRule(sql.FieldIsNull(FieldEffectiveFrom))
}

// EffectiveFromNotNil applies the NotNil predicate on the "effective_from" field.
func EffectiveFromNotNil() predicate.RiskRule {
	return predicate.RiskRule(sql.FieldNotNull(FieldEffectiveFrom))
}

// SuspendedByEQ applies the EQ predicate on the "suspended_by" field.
func SuspendedByEQ(v string) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldEQ(FieldSuspendedBy, v))
}

// SuspendedByNEQ applies the NEQ predicate on the "suspended_by" field.
func SuspendedByNEQ(v string) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldNEQ(FieldSuspendedBy, v))
}

// SuspendedByIn applies the In predicate on the "suspended_by" field.
func SuspendedByIn(vs ...string) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldIn(FieldSuspendedBy, vs...))
}

// SuspendedByNotIn applies the NotIn predicate on the "suspended_by" field.
func SuspendedByNotIn(vs ...string) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldNotIn(FieldSuspendedBy, vs...))
}

// SuspendedByGT applies the GT predicate on the "suspended_by" field.
func SuspendedByGT(v string) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldGT(FieldSuspendedBy, v))
}

// SuspendedByGTE applies the GTE predicate on the "suspended_by" field.
func SuspendedByGTE(v string) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldGTE(FieldSuspendedBy, v))
}

// SuspendedByLT applies the LT predicate on the "suspended_by" field.
func SuspendedByLT(v string) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldLT(FieldSuspendedBy, v))
}

// SuspendedByLTE applies the LTE predicate on the "suspended_by" field.
func SuspendedByLTE(v string) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldLTE(FieldSuspendedBy, v))
}

// SuspendedByContains applies the Contains predicate on the "suspended_by" field.
func SuspendedByContains(v string) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldContains(FieldSuspendedBy, v))
}

// SuspendedByHasPrefix applies the HasPrefix predicate on the "suspended_by" field.
func SuspendedByHasPrefix(v string) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldHasPrefix(FieldSuspendedBy, v))
}

// SuspendedByHasSuffix applies the HasSuffix predicate on the "suspended_by" field.
func SuspendedByHasSuffix(v string) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldHasSuffix(FieldSuspendedBy, v))
}

// SuspendedByIsNil applies the IsNil predicate on the "suspended_by" field.
func SuspendedByIsNil() predicate.RiskRule {
	return predicate.RiskRule(sql.FieldIsNull(FieldSuspendedBy))
}

// SuspendedByNotNil applies the NotNil predicate on the "suspended_by" field.
func SuspendedByNotNil() predicate.RiskRule {
	return predicate.RiskRule(sql.FieldNotNull(FieldSuspendedBy))
}

// SuspendedByEqualFold applies the EqualFold predicate on the "suspended_by" field.
func SuspendedByEqualFold(v string) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldEqualFold(FieldSuspendedBy, v))
}

// SuspendedByContainsFold applies the ContainsFold predicate on the "suspended_by" field.
func SuspendedByContainsFold(v string) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldContainsFold(FieldSuspendedBy, v))
}

// SuspendReasonEQ applies the EQ predicate on the "suspend_reason" field.
func SuspendReasonEQ(v string) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldEQ(FieldSuspendReason, v))
}

// SuspendReasonNEQ applies the NEQ predicate on the "suspend_reason" field.
func SuspendReasonNEQ(v string) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldNEQ(FieldSuspendReason, v))
}

// SuspendReasonIn applies the In predicate on the "suspend_reason" field.
func SuspendReasonIn(vs ...string) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldIn(FieldSuspendReason, vs...))
}

// SuspendReasonNotIn applies the NotIn predicate on the "suspend_reason" field.
func SuspendReasonNotIn(vs ...string) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldNotIn(FieldSuspendReason, vs...))
}

// SuspendReasonGT applies the GT predicate on the "suspend_reason" field.
func SuspendReasonGT(v string) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldGT(FieldSuspendReason, v))
}

// SuspendReasonGTE applies the GTE predicate on the "suspend_reason" field.
func SuspendReasonGTE(v string) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldGTE(FieldSuspendReason, v))
}

// SuspendReasonLT applies the LT predicate on the "suspend_reason" field.
func SuspendReasonLT(v string) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldLT(FieldSuspendReason, v))
}

// SuspendReasonLTE applies the LTE predicate on the "suspend_reason" field.
func SuspendReasonLTE(v string) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldLTE(FieldSuspendReason, v))
}

// SuspendReasonContains applies the Contains predicate on the "suspend_reason" field.
func SuspendReasonContains(v string) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldContains(FieldSuspendReason, v))
}

// SuspendReasonHasPrefix applies the HasPrefix predicate on the "suspend_reason" field.
func SuspendReasonHasPrefix(v string) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldHasPrefix(FieldSuspendReason, v))
}

// SuspendReasonHasSuffix applies the HasSuffix predicate on the "suspend_reason" field.
func SuspendReasonHasSuffix(v string) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldHasSuffix(FieldSuspendReason, v))
}

// SuspendReasonIsNil applies the IsNil predicate on the "suspend_reason" field.
func SuspendReasonIsNil() predicate.RiskRule {
	return predicate.RiskRule(sql.FieldIsNull(FieldSuspendReason))
}

// SuspendReasonNotNil applies the NotNil predicate on the "suspend_reason" field.
func SuspendReasonNotNil() predicate.RiskRule {
	return predicate.RiskRule(sql.FieldNotNull(FieldSuspendReason))
}

// SuspendReasonEqualFold applies the EqualFold predicate on the "suspend_reason" field.
func SuspendReasonEqualFold(v string) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldEqualFold(FieldSuspendReason, v))
}

// SuspendReasonContainsFold applies the ContainsFold predicate on the "suspend_reason" field.
func SuspendReasonContainsFold(v string) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldContainsFold(FieldSuspendReason, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.RiskRule {
	return predicate.RiskRule(sql.FieldLTE(FieldCreatedAt, v))
}

// HasDecisions applies the HasEdge predicate on the "decisions" edge.
func HasDecisions() predicate.RiskRule {
	return predicate.RiskRule(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, DecisionsTable, DecisionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDecisionsWith applies the HasEdge predicate on the "decisions" edge with a given conditions (other predicates).
func HasDecisionsWith(preds ...predicate.GovernanceDecision) predicate.RiskRule {
	return predicate.RiskRule(func(s *sql.Selector) {
		step := newDecisionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RiskRule) predicate.RiskRule {
	return predicate.RiskRule(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RiskRule) predicate.RiskRule {
	return predicate.RiskRule(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RiskRule) predicate.RiskRule {
	return predicate.RiskRule(sql.NotPredicates(p))
}
