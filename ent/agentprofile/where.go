// Code generated by ent, DO NOT EDIT.

package agentprofile

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/NoAme666/aiquant/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.AgentProfile {
	return predicate.AgentProfile(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.AgentProfile {
	return predicate.AgentProfile(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.AgentProfile {
	return predicate.AgentProfile(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.AgentProfile {
	return predicate.AgentProfile(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.AgentProfile {
	return predicate.AgentProfile(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.AgentProfile {
	return predicate.AgentProfile(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.AgentProfile {
	return predicate.AgentProfile(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.AgentProfile {
	return predicate.AgentProfile(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.AgentProfile {
	return predicate.AgentProfile(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.AgentProfile {
	return predicate.AgentProfile(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.AgentProfile {
	return predicate.AgentProfile(sql.FieldContainsFold(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.AgentProfile {
	return predicate.AgentProfile(sql.FieldEQ(FieldName, v))
}

// Department applies equality check predicate on the "department" field. It's identical to DepartmentEQ.
func Department(v string) predicate.AgentProfile {
	return predicate.AgentProfile(sql.FieldEQ(FieldDepartment, v))
}

// Team applies equality check predicate on the "team" field. It's identical to TeamEQ.
func Team(v string) predicate.AgentProfile {
	return predicate.AgentProfile(sql.FieldEQ(FieldTeam, v))
}

// ReportsTo applies equality check predicate on the "reports_to" field. It's identical to ReportsToEQ.
func ReportsTo(v string) predicate.AgentProfile {
	return predicate.AgentProfile(sql.FieldEQ(FieldReportsTo, v))
}

// Role applies equality check predicate on the "role" field. It's identical to RoleEQ.
func Role(v string) predicate.AgentProfile {
	return predicate.AgentProfile(sql.FieldEQ(FieldRole, v))
}

// IsLead applies equality check predicate on the "is_lead" field. It's identical to IsLeadEQ.
func IsLead(v bool) predicate.AgentProfile {
	return predicate.AgentProfile(sql.FieldEQ(FieldIsLead, v))
}

// LastActive applies equality check predicate on the "last_active" field. It's identical to LastActiveEQ.
func LastActive(v time.Time) predicate.AgentProfile {
	return predicate.AgentProfile(sql.FieldEQ(FieldLastActive, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AgentProfile {
	return predicate.AgentProfile(sql.FieldEQ(FieldCreatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.AgentProfile {
	return predicate.AgentProfile(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.AgentProfile {
	return predicate.AgentProfile(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.AgentProfile {
	return predicate.AgentProfile(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.AgentProfile {
	return predicate.AgentProfile(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.AgentProfile {
	return predicate.AgentProfile(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.AgentProfile {
	return predicate.AgentProfile(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.AgentProfile {
	return predicate.AgentProfile(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.AgentProfile {
	return predicate.AgentProfile(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.AgentProfile {
	return predicate.AgentProfile(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.AgentProfile {
	return predicate.AgentProfile(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.AgentProfile {
	return predicate.AgentProfile(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.AgentProfile {
	return predicate.AgentProfile(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.AgentProfile {
	return predicate.AgentProfile(sql.FieldContainsFold(FieldName, v))
}

// DepartmentEQ applies the EQ predicate on the "department" field.
func DepartmentEQ(v string) predicate.AgentProfile {
	return predicate.AgentProfile(sql.FieldEQ(FieldDepartment, v))
}

// DepartmentNEQ applies the NEQ predicate on the "department" field.
func DepartmentNEQ(v string) predicate.AgentProfile {
	return predicate.AgentProfile(sql.FieldNEQ(FieldDepartment, v))
}

// DepartmentIn applies the In predicate on the "department" field.
func DepartmentIn(vs ...string) predicate.AgentProfile {
	return predicate.AgentProfile(sql.FieldIn(FieldDepartment, vs...))
}

// DepartmentNotIn applies the NotIn predicate on the "department" field.
func DepartmentNotIn(vs ...string) predicate.AgentProfile {
	return predicate.AgentProfile(sql.FieldNotIn(FieldDepartment, vs...))
}

// DepartmentGT applies the GT predicate on the "department" field.
func DepartmentGT(v string) predicate.AgentProfile {
	return predicate.AgentProfile(sql.FieldGT(FieldDepartment, v))
}

// DepartmentGTE applies the GTE predicate on the "department" field.
func DepartmentGTE(v string) predicate.AgentProfile {
	return predicate.AgentProfile(sql.FieldGTE(FieldDepartment, v))
}

// DepartmentLT applies the LT predicate on the "department" field.
func DepartmentLT(v string) predicate.AgentProfile {
	return predicate.AgentProfile(sql.FieldLT(FieldDepartment, v))
}

// DepartmentLTE applies the LTE predicate on the "department" field.
func DepartmentLTE(v string) predicate.AgentProfile {
	return predicate.AgentProfile(sql.FieldLTE(FieldDepartment, v))
}

// DepartmentContains applies the Contains predicate on the "department" field.
func DepartmentContains(v string) predicate.AgentProfile {
	return predicate.AgentProfile(sql.FieldContains(FieldDepartment, v))
}

// DepartmentHasPrefix applies the HasPrefix predicate on the "department" field.
func DepartmentHasPrefix(v string) predicate.AgentProfile {
	return predicate.AgentProfile(sql.FieldHasPrefix(FieldDepartment, v))
}

// DepartmentHasSuffix applies the HasSuffix predicate on the "department" field.
func DepartmentHasSuffix(v string) predicate.AgentProfile {
	return predicate.AgentProfile(sql.FieldHasSuffix(FieldDepartment, v))
}

// DepartmentEqualFold applies the EqualFold predicate on the "department" field.
func DepartmentEqualFold(v string) predicate.AgentProfile {
	return predicate.AgentProfile(sql.FieldEqualFold(FieldDepartment, v))
}

// DepartmentContainsFold applies the ContainsFold predicate on the "department" field.
func DepartmentContainsFold(v string) predicate.AgentProfile {
	return predicate.AgentProfile(sql.FieldContainsFold(FieldDepartment, v))
}

// TeamEQ applies the EQ predicate on the "team" field.
func TeamEQ(v string) predicate.AgentProfile {
	return predicate.AgentProfile(sql.FieldEQ(FieldTeam, v))
}

// TeamNEQ applies the NEQ predicate on the "team" field.
func TeamNEQ(v string) predicate.AgentProfile {
	return predicate.AgentProfile(sql.FieldNEQ(FieldTeam, v))
}

// TeamIn applies the In predicate on the "team" field.
func TeamIn(vs ...string) predicate.AgentProfile {
	return predicate.AgentProfile(sql.FieldIn(FieldTeam, vs...))
}

// TeamNotIn applies the NotIn predicate on the "team" field.
func TeamNotIn(vs ...string) predicate.AgentProfile {
	return predicate.AgentProfile(sql.FieldNotIn(FieldTeam, vs...))
}

// TeamGT applies the GT predicate on the "team" field.
func TeamGT(v string) predicate.AgentProfile {
	return predicate.AgentProfile(sql.FieldGT(FieldTeam, v))
}

// TeamGTE applies the GTE predicate on the "team" field.
func TeamGTE(v string) predicate.AgentProfile {
	return predicate.AgentProfile(sql.FieldGTE(FieldTeam, v))
}

// TeamLT applies the LT predicate on the "team" field.
func TeamLT(v string) predicate.AgentProfile {
	return predicate.AgentProfile(sql.FieldLT(FieldTeam, v))
}

// TeamLTE applies the LTE predicate on the "team" field.
func TeamLTE(v string) predicate.AgentProfile {
	return predicate.AgentProfile(sql.FieldLTE(FieldTeam, v))
}

// TeamContains applies the Contains predicate on the "team" field.
func TeamContains(v string) predicate.AgentProfile {
	return predicate.AgentProfile(sql.FieldContains(FieldTeam, v))
}

// TeamHasPrefix applies the HasPrefix predicate on the "team" field.
func TeamHasPrefix(v string) predicate.AgentProfile {
	return predicate.AgentProfile(sql.FieldHasPrefix(FieldTeam, v))
}

// TeamHasSuffix applies the HasSuffix predicate on the "team" field.
func TeamHasSuffix(v string) predicate.AgentProfile {
	return predicate.AgentProfile(sql.FieldHasSuffix(FieldTeam, v))
}

// TeamIsNil applies the IsNil predicate on the "team" field.
func TeamIsNil() predicate.AgentProfile {
	return predicate.AgentProfile(sql.FieldIsNull(FieldTeam))
}

// TeamNotNil applies the NotNil predicate on the "team" field.
func TeamNotNil() predicate.AgentProfile {
	return predicate.AgentProfile(sql.FieldNotNull(FieldTeam))
}

// TeamEqualFold applies the EqualFold predicate on the "team" field.
func TeamEqualFold(v string) predicate.AgentProfile {
	return predicate.AgentProfile(sql.FieldEqualFold(FieldTeam, v))
}

// TeamContainsFold applies the ContainsFold predicate on the "team" field.
func TeamContainsFold(v string) predicate.AgentProfile {
	return predicate.AgentProfile(sql.FieldContainsFold(FieldTeam, v))
}

// ReportsToEQ applies the EQ predicate on the "reports_to" field.
func ReportsToEQ(v string) predicate.AgentProfile {
	return predicate.AgentProfile(sql.FieldEQ(FieldReportsTo, v))
}

// ReportsToNEQ applies the NEQ predicate on the "reports_to" field.
func ReportsToNEQ(v string) predicate.AgentProfile {
	return predicate.AgentProfile(sql.FieldNEQ(FieldReportsTo, v))
}

// ReportsToIn applies the In predicate on the "reports_to" field.
func ReportsToIn(vs ...string) predicate.AgentProfile {
	return predicate.AgentProfile(sql.FieldIn(FieldReportsTo, vs...))
}

// ReportsToNotIn applies the NotIn predicate on the "reports_to" field.
func ReportsToNotIn(vs ...string) predicate.AgentProfile {
	return predicate.AgentProfile(sql.FieldNotIn(FieldReportsTo, vs...))
}

// ReportsToGT applies the GT predicate on the "reports_to" field.
func ReportsToGT(v string) predicate.AgentProfile {
	return predicate.AgentProfile(sql.FieldGT(FieldReportsTo, v))
}

// ReportsToGTE applies the GTE predicate on the "reports_to" field.
func ReportsToGTE(v string) predicate.AgentProfile {
	return predicate.AgentProfile(sql.FieldGTE(FieldReportsTo, v))
}

// ReportsToLT applies the LT predicate on the "reports_to" field.
func ReportsToLT(v string) predicate.AgentProfile {
	return predicate.AgentProfile(sql.FieldLT(FieldReportsTo, v))
}

// ReportsToLTE applies the LTE predicate on the "reports_to" field.
func ReportsToLTE(v string) predicate.AgentProfile {
	return predicate.AgentProfile(sql.FieldLTE(FieldReportsTo, v))
}

// ReportsToContains applies the Contains predicate on the "reports_to" field.
func ReportsToContains(v string) predicate.AgentProfile {
	return predicate.AgentProfile(sql.FieldContains(FieldReportsTo, v))
}

// ReportsToHasPrefix applies the HasPrefix predicate on the "reports_to" field.
func ReportsToHasPrefix(v string) predicate.AgentProfile {
	return predicate.AgentProfile(sql.FieldHasPrefix(FieldReportsTo, v))
}

// ReportsToHasSuffix applies the HasSuffix predicate on the "reports_to" field.
func ReportsToHasSuffix(v string) predicate.AgentProfile {
	return predicate.AgentProfile(sql.FieldHasSuffix(FieldReportsTo, v))
}

// ReportsToIsNil applies the IsNil predicate on the "reports_to" field.
func ReportsToIsNil() predicate.AgentProfile {
	return predicate.AgentProfile(sql.FieldIsNull(FieldReportsTo))
}

// ReportsToNotNil applies the NotNil predicate on the "reports_to" field.
func ReportsToNotNil() predicate.AgentProfile {
	return predicate.AgentProfile(sql.FieldNotNull(FieldReportsTo))
}

// ReportsToEqualFold applies the EqualFold predicate on the "reports_to" field.
func ReportsToEqualFold(v string) predicate.AgentProfile {
	return predicate.AgentProfile(sql.FieldEqualFold(FieldReportsTo, v))
}

// ReportsToContainsFold applies the ContainsFold predicate on the "reports_to" field.
func ReportsToContainsFold(v string) predicate.AgentProfile {
	return predicate.AgentProfile(sql.FieldContainsFold(FieldReportsTo, v))
}

// RoleEQ applies the EQ predicate on the "role" field.
func RoleEQ(v string) predicate.AgentProfile {
	return predicate.AgentProfile(sql.FieldEQ(FieldRole, v))
}

// RoleNEQ applies the NEQ predicate on the "role" field.
func RoleNEQ(v string) predicate.AgentProfile {
	return predicate.AgentProfile(sql.FieldNEQ(FieldRole, v))
}

// RoleIn applies the In predicate on the "role" field.
func RoleIn(vs ...string) predicate.AgentProfile {
	return predicate.AgentProfile(sql.FieldIn(FieldRole, vs...))
}

// RoleNotIn applies the NotIn predicate on the "role" field.
func RoleNotIn(vs ...string) predicate.AgentProfile {
	return predicate.AgentProfile(sql.FieldNotIn(FieldRole, vs...))
}

// RoleGT applies the GT predicate on the "role" field.
func RoleGT(v string) predicate.AgentProfile {
	return predicate.AgentProfile(sql.FieldGT(FieldRole, v))
}

// RoleGTE applies the GTE predicate on the "role" field.
func RoleGTE(v string) predicate.AgentProfile {
	return predicate.AgentProfile(sql.FieldGTE(FieldRole, v))
}

// RoleLT applies the LT predicate on the "role" field.
func RoleLT(v string) predicate.AgentProfile {
	return predicate.AgentProfile(sql.FieldLT(FieldRole, v))
}

// RoleLTE applies the LTE predicate on the "role" field.
func RoleLTE(v string) predicate.AgentProfile {
	return predicate.AgentProfile(sql.FieldLTE(FieldRole, v))
}

// RoleContains applies the Contains predicate on the "role" field.
func RoleContains(v string) predicate.AgentProfile {
	return predicate.AgentProfile(sql.FieldContains(FieldRole, v))
}

// RoleHasPrefix applies the HasPrefix predicate on the "role" field.
func RoleHasPrefix(v string) predicate.AgentProfile {
	return predicate.AgentProfile(sql.FieldHasPrefix(FieldRole, v))
}

// RoleHasSuffix applies the HasSuffix predicate on the "role" field.
func RoleHasSuffix(v string) predicate.AgentProfile {
	return predicate.AgentProfile(sql.FieldHasSuffix(FieldRole, v))
}

// RoleEqualFold applies the EqualFold predicate on the "role" field.
func RoleEqualFold(v string) predicate.AgentProfile {
	return predicate.AgentProfile(sql.FieldEqualFold(FieldRole, v))
}

// RoleContainsFold applies the ContainsFold predicate on the "role" field.
func RoleContainsFold(v string) predicate.AgentProfile {
	return predicate.AgentProfile(sql.FieldContainsFold(FieldRole, v))
}

// IsLeadEQ applies the EQ predicate on the "is_lead" field.
func IsLeadEQ(v bool) predicate.AgentProfile {
	return predicate.AgentProfile(sql.FieldEQ(FieldIsLead, v))
}

// IsLeadNEQ applies the NEQ predicate on the "is_lead" field.
func IsLeadNEQ(v bool) predicate.AgentProfile {
	return predicate.AgentProfile(sql.FieldNEQ(FieldIsLead, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.AgentProfile {
	return predicate.AgentProfile(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.AgentProfile {
	return predicate.AgentProfile(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.AgentProfile {
	return predicate.AgentProfile(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.AgentProfile {
	return predicate.AgentProfile(sql.FieldNotIn(FieldStatus, vs...))
}

// LastActiveEQ applies the EQ predicate on the "last_active" field.
func LastActiveEQ(v time.Time) predicate.AgentProfile {
	return predicate.AgentProfile(sql.FieldEQ(FieldLastActive, v))
}

// LastActiveNEQ applies the NEQ predicate on the "last_active" field.
func LastActiveNEQ(v time.Time) predicate.AgentProfile {
	return predicate.AgentProfile(sql.FieldNEQ(FieldLastActive, v))
}

// LastActiveIn applies the In predicate on the "last_active" field.
func LastActiveIn(vs ...time.Time) predicate.AgentProfile {
	return predicate.AgentProfile(sql.FieldIn(FieldLastActive, vs...))
}

// LastActiveNotIn applies the NotIn predicate on the "last_active" field.
func LastActiveNotIn(vs ...time.Time) predicate.AgentProfile {
	return predicate.AgentProfile(sql.FieldNotIn(FieldLastActive, vs...))
}

// LastActiveGT applies the GT predicate on the "last_active" field.
func LastActiveGT(v time.Time) predicate.AgentProfile {
	return predicate.AgentProfile(sql.FieldGT(FieldLastActive, v))
}

// LastActiveGTE applies the GTE predicate on the "last_active" field.
func LastActiveGTE(v time.Time) predicate.AgentProfile {
	return predicate.AgentProfile(sql.FieldGTE(FieldLastActive, v))
}

// LastActiveLT applies the LT predicate on the "last_active" field.
func LastActiveLT(v time.Time) predicate.AgentProfile {
	return predicate.AgentProfile(sql.FieldLT(FieldLastActive, v))
}

// LastActiveLTE applies the LTE predicate on the "last_active" field.
func LastActiveLTE(v time.Time) predicate.AgentProfile {
	return predicate.AgentProfile(sql.FieldLTE(FieldLastActive, v))
}

// LastActiveIsNil applies the IsNil predicate on the "last_active" field.
func LastActiveIsNil() predicate.AgentProfile {
	return predicate.AgentProfile(sql.FieldIsNull(FieldLastActive))
}

// LastActiveNotNil applies the NotNil predicate on the "last_active" field.
func LastActiveNotNil() predicate.AgentProfile {
	return predicate.AgentProfile(sql.FieldNotNull(FieldLastActive))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AgentProfile {
	return predicate.AgentProfile(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AgentProfile {
	return predicate.AgentProfile(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AgentProfile {
	return predicate.AgentProfile(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AgentProfile {
	return predicate.AgentProfile(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AgentProfile {
	return predicate.AgentProfile(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AgentProfile {
	return predicate.AgentProfile(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AgentProfile {
	return predicate.AgentProfile(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AgentProfile {
	return predicate.AgentProfile(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AgentProfile) predicate.AgentProfile {
	return predicate.AgentProfile(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AgentProfile) predicate.AgentProfile {
	return predicate.AgentProfile(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AgentProfile) predicate.AgentProfile {
	return predicate.AgentProfile(sql.NotPredicates(p))
}
