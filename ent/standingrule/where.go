// Code generated by ent, DO NOT EDIT.

package standingrule

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/gearbox-dev/gearbox/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.StandingRule {
	return predicate.StandingRule(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.StandingRule {
	return predicate.StandingRule(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.StandingRule {
	return predicate.StandingRule(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.StandingRule {
	return predicate.StandingRule(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.StandingRule {
	return predicate.StandingRule(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.StandingRule {
	return predicate.StandingRule(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.StandingRule {
	return predicate.StandingRule(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.StandingRule {
	return predicate.StandingRule(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.StandingRule {
	return predicate.StandingRule(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.StandingRule {
	return predicate.StandingRule(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.StandingRule {
	return predicate.StandingRule(sql.FieldContainsFold(FieldID, id))
}

// ActionPattern applies equality check predicate on the "action_pattern" field. It's identical to ActionPatternEQ.
func ActionPattern(v string) predicate.StandingRule {
	return predicate.StandingRule(sql.FieldEQ(FieldActionPattern, v))
}

// CreatedBy applies equality check predicate on the "created_by" field. It's identical to CreatedByEQ.
func CreatedBy(v string) predicate.StandingRule {
	return predicate.StandingRule(sql.FieldEQ(FieldCreatedBy, v))
}

// ApprovalCount applies equality check predicate on the "approval_count" field. It's identical to ApprovalCountEQ.
func ApprovalCount(v int) predicate.StandingRule {
	return predicate.StandingRule(sql.FieldEQ(FieldApprovalCount, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.StandingRule {
	return predicate.StandingRule(sql.FieldEQ(FieldCreatedAt, v))
}

// ExpiresAt applies equality check predicate on the "expires_at" field. It's identical to ExpiresAtEQ.
func ExpiresAt(v time.Time) predicate.StandingRule {
	return predicate.StandingRule(sql.FieldEQ(FieldExpiresAt, v))
}

// ActionPatternEQ applies the EQ predicate on the "action_pattern" field.
func ActionPatternEQ(v string) predicate.StandingRule {
	return predicate.StandingRule(sql.FieldEQ(FieldActionPattern, v))
}

// ActionPatternNEQ applies the NEQ predicate on the "action_pattern" field.
func ActionPatternNEQ(v string) predicate.StandingRule {
	return predicate.StandingRule(sql.FieldNEQ(FieldActionPattern, v))
}

// ActionPatternIn applies the In predicate on the "action_pattern" field.
func ActionPatternIn(vs ...string) predicate.StandingRule {
	return predicate.StandingRule(sql.FieldIn(FieldActionPattern, vs...))
}

// ActionPatternNotIn applies the NotIn predicate on the "action_pattern" field.
func ActionPatternNotIn(vs ...string) predicate.StandingRule {
	return predicate.StandingRule(sql.FieldNotIn(FieldActionPattern, vs...))
}

// ActionPatternGT applies the GT predicate on the "action_pattern" field.
func ActionPatternGT(v string) predicate.StandingRule {
	return predicate.StandingRule(sql.FieldGT(FieldActionPattern, v))
}

// ActionPatternGTE applies the GTE predicate on the "action_pattern" field.
func ActionPatternGTE(v string) predicate.StandingRule {
	return predicate.StandingRule(sql.FieldGTE(FieldActionPattern, v))
}

// ActionPatternLT applies the LT predicate on the "action_pattern" field.
func ActionPatternLT(v string) predicate.StandingRule {
	return predicate.StandingRule(sql.FieldLT(FieldActionPattern, v))
}

// ActionPatternLTE applies the LTE predicate on the "action_pattern" field.
func ActionPatternLTE(v string) predicate.StandingRule {
	return predicate.StandingRule(sql.FieldLTE(FieldActionPattern, v))
}

// ActionPatternContains applies the Contains predicate on the "action_pattern" field.
func ActionPatternContains(v string) predicate.StandingRule {
	return predicate.StandingRule(sql.FieldContains(FieldActionPattern, v))
}

// ActionPatternHasPrefix applies the HasPrefix predicate on the "action_pattern" field.
func ActionPatternHasPrefix(v string) predicate.StandingRule {
	return predicate.StandingRule(sql.FieldHasPrefix(FieldActionPattern, v))
}

// ActionPatternHasSuffix applies the HasSuffix predicate on the "action_pattern" field.
func ActionPatternHasSuffix(v string) predicate.StandingRule {
	return predicate.StandingRule(sql.FieldHasSuffix(FieldActionPattern, v))
}

// ActionPatternEqualFold applies the EqualFold predicate on the "action_pattern" field.
func ActionPatternEqualFold(v string) predicate.StandingRule {
	return predicate.StandingRule(sql.FieldEqualFold(FieldActionPattern, v))
}

// ActionPatternContainsFold applies the ContainsFold predicate on the "action_pattern" field.
func ActionPatternContainsFold(v string) predicate.StandingRule {
	return predicate.StandingRule(sql.FieldContainsFold(FieldActionPattern, v))
}

// ScopeEQ applies the EQ predicate on the "scope" field.
func ScopeEQ(v Scope) predicate.StandingRule {
	return predicate.StandingRule(sql.FieldEQ(FieldScope, v))
}

// ScopeNEQ applies the NEQ predicate on the "scope" field.
func ScopeNEQ(v Scope) predicate.StandingRule {
	return predicate.StandingRule(sql.FieldNEQ(FieldScope, v))
}

// ScopeIn applies the In predicate on the "scope" field.
func ScopeIn(vs ...Scope) predicate.StandingRule {
	return predicate.StandingRule(sql.FieldIn(FieldScope, vs...))
}

// ScopeNotIn applies the NotIn predicate on the "scope" field.
func ScopeNotIn(vs ...Scope) predicate.StandingRule {
	return predicate.StandingRule(sql.FieldNotIn(FieldScope, vs...))
}

// VerdictEQ applies the EQ predicate on the "verdict" field.
func VerdictEQ(v Verdict) predicate.StandingRule {
	return predicate.StandingRule(sql.FieldEQ(FieldVerdict, v))
}

// VerdictNEQ applies the NEQ predicate on the "verdict" field.
func VerdictNEQ(v Verdict) predicate.StandingRule {
	return predicate.StandingRule(sql.FieldNEQ(FieldVerdict, v))
}

// VerdictIn applies the In predicate on the "verdict" field.
func VerdictIn(vs ...Verdict) predicate.StandingRule {
	return predicate.StandingRule(sql.FieldIn(FieldVerdict, vs...))
}

// VerdictNotIn applies the NotIn predicate on the "verdict" field.
func VerdictNotIn(vs ...Verdict) predicate.StandingRule {
	return predicate.StandingRule(sql.FieldNotIn(FieldVerdict, vs...))
}

// CreatedByEQ applies the EQ predicate on the "created_by" field.
func CreatedByEQ(v string) predicate.StandingRule {
	return predicate.StandingRule(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedByNEQ applies the NEQ predicate on the "created_by" field.
func CreatedByNEQ(v string) predicate.StandingRule {
	return predicate.StandingRule(sql.FieldNEQ(FieldCreatedBy, v))
}

// CreatedByIn applies the In predicate on the "created_by" field.
func CreatedByIn(vs ...string) predicate.StandingRule {
	return predicate.StandingRule(sql.FieldIn(FieldCreatedBy, vs...))
}

// CreatedByNotIn applies the NotIn predicate on the "created_by" field.
func CreatedByNotIn(vs ...string) predicate.StandingRule {
	return predicate.StandingRule(sql.FieldNotIn(FieldCreatedBy, vs...))
}

// CreatedByGT applies the GT predicate on the "created_by" field.
func CreatedByGT(v string) predicate.StandingRule {
	return predicate.StandingRule(sql.FieldGT(FieldCreatedBy, v))
}

// CreatedByGTE applies the GTE predicate on the "created_by" field.
func CreatedByGTE(v string) predicate.StandingRule {
	return predicate.StandingRule(sql.FieldGTE(FieldCreatedBy, v))
}

// CreatedByLT applies the LT predicate on the "created_by" field.
func CreatedByLT(v string) predicate.StandingRule {
	return predicate.StandingRule(sql.FieldLT(FieldCreatedBy, v))
}

// CreatedByLTE applies the LTE predicate on the "created_by" field.
func CreatedByLTE(v string) predicate.StandingRule {
	return predicate.StandingRule(sql.FieldLTE(FieldCreatedBy, v))
}

// CreatedByContains applies the Contains predicate on the "created_by" field.
func CreatedByContains(v string) predicate.StandingRule {
	return predicate.StandingRule(sql.FieldContains(FieldCreatedBy, v))
}

// CreatedByHasPrefix applies the HasPrefix predicate on the "created_by" field.
func CreatedByHasPrefix(v string) predicate.StandingRule {
	return predicate.StandingRule(sql.FieldHasPrefix(FieldCreatedBy, v))
}

// CreatedByHasSuffix applies the HasSuffix predicate on the "created_by" field.
func CreatedByHasSuffix(v string) predicate.StandingRule {
	return predicate.StandingRule(sql.FieldHasSuffix(FieldCreatedBy, v))
}

// CreatedByEqualFold applies the EqualFold predicate on the "created_by" field.
func CreatedByEqualFold(v string) predicate.StandingRule {
	return predicate.StandingRule(sql.FieldEqualFold(FieldCreatedBy, v))
}

// CreatedByContainsFold applies the ContainsFold predicate on the "created_by" field.
func CreatedByContainsFold(v string) predicate.StandingRule {
	return predicate.StandingRule(sql.FieldContainsFold(FieldCreatedBy, v))
}

// ApprovalCountEQ applies the EQ predicate on the "approval_count" field.
func ApprovalCountEQ(v int) predicate.StandingRule {
	return predicate.StandingRule(sql.FieldEQ(FieldApprovalCount, v))
}

// ApprovalCountNEQ applies the NEQ predicate on the "approval_count" field.
func ApprovalCountNEQ(v int) predicate.StandingRule {
	return predicate.StandingRule(sql.FieldNEQ(FieldApprovalCount, v))
}

// ApprovalCountIn applies the In predicate on the "approval_count" field.
func ApprovalCountIn(vs ...int) predicate.StandingRule {
	return predicate.StandingRule(sql.FieldIn(FieldApprovalCount, vs...))
}

// ApprovalCountNotIn applies the NotIn predicate on the "approval_count" field.
func ApprovalCountNotIn(vs ...int) predicate.StandingRule {
	return predicate.StandingRule(sql.FieldNotIn(FieldApprovalCount, vs...))
}

// ApprovalCountGT applies the GT predicate on the "approval_count" field.
func ApprovalCountGT(v int) predicate.StandingRule {
	return predicate.StandingRule(sql.FieldGT(FieldApprovalCount, v))
}

// ApprovalCountGTE applies the GTE predicate on the "approval_count" field.
func ApprovalCountGTE(v int) predicate.StandingRule {
	return predicate.StandingRule(sql.FieldGTE(FieldApprovalCount, v))
}

// ApprovalCountLT applies the LT predicate on the "approval_count" field.
func ApprovalCountLT(v int) predicate.StandingRule {
	return predicate.StandingRule(sql.FieldLT(FieldApprovalCount, v))
}

// ApprovalCountLTE applies the LTE predicate on the "approval_count" field.
func ApprovalCountLTE(v int) predicate.StandingRule {
	return predicate.StandingRule(sql.FieldLTE(FieldApprovalCount, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.StandingRule {
	return predicate.StandingRule(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.StandingRule {
	return predicate.StandingRule(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.StandingRule {
	return predicate.StandingRule(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.StandingRule {
	return predicate.StandingRule(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.StandingRule {
	return predicate.StandingRule(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.StandingRule {
	return predicate.StandingRule(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.StandingRule {
	return predicate.StandingRule(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.StandingRule {
	return predicate.StandingRule(sql.FieldLTE(FieldCreatedAt, v))
}

// ExpiresAtEQ applies the EQ predicate on the "expires_at" field.
func ExpiresAtEQ(v time.Time) predicate.StandingRule {
	return predicate.StandingRule(sql.FieldEQ(FieldExpiresAt, v))
}

// ExpiresAtNEQ applies the NEQ predicate on the "expires_at" field.
func ExpiresAtNEQ(v time.Time) predicate.StandingRule {
	return predicate.StandingRule(sql.FieldNEQ(FieldExpiresAt, v))
}

// ExpiresAtIn applies the In predicate on the "expires_at" field.
func ExpiresAtIn(vs ...time.Time) predicate.StandingRule {
	return predicate.StandingRule(sql.FieldIn(FieldExpiresAt, vs...))
}

// ExpiresAtNotIn applies the NotIn predicate on the "expires_at" field.
func ExpiresAtNotIn(vs ...time.Time) predicate.StandingRule {
	return predicate.StandingRule(sql.FieldNotIn(FieldExpiresAt, vs...))
}

// ExpiresAtGT applies the GT predicate on the "expires_at" field.
func ExpiresAtGT(v time.Time) predicate.StandingRule {
	return predicate.StandingRule(sql.FieldGT(FieldExpiresAt, v))
}

// ExpiresAtGTE applies the GTE predicate on the "expires_at" field.
func ExpiresAtGTE(v time.Time) predicate.StandingRule {
	return predicate.StandingRule(sql.FieldGTE(FieldExpiresAt, v))
}

// ExpiresAtLT applies the LT predicate on the "expires_at" field.
func ExpiresAtLT(v time.Time) predicate.StandingRule {
	return predicate.StandingRule(sql.FieldLT(FieldExpiresAt, v))
}

// ExpiresAtLTE applies the LTE predicate on the "expires_at" field.
func ExpiresAtLTE(v time.Time) predicate.StandingRule {
	return predicate.StandingRule(sql.FieldLTE(FieldExpiresAt, v))
}

// ExpiresAtIsNil applies the IsNil predicate on the "expires_at" field.
func ExpiresAtIsNil() predicate.StandingRule {
	return predicate.StandingRule(sql.FieldIsNull(FieldExpiresAt))
}

// ExpiresAtNotNil applies the NotNil predicate on the "expires_at" field.
func ExpiresAtNotNil() predicate.StandingRule {
	return predicate.StandingRule(sql.FieldNotNull(FieldExpiresAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.StandingRule) predicate.StandingRule {
	return predicate.StandingRule(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.StandingRule) predicate.StandingRule {
	return predicate.StandingRule(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.StandingRule) predicate.StandingRule {
	return predicate.StandingRule(sql.NotPredicates(p))
}
