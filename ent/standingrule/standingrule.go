// Code generated by ent, DO NOT EDIT.

package standingrule

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the standingrule type in the database.
	Label = "standing_rule"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldActionPattern holds the string denoting the action_pattern field in the database.
	FieldActionPattern = "action_pattern"
	// FieldScope holds the string denoting the scope field in the database.
	FieldScope = "scope"
	// FieldVerdict holds the string denoting the verdict field in the database.
	FieldVerdict = "verdict"
	// FieldCreatedBy holds the string denoting the created_by field in the database.
	FieldCreatedBy = "created_by"
	// FieldApprovalCount holds the string denoting the approval_count field in the database.
	FieldApprovalCount = "approval_count"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldExpiresAt holds the string denoting the expires_at field in the database.
	FieldExpiresAt = "expires_at"
	// Table holds the table name of the standingrule in the database.
	Table = "standing_rules"
)

// Columns holds all SQL columns for standingrule fields.
var Columns = []string{
	FieldID,
	FieldActionPattern,
	FieldScope,
	FieldVerdict,
	FieldCreatedBy,
	FieldApprovalCount,
	FieldCreatedAt,
	FieldExpiresAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultApprovalCount holds the default value on creation for the "approval_count" field.
	DefaultApprovalCount int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Scope defines the type for the "scope" enum field.
type Scope string

// ScopeGlobal is the default value of the Scope enum.
const DefaultScope = ScopeGlobal

// Scope values.
const (
	ScopeGlobal       Scope = "global"
	ScopeConversation Scope = "conversation"
)

func (s Scope) String() string {
	return string(s)
}

// ScopeValidator is a validator for the "scope" field enum values. It is called by the builders before save.
func ScopeValidator(s Scope) error {
	switch s {
	case ScopeGlobal, ScopeConversation:
		return nil
	default:
		return fmt.Errorf("standingrule: invalid enum value for scope field: %q", s)
	}
}

// Verdict defines the type for the "verdict" enum field.
type Verdict string

// VerdictApprove is the default value of the Verdict enum.
const DefaultVerdict = VerdictApprove

// Verdict values.
const (
	VerdictApprove Verdict = "approve"
	VerdictDeny    Verdict = "deny"
)

func (v Verdict) String() string {
	return string(v)
}

// VerdictValidator is a validator for the "verdict" field enum values. It is called by the builders before save.
func VerdictValidator(v Verdict) error {
	switch v {
	case VerdictApprove, VerdictDeny:
		return nil
	default:
		return fmt.Errorf("standingrule: invalid enum value for verdict field: %q", v)
	}
}

// OrderOption defines the ordering options for the StandingRule queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByActionPattern orders the results by the action_pattern field.
func ByActionPattern(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActionPattern, opts...).ToFunc()
}

// ByScope orders the results by the scope field.
func ByScope(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScope, opts...).ToFunc()
}

// ByVerdict orders the results by the verdict field.
func ByVerdict(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVerdict, opts...).ToFunc()
}

// ByCreatedBy orders the results by the created_by field.
func ByCreatedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedBy, opts...).ToFunc()
}

// ByApprovalCount orders the results by the approval_count field.
func ByApprovalCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldApprovalCount, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByExpiresAt orders the results by the expires_at field.
func ByExpiresAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpiresAt, opts...).ToFunc()
}
