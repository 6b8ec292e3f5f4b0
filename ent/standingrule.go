// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/gearbox-dev/gearbox/ent/standingrule"
)

// StandingRule is the model entity for the StandingRule schema.
type StandingRule struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Single-segment glob: "category:action" or "category:*"
	ActionPattern string `json:"action_pattern,omitempty"`
	// Scope holds the value of the "scope" field.
	Scope standingrule.Scope `json:"scope,omitempty"`
	// Verdict holds the value of the "verdict" field.
	Verdict standingrule.Verdict `json:"verdict,omitempty"`
	// CreatedBy holds the value of the "created_by" field.
	CreatedBy string `json:"created_by,omitempty"`
	// ApprovalCount holds the value of the "approval_count" field.
	ApprovalCount int `json:"approval_count,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Expired rules are excluded by query, never returned
	ExpiresAt    *time.Time `json:"expires_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*StandingRule) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case standingrule.FieldApprovalCount:
			values[i] = new(sql.NullInt64)
		case standingrule.FieldID, standingrule.FieldActionPattern, standingrule.FieldScope, standingrule.FieldVerdict, standingrule.FieldCreatedBy:
			values[i] = new(sql.NullString)
		case standingrule.FieldCreatedAt, standingrule.FieldExpiresAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the StandingRule fields.
func (_m *StandingRule) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case standingrule.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case standingrule.FieldActionPattern:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field action_pattern", values[i])
			} else if value.Valid {
				_m.ActionPattern = value.String
			}
		case standingrule.FieldScope:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field scope", values[i])
			} else if value.Valid {
				_m.Scope = standingrule.Scope(value.String)
			}
		case standingrule.FieldVerdict:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field verdict", values[i])
			} else if value.Valid {
				_m.Verdict = standingrule.Verdict(value.String)
			}
		case standingrule.FieldCreatedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field created_by", values[i])
			} else if value.Valid {
				_m.CreatedBy = value.String
			}
		case standingrule.FieldApprovalCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field approval_count", values[i])
			} else if value.Valid {
				_m.ApprovalCount = int(value.Int64)
			}
		case standingrule.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case standingrule.FieldExpiresAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field expires_at", values[i])
			} else if value.Valid {
				_m.ExpiresAt = new(time.Time)
				*_m.ExpiresAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the StandingRule.
// This includes values selected through modifiers, order, etc.
func (_m *StandingRule) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this StandingRule.
// Note that you need to call StandingRule.Unwrap() before calling this method if this StandingRule
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *StandingRule) Update() *StandingRuleUpdateOne {
	return NewStandingRuleClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the StandingRule entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *StandingRule) Unwrap() *StandingRule {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: StandingRule is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *StandingRule) String() string {
	var builder strings.Builder
	builder.WriteString("StandingRule(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("action_pattern=")
	builder.WriteString(_m.ActionPattern)
	builder.WriteString(", ")
	builder.WriteString("scope=")
	builder.WriteString(fmt.Sprintf("%v", _m.Scope))
	builder.WriteString(", ")
	builder.WriteString("verdict=")
	builder.WriteString(fmt.Sprintf("%v", _m.Verdict))
	builder.WriteString(", ")
	builder.WriteString("created_by=")
	builder.WriteString(_m.CreatedBy)
	builder.WriteString(", ")
	builder.WriteString("approval_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ApprovalCount))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.ExpiresAt; v != nil {
		builder.WriteString("expires_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// StandingRules is a parsable slice of StandingRule.
type StandingRules []*StandingRule
