// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/gearbox-dev/gearbox/ent/costdaily"
)

// CostDaily is the model entity for the CostDaily schema.
type CostDaily struct {
	config `json:"-"`
	// ID of the ent.
	// Day key, YYYY-MM-DD in UTC
	ID string `json:"id,omitempty"`
	// TotalUsd holds the value of the "total_usd" field.
	TotalUsd float64 `json:"total_usd,omitempty"`
	// CallCount holds the value of the "call_count" field.
	CallCount int `json:"call_count,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CostDaily) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case costdaily.FieldTotalUsd:
			values[i] = new(sql.NullFloat64)
		case costdaily.FieldCallCount:
			values[i] = new(sql.NullInt64)
		case costdaily.FieldID:
			values[i] = new(sql.NullString)
		case costdaily.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CostDaily fields.
func (_m *CostDaily) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case costdaily.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case costdaily.FieldTotalUsd:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field total_usd", values[i])
			} else if value.Valid {
				_m.TotalUsd = value.Float64
			}
		case costdaily.FieldCallCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field call_count", values[i])
			} else if value.Valid {
				_m.CallCount = int(value.Int64)
			}
		case costdaily.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CostDaily.
// This includes values selected through modifiers, order, etc.
func (_m *CostDaily) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this CostDaily.
// Note that you need to call CostDaily.Unwrap() before calling this method if this CostDaily
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CostDaily) Update() *CostDailyUpdateOne {
	return NewCostDailyClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CostDaily entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CostDaily) Unwrap() *CostDaily {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CostDaily is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CostDaily) String() string {
	var builder strings.Builder
	builder.WriteString("CostDaily(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("total_usd=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalUsd))
	builder.WriteString(", ")
	builder.WriteString("call_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.CallCount))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// CostDailies is a parsable slice of CostDaily.
type CostDailies []*CostDaily
