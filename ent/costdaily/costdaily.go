// Code generated by ent, DO NOT EDIT.

package costdaily

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the costdaily type in the database.
	Label = "cost_daily"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTotalUsd holds the string denoting the total_usd field in the database.
	FieldTotalUsd = "total_usd"
	// FieldCallCount holds the string denoting the call_count field in the database.
	FieldCallCount = "call_count"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the costdaily in the database.
	Table = "cost_dailies"
)

// Columns holds all SQL columns for costdaily fields.
var Columns = []string{
	FieldID,
	FieldTotalUsd,
	FieldCallCount,
	FieldUpdatedAt,
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
	// DefaultTotalUsd holds the default value on creation for the "total_usd" field.
	DefaultTotalUsd float64
	// DefaultCallCount holds the default value on creation for the "call_count" field.
	DefaultCallCount int
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the CostDaily queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTotalUsd orders the results by the total_usd field.
func ByTotalUsd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalUsd, opts...).ToFunc()
}

// ByCallCount orders the results by the call_count field.
func ByCallCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCallCount, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
