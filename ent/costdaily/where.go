// Code generated by ent, DO NOT EDIT.

package costdaily

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/gearbox-dev/gearbox/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.CostDaily {
	return predicate.CostDaily(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.CostDaily {
	return predicate.CostDaily(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.CostDaily {
	return predicate.CostDaily(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.CostDaily {
	return predicate.CostDaily(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.CostDaily {
	return predicate.CostDaily(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.CostDaily {
	return predicate.CostDaily(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.CostDaily {
	return predicate.CostDaily(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.CostDaily {
	return predicate.CostDaily(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.CostDaily {
	return predicate.CostDaily(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.CostDaily {
	return predicate.CostDaily(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.CostDaily {
	return predicate.CostDaily(sql.FieldContainsFold(FieldID, id))
}

// TotalUsd applies equality check predicate on the "total_usd" field. It's identical to TotalUsdEQ.
func TotalUsd(v float64) predicate.CostDaily {
	return predicate.CostDaily(sql.FieldEQ(FieldTotalUsd, v))
}

// CallCount applies equality check predicate on the "call_count" field. It's identical to CallCountEQ.
func CallCount(v int) predicate.CostDaily {
	return predicate.CostDaily(sql.FieldEQ(FieldCallCount, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.CostDaily {
	return predicate.CostDaily(sql.FieldEQ(FieldUpdatedAt, v))
}

// TotalUsdEQ applies the EQ predicate on the "total_usd" field.
func TotalUsdEQ(v float64) predicate.CostDaily {
	return predicate.CostDaily(sql.FieldEQ(FieldTotalUsd, v))
}

// TotalUsdNEQ applies the NEQ predicate on the "total_usd" field.
func TotalUsdNEQ(v float64) predicate.CostDaily {
	return predicate.CostDaily(sql.FieldNEQ(FieldTotalUsd, v))
}

// TotalUsdIn applies the In predicate on the "total_usd" field.
func TotalUsdIn(vs ...float64) predicate.CostDaily {
	return predicate.CostDaily(sql.FieldIn(FieldTotalUsd, vs...))
}

// TotalUsdNotIn applies the NotIn predicate on the "total_usd" field.
func TotalUsdNotIn(vs ...float64) predicate.CostDaily {
	return predicate.CostDaily(sql.FieldNotIn(FieldTotalUsd, vs...))
}

// TotalUsdGT applies the GT predicate on the "total_usd" field.
func TotalUsdGT(v float64) predicate.CostDaily {
	return predicate.CostDaily(sql.FieldGT(FieldTotalUsd, v))
}

// TotalUsdGTE applies the GTE predicate on the "total_usd" field.
func TotalUsdGTE(v float64) predicate.CostDaily {
	return predicate.CostDaily(sql.FieldGTE(FieldTotalUsd, v))
}

// TotalUsdLT applies the LT predicate on the "total_usd" field.
func TotalUsdLT(v float64) predicate.CostDaily {
	return predicate.CostDaily(sql.FieldLT(FieldTotalUsd, v))
}

// TotalUsdLTE applies the LTE predicate on the "total_usd" field.
func TotalUsdLTE(v float64) predicate.CostDaily {
	return predicate.CostDaily(sql.FieldLTE(FieldTotalUsd, v))
}

// CallCountEQ applies the EQ predicate on the "call_count" field.
func CallCountEQ(v int) predicate.CostDaily {
	return predicate.CostDaily(sql.FieldEQ(FieldCallCount, v))
}

// CallCountNEQ applies the NEQ predicate on the "call_count" field.
func CallCountNEQ(v int) predicate.CostDaily {
	return predicate.CostDaily(sql.FieldNEQ(FieldCallCount, v))
}

// CallCountIn applies the In predicate on the "call_count" field.
func CallCountIn(vs ...int) predicate.CostDaily {
	return predicate.CostDaily(sql.FieldIn(FieldCallCount, vs...))
}

// CallCountNotIn applies the NotIn predicate on the "call_count" field.
func CallCountNotIn(vs ...int) predicate.CostDaily {
	return predicate.CostDaily(sql.FieldNotIn(FieldCallCount, vs...))
}

// CallCountGT applies the GT predicate on the "call_count" field.
func CallCountGT(v int) predicate.CostDaily {
	return predicate.CostDaily(sql.FieldGT(FieldCallCount, v))
}

// CallCountGTE applies the GTE predicate on the "call_count" field.
func CallCountGTE(v int) predicate.CostDaily {
	return predicate.CostDaily(sql.FieldGTE(FieldCallCount, v))
}

// CallCountLT applies the LT predicate on the "call_count" field.
func CallCountLT(v int) predicate.CostDaily {
	return predicate.CostDaily(sql.FieldLT(FieldCallCount, v))
}

// CallCountLTE applies the LTE predicate on the "call_count" field.
func CallCountLTE(v int) predicate.CostDaily {
	return predicate.CostDaily(sql.FieldLTE(FieldCallCount, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.CostDaily {
	return predicate.CostDaily(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.CostDaily {
	return predicate.CostDaily(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.CostDaily {
	return predicate.CostDaily(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.CostDaily {
	return predicate.CostDaily(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.CostDaily {
	return predicate.CostDaily(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.CostDaily {
	return predicate.CostDaily(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.CostDaily {
	return predicate.CostDaily(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.CostDaily {
	return predicate.CostDaily(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CostDaily) predicate.CostDaily {
	return predicate.CostDaily(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CostDaily) predicate.CostDaily {
	return predicate.CostDaily(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CostDaily) predicate.CostDaily {
	return predicate.CostDaily(sql.NotPredicates(p))
}
