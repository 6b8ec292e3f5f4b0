package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// CostDaily holds the schema definition for the daily LLM spend
// aggregate the cost tracker alerts against.
type CostDaily struct {
	ent.Schema
}

// Fields of the CostDaily.
func (CostDaily) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable().
			Comment("Day key, YYYY-MM-DD in UTC"),
		field.Float("total_usd").
			Default(0),
		field.Int("call_count").
			Default(0),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
