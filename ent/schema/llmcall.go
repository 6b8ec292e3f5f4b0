package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LLMCall holds the schema definition for per-call LLM accounting rows.
type LLMCall struct {
	ent.Schema
}

// Fields of the LLMCall.
func (LLMCall) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("job_id").
			Optional(),
		field.String("component").
			Comment("Which core component issued the call (planner, validator, ...)"),
		field.String("provider"),
		field.String("model"),
		field.Int("input_tokens").
			Default(0),
		field.Int("output_tokens").
			Default(0),
		field.Int("cached_tokens").
			Default(0),
		field.Float("cost_usd").
			Default(0),
		field.Int64("duration_ms").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the LLMCall.
func (LLMCall) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("job_id"),
		index.Fields("created_at"),
	}
}
