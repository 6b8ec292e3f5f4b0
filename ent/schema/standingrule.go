package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StandingRule holds the schema definition for persisted glob-pattern
// decisions that auto-approve or auto-deny matching actions.
type StandingRule struct {
	ent.Schema
}

// Fields of the StandingRule.
func (StandingRule) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("action_pattern").
			Comment(`Single-segment glob: "category:action" or "category:*"`),
		field.Enum("scope").
			Values("global", "conversation").
			Default("global"),
		field.Enum("verdict").
			Values("approve", "deny").
			Default("approve"),
		field.String("created_by"),
		field.Int("approval_count").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("expires_at").
			Optional().
			Nillable().
			Comment("Expired rules are excluded by query, never returned"),
	}
}

// Indexes of the StandingRule.
func (StandingRule) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("created_at"),
		index.Fields("expires_at"),
	}
}
