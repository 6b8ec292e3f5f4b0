package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/gearbox-dev/gearbox/pkg/models"
)

// Job holds the schema definition for the Job entity: one user request
// tracked through the pipeline to a terminal status. Rows are never
// deleted; terminal states are retained for audit.
type Job struct {
	ent.Schema
}

// Fields of the Job.
func (Job) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("conversation_id").
			Comment("Owning conversation"),
		field.Enum("status").
			Values("pending", "planning", "validating", "awaiting_approval",
				"executing", "completed", "failed", "cancelled").
			Default("pending"),
		field.Enum("priority").
			Values("low", "normal", "high").
			Default("normal"),
		field.Enum("source_type").
			Values("user", "schedule", "plugin", "system").
			Default("user"),
		field.String("source_message_id").
			Optional().
			Nillable(),
		field.String("dedup_key").
			Optional().
			Nillable().
			Comment("Idempotency key supplied by the enqueue caller"),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),
		field.JSON("plan", &models.Plan{}).
			Optional().
			Comment("Execution plan attached in-flight, persisted on terminal transition"),
		field.JSON("validation", &models.ValidationResult{}).
			Optional(),
		field.JSON("result", &models.JobResult{}).
			Optional(),
		field.JSON("error", &models.CodedError{}).
			Optional(),
		field.String("lease_owner").
			Optional().
			Nillable().
			Comment("Worker currently holding the lease"),
		field.Time("lease_expires_at").
			Optional().
			Nillable(),
		field.Time("last_heartbeat_at").
			Optional().
			Nillable().
			Comment("For expired-lease recovery"),
		field.Int("attempts").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Job. The lease query orders on (status, priority desc,
// created_at); the dedup window queries on (dedup_key, created_at).
func (Job) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "priority", "created_at"),
		index.Fields("dedup_key", "created_at"),
		index.Fields("conversation_id"),
	}
}
