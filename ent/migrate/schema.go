// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CostDailiesColumns holds the columns for the "cost_dailies" table.
	CostDailiesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "total_usd", Type: field.TypeFloat64, Default: 0},
		{Name: "call_count", Type: field.TypeInt, Default: 0},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// CostDailiesTable holds the schema information for the "cost_dailies" table.
	CostDailiesTable = &schema.Table{
		Name:       "cost_dailies",
		Columns:    CostDailiesColumns,
		PrimaryKey: []*schema.Column{CostDailiesColumns[0]},
	}
	// GearsColumns holds the columns for the "gears" table.
	GearsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "version", Type: field.TypeString},
		{Name: "manifest", Type: field.TypeJSON},
		{Name: "origin", Type: field.TypeEnum, Enums: []string{"builtin", "user", "journal"}},
		{Name: "draft", Type: field.TypeBool, Default: false},
		{Name: "enabled", Type: field.TypeBool, Default: true},
		{Name: "config", Type: field.TypeJSON, Nullable: true},
		{Name: "signature", Type: field.TypeString, Nullable: true},
		{Name: "checksum", Type: field.TypeString},
		{Name: "package_path", Type: field.TypeString, Nullable: true},
		{Name: "installed_at", Type: field.TypeTime},
	}
	// GearsTable holds the schema information for the "gears" table.
	GearsTable = &schema.Table{
		Name:       "gears",
		Columns:    GearsColumns,
		PrimaryKey: []*schema.Column{GearsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "gear_enabled",
				Unique:  false,
				Columns: []*schema.Column{GearsColumns[6]},
			},
			{
				Name:    "gear_origin",
				Unique:  false,
				Columns: []*schema.Column{GearsColumns[4]},
			},
		},
	}
	// JobsColumns holds the columns for the "jobs" table.
	JobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "conversation_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "planning", "validating", "awaiting_approval", "executing", "completed", "failed", "cancelled"}, Default: "pending"},
		{Name: "priority", Type: field.TypeEnum, Enums: []string{"low", "normal", "high"}, Default: "normal"},
		{Name: "source_type", Type: field.TypeEnum, Enums: []string{"user", "schedule", "plugin", "system"}, Default: "user"},
		{Name: "source_message_id", Type: field.TypeString, Nullable: true},
		{Name: "dedup_key", Type: field.TypeString, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "plan", Type: field.TypeJSON, Nullable: true},
		{Name: "validation", Type: field.TypeJSON, Nullable: true},
		{Name: "result", Type: field.TypeJSON, Nullable: true},
		{Name: "error", Type: field.TypeJSON, Nullable: true},
		{Name: "lease_owner", Type: field.TypeString, Nullable: true},
		{Name: "lease_expires_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_heartbeat_at", Type: field.TypeTime, Nullable: true},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// JobsTable holds the schema information for the "jobs" table.
	JobsTable = &schema.Table{
		Name:       "jobs",
		Columns:    JobsColumns,
		PrimaryKey: []*schema.Column{JobsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "job_status_priority_created_at",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[2], JobsColumns[3], JobsColumns[16]},
			},
			{
				Name:    "job_dedup_key_created_at",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[6], JobsColumns[16]},
			},
			{
				Name:    "job_conversation_id",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[1]},
			},
		},
	}
	// LlmCallsColumns holds the columns for the "llm_calls" table.
	LlmCallsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "job_id", Type: field.TypeString, Nullable: true},
		{Name: "component", Type: field.TypeString},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "cached_tokens", Type: field.TypeInt, Default: 0},
		{Name: "cost_usd", Type: field.TypeFloat64, Default: 0},
		{Name: "duration_ms", Type: field.TypeInt64, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
	}
	// LlmCallsTable holds the schema information for the "llm_calls" table.
	LlmCallsTable = &schema.Table{
		Name:       "llm_calls",
		Columns:    LlmCallsColumns,
		PrimaryKey: []*schema.Column{LlmCallsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmcall_job_id",
				Unique:  false,
				Columns: []*schema.Column{LlmCallsColumns[1]},
			},
			{
				Name:    "llmcall_created_at",
				Unique:  false,
				Columns: []*schema.Column{LlmCallsColumns[10]},
			},
		},
	}
	// StandingRulesColumns holds the columns for the "standing_rules" table.
	StandingRulesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "action_pattern", Type: field.TypeString},
		{Name: "scope", Type: field.TypeEnum, Enums: []string{"global", "conversation"}, Default: "global"},
		{Name: "verdict", Type: field.TypeEnum, Enums: []string{"approve", "deny"}, Default: "approve"},
		{Name: "created_by", Type: field.TypeString},
		{Name: "approval_count", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "expires_at", Type: field.TypeTime, Nullable: true},
	}
	// StandingRulesTable holds the schema information for the "standing_rules" table.
	StandingRulesTable = &schema.Table{
		Name:       "standing_rules",
		Columns:    StandingRulesColumns,
		PrimaryKey: []*schema.Column{StandingRulesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "standingrule_created_at",
				Unique:  false,
				Columns: []*schema.Column{StandingRulesColumns[6]},
			},
			{
				Name:    "standingrule_expires_at",
				Unique:  false,
				Columns: []*schema.Column{StandingRulesColumns[7]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CostDailiesTable,
		GearsTable,
		JobsTable,
		LlmCallsTable,
		StandingRulesTable,
	}
)

func init() {
}
