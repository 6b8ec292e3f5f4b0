// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/gearbox-dev/gearbox/ent/costdaily"
	"github.com/gearbox-dev/gearbox/ent/gear"
	"github.com/gearbox-dev/gearbox/ent/job"
	"github.com/gearbox-dev/gearbox/ent/llmcall"
	"github.com/gearbox-dev/gearbox/ent/schema"
	"github.com/gearbox-dev/gearbox/ent/standingrule"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	costdailyFields := schema.CostDaily{}.Fields()
	_ = costdailyFields
	// costdailyDescTotalUsd is the schema descriptor for total_usd field.
	costdailyDescTotalUsd := costdailyFields[1].Descriptor()
	// costdaily.DefaultTotalUsd holds the default value on creation for the total_usd field.
	costdaily.DefaultTotalUsd = costdailyDescTotalUsd.Default.(float64)
	// costdailyDescCallCount is the schema descriptor for call_count field.
	costdailyDescCallCount := costdailyFields[2].Descriptor()
	// costdaily.DefaultCallCount holds the default value on creation for the call_count field.
	costdaily.DefaultCallCount = costdailyDescCallCount.Default.(int)
	// costdailyDescUpdatedAt is the schema descriptor for updated_at field.
	costdailyDescUpdatedAt := costdailyFields[3].Descriptor()
	// costdaily.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	costdaily.DefaultUpdatedAt = costdailyDescUpdatedAt.Default.(func() time.Time)
	// costdaily.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	costdaily.UpdateDefaultUpdatedAt = costdailyDescUpdatedAt.UpdateDefault.(func() time.Time)
	gearFields := schema.Gear{}.Fields()
	_ = gearFields
	// gearDescDraft is the schema descriptor for draft field.
	gearDescDraft := gearFields[5].Descriptor()
	// gear.DefaultDraft holds the default value on creation for the draft field.
	gear.DefaultDraft = gearDescDraft.Default.(bool)
	// gearDescEnabled is the schema descriptor for enabled field.
	gearDescEnabled := gearFields[6].Descriptor()
	// gear.DefaultEnabled holds the default value on creation for the enabled field.
	gear.DefaultEnabled = gearDescEnabled.Default.(bool)
	// gearDescInstalledAt is the schema descriptor for installed_at field.
	gearDescInstalledAt := gearFields[11].Descriptor()
	// gear.DefaultInstalledAt holds the default value on creation for the installed_at field.
	gear.DefaultInstalledAt = gearDescInstalledAt.Default.(func() time.Time)
	jobFields := schema.Job{}.Fields()
	_ = jobFields
	// jobDescAttempts is the schema descriptor for attempts field.
	jobDescAttempts := jobFields[15].Descriptor()
	// job.DefaultAttempts holds the default value on creation for the attempts field.
	job.DefaultAttempts = jobDescAttempts.Default.(int)
	// jobDescCreatedAt is the schema descriptor for created_at field.
	jobDescCreatedAt := jobFields[16].Descriptor()
	// job.DefaultCreatedAt holds the default value on creation for the created_at field.
	job.DefaultCreatedAt = jobDescCreatedAt.Default.(func() time.Time)
	// jobDescUpdatedAt is the schema descriptor for updated_at field.
	jobDescUpdatedAt := jobFields[17].Descriptor()
	// job.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	job.DefaultUpdatedAt = jobDescUpdatedAt.Default.(func() time.Time)
	// job.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	job.UpdateDefaultUpdatedAt = jobDescUpdatedAt.UpdateDefault.(func() time.Time)
	llmcallFields := schema.LLMCall{}.Fields()
	_ = llmcallFields
	// llmcallDescInputTokens is the schema descriptor for input_tokens field.
	llmcallDescInputTokens := llmcallFields[5].Descriptor()
	// llmcall.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmcall.DefaultInputTokens = llmcallDescInputTokens.Default.(int)
	// llmcallDescOutputTokens is the schema descriptor for output_tokens field.
	llmcallDescOutputTokens := llmcallFields[6].Descriptor()
	// llmcall.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmcall.DefaultOutputTokens = llmcallDescOutputTokens.Default.(int)
	// llmcallDescCachedTokens is the schema descriptor for cached_tokens field.
	llmcallDescCachedTokens := llmcallFields[7].Descriptor()
	// llmcall.DefaultCachedTokens holds the default value on creation for the cached_tokens field.
	llmcall.DefaultCachedTokens = llmcallDescCachedTokens.Default.(int)
	// llmcallDescCostUsd is the schema descriptor for cost_usd field.
	llmcallDescCostUsd := llmcallFields[8].Descriptor()
	// llmcall.DefaultCostUsd holds the default value on creation for the cost_usd field.
	llmcall.DefaultCostUsd = llmcallDescCostUsd.Default.(float64)
	// llmcallDescDurationMs is the schema descriptor for duration_ms field.
	llmcallDescDurationMs := llmcallFields[9].Descriptor()
	// llmcall.DefaultDurationMs holds the default value on creation for the duration_ms field.
	llmcall.DefaultDurationMs = llmcallDescDurationMs.Default.(int64)
	// llmcallDescCreatedAt is the schema descriptor for created_at field.
	llmcallDescCreatedAt := llmcallFields[10].Descriptor()
	// llmcall.DefaultCreatedAt holds the default value on creation for the created_at field.
	llmcall.DefaultCreatedAt = llmcallDescCreatedAt.Default.(func() time.Time)
	standingruleFields := schema.StandingRule{}.Fields()
	_ = standingruleFields
	// standingruleDescApprovalCount is the schema descriptor for approval_count field.
	standingruleDescApprovalCount := standingruleFields[5].Descriptor()
	// standingrule.DefaultApprovalCount holds the default value on creation for the approval_count field.
	standingrule.DefaultApprovalCount = standingruleDescApprovalCount.Default.(int)
	// standingruleDescCreatedAt is the schema descriptor for created_at field.
	standingruleDescCreatedAt := standingruleFields[6].Descriptor()
	// standingrule.DefaultCreatedAt holds the default value on creation for the created_at field.
	standingrule.DefaultCreatedAt = standingruleDescCreatedAt.Default.(func() time.Time)
}
