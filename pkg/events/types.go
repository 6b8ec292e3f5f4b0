// Package events provides real-time event delivery: an in-process
// broadcast broker feeding WebSocket clients. Publishing never blocks
// the committing transaction; slow subscribers drop events rather than
// stalling the queue.
package events

// Event types delivered over the job and global channels.
const (
	// Job lifecycle
	EventTypeJobStatus = "job.status"

	// Plan lifecycle
	EventTypePlanCreated       = "plan.created"
	EventTypeValidationVerdict = "validation.verdict"

	// DAG execution
	EventTypeStepProgress = "step.progress"

	// Sandbox child output
	EventTypeSandboxLog = "sandbox.log"
)

// GlobalChannel carries every job's status events for dashboard views.
const GlobalChannel = "jobs"

// JobChannel returns the channel name for one job's events.
func JobChannel(jobID string) string {
	return "job:" + jobID
}
