package models

import "fmt"

// Stable error codes carried on the wire and persisted on failed jobs.
const (
	CodeComponentNotFound   = "COMPONENT_NOT_FOUND"
	CodeInvalidEnvelope     = "INVALID_ENVELOPE"
	CodeSignatureInvalid    = "SIGNATURE_INVALID"
	CodeReplayRejected      = "REPLAY_REJECTED"
	CodeMessageTooLarge     = "MESSAGE_TOO_LARGE"
	CodeHandlerFailed       = "HANDLER_FAILED"
	CodePlanRejected        = "PLAN_REJECTED"
	CodePlanFailed          = "PLAN_FAILED"
	CodeApprovalDenied      = "APPROVAL_DENIED"
	CodeApprovalTimeout     = "APPROVAL_TIMEOUT"
	CodeMaxAttemptsExceeded = "MAX_ATTEMPTS_EXCEEDED"
	CodeMaxRevisionsReached = "MAX_REVISIONS_REACHED"
	CodeJobTimeout          = "JOB_TIMEOUT"
	CodeJobCancelled        = "JOB_CANCELLED"
	CodeBudgetExceeded      = "BUDGET_EXCEEDED"
	CodeCycleDetected       = "CYCLE_DETECTED"
	CodeUnknownStep         = "UNKNOWN_STEP"
	CodeSelfDependency      = "SELF_DEPENDENCY"
	CodeGearNotFound        = "GEAR_NOT_FOUND"
	CodeGearExecutionFailed = "GEAR_EXECUTION_FAILED"
	CodeGearTimeout         = "GEAR_TIMEOUT"
	CodeGearInvalid         = "GEAR_INVALID"
	CodeGearError           = "GEAR_ERROR"
	CodeVaultLocked         = "VAULT_LOCKED"
	CodeSecretAccessDenied  = "SECRET_ACCESS_DENIED"
	CodeNotFound            = "NOT_FOUND"
	CodeConflict            = "CONFLICT"
	CodeValidationFailed    = "VALIDATION_FAILED"
)

// ErrorCategory classifies failures for the retry policy in pkg/retry.
type ErrorCategory string

// Error categories.
const (
	CategoryValidation ErrorCategory = "validation"
	CategoryAuth       ErrorCategory = "auth"
	CategoryNotFound   ErrorCategory = "not_found"
	CategoryConflict   ErrorCategory = "conflict"
	CategoryTimeout    ErrorCategory = "timeout"
	CategoryRateLimit  ErrorCategory = "rate_limit"
	CategoryProvider   ErrorCategory = "provider"
	CategoryFatal      ErrorCategory = "fatal"
)

// Retriable reports whether errors of this category may be retried.
func (c ErrorCategory) Retriable() bool {
	switch c {
	case CategoryTimeout, CategoryRateLimit, CategoryProvider:
		return true
	}
	return false
}

// CodedError is the user-visible failure shape: a stable code, a human
// message, a retriability flag, and an optional underlying cause.
type CodedError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Retriable bool   `json:"retriable"`
	Cause     string `json:"cause,omitempty"`
}

// NewCodedError builds a non-retriable CodedError.
func NewCodedError(code, message string) *CodedError {
	return &CodedError{Code: code, Message: message}
}

// WrapCoded builds a CodedError carrying err as the cause.
func WrapCoded(code, message string, err error) *CodedError {
	ce := &CodedError{Code: code, Message: message}
	if err != nil {
		ce.Cause = err.Error()
	}
	return ce
}

// Error implements the error interface.
func (e *CodedError) Error() string {
	if e.Cause != "" {
		return fmt.Sprintf("%s: %s: %s", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}
