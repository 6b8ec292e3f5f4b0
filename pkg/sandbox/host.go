// Package sandbox hosts gear executions in child processes: package
// integrity checks, signing policy, restricted environments, secrets
// injection, signed line-JSON framing, timeouts, and per-gear circuit
// breakers.
package sandbox

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/sony/gobreaker"

	"github.com/gearbox-dev/gearbox/pkg/bus"
	"github.com/gearbox-dev/gearbox/pkg/config"
	"github.com/gearbox-dev/gearbox/pkg/envelope"
	"github.com/gearbox-dev/gearbox/pkg/events"
	"github.com/gearbox-dev/gearbox/pkg/gear"
	"github.com/gearbox-dev/gearbox/pkg/models"
	"github.com/gearbox-dev/gearbox/pkg/vault"
)

// ComponentID is the sandbox host's address on the bus.
const ComponentID = "sandbox"

// JobEnqueuer accepts fire-and-forget sub-jobs created by running
// gears. The child receives the new job id but no completion signal.
type JobEnqueuer interface {
	EnqueueFromGear(ctx context.Context, content string, metadata map[string]any) (string, error)
}

// ExecuteRequest is one gear invocation.
type ExecuteRequest struct {
	JobID      string
	StepID     string
	GearID     string
	Action     string
	Parameters map[string]any
}

// ExecuteResult is the outcome of a gear invocation. Skipped results
// come from an open circuit breaker and carry no output.
type ExecuteResult struct {
	Output     map[string]any `json:"output,omitempty"`
	Skipped    bool           `json:"skipped,omitempty"`
	SkipReason string         `json:"skipReason,omitempty"`
}

// Host runs gear child processes.
type Host struct {
	registry  *gear.Registry
	vault     *vault.Vault // may be nil (no secrets configured)
	signer    *envelope.Signer
	cfg       *config.SandboxConfig
	publisher *events.Publisher // may be nil
	enqueuer  JobEnqueuer       // may be nil
	breakers  *breakerSet
	runner    runner
	active    atomic.Int32
}

// New creates a sandbox host. vault, publisher, and enqueuer may be
// nil.
func New(registry *gear.Registry, v *vault.Vault, signer *envelope.Signer, cfg *config.SandboxConfig, publisher *events.Publisher, enqueuer JobEnqueuer) *Host {
	return &Host{
		registry:  registry,
		vault:     v,
		signer:    signer,
		cfg:       cfg,
		publisher: publisher,
		enqueuer:  enqueuer,
		breakers:  newBreakerSet(cfg.CircuitBreakerFailures, cfg.CircuitBreakerWindow),
		runner:    &execRunner{},
	}
}

// Register binds the host on the bus.
func (h *Host) Register(registry *bus.Registry) error {
	return registry.Register(ComponentID, h.Handle)
}

// Handle services one execute.request envelope.
func (h *Host) Handle(ctx context.Context, env *envelope.Envelope) (*envelope.Envelope, error) {
	if env.Type != models.MsgExecuteRequest {
		return h.signer.NewError(env, models.CodeInvalidEnvelope,
			fmt.Sprintf("sandbox does not accept %s", env.Type))
	}

	req := &ExecuteRequest{
		GearID: stringField(env.Payload, "plugin"),
		Action: stringField(env.Payload, "action"),
		StepID: stringField(env.Payload, "stepId"),
		JobID:  stringField(env.Payload, "jobId"),
	}
	if params, ok := env.Payload["parameters"].(map[string]any); ok {
		req.Parameters = params
	}
	if req.GearID == "" || req.Action == "" {
		return h.signer.NewError(env, models.CodeInvalidEnvelope,
			"execute.request requires plugin and action")
	}

	result, err := h.Execute(ctx, req)
	if err != nil {
		var coded *models.CodedError
		if errors.As(err, &coded) {
			return h.signer.NewResponse(env, models.MsgExecuteResponse, map[string]any{
				"error": map[string]any{"code": coded.Code, "message": coded.Message, "detail": coded.Cause},
			})
		}
		return h.signer.NewError(env, models.CodeGearExecutionFailed, err.Error())
	}

	payload := map[string]any{"output": result.Output}
	if result.Skipped {
		payload["skipped"] = true
		payload["skipReason"] = result.SkipReason
	}
	return h.signer.NewResponse(env, models.MsgExecuteResponse, payload)
}

// Execute runs one gear invocation through the gear's circuit breaker.
// An open breaker short-circuits to a skipped result without touching
// the child process machinery.
func (h *Host) Execute(ctx context.Context, req *ExecuteRequest) (*ExecuteResult, error) {
	cb := h.breakers.get(req.GearID)
	out, err := cb.Execute(func() (any, error) {
		return h.execute(ctx, req)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		slog.Warn("Gear circuit open, skipping execution",
			"gear_id", req.GearID,
			"step_id", req.StepID)
		return &ExecuteResult{Skipped: true, SkipReason: "circuit breaker open"}, nil
	}
	if err != nil {
		return nil, err
	}
	return out.(*ExecuteResult), nil
}

// IsCircuitOpen reports whether a gear's breaker is currently open.
// The scheduler uses this to skip steps without burning an attempt.
func (h *Host) IsCircuitOpen(gearID string) bool {
	return h.breakers.isOpen(gearID)
}

// ActiveCount returns the number of child processes currently running.
func (h *Host) ActiveCount() int {
	return int(h.active.Load())
}

func (h *Host) execute(ctx context.Context, req *ExecuteRequest) (*ExecuteResult, error) {
	h.active.Add(1)
	defer h.active.Add(-1)

	manifest := h.registry.GetManifest(req.GearID)
	if manifest == nil {
		return nil, models.NewCodedError(models.CodeGearNotFound,
			fmt.Sprintf("gear %s is not installed or disabled", req.GearID))
	}
	if !manifest.HasAction(req.Action) {
		return nil, models.NewCodedError(models.CodeGearInvalid,
			fmt.Sprintf("gear %s does not implement %s", req.GearID, req.Action))
	}

	if err := h.checkIntegrity(ctx, req.GearID); err != nil {
		return nil, err
	}
	if err := h.checkSigningPolicy(req.GearID, manifest.Signature); err != nil {
		return nil, err
	}

	packagePath, _ := h.registry.GetPackagePath(req.GearID)
	workDir, err := os.MkdirTemp("", "gear-"+req.GearID+"-*")
	if err != nil {
		return nil, models.WrapCoded(models.CodeGearExecutionFailed, "creating work dir", err)
	}
	defer func() {
		if rmErr := os.RemoveAll(workDir); rmErr != nil {
			slog.Warn("Failed to remove gear work dir", "dir", workDir, "error", rmErr)
		}
	}()

	secretsDir, err := h.injectSecrets(manifest, workDir, req.GearID)
	if err != nil {
		return nil, err
	}
	defer h.removeSecrets(secretsDir)

	if err := writePolicyFile(workDir, manifest); err != nil {
		slog.Warn("Failed to write sandbox policy file", "gear_id", req.GearID, "error", err)
	}

	request, err := h.signer.NewRequest(req.GearID, models.MsgExecuteRequest, map[string]any{
		"plugin":     req.GearID,
		"action":     req.Action,
		"parameters": req.Parameters,
		"stepId":     req.StepID,
		"jobId":      req.JobID,
	})
	if err != nil {
		return nil, models.WrapCoded(models.CodeGearExecutionFailed, "signing gear request", err)
	}

	resources := manifest.EffectiveResources()
	spec := &processSpec{
		EntryPoint:  packagePath,
		WorkDir:     workDir,
		SecretsDir:  secretsDir,
		Workspace:   h.cfg.WorkspaceRoot,
		GearID:      req.GearID,
		GearVersion: manifest.Version,
		MaxMemoryMb: resources.MaxMemoryMb,
		Timeout:     time.Duration(resources.TimeoutMs) * time.Millisecond,
		KillTimeout: h.cfg.KillTimeout,
		Request:     request,
		OnProgress: func(percent float64, message string) {
			if h.publisher != nil {
				h.publisher.PublishSandboxLog(req.JobID, req.GearID, req.StepID, message, percent)
			}
		},
		OnLog: func(message string) {
			slog.Info("Gear log", "gear_id", req.GearID, "step_id", req.StepID, "message", message)
			if h.publisher != nil {
				h.publisher.PublishSandboxLog(req.JobID, req.GearID, req.StepID, message, -1)
			}
		},
		OnEnqueue: func(content string, metadata map[string]any) string {
			return h.enqueueSubJob(ctx, req, content, metadata)
		},
	}

	response, err := h.runner.run(ctx, spec)
	if err != nil {
		return nil, err
	}
	return resultFromResponse(req.GearID, response)
}

// checkIntegrity recomputes the package checksum. A mismatch disables
// the gear before failing so no further step can run it.
func (h *Host) checkIntegrity(ctx context.Context, gearID string) error {
	packagePath, _ := h.registry.GetPackagePath(gearID)
	if packagePath == "" {
		return nil
	}
	expected, _ := h.registry.GetChecksum(gearID)
	actual, err := gear.ComputeChecksum(packagePath)
	if err != nil {
		return models.WrapCoded(models.CodeGearExecutionFailed, "reading gear package", err)
	}
	if actual != expected {
		slog.Error("Gear package checksum mismatch, disabling",
			"gear_id", gearID,
			"expected", expected,
			"actual", actual)
		if disableErr := h.registry.Disable(ctx, gearID); disableErr != nil {
			slog.Error("Failed to disable tampered gear", "gear_id", gearID, "error", disableErr)
		}
		return models.NewCodedError(models.CodeGearExecutionFailed, "checksum mismatch")
	}
	return nil
}

func (h *Host) checkSigningPolicy(gearID, signature string) error {
	switch h.cfg.SigningPolicy {
	case "require":
		if signature == "" {
			return models.NewCodedError(models.CodeGearExecutionFailed,
				fmt.Sprintf("gear %s is unsigned and signing policy is require", gearID))
		}
	case "warn":
		if signature == "" {
			slog.Warn("Executing unsigned gear", "gear_id", gearID)
		}
	}
	return nil
}

// injectSecrets writes each ACL-granted secret into a per-execution
// directory, zeroing the plaintext buffer after each write. Returns an
// empty path when the gear declares no secrets or the vault is absent.
func (h *Host) injectSecrets(manifest *models.Manifest, workDir, gearID string) (string, error) {
	names := manifest.Permissions.Secrets
	if len(names) == 0 || h.vault == nil {
		return "", nil
	}

	secretsDir := filepath.Join(workDir, "secrets")
	if err := os.Mkdir(secretsDir, 0o700); err != nil {
		return "", models.WrapCoded(models.CodeGearExecutionFailed, "creating secrets dir", err)
	}

	for _, name := range names {
		value, err := h.vault.Retrieve(name, gearID)
		if errors.Is(err, vault.ErrSecretNotFound) {
			continue
		}
		if errors.Is(err, vault.ErrAccessDenied) {
			slog.Warn("Secret not in gear ACL, skipping injection", "gear_id", gearID, "secret", name)
			continue
		}
		if errors.Is(err, vault.ErrLocked) {
			return secretsDir, models.NewCodedError(models.CodeVaultLocked,
				"vault is locked, cannot inject secrets")
		}
		if err != nil {
			return secretsDir, models.WrapCoded(models.CodeGearExecutionFailed, "retrieving secret", err)
		}
		writeErr := os.WriteFile(filepath.Join(secretsDir, name), value, 0o600)
		vault.Zero(value)
		if writeErr != nil {
			return secretsDir, models.WrapCoded(models.CodeGearExecutionFailed, "writing secret file", writeErr)
		}
	}
	return secretsDir, nil
}

// removeSecrets overwrites every secret file before removing the
// directory so plaintext does not survive on disk.
func (h *Host) removeSecrets(secretsDir string) {
	if secretsDir == "" {
		return
	}
	entries, err := os.ReadDir(secretsDir)
	if err == nil {
		for _, entry := range entries {
			path := filepath.Join(secretsDir, entry.Name())
			if info, statErr := entry.Info(); statErr == nil {
				_ = os.WriteFile(path, make([]byte, info.Size()), 0o600)
			}
		}
	}
	if err := os.RemoveAll(secretsDir); err != nil {
		slog.Warn("Failed to remove secrets dir", "dir", secretsDir, "error", err)
	}
}

// enqueueSubJob creates a fire-and-forget job on behalf of a running
// gear and returns its id, or an empty string when sub-jobs are not
// wired.
func (h *Host) enqueueSubJob(ctx context.Context, req *ExecuteRequest, content string, metadata map[string]any) string {
	if h.enqueuer == nil || content == "" {
		return ""
	}
	if metadata == nil {
		metadata = map[string]any{}
	}
	metadata["parentJobId"] = req.JobID
	metadata["spawnedByGear"] = req.GearID

	id, err := h.enqueuer.EnqueueFromGear(ctx, content, metadata)
	if err != nil {
		slog.Warn("Gear sub-job enqueue failed",
			"gear_id", req.GearID,
			"parent_job_id", req.JobID,
			"error", err)
		return ""
	}
	slog.Info("Gear enqueued sub-job", "gear_id", req.GearID, "job_id", id)
	return id
}

// resultFromResponse maps the child's execute.response payload onto the
// host result, surfacing child-reported errors with their code.
func resultFromResponse(gearID string, response *envelope.Envelope) (*ExecuteResult, error) {
	if rawErr, ok := response.Payload["error"]; ok && rawErr != nil {
		code := models.CodeGearError
		message := fmt.Sprintf("gear %s reported an error", gearID)
		if errMap, ok := rawErr.(map[string]any); ok {
			if c := stringField(errMap, "code"); c != "" {
				code = c
			}
			if m := stringField(errMap, "message"); m != "" {
				message = m
			}
		}
		return nil, models.NewCodedError(code, message)
	}

	result := &ExecuteResult{}
	if output, ok := response.Payload["output"].(map[string]any); ok {
		result.Output = output
	} else {
		result.Output = response.Payload
	}
	return result, nil
}

func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}
