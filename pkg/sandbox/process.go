package sandbox

import (
	"bufio"
	"context"
	"crypto/ed25519"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"syscall"
	"time"

	"github.com/gearbox-dev/gearbox/pkg/envelope"
	"github.com/gearbox-dev/gearbox/pkg/models"
)

// processSpec describes one child execution.
type processSpec struct {
	EntryPoint  string
	WorkDir     string
	SecretsDir  string
	Workspace   string
	GearID      string
	GearVersion string
	MaxMemoryMb int
	Timeout     time.Duration
	KillTimeout time.Duration
	Request     *envelope.Envelope

	OnProgress func(percent float64, message string)
	OnLog      func(message string)
	// OnEnqueue creates a fire-and-forget sub-job and returns its id.
	OnEnqueue func(content string, metadata map[string]any) string
}

// runner abstracts child process execution so the host can be tested
// without forking.
type runner interface {
	run(ctx context.Context, spec *processSpec) (*envelope.Envelope, error)
}

// controlLine is a non-envelope message from the child.
type controlLine struct {
	Type     string         `json:"type"`
	Percent  float64        `json:"percent"`
	Message  string         `json:"message"`
	Content  string         `json:"content"`
	Metadata map[string]any `json:"metadata"`
}

// execRunner forks the gear entry point and speaks the line-JSON
// protocol over its stdin/stdout.
type execRunner struct{}

func (r *execRunner) run(ctx context.Context, spec *processSpec) (*envelope.Envelope, error) {
	if spec.EntryPoint == "" {
		return nil, models.NewCodedError(models.CodeGearExecutionFailed,
			fmt.Sprintf("gear %s has no executable package", spec.GearID))
	}

	// Ephemeral keypair for the child's response signatures; the private
	// half travels only through the child's environment.
	childPub, childPriv, err := ed25519.GenerateKey(nil)
	if err != nil {
		return nil, models.WrapCoded(models.CodeGearExecutionFailed, "generating child signing key", err)
	}
	defer zeroKey(childPriv)

	cmd := exec.Command(spec.EntryPoint)
	cmd.Dir = spec.WorkDir
	cmd.Env = childEnv(spec, childPriv)

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, models.WrapCoded(models.CodeGearExecutionFailed, "opening stdin pipe", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, models.WrapCoded(models.CodeGearExecutionFailed, "opening stdout pipe", err)
	}
	cmd.Stderr = nil

	if err := cmd.Start(); err != nil {
		return nil, models.WrapCoded(models.CodeGearExecutionFailed, "spawning gear process", err)
	}

	requestLine, err := json.Marshal(spec.Request)
	if err != nil {
		_ = cmd.Process.Kill()
		return nil, models.WrapCoded(models.CodeGearExecutionFailed, "encoding gear request", err)
	}
	if _, err := stdin.Write(append(requestLine, '\n')); err != nil {
		_ = cmd.Process.Kill()
		return nil, models.WrapCoded(models.CodeGearExecutionFailed, "writing gear request", err)
	}

	responses := make(chan *envelope.Envelope, 1)
	readErrs := make(chan error, 1)
	go readFrames(stdout, spec, childPub, responses, readErrs)

	timeout := spec.Timeout
	if timeout <= 0 {
		timeout = time.Duration(models.DefaultGearTimeoutMs) * time.Millisecond
	}
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	var response *envelope.Envelope
	var runErr error
	var killTimer *time.Timer
	select {
	case <-ctx.Done():
		killTimer = terminate(cmd, spec.KillTimeout)
		runErr = models.NewCodedError(models.CodeJobCancelled, "gear execution cancelled")
	case <-timer.C:
		killTimer = terminate(cmd, spec.KillTimeout)
		runErr = models.NewCodedError(models.CodeGearTimeout,
			fmt.Sprintf("gear %s produced no response within %s", spec.GearID, timeout))
	case err := <-readErrs:
		killTimer = terminate(cmd, spec.KillTimeout)
		runErr = err
	case response = <-responses:
	}

	_ = stdin.Close()
	waitErr := cmd.Wait()
	if killTimer != nil {
		killTimer.Stop()
	}
	if runErr != nil {
		return nil, runErr
	}
	if response == nil {
		return nil, models.WrapCoded(models.CodeGearExecutionFailed, "gear exited without a response", waitErr)
	}
	return response, nil
}

// readFrames consumes the child's stdout line by line: control lines
// are dispatched to callbacks, envelopes are verified and replay
// guarded before the first execute.response is delivered.
func readFrames(stdout interface{ Read([]byte) (int, error) }, spec *processSpec, childPub ed25519.PublicKey, responses chan<- *envelope.Envelope, readErrs chan<- error) {
	seenCorrelations := map[string]bool{}
	scanner := bufio.NewScanner(stdout)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var control controlLine
		if err := json.Unmarshal(line, &control); err == nil && control.Type != "" {
			switch control.Type {
			case "progress":
				if spec.OnProgress != nil {
					spec.OnProgress(control.Percent, control.Message)
				}
				continue
			case "log":
				if spec.OnLog != nil {
					spec.OnLog(control.Message)
				}
				continue
			case "enqueue_job":
				id := ""
				if spec.OnEnqueue != nil {
					id = spec.OnEnqueue(control.Content, control.Metadata)
				}
				slog.Debug("Gear sub-job control line handled", "gear_id", spec.GearID, "job_id", id)
				continue
			}
		}

		var env envelope.Envelope
		if err := json.Unmarshal(line, &env); err != nil {
			slog.Warn("Unparseable gear output line dropped", "gear_id", spec.GearID)
			continue
		}
		if err := envelope.Verify(&env, childPub); err != nil {
			readErrs <- models.WrapCoded(models.CodeSignatureInvalid, "gear response signature invalid", err)
			return
		}
		if env.Type != models.MsgExecuteResponse && env.Type != models.MsgError {
			continue
		}
		if seenCorrelations[env.CorrelationID] {
			slog.Warn("Replayed gear response dropped",
				"gear_id", spec.GearID,
				"correlation_id", env.CorrelationID)
			continue
		}
		seenCorrelations[env.CorrelationID] = true

		responses <- &env
		return
	}

	readErrs <- models.WrapCoded(models.CodeGearExecutionFailed,
		"gear exited without a response", scanner.Err())
}

// terminate sends SIGTERM and schedules a SIGKILL after the grace
// period. The caller reaps the process with Wait and stops the timer
// once it has exited.
func terminate(cmd *exec.Cmd, grace time.Duration) *time.Timer {
	if cmd.Process == nil {
		return time.NewTimer(0)
	}
	_ = cmd.Process.Signal(syscall.SIGTERM)
	return time.AfterFunc(grace, func() {
		_ = cmd.Process.Kill()
	})
}

// childEnv builds the restricted environment: minimal PATH, workspace,
// gear identity, resource hints, and the ephemeral signing key. Nothing
// from the host environment leaks through.
func childEnv(spec *processSpec, childKey ed25519.PrivateKey) []string {
	env := []string{
		"PATH=/usr/bin:/bin",
		"WORKSPACE=" + spec.Workspace,
		"GEAR_ID=" + spec.GearID,
		"GEAR_VERSION=" + spec.GearVersion,
		fmt.Sprintf("GEAR_MAX_MEMORY_MB=%d", spec.MaxMemoryMb),
		"GEAR_SIGNING_KEY=" + base64.StdEncoding.EncodeToString(childKey),
	}
	if spec.SecretsDir != "" {
		env = append(env, "GEAR_SECRETS_DIR="+spec.SecretsDir)
	}
	return env
}

// writePolicyFile documents the OS confinement policy alongside the
// child for audit. Enforcement depends on the platform.
func writePolicyFile(workDir string, m *models.Manifest) error {
	policy := map[string]any{
		"platform":  runtime.GOOS,
		"gearId":    m.ID,
		"workspace": true,
		"shell":     m.Permissions.Shell,
	}
	if m.Permissions.Filesystem != nil {
		policy["filesystemRead"] = m.Permissions.Filesystem.Read
		policy["filesystemWrite"] = m.Permissions.Filesystem.Write
	}
	if m.Permissions.Network != nil {
		policy["networkDomains"] = m.Permissions.Network.Domains
	}
	raw, err := json.MarshalIndent(policy, "", "  ")
	if err != nil {
		return err
	}
	name := "seccomp.json"
	if runtime.GOOS == "darwin" {
		name = "profile.sb"
	}
	return os.WriteFile(filepath.Join(workDir, name), raw, 0o600)
}

func zeroKey(key ed25519.PrivateKey) {
	for i := range key {
		key[i] = 0
	}
}
