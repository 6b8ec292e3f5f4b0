package sandbox

import (
	"context"
	"crypto/ed25519"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gearbox-dev/gearbox/pkg/config"
	"github.com/gearbox-dev/gearbox/pkg/envelope"
	"github.com/gearbox-dev/gearbox/pkg/gear"
	"github.com/gearbox-dev/gearbox/pkg/models"
	"github.com/gearbox-dev/gearbox/pkg/vault"
	testdb "github.com/gearbox-dev/gearbox/test/database"
)

// stubRunner replaces the child process machinery with a callback.
type stubRunner struct {
	fn    func(ctx context.Context, spec *processSpec) (*envelope.Envelope, error)
	specs []*processSpec
}

func (r *stubRunner) run(ctx context.Context, spec *processSpec) (*envelope.Envelope, error) {
	r.specs = append(r.specs, spec)
	return r.fn(ctx, spec)
}

type fakeEnqueuer struct {
	contents []string
	metadata []map[string]any
}

func (f *fakeEnqueuer) EnqueueFromGear(ctx context.Context, content string, metadata map[string]any) (string, error) {
	f.contents = append(f.contents, content)
	f.metadata = append(f.metadata, metadata)
	return "sub-job-1", nil
}

func testSandboxConfig(t *testing.T) *config.SandboxConfig {
	return &config.SandboxConfig{
		WorkspaceRoot:          t.TempDir(),
		SigningPolicy:          "allow",
		KillTimeout:            100 * time.Millisecond,
		CircuitBreakerFailures: 3,
		CircuitBreakerWindow:   time.Minute,
	}
}

func newTestHost(t *testing.T, registry *gear.Registry, v *vault.Vault, enqueuer JobEnqueuer) *Host {
	t.Helper()
	_, priv, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)
	return New(registry, v, envelope.NewSigner(ComponentID, priv), testSandboxConfig(t), nil, enqueuer)
}

// okResponse signs an execute.response for the request in spec.
func okResponse(t *testing.T, spec *processSpec, payload map[string]any) *envelope.Envelope {
	t.Helper()
	_, priv, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)
	child := envelope.NewSigner(spec.GearID, priv)
	resp, err := child.NewResponse(spec.Request, models.MsgExecuteResponse, payload)
	require.NoError(t, err)
	return resp
}

func installTestGear(t *testing.T, r *gear.Registry, mutate func(*models.Manifest)) string {
	t.Helper()
	m := &models.Manifest{
		ID:      "file-manager",
		Name:    "File Manager",
		Version: "1.0.0",
		License: "MIT",
		Origin:  models.OriginUser,
		Actions: []models.GearAction{{Name: "read_file", RiskLevel: models.RiskLow}},
	}
	if mutate != nil {
		mutate(m)
	}
	path := filepath.Join(t.TempDir(), "gear-pkg")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\nexit 0\n"), 0o755))
	_, err := r.Install(context.Background(), m, path)
	require.NoError(t, err)
	return path
}

func TestExecuteUnknownGear(t *testing.T) {
	client := testdb.NewTestClient(t)
	h := newTestHost(t, gear.NewRegistry(client.Client), nil, nil)

	_, err := h.Execute(context.Background(), &ExecuteRequest{GearID: "ghost", Action: "x"})
	var coded *models.CodedError
	require.ErrorAs(t, err, &coded)
	assert.Equal(t, models.CodeGearNotFound, coded.Code)
}

func TestExecuteUnknownAction(t *testing.T) {
	client := testdb.NewTestClient(t)
	r := gear.NewRegistry(client.Client)
	installTestGear(t, r, nil)
	h := newTestHost(t, r, nil, nil)

	_, err := h.Execute(context.Background(), &ExecuteRequest{GearID: "file-manager", Action: "fly"})
	var coded *models.CodedError
	require.ErrorAs(t, err, &coded)
	assert.Equal(t, models.CodeGearInvalid, coded.Code)
}

func TestExecuteChecksumMismatchDisablesGear(t *testing.T) {
	client := testdb.NewTestClient(t)
	r := gear.NewRegistry(client.Client)
	path := installTestGear(t, r, nil)
	h := newTestHost(t, r, nil, nil)

	// Tamper with the installed package after install.
	require.NoError(t, os.WriteFile(path, []byte("tampered"), 0o755))

	_, err := h.Execute(context.Background(), &ExecuteRequest{GearID: "file-manager", Action: "read_file"})
	var coded *models.CodedError
	require.ErrorAs(t, err, &coded)
	assert.Equal(t, models.CodeGearExecutionFailed, coded.Code)
	assert.Contains(t, coded.Message, "checksum mismatch")

	assert.False(t, r.IsEnabled("file-manager"), "tampered gear must be disabled")
}

func TestExecuteSigningPolicyRequire(t *testing.T) {
	client := testdb.NewTestClient(t)
	r := gear.NewRegistry(client.Client)
	installTestGear(t, r, nil)
	h := newTestHost(t, r, nil, nil)
	h.cfg.SigningPolicy = "require"

	_, err := h.Execute(context.Background(), &ExecuteRequest{GearID: "file-manager", Action: "read_file"})
	var coded *models.CodedError
	require.ErrorAs(t, err, &coded)
	assert.Equal(t, models.CodeGearExecutionFailed, coded.Code)
	assert.Contains(t, coded.Message, "unsigned")
}

func TestExecuteSuccess(t *testing.T) {
	client := testdb.NewTestClient(t)
	r := gear.NewRegistry(client.Client)
	installTestGear(t, r, nil)
	h := newTestHost(t, r, nil, nil)

	stub := &stubRunner{fn: func(ctx context.Context, spec *processSpec) (*envelope.Envelope, error) {
		return okResponse(t, spec, map[string]any{"output": map[string]any{"content": "hello"}}), nil
	}}
	h.runner = stub

	result, err := h.Execute(context.Background(), &ExecuteRequest{
		JobID: "j1", StepID: "s1", GearID: "file-manager", Action: "read_file",
		Parameters: map[string]any{"path": "/workspace/a.txt"},
	})
	require.NoError(t, err)
	assert.Equal(t, "hello", result.Output["content"])
	assert.False(t, result.Skipped)

	require.Len(t, stub.specs, 1)
	spec := stub.specs[0]
	assert.Equal(t, "file-manager", spec.GearID)
	assert.Equal(t, models.MsgExecuteRequest, spec.Request.Type)
	assert.Equal(t, "read_file", spec.Request.Payload["action"])
	assert.Zero(t, h.ActiveCount(), "active count returns to zero after execution")
}

func TestExecuteChildReportedError(t *testing.T) {
	client := testdb.NewTestClient(t)
	r := gear.NewRegistry(client.Client)
	installTestGear(t, r, nil)
	h := newTestHost(t, r, nil, nil)
	h.runner = &stubRunner{fn: func(ctx context.Context, spec *processSpec) (*envelope.Envelope, error) {
		return okResponse(t, spec, map[string]any{
			"error": map[string]any{"code": models.CodeGearError, "message": "disk full"},
		}), nil
	}}

	_, err := h.Execute(context.Background(), &ExecuteRequest{GearID: "file-manager", Action: "read_file"})
	var coded *models.CodedError
	require.ErrorAs(t, err, &coded)
	assert.Equal(t, models.CodeGearError, coded.Code)
	assert.Equal(t, "disk full", coded.Message)
}

func TestCircuitBreakerOpensAfterFailures(t *testing.T) {
	client := testdb.NewTestClient(t)
	r := gear.NewRegistry(client.Client)
	installTestGear(t, r, nil)
	h := newTestHost(t, r, nil, nil)
	h.runner = &stubRunner{fn: func(ctx context.Context, spec *processSpec) (*envelope.Envelope, error) {
		return nil, models.NewCodedError(models.CodeGearExecutionFailed, "boom")
	}}

	for i := 0; i < h.cfg.CircuitBreakerFailures; i++ {
		_, err := h.Execute(context.Background(), &ExecuteRequest{GearID: "file-manager", Action: "read_file"})
		require.Error(t, err)
	}
	assert.True(t, h.IsCircuitOpen("file-manager"))

	// Open breaker short-circuits to skipped without an error.
	result, err := h.Execute(context.Background(), &ExecuteRequest{GearID: "file-manager", Action: "read_file"})
	require.NoError(t, err)
	assert.True(t, result.Skipped)
	assert.Equal(t, "circuit breaker open", result.SkipReason)
}

func TestSecretsInjectedAndRemoved(t *testing.T) {
	client := testdb.NewTestClient(t)
	r := gear.NewRegistry(client.Client)
	installTestGear(t, r, func(m *models.Manifest) {
		m.Permissions.Secrets = []string{"API_KEY", "MISSING"}
	})

	v := vault.New(filepath.Join(t.TempDir(), "vault.json"))
	require.NoError(t, v.Initialize([]byte("pw"), vault.TierLowPower))
	require.NoError(t, v.Store("API_KEY", []byte("sk-123"), []string{"file-manager"}, vault.StoreOptions{}))

	h := newTestHost(t, r, v, nil)

	var observedDir string
	h.runner = &stubRunner{fn: func(ctx context.Context, spec *processSpec) (*envelope.Envelope, error) {
		observedDir = spec.SecretsDir
		raw, err := os.ReadFile(filepath.Join(spec.SecretsDir, "API_KEY"))
		require.NoError(t, err)
		assert.Equal(t, "sk-123", string(raw))

		info, err := os.Stat(filepath.Join(spec.SecretsDir, "API_KEY"))
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

		// A secret the vault lacks is skipped, not fatal.
		_, err = os.Stat(filepath.Join(spec.SecretsDir, "MISSING"))
		assert.True(t, os.IsNotExist(err))
		return okResponse(t, spec, map[string]any{"output": map[string]any{}}), nil
	}}

	_, err := h.Execute(context.Background(), &ExecuteRequest{GearID: "file-manager", Action: "read_file"})
	require.NoError(t, err)

	_, err = os.Stat(observedDir)
	assert.True(t, os.IsNotExist(err), "no secrets file remains after teardown")
}

func TestExecuteLockedVault(t *testing.T) {
	client := testdb.NewTestClient(t)
	r := gear.NewRegistry(client.Client)
	installTestGear(t, r, func(m *models.Manifest) {
		m.Permissions.Secrets = []string{"API_KEY"}
	})

	v := vault.New(filepath.Join(t.TempDir(), "vault.json"))
	require.NoError(t, v.Initialize([]byte("pw"), vault.TierLowPower))
	v.Lock()

	h := newTestHost(t, r, v, nil)
	_, err := h.Execute(context.Background(), &ExecuteRequest{GearID: "file-manager", Action: "read_file"})
	var coded *models.CodedError
	require.ErrorAs(t, err, &coded)
	assert.Equal(t, models.CodeVaultLocked, coded.Code)
}

func TestSubJobEnqueue(t *testing.T) {
	client := testdb.NewTestClient(t)
	r := gear.NewRegistry(client.Client)
	installTestGear(t, r, nil)
	enq := &fakeEnqueuer{}
	h := newTestHost(t, r, nil, enq)
	h.runner = &stubRunner{fn: func(ctx context.Context, spec *processSpec) (*envelope.Envelope, error) {
		id := spec.OnEnqueue("summarize the report", nil)
		assert.Equal(t, "sub-job-1", id)
		return okResponse(t, spec, map[string]any{"output": map[string]any{}}), nil
	}}

	_, err := h.Execute(context.Background(), &ExecuteRequest{JobID: "parent", GearID: "file-manager", Action: "read_file"})
	require.NoError(t, err)

	require.Len(t, enq.contents, 1)
	assert.Equal(t, "summarize the report", enq.contents[0])
	assert.Equal(t, "parent", enq.metadata[0]["parentJobId"])
	assert.Equal(t, "file-manager", enq.metadata[0]["spawnedByGear"])
}

func TestHandleRefusesOtherTypes(t *testing.T) {
	client := testdb.NewTestClient(t)
	h := newTestHost(t, gear.NewRegistry(client.Client), nil, nil)

	_, priv, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)
	caller := envelope.NewSigner("pipeline", priv)
	req, err := caller.NewRequest(ComponentID, models.MsgPlanRequest, map[string]any{})
	require.NoError(t, err)

	resp, err := h.Handle(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, models.MsgError, resp.Type)
}

func TestHandleReturnsErrorTaxonomyInPayload(t *testing.T) {
	client := testdb.NewTestClient(t)
	h := newTestHost(t, gear.NewRegistry(client.Client), nil, nil)

	_, priv, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)
	caller := envelope.NewSigner("pipeline", priv)
	req, err := caller.NewRequest(ComponentID, models.MsgExecuteRequest, map[string]any{
		"plugin": "ghost", "action": "x",
	})
	require.NoError(t, err)

	resp, err := h.Handle(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, models.MsgExecuteResponse, resp.Type)
	errMap, ok := resp.Payload["error"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, models.CodeGearNotFound, errMap["code"])
}
