package sandbox

import (
	"context"
	"crypto/ed25519"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gearbox-dev/gearbox/pkg/envelope"
	"github.com/gearbox-dev/gearbox/pkg/models"
)

func envelopeKey() (ed25519.PublicKey, ed25519.PrivateKey, error) {
	return ed25519.GenerateKey(nil)
}

func writeScript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gear.sh")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o755))
	return path
}

func testProcessSpec(t *testing.T, entry string) *processSpec {
	t.Helper()
	_, priv, err := envelopeKey()
	require.NoError(t, err)
	signer := envelope.NewSigner(ComponentID, priv)
	req, err := signer.NewRequest("file-manager", models.MsgExecuteRequest, map[string]any{"action": "read_file"})
	require.NoError(t, err)

	return &processSpec{
		EntryPoint:  entry,
		WorkDir:     t.TempDir(),
		Workspace:   t.TempDir(),
		GearID:      "file-manager",
		GearVersion: "1.0.0",
		MaxMemoryMb: 64,
		Timeout:     2 * time.Second,
		KillTimeout: 100 * time.Millisecond,
		Request:     req,
	}
}

func TestRunTimesOutSilentChild(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}

	spec := testProcessSpec(t, writeScript(t, "sleep 60\n"))
	spec.Timeout = 200 * time.Millisecond

	start := time.Now()
	_, err := (&execRunner{}).run(context.Background(), spec)
	var coded *models.CodedError
	require.ErrorAs(t, err, &coded)
	assert.Equal(t, models.CodeGearTimeout, coded.Code)
	assert.Less(t, time.Since(start), 5*time.Second, "SIGTERM then SIGKILL must reap the child promptly")
}

func TestRunControlLines(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}

	spec := testProcessSpec(t, writeScript(t,
		`echo '{"type":"log","message":"starting"}'
echo '{"type":"progress","percent":50,"message":"halfway"}'
echo '{"type":"enqueue_job","content":"follow up"}'
echo 'not json at all'
exit 0
`))

	var logs []string
	var percents []float64
	var enqueued []string
	spec.OnLog = func(message string) { logs = append(logs, message) }
	spec.OnProgress = func(percent float64, message string) { percents = append(percents, percent) }
	spec.OnEnqueue = func(content string, metadata map[string]any) string {
		enqueued = append(enqueued, content)
		return "sub-1"
	}

	_, err := (&execRunner{}).run(context.Background(), spec)
	var coded *models.CodedError
	require.ErrorAs(t, err, &coded)
	assert.Equal(t, models.CodeGearExecutionFailed, coded.Code)
	assert.Contains(t, coded.Message, "without a response")

	assert.Equal(t, []string{"starting"}, logs)
	assert.Equal(t, []float64{50}, percents)
	assert.Equal(t, []string{"follow up"}, enqueued)
}

func TestRunCancelledContext(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}

	spec := testProcessSpec(t, writeScript(t, "sleep 60\n"))
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(100 * time.Millisecond)
		cancel()
	}()

	_, err := (&execRunner{}).run(ctx, spec)
	var coded *models.CodedError
	require.ErrorAs(t, err, &coded)
	assert.Equal(t, models.CodeJobCancelled, coded.Code)
}

func TestRunRejectsUnsignedResponse(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}

	// An envelope-shaped line with a bogus signature must be rejected,
	// not acted upon.
	spec := testProcessSpec(t, writeScript(t,
		`echo '{"messageId":"m1","correlationId":"c1","timestamp":"2026-01-01T00:00:00.000Z","from":"file-manager","to":"sandbox","type":"execute.response","payload":{},"signature":"Zm9yZ2Vk","signer":"file-manager"}'
sleep 60
`))
	spec.Timeout = 2 * time.Second

	_, err := (&execRunner{}).run(context.Background(), spec)
	var coded *models.CodedError
	require.ErrorAs(t, err, &coded)
	assert.Equal(t, models.CodeSignatureInvalid, coded.Code)
}

func TestRunNoEntryPoint(t *testing.T) {
	spec := testProcessSpec(t, "")
	spec.EntryPoint = ""

	_, err := (&execRunner{}).run(context.Background(), spec)
	var coded *models.CodedError
	require.ErrorAs(t, err, &coded)
	assert.Equal(t, models.CodeGearExecutionFailed, coded.Code)
}

func TestChildEnvIsMinimal(t *testing.T) {
	t.Setenv("HOST_ONLY_VAR", "must not leak")

	spec := testProcessSpec(t, "/bin/true")
	spec.SecretsDir = "/tmp/secrets"
	_, priv, err := envelopeKey()
	require.NoError(t, err)

	env := childEnv(spec, priv)
	joined := ""
	for _, kv := range env {
		joined += kv + "\n"
	}
	assert.Contains(t, joined, "PATH=/usr/bin:/bin")
	assert.Contains(t, joined, "GEAR_ID=file-manager")
	assert.Contains(t, joined, "GEAR_VERSION=1.0.0")
	assert.Contains(t, joined, "GEAR_MAX_MEMORY_MB=64")
	assert.Contains(t, joined, "GEAR_SECRETS_DIR=/tmp/secrets")
	assert.NotContains(t, joined, "HOST_ONLY_VAR")
}

func TestWritePolicyFile(t *testing.T) {
	dir := t.TempDir()
	m := &models.Manifest{
		ID: "file-manager",
		Permissions: models.GearPermission{
			Filesystem: &models.FilesystemPermission{Read: []string{"/workspace/**"}},
		},
	}
	require.NoError(t, writePolicyFile(dir, m))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}
