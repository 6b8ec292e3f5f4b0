package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gearbox-dev/gearbox/ent"
	"github.com/gearbox-dev/gearbox/ent/job"
	"github.com/gearbox-dev/gearbox/pkg/config"
	"github.com/gearbox-dev/gearbox/pkg/gear"
	"github.com/gearbox-dev/gearbox/pkg/models"
	"github.com/gearbox-dev/gearbox/pkg/queue"
	"github.com/gearbox-dev/gearbox/pkg/rules"
	"github.com/gearbox-dev/gearbox/pkg/vault"
	testdb "github.com/gearbox-dev/gearbox/test/database"
)

type testServer struct {
	router *gin.Engine
	client *ent.Client
	queue  *queue.Service
	vault  *vault.Vault
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	client := testdb.NewTestClient(t)
	q := queue.NewService(client.Client, config.DefaultQueueConfig(), nil)
	v := vault.New(filepath.Join(t.TempDir(), "vault.json"))

	srv := NewServer(Deps{
		Client: client.Client,
		Queue:  q,
		Gears:  gear.NewRegistry(client.Client),
		Vault:  v,
		Rules:  rules.NewEngine(client.Client, 3),
		Config: &config.ServerConfig{
			ListenAddr:      "127.0.0.1:0",
			ShutdownTimeout: time.Second,
			WsWriteTimeout:  time.Second,
		},
	})
	return &testServer{router: srv.Router(), client: client.Client, queue: q, vault: v}
}

func (ts *testServer) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	out := map[string]any{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestCreateAndGetJob(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/api/v1/jobs", gin.H{
		"conversationId": "c1",
		"content":        gin.H{"text": "hello"},
		"priority":       "high",
	})
	require.Equal(t, http.StatusAccepted, rec.Code, rec.Body.String())
	created := decode(t, rec)
	id := created["id"].(string)
	assert.Equal(t, "pending", created["status"])
	assert.Equal(t, "high", created["priority"])

	rec = ts.do(t, http.MethodGet, "/api/v1/jobs/"+id, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, id, decode(t, rec)["id"])

	rec = ts.do(t, http.MethodGet, "/api/v1/jobs/missing", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = ts.do(t, http.MethodPost, "/api/v1/jobs", gin.H{"content": gin.H{"text": "x"}})
	assert.Equal(t, http.StatusBadRequest, rec.Code, "conversationId is required")
}

func TestListJobsFiltersByStatus(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()

	pending, err := ts.queue.Enqueue(ctx, queue.EnqueueInput{ConversationID: "c1"})
	require.NoError(t, err)
	done, err := ts.queue.Enqueue(ctx, queue.EnqueueInput{ConversationID: "c1"})
	require.NoError(t, err)
	require.NoError(t, ts.queue.Transition(ctx, done.ID, models.JobPending, models.JobPlanning))
	require.NoError(t, ts.queue.Complete(ctx, done.ID, &models.JobResult{Path: "fast", Text: "ok"}))

	rec := ts.do(t, http.MethodGet, "/api/v1/jobs?status=pending", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	require.EqualValues(t, 1, body["count"])
	jobs := body["jobs"].([]any)
	assert.Equal(t, pending.ID, jobs[0].(map[string]any)["id"])

	rec = ts.do(t, http.MethodGet, "/api/v1/jobs?status=bogus", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// suspendJob parks a job in awaiting_approval with an issued nonce.
func suspendJob(t *testing.T, ts *testServer, nonce string, expiresAt time.Time) string {
	t.Helper()
	ctx := context.Background()
	j, err := ts.queue.Enqueue(ctx, queue.EnqueueInput{ConversationID: "c1"})
	require.NoError(t, err)
	err = ts.client.Job.UpdateOneID(j.ID).
		SetStatus(job.StatusAwaitingApproval).
		SetPlan(&models.Plan{ID: "p1", Steps: []models.Step{
			{ID: "a", Gear: "email", Action: "send", RiskLevel: models.RiskHigh},
		}}).
		SetMetadata(map[string]any{
			"approvalNonce":          nonce,
			"approvalNonceExpiresAt": expiresAt.UTC().Format(time.RFC3339),
		}).
		Exec(ctx)
	require.NoError(t, err)
	return j.ID
}

func TestApproveJob(t *testing.T) {
	ts := newTestServer(t)
	id := suspendJob(t, ts, "nonce-1", time.Now().Add(time.Hour))

	rec := ts.do(t, http.MethodPost, "/api/v1/jobs/"+id+"/approve", gin.H{"nonce": "wrong"})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = ts.do(t, http.MethodPost, "/api/v1/jobs/"+id+"/approve", gin.H{"nonce": "nonce-1"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "executing", decode(t, rec)["status"])

	// Not awaiting approval anymore.
	rec = ts.do(t, http.MethodPost, "/api/v1/jobs/"+id+"/approve", gin.H{"nonce": "nonce-1"})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestApproveExpiredNonce(t *testing.T) {
	ts := newTestServer(t)
	id := suspendJob(t, ts, "nonce-2", time.Now().Add(-time.Minute))

	rec := ts.do(t, http.MethodPost, "/api/v1/jobs/"+id+"/approve", gin.H{"nonce": "nonce-2"})
	assert.Equal(t, http.StatusGone, rec.Code)
}

func TestDenyJob(t *testing.T) {
	ts := newTestServer(t)
	id := suspendJob(t, ts, "nonce-3", time.Now().Add(time.Hour))

	rec := ts.do(t, http.MethodPost, "/api/v1/jobs/"+id+"/deny", gin.H{
		"nonce": "nonce-3", "reason": "too risky",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	got, err := ts.queue.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, job.StatusFailed, got.Status)
	require.NotNil(t, got.Error)
	assert.Equal(t, models.CodeApprovalDenied, got.Error.Code)
	assert.Contains(t, got.Error.Message, "too risky")
}

func TestCancelJob(t *testing.T) {
	ts := newTestServer(t)
	j, err := ts.queue.Enqueue(context.Background(), queue.EnqueueInput{ConversationID: "c1"})
	require.NoError(t, err)

	rec := ts.do(t, http.MethodPost, "/api/v1/jobs/"+j.ID+"/cancel", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = ts.do(t, http.MethodPost, "/api/v1/jobs/"+j.ID+"/cancel", nil)
	assert.Equal(t, http.StatusConflict, rec.Code, "terminal jobs refuse cancellation")
}

func apiTestManifest(id string) *models.Manifest {
	return &models.Manifest{
		ID:      id,
		Name:    "File Manager",
		Version: "1.0.0",
		License: "MIT",
		Origin:  models.OriginUser,
		Actions: []models.GearAction{
			{Name: "read_file", RiskLevel: models.RiskLow},
		},
		Permissions: models.GearPermission{
			Filesystem: &models.FilesystemPermission{Read: []string{"/workspace/docs"}},
		},
	}
}

func writeTestPackage(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gear.tar.gz")
	require.NoError(t, os.WriteFile(path, []byte("package-bytes"), 0o644))
	return path
}

func TestGearLifecycle(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/api/v1/gears", gin.H{
		"manifest":    apiTestManifest("file-manager"),
		"packagePath": writeTestPackage(t),
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, true, decode(t, rec)["enabled"])

	rec = ts.do(t, http.MethodGet, "/api/v1/gears?enabled=true", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 1, decode(t, rec)["count"])

	rec = ts.do(t, http.MethodPost, "/api/v1/gears/file-manager/disable", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = ts.do(t, http.MethodGet, "/api/v1/gears?enabled=true", nil)
	assert.EqualValues(t, 0, decode(t, rec)["count"])

	rec = ts.do(t, http.MethodPut, "/api/v1/gears/file-manager/config", gin.H{
		"config": gin.H{"maxResults": 10},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	rec = ts.do(t, http.MethodGet, "/api/v1/gears/file-manager/config", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = ts.do(t, http.MethodDelete, "/api/v1/gears/file-manager", nil)
	require.Equal(t, http.StatusNoContent, rec.Code)
	rec = ts.do(t, http.MethodGet, "/api/v1/gears/file-manager", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGearInstallBlockedByScan(t *testing.T) {
	ts := newTestServer(t)

	m := apiTestManifest("shady-gear")
	m.Permissions.Shell = true
	m.Permissions.Network = &models.NetworkPermission{Domains: []string{"example.com"}}

	rec := ts.do(t, http.MethodPost, "/api/v1/gears", gin.H{
		"manifest":    m,
		"packagePath": writeTestPackage(t),
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code, rec.Body.String())
}

func TestVaultLifecycle(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/api/v1/vault/init", gin.H{
		"password": "correct horse", "tier": "low-power",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = ts.do(t, http.MethodPut, "/api/v1/vault/secrets/api-key", gin.H{
		"value": "s3cret", "allowedPlugins": []string{"email"},
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = ts.do(t, http.MethodGet, "/api/v1/vault/secrets", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.EqualValues(t, 1, body["count"])
	assert.NotContains(t, rec.Body.String(), "s3cret", "secret values never leave the vault")

	rec = ts.do(t, http.MethodPost, "/api/v1/vault/lock", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = ts.do(t, http.MethodPut, "/api/v1/vault/secrets/other", gin.H{"value": "x"})
	assert.Equal(t, http.StatusConflict, rec.Code, "locked vault refuses writes")

	rec = ts.do(t, http.MethodPost, "/api/v1/vault/unlock", gin.H{"password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	rec = ts.do(t, http.MethodPost, "/api/v1/vault/unlock", gin.H{"password": "correct horse"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = ts.do(t, http.MethodDelete, "/api/v1/vault/secrets/api-key", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRulesLifecycle(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/api/v1/rules", gin.H{
		"actionPattern": "email:*",
		"verdict":       "approve",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	id := decode(t, rec)["id"].(string)

	rec = ts.do(t, http.MethodGet, "/api/v1/rules", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 1, decode(t, rec)["count"])

	rec = ts.do(t, http.MethodDelete, "/api/v1/rules/"+id, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = ts.do(t, http.MethodPost, "/api/v1/rules", gin.H{"verdict": "approve"})
	assert.Equal(t, http.StatusBadRequest, rec.Code, "actionPattern is required")
}

func TestHealthEndpoint(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/api/v1/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, false, body["vaultUnlocked"])
}
