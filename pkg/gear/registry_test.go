package gear

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gearbox-dev/gearbox/pkg/models"
	testdb "github.com/gearbox-dev/gearbox/test/database"
)

func writePackage(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gear.tar.gz")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestInstallAndLookup(t *testing.T) {
	client := testdb.NewTestClient(t)
	r := NewRegistry(client.Client)
	ctx := context.Background()

	m := validManifest()
	row, err := r.Install(ctx, m, writePackage(t, "payload-a"))
	require.NoError(t, err)
	assert.Equal(t, "file-manager", row.ID)
	assert.True(t, row.Enabled)
	assert.NotEmpty(t, row.Checksum)

	// Enabled immediately, visible in cache and catalog.
	assert.True(t, r.IsEnabled("file-manager"))
	cached := r.GetManifest("file-manager")
	require.NotNil(t, cached)
	assert.Equal(t, "file-manager", cached.ID)

	sum, ok := r.GetChecksum("file-manager")
	assert.True(t, ok)
	assert.Equal(t, row.Checksum, sum)

	manifests := r.Manifests()
	require.Len(t, manifests, 1)
	assert.Equal(t, "file-manager", manifests[0].ID)
}

func TestInstallDuplicateFails(t *testing.T) {
	client := testdb.NewTestClient(t)
	r := NewRegistry(client.Client)
	ctx := context.Background()

	_, err := r.Install(ctx, validManifest(), writePackage(t, "payload"))
	require.NoError(t, err)

	_, err = r.Install(ctx, validManifest(), writePackage(t, "payload"))
	assert.ErrorIs(t, err, ErrAlreadyInstalled)
}

func TestInstallFailsVulnerabilityScan(t *testing.T) {
	client := testdb.NewTestClient(t)
	r := NewRegistry(client.Client)
	ctx := context.Background()

	m := validManifest()
	m.Permissions.Shell = true

	_, err := r.Install(ctx, m, writePackage(t, "payload"))
	var scanErr *ScanError
	require.ErrorAs(t, err, &scanErr)
	assert.Contains(t, issueIDs(scanErr.Issues), IssueShellDefaultEnabled)

	// Nothing persisted, nothing cached.
	assert.False(t, r.IsEnabled(m.ID))
	_, err = r.Get(ctx, m.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestInstallBuiltinIdempotent(t *testing.T) {
	client := testdb.NewTestClient(t)
	r := NewRegistry(client.Client)
	ctx := context.Background()

	m := validManifest()
	m.ID = "shell-runner"
	m.Origin = models.OriginBuiltin
	m.Checksum = "abc123"

	first, err := r.InstallBuiltin(ctx, m)
	require.NoError(t, err)

	m.Version = "1.3.0"
	second, err := r.InstallBuiltin(ctx, m)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "1.3.0", second.Version)

	rows, err := r.List(ctx, ListFilter{})
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestDisableEvictsFromCache(t *testing.T) {
	client := testdb.NewTestClient(t)
	r := NewRegistry(client.Client)
	ctx := context.Background()

	_, err := r.Install(ctx, validManifest(), writePackage(t, "payload"))
	require.NoError(t, err)

	require.NoError(t, r.Disable(ctx, "file-manager"))
	assert.False(t, r.IsEnabled("file-manager"))
	assert.Nil(t, r.GetManifest("file-manager"))
	assert.Empty(t, r.Manifests())

	// The row survives disable.
	row, err := r.Get(ctx, "file-manager")
	require.NoError(t, err)
	assert.False(t, row.Enabled)

	require.NoError(t, r.Enable(ctx, "file-manager"))
	assert.True(t, r.IsEnabled("file-manager"))
}

func TestUninstall(t *testing.T) {
	client := testdb.NewTestClient(t)
	r := NewRegistry(client.Client)
	ctx := context.Background()

	_, err := r.Install(ctx, validManifest(), writePackage(t, "payload"))
	require.NoError(t, err)

	require.NoError(t, r.Uninstall(ctx, "file-manager"))
	assert.False(t, r.IsEnabled("file-manager"))

	err = r.Uninstall(ctx, "file-manager")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListFilters(t *testing.T) {
	client := testdb.NewTestClient(t)
	r := NewRegistry(client.Client)
	ctx := context.Background()

	_, err := r.Install(ctx, validManifest(), writePackage(t, "payload"))
	require.NoError(t, err)

	builtin := validManifest()
	builtin.ID = "calculator"
	builtin.Checksum = "deadbeef"
	_, err = r.InstallBuiltin(ctx, builtin)
	require.NoError(t, err)

	require.NoError(t, r.Disable(ctx, "file-manager"))

	origin := models.OriginBuiltin
	rows, err := r.List(ctx, ListFilter{Origin: &origin})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "calculator", rows[0].ID)

	enabled := true
	rows, err = r.List(ctx, ListFilter{Enabled: &enabled})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "calculator", rows[0].ID)
}

func TestUpdateConfigRefreshesCache(t *testing.T) {
	client := testdb.NewTestClient(t)
	r := NewRegistry(client.Client)
	ctx := context.Background()

	_, err := r.Install(ctx, validManifest(), writePackage(t, "payload"))
	require.NoError(t, err)

	require.NoError(t, r.UpdateConfig(ctx, "file-manager", map[string]any{"root": "/workspace"}))

	cfg, err := r.GetConfig(ctx, "file-manager")
	require.NoError(t, err)
	assert.Equal(t, "/workspace", cfg["root"])
}

func TestLoadCacheSkipsDisabled(t *testing.T) {
	client := testdb.NewTestClient(t)
	r := NewRegistry(client.Client)
	ctx := context.Background()

	_, err := r.Install(ctx, validManifest(), writePackage(t, "payload"))
	require.NoError(t, err)
	require.NoError(t, r.Disable(ctx, "file-manager"))

	fresh := NewRegistry(client.Client)
	require.NoError(t, fresh.LoadCache(ctx))
	assert.False(t, fresh.IsEnabled("file-manager"))

	require.NoError(t, r.Enable(ctx, "file-manager"))
	require.NoError(t, fresh.LoadCache(ctx))
	assert.True(t, fresh.IsEnabled("file-manager"))
}

func TestGetMissing(t *testing.T) {
	client := testdb.NewTestClient(t)
	r := NewRegistry(client.Client)

	_, err := r.Get(context.Background(), "nope")
	assert.True(t, errors.Is(err, ErrNotFound))
}
