package vault

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestVault(t *testing.T) (*Vault, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vault.json")
	v := New(path)
	require.NoError(t, v.Initialize([]byte("correct horse"), TierLowPower))
	return v, path
}

func TestInitializeFailsIfExists(t *testing.T) {
	v, path := newTestVault(t)
	_ = v

	again := New(path)
	err := again.Initialize([]byte("other"), TierLowPower)
	assert.ErrorIs(t, err, ErrExists)
}

func TestInitializeRejectsUnknownTier(t *testing.T) {
	v := New(filepath.Join(t.TempDir(), "vault.json"))
	err := v.Initialize([]byte("pw"), Tier("turbo"))
	assert.ErrorContains(t, err, "unknown vault tier")
}

func TestUnlockWithWrongPassword(t *testing.T) {
	_, path := newTestVault(t)

	v := New(path)
	err := v.Unlock([]byte("wrong password"))
	assert.ErrorIs(t, err, ErrInvalidPassword)
	assert.False(t, v.Unlocked())
}

func TestUnlockNotInitialized(t *testing.T) {
	v := New(filepath.Join(t.TempDir(), "missing.json"))
	err := v.Unlock([]byte("pw"))
	assert.ErrorIs(t, err, ErrNotInitialized)
}

func TestStoreRetrieveRoundTrip(t *testing.T) {
	v, path := newTestVault(t)

	require.NoError(t, v.Store("API_KEY", []byte("sk-live-1234"), []string{"http-client"}, StoreOptions{}))

	got, err := v.Retrieve("API_KEY", "http-client")
	require.NoError(t, err)
	assert.Equal(t, "sk-live-1234", string(got))
	Zero(got)

	// Reopen from disk with the password; ciphertext survives restarts.
	fresh := New(path)
	require.NoError(t, fresh.Unlock([]byte("correct horse")))
	got, err = fresh.Retrieve("API_KEY", "http-client")
	require.NoError(t, err)
	assert.Equal(t, "sk-live-1234", string(got))
}

func TestStoreZeroesValueBuffer(t *testing.T) {
	v, _ := newTestVault(t)

	value := []byte("ephemeral")
	require.NoError(t, v.Store("S", value, nil, StoreOptions{}))
	for _, b := range value {
		assert.Zero(t, b)
	}
}

func TestRetrieveEnforcesACL(t *testing.T) {
	v, _ := newTestVault(t)
	require.NoError(t, v.Store("DB_PASSWORD", []byte("hunter2"), []string{"db-client"}, StoreOptions{}))

	_, err := v.Retrieve("DB_PASSWORD", "file-manager")
	assert.ErrorIs(t, err, ErrAccessDenied)

	// The host itself bypasses the ACL.
	got, err := v.Retrieve("DB_PASSWORD", "")
	require.NoError(t, err)
	Zero(got)
}

func TestRetrieveMissing(t *testing.T) {
	v, _ := newTestVault(t)
	_, err := v.Retrieve("nope", "")
	assert.ErrorIs(t, err, ErrSecretNotFound)
}

func TestLockedOperationsFail(t *testing.T) {
	v, _ := newTestVault(t)
	require.NoError(t, v.Store("S", []byte("x"), nil, StoreOptions{}))
	v.Lock()
	assert.False(t, v.Unlocked())

	assert.ErrorIs(t, v.Store("T", []byte("y"), nil, StoreOptions{}), ErrLocked)
	_, err := v.Retrieve("S", "")
	assert.ErrorIs(t, err, ErrLocked)
	_, err = v.List()
	assert.ErrorIs(t, err, ErrLocked)
	assert.ErrorIs(t, v.Delete("S"), ErrLocked)
}

func TestListReturnsMetadataOnly(t *testing.T) {
	v, _ := newTestVault(t)
	require.NoError(t, v.Store("A", []byte("value-a"), []string{"p1"}, StoreOptions{RotateAfterDays: 30}))
	require.NoError(t, v.Store("B", []byte("value-b"), nil, StoreOptions{}))

	infos, err := v.List()
	require.NoError(t, err)
	require.Len(t, infos, 2)

	encoded, err := json.Marshal(infos)
	require.NoError(t, err)
	assert.NotContains(t, string(encoded), "value-a")
	assert.NotContains(t, string(encoded), "value-b")
}

func TestDelete(t *testing.T) {
	v, _ := newTestVault(t)
	require.NoError(t, v.Store("S", []byte("x"), nil, StoreOptions{}))
	require.NoError(t, v.Delete("S"))
	assert.ErrorIs(t, v.Delete("S"), ErrSecretNotFound)
}

func TestRotationCheck(t *testing.T) {
	v, _ := newTestVault(t)
	require.NoError(t, v.Store("OLD", []byte("x"), nil, StoreOptions{RotateAfterDays: 7}))
	require.NoError(t, v.Store("FRESH", []byte("y"), nil, StoreOptions{RotateAfterDays: 7}))
	require.NoError(t, v.Store("NEVER", []byte("z"), nil, StoreOptions{}))

	due, err := v.RotationCheck(time.Now().AddDate(0, 0, 8))
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"OLD", "FRESH"}, due)

	due, err = v.RotationCheck(time.Now())
	require.NoError(t, err)
	assert.Empty(t, due)
}

func TestVaultFilePermissions(t *testing.T) {
	_, path := newTestVault(t)
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestValuesNeverStoredInCleartext(t *testing.T) {
	v, path := newTestVault(t)
	require.NoError(t, v.Store("TOKEN", []byte("super-secret-token"), nil, StoreOptions{}))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "super-secret-token")
	assert.Contains(t, string(raw), "TOKEN", "names stay cleartext for listing")
}
