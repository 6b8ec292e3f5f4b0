package gear

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gearbox-dev/gearbox/pkg/models"
)

func validManifest() *models.Manifest {
	return &models.Manifest{
		ID:      "file-manager",
		Name:    "File Manager",
		Version: "1.2.0",
		License: "MIT",
		Origin:  models.OriginUser,
		Actions: []models.GearAction{
			{Name: "read_file", RiskLevel: models.RiskLow},
			{Name: "write_file", RiskLevel: models.RiskMedium},
		},
		Permissions: models.GearPermission{
			Filesystem: &models.FilesystemPermission{Read: []string{"/workspace/**"}},
		},
	}
}

func TestValidateManifest(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.Manifest)
		wantErr string
	}{
		{name: "valid", mutate: func(m *models.Manifest) {}},
		{name: "empty id", mutate: func(m *models.Manifest) { m.ID = "" }, wantErr: "invalid gear id"},
		{name: "uppercase id", mutate: func(m *models.Manifest) { m.ID = "FileManager" }, wantErr: "invalid gear id"},
		{name: "digit-initial id", mutate: func(m *models.Manifest) { m.ID = "7zip" }, wantErr: "invalid gear id"},
		{name: "id too long", mutate: func(m *models.Manifest) { m.ID = "a" + strings.Repeat("b", 64) }, wantErr: "invalid gear id"},
		{name: "id at limit", mutate: func(m *models.Manifest) { m.ID = "a" + strings.Repeat("b", 63) }},
		{name: "missing name", mutate: func(m *models.Manifest) { m.Name = "" }, wantErr: "name is required"},
		{name: "bad version", mutate: func(m *models.Manifest) { m.Version = "1.2" }, wantErr: "not semver"},
		{name: "prerelease version", mutate: func(m *models.Manifest) { m.Version = "2.0.0-rc.1" }},
		{name: "missing license", mutate: func(m *models.Manifest) { m.License = "" }, wantErr: "SPDX"},
		{name: "license expression", mutate: func(m *models.Manifest) { m.License = "Apache-2.0 OR MIT" }},
		{name: "bad origin", mutate: func(m *models.Manifest) { m.Origin = "vendor" }, wantErr: "unknown origin"},
		{name: "no actions", mutate: func(m *models.Manifest) { m.Actions = nil }, wantErr: "at least one action"},
		{name: "duplicate action", mutate: func(m *models.Manifest) {
			m.Actions = append(m.Actions, models.GearAction{Name: "read_file"})
		}, wantErr: "duplicate action"},
		{name: "bad risk level", mutate: func(m *models.Manifest) {
			m.Actions[0].RiskLevel = "extreme"
		}, wantErr: "unknown risk level"},
		{name: "negative memory", mutate: func(m *models.Manifest) {
			m.Resources = &models.GearResources{MaxMemoryMb: -1}
		}, wantErr: "invalid resource limits"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := validManifest()
			tc.mutate(m)
			err := ValidateManifest(m)
			if tc.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)
			}
		})
	}
}

func TestComputeChecksum(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gear.tar.gz")
	content := []byte("package bytes")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	sum, err := ComputeChecksum(path)
	require.NoError(t, err)

	expected := sha256.Sum256(content)
	assert.Equal(t, hex.EncodeToString(expected[:]), sum)
}

func TestComputeChecksumMissingFile(t *testing.T) {
	_, err := ComputeChecksum(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
