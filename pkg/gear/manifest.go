// Package gear implements the plugin registry: manifest validation, the
// install-time vulnerability scan, package checksums, and the
// copy-on-write lookup cache the planner and sandbox host read from.
package gear

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"regexp"

	"github.com/gearbox-dev/gearbox/pkg/models"
)

const maxManifestIDLength = 64

var (
	// Gear ids: lowercase letters/digits/hyphen, letter-initial.
	idPattern = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)

	// Semver with optional pre-release and build metadata.
	semverPattern = regexp.MustCompile(`^\d+\.\d+\.\d+(-[0-9A-Za-z.-]+)?(\+[0-9A-Za-z.-]+)?$`)

	// SPDX license identifier shape.
	spdxPattern = regexp.MustCompile(`^[0-9A-Za-z][0-9A-Za-z.+-]*( (OR|AND|WITH) [0-9A-Za-z][0-9A-Za-z.+-]*)*$`)
)

// ValidateManifest checks the structural manifest constraints. The
// vulnerability scan is separate (Scan).
func ValidateManifest(m *models.Manifest) error {
	if m == nil {
		return fmt.Errorf("manifest is nil")
	}
	if m.ID == "" || len(m.ID) > maxManifestIDLength || !idPattern.MatchString(m.ID) {
		return fmt.Errorf("invalid gear id %q: lowercase letters, digits, hyphens, letter-initial, max %d chars", m.ID, maxManifestIDLength)
	}
	if m.Name == "" {
		return fmt.Errorf("gear %s: name is required", m.ID)
	}
	if !semverPattern.MatchString(m.Version) {
		return fmt.Errorf("gear %s: version %q is not semver", m.ID, m.Version)
	}
	if m.License == "" || !spdxPattern.MatchString(m.License) {
		return fmt.Errorf("gear %s: license %q is not an SPDX identifier", m.ID, m.License)
	}
	if !m.Origin.Valid() {
		return fmt.Errorf("gear %s: unknown origin %q", m.ID, m.Origin)
	}
	if len(m.Actions) == 0 {
		return fmt.Errorf("gear %s: at least one action is required", m.ID)
	}
	seen := make(map[string]bool, len(m.Actions))
	for _, a := range m.Actions {
		if a.Name == "" {
			return fmt.Errorf("gear %s: action with empty name", m.ID)
		}
		if seen[a.Name] {
			return fmt.Errorf("gear %s: duplicate action %q", m.ID, a.Name)
		}
		seen[a.Name] = true
		if a.RiskLevel != "" && !a.RiskLevel.Valid() {
			return fmt.Errorf("gear %s: action %q has unknown risk level %q", m.ID, a.Name, a.RiskLevel)
		}
	}
	if r := m.Resources; r != nil {
		if r.MaxMemoryMb < 0 || r.MaxCPUPercent < 0 || r.MaxCPUPercent > 100 || r.TimeoutMs < 0 {
			return fmt.Errorf("gear %s: invalid resource limits", m.ID)
		}
	}
	return nil
}

// ComputeChecksum returns the hex SHA-256 of the package file.
func ComputeChecksum(packagePath string) (string, error) {
	raw, err := os.ReadFile(packagePath)
	if err != nil {
		return "", fmt.Errorf("reading package %s: %w", packagePath, err)
	}
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:]), nil
}
