package gear

import (
	"fmt"
	"strings"

	"github.com/gearbox-dev/gearbox/pkg/models"
)

// Vulnerability issue identifiers reported by the install-time scan.
const (
	IssueShellWithNetwork    = "VULN_SHELL_WITH_NETWORK"
	IssueWildcardFilesystem  = "VULN_WILDCARD_FILESYSTEM"
	IssueWildcardNetwork     = "VULN_WILDCARD_NETWORK"
	IssueExcessiveSecrets    = "VULN_EXCESSIVE_SECRETS"
	IssueShellDefaultEnabled = "VULN_SHELL_DEFAULT_ENABLED"
)

const maxDeclaredSecrets = 10

// Issue is one finding from the vulnerability scan.
type Issue struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

func (i Issue) String() string { return fmt.Sprintf("%s: %s", i.ID, i.Message) }

// Scan inspects a manifest's capability grants for dangerous
// combinations. Any finding blocks installation. Built-in gears skip
// the findings that only apply to third-party packages.
func Scan(m *models.Manifest) []Issue {
	var issues []Issue
	builtin := m.Origin == models.OriginBuiltin
	p := m.Permissions

	if p.Shell && p.Network != nil && len(p.Network.Domains) > 0 {
		issues = append(issues, Issue{
			ID:      IssueShellWithNetwork,
			Message: "shell access combined with network access allows arbitrary exfiltration",
		})
	}

	if !builtin && p.Filesystem != nil && hasWildcard(p.Filesystem.Read, p.Filesystem.Write) {
		issues = append(issues, Issue{
			ID:      IssueWildcardFilesystem,
			Message: "wildcard filesystem grant on a third-party gear",
		})
	}

	if !builtin && p.Network != nil && hasWildcard(p.Network.Domains) {
		issues = append(issues, Issue{
			ID:      IssueWildcardNetwork,
			Message: "wildcard network grant on a third-party gear",
		})
	}

	if len(p.Secrets) > maxDeclaredSecrets {
		issues = append(issues, Issue{
			ID:      IssueExcessiveSecrets,
			Message: fmt.Sprintf("declares %d secrets, limit is %d", len(p.Secrets), maxDeclaredSecrets),
		})
	}

	if !builtin && p.Shell {
		issues = append(issues, Issue{
			ID:      IssueShellDefaultEnabled,
			Message: "third-party gear requests shell access",
		})
	}

	return issues
}

// hasWildcard reports whether any glob list contains a bare or rooted
// wildcard that would grant everything.
func hasWildcard(lists ...[]string) bool {
	for _, list := range lists {
		for _, entry := range list {
			trimmed := strings.TrimSpace(entry)
			switch trimmed {
			case "*", "**", "/**", "/*", "*.*":
				return true
			}
		}
	}
	return false
}
