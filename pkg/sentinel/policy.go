package sentinel

import (
	"fmt"
	"net"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/gearbox-dev/gearbox/pkg/models"
)

// Policy holds the configured hard floors. These cannot be lowered by
// standing rules.
type Policy struct {
	// WorkspaceRoot is the only directory tree filesystem actions may
	// touch.
	WorkspaceRoot string
	// AllowedDomains is the network allowlist. A domain matches itself
	// and its subdomains.
	AllowedDomains []string
	// MaxTransactionAmountUsd gates financial actions: below the limit
	// they need user approval, at or over it they are rejected.
	MaxTransactionAmountUsd float64
}

// Parameter keys inspected by the filesystem and network floors.
var (
	pathParamKeys    = []string{"path", "source", "destination", "target", "file", "directory", "dir", "filename"}
	networkParamKeys = []string{"url", "domain", "host", "endpoint", "address"}
)

// financialActions are treated as transfer-like regardless of parameters.
var financialActions = map[string]bool{
	"charge":     true,
	"pay":        true,
	"payment":    true,
	"transfer":   true,
	"purchase":   true,
	"buy":        true,
	"withdraw":   true,
	"refund":     true,
	"send_money": true,
}

// EvaluateStep applies the hard policy floors to one step. It is a pure
// function of the step and the policy: metadata never participates.
func (p *Policy) EvaluateStep(step models.Step) models.StepValidation {
	sv := models.StepValidation{
		StepID:    step.ID,
		Verdict:   models.VerdictApproved,
		RiskLevel: step.RiskLevel,
	}

	for _, key := range pathParamKeys {
		raw, ok := step.Parameters[key]
		if !ok {
			continue
		}
		path, ok := raw.(string)
		if !ok || path == "" {
			continue
		}
		if reason := p.checkPath(path); reason != "" {
			sv.Reasons = append(sv.Reasons, reason)
			sv.Verdict = models.VerdictRejected
		}
	}

	for _, key := range networkParamKeys {
		raw, ok := step.Parameters[key]
		if !ok {
			continue
		}
		target, ok := raw.(string)
		if !ok || target == "" {
			continue
		}
		if reason := p.checkNetwork(target); reason != "" {
			sv.Reasons = append(sv.Reasons, reason)
			sv.Verdict = models.VerdictRejected
		}
	}

	if amount, financial := financialAmount(step); financial {
		if amount >= p.MaxTransactionAmountUsd {
			sv.Reasons = append(sv.Reasons,
				fmt.Sprintf("transaction amount %.2f exceeds limit %.2f USD", amount, p.MaxTransactionAmountUsd))
			sv.Verdict = models.VerdictRejected
		} else if sv.Verdict != models.VerdictRejected {
			sv.Reasons = append(sv.Reasons, "financial action requires user approval")
			sv.Verdict = models.VerdictNeedsUserApproval
		}
	}

	if sv.Verdict != models.VerdictRejected && isShellAction(step) {
		sv.Reasons = append(sv.Reasons, "shell actions require user approval")
		sv.Verdict = models.VerdictNeedsUserApproval
	}

	if sv.Verdict != models.VerdictRejected && step.RiskLevel == models.RiskCritical {
		sv.Reasons = append(sv.Reasons, "critical risk requires user approval")
		sv.Verdict = models.VerdictNeedsUserApproval
	}

	return sv
}

// checkPath returns a violation reason, or "" when the path is allowed.
// Any traversal component rejects; absolute paths must stay under the
// workspace root.
func (p *Policy) checkPath(path string) string {
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if part == ".." {
			return fmt.Sprintf("path %q contains traversal", path)
		}
	}
	if filepath.IsAbs(path) {
		root := filepath.Clean(p.WorkspaceRoot)
		cleaned := filepath.Clean(path)
		if cleaned != root && !strings.HasPrefix(cleaned, root+string(filepath.Separator)) {
			return fmt.Sprintf("path %q is outside the workspace root", path)
		}
	}
	return ""
}

// checkNetwork returns a violation reason, or "" when the target is
// allowed. Private and loopback addresses always reject.
func (p *Policy) checkNetwork(target string) string {
	host := hostOf(target)
	if host == "" {
		return fmt.Sprintf("network target %q has no resolvable host", target)
	}

	if isPrivateHost(host) {
		return fmt.Sprintf("network target %q resolves to a private address", target)
	}

	for _, allowed := range p.AllowedDomains {
		if host == allowed || strings.HasSuffix(host, "."+allowed) {
			return ""
		}
	}
	return fmt.Sprintf("domain %q is not in the allowlist", host)
}

// hostOf extracts the hostname from a URL or bare host[:port] string.
func hostOf(target string) string {
	if strings.Contains(target, "://") {
		u, err := url.Parse(target)
		if err != nil {
			return ""
		}
		return strings.ToLower(u.Hostname())
	}
	host := target
	if h, _, err := net.SplitHostPort(target); err == nil {
		host = h
	}
	return strings.ToLower(strings.Trim(host, "[]"))
}

// isPrivateHost reports whether the host is a private, loopback, or
// link-local address.
func isPrivateHost(host string) bool {
	if host == "localhost" {
		return true
	}
	ip := net.ParseIP(host)
	if ip == nil {
		return false
	}
	return ip.IsPrivate() || ip.IsLoopback() || ip.IsLinkLocalUnicast() || ip.IsUnspecified()
}

// financialAmount reports whether the step is transfer-like and returns
// its amount. A step is financial when its action is a known transfer
// verb or it carries both amount and currency parameters.
func financialAmount(step models.Step) (float64, bool) {
	action := strings.ToLower(step.Action)
	_, hasCurrency := step.Parameters["currency"]
	raw, hasAmount := step.Parameters["amount"]
	if !financialActions[action] && !(hasAmount && hasCurrency) {
		return 0, false
	}
	if !hasAmount {
		return 0, false
	}
	switch v := raw.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

// isShellAction reports whether the step executes arbitrary commands.
func isShellAction(step models.Step) bool {
	action := strings.ToLower(step.Action)
	if strings.Contains(action, "shell") {
		return true
	}
	switch action {
	case "exec", "run_command", "execute_command":
		return true
	}
	return strings.Contains(strings.ToLower(step.Gear), "shell")
}
