package sentinel

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gearbox-dev/gearbox/pkg/models"
)

func testPolicy() *Policy {
	return &Policy{
		WorkspaceRoot:           "/workspace",
		AllowedDomains:          []string{"api.example.com", "example.org"},
		MaxTransactionAmountUsd: 100,
	}
}

func TestEvaluateStepFloors(t *testing.T) {
	tests := []struct {
		name    string
		step    models.Step
		verdict models.Verdict
	}{
		{
			name: "low risk read inside workspace",
			step: models.Step{
				ID: "s1", Gear: "file-manager", Action: "read_file",
				Parameters: map[string]any{"path": "/workspace/test.txt"},
				RiskLevel:  models.RiskLow,
			},
			verdict: models.VerdictApproved,
		},
		{
			name: "critical risk needs approval",
			step: models.Step{
				ID: "s1", Gear: "file-manager", Action: "read_file",
				Parameters: map[string]any{"path": "/workspace/test.txt"},
				RiskLevel:  models.RiskCritical,
			},
			verdict: models.VerdictNeedsUserApproval,
		},
		{
			name: "traversal rejected",
			step: models.Step{
				ID: "s1", Gear: "file-manager", Action: "read_file",
				Parameters: map[string]any{"path": "/workspace/../etc/passwd"},
				RiskLevel:  models.RiskLow,
			},
			verdict: models.VerdictRejected,
		},
		{
			name: "relative traversal rejected",
			step: models.Step{
				ID: "s1", Gear: "file-manager", Action: "read_file",
				Parameters: map[string]any{"path": "../secrets.txt"},
				RiskLevel:  models.RiskLow,
			},
			verdict: models.VerdictRejected,
		},
		{
			name: "absolute path outside workspace rejected",
			step: models.Step{
				ID: "s1", Gear: "file-manager", Action: "write_file",
				Parameters: map[string]any{"path": "/etc/passwd"},
				RiskLevel:  models.RiskLow,
			},
			verdict: models.VerdictRejected,
		},
		{
			name: "allowlisted domain approved",
			step: models.Step{
				ID: "s1", Gear: "http", Action: "get",
				Parameters: map[string]any{"url": "https://api.example.com/v1/data"},
				RiskLevel:  models.RiskLow,
			},
			verdict: models.VerdictApproved,
		},
		{
			name: "allowlisted subdomain approved",
			step: models.Step{
				ID: "s1", Gear: "http", Action: "get",
				Parameters: map[string]any{"url": "https://cdn.example.org/asset"},
				RiskLevel:  models.RiskLow,
			},
			verdict: models.VerdictApproved,
		},
		{
			name: "unlisted domain rejected",
			step: models.Step{
				ID: "s1", Gear: "http", Action: "get",
				Parameters: map[string]any{"url": "https://evil.test/exfil"},
				RiskLevel:  models.RiskLow,
			},
			verdict: models.VerdictRejected,
		},
		{
			name: "private address rejected",
			step: models.Step{
				ID: "s1", Gear: "http", Action: "get",
				Parameters: map[string]any{"url": "http://192.168.1.10/admin"},
				RiskLevel:  models.RiskLow,
			},
			verdict: models.VerdictRejected,
		},
		{
			name: "localhost rejected",
			step: models.Step{
				ID: "s1", Gear: "http", Action: "get",
				Parameters: map[string]any{"host": "localhost:8080"},
				RiskLevel:  models.RiskLow,
			},
			verdict: models.VerdictRejected,
		},
		{
			name: "over-limit financial rejected",
			step: models.Step{
				ID: "s1", Gear: "payment", Action: "charge",
				Parameters: map[string]any{"amount": float64(1000), "currency": "USD"},
				RiskLevel:  models.RiskCritical,
			},
			verdict: models.VerdictRejected,
		},
		{
			name: "below-limit financial needs approval",
			step: models.Step{
				ID: "s1", Gear: "payment", Action: "charge",
				Parameters: map[string]any{"amount": float64(25), "currency": "USD"},
				RiskLevel:  models.RiskMedium,
			},
			verdict: models.VerdictNeedsUserApproval,
		},
		{
			name: "shell action needs approval",
			step: models.Step{
				ID: "s1", Gear: "system", Action: "run_shell",
				Parameters: map[string]any{"command": "ls"},
				RiskLevel:  models.RiskLow,
			},
			verdict: models.VerdictNeedsUserApproval,
		},
	}

	policy := testPolicy()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sv := policy.EvaluateStep(tc.step)
			assert.Equal(t, tc.verdict, sv.Verdict)
			if tc.verdict != models.VerdictApproved {
				assert.NotEmpty(t, sv.Reasons)
			}
		})
	}
}

func TestCheckPathWorkspaceBoundary(t *testing.T) {
	policy := testPolicy()
	assert.Empty(t, policy.checkPath("/workspace"))
	assert.Empty(t, policy.checkPath("/workspace/sub/dir/file.txt"))
	assert.Empty(t, policy.checkPath("relative/file.txt"))
	// Sibling directory sharing the prefix is still outside.
	assert.NotEmpty(t, policy.checkPath("/workspace-evil/file.txt"))
}

func TestHostOf(t *testing.T) {
	assert.Equal(t, "api.example.com", hostOf("https://api.example.com:8443/path"))
	assert.Equal(t, "example.org", hostOf("example.org:80"))
	assert.Equal(t, "example.org", hostOf("example.org"))
	assert.Equal(t, "10.0.0.1", hostOf("http://10.0.0.1/x"))
}

func TestFinancialAmountDetection(t *testing.T) {
	_, financial := financialAmount(models.Step{
		Action:     "read_file",
		Parameters: map[string]any{"path": "/workspace/a"},
	})
	assert.False(t, financial)

	amount, financial := financialAmount(models.Step{
		Action:     "submit",
		Parameters: map[string]any{"amount": float64(12.5), "currency": "USD"},
	})
	assert.True(t, financial, "amount+currency marks a step transfer-like")
	assert.Equal(t, 12.5, amount)

	amount, financial = financialAmount(models.Step{
		Action:     "transfer",
		Parameters: map[string]any{"amount": 50},
	})
	assert.True(t, financial)
	assert.Equal(t, float64(50), amount)
}
