package gear

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gearbox-dev/gearbox/pkg/models"
)

func issueIDs(issues []Issue) []string {
	ids := make([]string, len(issues))
	for i, issue := range issues {
		ids[i] = issue.ID
	}
	return ids
}

func TestScan(t *testing.T) {
	manySecrets := make([]string, 11)
	for i := range manySecrets {
		manySecrets[i] = fmt.Sprintf("SECRET_%d", i)
	}

	tests := []struct {
		name   string
		mutate func(*models.Manifest)
		want   []string
	}{
		{
			name:   "clean manifest",
			mutate: func(m *models.Manifest) {},
		},
		{
			name: "shell with network",
			mutate: func(m *models.Manifest) {
				m.Permissions.Shell = true
				m.Permissions.Network = &models.NetworkPermission{Domains: []string{"api.example.com"}}
			},
			want: []string{IssueShellWithNetwork, IssueShellDefaultEnabled},
		},
		{
			name: "wildcard filesystem read",
			mutate: func(m *models.Manifest) {
				m.Permissions.Filesystem = &models.FilesystemPermission{Read: []string{"**"}}
			},
			want: []string{IssueWildcardFilesystem},
		},
		{
			name: "wildcard filesystem write",
			mutate: func(m *models.Manifest) {
				m.Permissions.Filesystem = &models.FilesystemPermission{Write: []string{"/**"}}
			},
			want: []string{IssueWildcardFilesystem},
		},
		{
			name: "wildcard network",
			mutate: func(m *models.Manifest) {
				m.Permissions.Network = &models.NetworkPermission{Domains: []string{"*"}}
			},
			want: []string{IssueWildcardNetwork},
		},
		{
			name: "excessive secrets",
			mutate: func(m *models.Manifest) {
				m.Permissions.Secrets = manySecrets
			},
			want: []string{IssueExcessiveSecrets},
		},
		{
			name: "ten secrets allowed",
			mutate: func(m *models.Manifest) {
				m.Permissions.Secrets = manySecrets[:10]
			},
		},
		{
			name: "shell on third-party",
			mutate: func(m *models.Manifest) {
				m.Permissions.Shell = true
			},
			want: []string{IssueShellDefaultEnabled},
		},
		{
			name: "builtin shell allowed",
			mutate: func(m *models.Manifest) {
				m.Origin = models.OriginBuiltin
				m.Permissions.Shell = true
			},
		},
		{
			name: "builtin wildcard filesystem allowed",
			mutate: func(m *models.Manifest) {
				m.Origin = models.OriginBuiltin
				m.Permissions.Filesystem = &models.FilesystemPermission{Read: []string{"**"}}
			},
		},
		{
			name: "builtin shell with network still flagged",
			mutate: func(m *models.Manifest) {
				m.Origin = models.OriginBuiltin
				m.Permissions.Shell = true
				m.Permissions.Network = &models.NetworkPermission{Domains: []string{"api.example.com"}}
			},
			want: []string{IssueShellWithNetwork},
		},
		{
			name: "builtin excessive secrets still flagged",
			mutate: func(m *models.Manifest) {
				m.Origin = models.OriginBuiltin
				m.Permissions.Secrets = manySecrets
			},
			want: []string{IssueExcessiveSecrets},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := validManifest()
			tc.mutate(m)
			got := Scan(m)
			if len(tc.want) == 0 {
				assert.Empty(t, got)
			} else {
				assert.ElementsMatch(t, tc.want, issueIDs(got))
			}
		})
	}
}
