package dag

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gearbox-dev/gearbox/pkg/models"
)

func TestEvaluateCondition(t *testing.T) {
	prior := map[string]any{
		"check": map[string]any{
			"status": "ok",
			"count":  float64(3),
			"tags":   []any{"a", "b"},
		},
	}

	tests := []struct {
		name string
		cond models.Condition
		want bool
	}{
		{"eq match", models.Condition{Field: "check.status", Operator: models.OpEq, Value: "ok"}, true},
		{"eq mismatch", models.Condition{Field: "check.status", Operator: models.OpEq, Value: "bad"}, false},
		{"ne", models.Condition{Field: "check.status", Operator: models.OpNe, Value: "bad"}, true},
		{"gt", models.Condition{Field: "check.count", Operator: models.OpGt, Value: 2}, true},
		{"gte boundary", models.Condition{Field: "check.count", Operator: models.OpGte, Value: 3}, true},
		{"lt false", models.Condition{Field: "check.count", Operator: models.OpLt, Value: 3}, false},
		{"lte", models.Condition{Field: "check.count", Operator: models.OpLte, Value: 3}, true},
		{"exists", models.Condition{Field: "check.status", Operator: models.OpExists}, true},
		{"exists missing", models.Condition{Field: "check.nope", Operator: models.OpExists}, false},
		{"not_exists", models.Condition{Field: "check.nope", Operator: models.OpNotExists}, true},
		{"in", models.Condition{Field: "check.status", Operator: models.OpIn, Value: []any{"ok", "warn"}}, true},
		{"not_in", models.Condition{Field: "check.status", Operator: models.OpNotIn, Value: []any{"bad"}}, true},
		{"array index", models.Condition{Field: "check.tags.0", Operator: models.OpEq, Value: "a"}, true},
		{"missing field non-exists op", models.Condition{Field: "check.nope", Operator: models.OpEq, Value: 1}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, EvaluateCondition(&tc.cond, prior))
		})
	}
}

func TestEvaluateConditionNilIsTrue(t *testing.T) {
	assert.True(t, EvaluateCondition(nil, nil))
}

func TestResolveRefsLeavesPlainStrings(t *testing.T) {
	params := map[string]any{"path": "/workspace/test.txt", "n": 1}
	out := ResolveRefs(params, map[string]any{})
	assert.Equal(t, params, out)
}
