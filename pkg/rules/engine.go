// Package rules implements the standing-rule engine: persisted glob
// patterns that auto-approve or auto-deny matching actions, plus the
// per-category suggestion counter that prompts users to create rules
// for actions they keep approving.
package rules

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/google/uuid"

	"github.com/gearbox-dev/gearbox/ent"
	"github.com/gearbox-dev/gearbox/ent/standingrule"
)

// Spec is the caller-facing shape for creating a rule.
type Spec struct {
	// ActionPattern is a single-segment glob: "category:action" exact or
	// "category:*" wildcard.
	ActionPattern string
	// Scope defaults to global.
	Scope string
	// Verdict defaults to approve.
	Verdict string
	// CreatedBy identifies the creating principal.
	CreatedBy string
	// ExpiresAt, when set, silently retires the rule at that time.
	ExpiresAt *time.Time
}

// Engine evaluates standing rules against concrete actions.
type Engine struct {
	client          *ent.Client
	suggestionCount int

	// Per-category suggestion counters; only same-category calls contend.
	mu       sync.Mutex
	counters map[string]int
}

// NewEngine creates a rule engine. suggestionCount is the per-category
// threshold at which SuggestRule fires.
func NewEngine(client *ent.Client, suggestionCount int) *Engine {
	return &Engine{
		client:          client,
		suggestionCount: suggestionCount,
		counters:        make(map[string]int),
	}
}

// MatchRule returns the newest non-expired rule whose pattern matches
// the action, or nil when no rule matches. The first match wins.
func (e *Engine) MatchRule(ctx context.Context, action string) (*ent.StandingRule, error) {
	candidates, err := e.client.StandingRule.Query().
		Where(
			standingrule.Or(
				standingrule.ExpiresAtIsNil(),
				standingrule.ExpiresAtGT(time.Now()),
			),
		).
		Order(ent.Desc(standingrule.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("querying standing rules: %w", err)
	}

	for _, rule := range candidates {
		ok, err := doublestar.Match(rule.ActionPattern, action)
		if err != nil {
			slog.Warn("Skipping rule with malformed pattern",
				"rule_id", rule.ID, "pattern", rule.ActionPattern, "error", err)
			continue
		}
		if ok {
			return rule, nil
		}
	}
	return nil, nil
}

// SuggestRule bumps the per-category counter for the action and reports
// whether the caller should offer to create a standing rule. It returns
// true exactly when the counter reaches the threshold, then resets.
func (e *Engine) SuggestRule(action string) bool {
	category := Category(action)

	e.mu.Lock()
	defer e.mu.Unlock()
	e.counters[category]++
	if e.counters[category] >= e.suggestionCount {
		e.counters[category] = 0
		return true
	}
	return false
}

// Category returns the substring before the first colon, or the whole
// action when it has no colon.
func Category(action string) string {
	if i := strings.Index(action, ":"); i >= 0 {
		return action[:i]
	}
	return action
}

// CreateRule persists a rule, applying creation defaults: scope global,
// verdict approve, approvalCount 0, no expiry.
func (e *Engine) CreateRule(ctx context.Context, spec Spec) (*ent.StandingRule, error) {
	if spec.ActionPattern == "" {
		return nil, fmt.Errorf("action pattern is required")
	}
	if _, err := doublestar.Match(spec.ActionPattern, "probe"); err != nil {
		return nil, fmt.Errorf("invalid action pattern %q: %w", spec.ActionPattern, err)
	}

	scope := standingrule.ScopeGlobal
	if spec.Scope != "" {
		scope = standingrule.Scope(spec.Scope)
	}
	verdict := standingrule.VerdictApprove
	if spec.Verdict != "" {
		verdict = standingrule.Verdict(spec.Verdict)
	}

	create := e.client.StandingRule.Create().
		SetID(uuid.New().String()).
		SetActionPattern(spec.ActionPattern).
		SetScope(scope).
		SetVerdict(verdict).
		SetCreatedBy(spec.CreatedBy).
		SetApprovalCount(0)
	if spec.ExpiresAt != nil {
		create = create.SetExpiresAt(*spec.ExpiresAt)
	}

	rule, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating standing rule: %w", err)
	}

	slog.Info("Standing rule created",
		"rule_id", rule.ID,
		"pattern", rule.ActionPattern,
		"verdict", rule.Verdict,
		"scope", rule.Scope)
	return rule, nil
}

// ListRules returns all non-expired rules, newest first.
func (e *Engine) ListRules(ctx context.Context) ([]*ent.StandingRule, error) {
	return e.client.StandingRule.Query().
		Where(
			standingrule.Or(
				standingrule.ExpiresAtIsNil(),
				standingrule.ExpiresAtGT(time.Now()),
			),
		).
		Order(ent.Desc(standingrule.FieldCreatedAt)).
		All(ctx)
}

// DeleteRule removes a rule by id.
func (e *Engine) DeleteRule(ctx context.Context, id string) error {
	err := e.client.StandingRule.DeleteOneID(id).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("standing rule %s not found", id)
		}
		return fmt.Errorf("deleting standing rule: %w", err)
	}
	slog.Info("Standing rule deleted", "rule_id", id)
	return nil
}

// RecordApproval increments a matched rule's approval count. Best
// effort; used for surfacing how often a rule fires.
func (e *Engine) RecordApproval(ctx context.Context, id string) {
	if err := e.client.StandingRule.UpdateOneID(id).
		AddApprovalCount(1).
		Exec(ctx); err != nil {
		slog.Warn("Failed to record rule approval", "rule_id", id, "error", err)
	}
}
