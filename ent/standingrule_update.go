// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/gearbox-dev/gearbox/ent/predicate"
	"github.com/gearbox-dev/gearbox/ent/standingrule"
)

// StandingRuleUpdate is the builder for updating StandingRule entities.
type StandingRuleUpdate struct {
	config
	hooks    []Hook
	mutation *StandingRuleMutation
}

// Where appends a list predicates to the StandingRuleUpdate builder.
func (_u *StandingRuleUpdate) Where(ps ...predicate.StandingRule) *StandingRuleUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetActionPattern sets the "action_pattern" field.
func (_u *StandingRuleUpdate) SetActionPattern(v string) *StandingRuleUpdate {
	_u.mutation.SetActionPattern(v)
	return _u
}

// SetNillableActionPattern sets the "action_pattern" field if the given value is not nil.
func (_u *StandingRuleUpdate) SetNillableActionPattern(v *string) *StandingRuleUpdate {
	if v != nil {
		_u.SetActionPattern(*v)
	}
	return _u
}

// SetScope sets the "scope" field.
func (_u *StandingRuleUpdate) SetScope(v standingrule.Scope) *StandingRuleUpdate {
	_u.mutation.SetScope(v)
	return _u
}

// SetNillableScope sets the "scope" field if the given value is not nil.
func (_u *StandingRuleUpdate) SetNillableScope(v *standingrule.Scope) *StandingRuleUpdate {
	if v != nil {
		_u.SetScope(*v)
	}
	return _u
}

// SetVerdict sets the "verdict" field.
func (_u *StandingRuleUpdate) SetVerdict(v standingrule.Verdict) *StandingRuleUpdate {
	_u.mutation.SetVerdict(v)
	return _u
}

// SetNillableVerdict sets the "verdict" field if the given value is not nil.
func (_u *StandingRuleUpdate) SetNillableVerdict(v *standingrule.Verdict) *StandingRuleUpdate {
	if v != nil {
		_u.SetVerdict(*v)
	}
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *StandingRuleUpdate) SetCreatedBy(v string) *StandingRuleUpdate {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *StandingRuleUpdate) SetNillableCreatedBy(v *string) *StandingRuleUpdate {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// SetApprovalCount sets the "approval_count" field.
func (_u *StandingRuleUpdate) SetApprovalCount(v int) *StandingRuleUpdate {
	_u.mutation.ResetApprovalCount()
	_u.mutation.SetApprovalCount(v)
	return _u
}

// SetNillableApprovalCount sets the "approval_count" field if the given value is not nil.
func (_u *StandingRuleUpdate) SetNillableApprovalCount(v *int) *StandingRuleUpdate {
	if v != nil {
		_u.SetApprovalCount(*v)
	}
	return _u
}

// AddApprovalCount adds value to the "approval_count" field.
func (_u *StandingRuleUpdate) AddApprovalCount(v int) *StandingRuleUpdate {
	_u.mutation.AddApprovalCount(v)
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *StandingRuleUpdate) SetExpiresAt(v time.Time) *StandingRuleUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *StandingRuleUpdate) SetNillableExpiresAt(v *time.Time) *StandingRuleUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (_u *StandingRuleUpdate) ClearExpiresAt() *StandingRuleUpdate {
	_u.mutation.ClearExpiresAt()
	return _u
}

// Mutation returns the StandingRuleMutation object of the builder.
func (_u *StandingRuleUpdate) Mutation() *StandingRuleMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StandingRuleUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StandingRuleUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StandingRuleUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StandingRuleUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StandingRuleUpdate) check() error {
	if v, ok := _u.mutation.Scope(); ok {
		if err := standingrule.ScopeValidator(v); err != nil {
			return &ValidationError{Name: "scope", err: fmt.Errorf(`ent: validator failed for field "StandingRule.scope": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Verdict(); ok {
		if err := standingrule.VerdictValidator(v); err != nil {
			return &ValidationError{Name: "verdict", err: fmt.Errorf(`ent: validator failed for field "StandingRule.verdict": %w`, err)}
		}
	}
	return nil
}

func (_u *StandingRuleUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(standingrule.Table, standingrule.Columns, sqlgraph.NewFieldSpec(standingrule.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ActionPattern(); ok {
		_spec.SetField(standingrule.FieldActionPattern, field.TypeString, value)
	}
	if value, ok := _u.mutation.Scope(); ok {
		_spec.SetField(standingrule.FieldScope, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Verdict(); ok {
		_spec.SetField(standingrule.FieldVerdict, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(standingrule.FieldCreatedBy, field.TypeString, value)
	}
	if value, ok := _u.mutation.ApprovalCount(); ok {
		_spec.SetField(standingrule.FieldApprovalCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedApprovalCount(); ok {
		_spec.AddField(standingrule.FieldApprovalCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(standingrule.FieldExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.ExpiresAtCleared() {
		_spec.ClearField(standingrule.FieldExpiresAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{standingrule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StandingRuleUpdateOne is the builder for updating a single StandingRule entity.
type StandingRuleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StandingRuleMutation
}

// SetActionPattern sets the "action_pattern" field.
func (_u *StandingRuleUpdateOne) SetActionPattern(v string) *StandingRuleUpdateOne {
	_u.mutation.SetActionPattern(v)
	return _u
}

// SetNillableActionPattern sets the "action_pattern" field if the given value is not nil.
func (_u *StandingRuleUpdateOne) SetNillableActionPattern(v *string) *StandingRuleUpdateOne {
	if v != nil {
		_u.SetActionPattern(*v)
	}
	return _u
}

// SetScope sets the "scope" field.
func (_u *StandingRuleUpdateOne) SetScope(v standingrule.Scope) *StandingRuleUpdateOne {
	_u.mutation.SetScope(v)
	return _u
}

// SetNillableScope sets the "scope" field if the given value is not nil.
func (_u *StandingRuleUpdateOne) SetNillableScope(v *standingrule.Scope) *StandingRuleUpdateOne {
	if v != nil {
		_u.SetScope(*v)
	}
	return _u
}

// SetVerdict sets the "verdict" field.
func (_u *StandingRuleUpdateOne) SetVerdict(v standingrule.Verdict) *StandingRuleUpdateOne {
	_u.mutation.SetVerdict(v)
	return _u
}

// SetNillableVerdict sets the "verdict" field if the given value is not nil.
func (_u *StandingRuleUpdateOne) SetNillableVerdict(v *standingrule.Verdict) *StandingRuleUpdateOne {
	if v != nil {
		_u.SetVerdict(*v)
	}
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *StandingRuleUpdateOne) SetCreatedBy(v string) *StandingRuleUpdateOne {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *StandingRuleUpdateOne) SetNillableCreatedBy(v *string) *StandingRuleUpdateOne {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// SetApprovalCount sets the "approval_count" field.
func (_u *StandingRuleUpdateOne) SetApprovalCount(v int) *StandingRuleUpdateOne {
	_u.mutation.ResetApprovalCount()
	_u.mutation.SetApprovalCount(v)
	return _u
}

// SetNillableApprovalCount sets the "approval_count" field if the given value is not nil.
func (_u *StandingRuleUpdateOne) SetNillableApprovalCount(v *int) *StandingRuleUpdateOne {
	if v != nil {
		_u.SetApprovalCount(*v)
	}
	return _u
}

// AddApprovalCount adds value to the "approval_count" field.
func (_u *StandingRuleUpdateOne) AddApprovalCount(v int) *StandingRuleUpdateOne {
	_u.mutation.AddApprovalCount(v)
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *StandingRuleUpdateOne) SetExpiresAt(v time.Time) *StandingRuleUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *StandingRuleUpdateOne) SetNillableExpiresAt(v *time.Time) *StandingRuleUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (_u *StandingRuleUpdateOne) ClearExpiresAt() *StandingRuleUpdateOne {
	_u.mutation.ClearExpiresAt()
	return _u
}

// Mutation returns the StandingRuleMutation object of the builder.
func (_u *StandingRuleUpdateOne) Mutation() *StandingRuleMutation {
	return _u.mutation
}

// Where appends a list predicates to the StandingRuleUpdate builder.
func (_u *StandingRuleUpdateOne) Where(ps ...predicate.StandingRule) *StandingRuleUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StandingRuleUpdateOne) Select(field string, fields ...string) *StandingRuleUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StandingRule entity.
func (_u *StandingRuleUpdateOne) Save(ctx context.Context) (*StandingRule, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StandingRuleUpdateOne) SaveX(ctx context.Context) *StandingRule {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StandingRuleUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StandingRuleUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StandingRuleUpdateOne) check() error {
	if v, ok := _u.mutation.Scope(); ok {
		if err := standingrule.ScopeValidator(v); err != nil {
			return &ValidationError{Name: "scope", err: fmt.Errorf(`ent: validator failed for field "StandingRule.scope": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Verdict(); ok {
		if err := standingrule.VerdictValidator(v); err != nil {
			return &ValidationError{Name: "verdict", err: fmt.Errorf(`ent: validator failed for field "StandingRule.verdict": %w`, err)}
		}
	}
	return nil
}

func (_u *StandingRuleUpdateOne) sqlSave(ctx context.Context) (_node *StandingRule, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(standingrule.Table, standingrule.Columns, sqlgraph.NewFieldSpec(standingrule.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StandingRule.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, standingrule.FieldID)
		for _, f := range fields {
			if !standingrule.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != standingrule.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ActionPattern(); ok {
		_spec.SetField(standingrule.FieldActionPattern, field.TypeString, value)
	}
	if value, ok := _u.mutation.Scope(); ok {
		_spec.SetField(standingrule.FieldScope, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Verdict(); ok {
		_spec.SetField(standingrule.FieldVerdict, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(standingrule.FieldCreatedBy, field.TypeString, value)
	}
	if value, ok := _u.mutation.ApprovalCount(); ok {
		_spec.SetField(standingrule.FieldApprovalCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedApprovalCount(); ok {
		_spec.AddField(standingrule.FieldApprovalCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(standingrule.FieldExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.ExpiresAtCleared() {
		_spec.ClearField(standingrule.FieldExpiresAt, field.TypeTime)
	}
	_node = &StandingRule{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{standingrule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
