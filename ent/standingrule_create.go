// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/gearbox-dev/gearbox/ent/standingrule"
)

// StandingRuleCreate is the builder for creating a StandingRule entity.
type StandingRuleCreate struct {
	config
	mutation *StandingRuleMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetActionPattern sets the "action_pattern" field.
func (_c *StandingRuleCreate) SetActionPattern(v string) *StandingRuleCreate {
	_c.mutation.SetActionPattern(v)
	return _c
}

// SetScope sets the "scope" field.
func (_c *StandingRuleCreate) SetScope(v standingrule.Scope) *StandingRuleCreate {
	_c.mutation.SetScope(v)
	return _c
}

// SetNillableScope sets the "scope" field if the given value is not nil.
func (_c *StandingRuleCreate) SetNillableScope(v *standingrule.Scope) *StandingRuleCreate {
	if v != nil {
		_c.SetScope(*v)
	}
	return _c
}

// SetVerdict sets the "verdict" field.
func (_c *StandingRuleCreate) SetVerdict(v standingrule.Verdict) *StandingRuleCreate {
	_c.mutation.SetVerdict(v)
	return _c
}

// SetNillableVerdict sets the "verdict" field if the given value is not nil.
func (_c *StandingRuleCreate) SetNillableVerdict(v *standingrule.Verdict) *StandingRuleCreate {
	if v != nil {
		_c.SetVerdict(*v)
	}
	return _c
}

// SetCreatedBy sets the "created_by" field.
func (_c *StandingRuleCreate) SetCreatedBy(v string) *StandingRuleCreate {
	_c.mutation.SetCreatedBy(v)
	return _c
}

// SetApprovalCount sets the "approval_count" field.
func (_c *StandingRuleCreate) SetApprovalCount(v int) *StandingRuleCreate {
	_c.mutation.SetApprovalCount(v)
	return _c
}

// SetNillableApprovalCount sets the "approval_count" field if the given value is not nil.
func (_c *StandingRuleCreate) SetNillableApprovalCount(v *int) *StandingRuleCreate {
	if v != nil {
		_c.SetApprovalCount(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *StandingRuleCreate) SetCreatedAt(v time.Time) *StandingRuleCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *StandingRuleCreate) SetNillableCreatedAt(v *time.Time) *StandingRuleCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *StandingRuleCreate) SetExpiresAt(v time.Time) *StandingRuleCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_c *StandingRuleCreate) SetNillableExpiresAt(v *time.Time) *StandingRuleCreate {
	if v != nil {
		_c.SetExpiresAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *StandingRuleCreate) SetID(v string) *StandingRuleCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the StandingRuleMutation object of the builder.
func (_c *StandingRuleCreate) Mutation() *StandingRuleMutation {
	return _c.mutation
}

// Save creates the StandingRule in the database.
func (_c *StandingRuleCreate) Save(ctx context.Context) (*StandingRule, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StandingRuleCreate) SaveX(ctx context.Context) *StandingRule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StandingRuleCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StandingRuleCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StandingRuleCreate) defaults() {
	if _, ok := _c.mutation.Scope(); !ok {
		v := standingrule.DefaultScope
		_c.mutation.SetScope(v)
	}
	if _, ok := _c.mutation.Verdict(); !ok {
		v := standingrule.DefaultVerdict
		_c.mutation.SetVerdict(v)
	}
	if _, ok := _c.mutation.ApprovalCount(); !ok {
		v := standingrule.DefaultApprovalCount
		_c.mutation.SetApprovalCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := standingrule.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StandingRuleCreate) check() error {
	if _, ok := _c.mutation.ActionPattern(); !ok {
		return &ValidationError{Name: "action_pattern", err: errors.New(`ent: missing required field "StandingRule.action_pattern"`)}
	}
	if _, ok := _c.mutation.Scope(); !ok {
		return &ValidationError{Name: "scope", err: errors.New(`ent: missing required field "StandingRule.scope"`)}
	}
	if v, ok := _c.mutation.Scope(); ok {
		if err := standingrule.ScopeValidator(v); err != nil {
			return &ValidationError{Name: "scope", err: fmt.Errorf(`ent: validator failed for field "StandingRule.scope": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Verdict(); !ok {
		return &ValidationError{Name: "verdict", err: errors.New(`ent: missing required field "StandingRule.verdict"`)}
	}
	if v, ok := _c.mutation.Verdict(); ok {
		if err := standingrule.VerdictValidator(v); err != nil {
			return &ValidationError{Name: "verdict", err: fmt.Errorf(`ent: validator failed for field "StandingRule.verdict": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedBy(); !ok {
		return &ValidationError{Name: "created_by", err: errors.New(`ent: missing required field "StandingRule.created_by"`)}
	}
	if _, ok := _c.mutation.ApprovalCount(); !ok {
		return &ValidationError{Name: "approval_count", err: errors.New(`ent: missing required field "StandingRule.approval_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "StandingRule.created_at"`)}
	}
	return nil
}

func (_c *StandingRuleCreate) sqlSave(ctx context.Context) (*StandingRule, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected StandingRule.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *StandingRuleCreate) createSpec() (*StandingRule, *sqlgraph.CreateSpec) {
	var (
		_node = &StandingRule{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(standingrule.Table, sqlgraph.NewFieldSpec(standingrule.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ActionPattern(); ok {
		_spec.SetField(standingrule.FieldActionPattern, field.TypeString, value)
		_node.ActionPattern = value
	}
	if value, ok := _c.mutation.Scope(); ok {
		_spec.SetField(standingrule.FieldScope, field.TypeEnum, value)
		_node.Scope = value
	}
	if value, ok := _c.mutation.Verdict(); ok {
		_spec.SetField(standingrule.FieldVerdict, field.TypeEnum, value)
		_node.Verdict = value
	}
	if value, ok := _c.mutation.CreatedBy(); ok {
		_spec.SetField(standingrule.FieldCreatedBy, field.TypeString, value)
		_node.CreatedBy = value
	}
	if value, ok := _c.mutation.ApprovalCount(); ok {
		_spec.SetField(standingrule.FieldApprovalCount, field.TypeInt, value)
		_node.ApprovalCount = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(standingrule.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(standingrule.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.StandingRule.Create().
//		SetActionPattern(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StandingRuleUpsert) {
//			SetActionPattern(v+v).
//		}).
//		Exec(ctx)
func (_c *StandingRuleCreate) OnConflict(opts ...sql.ConflictOption) *StandingRuleUpsertOne {
	_c.conflict = opts
	return &StandingRuleUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StandingRule.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StandingRuleCreate) OnConflictColumns(columns ...string) *StandingRuleUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StandingRuleUpsertOne{
		create: _c,
	}
}

type (
	// StandingRuleUpsertOne is the builder for "upsert"-ing
	//  one StandingRule node.
	StandingRuleUpsertOne struct {
		create *StandingRuleCreate
	}

	// StandingRuleUpsert is the "OnConflict" setter.
	StandingRuleUpsert struct {
		*sql.UpdateSet
	}
)

// SetActionPattern sets the "action_pattern" field.
func (u *StandingRuleUpsert) SetActionPattern(v string) *StandingRuleUpsert {
	u.Set(standingrule.FieldActionPattern, v)
	return u
}

// UpdateActionPattern sets the "action_pattern" field to the value that was provided on create.
func (u *StandingRuleUpsert) UpdateActionPattern() *StandingRuleUpsert {
	u.SetExcluded(standingrule.FieldActionPattern)
	return u
}

// SetScope sets the "scope" field.
func (u *StandingRuleUpsert) SetScope(v standingrule.Scope) *StandingRuleUpsert {
	u.Set(standingrule.FieldScope, v)
	return u
}

// UpdateScope sets the "scope" field to the value that was provided on create.
func (u *StandingRuleUpsert) UpdateScope() *StandingRuleUpsert {
	u.SetExcluded(standingrule.FieldScope)
	return u
}

// SetVerdict sets the "verdict" field.
func (u *StandingRuleUpsert) SetVerdict(v standingrule.Verdict) *StandingRuleUpsert {
	u.Set(standingrule.FieldVerdict, v)
	return u
}

// UpdateVerdict sets the "verdict" field to the value that was provided on create.
func (u *StandingRuleUpsert) UpdateVerdict() *StandingRuleUpsert {
	u.SetExcluded(standingrule.FieldVerdict)
	return u
}

// SetCreatedBy sets the "created_by" field.
func (u *StandingRuleUpsert) SetCreatedBy(v string) *StandingRuleUpsert {
	u.Set(standingrule.FieldCreatedBy, v)
	return u
}

// UpdateCreatedBy sets the "created_by" field to the value that was provided on create.
func (u *StandingRuleUpsert) UpdateCreatedBy() *StandingRuleUpsert {
	u.SetExcluded(standingrule.FieldCreatedBy)
	return u
}

// SetApprovalCount sets the "approval_count" field.
func (u *StandingRuleUpsert) SetApprovalCount(v int) *StandingRuleUpsert {
	u.Set(standingrule.FieldApprovalCount, v)
	return u
}

// UpdateApprovalCount sets the "approval_count" field to the value that was provided on create.
func (u *StandingRuleUpsert) UpdateApprovalCount() *StandingRuleUpsert {
	u.SetExcluded(standingrule.FieldApprovalCount)
	return u
}

// AddApprovalCount adds v to the "approval_count" field.
func (u *StandingRuleUpsert) AddApprovalCount(v int) *StandingRuleUpsert {
	u.Add(standingrule.FieldApprovalCount, v)
	return u
}

// SetExpiresAt sets the "expires_at" field.
func (u *StandingRuleUpsert) SetExpiresAt(v time.Time) *StandingRuleUpsert {
	u.Set(standingrule.FieldExpiresAt, v)
	return u
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *StandingRuleUpsert) UpdateExpiresAt() *StandingRuleUpsert {
	u.SetExcluded(standingrule.FieldExpiresAt)
	return u
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (u *StandingRuleUpsert) ClearExpiresAt() *StandingRuleUpsert {
	u.SetNull(standingrule.FieldExpiresAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.StandingRule.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(standingrule.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *StandingRuleUpsertOne) UpdateNewValues() *StandingRuleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(standingrule.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(standingrule.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StandingRule.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *StandingRuleUpsertOne) Ignore() *StandingRuleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StandingRuleUpsertOne) DoNothing() *StandingRuleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StandingRuleCreate.OnConflict
// documentation for more info.
func (u *StandingRuleUpsertOne) Update(set func(*StandingRuleUpsert)) *StandingRuleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StandingRuleUpsert{UpdateSet: update})
	}))
	return u
}

// SetActionPattern sets the "action_pattern" field.
func (u *StandingRuleUpsertOne) SetActionPattern(v string) *StandingRuleUpsertOne {
	return u.Update(func(s *StandingRuleUpsert) {
		s.SetActionPattern(v)
	})
}

// UpdateActionPattern sets the "action_pattern" field to the value that was provided on create.
func (u *StandingRuleUpsertOne) UpdateActionPattern() *StandingRuleUpsertOne {
	return u.Update(func(s *StandingRuleUpsert) {
		s.UpdateActionPattern()
	})
}

// SetScope sets the "scope" field.
func (u *StandingRuleUpsertOne) SetScope(v standingrule.Scope) *StandingRuleUpsertOne {
	return u.Update(func(s *StandingRuleUpsert) {
		s.SetScope(v)
	})
}

// UpdateScope sets the "scope" field to the value that was provided on create.
func (u *StandingRuleUpsertOne) UpdateScope() *StandingRuleUpsertOne {
	return u.Update(func(s *StandingRuleUpsert) {
		s.UpdateScope()
	})
}

// SetVerdict sets the "verdict" field.
func (u *StandingRuleUpsertOne) SetVerdict(v standingrule.Verdict) *StandingRuleUpsertOne {
	return u.Update(func(s *StandingRuleUpsert) {
		s.SetVerdict(v)
	})
}

// UpdateVerdict sets the "verdict" field to the value that was provided on create.
func (u *StandingRuleUpsertOne) UpdateVerdict() *StandingRuleUpsertOne {
	return u.Update(func(s *StandingRuleUpsert) {
		s.UpdateVerdict()
	})
}

// SetCreatedBy sets the "created_by" field.
func (u *StandingRuleUpsertOne) SetCreatedBy(v string) *StandingRuleUpsertOne {
	return u.Update(func(s *StandingRuleUpsert) {
		s.SetCreatedBy(v)
	})
}

// UpdateCreatedBy sets the "created_by" field to the value that was provided on create.
func (u *StandingRuleUpsertOne) UpdateCreatedBy() *StandingRuleUpsertOne {
	return u.Update(func(s *StandingRuleUpsert) {
		s.UpdateCreatedBy()
	})
}

// SetApprovalCount sets the "approval_count" field.
func (u *StandingRuleUpsertOne) SetApprovalCount(v int) *StandingRuleUpsertOne {
	return u.Update(func(s *StandingRuleUpsert) {
		s.SetApprovalCount(v)
	})
}

// AddApprovalCount adds v to the "approval_count" field.
func (u *StandingRuleUpsertOne) AddApprovalCount(v int) *StandingRuleUpsertOne {
	return u.Update(func(s *StandingRuleUpsert) {
		s.AddApprovalCount(v)
	})
}

// UpdateApprovalCount sets the "approval_count" field to the value that was provided on create.
func (u *StandingRuleUpsertOne) UpdateApprovalCount() *StandingRuleUpsertOne {
	return u.Update(func(s *StandingRuleUpsert) {
		s.UpdateApprovalCount()
	})
}

// SetExpiresAt sets the "expires_at" field.
func (u *StandingRuleUpsertOne) SetExpiresAt(v time.Time) *StandingRuleUpsertOne {
	return u.Update(func(s *StandingRuleUpsert) {
		s.SetExpiresAt(v)
	})
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *StandingRuleUpsertOne) UpdateExpiresAt() *StandingRuleUpsertOne {
	return u.Update(func(s *StandingRuleUpsert) {
		s.UpdateExpiresAt()
	})
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (u *StandingRuleUpsertOne) ClearExpiresAt() *StandingRuleUpsertOne {
	return u.Update(func(s *StandingRuleUpsert) {
		s.ClearExpiresAt()
	})
}

// Exec executes the query.
func (u *StandingRuleUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StandingRuleCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StandingRuleUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *StandingRuleUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: StandingRuleUpsertOne.ID is not supported by MySQL driver. Use StandingRuleUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *StandingRuleUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// StandingRuleCreateBulk is the builder for creating many StandingRule entities in bulk.
type StandingRuleCreateBulk struct {
	config
	err      error
	builders []*StandingRuleCreate
	conflict []sql.ConflictOption
}

// Save creates the StandingRule entities in the database.
func (_c *StandingRuleCreateBulk) Save(ctx context.Context) ([]*StandingRule, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StandingRule, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StandingRuleMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *StandingRuleCreateBulk) SaveX(ctx context.Context) []*StandingRule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StandingRuleCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StandingRuleCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.StandingRule.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StandingRuleUpsert) {
//			SetActionPattern(v+v).
//		}).
//		Exec(ctx)
func (_c *StandingRuleCreateBulk) OnConflict(opts ...sql.ConflictOption) *StandingRuleUpsertBulk {
	_c.conflict = opts
	return &StandingRuleUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StandingRule.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StandingRuleCreateBulk) OnConflictColumns(columns ...string) *StandingRuleUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StandingRuleUpsertBulk{
		create: _c,
	}
}

// StandingRuleUpsertBulk is the builder for "upsert"-ing
// a bulk of StandingRule nodes.
type StandingRuleUpsertBulk struct {
	create *StandingRuleCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.StandingRule.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(standingrule.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *StandingRuleUpsertBulk) UpdateNewValues() *StandingRuleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(standingrule.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(standingrule.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StandingRule.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *StandingRuleUpsertBulk) Ignore() *StandingRuleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StandingRuleUpsertBulk) DoNothing() *StandingRuleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StandingRuleCreateBulk.OnConflict
// documentation for more info.
func (u *StandingRuleUpsertBulk) Update(set func(*StandingRuleUpsert)) *StandingRuleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StandingRuleUpsert{UpdateSet: update})
	}))
	return u
}

// SetActionPattern sets the "action_pattern" field.
func (u *StandingRuleUpsertBulk) SetActionPattern(v string) *StandingRuleUpsertBulk {
	return u.Update(func(s *StandingRuleUpsert) {
		s.SetActionPattern(v)
	})
}

// UpdateActionPattern sets the "action_pattern" field to the value that was provided on create.
func (u *StandingRuleUpsertBulk) UpdateActionPattern() *StandingRuleUpsertBulk {
	return u.Update(func(s *StandingRuleUpsert) {
		s.UpdateActionPattern()
	})
}

// SetScope sets the "scope" field.
func (u *StandingRuleUpsertBulk) SetScope(v standingrule.Scope) *StandingRuleUpsertBulk {
	return u.Update(func(s *StandingRuleUpsert) {
		s.SetScope(v)
	})
}

// UpdateScope sets the "scope" field to the value that was provided on create.
func (u *StandingRuleUpsertBulk) UpdateScope() *StandingRuleUpsertBulk {
	return u.Update(func(s *StandingRuleUpsert) {
		s.UpdateScope()
	})
}

// SetVerdict sets the "verdict" field.
func (u *StandingRuleUpsertBulk) SetVerdict(v standingrule.Verdict) *StandingRuleUpsertBulk {
	return u.Update(func(s *StandingRuleUpsert) {
		s.SetVerdict(v)
	})
}

// UpdateVerdict sets the "verdict" field to the value that was provided on create.
func (u *StandingRuleUpsertBulk) UpdateVerdict() *StandingRuleUpsertBulk {
	return u.Update(func(s *StandingRuleUpsert) {
		s.UpdateVerdict()
	})
}

// SetCreatedBy sets the "created_by" field.
func (u *StandingRuleUpsertBulk) SetCreatedBy(v string) *StandingRuleUpsertBulk {
	return u.Update(func(s *StandingRuleUpsert) {
		s.SetCreatedBy(v)
	})
}

// UpdateCreatedBy sets the "created_by" field to the value that was provided on create.
func (u *StandingRuleUpsertBulk) UpdateCreatedBy() *StandingRuleUpsertBulk {
	return u.Update(func(s *StandingRuleUpsert) {
		s.UpdateCreatedBy()
	})
}

// SetApprovalCount sets the "approval_count" field.
func (u *StandingRuleUpsertBulk) SetApprovalCount(v int) *StandingRuleUpsertBulk {
	return u.Update(func(s *StandingRuleUpsert) {
		s.SetApprovalCount(v)
	})
}

// AddApprovalCount adds v to the "approval_count" field.
func (u *StandingRuleUpsertBulk) AddApprovalCount(v int) *StandingRuleUpsertBulk {
	return u.Update(func(s *StandingRuleUpsert) {
		s.AddApprovalCount(v)
	})
}

// UpdateApprovalCount sets the "approval_count" field to the value that was provided on create.
func (u *StandingRuleUpsertBulk) UpdateApprovalCount() *StandingRuleUpsertBulk {
	return u.Update(func(s *StandingRuleUpsert) {
		s.UpdateApprovalCount()
	})
}

// SetExpiresAt sets the "expires_at" field.
func (u *StandingRuleUpsertBulk) SetExpiresAt(v time.Time) *StandingRuleUpsertBulk {
	return u.Update(func(s *StandingRuleUpsert) {
		s.SetExpiresAt(v)
	})
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *StandingRuleUpsertBulk) UpdateExpiresAt() *StandingRuleUpsertBulk {
	return u.Update(func(s *StandingRuleUpsert) {
		s.UpdateExpiresAt()
	})
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (u *StandingRuleUpsertBulk) ClearExpiresAt() *StandingRuleUpsertBulk {
	return u.Update(func(s *StandingRuleUpsert) {
		s.ClearExpiresAt()
	})
}

// Exec executes the query.
func (u *StandingRuleUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the StandingRuleCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StandingRuleCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StandingRuleUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
