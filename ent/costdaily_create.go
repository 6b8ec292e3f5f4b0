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
	"github.com/gearbox-dev/gearbox/ent/costdaily"
)

// CostDailyCreate is the builder for creating a CostDaily entity.
type CostDailyCreate struct {
	config
	mutation *CostDailyMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTotalUsd sets the "total_usd" field.
func (_c *CostDailyCreate) SetTotalUsd(v float64) *CostDailyCreate {
	_c.mutation.SetTotalUsd(v)
	return _c
}

// SetNillableTotalUsd sets the "total_usd" field if the given value is not nil.
func (_c *CostDailyCreate) SetNillableTotalUsd(v *float64) *CostDailyCreate {
	if v != nil {
		_c.SetTotalUsd(*v)
	}
	return _c
}

// SetCallCount sets the "call_count" field.
func (_c *CostDailyCreate) SetCallCount(v int) *CostDailyCreate {
	_c.mutation.SetCallCount(v)
	return _c
}

// SetNillableCallCount sets the "call_count" field if the given value is not nil.
func (_c *CostDailyCreate) SetNillableCallCount(v *int) *CostDailyCreate {
	if v != nil {
		_c.SetCallCount(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CostDailyCreate) SetUpdatedAt(v time.Time) *CostDailyCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CostDailyCreate) SetNillableUpdatedAt(v *time.Time) *CostDailyCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CostDailyCreate) SetID(v string) *CostDailyCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the CostDailyMutation object of the builder.
func (_c *CostDailyCreate) Mutation() *CostDailyMutation {
	return _c.mutation
}

// Save creates the CostDaily in the database.
func (_c *CostDailyCreate) Save(ctx context.Context) (*CostDaily, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CostDailyCreate) SaveX(ctx context.Context) *CostDaily {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CostDailyCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CostDailyCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CostDailyCreate) defaults() {
	if _, ok := _c.mutation.TotalUsd(); !ok {
		v := costdaily.DefaultTotalUsd
		_c.mutation.SetTotalUsd(v)
	}
	if _, ok := _c.mutation.CallCount(); !ok {
		v := costdaily.DefaultCallCount
		_c.mutation.SetCallCount(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := costdaily.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CostDailyCreate) check() error {
	if _, ok := _c.mutation.TotalUsd(); !ok {
		return &ValidationError{Name: "total_usd", err: errors.New(`ent: missing required field "CostDaily.total_usd"`)}
	}
	if _, ok := _c.mutation.CallCount(); !ok {
		return &ValidationError{Name: "call_count", err: errors.New(`ent: missing required field "CostDaily.call_count"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "CostDaily.updated_at"`)}
	}
	return nil
}

func (_c *CostDailyCreate) sqlSave(ctx context.Context) (*CostDaily, error) {
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
			return nil, fmt.Errorf("unexpected CostDaily.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CostDailyCreate) createSpec() (*CostDaily, *sqlgraph.CreateSpec) {
	var (
		_node = &CostDaily{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(costdaily.Table, sqlgraph.NewFieldSpec(costdaily.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TotalUsd(); ok {
		_spec.SetField(costdaily.FieldTotalUsd, field.TypeFloat64, value)
		_node.TotalUsd = value
	}
	if value, ok := _c.mutation.CallCount(); ok {
		_spec.SetField(costdaily.FieldCallCount, field.TypeInt, value)
		_node.CallCount = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(costdaily.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CostDaily.Create().
//		SetTotalUsd(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CostDailyUpsert) {
//			SetTotalUsd(v+v).
//		}).
//		Exec(ctx)
func (_c *CostDailyCreate) OnConflict(opts ...sql.ConflictOption) *CostDailyUpsertOne {
	_c.conflict = opts
	return &CostDailyUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CostDaily.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CostDailyCreate) OnConflictColumns(columns ...string) *CostDailyUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CostDailyUpsertOne{
		create: _c,
	}
}

type (
	// CostDailyUpsertOne is the builder for "upsert"-ing
	//  one CostDaily node.
	CostDailyUpsertOne struct {
		create *CostDailyCreate
	}

	// CostDailyUpsert is the "OnConflict" setter.
	CostDailyUpsert struct {
		*sql.UpdateSet
	}
)

// SetTotalUsd sets the "total_usd" field.
func (u *CostDailyUpsert) SetTotalUsd(v float64) *CostDailyUpsert {
	u.Set(costdaily.FieldTotalUsd, v)
	return u
}

// UpdateTotalUsd sets the "total_usd" field to the value that was provided on create.
func (u *CostDailyUpsert) UpdateTotalUsd() *CostDailyUpsert {
	u.SetExcluded(costdaily.FieldTotalUsd)
	return u
}

// AddTotalUsd adds v to the "total_usd" field.
func (u *CostDailyUpsert) AddTotalUsd(v float64) *CostDailyUpsert {
	u.Add(costdaily.FieldTotalUsd, v)
	return u
}

// SetCallCount sets the "call_count" field.
func (u *CostDailyUpsert) SetCallCount(v int) *CostDailyUpsert {
	u.Set(costdaily.FieldCallCount, v)
	return u
}

// UpdateCallCount sets the "call_count" field to the value that was provided on create.
func (u *CostDailyUpsert) UpdateCallCount() *CostDailyUpsert {
	u.SetExcluded(costdaily.FieldCallCount)
	return u
}

// AddCallCount adds v to the "call_count" field.
func (u *CostDailyUpsert) AddCallCount(v int) *CostDailyUpsert {
	u.Add(costdaily.FieldCallCount, v)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CostDailyUpsert) SetUpdatedAt(v time.Time) *CostDailyUpsert {
	u.Set(costdaily.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CostDailyUpsert) UpdateUpdatedAt() *CostDailyUpsert {
	u.SetExcluded(costdaily.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.CostDaily.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(costdaily.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CostDailyUpsertOne) UpdateNewValues() *CostDailyUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(costdaily.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CostDaily.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CostDailyUpsertOne) Ignore() *CostDailyUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CostDailyUpsertOne) DoNothing() *CostDailyUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CostDailyCreate.OnConflict
// documentation for more info.
func (u *CostDailyUpsertOne) Update(set func(*CostDailyUpsert)) *CostDailyUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CostDailyUpsert{UpdateSet: update})
	}))
	return u
}

// SetTotalUsd sets the "total_usd" field.
func (u *CostDailyUpsertOne) SetTotalUsd(v float64) *CostDailyUpsertOne {
	return u.Update(func(s *CostDailyUpsert) {
		s.SetTotalUsd(v)
	})
}

// AddTotalUsd adds v to the "total_usd" field.
func (u *CostDailyUpsertOne) AddTotalUsd(v float64) *CostDailyUpsertOne {
	return u.Update(func(s *CostDailyUpsert) {
		s.AddTotalUsd(v)
	})
}

// UpdateTotalUsd sets the "total_usd" field to the value that was provided on create.
func (u *CostDailyUpsertOne) UpdateTotalUsd() *CostDailyUpsertOne {
	return u.Update(func(s *CostDailyUpsert) {
		s.UpdateTotalUsd()
	})
}

// SetCallCount sets the "call_count" field.
func (u *CostDailyUpsertOne) SetCallCount(v int) *CostDailyUpsertOne {
	return u.Update(func(s *CostDailyUpsert) {
		s.SetCallCount(v)
	})
}

// AddCallCount adds v to the "call_count" field.
func (u *CostDailyUpsertOne) AddCallCount(v int) *CostDailyUpsertOne {
	return u.Update(func(s *CostDailyUpsert) {
		s.AddCallCount(v)
	})
}

// UpdateCallCount sets the "call_count" field to the value that was provided on create.
func (u *CostDailyUpsertOne) UpdateCallCount() *CostDailyUpsertOne {
	return u.Update(func(s *CostDailyUpsert) {
		s.UpdateCallCount()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CostDailyUpsertOne) SetUpdatedAt(v time.Time) *CostDailyUpsertOne {
	return u.Update(func(s *CostDailyUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CostDailyUpsertOne) UpdateUpdatedAt() *CostDailyUpsertOne {
	return u.Update(func(s *CostDailyUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *CostDailyUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CostDailyCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CostDailyUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CostDailyUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: CostDailyUpsertOne.ID is not supported by MySQL driver. Use CostDailyUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CostDailyUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CostDailyCreateBulk is the builder for creating many CostDaily entities in bulk.
type CostDailyCreateBulk struct {
	config
	err      error
	builders []*CostDailyCreate
	conflict []sql.ConflictOption
}

// Save creates the CostDaily entities in the database.
func (_c *CostDailyCreateBulk) Save(ctx context.Context) ([]*CostDaily, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CostDaily, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CostDailyMutation)
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
func (_c *CostDailyCreateBulk) SaveX(ctx context.Context) []*CostDaily {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CostDailyCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CostDailyCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CostDaily.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CostDailyUpsert) {
//			SetTotalUsd(v+v).
//		}).
//		Exec(ctx)
func (_c *CostDailyCreateBulk) OnConflict(opts ...sql.ConflictOption) *CostDailyUpsertBulk {
	_c.conflict = opts
	return &CostDailyUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CostDaily.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CostDailyCreateBulk) OnConflictColumns(columns ...string) *CostDailyUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CostDailyUpsertBulk{
		create: _c,
	}
}

// CostDailyUpsertBulk is the builder for "upsert"-ing
// a bulk of CostDaily nodes.
type CostDailyUpsertBulk struct {
	create *CostDailyCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.CostDaily.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(costdaily.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CostDailyUpsertBulk) UpdateNewValues() *CostDailyUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(costdaily.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CostDaily.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CostDailyUpsertBulk) Ignore() *CostDailyUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CostDailyUpsertBulk) DoNothing() *CostDailyUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CostDailyCreateBulk.OnConflict
// documentation for more info.
func (u *CostDailyUpsertBulk) Update(set func(*CostDailyUpsert)) *CostDailyUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CostDailyUpsert{UpdateSet: update})
	}))
	return u
}

// SetTotalUsd sets the "total_usd" field.
func (u *CostDailyUpsertBulk) SetTotalUsd(v float64) *CostDailyUpsertBulk {
	return u.Update(func(s *CostDailyUpsert) {
		s.SetTotalUsd(v)
	})
}

// AddTotalUsd adds v to the "total_usd" field.
func (u *CostDailyUpsertBulk) AddTotalUsd(v float64) *CostDailyUpsertBulk {
	return u.Update(func(s *CostDailyUpsert) {
		s.AddTotalUsd(v)
	})
}

// UpdateTotalUsd sets the "total_usd" field to the value that was provided on create.
func (u *CostDailyUpsertBulk) UpdateTotalUsd() *CostDailyUpsertBulk {
	return u.Update(func(s *CostDailyUpsert) {
		s.UpdateTotalUsd()
	})
}

// SetCallCount sets the "call_count" field.
func (u *CostDailyUpsertBulk) SetCallCount(v int) *CostDailyUpsertBulk {
	return u.Update(func(s *CostDailyUpsert) {
		s.SetCallCount(v)
	})
}

// AddCallCount adds v to the "call_count" field.
func (u *CostDailyUpsertBulk) AddCallCount(v int) *CostDailyUpsertBulk {
	return u.Update(func(s *CostDailyUpsert) {
		s.AddCallCount(v)
	})
}

// UpdateCallCount sets the "call_count" field to the value that was provided on create.
func (u *CostDailyUpsertBulk) UpdateCallCount() *CostDailyUpsertBulk {
	return u.Update(func(s *CostDailyUpsert) {
		s.UpdateCallCount()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CostDailyUpsertBulk) SetUpdatedAt(v time.Time) *CostDailyUpsertBulk {
	return u.Update(func(s *CostDailyUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CostDailyUpsertBulk) UpdateUpdatedAt() *CostDailyUpsertBulk {
	return u.Update(func(s *CostDailyUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *CostDailyUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the CostDailyCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CostDailyCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CostDailyUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
