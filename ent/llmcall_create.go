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
	"github.com/gearbox-dev/gearbox/ent/llmcall"
)

// LLMCallCreate is the builder for creating a LLMCall entity.
type LLMCallCreate struct {
	config
	mutation *LLMCallMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetJobID sets the "job_id" field.
func (_c *LLMCallCreate) SetJobID(v string) *LLMCallCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_c *LLMCallCreate) SetNillableJobID(v *string) *LLMCallCreate {
	if v != nil {
		_c.SetJobID(*v)
	}
	return _c
}

// SetComponent sets the "component" field.
func (_c *LLMCallCreate) SetComponent(v string) *LLMCallCreate {
	_c.mutation.SetComponent(v)
	return _c
}

// SetProvider sets the "provider" field.
func (_c *LLMCallCreate) SetProvider(v string) *LLMCallCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetModel sets the "model" field.
func (_c *LLMCallCreate) SetModel(v string) *LLMCallCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetInputTokens sets the "input_tokens" field.
func (_c *LLMCallCreate) SetInputTokens(v int) *LLMCallCreate {
	_c.mutation.SetInputTokens(v)
	return _c
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_c *LLMCallCreate) SetNillableInputTokens(v *int) *LLMCallCreate {
	if v != nil {
		_c.SetInputTokens(*v)
	}
	return _c
}

// SetOutputTokens sets the "output_tokens" field.
func (_c *LLMCallCreate) SetOutputTokens(v int) *LLMCallCreate {
	_c.mutation.SetOutputTokens(v)
	return _c
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_c *LLMCallCreate) SetNillableOutputTokens(v *int) *LLMCallCreate {
	if v != nil {
		_c.SetOutputTokens(*v)
	}
	return _c
}

// SetCachedTokens sets the "cached_tokens" field.
func (_c *LLMCallCreate) SetCachedTokens(v int) *LLMCallCreate {
	_c.mutation.SetCachedTokens(v)
	return _c
}

// SetNillableCachedTokens sets the "cached_tokens" field if the given value is not nil.
func (_c *LLMCallCreate) SetNillableCachedTokens(v *int) *LLMCallCreate {
	if v != nil {
		_c.SetCachedTokens(*v)
	}
	return _c
}

// SetCostUsd sets the "cost_usd" field.
func (_c *LLMCallCreate) SetCostUsd(v float64) *LLMCallCreate {
	_c.mutation.SetCostUsd(v)
	return _c
}

// SetNillableCostUsd sets the "cost_usd" field if the given value is not nil.
func (_c *LLMCallCreate) SetNillableCostUsd(v *float64) *LLMCallCreate {
	if v != nil {
		_c.SetCostUsd(*v)
	}
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *LLMCallCreate) SetDurationMs(v int64) *LLMCallCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_c *LLMCallCreate) SetNillableDurationMs(v *int64) *LLMCallCreate {
	if v != nil {
		_c.SetDurationMs(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *LLMCallCreate) SetCreatedAt(v time.Time) *LLMCallCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LLMCallCreate) SetNillableCreatedAt(v *time.Time) *LLMCallCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *LLMCallCreate) SetID(v string) *LLMCallCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the LLMCallMutation object of the builder.
func (_c *LLMCallCreate) Mutation() *LLMCallMutation {
	return _c.mutation
}

// Save creates the LLMCall in the database.
func (_c *LLMCallCreate) Save(ctx context.Context) (*LLMCall, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LLMCallCreate) SaveX(ctx context.Context) *LLMCall {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LLMCallCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LLMCallCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LLMCallCreate) defaults() {
	if _, ok := _c.mutation.InputTokens(); !ok {
		v := llmcall.DefaultInputTokens
		_c.mutation.SetInputTokens(v)
	}
	if _, ok := _c.mutation.OutputTokens(); !ok {
		v := llmcall.DefaultOutputTokens
		_c.mutation.SetOutputTokens(v)
	}
	if _, ok := _c.mutation.CachedTokens(); !ok {
		v := llmcall.DefaultCachedTokens
		_c.mutation.SetCachedTokens(v)
	}
	if _, ok := _c.mutation.CostUsd(); !ok {
		v := llmcall.DefaultCostUsd
		_c.mutation.SetCostUsd(v)
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		v := llmcall.DefaultDurationMs
		_c.mutation.SetDurationMs(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := llmcall.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LLMCallCreate) check() error {
	if _, ok := _c.mutation.Component(); !ok {
		return &ValidationError{Name: "component", err: errors.New(`ent: missing required field "LLMCall.component"`)}
	}
	if _, ok := _c.mutation.Provider(); !ok {
		return &ValidationError{Name: "provider", err: errors.New(`ent: missing required field "LLMCall.provider"`)}
	}
	if _, ok := _c.mutation.Model(); !ok {
		return &ValidationError{Name: "model", err: errors.New(`ent: missing required field "LLMCall.model"`)}
	}
	if _, ok := _c.mutation.InputTokens(); !ok {
		return &ValidationError{Name: "input_tokens", err: errors.New(`ent: missing required field "LLMCall.input_tokens"`)}
	}
	if _, ok := _c.mutation.OutputTokens(); !ok {
		return &ValidationError{Name: "output_tokens", err: errors.New(`ent: missing required field "LLMCall.output_tokens"`)}
	}
	if _, ok := _c.mutation.CachedTokens(); !ok {
		return &ValidationError{Name: "cached_tokens", err: errors.New(`ent: missing required field "LLMCall.cached_tokens"`)}
	}
	if _, ok := _c.mutation.CostUsd(); !ok {
		return &ValidationError{Name: "cost_usd", err: errors.New(`ent: missing required field "LLMCall.cost_usd"`)}
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		return &ValidationError{Name: "duration_ms", err: errors.New(`ent: missing required field "LLMCall.duration_ms"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "LLMCall.created_at"`)}
	}
	return nil
}

func (_c *LLMCallCreate) sqlSave(ctx context.Context) (*LLMCall, error) {
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
			return nil, fmt.Errorf("unexpected LLMCall.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LLMCallCreate) createSpec() (*LLMCall, *sqlgraph.CreateSpec) {
	var (
		_node = &LLMCall{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(llmcall.Table, sqlgraph.NewFieldSpec(llmcall.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.JobID(); ok {
		_spec.SetField(llmcall.FieldJobID, field.TypeString, value)
		_node.JobID = value
	}
	if value, ok := _c.mutation.Component(); ok {
		_spec.SetField(llmcall.FieldComponent, field.TypeString, value)
		_node.Component = value
	}
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(llmcall.FieldProvider, field.TypeString, value)
		_node.Provider = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(llmcall.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.InputTokens(); ok {
		_spec.SetField(llmcall.FieldInputTokens, field.TypeInt, value)
		_node.InputTokens = value
	}
	if value, ok := _c.mutation.OutputTokens(); ok {
		_spec.SetField(llmcall.FieldOutputTokens, field.TypeInt, value)
		_node.OutputTokens = value
	}
	if value, ok := _c.mutation.CachedTokens(); ok {
		_spec.SetField(llmcall.FieldCachedTokens, field.TypeInt, value)
		_node.CachedTokens = value
	}
	if value, ok := _c.mutation.CostUsd(); ok {
		_spec.SetField(llmcall.FieldCostUsd, field.TypeFloat64, value)
		_node.CostUsd = value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(llmcall.FieldDurationMs, field.TypeInt64, value)
		_node.DurationMs = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(llmcall.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.LLMCall.Create().
//		SetJobID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LLMCallUpsert) {
//			SetJobID(v+v).
//		}).
//		Exec(ctx)
func (_c *LLMCallCreate) OnConflict(opts ...sql.ConflictOption) *LLMCallUpsertOne {
	_c.conflict = opts
	return &LLMCallUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.LLMCall.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LLMCallCreate) OnConflictColumns(columns ...string) *LLMCallUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LLMCallUpsertOne{
		create: _c,
	}
}

type (
	// LLMCallUpsertOne is the builder for "upsert"-ing
	//  one LLMCall node.
	LLMCallUpsertOne struct {
		create *LLMCallCreate
	}

	// LLMCallUpsert is the "OnConflict" setter.
	LLMCallUpsert struct {
		*sql.UpdateSet
	}
)

// SetJobID sets the "job_id" field.
func (u *LLMCallUpsert) SetJobID(v string) *LLMCallUpsert {
	u.Set(llmcall.FieldJobID, v)
	return u
}

// UpdateJobID sets the "job_id" field to the value that was provided on create.
func (u *LLMCallUpsert) UpdateJobID() *LLMCallUpsert {
	u.SetExcluded(llmcall.FieldJobID)
	return u
}

// ClearJobID clears the value of the "job_id" field.
func (u *LLMCallUpsert) ClearJobID() *LLMCallUpsert {
	u.SetNull(llmcall.FieldJobID)
	return u
}

// SetComponent sets the "component" field.
func (u *LLMCallUpsert) SetComponent(v string) *LLMCallUpsert {
	u.Set(llmcall.FieldComponent, v)
	return u
}

// UpdateComponent sets the "component" field to the value that was provided on create.
func (u *LLMCallUpsert) UpdateComponent() *LLMCallUpsert {
	u.SetExcluded(llmcall.FieldComponent)
	return u
}

// SetProvider sets the "provider" field.
func (u *LLMCallUpsert) SetProvider(v string) *LLMCallUpsert {
	u.Set(llmcall.FieldProvider, v)
	return u
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *LLMCallUpsert) UpdateProvider() *LLMCallUpsert {
	u.SetExcluded(llmcall.FieldProvider)
	return u
}

// SetModel sets the "model" field.
func (u *LLMCallUpsert) SetModel(v string) *LLMCallUpsert {
	u.Set(llmcall.FieldModel, v)
	return u
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *LLMCallUpsert) UpdateModel() *LLMCallUpsert {
	u.SetExcluded(llmcall.FieldModel)
	return u
}

// SetInputTokens sets the "input_tokens" field.
func (u *LLMCallUpsert) SetInputTokens(v int) *LLMCallUpsert {
	u.Set(llmcall.FieldInputTokens, v)
	return u
}

// UpdateInputTokens sets the "input_tokens" field to the value that was provided on create.
func (u *LLMCallUpsert) UpdateInputTokens() *LLMCallUpsert {
	u.SetExcluded(llmcall.FieldInputTokens)
	return u
}

// AddInputTokens adds v to the "input_tokens" field.
func (u *LLMCallUpsert) AddInputTokens(v int) *LLMCallUpsert {
	u.Add(llmcall.FieldInputTokens, v)
	return u
}

// SetOutputTokens sets the "output_tokens" field.
func (u *LLMCallUpsert) SetOutputTokens(v int) *LLMCallUpsert {
	u.Set(llmcall.FieldOutputTokens, v)
	return u
}

// UpdateOutputTokens sets the "output_tokens" field to the value that was provided on create.
func (u *LLMCallUpsert) UpdateOutputTokens() *LLMCallUpsert {
	u.SetExcluded(llmcall.FieldOutputTokens)
	return u
}

// AddOutputTokens adds v to the "output_tokens" field.
func (u *LLMCallUpsert) AddOutputTokens(v int) *LLMCallUpsert {
	u.Add(llmcall.FieldOutputTokens, v)
	return u
}

// SetCachedTokens sets the "cached_tokens" field.
func (u *LLMCallUpsert) SetCachedTokens(v int) *LLMCallUpsert {
	u.Set(llmcall.FieldCachedTokens, v)
	return u
}

// UpdateCachedTokens sets the "cached_tokens" field to the value that was provided on create.
func (u *LLMCallUpsert) UpdateCachedTokens() *LLMCallUpsert {
	u.SetExcluded(llmcall.FieldCachedTokens)
	return u
}

// AddCachedTokens adds v to the "cached_tokens" field.
func (u *LLMCallUpsert) AddCachedTokens(v int) *LLMCallUpsert {
	u.Add(llmcall.FieldCachedTokens, v)
	return u
}

// SetCostUsd sets the "cost_usd" field.
func (u *LLMCallUpsert) SetCostUsd(v float64) *LLMCallUpsert {
	u.Set(llmcall.FieldCostUsd, v)
	return u
}

// UpdateCostUsd sets the "cost_usd" field to the value that was provided on create.
func (u *LLMCallUpsert) UpdateCostUsd() *LLMCallUpsert {
	u.SetExcluded(llmcall.FieldCostUsd)
	return u
}

// AddCostUsd adds v to the "cost_usd" field.
func (u *LLMCallUpsert) AddCostUsd(v float64) *LLMCallUpsert {
	u.Add(llmcall.FieldCostUsd, v)
	return u
}

// SetDurationMs sets the "duration_ms" field.
func (u *LLMCallUpsert) SetDurationMs(v int64) *LLMCallUpsert {
	u.Set(llmcall.FieldDurationMs, v)
	return u
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *LLMCallUpsert) UpdateDurationMs() *LLMCallUpsert {
	u.SetExcluded(llmcall.FieldDurationMs)
	return u
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *LLMCallUpsert) AddDurationMs(v int64) *LLMCallUpsert {
	u.Add(llmcall.FieldDurationMs, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.LLMCall.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(llmcall.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *LLMCallUpsertOne) UpdateNewValues() *LLMCallUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(llmcall.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(llmcall.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.LLMCall.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *LLMCallUpsertOne) Ignore() *LLMCallUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LLMCallUpsertOne) DoNothing() *LLMCallUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LLMCallCreate.OnConflict
// documentation for more info.
func (u *LLMCallUpsertOne) Update(set func(*LLMCallUpsert)) *LLMCallUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LLMCallUpsert{UpdateSet: update})
	}))
	return u
}

// SetJobID sets the "job_id" field.
func (u *LLMCallUpsertOne) SetJobID(v string) *LLMCallUpsertOne {
	return u.Update(func(s *LLMCallUpsert) {
		s.SetJobID(v)
	})
}

// UpdateJobID sets the "job_id" field to the value that was provided on create.
func (u *LLMCallUpsertOne) UpdateJobID() *LLMCallUpsertOne {
	return u.Update(func(s *LLMCallUpsert) {
		s.UpdateJobID()
	})
}

// ClearJobID clears the value of the "job_id" field.
func (u *LLMCallUpsertOne) ClearJobID() *LLMCallUpsertOne {
	return u.Update(func(s *LLMCallUpsert) {
		s.ClearJobID()
	})
}

// SetComponent sets the "component" field.
func (u *LLMCallUpsertOne) SetComponent(v string) *LLMCallUpsertOne {
	return u.Update(func(s *LLMCallUpsert) {
		s.SetComponent(v)
	})
}

// UpdateComponent sets the "component" field to the value that was provided on create.
func (u *LLMCallUpsertOne) UpdateComponent() *LLMCallUpsertOne {
	return u.Update(func(s *LLMCallUpsert) {
		s.UpdateComponent()
	})
}

// SetProvider sets the "provider" field.
func (u *LLMCallUpsertOne) SetProvider(v string) *LLMCallUpsertOne {
	return u.Update(func(s *LLMCallUpsert) {
		s.SetProvider(v)
	})
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *LLMCallUpsertOne) UpdateProvider() *LLMCallUpsertOne {
	return u.Update(func(s *LLMCallUpsert) {
		s.UpdateProvider()
	})
}

// SetModel sets the "model" field.
func (u *LLMCallUpsertOne) SetModel(v string) *LLMCallUpsertOne {
	return u.Update(func(s *LLMCallUpsert) {
		s.SetModel(v)
	})
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *LLMCallUpsertOne) UpdateModel() *LLMCallUpsertOne {
	return u.Update(func(s *LLMCallUpsert) {
		s.UpdateModel()
	})
}

// SetInputTokens sets the "input_tokens" field.
func (u *LLMCallUpsertOne) SetInputTokens(v int) *LLMCallUpsertOne {
	return u.Update(func(s *LLMCallUpsert) {
		s.SetInputTokens(v)
	})
}

// AddInputTokens adds v to the "input_tokens" field.
func (u *LLMCallUpsertOne) AddInputTokens(v int) *LLMCallUpsertOne {
	return u.Update(func(s *LLMCallUpsert) {
		s.AddInputTokens(v)
	})
}

// UpdateInputTokens sets the "input_tokens" field to the value that was provided on create.
func (u *LLMCallUpsertOne) UpdateInputTokens() *LLMCallUpsertOne {
	return u.Update(func(s *LLMCallUpsert) {
		s.UpdateInputTokens()
	})
}

// SetOutputTokens sets the "output_tokens" field.
func (u *LLMCallUpsertOne) SetOutputTokens(v int) *LLMCallUpsertOne {
	return u.Update(func(s *LLMCallUpsert) {
		s.SetOutputTokens(v)
	})
}

// AddOutputTokens adds v to the "output_tokens" field.
func (u *LLMCallUpsertOne) AddOutputTokens(v int) *LLMCallUpsertOne {
	return u.Update(func(s *LLMCallUpsert) {
		s.AddOutputTokens(v)
	})
}

// UpdateOutputTokens sets the "output_tokens" field to the value that was provided on create.
func (u *LLMCallUpsertOne) UpdateOutputTokens() *LLMCallUpsertOne {
	return u.Update(func(s *LLMCallUpsert) {
		s.UpdateOutputTokens()
	})
}

// SetCachedTokens sets the "cached_tokens" field.
func (u *LLMCallUpsertOne) SetCachedTokens(v int) *LLMCallUpsertOne {
	return u.Update(func(s *LLMCallUpsert) {
		s.SetCachedTokens(v)
	})
}

// AddCachedTokens adds v to the "cached_tokens" field.
func (u *LLMCallUpsertOne) AddCachedTokens(v int) *LLMCallUpsertOne {
	return u.Update(func(s *LLMCallUpsert) {
		s.AddCachedTokens(v)
	})
}

// UpdateCachedTokens sets the "cached_tokens" field to the value that was provided on create.
func (u *LLMCallUpsertOne) UpdateCachedTokens() *LLMCallUpsertOne {
	return u.Update(func(s *LLMCallUpsert) {
		s.UpdateCachedTokens()
	})
}

// SetCostUsd sets the "cost_usd" field.
func (u *LLMCallUpsertOne) SetCostUsd(v float64) *LLMCallUpsertOne {
	return u.Update(func(s *LLMCallUpsert) {
		s.SetCostUsd(v)
	})
}

// AddCostUsd adds v to the "cost_usd" field.
func (u *LLMCallUpsertOne) AddCostUsd(v float64) *LLMCallUpsertOne {
	return u.Update(func(s *LLMCallUpsert) {
		s.AddCostUsd(v)
	})
}

// UpdateCostUsd sets the "cost_usd" field to the value that was provided on create.
func (u *LLMCallUpsertOne) UpdateCostUsd() *LLMCallUpsertOne {
	return u.Update(func(s *LLMCallUpsert) {
		s.UpdateCostUsd()
	})
}

// SetDurationMs sets the "duration_ms" field.
func (u *LLMCallUpsertOne) SetDurationMs(v int64) *LLMCallUpsertOne {
	return u.Update(func(s *LLMCallUpsert) {
		s.SetDurationMs(v)
	})
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *LLMCallUpsertOne) AddDurationMs(v int64) *LLMCallUpsertOne {
	return u.Update(func(s *LLMCallUpsert) {
		s.AddDurationMs(v)
	})
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *LLMCallUpsertOne) UpdateDurationMs() *LLMCallUpsertOne {
	return u.Update(func(s *LLMCallUpsert) {
		s.UpdateDurationMs()
	})
}

// Exec executes the query.
func (u *LLMCallUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LLMCallCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LLMCallUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *LLMCallUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: LLMCallUpsertOne.ID is not supported by MySQL driver. Use LLMCallUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *LLMCallUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// LLMCallCreateBulk is the builder for creating many LLMCall entities in bulk.
type LLMCallCreateBulk struct {
	config
	err      error
	builders []*LLMCallCreate
	conflict []sql.ConflictOption
}

// Save creates the LLMCall entities in the database.
func (_c *LLMCallCreateBulk) Save(ctx context.Context) ([]*LLMCall, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LLMCall, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LLMCallMutation)
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
func (_c *LLMCallCreateBulk) SaveX(ctx context.Context) []*LLMCall {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LLMCallCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LLMCallCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.LLMCall.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LLMCallUpsert) {
//			SetJobID(v+v).
//		}).
//		Exec(ctx)
func (_c *LLMCallCreateBulk) OnConflict(opts ...sql.ConflictOption) *LLMCallUpsertBulk {
	_c.conflict = opts
	return &LLMCallUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.LLMCall.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LLMCallCreateBulk) OnConflictColumns(columns ...string) *LLMCallUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LLMCallUpsertBulk{
		create: _c,
	}
}

// LLMCallUpsertBulk is the builder for "upsert"-ing
// a bulk of LLMCall nodes.
type LLMCallUpsertBulk struct {
	create *LLMCallCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.LLMCall.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(llmcall.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *LLMCallUpsertBulk) UpdateNewValues() *LLMCallUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(llmcall.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(llmcall.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.LLMCall.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *LLMCallUpsertBulk) Ignore() *LLMCallUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LLMCallUpsertBulk) DoNothing() *LLMCallUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LLMCallCreateBulk.OnConflict
// documentation for more info.
func (u *LLMCallUpsertBulk) Update(set func(*LLMCallUpsert)) *LLMCallUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LLMCallUpsert{UpdateSet: update})
	}))
	return u
}

// SetJobID sets the "job_id" field.
func (u *LLMCallUpsertBulk) SetJobID(v string) *LLMCallUpsertBulk {
	return u.Update(func(s *LLMCallUpsert) {
		s.SetJobID(v)
	})
}

// UpdateJobID sets the "job_id" field to the value that was provided on create.
func (u *LLMCallUpsertBulk) UpdateJobID() *LLMCallUpsertBulk {
	return u.Update(func(s *LLMCallUpsert) {
		s.UpdateJobID()
	})
}

// ClearJobID clears the value of the "job_id" field.
func (u *LLMCallUpsertBulk) ClearJobID() *LLMCallUpsertBulk {
	return u.Update(func(s *LLMCallUpsert) {
		s.ClearJobID()
	})
}

// SetComponent sets the "component" field.
func (u *LLMCallUpsertBulk) SetComponent(v string) *LLMCallUpsertBulk {
	return u.Update(func(s *LLMCallUpsert) {
		s.SetComponent(v)
	})
}

// UpdateComponent sets the "component" field to the value that was provided on create.
func (u *LLMCallUpsertBulk) UpdateComponent() *LLMCallUpsertBulk {
	return u.Update(func(s *LLMCallUpsert) {
		s.UpdateComponent()
	})
}

// SetProvider sets the "provider" field.
func (u *LLMCallUpsertBulk) SetProvider(v string) *LLMCallUpsertBulk {
	return u.Update(func(s *LLMCallUpsert) {
		s.SetProvider(v)
	})
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *LLMCallUpsertBulk) UpdateProvider() *LLMCallUpsertBulk {
	return u.Update(func(s *LLMCallUpsert) {
		s.UpdateProvider()
	})
}

// SetModel sets the "model" field.
func (u *LLMCallUpsertBulk) SetModel(v string) *LLMCallUpsertBulk {
	return u.Update(func(s *LLMCallUpsert) {
		s.SetModel(v)
	})
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *LLMCallUpsertBulk) UpdateModel() *LLMCallUpsertBulk {
	return u.Update(func(s *LLMCallUpsert) {
		s.UpdateModel()
	})
}

// SetInputTokens sets the "input_tokens" field.
func (u *LLMCallUpsertBulk) SetInputTokens(v int) *LLMCallUpsertBulk {
	return u.Update(func(s *LLMCallUpsert) {
		s.SetInputTokens(v)
	})
}

// AddInputTokens adds v to the "input_tokens" field.
func (u *LLMCallUpsertBulk) AddInputTokens(v int) *LLMCallUpsertBulk {
	return u.Update(func(s *LLMCallUpsert) {
		s.AddInputTokens(v)
	})
}

// UpdateInputTokens sets the "input_tokens" field to the value that was provided on create.
func (u *LLMCallUpsertBulk) UpdateInputTokens() *LLMCallUpsertBulk {
	return u.Update(func(s *LLMCallUpsert) {
		s.UpdateInputTokens()
	})
}

// SetOutputTokens sets the "output_tokens" field.
func (u *LLMCallUpsertBulk) SetOutputTokens(v int) *LLMCallUpsertBulk {
	return u.Update(func(s *LLMCallUpsert) {
		s.SetOutputTokens(v)
	})
}

// AddOutputTokens adds v to the "output_tokens" field.
func (u *LLMCallUpsertBulk) AddOutputTokens(v int) *LLMCallUpsertBulk {
	return u.Update(func(s *LLMCallUpsert) {
		s.AddOutputTokens(v)
	})
}

// UpdateOutputTokens sets the "output_tokens" field to the value that was provided on create.
func (u *LLMCallUpsertBulk) UpdateOutputTokens() *LLMCallUpsertBulk {
	return u.Update(func(s *LLMCallUpsert) {
		s.UpdateOutputTokens()
	})
}

// SetCachedTokens sets the "cached_tokens" field.
func (u *LLMCallUpsertBulk) SetCachedTokens(v int) *LLMCallUpsertBulk {
	return u.Update(func(s *LLMCallUpsert) {
		s.SetCachedTokens(v)
	})
}

// AddCachedTokens adds v to the "cached_tokens" field.
func (u *LLMCallUpsertBulk) AddCachedTokens(v int) *LLMCallUpsertBulk {
	return u.Update(func(s *LLMCallUpsert) {
		s.AddCachedTokens(v)
	})
}

// UpdateCachedTokens sets the "cached_tokens" field to the value that was provided on create.
func (u *LLMCallUpsertBulk) UpdateCachedTokens() *LLMCallUpsertBulk {
	return u.Update(func(s *LLMCallUpsert) {
		s.UpdateCachedTokens()
	})
}

// SetCostUsd sets the "cost_usd" field.
func (u *LLMCallUpsertBulk) SetCostUsd(v float64) *LLMCallUpsertBulk {
	return u.Update(func(s *LLMCallUpsert) {
		s.SetCostUsd(v)
	})
}

// AddCostUsd adds v to the "cost_usd" field.
func (u *LLMCallUpsertBulk) AddCostUsd(v float64) *LLMCallUpsertBulk {
	return u.Update(func(s *LLMCallUpsert) {
		s.AddCostUsd(v)
	})
}

// UpdateCostUsd sets the "cost_usd" field to the value that was provided on create.
func (u *LLMCallUpsertBulk) UpdateCostUsd() *LLMCallUpsertBulk {
	return u.Update(func(s *LLMCallUpsert) {
		s.UpdateCostUsd()
	})
}

// SetDurationMs sets the "duration_ms" field.
func (u *LLMCallUpsertBulk) SetDurationMs(v int64) *LLMCallUpsertBulk {
	return u.Update(func(s *LLMCallUpsert) {
		s.SetDurationMs(v)
	})
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *LLMCallUpsertBulk) AddDurationMs(v int64) *LLMCallUpsertBulk {
	return u.Update(func(s *LLMCallUpsert) {
		s.AddDurationMs(v)
	})
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *LLMCallUpsertBulk) UpdateDurationMs() *LLMCallUpsertBulk {
	return u.Update(func(s *LLMCallUpsert) {
		s.UpdateDurationMs()
	})
}

// Exec executes the query.
func (u *LLMCallUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the LLMCallCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LLMCallCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LLMCallUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
