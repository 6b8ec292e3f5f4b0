// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/gearbox-dev/gearbox/ent/llmcall"
	"github.com/gearbox-dev/gearbox/ent/predicate"
)

// LLMCallUpdate is the builder for updating LLMCall entities.
type LLMCallUpdate struct {
	config
	hooks    []Hook
	mutation *LLMCallMutation
}

// Where appends a list predicates to the LLMCallUpdate builder.
func (_u *LLMCallUpdate) Where(ps ...predicate.LLMCall) *LLMCallUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetJobID sets the "job_id" field.
func (_u *LLMCallUpdate) SetJobID(v string) *LLMCallUpdate {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *LLMCallUpdate) SetNillableJobID(v *string) *LLMCallUpdate {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// ClearJobID clears the value of the "job_id" field.
func (_u *LLMCallUpdate) ClearJobID() *LLMCallUpdate {
	_u.mutation.ClearJobID()
	return _u
}

// SetComponent sets the "component" field.
func (_u *LLMCallUpdate) SetComponent(v string) *LLMCallUpdate {
	_u.mutation.SetComponent(v)
	return _u
}

// SetNillableComponent sets the "component" field if the given value is not nil.
func (_u *LLMCallUpdate) SetNillableComponent(v *string) *LLMCallUpdate {
	if v != nil {
		_u.SetComponent(*v)
	}
	return _u
}

// SetProvider sets the "provider" field.
func (_u *LLMCallUpdate) SetProvider(v string) *LLMCallUpdate {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *LLMCallUpdate) SetNillableProvider(v *string) *LLMCallUpdate {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *LLMCallUpdate) SetModel(v string) *LLMCallUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *LLMCallUpdate) SetNillableModel(v *string) *LLMCallUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *LLMCallUpdate) SetInputTokens(v int) *LLMCallUpdate {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *LLMCallUpdate) SetNillableInputTokens(v *int) *LLMCallUpdate {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *LLMCallUpdate) AddInputTokens(v int) *LLMCallUpdate {
	_u.mutation.AddInputTokens(v)
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *LLMCallUpdate) SetOutputTokens(v int) *LLMCallUpdate {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *LLMCallUpdate) SetNillableOutputTokens(v *int) *LLMCallUpdate {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *LLMCallUpdate) AddOutputTokens(v int) *LLMCallUpdate {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// SetCachedTokens sets the "cached_tokens" field.
func (_u *LLMCallUpdate) SetCachedTokens(v int) *LLMCallUpdate {
	_u.mutation.ResetCachedTokens()
	_u.mutation.SetCachedTokens(v)
	return _u
}

// SetNillableCachedTokens sets the "cached_tokens" field if the given value is not nil.
func (_u *LLMCallUpdate) SetNillableCachedTokens(v *int) *LLMCallUpdate {
	if v != nil {
		_u.SetCachedTokens(*v)
	}
	return _u
}

// AddCachedTokens adds value to the "cached_tokens" field.
func (_u *LLMCallUpdate) AddCachedTokens(v int) *LLMCallUpdate {
	_u.mutation.AddCachedTokens(v)
	return _u
}

// SetCostUsd sets the "cost_usd" field.
func (_u *LLMCallUpdate) SetCostUsd(v float64) *LLMCallUpdate {
	_u.mutation.ResetCostUsd()
	_u.mutation.SetCostUsd(v)
	return _u
}

// SetNillableCostUsd sets the "cost_usd" field if the given value is not nil.
func (_u *LLMCallUpdate) SetNillableCostUsd(v *float64) *LLMCallUpdate {
	if v != nil {
		_u.SetCostUsd(*v)
	}
	return _u
}

// AddCostUsd adds value to the "cost_usd" field.
func (_u *LLMCallUpdate) AddCostUsd(v float64) *LLMCallUpdate {
	_u.mutation.AddCostUsd(v)
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *LLMCallUpdate) SetDurationMs(v int64) *LLMCallUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *LLMCallUpdate) SetNillableDurationMs(v *int64) *LLMCallUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *LLMCallUpdate) AddDurationMs(v int64) *LLMCallUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// Mutation returns the LLMCallMutation object of the builder.
func (_u *LLMCallUpdate) Mutation() *LLMCallMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LLMCallUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LLMCallUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LLMCallUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LLMCallUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *LLMCallUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(llmcall.Table, llmcall.Columns, sqlgraph.NewFieldSpec(llmcall.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.JobID(); ok {
		_spec.SetField(llmcall.FieldJobID, field.TypeString, value)
	}
	if _u.mutation.JobIDCleared() {
		_spec.ClearField(llmcall.FieldJobID, field.TypeString)
	}
	if value, ok := _u.mutation.Component(); ok {
		_spec.SetField(llmcall.FieldComponent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(llmcall.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(llmcall.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(llmcall.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(llmcall.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(llmcall.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(llmcall.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CachedTokens(); ok {
		_spec.SetField(llmcall.FieldCachedTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCachedTokens(); ok {
		_spec.AddField(llmcall.FieldCachedTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CostUsd(); ok {
		_spec.SetField(llmcall.FieldCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCostUsd(); ok {
		_spec.AddField(llmcall.FieldCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(llmcall.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(llmcall.FieldDurationMs, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{llmcall.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LLMCallUpdateOne is the builder for updating a single LLMCall entity.
type LLMCallUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LLMCallMutation
}

// SetJobID sets the "job_id" field.
func (_u *LLMCallUpdateOne) SetJobID(v string) *LLMCallUpdateOne {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *LLMCallUpdateOne) SetNillableJobID(v *string) *LLMCallUpdateOne {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// ClearJobID clears the value of the "job_id" field.
func (_u *LLMCallUpdateOne) ClearJobID() *LLMCallUpdateOne {
	_u.mutation.ClearJobID()
	return _u
}

// SetComponent sets the "component" field.
func (_u *LLMCallUpdateOne) SetComponent(v string) *LLMCallUpdateOne {
	_u.mutation.SetComponent(v)
	return _u
}

// SetNillableComponent sets the "component" field if the given value is not nil.
func (_u *LLMCallUpdateOne) SetNillableComponent(v *string) *LLMCallUpdateOne {
	if v != nil {
		_u.SetComponent(*v)
	}
	return _u
}

// SetProvider sets the "provider" field.
func (_u *LLMCallUpdateOne) SetProvider(v string) *LLMCallUpdateOne {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *LLMCallUpdateOne) SetNillableProvider(v *string) *LLMCallUpdateOne {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *LLMCallUpdateOne) SetModel(v string) *LLMCallUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *LLMCallUpdateOne) SetNillableModel(v *string) *LLMCallUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *LLMCallUpdateOne) SetInputTokens(v int) *LLMCallUpdateOne {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *LLMCallUpdateOne) SetNillableInputTokens(v *int) *LLMCallUpdateOne {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *LLMCallUpdateOne) AddInputTokens(v int) *LLMCallUpdateOne {
	_u.mutation.AddInputTokens(v)
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *LLMCallUpdateOne) SetOutputTokens(v int) *LLMCallUpdateOne {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *LLMCallUpdateOne) SetNillableOutputTokens(v *int) *LLMCallUpdateOne {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *LLMCallUpdateOne) AddOutputTokens(v int) *LLMCallUpdateOne {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// SetCachedTokens sets the "cached_tokens" field.
func (_u *LLMCallUpdateOne) SetCachedTokens(v int) *LLMCallUpdateOne {
	_u.mutation.ResetCachedTokens()
	_u.mutation.SetCachedTokens(v)
	return _u
}

// SetNillableCachedTokens sets the "cached_tokens" field if the given value is not nil.
func (_u *LLMCallUpdateOne) SetNillableCachedTokens(v *int) *LLMCallUpdateOne {
	if v != nil {
		_u.SetCachedTokens(*v)
	}
	return _u
}

// AddCachedTokens adds value to the "cached_tokens" field.
func (_u *LLMCallUpdateOne) AddCachedTokens(v int) *LLMCallUpdateOne {
	_u.mutation.AddCachedTokens(v)
	return _u
}

// SetCostUsd sets the "cost_usd" field.
func (_u *LLMCallUpdateOne) SetCostUsd(v float64) *LLMCallUpdateOne {
	_u.mutation.ResetCostUsd()
	_u.mutation.SetCostUsd(v)
	return _u
}

// SetNillableCostUsd sets the "cost_usd" field if the given value is not nil.
func (_u *LLMCallUpdateOne) SetNillableCostUsd(v *float64) *LLMCallUpdateOne {
	if v != nil {
		_u.SetCostUsd(*v)
	}
	return _u
}

// AddCostUsd adds value to the "cost_usd" field.
func (_u *LLMCallUpdateOne) AddCostUsd(v float64) *LLMCallUpdateOne {
	_u.mutation.AddCostUsd(v)
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *LLMCallUpdateOne) SetDurationMs(v int64) *LLMCallUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *LLMCallUpdateOne) SetNillableDurationMs(v *int64) *LLMCallUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *LLMCallUpdateOne) AddDurationMs(v int64) *LLMCallUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// Mutation returns the LLMCallMutation object of the builder.
func (_u *LLMCallUpdateOne) Mutation() *LLMCallMutation {
	return _u.mutation
}

// Where appends a list predicates to the LLMCallUpdate builder.
func (_u *LLMCallUpdateOne) Where(ps ...predicate.LLMCall) *LLMCallUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LLMCallUpdateOne) Select(field string, fields ...string) *LLMCallUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LLMCall entity.
func (_u *LLMCallUpdateOne) Save(ctx context.Context) (*LLMCall, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LLMCallUpdateOne) SaveX(ctx context.Context) *LLMCall {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LLMCallUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LLMCallUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *LLMCallUpdateOne) sqlSave(ctx context.Context) (_node *LLMCall, err error) {
	_spec := sqlgraph.NewUpdateSpec(llmcall.Table, llmcall.Columns, sqlgraph.NewFieldSpec(llmcall.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LLMCall.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, llmcall.FieldID)
		for _, f := range fields {
			if !llmcall.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != llmcall.FieldID {
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
	if value, ok := _u.mutation.JobID(); ok {
		_spec.SetField(llmcall.FieldJobID, field.TypeString, value)
	}
	if _u.mutation.JobIDCleared() {
		_spec.ClearField(llmcall.FieldJobID, field.TypeString)
	}
	if value, ok := _u.mutation.Component(); ok {
		_spec.SetField(llmcall.FieldComponent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(llmcall.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(llmcall.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(llmcall.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(llmcall.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(llmcall.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(llmcall.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CachedTokens(); ok {
		_spec.SetField(llmcall.FieldCachedTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCachedTokens(); ok {
		_spec.AddField(llmcall.FieldCachedTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CostUsd(); ok {
		_spec.SetField(llmcall.FieldCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCostUsd(); ok {
		_spec.AddField(llmcall.FieldCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(llmcall.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(llmcall.FieldDurationMs, field.TypeInt64, value)
	}
	_node = &LLMCall{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{llmcall.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
