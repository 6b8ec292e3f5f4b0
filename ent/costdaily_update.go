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
	"github.com/gearbox-dev/gearbox/ent/costdaily"
	"github.com/gearbox-dev/gearbox/ent/predicate"
)

// CostDailyUpdate is the builder for updating CostDaily entities.
type CostDailyUpdate struct {
	config
	hooks    []Hook
	mutation *CostDailyMutation
}

// Where appends a list predicates to the CostDailyUpdate builder.
func (_u *CostDailyUpdate) Where(ps ...predicate.CostDaily) *CostDailyUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTotalUsd sets the "total_usd" field.
func (_u *CostDailyUpdate) SetTotalUsd(v float64) *CostDailyUpdate {
	_u.mutation.ResetTotalUsd()
	_u.mutation.SetTotalUsd(v)
	return _u
}

// SetNillableTotalUsd sets the "total_usd" field if the given value is not nil.
func (_u *CostDailyUpdate) SetNillableTotalUsd(v *float64) *CostDailyUpdate {
	if v != nil {
		_u.SetTotalUsd(*v)
	}
	return _u
}

// AddTotalUsd adds value to the "total_usd" field.
func (_u *CostDailyUpdate) AddTotalUsd(v float64) *CostDailyUpdate {
	_u.mutation.AddTotalUsd(v)
	return _u
}

// SetCallCount sets the "call_count" field.
func (_u *CostDailyUpdate) SetCallCount(v int) *CostDailyUpdate {
	_u.mutation.ResetCallCount()
	_u.mutation.SetCallCount(v)
	return _u
}

// SetNillableCallCount sets the "call_count" field if the given value is not nil.
func (_u *CostDailyUpdate) SetNillableCallCount(v *int) *CostDailyUpdate {
	if v != nil {
		_u.SetCallCount(*v)
	}
	return _u
}

// AddCallCount adds value to the "call_count" field.
func (_u *CostDailyUpdate) AddCallCount(v int) *CostDailyUpdate {
	_u.mutation.AddCallCount(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CostDailyUpdate) SetUpdatedAt(v time.Time) *CostDailyUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the CostDailyMutation object of the builder.
func (_u *CostDailyUpdate) Mutation() *CostDailyMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CostDailyUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CostDailyUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CostDailyUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CostDailyUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CostDailyUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := costdaily.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *CostDailyUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(costdaily.Table, costdaily.Columns, sqlgraph.NewFieldSpec(costdaily.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TotalUsd(); ok {
		_spec.SetField(costdaily.FieldTotalUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalUsd(); ok {
		_spec.AddField(costdaily.FieldTotalUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CallCount(); ok {
		_spec.SetField(costdaily.FieldCallCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCallCount(); ok {
		_spec.AddField(costdaily.FieldCallCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(costdaily.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{costdaily.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CostDailyUpdateOne is the builder for updating a single CostDaily entity.
type CostDailyUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CostDailyMutation
}

// SetTotalUsd sets the "total_usd" field.
func (_u *CostDailyUpdateOne) SetTotalUsd(v float64) *CostDailyUpdateOne {
	_u.mutation.ResetTotalUsd()
	_u.mutation.SetTotalUsd(v)
	return _u
}

// SetNillableTotalUsd sets the "total_usd" field if the given value is not nil.
func (_u *CostDailyUpdateOne) SetNillableTotalUsd(v *float64) *CostDailyUpdateOne {
	if v != nil {
		_u.SetTotalUsd(*v)
	}
	return _u
}

// AddTotalUsd adds value to the "total_usd" field.
func (_u *CostDailyUpdateOne) AddTotalUsd(v float64) *CostDailyUpdateOne {
	_u.mutation.AddTotalUsd(v)
	return _u
}

// SetCallCount sets the "call_count" field.
func (_u *CostDailyUpdateOne) SetCallCount(v int) *CostDailyUpdateOne {
	_u.mutation.ResetCallCount()
	_u.mutation.SetCallCount(v)
	return _u
}

// SetNillableCallCount sets the "call_count" field if the given value is not nil.
func (_u *CostDailyUpdateOne) SetNillableCallCount(v *int) *CostDailyUpdateOne {
	if v != nil {
		_u.SetCallCount(*v)
	}
	return _u
}

// AddCallCount adds value to the "call_count" field.
func (_u *CostDailyUpdateOne) AddCallCount(v int) *CostDailyUpdateOne {
	_u.mutation.AddCallCount(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CostDailyUpdateOne) SetUpdatedAt(v time.Time) *CostDailyUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the CostDailyMutation object of the builder.
func (_u *CostDailyUpdateOne) Mutation() *CostDailyMutation {
	return _u.mutation
}

// Where appends a list predicates to the CostDailyUpdate builder.
func (_u *CostDailyUpdateOne) Where(ps ...predicate.CostDaily) *CostDailyUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CostDailyUpdateOne) Select(field string, fields ...string) *CostDailyUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CostDaily entity.
func (_u *CostDailyUpdateOne) Save(ctx context.Context) (*CostDaily, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CostDailyUpdateOne) SaveX(ctx context.Context) *CostDaily {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CostDailyUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CostDailyUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CostDailyUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := costdaily.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *CostDailyUpdateOne) sqlSave(ctx context.Context) (_node *CostDaily, err error) {
	_spec := sqlgraph.NewUpdateSpec(costdaily.Table, costdaily.Columns, sqlgraph.NewFieldSpec(costdaily.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CostDaily.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, costdaily.FieldID)
		for _, f := range fields {
			if !costdaily.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != costdaily.FieldID {
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
	if value, ok := _u.mutation.TotalUsd(); ok {
		_spec.SetField(costdaily.FieldTotalUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalUsd(); ok {
		_spec.AddField(costdaily.FieldTotalUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CallCount(); ok {
		_spec.SetField(costdaily.FieldCallCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCallCount(); ok {
		_spec.AddField(costdaily.FieldCallCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(costdaily.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &CostDaily{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{costdaily.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
