// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/gearbox-dev/gearbox/ent/gear"
	"github.com/gearbox-dev/gearbox/ent/predicate"
	"github.com/gearbox-dev/gearbox/pkg/models"
)

// GearUpdate is the builder for updating Gear entities.
type GearUpdate struct {
	config
	hooks    []Hook
	mutation *GearMutation
}

// Where appends a list predicates to the GearUpdate builder.
func (_u *GearUpdate) Where(ps ...predicate.Gear) *GearUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *GearUpdate) SetName(v string) *GearUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *GearUpdate) SetNillableName(v *string) *GearUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *GearUpdate) SetVersion(v string) *GearUpdate {
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *GearUpdate) SetNillableVersion(v *string) *GearUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// SetManifest sets the "manifest" field.
func (_u *GearUpdate) SetManifest(v *models.Manifest) *GearUpdate {
	_u.mutation.SetManifest(v)
	return _u
}

// SetOrigin sets the "origin" field.
func (_u *GearUpdate) SetOrigin(v gear.Origin) *GearUpdate {
	_u.mutation.SetOrigin(v)
	return _u
}

// SetNillableOrigin sets the "origin" field if the given value is not nil.
func (_u *GearUpdate) SetNillableOrigin(v *gear.Origin) *GearUpdate {
	if v != nil {
		_u.SetOrigin(*v)
	}
	return _u
}

// SetDraft sets the "draft" field.
func (_u *GearUpdate) SetDraft(v bool) *GearUpdate {
	_u.mutation.SetDraft(v)
	return _u
}

// SetNillableDraft sets the "draft" field if the given value is not nil.
func (_u *GearUpdate) SetNillableDraft(v *bool) *GearUpdate {
	if v != nil {
		_u.SetDraft(*v)
	}
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *GearUpdate) SetEnabled(v bool) *GearUpdate {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *GearUpdate) SetNillableEnabled(v *bool) *GearUpdate {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetConfig sets the "config" field.
func (_u *GearUpdate) SetConfig(v map[string]interface{}) *GearUpdate {
	_u.mutation.SetConfig(v)
	return _u
}

// ClearConfig clears the value of the "config" field.
func (_u *GearUpdate) ClearConfig() *GearUpdate {
	_u.mutation.ClearConfig()
	return _u
}

// SetSignature sets the "signature" field.
func (_u *GearUpdate) SetSignature(v string) *GearUpdate {
	_u.mutation.SetSignature(v)
	return _u
}

// SetNillableSignature sets the "signature" field if the given value is not nil.
func (_u *GearUpdate) SetNillableSignature(v *string) *GearUpdate {
	if v != nil {
		_u.SetSignature(*v)
	}
	return _u
}

// ClearSignature clears the value of the "signature" field.
func (_u *GearUpdate) ClearSignature() *GearUpdate {
	_u.mutation.ClearSignature()
	return _u
}

// SetChecksum sets the "checksum" field.
func (_u *GearUpdate) SetChecksum(v string) *GearUpdate {
	_u.mutation.SetChecksum(v)
	return _u
}

// SetNillableChecksum sets the "checksum" field if the given value is not nil.
func (_u *GearUpdate) SetNillableChecksum(v *string) *GearUpdate {
	if v != nil {
		_u.SetChecksum(*v)
	}
	return _u
}

// SetPackagePath sets the "package_path" field.
func (_u *GearUpdate) SetPackagePath(v string) *GearUpdate {
	_u.mutation.SetPackagePath(v)
	return _u
}

// SetNillablePackagePath sets the "package_path" field if the given value is not nil.
func (_u *GearUpdate) SetNillablePackagePath(v *string) *GearUpdate {
	if v != nil {
		_u.SetPackagePath(*v)
	}
	return _u
}

// ClearPackagePath clears the value of the "package_path" field.
func (_u *GearUpdate) ClearPackagePath() *GearUpdate {
	_u.mutation.ClearPackagePath()
	return _u
}

// Mutation returns the GearMutation object of the builder.
func (_u *GearUpdate) Mutation() *GearMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GearUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GearUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GearUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GearUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GearUpdate) check() error {
	if v, ok := _u.mutation.Origin(); ok {
		if err := gear.OriginValidator(v); err != nil {
			return &ValidationError{Name: "origin", err: fmt.Errorf(`ent: validator failed for field "Gear.origin": %w`, err)}
		}
	}
	return nil
}

func (_u *GearUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(gear.Table, gear.Columns, sqlgraph.NewFieldSpec(gear.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(gear.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(gear.FieldVersion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Manifest(); ok {
		_spec.SetField(gear.FieldManifest, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Origin(); ok {
		_spec.SetField(gear.FieldOrigin, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Draft(); ok {
		_spec.SetField(gear.FieldDraft, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(gear.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Config(); ok {
		_spec.SetField(gear.FieldConfig, field.TypeJSON, value)
	}
	if _u.mutation.ConfigCleared() {
		_spec.ClearField(gear.FieldConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.Signature(); ok {
		_spec.SetField(gear.FieldSignature, field.TypeString, value)
	}
	if _u.mutation.SignatureCleared() {
		_spec.ClearField(gear.FieldSignature, field.TypeString)
	}
	if value, ok := _u.mutation.Checksum(); ok {
		_spec.SetField(gear.FieldChecksum, field.TypeString, value)
	}
	if value, ok := _u.mutation.PackagePath(); ok {
		_spec.SetField(gear.FieldPackagePath, field.TypeString, value)
	}
	if _u.mutation.PackagePathCleared() {
		_spec.ClearField(gear.FieldPackagePath, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{gear.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GearUpdateOne is the builder for updating a single Gear entity.
type GearUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GearMutation
}

// SetName sets the "name" field.
func (_u *GearUpdateOne) SetName(v string) *GearUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *GearUpdateOne) SetNillableName(v *string) *GearUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *GearUpdateOne) SetVersion(v string) *GearUpdateOne {
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *GearUpdateOne) SetNillableVersion(v *string) *GearUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// SetManifest sets the "manifest" field.
func (_u *GearUpdateOne) SetManifest(v *models.Manifest) *GearUpdateOne {
	_u.mutation.SetManifest(v)
	return _u
}

// SetOrigin sets the "origin" field.
func (_u *GearUpdateOne) SetOrigin(v gear.Origin) *GearUpdateOne {
	_u.mutation.SetOrigin(v)
	return _u
}

// SetNillableOrigin sets the "origin" field if the given value is not nil.
func (_u *GearUpdateOne) SetNillableOrigin(v *gear.Origin) *GearUpdateOne {
	if v != nil {
		_u.SetOrigin(*v)
	}
	return _u
}

// SetDraft sets the "draft" field.
func (_u *GearUpdateOne) SetDraft(v bool) *GearUpdateOne {
	_u.mutation.SetDraft(v)
	return _u
}

// SetNillableDraft sets the "draft" field if the given value is not nil.
func (_u *GearUpdateOne) SetNillableDraft(v *bool) *GearUpdateOne {
	if v != nil {
		_u.SetDraft(*v)
	}
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *GearUpdateOne) SetEnabled(v bool) *GearUpdateOne {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *GearUpdateOne) SetNillableEnabled(v *bool) *GearUpdateOne {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetConfig sets the "config" field.
func (_u *GearUpdateOne) SetConfig(v map[string]interface{}) *GearUpdateOne {
	_u.mutation.SetConfig(v)
	return _u
}

// ClearConfig clears the value of the "config" field.
func (_u *GearUpdateOne) ClearConfig() *GearUpdateOne {
	_u.mutation.ClearConfig()
	return _u
}

// SetSignature sets the "signature" field.
func (_u *GearUpdateOne) SetSignature(v string) *GearUpdateOne {
	_u.mutation.SetSignature(v)
	return _u
}

// SetNillableSignature sets the "signature" field if the given value is not nil.
func (_u *GearUpdateOne) SetNillableSignature(v *string) *GearUpdateOne {
	if v != nil {
		_u.SetSignature(*v)
	}
	return _u
}

// ClearSignature clears the value of the "signature" field.
func (_u *GearUpdateOne) ClearSignature() *GearUpdateOne {
	_u.mutation.ClearSignature()
	return _u
}

// SetChecksum sets the "checksum" field.
func (_u *GearUpdateOne) SetChecksum(v string) *GearUpdateOne {
	_u.mutation.SetChecksum(v)
	return _u
}

// SetNillableChecksum sets the "checksum" field if the given value is not nil.
func (_u *GearUpdateOne) SetNillableChecksum(v *string) *GearUpdateOne {
	if v != nil {
		_u.SetChecksum(*v)
	}
	return _u
}

// SetPackagePath sets the "package_path" field.
func (_u *GearUpdateOne) SetPackagePath(v string) *GearUpdateOne {
	_u.mutation.SetPackagePath(v)
	return _u
}

// SetNillablePackagePath sets the "package_path" field if the given value is not nil.
func (_u *GearUpdateOne) SetNillablePackagePath(v *string) *GearUpdateOne {
	if v != nil {
		_u.SetPackagePath(*v)
	}
	return _u
}

// ClearPackagePath clears the value of the "package_path" field.
func (_u *GearUpdateOne) ClearPackagePath() *GearUpdateOne {
	_u.mutation.ClearPackagePath()
	return _u
}

// Mutation returns the GearMutation object of the builder.
func (_u *GearUpdateOne) Mutation() *GearMutation {
	return _u.mutation
}

// Where appends a list predicates to the GearUpdate builder.
func (_u *GearUpdateOne) Where(ps ...predicate.Gear) *GearUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GearUpdateOne) Select(field string, fields ...string) *GearUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Gear entity.
func (_u *GearUpdateOne) Save(ctx context.Context) (*Gear, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GearUpdateOne) SaveX(ctx context.Context) *Gear {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GearUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GearUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GearUpdateOne) check() error {
	if v, ok := _u.mutation.Origin(); ok {
		if err := gear.OriginValidator(v); err != nil {
			return &ValidationError{Name: "origin", err: fmt.Errorf(`ent: validator failed for field "Gear.origin": %w`, err)}
		}
	}
	return nil
}

func (_u *GearUpdateOne) sqlSave(ctx context.Context) (_node *Gear, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(gear.Table, gear.Columns, sqlgraph.NewFieldSpec(gear.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Gear.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, gear.FieldID)
		for _, f := range fields {
			if !gear.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != gear.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(gear.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(gear.FieldVersion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Manifest(); ok {
		_spec.SetField(gear.FieldManifest, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Origin(); ok {
		_spec.SetField(gear.FieldOrigin, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Draft(); ok {
		_spec.SetField(gear.FieldDraft, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(gear.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Config(); ok {
		_spec.SetField(gear.FieldConfig, field.TypeJSON, value)
	}
	if _u.mutation.ConfigCleared() {
		_spec.ClearField(gear.FieldConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.Signature(); ok {
		_spec.SetField(gear.FieldSignature, field.TypeString, value)
	}
	if _u.mutation.SignatureCleared() {
		_spec.ClearField(gear.FieldSignature, field.TypeString)
	}
	if value, ok := _u.mutation.Checksum(); ok {
		_spec.SetField(gear.FieldChecksum, field.TypeString, value)
	}
	if value, ok := _u.mutation.PackagePath(); ok {
		_spec.SetField(gear.FieldPackagePath, field.TypeString, value)
	}
	if _u.mutation.PackagePathCleared() {
		_spec.ClearField(gear.FieldPackagePath, field.TypeString)
	}
	_node = &Gear{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{gear.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
