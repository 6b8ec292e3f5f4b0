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
	"github.com/gearbox-dev/gearbox/ent/gear"
	"github.com/gearbox-dev/gearbox/pkg/models"
)

// GearCreate is the builder for creating a Gear entity.
type GearCreate struct {
	config
	mutation *GearMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetName sets the "name" field.
func (_c *GearCreate) SetName(v string) *GearCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *GearCreate) SetVersion(v string) *GearCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetManifest sets the "manifest" field.
func (_c *GearCreate) SetManifest(v *models.Manifest) *GearCreate {
	_c.mutation.SetManifest(v)
	return _c
}

// SetOrigin sets the "origin" field.
func (_c *GearCreate) SetOrigin(v gear.Origin) *GearCreate {
	_c.mutation.SetOrigin(v)
	return _c
}

// SetDraft sets the "draft" field.
func (_c *GearCreate) SetDraft(v bool) *GearCreate {
	_c.mutation.SetDraft(v)
	return _c
}

// SetNillableDraft sets the "draft" field if the given value is not nil.
func (_c *GearCreate) SetNillableDraft(v *bool) *GearCreate {
	if v != nil {
		_c.SetDraft(*v)
	}
	return _c
}

// SetEnabled sets the "enabled" field.
func (_c *GearCreate) SetEnabled(v bool) *GearCreate {
	_c.mutation.SetEnabled(v)
	return _c
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_c *GearCreate) SetNillableEnabled(v *bool) *GearCreate {
	if v != nil {
		_c.SetEnabled(*v)
	}
	return _c
}

// SetConfig sets the "config" field.
func (_c *GearCreate) SetConfig(v map[string]interface{}) *GearCreate {
	_c.mutation.SetConfig(v)
	return _c
}

// SetSignature sets the "signature" field.
func (_c *GearCreate) SetSignature(v string) *GearCreate {
	_c.mutation.SetSignature(v)
	return _c
}

// SetNillableSignature sets the "signature" field if the given value is not nil.
func (_c *GearCreate) SetNillableSignature(v *string) *GearCreate {
	if v != nil {
		_c.SetSignature(*v)
	}
	return _c
}

// SetChecksum sets the "checksum" field.
func (_c *GearCreate) SetChecksum(v string) *GearCreate {
	_c.mutation.SetChecksum(v)
	return _c
}

// SetPackagePath sets the "package_path" field.
func (_c *GearCreate) SetPackagePath(v string) *GearCreate {
	_c.mutation.SetPackagePath(v)
	return _c
}

// SetNillablePackagePath sets the "package_path" field if the given value is not nil.
func (_c *GearCreate) SetNillablePackagePath(v *string) *GearCreate {
	if v != nil {
		_c.SetPackagePath(*v)
	}
	return _c
}

// SetInstalledAt sets the "installed_at" field.
func (_c *GearCreate) SetInstalledAt(v time.Time) *GearCreate {
	_c.mutation.SetInstalledAt(v)
	return _c
}

// SetNillableInstalledAt sets the "installed_at" field if the given value is not nil.
func (_c *GearCreate) SetNillableInstalledAt(v *time.Time) *GearCreate {
	if v != nil {
		_c.SetInstalledAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *GearCreate) SetID(v string) *GearCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the GearMutation object of the builder.
func (_c *GearCreate) Mutation() *GearMutation {
	return _c.mutation
}

// Save creates the Gear in the database.
func (_c *GearCreate) Save(ctx context.Context) (*Gear, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GearCreate) SaveX(ctx context.Context) *Gear {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GearCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GearCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GearCreate) defaults() {
	if _, ok := _c.mutation.Draft(); !ok {
		v := gear.DefaultDraft
		_c.mutation.SetDraft(v)
	}
	if _, ok := _c.mutation.Enabled(); !ok {
		v := gear.DefaultEnabled
		_c.mutation.SetEnabled(v)
	}
	if _, ok := _c.mutation.InstalledAt(); !ok {
		v := gear.DefaultInstalledAt()
		_c.mutation.SetInstalledAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GearCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Gear.name"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "Gear.version"`)}
	}
	if _, ok := _c.mutation.Manifest(); !ok {
		return &ValidationError{Name: "manifest", err: errors.New(`ent: missing required field "Gear.manifest"`)}
	}
	if _, ok := _c.mutation.Origin(); !ok {
		return &ValidationError{Name: "origin", err: errors.New(`ent: missing required field "Gear.origin"`)}
	}
	if v, ok := _c.mutation.Origin(); ok {
		if err := gear.OriginValidator(v); err != nil {
			return &ValidationError{Name: "origin", err: fmt.Errorf(`ent: validator failed for field "Gear.origin": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Draft(); !ok {
		return &ValidationError{Name: "draft", err: errors.New(`ent: missing required field "Gear.draft"`)}
	}
	if _, ok := _c.mutation.Enabled(); !ok {
		return &ValidationError{Name: "enabled", err: errors.New(`ent: missing required field "Gear.enabled"`)}
	}
	if _, ok := _c.mutation.Checksum(); !ok {
		return &ValidationError{Name: "checksum", err: errors.New(`ent: missing required field "Gear.checksum"`)}
	}
	if _, ok := _c.mutation.InstalledAt(); !ok {
		return &ValidationError{Name: "installed_at", err: errors.New(`ent: missing required field "Gear.installed_at"`)}
	}
	return nil
}

func (_c *GearCreate) sqlSave(ctx context.Context) (*Gear, error) {
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
			return nil, fmt.Errorf("unexpected Gear.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *GearCreate) createSpec() (*Gear, *sqlgraph.CreateSpec) {
	var (
		_node = &Gear{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(gear.Table, sqlgraph.NewFieldSpec(gear.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(gear.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(gear.FieldVersion, field.TypeString, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.Manifest(); ok {
		_spec.SetField(gear.FieldManifest, field.TypeJSON, value)
		_node.Manifest = value
	}
	if value, ok := _c.mutation.Origin(); ok {
		_spec.SetField(gear.FieldOrigin, field.TypeEnum, value)
		_node.Origin = value
	}
	if value, ok := _c.mutation.Draft(); ok {
		_spec.SetField(gear.FieldDraft, field.TypeBool, value)
		_node.Draft = value
	}
	if value, ok := _c.mutation.Enabled(); ok {
		_spec.SetField(gear.FieldEnabled, field.TypeBool, value)
		_node.Enabled = value
	}
	if value, ok := _c.mutation.Config(); ok {
		_spec.SetField(gear.FieldConfig, field.TypeJSON, value)
		_node.Config = value
	}
	if value, ok := _c.mutation.Signature(); ok {
		_spec.SetField(gear.FieldSignature, field.TypeString, value)
		_node.Signature = &value
	}
	if value, ok := _c.mutation.Checksum(); ok {
		_spec.SetField(gear.FieldChecksum, field.TypeString, value)
		_node.Checksum = value
	}
	if value, ok := _c.mutation.PackagePath(); ok {
		_spec.SetField(gear.FieldPackagePath, field.TypeString, value)
		_node.PackagePath = &value
	}
	if value, ok := _c.mutation.InstalledAt(); ok {
		_spec.SetField(gear.FieldInstalledAt, field.TypeTime, value)
		_node.InstalledAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Gear.Create().
//		SetName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.GearUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *GearCreate) OnConflict(opts ...sql.ConflictOption) *GearUpsertOne {
	_c.conflict = opts
	return &GearUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Gear.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *GearCreate) OnConflictColumns(columns ...string) *GearUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &GearUpsertOne{
		create: _c,
	}
}

type (
	// GearUpsertOne is the builder for "upsert"-ing
	//  one Gear node.
	GearUpsertOne struct {
		create *GearCreate
	}

	// GearUpsert is the "OnConflict" setter.
	GearUpsert struct {
		*sql.UpdateSet
	}
)

// SetName sets the "name" field.
func (u *GearUpsert) SetName(v string) *GearUpsert {
	u.Set(gear.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *GearUpsert) UpdateName() *GearUpsert {
	u.SetExcluded(gear.FieldName)
	return u
}

// SetVersion sets the "version" field.
func (u *GearUpsert) SetVersion(v string) *GearUpsert {
	u.Set(gear.FieldVersion, v)
	return u
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *GearUpsert) UpdateVersion() *GearUpsert {
	u.SetExcluded(gear.FieldVersion)
	return u
}

// SetManifest sets the "manifest" field.
func (u *GearUpsert) SetManifest(v *models.Manifest) *GearUpsert {
	u.Set(gear.FieldManifest, v)
	return u
}

// UpdateManifest sets the "manifest" field to the value that was provided on create.
func (u *GearUpsert) UpdateManifest() *GearUpsert {
	u.SetExcluded(gear.FieldManifest)
	return u
}

// SetOrigin sets the "origin" field.
func (u *GearUpsert) SetOrigin(v gear.Origin) *GearUpsert {
	u.Set(gear.FieldOrigin, v)
	return u
}

// UpdateOrigin sets the "origin" field to the value that was provided on create.
func (u *GearUpsert) UpdateOrigin() *GearUpsert {
	u.SetExcluded(gear.FieldOrigin)
	return u
}

// SetDraft sets the "draft" field.
func (u *GearUpsert) SetDraft(v bool) *GearUpsert {
	u.Set(gear.FieldDraft, v)
	return u
}

// UpdateDraft sets the "draft" field to the value that was provided on create.
func (u *GearUpsert) UpdateDraft() *GearUpsert {
	u.SetExcluded(gear.FieldDraft)
	return u
}

// SetEnabled sets the "enabled" field.
func (u *GearUpsert) SetEnabled(v bool) *GearUpsert {
	u.Set(gear.FieldEnabled, v)
	return u
}

// UpdateEnabled sets the "enabled" field to the value that was provided on create.
func (u *GearUpsert) UpdateEnabled() *GearUpsert {
	u.SetExcluded(gear.FieldEnabled)
	return u
}

// SetConfig sets the "config" field.
func (u *GearUpsert) SetConfig(v map[string]interface{}) *GearUpsert {
	u.Set(gear.FieldConfig, v)
	return u
}

// UpdateConfig sets the "config" field to the value that was provided on create.
func (u *GearUpsert) UpdateConfig() *GearUpsert {
	u.SetExcluded(gear.FieldConfig)
	return u
}

// ClearConfig clears the value of the "config" field.
func (u *GearUpsert) ClearConfig() *GearUpsert {
	u.SetNull(gear.FieldConfig)
	return u
}

// SetSignature sets the "signature" field.
func (u *GearUpsert) SetSignature(v string) *GearUpsert {
	u.Set(gear.FieldSignature, v)
	return u
}

// UpdateSignature sets the "signature" field to the value that was provided on create.
func (u *GearUpsert) UpdateSignature() *GearUpsert {
	u.SetExcluded(gear.FieldSignature)
	return u
}

// ClearSignature clears the value of the "signature" field.
func (u *GearUpsert) ClearSignature() *GearUpsert {
	u.SetNull(gear.FieldSignature)
	return u
}

// SetChecksum sets the "checksum" field.
func (u *GearUpsert) SetChecksum(v string) *GearUpsert {
	u.Set(gear.FieldChecksum, v)
	return u
}

// UpdateChecksum sets the "checksum" field to the value that was provided on create.
func (u *GearUpsert) UpdateChecksum() *GearUpsert {
	u.SetExcluded(gear.FieldChecksum)
	return u
}

// SetPackagePath sets the "package_path" field.
func (u *GearUpsert) SetPackagePath(v string) *GearUpsert {
	u.Set(gear.FieldPackagePath, v)
	return u
}

// UpdatePackagePath sets the "package_path" field to the value that was provided on create.
func (u *GearUpsert) UpdatePackagePath() *GearUpsert {
	u.SetExcluded(gear.FieldPackagePath)
	return u
}

// ClearPackagePath clears the value of the "package_path" field.
func (u *GearUpsert) ClearPackagePath() *GearUpsert {
	u.SetNull(gear.FieldPackagePath)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Gear.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(gear.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *GearUpsertOne) UpdateNewValues() *GearUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(gear.FieldID)
		}
		if _, exists := u.create.mutation.InstalledAt(); exists {
			s.SetIgnore(gear.FieldInstalledAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Gear.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *GearUpsertOne) Ignore() *GearUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *GearUpsertOne) DoNothing() *GearUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the GearCreate.OnConflict
// documentation for more info.
func (u *GearUpsertOne) Update(set func(*GearUpsert)) *GearUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&GearUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *GearUpsertOne) SetName(v string) *GearUpsertOne {
	return u.Update(func(s *GearUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *GearUpsertOne) UpdateName() *GearUpsertOne {
	return u.Update(func(s *GearUpsert) {
		s.UpdateName()
	})
}

// SetVersion sets the "version" field.
func (u *GearUpsertOne) SetVersion(v string) *GearUpsertOne {
	return u.Update(func(s *GearUpsert) {
		s.SetVersion(v)
	})
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *GearUpsertOne) UpdateVersion() *GearUpsertOne {
	return u.Update(func(s *GearUpsert) {
		s.UpdateVersion()
	})
}

// SetManifest sets the "manifest" field.
func (u *GearUpsertOne) SetManifest(v *models.Manifest) *GearUpsertOne {
	return u.Update(func(s *GearUpsert) {
		s.SetManifest(v)
	})
}

// UpdateManifest sets the "manifest" field to the value that was provided on create.
func (u *GearUpsertOne) UpdateManifest() *GearUpsertOne {
	return u.Update(func(s *GearUpsert) {
		s.UpdateManifest()
	})
}

// SetOrigin sets the "origin" field.
func (u *GearUpsertOne) SetOrigin(v gear.Origin) *GearUpsertOne {
	return u.Update(func(s *GearUpsert) {
		s.SetOrigin(v)
	})
}

// UpdateOrigin sets the "origin" field to the value that was provided on create.
func (u *GearUpsertOne) UpdateOrigin() *GearUpsertOne {
	return u.Update(func(s *GearUpsert) {
		s.UpdateOrigin()
	})
}

// SetDraft sets the "draft" field.
func (u *GearUpsertOne) SetDraft(v bool) *GearUpsertOne {
	return u.Update(func(s *GearUpsert) {
		s.SetDraft(v)
	})
}

// UpdateDraft sets the "draft" field to the value that was provided on create.
func (u *GearUpsertOne) UpdateDraft() *GearUpsertOne {
	return u.Update(func(s *GearUpsert) {
		s.UpdateDraft()
	})
}

// SetEnabled sets the "enabled" field.
func (u *GearUpsertOne) SetEnabled(v bool) *GearUpsertOne {
	return u.Update(func(s *GearUpsert) {
		s.SetEnabled(v)
	})
}

// UpdateEnabled sets the "enabled" field to the value that was provided on create.
func (u *GearUpsertOne) UpdateEnabled() *GearUpsertOne {
	return u.Update(func(s *GearUpsert) {
		s.UpdateEnabled()
	})
}

// SetConfig sets the "config" field.
func (u *GearUpsertOne) SetConfig(v map[string]interface{}) *GearUpsertOne {
	return u.Update(func(s *GearUpsert) {
		s.SetConfig(v)
	})
}

// UpdateConfig sets the "config" field to the value that was provided on create.
func (u *GearUpsertOne) UpdateConfig() *GearUpsertOne {
	return u.Update(func(s *GearUpsert) {
		s.UpdateConfig()
	})
}

// ClearConfig clears the value of the "config" field.
func (u *GearUpsertOne) ClearConfig() *GearUpsertOne {
	return u.Update(func(s *GearUpsert) {
		s.ClearConfig()
	})
}

// SetSignature sets the "signature" field.
func (u *GearUpsertOne) SetSignature(v string) *GearUpsertOne {
	return u.Update(func(s *GearUpsert) {
		s.SetSignature(v)
	})
}

// UpdateSignature sets the "signature" field to the value that was provided on create.
func (u *GearUpsertOne) UpdateSignature() *GearUpsertOne {
	return u.Update(func(s *GearUpsert) {
		s.UpdateSignature()
	})
}

// ClearSignature clears the value of the "signature" field.
func (u *GearUpsertOne) ClearSignature() *GearUpsertOne {
	return u.Update(func(s *GearUpsert) {
		s.ClearSignature()
	})
}

// SetChecksum sets the "checksum" field.
func (u *GearUpsertOne) SetChecksum(v string) *GearUpsertOne {
	return u.Update(func(s *GearUpsert) {
		s.SetChecksum(v)
	})
}

// UpdateChecksum sets the "checksum" field to the value that was provided on create.
func (u *GearUpsertOne) UpdateChecksum() *GearUpsertOne {
	return u.Update(func(s *GearUpsert) {
		s.UpdateChecksum()
	})
}

// SetPackagePath sets the "package_path" field.
func (u *GearUpsertOne) SetPackagePath(v string) *GearUpsertOne {
	return u.Update(func(s *GearUpsert) {
		s.SetPackagePath(v)
	})
}

// UpdatePackagePath sets the "package_path" field to the value that was provided on create.
func (u *GearUpsertOne) UpdatePackagePath() *GearUpsertOne {
	return u.Update(func(s *GearUpsert) {
		s.UpdatePackagePath()
	})
}

// ClearPackagePath clears the value of the "package_path" field.
func (u *GearUpsertOne) ClearPackagePath() *GearUpsertOne {
	return u.Update(func(s *GearUpsert) {
		s.ClearPackagePath()
	})
}

// Exec executes the query.
func (u *GearUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for GearCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *GearUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *GearUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: GearUpsertOne.ID is not supported by MySQL driver. Use GearUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *GearUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// GearCreateBulk is the builder for creating many Gear entities in bulk.
type GearCreateBulk struct {
	config
	err      error
	builders []*GearCreate
	conflict []sql.ConflictOption
}

// Save creates the Gear entities in the database.
func (_c *GearCreateBulk) Save(ctx context.Context) ([]*Gear, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Gear, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GearMutation)
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
func (_c *GearCreateBulk) SaveX(ctx context.Context) []*Gear {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GearCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GearCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Gear.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.GearUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *GearCreateBulk) OnConflict(opts ...sql.ConflictOption) *GearUpsertBulk {
	_c.conflict = opts
	return &GearUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Gear.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *GearCreateBulk) OnConflictColumns(columns ...string) *GearUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &GearUpsertBulk{
		create: _c,
	}
}

// GearUpsertBulk is the builder for "upsert"-ing
// a bulk of Gear nodes.
type GearUpsertBulk struct {
	create *GearCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Gear.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(gear.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *GearUpsertBulk) UpdateNewValues() *GearUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(gear.FieldID)
			}
			if _, exists := b.mutation.InstalledAt(); exists {
				s.SetIgnore(gear.FieldInstalledAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Gear.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *GearUpsertBulk) Ignore() *GearUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *GearUpsertBulk) DoNothing() *GearUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the GearCreateBulk.OnConflict
// documentation for more info.
func (u *GearUpsertBulk) Update(set func(*GearUpsert)) *GearUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&GearUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *GearUpsertBulk) SetName(v string) *GearUpsertBulk {
	return u.Update(func(s *GearUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *GearUpsertBulk) UpdateName() *GearUpsertBulk {
	return u.Update(func(s *GearUpsert) {
		s.UpdateName()
	})
}

// SetVersion sets the "version" field.
func (u *GearUpsertBulk) SetVersion(v string) *GearUpsertBulk {
	return u.Update(func(s *GearUpsert) {
		s.SetVersion(v)
	})
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *GearUpsertBulk) UpdateVersion() *GearUpsertBulk {
	return u.Update(func(s *GearUpsert) {
		s.UpdateVersion()
	})
}

// SetManifest sets the "manifest" field.
func (u *GearUpsertBulk) SetManifest(v *models.Manifest) *GearUpsertBulk {
	return u.Update(func(s *GearUpsert) {
		s.SetManifest(v)
	})
}

// UpdateManifest sets the "manifest" field to the value that was provided on create.
func (u *GearUpsertBulk) UpdateManifest() *GearUpsertBulk {
	return u.Update(func(s *GearUpsert) {
		s.UpdateManifest()
	})
}

// SetOrigin sets the "origin" field.
func (u *GearUpsertBulk) SetOrigin(v gear.Origin) *GearUpsertBulk {
	return u.Update(func(s *GearUpsert) {
		s.SetOrigin(v)
	})
}

// UpdateOrigin sets the "origin" field to the value that was provided on create.
func (u *GearUpsertBulk) UpdateOrigin() *GearUpsertBulk {
	return u.Update(func(s *GearUpsert) {
		s.UpdateOrigin()
	})
}

// SetDraft sets the "draft" field.
func (u *GearUpsertBulk) SetDraft(v bool) *GearUpsertBulk {
	return u.Update(func(s *GearUpsert) {
		s.SetDraft(v)
	})
}

// UpdateDraft sets the "draft" field to the value that was provided on create.
func (u *GearUpsertBulk) UpdateDraft() *GearUpsertBulk {
	return u.Update(func(s *GearUpsert) {
		s.UpdateDraft()
	})
}

// SetEnabled sets the "enabled" field.
func (u *GearUpsertBulk) SetEnabled(v bool) *GearUpsertBulk {
	return u.Update(func(s *GearUpsert) {
		s.SetEnabled(v)
	})
}

// UpdateEnabled sets the "enabled" field to the value that was provided on create.
func (u *GearUpsertBulk) UpdateEnabled() *GearUpsertBulk {
	return u.Update(func(s *GearUpsert) {
		s.UpdateEnabled()
	})
}

// SetConfig sets the "config" field.
func (u *GearUpsertBulk) SetConfig(v map[string]interface{}) *GearUpsertBulk {
	return u.Update(func(s *GearUpsert) {
		s.SetConfig(v)
	})
}

// UpdateConfig sets the "config" field to the value that was provided on create.
func (u *GearUpsertBulk) UpdateConfig() *GearUpsertBulk {
	return u.Update(func(s *GearUpsert) {
		s.UpdateConfig()
	})
}

// ClearConfig clears the value of the "config" field.
func (u *GearUpsertBulk) ClearConfig() *GearUpsertBulk {
	return u.Update(func(s *GearUpsert) {
		s.ClearConfig()
	})
}

// SetSignature sets the "signature" field.
func (u *GearUpsertBulk) SetSignature(v string) *GearUpsertBulk {
	return u.Update(func(s *GearUpsert) {
		s.SetSignature(v)
	})
}

// UpdateSignature sets the "signature" field to the value that was provided on create.
func (u *GearUpsertBulk) UpdateSignature() *GearUpsertBulk {
	return u.Update(func(s *GearUpsert) {
		s.UpdateSignature()
	})
}

// ClearSignature clears the value of the "signature" field.
func (u *GearUpsertBulk) ClearSignature() *GearUpsertBulk {
	return u.Update(func(s *GearUpsert) {
		s.ClearSignature()
	})
}

// SetChecksum sets the "checksum" field.
func (u *GearUpsertBulk) SetChecksum(v string) *GearUpsertBulk {
	return u.Update(func(s *GearUpsert) {
		s.SetChecksum(v)
	})
}

// UpdateChecksum sets the "checksum" field to the value that was provided on create.
func (u *GearUpsertBulk) UpdateChecksum() *GearUpsertBulk {
	return u.Update(func(s *GearUpsert) {
		s.UpdateChecksum()
	})
}

// SetPackagePath sets the "package_path" field.
func (u *GearUpsertBulk) SetPackagePath(v string) *GearUpsertBulk {
	return u.Update(func(s *GearUpsert) {
		s.SetPackagePath(v)
	})
}

// UpdatePackagePath sets the "package_path" field to the value that was provided on create.
func (u *GearUpsertBulk) UpdatePackagePath() *GearUpsertBulk {
	return u.Update(func(s *GearUpsert) {
		s.UpdatePackagePath()
	})
}

// ClearPackagePath clears the value of the "package_path" field.
func (u *GearUpsertBulk) ClearPackagePath() *GearUpsertBulk {
	return u.Update(func(s *GearUpsert) {
		s.ClearPackagePath()
	})
}

// Exec executes the query.
func (u *GearUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the GearCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for GearCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *GearUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
