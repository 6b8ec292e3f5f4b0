// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/gearbox-dev/gearbox/ent/costdaily"
	"github.com/gearbox-dev/gearbox/ent/gear"
	"github.com/gearbox-dev/gearbox/ent/job"
	"github.com/gearbox-dev/gearbox/ent/llmcall"
	"github.com/gearbox-dev/gearbox/ent/predicate"
	"github.com/gearbox-dev/gearbox/ent/standingrule"
	"github.com/gearbox-dev/gearbox/pkg/models"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeCostDaily    = "CostDaily"
	TypeGear         = "Gear"
	TypeJob          = "Job"
	TypeLLMCall      = "LLMCall"
	TypeStandingRule = "StandingRule"
)

// CostDailyMutation represents an operation that mutates the CostDaily nodes in the graph.
type CostDailyMutation struct {
	config
	op            Op
	typ           string
	id            *string
	total_usd     *float64
	addtotal_usd  *float64
	call_count    *int
	addcall_count *int
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*CostDaily, error)
	predicates    []predicate.CostDaily
}

var _ ent.Mutation = (*CostDailyMutation)(nil)

// costdailyOption allows management of the mutation configuration using functional options.
type costdailyOption func(*CostDailyMutation)

// newCostDailyMutation creates new mutation for the CostDaily entity.
func newCostDailyMutation(c config, op Op, opts ...costdailyOption) *CostDailyMutation {
	m := &CostDailyMutation{
		config:        c,
		op:            op,
		typ:           TypeCostDaily,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCostDailyID sets the ID field of the mutation.
func withCostDailyID(id string) costdailyOption {
	return func(m *CostDailyMutation) {
		var (
			err   error
			once  sync.Once
			value *CostDaily
		)
		m.oldValue = func(ctx context.Context) (*CostDaily, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CostDaily.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCostDaily sets the old CostDaily of the mutation.
func withCostDaily(node *CostDaily) costdailyOption {
	return func(m *CostDailyMutation) {
		m.oldValue = func(context.Context) (*CostDaily, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CostDailyMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CostDailyMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CostDaily entities.
func (m *CostDailyMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CostDailyMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CostDailyMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CostDaily.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTotalUsd sets the "total_usd" field.
func (m *CostDailyMutation) SetTotalUsd(f float64) {
	m.total_usd = &f
	m.addtotal_usd = nil
}

// TotalUsd returns the value of the "total_usd" field in the mutation.
func (m *CostDailyMutation) TotalUsd() (r float64, exists bool) {
	v := m.total_usd
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalUsd returns the old "total_usd" field's value of the CostDaily entity.
// If the CostDaily object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CostDailyMutation) OldTotalUsd(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalUsd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalUsd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalUsd: %w", err)
	}
	return oldValue.TotalUsd, nil
}

// AddTotalUsd adds f to the "total_usd" field.
func (m *CostDailyMutation) AddTotalUsd(f float64) {
	if m.addtotal_usd != nil {
		*m.addtotal_usd += f
	} else {
		m.addtotal_usd = &f
	}
}

// AddedTotalUsd returns the value that was added to the "total_usd" field in this mutation.
func (m *CostDailyMutation) AddedTotalUsd() (r float64, exists bool) {
	v := m.addtotal_usd
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalUsd resets all changes to the "total_usd" field.
func (m *CostDailyMutation) ResetTotalUsd() {
	m.total_usd = nil
	m.addtotal_usd = nil
}

// SetCallCount sets the "call_count" field.
func (m *CostDailyMutation) SetCallCount(i int) {
	m.call_count = &i
	m.addcall_count = nil
}

// CallCount returns the value of the "call_count" field in the mutation.
func (m *CostDailyMutation) CallCount() (r int, exists bool) {
	v := m.call_count
	if v == nil {
		return
	}
	return *v, true
}

// OldCallCount returns the old "call_count" field's value of the CostDaily entity.
// If the CostDaily object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CostDailyMutation) OldCallCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCallCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCallCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCallCount: %w", err)
	}
	return oldValue.CallCount, nil
}

// AddCallCount adds i to the "call_count" field.
func (m *CostDailyMutation) AddCallCount(i int) {
	if m.addcall_count != nil {
		*m.addcall_count += i
	} else {
		m.addcall_count = &i
	}
}

// AddedCallCount returns the value that was added to the "call_count" field in this mutation.
func (m *CostDailyMutation) AddedCallCount() (r int, exists bool) {
	v := m.addcall_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetCallCount resets all changes to the "call_count" field.
func (m *CostDailyMutation) ResetCallCount() {
	m.call_count = nil
	m.addcall_count = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CostDailyMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CostDailyMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the CostDaily entity.
// If the CostDaily object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CostDailyMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CostDailyMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the CostDailyMutation builder.
func (m *CostDailyMutation) Where(ps ...predicate.CostDaily) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CostDailyMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CostDailyMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CostDaily, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CostDailyMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CostDailyMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CostDaily).
func (m *CostDailyMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CostDailyMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.total_usd != nil {
		fields = append(fields, costdaily.FieldTotalUsd)
	}
	if m.call_count != nil {
		fields = append(fields, costdaily.FieldCallCount)
	}
	if m.updated_at != nil {
		fields = append(fields, costdaily.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CostDailyMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case costdaily.FieldTotalUsd:
		return m.TotalUsd()
	case costdaily.FieldCallCount:
		return m.CallCount()
	case costdaily.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CostDailyMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case costdaily.FieldTotalUsd:
		return m.OldTotalUsd(ctx)
	case costdaily.FieldCallCount:
		return m.OldCallCount(ctx)
	case costdaily.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CostDaily field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CostDailyMutation) SetField(name string, value ent.Value) error {
	switch name {
	case costdaily.FieldTotalUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalUsd(v)
		return nil
	case costdaily.FieldCallCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCallCount(v)
		return nil
	case costdaily.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CostDaily field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CostDailyMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_usd != nil {
		fields = append(fields, costdaily.FieldTotalUsd)
	}
	if m.addcall_count != nil {
		fields = append(fields, costdaily.FieldCallCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CostDailyMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case costdaily.FieldTotalUsd:
		return m.AddedTotalUsd()
	case costdaily.FieldCallCount:
		return m.AddedCallCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CostDailyMutation) AddField(name string, value ent.Value) error {
	switch name {
	case costdaily.FieldTotalUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalUsd(v)
		return nil
	case costdaily.FieldCallCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCallCount(v)
		return nil
	}
	return fmt.Errorf("unknown CostDaily numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CostDailyMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CostDailyMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CostDailyMutation) ClearField(name string) error {
	return fmt.Errorf("unknown CostDaily nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CostDailyMutation) ResetField(name string) error {
	switch name {
	case costdaily.FieldTotalUsd:
		m.ResetTotalUsd()
		return nil
	case costdaily.FieldCallCount:
		m.ResetCallCount()
		return nil
	case costdaily.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown CostDaily field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CostDailyMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CostDailyMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CostDailyMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CostDailyMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CostDailyMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CostDailyMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CostDailyMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown CostDaily unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CostDailyMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown CostDaily edge %s", name)
}

// GearMutation represents an operation that mutates the Gear nodes in the graph.
type GearMutation struct {
	config
	op            Op
	typ           string
	id            *string
	name          *string
	version       *string
	manifest      **models.Manifest
	origin        *gear.Origin
	draft         *bool
	enabled       *bool
	_config       *map[string]interface{}
	signature     *string
	checksum      *string
	package_path  *string
	installed_at  *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Gear, error)
	predicates    []predicate.Gear
}

var _ ent.Mutation = (*GearMutation)(nil)

// gearOption allows management of the mutation configuration using functional options.
type gearOption func(*GearMutation)

// newGearMutation creates new mutation for the Gear entity.
func newGearMutation(c config, op Op, opts ...gearOption) *GearMutation {
	m := &GearMutation{
		config:        c,
		op:            op,
		typ:           TypeGear,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGearID sets the ID field of the mutation.
func withGearID(id string) gearOption {
	return func(m *GearMutation) {
		var (
			err   error
			once  sync.Once
			value *Gear
		)
		m.oldValue = func(ctx context.Context) (*Gear, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Gear.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGear sets the old Gear of the mutation.
func withGear(node *Gear) gearOption {
	return func(m *GearMutation) {
		m.oldValue = func(context.Context) (*Gear, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GearMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GearMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Gear entities.
func (m *GearMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GearMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GearMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Gear.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *GearMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *GearMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Gear entity.
// If the Gear object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GearMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *GearMutation) ResetName() {
	m.name = nil
}

// SetVersion sets the "version" field.
func (m *GearMutation) SetVersion(s string) {
	m.version = &s
}

// Version returns the value of the "version" field in the mutation.
func (m *GearMutation) Version() (r string, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the Gear entity.
// If the Gear object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GearMutation) OldVersion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// ResetVersion resets all changes to the "version" field.
func (m *GearMutation) ResetVersion() {
	m.version = nil
}

// SetManifest sets the "manifest" field.
func (m *GearMutation) SetManifest(value *models.Manifest) {
	m.manifest = &value
}

// Manifest returns the value of the "manifest" field in the mutation.
func (m *GearMutation) Manifest() (r *models.Manifest, exists bool) {
	v := m.manifest
	if v == nil {
		return
	}
	return *v, true
}

// OldManifest returns the old "manifest" field's value of the Gear entity.
// If the Gear object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GearMutation) OldManifest(ctx context.Context) (v *models.Manifest, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldManifest is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldManifest requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldManifest: %w", err)
	}
	return oldValue.Manifest, nil
}

// ResetManifest resets all changes to the "manifest" field.
func (m *GearMutation) ResetManifest() {
	m.manifest = nil
}

// SetOrigin sets the "origin" field.
func (m *GearMutation) SetOrigin(ge gear.Origin) {
	m.origin = &ge
}

// Origin returns the value of the "origin" field in the mutation.
func (m *GearMutation) Origin() (r gear.Origin, exists bool) {
	v := m.origin
	if v == nil {
		return
	}
	return *v, true
}

// OldOrigin returns the old "origin" field's value of the Gear entity.
// If the Gear object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GearMutation) OldOrigin(ctx context.Context) (v gear.Origin, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrigin is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrigin requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrigin: %w", err)
	}
	return oldValue.Origin, nil
}

// ResetOrigin resets all changes to the "origin" field.
func (m *GearMutation) ResetOrigin() {
	m.origin = nil
}

// SetDraft sets the "draft" field.
func (m *GearMutation) SetDraft(b bool) {
	m.draft = &b
}

// Draft returns the value of the "draft" field in the mutation.
func (m *GearMutation) Draft() (r bool, exists bool) {
	v := m.draft
	if v == nil {
		return
	}
	return *v, true
}

// OldDraft returns the old "draft" field's value of the Gear entity.
// If the Gear object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GearMutation) OldDraft(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDraft is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDraft requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDraft: %w", err)
	}
	return oldValue.Draft, nil
}

// ResetDraft resets all changes to the "draft" field.
func (m *GearMutation) ResetDraft() {
	m.draft = nil
}

// SetEnabled sets the "enabled" field.
func (m *GearMutation) SetEnabled(b bool) {
	m.enabled = &b
}

// Enabled returns the value of the "enabled" field in the mutation.
func (m *GearMutation) Enabled() (r bool, exists bool) {
	v := m.enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldEnabled returns the old "enabled" field's value of the Gear entity.
// If the Gear object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GearMutation) OldEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnabled: %w", err)
	}
	return oldValue.Enabled, nil
}

// ResetEnabled resets all changes to the "enabled" field.
func (m *GearMutation) ResetEnabled() {
	m.enabled = nil
}

// SetConfig sets the "config" field.
func (m *GearMutation) SetConfig(value map[string]interface{}) {
	m._config = &value
}

// Config returns the value of the "config" field in the mutation.
func (m *GearMutation) Config() (r map[string]interface{}, exists bool) {
	v := m._config
	if v == nil {
		return
	}
	return *v, true
}

// OldConfig returns the old "config" field's value of the Gear entity.
// If the Gear object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GearMutation) OldConfig(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfig is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfig requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfig: %w", err)
	}
	return oldValue.Config, nil
}

// ClearConfig clears the value of the "config" field.
func (m *GearMutation) ClearConfig() {
	m._config = nil
	m.clearedFields[gear.FieldConfig] = struct{}{}
}

// ConfigCleared returns if the "config" field was cleared in this mutation.
func (m *GearMutation) ConfigCleared() bool {
	_, ok := m.clearedFields[gear.FieldConfig]
	return ok
}

// ResetConfig resets all changes to the "config" field.
func (m *GearMutation) ResetConfig() {
	m._config = nil
	delete(m.clearedFields, gear.FieldConfig)
}

// SetSignature sets the "signature" field.
func (m *GearMutation) SetSignature(s string) {
	m.signature = &s
}

// Signature returns the value of the "signature" field in the mutation.
func (m *GearMutation) Signature() (r string, exists bool) {
	v := m.signature
	if v == nil {
		return
	}
	return *v, true
}

// OldSignature returns the old "signature" field's value of the Gear entity.
// If the Gear object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GearMutation) OldSignature(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSignature is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSignature requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSignature: %w", err)
	}
	return oldValue.Signature, nil
}

// ClearSignature clears the value of the "signature" field.
func (m *GearMutation) ClearSignature() {
	m.signature = nil
	m.clearedFields[gear.FieldSignature] = struct{}{}
}

// SignatureCleared returns if the "signature" field was cleared in this mutation.
func (m *GearMutation) SignatureCleared() bool {
	_, ok := m.clearedFields[gear.FieldSignature]
	return ok
}

// ResetSignature resets all changes to the "signature" field.
func (m *GearMutation) ResetSignature() {
	m.signature = nil
	delete(m.clearedFields, gear.FieldSignature)
}

// SetChecksum sets the "checksum" field.
func (m *GearMutation) SetChecksum(s string) {
	m.checksum = &s
}

// Checksum returns the value of the "checksum" field in the mutation.
func (m *GearMutation) Checksum() (r string, exists bool) {
	v := m.checksum
	if v == nil {
		return
	}
	return *v, true
}

// OldChecksum returns the old "checksum" field's value of the Gear entity.
// If the Gear object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GearMutation) OldChecksum(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChecksum is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChecksum requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChecksum: %w", err)
	}
	return oldValue.Checksum, nil
}

// ResetChecksum resets all changes to the "checksum" field.
func (m *GearMutation) ResetChecksum() {
	m.checksum = nil
}

// SetPackagePath sets the "package_path" field.
func (m *GearMutation) SetPackagePath(s string) {
	m.package_path = &s
}

// PackagePath returns the value of the "package_path" field in the mutation.
func (m *GearMutation) PackagePath() (r string, exists bool) {
	v := m.package_path
	if v == nil {
		return
	}
	return *v, true
}

// OldPackagePath returns the old "package_path" field's value of the Gear entity.
// If the Gear object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GearMutation) OldPackagePath(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPackagePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPackagePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPackagePath: %w", err)
	}
	return oldValue.PackagePath, nil
}

// ClearPackagePath clears the value of the "package_path" field.
func (m *GearMutation) ClearPackagePath() {
	m.package_path = nil
	m.clearedFields[gear.FieldPackagePath] = struct{}{}
}

// PackagePathCleared returns if the "package_path" field was cleared in this mutation.
func (m *GearMutation) PackagePathCleared() bool {
	_, ok := m.clearedFields[gear.FieldPackagePath]
	return ok
}

// ResetPackagePath resets all changes to the "package_path" field.
func (m *GearMutation) ResetPackagePath() {
	m.package_path = nil
	delete(m.clearedFields, gear.FieldPackagePath)
}

// SetInstalledAt sets the "installed_at" field.
func (m *GearMutation) SetInstalledAt(t time.Time) {
	m.installed_at = &t
}

// InstalledAt returns the value of the "installed_at" field in the mutation.
func (m *GearMutation) InstalledAt() (r time.Time, exists bool) {
	v := m.installed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldInstalledAt returns the old "installed_at" field's value of the Gear entity.
// If the Gear object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GearMutation) OldInstalledAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInstalledAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInstalledAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInstalledAt: %w", err)
	}
	return oldValue.InstalledAt, nil
}

// ResetInstalledAt resets all changes to the "installed_at" field.
func (m *GearMutation) ResetInstalledAt() {
	m.installed_at = nil
}

// Where appends a list predicates to the GearMutation builder.
func (m *GearMutation) Where(ps ...predicate.Gear) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GearMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GearMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Gear, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GearMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GearMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Gear).
func (m *GearMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GearMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.name != nil {
		fields = append(fields, gear.FieldName)
	}
	if m.version != nil {
		fields = append(fields, gear.FieldVersion)
	}
	if m.manifest != nil {
		fields = append(fields, gear.FieldManifest)
	}
	if m.origin != nil {
		fields = append(fields, gear.FieldOrigin)
	}
	if m.draft != nil {
		fields = append(fields, gear.FieldDraft)
	}
	if m.enabled != nil {
		fields = append(fields, gear.FieldEnabled)
	}
	if m._config != nil {
		fields = append(fields, gear.FieldConfig)
	}
	if m.signature != nil {
		fields = append(fields, gear.FieldSignature)
	}
	if m.checksum != nil {
		fields = append(fields, gear.FieldChecksum)
	}
	if m.package_path != nil {
		fields = append(fields, gear.FieldPackagePath)
	}
	if m.installed_at != nil {
		fields = append(fields, gear.FieldInstalledAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GearMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case gear.FieldName:
		return m.Name()
	case gear.FieldVersion:
		return m.Version()
	case gear.FieldManifest:
		return m.Manifest()
	case gear.FieldOrigin:
		return m.Origin()
	case gear.FieldDraft:
		return m.Draft()
	case gear.FieldEnabled:
		return m.Enabled()
	case gear.FieldConfig:
		return m.Config()
	case gear.FieldSignature:
		return m.Signature()
	case gear.FieldChecksum:
		return m.Checksum()
	case gear.FieldPackagePath:
		return m.PackagePath()
	case gear.FieldInstalledAt:
		return m.InstalledAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GearMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case gear.FieldName:
		return m.OldName(ctx)
	case gear.FieldVersion:
		return m.OldVersion(ctx)
	case gear.FieldManifest:
		return m.OldManifest(ctx)
	case gear.FieldOrigin:
		return m.OldOrigin(ctx)
	case gear.FieldDraft:
		return m.OldDraft(ctx)
	case gear.FieldEnabled:
		return m.OldEnabled(ctx)
	case gear.FieldConfig:
		return m.OldConfig(ctx)
	case gear.FieldSignature:
		return m.OldSignature(ctx)
	case gear.FieldChecksum:
		return m.OldChecksum(ctx)
	case gear.FieldPackagePath:
		return m.OldPackagePath(ctx)
	case gear.FieldInstalledAt:
		return m.OldInstalledAt(ctx)
	}
	return nil, fmt.Errorf("unknown Gear field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GearMutation) SetField(name string, value ent.Value) error {
	switch name {
	case gear.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case gear.FieldVersion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case gear.FieldManifest:
		v, ok := value.(*models.Manifest)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetManifest(v)
		return nil
	case gear.FieldOrigin:
		v, ok := value.(gear.Origin)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrigin(v)
		return nil
	case gear.FieldDraft:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDraft(v)
		return nil
	case gear.FieldEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnabled(v)
		return nil
	case gear.FieldConfig:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfig(v)
		return nil
	case gear.FieldSignature:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSignature(v)
		return nil
	case gear.FieldChecksum:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChecksum(v)
		return nil
	case gear.FieldPackagePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPackagePath(v)
		return nil
	case gear.FieldInstalledAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInstalledAt(v)
		return nil
	}
	return fmt.Errorf("unknown Gear field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GearMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GearMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GearMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Gear numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GearMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(gear.FieldConfig) {
		fields = append(fields, gear.FieldConfig)
	}
	if m.FieldCleared(gear.FieldSignature) {
		fields = append(fields, gear.FieldSignature)
	}
	if m.FieldCleared(gear.FieldPackagePath) {
		fields = append(fields, gear.FieldPackagePath)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GearMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GearMutation) ClearField(name string) error {
	switch name {
	case gear.FieldConfig:
		m.ClearConfig()
		return nil
	case gear.FieldSignature:
		m.ClearSignature()
		return nil
	case gear.FieldPackagePath:
		m.ClearPackagePath()
		return nil
	}
	return fmt.Errorf("unknown Gear nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GearMutation) ResetField(name string) error {
	switch name {
	case gear.FieldName:
		m.ResetName()
		return nil
	case gear.FieldVersion:
		m.ResetVersion()
		return nil
	case gear.FieldManifest:
		m.ResetManifest()
		return nil
	case gear.FieldOrigin:
		m.ResetOrigin()
		return nil
	case gear.FieldDraft:
		m.ResetDraft()
		return nil
	case gear.FieldEnabled:
		m.ResetEnabled()
		return nil
	case gear.FieldConfig:
		m.ResetConfig()
		return nil
	case gear.FieldSignature:
		m.ResetSignature()
		return nil
	case gear.FieldChecksum:
		m.ResetChecksum()
		return nil
	case gear.FieldPackagePath:
		m.ResetPackagePath()
		return nil
	case gear.FieldInstalledAt:
		m.ResetInstalledAt()
		return nil
	}
	return fmt.Errorf("unknown Gear field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GearMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GearMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GearMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GearMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GearMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GearMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GearMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Gear unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GearMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Gear edge %s", name)
}

// JobMutation represents an operation that mutates the Job nodes in the graph.
type JobMutation struct {
	config
	op                Op
	typ               string
	id                *string
	conversation_id   *string
	status            *job.Status
	priority          *job.Priority
	source_type       *job.SourceType
	source_message_id *string
	dedup_key         *string
	metadata          *map[string]interface{}
	plan              **models.Plan
	validation        **models.ValidationResult
	result            **models.JobResult
	error             **models.CodedError
	lease_owner       *string
	lease_expires_at  *time.Time
	last_heartbeat_at *time.Time
	attempts          *int
	addattempts       *int
	created_at        *time.Time
	updated_at        *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*Job, error)
	predicates        []predicate.Job
}

var _ ent.Mutation = (*JobMutation)(nil)

// jobOption allows management of the mutation configuration using functional options.
type jobOption func(*JobMutation)

// newJobMutation creates new mutation for the Job entity.
func newJobMutation(c config, op Op, opts ...jobOption) *JobMutation {
	m := &JobMutation{
		config:        c,
		op:            op,
		typ:           TypeJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withJobID sets the ID field of the mutation.
func withJobID(id string) jobOption {
	return func(m *JobMutation) {
		var (
			err   error
			once  sync.Once
			value *Job
		)
		m.oldValue = func(ctx context.Context) (*Job, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Job.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withJob sets the old Job of the mutation.
func withJob(node *Job) jobOption {
	return func(m *JobMutation) {
		m.oldValue = func(context.Context) (*Job, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m JobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m JobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Job entities.
func (m *JobMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *JobMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *JobMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Job.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetConversationID sets the "conversation_id" field.
func (m *JobMutation) SetConversationID(s string) {
	m.conversation_id = &s
}

// ConversationID returns the value of the "conversation_id" field in the mutation.
func (m *JobMutation) ConversationID() (r string, exists bool) {
	v := m.conversation_id
	if v == nil {
		return
	}
	return *v, true
}

// OldConversationID returns the old "conversation_id" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldConversationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConversationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConversationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConversationID: %w", err)
	}
	return oldValue.ConversationID, nil
}

// ResetConversationID resets all changes to the "conversation_id" field.
func (m *JobMutation) ResetConversationID() {
	m.conversation_id = nil
}

// SetStatus sets the "status" field.
func (m *JobMutation) SetStatus(j job.Status) {
	m.status = &j
}

// Status returns the value of the "status" field in the mutation.
func (m *JobMutation) Status() (r job.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldStatus(ctx context.Context) (v job.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *JobMutation) ResetStatus() {
	m.status = nil
}

// SetPriority sets the "priority" field.
func (m *JobMutation) SetPriority(j job.Priority) {
	m.priority = &j
}

// Priority returns the value of the "priority" field in the mutation.
func (m *JobMutation) Priority() (r job.Priority, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldPriority(ctx context.Context) (v job.Priority, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// ResetPriority resets all changes to the "priority" field.
func (m *JobMutation) ResetPriority() {
	m.priority = nil
}

// SetSourceType sets the "source_type" field.
func (m *JobMutation) SetSourceType(jt job.SourceType) {
	m.source_type = &jt
}

// SourceType returns the value of the "source_type" field in the mutation.
func (m *JobMutation) SourceType() (r job.SourceType, exists bool) {
	v := m.source_type
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceType returns the old "source_type" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldSourceType(ctx context.Context) (v job.SourceType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceType: %w", err)
	}
	return oldValue.SourceType, nil
}

// ResetSourceType resets all changes to the "source_type" field.
func (m *JobMutation) ResetSourceType() {
	m.source_type = nil
}

// SetSourceMessageID sets the "source_message_id" field.
func (m *JobMutation) SetSourceMessageID(s string) {
	m.source_message_id = &s
}

// SourceMessageID returns the value of the "source_message_id" field in the mutation.
func (m *JobMutation) SourceMessageID() (r string, exists bool) {
	v := m.source_message_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceMessageID returns the old "source_message_id" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldSourceMessageID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceMessageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceMessageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceMessageID: %w", err)
	}
	return oldValue.SourceMessageID, nil
}

// ClearSourceMessageID clears the value of the "source_message_id" field.
func (m *JobMutation) ClearSourceMessageID() {
	m.source_message_id = nil
	m.clearedFields[job.FieldSourceMessageID] = struct{}{}
}

// SourceMessageIDCleared returns if the "source_message_id" field was cleared in this mutation.
func (m *JobMutation) SourceMessageIDCleared() bool {
	_, ok := m.clearedFields[job.FieldSourceMessageID]
	return ok
}

// ResetSourceMessageID resets all changes to the "source_message_id" field.
func (m *JobMutation) ResetSourceMessageID() {
	m.source_message_id = nil
	delete(m.clearedFields, job.FieldSourceMessageID)
}

// SetDedupKey sets the "dedup_key" field.
func (m *JobMutation) SetDedupKey(s string) {
	m.dedup_key = &s
}

// DedupKey returns the value of the "dedup_key" field in the mutation.
func (m *JobMutation) DedupKey() (r string, exists bool) {
	v := m.dedup_key
	if v == nil {
		return
	}
	return *v, true
}

// OldDedupKey returns the old "dedup_key" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldDedupKey(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDedupKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDedupKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDedupKey: %w", err)
	}
	return oldValue.DedupKey, nil
}

// ClearDedupKey clears the value of the "dedup_key" field.
func (m *JobMutation) ClearDedupKey() {
	m.dedup_key = nil
	m.clearedFields[job.FieldDedupKey] = struct{}{}
}

// DedupKeyCleared returns if the "dedup_key" field was cleared in this mutation.
func (m *JobMutation) DedupKeyCleared() bool {
	_, ok := m.clearedFields[job.FieldDedupKey]
	return ok
}

// ResetDedupKey resets all changes to the "dedup_key" field.
func (m *JobMutation) ResetDedupKey() {
	m.dedup_key = nil
	delete(m.clearedFields, job.FieldDedupKey)
}

// SetMetadata sets the "metadata" field.
func (m *JobMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *JobMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *JobMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[job.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *JobMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[job.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *JobMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, job.FieldMetadata)
}

// SetPlan sets the "plan" field.
func (m *JobMutation) SetPlan(value *models.Plan) {
	m.plan = &value
}

// Plan returns the value of the "plan" field in the mutation.
func (m *JobMutation) Plan() (r *models.Plan, exists bool) {
	v := m.plan
	if v == nil {
		return
	}
	return *v, true
}

// OldPlan returns the old "plan" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldPlan(ctx context.Context) (v *models.Plan, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlan is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlan requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlan: %w", err)
	}
	return oldValue.Plan, nil
}

// ClearPlan clears the value of the "plan" field.
func (m *JobMutation) ClearPlan() {
	m.plan = nil
	m.clearedFields[job.FieldPlan] = struct{}{}
}

// PlanCleared returns if the "plan" field was cleared in this mutation.
func (m *JobMutation) PlanCleared() bool {
	_, ok := m.clearedFields[job.FieldPlan]
	return ok
}

// ResetPlan resets all changes to the "plan" field.
func (m *JobMutation) ResetPlan() {
	m.plan = nil
	delete(m.clearedFields, job.FieldPlan)
}

// SetValidation sets the "validation" field.
func (m *JobMutation) SetValidation(mr *models.ValidationResult) {
	m.validation = &mr
}

// Validation returns the value of the "validation" field in the mutation.
func (m *JobMutation) Validation() (r *models.ValidationResult, exists bool) {
	v := m.validation
	if v == nil {
		return
	}
	return *v, true
}

// OldValidation returns the old "validation" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldValidation(ctx context.Context) (v *models.ValidationResult, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidation: %w", err)
	}
	return oldValue.Validation, nil
}

// ClearValidation clears the value of the "validation" field.
func (m *JobMutation) ClearValidation() {
	m.validation = nil
	m.clearedFields[job.FieldValidation] = struct{}{}
}

// ValidationCleared returns if the "validation" field was cleared in this mutation.
func (m *JobMutation) ValidationCleared() bool {
	_, ok := m.clearedFields[job.FieldValidation]
	return ok
}

// ResetValidation resets all changes to the "validation" field.
func (m *JobMutation) ResetValidation() {
	m.validation = nil
	delete(m.clearedFields, job.FieldValidation)
}

// SetResult sets the "result" field.
func (m *JobMutation) SetResult(mr *models.JobResult) {
	m.result = &mr
}

// Result returns the value of the "result" field in the mutation.
func (m *JobMutation) Result() (r *models.JobResult, exists bool) {
	v := m.result
	if v == nil {
		return
	}
	return *v, true
}

// OldResult returns the old "result" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldResult(ctx context.Context) (v *models.JobResult, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResult: %w", err)
	}
	return oldValue.Result, nil
}

// ClearResult clears the value of the "result" field.
func (m *JobMutation) ClearResult() {
	m.result = nil
	m.clearedFields[job.FieldResult] = struct{}{}
}

// ResultCleared returns if the "result" field was cleared in this mutation.
func (m *JobMutation) ResultCleared() bool {
	_, ok := m.clearedFields[job.FieldResult]
	return ok
}

// ResetResult resets all changes to the "result" field.
func (m *JobMutation) ResetResult() {
	m.result = nil
	delete(m.clearedFields, job.FieldResult)
}

// SetError sets the "error" field.
func (m *JobMutation) SetError(me *models.CodedError) {
	m.error = &me
}

// Error returns the value of the "error" field in the mutation.
func (m *JobMutation) Error() (r *models.CodedError, exists bool) {
	v := m.error
	if v == nil {
		return
	}
	return *v, true
}

// OldError returns the old "error" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldError(ctx context.Context) (v *models.CodedError, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldError: %w", err)
	}
	return oldValue.Error, nil
}

// ClearError clears the value of the "error" field.
func (m *JobMutation) ClearError() {
	m.error = nil
	m.clearedFields[job.FieldError] = struct{}{}
}

// ErrorCleared returns if the "error" field was cleared in this mutation.
func (m *JobMutation) ErrorCleared() bool {
	_, ok := m.clearedFields[job.FieldError]
	return ok
}

// ResetError resets all changes to the "error" field.
func (m *JobMutation) ResetError() {
	m.error = nil
	delete(m.clearedFields, job.FieldError)
}

// SetLeaseOwner sets the "lease_owner" field.
func (m *JobMutation) SetLeaseOwner(s string) {
	m.lease_owner = &s
}

// LeaseOwner returns the value of the "lease_owner" field in the mutation.
func (m *JobMutation) LeaseOwner() (r string, exists bool) {
	v := m.lease_owner
	if v == nil {
		return
	}
	return *v, true
}

// OldLeaseOwner returns the old "lease_owner" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldLeaseOwner(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLeaseOwner is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLeaseOwner requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLeaseOwner: %w", err)
	}
	return oldValue.LeaseOwner, nil
}

// ClearLeaseOwner clears the value of the "lease_owner" field.
func (m *JobMutation) ClearLeaseOwner() {
	m.lease_owner = nil
	m.clearedFields[job.FieldLeaseOwner] = struct{}{}
}

// LeaseOwnerCleared returns if the "lease_owner" field was cleared in this mutation.
func (m *JobMutation) LeaseOwnerCleared() bool {
	_, ok := m.clearedFields[job.FieldLeaseOwner]
	return ok
}

// ResetLeaseOwner resets all changes to the "lease_owner" field.
func (m *JobMutation) ResetLeaseOwner() {
	m.lease_owner = nil
	delete(m.clearedFields, job.FieldLeaseOwner)
}

// SetLeaseExpiresAt sets the "lease_expires_at" field.
func (m *JobMutation) SetLeaseExpiresAt(t time.Time) {
	m.lease_expires_at = &t
}

// LeaseExpiresAt returns the value of the "lease_expires_at" field in the mutation.
func (m *JobMutation) LeaseExpiresAt() (r time.Time, exists bool) {
	v := m.lease_expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLeaseExpiresAt returns the old "lease_expires_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldLeaseExpiresAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLeaseExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLeaseExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLeaseExpiresAt: %w", err)
	}
	return oldValue.LeaseExpiresAt, nil
}

// ClearLeaseExpiresAt clears the value of the "lease_expires_at" field.
func (m *JobMutation) ClearLeaseExpiresAt() {
	m.lease_expires_at = nil
	m.clearedFields[job.FieldLeaseExpiresAt] = struct{}{}
}

// LeaseExpiresAtCleared returns if the "lease_expires_at" field was cleared in this mutation.
func (m *JobMutation) LeaseExpiresAtCleared() bool {
	_, ok := m.clearedFields[job.FieldLeaseExpiresAt]
	return ok
}

// ResetLeaseExpiresAt resets all changes to the "lease_expires_at" field.
func (m *JobMutation) ResetLeaseExpiresAt() {
	m.lease_expires_at = nil
	delete(m.clearedFields, job.FieldLeaseExpiresAt)
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (m *JobMutation) SetLastHeartbeatAt(t time.Time) {
	m.last_heartbeat_at = &t
}

// LastHeartbeatAt returns the value of the "last_heartbeat_at" field in the mutation.
func (m *JobMutation) LastHeartbeatAt() (r time.Time, exists bool) {
	v := m.last_heartbeat_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastHeartbeatAt returns the old "last_heartbeat_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldLastHeartbeatAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastHeartbeatAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastHeartbeatAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastHeartbeatAt: %w", err)
	}
	return oldValue.LastHeartbeatAt, nil
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (m *JobMutation) ClearLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	m.clearedFields[job.FieldLastHeartbeatAt] = struct{}{}
}

// LastHeartbeatAtCleared returns if the "last_heartbeat_at" field was cleared in this mutation.
func (m *JobMutation) LastHeartbeatAtCleared() bool {
	_, ok := m.clearedFields[job.FieldLastHeartbeatAt]
	return ok
}

// ResetLastHeartbeatAt resets all changes to the "last_heartbeat_at" field.
func (m *JobMutation) ResetLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	delete(m.clearedFields, job.FieldLastHeartbeatAt)
}

// SetAttempts sets the "attempts" field.
func (m *JobMutation) SetAttempts(i int) {
	m.attempts = &i
	m.addattempts = nil
}

// Attempts returns the value of the "attempts" field in the mutation.
func (m *JobMutation) Attempts() (r int, exists bool) {
	v := m.attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempts returns the old "attempts" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempts: %w", err)
	}
	return oldValue.Attempts, nil
}

// AddAttempts adds i to the "attempts" field.
func (m *JobMutation) AddAttempts(i int) {
	if m.addattempts != nil {
		*m.addattempts += i
	} else {
		m.addattempts = &i
	}
}

// AddedAttempts returns the value that was added to the "attempts" field in this mutation.
func (m *JobMutation) AddedAttempts() (r int, exists bool) {
	v := m.addattempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempts resets all changes to the "attempts" field.
func (m *JobMutation) ResetAttempts() {
	m.attempts = nil
	m.addattempts = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *JobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *JobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *JobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *JobMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *JobMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *JobMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the JobMutation builder.
func (m *JobMutation) Where(ps ...predicate.Job) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the JobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *JobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Job, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *JobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *JobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Job).
func (m *JobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *JobMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.conversation_id != nil {
		fields = append(fields, job.FieldConversationID)
	}
	if m.status != nil {
		fields = append(fields, job.FieldStatus)
	}
	if m.priority != nil {
		fields = append(fields, job.FieldPriority)
	}
	if m.source_type != nil {
		fields = append(fields, job.FieldSourceType)
	}
	if m.source_message_id != nil {
		fields = append(fields, job.FieldSourceMessageID)
	}
	if m.dedup_key != nil {
		fields = append(fields, job.FieldDedupKey)
	}
	if m.metadata != nil {
		fields = append(fields, job.FieldMetadata)
	}
	if m.plan != nil {
		fields = append(fields, job.FieldPlan)
	}
	if m.validation != nil {
		fields = append(fields, job.FieldValidation)
	}
	if m.result != nil {
		fields = append(fields, job.FieldResult)
	}
	if m.error != nil {
		fields = append(fields, job.FieldError)
	}
	if m.lease_owner != nil {
		fields = append(fields, job.FieldLeaseOwner)
	}
	if m.lease_expires_at != nil {
		fields = append(fields, job.FieldLeaseExpiresAt)
	}
	if m.last_heartbeat_at != nil {
		fields = append(fields, job.FieldLastHeartbeatAt)
	}
	if m.attempts != nil {
		fields = append(fields, job.FieldAttempts)
	}
	if m.created_at != nil {
		fields = append(fields, job.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, job.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *JobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case job.FieldConversationID:
		return m.ConversationID()
	case job.FieldStatus:
		return m.Status()
	case job.FieldPriority:
		return m.Priority()
	case job.FieldSourceType:
		return m.SourceType()
	case job.FieldSourceMessageID:
		return m.SourceMessageID()
	case job.FieldDedupKey:
		return m.DedupKey()
	case job.FieldMetadata:
		return m.Metadata()
	case job.FieldPlan:
		return m.Plan()
	case job.FieldValidation:
		return m.Validation()
	case job.FieldResult:
		return m.Result()
	case job.FieldError:
		return m.Error()
	case job.FieldLeaseOwner:
		return m.LeaseOwner()
	case job.FieldLeaseExpiresAt:
		return m.LeaseExpiresAt()
	case job.FieldLastHeartbeatAt:
		return m.LastHeartbeatAt()
	case job.FieldAttempts:
		return m.Attempts()
	case job.FieldCreatedAt:
		return m.CreatedAt()
	case job.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *JobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case job.FieldConversationID:
		return m.OldConversationID(ctx)
	case job.FieldStatus:
		return m.OldStatus(ctx)
	case job.FieldPriority:
		return m.OldPriority(ctx)
	case job.FieldSourceType:
		return m.OldSourceType(ctx)
	case job.FieldSourceMessageID:
		return m.OldSourceMessageID(ctx)
	case job.FieldDedupKey:
		return m.OldDedupKey(ctx)
	case job.FieldMetadata:
		return m.OldMetadata(ctx)
	case job.FieldPlan:
		return m.OldPlan(ctx)
	case job.FieldValidation:
		return m.OldValidation(ctx)
	case job.FieldResult:
		return m.OldResult(ctx)
	case job.FieldError:
		return m.OldError(ctx)
	case job.FieldLeaseOwner:
		return m.OldLeaseOwner(ctx)
	case job.FieldLeaseExpiresAt:
		return m.OldLeaseExpiresAt(ctx)
	case job.FieldLastHeartbeatAt:
		return m.OldLastHeartbeatAt(ctx)
	case job.FieldAttempts:
		return m.OldAttempts(ctx)
	case job.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case job.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Job field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case job.FieldConversationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConversationID(v)
		return nil
	case job.FieldStatus:
		v, ok := value.(job.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case job.FieldPriority:
		v, ok := value.(job.Priority)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case job.FieldSourceType:
		v, ok := value.(job.SourceType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceType(v)
		return nil
	case job.FieldSourceMessageID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceMessageID(v)
		return nil
	case job.FieldDedupKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDedupKey(v)
		return nil
	case job.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case job.FieldPlan:
		v, ok := value.(*models.Plan)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlan(v)
		return nil
	case job.FieldValidation:
		v, ok := value.(*models.ValidationResult)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidation(v)
		return nil
	case job.FieldResult:
		v, ok := value.(*models.JobResult)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResult(v)
		return nil
	case job.FieldError:
		v, ok := value.(*models.CodedError)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetError(v)
		return nil
	case job.FieldLeaseOwner:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLeaseOwner(v)
		return nil
	case job.FieldLeaseExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLeaseExpiresAt(v)
		return nil
	case job.FieldLastHeartbeatAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastHeartbeatAt(v)
		return nil
	case job.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempts(v)
		return nil
	case job.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case job.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Job field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *JobMutation) AddedFields() []string {
	var fields []string
	if m.addattempts != nil {
		fields = append(fields, job.FieldAttempts)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *JobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case job.FieldAttempts:
		return m.AddedAttempts()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case job.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempts(v)
		return nil
	}
	return fmt.Errorf("unknown Job numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *JobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(job.FieldSourceMessageID) {
		fields = append(fields, job.FieldSourceMessageID)
	}
	if m.FieldCleared(job.FieldDedupKey) {
		fields = append(fields, job.FieldDedupKey)
	}
	if m.FieldCleared(job.FieldMetadata) {
		fields = append(fields, job.FieldMetadata)
	}
	if m.FieldCleared(job.FieldPlan) {
		fields = append(fields, job.FieldPlan)
	}
	if m.FieldCleared(job.FieldValidation) {
		fields = append(fields, job.FieldValidation)
	}
	if m.FieldCleared(job.FieldResult) {
		fields = append(fields, job.FieldResult)
	}
	if m.FieldCleared(job.FieldError) {
		fields = append(fields, job.FieldError)
	}
	if m.FieldCleared(job.FieldLeaseOwner) {
		fields = append(fields, job.FieldLeaseOwner)
	}
	if m.FieldCleared(job.FieldLeaseExpiresAt) {
		fields = append(fields, job.FieldLeaseExpiresAt)
	}
	if m.FieldCleared(job.FieldLastHeartbeatAt) {
		fields = append(fields, job.FieldLastHeartbeatAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *JobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *JobMutation) ClearField(name string) error {
	switch name {
	case job.FieldSourceMessageID:
		m.ClearSourceMessageID()
		return nil
	case job.FieldDedupKey:
		m.ClearDedupKey()
		return nil
	case job.FieldMetadata:
		m.ClearMetadata()
		return nil
	case job.FieldPlan:
		m.ClearPlan()
		return nil
	case job.FieldValidation:
		m.ClearValidation()
		return nil
	case job.FieldResult:
		m.ClearResult()
		return nil
	case job.FieldError:
		m.ClearError()
		return nil
	case job.FieldLeaseOwner:
		m.ClearLeaseOwner()
		return nil
	case job.FieldLeaseExpiresAt:
		m.ClearLeaseExpiresAt()
		return nil
	case job.FieldLastHeartbeatAt:
		m.ClearLastHeartbeatAt()
		return nil
	}
	return fmt.Errorf("unknown Job nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *JobMutation) ResetField(name string) error {
	switch name {
	case job.FieldConversationID:
		m.ResetConversationID()
		return nil
	case job.FieldStatus:
		m.ResetStatus()
		return nil
	case job.FieldPriority:
		m.ResetPriority()
		return nil
	case job.FieldSourceType:
		m.ResetSourceType()
		return nil
	case job.FieldSourceMessageID:
		m.ResetSourceMessageID()
		return nil
	case job.FieldDedupKey:
		m.ResetDedupKey()
		return nil
	case job.FieldMetadata:
		m.ResetMetadata()
		return nil
	case job.FieldPlan:
		m.ResetPlan()
		return nil
	case job.FieldValidation:
		m.ResetValidation()
		return nil
	case job.FieldResult:
		m.ResetResult()
		return nil
	case job.FieldError:
		m.ResetError()
		return nil
	case job.FieldLeaseOwner:
		m.ResetLeaseOwner()
		return nil
	case job.FieldLeaseExpiresAt:
		m.ResetLeaseExpiresAt()
		return nil
	case job.FieldLastHeartbeatAt:
		m.ResetLastHeartbeatAt()
		return nil
	case job.FieldAttempts:
		m.ResetAttempts()
		return nil
	case job.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case job.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Job field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *JobMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *JobMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *JobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *JobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *JobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *JobMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *JobMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Job unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *JobMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Job edge %s", name)
}

// LLMCallMutation represents an operation that mutates the LLMCall nodes in the graph.
type LLMCallMutation struct {
	config
	op               Op
	typ              string
	id               *string
	job_id           *string
	component        *string
	provider         *string
	model            *string
	input_tokens     *int
	addinput_tokens  *int
	output_tokens    *int
	addoutput_tokens *int
	cached_tokens    *int
	addcached_tokens *int
	cost_usd         *float64
	addcost_usd      *float64
	duration_ms      *int64
	addduration_ms   *int64
	created_at       *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*LLMCall, error)
	predicates       []predicate.LLMCall
}

var _ ent.Mutation = (*LLMCallMutation)(nil)

// llmcallOption allows management of the mutation configuration using functional options.
type llmcallOption func(*LLMCallMutation)

// newLLMCallMutation creates new mutation for the LLMCall entity.
func newLLMCallMutation(c config, op Op, opts ...llmcallOption) *LLMCallMutation {
	m := &LLMCallMutation{
		config:        c,
		op:            op,
		typ:           TypeLLMCall,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLLMCallID sets the ID field of the mutation.
func withLLMCallID(id string) llmcallOption {
	return func(m *LLMCallMutation) {
		var (
			err   error
			once  sync.Once
			value *LLMCall
		)
		m.oldValue = func(ctx context.Context) (*LLMCall, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LLMCall.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLLMCall sets the old LLMCall of the mutation.
func withLLMCall(node *LLMCall) llmcallOption {
	return func(m *LLMCallMutation) {
		m.oldValue = func(context.Context) (*LLMCall, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LLMCallMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LLMCallMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of LLMCall entities.
func (m *LLMCallMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LLMCallMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LLMCallMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LLMCall.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetJobID sets the "job_id" field.
func (m *LLMCallMutation) SetJobID(s string) {
	m.job_id = &s
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *LLMCallMutation) JobID() (r string, exists bool) {
	v := m.job_id
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the LLMCall entity.
// If the LLMCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMCallMutation) OldJobID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ClearJobID clears the value of the "job_id" field.
func (m *LLMCallMutation) ClearJobID() {
	m.job_id = nil
	m.clearedFields[llmcall.FieldJobID] = struct{}{}
}

// JobIDCleared returns if the "job_id" field was cleared in this mutation.
func (m *LLMCallMutation) JobIDCleared() bool {
	_, ok := m.clearedFields[llmcall.FieldJobID]
	return ok
}

// ResetJobID resets all changes to the "job_id" field.
func (m *LLMCallMutation) ResetJobID() {
	m.job_id = nil
	delete(m.clearedFields, llmcall.FieldJobID)
}

// SetComponent sets the "component" field.
func (m *LLMCallMutation) SetComponent(s string) {
	m.component = &s
}

// Component returns the value of the "component" field in the mutation.
func (m *LLMCallMutation) Component() (r string, exists bool) {
	v := m.component
	if v == nil {
		return
	}
	return *v, true
}

// OldComponent returns the old "component" field's value of the LLMCall entity.
// If the LLMCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMCallMutation) OldComponent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldComponent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldComponent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldComponent: %w", err)
	}
	return oldValue.Component, nil
}

// ResetComponent resets all changes to the "component" field.
func (m *LLMCallMutation) ResetComponent() {
	m.component = nil
}

// SetProvider sets the "provider" field.
func (m *LLMCallMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *LLMCallMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the LLMCall entity.
// If the LLMCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMCallMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *LLMCallMutation) ResetProvider() {
	m.provider = nil
}

// SetModel sets the "model" field.
func (m *LLMCallMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *LLMCallMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the LLMCall entity.
// If the LLMCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMCallMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *LLMCallMutation) ResetModel() {
	m.model = nil
}

// SetInputTokens sets the "input_tokens" field.
func (m *LLMCallMutation) SetInputTokens(i int) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *LLMCallMutation) InputTokens() (r int, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the LLMCall entity.
// If the LLMCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMCallMutation) OldInputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *LLMCallMutation) AddInputTokens(i int) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *LLMCallMutation) AddedInputTokens() (r int, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *LLMCallMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
}

// SetOutputTokens sets the "output_tokens" field.
func (m *LLMCallMutation) SetOutputTokens(i int) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *LLMCallMutation) OutputTokens() (r int, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the LLMCall entity.
// If the LLMCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMCallMutation) OldOutputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *LLMCallMutation) AddOutputTokens(i int) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *LLMCallMutation) AddedOutputTokens() (r int, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *LLMCallMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
}

// SetCachedTokens sets the "cached_tokens" field.
func (m *LLMCallMutation) SetCachedTokens(i int) {
	m.cached_tokens = &i
	m.addcached_tokens = nil
}

// CachedTokens returns the value of the "cached_tokens" field in the mutation.
func (m *LLMCallMutation) CachedTokens() (r int, exists bool) {
	v := m.cached_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldCachedTokens returns the old "cached_tokens" field's value of the LLMCall entity.
// If the LLMCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMCallMutation) OldCachedTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCachedTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCachedTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCachedTokens: %w", err)
	}
	return oldValue.CachedTokens, nil
}

// AddCachedTokens adds i to the "cached_tokens" field.
func (m *LLMCallMutation) AddCachedTokens(i int) {
	if m.addcached_tokens != nil {
		*m.addcached_tokens += i
	} else {
		m.addcached_tokens = &i
	}
}

// AddedCachedTokens returns the value that was added to the "cached_tokens" field in this mutation.
func (m *LLMCallMutation) AddedCachedTokens() (r int, exists bool) {
	v := m.addcached_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetCachedTokens resets all changes to the "cached_tokens" field.
func (m *LLMCallMutation) ResetCachedTokens() {
	m.cached_tokens = nil
	m.addcached_tokens = nil
}

// SetCostUsd sets the "cost_usd" field.
func (m *LLMCallMutation) SetCostUsd(f float64) {
	m.cost_usd = &f
	m.addcost_usd = nil
}

// CostUsd returns the value of the "cost_usd" field in the mutation.
func (m *LLMCallMutation) CostUsd() (r float64, exists bool) {
	v := m.cost_usd
	if v == nil {
		return
	}
	return *v, true
}

// OldCostUsd returns the old "cost_usd" field's value of the LLMCall entity.
// If the LLMCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMCallMutation) OldCostUsd(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCostUsd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCostUsd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCostUsd: %w", err)
	}
	return oldValue.CostUsd, nil
}

// AddCostUsd adds f to the "cost_usd" field.
func (m *LLMCallMutation) AddCostUsd(f float64) {
	if m.addcost_usd != nil {
		*m.addcost_usd += f
	} else {
		m.addcost_usd = &f
	}
}

// AddedCostUsd returns the value that was added to the "cost_usd" field in this mutation.
func (m *LLMCallMutation) AddedCostUsd() (r float64, exists bool) {
	v := m.addcost_usd
	if v == nil {
		return
	}
	return *v, true
}

// ResetCostUsd resets all changes to the "cost_usd" field.
func (m *LLMCallMutation) ResetCostUsd() {
	m.cost_usd = nil
	m.addcost_usd = nil
}

// SetDurationMs sets the "duration_ms" field.
func (m *LLMCallMutation) SetDurationMs(i int64) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *LLMCallMutation) DurationMs() (r int64, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the LLMCall entity.
// If the LLMCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMCallMutation) OldDurationMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *LLMCallMutation) AddDurationMs(i int64) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *LLMCallMutation) AddedDurationMs() (r int64, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *LLMCallMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *LLMCallMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LLMCallMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the LLMCall entity.
// If the LLMCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMCallMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *LLMCallMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the LLMCallMutation builder.
func (m *LLMCallMutation) Where(ps ...predicate.LLMCall) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LLMCallMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LLMCallMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LLMCall, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LLMCallMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LLMCallMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LLMCall).
func (m *LLMCallMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LLMCallMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.job_id != nil {
		fields = append(fields, llmcall.FieldJobID)
	}
	if m.component != nil {
		fields = append(fields, llmcall.FieldComponent)
	}
	if m.provider != nil {
		fields = append(fields, llmcall.FieldProvider)
	}
	if m.model != nil {
		fields = append(fields, llmcall.FieldModel)
	}
	if m.input_tokens != nil {
		fields = append(fields, llmcall.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, llmcall.FieldOutputTokens)
	}
	if m.cached_tokens != nil {
		fields = append(fields, llmcall.FieldCachedTokens)
	}
	if m.cost_usd != nil {
		fields = append(fields, llmcall.FieldCostUsd)
	}
	if m.duration_ms != nil {
		fields = append(fields, llmcall.FieldDurationMs)
	}
	if m.created_at != nil {
		fields = append(fields, llmcall.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LLMCallMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case llmcall.FieldJobID:
		return m.JobID()
	case llmcall.FieldComponent:
		return m.Component()
	case llmcall.FieldProvider:
		return m.Provider()
	case llmcall.FieldModel:
		return m.Model()
	case llmcall.FieldInputTokens:
		return m.InputTokens()
	case llmcall.FieldOutputTokens:
		return m.OutputTokens()
	case llmcall.FieldCachedTokens:
		return m.CachedTokens()
	case llmcall.FieldCostUsd:
		return m.CostUsd()
	case llmcall.FieldDurationMs:
		return m.DurationMs()
	case llmcall.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LLMCallMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case llmcall.FieldJobID:
		return m.OldJobID(ctx)
	case llmcall.FieldComponent:
		return m.OldComponent(ctx)
	case llmcall.FieldProvider:
		return m.OldProvider(ctx)
	case llmcall.FieldModel:
		return m.OldModel(ctx)
	case llmcall.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case llmcall.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case llmcall.FieldCachedTokens:
		return m.OldCachedTokens(ctx)
	case llmcall.FieldCostUsd:
		return m.OldCostUsd(ctx)
	case llmcall.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case llmcall.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown LLMCall field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMCallMutation) SetField(name string, value ent.Value) error {
	switch name {
	case llmcall.FieldJobID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case llmcall.FieldComponent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetComponent(v)
		return nil
	case llmcall.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case llmcall.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case llmcall.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case llmcall.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case llmcall.FieldCachedTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCachedTokens(v)
		return nil
	case llmcall.FieldCostUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCostUsd(v)
		return nil
	case llmcall.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case llmcall.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown LLMCall field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LLMCallMutation) AddedFields() []string {
	var fields []string
	if m.addinput_tokens != nil {
		fields = append(fields, llmcall.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, llmcall.FieldOutputTokens)
	}
	if m.addcached_tokens != nil {
		fields = append(fields, llmcall.FieldCachedTokens)
	}
	if m.addcost_usd != nil {
		fields = append(fields, llmcall.FieldCostUsd)
	}
	if m.addduration_ms != nil {
		fields = append(fields, llmcall.FieldDurationMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LLMCallMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case llmcall.FieldInputTokens:
		return m.AddedInputTokens()
	case llmcall.FieldOutputTokens:
		return m.AddedOutputTokens()
	case llmcall.FieldCachedTokens:
		return m.AddedCachedTokens()
	case llmcall.FieldCostUsd:
		return m.AddedCostUsd()
	case llmcall.FieldDurationMs:
		return m.AddedDurationMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMCallMutation) AddField(name string, value ent.Value) error {
	switch name {
	case llmcall.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case llmcall.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	case llmcall.FieldCachedTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCachedTokens(v)
		return nil
	case llmcall.FieldCostUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCostUsd(v)
		return nil
	case llmcall.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown LLMCall numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LLMCallMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(llmcall.FieldJobID) {
		fields = append(fields, llmcall.FieldJobID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LLMCallMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LLMCallMutation) ClearField(name string) error {
	switch name {
	case llmcall.FieldJobID:
		m.ClearJobID()
		return nil
	}
	return fmt.Errorf("unknown LLMCall nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LLMCallMutation) ResetField(name string) error {
	switch name {
	case llmcall.FieldJobID:
		m.ResetJobID()
		return nil
	case llmcall.FieldComponent:
		m.ResetComponent()
		return nil
	case llmcall.FieldProvider:
		m.ResetProvider()
		return nil
	case llmcall.FieldModel:
		m.ResetModel()
		return nil
	case llmcall.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case llmcall.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case llmcall.FieldCachedTokens:
		m.ResetCachedTokens()
		return nil
	case llmcall.FieldCostUsd:
		m.ResetCostUsd()
		return nil
	case llmcall.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case llmcall.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown LLMCall field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LLMCallMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LLMCallMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LLMCallMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LLMCallMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LLMCallMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LLMCallMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LLMCallMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LLMCall unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LLMCallMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LLMCall edge %s", name)
}

// StandingRuleMutation represents an operation that mutates the StandingRule nodes in the graph.
type StandingRuleMutation struct {
	config
	op                Op
	typ               string
	id                *string
	action_pattern    *string
	scope             *standingrule.Scope
	verdict           *standingrule.Verdict
	created_by        *string
	approval_count    *int
	addapproval_count *int
	created_at        *time.Time
	expires_at        *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*StandingRule, error)
	predicates        []predicate.StandingRule
}

var _ ent.Mutation = (*StandingRuleMutation)(nil)

// standingruleOption allows management of the mutation configuration using functional options.
type standingruleOption func(*StandingRuleMutation)

// newStandingRuleMutation creates new mutation for the StandingRule entity.
func newStandingRuleMutation(c config, op Op, opts ...standingruleOption) *StandingRuleMutation {
	m := &StandingRuleMutation{
		config:        c,
		op:            op,
		typ:           TypeStandingRule,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStandingRuleID sets the ID field of the mutation.
func withStandingRuleID(id string) standingruleOption {
	return func(m *StandingRuleMutation) {
		var (
			err   error
			once  sync.Once
			value *StandingRule
		)
		m.oldValue = func(ctx context.Context) (*StandingRule, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StandingRule.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStandingRule sets the old StandingRule of the mutation.
func withStandingRule(node *StandingRule) standingruleOption {
	return func(m *StandingRuleMutation) {
		m.oldValue = func(context.Context) (*StandingRule, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StandingRuleMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StandingRuleMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of StandingRule entities.
func (m *StandingRuleMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StandingRuleMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StandingRuleMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StandingRule.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetActionPattern sets the "action_pattern" field.
func (m *StandingRuleMutation) SetActionPattern(s string) {
	m.action_pattern = &s
}

// ActionPattern returns the value of the "action_pattern" field in the mutation.
func (m *StandingRuleMutation) ActionPattern() (r string, exists bool) {
	v := m.action_pattern
	if v == nil {
		return
	}
	return *v, true
}

// OldActionPattern returns the old "action_pattern" field's value of the StandingRule entity.
// If the StandingRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StandingRuleMutation) OldActionPattern(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActionPattern is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActionPattern requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActionPattern: %w", err)
	}
	return oldValue.ActionPattern, nil
}

// ResetActionPattern resets all changes to the "action_pattern" field.
func (m *StandingRuleMutation) ResetActionPattern() {
	m.action_pattern = nil
}

// SetScope sets the "scope" field.
func (m *StandingRuleMutation) SetScope(s standingrule.Scope) {
	m.scope = &s
}

// Scope returns the value of the "scope" field in the mutation.
func (m *StandingRuleMutation) Scope() (r standingrule.Scope, exists bool) {
	v := m.scope
	if v == nil {
		return
	}
	return *v, true
}

// OldScope returns the old "scope" field's value of the StandingRule entity.
// If the StandingRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StandingRuleMutation) OldScope(ctx context.Context) (v standingrule.Scope, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScope is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScope requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScope: %w", err)
	}
	return oldValue.Scope, nil
}

// ResetScope resets all changes to the "scope" field.
func (m *StandingRuleMutation) ResetScope() {
	m.scope = nil
}

// SetVerdict sets the "verdict" field.
func (m *StandingRuleMutation) SetVerdict(s standingrule.Verdict) {
	m.verdict = &s
}

// Verdict returns the value of the "verdict" field in the mutation.
func (m *StandingRuleMutation) Verdict() (r standingrule.Verdict, exists bool) {
	v := m.verdict
	if v == nil {
		return
	}
	return *v, true
}

// OldVerdict returns the old "verdict" field's value of the StandingRule entity.
// If the StandingRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StandingRuleMutation) OldVerdict(ctx context.Context) (v standingrule.Verdict, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVerdict is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVerdict requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVerdict: %w", err)
	}
	return oldValue.Verdict, nil
}

// ResetVerdict resets all changes to the "verdict" field.
func (m *StandingRuleMutation) ResetVerdict() {
	m.verdict = nil
}

// SetCreatedBy sets the "created_by" field.
func (m *StandingRuleMutation) SetCreatedBy(s string) {
	m.created_by = &s
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *StandingRuleMutation) CreatedBy() (r string, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the StandingRule entity.
// If the StandingRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StandingRuleMutation) OldCreatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *StandingRuleMutation) ResetCreatedBy() {
	m.created_by = nil
}

// SetApprovalCount sets the "approval_count" field.
func (m *StandingRuleMutation) SetApprovalCount(i int) {
	m.approval_count = &i
	m.addapproval_count = nil
}

// ApprovalCount returns the value of the "approval_count" field in the mutation.
func (m *StandingRuleMutation) ApprovalCount() (r int, exists bool) {
	v := m.approval_count
	if v == nil {
		return
	}
	return *v, true
}

// OldApprovalCount returns the old "approval_count" field's value of the StandingRule entity.
// If the StandingRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StandingRuleMutation) OldApprovalCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApprovalCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApprovalCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApprovalCount: %w", err)
	}
	return oldValue.ApprovalCount, nil
}

// AddApprovalCount adds i to the "approval_count" field.
func (m *StandingRuleMutation) AddApprovalCount(i int) {
	if m.addapproval_count != nil {
		*m.addapproval_count += i
	} else {
		m.addapproval_count = &i
	}
}

// AddedApprovalCount returns the value that was added to the "approval_count" field in this mutation.
func (m *StandingRuleMutation) AddedApprovalCount() (r int, exists bool) {
	v := m.addapproval_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetApprovalCount resets all changes to the "approval_count" field.
func (m *StandingRuleMutation) ResetApprovalCount() {
	m.approval_count = nil
	m.addapproval_count = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *StandingRuleMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *StandingRuleMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the StandingRule entity.
// If the StandingRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StandingRuleMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *StandingRuleMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetExpiresAt sets the "expires_at" field.
func (m *StandingRuleMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *StandingRuleMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the StandingRule entity.
// If the StandingRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StandingRuleMutation) OldExpiresAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (m *StandingRuleMutation) ClearExpiresAt() {
	m.expires_at = nil
	m.clearedFields[standingrule.FieldExpiresAt] = struct{}{}
}

// ExpiresAtCleared returns if the "expires_at" field was cleared in this mutation.
func (m *StandingRuleMutation) ExpiresAtCleared() bool {
	_, ok := m.clearedFields[standingrule.FieldExpiresAt]
	return ok
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *StandingRuleMutation) ResetExpiresAt() {
	m.expires_at = nil
	delete(m.clearedFields, standingrule.FieldExpiresAt)
}

// Where appends a list predicates to the StandingRuleMutation builder.
func (m *StandingRuleMutation) Where(ps ...predicate.StandingRule) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StandingRuleMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StandingRuleMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StandingRule, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StandingRuleMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StandingRuleMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StandingRule).
func (m *StandingRuleMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StandingRuleMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.action_pattern != nil {
		fields = append(fields, standingrule.FieldActionPattern)
	}
	if m.scope != nil {
		fields = append(fields, standingrule.FieldScope)
	}
	if m.verdict != nil {
		fields = append(fields, standingrule.FieldVerdict)
	}
	if m.created_by != nil {
		fields = append(fields, standingrule.FieldCreatedBy)
	}
	if m.approval_count != nil {
		fields = append(fields, standingrule.FieldApprovalCount)
	}
	if m.created_at != nil {
		fields = append(fields, standingrule.FieldCreatedAt)
	}
	if m.expires_at != nil {
		fields = append(fields, standingrule.FieldExpiresAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StandingRuleMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case standingrule.FieldActionPattern:
		return m.ActionPattern()
	case standingrule.FieldScope:
		return m.Scope()
	case standingrule.FieldVerdict:
		return m.Verdict()
	case standingrule.FieldCreatedBy:
		return m.CreatedBy()
	case standingrule.FieldApprovalCount:
		return m.ApprovalCount()
	case standingrule.FieldCreatedAt:
		return m.CreatedAt()
	case standingrule.FieldExpiresAt:
		return m.ExpiresAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StandingRuleMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case standingrule.FieldActionPattern:
		return m.OldActionPattern(ctx)
	case standingrule.FieldScope:
		return m.OldScope(ctx)
	case standingrule.FieldVerdict:
		return m.OldVerdict(ctx)
	case standingrule.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	case standingrule.FieldApprovalCount:
		return m.OldApprovalCount(ctx)
	case standingrule.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case standingrule.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	}
	return nil, fmt.Errorf("unknown StandingRule field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StandingRuleMutation) SetField(name string, value ent.Value) error {
	switch name {
	case standingrule.FieldActionPattern:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActionPattern(v)
		return nil
	case standingrule.FieldScope:
		v, ok := value.(standingrule.Scope)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScope(v)
		return nil
	case standingrule.FieldVerdict:
		v, ok := value.(standingrule.Verdict)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVerdict(v)
		return nil
	case standingrule.FieldCreatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	case standingrule.FieldApprovalCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApprovalCount(v)
		return nil
	case standingrule.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case standingrule.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	}
	return fmt.Errorf("unknown StandingRule field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StandingRuleMutation) AddedFields() []string {
	var fields []string
	if m.addapproval_count != nil {
		fields = append(fields, standingrule.FieldApprovalCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StandingRuleMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case standingrule.FieldApprovalCount:
		return m.AddedApprovalCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StandingRuleMutation) AddField(name string, value ent.Value) error {
	switch name {
	case standingrule.FieldApprovalCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddApprovalCount(v)
		return nil
	}
	return fmt.Errorf("unknown StandingRule numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StandingRuleMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(standingrule.FieldExpiresAt) {
		fields = append(fields, standingrule.FieldExpiresAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StandingRuleMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StandingRuleMutation) ClearField(name string) error {
	switch name {
	case standingrule.FieldExpiresAt:
		m.ClearExpiresAt()
		return nil
	}
	return fmt.Errorf("unknown StandingRule nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StandingRuleMutation) ResetField(name string) error {
	switch name {
	case standingrule.FieldActionPattern:
		m.ResetActionPattern()
		return nil
	case standingrule.FieldScope:
		m.ResetScope()
		return nil
	case standingrule.FieldVerdict:
		m.ResetVerdict()
		return nil
	case standingrule.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	case standingrule.FieldApprovalCount:
		m.ResetApprovalCount()
		return nil
	case standingrule.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case standingrule.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	}
	return fmt.Errorf("unknown StandingRule field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StandingRuleMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StandingRuleMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StandingRuleMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StandingRuleMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StandingRuleMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StandingRuleMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StandingRuleMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown StandingRule unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StandingRuleMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown StandingRule edge %s", name)
}
