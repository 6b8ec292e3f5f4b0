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
	"github.com/gearbox-dev/gearbox/ent/job"
	"github.com/gearbox-dev/gearbox/pkg/models"
)

// JobCreate is the builder for creating a Job entity.
type JobCreate struct {
	config
	mutation *JobMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetConversationID sets the "conversation_id" field.
func (_c *JobCreate) SetConversationID(v string) *JobCreate {
	_c.mutation.SetConversationID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *JobCreate) SetStatus(v job.Status) *JobCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *JobCreate) SetNillableStatus(v *job.Status) *JobCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetPriority sets the "priority" field.
func (_c *JobCreate) SetPriority(v job.Priority) *JobCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *JobCreate) SetNillablePriority(v *job.Priority) *JobCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetSourceType sets the "source_type" field.
func (_c *JobCreate) SetSourceType(v job.SourceType) *JobCreate {
	_c.mutation.SetSourceType(v)
	return _c
}

// SetNillableSourceType sets the "source_type" field if the given value is not nil.
func (_c *JobCreate) SetNillableSourceType(v *job.SourceType) *JobCreate {
	if v != nil {
		_c.SetSourceType(*v)
	}
	return _c
}

// SetSourceMessageID sets the "source_message_id" field.
func (_c *JobCreate) SetSourceMessageID(v string) *JobCreate {
	_c.mutation.SetSourceMessageID(v)
	return _c
}

// SetNillableSourceMessageID sets the "source_message_id" field if the given value is not nil.
func (_c *JobCreate) SetNillableSourceMessageID(v *string) *JobCreate {
	if v != nil {
		_c.SetSourceMessageID(*v)
	}
	return _c
}

// SetDedupKey sets the "dedup_key" field.
func (_c *JobCreate) SetDedupKey(v string) *JobCreate {
	_c.mutation.SetDedupKey(v)
	return _c
}

// SetNillableDedupKey sets the "dedup_key" field if the given value is not nil.
func (_c *JobCreate) SetNillableDedupKey(v *string) *JobCreate {
	if v != nil {
		_c.SetDedupKey(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *JobCreate) SetMetadata(v map[string]interface{}) *JobCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetPlan sets the "plan" field.
func (_c *JobCreate) SetPlan(v *models.Plan) *JobCreate {
	_c.mutation.SetPlan(v)
	return _c
}

// SetValidation sets the "validation" field.
func (_c *JobCreate) SetValidation(v *models.ValidationResult) *JobCreate {
	_c.mutation.SetValidation(v)
	return _c
}

// SetResult sets the "result" field.
func (_c *JobCreate) SetResult(v *models.JobResult) *JobCreate {
	_c.mutation.SetResult(v)
	return _c
}

// SetError sets the "error" field.
func (_c *JobCreate) SetError(v *models.CodedError) *JobCreate {
	_c.mutation.SetError(v)
	return _c
}

// SetLeaseOwner sets the "lease_owner" field.
func (_c *JobCreate) SetLeaseOwner(v string) *JobCreate {
	_c.mutation.SetLeaseOwner(v)
	return _c
}

// SetNillableLeaseOwner sets the "lease_owner" field if the given value is not nil.
func (_c *JobCreate) SetNillableLeaseOwner(v *string) *JobCreate {
	if v != nil {
		_c.SetLeaseOwner(*v)
	}
	return _c
}

// SetLeaseExpiresAt sets the "lease_expires_at" field.
func (_c *JobCreate) SetLeaseExpiresAt(v time.Time) *JobCreate {
	_c.mutation.SetLeaseExpiresAt(v)
	return _c
}

// SetNillableLeaseExpiresAt sets the "lease_expires_at" field if the given value is not nil.
func (_c *JobCreate) SetNillableLeaseExpiresAt(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetLeaseExpiresAt(*v)
	}
	return _c
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_c *JobCreate) SetLastHeartbeatAt(v time.Time) *JobCreate {
	_c.mutation.SetLastHeartbeatAt(v)
	return _c
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_c *JobCreate) SetNillableLastHeartbeatAt(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetLastHeartbeatAt(*v)
	}
	return _c
}

// SetAttempts sets the "attempts" field.
func (_c *JobCreate) SetAttempts(v int) *JobCreate {
	_c.mutation.SetAttempts(v)
	return _c
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_c *JobCreate) SetNillableAttempts(v *int) *JobCreate {
	if v != nil {
		_c.SetAttempts(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *JobCreate) SetCreatedAt(v time.Time) *JobCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *JobCreate) SetNillableCreatedAt(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *JobCreate) SetUpdatedAt(v time.Time) *JobCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *JobCreate) SetNillableUpdatedAt(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *JobCreate) SetID(v string) *JobCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the JobMutation object of the builder.
func (_c *JobCreate) Mutation() *JobMutation {
	return _c.mutation
}

// Save creates the Job in the database.
func (_c *JobCreate) Save(ctx context.Context) (*Job, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *JobCreate) SaveX(ctx context.Context) *Job {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *JobCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := job.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Priority(); !ok {
		v := job.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.SourceType(); !ok {
		v := job.DefaultSourceType
		_c.mutation.SetSourceType(v)
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		v := job.DefaultAttempts
		_c.mutation.SetAttempts(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := job.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := job.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *JobCreate) check() error {
	if _, ok := _c.mutation.ConversationID(); !ok {
		return &ValidationError{Name: "conversation_id", err: errors.New(`ent: missing required field "Job.conversation_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Job.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := job.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Job.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "Job.priority"`)}
	}
	if v, ok := _c.mutation.Priority(); ok {
		if err := job.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Job.priority": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SourceType(); !ok {
		return &ValidationError{Name: "source_type", err: errors.New(`ent: missing required field "Job.source_type"`)}
	}
	if v, ok := _c.mutation.SourceType(); ok {
		if err := job.SourceTypeValidator(v); err != nil {
			return &ValidationError{Name: "source_type", err: fmt.Errorf(`ent: validator failed for field "Job.source_type": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Plan(); ok {
		if err := v.Validate(); err != nil {
			return &ValidationError{Name: "plan", err: fmt.Errorf(`ent: validator failed for field "Job.plan": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		return &ValidationError{Name: "attempts", err: errors.New(`ent: missing required field "Job.attempts"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Job.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Job.updated_at"`)}
	}
	return nil
}

func (_c *JobCreate) sqlSave(ctx context.Context) (*Job, error) {
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
			return nil, fmt.Errorf("unexpected Job.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *JobCreate) createSpec() (*Job, *sqlgraph.CreateSpec) {
	var (
		_node = &Job{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(job.Table, sqlgraph.NewFieldSpec(job.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ConversationID(); ok {
		_spec.SetField(job.FieldConversationID, field.TypeString, value)
		_node.ConversationID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(job.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(job.FieldPriority, field.TypeEnum, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.SourceType(); ok {
		_spec.SetField(job.FieldSourceType, field.TypeEnum, value)
		_node.SourceType = value
	}
	if value, ok := _c.mutation.SourceMessageID(); ok {
		_spec.SetField(job.FieldSourceMessageID, field.TypeString, value)
		_node.SourceMessageID = &value
	}
	if value, ok := _c.mutation.DedupKey(); ok {
		_spec.SetField(job.FieldDedupKey, field.TypeString, value)
		_node.DedupKey = &value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(job.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.Plan(); ok {
		_spec.SetField(job.FieldPlan, field.TypeJSON, value)
		_node.Plan = value
	}
	if value, ok := _c.mutation.Validation(); ok {
		_spec.SetField(job.FieldValidation, field.TypeJSON, value)
		_node.Validation = value
	}
	if value, ok := _c.mutation.Result(); ok {
		_spec.SetField(job.FieldResult, field.TypeJSON, value)
		_node.Result = value
	}
	if value, ok := _c.mutation.Error(); ok {
		_spec.SetField(job.FieldError, field.TypeJSON, value)
		_node.Error = value
	}
	if value, ok := _c.mutation.LeaseOwner(); ok {
		_spec.SetField(job.FieldLeaseOwner, field.TypeString, value)
		_node.LeaseOwner = &value
	}
	if value, ok := _c.mutation.LeaseExpiresAt(); ok {
		_spec.SetField(job.FieldLeaseExpiresAt, field.TypeTime, value)
		_node.LeaseExpiresAt = &value
	}
	if value, ok := _c.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(job.FieldLastHeartbeatAt, field.TypeTime, value)
		_node.LastHeartbeatAt = &value
	}
	if value, ok := _c.mutation.Attempts(); ok {
		_spec.SetField(job.FieldAttempts, field.TypeInt, value)
		_node.Attempts = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(job.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(job.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Job.Create().
//		SetConversationID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.JobUpsert) {
//			SetConversationID(v+v).
//		}).
//		Exec(ctx)
func (_c *JobCreate) OnConflict(opts ...sql.ConflictOption) *JobUpsertOne {
	_c.conflict = opts
	return &JobUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Job.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *JobCreate) OnConflictColumns(columns ...string) *JobUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &JobUpsertOne{
		create: _c,
	}
}

type (
	// JobUpsertOne is the builder for "upsert"-ing
	//  one Job node.
	JobUpsertOne struct {
		create *JobCreate
	}

	// JobUpsert is the "OnConflict" setter.
	JobUpsert struct {
		*sql.UpdateSet
	}
)

// SetConversationID sets the "conversation_id" field.
func (u *JobUpsert) SetConversationID(v string) *JobUpsert {
	u.Set(job.FieldConversationID, v)
	return u
}

// UpdateConversationID sets the "conversation_id" field to the value that was provided on create.
func (u *JobUpsert) UpdateConversationID() *JobUpsert {
	u.SetExcluded(job.FieldConversationID)
	return u
}

// SetStatus sets the "status" field.
func (u *JobUpsert) SetStatus(v job.Status) *JobUpsert {
	u.Set(job.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *JobUpsert) UpdateStatus() *JobUpsert {
	u.SetExcluded(job.FieldStatus)
	return u
}

// SetPriority sets the "priority" field.
func (u *JobUpsert) SetPriority(v job.Priority) *JobUpsert {
	u.Set(job.FieldPriority, v)
	return u
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *JobUpsert) UpdatePriority() *JobUpsert {
	u.SetExcluded(job.FieldPriority)
	return u
}

// SetSourceType sets the "source_type" field.
func (u *JobUpsert) SetSourceType(v job.SourceType) *JobUpsert {
	u.Set(job.FieldSourceType, v)
	return u
}

// UpdateSourceType sets the "source_type" field to the value that was provided on create.
func (u *JobUpsert) UpdateSourceType() *JobUpsert {
	u.SetExcluded(job.FieldSourceType)
	return u
}

// SetSourceMessageID sets the "source_message_id" field.
func (u *JobUpsert) SetSourceMessageID(v string) *JobUpsert {
	u.Set(job.FieldSourceMessageID, v)
	return u
}

// UpdateSourceMessageID sets the "source_message_id" field to the value that was provided on create.
func (u *JobUpsert) UpdateSourceMessageID() *JobUpsert {
	u.SetExcluded(job.FieldSourceMessageID)
	return u
}

// ClearSourceMessageID clears the value of the "source_message_id" field.
func (u *JobUpsert) ClearSourceMessageID() *JobUpsert {
	u.SetNull(job.FieldSourceMessageID)
	return u
}

// SetDedupKey sets the "dedup_key" field.
func (u *JobUpsert) SetDedupKey(v string) *JobUpsert {
	u.Set(job.FieldDedupKey, v)
	return u
}

// UpdateDedupKey sets the "dedup_key" field to the value that was provided on create.
func (u *JobUpsert) UpdateDedupKey() *JobUpsert {
	u.SetExcluded(job.FieldDedupKey)
	return u
}

// ClearDedupKey clears the value of the "dedup_key" field.
func (u *JobUpsert) ClearDedupKey() *JobUpsert {
	u.SetNull(job.FieldDedupKey)
	return u
}

// SetMetadata sets the "metadata" field.
func (u *JobUpsert) SetMetadata(v map[string]interface{}) *JobUpsert {
	u.Set(job.FieldMetadata, v)
	return u
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *JobUpsert) UpdateMetadata() *JobUpsert {
	u.SetExcluded(job.FieldMetadata)
	return u
}

// ClearMetadata clears the value of the "metadata" field.
func (u *JobUpsert) ClearMetadata() *JobUpsert {
	u.SetNull(job.FieldMetadata)
	return u
}

// SetPlan sets the "plan" field.
func (u *JobUpsert) SetPlan(v *models.Plan) *JobUpsert {
	u.Set(job.FieldPlan, v)
	return u
}

// UpdatePlan sets the "plan" field to the value that was provided on create.
func (u *JobUpsert) UpdatePlan() *JobUpsert {
	u.SetExcluded(job.FieldPlan)
	return u
}

// ClearPlan clears the value of the "plan" field.
func (u *JobUpsert) ClearPlan() *JobUpsert {
	u.SetNull(job.FieldPlan)
	return u
}

// SetValidation sets the "validation" field.
func (u *JobUpsert) SetValidation(v *models.ValidationResult) *JobUpsert {
	u.Set(job.FieldValidation, v)
	return u
}

// UpdateValidation sets the "validation" field to the value that was provided on create.
func (u *JobUpsert) UpdateValidation() *JobUpsert {
	u.SetExcluded(job.FieldValidation)
	return u
}

// ClearValidation clears the value of the "validation" field.
func (u *JobUpsert) ClearValidation() *JobUpsert {
	u.SetNull(job.FieldValidation)
	return u
}

// SetResult sets the "result" field.
func (u *JobUpsert) SetResult(v *models.JobResult) *JobUpsert {
	u.Set(job.FieldResult, v)
	return u
}

// UpdateResult sets the "result" field to the value that was provided on create.
func (u *JobUpsert) UpdateResult() *JobUpsert {
	u.SetExcluded(job.FieldResult)
	return u
}

// ClearResult clears the value of the "result" field.
func (u *JobUpsert) ClearResult() *JobUpsert {
	u.SetNull(job.FieldResult)
	return u
}

// SetError sets the "error" field.
func (u *JobUpsert) SetError(v *models.CodedError) *JobUpsert {
	u.Set(job.FieldError, v)
	return u
}

// UpdateError sets the "error" field to the value that was provided on create.
func (u *JobUpsert) UpdateError() *JobUpsert {
	u.SetExcluded(job.FieldError)
	return u
}

// ClearError clears the value of the "error" field.
func (u *JobUpsert) ClearError() *JobUpsert {
	u.SetNull(job.FieldError)
	return u
}

// SetLeaseOwner sets the "lease_owner" field.
func (u *JobUpsert) SetLeaseOwner(v string) *JobUpsert {
	u.Set(job.FieldLeaseOwner, v)
	return u
}

// UpdateLeaseOwner sets the "lease_owner" field to the value that was provided on create.
func (u *JobUpsert) UpdateLeaseOwner() *JobUpsert {
	u.SetExcluded(job.FieldLeaseOwner)
	return u
}

// ClearLeaseOwner clears the value of the "lease_owner" field.
func (u *JobUpsert) ClearLeaseOwner() *JobUpsert {
	u.SetNull(job.FieldLeaseOwner)
	return u
}

// SetLeaseExpiresAt sets the "lease_expires_at" field.
func (u *JobUpsert) SetLeaseExpiresAt(v time.Time) *JobUpsert {
	u.Set(job.FieldLeaseExpiresAt, v)
	return u
}

// UpdateLeaseExpiresAt sets the "lease_expires_at" field to the value that was provided on create.
func (u *JobUpsert) UpdateLeaseExpiresAt() *JobUpsert {
	u.SetExcluded(job.FieldLeaseExpiresAt)
	return u
}

// ClearLeaseExpiresAt clears the value of the "lease_expires_at" field.
func (u *JobUpsert) ClearLeaseExpiresAt() *JobUpsert {
	u.SetNull(job.FieldLeaseExpiresAt)
	return u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (u *JobUpsert) SetLastHeartbeatAt(v time.Time) *JobUpsert {
	u.Set(job.FieldLastHeartbeatAt, v)
	return u
}

// UpdateLastHeartbeatAt sets the "last_heartbeat_at" field to the value that was provided on create.
func (u *JobUpsert) UpdateLastHeartbeatAt() *JobUpsert {
	u.SetExcluded(job.FieldLastHeartbeatAt)
	return u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (u *JobUpsert) ClearLastHeartbeatAt() *JobUpsert {
	u.SetNull(job.FieldLastHeartbeatAt)
	return u
}

// SetAttempts sets the "attempts" field.
func (u *JobUpsert) SetAttempts(v int) *JobUpsert {
	u.Set(job.FieldAttempts, v)
	return u
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *JobUpsert) UpdateAttempts() *JobUpsert {
	u.SetExcluded(job.FieldAttempts)
	return u
}

// AddAttempts adds v to the "attempts" field.
func (u *JobUpsert) AddAttempts(v int) *JobUpsert {
	u.Add(job.FieldAttempts, v)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *JobUpsert) SetUpdatedAt(v time.Time) *JobUpsert {
	u.Set(job.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *JobUpsert) UpdateUpdatedAt() *JobUpsert {
	u.SetExcluded(job.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Job.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(job.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *JobUpsertOne) UpdateNewValues() *JobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(job.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(job.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Job.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *JobUpsertOne) Ignore() *JobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *JobUpsertOne) DoNothing() *JobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the JobCreate.OnConflict
// documentation for more info.
func (u *JobUpsertOne) Update(set func(*JobUpsert)) *JobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&JobUpsert{UpdateSet: update})
	}))
	return u
}

// SetConversationID sets the "conversation_id" field.
func (u *JobUpsertOne) SetConversationID(v string) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetConversationID(v)
	})
}

// UpdateConversationID sets the "conversation_id" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateConversationID() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateConversationID()
	})
}

// SetStatus sets the "status" field.
func (u *JobUpsertOne) SetStatus(v job.Status) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateStatus() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateStatus()
	})
}

// SetPriority sets the "priority" field.
func (u *JobUpsertOne) SetPriority(v job.Priority) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetPriority(v)
	})
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *JobUpsertOne) UpdatePriority() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdatePriority()
	})
}

// SetSourceType sets the "source_type" field.
func (u *JobUpsertOne) SetSourceType(v job.SourceType) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetSourceType(v)
	})
}

// UpdateSourceType sets the "source_type" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateSourceType() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateSourceType()
	})
}

// SetSourceMessageID sets the "source_message_id" field.
func (u *JobUpsertOne) SetSourceMessageID(v string) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetSourceMessageID(v)
	})
}

// UpdateSourceMessageID sets the "source_message_id" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateSourceMessageID() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateSourceMessageID()
	})
}

// ClearSourceMessageID clears the value of the "source_message_id" field.
func (u *JobUpsertOne) ClearSourceMessageID() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.ClearSourceMessageID()
	})
}

// SetDedupKey sets the "dedup_key" field.
func (u *JobUpsertOne) SetDedupKey(v string) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetDedupKey(v)
	})
}

// UpdateDedupKey sets the "dedup_key" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateDedupKey() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateDedupKey()
	})
}

// ClearDedupKey clears the value of the "dedup_key" field.
func (u *JobUpsertOne) ClearDedupKey() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.ClearDedupKey()
	})
}

// SetMetadata sets the "metadata" field.
func (u *JobUpsertOne) SetMetadata(v map[string]interface{}) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateMetadata() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *JobUpsertOne) ClearMetadata() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.ClearMetadata()
	})
}

// SetPlan sets the "plan" field.
func (u *JobUpsertOne) SetPlan(v *models.Plan) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetPlan(v)
	})
}

// UpdatePlan sets the "plan" field to the value that was provided on create.
func (u *JobUpsertOne) UpdatePlan() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdatePlan()
	})
}

// ClearPlan clears the value of the "plan" field.
func (u *JobUpsertOne) ClearPlan() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.ClearPlan()
	})
}

// SetValidation sets the "validation" field.
func (u *JobUpsertOne) SetValidation(v *models.ValidationResult) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetValidation(v)
	})
}

// UpdateValidation sets the "validation" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateValidation() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateValidation()
	})
}

// ClearValidation clears the value of the "validation" field.
func (u *JobUpsertOne) ClearValidation() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.ClearValidation()
	})
}

// SetResult sets the "result" field.
func (u *JobUpsertOne) SetResult(v *models.JobResult) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetResult(v)
	})
}

// UpdateResult sets the "result" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateResult() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateResult()
	})
}

// ClearResult clears the value of the "result" field.
func (u *JobUpsertOne) ClearResult() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.ClearResult()
	})
}

// SetError sets the "error" field.
func (u *JobUpsertOne) SetError(v *models.CodedError) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetError(v)
	})
}

// UpdateError sets the "error" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateError() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateError()
	})
}

// ClearError clears the value of the "error" field.
func (u *JobUpsertOne) ClearError() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.ClearError()
	})
}

// SetLeaseOwner sets the "lease_owner" field.
func (u *JobUpsertOne) SetLeaseOwner(v string) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetLeaseOwner(v)
	})
}

// UpdateLeaseOwner sets the "lease_owner" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateLeaseOwner() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateLeaseOwner()
	})
}

// ClearLeaseOwner clears the value of the "lease_owner" field.
func (u *JobUpsertOne) ClearLeaseOwner() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.ClearLeaseOwner()
	})
}

// SetLeaseExpiresAt sets the "lease_expires_at" field.
func (u *JobUpsertOne) SetLeaseExpiresAt(v time.Time) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetLeaseExpiresAt(v)
	})
}

// UpdateLeaseExpiresAt sets the "lease_expires_at" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateLeaseExpiresAt() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateLeaseExpiresAt()
	})
}

// ClearLeaseExpiresAt clears the value of the "lease_expires_at" field.
func (u *JobUpsertOne) ClearLeaseExpiresAt() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.ClearLeaseExpiresAt()
	})
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (u *JobUpsertOne) SetLastHeartbeatAt(v time.Time) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetLastHeartbeatAt(v)
	})
}

// UpdateLastHeartbeatAt sets the "last_heartbeat_at" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateLastHeartbeatAt() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateLastHeartbeatAt()
	})
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (u *JobUpsertOne) ClearLastHeartbeatAt() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.ClearLastHeartbeatAt()
	})
}

// SetAttempts sets the "attempts" field.
func (u *JobUpsertOne) SetAttempts(v int) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetAttempts(v)
	})
}

// AddAttempts adds v to the "attempts" field.
func (u *JobUpsertOne) AddAttempts(v int) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.AddAttempts(v)
	})
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateAttempts() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateAttempts()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *JobUpsertOne) SetUpdatedAt(v time.Time) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateUpdatedAt() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *JobUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for JobCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *JobUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *JobUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: JobUpsertOne.ID is not supported by MySQL driver. Use JobUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *JobUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// JobCreateBulk is the builder for creating many Job entities in bulk.
type JobCreateBulk struct {
	config
	err      error
	builders []*JobCreate
	conflict []sql.ConflictOption
}

// Save creates the Job entities in the database.
func (_c *JobCreateBulk) Save(ctx context.Context) ([]*Job, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Job, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*JobMutation)
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
func (_c *JobCreateBulk) SaveX(ctx context.Context) []*Job {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Job.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.JobUpsert) {
//			SetConversationID(v+v).
//		}).
//		Exec(ctx)
func (_c *JobCreateBulk) OnConflict(opts ...sql.ConflictOption) *JobUpsertBulk {
	_c.conflict = opts
	return &JobUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Job.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *JobCreateBulk) OnConflictColumns(columns ...string) *JobUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &JobUpsertBulk{
		create: _c,
	}
}

// JobUpsertBulk is the builder for "upsert"-ing
// a bulk of Job nodes.
type JobUpsertBulk struct {
	create *JobCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Job.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(job.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *JobUpsertBulk) UpdateNewValues() *JobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(job.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(job.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Job.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *JobUpsertBulk) Ignore() *JobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *JobUpsertBulk) DoNothing() *JobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the JobCreateBulk.OnConflict
// documentation for more info.
func (u *JobUpsertBulk) Update(set func(*JobUpsert)) *JobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&JobUpsert{UpdateSet: update})
	}))
	return u
}

// SetConversationID sets the "conversation_id" field.
func (u *JobUpsertBulk) SetConversationID(v string) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetConversationID(v)
	})
}

// UpdateConversationID sets the "conversation_id" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateConversationID() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateConversationID()
	})
}

// SetStatus sets the "status" field.
func (u *JobUpsertBulk) SetStatus(v job.Status) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateStatus() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateStatus()
	})
}

// SetPriority sets the "priority" field.
func (u *JobUpsertBulk) SetPriority(v job.Priority) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetPriority(v)
	})
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdatePriority() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdatePriority()
	})
}

// SetSourceType sets the "source_type" field.
func (u *JobUpsertBulk) SetSourceType(v job.SourceType) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetSourceType(v)
	})
}

// UpdateSourceType sets the "source_type" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateSourceType() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateSourceType()
	})
}

// SetSourceMessageID sets the "source_message_id" field.
func (u *JobUpsertBulk) SetSourceMessageID(v string) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetSourceMessageID(v)
	})
}

// UpdateSourceMessageID sets the "source_message_id" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateSourceMessageID() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateSourceMessageID()
	})
}

// ClearSourceMessageID clears the value of the "source_message_id" field.
func (u *JobUpsertBulk) ClearSourceMessageID() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.ClearSourceMessageID()
	})
}

// SetDedupKey sets the "dedup_key" field.
func (u *JobUpsertBulk) SetDedupKey(v string) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetDedupKey(v)
	})
}

// UpdateDedupKey sets the "dedup_key" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateDedupKey() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateDedupKey()
	})
}

// ClearDedupKey clears the value of the "dedup_key" field.
func (u *JobUpsertBulk) ClearDedupKey() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.ClearDedupKey()
	})
}

// SetMetadata sets the "metadata" field.
func (u *JobUpsertBulk) SetMetadata(v map[string]interface{}) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateMetadata() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *JobUpsertBulk) ClearMetadata() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.ClearMetadata()
	})
}

// SetPlan sets the "plan" field.
func (u *JobUpsertBulk) SetPlan(v *models.Plan) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetPlan(v)
	})
}

// UpdatePlan sets the "plan" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdatePlan() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdatePlan()
	})
}

// ClearPlan clears the value of the "plan" field.
func (u *JobUpsertBulk) ClearPlan() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.ClearPlan()
	})
}

// SetValidation sets the "validation" field.
func (u *JobUpsertBulk) SetValidation(v *models.ValidationResult) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetValidation(v)
	})
}

// UpdateValidation sets the "validation" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateValidation() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateValidation()
	})
}

// ClearValidation clears the value of the "validation" field.
func (u *JobUpsertBulk) ClearValidation() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.ClearValidation()
	})
}

// SetResult sets the "result" field.
func (u *JobUpsertBulk) SetResult(v *models.JobResult) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetResult(v)
	})
}

// UpdateResult sets the "result" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateResult() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateResult()
	})
}

// ClearResult clears the value of the "result" field.
func (u *JobUpsertBulk) ClearResult() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.ClearResult()
	})
}

// SetError sets the "error" field.
func (u *JobUpsertBulk) SetError(v *models.CodedError) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetError(v)
	})
}

// UpdateError sets the "error" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateError() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateError()
	})
}

// ClearError clears the value of the "error" field.
func (u *JobUpsertBulk) ClearError() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.ClearError()
	})
}

// SetLeaseOwner sets the "lease_owner" field.
func (u *JobUpsertBulk) SetLeaseOwner(v string) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetLeaseOwner(v)
	})
}

// UpdateLeaseOwner sets the "lease_owner" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateLeaseOwner() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateLeaseOwner()
	})
}

// ClearLeaseOwner clears the value of the "lease_owner" field.
func (u *JobUpsertBulk) ClearLeaseOwner() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.ClearLeaseOwner()
	})
}

// SetLeaseExpiresAt sets the "lease_expires_at" field.
func (u *JobUpsertBulk) SetLeaseExpiresAt(v time.Time) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetLeaseExpiresAt(v)
	})
}

// UpdateLeaseExpiresAt sets the "lease_expires_at" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateLeaseExpiresAt() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateLeaseExpiresAt()
	})
}

// ClearLeaseExpiresAt clears the value of the "lease_expires_at" field.
func (u *JobUpsertBulk) ClearLeaseExpiresAt() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.ClearLeaseExpiresAt()
	})
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (u *JobUpsertBulk) SetLastHeartbeatAt(v time.Time) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetLastHeartbeatAt(v)
	})
}

// UpdateLastHeartbeatAt sets the "last_heartbeat_at" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateLastHeartbeatAt() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateLastHeartbeatAt()
	})
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (u *JobUpsertBulk) ClearLastHeartbeatAt() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.ClearLastHeartbeatAt()
	})
}

// SetAttempts sets the "attempts" field.
func (u *JobUpsertBulk) SetAttempts(v int) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetAttempts(v)
	})
}

// AddAttempts adds v to the "attempts" field.
func (u *JobUpsertBulk) AddAttempts(v int) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.AddAttempts(v)
	})
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateAttempts() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateAttempts()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *JobUpsertBulk) SetUpdatedAt(v time.Time) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateUpdatedAt() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *JobUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the JobCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for JobCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *JobUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
