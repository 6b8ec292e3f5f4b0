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
	"github.com/gearbox-dev/gearbox/ent/job"
	"github.com/gearbox-dev/gearbox/ent/predicate"
	"github.com/gearbox-dev/gearbox/pkg/models"
)

// JobUpdate is the builder for updating Job entities.
type JobUpdate struct {
	config
	hooks    []Hook
	mutation *JobMutation
}

// Where appends a list predicates to the JobUpdate builder.
func (_u *JobUpdate) Where(ps ...predicate.Job) *JobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetConversationID sets the "conversation_id" field.
func (_u *JobUpdate) SetConversationID(v string) *JobUpdate {
	_u.mutation.SetConversationID(v)
	return _u
}

// SetNillableConversationID sets the "conversation_id" field if the given value is not nil.
func (_u *JobUpdate) SetNillableConversationID(v *string) *JobUpdate {
	if v != nil {
		_u.SetConversationID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *JobUpdate) SetStatus(v job.Status) *JobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *JobUpdate) SetNillableStatus(v *job.Status) *JobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *JobUpdate) SetPriority(v job.Priority) *JobUpdate {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *JobUpdate) SetNillablePriority(v *job.Priority) *JobUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetSourceType sets the "source_type" field.
func (_u *JobUpdate) SetSourceType(v job.SourceType) *JobUpdate {
	_u.mutation.SetSourceType(v)
	return _u
}

// SetNillableSourceType sets the "source_type" field if the given value is not nil.
func (_u *JobUpdate) SetNillableSourceType(v *job.SourceType) *JobUpdate {
	if v != nil {
		_u.SetSourceType(*v)
	}
	return _u
}

// SetSourceMessageID sets the "source_message_id" field.
func (_u *JobUpdate) SetSourceMessageID(v string) *JobUpdate {
	_u.mutation.SetSourceMessageID(v)
	return _u
}

// SetNillableSourceMessageID sets the "source_message_id" field if the given value is not nil.
func (_u *JobUpdate) SetNillableSourceMessageID(v *string) *JobUpdate {
	if v != nil {
		_u.SetSourceMessageID(*v)
	}
	return _u
}

// ClearSourceMessageID clears the value of the "source_message_id" field.
func (_u *JobUpdate) ClearSourceMessageID() *JobUpdate {
	_u.mutation.ClearSourceMessageID()
	return _u
}

// SetDedupKey sets the "dedup_key" field.
func (_u *JobUpdate) SetDedupKey(v string) *JobUpdate {
	_u.mutation.SetDedupKey(v)
	return _u
}

// SetNillableDedupKey sets the "dedup_key" field if the given value is not nil.
func (_u *JobUpdate) SetNillableDedupKey(v *string) *JobUpdate {
	if v != nil {
		_u.SetDedupKey(*v)
	}
	return _u
}

// ClearDedupKey clears the value of the "dedup_key" field.
func (_u *JobUpdate) ClearDedupKey() *JobUpdate {
	_u.mutation.ClearDedupKey()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *JobUpdate) SetMetadata(v map[string]interface{}) *JobUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *JobUpdate) ClearMetadata() *JobUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetPlan sets the "plan" field.
func (_u *JobUpdate) SetPlan(v *models.Plan) *JobUpdate {
	_u.mutation.SetPlan(v)
	return _u
}

// ClearPlan clears the value of the "plan" field.
func (_u *JobUpdate) ClearPlan() *JobUpdate {
	_u.mutation.ClearPlan()
	return _u
}

// SetValidation sets the "validation" field.
func (_u *JobUpdate) SetValidation(v *models.ValidationResult) *JobUpdate {
	_u.mutation.SetValidation(v)
	return _u
}

// ClearValidation clears the value of the "validation" field.
func (_u *JobUpdate) ClearValidation() *JobUpdate {
	_u.mutation.ClearValidation()
	return _u
}

// SetResult sets the "result" field.
func (_u *JobUpdate) SetResult(v *models.JobResult) *JobUpdate {
	_u.mutation.SetResult(v)
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *JobUpdate) ClearResult() *JobUpdate {
	_u.mutation.ClearResult()
	return _u
}

// SetError sets the "error" field.
func (_u *JobUpdate) SetError(v *models.CodedError) *JobUpdate {
	_u.mutation.SetError(v)
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *JobUpdate) ClearError() *JobUpdate {
	_u.mutation.ClearError()
	return _u
}

// SetLeaseOwner sets the "lease_owner" field.
func (_u *JobUpdate) SetLeaseOwner(v string) *JobUpdate {
	_u.mutation.SetLeaseOwner(v)
	return _u
}

// SetNillableLeaseOwner sets the "lease_owner" field if the given value is not nil.
func (_u *JobUpdate) SetNillableLeaseOwner(v *string) *JobUpdate {
	if v != nil {
		_u.SetLeaseOwner(*v)
	}
	return _u
}

// ClearLeaseOwner clears the value of the "lease_owner" field.
func (_u *JobUpdate) ClearLeaseOwner() *JobUpdate {
	_u.mutation.ClearLeaseOwner()
	return _u
}

// SetLeaseExpiresAt sets the "lease_expires_at" field.
func (_u *JobUpdate) SetLeaseExpiresAt(v time.Time) *JobUpdate {
	_u.mutation.SetLeaseExpiresAt(v)
	return _u
}

// SetNillableLeaseExpiresAt sets the "lease_expires_at" field if the given value is not nil.
func (_u *JobUpdate) SetNillableLeaseExpiresAt(v *time.Time) *JobUpdate {
	if v != nil {
		_u.SetLeaseExpiresAt(*v)
	}
	return _u
}

// ClearLeaseExpiresAt clears the value of the "lease_expires_at" field.
func (_u *JobUpdate) ClearLeaseExpiresAt() *JobUpdate {
	_u.mutation.ClearLeaseExpiresAt()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *JobUpdate) SetLastHeartbeatAt(v time.Time) *JobUpdate {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *JobUpdate) SetNillableLastHeartbeatAt(v *time.Time) *JobUpdate {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *JobUpdate) ClearLastHeartbeatAt() *JobUpdate {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *JobUpdate) SetAttempts(v int) *JobUpdate {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *JobUpdate) SetNillableAttempts(v *int) *JobUpdate {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *JobUpdate) AddAttempts(v int) *JobUpdate {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *JobUpdate) SetUpdatedAt(v time.Time) *JobUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the JobMutation object of the builder.
func (_u *JobUpdate) Mutation() *JobMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *JobUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *JobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *JobUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := job.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := job.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Job.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := job.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Job.priority": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourceType(); ok {
		if err := job.SourceTypeValidator(v); err != nil {
			return &ValidationError{Name: "source_type", err: fmt.Errorf(`ent: validator failed for field "Job.source_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Plan(); ok {
		if err := v.Validate(); err != nil {
			return &ValidationError{Name: "plan", err: fmt.Errorf(`ent: validator failed for field "Job.plan": %w`, err)}
		}
	}
	return nil
}

func (_u *JobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(job.Table, job.Columns, sqlgraph.NewFieldSpec(job.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ConversationID(); ok {
		_spec.SetField(job.FieldConversationID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(job.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(job.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SourceType(); ok {
		_spec.SetField(job.FieldSourceType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SourceMessageID(); ok {
		_spec.SetField(job.FieldSourceMessageID, field.TypeString, value)
	}
	if _u.mutation.SourceMessageIDCleared() {
		_spec.ClearField(job.FieldSourceMessageID, field.TypeString)
	}
	if value, ok := _u.mutation.DedupKey(); ok {
		_spec.SetField(job.FieldDedupKey, field.TypeString, value)
	}
	if _u.mutation.DedupKeyCleared() {
		_spec.ClearField(job.FieldDedupKey, field.TypeString)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(job.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(job.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.Plan(); ok {
		_spec.SetField(job.FieldPlan, field.TypeJSON, value)
	}
	if _u.mutation.PlanCleared() {
		_spec.ClearField(job.FieldPlan, field.TypeJSON)
	}
	if value, ok := _u.mutation.Validation(); ok {
		_spec.SetField(job.FieldValidation, field.TypeJSON, value)
	}
	if _u.mutation.ValidationCleared() {
		_spec.ClearField(job.FieldValidation, field.TypeJSON)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(job.FieldResult, field.TypeJSON, value)
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(job.FieldResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(job.FieldError, field.TypeJSON, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(job.FieldError, field.TypeJSON)
	}
	if value, ok := _u.mutation.LeaseOwner(); ok {
		_spec.SetField(job.FieldLeaseOwner, field.TypeString, value)
	}
	if _u.mutation.LeaseOwnerCleared() {
		_spec.ClearField(job.FieldLeaseOwner, field.TypeString)
	}
	if value, ok := _u.mutation.LeaseExpiresAt(); ok {
		_spec.SetField(job.FieldLeaseExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.LeaseExpiresAtCleared() {
		_spec.ClearField(job.FieldLeaseExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(job.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(job.FieldLastHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(job.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(job.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(job.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{job.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// JobUpdateOne is the builder for updating a single Job entity.
type JobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *JobMutation
}

// SetConversationID sets the "conversation_id" field.
func (_u *JobUpdateOne) SetConversationID(v string) *JobUpdateOne {
	_u.mutation.SetConversationID(v)
	return _u
}

// SetNillableConversationID sets the "conversation_id" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableConversationID(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetConversationID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *JobUpdateOne) SetStatus(v job.Status) *JobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableStatus(v *job.Status) *JobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *JobUpdateOne) SetPriority(v job.Priority) *JobUpdateOne {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillablePriority(v *job.Priority) *JobUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetSourceType sets the "source_type" field.
func (_u *JobUpdateOne) SetSourceType(v job.SourceType) *JobUpdateOne {
	_u.mutation.SetSourceType(v)
	return _u
}

// SetNillableSourceType sets the "source_type" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableSourceType(v *job.SourceType) *JobUpdateOne {
	if v != nil {
		_u.SetSourceType(*v)
	}
	return _u
}

// SetSourceMessageID sets the "source_message_id" field.
func (_u *JobUpdateOne) SetSourceMessageID(v string) *JobUpdateOne {
	_u.mutation.SetSourceMessageID(v)
	return _u
}

// SetNillableSourceMessageID sets the "source_message_id" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableSourceMessageID(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetSourceMessageID(*v)
	}
	return _u
}

// ClearSourceMessageID clears the value of the "source_message_id" field.
func (_u *JobUpdateOne) ClearSourceMessageID() *JobUpdateOne {
	_u.mutation.ClearSourceMessageID()
	return _u
}

// SetDedupKey sets the "dedup_key" field.
func (_u *JobUpdateOne) SetDedupKey(v string) *JobUpdateOne {
	_u.mutation.SetDedupKey(v)
	return _u
}

// SetNillableDedupKey sets the "dedup_key" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableDedupKey(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetDedupKey(*v)
	}
	return _u
}

// ClearDedupKey clears the value of the "dedup_key" field.
func (_u *JobUpdateOne) ClearDedupKey() *JobUpdateOne {
	_u.mutation.ClearDedupKey()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *JobUpdateOne) SetMetadata(v map[string]interface{}) *JobUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *JobUpdateOne) ClearMetadata() *JobUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetPlan sets the "plan" field.
func (_u *JobUpdateOne) SetPlan(v *models.Plan) *JobUpdateOne {
	_u.mutation.SetPlan(v)
	return _u
}

// ClearPlan clears the value of the "plan" field.
func (_u *JobUpdateOne) ClearPlan() *JobUpdateOne {
	_u.mutation.ClearPlan()
	return _u
}

// SetValidation sets the "validation" field.
func (_u *JobUpdateOne) SetValidation(v *models.ValidationResult) *JobUpdateOne {
	_u.mutation.SetValidation(v)
	return _u
}

// ClearValidation clears the value of the "validation" field.
func (_u *JobUpdateOne) ClearValidation() *JobUpdateOne {
	_u.mutation.ClearValidation()
	return _u
}

// SetResult sets the "result" field.
func (_u *JobUpdateOne) SetResult(v *models.JobResult) *JobUpdateOne {
	_u.mutation.SetResult(v)
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *JobUpdateOne) ClearResult() *JobUpdateOne {
	_u.mutation.ClearResult()
	return _u
}

// SetError sets the "error" field.
func (_u *JobUpdateOne) SetError(v *models.CodedError) *JobUpdateOne {
	_u.mutation.SetError(v)
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *JobUpdateOne) ClearError() *JobUpdateOne {
	_u.mutation.ClearError()
	return _u
}

// SetLeaseOwner sets the "lease_owner" field.
func (_u *JobUpdateOne) SetLeaseOwner(v string) *JobUpdateOne {
	_u.mutation.SetLeaseOwner(v)
	return _u
}

// SetNillableLeaseOwner sets the "lease_owner" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableLeaseOwner(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetLeaseOwner(*v)
	}
	return _u
}

// ClearLeaseOwner clears the value of the "lease_owner" field.
func (_u *JobUpdateOne) ClearLeaseOwner() *JobUpdateOne {
	_u.mutation.ClearLeaseOwner()
	return _u
}

// SetLeaseExpiresAt sets the "lease_expires_at" field.
func (_u *JobUpdateOne) SetLeaseExpiresAt(v time.Time) *JobUpdateOne {
	_u.mutation.SetLeaseExpiresAt(v)
	return _u
}

// SetNillableLeaseExpiresAt sets the "lease_expires_at" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableLeaseExpiresAt(v *time.Time) *JobUpdateOne {
	if v != nil {
		_u.SetLeaseExpiresAt(*v)
	}
	return _u
}

// ClearLeaseExpiresAt clears the value of the "lease_expires_at" field.
func (_u *JobUpdateOne) ClearLeaseExpiresAt() *JobUpdateOne {
	_u.mutation.ClearLeaseExpiresAt()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *JobUpdateOne) SetLastHeartbeatAt(v time.Time) *JobUpdateOne {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableLastHeartbeatAt(v *time.Time) *JobUpdateOne {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *JobUpdateOne) ClearLastHeartbeatAt() *JobUpdateOne {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *JobUpdateOne) SetAttempts(v int) *JobUpdateOne {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableAttempts(v *int) *JobUpdateOne {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *JobUpdateOne) AddAttempts(v int) *JobUpdateOne {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *JobUpdateOne) SetUpdatedAt(v time.Time) *JobUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the JobMutation object of the builder.
func (_u *JobUpdateOne) Mutation() *JobMutation {
	return _u.mutation
}

// Where appends a list predicates to the JobUpdate builder.
func (_u *JobUpdateOne) Where(ps ...predicate.Job) *JobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *JobUpdateOne) Select(field string, fields ...string) *JobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Job entity.
func (_u *JobUpdateOne) Save(ctx context.Context) (*Job, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobUpdateOne) SaveX(ctx context.Context) *Job {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *JobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *JobUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := job.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := job.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Job.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := job.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Job.priority": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourceType(); ok {
		if err := job.SourceTypeValidator(v); err != nil {
			return &ValidationError{Name: "source_type", err: fmt.Errorf(`ent: validator failed for field "Job.source_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Plan(); ok {
		if err := v.Validate(); err != nil {
			return &ValidationError{Name: "plan", err: fmt.Errorf(`ent: validator failed for field "Job.plan": %w`, err)}
		}
	}
	return nil
}

func (_u *JobUpdateOne) sqlSave(ctx context.Context) (_node *Job, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(job.Table, job.Columns, sqlgraph.NewFieldSpec(job.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Job.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, job.FieldID)
		for _, f := range fields {
			if !job.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != job.FieldID {
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
	if value, ok := _u.mutation.ConversationID(); ok {
		_spec.SetField(job.FieldConversationID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(job.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(job.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SourceType(); ok {
		_spec.SetField(job.FieldSourceType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SourceMessageID(); ok {
		_spec.SetField(job.FieldSourceMessageID, field.TypeString, value)
	}
	if _u.mutation.SourceMessageIDCleared() {
		_spec.ClearField(job.FieldSourceMessageID, field.TypeString)
	}
	if value, ok := _u.mutation.DedupKey(); ok {
		_spec.SetField(job.FieldDedupKey, field.TypeString, value)
	}
	if _u.mutation.DedupKeyCleared() {
		_spec.ClearField(job.FieldDedupKey, field.TypeString)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(job.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(job.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.Plan(); ok {
		_spec.SetField(job.FieldPlan, field.TypeJSON, value)
	}
	if _u.mutation.PlanCleared() {
		_spec.ClearField(job.FieldPlan, field.TypeJSON)
	}
	if value, ok := _u.mutation.Validation(); ok {
		_spec.SetField(job.FieldValidation, field.TypeJSON, value)
	}
	if _u.mutation.ValidationCleared() {
		_spec.ClearField(job.FieldValidation, field.TypeJSON)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(job.FieldResult, field.TypeJSON, value)
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(job.FieldResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(job.FieldError, field.TypeJSON, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(job.FieldError, field.TypeJSON)
	}
	if value, ok := _u.mutation.LeaseOwner(); ok {
		_spec.SetField(job.FieldLeaseOwner, field.TypeString, value)
	}
	if _u.mutation.LeaseOwnerCleared() {
		_spec.ClearField(job.FieldLeaseOwner, field.TypeString)
	}
	if value, ok := _u.mutation.LeaseExpiresAt(); ok {
		_spec.SetField(job.FieldLeaseExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.LeaseExpiresAtCleared() {
		_spec.ClearField(job.FieldLeaseExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(job.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(job.FieldLastHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(job.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(job.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(job.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Job{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{job.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
