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
	"github.com/sergeville/Archon/ent/predicate"
	"github.com/sergeville/Archon/ent/task"
)

// TaskUpdate is the builder for updating Task entities.
type TaskUpdate struct {
	config
	hooks    []Hook
	mutation *TaskMutation
}

// Where appends a list predicates to the TaskUpdate builder.
func (_u *TaskUpdate) Where(ps ...predicate.Task) *TaskUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *TaskUpdate) SetTitle(v string) *TaskUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableTitle(v *string) *TaskUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *TaskUpdate) SetDescription(v string) *TaskUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableDescription(v *string) *TaskUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *TaskUpdate) ClearDescription() *TaskUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetStatus sets the "status" field.
func (_u *TaskUpdate) SetStatus(v task.Status) *TaskUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableStatus(v *task.Status) *TaskUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAssignee sets the "assignee" field.
func (_u *TaskUpdate) SetAssignee(v string) *TaskUpdate {
	_u.mutation.SetAssignee(v)
	return _u
}

// SetNillableAssignee sets the "assignee" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableAssignee(v *string) *TaskUpdate {
	if v != nil {
		_u.SetAssignee(*v)
	}
	return _u
}

// ClearAssignee clears the value of the "assignee" field.
func (_u *TaskUpdate) ClearAssignee() *TaskUpdate {
	_u.mutation.ClearAssignee()
	return _u
}

// SetTaskOrder sets the "task_order" field.
func (_u *TaskUpdate) SetTaskOrder(v int) *TaskUpdate {
	_u.mutation.ResetTaskOrder()
	_u.mutation.SetTaskOrder(v)
	return _u
}

// SetNillableTaskOrder sets the "task_order" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableTaskOrder(v *int) *TaskUpdate {
	if v != nil {
		_u.SetTaskOrder(*v)
	}
	return _u
}

// AddTaskOrder adds value to the "task_order" field.
func (_u *TaskUpdate) AddTaskOrder(v int) *TaskUpdate {
	_u.mutation.AddTaskOrder(v)
	return _u
}

// SetPriority sets the "priority" field.
func (_u *TaskUpdate) SetPriority(v task.Priority) *TaskUpdate {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *TaskUpdate) SetNillablePriority(v *task.Priority) *TaskUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetFeature sets the "feature" field.
func (_u *TaskUpdate) SetFeature(v string) *TaskUpdate {
	_u.mutation.SetFeature(v)
	return _u
}

// SetNillableFeature sets the "feature" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableFeature(v *string) *TaskUpdate {
	if v != nil {
		_u.SetFeature(*v)
	}
	return _u
}

// ClearFeature clears the value of the "feature" field.
func (_u *TaskUpdate) ClearFeature() *TaskUpdate {
	_u.mutation.ClearFeature()
	return _u
}

// SetArchived sets the "archived" field.
func (_u *TaskUpdate) SetArchived(v bool) *TaskUpdate {
	_u.mutation.SetArchived(v)
	return _u
}

// SetNillableArchived sets the "archived" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableArchived(v *bool) *TaskUpdate {
	if v != nil {
		_u.SetArchived(*v)
	}
	return _u
}

// SetArchivedAt sets the "archived_at" field.
func (_u *TaskUpdate) SetArchivedAt(v time.Time) *TaskUpdate {
	_u.mutation.SetArchivedAt(v)
	return _u
}

// SetNillableArchivedAt sets the "archived_at" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableArchivedAt(v *time.Time) *TaskUpdate {
	if v != nil {
		_u.SetArchivedAt(*v)
	}
	return _u
}

// ClearArchivedAt clears the value of the "archived_at" field.
func (_u *TaskUpdate) ClearArchivedAt() *TaskUpdate {
	_u.mutation.ClearArchivedAt()
	return _u
}

// SetArchivedBy sets the "archived_by" field.
func (_u *TaskUpdate) SetArchivedBy(v string) *TaskUpdate {
	_u.mutation.SetArchivedBy(v)
	return _u
}

// SetNillableArchivedBy sets the "archived_by" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableArchivedBy(v *string) *TaskUpdate {
	if v != nil {
		_u.SetArchivedBy(*v)
	}
	return _u
}

// ClearArchivedBy clears the value of the "archived_by" field.
func (_u *TaskUpdate) ClearArchivedBy() *TaskUpdate {
	_u.mutation.ClearArchivedBy()
	return _u
}

// SetArchiveReason sets the "archive_reason" field.
func (_u *TaskUpdate) SetArchiveReason(v string) *TaskUpdate {
	_u.mutation.SetArchiveReason(v)
	return _u
}

// SetNillableArchiveReason sets the "archive_reason" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableArchiveReason(v *string) *TaskUpdate {
	if v != nil {
		_u.SetArchiveReason(*v)
	}
	return _u
}

// ClearArchiveReason clears the value of the "archive_reason" field.
func (_u *TaskUpdate) ClearArchiveReason() *TaskUpdate {
	_u.mutation.ClearArchiveReason()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *TaskUpdate) SetMetadata(v map[string]interface{}) *TaskUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *TaskUpdate) ClearMetadata() *TaskUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TaskUpdate) SetUpdatedAt(v time.Time) *TaskUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the TaskMutation object of the builder.
func (_u *TaskUpdate) Mutation() *TaskMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TaskUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TaskUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TaskUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := task.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := task.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Task.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := task.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Task.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := task.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Task.priority": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Task.project"`)
	}
	return nil
}

func (_u *TaskUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(task.Table, task.Columns, sqlgraph.NewFieldSpec(task.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(task.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(task.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(task.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(task.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Assignee(); ok {
		_spec.SetField(task.FieldAssignee, field.TypeString, value)
	}
	if _u.mutation.AssigneeCleared() {
		_spec.ClearField(task.FieldAssignee, field.TypeString)
	}
	if value, ok := _u.mutation.TaskOrder(); ok {
		_spec.SetField(task.FieldTaskOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTaskOrder(); ok {
		_spec.AddField(task.FieldTaskOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(task.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Feature(); ok {
		_spec.SetField(task.FieldFeature, field.TypeString, value)
	}
	if _u.mutation.FeatureCleared() {
		_spec.ClearField(task.FieldFeature, field.TypeString)
	}
	if value, ok := _u.mutation.Archived(); ok {
		_spec.SetField(task.FieldArchived, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ArchivedAt(); ok {
		_spec.SetField(task.FieldArchivedAt, field.TypeTime, value)
	}
	if _u.mutation.ArchivedAtCleared() {
		_spec.ClearField(task.FieldArchivedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ArchivedBy(); ok {
		_spec.SetField(task.FieldArchivedBy, field.TypeString, value)
	}
	if _u.mutation.ArchivedByCleared() {
		_spec.ClearField(task.FieldArchivedBy, field.TypeString)
	}
	if value, ok := _u.mutation.ArchiveReason(); ok {
		_spec.SetField(task.FieldArchiveReason, field.TypeString, value)
	}
	if _u.mutation.ArchiveReasonCleared() {
		_spec.ClearField(task.FieldArchiveReason, field.TypeString)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(task.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(task.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(task.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{task.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TaskUpdateOne is the builder for updating a single Task entity.
type TaskUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TaskMutation
}

// SetTitle sets the "title" field.
func (_u *TaskUpdateOne) SetTitle(v string) *TaskUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableTitle(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *TaskUpdateOne) SetDescription(v string) *TaskUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableDescription(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *TaskUpdateOne) ClearDescription() *TaskUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetStatus sets the "status" field.
func (_u *TaskUpdateOne) SetStatus(v task.Status) *TaskUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableStatus(v *task.Status) *TaskUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAssignee sets the "assignee" field.
func (_u *TaskUpdateOne) SetAssignee(v string) *TaskUpdateOne {
	_u.mutation.SetAssignee(v)
	return _u
}

// SetNillableAssignee sets the "assignee" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableAssignee(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetAssignee(*v)
	}
	return _u
}

// ClearAssignee clears the value of the "assignee" field.
func (_u *TaskUpdateOne) ClearAssignee() *TaskUpdateOne {
	_u.mutation.ClearAssignee()
	return _u
}

// SetTaskOrder sets the "task_order" field.
func (_u *TaskUpdateOne) SetTaskOrder(v int) *TaskUpdateOne {
	_u.mutation.ResetTaskOrder()
	_u.mutation.SetTaskOrder(v)
	return _u
}

// SetNillableTaskOrder sets the "task_order" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableTaskOrder(v *int) *TaskUpdateOne {
	if v != nil {
		_u.SetTaskOrder(*v)
	}
	return _u
}

// AddTaskOrder adds value to the "task_order" field.
func (_u *TaskUpdateOne) AddTaskOrder(v int) *TaskUpdateOne {
	_u.mutation.AddTaskOrder(v)
	return _u
}

// SetPriority sets the "priority" field.
func (_u *TaskUpdateOne) SetPriority(v task.Priority) *TaskUpdateOne {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillablePriority(v *task.Priority) *TaskUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetFeature sets the "feature" field.
func (_u *TaskUpdateOne) SetFeature(v string) *TaskUpdateOne {
	_u.mutation.SetFeature(v)
	return _u
}

// SetNillableFeature sets the "feature" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableFeature(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetFeature(*v)
	}
	return _u
}

// ClearFeature clears the value of the "feature" field.
func (_u *TaskUpdateOne) ClearFeature() *TaskUpdateOne {
	_u.mutation.ClearFeature()
	return _u
}

// SetArchived sets the "archived" field.
func (_u *TaskUpdateOne) SetArchived(v bool) *TaskUpdateOne {
	_u.mutation.SetArchived(v)
	return _u
}

// SetNillableArchived sets the "archived" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableArchived(v *bool) *TaskUpdateOne {
	if v != nil {
		_u.SetArchived(*v)
	}
	return _u
}

// SetArchivedAt sets the "archived_at" field.
func (_u *TaskUpdateOne) SetArchivedAt(v time.Time) *TaskUpdateOne {
	_u.mutation.SetArchivedAt(v)
	return _u
}

// SetNillableArchivedAt sets the "archived_at" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableArchivedAt(v *time.Time) *TaskUpdateOne {
	if v != nil {
		_u.SetArchivedAt(*v)
	}
	return _u
}

// ClearArchivedAt clears the value of the "archived_at" field.
func (_u *TaskUpdateOne) ClearArchivedAt() *TaskUpdateOne {
	_u.mutation.ClearArchivedAt()
	return _u
}

// SetArchivedBy sets the "archived_by" field.
func (_u *TaskUpdateOne) SetArchivedBy(v string) *TaskUpdateOne {
	_u.mutation.SetArchivedBy(v)
	return _u
}

// SetNillableArchivedBy sets the "archived_by" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableArchivedBy(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetArchivedBy(*v)
	}
	return _u
}

// ClearArchivedBy clears the value of the "archived_by" field.
func (_u *TaskUpdateOne) ClearArchivedBy() *TaskUpdateOne {
	_u.mutation.ClearArchivedBy()
	return _u
}

// SetArchiveReason sets the "archive_reason" field.
func (_u *TaskUpdateOne) SetArchiveReason(v string) *TaskUpdateOne {
	_u.mutation.SetArchiveReason(v)
	return _u
}

// SetNillableArchiveReason sets the "archive_reason" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableArchiveReason(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetArchiveReason(*v)
	}
	return _u
}

// ClearArchiveReason clears the value of the "archive_reason" field.
func (_u *TaskUpdateOne) ClearArchiveReason() *TaskUpdateOne {
	_u.mutation.ClearArchiveReason()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *TaskUpdateOne) SetMetadata(v map[string]interface{}) *TaskUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *TaskUpdateOne) ClearMetadata() *TaskUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TaskUpdateOne) SetUpdatedAt(v time.Time) *TaskUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the TaskMutation object of the builder.
func (_u *TaskUpdateOne) Mutation() *TaskMutation {
	return _u.mutation
}

// Where appends a list predicates to the TaskUpdate builder.
func (_u *TaskUpdateOne) Where(ps ...predicate.Task) *TaskUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TaskUpdateOne) Select(field string, fields ...string) *TaskUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Task entity.
func (_u *TaskUpdateOne) Save(ctx context.Context) (*Task, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskUpdateOne) SaveX(ctx context.Context) *Task {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TaskUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TaskUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := task.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := task.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Task.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := task.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Task.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := task.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Task.priority": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Task.project"`)
	}
	return nil
}

func (_u *TaskUpdateOne) sqlSave(ctx context.Context) (_node *Task, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(task.Table, task.Columns, sqlgraph.NewFieldSpec(task.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Task.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, task.FieldID)
		for _, f := range fields {
			if !task.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != task.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(task.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(task.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(task.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(task.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Assignee(); ok {
		_spec.SetField(task.FieldAssignee, field.TypeString, value)
	}
	if _u.mutation.AssigneeCleared() {
		_spec.ClearField(task.FieldAssignee, field.TypeString)
	}
	if value, ok := _u.mutation.TaskOrder(); ok {
		_spec.SetField(task.FieldTaskOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTaskOrder(); ok {
		_spec.AddField(task.FieldTaskOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(task.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Feature(); ok {
		_spec.SetField(task.FieldFeature, field.TypeString, value)
	}
	if _u.mutation.FeatureCleared() {
		_spec.ClearField(task.FieldFeature, field.TypeString)
	}
	if value, ok := _u.mutation.Archived(); ok {
		_spec.SetField(task.FieldArchived, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ArchivedAt(); ok {
		_spec.SetField(task.FieldArchivedAt, field.TypeTime, value)
	}
	if _u.mutation.ArchivedAtCleared() {
		_spec.ClearField(task.FieldArchivedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ArchivedBy(); ok {
		_spec.SetField(task.FieldArchivedBy, field.TypeString, value)
	}
	if _u.mutation.ArchivedByCleared() {
		_spec.ClearField(task.FieldArchivedBy, field.TypeString)
	}
	if value, ok := _u.mutation.ArchiveReason(); ok {
		_spec.SetField(task.FieldArchiveReason, field.TypeString, value)
	}
	if _u.mutation.ArchiveReasonCleared() {
		_spec.ClearField(task.FieldArchiveReason, field.TypeString)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(task.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(task.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(task.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Task{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{task.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
