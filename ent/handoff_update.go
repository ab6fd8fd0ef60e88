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
	"github.com/sergeville/Archon/ent/handoff"
	"github.com/sergeville/Archon/ent/predicate"
)

// HandoffUpdate is the builder for updating Handoff entities.
type HandoffUpdate struct {
	config
	hooks    []Hook
	mutation *HandoffMutation
}

// Where appends a list predicates to the HandoffUpdate builder.
func (_u *HandoffUpdate) Where(ps ...predicate.Handoff) *HandoffUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetContext sets the "context" field.
func (_u *HandoffUpdate) SetContext(v map[string]interface{}) *HandoffUpdate {
	_u.mutation.SetContext(v)
	return _u
}

// ClearContext clears the value of the "context" field.
func (_u *HandoffUpdate) ClearContext() *HandoffUpdate {
	_u.mutation.ClearContext()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *HandoffUpdate) SetNotes(v string) *HandoffUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *HandoffUpdate) SetNillableNotes(v *string) *HandoffUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *HandoffUpdate) ClearNotes() *HandoffUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetStatus sets the "status" field.
func (_u *HandoffUpdate) SetStatus(v handoff.Status) *HandoffUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *HandoffUpdate) SetNillableStatus(v *handoff.Status) *HandoffUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAcceptedAt sets the "accepted_at" field.
func (_u *HandoffUpdate) SetAcceptedAt(v time.Time) *HandoffUpdate {
	_u.mutation.SetAcceptedAt(v)
	return _u
}

// SetNillableAcceptedAt sets the "accepted_at" field if the given value is not nil.
func (_u *HandoffUpdate) SetNillableAcceptedAt(v *time.Time) *HandoffUpdate {
	if v != nil {
		_u.SetAcceptedAt(*v)
	}
	return _u
}

// ClearAcceptedAt clears the value of the "accepted_at" field.
func (_u *HandoffUpdate) ClearAcceptedAt() *HandoffUpdate {
	_u.mutation.ClearAcceptedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *HandoffUpdate) SetCompletedAt(v time.Time) *HandoffUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *HandoffUpdate) SetNillableCompletedAt(v *time.Time) *HandoffUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *HandoffUpdate) ClearCompletedAt() *HandoffUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *HandoffUpdate) SetMetadata(v map[string]interface{}) *HandoffUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *HandoffUpdate) ClearMetadata() *HandoffUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// Mutation returns the HandoffMutation object of the builder.
func (_u *HandoffUpdate) Mutation() *HandoffMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *HandoffUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HandoffUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *HandoffUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HandoffUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HandoffUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := handoff.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Handoff.status": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Handoff.session"`)
	}
	return nil
}

func (_u *HandoffUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(handoff.Table, handoff.Columns, sqlgraph.NewFieldSpec(handoff.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Context(); ok {
		_spec.SetField(handoff.FieldContext, field.TypeJSON, value)
	}
	if _u.mutation.ContextCleared() {
		_spec.ClearField(handoff.FieldContext, field.TypeJSON)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(handoff.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(handoff.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(handoff.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AcceptedAt(); ok {
		_spec.SetField(handoff.FieldAcceptedAt, field.TypeTime, value)
	}
	if _u.mutation.AcceptedAtCleared() {
		_spec.ClearField(handoff.FieldAcceptedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(handoff.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(handoff.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(handoff.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(handoff.FieldMetadata, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{handoff.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// HandoffUpdateOne is the builder for updating a single Handoff entity.
type HandoffUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *HandoffMutation
}

// SetContext sets the "context" field.
func (_u *HandoffUpdateOne) SetContext(v map[string]interface{}) *HandoffUpdateOne {
	_u.mutation.SetContext(v)
	return _u
}

// ClearContext clears the value of the "context" field.
func (_u *HandoffUpdateOne) ClearContext() *HandoffUpdateOne {
	_u.mutation.ClearContext()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *HandoffUpdateOne) SetNotes(v string) *HandoffUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *HandoffUpdateOne) SetNillableNotes(v *string) *HandoffUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *HandoffUpdateOne) ClearNotes() *HandoffUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetStatus sets the "status" field.
func (_u *HandoffUpdateOne) SetStatus(v handoff.Status) *HandoffUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *HandoffUpdateOne) SetNillableStatus(v *handoff.Status) *HandoffUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAcceptedAt sets the "accepted_at" field.
func (_u *HandoffUpdateOne) SetAcceptedAt(v time.Time) *HandoffUpdateOne {
	_u.mutation.SetAcceptedAt(v)
	return _u
}

// SetNillableAcceptedAt sets the "accepted_at" field if the given value is not nil.
func (_u *HandoffUpdateOne) SetNillableAcceptedAt(v *time.Time) *HandoffUpdateOne {
	if v != nil {
		_u.SetAcceptedAt(*v)
	}
	return _u
}

// ClearAcceptedAt clears the value of the "accepted_at" field.
func (_u *HandoffUpdateOne) ClearAcceptedAt() *HandoffUpdateOne {
	_u.mutation.ClearAcceptedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *HandoffUpdateOne) SetCompletedAt(v time.Time) *HandoffUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *HandoffUpdateOne) SetNillableCompletedAt(v *time.Time) *HandoffUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *HandoffUpdateOne) ClearCompletedAt() *HandoffUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *HandoffUpdateOne) SetMetadata(v map[string]interface{}) *HandoffUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *HandoffUpdateOne) ClearMetadata() *HandoffUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// Mutation returns the HandoffMutation object of the builder.
func (_u *HandoffUpdateOne) Mutation() *HandoffMutation {
	return _u.mutation
}

// Where appends a list predicates to the HandoffUpdate builder.
func (_u *HandoffUpdateOne) Where(ps ...predicate.Handoff) *HandoffUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *HandoffUpdateOne) Select(field string, fields ...string) *HandoffUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Handoff entity.
func (_u *HandoffUpdateOne) Save(ctx context.Context) (*Handoff, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HandoffUpdateOne) SaveX(ctx context.Context) *Handoff {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *HandoffUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HandoffUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HandoffUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := handoff.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Handoff.status": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Handoff.session"`)
	}
	return nil
}

func (_u *HandoffUpdateOne) sqlSave(ctx context.Context) (_node *Handoff, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(handoff.Table, handoff.Columns, sqlgraph.NewFieldSpec(handoff.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Handoff.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, handoff.FieldID)
		for _, f := range fields {
			if !handoff.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != handoff.FieldID {
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
	if value, ok := _u.mutation.Context(); ok {
		_spec.SetField(handoff.FieldContext, field.TypeJSON, value)
	}
	if _u.mutation.ContextCleared() {
		_spec.ClearField(handoff.FieldContext, field.TypeJSON)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(handoff.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(handoff.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(handoff.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AcceptedAt(); ok {
		_spec.SetField(handoff.FieldAcceptedAt, field.TypeTime, value)
	}
	if _u.mutation.AcceptedAtCleared() {
		_spec.ClearField(handoff.FieldAcceptedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(handoff.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(handoff.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(handoff.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(handoff.FieldMetadata, field.TypeJSON)
	}
	_node = &Handoff{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{handoff.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
