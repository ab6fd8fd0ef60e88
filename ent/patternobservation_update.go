// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/sergeville/Archon/ent/patternobservation"
	"github.com/sergeville/Archon/ent/predicate"
)

// PatternObservationUpdate is the builder for updating PatternObservation entities.
type PatternObservationUpdate struct {
	config
	hooks    []Hook
	mutation *PatternObservationMutation
}

// Where appends a list predicates to the PatternObservationUpdate builder.
func (_u *PatternObservationUpdate) Where(ps ...predicate.PatternObservation) *PatternObservationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *PatternObservationUpdate) SetSessionID(v string) *PatternObservationUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *PatternObservationUpdate) SetNillableSessionID(v *string) *PatternObservationUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *PatternObservationUpdate) ClearSessionID() *PatternObservationUpdate {
	_u.mutation.ClearSessionID()
	return _u
}

// SetSuccessRating sets the "success_rating" field.
func (_u *PatternObservationUpdate) SetSuccessRating(v int) *PatternObservationUpdate {
	_u.mutation.ResetSuccessRating()
	_u.mutation.SetSuccessRating(v)
	return _u
}

// SetNillableSuccessRating sets the "success_rating" field if the given value is not nil.
func (_u *PatternObservationUpdate) SetNillableSuccessRating(v *int) *PatternObservationUpdate {
	if v != nil {
		_u.SetSuccessRating(*v)
	}
	return _u
}

// AddSuccessRating adds value to the "success_rating" field.
func (_u *PatternObservationUpdate) AddSuccessRating(v int) *PatternObservationUpdate {
	_u.mutation.AddSuccessRating(v)
	return _u
}

// ClearSuccessRating clears the value of the "success_rating" field.
func (_u *PatternObservationUpdate) ClearSuccessRating() *PatternObservationUpdate {
	_u.mutation.ClearSuccessRating()
	return _u
}

// SetFeedback sets the "feedback" field.
func (_u *PatternObservationUpdate) SetFeedback(v string) *PatternObservationUpdate {
	_u.mutation.SetFeedback(v)
	return _u
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (_u *PatternObservationUpdate) SetNillableFeedback(v *string) *PatternObservationUpdate {
	if v != nil {
		_u.SetFeedback(*v)
	}
	return _u
}

// ClearFeedback clears the value of the "feedback" field.
func (_u *PatternObservationUpdate) ClearFeedback() *PatternObservationUpdate {
	_u.mutation.ClearFeedback()
	return _u
}

// Mutation returns the PatternObservationMutation object of the builder.
func (_u *PatternObservationUpdate) Mutation() *PatternObservationMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PatternObservationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PatternObservationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PatternObservationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PatternObservationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PatternObservationUpdate) check() error {
	if v, ok := _u.mutation.SuccessRating(); ok {
		if err := patternobservation.SuccessRatingValidator(v); err != nil {
			return &ValidationError{Name: "success_rating", err: fmt.Errorf(`ent: validator failed for field "PatternObservation.success_rating": %w`, err)}
		}
	}
	if _u.mutation.PatternCleared() && len(_u.mutation.PatternIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PatternObservation.pattern"`)
	}
	return nil
}

func (_u *PatternObservationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(patternobservation.Table, patternobservation.Columns, sqlgraph.NewFieldSpec(patternobservation.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(patternobservation.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(patternobservation.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.SuccessRating(); ok {
		_spec.SetField(patternobservation.FieldSuccessRating, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSuccessRating(); ok {
		_spec.AddField(patternobservation.FieldSuccessRating, field.TypeInt, value)
	}
	if _u.mutation.SuccessRatingCleared() {
		_spec.ClearField(patternobservation.FieldSuccessRating, field.TypeInt)
	}
	if value, ok := _u.mutation.Feedback(); ok {
		_spec.SetField(patternobservation.FieldFeedback, field.TypeString, value)
	}
	if _u.mutation.FeedbackCleared() {
		_spec.ClearField(patternobservation.FieldFeedback, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{patternobservation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PatternObservationUpdateOne is the builder for updating a single PatternObservation entity.
type PatternObservationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PatternObservationMutation
}

// SetSessionID sets the "session_id" field.
func (_u *PatternObservationUpdateOne) SetSessionID(v string) *PatternObservationUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *PatternObservationUpdateOne) SetNillableSessionID(v *string) *PatternObservationUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *PatternObservationUpdateOne) ClearSessionID() *PatternObservationUpdateOne {
	_u.mutation.ClearSessionID()
	return _u
}

// SetSuccessRating sets the "success_rating" field.
func (_u *PatternObservationUpdateOne) SetSuccessRating(v int) *PatternObservationUpdateOne {
	_u.mutation.ResetSuccessRating()
	_u.mutation.SetSuccessRating(v)
	return _u
}

// SetNillableSuccessRating sets the "success_rating" field if the given value is not nil.
func (_u *PatternObservationUpdateOne) SetNillableSuccessRating(v *int) *PatternObservationUpdateOne {
	if v != nil {
		_u.SetSuccessRating(*v)
	}
	return _u
}

// AddSuccessRating adds value to the "success_rating" field.
func (_u *PatternObservationUpdateOne) AddSuccessRating(v int) *PatternObservationUpdateOne {
	_u.mutation.AddSuccessRating(v)
	return _u
}

// ClearSuccessRating clears the value of the "success_rating" field.
func (_u *PatternObservationUpdateOne) ClearSuccessRating() *PatternObservationUpdateOne {
	_u.mutation.ClearSuccessRating()
	return _u
}

// SetFeedback sets the "feedback" field.
func (_u *PatternObservationUpdateOne) SetFeedback(v string) *PatternObservationUpdateOne {
	_u.mutation.SetFeedback(v)
	return _u
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (_u *PatternObservationUpdateOne) SetNillableFeedback(v *string) *PatternObservationUpdateOne {
	if v != nil {
		_u.SetFeedback(*v)
	}
	return _u
}

// ClearFeedback clears the value of the "feedback" field.
func (_u *PatternObservationUpdateOne) ClearFeedback() *PatternObservationUpdateOne {
	_u.mutation.ClearFeedback()
	return _u
}

// Mutation returns the PatternObservationMutation object of the builder.
func (_u *PatternObservationUpdateOne) Mutation() *PatternObservationMutation {
	return _u.mutation
}

// Where appends a list predicates to the PatternObservationUpdate builder.
func (_u *PatternObservationUpdateOne) Where(ps ...predicate.PatternObservation) *PatternObservationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PatternObservationUpdateOne) Select(field string, fields ...string) *PatternObservationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PatternObservation entity.
func (_u *PatternObservationUpdateOne) Save(ctx context.Context) (*PatternObservation, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PatternObservationUpdateOne) SaveX(ctx context.Context) *PatternObservation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PatternObservationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PatternObservationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PatternObservationUpdateOne) check() error {
	if v, ok := _u.mutation.SuccessRating(); ok {
		if err := patternobservation.SuccessRatingValidator(v); err != nil {
			return &ValidationError{Name: "success_rating", err: fmt.Errorf(`ent: validator failed for field "PatternObservation.success_rating": %w`, err)}
		}
	}
	if _u.mutation.PatternCleared() && len(_u.mutation.PatternIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PatternObservation.pattern"`)
	}
	return nil
}

func (_u *PatternObservationUpdateOne) sqlSave(ctx context.Context) (_node *PatternObservation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(patternobservation.Table, patternobservation.Columns, sqlgraph.NewFieldSpec(patternobservation.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PatternObservation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, patternobservation.FieldID)
		for _, f := range fields {
			if !patternobservation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != patternobservation.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(patternobservation.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(patternobservation.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.SuccessRating(); ok {
		_spec.SetField(patternobservation.FieldSuccessRating, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSuccessRating(); ok {
		_spec.AddField(patternobservation.FieldSuccessRating, field.TypeInt, value)
	}
	if _u.mutation.SuccessRatingCleared() {
		_spec.ClearField(patternobservation.FieldSuccessRating, field.TypeInt)
	}
	if value, ok := _u.mutation.Feedback(); ok {
		_spec.SetField(patternobservation.FieldFeedback, field.TypeString, value)
	}
	if _u.mutation.FeedbackCleared() {
		_spec.ClearField(patternobservation.FieldFeedback, field.TypeString)
	}
	_node = &PatternObservation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{patternobservation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
