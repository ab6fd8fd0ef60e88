// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/sergeville/Archon/ent/predicate"
	"github.com/sergeville/Archon/ent/sharedcontexthistory"
)

// SharedContextHistoryUpdate is the builder for updating SharedContextHistory entities.
type SharedContextHistoryUpdate struct {
	config
	hooks    []Hook
	mutation *SharedContextHistoryMutation
}

// Where appends a list predicates to the SharedContextHistoryUpdate builder.
func (_u *SharedContextHistoryUpdate) Where(ps ...predicate.SharedContextHistory) *SharedContextHistoryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOldValue sets the "old_value" field.
func (_u *SharedContextHistoryUpdate) SetOldValue(v map[string]interface{}) *SharedContextHistoryUpdate {
	_u.mutation.SetOldValue(v)
	return _u
}

// ClearOldValue clears the value of the "old_value" field.
func (_u *SharedContextHistoryUpdate) ClearOldValue() *SharedContextHistoryUpdate {
	_u.mutation.ClearOldValue()
	return _u
}

// SetNewValue sets the "new_value" field.
func (_u *SharedContextHistoryUpdate) SetNewValue(v map[string]interface{}) *SharedContextHistoryUpdate {
	_u.mutation.SetNewValue(v)
	return _u
}

// Mutation returns the SharedContextHistoryMutation object of the builder.
func (_u *SharedContextHistoryUpdate) Mutation() *SharedContextHistoryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SharedContextHistoryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SharedContextHistoryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SharedContextHistoryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SharedContextHistoryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SharedContextHistoryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(sharedcontexthistory.Table, sharedcontexthistory.Columns, sqlgraph.NewFieldSpec(sharedcontexthistory.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OldValue(); ok {
		_spec.SetField(sharedcontexthistory.FieldOldValue, field.TypeJSON, value)
	}
	if _u.mutation.OldValueCleared() {
		_spec.ClearField(sharedcontexthistory.FieldOldValue, field.TypeJSON)
	}
	if value, ok := _u.mutation.NewValue(); ok {
		_spec.SetField(sharedcontexthistory.FieldNewValue, field.TypeJSON, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sharedcontexthistory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SharedContextHistoryUpdateOne is the builder for updating a single SharedContextHistory entity.
type SharedContextHistoryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SharedContextHistoryMutation
}

// SetOldValue sets the "old_value" field.
func (_u *SharedContextHistoryUpdateOne) SetOldValue(v map[string]interface{}) *SharedContextHistoryUpdateOne {
	_u.mutation.SetOldValue(v)
	return _u
}

// ClearOldValue clears the value of the "old_value" field.
func (_u *SharedContextHistoryUpdateOne) ClearOldValue() *SharedContextHistoryUpdateOne {
	_u.mutation.ClearOldValue()
	return _u
}

// SetNewValue sets the "new_value" field.
func (_u *SharedContextHistoryUpdateOne) SetNewValue(v map[string]interface{}) *SharedContextHistoryUpdateOne {
	_u.mutation.SetNewValue(v)
	return _u
}

// Mutation returns the SharedContextHistoryMutation object of the builder.
func (_u *SharedContextHistoryUpdateOne) Mutation() *SharedContextHistoryMutation {
	return _u.mutation
}

// Where appends a list predicates to the SharedContextHistoryUpdate builder.
func (_u *SharedContextHistoryUpdateOne) Where(ps ...predicate.SharedContextHistory) *SharedContextHistoryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SharedContextHistoryUpdateOne) Select(field string, fields ...string) *SharedContextHistoryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SharedContextHistory entity.
func (_u *SharedContextHistoryUpdateOne) Save(ctx context.Context) (*SharedContextHistory, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SharedContextHistoryUpdateOne) SaveX(ctx context.Context) *SharedContextHistory {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SharedContextHistoryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SharedContextHistoryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SharedContextHistoryUpdateOne) sqlSave(ctx context.Context) (_node *SharedContextHistory, err error) {
	_spec := sqlgraph.NewUpdateSpec(sharedcontexthistory.Table, sharedcontexthistory.Columns, sqlgraph.NewFieldSpec(sharedcontexthistory.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SharedContextHistory.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sharedcontexthistory.FieldID)
		for _, f := range fields {
			if !sharedcontexthistory.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sharedcontexthistory.FieldID {
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
	if value, ok := _u.mutation.OldValue(); ok {
		_spec.SetField(sharedcontexthistory.FieldOldValue, field.TypeJSON, value)
	}
	if _u.mutation.OldValueCleared() {
		_spec.ClearField(sharedcontexthistory.FieldOldValue, field.TypeJSON)
	}
	if value, ok := _u.mutation.NewValue(); ok {
		_spec.SetField(sharedcontexthistory.FieldNewValue, field.TypeJSON, value)
	}
	_node = &SharedContextHistory{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sharedcontexthistory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
