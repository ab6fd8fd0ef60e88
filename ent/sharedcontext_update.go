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
	"github.com/sergeville/Archon/ent/sharedcontext"
)

// SharedContextUpdate is the builder for updating SharedContext entities.
type SharedContextUpdate struct {
	config
	hooks    []Hook
	mutation *SharedContextMutation
}

// Where appends a list predicates to the SharedContextUpdate builder.
func (_u *SharedContextUpdate) Where(ps ...predicate.SharedContext) *SharedContextUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetKey sets the "key" field.
func (_u *SharedContextUpdate) SetKey(v string) *SharedContextUpdate {
	_u.mutation.SetKey(v)
	return _u
}

// SetNillableKey sets the "key" field if the given value is not nil.
func (_u *SharedContextUpdate) SetNillableKey(v *string) *SharedContextUpdate {
	if v != nil {
		_u.SetKey(*v)
	}
	return _u
}

// SetValue sets the "value" field.
func (_u *SharedContextUpdate) SetValue(v map[string]interface{}) *SharedContextUpdate {
	_u.mutation.SetValue(v)
	return _u
}

// SetSetBy sets the "set_by" field.
func (_u *SharedContextUpdate) SetSetBy(v string) *SharedContextUpdate {
	_u.mutation.SetSetBy(v)
	return _u
}

// SetNillableSetBy sets the "set_by" field if the given value is not nil.
func (_u *SharedContextUpdate) SetNillableSetBy(v *string) *SharedContextUpdate {
	if v != nil {
		_u.SetSetBy(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *SharedContextUpdate) SetSessionID(v string) *SharedContextUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SharedContextUpdate) SetNillableSessionID(v *string) *SharedContextUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *SharedContextUpdate) ClearSessionID() *SharedContextUpdate {
	_u.mutation.ClearSessionID()
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *SharedContextUpdate) SetExpiresAt(v time.Time) *SharedContextUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *SharedContextUpdate) SetNillableExpiresAt(v *time.Time) *SharedContextUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (_u *SharedContextUpdate) ClearExpiresAt() *SharedContextUpdate {
	_u.mutation.ClearExpiresAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SharedContextUpdate) SetUpdatedAt(v time.Time) *SharedContextUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SharedContextMutation object of the builder.
func (_u *SharedContextUpdate) Mutation() *SharedContextMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SharedContextUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SharedContextUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SharedContextUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SharedContextUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SharedContextUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := sharedcontext.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SharedContextUpdate) check() error {
	if v, ok := _u.mutation.Key(); ok {
		if err := sharedcontext.KeyValidator(v); err != nil {
			return &ValidationError{Name: "key", err: fmt.Errorf(`ent: validator failed for field "SharedContext.key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SetBy(); ok {
		if err := sharedcontext.SetByValidator(v); err != nil {
			return &ValidationError{Name: "set_by", err: fmt.Errorf(`ent: validator failed for field "SharedContext.set_by": %w`, err)}
		}
	}
	return nil
}

func (_u *SharedContextUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sharedcontext.Table, sharedcontext.Columns, sqlgraph.NewFieldSpec(sharedcontext.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Key(); ok {
		_spec.SetField(sharedcontext.FieldKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(sharedcontext.FieldValue, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.SetBy(); ok {
		_spec.SetField(sharedcontext.FieldSetBy, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(sharedcontext.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(sharedcontext.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(sharedcontext.FieldExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.ExpiresAtCleared() {
		_spec.ClearField(sharedcontext.FieldExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(sharedcontext.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sharedcontext.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SharedContextUpdateOne is the builder for updating a single SharedContext entity.
type SharedContextUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SharedContextMutation
}

// SetKey sets the "key" field.
func (_u *SharedContextUpdateOne) SetKey(v string) *SharedContextUpdateOne {
	_u.mutation.SetKey(v)
	return _u
}

// SetNillableKey sets the "key" field if the given value is not nil.
func (_u *SharedContextUpdateOne) SetNillableKey(v *string) *SharedContextUpdateOne {
	if v != nil {
		_u.SetKey(*v)
	}
	return _u
}

// SetValue sets the "value" field.
func (_u *SharedContextUpdateOne) SetValue(v map[string]interface{}) *SharedContextUpdateOne {
	_u.mutation.SetValue(v)
	return _u
}

// SetSetBy sets the "set_by" field.
func (_u *SharedContextUpdateOne) SetSetBy(v string) *SharedContextUpdateOne {
	_u.mutation.SetSetBy(v)
	return _u
}

// SetNillableSetBy sets the "set_by" field if the given value is not nil.
func (_u *SharedContextUpdateOne) SetNillableSetBy(v *string) *SharedContextUpdateOne {
	if v != nil {
		_u.SetSetBy(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *SharedContextUpdateOne) SetSessionID(v string) *SharedContextUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SharedContextUpdateOne) SetNillableSessionID(v *string) *SharedContextUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *SharedContextUpdateOne) ClearSessionID() *SharedContextUpdateOne {
	_u.mutation.ClearSessionID()
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *SharedContextUpdateOne) SetExpiresAt(v time.Time) *SharedContextUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *SharedContextUpdateOne) SetNillableExpiresAt(v *time.Time) *SharedContextUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (_u *SharedContextUpdateOne) ClearExpiresAt() *SharedContextUpdateOne {
	_u.mutation.ClearExpiresAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SharedContextUpdateOne) SetUpdatedAt(v time.Time) *SharedContextUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SharedContextMutation object of the builder.
func (_u *SharedContextUpdateOne) Mutation() *SharedContextMutation {
	return _u.mutation
}

// Where appends a list predicates to the SharedContextUpdate builder.
func (_u *SharedContextUpdateOne) Where(ps ...predicate.SharedContext) *SharedContextUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SharedContextUpdateOne) Select(field string, fields ...string) *SharedContextUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SharedContext entity.
func (_u *SharedContextUpdateOne) Save(ctx context.Context) (*SharedContext, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SharedContextUpdateOne) SaveX(ctx context.Context) *SharedContext {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SharedContextUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SharedContextUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SharedContextUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := sharedcontext.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SharedContextUpdateOne) check() error {
	if v, ok := _u.mutation.Key(); ok {
		if err := sharedcontext.KeyValidator(v); err != nil {
			return &ValidationError{Name: "key", err: fmt.Errorf(`ent: validator failed for field "SharedContext.key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SetBy(); ok {
		if err := sharedcontext.SetByValidator(v); err != nil {
			return &ValidationError{Name: "set_by", err: fmt.Errorf(`ent: validator failed for field "SharedContext.set_by": %w`, err)}
		}
	}
	return nil
}

func (_u *SharedContextUpdateOne) sqlSave(ctx context.Context) (_node *SharedContext, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sharedcontext.Table, sharedcontext.Columns, sqlgraph.NewFieldSpec(sharedcontext.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SharedContext.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sharedcontext.FieldID)
		for _, f := range fields {
			if !sharedcontext.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sharedcontext.FieldID {
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
	if value, ok := _u.mutation.Key(); ok {
		_spec.SetField(sharedcontext.FieldKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(sharedcontext.FieldValue, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.SetBy(); ok {
		_spec.SetField(sharedcontext.FieldSetBy, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(sharedcontext.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(sharedcontext.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(sharedcontext.FieldExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.ExpiresAtCleared() {
		_spec.ClearField(sharedcontext.FieldExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(sharedcontext.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &SharedContext{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sharedcontext.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
