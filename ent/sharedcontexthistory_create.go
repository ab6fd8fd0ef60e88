// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/sergeville/Archon/ent/sharedcontexthistory"
)

// SharedContextHistoryCreate is the builder for creating a SharedContextHistory entity.
type SharedContextHistoryCreate struct {
	config
	mutation *SharedContextHistoryMutation
	hooks    []Hook
}

// SetKey sets the "key" field.
func (_c *SharedContextHistoryCreate) SetKey(v string) *SharedContextHistoryCreate {
	_c.mutation.SetKey(v)
	return _c
}

// SetOldValue sets the "old_value" field.
func (_c *SharedContextHistoryCreate) SetOldValue(v map[string]interface{}) *SharedContextHistoryCreate {
	_c.mutation.SetOldValue(v)
	return _c
}

// SetNewValue sets the "new_value" field.
func (_c *SharedContextHistoryCreate) SetNewValue(v map[string]interface{}) *SharedContextHistoryCreate {
	_c.mutation.SetNewValue(v)
	return _c
}

// SetChangedBy sets the "changed_by" field.
func (_c *SharedContextHistoryCreate) SetChangedBy(v string) *SharedContextHistoryCreate {
	_c.mutation.SetChangedBy(v)
	return _c
}

// SetChangedAt sets the "changed_at" field.
func (_c *SharedContextHistoryCreate) SetChangedAt(v time.Time) *SharedContextHistoryCreate {
	_c.mutation.SetChangedAt(v)
	return _c
}

// SetNillableChangedAt sets the "changed_at" field if the given value is not nil.
func (_c *SharedContextHistoryCreate) SetNillableChangedAt(v *time.Time) *SharedContextHistoryCreate {
	if v != nil {
		_c.SetChangedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SharedContextHistoryCreate) SetID(v string) *SharedContextHistoryCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the SharedContextHistoryMutation object of the builder.
func (_c *SharedContextHistoryCreate) Mutation() *SharedContextHistoryMutation {
	return _c.mutation
}

// Save creates the SharedContextHistory in the database.
func (_c *SharedContextHistoryCreate) Save(ctx context.Context) (*SharedContextHistory, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SharedContextHistoryCreate) SaveX(ctx context.Context) *SharedContextHistory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SharedContextHistoryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SharedContextHistoryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SharedContextHistoryCreate) defaults() {
	if _, ok := _c.mutation.ChangedAt(); !ok {
		v := sharedcontexthistory.DefaultChangedAt()
		_c.mutation.SetChangedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SharedContextHistoryCreate) check() error {
	if _, ok := _c.mutation.Key(); !ok {
		return &ValidationError{Name: "key", err: errors.New(`ent: missing required field "SharedContextHistory.key"`)}
	}
	if v, ok := _c.mutation.Key(); ok {
		if err := sharedcontexthistory.KeyValidator(v); err != nil {
			return &ValidationError{Name: "key", err: fmt.Errorf(`ent: validator failed for field "SharedContextHistory.key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.NewValue(); !ok {
		return &ValidationError{Name: "new_value", err: errors.New(`ent: missing required field "SharedContextHistory.new_value"`)}
	}
	if _, ok := _c.mutation.ChangedBy(); !ok {
		return &ValidationError{Name: "changed_by", err: errors.New(`ent: missing required field "SharedContextHistory.changed_by"`)}
	}
	if v, ok := _c.mutation.ChangedBy(); ok {
		if err := sharedcontexthistory.ChangedByValidator(v); err != nil {
			return &ValidationError{Name: "changed_by", err: fmt.Errorf(`ent: validator failed for field "SharedContextHistory.changed_by": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ChangedAt(); !ok {
		return &ValidationError{Name: "changed_at", err: errors.New(`ent: missing required field "SharedContextHistory.changed_at"`)}
	}
	return nil
}

func (_c *SharedContextHistoryCreate) sqlSave(ctx context.Context) (*SharedContextHistory, error) {
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
			return nil, fmt.Errorf("unexpected SharedContextHistory.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SharedContextHistoryCreate) createSpec() (*SharedContextHistory, *sqlgraph.CreateSpec) {
	var (
		_node = &SharedContextHistory{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sharedcontexthistory.Table, sqlgraph.NewFieldSpec(sharedcontexthistory.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Key(); ok {
		_spec.SetField(sharedcontexthistory.FieldKey, field.TypeString, value)
		_node.Key = value
	}
	if value, ok := _c.mutation.OldValue(); ok {
		_spec.SetField(sharedcontexthistory.FieldOldValue, field.TypeJSON, value)
		_node.OldValue = value
	}
	if value, ok := _c.mutation.NewValue(); ok {
		_spec.SetField(sharedcontexthistory.FieldNewValue, field.TypeJSON, value)
		_node.NewValue = value
	}
	if value, ok := _c.mutation.ChangedBy(); ok {
		_spec.SetField(sharedcontexthistory.FieldChangedBy, field.TypeString, value)
		_node.ChangedBy = value
	}
	if value, ok := _c.mutation.ChangedAt(); ok {
		_spec.SetField(sharedcontexthistory.FieldChangedAt, field.TypeTime, value)
		_node.ChangedAt = value
	}
	return _node, _spec
}

// SharedContextHistoryCreateBulk is the builder for creating many SharedContextHistory entities in bulk.
type SharedContextHistoryCreateBulk struct {
	config
	err      error
	builders []*SharedContextHistoryCreate
}

// Save creates the SharedContextHistory entities in the database.
func (_c *SharedContextHistoryCreateBulk) Save(ctx context.Context) ([]*SharedContextHistory, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SharedContextHistory, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SharedContextHistoryMutation)
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
func (_c *SharedContextHistoryCreateBulk) SaveX(ctx context.Context) []*SharedContextHistory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SharedContextHistoryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SharedContextHistoryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
