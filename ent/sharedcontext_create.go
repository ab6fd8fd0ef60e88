// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/sergeville/Archon/ent/sharedcontext"
)

// SharedContextCreate is the builder for creating a SharedContext entity.
type SharedContextCreate struct {
	config
	mutation *SharedContextMutation
	hooks    []Hook
}

// SetKey sets the "key" field.
func (_c *SharedContextCreate) SetKey(v string) *SharedContextCreate {
	_c.mutation.SetKey(v)
	return _c
}

// SetValue sets the "value" field.
func (_c *SharedContextCreate) SetValue(v map[string]interface{}) *SharedContextCreate {
	_c.mutation.SetValue(v)
	return _c
}

// SetSetBy sets the "set_by" field.
func (_c *SharedContextCreate) SetSetBy(v string) *SharedContextCreate {
	_c.mutation.SetSetBy(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *SharedContextCreate) SetSessionID(v string) *SharedContextCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_c *SharedContextCreate) SetNillableSessionID(v *string) *SharedContextCreate {
	if v != nil {
		_c.SetSessionID(*v)
	}
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *SharedContextCreate) SetExpiresAt(v time.Time) *SharedContextCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_c *SharedContextCreate) SetNillableExpiresAt(v *time.Time) *SharedContextCreate {
	if v != nil {
		_c.SetExpiresAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SharedContextCreate) SetUpdatedAt(v time.Time) *SharedContextCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SharedContextCreate) SetNillableUpdatedAt(v *time.Time) *SharedContextCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SharedContextCreate) SetCreatedAt(v time.Time) *SharedContextCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SharedContextCreate) SetNillableCreatedAt(v *time.Time) *SharedContextCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SharedContextCreate) SetID(v string) *SharedContextCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the SharedContextMutation object of the builder.
func (_c *SharedContextCreate) Mutation() *SharedContextMutation {
	return _c.mutation
}

// Save creates the SharedContext in the database.
func (_c *SharedContextCreate) Save(ctx context.Context) (*SharedContext, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SharedContextCreate) SaveX(ctx context.Context) *SharedContext {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SharedContextCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SharedContextCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SharedContextCreate) defaults() {
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := sharedcontext.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := sharedcontext.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SharedContextCreate) check() error {
	if _, ok := _c.mutation.Key(); !ok {
		return &ValidationError{Name: "key", err: errors.New(`ent: missing required field "SharedContext.key"`)}
	}
	if v, ok := _c.mutation.Key(); ok {
		if err := sharedcontext.KeyValidator(v); err != nil {
			return &ValidationError{Name: "key", err: fmt.Errorf(`ent: validator failed for field "SharedContext.key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Value(); !ok {
		return &ValidationError{Name: "value", err: errors.New(`ent: missing required field "SharedContext.value"`)}
	}
	if _, ok := _c.mutation.SetBy(); !ok {
		return &ValidationError{Name: "set_by", err: errors.New(`ent: missing required field "SharedContext.set_by"`)}
	}
	if v, ok := _c.mutation.SetBy(); ok {
		if err := sharedcontext.SetByValidator(v); err != nil {
			return &ValidationError{Name: "set_by", err: fmt.Errorf(`ent: validator failed for field "SharedContext.set_by": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "SharedContext.updated_at"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SharedContext.created_at"`)}
	}
	return nil
}

func (_c *SharedContextCreate) sqlSave(ctx context.Context) (*SharedContext, error) {
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
			return nil, fmt.Errorf("unexpected SharedContext.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SharedContextCreate) createSpec() (*SharedContext, *sqlgraph.CreateSpec) {
	var (
		_node = &SharedContext{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sharedcontext.Table, sqlgraph.NewFieldSpec(sharedcontext.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Key(); ok {
		_spec.SetField(sharedcontext.FieldKey, field.TypeString, value)
		_node.Key = value
	}
	if value, ok := _c.mutation.Value(); ok {
		_spec.SetField(sharedcontext.FieldValue, field.TypeJSON, value)
		_node.Value = value
	}
	if value, ok := _c.mutation.SetBy(); ok {
		_spec.SetField(sharedcontext.FieldSetBy, field.TypeString, value)
		_node.SetBy = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(sharedcontext.FieldSessionID, field.TypeString, value)
		_node.SessionID = &value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(sharedcontext.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = &value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(sharedcontext.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(sharedcontext.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// SharedContextCreateBulk is the builder for creating many SharedContext entities in bulk.
type SharedContextCreateBulk struct {
	config
	err      error
	builders []*SharedContextCreate
}

// Save creates the SharedContext entities in the database.
func (_c *SharedContextCreateBulk) Save(ctx context.Context) ([]*SharedContext, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SharedContext, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SharedContextMutation)
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
func (_c *SharedContextCreateBulk) SaveX(ctx context.Context) []*SharedContext {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SharedContextCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SharedContextCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
