// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/sergeville/Archon/ent/handoff"
	"github.com/sergeville/Archon/ent/session"
)

// HandoffCreate is the builder for creating a Handoff entity.
type HandoffCreate struct {
	config
	mutation *HandoffMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *HandoffCreate) SetSessionID(v string) *HandoffCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetFromAgent sets the "from_agent" field.
func (_c *HandoffCreate) SetFromAgent(v string) *HandoffCreate {
	_c.mutation.SetFromAgent(v)
	return _c
}

// SetToAgent sets the "to_agent" field.
func (_c *HandoffCreate) SetToAgent(v string) *HandoffCreate {
	_c.mutation.SetToAgent(v)
	return _c
}

// SetContext sets the "context" field.
func (_c *HandoffCreate) SetContext(v map[string]interface{}) *HandoffCreate {
	_c.mutation.SetContext(v)
	return _c
}

// SetNotes sets the "notes" field.
func (_c *HandoffCreate) SetNotes(v string) *HandoffCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *HandoffCreate) SetNillableNotes(v *string) *HandoffCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *HandoffCreate) SetStatus(v handoff.Status) *HandoffCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *HandoffCreate) SetNillableStatus(v *handoff.Status) *HandoffCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *HandoffCreate) SetCreatedAt(v time.Time) *HandoffCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *HandoffCreate) SetNillableCreatedAt(v *time.Time) *HandoffCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetAcceptedAt sets the "accepted_at" field.
func (_c *HandoffCreate) SetAcceptedAt(v time.Time) *HandoffCreate {
	_c.mutation.SetAcceptedAt(v)
	return _c
}

// SetNillableAcceptedAt sets the "accepted_at" field if the given value is not nil.
func (_c *HandoffCreate) SetNillableAcceptedAt(v *time.Time) *HandoffCreate {
	if v != nil {
		_c.SetAcceptedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *HandoffCreate) SetCompletedAt(v time.Time) *HandoffCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *HandoffCreate) SetNillableCompletedAt(v *time.Time) *HandoffCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *HandoffCreate) SetMetadata(v map[string]interface{}) *HandoffCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetID sets the "id" field.
func (_c *HandoffCreate) SetID(v string) *HandoffCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSession sets the "session" edge to the Session entity.
func (_c *HandoffCreate) SetSession(v *Session) *HandoffCreate {
	return _c.SetSessionID(v.ID)
}

// Mutation returns the HandoffMutation object of the builder.
func (_c *HandoffCreate) Mutation() *HandoffMutation {
	return _c.mutation
}

// Save creates the Handoff in the database.
func (_c *HandoffCreate) Save(ctx context.Context) (*Handoff, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *HandoffCreate) SaveX(ctx context.Context) *Handoff {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HandoffCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HandoffCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *HandoffCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := handoff.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := handoff.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *HandoffCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "Handoff.session_id"`)}
	}
	if _, ok := _c.mutation.FromAgent(); !ok {
		return &ValidationError{Name: "from_agent", err: errors.New(`ent: missing required field "Handoff.from_agent"`)}
	}
	if v, ok := _c.mutation.FromAgent(); ok {
		if err := handoff.FromAgentValidator(v); err != nil {
			return &ValidationError{Name: "from_agent", err: fmt.Errorf(`ent: validator failed for field "Handoff.from_agent": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ToAgent(); !ok {
		return &ValidationError{Name: "to_agent", err: errors.New(`ent: missing required field "Handoff.to_agent"`)}
	}
	if v, ok := _c.mutation.ToAgent(); ok {
		if err := handoff.ToAgentValidator(v); err != nil {
			return &ValidationError{Name: "to_agent", err: fmt.Errorf(`ent: validator failed for field "Handoff.to_agent": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Handoff.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := handoff.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Handoff.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Handoff.created_at"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "Handoff.session"`)}
	}
	return nil
}

func (_c *HandoffCreate) sqlSave(ctx context.Context) (*Handoff, error) {
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
			return nil, fmt.Errorf("unexpected Handoff.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *HandoffCreate) createSpec() (*Handoff, *sqlgraph.CreateSpec) {
	var (
		_node = &Handoff{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(handoff.Table, sqlgraph.NewFieldSpec(handoff.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.FromAgent(); ok {
		_spec.SetField(handoff.FieldFromAgent, field.TypeString, value)
		_node.FromAgent = value
	}
	if value, ok := _c.mutation.ToAgent(); ok {
		_spec.SetField(handoff.FieldToAgent, field.TypeString, value)
		_node.ToAgent = value
	}
	if value, ok := _c.mutation.Context(); ok {
		_spec.SetField(handoff.FieldContext, field.TypeJSON, value)
		_node.Context = value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(handoff.FieldNotes, field.TypeString, value)
		_node.Notes = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(handoff.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(handoff.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.AcceptedAt(); ok {
		_spec.SetField(handoff.FieldAcceptedAt, field.TypeTime, value)
		_node.AcceptedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(handoff.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(handoff.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   handoff.SessionTable,
			Columns: []string{handoff.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(session.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SessionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// HandoffCreateBulk is the builder for creating many Handoff entities in bulk.
type HandoffCreateBulk struct {
	config
	err      error
	builders []*HandoffCreate
}

// Save creates the Handoff entities in the database.
func (_c *HandoffCreateBulk) Save(ctx context.Context) ([]*Handoff, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Handoff, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*HandoffMutation)
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
func (_c *HandoffCreateBulk) SaveX(ctx context.Context) []*Handoff {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HandoffCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HandoffCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
