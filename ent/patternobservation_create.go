// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/sergeville/Archon/ent/pattern"
	"github.com/sergeville/Archon/ent/patternobservation"
)

// PatternObservationCreate is the builder for creating a PatternObservation entity.
type PatternObservationCreate struct {
	config
	mutation *PatternObservationMutation
	hooks    []Hook
}

// SetPatternID sets the "pattern_id" field.
func (_c *PatternObservationCreate) SetPatternID(v string) *PatternObservationCreate {
	_c.mutation.SetPatternID(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *PatternObservationCreate) SetSessionID(v string) *PatternObservationCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_c *PatternObservationCreate) SetNillableSessionID(v *string) *PatternObservationCreate {
	if v != nil {
		_c.SetSessionID(*v)
	}
	return _c
}

// SetSuccessRating sets the "success_rating" field.
func (_c *PatternObservationCreate) SetSuccessRating(v int) *PatternObservationCreate {
	_c.mutation.SetSuccessRating(v)
	return _c
}

// SetNillableSuccessRating sets the "success_rating" field if the given value is not nil.
func (_c *PatternObservationCreate) SetNillableSuccessRating(v *int) *PatternObservationCreate {
	if v != nil {
		_c.SetSuccessRating(*v)
	}
	return _c
}

// SetFeedback sets the "feedback" field.
func (_c *PatternObservationCreate) SetFeedback(v string) *PatternObservationCreate {
	_c.mutation.SetFeedback(v)
	return _c
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (_c *PatternObservationCreate) SetNillableFeedback(v *string) *PatternObservationCreate {
	if v != nil {
		_c.SetFeedback(*v)
	}
	return _c
}

// SetObservedAt sets the "observed_at" field.
func (_c *PatternObservationCreate) SetObservedAt(v time.Time) *PatternObservationCreate {
	_c.mutation.SetObservedAt(v)
	return _c
}

// SetNillableObservedAt sets the "observed_at" field if the given value is not nil.
func (_c *PatternObservationCreate) SetNillableObservedAt(v *time.Time) *PatternObservationCreate {
	if v != nil {
		_c.SetObservedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PatternObservationCreate) SetID(v string) *PatternObservationCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetPattern sets the "pattern" edge to the Pattern entity.
func (_c *PatternObservationCreate) SetPattern(v *Pattern) *PatternObservationCreate {
	return _c.SetPatternID(v.ID)
}

// Mutation returns the PatternObservationMutation object of the builder.
func (_c *PatternObservationCreate) Mutation() *PatternObservationMutation {
	return _c.mutation
}

// Save creates the PatternObservation in the database.
func (_c *PatternObservationCreate) Save(ctx context.Context) (*PatternObservation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PatternObservationCreate) SaveX(ctx context.Context) *PatternObservation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PatternObservationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PatternObservationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PatternObservationCreate) defaults() {
	if _, ok := _c.mutation.ObservedAt(); !ok {
		v := patternobservation.DefaultObservedAt()
		_c.mutation.SetObservedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PatternObservationCreate) check() error {
	if _, ok := _c.mutation.PatternID(); !ok {
		return &ValidationError{Name: "pattern_id", err: errors.New(`ent: missing required field "PatternObservation.pattern_id"`)}
	}
	if v, ok := _c.mutation.SuccessRating(); ok {
		if err := patternobservation.SuccessRatingValidator(v); err != nil {
			return &ValidationError{Name: "success_rating", err: fmt.Errorf(`ent: validator failed for field "PatternObservation.success_rating": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ObservedAt(); !ok {
		return &ValidationError{Name: "observed_at", err: errors.New(`ent: missing required field "PatternObservation.observed_at"`)}
	}
	if len(_c.mutation.PatternIDs()) == 0 {
		return &ValidationError{Name: "pattern", err: errors.New(`ent: missing required edge "PatternObservation.pattern"`)}
	}
	return nil
}

func (_c *PatternObservationCreate) sqlSave(ctx context.Context) (*PatternObservation, error) {
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
			return nil, fmt.Errorf("unexpected PatternObservation.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PatternObservationCreate) createSpec() (*PatternObservation, *sqlgraph.CreateSpec) {
	var (
		_node = &PatternObservation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(patternobservation.Table, sqlgraph.NewFieldSpec(patternobservation.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(patternobservation.FieldSessionID, field.TypeString, value)
		_node.SessionID = &value
	}
	if value, ok := _c.mutation.SuccessRating(); ok {
		_spec.SetField(patternobservation.FieldSuccessRating, field.TypeInt, value)
		_node.SuccessRating = &value
	}
	if value, ok := _c.mutation.Feedback(); ok {
		_spec.SetField(patternobservation.FieldFeedback, field.TypeString, value)
		_node.Feedback = &value
	}
	if value, ok := _c.mutation.ObservedAt(); ok {
		_spec.SetField(patternobservation.FieldObservedAt, field.TypeTime, value)
		_node.ObservedAt = value
	}
	if nodes := _c.mutation.PatternIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   patternobservation.PatternTable,
			Columns: []string{patternobservation.PatternColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(pattern.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.PatternID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// PatternObservationCreateBulk is the builder for creating many PatternObservation entities in bulk.
type PatternObservationCreateBulk struct {
	config
	err      error
	builders []*PatternObservationCreate
}

// Save creates the PatternObservation entities in the database.
func (_c *PatternObservationCreateBulk) Save(ctx context.Context) ([]*PatternObservation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PatternObservation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PatternObservationMutation)
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
func (_c *PatternObservationCreateBulk) SaveX(ctx context.Context) []*PatternObservation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PatternObservationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PatternObservationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
