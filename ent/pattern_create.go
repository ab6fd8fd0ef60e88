// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	pgvector "github.com/pgvector/pgvector-go"
	"github.com/sergeville/Archon/ent/pattern"
	"github.com/sergeville/Archon/ent/patternobservation"
)

// PatternCreate is the builder for creating a Pattern entity.
type PatternCreate struct {
	config
	mutation *PatternMutation
	hooks    []Hook
}

// SetPatternType sets the "pattern_type" field.
func (_c *PatternCreate) SetPatternType(v pattern.PatternType) *PatternCreate {
	_c.mutation.SetPatternType(v)
	return _c
}

// SetDomain sets the "domain" field.
func (_c *PatternCreate) SetDomain(v string) *PatternCreate {
	_c.mutation.SetDomain(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *PatternCreate) SetDescription(v string) *PatternCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetAction sets the "action" field.
func (_c *PatternCreate) SetAction(v string) *PatternCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetOutcome sets the "outcome" field.
func (_c *PatternCreate) SetOutcome(v string) *PatternCreate {
	_c.mutation.SetOutcome(v)
	return _c
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_c *PatternCreate) SetNillableOutcome(v *string) *PatternCreate {
	if v != nil {
		_c.SetOutcome(*v)
	}
	return _c
}

// SetContext sets the "context" field.
func (_c *PatternCreate) SetContext(v map[string]interface{}) *PatternCreate {
	_c.mutation.SetContext(v)
	return _c
}

// SetEmbedding sets the "embedding" field.
func (_c *PatternCreate) SetEmbedding(v pgvector.Vector) *PatternCreate {
	_c.mutation.SetEmbedding(v)
	return _c
}

// SetNillableEmbedding sets the "embedding" field if the given value is not nil.
func (_c *PatternCreate) SetNillableEmbedding(v *pgvector.Vector) *PatternCreate {
	if v != nil {
		_c.SetEmbedding(*v)
	}
	return _c
}

// SetCreatedBy sets the "created_by" field.
func (_c *PatternCreate) SetCreatedBy(v string) *PatternCreate {
	_c.mutation.SetCreatedBy(v)
	return _c
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_c *PatternCreate) SetNillableCreatedBy(v *string) *PatternCreate {
	if v != nil {
		_c.SetCreatedBy(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *PatternCreate) SetMetadata(v map[string]interface{}) *PatternCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PatternCreate) SetCreatedAt(v time.Time) *PatternCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PatternCreate) SetNillableCreatedAt(v *time.Time) *PatternCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PatternCreate) SetID(v string) *PatternCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddObservationIDs adds the "observations" edge to the PatternObservation entity by IDs.
func (_c *PatternCreate) AddObservationIDs(ids ...string) *PatternCreate {
	_c.mutation.AddObservationIDs(ids...)
	return _c
}

// AddObservations adds the "observations" edges to the PatternObservation entity.
func (_c *PatternCreate) AddObservations(v ...*PatternObservation) *PatternCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddObservationIDs(ids...)
}

// Mutation returns the PatternMutation object of the builder.
func (_c *PatternCreate) Mutation() *PatternMutation {
	return _c.mutation
}

// Save creates the Pattern in the database.
func (_c *PatternCreate) Save(ctx context.Context) (*Pattern, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PatternCreate) SaveX(ctx context.Context) *Pattern {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PatternCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PatternCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PatternCreate) defaults() {
	if _, ok := _c.mutation.CreatedBy(); !ok {
		v := pattern.DefaultCreatedBy
		_c.mutation.SetCreatedBy(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := pattern.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PatternCreate) check() error {
	if _, ok := _c.mutation.PatternType(); !ok {
		return &ValidationError{Name: "pattern_type", err: errors.New(`ent: missing required field "Pattern.pattern_type"`)}
	}
	if v, ok := _c.mutation.PatternType(); ok {
		if err := pattern.PatternTypeValidator(v); err != nil {
			return &ValidationError{Name: "pattern_type", err: fmt.Errorf(`ent: validator failed for field "Pattern.pattern_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Domain(); !ok {
		return &ValidationError{Name: "domain", err: errors.New(`ent: missing required field "Pattern.domain"`)}
	}
	if v, ok := _c.mutation.Domain(); ok {
		if err := pattern.DomainValidator(v); err != nil {
			return &ValidationError{Name: "domain", err: fmt.Errorf(`ent: validator failed for field "Pattern.domain": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "Pattern.description"`)}
	}
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "Pattern.action"`)}
	}
	if _, ok := _c.mutation.CreatedBy(); !ok {
		return &ValidationError{Name: "created_by", err: errors.New(`ent: missing required field "Pattern.created_by"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Pattern.created_at"`)}
	}
	return nil
}

func (_c *PatternCreate) sqlSave(ctx context.Context) (*Pattern, error) {
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
			return nil, fmt.Errorf("unexpected Pattern.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PatternCreate) createSpec() (*Pattern, *sqlgraph.CreateSpec) {
	var (
		_node = &Pattern{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(pattern.Table, sqlgraph.NewFieldSpec(pattern.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.PatternType(); ok {
		_spec.SetField(pattern.FieldPatternType, field.TypeEnum, value)
		_node.PatternType = value
	}
	if value, ok := _c.mutation.Domain(); ok {
		_spec.SetField(pattern.FieldDomain, field.TypeString, value)
		_node.Domain = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(pattern.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(pattern.FieldAction, field.TypeString, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.Outcome(); ok {
		_spec.SetField(pattern.FieldOutcome, field.TypeString, value)
		_node.Outcome = &value
	}
	if value, ok := _c.mutation.Context(); ok {
		_spec.SetField(pattern.FieldContext, field.TypeJSON, value)
		_node.Context = value
	}
	if value, ok := _c.mutation.Embedding(); ok {
		_spec.SetField(pattern.FieldEmbedding, field.TypeOther, value)
		_node.Embedding = &value
	}
	if value, ok := _c.mutation.CreatedBy(); ok {
		_spec.SetField(pattern.FieldCreatedBy, field.TypeString, value)
		_node.CreatedBy = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(pattern.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(pattern.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ObservationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pattern.ObservationsTable,
			Columns: []string{pattern.ObservationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patternobservation.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// PatternCreateBulk is the builder for creating many Pattern entities in bulk.
type PatternCreateBulk struct {
	config
	err      error
	builders []*PatternCreate
}

// Save creates the Pattern entities in the database.
func (_c *PatternCreateBulk) Save(ctx context.Context) ([]*Pattern, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Pattern, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PatternMutation)
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
func (_c *PatternCreateBulk) SaveX(ctx context.Context) []*Pattern {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PatternCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PatternCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
