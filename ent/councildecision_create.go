// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/sergeville/Archon/ent/councildecision"
)

// CouncilDecisionCreate is the builder for creating a CouncilDecision entity.
type CouncilDecisionCreate struct {
	config
	mutation *CouncilDecisionMutation
	hooks    []Hook
}

// SetWorkOrderID sets the "work_order_id" field.
func (_c *CouncilDecisionCreate) SetWorkOrderID(v string) *CouncilDecisionCreate {
	_c.mutation.SetWorkOrderID(v)
	return _c
}

// SetRiskLevel sets the "risk_level" field.
func (_c *CouncilDecisionCreate) SetRiskLevel(v councildecision.RiskLevel) *CouncilDecisionCreate {
	_c.mutation.SetRiskLevel(v)
	return _c
}

// SetDecision sets the "decision" field.
func (_c *CouncilDecisionCreate) SetDecision(v councildecision.Decision) *CouncilDecisionCreate {
	_c.mutation.SetDecision(v)
	return _c
}

// SetDecidedBy sets the "decided_by" field.
func (_c *CouncilDecisionCreate) SetDecidedBy(v councildecision.DecidedBy) *CouncilDecisionCreate {
	_c.mutation.SetDecidedBy(v)
	return _c
}

// SetNillableDecidedBy sets the "decided_by" field if the given value is not nil.
func (_c *CouncilDecisionCreate) SetNillableDecidedBy(v *councildecision.DecidedBy) *CouncilDecisionCreate {
	if v != nil {
		_c.SetDecidedBy(*v)
	}
	return _c
}

// SetNotes sets the "notes" field.
func (_c *CouncilDecisionCreate) SetNotes(v string) *CouncilDecisionCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *CouncilDecisionCreate) SetNillableNotes(v *string) *CouncilDecisionCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CouncilDecisionCreate) SetCreatedAt(v time.Time) *CouncilDecisionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CouncilDecisionCreate) SetNillableCreatedAt(v *time.Time) *CouncilDecisionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetResolvedAt sets the "resolved_at" field.
func (_c *CouncilDecisionCreate) SetResolvedAt(v time.Time) *CouncilDecisionCreate {
	_c.mutation.SetResolvedAt(v)
	return _c
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_c *CouncilDecisionCreate) SetNillableResolvedAt(v *time.Time) *CouncilDecisionCreate {
	if v != nil {
		_c.SetResolvedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CouncilDecisionCreate) SetID(v string) *CouncilDecisionCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the CouncilDecisionMutation object of the builder.
func (_c *CouncilDecisionCreate) Mutation() *CouncilDecisionMutation {
	return _c.mutation
}

// Save creates the CouncilDecision in the database.
func (_c *CouncilDecisionCreate) Save(ctx context.Context) (*CouncilDecision, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CouncilDecisionCreate) SaveX(ctx context.Context) *CouncilDecision {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CouncilDecisionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CouncilDecisionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CouncilDecisionCreate) defaults() {
	if _, ok := _c.mutation.DecidedBy(); !ok {
		v := councildecision.DefaultDecidedBy
		_c.mutation.SetDecidedBy(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := councildecision.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CouncilDecisionCreate) check() error {
	if _, ok := _c.mutation.WorkOrderID(); !ok {
		return &ValidationError{Name: "work_order_id", err: errors.New(`ent: missing required field "CouncilDecision.work_order_id"`)}
	}
	if v, ok := _c.mutation.WorkOrderID(); ok {
		if err := councildecision.WorkOrderIDValidator(v); err != nil {
			return &ValidationError{Name: "work_order_id", err: fmt.Errorf(`ent: validator failed for field "CouncilDecision.work_order_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RiskLevel(); !ok {
		return &ValidationError{Name: "risk_level", err: errors.New(`ent: missing required field "CouncilDecision.risk_level"`)}
	}
	if v, ok := _c.mutation.RiskLevel(); ok {
		if err := councildecision.RiskLevelValidator(v); err != nil {
			return &ValidationError{Name: "risk_level", err: fmt.Errorf(`ent: validator failed for field "CouncilDecision.risk_level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Decision(); !ok {
		return &ValidationError{Name: "decision", err: errors.New(`ent: missing required field "CouncilDecision.decision"`)}
	}
	if v, ok := _c.mutation.Decision(); ok {
		if err := councildecision.DecisionValidator(v); err != nil {
			return &ValidationError{Name: "decision", err: fmt.Errorf(`ent: validator failed for field "CouncilDecision.decision": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DecidedBy(); !ok {
		return &ValidationError{Name: "decided_by", err: errors.New(`ent: missing required field "CouncilDecision.decided_by"`)}
	}
	if v, ok := _c.mutation.DecidedBy(); ok {
		if err := councildecision.DecidedByValidator(v); err != nil {
			return &ValidationError{Name: "decided_by", err: fmt.Errorf(`ent: validator failed for field "CouncilDecision.decided_by": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CouncilDecision.created_at"`)}
	}
	return nil
}

func (_c *CouncilDecisionCreate) sqlSave(ctx context.Context) (*CouncilDecision, error) {
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
			return nil, fmt.Errorf("unexpected CouncilDecision.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CouncilDecisionCreate) createSpec() (*CouncilDecision, *sqlgraph.CreateSpec) {
	var (
		_node = &CouncilDecision{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(councildecision.Table, sqlgraph.NewFieldSpec(councildecision.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.WorkOrderID(); ok {
		_spec.SetField(councildecision.FieldWorkOrderID, field.TypeString, value)
		_node.WorkOrderID = value
	}
	if value, ok := _c.mutation.RiskLevel(); ok {
		_spec.SetField(councildecision.FieldRiskLevel, field.TypeEnum, value)
		_node.RiskLevel = value
	}
	if value, ok := _c.mutation.Decision(); ok {
		_spec.SetField(councildecision.FieldDecision, field.TypeEnum, value)
		_node.Decision = value
	}
	if value, ok := _c.mutation.DecidedBy(); ok {
		_spec.SetField(councildecision.FieldDecidedBy, field.TypeEnum, value)
		_node.DecidedBy = value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(councildecision.FieldNotes, field.TypeString, value)
		_node.Notes = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(councildecision.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.ResolvedAt(); ok {
		_spec.SetField(councildecision.FieldResolvedAt, field.TypeTime, value)
		_node.ResolvedAt = &value
	}
	return _node, _spec
}

// CouncilDecisionCreateBulk is the builder for creating many CouncilDecision entities in bulk.
type CouncilDecisionCreateBulk struct {
	config
	err      error
	builders []*CouncilDecisionCreate
}

// Save creates the CouncilDecision entities in the database.
func (_c *CouncilDecisionCreateBulk) Save(ctx context.Context) ([]*CouncilDecision, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CouncilDecision, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CouncilDecisionMutation)
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
func (_c *CouncilDecisionCreateBulk) SaveX(ctx context.Context) []*CouncilDecision {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CouncilDecisionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CouncilDecisionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
