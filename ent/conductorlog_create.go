// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/sergeville/Archon/ent/conductorlog"
)

// ConductorLogCreate is the builder for creating a ConductorLog entity.
type ConductorLogCreate struct {
	config
	mutation *ConductorLogMutation
	hooks    []Hook
}

// SetWorkOrderID sets the "work_order_id" field.
func (_c *ConductorLogCreate) SetWorkOrderID(v string) *ConductorLogCreate {
	_c.mutation.SetWorkOrderID(v)
	return _c
}

// SetMissionID sets the "mission_id" field.
func (_c *ConductorLogCreate) SetMissionID(v string) *ConductorLogCreate {
	_c.mutation.SetMissionID(v)
	return _c
}

// SetNillableMissionID sets the "mission_id" field if the given value is not nil.
func (_c *ConductorLogCreate) SetNillableMissionID(v *string) *ConductorLogCreate {
	if v != nil {
		_c.SetMissionID(*v)
	}
	return _c
}

// SetConductorAgent sets the "conductor_agent" field.
func (_c *ConductorLogCreate) SetConductorAgent(v string) *ConductorLogCreate {
	_c.mutation.SetConductorAgent(v)
	return _c
}

// SetDelegationTarget sets the "delegation_target" field.
func (_c *ConductorLogCreate) SetDelegationTarget(v string) *ConductorLogCreate {
	_c.mutation.SetDelegationTarget(v)
	return _c
}

// SetReasoning sets the "reasoning" field.
func (_c *ConductorLogCreate) SetReasoning(v string) *ConductorLogCreate {
	_c.mutation.SetReasoning(v)
	return _c
}

// SetInjectedContext sets the "injected_context" field.
func (_c *ConductorLogCreate) SetInjectedContext(v map[string]interface{}) *ConductorLogCreate {
	_c.mutation.SetInjectedContext(v)
	return _c
}

// SetDecisionFactors sets the "decision_factors" field.
func (_c *ConductorLogCreate) SetDecisionFactors(v []string) *ConductorLogCreate {
	_c.mutation.SetDecisionFactors(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *ConductorLogCreate) SetConfidence(v float64) *ConductorLogCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *ConductorLogCreate) SetNillableConfidence(v *float64) *ConductorLogCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetOutcome sets the "outcome" field.
func (_c *ConductorLogCreate) SetOutcome(v conductorlog.Outcome) *ConductorLogCreate {
	_c.mutation.SetOutcome(v)
	return _c
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_c *ConductorLogCreate) SetNillableOutcome(v *conductorlog.Outcome) *ConductorLogCreate {
	if v != nil {
		_c.SetOutcome(*v)
	}
	return _c
}

// SetOutcomeNotes sets the "outcome_notes" field.
func (_c *ConductorLogCreate) SetOutcomeNotes(v string) *ConductorLogCreate {
	_c.mutation.SetOutcomeNotes(v)
	return _c
}

// SetNillableOutcomeNotes sets the "outcome_notes" field if the given value is not nil.
func (_c *ConductorLogCreate) SetNillableOutcomeNotes(v *string) *ConductorLogCreate {
	if v != nil {
		_c.SetOutcomeNotes(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ConductorLogCreate) SetCreatedAt(v time.Time) *ConductorLogCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ConductorLogCreate) SetNillableCreatedAt(v *time.Time) *ConductorLogCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetOutcomeAt sets the "outcome_at" field.
func (_c *ConductorLogCreate) SetOutcomeAt(v time.Time) *ConductorLogCreate {
	_c.mutation.SetOutcomeAt(v)
	return _c
}

// SetNillableOutcomeAt sets the "outcome_at" field if the given value is not nil.
func (_c *ConductorLogCreate) SetNillableOutcomeAt(v *time.Time) *ConductorLogCreate {
	if v != nil {
		_c.SetOutcomeAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ConductorLogCreate) SetID(v string) *ConductorLogCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ConductorLogMutation object of the builder.
func (_c *ConductorLogCreate) Mutation() *ConductorLogMutation {
	return _c.mutation
}

// Save creates the ConductorLog in the database.
func (_c *ConductorLogCreate) Save(ctx context.Context) (*ConductorLog, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ConductorLogCreate) SaveX(ctx context.Context) *ConductorLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConductorLogCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConductorLogCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ConductorLogCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := conductorlog.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ConductorLogCreate) check() error {
	if _, ok := _c.mutation.WorkOrderID(); !ok {
		return &ValidationError{Name: "work_order_id", err: errors.New(`ent: missing required field "ConductorLog.work_order_id"`)}
	}
	if v, ok := _c.mutation.WorkOrderID(); ok {
		if err := conductorlog.WorkOrderIDValidator(v); err != nil {
			return &ValidationError{Name: "work_order_id", err: fmt.Errorf(`ent: validator failed for field "ConductorLog.work_order_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ConductorAgent(); !ok {
		return &ValidationError{Name: "conductor_agent", err: errors.New(`ent: missing required field "ConductorLog.conductor_agent"`)}
	}
	if v, ok := _c.mutation.ConductorAgent(); ok {
		if err := conductorlog.ConductorAgentValidator(v); err != nil {
			return &ValidationError{Name: "conductor_agent", err: fmt.Errorf(`ent: validator failed for field "ConductorLog.conductor_agent": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DelegationTarget(); !ok {
		return &ValidationError{Name: "delegation_target", err: errors.New(`ent: missing required field "ConductorLog.delegation_target"`)}
	}
	if v, ok := _c.mutation.DelegationTarget(); ok {
		if err := conductorlog.DelegationTargetValidator(v); err != nil {
			return &ValidationError{Name: "delegation_target", err: fmt.Errorf(`ent: validator failed for field "ConductorLog.delegation_target": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Reasoning(); !ok {
		return &ValidationError{Name: "reasoning", err: errors.New(`ent: missing required field "ConductorLog.reasoning"`)}
	}
	if v, ok := _c.mutation.Outcome(); ok {
		if err := conductorlog.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "ConductorLog.outcome": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ConductorLog.created_at"`)}
	}
	return nil
}

func (_c *ConductorLogCreate) sqlSave(ctx context.Context) (*ConductorLog, error) {
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
			return nil, fmt.Errorf("unexpected ConductorLog.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ConductorLogCreate) createSpec() (*ConductorLog, *sqlgraph.CreateSpec) {
	var (
		_node = &ConductorLog{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(conductorlog.Table, sqlgraph.NewFieldSpec(conductorlog.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.WorkOrderID(); ok {
		_spec.SetField(conductorlog.FieldWorkOrderID, field.TypeString, value)
		_node.WorkOrderID = value
	}
	if value, ok := _c.mutation.MissionID(); ok {
		_spec.SetField(conductorlog.FieldMissionID, field.TypeString, value)
		_node.MissionID = &value
	}
	if value, ok := _c.mutation.ConductorAgent(); ok {
		_spec.SetField(conductorlog.FieldConductorAgent, field.TypeString, value)
		_node.ConductorAgent = value
	}
	if value, ok := _c.mutation.DelegationTarget(); ok {
		_spec.SetField(conductorlog.FieldDelegationTarget, field.TypeString, value)
		_node.DelegationTarget = value
	}
	if value, ok := _c.mutation.Reasoning(); ok {
		_spec.SetField(conductorlog.FieldReasoning, field.TypeString, value)
		_node.Reasoning = value
	}
	if value, ok := _c.mutation.InjectedContext(); ok {
		_spec.SetField(conductorlog.FieldInjectedContext, field.TypeJSON, value)
		_node.InjectedContext = value
	}
	if value, ok := _c.mutation.DecisionFactors(); ok {
		_spec.SetField(conductorlog.FieldDecisionFactors, field.TypeJSON, value)
		_node.DecisionFactors = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(conductorlog.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = &value
	}
	if value, ok := _c.mutation.Outcome(); ok {
		_spec.SetField(conductorlog.FieldOutcome, field.TypeEnum, value)
		_node.Outcome = &value
	}
	if value, ok := _c.mutation.OutcomeNotes(); ok {
		_spec.SetField(conductorlog.FieldOutcomeNotes, field.TypeString, value)
		_node.OutcomeNotes = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(conductorlog.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.OutcomeAt(); ok {
		_spec.SetField(conductorlog.FieldOutcomeAt, field.TypeTime, value)
		_node.OutcomeAt = &value
	}
	return _node, _spec
}

// ConductorLogCreateBulk is the builder for creating many ConductorLog entities in bulk.
type ConductorLogCreateBulk struct {
	config
	err      error
	builders []*ConductorLogCreate
}

// Save creates the ConductorLog entities in the database.
func (_c *ConductorLogCreateBulk) Save(ctx context.Context) ([]*ConductorLog, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ConductorLog, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ConductorLogMutation)
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
func (_c *ConductorLogCreateBulk) SaveX(ctx context.Context) []*ConductorLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConductorLogCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConductorLogCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
