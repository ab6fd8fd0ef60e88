// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/sergeville/Archon/ent/conductorlog"
	"github.com/sergeville/Archon/ent/predicate"
)

// ConductorLogUpdate is the builder for updating ConductorLog entities.
type ConductorLogUpdate struct {
	config
	hooks    []Hook
	mutation *ConductorLogMutation
}

// Where appends a list predicates to the ConductorLogUpdate builder.
func (_u *ConductorLogUpdate) Where(ps ...predicate.ConductorLog) *ConductorLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetReasoning sets the "reasoning" field.
func (_u *ConductorLogUpdate) SetReasoning(v string) *ConductorLogUpdate {
	_u.mutation.SetReasoning(v)
	return _u
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_u *ConductorLogUpdate) SetNillableReasoning(v *string) *ConductorLogUpdate {
	if v != nil {
		_u.SetReasoning(*v)
	}
	return _u
}

// SetInjectedContext sets the "injected_context" field.
func (_u *ConductorLogUpdate) SetInjectedContext(v map[string]interface{}) *ConductorLogUpdate {
	_u.mutation.SetInjectedContext(v)
	return _u
}

// ClearInjectedContext clears the value of the "injected_context" field.
func (_u *ConductorLogUpdate) ClearInjectedContext() *ConductorLogUpdate {
	_u.mutation.ClearInjectedContext()
	return _u
}

// SetDecisionFactors sets the "decision_factors" field.
func (_u *ConductorLogUpdate) SetDecisionFactors(v []string) *ConductorLogUpdate {
	_u.mutation.SetDecisionFactors(v)
	return _u
}

// AppendDecisionFactors appends value to the "decision_factors" field.
func (_u *ConductorLogUpdate) AppendDecisionFactors(v []string) *ConductorLogUpdate {
	_u.mutation.AppendDecisionFactors(v)
	return _u
}

// ClearDecisionFactors clears the value of the "decision_factors" field.
func (_u *ConductorLogUpdate) ClearDecisionFactors() *ConductorLogUpdate {
	_u.mutation.ClearDecisionFactors()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *ConductorLogUpdate) SetConfidence(v float64) *ConductorLogUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *ConductorLogUpdate) SetNillableConfidence(v *float64) *ConductorLogUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *ConductorLogUpdate) AddConfidence(v float64) *ConductorLogUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *ConductorLogUpdate) ClearConfidence() *ConductorLogUpdate {
	_u.mutation.ClearConfidence()
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *ConductorLogUpdate) SetOutcome(v conductorlog.Outcome) *ConductorLogUpdate {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *ConductorLogUpdate) SetNillableOutcome(v *conductorlog.Outcome) *ConductorLogUpdate {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// ClearOutcome clears the value of the "outcome" field.
func (_u *ConductorLogUpdate) ClearOutcome() *ConductorLogUpdate {
	_u.mutation.ClearOutcome()
	return _u
}

// SetOutcomeNotes sets the "outcome_notes" field.
func (_u *ConductorLogUpdate) SetOutcomeNotes(v string) *ConductorLogUpdate {
	_u.mutation.SetOutcomeNotes(v)
	return _u
}

// SetNillableOutcomeNotes sets the "outcome_notes" field if the given value is not nil.
func (_u *ConductorLogUpdate) SetNillableOutcomeNotes(v *string) *ConductorLogUpdate {
	if v != nil {
		_u.SetOutcomeNotes(*v)
	}
	return _u
}

// ClearOutcomeNotes clears the value of the "outcome_notes" field.
func (_u *ConductorLogUpdate) ClearOutcomeNotes() *ConductorLogUpdate {
	_u.mutation.ClearOutcomeNotes()
	return _u
}

// SetOutcomeAt sets the "outcome_at" field.
func (_u *ConductorLogUpdate) SetOutcomeAt(v time.Time) *ConductorLogUpdate {
	_u.mutation.SetOutcomeAt(v)
	return _u
}

// SetNillableOutcomeAt sets the "outcome_at" field if the given value is not nil.
func (_u *ConductorLogUpdate) SetNillableOutcomeAt(v *time.Time) *ConductorLogUpdate {
	if v != nil {
		_u.SetOutcomeAt(*v)
	}
	return _u
}

// ClearOutcomeAt clears the value of the "outcome_at" field.
func (_u *ConductorLogUpdate) ClearOutcomeAt() *ConductorLogUpdate {
	_u.mutation.ClearOutcomeAt()
	return _u
}

// Mutation returns the ConductorLogMutation object of the builder.
func (_u *ConductorLogUpdate) Mutation() *ConductorLogMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ConductorLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConductorLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ConductorLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConductorLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConductorLogUpdate) check() error {
	if v, ok := _u.mutation.Outcome(); ok {
		if err := conductorlog.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "ConductorLog.outcome": %w`, err)}
		}
	}
	return nil
}

func (_u *ConductorLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(conductorlog.Table, conductorlog.Columns, sqlgraph.NewFieldSpec(conductorlog.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.MissionIDCleared() {
		_spec.ClearField(conductorlog.FieldMissionID, field.TypeString)
	}
	if value, ok := _u.mutation.Reasoning(); ok {
		_spec.SetField(conductorlog.FieldReasoning, field.TypeString, value)
	}
	if value, ok := _u.mutation.InjectedContext(); ok {
		_spec.SetField(conductorlog.FieldInjectedContext, field.TypeJSON, value)
	}
	if _u.mutation.InjectedContextCleared() {
		_spec.ClearField(conductorlog.FieldInjectedContext, field.TypeJSON)
	}
	if value, ok := _u.mutation.DecisionFactors(); ok {
		_spec.SetField(conductorlog.FieldDecisionFactors, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDecisionFactors(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, conductorlog.FieldDecisionFactors, value)
		})
	}
	if _u.mutation.DecisionFactorsCleared() {
		_spec.ClearField(conductorlog.FieldDecisionFactors, field.TypeJSON)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(conductorlog.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(conductorlog.FieldConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(conductorlog.FieldConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(conductorlog.FieldOutcome, field.TypeEnum, value)
	}
	if _u.mutation.OutcomeCleared() {
		_spec.ClearField(conductorlog.FieldOutcome, field.TypeEnum)
	}
	if value, ok := _u.mutation.OutcomeNotes(); ok {
		_spec.SetField(conductorlog.FieldOutcomeNotes, field.TypeString, value)
	}
	if _u.mutation.OutcomeNotesCleared() {
		_spec.ClearField(conductorlog.FieldOutcomeNotes, field.TypeString)
	}
	if value, ok := _u.mutation.OutcomeAt(); ok {
		_spec.SetField(conductorlog.FieldOutcomeAt, field.TypeTime, value)
	}
	if _u.mutation.OutcomeAtCleared() {
		_spec.ClearField(conductorlog.FieldOutcomeAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{conductorlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ConductorLogUpdateOne is the builder for updating a single ConductorLog entity.
type ConductorLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ConductorLogMutation
}

// SetReasoning sets the "reasoning" field.
func (_u *ConductorLogUpdateOne) SetReasoning(v string) *ConductorLogUpdateOne {
	_u.mutation.SetReasoning(v)
	return _u
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_u *ConductorLogUpdateOne) SetNillableReasoning(v *string) *ConductorLogUpdateOne {
	if v != nil {
		_u.SetReasoning(*v)
	}
	return _u
}

// SetInjectedContext sets the "injected_context" field.
func (_u *ConductorLogUpdateOne) SetInjectedContext(v map[string]interface{}) *ConductorLogUpdateOne {
	_u.mutation.SetInjectedContext(v)
	return _u
}

// ClearInjectedContext clears the value of the "injected_context" field.
func (_u *ConductorLogUpdateOne) ClearInjectedContext() *ConductorLogUpdateOne {
	_u.mutation.ClearInjectedContext()
	return _u
}

// SetDecisionFactors sets the "decision_factors" field.
func (_u *ConductorLogUpdateOne) SetDecisionFactors(v []string) *ConductorLogUpdateOne {
	_u.mutation.SetDecisionFactors(v)
	return _u
}

// AppendDecisionFactors appends value to the "decision_factors" field.
func (_u *ConductorLogUpdateOne) AppendDecisionFactors(v []string) *ConductorLogUpdateOne {
	_u.mutation.AppendDecisionFactors(v)
	return _u
}

// ClearDecisionFactors clears the value of the "decision_factors" field.
func (_u *ConductorLogUpdateOne) ClearDecisionFactors() *ConductorLogUpdateOne {
	_u.mutation.ClearDecisionFactors()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *ConductorLogUpdateOne) SetConfidence(v float64) *ConductorLogUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *ConductorLogUpdateOne) SetNillableConfidence(v *float64) *ConductorLogUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *ConductorLogUpdateOne) AddConfidence(v float64) *ConductorLogUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *ConductorLogUpdateOne) ClearConfidence() *ConductorLogUpdateOne {
	_u.mutation.ClearConfidence()
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *ConductorLogUpdateOne) SetOutcome(v conductorlog.Outcome) *ConductorLogUpdateOne {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *ConductorLogUpdateOne) SetNillableOutcome(v *conductorlog.Outcome) *ConductorLogUpdateOne {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// ClearOutcome clears the value of the "outcome" field.
func (_u *ConductorLogUpdateOne) ClearOutcome() *ConductorLogUpdateOne {
	_u.mutation.ClearOutcome()
	return _u
}

// SetOutcomeNotes sets the "outcome_notes" field.
func (_u *ConductorLogUpdateOne) SetOutcomeNotes(v string) *ConductorLogUpdateOne {
	_u.mutation.SetOutcomeNotes(v)
	return _u
}

// SetNillableOutcomeNotes sets the "outcome_notes" field if the given value is not nil.
func (_u *ConductorLogUpdateOne) SetNillableOutcomeNotes(v *string) *ConductorLogUpdateOne {
	if v != nil {
		_u.SetOutcomeNotes(*v)
	}
	return _u
}

// ClearOutcomeNotes clears the value of the "outcome_notes" field.
func (_u *ConductorLogUpdateOne) ClearOutcomeNotes() *ConductorLogUpdateOne {
	_u.mutation.ClearOutcomeNotes()
	return _u
}

// SetOutcomeAt sets the "outcome_at" field.
func (_u *ConductorLogUpdateOne) SetOutcomeAt(v time.Time) *ConductorLogUpdateOne {
	_u.mutation.SetOutcomeAt(v)
	return _u
}

// SetNillableOutcomeAt sets the "outcome_at" field if the given value is not nil.
func (_u *ConductorLogUpdateOne) SetNillableOutcomeAt(v *time.Time) *ConductorLogUpdateOne {
	if v != nil {
		_u.SetOutcomeAt(*v)
	}
	return _u
}

// ClearOutcomeAt clears the value of the "outcome_at" field.
func (_u *ConductorLogUpdateOne) ClearOutcomeAt() *ConductorLogUpdateOne {
	_u.mutation.ClearOutcomeAt()
	return _u
}

// Mutation returns the ConductorLogMutation object of the builder.
func (_u *ConductorLogUpdateOne) Mutation() *ConductorLogMutation {
	return _u.mutation
}

// Where appends a list predicates to the ConductorLogUpdate builder.
func (_u *ConductorLogUpdateOne) Where(ps ...predicate.ConductorLog) *ConductorLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ConductorLogUpdateOne) Select(field string, fields ...string) *ConductorLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ConductorLog entity.
func (_u *ConductorLogUpdateOne) Save(ctx context.Context) (*ConductorLog, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConductorLogUpdateOne) SaveX(ctx context.Context) *ConductorLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ConductorLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConductorLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConductorLogUpdateOne) check() error {
	if v, ok := _u.mutation.Outcome(); ok {
		if err := conductorlog.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "ConductorLog.outcome": %w`, err)}
		}
	}
	return nil
}

func (_u *ConductorLogUpdateOne) sqlSave(ctx context.Context) (_node *ConductorLog, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(conductorlog.Table, conductorlog.Columns, sqlgraph.NewFieldSpec(conductorlog.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ConductorLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, conductorlog.FieldID)
		for _, f := range fields {
			if !conductorlog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != conductorlog.FieldID {
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
	if _u.mutation.MissionIDCleared() {
		_spec.ClearField(conductorlog.FieldMissionID, field.TypeString)
	}
	if value, ok := _u.mutation.Reasoning(); ok {
		_spec.SetField(conductorlog.FieldReasoning, field.TypeString, value)
	}
	if value, ok := _u.mutation.InjectedContext(); ok {
		_spec.SetField(conductorlog.FieldInjectedContext, field.TypeJSON, value)
	}
	if _u.mutation.InjectedContextCleared() {
		_spec.ClearField(conductorlog.FieldInjectedContext, field.TypeJSON)
	}
	if value, ok := _u.mutation.DecisionFactors(); ok {
		_spec.SetField(conductorlog.FieldDecisionFactors, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDecisionFactors(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, conductorlog.FieldDecisionFactors, value)
		})
	}
	if _u.mutation.DecisionFactorsCleared() {
		_spec.ClearField(conductorlog.FieldDecisionFactors, field.TypeJSON)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(conductorlog.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(conductorlog.FieldConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(conductorlog.FieldConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(conductorlog.FieldOutcome, field.TypeEnum, value)
	}
	if _u.mutation.OutcomeCleared() {
		_spec.ClearField(conductorlog.FieldOutcome, field.TypeEnum)
	}
	if value, ok := _u.mutation.OutcomeNotes(); ok {
		_spec.SetField(conductorlog.FieldOutcomeNotes, field.TypeString, value)
	}
	if _u.mutation.OutcomeNotesCleared() {
		_spec.ClearField(conductorlog.FieldOutcomeNotes, field.TypeString)
	}
	if value, ok := _u.mutation.OutcomeAt(); ok {
		_spec.SetField(conductorlog.FieldOutcomeAt, field.TypeTime, value)
	}
	if _u.mutation.OutcomeAtCleared() {
		_spec.ClearField(conductorlog.FieldOutcomeAt, field.TypeTime)
	}
	_node = &ConductorLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{conductorlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
