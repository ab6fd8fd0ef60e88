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
	"github.com/sergeville/Archon/ent/councildecision"
	"github.com/sergeville/Archon/ent/predicate"
)

// CouncilDecisionUpdate is the builder for updating CouncilDecision entities.
type CouncilDecisionUpdate struct {
	config
	hooks    []Hook
	mutation *CouncilDecisionMutation
}

// Where appends a list predicates to the CouncilDecisionUpdate builder.
func (_u *CouncilDecisionUpdate) Where(ps ...predicate.CouncilDecision) *CouncilDecisionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDecision sets the "decision" field.
func (_u *CouncilDecisionUpdate) SetDecision(v councildecision.Decision) *CouncilDecisionUpdate {
	_u.mutation.SetDecision(v)
	return _u
}

// SetNillableDecision sets the "decision" field if the given value is not nil.
func (_u *CouncilDecisionUpdate) SetNillableDecision(v *councildecision.Decision) *CouncilDecisionUpdate {
	if v != nil {
		_u.SetDecision(*v)
	}
	return _u
}

// SetDecidedBy sets the "decided_by" field.
func (_u *CouncilDecisionUpdate) SetDecidedBy(v councildecision.DecidedBy) *CouncilDecisionUpdate {
	_u.mutation.SetDecidedBy(v)
	return _u
}

// SetNillableDecidedBy sets the "decided_by" field if the given value is not nil.
func (_u *CouncilDecisionUpdate) SetNillableDecidedBy(v *councildecision.DecidedBy) *CouncilDecisionUpdate {
	if v != nil {
		_u.SetDecidedBy(*v)
	}
	return _u
}

// SetNotes sets the "notes" field.
func (_u *CouncilDecisionUpdate) SetNotes(v string) *CouncilDecisionUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *CouncilDecisionUpdate) SetNillableNotes(v *string) *CouncilDecisionUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *CouncilDecisionUpdate) ClearNotes() *CouncilDecisionUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *CouncilDecisionUpdate) SetResolvedAt(v time.Time) *CouncilDecisionUpdate {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *CouncilDecisionUpdate) SetNillableResolvedAt(v *time.Time) *CouncilDecisionUpdate {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *CouncilDecisionUpdate) ClearResolvedAt() *CouncilDecisionUpdate {
	_u.mutation.ClearResolvedAt()
	return _u
}

// Mutation returns the CouncilDecisionMutation object of the builder.
func (_u *CouncilDecisionUpdate) Mutation() *CouncilDecisionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CouncilDecisionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CouncilDecisionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CouncilDecisionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CouncilDecisionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CouncilDecisionUpdate) check() error {
	if v, ok := _u.mutation.Decision(); ok {
		if err := councildecision.DecisionValidator(v); err != nil {
			return &ValidationError{Name: "decision", err: fmt.Errorf(`ent: validator failed for field "CouncilDecision.decision": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DecidedBy(); ok {
		if err := councildecision.DecidedByValidator(v); err != nil {
			return &ValidationError{Name: "decided_by", err: fmt.Errorf(`ent: validator failed for field "CouncilDecision.decided_by": %w`, err)}
		}
	}
	return nil
}

func (_u *CouncilDecisionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(councildecision.Table, councildecision.Columns, sqlgraph.NewFieldSpec(councildecision.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Decision(); ok {
		_spec.SetField(councildecision.FieldDecision, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DecidedBy(); ok {
		_spec.SetField(councildecision.FieldDecidedBy, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(councildecision.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(councildecision.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(councildecision.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(councildecision.FieldResolvedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{councildecision.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CouncilDecisionUpdateOne is the builder for updating a single CouncilDecision entity.
type CouncilDecisionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CouncilDecisionMutation
}

// SetDecision sets the "decision" field.
func (_u *CouncilDecisionUpdateOne) SetDecision(v councildecision.Decision) *CouncilDecisionUpdateOne {
	_u.mutation.SetDecision(v)
	return _u
}

// SetNillableDecision sets the "decision" field if the given value is not nil.
func (_u *CouncilDecisionUpdateOne) SetNillableDecision(v *councildecision.Decision) *CouncilDecisionUpdateOne {
	if v != nil {
		_u.SetDecision(*v)
	}
	return _u
}

// SetDecidedBy sets the "decided_by" field.
func (_u *CouncilDecisionUpdateOne) SetDecidedBy(v councildecision.DecidedBy) *CouncilDecisionUpdateOne {
	_u.mutation.SetDecidedBy(v)
	return _u
}

// SetNillableDecidedBy sets the "decided_by" field if the given value is not nil.
func (_u *CouncilDecisionUpdateOne) SetNillableDecidedBy(v *councildecision.DecidedBy) *CouncilDecisionUpdateOne {
	if v != nil {
		_u.SetDecidedBy(*v)
	}
	return _u
}

// SetNotes sets the "notes" field.
func (_u *CouncilDecisionUpdateOne) SetNotes(v string) *CouncilDecisionUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *CouncilDecisionUpdateOne) SetNillableNotes(v *string) *CouncilDecisionUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *CouncilDecisionUpdateOne) ClearNotes() *CouncilDecisionUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *CouncilDecisionUpdateOne) SetResolvedAt(v time.Time) *CouncilDecisionUpdateOne {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *CouncilDecisionUpdateOne) SetNillableResolvedAt(v *time.Time) *CouncilDecisionUpdateOne {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *CouncilDecisionUpdateOne) ClearResolvedAt() *CouncilDecisionUpdateOne {
	_u.mutation.ClearResolvedAt()
	return _u
}

// Mutation returns the CouncilDecisionMutation object of the builder.
func (_u *CouncilDecisionUpdateOne) Mutation() *CouncilDecisionMutation {
	return _u.mutation
}

// Where appends a list predicates to the CouncilDecisionUpdate builder.
func (_u *CouncilDecisionUpdateOne) Where(ps ...predicate.CouncilDecision) *CouncilDecisionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CouncilDecisionUpdateOne) Select(field string, fields ...string) *CouncilDecisionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CouncilDecision entity.
func (_u *CouncilDecisionUpdateOne) Save(ctx context.Context) (*CouncilDecision, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CouncilDecisionUpdateOne) SaveX(ctx context.Context) *CouncilDecision {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CouncilDecisionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CouncilDecisionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CouncilDecisionUpdateOne) check() error {
	if v, ok := _u.mutation.Decision(); ok {
		if err := councildecision.DecisionValidator(v); err != nil {
			return &ValidationError{Name: "decision", err: fmt.Errorf(`ent: validator failed for field "CouncilDecision.decision": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DecidedBy(); ok {
		if err := councildecision.DecidedByValidator(v); err != nil {
			return &ValidationError{Name: "decided_by", err: fmt.Errorf(`ent: validator failed for field "CouncilDecision.decided_by": %w`, err)}
		}
	}
	return nil
}

func (_u *CouncilDecisionUpdateOne) sqlSave(ctx context.Context) (_node *CouncilDecision, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(councildecision.Table, councildecision.Columns, sqlgraph.NewFieldSpec(councildecision.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CouncilDecision.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, councildecision.FieldID)
		for _, f := range fields {
			if !councildecision.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != councildecision.FieldID {
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
	if value, ok := _u.mutation.Decision(); ok {
		_spec.SetField(councildecision.FieldDecision, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DecidedBy(); ok {
		_spec.SetField(councildecision.FieldDecidedBy, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(councildecision.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(councildecision.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(councildecision.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(councildecision.FieldResolvedAt, field.TypeTime)
	}
	_node = &CouncilDecision{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{councildecision.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
