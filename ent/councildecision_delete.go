// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/sergeville/Archon/ent/councildecision"
	"github.com/sergeville/Archon/ent/predicate"
)

// CouncilDecisionDelete is the builder for deleting a CouncilDecision entity.
type CouncilDecisionDelete struct {
	config
	hooks    []Hook
	mutation *CouncilDecisionMutation
}

// Where appends a list predicates to the CouncilDecisionDelete builder.
func (_d *CouncilDecisionDelete) Where(ps ...predicate.CouncilDecision) *CouncilDecisionDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *CouncilDecisionDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CouncilDecisionDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *CouncilDecisionDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(councildecision.Table, sqlgraph.NewFieldSpec(councildecision.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// CouncilDecisionDeleteOne is the builder for deleting a single CouncilDecision entity.
type CouncilDecisionDeleteOne struct {
	_d *CouncilDecisionDelete
}

// Where appends a list predicates to the CouncilDecisionDelete builder.
func (_d *CouncilDecisionDeleteOne) Where(ps ...predicate.CouncilDecision) *CouncilDecisionDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *CouncilDecisionDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{councildecision.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CouncilDecisionDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
