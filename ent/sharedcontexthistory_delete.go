// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/sergeville/Archon/ent/predicate"
	"github.com/sergeville/Archon/ent/sharedcontexthistory"
)

// SharedContextHistoryDelete is the builder for deleting a SharedContextHistory entity.
type SharedContextHistoryDelete struct {
	config
	hooks    []Hook
	mutation *SharedContextHistoryMutation
}

// Where appends a list predicates to the SharedContextHistoryDelete builder.
func (_d *SharedContextHistoryDelete) Where(ps ...predicate.SharedContextHistory) *SharedContextHistoryDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *SharedContextHistoryDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *SharedContextHistoryDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *SharedContextHistoryDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(sharedcontexthistory.Table, sqlgraph.NewFieldSpec(sharedcontexthistory.FieldID, field.TypeString))
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

// SharedContextHistoryDeleteOne is the builder for deleting a single SharedContextHistory entity.
type SharedContextHistoryDeleteOne struct {
	_d *SharedContextHistoryDelete
}

// Where appends a list predicates to the SharedContextHistoryDelete builder.
func (_d *SharedContextHistoryDeleteOne) Where(ps ...predicate.SharedContextHistory) *SharedContextHistoryDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *SharedContextHistoryDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{sharedcontexthistory.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *SharedContextHistoryDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
