// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	pgvector "github.com/pgvector/pgvector-go"
	"github.com/sergeville/Archon/ent/pattern"
	"github.com/sergeville/Archon/ent/patternobservation"
	"github.com/sergeville/Archon/ent/predicate"
)

// PatternUpdate is the builder for updating Pattern entities.
type PatternUpdate struct {
	config
	hooks    []Hook
	mutation *PatternMutation
}

// Where appends a list predicates to the PatternUpdate builder.
func (_u *PatternUpdate) Where(ps ...predicate.Pattern) *PatternUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPatternType sets the "pattern_type" field.
func (_u *PatternUpdate) SetPatternType(v pattern.PatternType) *PatternUpdate {
	_u.mutation.SetPatternType(v)
	return _u
}

// SetNillablePatternType sets the "pattern_type" field if the given value is not nil.
func (_u *PatternUpdate) SetNillablePatternType(v *pattern.PatternType) *PatternUpdate {
	if v != nil {
		_u.SetPatternType(*v)
	}
	return _u
}

// SetDomain sets the "domain" field.
func (_u *PatternUpdate) SetDomain(v string) *PatternUpdate {
	_u.mutation.SetDomain(v)
	return _u
}

// SetNillableDomain sets the "domain" field if the given value is not nil.
func (_u *PatternUpdate) SetNillableDomain(v *string) *PatternUpdate {
	if v != nil {
		_u.SetDomain(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *PatternUpdate) SetDescription(v string) *PatternUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *PatternUpdate) SetNillableDescription(v *string) *PatternUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *PatternUpdate) SetAction(v string) *PatternUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *PatternUpdate) SetNillableAction(v *string) *PatternUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *PatternUpdate) SetOutcome(v string) *PatternUpdate {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *PatternUpdate) SetNillableOutcome(v *string) *PatternUpdate {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// ClearOutcome clears the value of the "outcome" field.
func (_u *PatternUpdate) ClearOutcome() *PatternUpdate {
	_u.mutation.ClearOutcome()
	return _u
}

// SetContext sets the "context" field.
func (_u *PatternUpdate) SetContext(v map[string]interface{}) *PatternUpdate {
	_u.mutation.SetContext(v)
	return _u
}

// ClearContext clears the value of the "context" field.
func (_u *PatternUpdate) ClearContext() *PatternUpdate {
	_u.mutation.ClearContext()
	return _u
}

// SetEmbedding sets the "embedding" field.
func (_u *PatternUpdate) SetEmbedding(v pgvector.Vector) *PatternUpdate {
	_u.mutation.SetEmbedding(v)
	return _u
}

// SetNillableEmbedding sets the "embedding" field if the given value is not nil.
func (_u *PatternUpdate) SetNillableEmbedding(v *pgvector.Vector) *PatternUpdate {
	if v != nil {
		_u.SetEmbedding(*v)
	}
	return _u
}

// ClearEmbedding clears the value of the "embedding" field.
func (_u *PatternUpdate) ClearEmbedding() *PatternUpdate {
	_u.mutation.ClearEmbedding()
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *PatternUpdate) SetCreatedBy(v string) *PatternUpdate {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *PatternUpdate) SetNillableCreatedBy(v *string) *PatternUpdate {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *PatternUpdate) SetMetadata(v map[string]interface{}) *PatternUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *PatternUpdate) ClearMetadata() *PatternUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// AddObservationIDs adds the "observations" edge to the PatternObservation entity by IDs.
func (_u *PatternUpdate) AddObservationIDs(ids ...string) *PatternUpdate {
	_u.mutation.AddObservationIDs(ids...)
	return _u
}

// AddObservations adds the "observations" edges to the PatternObservation entity.
func (_u *PatternUpdate) AddObservations(v ...*PatternObservation) *PatternUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddObservationIDs(ids...)
}

// Mutation returns the PatternMutation object of the builder.
func (_u *PatternUpdate) Mutation() *PatternMutation {
	return _u.mutation
}

// ClearObservations clears all "observations" edges to the PatternObservation entity.
func (_u *PatternUpdate) ClearObservations() *PatternUpdate {
	_u.mutation.ClearObservations()
	return _u
}

// RemoveObservationIDs removes the "observations" edge to PatternObservation entities by IDs.
func (_u *PatternUpdate) RemoveObservationIDs(ids ...string) *PatternUpdate {
	_u.mutation.RemoveObservationIDs(ids...)
	return _u
}

// RemoveObservations removes "observations" edges to PatternObservation entities.
func (_u *PatternUpdate) RemoveObservations(v ...*PatternObservation) *PatternUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveObservationIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PatternUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PatternUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PatternUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PatternUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PatternUpdate) check() error {
	if v, ok := _u.mutation.PatternType(); ok {
		if err := pattern.PatternTypeValidator(v); err != nil {
			return &ValidationError{Name: "pattern_type", err: fmt.Errorf(`ent: validator failed for field "Pattern.pattern_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Domain(); ok {
		if err := pattern.DomainValidator(v); err != nil {
			return &ValidationError{Name: "domain", err: fmt.Errorf(`ent: validator failed for field "Pattern.domain": %w`, err)}
		}
	}
	return nil
}

func (_u *PatternUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pattern.Table, pattern.Columns, sqlgraph.NewFieldSpec(pattern.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PatternType(); ok {
		_spec.SetField(pattern.FieldPatternType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Domain(); ok {
		_spec.SetField(pattern.FieldDomain, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(pattern.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(pattern.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(pattern.FieldOutcome, field.TypeString, value)
	}
	if _u.mutation.OutcomeCleared() {
		_spec.ClearField(pattern.FieldOutcome, field.TypeString)
	}
	if value, ok := _u.mutation.Context(); ok {
		_spec.SetField(pattern.FieldContext, field.TypeJSON, value)
	}
	if _u.mutation.ContextCleared() {
		_spec.ClearField(pattern.FieldContext, field.TypeJSON)
	}
	if value, ok := _u.mutation.Embedding(); ok {
		_spec.SetField(pattern.FieldEmbedding, field.TypeOther, value)
	}
	if _u.mutation.EmbeddingCleared() {
		_spec.ClearField(pattern.FieldEmbedding, field.TypeOther)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(pattern.FieldCreatedBy, field.TypeString, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(pattern.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(pattern.FieldMetadata, field.TypeJSON)
	}
	if _u.mutation.ObservationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedObservationsIDs(); len(nodes) > 0 && !_u.mutation.ObservationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ObservationsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pattern.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PatternUpdateOne is the builder for updating a single Pattern entity.
type PatternUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PatternMutation
}

// SetPatternType sets the "pattern_type" field.
func (_u *PatternUpdateOne) SetPatternType(v pattern.PatternType) *PatternUpdateOne {
	_u.mutation.SetPatternType(v)
	return _u
}

// SetNillablePatternType sets the "pattern_type" field if the given value is not nil.
func (_u *PatternUpdateOne) SetNillablePatternType(v *pattern.PatternType) *PatternUpdateOne {
	if v != nil {
		_u.SetPatternType(*v)
	}
	return _u
}

// SetDomain sets the "domain" field.
func (_u *PatternUpdateOne) SetDomain(v string) *PatternUpdateOne {
	_u.mutation.SetDomain(v)
	return _u
}

// SetNillableDomain sets the "domain" field if the given value is not nil.
func (_u *PatternUpdateOne) SetNillableDomain(v *string) *PatternUpdateOne {
	if v != nil {
		_u.SetDomain(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *PatternUpdateOne) SetDescription(v string) *PatternUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *PatternUpdateOne) SetNillableDescription(v *string) *PatternUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *PatternUpdateOne) SetAction(v string) *PatternUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *PatternUpdateOne) SetNillableAction(v *string) *PatternUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *PatternUpdateOne) SetOutcome(v string) *PatternUpdateOne {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *PatternUpdateOne) SetNillableOutcome(v *string) *PatternUpdateOne {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// ClearOutcome clears the value of the "outcome" field.
func (_u *PatternUpdateOne) ClearOutcome() *PatternUpdateOne {
	_u.mutation.ClearOutcome()
	return _u
}

// SetContext sets the "context" field.
func (_u *PatternUpdateOne) SetContext(v map[string]interface{}) *PatternUpdateOne {
	_u.mutation.SetContext(v)
	return _u
}

// ClearContext clears the value of the "context" field.
func (_u *PatternUpdateOne) ClearContext() *PatternUpdateOne {
	_u.mutation.ClearContext()
	return _u
}

// SetEmbedding sets the "embedding" field.
func (_u *PatternUpdateOne) SetEmbedding(v pgvector.Vector) *PatternUpdateOne {
	_u.mutation.SetEmbedding(v)
	return _u
}

// SetNillableEmbedding sets the "embedding" field if the given value is not nil.
func (_u *PatternUpdateOne) SetNillableEmbedding(v *pgvector.Vector) *PatternUpdateOne {
	if v != nil {
		_u.SetEmbedding(*v)
	}
	return _u
}

// ClearEmbedding clears the value of the "embedding" field.
func (_u *PatternUpdateOne) ClearEmbedding() *PatternUpdateOne {
	_u.mutation.ClearEmbedding()
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *PatternUpdateOne) SetCreatedBy(v string) *PatternUpdateOne {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *PatternUpdateOne) SetNillableCreatedBy(v *string) *PatternUpdateOne {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *PatternUpdateOne) SetMetadata(v map[string]interface{}) *PatternUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *PatternUpdateOne) ClearMetadata() *PatternUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// AddObservationIDs adds the "observations" edge to the PatternObservation entity by IDs.
func (_u *PatternUpdateOne) AddObservationIDs(ids ...string) *PatternUpdateOne {
	_u.mutation.AddObservationIDs(ids...)
	return _u
}

// AddObservations adds the "observations" edges to the PatternObservation entity.
func (_u *PatternUpdateOne) AddObservations(v ...*PatternObservation) *PatternUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddObservationIDs(ids...)
}

// Mutation returns the PatternMutation object of the builder.
func (_u *PatternUpdateOne) Mutation() *PatternMutation {
	return _u.mutation
}

// ClearObservations clears all "observations" edges to the PatternObservation entity.
func (_u *PatternUpdateOne) ClearObservations() *PatternUpdateOne {
	_u.mutation.ClearObservations()
	return _u
}

// RemoveObservationIDs removes the "observations" edge to PatternObservation entities by IDs.
func (_u *PatternUpdateOne) RemoveObservationIDs(ids ...string) *PatternUpdateOne {
	_u.mutation.RemoveObservationIDs(ids...)
	return _u
}

// RemoveObservations removes "observations" edges to PatternObservation entities.
func (_u *PatternUpdateOne) RemoveObservations(v ...*PatternObservation) *PatternUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveObservationIDs(ids...)
}

// Where appends a list predicates to the PatternUpdate builder.
func (_u *PatternUpdateOne) Where(ps ...predicate.Pattern) *PatternUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PatternUpdateOne) Select(field string, fields ...string) *PatternUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Pattern entity.
func (_u *PatternUpdateOne) Save(ctx context.Context) (*Pattern, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PatternUpdateOne) SaveX(ctx context.Context) *Pattern {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PatternUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PatternUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PatternUpdateOne) check() error {
	if v, ok := _u.mutation.PatternType(); ok {
		if err := pattern.PatternTypeValidator(v); err != nil {
			return &ValidationError{Name: "pattern_type", err: fmt.Errorf(`ent: validator failed for field "Pattern.pattern_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Domain(); ok {
		if err := pattern.DomainValidator(v); err != nil {
			return &ValidationError{Name: "domain", err: fmt.Errorf(`ent: validator failed for field "Pattern.domain": %w`, err)}
		}
	}
	return nil
}

func (_u *PatternUpdateOne) sqlSave(ctx context.Context) (_node *Pattern, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pattern.Table, pattern.Columns, sqlgraph.NewFieldSpec(pattern.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Pattern.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pattern.FieldID)
		for _, f := range fields {
			if !pattern.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != pattern.FieldID {
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
	if value, ok := _u.mutation.PatternType(); ok {
		_spec.SetField(pattern.FieldPatternType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Domain(); ok {
		_spec.SetField(pattern.FieldDomain, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(pattern.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(pattern.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(pattern.FieldOutcome, field.TypeString, value)
	}
	if _u.mutation.OutcomeCleared() {
		_spec.ClearField(pattern.FieldOutcome, field.TypeString)
	}
	if value, ok := _u.mutation.Context(); ok {
		_spec.SetField(pattern.FieldContext, field.TypeJSON, value)
	}
	if _u.mutation.ContextCleared() {
		_spec.ClearField(pattern.FieldContext, field.TypeJSON)
	}
	if value, ok := _u.mutation.Embedding(); ok {
		_spec.SetField(pattern.FieldEmbedding, field.TypeOther, value)
	}
	if _u.mutation.EmbeddingCleared() {
		_spec.ClearField(pattern.FieldEmbedding, field.TypeOther)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(pattern.FieldCreatedBy, field.TypeString, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(pattern.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(pattern.FieldMetadata, field.TypeJSON)
	}
	if _u.mutation.ObservationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedObservationsIDs(); len(nodes) > 0 && !_u.mutation.ObservationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ObservationsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Pattern{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pattern.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
