// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	pgvector "github.com/pgvector/pgvector-go"
	"github.com/sergeville/Archon/ent/conversationmessage"
	"github.com/sergeville/Archon/ent/predicate"
)

// ConversationMessageUpdate is the builder for updating ConversationMessage entities.
type ConversationMessageUpdate struct {
	config
	hooks    []Hook
	mutation *ConversationMessageMutation
}

// Where appends a list predicates to the ConversationMessageUpdate builder.
func (_u *ConversationMessageUpdate) Where(ps ...predicate.ConversationMessage) *ConversationMessageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRole sets the "role" field.
func (_u *ConversationMessageUpdate) SetRole(v conversationmessage.Role) *ConversationMessageUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *ConversationMessageUpdate) SetNillableRole(v *conversationmessage.Role) *ConversationMessageUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetMessage sets the "message" field.
func (_u *ConversationMessageUpdate) SetMessage(v string) *ConversationMessageUpdate {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *ConversationMessageUpdate) SetNillableMessage(v *string) *ConversationMessageUpdate {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// SetToolsUsed sets the "tools_used" field.
func (_u *ConversationMessageUpdate) SetToolsUsed(v []string) *ConversationMessageUpdate {
	_u.mutation.SetToolsUsed(v)
	return _u
}

// AppendToolsUsed appends value to the "tools_used" field.
func (_u *ConversationMessageUpdate) AppendToolsUsed(v []string) *ConversationMessageUpdate {
	_u.mutation.AppendToolsUsed(v)
	return _u
}

// ClearToolsUsed clears the value of the "tools_used" field.
func (_u *ConversationMessageUpdate) ClearToolsUsed() *ConversationMessageUpdate {
	_u.mutation.ClearToolsUsed()
	return _u
}

// SetMessageType sets the "message_type" field.
func (_u *ConversationMessageUpdate) SetMessageType(v string) *ConversationMessageUpdate {
	_u.mutation.SetMessageType(v)
	return _u
}

// SetNillableMessageType sets the "message_type" field if the given value is not nil.
func (_u *ConversationMessageUpdate) SetNillableMessageType(v *string) *ConversationMessageUpdate {
	if v != nil {
		_u.SetMessageType(*v)
	}
	return _u
}

// ClearMessageType clears the value of the "message_type" field.
func (_u *ConversationMessageUpdate) ClearMessageType() *ConversationMessageUpdate {
	_u.mutation.ClearMessageType()
	return _u
}

// SetSubtype sets the "subtype" field.
func (_u *ConversationMessageUpdate) SetSubtype(v string) *ConversationMessageUpdate {
	_u.mutation.SetSubtype(v)
	return _u
}

// SetNillableSubtype sets the "subtype" field if the given value is not nil.
func (_u *ConversationMessageUpdate) SetNillableSubtype(v *string) *ConversationMessageUpdate {
	if v != nil {
		_u.SetSubtype(*v)
	}
	return _u
}

// ClearSubtype clears the value of the "subtype" field.
func (_u *ConversationMessageUpdate) ClearSubtype() *ConversationMessageUpdate {
	_u.mutation.ClearSubtype()
	return _u
}

// SetEmbedding sets the "embedding" field.
func (_u *ConversationMessageUpdate) SetEmbedding(v pgvector.Vector) *ConversationMessageUpdate {
	_u.mutation.SetEmbedding(v)
	return _u
}

// SetNillableEmbedding sets the "embedding" field if the given value is not nil.
func (_u *ConversationMessageUpdate) SetNillableEmbedding(v *pgvector.Vector) *ConversationMessageUpdate {
	if v != nil {
		_u.SetEmbedding(*v)
	}
	return _u
}

// ClearEmbedding clears the value of the "embedding" field.
func (_u *ConversationMessageUpdate) ClearEmbedding() *ConversationMessageUpdate {
	_u.mutation.ClearEmbedding()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *ConversationMessageUpdate) SetMetadata(v map[string]interface{}) *ConversationMessageUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *ConversationMessageUpdate) ClearMetadata() *ConversationMessageUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// Mutation returns the ConversationMessageMutation object of the builder.
func (_u *ConversationMessageUpdate) Mutation() *ConversationMessageMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ConversationMessageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConversationMessageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ConversationMessageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConversationMessageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConversationMessageUpdate) check() error {
	if v, ok := _u.mutation.Role(); ok {
		if err := conversationmessage.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "ConversationMessage.role": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ConversationMessage.session"`)
	}
	return nil
}

func (_u *ConversationMessageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(conversationmessage.Table, conversationmessage.Columns, sqlgraph.NewFieldSpec(conversationmessage.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(conversationmessage.FieldRole, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(conversationmessage.FieldMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.ToolsUsed(); ok {
		_spec.SetField(conversationmessage.FieldToolsUsed, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedToolsUsed(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, conversationmessage.FieldToolsUsed, value)
		})
	}
	if _u.mutation.ToolsUsedCleared() {
		_spec.ClearField(conversationmessage.FieldToolsUsed, field.TypeJSON)
	}
	if value, ok := _u.mutation.MessageType(); ok {
		_spec.SetField(conversationmessage.FieldMessageType, field.TypeString, value)
	}
	if _u.mutation.MessageTypeCleared() {
		_spec.ClearField(conversationmessage.FieldMessageType, field.TypeString)
	}
	if value, ok := _u.mutation.Subtype(); ok {
		_spec.SetField(conversationmessage.FieldSubtype, field.TypeString, value)
	}
	if _u.mutation.SubtypeCleared() {
		_spec.ClearField(conversationmessage.FieldSubtype, field.TypeString)
	}
	if value, ok := _u.mutation.Embedding(); ok {
		_spec.SetField(conversationmessage.FieldEmbedding, field.TypeOther, value)
	}
	if _u.mutation.EmbeddingCleared() {
		_spec.ClearField(conversationmessage.FieldEmbedding, field.TypeOther)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(conversationmessage.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(conversationmessage.FieldMetadata, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{conversationmessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ConversationMessageUpdateOne is the builder for updating a single ConversationMessage entity.
type ConversationMessageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ConversationMessageMutation
}

// SetRole sets the "role" field.
func (_u *ConversationMessageUpdateOne) SetRole(v conversationmessage.Role) *ConversationMessageUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *ConversationMessageUpdateOne) SetNillableRole(v *conversationmessage.Role) *ConversationMessageUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetMessage sets the "message" field.
func (_u *ConversationMessageUpdateOne) SetMessage(v string) *ConversationMessageUpdateOne {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *ConversationMessageUpdateOne) SetNillableMessage(v *string) *ConversationMessageUpdateOne {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// SetToolsUsed sets the "tools_used" field.
func (_u *ConversationMessageUpdateOne) SetToolsUsed(v []string) *ConversationMessageUpdateOne {
	_u.mutation.SetToolsUsed(v)
	return _u
}

// AppendToolsUsed appends value to the "tools_used" field.
func (_u *ConversationMessageUpdateOne) AppendToolsUsed(v []string) *ConversationMessageUpdateOne {
	_u.mutation.AppendToolsUsed(v)
	return _u
}

// ClearToolsUsed clears the value of the "tools_used" field.
func (_u *ConversationMessageUpdateOne) ClearToolsUsed() *ConversationMessageUpdateOne {
	_u.mutation.ClearToolsUsed()
	return _u
}

// SetMessageType sets the "message_type" field.
func (_u *ConversationMessageUpdateOne) SetMessageType(v string) *ConversationMessageUpdateOne {
	_u.mutation.SetMessageType(v)
	return _u
}

// SetNillableMessageType sets the "message_type" field if the given value is not nil.
func (_u *ConversationMessageUpdateOne) SetNillableMessageType(v *string) *ConversationMessageUpdateOne {
	if v != nil {
		_u.SetMessageType(*v)
	}
	return _u
}

// ClearMessageType clears the value of the "message_type" field.
func (_u *ConversationMessageUpdateOne) ClearMessageType() *ConversationMessageUpdateOne {
	_u.mutation.ClearMessageType()
	return _u
}

// SetSubtype sets the "subtype" field.
func (_u *ConversationMessageUpdateOne) SetSubtype(v string) *ConversationMessageUpdateOne {
	_u.mutation.SetSubtype(v)
	return _u
}

// SetNillableSubtype sets the "subtype" field if the given value is not nil.
func (_u *ConversationMessageUpdateOne) SetNillableSubtype(v *string) *ConversationMessageUpdateOne {
	if v != nil {
		_u.SetSubtype(*v)
	}
	return _u
}

// ClearSubtype clears the value of the "subtype" field.
func (_u *ConversationMessageUpdateOne) ClearSubtype() *ConversationMessageUpdateOne {
	_u.mutation.ClearSubtype()
	return _u
}

// SetEmbedding sets the "embedding" field.
func (_u *ConversationMessageUpdateOne) SetEmbedding(v pgvector.Vector) *ConversationMessageUpdateOne {
	_u.mutation.SetEmbedding(v)
	return _u
}

// SetNillableEmbedding sets the "embedding" field if the given value is not nil.
func (_u *ConversationMessageUpdateOne) SetNillableEmbedding(v *pgvector.Vector) *ConversationMessageUpdateOne {
	if v != nil {
		_u.SetEmbedding(*v)
	}
	return _u
}

// ClearEmbedding clears the value of the "embedding" field.
func (_u *ConversationMessageUpdateOne) ClearEmbedding() *ConversationMessageUpdateOne {
	_u.mutation.ClearEmbedding()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *ConversationMessageUpdateOne) SetMetadata(v map[string]interface{}) *ConversationMessageUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *ConversationMessageUpdateOne) ClearMetadata() *ConversationMessageUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// Mutation returns the ConversationMessageMutation object of the builder.
func (_u *ConversationMessageUpdateOne) Mutation() *ConversationMessageMutation {
	return _u.mutation
}

// Where appends a list predicates to the ConversationMessageUpdate builder.
func (_u *ConversationMessageUpdateOne) Where(ps ...predicate.ConversationMessage) *ConversationMessageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ConversationMessageUpdateOne) Select(field string, fields ...string) *ConversationMessageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ConversationMessage entity.
func (_u *ConversationMessageUpdateOne) Save(ctx context.Context) (*ConversationMessage, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConversationMessageUpdateOne) SaveX(ctx context.Context) *ConversationMessage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ConversationMessageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConversationMessageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConversationMessageUpdateOne) check() error {
	if v, ok := _u.mutation.Role(); ok {
		if err := conversationmessage.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "ConversationMessage.role": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ConversationMessage.session"`)
	}
	return nil
}

func (_u *ConversationMessageUpdateOne) sqlSave(ctx context.Context) (_node *ConversationMessage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(conversationmessage.Table, conversationmessage.Columns, sqlgraph.NewFieldSpec(conversationmessage.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ConversationMessage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, conversationmessage.FieldID)
		for _, f := range fields {
			if !conversationmessage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != conversationmessage.FieldID {
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
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(conversationmessage.FieldRole, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(conversationmessage.FieldMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.ToolsUsed(); ok {
		_spec.SetField(conversationmessage.FieldToolsUsed, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedToolsUsed(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, conversationmessage.FieldToolsUsed, value)
		})
	}
	if _u.mutation.ToolsUsedCleared() {
		_spec.ClearField(conversationmessage.FieldToolsUsed, field.TypeJSON)
	}
	if value, ok := _u.mutation.MessageType(); ok {
		_spec.SetField(conversationmessage.FieldMessageType, field.TypeString, value)
	}
	if _u.mutation.MessageTypeCleared() {
		_spec.ClearField(conversationmessage.FieldMessageType, field.TypeString)
	}
	if value, ok := _u.mutation.Subtype(); ok {
		_spec.SetField(conversationmessage.FieldSubtype, field.TypeString, value)
	}
	if _u.mutation.SubtypeCleared() {
		_spec.ClearField(conversationmessage.FieldSubtype, field.TypeString)
	}
	if value, ok := _u.mutation.Embedding(); ok {
		_spec.SetField(conversationmessage.FieldEmbedding, field.TypeOther, value)
	}
	if _u.mutation.EmbeddingCleared() {
		_spec.ClearField(conversationmessage.FieldEmbedding, field.TypeOther)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(conversationmessage.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(conversationmessage.FieldMetadata, field.TypeJSON)
	}
	_node = &ConversationMessage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{conversationmessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
