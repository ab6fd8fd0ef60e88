// Code generated by ent, DO NOT EDIT.

package sharedcontext

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/sergeville/Archon/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.SharedContext {
	return predicate.SharedContext(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.SharedContext {
	return predicate.SharedContext(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.SharedContext {
	return predicate.SharedContext(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.SharedContext {
	return predicate.SharedContext(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.SharedContext {
	return predicate.SharedContext(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.SharedContext {
	return predicate.SharedContext(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.SharedContext {
	return predicate.SharedContext(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.SharedContext {
	return predicate.SharedContext(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.SharedContext {
	return predicate.SharedContext(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.SharedContext {
	return predicate.SharedContext(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.SharedContext {
	return predicate.SharedContext(sql.FieldContainsFold(FieldID, id))
}

// Key applies equality check predicate on the "key" field. It's identical to KeyEQ.
func Key(v string) predicate.SharedContext {
	return predicate.SharedContext(sql.FieldEQ(FieldKey, v))
}

// SetBy applies equality check predicate on the "set_by" field. It's identical to SetByEQ.
func SetBy(v string) predicate.SharedContext {
	return predicate.SharedContext(sql.FieldEQ(FieldSetBy, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.SharedContext {
	return predicate.SharedContext(sql.FieldEQ(FieldSessionID, v))
}

// ExpiresAt applies equality check predicate on the "expires_at" field. It's identical to ExpiresAtEQ.
func ExpiresAt(v time.Time) predicate.SharedContext {
	return predicate.SharedContext(sql.FieldEQ(FieldExpiresAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.SharedContext {
	return predicate.SharedContext(sql.FieldEQ(FieldUpdatedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SharedContext {
	return predicate.SharedContext(sql.FieldEQ(FieldCreatedAt, v))
}

// KeyEQ applies the EQ predicate on the "key" field.
func KeyEQ(v string) predicate.SharedContext {
	return predicate.SharedContext(sql.FieldEQ(FieldKey, v))
}

// KeyNEQ applies the NEQ predicate on the "key" field.
func KeyNEQ(v string) predicate.SharedContext {
	return predicate.SharedContext(sql.FieldNEQ(FieldKey, v))
}

// KeyIn applies the In predicate on the "key" field.
func KeyIn(vs ...string) predicate.SharedContext {
	return predicate.SharedContext(sql.FieldIn(FieldKey, vs...))
}

// KeyNotIn applies the NotIn predicate on the "key" field.
func KeyNotIn(vs ...string) predicate.SharedContext {
	return predicate.SharedContext(sql.FieldNotIn(FieldKey, vs...))
}

// KeyGT applies the GT predicate on the "key" field.
func KeyGT(v string) predicate.SharedContext {
	return predicate.SharedContext(sql.FieldGT(FieldKey, v))
}

// KeyGTE applies the GTE predicate on the "key" field.
func KeyGTE(v string) predicate.SharedContext {
	return predicate.SharedContext(sql.FieldGTE(FieldKey, v))
}

// KeyLT applies the LT predicate on the "key" field.
func KeyLT(v string) predicate.SharedContext {
	return predicate.SharedContext(sql.FieldLT(FieldKey, v))
}

// KeyLTE applies the LTE predicate on the "key" field.
func KeyLTE(v string) predicate.SharedContext {
	return predicate.SharedContext(sql.FieldLTE(FieldKey, v))
}

// KeyContains applies the Contains predicate on the "key" field.
func KeyContains(v string) predicate.SharedContext {
	return predicate.SharedContext(sql.FieldContains(FieldKey, v))
}

// KeyHasPrefix applies the HasPrefix predicate on the "key" field.
func KeyHasPrefix(v string) predicate.SharedContext {
	return predicate.SharedContext(sql.FieldHasPrefix(FieldKey, v))
}

// KeyHasSuffix applies the HasSuffix predicate on the "key" field.
func KeyHasSuffix(v string) predicate.SharedContext {
	return predicate.SharedContext(sql.FieldHasSuffix(FieldKey, v))
}

// KeyEqualFold applies the EqualFold predicate on the "key" field.
func KeyEqualFold(v string) predicate.SharedContext {
	return predicate.SharedContext(sql.FieldEqualFold(FieldKey, v))
}

// KeyContainsFold applies the ContainsFold predicate on the "key" field.
func KeyContainsFold(v string) predicate.SharedContext {
	return predicate.SharedContext(sql.FieldContainsFold(FieldKey, v))
}

// SetByEQ applies the EQ predicate on the "set_by" field.
func SetByEQ(v string) predicate.SharedContext {
	return predicate.SharedContext(sql.FieldEQ(FieldSetBy, v))
}

// SetByNEQ applies the NEQ predicate on the "set_by" field.
func SetByNEQ(v string) predicate.SharedContext {
	return predicate.SharedContext(sql.FieldNEQ(FieldSetBy, v))
}

// SetByIn applies the In predicate on the "set_by" field.
func SetByIn(vs ...string) predicate.SharedContext {
	return predicate.SharedContext(sql.FieldIn(FieldSetBy, vs...))
}

// SetByNotIn applies the NotIn predicate on the "set_by" field.
func SetByNotIn(vs ...string) predicate.SharedContext {
	return predicate.SharedContext(sql.FieldNotIn(FieldSetBy, vs...))
}

// SetByGT applies the GT predicate on the "set_by" field.
func SetByGT(v string) predicate.SharedContext {
	return predicate.SharedContext(sql.FieldGT(FieldSetBy, v))
}

// SetByGTE applies the GTE predicate on the "set_by" field.
func SetByGTE(v string) predicate.SharedContext {
	return predicate.SharedContext(sql.FieldGTE(FieldSetBy, v))
}

// SetByLT applies the LT predicate on the "set_by" field.
func SetByLT(v string) predicate.SharedContext {
	return predicate.SharedContext(sql.FieldLT(FieldSetBy, v))
}

// SetByLTE applies the LTE predicate on the "set_by" field.
func SetByLTE(v string) predicate.SharedContext {
	return predicate.SharedContext(sql.FieldLTE(FieldSetBy, v))
}

// SetByContains applies the Contains predicate on the "set_by" field.
func SetByContains(v string) predicate.SharedContext {
	return predicate.SharedContext(sql.FieldContains(FieldSetBy, v))
}

// SetByHasPrefix applies the HasPrefix predicate on the "set_by" field.
func SetByHasPrefix(v string) predicate.SharedContext {
	return predicate.SharedContext(sql.FieldHasPrefix(FieldSetBy, v))
}

// SetByHasSuffix applies the HasSuffix predicate on the "set_by" field.
func SetByHasSuffix(v string) predicate.SharedContext {
	return predicate.SharedContext(sql.FieldHasSuffix(FieldSetBy, v))
}

// SetByEqualFold applies the EqualFold predicate on the "set_by" field.
func SetByEqualFold(v string) predicate.SharedContext {
	return predicate.SharedContext(sql.FieldEqualFold(FieldSetBy, v))
}

// SetByContainsFold applies the ContainsFold predicate on the "set_by" field.
func SetByContainsFold(v string) predicate.SharedContext {
	return predicate.SharedContext(sql.FieldContainsFold(FieldSetBy, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.SharedContext {
	return predicate.SharedContext(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.SharedContext {
	return predicate.SharedContext(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.SharedContext {
	return predicate.SharedContext(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.SharedContext {
	return predicate.SharedContext(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.SharedContext {
	return predicate.SharedContext(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.SharedContext {
	return predicate.SharedContext(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.SharedContext {
	return predicate.SharedContext(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.SharedContext {
	return predicate.SharedContext(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.SharedContext {
	return predicate.SharedContext(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.SharedContext {
	return predicate.SharedContext(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.SharedContext {
	return predicate.SharedContext(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDIsNil applies the IsNil predicate on the "session_id" field.
func SessionIDIsNil() predicate.SharedContext {
	return predicate.SharedContext(sql.FieldIsNull(FieldSessionID))
}

// SessionIDNotNil applies the NotNil predicate on the "session_id" field.
func SessionIDNotNil() predicate.SharedContext {
	return predicate.SharedContext(sql.FieldNotNull(FieldSessionID))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.SharedContext {
	return predicate.SharedContext(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.SharedContext {
	return predicate.SharedContext(sql.FieldContainsFold(FieldSessionID, v))
}

// ExpiresAtEQ applies the EQ predicate on the "expires_at" field.
func ExpiresAtEQ(v time.Time) predicate.SharedContext {
	return predicate.SharedContext(sql.FieldEQ(FieldExpiresAt, v))
}

// ExpiresAtNEQ applies the NEQ predicate on the "expires_at" field.
func ExpiresAtNEQ(v time.Time) predicate.SharedContext {
	return predicate.SharedContext(sql.FieldNEQ(FieldExpiresAt, v))
}

// ExpiresAtIn applies the In predicate on the "expires_at" field.
func ExpiresAtIn(vs ...time.Time) predicate.SharedContext {
	return predicate.SharedContext(sql.FieldIn(FieldExpiresAt, vs...))
}

// ExpiresAtNotIn applies the NotIn predicate on the "expires_at" field.
func ExpiresAtNotIn(vs ...time.Time) predicate.SharedContext {
	return predicate.SharedContext(sql.FieldNotIn(FieldExpiresAt, vs...))
}

// ExpiresAtGT applies the GT predicate on the "expires_at" field.
func ExpiresAtGT(v time.Time) predicate.SharedContext {
	return predicate.SharedContext(sql.FieldGT(FieldExpiresAt, v))
}

// ExpiresAtGTE applies the GTE predicate on the "expires_at" field.
func ExpiresAtGTE(v time.Time) predicate.SharedContext {
	return predicate.SharedContext(sql.FieldGTE(FieldExpiresAt, v))
}

// ExpiresAtLT applies the LT predicate on the "expires_at" field.
func ExpiresAtLT(v time.Time) predicate.SharedContext {
	return predicate.SharedContext(sql.FieldLT(FieldExpiresAt, v))
}

// ExpiresAtLTE applies the LTE predicate on the "expires_at" field.
func ExpiresAtLTE(v time.Time) predicate.SharedContext {
	return predicate.SharedContext(sql.FieldLTE(FieldExpiresAt, v))
}

// ExpiresAtIsNil applies the IsNil predicate on the "expires_at" field.
func ExpiresAtIsNil() predicate.SharedContext {
	return predicate.SharedContext(sql.FieldIsNull(FieldExpiresAt))
}

// ExpiresAtNotNil applies the NotNil predicate on the "expires_at" field.
func ExpiresAtNotNil() predicate.SharedContext {
	return predicate.SharedContext(sql.FieldNotNull(FieldExpiresAt))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.SharedContext {
	return predicate.SharedContext(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.SharedContext {
	return predicate.SharedContext(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.SharedContext {
	return predicate.SharedContext(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.SharedContext {
	return predicate.SharedContext(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.SharedContext {
	return predicate.SharedContext(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.SharedContext {
	return predicate.SharedContext(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.SharedContext {
	return predicate.SharedContext(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.SharedContext {
	return predicate.SharedContext(sql.FieldLTE(FieldUpdatedAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SharedContext {
	return predicate.SharedContext(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SharedContext {
	return predicate.SharedContext(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SharedContext {
	return predicate.SharedContext(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SharedContext {
	return predicate.SharedContext(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SharedContext {
	return predicate.SharedContext(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SharedContext {
	return predicate.SharedContext(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SharedContext {
	return predicate.SharedContext(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SharedContext {
	return predicate.SharedContext(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SharedContext) predicate.SharedContext {
	return predicate.SharedContext(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SharedContext) predicate.SharedContext {
	return predicate.SharedContext(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SharedContext) predicate.SharedContext {
	return predicate.SharedContext(sql.NotPredicates(p))
}
