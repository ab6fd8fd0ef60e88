// Code generated by ent, DO NOT EDIT.

package councildecision

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/sergeville/Archon/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.CouncilDecision {
	return predicate.CouncilDecision(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.CouncilDecision {
	return predicate.CouncilDecision(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.CouncilDecision {
	return predicate.CouncilDecision(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.CouncilDecision {
	return predicate.CouncilDecision(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.CouncilDecision {
	return predicate.CouncilDecision(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.CouncilDecision {
	return predicate.CouncilDecision(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.CouncilDecision {
	return predicate.CouncilDecision(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.CouncilDecision {
	return predicate.CouncilDecision(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.CouncilDecision {
	return predicate.CouncilDecision(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.CouncilDecision {
	return predicate.CouncilDecision(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.CouncilDecision {
	return predicate.CouncilDecision(sql.FieldContainsFold(FieldID, id))
}

// WorkOrderID applies equality check predicate on the "work_order_id" field. It's identical to WorkOrderIDEQ.
func WorkOrderID(v string) predicate.CouncilDecision {
	return predicate.CouncilDecision(sql.FieldEQ(FieldWorkOrderID, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.CouncilDecision {
	return predicate.CouncilDecision(sql.FieldEQ(FieldNotes, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CouncilDecision {
	return predicate.CouncilDecision(sql.FieldEQ(FieldCreatedAt, v))
}

// ResolvedAt applies equality check predicate on the "resolved_at" field. It's identical to ResolvedAtEQ.
func ResolvedAt(v time.Time) predicate.CouncilDecision {
	return predicate.CouncilDecision(sql.FieldEQ(FieldResolvedAt, v))
}

// WorkOrderIDEQ applies the EQ predicate on the "work_order_id" field.
func WorkOrderIDEQ(v string) predicate.CouncilDecision {
	return predicate.CouncilDecision(sql.FieldEQ(FieldWorkOrderID, v))
}

// WorkOrderIDNEQ applies the NEQ predicate on the "work_order_id" field.
func WorkOrderIDNEQ(v string) predicate.CouncilDecision {
	return predicate.CouncilDecision(sql.FieldNEQ(FieldWorkOrderID, v))
}

// WorkOrderIDIn applies the In predicate on the "work_order_id" field.
func WorkOrderIDIn(vs ...string) predicate.CouncilDecision {
	return predicate.CouncilDecision(sql.FieldIn(FieldWorkOrderID, vs...))
}

// WorkOrderIDNotIn applies the NotIn predicate on the "work_order_id" field.
func WorkOrderIDNotIn(vs ...string) predicate.CouncilDecision {
	return predicate.CouncilDecision(sql.FieldNotIn(FieldWorkOrderID, vs...))
}

// WorkOrderIDGT applies the GT predicate on the "work_order_id" field.
func WorkOrderIDGT(v string) predicate.CouncilDecision {
	return predicate.CouncilDecision(sql.FieldGT(FieldWorkOrderID, v))
}

// WorkOrderIDGTE applies the GTE predicate on the "work_order_id" field.
func WorkOrderIDGTE(v string) predicate.CouncilDecision {
	return predicate.CouncilDecision(sql.FieldGTE(FieldWorkOrderID, v))
}

// WorkOrderIDLT applies the LT predicate on the "work_order_id" field.
func WorkOrderIDLT(v string) predicate.CouncilDecision {
	return predicate.CouncilDecision(sql.FieldLT(FieldWorkOrderID, v))
}

// WorkOrderIDLTE applies the LTE predicate on the "work_order_id" field.
func WorkOrderIDLTE(v string) predicate.CouncilDecision {
	return predicate.CouncilDecision(sql.FieldLTE(FieldWorkOrderID, v))
}

// WorkOrderIDContains applies the Contains predicate on the "work_order_id" field.
func WorkOrderIDContains(v string) predicate.CouncilDecision {
	return predicate.CouncilDecision(sql.FieldContains(FieldWorkOrderID, v))
}

// WorkOrderIDHasPrefix applies the HasPrefix predicate on the "work_order_id" field.
func WorkOrderIDHasPrefix(v string) predicate.CouncilDecision {
	return predicate.CouncilDecision(sql.FieldHasPrefix(FieldWorkOrderID, v))
}

// WorkOrderIDHasSuffix applies the HasSuffix predicate on the "work_order_id" field.
func WorkOrderIDHasSuffix(v string) predicate.CouncilDecision {
	return predicate.CouncilDecision(sql.FieldHasSuffix(FieldWorkOrderID, v))
}

// WorkOrderIDEqualFold applies the EqualFold predicate on the "work_order_id" field.
func WorkOrderIDEqualFold(v string) predicate.CouncilDecision {
	return predicate.CouncilDecision(sql.FieldEqualFold(FieldWorkOrderID, v))
}

// WorkOrderIDContainsFold applies the ContainsFold predicate on the "work_order_id" field.
func WorkOrderIDContainsFold(v string) predicate.CouncilDecision {
	return predicate.CouncilDecision(sql.FieldContainsFold(FieldWorkOrderID, v))
}

// RiskLevelEQ applies the EQ predicate on the "risk_level" field.
func RiskLevelEQ(v RiskLevel) predicate.CouncilDecision {
	return predicate.CouncilDecision(sql.FieldEQ(FieldRiskLevel, v))
}

// RiskLevelNEQ applies the NEQ predicate on the "risk_level" field.
func RiskLevelNEQ(v RiskLevel) predicate.CouncilDecision {
	return predicate.CouncilDecision(sql.FieldNEQ(FieldRiskLevel, v))
}

// RiskLevelIn applies the In predicate on the "risk_level" field.
func RiskLevelIn(vs ...RiskLevel) predicate.CouncilDecision {
	return predicate.CouncilDecision(sql.FieldIn(FieldRiskLevel, vs...))
}

// RiskLevelNotIn applies the NotIn predicate on the "risk_level" field.
func RiskLevelNotIn(vs ...RiskLevel) predicate.CouncilDecision {
	return predicate.CouncilDecision(sql.FieldNotIn(FieldRiskLevel, vs...))
}

// DecisionEQ applies the EQ predicate on the "decision" field.
func DecisionEQ(v Decision) predicate.CouncilDecision {
	return predicate.CouncilDecision(sql.FieldEQ(FieldDecision, v))
}

// DecisionNEQ applies the NEQ predicate on the "decision" field.
func DecisionNEQ(v Decision) predicate.CouncilDecision {
	return predicate.CouncilDecision(sql.FieldNEQ(FieldDecision, v))
}

// DecisionIn applies the In predicate on the "decision" field.
func DecisionIn(vs ...Decision) predicate.CouncilDecision {
	return predicate.CouncilDecision(sql.FieldIn(FieldDecision, vs...))
}

// DecisionNotIn applies the NotIn predicate on the "decision" field.
func DecisionNotIn(vs ...Decision) predicate.CouncilDecision {
	return predicate.CouncilDecision(sql.FieldNotIn(FieldDecision, vs...))
}

// DecidedByEQ applies the EQ predicate on the "decided_by" field.
func DecidedByEQ(v DecidedBy) predicate.CouncilDecision {
	return predicate.CouncilDecision(sql.FieldEQ(FieldDecidedBy, v))
}

// DecidedByNEQ applies the NEQ predicate on the "decided_by" field.
func DecidedByNEQ(v DecidedBy) predicate.CouncilDecision {
	return predicate.CouncilDecision(sql.FieldNEQ(FieldDecidedBy, v))
}

// DecidedByIn applies the In predicate on the "decided_by" field.
func DecidedByIn(vs ...DecidedBy) predicate.CouncilDecision {
	return predicate.CouncilDecision(sql.FieldIn(FieldDecidedBy, vs...))
}

// DecidedByNotIn applies the NotIn predicate on the "decided_by" field.
func DecidedByNotIn(vs ...DecidedBy) predicate.CouncilDecision {
	return predicate.CouncilDecision(sql.FieldNotIn(FieldDecidedBy, vs...))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.CouncilDecision {
	return predicate.CouncilDecision(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.CouncilDecision {
	return predicate.CouncilDecision(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.CouncilDecision {
	return predicate.CouncilDecision(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.CouncilDecision {
	return predicate.CouncilDecision(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.CouncilDecision {
	return predicate.CouncilDecision(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.CouncilDecision {
	return predicate.CouncilDecision(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.CouncilDecision {
	return predicate.CouncilDecision(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.CouncilDecision {
	return predicate.CouncilDecision(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.CouncilDecision {
	return predicate.CouncilDecision(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.CouncilDecision {
	return predicate.CouncilDecision(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.CouncilDecision {
	return predicate.CouncilDecision(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesIsNil applies the IsNil predicate on the "notes" field.
func NotesIsNil() predicate.CouncilDecision {
	return predicate.CouncilDecision(sql.FieldIsNull(FieldNotes))
}

// NotesNotNil applies the NotNil predicate on the "notes" field.
func NotesNotNil() predicate.CouncilDecision {
	return predicate.CouncilDecision(sql.FieldNotNull(FieldNotes))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.CouncilDecision {
	return predicate.CouncilDecision(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.CouncilDecision {
	return predicate.CouncilDecision(sql.FieldContainsFold(FieldNotes, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CouncilDecision {
	return predicate.CouncilDecision(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CouncilDecision {
	return predicate.CouncilDecision(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CouncilDecision {
	return predicate.CouncilDecision(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CouncilDecision {
	return predicate.CouncilDecision(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CouncilDecision {
	return predicate.CouncilDecision(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CouncilDecision {
	return predicate.CouncilDecision(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CouncilDecision {
	return predicate.CouncilDecision(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CouncilDecision {
	return predicate.CouncilDecision(sql.FieldLTE(FieldCreatedAt, v))
}

// ResolvedAtEQ applies the EQ predicate on the "resolved_at" field.
func ResolvedAtEQ(v time.Time) predicate.CouncilDecision {
	return predicate.CouncilDecision(sql.FieldEQ(FieldResolvedAt, v))
}

// ResolvedAtNEQ applies the NEQ predicate on the "resolved_at" field.
func ResolvedAtNEQ(v time.Time) predicate.CouncilDecision {
	return predicate.CouncilDecision(sql.FieldNEQ(FieldResolvedAt, v))
}

// ResolvedAtIn applies the In predicate on the "resolved_at" field.
func ResolvedAtIn(vs ...time.Time) predicate.CouncilDecision {
	return predicate.CouncilDecision(sql.FieldIn(FieldResolvedAt, vs...))
}

// ResolvedAtNotIn applies the NotIn predicate on the "resolved_at" field.
func ResolvedAtNotIn(vs ...time.Time) predicate.CouncilDecision {
	return predicate.CouncilDecision(sql.FieldNotIn(FieldResolvedAt, vs...))
}

// ResolvedAtGT applies the GT predicate on the "resolved_at" field.
func ResolvedAtGT(v time.Time) predicate.CouncilDecision {
	return predicate.CouncilDecision(sql.FieldGT(FieldResolvedAt, v))
}

// ResolvedAtGTE applies the GTE predicate on the "resolved_at" field.
func ResolvedAtGTE(v time.Time) predicate.CouncilDecision {
	return predicate.CouncilDecision(sql.FieldGTE(FieldResolvedAt, v))
}

// ResolvedAtLT applies the LT predicate on the "resolved_at" field.
func ResolvedAtLT(v time.Time) predicate.CouncilDecision {
	return predicate.CouncilDecision(sql.FieldLT(FieldResolvedAt, v))
}

// ResolvedAtLTE applies the LTE predicate on the "resolved_at" field.
func ResolvedAtLTE(v time.Time) predicate.CouncilDecision {
	return predicate.CouncilDecision(sql.FieldLTE(FieldResolvedAt, v))
}

// ResolvedAtIsNil applies the IsNil predicate on the "resolved_at" field.
func ResolvedAtIsNil() predicate.CouncilDecision {
	return predicate.CouncilDecision(sql.FieldIsNull(FieldResolvedAt))
}

// ResolvedAtNotNil applies the NotNil predicate on the "resolved_at" field.
func ResolvedAtNotNil() predicate.CouncilDecision {
	return predicate.CouncilDecision(sql.FieldNotNull(FieldResolvedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CouncilDecision) predicate.CouncilDecision {
	return predicate.CouncilDecision(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CouncilDecision) predicate.CouncilDecision {
	return predicate.CouncilDecision(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CouncilDecision) predicate.CouncilDecision {
	return predicate.CouncilDecision(sql.NotPredicates(p))
}
