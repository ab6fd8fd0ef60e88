// Code generated by ent, DO NOT EDIT.

package handoff

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/sergeville/Archon/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Handoff {
	return predicate.Handoff(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Handoff {
	return predicate.Handoff(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Handoff {
	return predicate.Handoff(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Handoff {
	return predicate.Handoff(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Handoff {
	return predicate.Handoff(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Handoff {
	return predicate.Handoff(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Handoff {
	return predicate.Handoff(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Handoff {
	return predicate.Handoff(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Handoff {
	return predicate.Handoff(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Handoff {
	return predicate.Handoff(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Handoff {
	return predicate.Handoff(sql.FieldContainsFold(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.Handoff {
	return predicate.Handoff(sql.FieldEQ(FieldSessionID, v))
}

// FromAgent applies equality check predicate on the "from_agent" field. It's identical to FromAgentEQ.
func FromAgent(v string) predicate.Handoff {
	return predicate.Handoff(sql.FieldEQ(FieldFromAgent, v))
}

// ToAgent applies equality check predicate on the "to_agent" field. It's identical to ToAgentEQ.
func ToAgent(v string) predicate.Handoff {
	return predicate.Handoff(sql.FieldEQ(FieldToAgent, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.Handoff {
	return predicate.Handoff(sql.FieldEQ(FieldNotes, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Handoff {
	return predicate.Handoff(sql.FieldEQ(FieldCreatedAt, v))
}

// AcceptedAt applies equality check predicate on the "accepted_at" field. It's identical to AcceptedAtEQ.
func AcceptedAt(v time.Time) predicate.Handoff {
	return predicate.Handoff(sql.FieldEQ(FieldAcceptedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Handoff {
	return predicate.Handoff(sql.FieldEQ(FieldCompletedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.Handoff {
	return predicate.Handoff(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.Handoff {
	return predicate.Handoff(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.Handoff {
	return predicate.Handoff(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.Handoff {
	return predicate.Handoff(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.Handoff {
	return predicate.Handoff(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.Handoff {
	return predicate.Handoff(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.Handoff {
	return predicate.Handoff(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.Handoff {
	return predicate.Handoff(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.Handoff {
	return predicate.Handoff(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.Handoff {
	return predicate.Handoff(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.Handoff {
	return predicate.Handoff(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.Handoff {
	return predicate.Handoff(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.Handoff {
	return predicate.Handoff(sql.FieldContainsFold(FieldSessionID, v))
}

// FromAgentEQ applies the EQ predicate on the "from_agent" field.
func FromAgentEQ(v string) predicate.Handoff {
	return predicate.Handoff(sql.FieldEQ(FieldFromAgent, v))
}

// FromAgentNEQ applies the NEQ predicate on the "from_agent" field.
func FromAgentNEQ(v string) predicate.Handoff {
	return predicate.Handoff(sql.FieldNEQ(FieldFromAgent, v))
}

// FromAgentIn applies the In predicate on the "from_agent" field.
func FromAgentIn(vs ...string) predicate.Handoff {
	return predicate.Handoff(sql.FieldIn(FieldFromAgent, vs...))
}

// FromAgentNotIn applies the NotIn predicate on the "from_agent" field.
func FromAgentNotIn(vs ...string) predicate.Handoff {
	return predicate.Handoff(sql.FieldNotIn(FieldFromAgent, vs...))
}

// FromAgentGT applies the GT predicate on the "from_agent" field.
func FromAgentGT(v string) predicate.Handoff {
	return predicate.Handoff(sql.FieldGT(FieldFromAgent, v))
}

// FromAgentGTE applies the GTE predicate on the "from_agent" field.
func FromAgentGTE(v string) predicate.Handoff {
	return predicate.Handoff(sql.FieldGTE(FieldFromAgent, v))
}

// FromAgentLT applies the LT predicate on the "from_agent" field.
func FromAgentLT(v string) predicate.Handoff {
	return predicate.Handoff(sql.FieldLT(FieldFromAgent, v))
}

// FromAgentLTE applies the LTE predicate on the "from_agent" field.
func FromAgentLTE(v string) predicate.Handoff {
	return predicate.Handoff(sql.FieldLTE(FieldFromAgent, v))
}

// FromAgentContains applies the Contains predicate on the "from_agent" field.
func FromAgentContains(v string) predicate.Handoff {
	return predicate.Handoff(sql.FieldContains(FieldFromAgent, v))
}

// FromAgentHasPrefix applies the HasPrefix predicate on the "from_agent" field.
func FromAgentHasPrefix(v string) predicate.Handoff {
	return predicate.Handoff(sql.FieldHasPrefix(FieldFromAgent, v))
}

// FromAgentHasSuffix applies the HasSuffix predicate on the "from_agent" field.
func FromAgentHasSuffix(v string) predicate.Handoff {
	return predicate.Handoff(sql.FieldHasSuffix(FieldFromAgent, v))
}

// FromAgentEqualFold applies the EqualFold predicate on the "from_agent" field.
func FromAgentEqualFold(v string) predicate.Handoff {
	return predicate.Handoff(sql.FieldEqualFold(FieldFromAgent, v))
}

// FromAgentContainsFold applies the ContainsFold predicate on the "from_agent" field.
func FromAgentContainsFold(v string) predicate.Handoff {
	return predicate.Handoff(sql.FieldContainsFold(FieldFromAgent, v))
}

// ToAgentEQ applies the EQ predicate on the "to_agent" field.
func ToAgentEQ(v string) predicate.Handoff {
	return predicate.Handoff(sql.FieldEQ(FieldToAgent, v))
}

// ToAgentNEQ applies the NEQ predicate on the "to_agent" field.
func ToAgentNEQ(v string) predicate.Handoff {
	return predicate.Handoff(sql.FieldNEQ(FieldToAgent, v))
}

// ToAgentIn applies the In predicate on the "to_agent" field.
func ToAgentIn(vs ...string) predicate.Handoff {
	return predicate.Handoff(sql.FieldIn(FieldToAgent, vs...))
}

// ToAgentNotIn applies the NotIn predicate on the "to_agent" field.
func ToAgentNotIn(vs ...string) predicate.Handoff {
	return predicate.Handoff(sql.FieldNotIn(FieldToAgent, vs...))
}

// ToAgentGT applies the GT predicate on the "to_agent" field.
func ToAgentGT(v string) predicate.Handoff {
	return predicate.Handoff(sql.FieldGT(FieldToAgent, v))
}

// ToAgentGTE applies the GTE predicate on the "to_agent" field.
func ToAgentGTE(v string) predicate.Handoff {
	return predicate.Handoff(sql.FieldGTE(FieldToAgent, v))
}

// ToAgentLT applies the LT predicate on the "to_agent" field.
func ToAgentLT(v string) predicate.Handoff {
	return predicate.Handoff(sql.FieldLT(FieldToAgent, v))
}

// ToAgentLTE applies the LTE predicate on the "to_agent" field.
func ToAgentLTE(v string) predicate.Handoff {
	return predicate.Handoff(sql.FieldLTE(FieldToAgent, v))
}

// ToAgentContains applies the Contains predicate on the "to_agent" field.
func ToAgentContains(v string) predicate.Handoff {
	return predicate.Handoff(sql.FieldContains(FieldToAgent, v))
}

// ToAgentHasPrefix applies the HasPrefix predicate on the "to_agent" field.
func ToAgentHasPrefix(v string) predicate.Handoff {
	return predicate.Handoff(sql.FieldHasPrefix(FieldToAgent, v))
}

// ToAgentHasSuffix applies the HasSuffix predicate on the "to_agent" field.
func ToAgentHasSuffix(v string) predicate.Handoff {
	return predicate.Handoff(sql.FieldHasSuffix(FieldToAgent, v))
}

// ToAgentEqualFold applies the EqualFold predicate on the "to_agent" field.
func ToAgentEqualFold(v string) predicate.Handoff {
	return predicate.Handoff(sql.FieldEqualFold(FieldToAgent, v))
}

// ToAgentContainsFold applies the ContainsFold predicate on the "to_agent" field.
func ToAgentContainsFold(v string) predicate.Handoff {
	return predicate.Handoff(sql.FieldContainsFold(FieldToAgent, v))
}

// ContextIsNil applies the IsNil predicate on the "context" field.
func ContextIsNil() predicate.Handoff {
	return predicate.Handoff(sql.FieldIsNull(FieldContext))
}

// ContextNotNil applies the NotNil predicate on the "context" field.
func ContextNotNil() predicate.Handoff {
	return predicate.Handoff(sql.FieldNotNull(FieldContext))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.Handoff {
	return predicate.Handoff(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.Handoff {
	return predicate.Handoff(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.Handoff {
	return predicate.Handoff(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.Handoff {
	return predicate.Handoff(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.Handoff {
	return predicate.Handoff(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.Handoff {
	return predicate.Handoff(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.Handoff {
	return predicate.Handoff(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.Handoff {
	return predicate.Handoff(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.Handoff {
	return predicate.Handoff(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.Handoff {
	return predicate.Handoff(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.Handoff {
	return predicate.Handoff(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesIsNil applies the IsNil predicate on the "notes" field.
func NotesIsNil() predicate.Handoff {
	return predicate.Handoff(sql.FieldIsNull(FieldNotes))
}

// NotesNotNil applies the NotNil predicate on the "notes" field.
func NotesNotNil() predicate.Handoff {
	return predicate.Handoff(sql.FieldNotNull(FieldNotes))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.Handoff {
	return predicate.Handoff(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.Handoff {
	return predicate.Handoff(sql.FieldContainsFold(FieldNotes, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Handoff {
	return predicate.Handoff(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Handoff {
	return predicate.Handoff(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Handoff {
	return predicate.Handoff(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Handoff {
	return predicate.Handoff(sql.FieldNotIn(FieldStatus, vs...))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Handoff {
	return predicate.Handoff(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Handoff {
	return predicate.Handoff(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Handoff {
	return predicate.Handoff(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Handoff {
	return predicate.Handoff(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Handoff {
	return predicate.Handoff(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Handoff {
	return predicate.Handoff(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Handoff {
	return predicate.Handoff(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Handoff {
	return predicate.Handoff(sql.FieldLTE(FieldCreatedAt, v))
}

// AcceptedAtEQ applies the EQ predicate on the "accepted_at" field.
func AcceptedAtEQ(v time.Time) predicate.Handoff {
	return predicate.Handoff(sql.FieldEQ(FieldAcceptedAt, v))
}

// AcceptedAtNEQ applies the NEQ predicate on the "accepted_at" field.
func AcceptedAtNEQ(v time.Time) predicate.Handoff {
	return predicate.Handoff(sql.FieldNEQ(FieldAcceptedAt, v))
}

// AcceptedAtIn applies the In predicate on the "accepted_at" field.
func AcceptedAtIn(vs ...time.Time) predicate.Handoff {
	return predicate.Handoff(sql.FieldIn(FieldAcceptedAt, vs...))
}

// AcceptedAtNotIn applies the NotIn predicate on the "accepted_at" field.
func AcceptedAtNotIn(vs ...time.Time) predicate.Handoff {
	return predicate.Handoff(sql.FieldNotIn(FieldAcceptedAt, vs...))
}

// AcceptedAtGT applies the GT predicate on the "accepted_at" field.
func AcceptedAtGT(v time.Time) predicate.Handoff {
	return predicate.Handoff(sql.FieldGT(FieldAcceptedAt, v))
}

// AcceptedAtGTE applies the GTE predicate on the "accepted_at" field.
func AcceptedAtGTE(v time.Time) predicate.Handoff {
	return predicate.Handoff(sql.FieldGTE(FieldAcceptedAt, v))
}

// AcceptedAtLT applies the LT predicate on the "accepted_at" field.
func AcceptedAtLT(v time.Time) predicate.Handoff {
	return predicate.Handoff(sql.FieldLT(FieldAcceptedAt, v))
}

// AcceptedAtLTE applies the LTE predicate on the "accepted_at" field.
func AcceptedAtLTE(v time.Time) predicate.Handoff {
	return predicate.Handoff(sql.FieldLTE(FieldAcceptedAt, v))
}

// AcceptedAtIsNil applies the IsNil predicate on the "accepted_at" field.
func AcceptedAtIsNil() predicate.Handoff {
	return predicate.Handoff(sql.FieldIsNull(FieldAcceptedAt))
}

// AcceptedAtNotNil applies the NotNil predicate on the "accepted_at" field.
func AcceptedAtNotNil() predicate.Handoff {
	return predicate.Handoff(sql.FieldNotNull(FieldAcceptedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Handoff {
	return predicate.Handoff(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Handoff {
	return predicate.Handoff(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Handoff {
	return predicate.Handoff(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Handoff {
	return predicate.Handoff(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Handoff {
	return predicate.Handoff(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Handoff {
	return predicate.Handoff(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Handoff {
	return predicate.Handoff(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Handoff {
	return predicate.Handoff(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Handoff {
	return predicate.Handoff(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Handoff {
	return predicate.Handoff(sql.FieldNotNull(FieldCompletedAt))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.Handoff {
	return predicate.Handoff(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.Handoff {
	return predicate.Handoff(sql.FieldNotNull(FieldMetadata))
}

// HasSession applies the HasEdge predicate on the "session" edge.
func HasSession() predicate.Handoff {
	return predicate.Handoff(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionWith applies the HasEdge predicate on the "session" edge with a given conditions (other predicates).
func HasSessionWith(preds ...predicate.Session) predicate.Handoff {
	return predicate.Handoff(func(s *sql.Selector) {
		step := newSessionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Handoff) predicate.Handoff {
	return predicate.Handoff(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Handoff) predicate.Handoff {
	return predicate.Handoff(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Handoff) predicate.Handoff {
	return predicate.Handoff(sql.NotPredicates(p))
}
