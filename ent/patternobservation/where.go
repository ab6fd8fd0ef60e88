// Code generated by ent, DO NOT EDIT.

package patternobservation

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/sergeville/Archon/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.PatternObservation {
	return predicate.PatternObservation(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.PatternObservation {
	return predicate.PatternObservation(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.PatternObservation {
	return predicate.PatternObservation(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.PatternObservation {
	return predicate.PatternObservation(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.PatternObservation {
	return predicate.PatternObservation(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.PatternObservation {
	return predicate.PatternObservation(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.PatternObservation {
	return predicate.PatternObservation(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.PatternObservation {
	return predicate.PatternObservation(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.PatternObservation {
	return predicate.PatternObservation(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.PatternObservation {
	return predicate.PatternObservation(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.PatternObservation {
	return predicate.PatternObservation(sql.FieldContainsFold(FieldID, id))
}

// PatternID applies equality check predicate on the "pattern_id" field. It's identical to PatternIDEQ.
func PatternID(v string) predicate.PatternObservation {
	return predicate.PatternObservation(sql.FieldEQ(FieldPatternID, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.PatternObservation {
	return predicate.PatternObservation(sql.FieldEQ(FieldSessionID, v))
}

// SuccessRating applies equality check predicate on the "success_rating" field. It's identical to SuccessRatingEQ.
func SuccessRating(v int) predicate.PatternObservation {
	return predicate.PatternObservation(sql.FieldEQ(FieldSuccessRating, v))
}

// Feedback applies equality check predicate on the "feedback" field. It's identical to FeedbackEQ.
func Feedback(v string) predicate.PatternObservation {
	return predicate.PatternObservation(sql.FieldEQ(FieldFeedback, v))
}

// ObservedAt applies equality check predicate on the "observed_at" field. It's identical to ObservedAtEQ.
func ObservedAt(v time.Time) predicate.PatternObservation {
	return predicate.PatternObservation(sql.FieldEQ(FieldObservedAt, v))
}

// PatternIDEQ applies the EQ predicate on the "pattern_id" field.
func PatternIDEQ(v string) predicate.PatternObservation {
	return predicate.PatternObservation(sql.FieldEQ(FieldPatternID, v))
}

// PatternIDNEQ applies the NEQ predicate on the "pattern_id" field.
func PatternIDNEQ(v string) predicate.PatternObservation {
	return predicate.PatternObservation(sql.FieldNEQ(FieldPatternID, v))
}

// PatternIDIn applies the In predicate on the "pattern_id" field.
func PatternIDIn(vs ...string) predicate.PatternObservation {
	return predicate.PatternObservation(sql.FieldIn(FieldPatternID, vs...))
}

// PatternIDNotIn applies the NotIn predicate on the "pattern_id" field.
func PatternIDNotIn(vs ...string) predicate.PatternObservation {
	return predicate.PatternObservation(sql.FieldNotIn(FieldPatternID, vs...))
}

// PatternIDGT applies the GT predicate on the "pattern_id" field.
func PatternIDGT(v string) predicate.PatternObservation {
	return predicate.PatternObservation(sql.FieldGT(FieldPatternID, v))
}

// PatternIDGTE applies the GTE predicate on the "pattern_id" field.
func PatternIDGTE(v string) predicate.PatternObservation {
	return predicate.PatternObservation(sql.FieldGTE(FieldPatternID, v))
}

// PatternIDLT applies the LT predicate on the "pattern_id" field.
func PatternIDLT(v string) predicate.PatternObservation {
	return predicate.PatternObservation(sql.FieldLT(FieldPatternID, v))
}

// PatternIDLTE applies the LTE predicate on the "pattern_id" field.
func PatternIDLTE(v string) predicate.PatternObservation {
	return predicate.PatternObservation(sql.FieldLTE(FieldPatternID, v))
}

// PatternIDContains applies the Contains predicate on the "pattern_id" field.
func PatternIDContains(v string) predicate.PatternObservation {
	return predicate.PatternObservation(sql.FieldContains(FieldPatternID, v))
}

// PatternIDHasPrefix applies the HasPrefix predicate on the "pattern_id" field.
func PatternIDHasPrefix(v string) predicate.PatternObservation {
	return predicate.PatternObservation(sql.FieldHasPrefix(FieldPatternID, v))
}

// PatternIDHasSuffix applies the HasSuffix predicate on the "pattern_id" field.
func PatternIDHasSuffix(v string) predicate.PatternObservation {
	return predicate.PatternObservation(sql.FieldHasSuffix(FieldPatternID, v))
}

// PatternIDEqualFold applies the EqualFold predicate on the "pattern_id" field.
func PatternIDEqualFold(v string) predicate.PatternObservation {
	return predicate.PatternObservation(sql.FieldEqualFold(FieldPatternID, v))
}

// PatternIDContainsFold applies the ContainsFold predicate on the "pattern_id" field.
func PatternIDContainsFold(v string) predicate.PatternObservation {
	return predicate.PatternObservation(sql.FieldContainsFold(FieldPatternID, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.PatternObservation {
	return predicate.PatternObservation(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.PatternObservation {
	return predicate.PatternObservation(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.PatternObservation {
	return predicate.PatternObservation(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.PatternObservation {
	return predicate.PatternObservation(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.PatternObservation {
	return predicate.PatternObservation(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.PatternObservation {
	return predicate.PatternObservation(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.PatternObservation {
	return predicate.PatternObservation(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.PatternObservation {
	return predicate.PatternObservation(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.PatternObservation {
	return predicate.PatternObservation(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.PatternObservation {
	return predicate.PatternObservation(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.PatternObservation {
	return predicate.PatternObservation(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDIsNil applies the IsNil predicate on the "session_id" field.
func SessionIDIsNil() predicate.PatternObservation {
	return predicate.PatternObservation(sql.FieldIsNull(FieldSessionID))
}

// SessionIDNotNil applies the NotNil predicate on the "session_id" field.
func SessionIDNotNil() predicate.PatternObservation {
	return predicate.PatternObservation(sql.FieldNotNull(FieldSessionID))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.PatternObservation {
	return predicate.PatternObservation(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.PatternObservation {
	return predicate.PatternObservation(sql.FieldContainsFold(FieldSessionID, v))
}

// SuccessRatingEQ applies the EQ predicate on the "success_rating" field.
func SuccessRatingEQ(v int) predicate.PatternObservation {
	return predicate.PatternObservation(sql.FieldEQ(FieldSuccessRating, v))
}

// SuccessRatingNEQ applies the NEQ predicate on the "success_rating" field.
func SuccessRatingNEQ(v int) predicate.PatternObservation {
	return predicate.PatternObservation(sql.FieldNEQ(FieldSuccessRating, v))
}

// SuccessRatingIn applies the In predicate on the "success_rating" field.
func SuccessRatingIn(vs ...int) predicate.PatternObservation {
	return predicate.PatternObservation(sql.FieldIn(FieldSuccessRating, vs...))
}

// SuccessRatingNotIn applies the NotIn predicate on the "success_rating" field.
func SuccessRatingNotIn(vs ...int) predicate.PatternObservation {
	return predicate.PatternObservation(sql.FieldNotIn(FieldSuccessRating, vs...))
}

// SuccessRatingGT applies the GT predicate on the "success_rating" field.
func SuccessRatingGT(v int) predicate.PatternObservation {
	return predicate.PatternObservation(sql.FieldGT(FieldSuccessRating, v))
}

// SuccessRatingGTE applies the GTE predicate on the "success_rating" field.
func SuccessRatingGTE(v int) predicate.PatternObservation {
	return predicate.PatternObservation(sql.FieldGTE(FieldSuccessRating, v))
}

// SuccessRatingLT applies the LT predicate on the "success_rating" field.
func SuccessRatingLT(v int) predicate.PatternObservation {
	return predicate.PatternObservation(sql.FieldLT(FieldSuccessRating, v))
}

// SuccessRatingLTE applies the LTE predicate on the "success_rating" field.
func SuccessRatingLTE(v int) predicate.PatternObservation {
	return predicate.PatternObservation(sql.FieldLTE(FieldSuccessRating, v))
}

// SuccessRatingIsNil applies the IsNil predicate on the "success_rating" field.
func SuccessRatingIsNil() predicate.PatternObservation {
	return predicate.PatternObservation(sql.FieldIsNull(FieldSuccessRating))
}

// SuccessRatingNotNil applies the NotNil predicate on the "success_rating" field.
func SuccessRatingNotNil() predicate.PatternObservation {
	return predicate.PatternObservation(sql.FieldNotNull(FieldSuccessRating))
}

// FeedbackEQ applies the EQ predicate on the "feedback" field.
func FeedbackEQ(v string) predicate.PatternObservation {
	return predicate.PatternObservation(sql.FieldEQ(FieldFeedback, v))
}

// FeedbackNEQ applies the NEQ predicate on the "feedback" field.
func FeedbackNEQ(v string) predicate.PatternObservation {
	return predicate.PatternObservation(sql.FieldNEQ(FieldFeedback, v))
}

// FeedbackIn applies the In predicate on the "feedback" field.
func FeedbackIn(vs ...string) predicate.PatternObservation {
	return predicate.PatternObservation(sql.FieldIn(FieldFeedback, vs...))
}

// FeedbackNotIn applies the NotIn predicate on the "feedback" field.
func FeedbackNotIn(vs ...string) predicate.PatternObservation {
	return predicate.PatternObservation(sql.FieldNotIn(FieldFeedback, vs...))
}

// FeedbackGT applies the GT predicate on the "feedback" field.
func FeedbackGT(v string) predicate.PatternObservation {
	return predicate.PatternObservation(sql.FieldGT(FieldFeedback, v))
}

// FeedbackGTE applies the GTE predicate on the "feedback" field.
func FeedbackGTE(v string) predicate.PatternObservation {
	return predicate.PatternObservation(sql.FieldGTE(FieldFeedback, v))
}

// FeedbackLT applies the LT predicate on the "feedback" field.
func FeedbackLT(v string) predicate.PatternObservation {
	return predicate.PatternObservation(sql.FieldLT(FieldFeedback, v))
}

// FeedbackLTE applies the LTE predicate on the "feedback" field.
func FeedbackLTE(v string) predicate.PatternObservation {
	return predicate.PatternObservation(sql.FieldLTE(FieldFeedback, v))
}

// FeedbackContains applies the Contains predicate on the "feedback" field.
func FeedbackContains(v string) predicate.PatternObservation {
	return predicate.PatternObservation(sql.FieldContains(FieldFeedback, v))
}

// FeedbackHasPrefix applies the HasPrefix predicate on the "feedback" field.
func FeedbackHasPrefix(v string) predicate.PatternObservation {
	return predicate.PatternObservation(sql.FieldHasPrefix(FieldFeedback, v))
}

// FeedbackHasSuffix applies the HasSuffix predicate on the "feedback" field.
func FeedbackHasSuffix(v string) predicate.PatternObservation {
	return predicate.PatternObservation(sql.FieldHasSuffix(FieldFeedback, v))
}

// FeedbackIsNil applies the IsNil predicate on the "feedback" field.
func FeedbackIsNil() predicate.PatternObservation {
	return predicate.PatternObservation(sql.FieldIsNull(FieldFeedback))
}

// FeedbackNotNil applies the NotNil predicate on the "feedback" field.
func FeedbackNotNil() predicate.PatternObservation {
	return predicate.PatternObservation(sql.FieldNotNull(FieldFeedback))
}

// FeedbackEqualFold applies the EqualFold predicate on the "feedback" field.
func FeedbackEqualFold(v string) predicate.PatternObservation {
	return predicate.PatternObservation(sql.FieldEqualFold(FieldFeedback, v))
}

// FeedbackContainsFold applies the ContainsFold predicate on the "feedback" field.
func FeedbackContainsFold(v string) predicate.PatternObservation {
	return predicate.PatternObservation(sql.FieldContainsFold(FieldFeedback, v))
}

// ObservedAtEQ applies the EQ predicate on the "observed_at" field.
func ObservedAtEQ(v time.Time) predicate.PatternObservation {
	return predicate.PatternObservation(sql.FieldEQ(FieldObservedAt, v))
}

// ObservedAtNEQ applies the NEQ predicate on the "observed_at" field.
func ObservedAtNEQ(v time.Time) predicate.PatternObservation {
	return predicate.PatternObservation(sql.FieldNEQ(FieldObservedAt, v))
}

// ObservedAtIn applies the In predicate on the "observed_at" field.
func ObservedAtIn(vs ...time.Time) predicate.PatternObservation {
	return predicate.PatternObservation(sql.FieldIn(FieldObservedAt, vs...))
}

// ObservedAtNotIn applies the NotIn predicate on the "observed_at" field.
func ObservedAtNotIn(vs ...time.Time) predicate.PatternObservation {
	return predicate.PatternObservation(sql.FieldNotIn(FieldObservedAt, vs...))
}

// ObservedAtGT applies the GT predicate on the "observed_at" field.
func ObservedAtGT(v time.Time) predicate.PatternObservation {
	return predicate.PatternObservation(sql.FieldGT(FieldObservedAt, v))
}

// ObservedAtGTE applies the GTE predicate on the "observed_at" field.
func ObservedAtGTE(v time.Time) predicate.PatternObservation {
	return predicate.PatternObservation(sql.FieldGTE(FieldObservedAt, v))
}

// ObservedAtLT applies the LT predicate on the "observed_at" field.
func ObservedAtLT(v time.Time) predicate.PatternObservation {
	return predicate.PatternObservation(sql.FieldLT(FieldObservedAt, v))
}

// ObservedAtLTE applies the LTE predicate on the "observed_at" field.
func ObservedAtLTE(v time.Time) predicate.PatternObservation {
	return predicate.PatternObservation(sql.FieldLTE(FieldObservedAt, v))
}

// HasPattern applies the HasEdge predicate on the "pattern" edge.
func HasPattern() predicate.PatternObservation {
	return predicate.PatternObservation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PatternTable, PatternColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPatternWith applies the HasEdge predicate on the "pattern" edge with a given conditions (other predicates).
func HasPatternWith(preds ...predicate.Pattern) predicate.PatternObservation {
	return predicate.PatternObservation(func(s *sql.Selector) {
		step := newPatternStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PatternObservation) predicate.PatternObservation {
	return predicate.PatternObservation(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PatternObservation) predicate.PatternObservation {
	return predicate.PatternObservation(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PatternObservation) predicate.PatternObservation {
	return predicate.PatternObservation(sql.NotPredicates(p))
}
