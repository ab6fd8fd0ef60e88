// Code generated by ent, DO NOT EDIT.

package conductorlog

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/sergeville/Archon/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldContainsFold(FieldID, id))
}

// WorkOrderID applies equality check predicate on the "work_order_id" field. It's identical to WorkOrderIDEQ.
func WorkOrderID(v string) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldEQ(FieldWorkOrderID, v))
}

// MissionID applies equality check predicate on the "mission_id" field. It's identical to MissionIDEQ.
func MissionID(v string) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldEQ(FieldMissionID, v))
}

// ConductorAgent applies equality check predicate on the "conductor_agent" field. It's identical to ConductorAgentEQ.
func ConductorAgent(v string) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldEQ(FieldConductorAgent, v))
}

// DelegationTarget applies equality check predicate on the "delegation_target" field. It's identical to DelegationTargetEQ.
func DelegationTarget(v string) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldEQ(FieldDelegationTarget, v))
}

// Reasoning applies equality check predicate on the "reasoning" field. It's identical to ReasoningEQ.
func Reasoning(v string) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldEQ(FieldReasoning, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldEQ(FieldConfidence, v))
}

// OutcomeNotes applies equality check predicate on the "outcome_notes" field. It's identical to OutcomeNotesEQ.
func OutcomeNotes(v string) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldEQ(FieldOutcomeNotes, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldEQ(FieldCreatedAt, v))
}

// OutcomeAt applies equality check predicate on the "outcome_at" field. It's identical to OutcomeAtEQ.
func OutcomeAt(v time.Time) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldEQ(FieldOutcomeAt, v))
}

// WorkOrderIDEQ applies the EQ predicate on the "work_order_id" field.
func WorkOrderIDEQ(v string) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldEQ(FieldWorkOrderID, v))
}

// WorkOrderIDNEQ applies the NEQ predicate on the "work_order_id" field.
func WorkOrderIDNEQ(v string) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldNEQ(FieldWorkOrderID, v))
}

// WorkOrderIDIn applies the In predicate on the "work_order_id" field.
func WorkOrderIDIn(vs ...string) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldIn(FieldWorkOrderID, vs...))
}

// WorkOrderIDNotIn applies the NotIn predicate on the "work_order_id" field.
func WorkOrderIDNotIn(vs ...string) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldNotIn(FieldWorkOrderID, vs...))
}

// WorkOrderIDGT applies the GT predicate on the "work_order_id" field.
func WorkOrderIDGT(v string) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldGT(FieldWorkOrderID, v))
}

// WorkOrderIDGTE applies the GTE predicate on the "work_order_id" field.
func WorkOrderIDGTE(v string) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldGTE(FieldWorkOrderID, v))
}

// WorkOrderIDLT applies the LT predicate on the "work_order_id" field.
func WorkOrderIDLT(v string) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldLT(FieldWorkOrderID, v))
}

// WorkOrderIDLTE applies the LTE predicate on the "work_order_id" field.
func WorkOrderIDLTE(v string) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldLTE(FieldWorkOrderID, v))
}

// WorkOrderIDContains applies the Contains predicate on the "work_order_id" field.
func WorkOrderIDContains(v string) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldContains(FieldWorkOrderID, v))
}

// WorkOrderIDHasPrefix applies the HasPrefix predicate on the "work_order_id" field.
func WorkOrderIDHasPrefix(v string) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldHasPrefix(FieldWorkOrderID, v))
}

// WorkOrderIDHasSuffix applies the HasSuffix predicate on the "work_order_id" field.
func WorkOrderIDHasSuffix(v string) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldHasSuffix(FieldWorkOrderID, v))
}

// WorkOrderIDEqualFold applies the EqualFold predicate on the "work_order_id" field.
func WorkOrderIDEqualFold(v string) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldEqualFold(FieldWorkOrderID, v))
}

// WorkOrderIDContainsFold applies the ContainsFold predicate on the "work_order_id" field.
func WorkOrderIDContainsFold(v string) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldContainsFold(FieldWorkOrderID, v))
}

// MissionIDEQ applies the EQ predicate on the "mission_id" field.
func MissionIDEQ(v string) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldEQ(FieldMissionID, v))
}

// MissionIDNEQ applies the NEQ predicate on the "mission_id" field.
func MissionIDNEQ(v string) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldNEQ(FieldMissionID, v))
}

// MissionIDIn applies the In predicate on the "mission_id" field.
func MissionIDIn(vs ...string) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldIn(FieldMissionID, vs...))
}

// MissionIDNotIn applies the NotIn predicate on the "mission_id" field.
func MissionIDNotIn(vs ...string) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldNotIn(FieldMissionID, vs...))
}

// MissionIDGT applies the GT predicate on the "mission_id" field.
func MissionIDGT(v string) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldGT(FieldMissionID, v))
}

// MissionIDGTE applies the GTE predicate on the "mission_id" field.
func MissionIDGTE(v string) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldGTE(FieldMissionID, v))
}

// MissionIDLT applies the LT predicate on the "mission_id" field.
func MissionIDLT(v string) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldLT(FieldMissionID, v))
}

// MissionIDLTE applies the LTE predicate on the "mission_id" field.
func MissionIDLTE(v string) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldLTE(FieldMissionID, v))
}

// MissionIDContains applies the Contains predicate on the "mission_id" field.
func MissionIDContains(v string) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldContains(FieldMissionID, v))
}

// MissionIDHasPrefix applies the HasPrefix predicate on the "mission_id" field.
func MissionIDHasPrefix(v string) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldHasPrefix(FieldMissionID, v))
}

// MissionIDHasSuffix applies the HasSuffix predicate on the "mission_id" field.
func MissionIDHasSuffix(v string) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldHasSuffix(FieldMissionID, v))
}

// MissionIDIsNil applies the IsNil predicate on the "mission_id" field.
func MissionIDIsNil() predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldIsNull(FieldMissionID))
}

// MissionIDNotNil applies the NotNil predicate on the "mission_id" field.
func MissionIDNotNil() predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldNotNull(FieldMissionID))
}

// MissionIDEqualFold applies the EqualFold predicate on the "mission_id" field.
func MissionIDEqualFold(v string) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldEqualFold(FieldMissionID, v))
}

// MissionIDContainsFold applies the ContainsFold predicate on the "mission_id" field.
func MissionIDContainsFold(v string) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldContainsFold(FieldMissionID, v))
}

// ConductorAgentEQ applies the EQ predicate on the "conductor_agent" field.
func ConductorAgentEQ(v string) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldEQ(FieldConductorAgent, v))
}

// ConductorAgentNEQ applies the NEQ predicate on the "conductor_agent" field.
func ConductorAgentNEQ(v string) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldNEQ(FieldConductorAgent, v))
}

// ConductorAgentIn applies the In predicate on the "conductor_agent" field.
func ConductorAgentIn(vs ...string) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldIn(FieldConductorAgent, vs...))
}

// ConductorAgentNotIn applies the NotIn predicate on the "conductor_agent" field.
func ConductorAgentNotIn(vs ...string) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldNotIn(FieldConductorAgent, vs...))
}

// ConductorAgentGT applies the GT predicate on the "conductor_agent" field.
func ConductorAgentGT(v string) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldGT(FieldConductorAgent, v))
}

// ConductorAgentGTE applies the GTE predicate on the "conductor_agent" field.
func ConductorAgentGTE(v string) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldGTE(FieldConductorAgent, v))
}

// ConductorAgentLT applies the LT predicate on the "conductor_agent" field.
func ConductorAgentLT(v string) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldLT(FieldConductorAgent, v))
}

// ConductorAgentLTE applies the LTE predicate on the "conductor_agent" field.
func ConductorAgentLTE(v string) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldLTE(FieldConductorAgent, v))
}

// ConductorAgentContains applies the Contains predicate on the "conductor_agent" field.
func ConductorAgentContains(v string) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldContains(FieldConductorAgent, v))
}

// ConductorAgentHasPrefix applies the HasPrefix predicate on the "conductor_agent" field.
func ConductorAgentHasPrefix(v string) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldHasPrefix(FieldConductorAgent, v))
}

// ConductorAgentHasSuffix applies the HasSuffix predicate on the "conductor_agent" field.
func ConductorAgentHasSuffix(v string) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldHasSuffix(FieldConductorAgent, v))
}

// ConductorAgentEqualFold applies the EqualFold predicate on the "conductor_agent" field.
func ConductorAgentEqualFold(v string) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldEqualFold(FieldConductorAgent, v))
}

// ConductorAgentContainsFold applies the ContainsFold predicate on the "conductor_agent" field.
func ConductorAgentContainsFold(v string) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldContainsFold(FieldConductorAgent, v))
}

// DelegationTargetEQ applies the EQ predicate on the "delegation_target" field.
func DelegationTargetEQ(v string) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldEQ(FieldDelegationTarget, v))
}

// DelegationTargetNEQ applies the NEQ predicate on the "delegation_target" field.
func DelegationTargetNEQ(v string) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldNEQ(FieldDelegationTarget, v))
}

// DelegationTargetIn applies the In predicate on the "delegation_target" field.
func DelegationTargetIn(vs ...string) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldIn(FieldDelegationTarget, vs...))
}

// DelegationTargetNotIn applies the NotIn predicate on the "delegation_target" field.
func DelegationTargetNotIn(vs ...string) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldNotIn(FieldDelegationTarget, vs...))
}

// DelegationTargetGT applies the GT predicate on the "delegation_target" field.
func DelegationTargetGT(v string) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldGT(FieldDelegationTarget, v))
}

// DelegationTargetGTE applies the GTE predicate on the "delegation_target" field.
func DelegationTargetGTE(v string) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldGTE(FieldDelegationTarget, v))
}

// DelegationTargetLT applies the LT predicate on the "delegation_target" field.
func DelegationTargetLT(v string) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldLT(FieldDelegationTarget, v))
}

// DelegationTargetLTE applies the LTE predicate on the "delegation_target" field.
func DelegationTargetLTE(v string) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldLTE(FieldDelegationTarget, v))
}

// DelegationTargetContains applies the Contains predicate on the "delegation_target" field.
func DelegationTargetContains(v string) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldContains(FieldDelegationTarget, v))
}

// DelegationTargetHasPrefix applies the HasPrefix predicate on the "delegation_target" field.
func DelegationTargetHasPrefix(v string) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldHasPrefix(FieldDelegationTarget, v))
}

// DelegationTargetHasSuffix applies the HasSuffix predicate on the "delegation_target" field.
func DelegationTargetHasSuffix(v string) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldHasSuffix(FieldDelegationTarget, v))
}

// DelegationTargetEqualFold applies the EqualFold predicate on the "delegation_target" field.
func DelegationTargetEqualFold(v string) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldEqualFold(FieldDelegationTarget, v))
}

// DelegationTargetContainsFold applies the ContainsFold predicate on the "delegation_target" field.
func DelegationTargetContainsFold(v string) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldContainsFold(FieldDelegationTarget, v))
}

// ReasoningEQ applies the EQ predicate on the "reasoning" field.
func ReasoningEQ(v string) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldEQ(FieldReasoning, v))
}

// ReasoningNEQ applies the NEQ predicate on the "reasoning" field.
func ReasoningNEQ(v string) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldNEQ(FieldReasoning, v))
}

// ReasoningIn applies the In predicate on the "reasoning" field.
func ReasoningIn(vs ...string) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldIn(FieldReasoning, vs...))
}

// ReasoningNotIn applies the NotIn predicate on the "reasoning" field.
func ReasoningNotIn(vs ...string) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldNotIn(FieldReasoning, vs...))
}

// ReasoningGT applies the GT predicate on the "reasoning" field.
func ReasoningGT(v string) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldGT(FieldReasoning, v))
}

// ReasoningGTE applies the GTE predicate on the "reasoning" field.
func ReasoningGTE(v string) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldGTE(FieldReasoning, v))
}

// ReasoningLT applies the LT predicate on the "reasoning" field.
func ReasoningLT(v string) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldLT(FieldReasoning, v))
}

// ReasoningLTE applies the LTE predicate on the "reasoning" field.
func ReasoningLTE(v string) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldLTE(FieldReasoning, v))
}

// ReasoningContains applies the Contains predicate on the "reasoning" field.
func ReasoningContains(v string) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldContains(FieldReasoning, v))
}

// ReasoningHasPrefix applies the HasPrefix predicate on the "reasoning" field.
func ReasoningHasPrefix(v string) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldHasPrefix(FieldReasoning, v))
}

// ReasoningHasSuffix applies the HasSuffix predicate on the "reasoning" field.
func ReasoningHasSuffix(v string) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldHasSuffix(FieldReasoning, v))
}

// ReasoningEqualFold applies the EqualFold predicate on the "reasoning" field.
func ReasoningEqualFold(v string) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldEqualFold(FieldReasoning, v))
}

// ReasoningContainsFold applies the ContainsFold predicate on the "reasoning" field.
func ReasoningContainsFold(v string) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldContainsFold(FieldReasoning, v))
}

// InjectedContextIsNil applies the IsNil predicate on the "injected_context" field.
func InjectedContextIsNil() predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldIsNull(FieldInjectedContext))
}

// InjectedContextNotNil applies the NotNil predicate on the "injected_context" field.
func InjectedContextNotNil() predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldNotNull(FieldInjectedContext))
}

// DecisionFactorsIsNil applies the IsNil predicate on the "decision_factors" field.
func DecisionFactorsIsNil() predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldIsNull(FieldDecisionFactors))
}

// DecisionFactorsNotNil applies the NotNil predicate on the "decision_factors" field.
func DecisionFactorsNotNil() predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldNotNull(FieldDecisionFactors))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldLTE(FieldConfidence, v))
}

// ConfidenceIsNil applies the IsNil predicate on the "confidence" field.
func ConfidenceIsNil() predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldIsNull(FieldConfidence))
}

// ConfidenceNotNil applies the NotNil predicate on the "confidence" field.
func ConfidenceNotNil() predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldNotNull(FieldConfidence))
}

// OutcomeEQ applies the EQ predicate on the "outcome" field.
func OutcomeEQ(v Outcome) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldEQ(FieldOutcome, v))
}

// OutcomeNEQ applies the NEQ predicate on the "outcome" field.
func OutcomeNEQ(v Outcome) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldNEQ(FieldOutcome, v))
}

// OutcomeIn applies the In predicate on the "outcome" field.
func OutcomeIn(vs ...Outcome) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldIn(FieldOutcome, vs...))
}

// OutcomeNotIn applies the NotIn predicate on the "outcome" field.
func OutcomeNotIn(vs ...Outcome) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldNotIn(FieldOutcome, vs...))
}

// OutcomeIsNil applies the IsNil predicate on the "outcome" field.
func OutcomeIsNil() predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldIsNull(FieldOutcome))
}

// OutcomeNotNil applies the NotNil predicate on the "outcome" field.
func OutcomeNotNil() predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldNotNull(FieldOutcome))
}

// OutcomeNotesEQ applies the EQ predicate on the "outcome_notes" field.
func OutcomeNotesEQ(v string) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldEQ(FieldOutcomeNotes, v))
}

// OutcomeNotesNEQ applies the NEQ predicate on the "outcome_notes" field.
func OutcomeNotesNEQ(v string) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldNEQ(FieldOutcomeNotes, v))
}

// OutcomeNotesIn applies the In predicate on the "outcome_notes" field.
func OutcomeNotesIn(vs ...string) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldIn(FieldOutcomeNotes, vs...))
}

// OutcomeNotesNotIn applies the NotIn predicate on the "outcome_notes" field.
func OutcomeNotesNotIn(vs ...string) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldNotIn(FieldOutcomeNotes, vs...))
}

// OutcomeNotesGT applies the GT predicate on the "outcome_notes" field.
func OutcomeNotesGT(v string) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldGT(FieldOutcomeNotes, v))
}

// OutcomeNotesGTE applies the GTE predicate on the "outcome_notes" field.
func OutcomeNotesGTE(v string) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldGTE(FieldOutcomeNotes, v))
}

// OutcomeNotesLT applies the LT predicate on the "outcome_notes" field.
func OutcomeNotesLT(v string) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldLT(FieldOutcomeNotes, v))
}

// OutcomeNotesLTE applies the LTE predicate on the "outcome_notes" field.
func OutcomeNotesLTE(v string) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldLTE(FieldOutcomeNotes, v))
}

// OutcomeNotesContains applies the Contains predicate on the "outcome_notes" field.
func OutcomeNotesContains(v string) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldContains(FieldOutcomeNotes, v))
}

// OutcomeNotesHasPrefix applies the HasPrefix predicate on the "outcome_notes" field.
func OutcomeNotesHasPrefix(v string) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldHasPrefix(FieldOutcomeNotes, v))
}

// OutcomeNotesHasSuffix applies the HasSuffix predicate on the "outcome_notes" field.
func OutcomeNotesHasSuffix(v string) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldHasSuffix(FieldOutcomeNotes, v))
}

// OutcomeNotesIsNil applies the IsNil predicate on the "outcome_notes" field.
func OutcomeNotesIsNil() predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldIsNull(FieldOutcomeNotes))
}

// OutcomeNotesNotNil applies the NotNil predicate on the "outcome_notes" field.
func OutcomeNotesNotNil() predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldNotNull(FieldOutcomeNotes))
}

// OutcomeNotesEqualFold applies the EqualFold predicate on the "outcome_notes" field.
func OutcomeNotesEqualFold(v string) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldEqualFold(FieldOutcomeNotes, v))
}

// OutcomeNotesContainsFold applies the ContainsFold predicate on the "outcome_notes" field.
func OutcomeNotesContainsFold(v string) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldContainsFold(FieldOutcomeNotes, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldLTE(FieldCreatedAt, v))
}

// OutcomeAtEQ applies the EQ predicate on the "outcome_at" field.
func OutcomeAtEQ(v time.Time) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldEQ(FieldOutcomeAt, v))
}

// OutcomeAtNEQ applies the NEQ predicate on the "outcome_at" field.
func OutcomeAtNEQ(v time.Time) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldNEQ(FieldOutcomeAt, v))
}

// OutcomeAtIn applies the In predicate on the "outcome_at" field.
func OutcomeAtIn(vs ...time.Time) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldIn(FieldOutcomeAt, vs...))
}

// OutcomeAtNotIn applies the NotIn predicate on the "outcome_at" field.
func OutcomeAtNotIn(vs ...time.Time) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldNotIn(FieldOutcomeAt, vs...))
}

// OutcomeAtGT applies the GT predicate on the "outcome_at" field.
func OutcomeAtGT(v time.Time) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldGT(FieldOutcomeAt, v))
}

// OutcomeAtGTE applies the GTE predicate on the "outcome_at" field.
func OutcomeAtGTE(v time.Time) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldGTE(FieldOutcomeAt, v))
}

// OutcomeAtLT applies the LT predicate on the "outcome_at" field.
func OutcomeAtLT(v time.Time) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldLT(FieldOutcomeAt, v))
}

// OutcomeAtLTE applies the LTE predicate on the "outcome_at" field.
func OutcomeAtLTE(v time.Time) predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldLTE(FieldOutcomeAt, v))
}

// OutcomeAtIsNil applies the IsNil predicate on the "outcome_at" field.
func OutcomeAtIsNil() predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldIsNull(FieldOutcomeAt))
}

// OutcomeAtNotNil applies the NotNil predicate on the "outcome_at" field.
func OutcomeAtNotNil() predicate.ConductorLog {
	return predicate.ConductorLog(sql.FieldNotNull(FieldOutcomeAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ConductorLog) predicate.ConductorLog {
	return predicate.ConductorLog(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ConductorLog) predicate.ConductorLog {
	return predicate.ConductorLog(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ConductorLog) predicate.ConductorLog {
	return predicate.ConductorLog(sql.NotPredicates(p))
}
