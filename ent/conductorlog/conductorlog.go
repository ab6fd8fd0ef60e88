// Code generated by ent, DO NOT EDIT.

package conductorlog

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the conductorlog type in the database.
	Label = "conductor_log"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "log_id"
	// FieldWorkOrderID holds the string denoting the work_order_id field in the database.
	FieldWorkOrderID = "work_order_id"
	// FieldMissionID holds the string denoting the mission_id field in the database.
	FieldMissionID = "mission_id"
	// FieldConductorAgent holds the string denoting the conductor_agent field in the database.
	FieldConductorAgent = "conductor_agent"
	// FieldDelegationTarget holds the string denoting the delegation_target field in the database.
	FieldDelegationTarget = "delegation_target"
	// FieldReasoning holds the string denoting the reasoning field in the database.
	FieldReasoning = "reasoning"
	// FieldInjectedContext holds the string denoting the injected_context field in the database.
	FieldInjectedContext = "injected_context"
	// FieldDecisionFactors holds the string denoting the decision_factors field in the database.
	FieldDecisionFactors = "decision_factors"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldOutcome holds the string denoting the outcome field in the database.
	FieldOutcome = "outcome"
	// FieldOutcomeNotes holds the string denoting the outcome_notes field in the database.
	FieldOutcomeNotes = "outcome_notes"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldOutcomeAt holds the string denoting the outcome_at field in the database.
	FieldOutcomeAt = "outcome_at"
	// Table holds the table name of the conductorlog in the database.
	Table = "conductor_logs"
)

// Columns holds all SQL columns for conductorlog fields.
var Columns = []string{
	FieldID,
	FieldWorkOrderID,
	FieldMissionID,
	FieldConductorAgent,
	FieldDelegationTarget,
	FieldReasoning,
	FieldInjectedContext,
	FieldDecisionFactors,
	FieldConfidence,
	FieldOutcome,
	FieldOutcomeNotes,
	FieldCreatedAt,
	FieldOutcomeAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// WorkOrderIDValidator is a validator for the "work_order_id" field. It is called by the builders before save.
	WorkOrderIDValidator func(string) error
	// ConductorAgentValidator is a validator for the "conductor_agent" field. It is called by the builders before save.
	ConductorAgentValidator func(string) error
	// DelegationTargetValidator is a validator for the "delegation_target" field. It is called by the builders before save.
	DelegationTargetValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Outcome defines the type for the "outcome" enum field.
type Outcome string

// Outcome values.
const (
	OutcomeSuccess Outcome = "success"
	OutcomeFailure Outcome = "failure"
	OutcomePartial Outcome = "partial"
)

func (o Outcome) String() string {
	return string(o)
}

// OutcomeValidator is a validator for the "outcome" field enum values. It is called by the builders before save.
func OutcomeValidator(o Outcome) error {
	switch o {
	case OutcomeSuccess, OutcomeFailure, OutcomePartial:
		return nil
	default:
		return fmt.Errorf("conductorlog: invalid enum value for outcome field: %q", o)
	}
}

// OrderOption defines the ordering options for the ConductorLog queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByWorkOrderID orders the results by the work_order_id field.
func ByWorkOrderID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkOrderID, opts...).ToFunc()
}

// ByMissionID orders the results by the mission_id field.
func ByMissionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMissionID, opts...).ToFunc()
}

// ByConductorAgent orders the results by the conductor_agent field.
func ByConductorAgent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConductorAgent, opts...).ToFunc()
}

// ByDelegationTarget orders the results by the delegation_target field.
func ByDelegationTarget(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDelegationTarget, opts...).ToFunc()
}

// ByReasoning orders the results by the reasoning field.
func ByReasoning(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReasoning, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByOutcome orders the results by the outcome field.
func ByOutcome(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutcome, opts...).ToFunc()
}

// ByOutcomeNotes orders the results by the outcome_notes field.
func ByOutcomeNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutcomeNotes, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByOutcomeAt orders the results by the outcome_at field.
func ByOutcomeAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutcomeAt, opts...).ToFunc()
}
