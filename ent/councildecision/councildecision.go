// Code generated by ent, DO NOT EDIT.

package councildecision

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the councildecision type in the database.
	Label = "council_decision"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "decision_id"
	// FieldWorkOrderID holds the string denoting the work_order_id field in the database.
	FieldWorkOrderID = "work_order_id"
	// FieldRiskLevel holds the string denoting the risk_level field in the database.
	FieldRiskLevel = "risk_level"
	// FieldDecision holds the string denoting the decision field in the database.
	FieldDecision = "decision"
	// FieldDecidedBy holds the string denoting the decided_by field in the database.
	FieldDecidedBy = "decided_by"
	// FieldNotes holds the string denoting the notes field in the database.
	FieldNotes = "notes"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldResolvedAt holds the string denoting the resolved_at field in the database.
	FieldResolvedAt = "resolved_at"
	// Table holds the table name of the councildecision in the database.
	Table = "council_decisions"
)

// Columns holds all SQL columns for councildecision fields.
var Columns = []string{
	FieldID,
	FieldWorkOrderID,
	FieldRiskLevel,
	FieldDecision,
	FieldDecidedBy,
	FieldNotes,
	FieldCreatedAt,
	FieldResolvedAt,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// RiskLevel defines the type for the "risk_level" enum field.
type RiskLevel string

// RiskLevel values.
const (
	RiskLevelLOW         RiskLevel = "LOW"
	RiskLevelMED         RiskLevel = "MED"
	RiskLevelHIGH        RiskLevel = "HIGH"
	RiskLevelDESTRUCTIVE RiskLevel = "DESTRUCTIVE"
)

func (rl RiskLevel) String() string {
	return string(rl)
}

// RiskLevelValidator is a validator for the "risk_level" field enum values. It is called by the builders before save.
func RiskLevelValidator(rl RiskLevel) error {
	switch rl {
	case RiskLevelLOW, RiskLevelMED, RiskLevelHIGH, RiskLevelDESTRUCTIVE:
		return nil
	default:
		return fmt.Errorf("councildecision: invalid enum value for risk_level field: %q", rl)
	}
}

// Decision defines the type for the "decision" enum field.
type Decision string

// Decision values.
const (
	DecisionApproved     Decision = "approved"
	DecisionPendingHuman Decision = "pending_human"
	DecisionBlocked      Decision = "blocked"
)

func (d Decision) String() string {
	return string(d)
}

// DecisionValidator is a validator for the "decision" field enum values. It is called by the builders before save.
func DecisionValidator(d Decision) error {
	switch d {
	case DecisionApproved, DecisionPendingHuman, DecisionBlocked:
		return nil
	default:
		return fmt.Errorf("councildecision: invalid enum value for decision field: %q", d)
	}
}

// DecidedBy defines the type for the "decided_by" enum field.
type DecidedBy string

// DecidedByAuto is the default value of the DecidedBy enum.
const DefaultDecidedBy = DecidedByAuto

// DecidedBy values.
const (
	DecidedByAuto  DecidedBy = "auto"
	DecidedByHuman DecidedBy = "human"
)

func (db DecidedBy) String() string {
	return string(db)
}

// DecidedByValidator is a validator for the "decided_by" field enum values. It is called by the builders before save.
func DecidedByValidator(db DecidedBy) error {
	switch db {
	case DecidedByAuto, DecidedByHuman:
		return nil
	default:
		return fmt.Errorf("councildecision: invalid enum value for decided_by field: %q", db)
	}
}

// OrderOption defines the ordering options for the CouncilDecision queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByWorkOrderID orders the results by the work_order_id field.
func ByWorkOrderID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkOrderID, opts...).ToFunc()
}

// ByRiskLevel orders the results by the risk_level field.
func ByRiskLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRiskLevel, opts...).ToFunc()
}

// ByDecision orders the results by the decision field.
func ByDecision(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDecision, opts...).ToFunc()
}

// ByDecidedBy orders the results by the decided_by field.
func ByDecidedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDecidedBy, opts...).ToFunc()
}

// ByNotes orders the results by the notes field.
func ByNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNotes, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByResolvedAt orders the results by the resolved_at field.
func ByResolvedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResolvedAt, opts...).ToFunc()
}
