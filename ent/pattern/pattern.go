// Code generated by ent, DO NOT EDIT.

package pattern

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the pattern type in the database.
	Label = "pattern"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "pattern_id"
	// FieldPatternType holds the string denoting the pattern_type field in the database.
	FieldPatternType = "pattern_type"
	// FieldDomain holds the string denoting the domain field in the database.
	FieldDomain = "domain"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldAction holds the string denoting the action field in the database.
	FieldAction = "action"
	// FieldOutcome holds the string denoting the outcome field in the database.
	FieldOutcome = "outcome"
	// FieldContext holds the string denoting the context field in the database.
	FieldContext = "context"
	// FieldEmbedding holds the string denoting the embedding field in the database.
	FieldEmbedding = "embedding"
	// FieldCreatedBy holds the string denoting the created_by field in the database.
	FieldCreatedBy = "created_by"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeObservations holds the string denoting the observations edge name in mutations.
	EdgeObservations = "observations"
	// PatternObservationFieldID holds the string denoting the ID field of the PatternObservation.
	PatternObservationFieldID = "observation_id"
	// Table holds the table name of the pattern in the database.
	Table = "patterns"
	// ObservationsTable is the table that holds the observations relation/edge.
	ObservationsTable = "pattern_observations"
	// ObservationsInverseTable is the table name for the PatternObservation entity.
	// It exists in this package in order to avoid circular dependency with the "patternobservation" package.
	ObservationsInverseTable = "pattern_observations"
	// ObservationsColumn is the table column denoting the observations relation/edge.
	ObservationsColumn = "pattern_id"
)

// Columns holds all SQL columns for pattern fields.
var Columns = []string{
	FieldID,
	FieldPatternType,
	FieldDomain,
	FieldDescription,
	FieldAction,
	FieldOutcome,
	FieldContext,
	FieldEmbedding,
	FieldCreatedBy,
	FieldMetadata,
	FieldCreatedAt,
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
	// DomainValidator is a validator for the "domain" field. It is called by the builders before save.
	DomainValidator func(string) error
	// DefaultCreatedBy holds the default value on creation for the "created_by" field.
	DefaultCreatedBy string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// PatternType defines the type for the "pattern_type" enum field.
type PatternType string

// PatternType values.
const (
	PatternTypeSuccess   PatternType = "success"
	PatternTypeFailure   PatternType = "failure"
	PatternTypeTechnical PatternType = "technical"
	PatternTypeProcess   PatternType = "process"
)

func (pt PatternType) String() string {
	return string(pt)
}

// PatternTypeValidator is a validator for the "pattern_type" field enum values. It is called by the builders before save.
func PatternTypeValidator(pt PatternType) error {
	switch pt {
	case PatternTypeSuccess, PatternTypeFailure, PatternTypeTechnical, PatternTypeProcess:
		return nil
	default:
		return fmt.Errorf("pattern: invalid enum value for pattern_type field: %q", pt)
	}
}

// OrderOption defines the ordering options for the Pattern queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPatternType orders the results by the pattern_type field.
func ByPatternType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPatternType, opts...).ToFunc()
}

// ByDomain orders the results by the domain field.
func ByDomain(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDomain, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByAction orders the results by the action field.
func ByAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAction, opts...).ToFunc()
}

// ByOutcome orders the results by the outcome field.
func ByOutcome(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutcome, opts...).ToFunc()
}

// ByEmbedding orders the results by the embedding field.
func ByEmbedding(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmbedding, opts...).ToFunc()
}

// ByCreatedBy orders the results by the created_by field.
func ByCreatedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedBy, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByObservationsCount orders the results by observations count.
func ByObservationsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newObservationsStep(), opts...)
	}
}

// ByObservations orders the results by observations terms.
func ByObservations(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newObservationsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newObservationsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ObservationsInverseTable, PatternObservationFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ObservationsTable, ObservationsColumn),
	)
}
