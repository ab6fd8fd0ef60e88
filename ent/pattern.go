// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	pgvector "github.com/pgvector/pgvector-go"
	"github.com/sergeville/Archon/ent/pattern"
)

// Pattern is the model entity for the Pattern schema.
type Pattern struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// PatternType holds the value of the "pattern_type" field.
	PatternType pattern.PatternType `json:"pattern_type,omitempty"`
	// Domain holds the value of the "domain" field.
	Domain string `json:"domain,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Action holds the value of the "action" field.
	Action string `json:"action,omitempty"`
	// Outcome holds the value of the "outcome" field.
	Outcome *string `json:"outcome,omitempty"`
	// Context holds the value of the "context" field.
	Context map[string]interface{} `json:"context,omitempty"`
	// Embedding holds the value of the "embedding" field.
	Embedding *pgvector.Vector `json:"embedding,omitempty"`
	// CreatedBy holds the value of the "created_by" field.
	CreatedBy string `json:"created_by,omitempty"`
	// Metadata holds the value of the "metadata" field.
	Metadata map[string]interface{} `json:"metadata,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PatternQuery when eager-loading is set.
	Edges        PatternEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PatternEdges holds the relations/edges for other nodes in the graph.
type PatternEdges struct {
	// Observations holds the value of the observations edge.
	Observations []*PatternObservation `json:"observations,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ObservationsOrErr returns the Observations value or an error if the edge
// was not loaded in eager-loading.
func (e PatternEdges) ObservationsOrErr() ([]*PatternObservation, error) {
	if e.loadedTypes[0] {
		return e.Observations, nil
	}
	return nil, &NotLoadedError{edge: "observations"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Pattern) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case pattern.FieldEmbedding:
			values[i] = &sql.NullScanner{S: new(pgvector.Vector)}
		case pattern.FieldContext, pattern.FieldMetadata:
			values[i] = new([]byte)
		case pattern.FieldID, pattern.FieldPatternType, pattern.FieldDomain, pattern.FieldDescription, pattern.FieldAction, pattern.FieldOutcome, pattern.FieldCreatedBy:
			values[i] = new(sql.NullString)
		case pattern.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Pattern fields.
func (_m *Pattern) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case pattern.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case pattern.FieldPatternType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pattern_type", values[i])
			} else if value.Valid {
				_m.PatternType = pattern.PatternType(value.String)
			}
		case pattern.FieldDomain:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field domain", values[i])
			} else if value.Valid {
				_m.Domain = value.String
			}
		case pattern.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case pattern.FieldAction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field action", values[i])
			} else if value.Valid {
				_m.Action = value.String
			}
		case pattern.FieldOutcome:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field outcome", values[i])
			} else if value.Valid {
				_m.Outcome = new(string)
				*_m.Outcome = value.String
			}
		case pattern.FieldContext:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field context", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Context); err != nil {
					return fmt.Errorf("unmarshal field context: %w", err)
				}
			}
		case pattern.FieldEmbedding:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field embedding", values[i])
			} else if value.Valid {
				_m.Embedding = new(pgvector.Vector)
				*_m.Embedding = *value.S.(*pgvector.Vector)
			}
		case pattern.FieldCreatedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field created_by", values[i])
			} else if value.Valid {
				_m.CreatedBy = value.String
			}
		case pattern.FieldMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metadata); err != nil {
					return fmt.Errorf("unmarshal field metadata: %w", err)
				}
			}
		case pattern.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Pattern.
// This includes values selected through modifiers, order, etc.
func (_m *Pattern) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryObservations queries the "observations" edge of the Pattern entity.
func (_m *Pattern) QueryObservations() *PatternObservationQuery {
	return NewPatternClient(_m.config).QueryObservations(_m)
}

// Update returns a builder for updating this Pattern.
// Note that you need to call Pattern.Unwrap() before calling this method if this Pattern
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Pattern) Update() *PatternUpdateOne {
	return NewPatternClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Pattern entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Pattern) Unwrap() *Pattern {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Pattern is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Pattern) String() string {
	var builder strings.Builder
	builder.WriteString("Pattern(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("pattern_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.PatternType))
	builder.WriteString(", ")
	builder.WriteString("domain=")
	builder.WriteString(_m.Domain)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("action=")
	builder.WriteString(_m.Action)
	builder.WriteString(", ")
	if v := _m.Outcome; v != nil {
		builder.WriteString("outcome=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("context=")
	builder.WriteString(fmt.Sprintf("%v", _m.Context))
	builder.WriteString(", ")
	if v := _m.Embedding; v != nil {
		builder.WriteString("embedding=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("created_by=")
	builder.WriteString(_m.CreatedBy)
	builder.WriteString(", ")
	builder.WriteString("metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metadata))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Patterns is a parsable slice of Pattern.
type Patterns []*Pattern
