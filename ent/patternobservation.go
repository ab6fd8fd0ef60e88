// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/sergeville/Archon/ent/pattern"
	"github.com/sergeville/Archon/ent/patternobservation"
)

// PatternObservation is the model entity for the PatternObservation schema.
type PatternObservation struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// PatternID holds the value of the "pattern_id" field.
	PatternID string `json:"pattern_id,omitempty"`
	// Soft reference; not a foreign key
	SessionID *string `json:"session_id,omitempty"`
	// SuccessRating holds the value of the "success_rating" field.
	SuccessRating *int `json:"success_rating,omitempty"`
	// Feedback holds the value of the "feedback" field.
	Feedback *string `json:"feedback,omitempty"`
	// ObservedAt holds the value of the "observed_at" field.
	ObservedAt time.Time `json:"observed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PatternObservationQuery when eager-loading is set.
	Edges        PatternObservationEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PatternObservationEdges holds the relations/edges for other nodes in the graph.
type PatternObservationEdges struct {
	// Pattern holds the value of the pattern edge.
	Pattern *Pattern `json:"pattern,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// PatternOrErr returns the Pattern value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PatternObservationEdges) PatternOrErr() (*Pattern, error) {
	if e.Pattern != nil {
		return e.Pattern, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: pattern.Label}
	}
	return nil, &NotLoadedError{edge: "pattern"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PatternObservation) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case patternobservation.FieldSuccessRating:
			values[i] = new(sql.NullInt64)
		case patternobservation.FieldID, patternobservation.FieldPatternID, patternobservation.FieldSessionID, patternobservation.FieldFeedback:
			values[i] = new(sql.NullString)
		case patternobservation.FieldObservedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PatternObservation fields.
func (_m *PatternObservation) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case patternobservation.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case patternobservation.FieldPatternID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pattern_id", values[i])
			} else if value.Valid {
				_m.PatternID = value.String
			}
		case patternobservation.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = new(string)
				*_m.SessionID = value.String
			}
		case patternobservation.FieldSuccessRating:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field success_rating", values[i])
			} else if value.Valid {
				_m.SuccessRating = new(int)
				*_m.SuccessRating = int(value.Int64)
			}
		case patternobservation.FieldFeedback:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field feedback", values[i])
			} else if value.Valid {
				_m.Feedback = new(string)
				*_m.Feedback = value.String
			}
		case patternobservation.FieldObservedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field observed_at", values[i])
			} else if value.Valid {
				_m.ObservedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PatternObservation.
// This includes values selected through modifiers, order, etc.
func (_m *PatternObservation) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPattern queries the "pattern" edge of the PatternObservation entity.
func (_m *PatternObservation) QueryPattern() *PatternQuery {
	return NewPatternObservationClient(_m.config).QueryPattern(_m)
}

// Update returns a builder for updating this PatternObservation.
// Note that you need to call PatternObservation.Unwrap() before calling this method if this PatternObservation
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PatternObservation) Update() *PatternObservationUpdateOne {
	return NewPatternObservationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PatternObservation entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PatternObservation) Unwrap() *PatternObservation {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PatternObservation is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PatternObservation) String() string {
	var builder strings.Builder
	builder.WriteString("PatternObservation(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("pattern_id=")
	builder.WriteString(_m.PatternID)
	builder.WriteString(", ")
	if v := _m.SessionID; v != nil {
		builder.WriteString("session_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.SuccessRating; v != nil {
		builder.WriteString("success_rating=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Feedback; v != nil {
		builder.WriteString("feedback=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("observed_at=")
	builder.WriteString(_m.ObservedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PatternObservations is a parsable slice of PatternObservation.
type PatternObservations []*PatternObservation
