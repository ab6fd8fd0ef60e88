// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/sergeville/Archon/ent/conductorlog"
)

// ConductorLog is the model entity for the ConductorLog schema.
type ConductorLog struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// WorkOrderID holds the value of the "work_order_id" field.
	WorkOrderID string `json:"work_order_id,omitempty"`
	// MissionID holds the value of the "mission_id" field.
	MissionID *string `json:"mission_id,omitempty"`
	// ConductorAgent holds the value of the "conductor_agent" field.
	ConductorAgent string `json:"conductor_agent,omitempty"`
	// DelegationTarget holds the value of the "delegation_target" field.
	DelegationTarget string `json:"delegation_target,omitempty"`
	// Reasoning holds the value of the "reasoning" field.
	Reasoning string `json:"reasoning,omitempty"`
	// InjectedContext holds the value of the "injected_context" field.
	InjectedContext map[string]interface{} `json:"injected_context,omitempty"`
	// DecisionFactors holds the value of the "decision_factors" field.
	DecisionFactors []string `json:"decision_factors,omitempty"`
	// Clamped to [0,1] at write time
	Confidence *float64 `json:"confidence,omitempty"`
	// Outcome holds the value of the "outcome" field.
	Outcome *conductorlog.Outcome `json:"outcome,omitempty"`
	// OutcomeNotes holds the value of the "outcome_notes" field.
	OutcomeNotes *string `json:"outcome_notes,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// OutcomeAt holds the value of the "outcome_at" field.
	OutcomeAt    *time.Time `json:"outcome_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ConductorLog) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case conductorlog.FieldInjectedContext, conductorlog.FieldDecisionFactors:
			values[i] = new([]byte)
		case conductorlog.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case conductorlog.FieldID, conductorlog.FieldWorkOrderID, conductorlog.FieldMissionID, conductorlog.FieldConductorAgent, conductorlog.FieldDelegationTarget, conductorlog.FieldReasoning, conductorlog.FieldOutcome, conductorlog.FieldOutcomeNotes:
			values[i] = new(sql.NullString)
		case conductorlog.FieldCreatedAt, conductorlog.FieldOutcomeAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ConductorLog fields.
func (_m *ConductorLog) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case conductorlog.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case conductorlog.FieldWorkOrderID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field work_order_id", values[i])
			} else if value.Valid {
				_m.WorkOrderID = value.String
			}
		case conductorlog.FieldMissionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field mission_id", values[i])
			} else if value.Valid {
				_m.MissionID = new(string)
				*_m.MissionID = value.String
			}
		case conductorlog.FieldConductorAgent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field conductor_agent", values[i])
			} else if value.Valid {
				_m.ConductorAgent = value.String
			}
		case conductorlog.FieldDelegationTarget:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field delegation_target", values[i])
			} else if value.Valid {
				_m.DelegationTarget = value.String
			}
		case conductorlog.FieldReasoning:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reasoning", values[i])
			} else if value.Valid {
				_m.Reasoning = value.String
			}
		case conductorlog.FieldInjectedContext:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field injected_context", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.InjectedContext); err != nil {
					return fmt.Errorf("unmarshal field injected_context: %w", err)
				}
			}
		case conductorlog.FieldDecisionFactors:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field decision_factors", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.DecisionFactors); err != nil {
					return fmt.Errorf("unmarshal field decision_factors: %w", err)
				}
			}
		case conductorlog.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = new(float64)
				*_m.Confidence = value.Float64
			}
		case conductorlog.FieldOutcome:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field outcome", values[i])
			} else if value.Valid {
				_m.Outcome = new(conductorlog.Outcome)
				*_m.Outcome = conductorlog.Outcome(value.String)
			}
		case conductorlog.FieldOutcomeNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field outcome_notes", values[i])
			} else if value.Valid {
				_m.OutcomeNotes = new(string)
				*_m.OutcomeNotes = value.String
			}
		case conductorlog.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case conductorlog.FieldOutcomeAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field outcome_at", values[i])
			} else if value.Valid {
				_m.OutcomeAt = new(time.Time)
				*_m.OutcomeAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ConductorLog.
// This includes values selected through modifiers, order, etc.
func (_m *ConductorLog) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ConductorLog.
// Note that you need to call ConductorLog.Unwrap() before calling this method if this ConductorLog
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ConductorLog) Update() *ConductorLogUpdateOne {
	return NewConductorLogClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ConductorLog entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ConductorLog) Unwrap() *ConductorLog {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ConductorLog is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ConductorLog) String() string {
	var builder strings.Builder
	builder.WriteString("ConductorLog(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("work_order_id=")
	builder.WriteString(_m.WorkOrderID)
	builder.WriteString(", ")
	if v := _m.MissionID; v != nil {
		builder.WriteString("mission_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("conductor_agent=")
	builder.WriteString(_m.ConductorAgent)
	builder.WriteString(", ")
	builder.WriteString("delegation_target=")
	builder.WriteString(_m.DelegationTarget)
	builder.WriteString(", ")
	builder.WriteString("reasoning=")
	builder.WriteString(_m.Reasoning)
	builder.WriteString(", ")
	builder.WriteString("injected_context=")
	builder.WriteString(fmt.Sprintf("%v", _m.InjectedContext))
	builder.WriteString(", ")
	builder.WriteString("decision_factors=")
	builder.WriteString(fmt.Sprintf("%v", _m.DecisionFactors))
	builder.WriteString(", ")
	if v := _m.Confidence; v != nil {
		builder.WriteString("confidence=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Outcome; v != nil {
		builder.WriteString("outcome=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.OutcomeNotes; v != nil {
		builder.WriteString("outcome_notes=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.OutcomeAt; v != nil {
		builder.WriteString("outcome_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// ConductorLogs is a parsable slice of ConductorLog.
type ConductorLogs []*ConductorLog
