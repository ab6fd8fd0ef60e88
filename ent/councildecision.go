// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/sergeville/Archon/ent/councildecision"
)

// CouncilDecision is the model entity for the CouncilDecision schema.
type CouncilDecision struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// WorkOrderID holds the value of the "work_order_id" field.
	WorkOrderID string `json:"work_order_id,omitempty"`
	// RiskLevel holds the value of the "risk_level" field.
	RiskLevel councildecision.RiskLevel `json:"risk_level,omitempty"`
	// Decision holds the value of the "decision" field.
	Decision councildecision.Decision `json:"decision,omitempty"`
	// DecidedBy holds the value of the "decided_by" field.
	DecidedBy councildecision.DecidedBy `json:"decided_by,omitempty"`
	// Notes holds the value of the "notes" field.
	Notes string `json:"notes,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// ResolvedAt holds the value of the "resolved_at" field.
	ResolvedAt   *time.Time `json:"resolved_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CouncilDecision) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case councildecision.FieldID, councildecision.FieldWorkOrderID, councildecision.FieldRiskLevel, councildecision.FieldDecision, councildecision.FieldDecidedBy, councildecision.FieldNotes:
			values[i] = new(sql.NullString)
		case councildecision.FieldCreatedAt, councildecision.FieldResolvedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CouncilDecision fields.
func (_m *CouncilDecision) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case councildecision.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case councildecision.FieldWorkOrderID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field work_order_id", values[i])
			} else if value.Valid {
				_m.WorkOrderID = value.String
			}
		case councildecision.FieldRiskLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field risk_level", values[i])
			} else if value.Valid {
				_m.RiskLevel = councildecision.RiskLevel(value.String)
			}
		case councildecision.FieldDecision:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field decision", values[i])
			} else if value.Valid {
				_m.Decision = councildecision.Decision(value.String)
			}
		case councildecision.FieldDecidedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field decided_by", values[i])
			} else if value.Valid {
				_m.DecidedBy = councildecision.DecidedBy(value.String)
			}
		case councildecision.FieldNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field notes", values[i])
			} else if value.Valid {
				_m.Notes = value.String
			}
		case councildecision.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case councildecision.FieldResolvedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field resolved_at", values[i])
			} else if value.Valid {
				_m.ResolvedAt = new(time.Time)
				*_m.ResolvedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CouncilDecision.
// This includes values selected through modifiers, order, etc.
func (_m *CouncilDecision) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this CouncilDecision.
// Note that you need to call CouncilDecision.Unwrap() before calling this method if this CouncilDecision
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CouncilDecision) Update() *CouncilDecisionUpdateOne {
	return NewCouncilDecisionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CouncilDecision entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CouncilDecision) Unwrap() *CouncilDecision {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CouncilDecision is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CouncilDecision) String() string {
	var builder strings.Builder
	builder.WriteString("CouncilDecision(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("work_order_id=")
	builder.WriteString(_m.WorkOrderID)
	builder.WriteString(", ")
	builder.WriteString("risk_level=")
	builder.WriteString(fmt.Sprintf("%v", _m.RiskLevel))
	builder.WriteString(", ")
	builder.WriteString("decision=")
	builder.WriteString(fmt.Sprintf("%v", _m.Decision))
	builder.WriteString(", ")
	builder.WriteString("decided_by=")
	builder.WriteString(fmt.Sprintf("%v", _m.DecidedBy))
	builder.WriteString(", ")
	builder.WriteString("notes=")
	builder.WriteString(_m.Notes)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.ResolvedAt; v != nil {
		builder.WriteString("resolved_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// CouncilDecisions is a parsable slice of CouncilDecision.
type CouncilDecisions []*CouncilDecision
