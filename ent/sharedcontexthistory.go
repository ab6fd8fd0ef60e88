// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/sergeville/Archon/ent/sharedcontexthistory"
)

// SharedContextHistory is the model entity for the SharedContextHistory schema.
type SharedContextHistory struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Key holds the value of the "key" field.
	Key string `json:"key,omitempty"`
	// Null on the first write of a key
	OldValue map[string]interface{} `json:"old_value,omitempty"`
	// NewValue holds the value of the "new_value" field.
	NewValue map[string]interface{} `json:"new_value,omitempty"`
	// ChangedBy holds the value of the "changed_by" field.
	ChangedBy string `json:"changed_by,omitempty"`
	// ChangedAt holds the value of the "changed_at" field.
	ChangedAt    time.Time `json:"changed_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SharedContextHistory) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case sharedcontexthistory.FieldOldValue, sharedcontexthistory.FieldNewValue:
			values[i] = new([]byte)
		case sharedcontexthistory.FieldID, sharedcontexthistory.FieldKey, sharedcontexthistory.FieldChangedBy:
			values[i] = new(sql.NullString)
		case sharedcontexthistory.FieldChangedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SharedContextHistory fields.
func (_m *SharedContextHistory) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case sharedcontexthistory.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case sharedcontexthistory.FieldKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field key", values[i])
			} else if value.Valid {
				_m.Key = value.String
			}
		case sharedcontexthistory.FieldOldValue:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field old_value", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.OldValue); err != nil {
					return fmt.Errorf("unmarshal field old_value: %w", err)
				}
			}
		case sharedcontexthistory.FieldNewValue:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field new_value", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.NewValue); err != nil {
					return fmt.Errorf("unmarshal field new_value: %w", err)
				}
			}
		case sharedcontexthistory.FieldChangedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field changed_by", values[i])
			} else if value.Valid {
				_m.ChangedBy = value.String
			}
		case sharedcontexthistory.FieldChangedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field changed_at", values[i])
			} else if value.Valid {
				_m.ChangedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SharedContextHistory.
// This includes values selected through modifiers, order, etc.
func (_m *SharedContextHistory) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SharedContextHistory.
// Note that you need to call SharedContextHistory.Unwrap() before calling this method if this SharedContextHistory
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SharedContextHistory) Update() *SharedContextHistoryUpdateOne {
	return NewSharedContextHistoryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SharedContextHistory entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SharedContextHistory) Unwrap() *SharedContextHistory {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SharedContextHistory is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SharedContextHistory) String() string {
	var builder strings.Builder
	builder.WriteString("SharedContextHistory(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("key=")
	builder.WriteString(_m.Key)
	builder.WriteString(", ")
	builder.WriteString("old_value=")
	builder.WriteString(fmt.Sprintf("%v", _m.OldValue))
	builder.WriteString(", ")
	builder.WriteString("new_value=")
	builder.WriteString(fmt.Sprintf("%v", _m.NewValue))
	builder.WriteString(", ")
	builder.WriteString("changed_by=")
	builder.WriteString(_m.ChangedBy)
	builder.WriteString(", ")
	builder.WriteString("changed_at=")
	builder.WriteString(_m.ChangedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SharedContextHistories is a parsable slice of SharedContextHistory.
type SharedContextHistories []*SharedContextHistory
