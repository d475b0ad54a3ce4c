// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/nikverma/physlab/ent/phaseevent"
)

// PhaseEvent is the model entity for the PhaseEvent schema.
type PhaseEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UUID grouping events in a session
	SessionID string `json:"session_id,omitempty"`
	// Mini-lab the session belongs to
	GameID string `json:"game_id,omitempty"`
	// Phase being left
	FromPhase string `json:"from_phase,omitempty"`
	// Phase being entered
	ToPhase string `json:"to_phase,omitempty"`
	// Milliseconds spent in from_phase
	MsInPhase    int64 `json:"ms_in_phase,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PhaseEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case phaseevent.FieldID, phaseevent.FieldSequence, phaseevent.FieldMsInPhase:
			values[i] = new(sql.NullInt64)
		case phaseevent.FieldSessionID, phaseevent.FieldGameID, phaseevent.FieldFromPhase, phaseevent.FieldToPhase:
			values[i] = new(sql.NullString)
		case phaseevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PhaseEvent fields.
func (_m *PhaseEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case phaseevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case phaseevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case phaseevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case phaseevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case phaseevent.FieldGameID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field game_id", values[i])
			} else if value.Valid {
				_m.GameID = value.String
			}
		case phaseevent.FieldFromPhase:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field from_phase", values[i])
			} else if value.Valid {
				_m.FromPhase = value.String
			}
		case phaseevent.FieldToPhase:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field to_phase", values[i])
			} else if value.Valid {
				_m.ToPhase = value.String
			}
		case phaseevent.FieldMsInPhase:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field ms_in_phase", values[i])
			} else if value.Valid {
				_m.MsInPhase = value.Int64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PhaseEvent.
// This includes values selected through modifiers, order, etc.
func (_m *PhaseEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PhaseEvent.
// Note that you need to call PhaseEvent.Unwrap() before calling this method if this PhaseEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PhaseEvent) Update() *PhaseEventUpdateOne {
	return NewPhaseEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PhaseEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PhaseEvent) Unwrap() *PhaseEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PhaseEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PhaseEvent) String() string {
	var builder strings.Builder
	builder.WriteString("PhaseEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("game_id=")
	builder.WriteString(_m.GameID)
	builder.WriteString(", ")
	builder.WriteString("from_phase=")
	builder.WriteString(_m.FromPhase)
	builder.WriteString(", ")
	builder.WriteString("to_phase=")
	builder.WriteString(_m.ToPhase)
	builder.WriteString(", ")
	builder.WriteString("ms_in_phase=")
	builder.WriteString(fmt.Sprintf("%v", _m.MsInPhase))
	builder.WriteByte(')')
	return builder.String()
}

// PhaseEvents is a parsable slice of PhaseEvent.
type PhaseEvents []*PhaseEvent
