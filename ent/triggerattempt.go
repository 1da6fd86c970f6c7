// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/agentfabric/bridge/ent/triggerattempt"
	"github.com/agentfabric/bridge/ent/triggerjob"
)

// TriggerAttempt is the model entity for the TriggerAttempt schema.
type TriggerAttempt struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TriggerID holds the value of the "trigger_id" field.
	TriggerID string `json:"trigger_id,omitempty"`
	// AttemptNo holds the value of the "attempt_no" field.
	AttemptNo int `json:"attempt_no,omitempty"`
	// AttemptResult holds the value of the "attempt_result" field.
	AttemptResult string `json:"attempt_result,omitempty"`
	// ErrorCode holds the value of the "error_code" field.
	ErrorCode *string `json:"error_code,omitempty"`
	// Details holds the value of the "details" field.
	Details map[string]interface{} `json:"details,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TriggerAttemptQuery when eager-loading is set.
	Edges        TriggerAttemptEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TriggerAttemptEdges holds the relations/edges for other nodes in the graph.
type TriggerAttemptEdges struct {
	// Job holds the value of the job edge.
	Job *TriggerJob `json:"job,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// JobOrErr returns the Job value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TriggerAttemptEdges) JobOrErr() (*TriggerJob, error) {
	if e.Job != nil {
		return e.Job, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: triggerjob.Label}
	}
	return nil, &NotLoadedError{edge: "job"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TriggerAttempt) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case triggerattempt.FieldDetails:
			values[i] = new([]byte)
		case triggerattempt.FieldAttemptNo:
			values[i] = new(sql.NullInt64)
		case triggerattempt.FieldID, triggerattempt.FieldTriggerID, triggerattempt.FieldAttemptResult, triggerattempt.FieldErrorCode:
			values[i] = new(sql.NullString)
		case triggerattempt.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TriggerAttempt fields.
func (_m *TriggerAttempt) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case triggerattempt.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case triggerattempt.FieldTriggerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field trigger_id", values[i])
			} else if value.Valid {
				_m.TriggerID = value.String
			}
		case triggerattempt.FieldAttemptNo:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attempt_no", values[i])
			} else if value.Valid {
				_m.AttemptNo = int(value.Int64)
			}
		case triggerattempt.FieldAttemptResult:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field attempt_result", values[i])
			} else if value.Valid {
				_m.AttemptResult = value.String
			}
		case triggerattempt.FieldErrorCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_code", values[i])
			} else if value.Valid {
				_m.ErrorCode = new(string)
				*_m.ErrorCode = value.String
			}
		case triggerattempt.FieldDetails:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field details", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Details); err != nil {
					return fmt.Errorf("unmarshal field details: %w", err)
				}
			}
		case triggerattempt.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the TriggerAttempt.
// This includes values selected through modifiers, order, etc.
func (_m *TriggerAttempt) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryJob queries the "job" edge of the TriggerAttempt entity.
func (_m *TriggerAttempt) QueryJob() *TriggerJobQuery {
	return NewTriggerAttemptClient(_m.config).QueryJob(_m)
}

// Update returns a builder for updating this TriggerAttempt.
// Note that you need to call TriggerAttempt.Unwrap() before calling this method if this TriggerAttempt
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TriggerAttempt) Update() *TriggerAttemptUpdateOne {
	return NewTriggerAttemptClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TriggerAttempt entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TriggerAttempt) Unwrap() *TriggerAttempt {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TriggerAttempt is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TriggerAttempt) String() string {
	var builder strings.Builder
	builder.WriteString("TriggerAttempt(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("trigger_id=")
	builder.WriteString(_m.TriggerID)
	builder.WriteString(", ")
	builder.WriteString("attempt_no=")
	builder.WriteString(fmt.Sprintf("%v", _m.AttemptNo))
	builder.WriteString(", ")
	builder.WriteString("attempt_result=")
	builder.WriteString(_m.AttemptResult)
	builder.WriteString(", ")
	if v := _m.ErrorCode; v != nil {
		builder.WriteString("error_code=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("details=")
	builder.WriteString(fmt.Sprintf("%v", _m.Details))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TriggerAttempts is a parsable slice of TriggerAttempt.
type TriggerAttempts []*TriggerAttempt
