// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/agentfabric/bridge/ent/fallbackrun"
)

// FallbackRun is the model entity for the FallbackRun schema.
type FallbackRun struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// WorkspaceID holds the value of the "workspace_id" field.
	WorkspaceID string `json:"workspace_id,omitempty"`
	// Pid holds the value of the "pid" field.
	Pid int `json:"pid,omitempty"`
	// LaunchMode holds the value of the "launch_mode" field.
	LaunchMode fallbackrun.LaunchMode `json:"launch_mode,omitempty"`
	// Status holds the value of the "status" field.
	Status fallbackrun.Status `json:"status,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// DeadlineAt holds the value of the "deadline_at" field.
	DeadlineAt time.Time `json:"deadline_at,omitempty"`
	// EndedAt holds the value of the "ended_at" field.
	EndedAt *time.Time `json:"ended_at,omitempty"`
	// ErrorCode holds the value of the "error_code" field.
	ErrorCode    *string `json:"error_code,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*FallbackRun) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case fallbackrun.FieldPid:
			values[i] = new(sql.NullInt64)
		case fallbackrun.FieldID, fallbackrun.FieldWorkspaceID, fallbackrun.FieldLaunchMode, fallbackrun.FieldStatus, fallbackrun.FieldErrorCode:
			values[i] = new(sql.NullString)
		case fallbackrun.FieldStartedAt, fallbackrun.FieldDeadlineAt, fallbackrun.FieldEndedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the FallbackRun fields.
func (_m *FallbackRun) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case fallbackrun.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case fallbackrun.FieldWorkspaceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field workspace_id", values[i])
			} else if value.Valid {
				_m.WorkspaceID = value.String
			}
		case fallbackrun.FieldPid:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field pid", values[i])
			} else if value.Valid {
				_m.Pid = int(value.Int64)
			}
		case fallbackrun.FieldLaunchMode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field launch_mode", values[i])
			} else if value.Valid {
				_m.LaunchMode = fallbackrun.LaunchMode(value.String)
			}
		case fallbackrun.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = fallbackrun.Status(value.String)
			}
		case fallbackrun.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case fallbackrun.FieldDeadlineAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deadline_at", values[i])
			} else if value.Valid {
				_m.DeadlineAt = value.Time
			}
		case fallbackrun.FieldEndedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field ended_at", values[i])
			} else if value.Valid {
				_m.EndedAt = new(time.Time)
				*_m.EndedAt = value.Time
			}
		case fallbackrun.FieldErrorCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_code", values[i])
			} else if value.Valid {
				_m.ErrorCode = new(string)
				*_m.ErrorCode = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the FallbackRun.
// This includes values selected through modifiers, order, etc.
func (_m *FallbackRun) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this FallbackRun.
// Note that you need to call FallbackRun.Unwrap() before calling this method if this FallbackRun
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *FallbackRun) Update() *FallbackRunUpdateOne {
	return NewFallbackRunClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the FallbackRun entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *FallbackRun) Unwrap() *FallbackRun {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: FallbackRun is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *FallbackRun) String() string {
	var builder strings.Builder
	builder.WriteString("FallbackRun(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("workspace_id=")
	builder.WriteString(_m.WorkspaceID)
	builder.WriteString(", ")
	builder.WriteString("pid=")
	builder.WriteString(fmt.Sprintf("%v", _m.Pid))
	builder.WriteString(", ")
	builder.WriteString("launch_mode=")
	builder.WriteString(fmt.Sprintf("%v", _m.LaunchMode))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("deadline_at=")
	builder.WriteString(_m.DeadlineAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.EndedAt; v != nil {
		builder.WriteString("ended_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ErrorCode; v != nil {
		builder.WriteString("error_code=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// FallbackRuns is a parsable slice of FallbackRun.
type FallbackRuns []*FallbackRun
