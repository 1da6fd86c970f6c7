// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/agentfabric/bridge/ent/triggerjob"
)

// TriggerJob is the model entity for the TriggerJob schema.
type TriggerJob struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ThreadID holds the value of the "thread_id" field.
	ThreadID string `json:"thread_id,omitempty"`
	// WorkspaceID holds the value of the "workspace_id" field.
	WorkspaceID string `json:"workspace_id,omitempty"`
	// TargetAgentID holds the value of the "target_agent_id" field.
	TargetAgentID string `json:"target_agent_id,omitempty"`
	// TargetSessionID holds the value of the "target_session_id" field.
	TargetSessionID *string `json:"target_session_id,omitempty"`
	// Free-form; prefixes human_override: and coordinator_override: are reserved
	Reason string `json:"reason,omitempty"`
	// Prompt holds the value of the "prompt" field.
	Prompt string `json:"prompt,omitempty"`
	// Status holds the value of the "status" field.
	Status triggerjob.Status `json:"status,omitempty"`
	// Attempts holds the value of the "attempts" field.
	Attempts int `json:"attempts,omitempty"`
	// MaxRetries holds the value of the "max_retries" field.
	MaxRetries int `json:"max_retries,omitempty"`
	// NextRetryAt holds the value of the "next_retry_at" field.
	NextRetryAt *time.Time `json:"next_retry_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TriggerJobQuery when eager-loading is set.
	Edges        TriggerJobEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TriggerJobEdges holds the relations/edges for other nodes in the graph.
type TriggerJobEdges struct {
	// TriggerAttempts holds the value of the trigger_attempts edge.
	TriggerAttempts []*TriggerAttempt `json:"trigger_attempts,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// TriggerAttemptsOrErr returns the TriggerAttempts value or an error if the edge
// was not loaded in eager-loading.
func (e TriggerJobEdges) TriggerAttemptsOrErr() ([]*TriggerAttempt, error) {
	if e.loadedTypes[0] {
		return e.TriggerAttempts, nil
	}
	return nil, &NotLoadedError{edge: "trigger_attempts"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TriggerJob) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case triggerjob.FieldAttempts, triggerjob.FieldMaxRetries:
			values[i] = new(sql.NullInt64)
		case triggerjob.FieldID, triggerjob.FieldThreadID, triggerjob.FieldWorkspaceID, triggerjob.FieldTargetAgentID, triggerjob.FieldTargetSessionID, triggerjob.FieldReason, triggerjob.FieldPrompt, triggerjob.FieldStatus:
			values[i] = new(sql.NullString)
		case triggerjob.FieldNextRetryAt, triggerjob.FieldCreatedAt, triggerjob.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TriggerJob fields.
func (_m *TriggerJob) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case triggerjob.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case triggerjob.FieldThreadID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field thread_id", values[i])
			} else if value.Valid {
				_m.ThreadID = value.String
			}
		case triggerjob.FieldWorkspaceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field workspace_id", values[i])
			} else if value.Valid {
				_m.WorkspaceID = value.String
			}
		case triggerjob.FieldTargetAgentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field target_agent_id", values[i])
			} else if value.Valid {
				_m.TargetAgentID = value.String
			}
		case triggerjob.FieldTargetSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field target_session_id", values[i])
			} else if value.Valid {
				_m.TargetSessionID = new(string)
				*_m.TargetSessionID = value.String
			}
		case triggerjob.FieldReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reason", values[i])
			} else if value.Valid {
				_m.Reason = value.String
			}
		case triggerjob.FieldPrompt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field prompt", values[i])
			} else if value.Valid {
				_m.Prompt = value.String
			}
		case triggerjob.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = triggerjob.Status(value.String)
			}
		case triggerjob.FieldAttempts:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attempts", values[i])
			} else if value.Valid {
				_m.Attempts = int(value.Int64)
			}
		case triggerjob.FieldMaxRetries:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_retries", values[i])
			} else if value.Valid {
				_m.MaxRetries = int(value.Int64)
			}
		case triggerjob.FieldNextRetryAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field next_retry_at", values[i])
			} else if value.Valid {
				_m.NextRetryAt = new(time.Time)
				*_m.NextRetryAt = value.Time
			}
		case triggerjob.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case triggerjob.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TriggerJob.
// This includes values selected through modifiers, order, etc.
func (_m *TriggerJob) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTriggerAttempts queries the "trigger_attempts" edge of the TriggerJob entity.
func (_m *TriggerJob) QueryTriggerAttempts() *TriggerAttemptQuery {
	return NewTriggerJobClient(_m.config).QueryTriggerAttempts(_m)
}

// Update returns a builder for updating this TriggerJob.
// Note that you need to call TriggerJob.Unwrap() before calling this method if this TriggerJob
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TriggerJob) Update() *TriggerJobUpdateOne {
	return NewTriggerJobClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TriggerJob entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TriggerJob) Unwrap() *TriggerJob {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TriggerJob is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TriggerJob) String() string {
	var builder strings.Builder
	builder.WriteString("TriggerJob(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("thread_id=")
	builder.WriteString(_m.ThreadID)
	builder.WriteString(", ")
	builder.WriteString("workspace_id=")
	builder.WriteString(_m.WorkspaceID)
	builder.WriteString(", ")
	builder.WriteString("target_agent_id=")
	builder.WriteString(_m.TargetAgentID)
	builder.WriteString(", ")
	if v := _m.TargetSessionID; v != nil {
		builder.WriteString("target_session_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("reason=")
	builder.WriteString(_m.Reason)
	builder.WriteString(", ")
	builder.WriteString("prompt=")
	builder.WriteString(_m.Prompt)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("attempts=")
	builder.WriteString(fmt.Sprintf("%v", _m.Attempts))
	builder.WriteString(", ")
	builder.WriteString("max_retries=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxRetries))
	builder.WriteString(", ")
	if v := _m.NextRetryAt; v != nil {
		builder.WriteString("next_retry_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TriggerJobs is a parsable slice of TriggerJob.
type TriggerJobs []*TriggerJob
