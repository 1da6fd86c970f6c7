// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/agentfabric/bridge/ent/participantcursor"
	"github.com/agentfabric/bridge/ent/thread"
)

// ParticipantCursor is the model entity for the ParticipantCursor schema.
type ParticipantCursor struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ThreadID holds the value of the "thread_id" field.
	ThreadID string `json:"thread_id,omitempty"`
	// AgentID holds the value of the "agent_id" field.
	AgentID string `json:"agent_id,omitempty"`
	// LastReadSeq holds the value of the "last_read_seq" field.
	LastReadSeq int `json:"last_read_seq,omitempty"`
	// LastAckedMessageID holds the value of the "last_acked_message_id" field.
	LastAckedMessageID *string `json:"last_acked_message_id,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ParticipantCursorQuery when eager-loading is set.
	Edges        ParticipantCursorEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ParticipantCursorEdges holds the relations/edges for other nodes in the graph.
type ParticipantCursorEdges struct {
	// Thread holds the value of the thread edge.
	Thread *Thread `json:"thread,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ThreadOrErr returns the Thread value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ParticipantCursorEdges) ThreadOrErr() (*Thread, error) {
	if e.Thread != nil {
		return e.Thread, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: thread.Label}
	}
	return nil, &NotLoadedError{edge: "thread"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ParticipantCursor) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case participantcursor.FieldLastReadSeq:
			values[i] = new(sql.NullInt64)
		case participantcursor.FieldID, participantcursor.FieldThreadID, participantcursor.FieldAgentID, participantcursor.FieldLastAckedMessageID:
			values[i] = new(sql.NullString)
		case participantcursor.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ParticipantCursor fields.
func (_m *ParticipantCursor) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case participantcursor.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case participantcursor.FieldThreadID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field thread_id", values[i])
			} else if value.Valid {
				_m.ThreadID = value.String
			}
		case participantcursor.FieldAgentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_id", values[i])
			} else if value.Valid {
				_m.AgentID = value.String
			}
		case participantcursor.FieldLastReadSeq:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field last_read_seq", values[i])
			} else if value.Valid {
				_m.LastReadSeq = int(value.Int64)
			}
		case participantcursor.FieldLastAckedMessageID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_acked_message_id", values[i])
			} else if value.Valid {
				_m.LastAckedMessageID = new(string)
				*_m.LastAckedMessageID = value.String
			}
		case participantcursor.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ParticipantCursor.
// This includes values selected through modifiers, order, etc.
func (_m *ParticipantCursor) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryThread queries the "thread" edge of the ParticipantCursor entity.
func (_m *ParticipantCursor) QueryThread() *ThreadQuery {
	return NewParticipantCursorClient(_m.config).QueryThread(_m)
}

// Update returns a builder for updating this ParticipantCursor.
// Note that you need to call ParticipantCursor.Unwrap() before calling this method if this ParticipantCursor
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ParticipantCursor) Update() *ParticipantCursorUpdateOne {
	return NewParticipantCursorClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ParticipantCursor entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ParticipantCursor) Unwrap() *ParticipantCursor {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ParticipantCursor is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ParticipantCursor) String() string {
	var builder strings.Builder
	builder.WriteString("ParticipantCursor(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("thread_id=")
	builder.WriteString(_m.ThreadID)
	builder.WriteString(", ")
	builder.WriteString("agent_id=")
	builder.WriteString(_m.AgentID)
	builder.WriteString(", ")
	builder.WriteString("last_read_seq=")
	builder.WriteString(fmt.Sprintf("%v", _m.LastReadSeq))
	builder.WriteString(", ")
	if v := _m.LastAckedMessageID; v != nil {
		builder.WriteString("last_acked_message_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ParticipantCursors is a parsable slice of ParticipantCursor.
type ParticipantCursors []*ParticipantCursor
