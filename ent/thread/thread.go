// Code generated by ent, DO NOT EDIT.

package thread

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the thread type in the database.
	Label = "thread"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "thread_id"
	// FieldWorkspaceID holds the string denoting the workspace_id field in the database.
	FieldWorkspaceID = "workspace_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldType holds the string denoting the type field in the database.
	FieldType = "type"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldEscalationOwnerAgentID holds the string denoting the escalation_owner_agent_id field in the database.
	FieldEscalationOwnerAgentID = "escalation_owner_agent_id"
	// FieldEscalationAssignedByAgentID holds the string denoting the escalation_assigned_by_agent_id field in the database.
	FieldEscalationAssignedByAgentID = "escalation_assigned_by_agent_id"
	// FieldEscalationAssignedAt holds the string denoting the escalation_assigned_at field in the database.
	FieldEscalationAssignedAt = "escalation_assigned_at"
	// FieldCreatedBy holds the string denoting the created_by field in the database.
	FieldCreatedBy = "created_by"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeParticipants holds the string denoting the participants edge name in mutations.
	EdgeParticipants = "participants"
	// EdgeMessages holds the string denoting the messages edge name in mutations.
	EdgeMessages = "messages"
	// EdgeCursors holds the string denoting the cursors edge name in mutations.
	EdgeCursors = "cursors"
	// ThreadParticipantFieldID holds the string denoting the ID field of the ThreadParticipant.
	ThreadParticipantFieldID = "participant_id"
	// MessageFieldID holds the string denoting the ID field of the Message.
	MessageFieldID = "message_id"
	// ParticipantCursorFieldID holds the string denoting the ID field of the ParticipantCursor.
	ParticipantCursorFieldID = "cursor_id"
	// Table holds the table name of the thread in the database.
	Table = "threads"
	// ParticipantsTable is the table that holds the participants relation/edge.
	ParticipantsTable = "thread_participants"
	// ParticipantsInverseTable is the table name for the ThreadParticipant entity.
	// It exists in this package in order to avoid circular dependency with the "threadparticipant" package.
	ParticipantsInverseTable = "thread_participants"
	// ParticipantsColumn is the table column denoting the participants relation/edge.
	ParticipantsColumn = "thread_id"
	// MessagesTable is the table that holds the messages relation/edge.
	MessagesTable = "messages"
	// MessagesInverseTable is the table name for the Message entity.
	// It exists in this package in order to avoid circular dependency with the "message" package.
	MessagesInverseTable = "messages"
	// MessagesColumn is the table column denoting the messages relation/edge.
	MessagesColumn = "thread_id"
	// CursorsTable is the table that holds the cursors relation/edge.
	CursorsTable = "participant_cursors"
	// CursorsInverseTable is the table name for the ParticipantCursor entity.
	// It exists in this package in order to avoid circular dependency with the "participantcursor" package.
	CursorsInverseTable = "participant_cursors"
	// CursorsColumn is the table column denoting the cursors relation/edge.
	CursorsColumn = "thread_id"
)

// Columns holds all SQL columns for thread fields.
var Columns = []string{
	FieldID,
	FieldWorkspaceID,
	FieldTitle,
	FieldType,
	FieldStatus,
	FieldEscalationOwnerAgentID,
	FieldEscalationAssignedByAgentID,
	FieldEscalationAssignedAt,
	FieldCreatedBy,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
)

// Type defines the type for the "type" enum field.
type Type string

// Type values.
const (
	TypeConversation Type = "conversation"
	TypeWorkflow     Type = "workflow"
	TypeIncident     Type = "incident"
)

func (_type Type) String() string {
	return string(_type)
}

// TypeValidator is a validator for the "type" field enum values. It is called by the builders before save.
func TypeValidator(_type Type) error {
	switch _type {
	case TypeConversation, TypeWorkflow, TypeIncident:
		return nil
	default:
		return fmt.Errorf("thread: invalid enum value for type field: %q", _type)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusActive is the default value of the Status enum.
const DefaultStatus = StatusActive

// Status values.
const (
	StatusActive   Status = "active"
	StatusBlocked  Status = "blocked"
	StatusResolved Status = "resolved"
	StatusClosed   Status = "closed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusActive, StatusBlocked, StatusResolved, StatusClosed:
		return nil
	default:
		return fmt.Errorf("thread: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Thread queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByWorkspaceID orders the results by the workspace_id field.
func ByWorkspaceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkspaceID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByType orders the results by the type field.
func ByType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldType, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByEscalationOwnerAgentID orders the results by the escalation_owner_agent_id field.
func ByEscalationOwnerAgentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEscalationOwnerAgentID, opts...).ToFunc()
}

// ByEscalationAssignedByAgentID orders the results by the escalation_assigned_by_agent_id field.
func ByEscalationAssignedByAgentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEscalationAssignedByAgentID, opts...).ToFunc()
}

// ByEscalationAssignedAt orders the results by the escalation_assigned_at field.
func ByEscalationAssignedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEscalationAssignedAt, opts...).ToFunc()
}

// ByCreatedBy orders the results by the created_by field.
func ByCreatedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedBy, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByParticipantsCount orders the results by participants count.
func ByParticipantsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newParticipantsStep(), opts...)
	}
}

// ByParticipants orders the results by participants terms.
func ByParticipants(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newParticipantsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByMessagesCount orders the results by messages count.
func ByMessagesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newMessagesStep(), opts...)
	}
}

// ByMessages orders the results by messages terms.
func ByMessages(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMessagesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByCursorsCount orders the results by cursors count.
func ByCursorsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newCursorsStep(), opts...)
	}
}

// ByCursors orders the results by cursors terms.
func ByCursors(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCursorsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newParticipantsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ParticipantsInverseTable, ThreadParticipantFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ParticipantsTable, ParticipantsColumn),
	)
}
func newMessagesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MessagesInverseTable, MessageFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, MessagesTable, MessagesColumn),
	)
}
func newCursorsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CursorsInverseTable, ParticipantCursorFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, CursorsTable, CursorsColumn),
	)
}
