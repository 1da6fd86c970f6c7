// Code generated by ent, DO NOT EDIT.

package participantcursor

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the participantcursor type in the database.
	Label = "participant_cursor"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "cursor_id"
	// FieldThreadID holds the string denoting the thread_id field in the database.
	FieldThreadID = "thread_id"
	// FieldAgentID holds the string denoting the agent_id field in the database.
	FieldAgentID = "agent_id"
	// FieldLastReadSeq holds the string denoting the last_read_seq field in the database.
	FieldLastReadSeq = "last_read_seq"
	// FieldLastAckedMessageID holds the string denoting the last_acked_message_id field in the database.
	FieldLastAckedMessageID = "last_acked_message_id"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeThread holds the string denoting the thread edge name in mutations.
	EdgeThread = "thread"
	// ThreadFieldID holds the string denoting the ID field of the Thread.
	ThreadFieldID = "thread_id"
	// Table holds the table name of the participantcursor in the database.
	Table = "participant_cursors"
	// ThreadTable is the table that holds the thread relation/edge.
	ThreadTable = "participant_cursors"
	// ThreadInverseTable is the table name for the Thread entity.
	// It exists in this package in order to avoid circular dependency with the "thread" package.
	ThreadInverseTable = "threads"
	// ThreadColumn is the table column denoting the thread relation/edge.
	ThreadColumn = "thread_id"
)

// Columns holds all SQL columns for participantcursor fields.
var Columns = []string{
	FieldID,
	FieldThreadID,
	FieldAgentID,
	FieldLastReadSeq,
	FieldLastAckedMessageID,
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
	// DefaultLastReadSeq holds the default value on creation for the "last_read_seq" field.
	DefaultLastReadSeq int
	// LastReadSeqValidator is a validator for the "last_read_seq" field. It is called by the builders before save.
	LastReadSeqValidator func(int) error
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the ParticipantCursor queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByThreadID orders the results by the thread_id field.
func ByThreadID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldThreadID, opts...).ToFunc()
}

// ByAgentID orders the results by the agent_id field.
func ByAgentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentID, opts...).ToFunc()
}

// ByLastReadSeq orders the results by the last_read_seq field.
func ByLastReadSeq(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastReadSeq, opts...).ToFunc()
}

// ByLastAckedMessageID orders the results by the last_acked_message_id field.
func ByLastAckedMessageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastAckedMessageID, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByThreadField orders the results by thread field.
func ByThreadField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newThreadStep(), sql.OrderByField(field, opts...))
	}
}
func newThreadStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ThreadInverseTable, ThreadFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ThreadTable, ThreadColumn),
	)
}
