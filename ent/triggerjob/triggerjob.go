// Code generated by ent, DO NOT EDIT.

package triggerjob

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the triggerjob type in the database.
	Label = "trigger_job"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "trigger_id"
	// FieldThreadID holds the string denoting the thread_id field in the database.
	FieldThreadID = "thread_id"
	// FieldWorkspaceID holds the string denoting the workspace_id field in the database.
	FieldWorkspaceID = "workspace_id"
	// FieldTargetAgentID holds the string denoting the target_agent_id field in the database.
	FieldTargetAgentID = "target_agent_id"
	// FieldTargetSessionID holds the string denoting the target_session_id field in the database.
	FieldTargetSessionID = "target_session_id"
	// FieldReason holds the string denoting the reason field in the database.
	FieldReason = "reason"
	// FieldPrompt holds the string denoting the prompt field in the database.
	FieldPrompt = "prompt"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldAttempts holds the string denoting the attempts field in the database.
	FieldAttempts = "attempts"
	// FieldMaxRetries holds the string denoting the max_retries field in the database.
	FieldMaxRetries = "max_retries"
	// FieldNextRetryAt holds the string denoting the next_retry_at field in the database.
	FieldNextRetryAt = "next_retry_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeTriggerAttempts holds the string denoting the trigger_attempts edge name in mutations.
	EdgeTriggerAttempts = "trigger_attempts"
	// TriggerAttemptFieldID holds the string denoting the ID field of the TriggerAttempt.
	TriggerAttemptFieldID = "attempt_id"
	// Table holds the table name of the triggerjob in the database.
	Table = "trigger_jobs"
	// TriggerAttemptsTable is the table that holds the trigger_attempts relation/edge.
	TriggerAttemptsTable = "trigger_attempts"
	// TriggerAttemptsInverseTable is the table name for the TriggerAttempt entity.
	// It exists in this package in order to avoid circular dependency with the "triggerattempt" package.
	TriggerAttemptsInverseTable = "trigger_attempts"
	// TriggerAttemptsColumn is the table column denoting the trigger_attempts relation/edge.
	TriggerAttemptsColumn = "trigger_id"
)

// Columns holds all SQL columns for triggerjob fields.
var Columns = []string{
	FieldID,
	FieldThreadID,
	FieldWorkspaceID,
	FieldTargetAgentID,
	FieldTargetSessionID,
	FieldReason,
	FieldPrompt,
	FieldStatus,
	FieldAttempts,
	FieldMaxRetries,
	FieldNextRetryAt,
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
	// DefaultAttempts holds the default value on creation for the "attempts" field.
	DefaultAttempts int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusQueued is the default value of the Status enum.
const DefaultStatus = StatusQueued

// Status values.
const (
	StatusQueued            Status = "queued"
	StatusTriggering        Status = "triggering"
	StatusDeferred          Status = "deferred"
	StatusTimeout           Status = "timeout"
	StatusFailed            Status = "failed"
	StatusFallbackResume    Status = "fallback_resume"
	StatusFallbackSpawn     Status = "fallback_spawn"
	StatusFallbackRunning   Status = "fallback_running"
	StatusCallbackPending   Status = "callback_pending"
	StatusCallbackRetry     Status = "callback_retry"
	StatusCallbackDelivered Status = "callback_delivered"
	StatusCallbackFailed    Status = "callback_failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusQueued, StatusTriggering, StatusDeferred, StatusTimeout, StatusFailed, StatusFallbackResume, StatusFallbackSpawn, StatusFallbackRunning, StatusCallbackPending, StatusCallbackRetry, StatusCallbackDelivered, StatusCallbackFailed:
		return nil
	default:
		return fmt.Errorf("triggerjob: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the TriggerJob queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByThreadID orders the results by the thread_id field.
func ByThreadID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldThreadID, opts...).ToFunc()
}

// ByWorkspaceID orders the results by the workspace_id field.
func ByWorkspaceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkspaceID, opts...).ToFunc()
}

// ByTargetAgentID orders the results by the target_agent_id field.
func ByTargetAgentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTargetAgentID, opts...).ToFunc()
}

// ByTargetSessionID orders the results by the target_session_id field.
func ByTargetSessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTargetSessionID, opts...).ToFunc()
}

// ByReason orders the results by the reason field.
func ByReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReason, opts...).ToFunc()
}

// ByPrompt orders the results by the prompt field.
func ByPrompt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrompt, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByAttempts orders the results by the attempts field.
func ByAttempts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttempts, opts...).ToFunc()
}

// ByMaxRetries orders the results by the max_retries field.
func ByMaxRetries(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxRetries, opts...).ToFunc()
}

// ByNextRetryAt orders the results by the next_retry_at field.
func ByNextRetryAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNextRetryAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByTriggerAttemptsCount orders the results by trigger_attempts count.
func ByTriggerAttemptsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTriggerAttemptsStep(), opts...)
	}
}

// ByTriggerAttempts orders the results by trigger_attempts terms.
func ByTriggerAttempts(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTriggerAttemptsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newTriggerAttemptsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TriggerAttemptsInverseTable, TriggerAttemptFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, TriggerAttemptsTable, TriggerAttemptsColumn),
	)
}
