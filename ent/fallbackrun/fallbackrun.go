// Code generated by ent, DO NOT EDIT.

package fallbackrun

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the fallbackrun type in the database.
	Label = "fallback_run"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "trigger_id"
	// FieldWorkspaceID holds the string denoting the workspace_id field in the database.
	FieldWorkspaceID = "workspace_id"
	// FieldPid holds the string denoting the pid field in the database.
	FieldPid = "pid"
	// FieldLaunchMode holds the string denoting the launch_mode field in the database.
	FieldLaunchMode = "launch_mode"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldDeadlineAt holds the string denoting the deadline_at field in the database.
	FieldDeadlineAt = "deadline_at"
	// FieldEndedAt holds the string denoting the ended_at field in the database.
	FieldEndedAt = "ended_at"
	// FieldErrorCode holds the string denoting the error_code field in the database.
	FieldErrorCode = "error_code"
	// Table holds the table name of the fallbackrun in the database.
	Table = "fallback_runs"
)

// Columns holds all SQL columns for fallbackrun fields.
var Columns = []string{
	FieldID,
	FieldWorkspaceID,
	FieldPid,
	FieldLaunchMode,
	FieldStatus,
	FieldStartedAt,
	FieldDeadlineAt,
	FieldEndedAt,
	FieldErrorCode,
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
	// DefaultStartedAt holds the default value on creation for the "started_at" field.
	DefaultStartedAt func() time.Time
)

// LaunchMode defines the type for the "launch_mode" enum field.
type LaunchMode string

// LaunchMode values.
const (
	LaunchModeResume LaunchMode = "resume"
	LaunchModeSpawn  LaunchMode = "spawn"
)

func (lm LaunchMode) String() string {
	return string(lm)
}

// LaunchModeValidator is a validator for the "launch_mode" field enum values. It is called by the builders before save.
func LaunchModeValidator(lm LaunchMode) error {
	switch lm {
	case LaunchModeResume, LaunchModeSpawn:
		return nil
	default:
		return fmt.Errorf("fallbackrun: invalid enum value for launch_mode field: %q", lm)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusRunning is the default value of the Status enum.
const DefaultStatus = StatusRunning

// Status values.
const (
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusTimedOut  Status = "timed_out"
	StatusKilled    Status = "killed"
	StatusOrphaned  Status = "orphaned"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusRunning, StatusCompleted, StatusFailed, StatusTimedOut, StatusKilled, StatusOrphaned:
		return nil
	default:
		return fmt.Errorf("fallbackrun: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the FallbackRun queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByWorkspaceID orders the results by the workspace_id field.
func ByWorkspaceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkspaceID, opts...).ToFunc()
}

// ByPid orders the results by the pid field.
func ByPid(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPid, opts...).ToFunc()
}

// ByLaunchMode orders the results by the launch_mode field.
func ByLaunchMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLaunchMode, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByDeadlineAt orders the results by the deadline_at field.
func ByDeadlineAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeadlineAt, opts...).ToFunc()
}

// ByEndedAt orders the results by the ended_at field.
func ByEndedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndedAt, opts...).ToFunc()
}

// ByErrorCode orders the results by the error_code field.
func ByErrorCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorCode, opts...).ToFunc()
}
