// Code generated by ent, DO NOT EDIT.

package sessionrecord

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the sessionrecord type in the database.
	Label = "session_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "record_id"
	// FieldAgentID holds the string denoting the agent_id field in the database.
	FieldAgentID = "agent_id"
	// FieldWorkspaceID holds the string denoting the workspace_id field in the database.
	FieldWorkspaceID = "workspace_id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldRuntime holds the string denoting the runtime field in the database.
	FieldRuntime = "runtime"
	// FieldManagementMode holds the string denoting the management_mode field in the database.
	FieldManagementMode = "management_mode"
	// FieldResumable holds the string denoting the resumable field in the database.
	FieldResumable = "resumable"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldLastHeartbeatAt holds the string denoting the last_heartbeat_at field in the database.
	FieldLastHeartbeatAt = "last_heartbeat_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the sessionrecord in the database.
	Table = "session_records"
)

// Columns holds all SQL columns for sessionrecord fields.
var Columns = []string{
	FieldID,
	FieldAgentID,
	FieldWorkspaceID,
	FieldSessionID,
	FieldRuntime,
	FieldManagementMode,
	FieldResumable,
	FieldStatus,
	FieldLastHeartbeatAt,
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
	// DefaultResumable holds the default value on creation for the "resumable" field.
	DefaultResumable bool
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
)

// ManagementMode defines the type for the "management_mode" enum field.
type ManagementMode string

// ManagementMode values.
const (
	ManagementModeManaged   ManagementMode = "managed"
	ManagementModeUnmanaged ManagementMode = "unmanaged"
)

func (mm ManagementMode) String() string {
	return string(mm)
}

// ManagementModeValidator is a validator for the "management_mode" field enum values. It is called by the builders before save.
func ManagementModeValidator(mm ManagementMode) error {
	switch mm {
	case ManagementModeManaged, ManagementModeUnmanaged:
		return nil
	default:
		return fmt.Errorf("sessionrecord: invalid enum value for management_mode field: %q", mm)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// Status values.
const (
	StatusActive  Status = "active"
	StatusIdle    Status = "idle"
	StatusOffline Status = "offline"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusActive, StatusIdle, StatusOffline:
		return nil
	default:
		return fmt.Errorf("sessionrecord: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the SessionRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAgentID orders the results by the agent_id field.
func ByAgentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentID, opts...).ToFunc()
}

// ByWorkspaceID orders the results by the workspace_id field.
func ByWorkspaceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkspaceID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByRuntime orders the results by the runtime field.
func ByRuntime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRuntime, opts...).ToFunc()
}

// ByManagementMode orders the results by the management_mode field.
func ByManagementMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldManagementMode, opts...).ToFunc()
}

// ByResumable orders the results by the resumable field.
func ByResumable(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResumable, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByLastHeartbeatAt orders the results by the last_heartbeat_at field.
func ByLastHeartbeatAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastHeartbeatAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
