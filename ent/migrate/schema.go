// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AuditEventsColumns holds the columns for the "audit_events" table.
	AuditEventsColumns = []*schema.Column{
		{Name: "audit_id", Type: field.TypeString, Unique: true},
		{Name: "workspace_id", Type: field.TypeString},
		{Name: "actor_agent_id", Type: field.TypeString, Nullable: true},
		{Name: "actor_role", Type: field.TypeString, Nullable: true},
		{Name: "operation", Type: field.TypeString},
		{Name: "resource_type", Type: field.TypeString},
		{Name: "resource_id", Type: field.TypeString},
		{Name: "thread_id", Type: field.TypeString, Nullable: true},
		{Name: "request_id", Type: field.TypeString, Nullable: true},
		{Name: "result", Type: field.TypeEnum, Enums: []string{"success", "rejected"}},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// AuditEventsTable holds the schema information for the "audit_events" table.
	AuditEventsTable = &schema.Table{
		Name:       "audit_events",
		Columns:    AuditEventsColumns,
		PrimaryKey: []*schema.Column{AuditEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "auditevent_workspace_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{AuditEventsColumns[1], AuditEventsColumns[11]},
			},
			{
				Name:    "auditevent_thread_id",
				Unique:  false,
				Columns: []*schema.Column{AuditEventsColumns[7]},
			},
			{
				Name:    "auditevent_request_id",
				Unique:  false,
				Columns: []*schema.Column{AuditEventsColumns[8]},
			},
		},
	}
	// FallbackRunsColumns holds the columns for the "fallback_runs" table.
	FallbackRunsColumns = []*schema.Column{
		{Name: "trigger_id", Type: field.TypeString, Unique: true},
		{Name: "workspace_id", Type: field.TypeString},
		{Name: "pid", Type: field.TypeInt},
		{Name: "launch_mode", Type: field.TypeEnum, Enums: []string{"resume", "spawn"}},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"running", "completed", "failed", "timed_out", "killed", "orphaned"}, Default: "running"},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "deadline_at", Type: field.TypeTime},
		{Name: "ended_at", Type: field.TypeTime, Nullable: true},
		{Name: "error_code", Type: field.TypeString, Nullable: true},
	}
	// FallbackRunsTable holds the schema information for the "fallback_runs" table.
	FallbackRunsTable = &schema.Table{
		Name:       "fallback_runs",
		Columns:    FallbackRunsColumns,
		PrimaryKey: []*schema.Column{FallbackRunsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "fallbackrun_workspace_id_status",
				Unique:  false,
				Columns: []*schema.Column{FallbackRunsColumns[1], FallbackRunsColumns[4]},
			},
			{
				Name:    "fallbackrun_status_deadline_at",
				Unique:  false,
				Columns: []*schema.Column{FallbackRunsColumns[4], FallbackRunsColumns[6]},
			},
		},
	}
	// MessagesColumns holds the columns for the "messages" table.
	MessagesColumns = []*schema.Column{
		{Name: "message_id", Type: field.TypeString, Unique: true},
		{Name: "schema_version", Type: field.TypeInt},
		{Name: "seq", Type: field.TypeInt},
		{Name: "sender_agent_id", Type: field.TypeString},
		{Name: "sender_session_id", Type: field.TypeString},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"chat", "event", "system"}},
		{Name: "body", Type: field.TypeString, Size: 2147483647},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "in_reply_to", Type: field.TypeString, Nullable: true},
		{Name: "idempotency_key", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "thread_id", Type: field.TypeString},
	}
	// MessagesTable holds the schema information for the "messages" table.
	MessagesTable = &schema.Table{
		Name:       "messages",
		Columns:    MessagesColumns,
		PrimaryKey: []*schema.Column{MessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "messages_threads_messages",
				Columns:    []*schema.Column{MessagesColumns[11]},
				RefColumns: []*schema.Column{ThreadsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "message_thread_id_seq",
				Unique:  true,
				Columns: []*schema.Column{MessagesColumns[11], MessagesColumns[2]},
			},
			{
				Name:    "message_thread_id_sender_agent_id_idempotency_key",
				Unique:  true,
				Columns: []*schema.Column{MessagesColumns[11], MessagesColumns[3], MessagesColumns[9]},
				Annotation: &entsql.IndexAnnotation{
					Where: "idempotency_key IS NOT NULL",
				},
			},
			{
				Name:    "message_thread_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[11], MessagesColumns[10]},
			},
		},
	}
	// ParticipantCursorsColumns holds the columns for the "participant_cursors" table.
	ParticipantCursorsColumns = []*schema.Column{
		{Name: "cursor_id", Type: field.TypeString, Unique: true},
		{Name: "agent_id", Type: field.TypeString},
		{Name: "last_read_seq", Type: field.TypeInt, Default: 0},
		{Name: "last_acked_message_id", Type: field.TypeString, Nullable: true},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "thread_id", Type: field.TypeString},
	}
	// ParticipantCursorsTable holds the schema information for the "participant_cursors" table.
	ParticipantCursorsTable = &schema.Table{
		Name:       "participant_cursors",
		Columns:    ParticipantCursorsColumns,
		PrimaryKey: []*schema.Column{ParticipantCursorsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "participant_cursors_threads_cursors",
				Columns:    []*schema.Column{ParticipantCursorsColumns[5]},
				RefColumns: []*schema.Column{ThreadsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "participantcursor_thread_id_agent_id",
				Unique:  true,
				Columns: []*schema.Column{ParticipantCursorsColumns[5], ParticipantCursorsColumns[1]},
			},
		},
	}
	// SessionRecordsColumns holds the columns for the "session_records" table.
	SessionRecordsColumns = []*schema.Column{
		{Name: "record_id", Type: field.TypeString, Unique: true},
		{Name: "agent_id", Type: field.TypeString},
		{Name: "workspace_id", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString},
		{Name: "runtime", Type: field.TypeString},
		{Name: "management_mode", Type: field.TypeEnum, Enums: []string{"managed", "unmanaged"}},
		{Name: "resumable", Type: field.TypeBool, Default: false},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "idle", "offline"}},
		{Name: "last_heartbeat_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SessionRecordsTable holds the schema information for the "session_records" table.
	SessionRecordsTable = &schema.Table{
		Name:       "session_records",
		Columns:    SessionRecordsColumns,
		PrimaryKey: []*schema.Column{SessionRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionrecord_agent_id_workspace_id",
				Unique:  true,
				Columns: []*schema.Column{SessionRecordsColumns[1], SessionRecordsColumns[2]},
			},
			{
				Name:    "sessionrecord_workspace_id_status",
				Unique:  false,
				Columns: []*schema.Column{SessionRecordsColumns[2], SessionRecordsColumns[7]},
			},
			{
				Name:    "sessionrecord_workspace_id_last_heartbeat_at",
				Unique:  false,
				Columns: []*schema.Column{SessionRecordsColumns[2], SessionRecordsColumns[8]},
			},
		},
	}
	// ThreadsColumns holds the columns for the "threads" table.
	ThreadsColumns = []*schema.Column{
		{Name: "thread_id", Type: field.TypeString, Unique: true},
		{Name: "workspace_id", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"conversation", "workflow", "incident"}},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "blocked", "resolved", "closed"}, Default: "active"},
		{Name: "escalation_owner_agent_id", Type: field.TypeString, Nullable: true},
		{Name: "escalation_assigned_by_agent_id", Type: field.TypeString, Nullable: true},
		{Name: "escalation_assigned_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_by", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ThreadsTable holds the schema information for the "threads" table.
	ThreadsTable = &schema.Table{
		Name:       "threads",
		Columns:    ThreadsColumns,
		PrimaryKey: []*schema.Column{ThreadsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "thread_workspace_id",
				Unique:  false,
				Columns: []*schema.Column{ThreadsColumns[1]},
			},
			{
				Name:    "thread_workspace_id_status",
				Unique:  false,
				Columns: []*schema.Column{ThreadsColumns[1], ThreadsColumns[4]},
			},
		},
	}
	// ThreadParticipantsColumns holds the columns for the "thread_participants" table.
	ThreadParticipantsColumns = []*schema.Column{
		{Name: "participant_id", Type: field.TypeString, Unique: true},
		{Name: "agent_id", Type: field.TypeString},
		{Name: "position", Type: field.TypeInt},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "thread_id", Type: field.TypeString},
	}
	// ThreadParticipantsTable holds the schema information for the "thread_participants" table.
	ThreadParticipantsTable = &schema.Table{
		Name:       "thread_participants",
		Columns:    ThreadParticipantsColumns,
		PrimaryKey: []*schema.Column{ThreadParticipantsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "thread_participants_threads_participants",
				Columns:    []*schema.Column{ThreadParticipantsColumns[4]},
				RefColumns: []*schema.Column{ThreadsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "threadparticipant_thread_id_agent_id",
				Unique:  true,
				Columns: []*schema.Column{ThreadParticipantsColumns[4], ThreadParticipantsColumns[1]},
			},
		},
	}
	// TriggerAttemptsColumns holds the columns for the "trigger_attempts" table.
	TriggerAttemptsColumns = []*schema.Column{
		{Name: "attempt_id", Type: field.TypeString, Unique: true},
		{Name: "attempt_no", Type: field.TypeInt},
		{Name: "attempt_result", Type: field.TypeString},
		{Name: "error_code", Type: field.TypeString, Nullable: true},
		{Name: "details", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "trigger_id", Type: field.TypeString},
	}
	// TriggerAttemptsTable holds the schema information for the "trigger_attempts" table.
	TriggerAttemptsTable = &schema.Table{
		Name:       "trigger_attempts",
		Columns:    TriggerAttemptsColumns,
		PrimaryKey: []*schema.Column{TriggerAttemptsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "trigger_attempts_trigger_jobs_trigger_attempts",
				Columns:    []*schema.Column{TriggerAttemptsColumns[6]},
				RefColumns: []*schema.Column{TriggerJobsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "triggerattempt_trigger_id_attempt_no",
				Unique:  true,
				Columns: []*schema.Column{TriggerAttemptsColumns[6], TriggerAttemptsColumns[1]},
			},
			{
				Name:    "triggerattempt_trigger_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{TriggerAttemptsColumns[6], TriggerAttemptsColumns[5]},
			},
		},
	}
	// TriggerJobsColumns holds the columns for the "trigger_jobs" table.
	TriggerJobsColumns = []*schema.Column{
		{Name: "trigger_id", Type: field.TypeString, Unique: true},
		{Name: "thread_id", Type: field.TypeString},
		{Name: "workspace_id", Type: field.TypeString},
		{Name: "target_agent_id", Type: field.TypeString},
		{Name: "target_session_id", Type: field.TypeString, Nullable: true},
		{Name: "reason", Type: field.TypeString},
		{Name: "prompt", Type: field.TypeString, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"queued", "triggering", "deferred", "timeout", "failed", "fallback_resume", "fallback_spawn", "fallback_running", "callback_pending", "callback_retry", "callback_delivered", "callback_failed"}, Default: "queued"},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "max_retries", Type: field.TypeInt},
		{Name: "next_retry_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// TriggerJobsTable holds the schema information for the "trigger_jobs" table.
	TriggerJobsTable = &schema.Table{
		Name:       "trigger_jobs",
		Columns:    TriggerJobsColumns,
		PrimaryKey: []*schema.Column{TriggerJobsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "triggerjob_workspace_id_status",
				Unique:  false,
				Columns: []*schema.Column{TriggerJobsColumns[2], TriggerJobsColumns[7]},
			},
			{
				Name:    "triggerjob_status_next_retry_at",
				Unique:  false,
				Columns: []*schema.Column{TriggerJobsColumns[7], TriggerJobsColumns[10]},
			},
			{
				Name:    "triggerjob_thread_id_target_agent_id_reason",
				Unique:  false,
				Columns: []*schema.Column{TriggerJobsColumns[1], TriggerJobsColumns[3], TriggerJobsColumns[5]},
			},
			{
				Name:    "triggerjob_status_updated_at",
				Unique:  false,
				Columns: []*schema.Column{TriggerJobsColumns[7], TriggerJobsColumns[12]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AuditEventsTable,
		FallbackRunsTable,
		MessagesTable,
		ParticipantCursorsTable,
		SessionRecordsTable,
		ThreadsTable,
		ThreadParticipantsTable,
		TriggerAttemptsTable,
		TriggerJobsTable,
	}
)

func init() {
	MessagesTable.ForeignKeys[0].RefTable = ThreadsTable
	ParticipantCursorsTable.ForeignKeys[0].RefTable = ThreadsTable
	ThreadParticipantsTable.ForeignKeys[0].RefTable = ThreadsTable
	TriggerAttemptsTable.ForeignKeys[0].RefTable = TriggerJobsTable
}
