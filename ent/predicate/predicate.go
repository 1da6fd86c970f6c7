// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AuditEvent is the predicate function for auditevent builders.
type AuditEvent func(*sql.Selector)

// FallbackRun is the predicate function for fallbackrun builders.
type FallbackRun func(*sql.Selector)

// Message is the predicate function for message builders.
type Message func(*sql.Selector)

// ParticipantCursor is the predicate function for participantcursor builders.
type ParticipantCursor func(*sql.Selector)

// SessionRecord is the predicate function for sessionrecord builders.
type SessionRecord func(*sql.Selector)

// Thread is the predicate function for thread builders.
type Thread func(*sql.Selector)

// ThreadParticipant is the predicate function for threadparticipant builders.
type ThreadParticipant func(*sql.Selector)

// TriggerAttempt is the predicate function for triggerattempt builders.
type TriggerAttempt func(*sql.Selector)

// TriggerJob is the predicate function for triggerjob builders.
type TriggerJob func(*sql.Selector)
