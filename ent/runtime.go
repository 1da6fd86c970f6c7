// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/agentfabric/bridge/ent/auditevent"
	"github.com/agentfabric/bridge/ent/fallbackrun"
	"github.com/agentfabric/bridge/ent/message"
	"github.com/agentfabric/bridge/ent/participantcursor"
	"github.com/agentfabric/bridge/ent/schema"
	"github.com/agentfabric/bridge/ent/sessionrecord"
	"github.com/agentfabric/bridge/ent/thread"
	"github.com/agentfabric/bridge/ent/threadparticipant"
	"github.com/agentfabric/bridge/ent/triggerattempt"
	"github.com/agentfabric/bridge/ent/triggerjob"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	auditeventFields := schema.AuditEvent{}.Fields()
	_ = auditeventFields
	// auditeventDescCreatedAt is the schema descriptor for created_at field.
	auditeventDescCreatedAt := auditeventFields[11].Descriptor()
	// auditevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	auditevent.DefaultCreatedAt = auditeventDescCreatedAt.Default.(func() time.Time)
	fallbackrunFields := schema.FallbackRun{}.Fields()
	_ = fallbackrunFields
	// fallbackrunDescStartedAt is the schema descriptor for started_at field.
	fallbackrunDescStartedAt := fallbackrunFields[5].Descriptor()
	// fallbackrun.DefaultStartedAt holds the default value on creation for the started_at field.
	fallbackrun.DefaultStartedAt = fallbackrunDescStartedAt.Default.(func() time.Time)
	messageFields := schema.Message{}.Fields()
	_ = messageFields
	// messageDescSchemaVersion is the schema descriptor for schema_version field.
	messageDescSchemaVersion := messageFields[2].Descriptor()
	// message.SchemaVersionValidator is a validator for the "schema_version" field. It is called by the builders before save.
	message.SchemaVersionValidator = messageDescSchemaVersion.Validators[0].(func(int) error)
	// messageDescSeq is the schema descriptor for seq field.
	messageDescSeq := messageFields[3].Descriptor()
	// message.SeqValidator is a validator for the "seq" field. It is called by the builders before save.
	message.SeqValidator = messageDescSeq.Validators[0].(func(int) error)
	// messageDescCreatedAt is the schema descriptor for created_at field.
	messageDescCreatedAt := messageFields[11].Descriptor()
	// message.DefaultCreatedAt holds the default value on creation for the created_at field.
	message.DefaultCreatedAt = messageDescCreatedAt.Default.(func() time.Time)
	participantcursorFields := schema.ParticipantCursor{}.Fields()
	_ = participantcursorFields
	// participantcursorDescLastReadSeq is the schema descriptor for last_read_seq field.
	participantcursorDescLastReadSeq := participantcursorFields[3].Descriptor()
	// participantcursor.DefaultLastReadSeq holds the default value on creation for the last_read_seq field.
	participantcursor.DefaultLastReadSeq = participantcursorDescLastReadSeq.Default.(int)
	// participantcursor.LastReadSeqValidator is a validator for the "last_read_seq" field. It is called by the builders before save.
	participantcursor.LastReadSeqValidator = participantcursorDescLastReadSeq.Validators[0].(func(int) error)
	// participantcursorDescUpdatedAt is the schema descriptor for updated_at field.
	participantcursorDescUpdatedAt := participantcursorFields[5].Descriptor()
	// participantcursor.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	participantcursor.DefaultUpdatedAt = participantcursorDescUpdatedAt.Default.(func() time.Time)
	sessionrecordFields := schema.SessionRecord{}.Fields()
	_ = sessionrecordFields
	// sessionrecordDescResumable is the schema descriptor for resumable field.
	sessionrecordDescResumable := sessionrecordFields[6].Descriptor()
	// sessionrecord.DefaultResumable holds the default value on creation for the resumable field.
	sessionrecord.DefaultResumable = sessionrecordDescResumable.Default.(bool)
	// sessionrecordDescUpdatedAt is the schema descriptor for updated_at field.
	sessionrecordDescUpdatedAt := sessionrecordFields[9].Descriptor()
	// sessionrecord.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	sessionrecord.DefaultUpdatedAt = sessionrecordDescUpdatedAt.Default.(func() time.Time)
	threadFields := schema.Thread{}.Fields()
	_ = threadFields
	// threadDescCreatedAt is the schema descriptor for created_at field.
	threadDescCreatedAt := threadFields[9].Descriptor()
	// thread.DefaultCreatedAt holds the default value on creation for the created_at field.
	thread.DefaultCreatedAt = threadDescCreatedAt.Default.(func() time.Time)
	// threadDescUpdatedAt is the schema descriptor for updated_at field.
	threadDescUpdatedAt := threadFields[10].Descriptor()
	// thread.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	thread.DefaultUpdatedAt = threadDescUpdatedAt.Default.(func() time.Time)
	threadparticipantFields := schema.ThreadParticipant{}.Fields()
	_ = threadparticipantFields
	// threadparticipantDescCreatedAt is the schema descriptor for created_at field.
	threadparticipantDescCreatedAt := threadparticipantFields[4].Descriptor()
	// threadparticipant.DefaultCreatedAt holds the default value on creation for the created_at field.
	threadparticipant.DefaultCreatedAt = threadparticipantDescCreatedAt.Default.(func() time.Time)
	triggerattemptFields := schema.TriggerAttempt{}.Fields()
	_ = triggerattemptFields
	// triggerattemptDescAttemptNo is the schema descriptor for attempt_no field.
	triggerattemptDescAttemptNo := triggerattemptFields[2].Descriptor()
	// triggerattempt.AttemptNoValidator is a validator for the "attempt_no" field. It is called by the builders before save.
	triggerattempt.AttemptNoValidator = triggerattemptDescAttemptNo.Validators[0].(func(int) error)
	// triggerattemptDescCreatedAt is the schema descriptor for created_at field.
	triggerattemptDescCreatedAt := triggerattemptFields[6].Descriptor()
	// triggerattempt.DefaultCreatedAt holds the default value on creation for the created_at field.
	triggerattempt.DefaultCreatedAt = triggerattemptDescCreatedAt.Default.(func() time.Time)
	triggerjobFields := schema.TriggerJob{}.Fields()
	_ = triggerjobFields
	// triggerjobDescAttempts is the schema descriptor for attempts field.
	triggerjobDescAttempts := triggerjobFields[8].Descriptor()
	// triggerjob.DefaultAttempts holds the default value on creation for the attempts field.
	triggerjob.DefaultAttempts = triggerjobDescAttempts.Default.(int)
	// triggerjobDescCreatedAt is the schema descriptor for created_at field.
	triggerjobDescCreatedAt := triggerjobFields[11].Descriptor()
	// triggerjob.DefaultCreatedAt holds the default value on creation for the created_at field.
	triggerjob.DefaultCreatedAt = triggerjobDescCreatedAt.Default.(func() time.Time)
	// triggerjobDescUpdatedAt is the schema descriptor for updated_at field.
	triggerjobDescUpdatedAt := triggerjobFields[12].Descriptor()
	// triggerjob.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	triggerjob.DefaultUpdatedAt = triggerjobDescUpdatedAt.Default.(func() time.Time)
}
