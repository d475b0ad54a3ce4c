// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/nikverma/physlab/ent/answerevent"
	"github.com/nikverma/physlab/ent/llmrequestevent"
	"github.com/nikverma/physlab/ent/phaseevent"
	"github.com/nikverma/physlab/ent/schema"
	"github.com/nikverma/physlab/ent/sessionevent"
	"github.com/nikverma/physlab/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescSessionID is the schema descriptor for session_id field.
	answereventDescSessionID := answereventFields[0].Descriptor()
	// answerevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	answerevent.SessionIDValidator = answereventDescSessionID.Validators[0].(func(string) error)
	// answereventDescGameID is the schema descriptor for game_id field.
	answereventDescGameID := answereventFields[1].Descriptor()
	// answerevent.GameIDValidator is a validator for the "game_id" field. It is called by the builders before save.
	answerevent.GameIDValidator = answereventDescGameID.Validators[0].(func(string) error)
	// answereventDescPhase is the schema descriptor for phase field.
	answereventDescPhase := answereventFields[2].Descriptor()
	// answerevent.PhaseValidator is a validator for the "phase" field. It is called by the builders before save.
	answerevent.PhaseValidator = answereventDescPhase.Validators[0].(func(string) error)
	// answereventDescQuestion is the schema descriptor for question field.
	answereventDescQuestion := answereventFields[3].Descriptor()
	// answerevent.QuestionValidator is a validator for the "question" field. It is called by the builders before save.
	answerevent.QuestionValidator = answereventDescQuestion.Validators[0].(func(string) error)
	// answereventDescMsToAnswer is the schema descriptor for ms_to_answer field.
	answereventDescMsToAnswer := answereventFields[6].Descriptor()
	// answerevent.DefaultMsToAnswer holds the default value on creation for the ms_to_answer field.
	answerevent.DefaultMsToAnswer = answereventDescMsToAnswer.Default.(int64)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescProvider is the schema descriptor for provider field.
	llmrequesteventDescProvider := llmrequesteventFields[0].Descriptor()
	// llmrequestevent.ProviderValidator is a validator for the "provider" field. It is called by the builders before save.
	llmrequestevent.ProviderValidator = llmrequesteventDescProvider.Validators[0].(func(string) error)
	// llmrequesteventDescModel is the schema descriptor for model field.
	llmrequesteventDescModel := llmrequesteventFields[1].Descriptor()
	// llmrequestevent.ModelValidator is a validator for the "model" field. It is called by the builders before save.
	llmrequestevent.ModelValidator = llmrequesteventDescModel.Validators[0].(func(string) error)
	// llmrequesteventDescPurpose is the schema descriptor for purpose field.
	llmrequesteventDescPurpose := llmrequesteventFields[2].Descriptor()
	// llmrequestevent.PurposeValidator is a validator for the "purpose" field. It is called by the builders before save.
	llmrequestevent.PurposeValidator = llmrequesteventDescPurpose.Validators[0].(func(string) error)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescSuccess is the schema descriptor for success field.
	llmrequesteventDescSuccess := llmrequesteventFields[6].Descriptor()
	// llmrequestevent.DefaultSuccess holds the default value on creation for the success field.
	llmrequestevent.DefaultSuccess = llmrequesteventDescSuccess.Default.(bool)
	phaseeventMixin := schema.PhaseEvent{}.Mixin()
	phaseeventMixinFields0 := phaseeventMixin[0].Fields()
	_ = phaseeventMixinFields0
	phaseeventFields := schema.PhaseEvent{}.Fields()
	_ = phaseeventFields
	// phaseeventDescTimestamp is the schema descriptor for timestamp field.
	phaseeventDescTimestamp := phaseeventMixinFields0[1].Descriptor()
	// phaseevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	phaseevent.DefaultTimestamp = phaseeventDescTimestamp.Default.(func() time.Time)
	// phaseeventDescSessionID is the schema descriptor for session_id field.
	phaseeventDescSessionID := phaseeventFields[0].Descriptor()
	// phaseevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	phaseevent.SessionIDValidator = phaseeventDescSessionID.Validators[0].(func(string) error)
	// phaseeventDescGameID is the schema descriptor for game_id field.
	phaseeventDescGameID := phaseeventFields[1].Descriptor()
	// phaseevent.GameIDValidator is a validator for the "game_id" field. It is called by the builders before save.
	phaseevent.GameIDValidator = phaseeventDescGameID.Validators[0].(func(string) error)
	// phaseeventDescFromPhase is the schema descriptor for from_phase field.
	phaseeventDescFromPhase := phaseeventFields[2].Descriptor()
	// phaseevent.FromPhaseValidator is a validator for the "from_phase" field. It is called by the builders before save.
	phaseevent.FromPhaseValidator = phaseeventDescFromPhase.Validators[0].(func(string) error)
	// phaseeventDescToPhase is the schema descriptor for to_phase field.
	phaseeventDescToPhase := phaseeventFields[3].Descriptor()
	// phaseevent.ToPhaseValidator is a validator for the "to_phase" field. It is called by the builders before save.
	phaseevent.ToPhaseValidator = phaseeventDescToPhase.Validators[0].(func(string) error)
	// phaseeventDescMsInPhase is the schema descriptor for ms_in_phase field.
	phaseeventDescMsInPhase := phaseeventFields[4].Descriptor()
	// phaseevent.DefaultMsInPhase holds the default value on creation for the ms_in_phase field.
	phaseevent.DefaultMsInPhase = phaseeventDescMsInPhase.Default.(int64)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescGameID is the schema descriptor for game_id field.
	sessioneventDescGameID := sessioneventFields[1].Descriptor()
	// sessionevent.GameIDValidator is a validator for the "game_id" field. It is called by the builders before save.
	sessionevent.GameIDValidator = sessioneventDescGameID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[2].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescPhasesCompleted is the schema descriptor for phases_completed field.
	sessioneventDescPhasesCompleted := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultPhasesCompleted holds the default value on creation for the phases_completed field.
	sessionevent.DefaultPhasesCompleted = sessioneventDescPhasesCompleted.Default.(int)
	// sessioneventDescTestScorePct is the schema descriptor for test_score_pct field.
	sessioneventDescTestScorePct := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultTestScorePct holds the default value on creation for the test_score_pct field.
	sessionevent.DefaultTestScorePct = sessioneventDescTestScorePct.Default.(int)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
