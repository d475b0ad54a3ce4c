// Code generated by ent, DO NOT EDIT.

package phaseevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/nikverma/physlab/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.PhaseEvent {
	return predicate.PhaseEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.PhaseEvent {
	return predicate.PhaseEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.PhaseEvent {
	return predicate.PhaseEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.PhaseEvent {
	return predicate.PhaseEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.PhaseEvent {
	return predicate.PhaseEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.PhaseEvent {
	return predicate.PhaseEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.PhaseEvent {
	return predicate.PhaseEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.PhaseEvent {
	return predicate.PhaseEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.PhaseEvent {
	return predicate.PhaseEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.PhaseEvent {
	return predicate.PhaseEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.PhaseEvent {
	return predicate.PhaseEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.PhaseEvent {
	return predicate.PhaseEvent(sql.FieldEQ(FieldSessionID, v))
}

// GameID applies equality check predicate on the "game_id" field. It's identical to GameIDEQ.
func GameID(v string) predicate.PhaseEvent {
	return predicate.PhaseEvent(sql.FieldEQ(FieldGameID, v))
}

// FromPhase applies equality check predicate on the "from_phase" field. It's identical to FromPhaseEQ.
func FromPhase(v string) predicate.PhaseEvent {
	return predicate.PhaseEvent(sql.FieldEQ(FieldFromPhase, v))
}

// ToPhase applies equality check predicate on the "to_phase" field. It's identical to ToPhaseEQ.
func ToPhase(v string) predicate.PhaseEvent {
	return predicate.PhaseEvent(sql.FieldEQ(FieldToPhase, v))
}

// MsInPhase applies equality check predicate on the "ms_in_phase" field. It's identical to MsInPhaseEQ.
func MsInPhase(v int64) predicate.PhaseEvent {
	return predicate.PhaseEvent(sql.FieldEQ(FieldMsInPhase, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.PhaseEvent {
	return predicate.PhaseEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.PhaseEvent {
	return predicate.PhaseEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.PhaseEvent {
	return predicate.PhaseEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.PhaseEvent {
	return predicate.PhaseEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.PhaseEvent {
	return predicate.PhaseEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.PhaseEvent {
	return predicate.PhaseEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.PhaseEvent {
	return predicate.PhaseEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.PhaseEvent {
	return predicate.PhaseEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.PhaseEvent {
	return predicate.PhaseEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.PhaseEvent {
	return predicate.PhaseEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.PhaseEvent {
	return predicate.PhaseEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.PhaseEvent {
	return predicate.PhaseEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.PhaseEvent {
	return predicate.PhaseEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.PhaseEvent {
	return predicate.PhaseEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.PhaseEvent {
	return predicate.PhaseEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.PhaseEvent {
	return predicate.PhaseEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.PhaseEvent {
	return predicate.PhaseEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.PhaseEvent {
	return predicate.PhaseEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.PhaseEvent {
	return predicate.PhaseEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.PhaseEvent {
	return predicate.PhaseEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.PhaseEvent {
	return predicate.PhaseEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.PhaseEvent {
	return predicate.PhaseEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.PhaseEvent {
	return predicate.PhaseEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.PhaseEvent {
	return predicate.PhaseEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.PhaseEvent {
	return predicate.PhaseEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.PhaseEvent {
	return predicate.PhaseEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.PhaseEvent {
	return predicate.PhaseEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.PhaseEvent {
	return predicate.PhaseEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.PhaseEvent {
	return predicate.PhaseEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// GameIDEQ applies the EQ predicate on the "game_id" field.
func GameIDEQ(v string) predicate.PhaseEvent {
	return predicate.PhaseEvent(sql.FieldEQ(FieldGameID, v))
}

// GameIDNEQ applies the NEQ predicate on the "game_id" field.
func GameIDNEQ(v string) predicate.PhaseEvent {
	return predicate.PhaseEvent(sql.FieldNEQ(FieldGameID, v))
}

// GameIDIn applies the In predicate on the "game_id" field.
func GameIDIn(vs ...string) predicate.PhaseEvent {
	return predicate.PhaseEvent(sql.FieldIn(FieldGameID, vs...))
}

// GameIDNotIn applies the NotIn predicate on the "game_id" field.
func GameIDNotIn(vs ...string) predicate.PhaseEvent {
	return predicate.PhaseEvent(sql.FieldNotIn(FieldGameID, vs...))
}

// GameIDGT applies the GT predicate on the "game_id" field.
func GameIDGT(v string) predicate.PhaseEvent {
	return predicate.PhaseEvent(sql.FieldGT(FieldGameID, v))
}

// GameIDGTE applies the GTE predicate on the "game_id" field.
func GameIDGTE(v string) predicate.PhaseEvent {
	return predicate.PhaseEvent(sql.FieldGTE(FieldGameID, v))
}

// GameIDLT applies the LT predicate on the "game_id" field.
func GameIDLT(v string) predicate.PhaseEvent {
	return predicate.PhaseEvent(sql.FieldLT(FieldGameID, v))
}

// GameIDLTE applies the LTE predicate on the "game_id" field.
func GameIDLTE(v string) predicate.PhaseEvent {
	return predicate.PhaseEvent(sql.FieldLTE(FieldGameID, v))
}

// GameIDContains applies the Contains predicate on the "game_id" field.
func GameIDContains(v string) predicate.PhaseEvent {
	return predicate.PhaseEvent(sql.FieldContains(FieldGameID, v))
}

// GameIDHasPrefix applies the HasPrefix predicate on the "game_id" field.
func GameIDHasPrefix(v string) predicate.PhaseEvent {
	return predicate.PhaseEvent(sql.FieldHasPrefix(FieldGameID, v))
}

// GameIDHasSuffix applies the HasSuffix predicate on the "game_id" field.
func GameIDHasSuffix(v string) predicate.PhaseEvent {
	return predicate.PhaseEvent(sql.FieldHasSuffix(FieldGameID, v))
}

// GameIDEqualFold applies the EqualFold predicate on the "game_id" field.
func GameIDEqualFold(v string) predicate.PhaseEvent {
	return predicate.PhaseEvent(sql.FieldEqualFold(FieldGameID, v))
}

// GameIDContainsFold applies the ContainsFold predicate on the "game_id" field.
func GameIDContainsFold(v string) predicate.PhaseEvent {
	return predicate.PhaseEvent(sql.FieldContainsFold(FieldGameID, v))
}

// FromPhaseEQ applies the EQ predicate on the "from_phase" field.
func FromPhaseEQ(v string) predicate.PhaseEvent {
	return predicate.PhaseEvent(sql.FieldEQ(FieldFromPhase, v))
}

// FromPhaseNEQ applies the NEQ predicate on the "from_phase" field.
func FromPhaseNEQ(v string) predicate.PhaseEvent {
	return predicate.PhaseEvent(sql.FieldNEQ(FieldFromPhase, v))
}

// FromPhaseIn applies the In predicate on the "from_phase" field.
func FromPhaseIn(vs ...string) predicate.PhaseEvent {
	return predicate.PhaseEvent(sql.FieldIn(FieldFromPhase, vs...))
}

// FromPhaseNotIn applies the NotIn predicate on the "from_phase" field.
func FromPhaseNotIn(vs ...string) predicate.PhaseEvent {
	return predicate.PhaseEvent(sql.FieldNotIn(FieldFromPhase, vs...))
}

// FromPhaseGT applies the GT predicate on the "from_phase" field.
func FromPhaseGT(v string) predicate.PhaseEvent {
	return predicate.PhaseEvent(sql.FieldGT(FieldFromPhase, v))
}

// FromPhaseGTE applies the GTE predicate on the "from_phase" field.
func FromPhaseGTE(v string) predicate.PhaseEvent {
	return predicate.PhaseEvent(sql.FieldGTE(FieldFromPhase, v))
}

// FromPhaseLT applies the LT predicate on the "from_phase" field.
func FromPhaseLT(v string) predicate.PhaseEvent {
	return predicate.PhaseEvent(sql.FieldLT(FieldFromPhase, v))
}

// FromPhaseLTE applies the LTE predicate on the "from_phase" field.
func FromPhaseLTE(v string) predicate.PhaseEvent {
	return predicate.PhaseEvent(sql.FieldLTE(FieldFromPhase, v))
}

// FromPhaseContains applies the Contains predicate on the "from_phase" field.
func FromPhaseContains(v string) predicate.PhaseEvent {
	return predicate.PhaseEvent(sql.FieldContains(FieldFromPhase, v))
}

// FromPhaseHasPrefix applies the HasPrefix predicate on the "from_phase" field.
func FromPhaseHasPrefix(v string) predicate.PhaseEvent {
	return predicate.PhaseEvent(sql.FieldHasPrefix(FieldFromPhase, v))
}

// FromPhaseHasSuffix applies the HasSuffix predicate on the "from_phase" field.
func FromPhaseHasSuffix(v string) predicate.PhaseEvent {
	return predicate.PhaseEvent(sql.FieldHasSuffix(FieldFromPhase, v))
}

// FromPhaseEqualFold applies the EqualFold predicate on the "from_phase" field.
func FromPhaseEqualFold(v string) predicate.PhaseEvent {
	return predicate.PhaseEvent(sql.FieldEqualFold(FieldFromPhase, v))
}

// FromPhaseContainsFold applies the ContainsFold predicate on the "from_phase" field.
func FromPhaseContainsFold(v string) predicate.PhaseEvent {
	return predicate.PhaseEvent(sql.FieldContainsFold(FieldFromPhase, v))
}

// ToPhaseEQ applies the EQ predicate on the "to_phase" field.
func ToPhaseEQ(v string) predicate.PhaseEvent {
	return predicate.PhaseEvent(sql.FieldEQ(FieldToPhase, v))
}

// ToPhaseNEQ applies the NEQ predicate on the "to_phase" field.
func ToPhaseNEQ(v string) predicate.PhaseEvent {
	return predicate.PhaseEvent(sql.FieldNEQ(FieldToPhase, v))
}

// ToPhaseIn applies the In predicate on the "to_phase" field.
func ToPhaseIn(vs ...string) predicate.PhaseEvent {
	return predicate.PhaseEvent(sql.FieldIn(FieldToPhase, vs...))
}

// ToPhaseNotIn applies the NotIn predicate on the "to_phase" field.
func ToPhaseNotIn(vs ...string) predicate.PhaseEvent {
	return predicate.PhaseEvent(sql.FieldNotIn(FieldToPhase, vs...))
}

// ToPhaseGT applies the GT predicate on the "to_phase" field.
func ToPhaseGT(v string) predicate.PhaseEvent {
	return predicate.PhaseEvent(sql.FieldGT(FieldToPhase, v))
}

// ToPhaseGTE applies the GTE predicate on the "to_phase" field.
func ToPhaseGTE(v string) predicate.PhaseEvent {
	return predicate.PhaseEvent(sql.FieldGTE(FieldToPhase, v))
}

// ToPhaseLT applies the LT predicate on the "to_phase" field.
func ToPhaseLT(v string) predicate.PhaseEvent {
	return predicate.PhaseEvent(sql.FieldLT(FieldToPhase, v))
}

// ToPhaseLTE applies the LTE predicate on the "to_phase" field.
func ToPhaseLTE(v string) predicate.PhaseEvent {
	return predicate.PhaseEvent(sql.FieldLTE(FieldToPhase, v))
}

// ToPhaseContains applies the Contains predicate on the "to_phase" field.
func ToPhaseContains(v string) predicate.PhaseEvent {
	return predicate.PhaseEvent(sql.FieldContains(FieldToPhase, v))
}

// ToPhaseHasPrefix applies the HasPrefix predicate on the "to_phase" field.
func ToPhaseHasPrefix(v string) predicate.PhaseEvent {
	return predicate.PhaseEvent(sql.FieldHasPrefix(FieldToPhase, v))
}

// ToPhaseHasSuffix applies the HasSuffix predicate on the "to_phase" field.
func ToPhaseHasSuffix(v string) predicate.PhaseEvent {
	return predicate.PhaseEvent(sql.FieldHasSuffix(FieldToPhase, v))
}

// ToPhaseEqualFold applies the EqualFold predicate on the "to_phase" field.
func ToPhaseEqualFold(v string) predicate.PhaseEvent {
	return predicate.PhaseEvent(sql.FieldEqualFold(FieldToPhase, v))
}

// ToPhaseContainsFold applies the ContainsFold predicate on the "to_phase" field.
func ToPhaseContainsFold(v string) predicate.PhaseEvent {
	return predicate.PhaseEvent(sql.FieldContainsFold(FieldToPhase, v))
}

// MsInPhaseEQ applies the EQ predicate on the "ms_in_phase" field.
func MsInPhaseEQ(v int64) predicate.PhaseEvent {
	return predicate.PhaseEvent(sql.FieldEQ(FieldMsInPhase, v))
}

// MsInPhaseNEQ applies the NEQ predicate on the "ms_in_phase" field.
func MsInPhaseNEQ(v int64) predicate.PhaseEvent {
	return predicate.PhaseEvent(sql.FieldNEQ(FieldMsInPhase, v))
}

// MsInPhaseIn applies the In predicate on the "ms_in_phase" field.
func MsInPhaseIn(vs ...int64) predicate.PhaseEvent {
	return predicate.PhaseEvent(sql.FieldIn(FieldMsInPhase, vs...))
}

// MsInPhaseNotIn applies the NotIn predicate on the "ms_in_phase" field.
func MsInPhaseNotIn(vs ...int64) predicate.PhaseEvent {
	return predicate.PhaseEvent(sql.FieldNotIn(FieldMsInPhase, vs...))
}

// MsInPhaseGT applies the GT predicate on the "ms_in_phase" field.
func MsInPhaseGT(v int64) predicate.PhaseEvent {
	return predicate.PhaseEvent(sql.FieldGT(FieldMsInPhase, v))
}

// MsInPhaseGTE applies the GTE predicate on the "ms_in_phase" field.
func MsInPhaseGTE(v int64) predicate.PhaseEvent {
	return predicate.PhaseEvent(sql.FieldGTE(FieldMsInPhase, v))
}

// MsInPhaseLT applies the LT predicate on the "ms_in_phase" field.
func MsInPhaseLT(v int64) predicate.PhaseEvent {
	return predicate.PhaseEvent(sql.FieldLT(FieldMsInPhase, v))
}

// MsInPhaseLTE applies the LTE predicate on the "ms_in_phase" field.
func MsInPhaseLTE(v int64) predicate.PhaseEvent {
	return predicate.PhaseEvent(sql.FieldLTE(FieldMsInPhase, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PhaseEvent) predicate.PhaseEvent {
	return predicate.PhaseEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PhaseEvent) predicate.PhaseEvent {
	return predicate.PhaseEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PhaseEvent) predicate.PhaseEvent {
	return predicate.PhaseEvent(sql.NotPredicates(p))
}
