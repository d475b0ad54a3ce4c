package phase

// Phase is one named step in the fixed ten-step instructional sequence
// every mini-lab walks through.
type Phase string

const (
	PhaseHook         Phase = "hook"
	PhasePredict      Phase = "predict"
	PhasePlay         Phase = "play"
	PhaseReview       Phase = "review"
	PhaseTwistPredict Phase = "twist_predict"
	PhaseTwistPlay    Phase = "twist_play"
	PhaseTwistReview  Phase = "twist_review"
	PhaseTransfer     Phase = "transfer"
	PhaseTest         Phase = "test"
	PhaseMastery      Phase = "mastery"
)

// Sequence returns the canonical phase order. The order is fixed: it defines
// both display order and allowed forward navigation.
func Sequence() []Phase {
	return []Phase{
		PhaseHook,
		PhasePredict,
		PhasePlay,
		PhaseReview,
		PhaseTwistPredict,
		PhaseTwistPlay,
		PhaseTwistReview,
		PhaseTransfer,
		PhaseTest,
		PhaseMastery,
	}
}

// Label returns the human-readable display name for a phase.
func (p Phase) Label() string {
	switch p {
	case PhaseHook:
		return "Hook"
	case PhasePredict:
		return "Predict"
	case PhasePlay:
		return "Experiment"
	case PhaseReview:
		return "Review"
	case PhaseTwistPredict:
		return "Twist: Predict"
	case PhaseTwistPlay:
		return "Twist: Experiment"
	case PhaseTwistReview:
		return "Twist: Review"
	case PhaseTransfer:
		return "Transfer"
	case PhaseTest:
		return "Test"
	case PhaseMastery:
		return "Mastery"
	default:
		return string(p)
	}
}

// IsPredict reports whether the phase asks the learner for a prediction.
func (p Phase) IsPredict() bool {
	return p == PhasePredict || p == PhaseTwistPredict
}

// IsPlay reports whether the phase is an interactive experiment.
func (p Phase) IsPlay() bool {
	return p == PhasePlay || p == PhaseTwistPlay
}
