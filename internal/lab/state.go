package lab

import "github.com/nikverma/physlab/internal/coach"

// LabState tracks the learner's inputs within a single run of a mini-lab.
// It resets when the mastery phase loops back to the hook.
type LabState struct {
	// PredictionChoice is the selected option index, -1 until a prediction
	// is made.
	PredictionChoice  int
	PredictionCorrect bool

	TwistPredictionChoice  int
	TwistPredictionCorrect bool

	// PlayInteractions counts slider adjustments in the play phase.
	PlayInteractions  int
	TwistInteractions int

	// QuizIndex is the next unanswered test question.
	QuizIndex   int
	QuizAnswers []int
	QuizCorrect int

	// TransferIndex is the transfer prompt currently shown.
	TransferIndex int

	// Review and TwistReview hold the consumed coach debriefs for their
	// review phases, nil when the coach is unavailable or still generating.
	// Each review phase gets its own debrief.
	Review      *coach.Review
	TwistReview *coach.Review
}

// NewLabState returns a fresh state with no prediction made.
func NewLabState() *LabState {
	return &LabState{
		PredictionChoice:      -1,
		TwistPredictionChoice: -1,
	}
}

// PredictionMade reports whether the first prediction has been recorded.
func (st *LabState) PredictionMade() bool {
	return st.PredictionChoice >= 0
}

// TwistPredictionMade reports whether the twist prediction has been recorded.
func (st *LabState) TwistPredictionMade() bool {
	return st.TwistPredictionChoice >= 0
}
