package coach

import "github.com/nikverma/physlab/internal/phase"

// Review is an LLM-generated explanation of what the learner just observed
// in a play phase.
type Review struct {
	GameID           string
	Headline         string
	Explanation      string
	EverydayExample  string
	FollowUpQuestion string
}

// ReviewInput holds all context needed to generate a review.
type ReviewInput struct {
	GameName string
	Concept  string
	Phase    phase.Phase

	// PredictionPrompt and the options shown during the predict phase.
	PredictionPrompt string
	PredictedOption  string
	CorrectOption    string
	PredictedRight   bool

	// ObservationSummary describes what happened on screen, e.g.
	// "doubling mass_b dropped the final velocity from 1.0 to 0.67 m/s".
	ObservationSummary string

	// Twist is true when reviewing the twist variant of the experiment.
	Twist bool
}

// Answer is a response to a free-form concept question from the CLI.
type Answer struct {
	Headline    string
	Explanation string
}
