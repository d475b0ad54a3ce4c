package coach

import "github.com/nikverma/physlab/internal/llm"

// ReviewSchema defines the JSON schema for review generation.
var ReviewSchema = &llm.Schema{
	Name:        "phase-review",
	Description: "A short review of a physics experiment the learner just ran",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"headline": map[string]any{
				"type":        "string",
				"description": "Short takeaway in 3-8 words",
			},
			"explanation": map[string]any{
				"type":        "string",
				"description": "Clear explanation of why the experiment behaved as observed (3-5 sentences)",
			},
			"everyday_example": map[string]any{
				"type":        "string",
				"description": "One everyday situation where the same principle applies (1-2 sentences)",
			},
			"follow_up_question": map[string]any{
				"type":        "string",
				"description": "One question nudging the learner to test the principle further",
			},
		},
		"required":             []any{"headline", "explanation", "everyday_example", "follow_up_question"},
		"additionalProperties": false,
	},
}

// AnswerSchema defines the JSON schema for free-form concept answers.
var AnswerSchema = &llm.Schema{
	Name:        "concept-answer",
	Description: "An answer to a physics concept question",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"headline": map[string]any{
				"type":        "string",
				"description": "Short answer in 3-10 words",
			},
			"explanation": map[string]any{
				"type":        "string",
				"description": "Full explanation in plain language (3-6 sentences)",
			},
		},
		"required":             []any{"headline", "explanation"},
		"additionalProperties": false,
	},
}
