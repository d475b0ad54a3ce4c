package coach

import (
	"strings"
	"testing"
)

func TestBuildReviewUserMessage(t *testing.T) {
	tests := []struct {
		name    string
		input   ReviewInput
		want    []string
		notWant []string
	}{
		{
			name: "full prediction context",
			input: ReviewInput{
				GameName:         "Skydiver",
				Concept:          "air drag",
				PredictionPrompt: "What happens to drag when speed doubles?",
				PredictedOption:  "It doubles",
				CorrectOption:    "It quadruples",
			},
			want: []string{
				"Prediction question: What happens to drag when speed doubles?",
				"Learner predicted: It doubles",
				"Correct answer: It quadruples",
				"The prediction was wrong.",
			},
		},
		{
			name: "prediction without the question text",
			input: ReviewInput{
				GameName:        "Pendulum Clock",
				Concept:         "period of a pendulum",
				PredictedOption: "It swings faster",
				CorrectOption:   "The period does not change",
				PredictedRight:  true,
			},
			want: []string{
				"Learner predicted: It swings faster",
				"Correct answer: The period does not change",
				"The prediction was right.",
			},
			notWant: []string{"Prediction question:"},
		},
		{
			name: "no prediction made",
			input: ReviewInput{
				GameName:         "Crash Cart",
				Concept:          "conservation of momentum",
				PredictionPrompt: "What happens when the carts collide?",
			},
			want:    []string{"Prediction question: What happens when the carts collide?"},
			notWant: []string{"Learner predicted:", "Correct answer:"},
		},
		{
			name: "twist flagged",
			input: ReviewInput{
				GameName: "Inverter Wave",
				Concept:  "sine synthesis",
				Twist:    true,
			},
			want: []string{"Variant: twist"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := buildReviewUserMessage(tt.input)
			for _, want := range tt.want {
				if !strings.Contains(msg, want) {
					t.Errorf("message missing %q", want)
				}
			}
			for _, notWant := range tt.notWant {
				if strings.Contains(msg, notWant) {
					t.Errorf("message should not contain %q", notWant)
				}
			}
		})
	}
}
