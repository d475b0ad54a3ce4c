package coach

import (
	"fmt"
	"strings"
)

const reviewSystemPrompt = `You are a friendly physics coach inside a terminal lab app. A learner has just run an interactive experiment and needs a short review that connects what they predicted with what they observed.`

func buildReviewUserMessage(input ReviewInput) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Experiment: %s\n", input.GameName))
	b.WriteString(fmt.Sprintf("Concept: %s\n", input.Concept))
	if input.Twist {
		b.WriteString("Variant: twist (a parameter changed mid-lab)\n")
	}

	if input.PredictionPrompt != "" {
		b.WriteString(fmt.Sprintf("\nPrediction question: %s\n", input.PredictionPrompt))
	}
	if input.PredictedOption != "" {
		b.WriteString(fmt.Sprintf("Learner predicted: %s\n", input.PredictedOption))
		b.WriteString(fmt.Sprintf("Correct answer: %s\n", input.CorrectOption))
		if input.PredictedRight {
			b.WriteString("The prediction was right.\n")
		} else {
			b.WriteString("The prediction was wrong.\n")
		}
	}

	if input.ObservationSummary != "" {
		b.WriteString(fmt.Sprintf("\nWhat the learner observed: %s\n", input.ObservationSummary))
	}

	b.WriteString(`
Instructions:
Write a review that:
1. Opens with a short headline naming the principle at work.
2. Explains in 3-5 plain sentences WHY the experiment behaved the way it did. If the prediction was wrong, address the likely misconception directly without being discouraging.
3. Gives one everyday example of the same principle.
4. Ends with one follow-up question the learner could answer by moving the sliders.
5. Use plain ASCII text. No LaTeX, no Unicode symbols. Write formulas like F = 0.5 * rho * v^2 * Cd * A.`)

	return b.String()
}

const answerSystemPrompt = `You are a friendly physics coach. Answer the learner's question accurately in plain language, at a level a curious high-school student would follow.`

func buildAnswerUserMessage(question string) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Question: %s\n", question))
	b.WriteString(`
Instructions:
1. Open with a short headline giving the direct answer.
2. Follow with 3-6 sentences of explanation.
3. Use plain ASCII text for any formulas.`)
	return b.String()
}
