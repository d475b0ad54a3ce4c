package coach

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/nikverma/physlab/internal/llm"
	"github.com/nikverma/physlab/internal/phase"
)

func validReviewJSON() json.RawMessage {
	return json.RawMessage(`{
		"headline": "Momentum is conserved",
		"explanation": "The carts stick together, so the combined mass carries the same total momentum the first cart had alone. More mass moving together means a lower shared speed.",
		"everyday_example": "A shopping cart rolling into a stationary loaded cart slows down the same way.",
		"follow_up_question": "What happens to the final speed if you triple the second cart's mass?"
	}`)
}

func waitForReview(t *testing.T, svc *Service) *Review {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if review, ok := svc.ConsumeReview(); ok {
			return review
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("timed out waiting for review")
	return nil
}

func TestService_GeneratesReview(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validReviewJSON()})
	svc := NewService(mock, DefaultConfig())

	svc.RequestReview(t.Context(), ReviewInput{
		GameName:           "Crash Cart",
		Concept:            "conservation of momentum",
		Phase:              phase.PhaseReview,
		PredictionPrompt:   "What happens when the carts collide and stick?",
		PredictedOption:    "They both stop",
		CorrectOption:      "They move together at half the speed",
		PredictedRight:     false,
		ObservationSummary: "final velocity fell from 2.0 to 1.0 m/s when the carts coupled",
	})

	review := waitForReview(t, svc)
	if review.Headline != "Momentum is conserved" {
		t.Errorf("Headline = %q, want %q", review.Headline, "Momentum is conserved")
	}
	if review.Explanation == "" {
		t.Error("expected non-empty explanation")
	}
	if review.EverydayExample == "" {
		t.Error("expected non-empty everyday example")
	}
	if review.FollowUpQuestion == "" {
		t.Error("expected non-empty follow-up question")
	}
}

func TestService_PromptCarriesPredictionContext(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validReviewJSON()})
	svc := NewService(mock, DefaultConfig())

	svc.RequestReview(t.Context(), ReviewInput{
		GameName:        "Pendulum Clock",
		Concept:         "period of a pendulum",
		Phase:           phase.PhaseTwistReview,
		PredictedOption: "It swings faster",
		CorrectOption:   "The period does not change",
		Twist:           true,
	})
	waitForReview(t, svc)

	if mock.CallCount() != 1 {
		t.Fatalf("CallCount = %d, want 1", mock.CallCount())
	}
	msg := mock.Calls[0].Messages[0].Content
	for _, want := range []string{"Pendulum Clock", "It swings faster", "The period does not change", "twist"} {
		if !strings.Contains(msg, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
	if mock.Calls[0].Schema != ReviewSchema {
		t.Error("expected review schema on request")
	}
}

func TestConsumeReview_EmptyBeforeRequest(t *testing.T) {
	svc := NewService(llm.NewMockProvider(), DefaultConfig())
	if _, ok := svc.ConsumeReview(); ok {
		t.Error("expected no review before any request")
	}
}

func TestConsumeReview_ClearsSlot(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validReviewJSON()})
	svc := NewService(mock, DefaultConfig())

	svc.RequestReview(t.Context(), ReviewInput{GameName: "Skydiver"})
	waitForReview(t, svc)

	if _, ok := svc.ConsumeReview(); ok {
		t.Error("expected slot to be cleared after consumption")
	}
}

func TestService_GenerationFailure(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	svc := NewService(mock, DefaultConfig())

	svc.RequestReview(t.Context(), ReviewInput{GameName: "Skydiver"})

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		svc.mu.Lock()
		ready := svc.ready
		svc.mu.Unlock()
		if ready {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}

	if review, ok := svc.ConsumeReview(); ok || review != nil {
		t.Error("expected no review after provider failure")
	}
}

func TestAsk(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"headline": "Drag grows with the square of speed", "explanation": "Doubling speed quadruples drag force."}`),
	})
	svc := NewService(mock, DefaultConfig())

	ans, err := svc.Ask(t.Context(), "Why does drag grow so fast with speed?")
	if err != nil {
		t.Fatalf("ask: %v", err)
	}
	if ans.Headline == "" || ans.Explanation == "" {
		t.Error("expected non-empty answer")
	}
	if mock.Calls[0].Schema != AnswerSchema {
		t.Error("expected answer schema on request")
	}
}

func TestAvailable(t *testing.T) {
	var nilSvc *Service
	if nilSvc.Available() {
		t.Error("nil service should not be available")
	}
	if NewService(nil, DefaultConfig()).Available() {
		t.Error("service without provider should not be available")
	}
	if !NewService(llm.NewMockProvider(), DefaultConfig()).Available() {
		t.Error("service with provider should be available")
	}
}
