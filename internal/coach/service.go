package coach

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/nikverma/physlab/internal/llm"
)

// Service generates experiment reviews asynchronously.
type Service struct {
	provider llm.Provider
	cfg      Config

	mu      sync.Mutex
	pending *Review
	err     error
	ready   bool
}

// NewService creates a coach service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Available reports whether a provider is configured.
func (s *Service) Available() bool {
	return s != nil && s.provider != nil
}

// RequestReview starts async review generation. Only one review is in-flight
// at a time — new requests replace pending ones.
func (s *Service) RequestReview(ctx context.Context, input ReviewInput) {
	go func() {
		review, err := s.generate(ctx, input)
		s.mu.Lock()
		defer s.mu.Unlock()
		s.pending = review
		s.err = err
		s.ready = true
	}()
}

// ConsumeReview returns the pending review if one is ready.
// Returns (nil, false) if no review is ready yet.
// After consumption, the pending slot is cleared.
func (s *Service) ConsumeReview() (*Review, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return nil, false
	}
	review := s.pending
	s.pending = nil
	s.ready = false
	s.err = nil
	return review, review != nil
}

type reviewOutput struct {
	Headline         string `json:"headline"`
	Explanation      string `json:"explanation"`
	EverydayExample  string `json:"everyday_example"`
	FollowUpQuestion string `json:"follow_up_question"`
}

func (s *Service) generate(ctx context.Context, input ReviewInput) (*Review, error) {
	purpose := "review"
	if input.Twist {
		purpose = "twist_review"
	}
	ctx = llm.WithPurpose(ctx, purpose)

	req := llm.Request{
		System: reviewSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildReviewUserMessage(input)},
		},
		Schema:      ReviewSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("review generation: %w", err)
	}

	var out reviewOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse review response: %w", err)
	}

	return &Review{
		GameID:           input.GameName,
		Headline:         out.Headline,
		Explanation:      out.Explanation,
		EverydayExample:  out.EverydayExample,
		FollowUpQuestion: out.FollowUpQuestion,
	}, nil
}

type answerOutput struct {
	Headline    string `json:"headline"`
	Explanation string `json:"explanation"`
}

// Ask answers a free-form concept question synchronously. Used by the CLI.
func (s *Service) Ask(ctx context.Context, question string) (*Answer, error) {
	ctx = llm.WithPurpose(ctx, "ask")

	req := llm.Request{
		System: answerSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildAnswerUserMessage(question)},
		},
		Schema:      AnswerSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("answer generation: %w", err)
	}

	var out answerOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse answer response: %w", err)
	}

	return &Answer{Headline: out.Headline, Explanation: out.Explanation}, nil
}
