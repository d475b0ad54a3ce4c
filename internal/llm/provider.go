package llm

import (
	"context"
	"encoding/json"
)

// Provider is what the coach talks to. Implementations wrap one vendor
// SDK each; decorators add retry and event logging around them.
type Provider interface {
	// Generate sends one prompt and returns the model's output. When the
	// request carries a Schema, Content is JSON validated against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID reports the model this provider is configured for.
	ModelID() string
}

// Request describes one generation call.
type Request struct {
	// System sets the coach persona and output constraints.
	System string

	// Messages is the conversation so far. Reviews are single-turn, so
	// this is usually one user message carrying the lab context.
	Messages []Message

	// Schema, when set, makes the provider use its structured output
	// mechanism and the response gets validated against it. Nil means
	// free text.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature in 0.0 to 1.0. Zero means deterministic.
	Temperature float64
}

// Message is one turn of conversation.
type Message struct {
	Role    Role
	Content string
}

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema names and defines the JSON shape a response must take.
type Schema struct {
	// Name identifies the schema to the provider and keys the compile
	// cache. Kebab-case, e.g. "phase-review".
	Name string

	// Description tells the model what the structure is for.
	Description string

	// Definition is the JSON Schema document as a map.
	Definition map[string]any
}

// Response is the model's answer plus accounting.
type Response struct {
	// Content is the generated output. Validated JSON when the request
	// had a Schema, raw text otherwise.
	Content json.RawMessage

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized across vendors: "end", "max_tokens",
	// "error".
	StopReason string
}

// Usage tracks token consumption for one request. The logging decorator
// persists it; the `coach usage` report sums it.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
