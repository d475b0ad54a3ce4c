package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func reviewSchema() *Schema {
	return &Schema{
		Name:        "phase-review",
		Description: "A debrief of the prediction phase",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"headline": map[string]any{"type": "string"},
				"score":    map[string]any{"type": "integer", "minimum": 0},
				"verdict":  map[string]any{"type": "string", "enum": []any{"right", "wrong", "partial"}},
			},
			"required": []any{"headline", "score"},
		},
	}
}

func TestValidateResponse_ValidJSON(t *testing.T) {
	raw := json.RawMessage(`{"headline":"Momentum carries through","score":3,"verdict":"right"}`)
	if err := validateResponse(reviewSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_ValidWithoutOptional(t *testing.T) {
	raw := json.RawMessage(`{"headline":"Close call","score":2}`)
	if err := validateResponse(reviewSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_MissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"headline":"No score here"}`)
	err := validateResponse(reviewSchema(), raw)
	if err == nil {
		t.Fatal("expected error for missing required field")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_WrongType(t *testing.T) {
	raw := json.RawMessage(`{"headline":"Bad score","score":"three"}`)
	err := validateResponse(reviewSchema(), raw)
	if err == nil {
		t.Fatal("expected error for wrong type")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_InvalidEnum(t *testing.T) {
	raw := json.RawMessage(`{"headline":"Odd verdict","score":1,"verdict":"maybe"}`)
	err := validateResponse(reviewSchema(), raw)
	if err == nil {
		t.Fatal("expected error for invalid enum value")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_MalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{not json}`)
	err := validateResponse(reviewSchema(), raw)
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_EmptyResponse(t *testing.T) {
	raw := json.RawMessage(``)
	if err := validateResponse(reviewSchema(), raw); err == nil {
		t.Fatal("expected error for empty response")
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	raw := json.RawMessage(`{"anything":"goes"}`)
	if err := validateResponse(nil, raw); err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}

func TestValidateResponse_NestedObjects(t *testing.T) {
	schema := &Schema{
		Name:        "experiment-report",
		Description: "An experiment run with its readings",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"experiment": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"name": map[string]any{"type": "string"},
					},
					"required": []any{"name"},
				},
				"readings": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "number"},
				},
			},
			"required": []any{"experiment", "readings"},
		},
	}

	valid := json.RawMessage(`{"experiment":{"name":"Crash Cart"},"readings":[1.2,0.8,2.4]}`)
	if err := validateResponse(schema, valid); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	invalid := json.RawMessage(`{"experiment":{"name":"Crash Cart"},"readings":["fast","slow"]}`)
	if err := validateResponse(schema, invalid); err == nil {
		t.Fatal("expected error for wrong array item type")
	}
}
