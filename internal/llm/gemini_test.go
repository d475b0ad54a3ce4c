package llm

import (
	"testing"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.5-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"}, // pass-through
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, geminiModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestBuildGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"headline": map[string]any{"type": "string"},
			"score":    map[string]any{"type": "integer"},
			"verdict":  map[string]any{"type": "string", "enum": []any{"right", "wrong", "partial"}},
			"readings": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "number"},
			},
		},
		"required": []any{"headline", "score"},
	}

	schema := buildGeminiSchema(def)

	if schema.Type != "OBJECT" {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	if len(schema.Properties) != 4 {
		t.Fatalf("expected 4 properties, got %d", len(schema.Properties))
	}
	if schema.Properties["headline"].Type != "STRING" {
		t.Fatalf("expected STRING for headline, got %s", schema.Properties["headline"].Type)
	}
	if schema.Properties["score"].Type != "INTEGER" {
		t.Fatalf("expected INTEGER for score, got %s", schema.Properties["score"].Type)
	}
	if len(schema.Properties["verdict"].Enum) != 3 {
		t.Fatalf("expected 3 enum values, got %d", len(schema.Properties["verdict"].Enum))
	}
	if schema.Properties["readings"].Type != "ARRAY" {
		t.Fatalf("expected ARRAY for readings, got %s", schema.Properties["readings"].Type)
	}
	if schema.Properties["readings"].Items.Type != "NUMBER" {
		t.Fatalf("expected NUMBER for readings items, got %s", schema.Properties["readings"].Items.Type)
	}
	if len(schema.Required) != 2 {
		t.Fatalf("expected 2 required fields, got %d", len(schema.Required))
	}
}
