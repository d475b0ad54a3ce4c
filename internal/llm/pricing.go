package llm

// ModelCost holds a model's list price in USD per million tokens. The
// `coach usage` report multiplies these against the token counts logged
// with each request.
type ModelCost struct {
	InputPerMTok  float64
	OutputPerMTok float64
}

// Cost returns the USD cost of a single request.
func (c ModelCost) Cost(inputTokens, outputTokens int) float64 {
	return float64(inputTokens)*c.InputPerMTok/1_000_000 +
		float64(outputTokens)*c.OutputPerMTok/1_000_000
}

// LookupCost returns the pricing for a model ID, or nil when the model is
// not in the table. Callers render unknown models without a cost column.
func LookupCost(modelID string) *ModelCost {
	if c, ok := modelCosts[modelID]; ok {
		return &c
	}
	return nil
}

// modelCosts covers the models the coach can be pointed at: the alias
// targets each provider resolves to, plus the common direct IDs worth
// setting via config.toml or PHYSLAB_*_MODEL. Prices from models.dev,
// checked 2026-08-20.
var modelCosts = map[string]ModelCost{
	// Anthropic
	"claude-haiku-4-5-20251001": {1, 5},
	"claude-haiku-4-5":          {1, 5},
	"claude-sonnet-4-20250514":  {3, 15},
	"claude-sonnet-4-5":         {3, 15},
	"claude-opus-4-5":           {5, 25},

	// OpenAI
	"gpt-4o":       {2.5, 10},
	"gpt-4o-mini":  {0.15, 0.6},
	"gpt-4.1-mini": {0.4, 1.6},
	"gpt-5-mini":   {0.25, 2},

	// Google (Gemini)
	"gemini-2.0-flash":    {0.1, 0.4},
	"gemini-2.5-flash":    {0.3, 2.5},
	"gemini-2.5-pro":      {1.25, 10},
	"gemini-flash-latest": {0.3, 2.5},

	// Offline test provider, free by definition.
	"mock": {0, 0},
}
