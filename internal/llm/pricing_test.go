package llm

import (
	"math"
	"testing"
)

func TestLookupCost(t *testing.T) {
	for _, id := range []string{
		"claude-haiku-4-5-20251001",
		"gpt-4o-mini",
		"gemini-2.0-flash",
		"mock",
	} {
		if LookupCost(id) == nil {
			t.Errorf("LookupCost(%q) = nil, want a price", id)
		}
	}

	if got := LookupCost("some-unlisted-model"); got != nil {
		t.Errorf("LookupCost for unknown model = %v, want nil", got)
	}
}

func TestModelCost_Cost(t *testing.T) {
	c := ModelCost{InputPerMTok: 1, OutputPerMTok: 5}

	got := c.Cost(2_000_000, 1_000_000)
	if math.Abs(got-7) > 1e-9 {
		t.Errorf("Cost(2M, 1M) = %g, want 7", got)
	}

	if got := c.Cost(0, 0); got != 0 {
		t.Errorf("Cost(0, 0) = %g, want 0", got)
	}

	if got := LookupCost("mock").Cost(1_000_000, 1_000_000); got != 0 {
		t.Errorf("mock cost = %g, want 0", got)
	}
}
