package content

import (
	"strings"
	"testing"
)

func TestEmbeddedCatalogLoads(t *testing.T) {
	games := AllGames()
	if len(games) != 4 {
		t.Fatalf("catalog has %d games, want 4", len(games))
	}

	wantIDs := []string{"crash-cart", "pendulum-clock", "inverter-wave", "skydiver"}
	for i, id := range wantIDs {
		if games[i].ID != id {
			t.Errorf("games[%d].ID = %q, want %q", i, games[i].ID, id)
		}
	}
}

func TestGetGame(t *testing.T) {
	g, err := GetGame("pendulum-clock")
	if err != nil {
		t.Fatalf("GetGame: %v", err)
	}
	if g.Model != ModelPendulum {
		t.Errorf("Model = %q, want pendulum", g.Model)
	}

	if _, err := GetGame("quantum-leap"); err == nil {
		t.Error("expected error for unknown game")
	}
}

func TestEveryGameHasFullPhaseContent(t *testing.T) {
	for _, g := range AllGames() {
		if g.Hook == "" || g.Review == "" || g.Mastery == "" {
			t.Errorf("game %q: missing phase text", g.ID)
		}
		if len(g.Test) < 3 {
			t.Errorf("game %q: test has %d questions, want >= 3", g.ID, len(g.Test))
		}
		if len(g.Transfer) == 0 {
			t.Errorf("game %q: no transfer prompts", g.ID)
		}
		if g.Twist.Intro == "" || g.Twist.Review == "" {
			t.Errorf("game %q: incomplete twist", g.ID)
		}
	}
}

func TestLoadRejectsBadCatalog(t *testing.T) {
	cases := []struct {
		name string
		yaml string
		want string
	}{
		{
			name: "empty",
			yaml: "games: []",
			want: "no games",
		},
		{
			name: "duplicate ids",
			yaml: `
games:
  - id: dup
  - id: dup
`,
			want: "duplicate game ID",
		},
		{
			name: "answer out of range",
			yaml: `
games:
  - id: g
    name: G
    model: pendulum
    hook: h
    review: r
    mastery: m
    transfer: [x]
    params: [{name: length, min: 0, max: 1, step: 0.1, default: 0.5}]
    predict: {prompt: p, options: [a, b], answer: 5, explanation: e}
    twist:
      intro: i
      review: r
      params: [{name: gravity, min: 1, max: 2, step: 0.1, default: 1.5}]
      predict: {prompt: p, options: [a, b], answer: 0, explanation: e}
    test:
      - {prompt: p, options: [a, b], answer: 0, explanation: e}
      - {prompt: p, options: [a, b], answer: 1, explanation: e}
      - {prompt: p, options: [a, b], answer: 0, explanation: e}
`,
			want: "answer index 5 out of range",
		},
		{
			name: "inverted param bounds",
			yaml: `
games:
  - id: g
    name: G
    model: drag
    hook: h
    review: r
    mastery: m
    transfer: [x]
    params: [{name: mass, min: 10, max: 1, step: 0.5, default: 5}]
    predict: {prompt: p, options: [a, b], answer: 0, explanation: e}
    twist:
      intro: i
      review: r
      params: [{name: area, min: 1, max: 2, step: 0.1, default: 1.5}]
      predict: {prompt: p, options: [a, b], answer: 0, explanation: e}
    test:
      - {prompt: p, options: [a, b], answer: 0, explanation: e}
      - {prompt: p, options: [a, b], answer: 1, explanation: e}
      - {prompt: p, options: [a, b], answer: 0, explanation: e}
`,
			want: "min 10 >= max 1",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load([]byte(tc.yaml))
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q does not mention %q", err.Error(), tc.want)
			}
		})
	}
}

func TestParamNamesMatchModelParams(t *testing.T) {
	// Slider names must bind to real model parameters; the lab screen
	// relies on this at runtime.
	modelParams := map[Model]map[string]bool{
		ModelCollision: {"mass_a": true, "mass_b": true, "velocity_a": true, "velocity_b": true},
		ModelPendulum:  {"length": true, "gravity": true},
		ModelDrag:      {"mass": true, "air_density": true, "drag_coeff": true, "area": true, "gravity": true},
		ModelInverter:  {"bus_voltage": true, "mod_index": true, "frequency": true, "carrier_hz": true},
	}

	for _, g := range AllGames() {
		valid := modelParams[g.Model]
		for _, spec := range append(append([]ParamSpec{}, g.Params...), g.Twist.Params...) {
			if !valid[spec.Name] {
				t.Errorf("game %q: param %q is not a %s model parameter", g.ID, spec.Name, g.Model)
			}
		}
	}
}
