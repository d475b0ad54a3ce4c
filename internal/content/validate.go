package content

import (
	"fmt"
	"strings"
)

var validModels = map[Model]bool{
	ModelCollision: true,
	ModelPendulum:  true,
	ModelDrag:      true,
	ModelInverter:  true,
}

// validateGames performs all structural checks on the catalog. Returns a
// combined error describing every problem found, or nil if valid.
func validateGames(games []Game) error {
	var errs []string

	if len(games) == 0 {
		errs = append(errs, "catalog has no games")
	}

	idSet := make(map[string]bool, len(games))
	for _, g := range games {
		if g.ID == "" {
			errs = append(errs, "game with empty ID")
			continue
		}
		if idSet[g.ID] {
			errs = append(errs, fmt.Sprintf("duplicate game ID: %q", g.ID))
		}
		idSet[g.ID] = true

		errs = append(errs, validateGame(g)...)
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

func validateGame(g Game) []string {
	var errs []string
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Sprintf("game %q: ", g.ID)+fmt.Sprintf(format, args...))
	}

	if g.Name == "" {
		bad("missing name")
	}
	if !validModels[g.Model] {
		bad("unknown model %q", g.Model)
	}
	if g.Hook == "" {
		bad("missing hook text")
	}
	if g.Review == "" {
		bad("missing review text")
	}
	if g.Twist.Intro == "" {
		bad("missing twist intro")
	}
	if g.Twist.Review == "" {
		bad("missing twist review text")
	}
	if g.Mastery == "" {
		bad("missing mastery text")
	}
	if len(g.Transfer) == 0 {
		bad("no transfer prompts")
	}
	if len(g.Params) == 0 {
		bad("no experiment parameters")
	}
	if len(g.Twist.Params) == 0 {
		bad("no twist experiment parameters")
	}
	if len(g.Test) < 3 {
		bad("test needs at least 3 questions, has %d", len(g.Test))
	}

	errs = append(errs, validateQuestion(g.ID, "predict", g.Predict)...)
	errs = append(errs, validateQuestion(g.ID, "twist predict", g.Twist.Predict)...)
	for i, q := range g.Test {
		errs = append(errs, validateQuestion(g.ID, fmt.Sprintf("test[%d]", i), q)...)
	}

	for _, spec := range append(append([]ParamSpec{}, g.Params...), g.Twist.Params...) {
		errs = append(errs, validateParam(g.ID, spec)...)
	}

	return errs
}

func validateQuestion(gameID, where string, q Question) []string {
	var errs []string
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Sprintf("game %q %s: ", gameID, where)+fmt.Sprintf(format, args...))
	}

	if q.Prompt == "" {
		bad("empty prompt")
	}
	if len(q.Options) < 2 || len(q.Options) > 4 {
		bad("needs 2-4 options, has %d", len(q.Options))
	}
	if q.Answer < 0 || q.Answer >= len(q.Options) {
		bad("answer index %d out of range", q.Answer)
	}
	if q.Explanation == "" {
		bad("empty explanation")
	}
	return errs
}

func validateParam(gameID string, spec ParamSpec) []string {
	var errs []string
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Sprintf("game %q param %q: ", gameID, spec.Name)+fmt.Sprintf(format, args...))
	}

	if spec.Name == "" {
		bad("empty name")
	}
	if spec.Min >= spec.Max {
		bad("min %v >= max %v", spec.Min, spec.Max)
	}
	if spec.Step <= 0 {
		bad("step %v must be positive", spec.Step)
	}
	if spec.Default < spec.Min || spec.Default > spec.Max {
		bad("default %v outside [%v, %v]", spec.Default, spec.Min, spec.Max)
	}
	return errs
}
