// Package content holds the static mini-lab catalog: everything a lab shows
// the learner, phase by phase. The catalog is authored in games.yaml,
// embedded at build time, and validated on load.
package content

// Model names the physics model a game binds its experiment phases to.
type Model string

const (
	ModelCollision Model = "collision"
	ModelPendulum  Model = "pendulum"
	ModelDrag      Model = "drag"
	ModelInverter  Model = "inverter"
)

// Question is a multiple-choice prompt used by predict and test phases.
type Question struct {
	Prompt      string   `yaml:"prompt"`
	Options     []string `yaml:"options"`
	Answer      int      `yaml:"answer"` // index into Options
	Explanation string   `yaml:"explanation"`
}

// ParamSpec describes one slider in an experiment phase. Name must match a
// parameter of the game's physics model.
type ParamSpec struct {
	Name    string  `yaml:"name"`
	Label   string  `yaml:"label"`
	Unit    string  `yaml:"unit"`
	Min     float64 `yaml:"min"`
	Max     float64 `yaml:"max"`
	Step    float64 `yaml:"step"`
	Default float64 `yaml:"default"`
}

// Twist is the second pass through predict/play/review with a changed setup.
type Twist struct {
	Intro   string      `yaml:"intro"`
	Predict Question    `yaml:"predict"`
	Params  []ParamSpec `yaml:"params"`
	Review  string      `yaml:"review"`
}

// Game is one complete mini-lab: ten phases of content around one concept.
type Game struct {
	ID      string `yaml:"id"`
	Name    string `yaml:"name"`
	Tagline string `yaml:"tagline"`
	Concept string `yaml:"concept"`
	Model   Model  `yaml:"model"`

	Hook     string      `yaml:"hook"`
	Predict  Question    `yaml:"predict"`
	Params   []ParamSpec `yaml:"params"`
	Review   string      `yaml:"review"`
	Twist    Twist       `yaml:"twist"`
	Transfer []string    `yaml:"transfer"`
	Test     []Question  `yaml:"test"`
	Mastery  string      `yaml:"mastery"`
}

// PassPct is the test-phase score (percent correct) required before the
// mastery phase counts the game as mastered.
const PassPct = 70
