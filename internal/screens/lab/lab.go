package lab

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/nikverma/physlab/internal/coach"
	"github.com/nikverma/physlab/internal/content"
	sess "github.com/nikverma/physlab/internal/lab"
	"github.com/nikverma/physlab/internal/phase"
	"github.com/nikverma/physlab/internal/progress"
	"github.com/nikverma/physlab/internal/router"
	"github.com/nikverma/physlab/internal/screen"
	"github.com/nikverma/physlab/internal/screens/summary"
	"github.com/nikverma/physlab/internal/store"
	"github.com/nikverma/physlab/internal/ui/components"
	"github.com/nikverma/physlab/internal/ui/layout"
)

const reviewPollInterval = 200 * time.Millisecond

// LabScreen drives one learner through a mini-lab's ten phases.
type LabScreen struct {
	session *sess.Session
	prog    *progress.Service
	started time.Time

	// Sound rings the terminal bell on correct answers.
	Sound bool

	dotLabels []string

	// predict and test phases share the multiple-choice widget.
	mc       components.MultiChoice
	answered bool

	sliders []components.Slider
	focus   int

	// editing replaces the focused slider with exact-value entry.
	editing bool
	input   components.TextInput

	testFeedback    bool
	lastTestCorrect bool

	waitingReview bool
	spin          int

	notice      string
	confirmQuit bool
	errMsg      string
}

var _ screen.Screen = (*LabScreen)(nil)
var _ screen.KeyHintProvider = (*LabScreen)(nil)

// New builds the screen and its underlying session.
func New(game content.Game, prog *progress.Service, events store.EventRepo, coachSvc *coach.Service, opts sess.Options) (*LabScreen, error) {
	session, err := sess.NewSession(game, prog, events, coachSvc, opts)
	if err != nil {
		return nil, err
	}

	l := &LabScreen{
		session: session,
		prog:    prog,
		started: time.Now(),
	}
	for _, p := range phase.Sequence() {
		l.dotLabels = append(l.dotLabels, p.Label())
	}
	l.syncPhase()
	return l, nil
}

func (l *LabScreen) Init() tea.Cmd {
	session := l.session
	return func() tea.Msg {
		return labStartedMsg{Err: session.Start(context.Background())}
	}
}

func (l *LabScreen) Title() string {
	return l.session.Game.Name
}

func (l *LabScreen) KeyHints() []layout.KeyHint {
	if l.confirmQuit {
		return []layout.KeyHint{
			{Key: "Y", Description: "End lab"},
			{Key: "N", Description: "Keep going"},
		}
	}

	hints := []layout.KeyHint{}
	switch l.session.Current() {
	case phase.PhasePredict, phase.PhaseTwistPredict:
		if l.answered {
			hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Continue"})
		} else {
			hints = append(hints,
				layout.KeyHint{Key: "↑↓", Description: "Choose"},
				layout.KeyHint{Key: "Enter", Description: "Lock in"})
		}
	case phase.PhasePlay, phase.PhaseTwistPlay:
		if l.editing {
			return []layout.KeyHint{
				{Key: "Enter", Description: "Set value"},
				{Key: "Esc", Description: "Cancel"},
			}
		}
		hints = append(hints,
			layout.KeyHint{Key: "←→", Description: "Adjust"},
			layout.KeyHint{Key: "Tab", Description: "Next slider"},
			layout.KeyHint{Key: "E", Description: "Type value"},
			layout.KeyHint{Key: "Enter", Description: "Continue"})
	case phase.PhaseTest:
		if l.testFeedback {
			hints = append(hints, layout.KeyHint{Key: "any key", Description: "Next"})
		} else if l.session.TestDone() {
			hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Continue"})
		} else {
			hints = append(hints,
				layout.KeyHint{Key: "↑↓", Description: "Choose"},
				layout.KeyHint{Key: "Enter", Description: "Answer"})
		}
	case phase.PhaseMastery:
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Run it again"})
	default:
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Continue"})
	}

	hints = append(hints,
		layout.KeyHint{Key: "1-9,0", Description: "Jump back"},
		layout.KeyHint{Key: "Esc", Description: "End lab"})
	return hints
}

func (l *LabScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case labStartedMsg:
		if msg.Err != nil {
			l.errMsg = msg.Err.Error()
		}
		return l, nil

	case reviewPollMsg:
		return l, l.pollReview()

	case tea.KeyMsg:
		return l.handleKey(msg)
	}
	return l, nil
}

func (l *LabScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if l.errMsg != "" {
		return l, l.endLab()
	}

	if l.confirmQuit {
		switch key {
		case "y", "Y":
			l.confirmQuit = false
			return l, l.endLab()
		case "n", "N", "esc":
			l.confirmQuit = false
		}
		return l, nil
	}

	if key == "esc" {
		if l.editing {
			l.editing = false
			return l, nil
		}
		l.confirmQuit = true
		return l, nil
	}

	// Number keys jump directly; only the successor or a visited phase is
	// actually reachable, everything else just surfaces a notice.
	if idx, ok := phaseKeyIndex(key); ok && !l.editing {
		return l, l.request(func() error {
			return l.session.JumpTo(phase.Sequence()[idx])
		})
	}

	switch l.session.Current() {
	case phase.PhasePredict, phase.PhaseTwistPredict:
		return l.handlePredictKey(msg, key)
	case phase.PhasePlay, phase.PhaseTwistPlay:
		return l.handlePlayKey(msg, key)
	case phase.PhaseTransfer:
		return l.handleTransferKey(key)
	case phase.PhaseTest:
		return l.handleTestKey(msg, key)
	default:
		if key == "enter" {
			return l, l.request(l.session.Advance)
		}
	}
	return l, nil
}

func (l *LabScreen) handlePredictKey(msg tea.KeyMsg, key string) (screen.Screen, tea.Cmd) {
	if l.answered {
		if key == "enter" {
			return l, l.request(l.session.Advance)
		}
		return l, nil
	}

	l.mc, _ = l.mc.Update(msg)
	if l.mc.Submitted {
		l.answered = true
		correct, err := l.session.RecordPrediction(l.mc.ChosenIndex)
		if err != nil {
			l.notice = err.Error()
		} else if correct {
			return l, l.bell()
		}
	}
	return l, nil
}

func (l *LabScreen) handlePlayKey(msg tea.KeyMsg, key string) (screen.Screen, tea.Cmd) {
	if l.editing {
		return l.handleValueEntry(msg, key)
	}

	switch key {
	case "enter":
		return l, l.request(l.session.Advance)
	case "e":
		if l.focus < len(l.sliders) {
			spec := l.session.ActiveParams()[l.focus]
			l.input = components.NewTextInput(spec.Label, false, 12)
			l.editing = true
			return l, l.input.Init()
		}
		return l, nil
	case "tab", "down", "j":
		if len(l.sliders) > 0 {
			l.setFocus((l.focus + 1) % len(l.sliders))
		}
		return l, nil
	case "shift+tab", "up", "k":
		if len(l.sliders) > 0 {
			l.setFocus((l.focus + len(l.sliders) - 1) % len(l.sliders))
		}
		return l, nil
	}

	if l.focus < len(l.sliders) {
		var cmd tea.Cmd
		l.sliders[l.focus], cmd = l.sliders[l.focus].Update(msg)
		if l.sliders[l.focus].Changed {
			specs := l.session.ActiveParams()
			l.session.AdjustParam(specs[l.focus].Name, l.sliders[l.focus].Value)
			l.notice = ""
		}
		return l, cmd
	}
	return l, nil
}

// handleValueEntry drives the exact-value input for the focused slider.
// Out-of-range or unparseable values stay in the input, marked invalid.
func (l *LabScreen) handleValueEntry(msg tea.KeyMsg, key string) (screen.Screen, tea.Cmd) {
	if key != "enter" {
		var cmd tea.Cmd
		l.input, cmd = l.input.Update(msg)
		return l, cmd
	}

	spec := l.session.ActiveParams()[l.focus]
	v, err := strconv.ParseFloat(strings.TrimSpace(l.input.Value()), 64)
	if err != nil || v < spec.Min || v > spec.Max {
		l.input.Submit(false)
		return l, nil
	}

	l.sliders[l.focus].Value = v
	l.session.AdjustParam(spec.Name, v)
	l.editing = false
	l.notice = ""
	return l, nil
}

func (l *LabScreen) handleTransferKey(key string) (screen.Screen, tea.Cmd) {
	prompts := l.session.Game.Transfer
	switch key {
	case "enter":
		if l.session.State.TransferIndex < len(prompts)-1 {
			l.session.State.TransferIndex++
			return l, nil
		}
		return l, l.request(l.session.Advance)
	case "left", "h":
		if l.session.State.TransferIndex > 0 {
			l.session.State.TransferIndex--
		}
	}
	return l, nil
}

func (l *LabScreen) handleTestKey(msg tea.KeyMsg, key string) (screen.Screen, tea.Cmd) {
	if l.testFeedback {
		l.testFeedback = false
		l.syncTestQuestion()
		return l, nil
	}

	if l.session.TestDone() {
		if key == "enter" {
			return l, l.request(l.session.Advance)
		}
		return l, nil
	}

	l.mc, _ = l.mc.Update(msg)
	if l.mc.Submitted {
		correct, _, err := l.session.AnswerTestQuestion(l.mc.ChosenIndex)
		if err != nil {
			l.notice = err.Error()
			return l, nil
		}
		l.lastTestCorrect = correct
		l.testFeedback = true
		if correct {
			return l, l.bell()
		}
	}
	return l, nil
}

// bell rings the terminal bell when sound is on.
func (l *LabScreen) bell() tea.Cmd {
	if !l.Sound {
		return nil
	}
	return func() tea.Msg {
		fmt.Fprint(os.Stdout, "\a")
		return nil
	}
}

// request runs a transition attempt and translates the outcome for display.
// Debounced presses are dropped without comment.
func (l *LabScreen) request(fn func() error) tea.Cmd {
	err := fn()
	switch {
	case err == nil:
		l.notice = ""
		return l.syncPhase()
	case errors.Is(err, phase.ErrDebounced):
		return nil
	case errors.Is(err, phase.ErrGateNotSatisfied):
		l.notice = gateNotice(l.session.Current())
	case errors.Is(err, phase.ErrNonSequentialJump):
		l.notice = "That phase is locked until you reach it."
	default:
		l.notice = err.Error()
	}
	return nil
}

// syncPhase rebuilds the per-phase widgets after an accepted transition.
func (l *LabScreen) syncPhase() tea.Cmd {
	cur := l.session.Current()
	state := l.session.State

	switch cur {
	case phase.PhasePredict, phase.PhaseTwistPredict:
		q, err := l.session.ActiveQuestion()
		if err != nil {
			return nil
		}
		choice := state.PredictionChoice
		if cur == phase.PhaseTwistPredict {
			choice = state.TwistPredictionChoice
		}
		l.mc = components.NewMultiChoice(q.Prompt, q.Options, q.Answer)
		l.answered = choice >= 0
		if l.answered {
			// Back-jump after answering: show the locked-in choice.
			l.mc.Submitted = true
			l.mc.ChosenIndex = choice
		}

	case phase.PhasePlay, phase.PhaseTwistPlay:
		l.buildSliders()

	case phase.PhaseReview, phase.PhaseTwistReview:
		if l.session.ActiveReview() == nil && l.session.CoachAvailable() {
			l.session.RequestReview(context.Background(), cur == phase.PhaseTwistReview)
			l.waitingReview = true
			return l.reviewTick()
		}

	case phase.PhaseTest:
		l.testFeedback = false
		l.syncTestQuestion()
	}
	return nil
}

func (l *LabScreen) buildSliders() {
	params := l.session.Model().Params()
	specs := l.session.ActiveParams()
	l.sliders = l.sliders[:0]
	for _, spec := range specs {
		value := spec.Default
		if v, ok := params[spec.Name]; ok {
			value = v
		}
		l.sliders = append(l.sliders, components.NewSlider(
			spec.Label, spec.Unit, spec.Min, spec.Max, spec.Step, value, 30))
	}
	l.editing = false
	l.setFocus(0)
}

func (l *LabScreen) setFocus(i int) {
	for j := range l.sliders {
		l.sliders[j].Focused = j == i
	}
	l.focus = i
}

func (l *LabScreen) syncTestQuestion() {
	if l.session.TestDone() {
		return
	}
	q := l.session.Game.Test[l.session.State.QuizIndex]
	l.mc = components.NewMultiChoice(q.Prompt, q.Options, q.Answer)
}

func (l *LabScreen) reviewTick() tea.Cmd {
	return tea.Tick(reviewPollInterval, func(t time.Time) tea.Msg {
		return reviewPollMsg(t)
	})
}

func (l *LabScreen) pollReview() tea.Cmd {
	if !l.waitingReview {
		return nil
	}
	if _, ok := l.session.ConsumeReview(); ok {
		l.waitingReview = false
		return nil
	}
	l.spin++
	return l.reviewTick()
}

// endLab records the session end and swaps in the summary screen.
func (l *LabScreen) endLab() tea.Cmd {
	session := l.session
	result := summary.Result{
		GameName:        session.Game.Name,
		Duration:        time.Since(l.started),
		PhasesCompleted: l.prog.Get(session.Game.ID).CompletedCount(),
		TotalPhases:     len(phase.Sequence()),
		TestDone:        session.TestDone(),
		TestScorePct:    session.TestScorePct(),
		Passed:          session.Passed(),
		Mastered:        l.prog.Get(session.Game.ID).IsMastered(),
	}
	if r := session.State.TwistReview; r != nil {
		result.ReviewHeadline = r.Headline
	} else if r := session.State.Review; r != nil {
		result.ReviewHeadline = r.Headline
	}

	return func() tea.Msg {
		_ = session.End(context.Background())
		return router.ReplaceScreenMsg{Screen: summary.New(result)}
	}
}

// gateNotice translates a gate rejection into phase-appropriate guidance.
func gateNotice(p phase.Phase) string {
	switch p {
	case phase.PhasePredict, phase.PhaseTwistPredict:
		return "Lock in a prediction first."
	case phase.PhasePlay, phase.PhaseTwistPlay:
		return "Try moving a slider before you go on."
	case phase.PhaseTransfer:
		return "Walk through every example first."
	case phase.PhaseTest:
		return "Finish the quiz first."
	default:
		return "Not yet."
	}
}

// phaseKeyIndex maps the number row to phase indices: 1..9 then 0 for the
// tenth phase.
func phaseKeyIndex(key string) (int, bool) {
	if len(key) != 1 || key[0] < '0' || key[0] > '9' {
		return 0, false
	}
	if key == "0" {
		return 9, true
	}
	return int(key[0] - '1'), true
}
