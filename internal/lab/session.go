package lab

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nikverma/physlab/internal/coach"
	"github.com/nikverma/physlab/internal/content"
	"github.com/nikverma/physlab/internal/phase"
	"github.com/nikverma/physlab/internal/physics"
	"github.com/nikverma/physlab/internal/progress"
	"github.com/nikverma/physlab/internal/store"
)

// ErrWrongPhase is returned when an input arrives in a phase that does not
// accept it, e.g. a prediction outside a predict phase.
var ErrWrongPhase = errors.New("input not valid in current phase")

// Options configures a lab session.
type Options struct {
	// DebounceWindow guards phase transitions against double key presses.
	// Zero disables debouncing.
	DebounceWindow time.Duration

	// Resume starts the session at the learner's saved resume point instead
	// of the hook.
	Resume bool

	// Clock overrides time.Now for tests.
	Clock func() time.Time

	// Sequence supplies the global event sequence for snapshot stamping.
	// Nil stamps snapshots with sequence 0.
	Sequence func(ctx context.Context) (int64, error)
}

// Session drives one learner through a mini-lab: it owns the phase
// controller, the physics model, and the run state, and forwards every
// accepted transition and answer to the event log.
type Session struct {
	Game      content.Game
	SessionID string
	State     *LabState

	ctrl      *phase.Debounced
	model     physics.Model
	prog      *progress.Service
	events    store.EventRepo
	coach     *coach.Service
	now       func() time.Time
	seq       func(ctx context.Context) (int64, error)
	ctx       context.Context
	started   time.Time
	enteredAt time.Time

	// reviewTwist marks whether the in-flight coach request is for the
	// twist review, so the consumed debrief lands in the right slot.
	reviewTwist bool
}

// NewSession builds a session for the given game.
func NewSession(game content.Game, prog *progress.Service, events store.EventRepo, coachSvc *coach.Service, opts Options) (*Session, error) {
	model, err := newModel(game.Model)
	if err != nil {
		return nil, err
	}
	applyDefaults(model, game.Params)

	now := opts.Clock
	if now == nil {
		now = time.Now
	}

	initial := phase.PhaseHook
	if opts.Resume {
		initial = prog.Get(game.ID).ResumePhase
	}

	s := &Session{
		Game:      game,
		SessionID: uuid.NewString(),
		State:     NewLabState(),
		model:     model,
		prog:      prog,
		events:    events,
		coach:     coachSvc,
		now:       now,
		seq:       opts.Sequence,
		ctx:       context.Background(),
		started:   now(),
		enteredAt: now(),
	}

	ctrl := phase.NewController(
		phase.WithInitial(initial),
		phase.WithClock(now),
	)
	s.registerGates(ctrl)
	ctrl.OnTransition(s.onTransition)
	s.ctrl = phase.NewDebounced(ctrl, opts.DebounceWindow, now)

	return s, nil
}

// registerGates wires the phases that demand learner input before moving on.
func (s *Session) registerGates(ctrl *phase.Controller) {
	ctrl.RegisterGate(phase.PhasePredict, func() bool {
		return s.State.PredictionMade()
	})
	ctrl.RegisterGate(phase.PhasePlay, func() bool {
		return s.State.PlayInteractions >= 1
	})
	ctrl.RegisterGate(phase.PhaseTwistPredict, func() bool {
		return s.State.TwistPredictionMade()
	})
	ctrl.RegisterGate(phase.PhaseTwistPlay, func() bool {
		return s.State.TwistInteractions >= 1
	})
	ctrl.RegisterGate(phase.PhaseTransfer, func() bool {
		return s.State.TransferIndex >= len(s.Game.Transfer)-1
	})
	ctrl.RegisterGate(phase.PhaseTest, func() bool {
		return s.TestDone()
	})
}

// onTransition runs synchronously inside every accepted transition.
func (s *Session) onTransition(ev phase.Event) {
	msInPhase := ev.At.Sub(s.enteredAt).Milliseconds()
	s.enteredAt = ev.At

	if s.events != nil {
		_ = s.events.AppendPhaseEvent(s.ctx, store.PhaseEventData{
			SessionID: s.SessionID,
			GameID:    s.Game.ID,
			FromPhase: string(ev.From),
			ToPhase:   string(ev.To),
			MsInPhase: msInPhase,
		})
	}
	s.prog.PhaseCompleted(s.Game.ID, ev.From, ev.To)

	switch ev.To {
	case phase.PhaseTwistPlay:
		// The twist swaps in its own parameter defaults.
		applyDefaults(s.model, s.Game.Twist.Params)
	case phase.PhaseMastery:
		if s.Passed() {
			s.prog.MarkMastered(s.Game.ID)
		}
	case phase.PhaseHook:
		if ev.From == phase.PhaseMastery {
			s.restart()
		}
	}
}

// restart resets the run state when the mastery phase loops back around.
// Progress records (completion flags, best score) survive the loop.
func (s *Session) restart() {
	s.State = NewLabState()
	model, err := newModel(s.Game.Model)
	if err == nil {
		s.model = model
		applyDefaults(s.model, s.Game.Params)
	}
	s.prog.StartAttempt(s.Game.ID)
}

// Current returns the active phase.
func (s *Session) Current() phase.Phase {
	return s.ctrl.Current()
}

// Sequence returns the full ordered phase list.
func (s *Session) Sequence() []phase.Phase {
	return s.ctrl.Sequence()
}

// IsComplete reports whether the run has worked through the whole sequence:
// every phase before the terminal one has been completed at least once.
func (s *Session) IsComplete() bool {
	seq := s.ctrl.Sequence()
	for _, p := range seq[:len(seq)-1] {
		if !s.ctrl.IsComplete(p) {
			return false
		}
	}
	return true
}

// Visited reports whether a phase has been entered this session.
func (s *Session) Visited(p phase.Phase) bool {
	return s.ctrl.Visited(p)
}

// Model returns the live physics model.
func (s *Session) Model() physics.Model {
	return s.model
}

// Advance requests a transition to the next phase in sequence.
func (s *Session) Advance() error {
	return s.ctrl.RequestTransition(s.successor())
}

// JumpTo requests a transition to an arbitrary phase. Only the successor and
// already-visited phases are reachable.
func (s *Session) JumpTo(p phase.Phase) error {
	return s.ctrl.RequestTransition(p)
}

func (s *Session) successor() phase.Phase {
	seq := s.ctrl.Sequence()
	cur := s.ctrl.Current()
	for i, p := range seq {
		if p == cur && i+1 < len(seq) {
			return seq[i+1]
		}
	}
	return seq[0]
}

// ActiveQuestion returns the prediction question for the current phase.
func (s *Session) ActiveQuestion() (content.Question, error) {
	switch s.Current() {
	case phase.PhasePredict:
		return s.Game.Predict, nil
	case phase.PhaseTwistPredict:
		return s.Game.Twist.Predict, nil
	default:
		return content.Question{}, ErrWrongPhase
	}
}

// RecordPrediction records the learner's choice for the current predict
// phase and reports whether it was correct.
func (s *Session) RecordPrediction(choice int) (bool, error) {
	q, err := s.ActiveQuestion()
	if err != nil {
		return false, err
	}
	if choice < 0 || choice >= len(q.Options) {
		return false, fmt.Errorf("choice %d out of range", choice)
	}

	correct := choice == q.Answer
	cur := s.Current()
	if cur == phase.PhasePredict {
		s.State.PredictionChoice = choice
		s.State.PredictionCorrect = correct
	} else {
		s.State.TwistPredictionChoice = choice
		s.State.TwistPredictionCorrect = correct
	}

	s.appendAnswer(cur, q.Prompt, choice, correct)
	return correct, nil
}

// AdjustParam applies a slider change to the model and counts the
// interaction toward the play gates.
func (s *Session) AdjustParam(name string, value float64) {
	s.model.SetParam(name, value)
	switch s.Current() {
	case phase.PhasePlay:
		s.State.PlayInteractions++
	case phase.PhaseTwistPlay:
		s.State.TwistInteractions++
	}
}

// ActiveParams returns the slider specs for the current play phase.
func (s *Session) ActiveParams() []content.ParamSpec {
	if s.Current() == phase.PhaseTwistPlay {
		return s.Game.Twist.Params
	}
	return s.Game.Params
}

// AnswerTestQuestion records an answer to the current test question.
// Returns whether it was correct and whether the test is now finished.
func (s *Session) AnswerTestQuestion(choice int) (correct, done bool, err error) {
	if s.Current() != phase.PhaseTest {
		return false, false, ErrWrongPhase
	}
	if s.TestDone() {
		return false, true, nil
	}

	q := s.Game.Test[s.State.QuizIndex]
	if choice < 0 || choice >= len(q.Options) {
		return false, false, fmt.Errorf("choice %d out of range", choice)
	}

	correct = choice == q.Answer
	s.State.QuizAnswers = append(s.State.QuizAnswers, choice)
	if correct {
		s.State.QuizCorrect++
	}
	s.State.QuizIndex++

	s.appendAnswer(phase.PhaseTest, q.Prompt, choice, correct)

	if s.TestDone() {
		s.prog.RecordTestScore(s.Game.ID, s.TestScorePct())
	}
	return correct, s.TestDone(), nil
}

// TestDone reports whether every test question has been answered.
func (s *Session) TestDone() bool {
	return s.State.QuizIndex >= len(s.Game.Test)
}

// TestScorePct returns the test score as a percentage of questions correct.
func (s *Session) TestScorePct() int {
	if len(s.Game.Test) == 0 {
		return 0
	}
	return s.State.QuizCorrect * 100 / len(s.Game.Test)
}

// Passed reports whether the test score meets the mastery threshold.
func (s *Session) Passed() bool {
	return s.TestDone() && s.TestScorePct() >= content.PassPct
}

// CoachAvailable reports whether a coach provider is configured.
func (s *Session) CoachAvailable() bool {
	return s.coach.Available()
}

// RequestReview asks the coach for a debrief of the phase just played.
// No-op when no coach provider is configured.
func (s *Session) RequestReview(ctx context.Context, twist bool) {
	if !s.coach.Available() {
		return
	}
	s.reviewTwist = twist
	s.coach.RequestReview(ctx, s.buildReviewInput(twist))
}

// ConsumeReview polls for a finished coach debrief and stores it in the
// slot of the review phase that requested it.
func (s *Session) ConsumeReview() (*coach.Review, bool) {
	if !s.coach.Available() {
		return nil, false
	}
	review, ok := s.coach.ConsumeReview()
	if ok {
		if s.reviewTwist {
			s.State.TwistReview = review
		} else {
			s.State.Review = review
		}
	}
	return review, ok
}

// ActiveReview returns the coach debrief for the current review phase,
// nil outside review phases or before the debrief arrives.
func (s *Session) ActiveReview() *coach.Review {
	switch s.Current() {
	case phase.PhaseReview:
		return s.State.Review
	case phase.PhaseTwistReview:
		return s.State.TwistReview
	default:
		return nil
	}
}

func (s *Session) buildReviewInput(twist bool) coach.ReviewInput {
	q := s.Game.Predict
	choice := s.State.PredictionChoice
	correct := s.State.PredictionCorrect
	cur := phase.PhaseReview
	if twist {
		q = s.Game.Twist.Predict
		choice = s.State.TwistPredictionChoice
		correct = s.State.TwistPredictionCorrect
		cur = phase.PhaseTwistReview
	}

	input := coach.ReviewInput{
		GameName:           s.Game.Name,
		Concept:            s.Game.Concept,
		Phase:              cur,
		PredictionPrompt:   q.Prompt,
		CorrectOption:      q.Options[q.Answer],
		PredictedRight:     correct,
		ObservationSummary: s.observationSummary(),
		Twist:              twist,
	}
	if choice >= 0 && choice < len(q.Options) {
		input.PredictedOption = q.Options[choice]
	}
	return input
}

// observationSummary renders the model's current readouts as prose for the
// coach prompt.
func (s *Session) observationSummary() string {
	out := ""
	for i, r := range s.model.Readouts() {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%s = %.3g %s", r.Label, r.Value, r.Unit)
	}
	return out
}

// Start records the session start and bumps the attempt counter.
func (s *Session) Start(ctx context.Context) error {
	s.prog.StartAttempt(s.Game.ID)
	if s.events == nil {
		return nil
	}
	return s.events.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID: s.SessionID,
		GameID:    s.Game.ID,
		Action:    "start",
	})
}

// End records the session end and persists a progress snapshot.
func (s *Session) End(ctx context.Context) error {
	if s.events != nil {
		err := s.events.AppendSessionEvent(ctx, store.SessionEventData{
			SessionID:       s.SessionID,
			GameID:          s.Game.ID,
			Action:          "end",
			PhasesCompleted: s.prog.Get(s.Game.ID).CompletedCount(),
			TestScorePct:    s.TestScorePct(),
			DurationSecs:    int(s.now().Sub(s.started).Seconds()),
		})
		if err != nil {
			return err
		}
	}

	var seqNum int64
	if s.seq != nil {
		if n, err := s.seq(ctx); err == nil {
			seqNum = n
		}
	}
	return s.prog.Persist(ctx, seqNum)
}

func (s *Session) appendAnswer(p phase.Phase, prompt string, choice int, correct bool) {
	if s.events == nil {
		return
	}
	_ = s.events.AppendAnswerEvent(s.ctx, store.AnswerEventData{
		SessionID:  s.SessionID,
		GameID:     s.Game.ID,
		Phase:      string(p),
		Question:   prompt,
		Selected:   choice,
		Correct:    correct,
		MsToAnswer: s.now().Sub(s.enteredAt).Milliseconds(),
	})
}

// newModel constructs the physics model behind a game.
func newModel(kind content.Model) (physics.Model, error) {
	switch kind {
	case content.ModelCollision:
		return physics.NewCollision(), nil
	case content.ModelPendulum:
		return physics.NewPendulum(), nil
	case content.ModelDrag:
		return physics.NewDrag(), nil
	case content.ModelInverter:
		return physics.NewInverter(), nil
	default:
		return nil, fmt.Errorf("unknown physics model %q", kind)
	}
}

// applyDefaults sets each slider's default value on the model.
func applyDefaults(m physics.Model, params []content.ParamSpec) {
	for _, p := range params {
		m.SetParam(p.Name, p.Default)
	}
}
