package lab

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/nikverma/physlab/internal/coach"
	"github.com/nikverma/physlab/internal/content"
	"github.com/nikverma/physlab/internal/llm"
	"github.com/nikverma/physlab/internal/phase"
	"github.com/nikverma/physlab/internal/progress"
	"github.com/nikverma/physlab/internal/store"
)

// fakeEventRepo records appended events in memory.
type fakeEventRepo struct {
	phaseEvents   []store.PhaseEventData
	answerEvents  []store.AnswerEventData
	sessionEvents []store.SessionEventData
	llmEvents     []store.LLMRequestEventData
}

func (f *fakeEventRepo) AppendPhaseEvent(_ context.Context, d store.PhaseEventData) error {
	f.phaseEvents = append(f.phaseEvents, d)
	return nil
}

func (f *fakeEventRepo) AppendAnswerEvent(_ context.Context, d store.AnswerEventData) error {
	f.answerEvents = append(f.answerEvents, d)
	return nil
}

func (f *fakeEventRepo) AppendSessionEvent(_ context.Context, d store.SessionEventData) error {
	f.sessionEvents = append(f.sessionEvents, d)
	return nil
}

func (f *fakeEventRepo) AppendLLMRequest(_ context.Context, d store.LLMRequestEventData) error {
	f.llmEvents = append(f.llmEvents, d)
	return nil
}

func (f *fakeEventRepo) QuerySessionSummaries(context.Context, store.QueryOpts) ([]store.SessionSummaryRecord, error) {
	return nil, nil
}

func (f *fakeEventRepo) TestScoreHistory(context.Context, string) ([]int, error) {
	return nil, nil
}

func (f *fakeEventRepo) AvgPhaseMillis(context.Context, string) (map[string]int64, error) {
	return nil, nil
}

func (f *fakeEventRepo) LLMUsage(context.Context) ([]store.LLMUsageRecord, error) {
	return nil, nil
}

func (f *fakeEventRepo) QueryLLMEvents(context.Context, store.QueryOpts) ([]store.LLMEventRecord, error) {
	return nil, nil
}

func (f *fakeEventRepo) GetLLMEvent(context.Context, int) (*store.LLMEventRecord, error) {
	return nil, nil
}

func (f *fakeEventRepo) SessionCount(context.Context) (int, error) {
	return len(f.sessionEvents), nil
}

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time {
	return c.t
}

func (c *fakeClock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func testGame(t *testing.T) content.Game {
	t.Helper()
	g, err := content.GetGame("crash-cart")
	if err != nil {
		t.Fatalf("load crash-cart: %v", err)
	}
	return g
}

func newTestSession(t *testing.T) (*Session, *fakeEventRepo, *fakeClock) {
	t.Helper()
	repo := &fakeEventRepo{}
	clock := &fakeClock{t: time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)}
	s, err := NewSession(testGame(t), progress.NewService(nil, nil), repo, nil, Options{
		Clock: clock.now,
	})
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	return s, repo, clock
}

// satisfyAndAdvance fulfills the current phase's gate, then advances.
func satisfyAndAdvance(t *testing.T, s *Session) {
	t.Helper()
	switch s.Current() {
	case phase.PhasePredict, phase.PhaseTwistPredict:
		if _, err := s.RecordPrediction(0); err != nil {
			t.Fatalf("predict in %s: %v", s.Current(), err)
		}
	case phase.PhasePlay, phase.PhaseTwistPlay:
		s.AdjustParam("mass_b", 2.0)
	case phase.PhaseTransfer:
		s.State.TransferIndex = len(s.Game.Transfer) - 1
	case phase.PhaseTest:
		for !s.TestDone() {
			if _, _, err := s.AnswerTestQuestion(0); err != nil {
				t.Fatalf("answer test: %v", err)
			}
		}
	}
	if err := s.Advance(); err != nil {
		t.Fatalf("advance from %s: %v", s.Current(), err)
	}
}

func TestSessionStartsAtHook(t *testing.T) {
	s, _, _ := newTestSession(t)
	if s.Current() != phase.PhaseHook {
		t.Errorf("Current = %q, want %q", s.Current(), phase.PhaseHook)
	}
}

func TestFullWalkthrough(t *testing.T) {
	s, repo, clock := newTestSession(t)

	for s.Current() != phase.PhaseMastery {
		clock.advance(5 * time.Second)
		satisfyAndAdvance(t, s)
	}

	if !s.IsComplete() {
		t.Error("expected IsComplete after reaching mastery")
	}
	if len(repo.phaseEvents) != 9 {
		t.Errorf("phase events = %d, want 9", len(repo.phaseEvents))
	}
	// Every accepted transition carried the time spent in the phase left.
	for _, ev := range repo.phaseEvents {
		if ev.MsInPhase != 5000 {
			t.Errorf("MsInPhase = %d for %s->%s, want 5000", ev.MsInPhase, ev.FromPhase, ev.ToPhase)
		}
	}
}

func TestPredictGateBlocksAdvance(t *testing.T) {
	s, repo, _ := newTestSession(t)

	if err := s.Advance(); err != nil { // hook is ungated
		t.Fatalf("advance from hook: %v", err)
	}

	err := s.Advance()
	if !errors.Is(err, phase.ErrGateNotSatisfied) {
		t.Fatalf("advance without prediction: got %v, want ErrGateNotSatisfied", err)
	}
	if s.Current() != phase.PhasePredict {
		t.Errorf("Current = %q after rejection, want predict", s.Current())
	}
	if len(repo.phaseEvents) != 1 {
		t.Errorf("phase events = %d after rejection, want 1", len(repo.phaseEvents))
	}

	if _, err := s.RecordPrediction(1); err != nil {
		t.Fatalf("record prediction: %v", err)
	}
	if err := s.Advance(); err != nil {
		t.Fatalf("advance after prediction: %v", err)
	}
	if s.Current() != phase.PhasePlay {
		t.Errorf("Current = %q, want play", s.Current())
	}
}

func TestSkipAheadRejected(t *testing.T) {
	s, _, _ := newTestSession(t)

	err := s.JumpTo(phase.PhaseTest)
	if !errors.Is(err, phase.ErrNonSequentialJump) {
		t.Fatalf("jump hook->test: got %v, want ErrNonSequentialJump", err)
	}
	if s.Current() != phase.PhaseHook {
		t.Errorf("Current = %q after rejection, want hook", s.Current())
	}
}

func TestTransferGateHoldsUntilAllPromptsSeen(t *testing.T) {
	s, _, _ := newTestSession(t)

	for s.Current() != phase.PhaseTransfer {
		satisfyAndAdvance(t, s)
	}

	// Only the first prompt has been shown.
	s.State.TransferIndex = 0
	err := s.JumpTo(phase.PhaseTest)
	if !errors.Is(err, phase.ErrGateNotSatisfied) {
		t.Fatalf("jump with prompts remaining: got %v, want ErrGateNotSatisfied", err)
	}
	if s.Current() != phase.PhaseTransfer {
		t.Errorf("Current = %q after rejection, want transfer", s.Current())
	}

	s.State.TransferIndex = len(s.Game.Transfer) - 1
	if err := s.JumpTo(phase.PhaseTest); err != nil {
		t.Fatalf("jump after last prompt: %v", err)
	}
	if s.Current() != phase.PhaseTest {
		t.Errorf("Current = %q, want test", s.Current())
	}
}

func TestBackJumpToVisitedPhase(t *testing.T) {
	s, _, _ := newTestSession(t)

	for s.Current() != phase.PhaseReview {
		satisfyAndAdvance(t, s)
	}

	if err := s.JumpTo(phase.PhasePlay); err != nil {
		t.Fatalf("jump review->play: %v", err)
	}
	if s.Current() != phase.PhasePlay {
		t.Errorf("Current = %q, want play", s.Current())
	}

	// Play's gate is already satisfied, so the forward path reopens.
	if err := s.JumpTo(phase.PhaseReview); err != nil {
		t.Fatalf("return to review: %v", err)
	}
}

func TestTerminalLoopRestartsRun(t *testing.T) {
	s, _, clock := newTestSession(t)

	for s.Current() != phase.PhaseMastery {
		clock.advance(time.Second)
		satisfyAndAdvance(t, s)
	}

	prog := s.prog.Get(s.Game.ID)
	attemptsBefore := prog.Attempts
	scoreBefore := prog.BestTestScorePct

	if err := s.Advance(); err != nil {
		t.Fatalf("advance from mastery: %v", err)
	}
	if s.Current() != phase.PhaseHook {
		t.Errorf("Current = %q after loop, want hook", s.Current())
	}

	// Run state resets.
	if s.State.PredictionMade() {
		t.Error("prediction should reset on restart")
	}
	if s.State.QuizIndex != 0 {
		t.Error("quiz progress should reset on restart")
	}

	// Durable progress survives.
	prog = s.prog.Get(s.Game.ID)
	if prog.Attempts != attemptsBefore+1 {
		t.Errorf("Attempts = %d, want %d", prog.Attempts, attemptsBefore+1)
	}
	if prog.BestTestScorePct != scoreBefore {
		t.Errorf("BestTestScorePct = %d, want %d preserved", prog.BestTestScorePct, scoreBefore)
	}
	if !s.IsComplete() {
		t.Error("completion flags should persist across the loop")
	}
}

func TestDebounceDropsDoublePress(t *testing.T) {
	repo := &fakeEventRepo{}
	clock := &fakeClock{t: time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)}
	s, err := NewSession(testGame(t), progress.NewService(nil, nil), repo, nil, Options{
		DebounceWindow: 200 * time.Millisecond,
		Clock:          clock.now,
	})
	if err != nil {
		t.Fatalf("new session: %v", err)
	}

	if err := s.Advance(); err != nil {
		t.Fatalf("first advance: %v", err)
	}
	clock.advance(50 * time.Millisecond)

	if _, err := s.RecordPrediction(0); err != nil {
		t.Fatalf("record prediction: %v", err)
	}
	err = s.Advance()
	if !errors.Is(err, phase.ErrDebounced) {
		t.Fatalf("rapid second advance: got %v, want ErrDebounced", err)
	}
	if s.Current() != phase.PhasePredict {
		t.Errorf("Current = %q, want predict", s.Current())
	}

	clock.advance(200 * time.Millisecond)
	if err := s.Advance(); err != nil {
		t.Fatalf("advance after window: %v", err)
	}
	if s.Current() != phase.PhasePlay {
		t.Errorf("Current = %q, want play", s.Current())
	}
}

func TestRecordPredictionOutsidePredictPhase(t *testing.T) {
	s, _, _ := newTestSession(t)
	if _, err := s.RecordPrediction(0); !errors.Is(err, ErrWrongPhase) {
		t.Errorf("predict in hook: got %v, want ErrWrongPhase", err)
	}
}

func TestPredictionRecordsAnswerEvent(t *testing.T) {
	s, repo, clock := newTestSession(t)

	if err := s.Advance(); err != nil {
		t.Fatalf("advance: %v", err)
	}
	clock.advance(3 * time.Second)

	correct, err := s.RecordPrediction(s.Game.Predict.Answer)
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if !correct {
		t.Error("expected correct prediction")
	}

	if len(repo.answerEvents) != 1 {
		t.Fatalf("answer events = %d, want 1", len(repo.answerEvents))
	}
	ev := repo.answerEvents[0]
	if ev.Phase != "predict" || !ev.Correct {
		t.Errorf("event = %+v, want correct predict answer", ev)
	}
	if ev.MsToAnswer != 3000 {
		t.Errorf("MsToAnswer = %d, want 3000", ev.MsToAnswer)
	}
}

func TestTwistPlaySwapsParams(t *testing.T) {
	s, _, _ := newTestSession(t)

	for s.Current() != phase.PhaseTwistPlay {
		satisfyAndAdvance(t, s)
	}

	specs := s.ActiveParams()
	if len(specs) == 0 {
		t.Fatal("expected twist params")
	}
	params := s.Model().Params()
	for _, spec := range specs {
		if params[spec.Name] != spec.Default {
			t.Errorf("param %s = %v, want twist default %v", spec.Name, params[spec.Name], spec.Default)
		}
	}
}

func TestTestScoring(t *testing.T) {
	s, _, _ := newTestSession(t)

	for s.Current() != phase.PhaseTest {
		satisfyAndAdvance(t, s)
	}

	// Answer every question correctly.
	for i := range s.Game.Test {
		correct, done, err := s.AnswerTestQuestion(s.Game.Test[i].Answer)
		if err != nil {
			t.Fatalf("answer %d: %v", i, err)
		}
		if !correct {
			t.Errorf("answer %d should be correct", i)
		}
		if done != (i == len(s.Game.Test)-1) {
			t.Errorf("done = %v on answer %d", done, i)
		}
	}

	if s.TestScorePct() != 100 {
		t.Errorf("TestScorePct = %d, want 100", s.TestScorePct())
	}
	if !s.Passed() {
		t.Error("expected pass at 100%")
	}
	if got := s.prog.Get(s.Game.ID).BestTestScorePct; got != 100 {
		t.Errorf("recorded best score = %d, want 100", got)
	}
}

func TestMasteryMarkedOnPass(t *testing.T) {
	s, _, _ := newTestSession(t)

	for s.Current() != phase.PhaseTest {
		satisfyAndAdvance(t, s)
	}
	for i := range s.Game.Test {
		if _, _, err := s.AnswerTestQuestion(s.Game.Test[i].Answer); err != nil {
			t.Fatalf("answer: %v", err)
		}
	}
	if err := s.Advance(); err != nil {
		t.Fatalf("advance to mastery: %v", err)
	}

	if !s.prog.Get(s.Game.ID).IsMastered() {
		t.Error("expected game marked mastered after passing test")
	}
}

func TestFailedTestDoesNotMaster(t *testing.T) {
	s, _, _ := newTestSession(t)

	for s.Current() != phase.PhaseTest {
		satisfyAndAdvance(t, s)
	}
	for i := range s.Game.Test {
		wrong := (s.Game.Test[i].Answer + 1) % len(s.Game.Test[i].Options)
		if _, _, err := s.AnswerTestQuestion(wrong); err != nil {
			t.Fatalf("answer: %v", err)
		}
	}
	if err := s.Advance(); err != nil {
		t.Fatalf("advance to mastery: %v", err)
	}

	if s.prog.Get(s.Game.ID).IsMastered() {
		t.Error("game should not be mastered at 0%")
	}
}

func TestStartAndEndEvents(t *testing.T) {
	s, repo, clock := newTestSession(t)
	ctx := context.Background()

	if err := s.Start(ctx); err != nil {
		t.Fatalf("start: %v", err)
	}
	clock.advance(90 * time.Second)
	if err := s.End(ctx); err != nil {
		t.Fatalf("end: %v", err)
	}

	if len(repo.sessionEvents) != 2 {
		t.Fatalf("session events = %d, want 2", len(repo.sessionEvents))
	}
	if repo.sessionEvents[0].Action != "start" || repo.sessionEvents[1].Action != "end" {
		t.Errorf("actions = %s, %s", repo.sessionEvents[0].Action, repo.sessionEvents[1].Action)
	}
	if repo.sessionEvents[1].DurationSecs != 90 {
		t.Errorf("DurationSecs = %d, want 90", repo.sessionEvents[1].DurationSecs)
	}
}

func reviewResponse(headline string) llm.MockResponse {
	body := fmt.Sprintf(`{
		"headline": %q,
		"explanation": "The coupled carts share one momentum budget.",
		"everyday_example": "A loaded shopping cart is harder to stop.",
		"follow_up_question": "What if the masses were equal?"
	}`, headline)
	return llm.MockResponse{Content: json.RawMessage(body)}
}

func consumeReview(t *testing.T, s *Session) *coach.Review {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if review, ok := s.ConsumeReview(); ok {
			return review
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("timed out waiting for coach review")
	return nil
}

func TestEachReviewPhaseGetsItsOwnDebrief(t *testing.T) {
	mock := llm.NewMockProvider(
		reviewResponse("Momentum is conserved"),
		reviewResponse("Heavier targets soak up the speed"),
	)
	coachSvc := coach.NewService(mock, coach.DefaultConfig())
	s, err := NewSession(testGame(t), progress.NewService(nil, nil), nil, coachSvc, Options{})
	if err != nil {
		t.Fatalf("new session: %v", err)
	}

	for s.Current() != phase.PhaseReview {
		satisfyAndAdvance(t, s)
	}
	s.RequestReview(context.Background(), false)
	first := consumeReview(t, s)

	if s.State.Review == nil || s.State.Review.Headline != first.Headline {
		t.Fatal("first debrief should land in the review slot")
	}
	if got := s.ActiveReview(); got != s.State.Review {
		t.Errorf("ActiveReview in review = %v, want the review slot", got)
	}

	for s.Current() != phase.PhaseTwistReview {
		satisfyAndAdvance(t, s)
	}
	if got := s.ActiveReview(); got != nil {
		t.Fatalf("twist review should start without a debrief, got %q", got.Headline)
	}

	s.RequestReview(context.Background(), true)
	second := consumeReview(t, s)

	if mock.CallCount() != 2 {
		t.Errorf("provider calls = %d, want one per review phase", mock.CallCount())
	}
	if second.Headline == first.Headline {
		t.Error("twist debrief should be generated fresh, not reuse the first")
	}
	if s.State.TwistReview == nil || s.State.TwistReview.Headline != second.Headline {
		t.Error("twist debrief should land in the twist slot")
	}
	if s.State.Review.Headline != first.Headline {
		t.Error("first debrief should survive the twist request")
	}
	if got := s.ActiveReview(); got != s.State.TwistReview {
		t.Errorf("ActiveReview in twist review = %v, want the twist slot", got)
	}
}

func TestResumeStartsAtSavedPhase(t *testing.T) {
	prog := progress.NewService(nil, nil)
	prog.PhaseCompleted("crash-cart", phase.PhaseHook, phase.PhasePredict)
	prog.PhaseCompleted("crash-cart", phase.PhasePredict, phase.PhasePlay)

	s, err := NewSession(testGame(t), prog, nil, nil, Options{Resume: true})
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	if s.Current() != phase.PhasePlay {
		t.Errorf("Current = %q, want play", s.Current())
	}
	// Earlier phases count as visited, so back-jumps work immediately.
	if !s.Visited(phase.PhasePredict) {
		t.Error("predict should be visited on resume")
	}
}
