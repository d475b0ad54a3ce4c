package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only checked against file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceMonotonic(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var prev int64
	for i := 0; i < 5; i++ {
		n, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next sequence: %v", err)
		}
		if i > 0 && n != prev+1 {
			t.Errorf("sequence jumped from %d to %d", prev, n)
		}
		prev = n
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &Snapshot{
		Sequence:  42,
		Timestamp: now,
		Data: SnapshotData{
			Version: 1,
			Progress: &ProgressSnapshotData{
				Games: map[string]*GameProgressData{
					"crash-cart": {
						GameID:           "crash-cart",
						ResumePhase:      "twist_play",
						CompletedPhases:  []string{"hook", "predict", "play", "review", "twist_predict"},
						Attempts:         2,
						BestTestScorePct: 67,
					},
				},
			},
		},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected snapshot, got nil")
	}
	if snap.Sequence != 42 {
		t.Errorf("Sequence = %d, want 42", snap.Sequence)
	}
	if snap.Data.Version != 1 {
		t.Errorf("Version = %d, want 1", snap.Data.Version)
	}
	gp := snap.Data.Progress.Games["crash-cart"]
	if gp == nil {
		t.Fatal("expected crash-cart progress in snapshot")
	}
	if gp.ResumePhase != "twist_play" {
		t.Errorf("ResumePhase = %q, want %q", gp.ResumePhase, "twist_play")
	}
	if len(gp.CompletedPhases) != 5 {
		t.Errorf("len(CompletedPhases) = %d, want 5", len(gp.CompletedPhases))
	}
}

func TestSnapshotLatestPicksNewest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 3; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 3 {
		t.Errorf("Sequence = %d, want 3", snap.Sequence)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 5; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 2); err != nil {
		t.Fatalf("prune: %v", err)
	}

	n, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 2 {
		t.Errorf("snapshots after prune = %d, want 2", n)
	}

	// Newest survives.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 5 {
		t.Errorf("Sequence = %d, want 5", snap.Sequence)
	}
}

func TestSnapshotPruneFewerThanKeep(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	err := repo.Save(ctx, &Snapshot{
		Sequence:  1,
		Timestamp: time.Now().UTC(),
		Data:      SnapshotData{Version: 1},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	if err := repo.Prune(ctx, 3); err != nil {
		t.Fatalf("prune: %v", err)
	}

	n, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Errorf("snapshots after prune = %d, want 1", n)
	}
}

func TestAppendPhaseEvent(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendPhaseEvent(ctx, PhaseEventData{
		SessionID: "sess-1",
		GameID:    "pendulum-clock",
		FromPhase: "predict",
		ToPhase:   "play",
		MsInPhase: 8200,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	events, err := s.Client().PhaseEvent.Query().All(ctx)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	e := events[0]
	if e.FromPhase != "predict" || e.ToPhase != "play" {
		t.Errorf("transition = %s->%s, want predict->play", e.FromPhase, e.ToPhase)
	}
	if e.Sequence < 1 {
		t.Errorf("Sequence = %d, want >= 1", e.Sequence)
	}
}

func TestSessionSummaries(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	sessions := []SessionEventData{
		{SessionID: "s1", GameID: "crash-cart", Action: "start"},
		{SessionID: "s1", GameID: "crash-cart", Action: "end", PhasesCompleted: 10, TestScorePct: 100, DurationSecs: 540},
		{SessionID: "s2", GameID: "skydiver", Action: "start"},
		{SessionID: "s2", GameID: "skydiver", Action: "end", PhasesCompleted: 4, TestScorePct: 0, DurationSecs: 120},
	}
	for _, data := range sessions {
		if err := repo.AppendSessionEvent(ctx, data); err != nil {
			t.Fatalf("append %s/%s: %v", data.SessionID, data.Action, err)
		}
	}

	got, err := repo.QuerySessionSummaries(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d summaries, want 2", len(got))
	}

	filtered, err := repo.QuerySessionSummaries(ctx, QueryOpts{GameID: "crash-cart"})
	if err != nil {
		t.Fatalf("query filtered: %v", err)
	}
	if len(filtered) != 1 {
		t.Fatalf("got %d filtered summaries, want 1", len(filtered))
	}
	if filtered[0].TestScorePct != 100 {
		t.Errorf("TestScorePct = %d, want 100", filtered[0].TestScorePct)
	}

	limited, err := repo.QuerySessionSummaries(ctx, QueryOpts{Limit: 1})
	if err != nil {
		t.Fatalf("query limited: %v", err)
	}
	if len(limited) != 1 {
		t.Fatalf("got %d limited summaries, want 1", len(limited))
	}
}

func TestTestScoreHistory(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	scores := []int{33, 67, 100}
	for _, score := range scores {
		err := repo.AppendSessionEvent(ctx, SessionEventData{
			SessionID:    "s",
			GameID:       "inverter-wave",
			Action:       "end",
			TestScorePct: score,
		})
		if err != nil {
			t.Fatalf("append score %d: %v", score, err)
		}
	}

	got, err := repo.TestScoreHistory(ctx, "inverter-wave")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d scores, want 3", len(got))
	}
	for i, want := range scores {
		if got[i] != want {
			t.Errorf("score[%d] = %d, want %d", i, got[i], want)
		}
	}

	other, err := repo.TestScoreHistory(ctx, "no-such-game")
	if err != nil {
		t.Fatalf("history (empty): %v", err)
	}
	if len(other) != 0 {
		t.Errorf("got %d scores for unknown game, want 0", len(other))
	}
}

func TestAvgPhaseMillis(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []PhaseEventData{
		{SessionID: "s1", GameID: "crash-cart", FromPhase: "predict", ToPhase: "play", MsInPhase: 4000},
		{SessionID: "s2", GameID: "crash-cart", FromPhase: "predict", ToPhase: "play", MsInPhase: 6000},
		{SessionID: "s1", GameID: "crash-cart", FromPhase: "play", ToPhase: "review", MsInPhase: 30000},
	}
	for _, data := range events {
		if err := repo.AppendPhaseEvent(ctx, data); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	avgs, err := repo.AvgPhaseMillis(ctx, "crash-cart")
	if err != nil {
		t.Fatalf("avg: %v", err)
	}
	if avgs["predict"] != 5000 {
		t.Errorf("avg predict = %d, want 5000", avgs["predict"])
	}
	if avgs["play"] != 30000 {
		t.Errorf("avg play = %d, want 30000", avgs["play"])
	}
}

func TestSessionCount(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := repo.AppendSessionEvent(ctx, SessionEventData{
			SessionID: "s",
			GameID:    "crash-cart",
			Action:    "start",
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	// Ends don't count.
	err := repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID: "s", GameID: "crash-cart", Action: "end",
	})
	if err != nil {
		t.Fatalf("append end: %v", err)
	}

	n, err := repo.SessionCount(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 3 {
		t.Errorf("SessionCount = %d, want 3", n)
	}
}

func TestCrossTypeSequenceOrdering(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendPhaseEvent(ctx, PhaseEventData{SessionID: "s", GameID: "g", FromPhase: "hook", ToPhase: "predict"}); err != nil {
		t.Fatalf("append phase: %v", err)
	}
	if err := repo.AppendAnswerEvent(ctx, AnswerEventData{SessionID: "s", GameID: "g", Phase: "predict", Question: "q", Selected: 1, Correct: true}); err != nil {
		t.Fatalf("append answer: %v", err)
	}
	if err := repo.AppendLLMRequest(ctx, LLMRequestEventData{Provider: "mock", Model: "m", Purpose: "review", Success: true}); err != nil {
		t.Fatalf("append llm: %v", err)
	}

	pe, err := s.Client().PhaseEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query phase: %v", err)
	}
	ae, err := s.Client().AnswerEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query answer: %v", err)
	}
	le, err := s.Client().LLMRequestEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query llm: %v", err)
	}

	if !(pe.Sequence < ae.Sequence && ae.Sequence < le.Sequence) {
		t.Errorf("sequences not ordered: phase=%d answer=%d llm=%d", pe.Sequence, ae.Sequence, le.Sequence)
	}
}
