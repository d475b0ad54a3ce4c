package progress

import (
	"context"
	"testing"
	"time"

	"github.com/nikverma/physlab/internal/phase"
	"github.com/nikverma/physlab/internal/store"
)

func TestGetCreatesFreshRecord(t *testing.T) {
	s := NewService(nil, nil)
	gp := s.Get("crash-cart")

	if gp.ResumePhase != phase.PhaseHook {
		t.Errorf("ResumePhase = %q, want %q", gp.ResumePhase, phase.PhaseHook)
	}
	if gp.CompletedCount() != 0 {
		t.Errorf("CompletedCount = %d, want 0", gp.CompletedCount())
	}
	if gp.IsMastered() {
		t.Error("fresh record should not be mastered")
	}
}

func TestPhaseCompletedAdvancesResumePoint(t *testing.T) {
	s := NewService(nil, nil)
	s.PhaseCompleted("crash-cart", phase.PhaseHook, phase.PhasePredict)
	s.PhaseCompleted("crash-cart", phase.PhasePredict, phase.PhasePlay)

	gp := s.Get("crash-cart")
	if gp.ResumePhase != phase.PhasePlay {
		t.Errorf("ResumePhase = %q, want %q", gp.ResumePhase, phase.PhasePlay)
	}
	if !gp.Completed[phase.PhaseHook] || !gp.Completed[phase.PhasePredict] {
		t.Error("hook and predict should be completed")
	}
	if gp.CompletedCount() != 2 {
		t.Errorf("CompletedCount = %d, want 2", gp.CompletedCount())
	}
}

func TestRecordTestScoreKeepsBest(t *testing.T) {
	s := NewService(nil, nil)
	s.RecordTestScore("skydiver", 67)
	s.RecordTestScore("skydiver", 33)

	if got := s.Get("skydiver").BestTestScorePct; got != 67 {
		t.Errorf("BestTestScorePct = %d, want 67", got)
	}

	s.RecordTestScore("skydiver", 100)
	if got := s.Get("skydiver").BestTestScorePct; got != 100 {
		t.Errorf("BestTestScorePct = %d, want 100", got)
	}
}

func TestMarkMasteredPreservesFirstTime(t *testing.T) {
	s := NewService(nil, nil)
	s.MarkMastered("pendulum-clock")

	first := s.Get("pendulum-clock").MasteredAt
	if first == nil {
		t.Fatal("expected MasteredAt to be set")
	}

	s.MarkMastered("pendulum-clock")
	if got := s.Get("pendulum-clock").MasteredAt; !got.Equal(*first) {
		t.Errorf("MasteredAt changed from %v to %v on second call", first, got)
	}
}

func TestResetGame(t *testing.T) {
	s := NewService(nil, nil)
	s.PhaseCompleted("crash-cart", phase.PhaseHook, phase.PhasePredict)
	s.ResetGame("crash-cart")

	gp := s.Get("crash-cart")
	if gp.CompletedCount() != 0 {
		t.Errorf("CompletedCount after reset = %d, want 0", gp.CompletedCount())
	}
	if gp.ResumePhase != phase.PhaseHook {
		t.Errorf("ResumePhase after reset = %q, want %q", gp.ResumePhase, phase.PhaseHook)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	s := NewService(nil, nil)
	s.StartAttempt("crash-cart")
	s.PhaseCompleted("crash-cart", phase.PhaseHook, phase.PhasePredict)
	s.PhaseCompleted("crash-cart", phase.PhasePredict, phase.PhasePlay)
	s.RecordTestScore("crash-cart", 67)
	s.MarkMastered("inverter-wave")

	snap := &store.SnapshotData{Version: 1, Progress: s.SnapshotData()}
	restored := NewService(snap, nil)

	gp := restored.Get("crash-cart")
	if gp.ResumePhase != phase.PhasePlay {
		t.Errorf("ResumePhase = %q, want %q", gp.ResumePhase, phase.PhasePlay)
	}
	if gp.Attempts != 1 {
		t.Errorf("Attempts = %d, want 1", gp.Attempts)
	}
	if gp.BestTestScorePct != 67 {
		t.Errorf("BestTestScorePct = %d, want 67", gp.BestTestScorePct)
	}
	if !gp.Completed[phase.PhaseHook] || !gp.Completed[phase.PhasePredict] {
		t.Error("completed phases lost in round trip")
	}
	if !restored.Get("inverter-wave").IsMastered() {
		t.Error("mastery flag lost in round trip")
	}
}

func TestLoadIgnoresUnknownPhases(t *testing.T) {
	snap := &store.SnapshotData{
		Version: 1,
		Progress: &store.ProgressSnapshotData{
			Games: map[string]*store.GameProgressData{
				"crash-cart": {
					GameID:          "crash-cart",
					ResumePhase:     "no-such-phase",
					CompletedPhases: []string{"hook", "bogus"},
				},
			},
		},
	}

	s := NewService(snap, nil)
	gp := s.Get("crash-cart")
	if gp.ResumePhase != phase.PhaseHook {
		t.Errorf("ResumePhase = %q, want fallback %q", gp.ResumePhase, phase.PhaseHook)
	}
	if gp.CompletedCount() != 1 {
		t.Errorf("CompletedCount = %d, want 1 (bogus phase dropped)", gp.CompletedCount())
	}
}

func TestLoadParsesMasteredAt(t *testing.T) {
	ts := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC).Format(time.RFC3339)
	snap := &store.SnapshotData{
		Version: 1,
		Progress: &store.ProgressSnapshotData{
			Games: map[string]*store.GameProgressData{
				"skydiver": {GameID: "skydiver", ResumePhase: "mastery", MasteredAt: &ts},
			},
		},
	}

	s := NewService(snap, nil)
	gp := s.Get("skydiver")
	if !gp.IsMastered() {
		t.Fatal("expected mastered")
	}
	if gp.MasteredAt.Year() != 2026 {
		t.Errorf("MasteredAt year = %d, want 2026", gp.MasteredAt.Year())
	}
}

type fakeSnapRepo struct {
	saved  []*store.Snapshot
	pruned int
}

func (f *fakeSnapRepo) Save(_ context.Context, snap *store.Snapshot) error {
	f.saved = append(f.saved, snap)
	return nil
}

func (f *fakeSnapRepo) Latest(context.Context) (*store.Snapshot, error) {
	if len(f.saved) == 0 {
		return nil, nil
	}
	return f.saved[len(f.saved)-1], nil
}

func (f *fakeSnapRepo) Prune(_ context.Context, keep int) error {
	f.pruned = keep
	return nil
}

func TestPersistSavesAndPrunes(t *testing.T) {
	repo := &fakeSnapRepo{}
	s := NewService(nil, repo)
	s.PhaseCompleted("crash-cart", phase.PhaseHook, phase.PhasePredict)

	if err := s.Persist(context.Background(), 7); err != nil {
		t.Fatalf("persist: %v", err)
	}

	if len(repo.saved) != 1 {
		t.Fatalf("saved %d snapshots, want 1", len(repo.saved))
	}
	snap := repo.saved[0]
	if snap.Sequence != 7 {
		t.Errorf("Sequence = %d, want 7", snap.Sequence)
	}
	if snap.Data.Version != 1 {
		t.Errorf("Version = %d, want 1", snap.Data.Version)
	}
	if snap.Data.Progress.Games["crash-cart"] == nil {
		t.Error("expected crash-cart in snapshot")
	}
	if repo.pruned != 10 {
		t.Errorf("pruned keep = %d, want 10", repo.pruned)
	}
}
