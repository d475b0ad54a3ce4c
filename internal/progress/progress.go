package progress

import (
	"context"
	"time"

	"github.com/nikverma/physlab/internal/phase"
	"github.com/nikverma/physlab/internal/store"
)

// GameProgress tracks a learner's state in one mini-lab.
type GameProgress struct {
	GameID           string
	ResumePhase      phase.Phase
	Completed        map[phase.Phase]bool
	Attempts         int
	BestTestScorePct int
	MasteredAt       *time.Time
}

// CompletedCount returns the number of distinct phases completed.
func (gp *GameProgress) CompletedCount() int {
	return len(gp.Completed)
}

// IsMastered reports whether the lab has been mastered at least once.
func (gp *GameProgress) IsMastered() bool {
	return gp.MasteredAt != nil
}

// Service manages per-game progress, loading from and saving to snapshots.
type Service struct {
	games    map[string]*GameProgress
	snapRepo store.SnapshotRepo
	keep     int
}

// NewService creates a progress service, loading state from the snapshot.
func NewService(snap *store.SnapshotData, snapRepo store.SnapshotRepo) *Service {
	s := &Service{
		games:    make(map[string]*GameProgress),
		snapRepo: snapRepo,
		keep:     10,
	}

	if snap == nil || snap.Progress == nil {
		return s
	}

	for id, gd := range snap.Progress.Games {
		gp := &GameProgress{
			GameID:           id,
			ResumePhase:      parsePhase(gd.ResumePhase),
			Completed:        make(map[phase.Phase]bool),
			Attempts:         gd.Attempts,
			BestTestScorePct: gd.BestTestScorePct,
		}
		for _, p := range gd.CompletedPhases {
			if parsed, ok := lookupPhase(p); ok {
				gp.Completed[parsed] = true
			}
		}
		if gd.MasteredAt != nil {
			if t, err := time.Parse(time.RFC3339, *gd.MasteredAt); err == nil {
				gp.MasteredAt = &t
			}
		}
		s.games[id] = gp
	}

	return s
}

// Get returns the progress record for a game, creating a fresh one if the
// game hasn't been played.
func (s *Service) Get(gameID string) *GameProgress {
	if gp, ok := s.games[gameID]; ok {
		return gp
	}
	gp := &GameProgress{
		GameID:      gameID,
		ResumePhase: phase.PhaseHook,
		Completed:   make(map[phase.Phase]bool),
	}
	s.games[gameID] = gp
	return gp
}

// StartAttempt bumps the attempt counter for a game.
func (s *Service) StartAttempt(gameID string) {
	s.Get(gameID).Attempts++
}

// PhaseCompleted records that a phase was left via an accepted transition
// and updates the resume point to the phase entered.
func (s *Service) PhaseCompleted(gameID string, left, entered phase.Phase) {
	gp := s.Get(gameID)
	gp.Completed[left] = true
	gp.ResumePhase = entered
}

// RecordTestScore updates the best test score for a game.
func (s *Service) RecordTestScore(gameID string, pct int) {
	gp := s.Get(gameID)
	if pct > gp.BestTestScorePct {
		gp.BestTestScorePct = pct
	}
}

// MarkMastered records first mastery of a game. Subsequent calls are no-ops
// so the original mastery time is preserved.
func (s *Service) MarkMastered(gameID string) {
	gp := s.Get(gameID)
	if gp.MasteredAt == nil {
		now := time.Now()
		gp.MasteredAt = &now
	}
}

// ResetGame clears a game's progress so it starts fresh from the hook.
func (s *Service) ResetGame(gameID string) {
	delete(s.games, gameID)
}

// All returns every game's progress record keyed by game ID.
func (s *Service) All() map[string]*GameProgress {
	result := make(map[string]*GameProgress, len(s.games))
	for id, gp := range s.games {
		result[id] = gp
	}
	return result
}

// SnapshotData exports the current progress state for persistence.
func (s *Service) SnapshotData() *store.ProgressSnapshotData {
	data := &store.ProgressSnapshotData{
		Games: make(map[string]*store.GameProgressData),
	}

	for id, gp := range s.games {
		gd := &store.GameProgressData{
			GameID:           id,
			ResumePhase:      string(gp.ResumePhase),
			Attempts:         gp.Attempts,
			BestTestScorePct: gp.BestTestScorePct,
		}
		for _, p := range phase.Sequence() {
			if gp.Completed[p] {
				gd.CompletedPhases = append(gd.CompletedPhases, string(p))
			}
		}
		if gp.MasteredAt != nil {
			t := gp.MasteredAt.Format(time.RFC3339)
			gd.MasteredAt = &t
		}
		data.Games[id] = gd
	}

	return data
}

// Persist saves the current progress state as a new snapshot and prunes
// old snapshots down to the retention limit.
func (s *Service) Persist(ctx context.Context, sequence int64) error {
	if s.snapRepo == nil {
		return nil
	}
	snap := &store.Snapshot{
		Sequence:  sequence,
		Timestamp: time.Now(),
		Data: store.SnapshotData{
			Version:  1,
			Progress: s.SnapshotData(),
		},
	}
	if err := s.snapRepo.Save(ctx, snap); err != nil {
		return err
	}
	return s.snapRepo.Prune(ctx, s.keep)
}

// SetSnapshotKeep overrides how many snapshots Persist retains.
func (s *Service) SetSnapshotKeep(n int) {
	if n > 0 {
		s.keep = n
	}
}

// parsePhase converts a stored phase name, falling back to the hook when the
// stored value is unknown.
func parsePhase(raw string) phase.Phase {
	if p, ok := lookupPhase(raw); ok {
		return p
	}
	return phase.PhaseHook
}

func lookupPhase(raw string) (phase.Phase, bool) {
	for _, p := range phase.Sequence() {
		if string(p) == raw {
			return p, true
		}
	}
	return "", false
}
