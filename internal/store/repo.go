package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	GameID string    // restrict to one game ("" = all)
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// SnapshotData captures the learner's progress state at a point in time.
type SnapshotData struct {
	Version  int                   `json:"version"`
	Progress *ProgressSnapshotData `json:"progress,omitempty"`
}

// ProgressSnapshotData holds per-game progress records keyed by game ID.
type ProgressSnapshotData struct {
	Games map[string]*GameProgressData `json:"games"`
}

// GameProgressData is the serialized progress record for one mini-lab.
type GameProgressData struct {
	GameID           string   `json:"game_id"`
	ResumePhase      string   `json:"resume_phase"`
	CompletedPhases  []string `json:"completed_phases"`
	Attempts         int      `json:"attempts"`
	BestTestScorePct int      `json:"best_test_score_pct"`
	MasteredAt       *string  `json:"mastered_at,omitempty"` // RFC3339
}

// Snapshot represents a point-in-time capture of learner progress.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages progress snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// PhaseEventData captures one accepted phase transition.
type PhaseEventData struct {
	SessionID string
	GameID    string
	FromPhase string
	ToPhase   string
	MsInPhase int64
}

// AnswerEventData captures a prediction or quiz answer.
type AnswerEventData struct {
	SessionID  string
	GameID     string
	Phase      string
	Question   string
	Selected   int
	Correct    bool
	MsToAnswer int64
}

// SessionEventData captures a session lifecycle event.
type SessionEventData struct {
	SessionID       string
	GameID          string
	Action          string // "start" or "end"
	PhasesCompleted int
	TestScorePct    int
	DurationSecs    int
}

// LLMRequestEventData captures the data for a single coach API call.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMUsageRecord aggregates coach API usage for one model.
type LLMUsageRecord struct {
	Model        string
	Requests     int
	InputTokens  int
	OutputTokens int
}

// LLMEventRecord is one logged coach API call, bodies included.
type LLMEventRecord struct {
	ID           int
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// SessionSummaryRecord is one finished session as shown on the history
// screen.
type SessionSummaryRecord struct {
	SessionID       string
	GameID          string
	Timestamp       time.Time
	PhasesCompleted int
	TestScorePct    int
	DurationSecs    int
}

// EventRepo provides append and query access to the event log.
type EventRepo interface {
	// AppendPhaseEvent records an accepted phase transition.
	AppendPhaseEvent(ctx context.Context, data PhaseEventData) error

	// AppendAnswerEvent records a prediction or quiz answer.
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error

	// AppendSessionEvent records a session start or end.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// AppendLLMRequest records a coach API call.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QuerySessionSummaries returns finished sessions, newest first.
	QuerySessionSummaries(ctx context.Context, opts QueryOpts) ([]SessionSummaryRecord, error)

	// TestScoreHistory returns a game's test scores, oldest first.
	TestScoreHistory(ctx context.Context, gameID string) ([]int, error)

	// AvgPhaseMillis returns the mean time spent in each phase of a game
	// across all sessions, keyed by phase name.
	AvgPhaseMillis(ctx context.Context, gameID string) (map[string]int64, error)

	// LLMUsage returns per-model coach API usage aggregates.
	LLMUsage(ctx context.Context) ([]LLMUsageRecord, error)

	// QueryLLMEvents returns logged coach API calls, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEventRecord, error)

	// GetLLMEvent returns one logged call by ID, nil when absent.
	GetLLMEvent(ctx context.Context, id int) (*LLMEventRecord, error)

	// SessionCount returns the number of sessions started.
	SessionCount(ctx context.Context) (int, error)
}
