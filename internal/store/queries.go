package store

import (
	"context"
	"fmt"

	"github.com/nikverma/physlab/ent"
	"github.com/nikverma/physlab/ent/llmrequestevent"
	"github.com/nikverma/physlab/ent/phaseevent"
	"github.com/nikverma/physlab/ent/sessionevent"
)

func (r *eventRepo) QuerySessionSummaries(ctx context.Context, opts QueryOpts) ([]SessionSummaryRecord, error) {
	q := r.client.SessionEvent.Query().
		Where(sessionevent.Action("end")).
		Order(ent.Desc(sessionevent.FieldTimestamp))

	if opts.GameID != "" {
		q = q.Where(sessionevent.GameID(opts.GameID))
	}
	if !opts.From.IsZero() {
		q = q.Where(sessionevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(sessionevent.TimestampLTE(opts.To))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query session summaries: %w", err)
	}

	out := make([]SessionSummaryRecord, 0, len(events))
	for _, e := range events {
		out = append(out, SessionSummaryRecord{
			SessionID:       e.SessionID,
			GameID:          e.GameID,
			Timestamp:       e.Timestamp,
			PhasesCompleted: e.PhasesCompleted,
			TestScorePct:    e.TestScorePct,
			DurationSecs:    e.DurationSecs,
		})
	}
	return out, nil
}

func (r *eventRepo) TestScoreHistory(ctx context.Context, gameID string) ([]int, error) {
	events, err := r.client.SessionEvent.Query().
		Where(
			sessionevent.GameID(gameID),
			sessionevent.Action("end"),
		).
		Order(ent.Asc(sessionevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query test score history: %w", err)
	}

	scores := make([]int, 0, len(events))
	for _, e := range events {
		scores = append(scores, e.TestScorePct)
	}
	return scores, nil
}

func (r *eventRepo) AvgPhaseMillis(ctx context.Context, gameID string) (map[string]int64, error) {
	events, err := r.client.PhaseEvent.Query().
		Where(phaseevent.GameID(gameID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query phase events: %w", err)
	}

	sums := make(map[string]int64)
	counts := make(map[string]int64)
	for _, e := range events {
		sums[e.FromPhase] += e.MsInPhase
		counts[e.FromPhase]++
	}

	avgs := make(map[string]int64, len(sums))
	for p, sum := range sums {
		avgs[p] = sum / counts[p]
	}
	return avgs, nil
}

func (r *eventRepo) LLMUsage(ctx context.Context) ([]LLMUsageRecord, error) {
	events, err := r.client.LLMRequestEvent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query llm requests: %w", err)
	}

	byModel := make(map[string]*LLMUsageRecord)
	var order []string
	for _, e := range events {
		rec, ok := byModel[e.Model]
		if !ok {
			rec = &LLMUsageRecord{Model: e.Model}
			byModel[e.Model] = rec
			order = append(order, e.Model)
		}
		rec.Requests++
		rec.InputTokens += e.InputTokens
		rec.OutputTokens += e.OutputTokens
	}

	out := make([]LLMUsageRecord, 0, len(order))
	for _, m := range order {
		out = append(out, *byModel[m])
	}
	return out, nil
}

func (r *eventRepo) QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEventRecord, error) {
	q := r.client.LLMRequestEvent.Query().
		Order(ent.Desc(llmrequestevent.FieldTimestamp))
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query llm events: %w", err)
	}

	out := make([]LLMEventRecord, 0, len(events))
	for _, e := range events {
		out = append(out, entLLMEventToRecord(e))
	}
	return out, nil
}

func (r *eventRepo) GetLLMEvent(ctx context.Context, id int) (*LLMEventRecord, error) {
	e, err := r.client.LLMRequestEvent.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get llm event: %w", err)
	}
	rec := entLLMEventToRecord(e)
	return &rec, nil
}

func entLLMEventToRecord(e *ent.LLMRequestEvent) LLMEventRecord {
	return LLMEventRecord{
		ID:           e.ID,
		Timestamp:    e.Timestamp,
		Provider:     e.Provider,
		Model:        e.Model,
		Purpose:      e.Purpose,
		InputTokens:  e.InputTokens,
		OutputTokens: e.OutputTokens,
		LatencyMs:    e.LatencyMs,
		Success:      e.Success,
		ErrorMessage: e.ErrorMessage,
		RequestBody:  e.RequestBody,
		ResponseBody: e.ResponseBody,
	}
}

func (r *eventRepo) SessionCount(ctx context.Context) (int, error) {
	n, err := r.client.SessionEvent.Query().
		Where(sessionevent.Action("start")).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count sessions: %w", err)
	}
	return n, nil
}
