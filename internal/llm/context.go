package llm

import "context"

type contextKey string

const purposeKey contextKey = "llm_purpose"

// WithPurpose tags the context with what the request is for ("review",
// "twist_review", "ask"). The logging decorator stamps it on the event.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom reads the purpose tag, "unknown" when absent.
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey).(string); ok {
		return v
	}
	return "unknown"
}
