package llm

import "context"

// Purpose labels for the request event log. Callers tag their context
// so the usage report can split assessment-agent traffic from the
// synthetic learner's responses.
const (
	PurposeAssessment      = "assessment_agent"
	PurposePersonaResponse = "persona_response"
)

type contextKey string

const purposeKey contextKey = "llm_purpose"

// WithPurpose tags the context with a purpose label for event logging.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom returns the purpose label on the context, or "unknown"
// when the caller did not tag one.
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey).(string); ok {
		return v
	}
	return "unknown"
}
