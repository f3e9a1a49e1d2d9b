package store

import (
	"context"
	"encoding/json"
	"time"
)

// AssessmentRecord is the persisted form of one assessment session.
type AssessmentRecord struct {
	SessionID    string
	Mode         string
	PersonaName  string
	StartedAt    time.Time
	EndedAt      *time.Time
	TurnCount    int
	Conversation json.RawMessage
	LearnerModel json.RawMessage
	Report       json.RawMessage
}

// AssessmentRepo persists assessment sessions.
type AssessmentRepo interface {
	// Save stores a record, overwriting any existing row with the same
	// session id. Safe to re-issue.
	Save(ctx context.Context, rec *AssessmentRecord) error

	// Get returns the record for a session id, or nil if not found.
	Get(ctx context.Context, sessionID string) (*AssessmentRecord, error)

	// List returns records ordered by start time descending.
	List(ctx context.Context, limit int) ([]*AssessmentRecord, error)
}

// LLMRequestEventData captures the data for a single LLM request event.
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

// LLMUsageTotals aggregates the request log for cost reporting.
type LLMUsageTotals struct {
	Requests     int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// LLMUsage aggregates token usage per model across the log.
	LLMUsage(ctx context.Context) (map[string]LLMUsageTotals, error)
}
