// Package session defines the per-assessment session record and a
// concurrency-safe registry of live sessions. A session owns the
// conversation transcript, the raw conclusion payload, and a snapshot
// of the learner model taken at conclusion time; the live evidence
// model itself lives in the learner package.
package session

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Mode selects where learner responses come from.
type Mode string

const (
	ModeReal      Mode = "real"      // a human answers each question
	ModeSynthetic Mode = "synthetic" // a persona responder answers
)

// ParseMode validates a mode string from a caller.
func ParseMode(s string) (Mode, bool) {
	switch Mode(s) {
	case ModeReal, ModeSynthetic:
		return Mode(s), true
	}
	return "", false
}

// Role identifies who produced a conversation turn.
type Role string

const (
	RoleAgent   Role = "agent"
	RoleLearner Role = "learner"
)

// ToolCallRecord captures one tool invocation made during an agent turn,
// kept on the transcript for auditability.
type ToolCallRecord struct {
	Name  string          `json:"name"`
	Input json.RawMessage `json:"input,omitempty"`
}

// ConversationTurn is one entry in the transcript. Immutable once
// appended.
type ConversationTurn struct {
	TurnNumber int              `json:"turn_number"`
	Role       Role             `json:"role"`
	Content    string           `json:"content"`
	ToolCalls  []ToolCallRecord `json:"tool_calls,omitempty"`
	Timestamp  time.Time        `json:"timestamp"`
}

// Session is one assessment from start to conclusion.
type Session struct {
	ID           string             `json:"session_id"`
	Mode         Mode               `json:"mode"`
	PersonaName  string             `json:"persona_name,omitempty"`
	StartedAt    time.Time          `json:"started_at"`
	EndedAt      *time.Time         `json:"ended_at,omitempty"`
	Conversation []ConversationTurn `json:"conversation"`
	TurnCount    int                `json:"turn_count"`

	// Report holds the conclusion tool's payload verbatim. Nil until
	// the assessment concludes; set exactly once.
	Report json.RawMessage `json:"report,omitempty"`

	// LearnerModel is the evidence model snapshot taken when the
	// assessment concluded.
	LearnerModel json.RawMessage `json:"learner_model,omitempty"`
}

// New creates a session with a fresh id and start timestamp.
func New(mode Mode, personaName string) *Session {
	return &Session{
		ID:          uuid.NewString(),
		Mode:        mode,
		PersonaName: personaName,
		StartedAt:   time.Now().UTC(),
	}
}

// AppendAgentTurn records an agent message and the tool calls it made.
func (s *Session) AppendAgentTurn(content string, toolCalls []ToolCallRecord) {
	s.Conversation = append(s.Conversation, ConversationTurn{
		TurnNumber: len(s.Conversation) + 1,
		Role:       RoleAgent,
		Content:    content,
		ToolCalls:  toolCalls,
		Timestamp:  time.Now().UTC(),
	})
}

// AppendLearnerTurn records a learner reply and advances the turn
// counter. The counter tracks external learner inputs only, not
// transcript length.
func (s *Session) AppendLearnerTurn(content string) {
	s.Conversation = append(s.Conversation, ConversationTurn{
		TurnNumber: len(s.Conversation) + 1,
		Role:       RoleLearner,
		Content:    content,
		Timestamp:  time.Now().UTC(),
	})
	s.TurnCount++
}

// Conclude stores the conclusion payload and stamps the end time. Only
// the first call takes effect; the session is immutable afterwards.
func (s *Session) Conclude(report json.RawMessage) {
	if s.EndedAt != nil {
		return
	}
	now := time.Now().UTC()
	s.EndedAt = &now
	s.Report = report
}

// Ended reports whether the assessment has concluded.
func (s *Session) Ended() bool {
	return s.EndedAt != nil
}
