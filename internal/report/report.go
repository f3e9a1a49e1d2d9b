// Package report builds the final evidence-of-learning report by
// merging the conclusion payload with the accumulated learner model,
// and renders it as markdown.
package report

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/abhisek/fracmap/internal/domain"
	"github.com/abhisek/fracmap/internal/learner"
	"github.com/abhisek/fracmap/internal/session"
)

// LearningComponentEntry is one sub-skill line in a standard's entry.
type LearningComponentEntry struct {
	Code        string `json:"code"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// StandardEntry is the per-standard evidence record in the final map.
type StandardEntry struct {
	StandardCode        string                   `json:"standard_code"`
	StandardDescription string                   `json:"standard_description"`
	Status              string                   `json:"status"`
	Confidence          string                   `json:"confidence"`
	Evidence            []string                 `json:"evidence"`
	LearningComponents  []LearningComponentEntry `json:"learning_components,omitempty"`
}

// MisconceptionEntry is one probed misconception in the final report.
type MisconceptionEntry struct {
	Description string `json:"description"`
	Status      string `json:"status"`
	Evidence    string `json:"evidence"`
}

// ConcludePayload is the typed shape of the conclude_assessment tool
// input, stored verbatim on the session at conclusion time.
type ConcludePayload struct {
	EvidenceMap          []StandardEntry      `json:"evidence_map"`
	ProgressionSummary   string               `json:"progression_summary"`
	MisconceptionReport  []MisconceptionEntry `json:"misconception_report"`
	OverallNarrative     string               `json:"overall_narrative"`
	RecommendedNextSteps []string             `json:"recommended_next_steps"`
	StopReason           string               `json:"stop_reason"`
}

// Report is the merged, render-ready evidence report.
type Report struct {
	SessionID            string                     `json:"session_id"`
	Mode                 string                     `json:"mode"`
	PersonaName          string                     `json:"persona_name,omitempty"`
	StartedAt            time.Time                  `json:"started_at"`
	EndedAt              time.Time                  `json:"ended_at"`
	TurnCount            int                        `json:"turn_count"`
	ProgressionSummary   string                     `json:"progression_summary"`
	StandardsEvidenceMap []StandardEntry            `json:"standards_evidence_map"`
	MisconceptionReport  []MisconceptionEntry       `json:"misconception_report"`
	OverallNarrative     string                     `json:"overall_narrative"`
	RecommendedNextSteps []string                   `json:"recommended_next_steps"`
	StopReason           string                     `json:"stop_reason"`
	Conversation         []session.ConversationTurn `json:"conversation_log"`
}

// Build merges a session's conclusion payload with its learner-model
// snapshot. For each standard the model knows, the conclusion's entry
// wins when present (the engine's final synthesis is authoritative);
// otherwise the model's accumulated record is used. Every known
// standard appears exactly once, in domain order.
func Build(sess *session.Session) (*Report, error) {
	var payload ConcludePayload
	if len(sess.Report) > 0 {
		if err := json.Unmarshal(sess.Report, &payload); err != nil {
			return nil, fmt.Errorf("parse conclusion payload: %w", err)
		}
	}

	model, err := modelFromSession(sess)
	if err != nil {
		return nil, err
	}

	endedAt := time.Now().UTC()
	if sess.EndedAt != nil {
		endedAt = *sess.EndedAt
	}

	return &Report{
		SessionID:            sess.ID,
		Mode:                 string(sess.Mode),
		PersonaName:          sess.PersonaName,
		StartedAt:            sess.StartedAt,
		EndedAt:              endedAt,
		TurnCount:            sess.TurnCount,
		ProgressionSummary:   payload.ProgressionSummary,
		StandardsEvidenceMap: mergeEvidenceMap(payload.EvidenceMap, model),
		MisconceptionReport:  payload.MisconceptionReport,
		OverallNarrative:     payload.OverallNarrative,
		RecommendedNextSteps: payload.RecommendedNextSteps,
		StopReason:           payload.StopReason,
		Conversation:         sess.Conversation,
	}, nil
}

func modelFromSession(sess *session.Session) (*learner.Model, error) {
	if len(sess.LearnerModel) == 0 {
		return learner.NewModel(), nil
	}
	model, err := learner.FromSnapshot(sess.LearnerModel)
	if err != nil {
		return nil, fmt.Errorf("restore learner model: %w", err)
	}
	return model, nil
}

func mergeEvidenceMap(conclusion []StandardEntry, model *learner.Model) []StandardEntry {
	byCode := make(map[string]StandardEntry, len(conclusion))
	for _, entry := range conclusion {
		byCode[entry.StandardCode] = entry
	}

	merged := make([]StandardEntry, 0, len(model.StandardsEvidence))
	for _, code := range domain.StandardCodes() {
		se, ok := model.StandardsEvidence[code]
		if !ok {
			continue
		}
		if entry, ok := byCode[code]; ok {
			merged = append(merged, entry)
			continue
		}
		merged = append(merged, fallbackEntry(se))
	}
	return merged
}

// fallbackEntry converts the learner model's accumulated record for a
// standard the conclusion omitted.
func fallbackEntry(se *learner.StandardEvidence) StandardEntry {
	lcs := make([]LearningComponentEntry, 0, len(se.LearningComponents))
	for _, lc := range se.LearningComponents {
		lcs = append(lcs, LearningComponentEntry{
			Code:        lc.Code,
			Description: lc.Description,
			Status:      string(lc.Status),
		})
	}
	return StandardEntry{
		StandardCode:        se.StandardCode,
		StandardDescription: se.StandardDescription,
		Status:              string(se.Status),
		Confidence:          string(se.Confidence),
		Evidence:            se.Evidence,
		LearningComponents:  lcs,
	}
}
