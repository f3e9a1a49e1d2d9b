// Package learner holds the per-session evidence model: what the
// assessment has established about a student's grasp of each standard,
// which misconceptions are in play, and a running overall narrative.
// The model is pure state; all judgment calls are made elsewhere and
// applied here through the update methods.
package learner

// Status classifies the evidence for one standard or learning component.
type Status string

const (
	StatusDemonstrated    Status = "demonstrated"
	StatusPartial         Status = "partial"
	StatusNotDemonstrated Status = "not_demonstrated"
	StatusNotAssessed     Status = "not_assessed"
)

// ParseStatus validates a status string from an external payload.
func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusDemonstrated, StatusPartial, StatusNotDemonstrated, StatusNotAssessed:
		return Status(s), true
	}
	return "", false
}

// Confidence grades how much weight the evidence behind a status carries.
type Confidence string

const (
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"
)

// ParseConfidence validates a confidence string from an external payload.
func ParseConfidence(s string) (Confidence, bool) {
	switch Confidence(s) {
	case ConfidenceLow, ConfidenceMedium, ConfidenceHigh:
		return Confidence(s), true
	}
	return "", false
}

// MisconceptionState tracks whether a suspected misconception has been
// confirmed by further probing or cleared.
type MisconceptionState string

const (
	MisconceptionConfirmed MisconceptionState = "confirmed"
	MisconceptionSuspected MisconceptionState = "suspected"
	MisconceptionCleared   MisconceptionState = "cleared"
)

// ParseMisconceptionState validates a misconception status string.
func ParseMisconceptionState(s string) (MisconceptionState, bool) {
	switch MisconceptionState(s) {
	case MisconceptionConfirmed, MisconceptionSuspected, MisconceptionCleared:
		return MisconceptionState(s), true
	}
	return "", false
}

// LearningComponentEvidence tracks one sub-skill of a standard.
type LearningComponentEvidence struct {
	Code        string   `json:"code"`
	Description string   `json:"description"`
	Status      Status   `json:"status"`
	Evidence    []string `json:"evidence,omitempty"`
}

// StandardEvidence accumulates everything observed about one standard.
type StandardEvidence struct {
	StandardCode        string                      `json:"standard_code"`
	StandardDescription string                      `json:"standard_description"`
	Status              Status                      `json:"status"`
	Confidence          Confidence                  `json:"confidence"`
	Evidence            []string                    `json:"evidence,omitempty"`
	LearningComponents  []LearningComponentEvidence `json:"learning_components,omitempty"`
}

// MisconceptionEvidence tracks one misconception detected during the session.
type MisconceptionEvidence struct {
	MisconceptionID string             `json:"misconception_id"`
	Description     string             `json:"description"`
	Status          MisconceptionState `json:"status"`
	Evidence        []string           `json:"evidence,omitempty"`
}
