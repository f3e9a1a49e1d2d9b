package learner

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/abhisek/fracmap/internal/domain"
)

// Model is the accumulating evidence structure for one assessment
// session. Every known standard is present from construction at
// not_assessed/low; misconceptions are added as they surface. Mutation
// happens only through the update methods below — callers never touch
// the maps directly.
type Model struct {
	StandardsEvidence   map[string]*StandardEvidence      `json:"standards_evidence"`
	Misconceptions      map[string]*MisconceptionEvidence `json:"misconceptions"`
	ProgressionPosition string                            `json:"progression_position"`
	OverallAssessment   string                            `json:"overall_assessment"`
}

// NewModel builds a fresh model pre-populated with every standard in
// the domain tables.
func NewModel() *Model {
	m := &Model{
		StandardsEvidence:   make(map[string]*StandardEvidence),
		Misconceptions:      make(map[string]*MisconceptionEvidence),
		ProgressionPosition: "not_determined",
		OverallAssessment:   "Assessment not yet started",
	}
	for _, std := range domain.AllStandards() {
		lcs := make([]LearningComponentEvidence, 0, len(std.LearningComponents))
		for _, lc := range std.LearningComponents {
			lcs = append(lcs, LearningComponentEvidence{
				Code:        lc.Code,
				Description: lc.Description,
				Status:      StatusNotAssessed,
			})
		}
		m.StandardsEvidence[std.Code] = &StandardEvidence{
			StandardCode:        std.Code,
			StandardDescription: std.Description,
			Status:              StatusNotAssessed,
			Confidence:          ConfidenceLow,
			LearningComponents:  lcs,
		}
	}
	return m
}

// Snapshot serializes the model for persistence.
func (m *Model) Snapshot() (json.RawMessage, error) {
	raw, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("snapshot learner model: %w", err)
	}
	return raw, nil
}

// FromSnapshot restores a model from a persisted snapshot.
func FromSnapshot(raw json.RawMessage) (*Model, error) {
	var m Model
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("restore learner model: %w", err)
	}
	if m.StandardsEvidence == nil {
		m.StandardsEvidence = make(map[string]*StandardEvidence)
	}
	if m.Misconceptions == nil {
		m.Misconceptions = make(map[string]*MisconceptionEvidence)
	}
	if m.ProgressionPosition == "" {
		m.ProgressionPosition = "not_determined"
	}
	return &m, nil
}

// UpdateStandard sets the status and confidence for one standard and
// appends the evidence text if present. Unknown standard codes are
// silently ignored: the reasoning engine occasionally invents codes and
// a bad entry must not poison the rest of the update.
func (m *Model) UpdateStandard(code string, status Status, confidence Confidence, evidence string) {
	se, ok := m.StandardsEvidence[code]
	if !ok {
		return
	}
	se.Status = status
	se.Confidence = confidence
	if evidence != "" {
		se.Evidence = append(se.Evidence, evidence)
	}
}

// UpdateLearningComponent sets the status of one learning component
// within a standard. Unknown codes are ignored, matching UpdateStandard.
func (m *Model) UpdateLearningComponent(standardCode, lcCode string, status Status, evidence string) {
	se, ok := m.StandardsEvidence[standardCode]
	if !ok {
		return
	}
	for i := range se.LearningComponents {
		lc := &se.LearningComponents[i]
		if lc.Code != lcCode {
			continue
		}
		lc.Status = status
		if evidence != "" {
			lc.Evidence = append(lc.Evidence, evidence)
		}
		return
	}
}

// AddMisconception upserts a misconception at the given status. New
// entries get their human-readable description from the domain table
// when the id is known there; otherwise the raw id stands in.
func (m *Model) AddMisconception(id string, status MisconceptionState, evidence string) {
	if me, ok := m.Misconceptions[id]; ok {
		me.Status = status
		if evidence != "" {
			me.Evidence = append(me.Evidence, evidence)
		}
		return
	}
	desc := id
	if dm := domain.GetMisconception(id); dm != nil {
		desc = dm.Description
	}
	me := &MisconceptionEvidence{
		MisconceptionID: id,
		Description:     desc,
		Status:          status,
	}
	if evidence != "" {
		me.Evidence = append(me.Evidence, evidence)
	}
	m.Misconceptions[id] = me
}

// ClearMisconception marks a tracked misconception as cleared. Clearing
// an id that was never added is a no-op — we do not invent a record
// just to mark it resolved.
func (m *Model) ClearMisconception(id string) {
	if me, ok := m.Misconceptions[id]; ok {
		me.Status = MisconceptionCleared
	}
}

// UnassessedStandards returns the codes still at not_assessed.
func (m *Model) UnassessedStandards() []string {
	var codes []string
	for _, code := range domain.StandardCodes() {
		if se, ok := m.StandardsEvidence[code]; ok && se.Status == StatusNotAssessed {
			codes = append(codes, code)
		}
	}
	return codes
}

// Gaps returns standards with partial or not_demonstrated evidence.
func (m *Model) Gaps() []string {
	var codes []string
	for _, code := range domain.StandardCodes() {
		se, ok := m.StandardsEvidence[code]
		if ok && (se.Status == StatusPartial || se.Status == StatusNotDemonstrated) {
			codes = append(codes, code)
		}
	}
	return codes
}

// Strengths returns standards demonstrated at medium or high confidence.
func (m *Model) Strengths() []string {
	var codes []string
	for _, code := range domain.StandardCodes() {
		se, ok := m.StandardsEvidence[code]
		if ok && se.Status == StatusDemonstrated &&
			(se.Confidence == ConfidenceMedium || se.Confidence == ConfidenceHigh) {
			codes = append(codes, code)
		}
	}
	return codes
}

// AssessedCount returns how many standards have moved off not_assessed.
func (m *Model) AssessedCount() int {
	n := 0
	for _, se := range m.StandardsEvidence {
		if se.Status != StatusNotAssessed {
			n++
		}
	}
	return n
}

// SummaryString renders the current model state for inclusion in the
// system prompt. Evidence lists are truncated to the most recent items
// to keep the prompt from growing without bound.
func (m *Model) SummaryString() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Progression position: %s\n", m.ProgressionPosition)
	fmt.Fprintf(&b, "Overall: %s\n\n", m.OverallAssessment)

	b.WriteString("Standards Evidence:\n")
	for _, code := range domain.StandardCodes() {
		se, ok := m.StandardsEvidence[code]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "  %s: %s (confidence: %s)\n", code, se.Status, se.Confidence)
		ev := se.Evidence
		if len(ev) > 2 {
			ev = ev[len(ev)-2:]
		}
		for _, e := range ev {
			fmt.Fprintf(&b, "    - %s\n", e)
		}
		for _, lc := range se.LearningComponents {
			if lc.Status != StatusNotAssessed {
				fmt.Fprintf(&b, "    LC %s: %s\n", lc.Code, lc.Status)
			}
		}
	}

	if len(m.Misconceptions) > 0 {
		b.WriteString("\nMisconceptions:\n")
		for _, id := range sortedMisconceptionIDs(m.Misconceptions) {
			me := m.Misconceptions[id]
			fmt.Fprintf(&b, "  %s: %s\n", me.Description, me.Status)
			if len(me.Evidence) > 0 {
				fmt.Fprintf(&b, "    Evidence: %s\n", me.Evidence[len(me.Evidence)-1])
			}
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

func sortedMisconceptionIDs(ms map[string]*MisconceptionEvidence) []string {
	ids := make([]string, 0, len(ms))
	for id := range ms {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
