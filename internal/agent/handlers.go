package agent

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/fracmap/internal/learner"
	"github.com/abhisek/fracmap/internal/session"
)

// evidenceRef points a piece of evidence at a standard and optionally
// one of its learning components.
type evidenceRef struct {
	StandardCode      string `json:"standard_code"`
	LearningComponent string `json:"learning_component,omitempty"`
	Confidence        string `json:"confidence"`
}

type askQuestionInput struct {
	Question                string `json:"question"`
	TargetStandard          string `json:"target_standard"`
	TargetLearningComponent string `json:"target_learning_component,omitempty"`
	Depth                   string `json:"depth"`
	Intent                  string `json:"intent"`
}

type poseTaskInput struct {
	TaskType       string   `json:"task_type"`
	TaskContent    string   `json:"task_content"`
	TargetStandard string   `json:"target_standard"`
	ExpectedAnswer string   `json:"expected_answer"`
	CommonErrors   []string `json:"common_errors"`
	Intent         string   `json:"intent"`
}

type assessResponseInput struct {
	ResponseReveals        string        `json:"response_reveals"`
	EvidenceFor            []evidenceRef `json:"evidence_for"`
	EvidenceAgainst        []evidenceRef `json:"evidence_against"`
	MisconceptionsDetected []string      `json:"misconceptions_detected"`
	MisconceptionsRuledOut []string      `json:"misconceptions_ruled_out"`
	Notes                  string        `json:"notes"`
}

type standardStatusEntry struct {
	StandardCode    string `json:"standard_code"`
	Status          string `json:"status"`
	Confidence      string `json:"confidence"`
	EvidenceSummary string `json:"evidence_summary"`
}

type updateLearnerModelInput struct {
	StandardsStatus       []standardStatusEntry `json:"standards_status"`
	ProgressionPosition   string                `json:"progression_position"`
	ActiveMisconceptions  []string              `json:"active_misconceptions"`
	ClearedMisconceptions []string              `json:"cleared_misconceptions"`
	OverallAssessment     string                `json:"overall_assessment"`
}

type adjustStrategyInput struct {
	CurrentPicture       string   `json:"current_picture"`
	GapsInEvidence       []string `json:"gaps_in_evidence"`
	NextMove             string   `json:"next_move"`
	ProgressionDirection string   `json:"progression_direction"`
}

// dispatchToolCall executes one tool call against the session and
// learner model. It returns the acknowledgment text fed back to the
// model and an optional event for external consumers. Unknown tool
// names return an error acknowledgment and no event; the caller keeps
// going.
func dispatchToolCall(name string, input json.RawMessage, sess *session.Session, model *learner.Model) (string, *Event) {
	switch name {
	case toolAskQuestion:
		return handleAskQuestion(input, sess)
	case toolPoseTask:
		return handlePoseTask(input, sess)
	case toolAssessResponse:
		return handleAssessResponse(input)
	case toolUpdateLearnerModel:
		return handleUpdateLearnerModel(input, model)
	case toolAdjustStrategy:
		return handleAdjustStrategy(input)
	case toolConcludeAssessment:
		return handleConcludeAssessment(input, sess, model)
	}
	return fmt.Sprintf("Unknown tool: %s", name), nil
}

func handleAskQuestion(input json.RawMessage, sess *session.Session) (string, *Event) {
	var in askQuestionInput
	if err := json.Unmarshal(input, &in); err != nil {
		return fmt.Sprintf("Invalid ask_question input: %v", err), nil
	}

	sess.AppendAgentTurn(in.Question, []session.ToolCallRecord{
		{Name: toolAskQuestion, Input: input},
	})

	return "Question presented to learner. Awaiting their response.", &Event{
		Name: EventAgentQuestion,
		Data: map[string]any{
			"question":        in.Question,
			"target_standard": in.TargetStandard,
			"depth":           in.Depth,
		},
	}
}

func handlePoseTask(input json.RawMessage, sess *session.Session) (string, *Event) {
	var in poseTaskInput
	if err := json.Unmarshal(input, &in); err != nil {
		return fmt.Sprintf("Invalid pose_task input: %v", err), nil
	}

	sess.AppendAgentTurn(in.TaskContent, []session.ToolCallRecord{
		{Name: toolPoseTask, Input: input},
	})

	return "Task presented to learner. Awaiting their response.", &Event{
		Name: EventAgentTask,
		Data: map[string]any{
			"task_type":       in.TaskType,
			"task_content":    in.TaskContent,
			"target_standard": in.TargetStandard,
		},
	}
}

// handleAssessResponse is purely advisory: it structures the agent's
// analysis of the last learner reply but mutates nothing. The model
// update happens in the separate update_learner_model call.
func handleAssessResponse(input json.RawMessage) (string, *Event) {
	var in assessResponseInput
	if err := json.Unmarshal(input, &in); err != nil {
		return fmt.Sprintf("Invalid assess_response input: %v", err), nil
	}

	parts := []string{"Assessment recorded."}
	if len(in.EvidenceFor) > 0 {
		parts = append(parts, fmt.Sprintf("Evidence FOR: %s.", joinCodes(in.EvidenceFor)))
	}
	if len(in.EvidenceAgainst) > 0 {
		parts = append(parts, fmt.Sprintf("Evidence AGAINST: %s.", joinCodes(in.EvidenceAgainst)))
	}
	if len(in.MisconceptionsDetected) > 0 {
		parts = append(parts, fmt.Sprintf("Misconceptions detected: %s.", strings.Join(in.MisconceptionsDetected, ", ")))
	}
	if len(in.MisconceptionsRuledOut) > 0 {
		parts = append(parts, fmt.Sprintf("Misconceptions ruled out: %s.", strings.Join(in.MisconceptionsRuledOut, ", ")))
	}

	return strings.Join(parts, " "), &Event{
		Name: EventObservation,
		Data: in,
	}
}

func handleUpdateLearnerModel(input json.RawMessage, model *learner.Model) (string, *Event) {
	var in updateLearnerModelInput
	if err := json.Unmarshal(input, &in); err != nil {
		return fmt.Sprintf("Invalid update_learner_model input: %v", err), nil
	}

	// Entries with enum values that fail to parse are skipped, not
	// coerced; coercing to not_assessed could regress a standard that
	// already had evidence.
	for _, entry := range in.StandardsStatus {
		status, ok := learner.ParseStatus(entry.Status)
		if !ok {
			continue
		}
		confidence, ok := learner.ParseConfidence(entry.Confidence)
		if !ok {
			continue
		}
		model.UpdateStandard(entry.StandardCode, status, confidence, entry.EvidenceSummary)
	}

	for _, id := range in.ActiveMisconceptions {
		model.AddMisconception(id, learner.MisconceptionSuspected, "")
	}
	for _, id := range in.ClearedMisconceptions {
		model.ClearMisconception(id)
	}

	if in.ProgressionPosition != "" {
		model.ProgressionPosition = in.ProgressionPosition
	}
	if in.OverallAssessment != "" {
		model.OverallAssessment = in.OverallAssessment
	}

	summary := fmt.Sprintf("Learner model updated. Position: %s. %s",
		model.ProgressionPosition, model.OverallAssessment)

	return summary, &Event{
		Name: EventModelUpdate,
		Data: map[string]any{
			"summary":              summary,
			"progression_position": model.ProgressionPosition,
			"standards_assessed":   model.AssessedCount(),
		},
	}
}

func handleAdjustStrategy(input json.RawMessage) (string, *Event) {
	var in adjustStrategyInput
	if err := json.Unmarshal(input, &in); err != nil {
		return fmt.Sprintf("Invalid adjust_strategy input: %v", err), nil
	}

	ack := fmt.Sprintf("Strategy adjusted. Next move: %s (direction: %s)",
		in.NextMove, in.ProgressionDirection)

	return ack, &Event{
		Name: EventStrategyShift,
		Data: in,
	}
}

// handleConcludeAssessment stores the conclusion payload verbatim as
// the session's report and stamps the end time. The payload is not
// reshaped here; the report package merges it with the learner model
// when rendering.
func handleConcludeAssessment(input json.RawMessage, sess *session.Session, model *learner.Model) (string, *Event) {
	var in struct {
		EvidenceMap []json.RawMessage `json:"evidence_map"`
		StopReason  string            `json:"stop_reason"`
	}
	if err := json.Unmarshal(input, &in); err != nil {
		return fmt.Sprintf("Invalid conclude_assessment input: %v", err), nil
	}

	if !sess.Ended() {
		if snap, err := model.Snapshot(); err == nil {
			sess.LearnerModel = snap
		}
		sess.Conclude(input)
	}

	ack := fmt.Sprintf("Assessment concluded. Stop reason: %s. Report generated with %d standards assessed.",
		in.StopReason, len(in.EvidenceMap))

	var report map[string]any
	_ = json.Unmarshal(input, &report)

	return ack, &Event{
		Name: EventAssessmentComplete,
		Data: map[string]any{
			"report":     report,
			"session_id": sess.ID,
		},
	}
}

func joinCodes(refs []evidenceRef) string {
	codes := make([]string, len(refs))
	for i, r := range refs {
		codes[i] = r.StandardCode
	}
	return strings.Join(codes, ", ")
}
