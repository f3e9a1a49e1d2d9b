package agent

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/fracmap/internal/learner"
	"github.com/abhisek/fracmap/internal/llm"
	"github.com/abhisek/fracmap/internal/session"
)

func mustToolCall(t *testing.T, id, name string, input map[string]any) llm.ToolCall {
	t.Helper()
	raw, err := json.Marshal(input)
	if err != nil {
		t.Fatalf("marshal tool input: %v", err)
	}
	return llm.ToolCall{ID: id, Name: name, Input: raw}
}

func askQuestionCall(t *testing.T, id, question string) llm.ToolCall {
	t.Helper()
	return mustToolCall(t, id, "ask_question", map[string]any{
		"question":        question,
		"target_standard": "3.NF.A.1",
		"depth":           "conceptual",
		"intent":          "entry-level probe",
	})
}

func assessResponseCall(t *testing.T, id string) llm.ToolCall {
	t.Helper()
	return mustToolCall(t, id, "assess_response", map[string]any{
		"response_reveals":         "partial part-whole understanding",
		"evidence_for":             []map[string]any{{"standard_code": "3.NF.A.1", "confidence": "medium"}},
		"evidence_against":         []map[string]any{},
		"misconceptions_detected":  []string{},
		"misconceptions_ruled_out": []string{},
		"notes":                    "learner counted pieces correctly",
	})
}

func updateModelCall(t *testing.T, id string, active, cleared []string) llm.ToolCall {
	t.Helper()
	return mustToolCall(t, id, "update_learner_model", map[string]any{
		"standards_status": []map[string]any{{
			"standard_code":    "3.NF.A.1",
			"status":           "partial",
			"confidence":       "medium",
			"evidence_summary": "identified 1/4 of a shaded circle",
		}},
		"progression_position":   "early grade 3",
		"active_misconceptions":  active,
		"cleared_misconceptions": cleared,
		"overall_assessment":     "building unit fraction understanding",
	})
}

func adjustStrategyCall(t *testing.T, id string) llm.ToolCall {
	t.Helper()
	return mustToolCall(t, id, "adjust_strategy", map[string]any{
		"current_picture":       "grade 3 entry confirmed",
		"gaps_in_evidence":      []string{"3.NF.A.2"},
		"next_move":             "probe number line placement",
		"progression_direction": "probe_deeper",
	})
}

func concludeCall(t *testing.T, id, stopReason string) llm.ToolCall {
	t.Helper()
	return mustToolCall(t, id, "conclude_assessment", map[string]any{
		"evidence_map": []map[string]any{{
			"standard_code":        "3.NF.A.1",
			"standard_description": "Understand unit fractions",
			"status":               "demonstrated",
			"confidence":           "high",
			"evidence":             []string{"identified 1/4 of a shaded circle"},
		}},
		"progression_summary":    "solid grade 3 entry point",
		"misconception_report":   []map[string]any{},
		"overall_narrative":      "The learner shows solid part-whole understanding.",
		"recommended_next_steps": []string{"introduce number line placement"},
		"stop_reason":            stopReason,
	})
}

func eventNames(events []Event) []string {
	names := make([]string, len(events))
	for i, e := range events {
		names[i] = e.Name
	}
	return names
}

func hasEvent(events []Event, name string) bool {
	for _, e := range events {
		if e.Name == name {
			return true
		}
	}
	return false
}

func TestStartPausesOnQuestion(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Text:      "Let me greet the learner.",
		ToolCalls: []llm.ToolCall{askQuestionCall(t, "toolu_01", "What does 1/2 mean to you?")},
	})
	o := New(mock, session.ModeReal, "", DefaultConfig())

	events, err := o.Start(context.Background())
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	if o.IsComplete() {
		t.Error("assessment marked complete after first question")
	}
	q, ok := o.PendingQuestion()
	if !ok || q != "What does 1/2 mean to you?" {
		t.Errorf("pending question = %q, ok=%v", q, ok)
	}

	if !hasEvent(events, EventSessionStarted) {
		t.Errorf("missing session_started: %v", eventNames(events))
	}
	if !hasEvent(events, EventAgentThinking) {
		t.Errorf("free text not surfaced as agent_thinking: %v", eventNames(events))
	}
	if !hasEvent(events, EventAgentQuestion) {
		t.Errorf("missing agent_question: %v", eventNames(events))
	}

	// The question lands on the session transcript as an agent turn.
	conv := o.Session().Conversation
	if len(conv) != 1 || conv[0].Role != session.RoleAgent {
		t.Fatalf("conversation = %+v", conv)
	}
	if o.Session().TurnCount != 0 {
		t.Errorf("turn count = %d before any learner input", o.Session().TurnCount)
	}
}

func TestFullTurnThroughAllTools(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{ToolCalls: []llm.ToolCall{askQuestionCall(t, "toolu_01", "What is 1/4?")}},
		llm.MockResponse{ToolCalls: []llm.ToolCall{
			assessResponseCall(t, "toolu_02"),
			updateModelCall(t, "toolu_03", []string{"foundational_bigger_denom"}, nil),
			adjustStrategyCall(t, "toolu_04"),
			askQuestionCall(t, "toolu_05", "Where does 1/4 go on a number line?"),
		}},
	)
	o := New(mock, session.ModeReal, "", DefaultConfig())

	if _, err := o.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	events, err := o.SubmitResponse(context.Background(), "one piece out of four")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	for _, want := range []string{EventObservation, EventModelUpdate, EventStrategyShift, EventAgentQuestion} {
		if !hasEvent(events, want) {
			t.Errorf("missing %s: %v", want, eventNames(events))
		}
	}

	// Misconception from active_misconceptions lands as suspected.
	mis, ok := o.Model().Misconceptions["foundational_bigger_denom"]
	if !ok {
		t.Fatal("misconception not recorded")
	}
	if mis.Status != learner.MisconceptionSuspected {
		t.Errorf("misconception status = %s, want suspected", mis.Status)
	}
	// Description resolved from the domain table, not the raw id.
	if mis.Description == "foundational_bigger_denom" {
		t.Error("description not resolved from domain table")
	}

	if o.Session().TurnCount != 1 {
		t.Errorf("turn count = %d, want 1", o.Session().TurnCount)
	}
	if got, _ := o.PendingQuestion(); got != "Where does 1/4 go on a number line?" {
		t.Errorf("pending question = %q", got)
	}
}

func TestConcludeMarksComplete(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{ToolCalls: []llm.ToolCall{askQuestionCall(t, "toolu_01", "q1")}},
		llm.MockResponse{ToolCalls: []llm.ToolCall{concludeCall(t, "toolu_02", "max_turns")}},
	)
	o := New(mock, session.ModeReal, "", DefaultConfig())

	if _, err := o.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	events, err := o.SubmitResponse(context.Background(), "I think so")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if !o.IsComplete() {
		t.Fatal("not complete after conclude_assessment")
	}
	if !hasEvent(events, EventAssessmentComplete) {
		t.Errorf("missing assessment_complete: %v", eventNames(events))
	}

	sess := o.Session()
	if !sess.Ended() {
		t.Error("ended_at not set")
	}
	var report struct {
		StopReason string `json:"stop_reason"`
	}
	if err := json.Unmarshal(sess.Report, &report); err != nil {
		t.Fatalf("stored report not JSON: %v", err)
	}
	if report.StopReason != "max_turns" {
		t.Errorf("stop_reason = %q, want max_turns", report.StopReason)
	}
	if len(sess.LearnerModel) == 0 {
		t.Error("learner model snapshot not attached at conclusion")
	}

	// Further learner input is rejected.
	if _, err := o.SubmitResponse(context.Background(), "more"); !errors.Is(err, ErrAssessmentComplete) {
		t.Errorf("submit after conclude: err = %v", err)
	}
}

func TestForcedConclusionAtTurnCap(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{ToolCalls: []llm.ToolCall{askQuestionCall(t, "toolu_01", "q1")}},
		llm.MockResponse{ToolCalls: []llm.ToolCall{concludeCall(t, "toolu_02", "max_turns")}},
	)
	cfg := DefaultConfig()
	cfg.MaxTurns = 1
	o := New(mock, session.ModeReal, "", cfg)

	if _, err := o.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := o.SubmitResponse(context.Background(), "final answer"); err != nil {
		t.Fatalf("submit: %v", err)
	}

	// The guidance handed to the engine at the cap instructs a forced
	// conclusion.
	var guided bool
	for _, msg := range mock.LastRequest().Messages {
		if strings.Contains(msg.Content, "maximum number of assessment turns") {
			guided = true
		}
	}
	if !guided {
		t.Error("turn-cap guidance prompt not sent to engine")
	}
}

func TestIterationCapBoundsAdvisoryLoops(t *testing.T) {
	// An engine that only ever assesses without asking or concluding
	// must be cut off at the iteration cap.
	mock := llm.NewMockProvider()
	for range 20 {
		mock.AddResponse(llm.MockResponse{ToolCalls: []llm.ToolCall{assessResponseCall(t, "toolu_xx")}})
	}
	cfg := DefaultConfig()
	o := New(mock, session.ModeReal, "", cfg)

	_, err := o.Start(context.Background())
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	if got := mock.CallCount(); got != cfg.MaxIterations {
		t.Errorf("engine calls = %d, want %d", got, cfg.MaxIterations)
	}
	if o.IsComplete() {
		t.Error("complete without conclude_assessment")
	}
	if _, ok := o.PendingQuestion(); ok {
		t.Error("pending question set without ask_question")
	}
}

func TestNoToolCallsExitsLoop(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: "I am not sure what to do."})
	o := New(mock, session.ModeReal, "", DefaultConfig())

	events, err := o.Start(context.Background())
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if mock.CallCount() != 1 {
		t.Errorf("engine calls = %d, want 1", mock.CallCount())
	}
	if _, ok := o.PendingQuestion(); ok {
		t.Error("pending question set with no tool calls")
	}
	if !hasEvent(events, EventAgentThinking) {
		t.Error("free text not surfaced")
	}
}

func TestUnknownToolIsSoftError(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{ToolCalls: []llm.ToolCall{
			{ID: "toolu_01", Name: "do_magic", Input: json.RawMessage(`{}`)},
		}},
		llm.MockResponse{ToolCalls: []llm.ToolCall{askQuestionCall(t, "toolu_02", "q1")}},
	)
	o := New(mock, session.ModeReal, "", DefaultConfig())

	events, err := o.Start(context.Background())
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	// The loop continued past the unknown tool and asked a question.
	if q, ok := o.PendingQuestion(); !ok || q != "q1" {
		t.Errorf("pending question = %q, ok=%v", q, ok)
	}

	// No event for the unknown tool, but its error ack went back to
	// the engine.
	for _, e := range events {
		if e.Name != EventSessionStarted && e.Name != EventAgentQuestion {
			t.Errorf("unexpected event %s", e.Name)
		}
	}
	var acked bool
	for _, msg := range mock.LastRequest().Messages {
		for _, res := range msg.ToolResults {
			if strings.Contains(res.Content, "Unknown tool: do_magic") {
				acked = true
			}
		}
	}
	if !acked {
		t.Error("unknown-tool ack not fed back to engine")
	}
}

func TestSchemaViolationIsSoftError(t *testing.T) {
	badAsk := mustToolCall(t, "toolu_01", "ask_question", map[string]any{
		"question":        "What is 1/2?",
		"target_standard": "3.NF.A.1",
		"depth":           "bogus_depth",
		"intent":          "probe",
	})
	mock := llm.NewMockProvider(
		llm.MockResponse{ToolCalls: []llm.ToolCall{badAsk}},
		llm.MockResponse{ToolCalls: []llm.ToolCall{askQuestionCall(t, "toolu_02", "q1")}},
	)
	o := New(mock, session.ModeReal, "", DefaultConfig())

	events, err := o.Start(context.Background())
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	// The malformed call produced no event and no transcript entry;
	// the corrected retry went through.
	questionEvents := 0
	for _, e := range events {
		if e.Name == EventAgentQuestion {
			questionEvents++
		}
	}
	if questionEvents != 1 {
		t.Errorf("agent_question events = %d, want 1", questionEvents)
	}
	if len(o.Session().Conversation) != 1 {
		t.Errorf("conversation turns = %d, want 1", len(o.Session().Conversation))
	}
}

func TestEngineErrorPropagates(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	o := New(mock, session.ModeReal, "", DefaultConfig())

	_, err := o.Start(context.Background())
	if err == nil {
		t.Fatal("expected engine error to propagate")
	}
	var unavailable *llm.ErrProviderUnavailable
	if !errors.As(err, &unavailable) {
		t.Errorf("err = %v", err)
	}
}
