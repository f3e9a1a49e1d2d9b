// Package agent runs the adaptive assessment loop: it advertises the
// six-tool catalog to the reasoning engine, dispatches the tool calls
// the engine makes, and pauses whenever the engine asks the learner
// something. The engine is injected as an llm.Provider so the whole
// loop runs against a scripted mock in tests.
package agent

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/abhisek/fracmap/internal/learner"
	"github.com/abhisek/fracmap/internal/llm"
	"github.com/abhisek/fracmap/internal/session"
)

// ErrAssessmentComplete is returned when a learner response is
// submitted after the assessment has concluded.
var ErrAssessmentComplete = errors.New("assessment already concluded")

// Orchestrator drives one assessment session. Not safe for concurrent
// use; callers serialize access per session (the session registry's
// single-flight guard does this for the HTTP layer).
type Orchestrator struct {
	provider llm.Provider
	cfg      Config

	sess  *session.Session
	model *learner.Model

	tools      []llm.Tool
	toolByName map[string]llm.Tool

	// messages is the engine-facing transcript: user guidance,
	// assistant responses with tool calls, and tool results. Distinct
	// from the session's learner-facing conversation log.
	messages []llm.Message

	pendingQuestion string
	complete        bool
}

// New creates an orchestrator for a fresh session.
func New(provider llm.Provider, mode session.Mode, personaName string, cfg Config) *Orchestrator {
	tools := ToolCatalog()
	byName := make(map[string]llm.Tool, len(tools))
	for _, t := range tools {
		byName[t.Name] = t
	}
	return &Orchestrator{
		provider:   provider,
		cfg:        cfg,
		sess:       session.New(mode, personaName),
		model:      learner.NewModel(),
		tools:      tools,
		toolByName: byName,
	}
}

// Session returns the underlying session record.
func (o *Orchestrator) Session() *session.Session { return o.sess }

// Model returns the live learner model.
func (o *Orchestrator) Model() *learner.Model { return o.model }

// IsComplete reports whether the assessment has concluded.
func (o *Orchestrator) IsComplete() bool { return o.complete }

// PendingQuestion returns the question or task text awaiting a learner
// response. ok is false when the loop exited without asking anything —
// an abnormal stop the caller may treat as session end.
func (o *Orchestrator) PendingQuestion() (string, bool) {
	return o.pendingQuestion, o.pendingQuestion != ""
}

// Start begins the assessment: the engine greets the learner and asks
// its first question. Returns the events produced, ending with the
// session awaiting learner input (or, abnormally, already complete).
func (o *Orchestrator) Start(ctx context.Context) ([]Event, error) {
	events := []Event{{
		Name: EventSessionStarted,
		Data: map[string]any{"session_id": o.sess.ID},
	}}

	o.messages = []llm.Message{{Role: llm.RoleUser, Content: startPrompt}}

	loopEvents, err := o.runAgentLoop(ctx)
	events = append(events, loopEvents...)
	return events, err
}

// SubmitResponse records a learner reply and runs the next agent turn.
// Once the turn counter reaches the configured maximum the engine is
// instructed to conclude instead of continuing.
func (o *Orchestrator) SubmitResponse(ctx context.Context, learnerResponse string) ([]Event, error) {
	if o.complete {
		return nil, ErrAssessmentComplete
	}

	o.pendingQuestion = ""
	o.sess.AppendLearnerTurn(learnerResponse)

	var guidance string
	if o.sess.TurnCount >= o.cfg.MaxTurns {
		guidance = forcedConclusionPrompt(learnerResponse)
	} else {
		guidance = continuationPrompt(learnerResponse, o.cfg.MaxTurns-o.sess.TurnCount)
	}
	o.messages = append(o.messages, llm.Message{Role: llm.RoleUser, Content: guidance})

	return o.runAgentLoop(ctx)
}

// runAgentLoop invokes the engine repeatedly until it asks the learner
// something, concludes, stops calling tools, or hits the iteration
// cap. The cap bounds pathological sequences (advisory tools only) and
// exiting through it is a soft stop, not an error.
func (o *Orchestrator) runAgentLoop(ctx context.Context) ([]Event, error) {
	var events []Event

	ctx = llm.WithPurpose(ctx, llm.PurposeAssessment)
	for range o.cfg.MaxIterations {
		if o.complete {
			break
		}

		resp, err := o.provider.Generate(ctx, llm.Request{
			System:    buildSystemPrompt(o.cfg, o.model),
			Messages:  o.messages,
			Tools:     o.tools,
			MaxTokens: o.cfg.MaxTokens,
		})
		if err != nil {
			return events, err
		}

		// Free text never reaches the learner directly; it is surfaced
		// as an informational event only.
		if strings.TrimSpace(resp.Text) != "" {
			events = append(events, Event{
				Name: EventAgentThinking,
				Data: map[string]any{"text": resp.Text},
			})
		}

		o.messages = append(o.messages, llm.Message{
			Role:      llm.RoleAssistant,
			Content:   resp.Text,
			ToolCalls: resp.ToolCalls,
		})

		if len(resp.ToolCalls) == 0 {
			// Protocol non-compliance; exit rather than spin.
			break
		}

		results := make([]llm.ToolResult, 0, len(resp.ToolCalls))
		waitForLearner := false

		for _, call := range resp.ToolCalls {
			ack, event := o.executeToolCall(call)
			if event != nil {
				events = append(events, *event)
			}
			results = append(results, llm.ToolResult{
				ToolCallID: call.ID,
				Name:       call.Name,
				Content:    ack,
			})

			switch call.Name {
			case toolAskQuestion, toolPoseTask:
				waitForLearner = true
				o.pendingQuestion = extractLearnerFacingText(call.Input)
			case toolConcludeAssessment:
				o.complete = true
			}
		}

		o.messages = append(o.messages, llm.Message{Role: llm.RoleTool, ToolResults: results})

		if waitForLearner || o.complete {
			break
		}
		if resp.StopReason == "end" {
			break
		}
	}

	return events, nil
}

// executeToolCall validates a tool call's input against the advertised
// schema and dispatches it. Unknown names and schema violations come
// back as error acknowledgments so the engine can correct itself; they
// never abort the loop.
func (o *Orchestrator) executeToolCall(call llm.ToolCall) (string, *Event) {
	tool, ok := o.toolByName[call.Name]
	if !ok {
		return "Unknown tool: " + call.Name, nil
	}
	if err := llm.ValidateToolInput(tool, call.Input); err != nil {
		return "Invalid input for " + call.Name + ": " + err.Error(), nil
	}
	return dispatchToolCall(call.Name, call.Input, o.sess, o.model)
}

func extractLearnerFacingText(input json.RawMessage) string {
	var probe struct {
		Question    string `json:"question"`
		TaskContent string `json:"task_content"`
	}
	_ = json.Unmarshal(input, &probe)
	if probe.Question != "" {
		return probe.Question
	}
	return probe.TaskContent
}
