package agent

import "github.com/abhisek/fracmap/internal/llm"

// Tool names in the assessment catalog.
const (
	toolAskQuestion        = "ask_question"
	toolPoseTask           = "pose_task"
	toolAssessResponse     = "assess_response"
	toolUpdateLearnerModel = "update_learner_model"
	toolAdjustStrategy     = "adjust_strategy"
	toolConcludeAssessment = "conclude_assessment"
)

// Enumerated values shared by tool schemas.
var (
	depthValues      = []string{"recall", "conceptual", "application", "transfer"}
	statusValues     = []string{"demonstrated", "partial", "not_demonstrated", "not_assessed"}
	confidenceValues = []string{"low", "medium", "high"}
	directionValues  = []string{"probe_backward", "probe_forward", "probe_deeper", "probe_lateral"}
	stopReasonValues = []string{"sufficient_evidence", "max_turns", "learner_disengaged"}
	taskTypeValues   = []string{
		"compare_fractions",
		"order_fractions",
		"find_equivalent",
		"place_on_number_line",
		"compute",
		"decompose",
		"word_problem",
	}
)

// ToolCatalog returns the six assessment tools advertised to the model
// on every invocation. Most tools are cognitive: they structure the
// agent's reasoning and update internal state. Only ask_question and
// pose_task produce learner-facing output, and conclude_assessment
// triggers report generation.
func ToolCatalog() []llm.Tool {
	return []llm.Tool{
		{
			Name: toolAskQuestion,
			Description: "Ask the learner a conversational question to probe their " +
				"understanding of fractions. Only the 'question' text will be " +
				"shown to the learner. The 'intent' field is your strategic " +
				"reasoning — logged but not shown to the learner.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"question": map[string]any{
						"type":        "string",
						"description": "The question to ask the learner. Should be conversational and encouraging.",
					},
					"target_standard": map[string]any{
						"type":        "string",
						"description": "Which CCSS-M standard this question probes, e.g. '3.NF.A.1'",
					},
					"target_learning_component": map[string]any{
						"type":        "string",
						"description": "Specific learning component being assessed, if applicable",
					},
					"depth": map[string]any{
						"type":        "string",
						"enum":        depthValues,
						"description": "The depth of understanding this question probes",
					},
					"intent": map[string]any{
						"type":        "string",
						"description": "Strategic reasoning for why you're asking this question now. Not shown to learner.",
					},
				},
				"required": []string{"question", "target_standard", "depth", "intent"},
			},
		},
		{
			Name: toolPoseTask,
			Description: "Present a structured mini-task to the learner. The 'task_content' " +
				"will be shown to the learner. Include expected_answer and " +
				"common_errors to help you evaluate the response later.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"task_type": map[string]any{
						"type":        "string",
						"enum":        taskTypeValues,
						"description": "The type of mini-task",
					},
					"task_content": map[string]any{
						"type":        "string",
						"description": "The specific task presented to the learner",
					},
					"target_standard": map[string]any{
						"type":        "string",
						"description": "Which CCSS-M standard this task assesses",
					},
					"expected_answer": map[string]any{
						"type":        "string",
						"description": "What a correct response looks like",
					},
					"common_errors": map[string]any{
						"type":        "array",
						"items":       map[string]any{"type": "string"},
						"description": "Errors that would indicate specific misconceptions",
					},
					"intent": map[string]any{
						"type":        "string",
						"description": "Strategic reasoning for this task",
					},
				},
				"required": []string{
					"task_type",
					"task_content",
					"target_standard",
					"expected_answer",
					"common_errors",
					"intent",
				},
			},
		},
		{
			Name: toolAssessResponse,
			Description: "After each learner response, analyze what it reveals about " +
				"their understanding. You MUST call this after every learner " +
				"response before doing anything else.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"response_reveals": map[string]any{
						"type":        "string",
						"description": "What this response tells us about the learner's understanding",
					},
					"evidence_for": map[string]any{
						"type":        "array",
						"items":       evidenceRefSchema(),
						"description": "Standards/LCs this provides POSITIVE evidence for",
					},
					"evidence_against": map[string]any{
						"type":        "array",
						"items":       evidenceRefSchema(),
						"description": "Standards/LCs this provides NEGATIVE evidence for",
					},
					"misconceptions_detected": map[string]any{
						"type":        "array",
						"items":       map[string]any{"type": "string"},
						"description": "Specific misconceptions surfaced",
					},
					"misconceptions_ruled_out": map[string]any{
						"type":        "array",
						"items":       map[string]any{"type": "string"},
						"description": "Misconceptions we can now eliminate",
					},
					"notes": map[string]any{
						"type":        "string",
						"description": "Your reasoning about this response",
					},
				},
				"required": []string{
					"response_reveals",
					"evidence_for",
					"evidence_against",
					"misconceptions_detected",
					"misconceptions_ruled_out",
					"notes",
				},
			},
		},
		{
			Name: toolUpdateLearnerModel,
			Description: "Update the running model of the learner's knowledge state. " +
				"Call this after assess_response to record your updated " +
				"understanding of the learner.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"standards_status": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"standard_code": map[string]any{"type": "string"},
								"status": map[string]any{
									"type": "string",
									"enum": statusValues,
								},
								"confidence": map[string]any{
									"type": "string",
									"enum": confidenceValues,
								},
								"evidence_summary": map[string]any{"type": "string"},
							},
							"required": []string{"standard_code", "status", "confidence", "evidence_summary"},
						},
						"description": "For each standard assessed so far: current status and evidence summary",
					},
					"progression_position": map[string]any{
						"type":        "string",
						"description": "Where the learner sits on the fractions progression",
					},
					"active_misconceptions": map[string]any{
						"type":        "array",
						"items":       map[string]any{"type": "string"},
						"description": "Misconception IDs currently held by learner",
					},
					"cleared_misconceptions": map[string]any{
						"type":        "array",
						"items":       map[string]any{"type": "string"},
						"description": "Misconception IDs ruled out by evidence",
					},
					"overall_assessment": map[string]any{
						"type":        "string",
						"description": "Current holistic picture of the learner",
					},
				},
				"required": []string{
					"standards_status",
					"progression_position",
					"active_misconceptions",
					"cleared_misconceptions",
					"overall_assessment",
				},
			},
		},
		{
			Name: toolAdjustStrategy,
			Description: "Plan your next assessment move based on what you've learned. " +
				"Call this after update_learner_model to decide what to probe next.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"current_picture": map[string]any{
						"type":        "string",
						"description": "What we know so far about the learner",
					},
					"gaps_in_evidence": map[string]any{
						"type":        "array",
						"items":       map[string]any{"type": "string"},
						"description": "What we still need to assess",
					},
					"next_move": map[string]any{
						"type":        "string",
						"description": "What to probe next and why",
					},
					"progression_direction": map[string]any{
						"type":        "string",
						"enum":        directionValues,
						"description": "Direction to move on the learning progression",
					},
				},
				"required": []string{
					"current_picture",
					"gaps_in_evidence",
					"next_move",
					"progression_direction",
				},
			},
		},
		{
			Name: toolConcludeAssessment,
			Description: "End the assessment and produce the final evidence report. " +
				"Call this when you have gathered sufficient evidence across " +
				"the progression, or when the maximum number of turns has been " +
				"reached. This must be your FINAL tool call.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"evidence_map": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"standard_code":        map[string]any{"type": "string"},
								"standard_description": map[string]any{"type": "string"},
								"status": map[string]any{
									"type": "string",
									"enum": statusValues,
								},
								"confidence": map[string]any{
									"type": "string",
									"enum": confidenceValues,
								},
								"evidence": map[string]any{
									"type":  "array",
									"items": map[string]any{"type": "string"},
								},
								"learning_components": map[string]any{
									"type": "array",
									"items": map[string]any{
										"type": "object",
										"properties": map[string]any{
											"code":        map[string]any{"type": "string"},
											"description": map[string]any{"type": "string"},
											"status":      map[string]any{"type": "string"},
										},
									},
								},
							},
							"required": []string{
								"standard_code",
								"standard_description",
								"status",
								"confidence",
								"evidence",
							},
						},
						"description": "Per-standard evidence with status and confidence",
					},
					"progression_summary": map[string]any{
						"type":        "string",
						"description": "Where the learner is on the fractions progression and what that means",
					},
					"misconception_report": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"description": map[string]any{"type": "string"},
								"status": map[string]any{
									"type": "string",
									"enum": []string{"confirmed", "suspected", "cleared"},
								},
								"evidence": map[string]any{"type": "string"},
							},
							"required": []string{"description", "status", "evidence"},
						},
						"description": "Each misconception probed with status and evidence",
					},
					"overall_narrative": map[string]any{
						"type":        "string",
						"description": "A 2-3 paragraph teacher-readable summary of this learner's understanding",
					},
					"recommended_next_steps": map[string]any{
						"type":        "array",
						"items":       map[string]any{"type": "string"},
						"description": "Specific, actionable recommendations for instruction",
					},
					"stop_reason": map[string]any{
						"type":        "string",
						"enum":        stopReasonValues,
						"description": "Why the assessment ended",
					},
				},
				"required": []string{
					"evidence_map",
					"progression_summary",
					"misconception_report",
					"overall_narrative",
					"recommended_next_steps",
					"stop_reason",
				},
			},
		},
	}
}

func evidenceRefSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"standard_code":      map[string]any{"type": "string"},
			"learning_component": map[string]any{"type": "string"},
			"confidence": map[string]any{
				"type": "string",
				"enum": confidenceValues,
			},
		},
		"required": []string{"standard_code", "confidence"},
	}
}
