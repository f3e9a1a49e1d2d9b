package agent

// Event names emitted over the per-turn event stream.
const (
	EventSessionStarted     = "session_started"
	EventAgentThinking      = "agent_thinking"
	EventAgentQuestion      = "agent_question"
	EventAgentTask          = "agent_task"
	EventObservation        = "observation"
	EventModelUpdate        = "model_update"
	EventStrategyShift      = "strategy_shift"
	EventAssessmentComplete = "assessment_complete"

	// EventLearnerResponse is emitted by hosts that echo learner input
	// back onto the stream (synthetic mode). The core loop itself never
	// emits it.
	EventLearnerResponse = "learner_response"
)

// Event is one notification on the assessment event stream. Data is
// always JSON-serializable.
type Event struct {
	Name string `json:"event"`
	Data any    `json:"data"`
}
