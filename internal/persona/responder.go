package persona

import (
	"context"
	"fmt"

	"github.com/abhisek/fracmap/internal/llm"
)

// responderMaxTokens caps persona replies; they are 1-4 sentences by
// construction.
const responderMaxTokens = 300

// Responder generates in-character learner replies. It keeps its own
// conversation history, fully independent of the assessment agent's
// transcript.
type Responder struct {
	persona  *Persona
	provider llm.Provider
	history  []llm.Message
}

// NewResponder builds a responder for the named persona.
func NewResponder(name string, provider llm.Provider) (*Responder, error) {
	p, err := Get(name)
	if err != nil {
		return nil, err
	}
	return &Responder{persona: p, provider: provider}, nil
}

// Persona returns the character this responder plays.
func (r *Responder) Persona() *Persona { return r.persona }

// Respond answers the agent's question in character and records both
// sides in the responder's history.
func (r *Responder) Respond(ctx context.Context, agentMessage string) (string, error) {
	r.history = append(r.history, llm.Message{Role: llm.RoleUser, Content: agentMessage})

	resp, err := r.provider.Generate(llm.WithPurpose(ctx, llm.PurposePersonaResponse), llm.Request{
		System:    r.persona.SystemPrompt,
		Messages:  r.history,
		MaxTokens: responderMaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("persona %s response: %w", r.persona.Name, err)
	}

	r.history = append(r.history, llm.Message{Role: llm.RoleAssistant, Content: resp.Text})
	return resp.Text, nil
}
