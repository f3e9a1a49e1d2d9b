package llm

import (
	"context"
	"encoding/json"
)

// Provider is the core abstraction for LLM interaction.
// Consumers call Generate with a Request and receive text, structured
// JSON, or tool invocations depending on what the request asked for.
type Provider interface {
	// Generate sends a prompt to the LLM and returns its response.
	// When the request carries Tools, the response may contain tool
	// calls the caller is expected to execute and feed back. When the
	// request carries a Schema instead, the response Content is JSON
	// validated against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes what to send to the LLM.
type Request struct {
	// System is the system prompt. Sets the LLM's role and constraints.
	System string

	// Messages is the conversation history.
	Messages []Message

	// Tools is the catalog of callable operations advertised to the
	// model. When set, the model may respond with tool calls instead
	// of (or alongside) free text. Mutually exclusive with Schema.
	Tools []Tool

	// Schema is the JSON Schema the response must conform to.
	// When set, the provider uses its native structured output mechanism.
	Schema *Schema

	// MaxTokens is the maximum number of tokens in the response.
	MaxTokens int

	// Temperature controls randomness. Range: 0.0 - 1.0.
	// Default: 0.0 (deterministic) when not set.
	Temperature float64
}

// Message represents a single message in the conversation. A message
// carries text content, tool calls (assistant), or tool results (tool),
// mirroring the shape every backing API expects.
type Message struct {
	Role        Role
	Content     string
	ToolCalls   []ToolCall
	ToolResults []ToolResult
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"

	// RoleTool marks a message carrying the results of tool calls made
	// in the preceding assistant message.
	RoleTool Role = "tool"
)

// Tool describes one callable operation offered to the model.
type Tool struct {
	// Name identifies the tool. Snake-case, e.g. "ask_question".
	Name string

	// Description tells the model when to call this tool.
	Description string

	// InputSchema is the JSON Schema for the tool's input, as a map.
	InputSchema map[string]any
}

// ToolCall is one tool invocation requested by the model.
type ToolCall struct {
	// ID is the provider-assigned call id, echoed back in the
	// matching ToolResult. Synthesized for providers without ids.
	ID    string
	Name  string
	Input json.RawMessage
}

// ToolResult carries the outcome of executing one tool call back to
// the model.
type ToolResult struct {
	ToolCallID string
	Name       string
	Content    string
	IsError    bool
}

// Schema defines the JSON structure expected from the LLM.
type Schema struct {
	// Name identifies this schema. Kebab-case, e.g. "persona-reply".
	Name string

	// Description is a human-readable description of what this schema
	// represents. Sent to the LLM to guide generation.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds the LLM's output.
type Response struct {
	// Text is the free-text portion of the response, if any.
	Text string

	// ToolCalls lists the tool invocations the model requested, in
	// order. Empty when the model responded with text only.
	ToolCalls []ToolCall

	// Content is the validated JSON object when the request carried a
	// Schema; nil otherwise.
	Content json.RawMessage

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason indicates why generation stopped.
	// Normalized to: "end", "tool_use", "max_tokens", "error"
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
