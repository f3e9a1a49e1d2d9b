package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestMockProvider_ReturnsCannedResponses(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Text: "thinking about the reply", Usage: Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15}},
		MockResponse{ToolCalls: []ToolCall{
			{ID: "tc_1", Name: "ask_question", Input: json.RawMessage(`{"question":"What is 1/2 of 8?"}`)},
		}},
	)

	resp1, err := mock.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "first"}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp1.Text != "thinking about the reply" {
		t.Fatalf("unexpected text: %q", resp1.Text)
	}
	if resp1.Usage.InputTokens != 10 {
		t.Fatalf("expected 10 input tokens, got %d", resp1.Usage.InputTokens)
	}
	if resp1.StopReason != "end" {
		t.Fatalf("expected stop reason 'end', got %q", resp1.StopReason)
	}

	resp2, err := mock.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "second"}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp2.ToolCalls) != 1 || resp2.ToolCalls[0].Name != "ask_question" {
		t.Fatalf("unexpected tool calls: %+v", resp2.ToolCalls)
	}
	if resp2.StopReason != "tool_use" {
		t.Fatalf("expected stop reason 'tool_use', got %q", resp2.StopReason)
	}
}

func TestMockProvider_EmptyQueueReturnsError(t *testing.T) {
	mock := NewMockProvider()
	_, err := mock.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error from empty queue")
	}
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got: %T", err)
	}
}

func TestMockProvider_RecordsCalls(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Text: "ok"},
	)

	req := Request{
		System:   "sys",
		Messages: []Message{{Role: RoleUser, Content: "hello"}},
		Tools:    []Tool{{Name: "ask_question"}},
	}
	_, _ = mock.Generate(context.Background(), req)

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 recorded call, got %d", mock.CallCount())
	}
	last := mock.LastRequest()
	if last.System != "sys" || len(last.Tools) != 1 {
		t.Fatalf("recorded request lost fields: %+v", last)
	}
}

func TestErrorUnwrapping(t *testing.T) {
	inner := errors.New("socket closed")
	err := error(&ErrProviderUnavailable{Err: inner})
	if !errors.Is(err, inner) {
		t.Error("ErrProviderUnavailable does not unwrap")
	}

	rl := error(&ErrRateLimit{Err: inner})
	var target *ErrRateLimit
	if !errors.As(rl, &target) {
		t.Error("errors.As failed on ErrRateLimit")
	}
}
