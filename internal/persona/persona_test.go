package persona

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/fracmap/internal/llm"
)

func TestGetCaseInsensitive(t *testing.T) {
	for _, name := range []string{"mia", "Mia", "MIA"} {
		p, err := Get(name)
		if err != nil {
			t.Fatalf("Get(%q): %v", name, err)
		}
		if p.Name != "Mia" || p.GradeLevel != 3 {
			t.Errorf("Get(%q) = %+v", name, p)
		}
	}
}

func TestGetUnknown(t *testing.T) {
	_, err := Get("zoe")
	var unknown *ErrUnknownPersona
	if !errors.As(err, &unknown) {
		t.Fatalf("err = %v", err)
	}
	if !strings.Contains(err.Error(), "derek") {
		t.Errorf("error should list available personas: %v", err)
	}
}

func TestNames(t *testing.T) {
	got := Names()
	want := []string{"derek", "mia", "priya"}
	if len(got) != len(want) {
		t.Fatalf("names = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("names[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestPersonaPromptsStayInCharacter(t *testing.T) {
	tests := []struct {
		name   string
		needle string
	}{
		{"mia", "Bigger denominator = bigger fraction"},
		{"derek", "1/2 + 1/3 = 2/5"},
		{"priya", "flip and multiply"},
	}
	for _, tt := range tests {
		p, err := Get(tt.name)
		if err != nil {
			t.Fatalf("Get(%q): %v", tt.name, err)
		}
		if !strings.Contains(p.SystemPrompt, tt.needle) {
			t.Errorf("%s prompt missing misconception %q", tt.name, tt.needle)
		}
	}
}

func TestResponderKeepsHistory(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Text: "Hmm... I think 1/8 is bigger because 8 is bigger!"},
		llm.MockResponse{Text: "Like when you have a pizza..."},
	)
	r, err := NewResponder("mia", mock)
	if err != nil {
		t.Fatalf("new responder: %v", err)
	}

	first, err := r.Respond(context.Background(), "Which is bigger, 1/8 or 1/4?")
	if err != nil {
		t.Fatalf("respond: %v", err)
	}
	if !strings.Contains(first, "1/8 is bigger") {
		t.Errorf("reply = %q", first)
	}

	if _, err := r.Respond(context.Background(), "Tell me more."); err != nil {
		t.Fatalf("respond: %v", err)
	}

	// Second request carries the full back-and-forth.
	req := mock.LastRequest()
	if len(req.Messages) != 3 {
		t.Fatalf("history length = %d, want 3", len(req.Messages))
	}
	if req.Messages[1].Role != llm.RoleAssistant {
		t.Errorf("history[1] role = %s", req.Messages[1].Role)
	}
	if req.System == "" || !strings.Contains(req.System, "Mia") {
		t.Error("persona system prompt not sent")
	}
}

func TestNewResponderUnknownPersona(t *testing.T) {
	_, err := NewResponder("zoe", llm.NewMockProvider())
	var unknown *ErrUnknownPersona
	if !errors.As(err, &unknown) {
		t.Fatalf("err = %v", err)
	}
}
