package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func testSchema() *Schema {
	return &Schema{
		Name:        "test-object",
		Description: "A test object",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"name":  map[string]any{"type": "string"},
				"age":   map[string]any{"type": "integer", "minimum": 0},
				"grade": map[string]any{"type": "string", "enum": []any{"A", "B", "C"}},
			},
			"required": []any{"name", "age"},
		},
	}
}

func TestValidateResponse_ValidJSON(t *testing.T) {
	raw := json.RawMessage(`{"name":"Alice","age":10,"grade":"A"}`)
	err := validateResponse(testSchema(), raw)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_MissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"name":"Charlie"}`)
	err := validateResponse(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for missing required field")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_WrongType(t *testing.T) {
	raw := json.RawMessage(`{"name":"Dave","age":"ten"}`)
	err := validateResponse(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for wrong type")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_MalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{"name":`)
	err := validateResponse(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}

func TestValidateResponse_NilSchemaPasses(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`not even json`)); err != nil {
		t.Fatalf("nil schema should skip validation, got: %v", err)
	}
}

func TestValidateToolInput(t *testing.T) {
	tool := Tool{
		Name: "ask_question",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"question":        map[string]any{"type": "string"},
				"target_standard": map[string]any{"type": "string"},
			},
			"required": []any{"question"},
		},
	}

	if err := ValidateToolInput(tool, json.RawMessage(`{"question":"Which is bigger, 1/3 or 1/5?"}`)); err != nil {
		t.Fatalf("valid input rejected: %v", err)
	}

	err := ValidateToolInput(tool, json.RawMessage(`{"target_standard":"3.NF.A.3"}`))
	if err == nil {
		t.Fatal("expected error for missing question field")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateToolInput_NoSchemaPasses(t *testing.T) {
	if err := ValidateToolInput(Tool{Name: "bare"}, json.RawMessage(`{}`)); err != nil {
		t.Fatalf("tool without schema should skip validation, got: %v", err)
	}
}
