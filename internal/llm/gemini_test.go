package llm

import (
	"testing"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.0-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"}, // Pass-through
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, geminiModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestBuildGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question":        map[string]any{"type": "string"},
			"target_standard": map[string]any{"type": "string", "enum": []any{"3.NF.A.1", "3.NF.A.2"}},
			"evidence": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required": []any{"question"},
	}

	schema := buildGeminiSchema(def)

	if schema.Type != "OBJECT" {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	if len(schema.Properties) != 3 {
		t.Fatalf("expected 3 properties, got %d", len(schema.Properties))
	}
	if schema.Properties["question"].Type != "STRING" {
		t.Fatalf("expected STRING for question, got %s", schema.Properties["question"].Type)
	}
	if len(schema.Properties["target_standard"].Enum) != 2 {
		t.Fatalf("expected 2 enum values, got %d", len(schema.Properties["target_standard"].Enum))
	}
	if schema.Properties["evidence"].Type != "ARRAY" {
		t.Fatalf("expected ARRAY for evidence, got %s", schema.Properties["evidence"].Type)
	}
	if schema.Properties["evidence"].Items.Type != "STRING" {
		t.Fatalf("expected STRING for evidence items, got %s", schema.Properties["evidence"].Items.Type)
	}
	if len(schema.Required) != 1 {
		t.Fatalf("expected 1 required field, got %d", len(schema.Required))
	}
}

func TestBuildGeminiTools(t *testing.T) {
	tools := buildGeminiTools([]Tool{
		{
			Name:        "record_observation",
			Description: "Record what the last reply reveals",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"observation": map[string]any{"type": "string"},
				},
				"required": []string{"observation"},
			},
		},
	})

	if len(tools) != 1 || len(tools[0].FunctionDeclarations) != 1 {
		t.Fatalf("unexpected tool shape: %+v", tools)
	}
	decl := tools[0].FunctionDeclarations[0]
	if decl.Name != "record_observation" {
		t.Errorf("name = %q", decl.Name)
	}
	if decl.Parameters == nil || decl.Parameters.Type != "OBJECT" {
		t.Errorf("parameters not mapped: %+v", decl.Parameters)
	}
	if len(decl.Parameters.Required) != 1 {
		t.Errorf("required = %v", decl.Parameters.Required)
	}
}
