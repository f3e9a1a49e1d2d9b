package domain

import (
	"strings"
	"testing"
)

func TestStandardLookup(t *testing.T) {
	s := GetStandard("3.NF.A.1")
	if s == nil {
		t.Fatal("3.NF.A.1 not found")
	}
	if s.Grade != 3 {
		t.Errorf("grade = %d, want 3", s.Grade)
	}
	if len(s.LearningComponents) != 2 {
		t.Errorf("learning components = %d, want 2", len(s.LearningComponents))
	}

	if GetStandard("9.XX.Z.9") != nil {
		t.Error("expected nil for unknown code")
	}
}

func TestStandardCodesCoverProgression(t *testing.T) {
	codes := StandardCodes()
	if len(codes) != 11 {
		t.Fatalf("standard count = %d, want 11", len(codes))
	}

	known := make(map[string]bool, len(codes))
	for _, c := range codes {
		known[c] = true
	}
	for _, level := range Progression() {
		for _, c := range level.Standards {
			if !known[c] {
				t.Errorf("progression references unknown standard %s", c)
			}
		}
		for _, c := range level.Prerequisites {
			if !known[c] {
				t.Errorf("progression prerequisite references unknown standard %s", c)
			}
		}
	}
}

func TestMisconceptionRegistry(t *testing.T) {
	m := GetMisconception("foundational_bigger_denom")
	if m == nil {
		t.Fatal("foundational_bigger_denom not found")
	}
	if m.Category != CategoryFoundational {
		t.Errorf("category = %q, want foundational", m.Category)
	}

	for _, m := range AllMisconceptions() {
		for _, code := range m.RelatedStandards {
			if GetStandard(code) == nil {
				t.Errorf("misconception %s references unknown standard %s", m.ID, code)
			}
		}
	}
}

func TestMisconceptionsForStandard(t *testing.T) {
	ms := MisconceptionsForStandard("5.NF.B.4")
	if len(ms) != 2 {
		t.Fatalf("misconceptions for 5.NF.B.4 = %d, want 2", len(ms))
	}
}

func TestProgressionNavigation(t *testing.T) {
	prereqs := Prerequisites("4.NF.A.1")
	if len(prereqs) != 3 || prereqs[0] != "3.NF.A.1" {
		t.Errorf("prerequisites for 4.NF.A.1 = %v", prereqs)
	}

	next := NextStandards("3.NF.A.2")
	if len(next) != 3 || next[0] != "4.NF.A.1" {
		t.Errorf("next standards for 3.NF.A.2 = %v", next)
	}

	if NextStandards("5.NF.B.7") != nil {
		t.Error("grade 5 standards should have no next level")
	}
}

func TestTaskLibraryIntegrity(t *testing.T) {
	for _, task := range TaskLibrary() {
		if GetStandard(task.TargetStandard) == nil {
			t.Errorf("task %s targets unknown standard %s", task.ID, task.TargetStandard)
		}
		if task.ExpectedAnswer == "" {
			t.Errorf("task %s has no expected answer", task.ID)
		}
	}

	if len(TasksByType("compare_fractions")) != 3 {
		t.Errorf("compare_fractions tasks = %d, want 3", len(TasksByType("compare_fractions")))
	}
	if len(TasksForStandard("3.NF.A.2")) != 2 {
		t.Errorf("tasks for 3.NF.A.2 = %d, want 2", len(TasksForStandard("3.NF.A.2")))
	}
}

func TestSummariesRender(t *testing.T) {
	tests := []struct {
		name    string
		render  func() string
		needles []string
	}{
		{"standards", StandardsSummary, []string{"**Grade 3**", "`3.NF.A.1`", "LC `5.NF.A.1.d`"}},
		{"misconceptions", MisconceptionsSummary, []string{"**Foundational**", "operations_add_both"}},
		{"progression", ProgressionSummary, []string{"Grade 2:", "Leads to: 5.NF.A.1"}},
		{"tasks", TaskLibrarySummary, []string{"**word_problem**", "[3.NF.A.3, entry]"}},
	}
	for _, tt := range tests {
		out := tt.render()
		for _, needle := range tt.needles {
			if !strings.Contains(out, needle) {
				t.Errorf("%s summary missing %q", tt.name, needle)
			}
		}
	}
}
