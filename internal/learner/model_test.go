package learner

import (
	"strings"
	"testing"

	"github.com/abhisek/fracmap/internal/domain"
)

func TestNewModelPrepopulatesAllStandards(t *testing.T) {
	m := NewModel()

	codes := domain.StandardCodes()
	if len(m.StandardsEvidence) != len(codes) {
		t.Fatalf("standards in model = %d, want %d", len(m.StandardsEvidence), len(codes))
	}
	for _, code := range codes {
		se, ok := m.StandardsEvidence[code]
		if !ok {
			t.Errorf("standard %s missing from fresh model", code)
			continue
		}
		if se.Status != StatusNotAssessed {
			t.Errorf("%s status = %q, want not_assessed", code, se.Status)
		}
		if se.Confidence != ConfidenceLow {
			t.Errorf("%s confidence = %q, want low", code, se.Confidence)
		}
	}
	if len(m.Misconceptions) != 0 {
		t.Errorf("fresh model has %d misconceptions, want 0", len(m.Misconceptions))
	}
	if m.ProgressionPosition != "not_determined" {
		t.Errorf("progression position = %q", m.ProgressionPosition)
	}
}

func TestUpdateStandard(t *testing.T) {
	m := NewModel()

	m.UpdateStandard("3.NF.A.1", StatusDemonstrated, ConfidenceHigh, "explained unit fractions clearly")

	se := m.StandardsEvidence["3.NF.A.1"]
	if se.Status != StatusDemonstrated || se.Confidence != ConfidenceHigh {
		t.Errorf("got %s/%s, want demonstrated/high", se.Status, se.Confidence)
	}
	if len(se.Evidence) != 1 {
		t.Fatalf("evidence entries = %d, want 1", len(se.Evidence))
	}

	// Same entry again: status stable, evidence log appends.
	m.UpdateStandard("3.NF.A.1", StatusDemonstrated, ConfidenceHigh, "explained unit fractions clearly")
	se = m.StandardsEvidence["3.NF.A.1"]
	if se.Status != StatusDemonstrated || se.Confidence != ConfidenceHigh {
		t.Errorf("repeat update changed status to %s/%s", se.Status, se.Confidence)
	}
	if len(se.Evidence) != 2 {
		t.Errorf("evidence entries after repeat = %d, want 2", len(se.Evidence))
	}
}

func TestUpdateStandardUnknownCodeIgnored(t *testing.T) {
	m := NewModel()
	before := len(m.StandardsEvidence)

	m.UpdateStandard("6.NF.Z.9", StatusDemonstrated, ConfidenceHigh, "nonsense")

	if len(m.StandardsEvidence) != before {
		t.Error("unknown code created a standard entry")
	}
}

func TestUpdateStandardEmptyEvidenceNotAppended(t *testing.T) {
	m := NewModel()
	m.UpdateStandard("4.NF.A.2", StatusPartial, ConfidenceMedium, "")
	if n := len(m.StandardsEvidence["4.NF.A.2"].Evidence); n != 0 {
		t.Errorf("evidence entries = %d, want 0", n)
	}
}

func TestAddMisconceptionResolvesDescription(t *testing.T) {
	m := NewModel()

	m.AddMisconception("foundational_bigger_denom", MisconceptionSuspected, "picked 1/5 over 1/3")

	me, ok := m.Misconceptions["foundational_bigger_denom"]
	if !ok {
		t.Fatal("misconception not recorded")
	}
	if me.Status != MisconceptionSuspected {
		t.Errorf("status = %q, want suspected", me.Status)
	}
	want := domain.GetMisconception("foundational_bigger_denom").Description
	if me.Description != want {
		t.Errorf("description = %q, want domain table description", me.Description)
	}
}

func TestAddMisconceptionUnknownIDKeepsRawID(t *testing.T) {
	m := NewModel()
	m.AddMisconception("made_up_by_engine", MisconceptionSuspected, "")
	if me := m.Misconceptions["made_up_by_engine"]; me.Description != "made_up_by_engine" {
		t.Errorf("description = %q, want raw id fallback", me.Description)
	}
}

func TestAddMisconceptionUpsert(t *testing.T) {
	m := NewModel()
	m.AddMisconception("operations_add_both", MisconceptionSuspected, "added 1/2 + 1/3 = 2/5")
	m.AddMisconception("operations_add_both", MisconceptionConfirmed, "repeated on 1/4 + 1/4")

	me := m.Misconceptions["operations_add_both"]
	if me.Status != MisconceptionConfirmed {
		t.Errorf("status = %q, want confirmed", me.Status)
	}
	if len(me.Evidence) != 2 {
		t.Errorf("evidence entries = %d, want 2", len(me.Evidence))
	}
}

func TestClearMisconception(t *testing.T) {
	m := NewModel()
	m.AddMisconception("equivalence_no_why", MisconceptionSuspected, "")
	m.ClearMisconception("equivalence_no_why")
	if m.Misconceptions["equivalence_no_why"].Status != MisconceptionCleared {
		t.Error("misconception not cleared")
	}

	// Clearing an id that was never added must not create a record.
	m.ClearMisconception("never_seen")
	if _, ok := m.Misconceptions["never_seen"]; ok {
		t.Error("clearing an unknown id created a record")
	}
}

func TestQueries(t *testing.T) {
	m := NewModel()
	m.UpdateStandard("3.NF.A.1", StatusDemonstrated, ConfidenceHigh, "")
	m.UpdateStandard("3.NF.A.2", StatusDemonstrated, ConfidenceLow, "")
	m.UpdateStandard("4.NF.A.1", StatusPartial, ConfidenceMedium, "")
	m.UpdateStandard("4.NF.A.2", StatusNotDemonstrated, ConfidenceHigh, "")

	if got := m.Strengths(); len(got) != 1 || got[0] != "3.NF.A.1" {
		t.Errorf("Strengths() = %v, want [3.NF.A.1]", got)
	}
	gaps := m.Gaps()
	if len(gaps) != 2 || gaps[0] != "4.NF.A.1" || gaps[1] != "4.NF.A.2" {
		t.Errorf("Gaps() = %v", gaps)
	}
	if got := len(m.UnassessedStandards()); got != len(domain.StandardCodes())-4 {
		t.Errorf("UnassessedStandards() = %d entries", got)
	}
	if m.AssessedCount() != 4 {
		t.Errorf("AssessedCount() = %d, want 4", m.AssessedCount())
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	m := NewModel()
	m.UpdateStandard("5.NF.A.1", StatusPartial, ConfidenceMedium, "found common denominator with prompting")
	m.AddMisconception("operations_common_denom_multiply", MisconceptionSuspected, "forgot to scale numerators")
	m.ProgressionPosition = "solid grade 4, emerging grade 5"
	m.OverallAssessment = "Strong conceptual base, operations shaky."

	raw, err := m.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	got, err := FromSnapshot(raw)
	if err != nil {
		t.Fatalf("FromSnapshot: %v", err)
	}

	se := got.StandardsEvidence["5.NF.A.1"]
	if se == nil || se.Status != StatusPartial || se.Confidence != ConfidenceMedium {
		t.Errorf("restored 5.NF.A.1 = %+v", se)
	}
	if got.Misconceptions["operations_common_denom_multiply"] == nil {
		t.Error("restored model lost misconception")
	}
	if got.ProgressionPosition != m.ProgressionPosition {
		t.Errorf("restored progression position = %q", got.ProgressionPosition)
	}
}

func TestSummaryString(t *testing.T) {
	m := NewModel()
	m.UpdateStandard("3.NF.A.1", StatusDemonstrated, ConfidenceHigh, "first explanation")
	m.UpdateStandard("3.NF.A.1", StatusDemonstrated, ConfidenceHigh, "second explanation")
	m.UpdateStandard("3.NF.A.1", StatusDemonstrated, ConfidenceHigh, "third explanation")
	m.UpdateLearningComponent("3.NF.A.1", "3.NF.A.1.a", StatusDemonstrated, "")
	m.AddMisconception("foundational_bigger_denom", MisconceptionSuspected, "chose 1/5 over 1/3")

	s := m.SummaryString()
	for _, want := range []string{
		"Progression position: not_determined",
		"3.NF.A.1: demonstrated (confidence: high)",
		"LC 3.NF.A.1.a: demonstrated",
		"Misconceptions:",
		"Evidence: chose 1/5 over 1/3",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("summary missing %q", want)
		}
	}
	// Only the last two evidence items render.
	if strings.Contains(s, "first explanation") {
		t.Error("summary should truncate to the last two evidence items")
	}
	if !strings.Contains(s, "third explanation") {
		t.Error("summary missing most recent evidence")
	}
}

func TestParseValidators(t *testing.T) {
	if _, ok := ParseStatus("demonstrated"); !ok {
		t.Error("ParseStatus rejected demonstrated")
	}
	if _, ok := ParseStatus("mastered"); ok {
		t.Error("ParseStatus accepted invalid value")
	}
	if _, ok := ParseConfidence("medium"); !ok {
		t.Error("ParseConfidence rejected medium")
	}
	if _, ok := ParseMisconceptionState("cleared"); !ok {
		t.Error("ParseMisconceptionState rejected cleared")
	}
	if _, ok := ParseMisconceptionState("resolved"); ok {
		t.Error("ParseMisconceptionState accepted invalid value")
	}
}
