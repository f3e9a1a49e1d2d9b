package report

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/fracmap/internal/domain"
	"github.com/abhisek/fracmap/internal/learner"
	"github.com/abhisek/fracmap/internal/session"
)

func concludedSession(t *testing.T, model *learner.Model, payload ConcludePayload) *session.Session {
	t.Helper()
	sess := session.New(session.ModeSynthetic, "mia")

	snap, err := model.Snapshot()
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	sess.LearnerModel = snap

	raw, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	sess.Conclude(raw)
	return sess
}

func TestBuildConclusionEntryWins(t *testing.T) {
	model := learner.NewModel()
	model.UpdateStandard("3.NF.A.1", learner.StatusPartial, learner.ConfidenceMedium, "counted pieces")

	sess := concludedSession(t, model, ConcludePayload{
		EvidenceMap: []StandardEntry{{
			StandardCode:        "3.NF.A.1",
			StandardDescription: "Understand unit fractions",
			Status:              "demonstrated",
			Confidence:          "high",
			Evidence:            []string{"final synthesis"},
		}},
		StopReason: "sufficient_evidence",
	})

	rep, err := Build(sess)
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	var entry *StandardEntry
	for i := range rep.StandardsEvidenceMap {
		if rep.StandardsEvidenceMap[i].StandardCode == "3.NF.A.1" {
			entry = &rep.StandardsEvidenceMap[i]
		}
	}
	if entry == nil {
		t.Fatal("3.NF.A.1 missing from merged map")
	}
	if entry.Status != "demonstrated" {
		t.Errorf("status = %q, want conclusion entry to win over model's partial", entry.Status)
	}
	if entry.Evidence[0] != "final synthesis" {
		t.Errorf("evidence = %v", entry.Evidence)
	}
}

func TestBuildEveryStandardExactlyOnce(t *testing.T) {
	model := learner.NewModel()
	sess := concludedSession(t, model, ConcludePayload{
		EvidenceMap: []StandardEntry{{
			StandardCode:        "4.NF.A.1",
			StandardDescription: "Equivalent fractions",
			Status:              "partial",
			Confidence:          "medium",
		}},
	})

	rep, err := Build(sess)
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	codes := domain.StandardCodes()
	if len(rep.StandardsEvidenceMap) != len(codes) {
		t.Fatalf("entries = %d, want %d", len(rep.StandardsEvidenceMap), len(codes))
	}
	seen := make(map[string]int)
	for _, entry := range rep.StandardsEvidenceMap {
		seen[entry.StandardCode]++
	}
	for _, code := range codes {
		if seen[code] != 1 {
			t.Errorf("standard %s appears %d times", code, seen[code])
		}
	}
}

func TestBuildFallbackUsesModelRecord(t *testing.T) {
	model := learner.NewModel()
	model.UpdateStandard("3.NF.A.2", learner.StatusNotDemonstrated, learner.ConfidenceHigh, "could not place 1/2")

	// Conclusion payload omits 3.NF.A.2 entirely.
	sess := concludedSession(t, model, ConcludePayload{StopReason: "max_turns"})

	rep, err := Build(sess)
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	for _, entry := range rep.StandardsEvidenceMap {
		if entry.StandardCode != "3.NF.A.2" {
			continue
		}
		if entry.Status != "not_demonstrated" || entry.Confidence != "high" {
			t.Errorf("fallback entry = %+v", entry)
		}
		if len(entry.Evidence) != 1 || entry.Evidence[0] != "could not place 1/2" {
			t.Errorf("fallback evidence = %v", entry.Evidence)
		}
		return
	}
	t.Fatal("3.NF.A.2 missing from merged map")
}

func TestBuildWithoutSnapshotUsesFreshModel(t *testing.T) {
	sess := session.New(session.ModeReal, "")
	rep, err := Build(sess)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(rep.StandardsEvidenceMap) != len(domain.StandardCodes()) {
		t.Errorf("entries = %d", len(rep.StandardsEvidenceMap))
	}
	for _, entry := range rep.StandardsEvidenceMap {
		if entry.Status != "not_assessed" {
			t.Errorf("%s status = %q", entry.StandardCode, entry.Status)
		}
	}
	if rep.EndedAt.IsZero() {
		t.Error("ended_at not defaulted for unconcluded session")
	}
}

func TestMarkdownSectionOrder(t *testing.T) {
	model := learner.NewModel()
	sess := concludedSession(t, model, ConcludePayload{
		ProgressionSummary: "Solidly in grade 3.",
		MisconceptionReport: []MisconceptionEntry{{
			Description: "Bigger denominator means bigger fraction",
			Status:      "confirmed",
			Evidence:    "said 1/8 > 1/3",
		}},
		OverallNarrative:     "The learner reasons well about part-whole models.",
		RecommendedNextSteps: []string{"Introduce number lines."},
		StopReason:           "sufficient_evidence",
	})

	rep, err := Build(sess)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	md := rep.Markdown()

	sections := []string{
		"# Evidence of Learning Report",
		"**Learner**: mia",
		"## Progression Summary",
		"Solidly in grade 3.",
		"## Standards Evidence Map",
		"## Misconception Report",
		"Bigger denominator means bigger fraction",
		"## Overall Narrative",
		"## Recommended Next Steps",
		"- Introduce number lines.",
	}
	pos := 0
	for _, want := range sections {
		idx := strings.Index(md[pos:], want)
		if idx < 0 {
			t.Fatalf("section %q missing or out of order", want)
		}
		pos += idx
	}

	if !strings.Contains(md, "**Date**: "+time.Now().UTC().Format("2006-01-02")) {
		t.Error("date line missing")
	}
}
