package store

import (
	"context"
	"encoding/json"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAssessmentSaveIsUpsert(t *testing.T) {
	s := openTestStore(t)
	repo := s.AssessmentRepo()
	ctx := context.Background()

	started := time.Now().UTC().Truncate(time.Second)
	rec := &AssessmentRecord{
		SessionID:    "sess-1",
		Mode:         "real",
		StartedAt:    started,
		TurnCount:    3,
		Conversation: json.RawMessage(`[{"turn_number":1,"role":"agent","content":"hi","timestamp":"2026-08-28T10:00:00Z"}]`),
		LearnerModel: json.RawMessage(`{"progression_position":"not_determined"}`),
	}
	if err := repo.Save(ctx, rec); err != nil {
		t.Fatalf("save: %v", err)
	}

	// Second save with updated fields overwrites the same row.
	ended := started.Add(5 * time.Minute)
	rec.TurnCount = 8
	rec.EndedAt = &ended
	rec.Report = json.RawMessage(`{"stop_reason":"sufficient_evidence"}`)
	if err := repo.Save(ctx, rec); err != nil {
		t.Fatalf("re-save: %v", err)
	}

	got, err := repo.Get(ctx, "sess-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("record not found after save")
	}
	if got.TurnCount != 8 {
		t.Errorf("turn count = %d, want 8", got.TurnCount)
	}
	if got.EndedAt == nil || !got.EndedAt.Equal(ended) {
		t.Errorf("ended at = %v, want %v", got.EndedAt, ended)
	}
	var report map[string]any
	if err := json.Unmarshal(got.Report, &report); err != nil {
		t.Fatalf("report not JSON: %v", err)
	}
	if report["stop_reason"] != "sufficient_evidence" {
		t.Errorf("report = %v", report)
	}

	rows, err := repo.List(ctx, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1 (upsert, not insert)", len(rows))
	}
}

func TestAssessmentGetMissing(t *testing.T) {
	s := openTestStore(t)
	got, err := s.AssessmentRepo().Get(context.Background(), "nope")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != nil {
		t.Fatal("expected nil for unknown session id")
	}
}

func TestAssessmentListOrder(t *testing.T) {
	s := openTestStore(t)
	repo := s.AssessmentRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i, id := range []string{"old", "mid", "new"} {
		err := repo.Save(ctx, &AssessmentRecord{
			SessionID: id,
			Mode:      "synthetic",
			StartedAt: base.Add(time.Duration(i) * time.Hour),
		})
		if err != nil {
			t.Fatalf("save %s: %v", id, err)
		}
	}

	rows, err := repo.List(ctx, 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	if rows[0].SessionID != "new" || rows[1].SessionID != "mid" {
		t.Errorf("order = %s, %s; want new, mid", rows[0].SessionID, rows[1].SessionID)
	}
}

func TestLLMEventAppendAndUsage(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for range 2 {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "anthropic",
			Model:        "claude-sonnet-4-20250514",
			Purpose:      "assessment-turn",
			InputTokens:  100,
			OutputTokens: 50,
			LatencyMs:    900,
			Success:      true,
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	usage, err := repo.LLMUsage(ctx)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	got := usage["claude-sonnet-4-20250514"]
	if got.Requests != 2 || got.InputTokens != 200 || got.OutputTokens != 100 {
		t.Errorf("usage = %+v", got)
	}
}

func TestSequenceCounterMonotonic(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var prev int64 = -1
	for range 5 {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		if seq <= prev {
			t.Fatalf("sequence %d not greater than %d", seq, prev)
		}
		prev = seq
	}
}
