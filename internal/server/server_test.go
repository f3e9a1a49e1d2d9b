package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/abhisek/fracmap/internal/agent"
	"github.com/abhisek/fracmap/internal/llm"
	"github.com/abhisek/fracmap/internal/store"
)

func newTestServer(t *testing.T, provider llm.Provider) (*Server, *store.Store) {
	t.Helper()
	st, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return New(st, provider, agent.DefaultConfig(), nil), st
}

func askCall(t *testing.T, id, question string) llm.ToolCall {
	t.Helper()
	raw, err := json.Marshal(map[string]any{
		"question":        question,
		"target_standard": "3.NF.A.1",
		"depth":           "conceptual",
		"intent":          "entry probe",
	})
	if err != nil {
		t.Fatal(err)
	}
	return llm.ToolCall{ID: id, Name: "ask_question", Input: raw}
}

func concludeToolCall(t *testing.T, id string) llm.ToolCall {
	t.Helper()
	raw, err := json.Marshal(map[string]any{
		"evidence_map":           []map[string]any{},
		"progression_summary":    "early grade 3",
		"misconception_report":   []map[string]any{},
		"overall_narrative":      "developing",
		"recommended_next_steps": []string{"practice"},
		"stop_reason":            "sufficient_evidence",
	})
	if err != nil {
		t.Fatal(err)
	}
	return llm.ToolCall{ID: id, Name: "conclude_assessment", Input: raw}
}

// sseEvents extracts the event names from an SSE body, in order.
func sseEvents(body string) []string {
	var names []string
	for _, line := range strings.Split(body, "\n") {
		if name, ok := strings.CutPrefix(line, "event: "); ok {
			names = append(names, name)
		}
	}
	return names
}

// sseData returns the data payload of the first event with the given
// name.
func sseData(t *testing.T, body, event string) map[string]any {
	t.Helper()
	lines := strings.Split(body, "\n")
	for i, line := range lines {
		if line != "event: "+event {
			continue
		}
		raw, ok := strings.CutPrefix(lines[i+1], "data: ")
		if !ok {
			t.Fatalf("event %s has no data line", event)
		}
		var data map[string]any
		if err := json.Unmarshal([]byte(raw), &data); err != nil {
			t.Fatalf("event %s data: %v", event, err)
		}
		return data
	}
	t.Fatalf("event %s not found in stream", event)
	return nil
}

func TestStartRealModeStreamsFirstQuestion(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		ToolCalls: []llm.ToolCall{askCall(t, "toolu_01", "What does 1/2 mean?")},
	})
	srv, _ := newTestServer(t, mock)
	router := srv.Router()

	req := httptest.NewRequest(http.MethodPost, "/assess", strings.NewReader(`{"mode":"real"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if ct := rec.Header().Get("Content-Type"); ct != "text/event-stream" {
		t.Fatalf("content type = %q, body = %s", ct, rec.Body.String())
	}

	events := sseEvents(rec.Body.String())
	if len(events) < 2 || events[0] != "session_started" {
		t.Fatalf("events = %v", events)
	}
	q := sseData(t, rec.Body.String(), "agent_question")
	if q["question"] != "What does 1/2 mean?" {
		t.Errorf("question = %v", q["question"])
	}
}

func TestRespondCompletesAndPersists(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{ToolCalls: []llm.ToolCall{askCall(t, "toolu_01", "q1")}},
		llm.MockResponse{ToolCalls: []llm.ToolCall{concludeToolCall(t, "toolu_02")}},
	)
	srv, st := newTestServer(t, mock)
	router := srv.Router()

	start := httptest.NewRequest(http.MethodPost, "/assess", strings.NewReader(`{"mode":"real"}`))
	startRec := httptest.NewRecorder()
	router.ServeHTTP(startRec, start)

	started := sseData(t, startRec.Body.String(), "session_started")
	sessionID := started["session_id"].(string)

	respond := httptest.NewRequest(http.MethodPost, "/assess/"+sessionID+"/respond",
		strings.NewReader(`{"message":"half of something"}`))
	respondRec := httptest.NewRecorder()
	router.ServeHTTP(respondRec, respond)

	events := sseEvents(respondRec.Body.String())
	var complete bool
	for _, e := range events {
		if e == "assessment_complete" {
			complete = true
		}
	}
	if !complete {
		t.Fatalf("events = %v", events)
	}

	// Persisted and unregistered.
	rec, err := st.AssessmentRepo().Get(respond.Context(), sessionID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec == nil {
		t.Fatal("assessment not persisted")
	}
	if rec.TurnCount != 1 || rec.EndedAt == nil {
		t.Errorf("record = %+v", rec)
	}

	again := httptest.NewRequest(http.MethodPost, "/assess/"+sessionID+"/respond",
		strings.NewReader(`{"message":"more"}`))
	againRec := httptest.NewRecorder()
	router.ServeHTTP(againRec, again)
	if againRec.Code != http.StatusNotFound {
		t.Errorf("respond after completion: status = %d", againRec.Code)
	}
}

func TestRespondUnknownSession(t *testing.T) {
	srv, _ := newTestServer(t, llm.NewMockProvider())
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/assess/nope/respond", strings.NewReader(`{"message":"hi"}`))
	srv.Router().ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d", rec.Code)
	}
}

func TestSyntheticModeRunsToCompletion(t *testing.T) {
	// FIFO across both roles: agent asks, persona answers, agent
	// concludes.
	mock := llm.NewMockProvider(
		llm.MockResponse{ToolCalls: []llm.ToolCall{askCall(t, "toolu_01", "Which is bigger, 1/8 or 1/4?")}},
		llm.MockResponse{Text: "1/8 is bigger because 8 is bigger!"},
		llm.MockResponse{ToolCalls: []llm.ToolCall{concludeToolCall(t, "toolu_02")}},
	)
	srv, st := newTestServer(t, mock)

	req := httptest.NewRequest(http.MethodPost, "/assess",
		strings.NewReader(`{"mode":"synthetic","persona_name":"mia"}`))
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	body := rec.Body.String()
	events := sseEvents(body)
	var sawLearner, sawComplete bool
	for _, e := range events {
		switch e {
		case "learner_response":
			sawLearner = true
		case "assessment_complete":
			sawComplete = true
		}
	}
	if !sawLearner || !sawComplete {
		t.Fatalf("events = %v", events)
	}

	reply := sseData(t, body, "learner_response")
	if !strings.Contains(reply["response"].(string), "1/8 is bigger") {
		t.Errorf("learner response = %v", reply["response"])
	}

	started := sseData(t, body, "session_started")
	stored, err := st.AssessmentRepo().Get(req.Context(), started["session_id"].(string))
	if err != nil || stored == nil {
		t.Fatalf("persisted record: %v, err=%v", stored, err)
	}
	if stored.Mode != "synthetic" || stored.PersonaName != "mia" {
		t.Errorf("record = %+v", stored)
	}
}

func TestStartUnknownPersona(t *testing.T) {
	srv, _ := newTestServer(t, llm.NewMockProvider())
	req := httptest.NewRequest(http.MethodPost, "/assess",
		strings.NewReader(`{"mode":"synthetic","persona_name":"zoe"}`))
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d", rec.Code)
	}
}

func TestStartInvalidMode(t *testing.T) {
	srv, _ := newTestServer(t, llm.NewMockProvider())
	req := httptest.NewRequest(http.MethodPost, "/assess", strings.NewReader(`{"mode":"psychic"}`))
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d", rec.Code)
	}
}

func TestDomainAndPersonaEndpoints(t *testing.T) {
	srv, _ := newTestServer(t, llm.NewMockProvider())
	router := srv.Router()

	tests := []struct {
		path    string
		minimum int
	}{
		{"/domain/standards", 11},
		{"/domain/progressions", 4},
		{"/domain/misconceptions", 15},
		{"/personas", 3},
	}
	for _, tt := range tests {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))
		if rec.Code != http.StatusOK {
			t.Errorf("%s: status = %d", tt.path, rec.Code)
			continue
		}
		var items []map[string]any
		if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
			t.Errorf("%s: %v", tt.path, err)
			continue
		}
		if len(items) < tt.minimum {
			t.Errorf("%s: %d items, want at least %d", tt.path, len(items), tt.minimum)
		}
	}
}

func TestHealth(t *testing.T) {
	srv, _ := newTestServer(t, llm.NewMockProvider())
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
}

// gatedProvider blocks the nth Generate call until the gate opens,
// letting a test overlap an HTTP request with a turn in progress.
type gatedProvider struct {
	inner   llm.Provider
	blockAt int
	reached chan struct{}
	proceed chan struct{}

	mu    sync.Mutex
	calls int
}

func newGatedProvider(inner llm.Provider, blockAt int) *gatedProvider {
	return &gatedProvider{
		inner:   inner,
		blockAt: blockAt,
		reached: make(chan struct{}),
		proceed: make(chan struct{}),
	}
}

func (g *gatedProvider) Generate(ctx context.Context, req llm.Request) (*llm.Response, error) {
	g.mu.Lock()
	g.calls++
	n := g.calls
	g.mu.Unlock()
	if n == g.blockAt {
		close(g.reached)
		<-g.proceed
	}
	return g.inner.Generate(ctx, req)
}

func (g *gatedProvider) ModelID() string { return g.inner.ModelID() }

func TestRespondConflictsWithRunningSyntheticSession(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{ToolCalls: []llm.ToolCall{askCall(t, "toolu_01", "Which is bigger, 1/8 or 1/4?")}},
		llm.MockResponse{Text: "1/8 is bigger because 8 is bigger!"},
		llm.MockResponse{ToolCalls: []llm.ToolCall{concludeToolCall(t, "toolu_02")}},
	)
	// Call 2 is the persona's reply, so the gate holds the start
	// handler inside its synthetic loop.
	gated := newGatedProvider(mock, 2)
	srv, st := newTestServer(t, gated)
	router := srv.Router()

	startRec := httptest.NewRecorder()
	done := make(chan struct{})
	go func() {
		defer close(done)
		router.ServeHTTP(startRec, httptest.NewRequest(http.MethodPost, "/assess",
			strings.NewReader(`{"mode":"synthetic","persona_name":"mia"}`)))
	}()

	<-gated.reached
	ids := srv.sessions.IDs()
	if len(ids) != 1 {
		t.Fatalf("live sessions = %v", ids)
	}
	sessionID := ids[0]

	respondRec := httptest.NewRecorder()
	router.ServeHTTP(respondRec, httptest.NewRequest(http.MethodPost,
		"/assess/"+sessionID+"/respond", strings.NewReader(`{"message":"butting in"}`)))
	if respondRec.Code != http.StatusConflict {
		t.Errorf("respond during synthetic loop: status = %d, want 409", respondRec.Code)
	}

	close(gated.proceed)
	<-done

	events := sseEvents(startRec.Body.String())
	var complete bool
	for _, e := range events {
		if e == "assessment_complete" {
			complete = true
		}
	}
	if !complete {
		t.Fatalf("events = %v", events)
	}
	stored, err := st.AssessmentRepo().Get(context.Background(), sessionID)
	if err != nil || stored == nil {
		t.Fatalf("persisted record: %v, err=%v", stored, err)
	}
	if stored.TurnCount != 1 {
		t.Errorf("turn count = %d, want 1 (intruding respond rejected)", stored.TurnCount)
	}
}

func TestPersistSurvivesClientDisconnect(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{ToolCalls: []llm.ToolCall{askCall(t, "toolu_01", "q1")}},
		llm.MockResponse{ToolCalls: []llm.ToolCall{concludeToolCall(t, "toolu_02")}},
	)
	srv, st := newTestServer(t, mock)
	router := srv.Router()

	startRec := httptest.NewRecorder()
	router.ServeHTTP(startRec, httptest.NewRequest(http.MethodPost, "/assess",
		strings.NewReader(`{"mode":"real"}`)))
	started := sseData(t, startRec.Body.String(), "session_started")
	sessionID := started["session_id"].(string)

	// The client drops the SSE stream before the turn finishes; the
	// request context is already canceled by the time we persist.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	respond := httptest.NewRequest(http.MethodPost, "/assess/"+sessionID+"/respond",
		strings.NewReader(`{"message":"half of something"}`)).WithContext(ctx)
	router.ServeHTTP(httptest.NewRecorder(), respond)

	stored, err := st.AssessmentRepo().Get(context.Background(), sessionID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored == nil || stored.EndedAt == nil {
		t.Fatalf("completed session not persisted after disconnect: %+v", stored)
	}
}
