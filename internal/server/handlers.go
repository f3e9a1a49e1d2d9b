package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/abhisek/fracmap/internal/agent"
	"github.com/abhisek/fracmap/internal/domain"
	"github.com/abhisek/fracmap/internal/persona"
	"github.com/abhisek/fracmap/internal/session"
)

type startAssessmentRequest struct {
	Mode        string `json:"mode"`
	PersonaName string `json:"persona_name"`
}

type learnerResponseRequest struct {
	Message string `json:"message"`
}

// handleStartAssessment starts a session and streams its events. In
// synthetic mode the server drives the whole assessment to completion
// with the persona responder, persisting at the end. In real mode the
// session stays registered, awaiting /respond calls.
func (s *Server) handleStartAssessment(w http.ResponseWriter, r *http.Request) {
	req := startAssessmentRequest{Mode: "synthetic", PersonaName: "mia"}
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body: %v", err)
			return
		}
	}

	mode, ok := session.ParseMode(req.Mode)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid mode %q", req.Mode)
		return
	}

	live := &liveSession{
		orc: agent.New(s.provider, mode, req.PersonaName, s.cfg),
	}
	if mode == session.ModeSynthetic {
		responder, err := persona.NewResponder(req.PersonaName, s.provider)
		if err != nil {
			writeError(w, http.StatusBadRequest, "%v", err)
			return
		}
		live.responder = responder
	}

	stream, err := newSSEStream(w)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "%v", err)
		return
	}

	// The session id becomes client-visible as soon as session_started
	// streams, so hold the turn guard for the whole start span; a
	// /respond arriving before this handler returns gets the 409 path.
	sessionID := live.orc.Session().ID
	release := s.sessions.PutAcquired(sessionID, live)
	defer release()
	s.log.Info("assessment started", "session_id", sessionID, "mode", mode, "persona", req.PersonaName)

	events, err := live.orc.Start(r.Context())
	if sendErr := stream.sendAll(events); sendErr != nil {
		s.sessions.Remove(sessionID)
		return
	}
	if err != nil {
		s.log.Error("agent start", "session_id", sessionID, "error", err)
		stream.sendError(err.Error())
		s.sessions.Remove(sessionID)
		return
	}

	if mode == session.ModeSynthetic {
		s.runSyntheticLoop(r, stream, live)
		return
	}

	if live.orc.IsComplete() {
		s.persist(context.WithoutCancel(r.Context()), live)
		s.sessions.Remove(sessionID)
	}
}

// runSyntheticLoop feeds persona responses to the agent until the
// assessment concludes, streaming everything, then persists and
// unregisters the session. Persistence uses a non-cancelable context so
// a client dropping the stream mid-assessment does not lose the row.
func (s *Server) runSyntheticLoop(r *http.Request, stream *sseStream, live *liveSession) {
	sessionID := live.orc.Session().ID
	defer func() {
		s.persist(context.WithoutCancel(r.Context()), live)
		s.sessions.Remove(sessionID)
	}()

	for !live.orc.IsComplete() {
		question, ok := live.orc.PendingQuestion()
		if !ok {
			s.log.Warn("agent stopped without a question", "session_id", sessionID)
			return
		}

		reply, err := live.responder.Respond(r.Context(), question)
		if err != nil {
			s.log.Error("persona response", "session_id", sessionID, "error", err)
			stream.sendError(err.Error())
			return
		}
		if err := stream.send(agent.EventLearnerResponse, map[string]string{"response": reply}); err != nil {
			return
		}

		events, err := live.orc.SubmitResponse(r.Context(), reply)
		if sendErr := stream.sendAll(events); sendErr != nil {
			return
		}
		if err != nil {
			s.log.Error("agent turn", "session_id", sessionID, "error", err)
			stream.sendError(err.Error())
			return
		}
	}
}

// handleSubmitResponse feeds a real learner's reply to a registered
// session and streams the resulting events.
func (s *Server) handleSubmitResponse(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	var req learnerResponseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: %v", err)
		return
	}

	live, release, err := s.sessions.Acquire(sessionID)
	switch {
	case errors.Is(err, session.ErrNotFound):
		writeError(w, http.StatusNotFound, "session not found")
		return
	case errors.Is(err, session.ErrTurnInFlight):
		writeError(w, http.StatusConflict, "a turn is already in flight for this session")
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, "%v", err)
		return
	}
	defer release()

	stream, err := newSSEStream(w)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "%v", err)
		return
	}

	events, err := live.orc.SubmitResponse(r.Context(), req.Message)
	if sendErr := stream.sendAll(events); sendErr != nil {
		return
	}
	if err != nil {
		s.log.Error("agent turn", "session_id", sessionID, "error", err)
		stream.sendError(err.Error())
		return
	}

	if live.orc.IsComplete() {
		s.persist(context.WithoutCancel(r.Context()), live)
		s.sessions.Remove(sessionID)
	}
}

type assessmentSummary struct {
	SessionID   string     `json:"session_id"`
	Mode        string     `json:"mode"`
	PersonaName string     `json:"persona_name,omitempty"`
	StartedAt   time.Time  `json:"started_at"`
	EndedAt     *time.Time `json:"ended_at,omitempty"`
	TurnCount   int        `json:"turn_count"`
}

func (s *Server) handleListAssessments(w http.ResponseWriter, r *http.Request) {
	records, err := s.store.AssessmentRepo().List(r.Context(), 100)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "list assessments: %v", err)
		return
	}

	summaries := make([]assessmentSummary, 0, len(records))
	for _, rec := range records {
		summaries = append(summaries, assessmentSummary{
			SessionID:   rec.SessionID,
			Mode:        rec.Mode,
			PersonaName: rec.PersonaName,
			StartedAt:   rec.StartedAt,
			EndedAt:     rec.EndedAt,
			TurnCount:   rec.TurnCount,
		})
	}
	writeJSON(w, http.StatusOK, summaries)
}

func (s *Server) handleGetAssessment(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	rec, err := s.store.AssessmentRepo().Get(r.Context(), sessionID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "get assessment: %v", err)
		return
	}
	if rec == nil {
		writeError(w, http.StatusNotFound, "assessment not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"session_id":    rec.SessionID,
		"mode":          rec.Mode,
		"persona_name":  rec.PersonaName,
		"started_at":    rec.StartedAt,
		"ended_at":      rec.EndedAt,
		"turn_count":    rec.TurnCount,
		"report":        rec.Report,
		"learner_model": rec.LearnerModel,
		"conversation":  rec.Conversation,
	})
}

func (s *Server) handleListPersonas(w http.ResponseWriter, _ *http.Request) {
	type personaInfo struct {
		Name       string `json:"name"`
		GradeLevel int    `json:"grade_level"`
	}
	out := make([]personaInfo, 0)
	for _, p := range persona.All() {
		out = append(out, personaInfo{Name: p.Name, GradeLevel: p.GradeLevel})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleStandards(w http.ResponseWriter, _ *http.Request) {
	type lcInfo struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	}
	type standardInfo struct {
		Code               string   `json:"code"`
		Grade              int      `json:"grade"`
		Description        string   `json:"description"`
		LearningComponents []lcInfo `json:"learning_components"`
	}

	out := make([]standardInfo, 0)
	for _, std := range domain.AllStandards() {
		lcs := make([]lcInfo, 0, len(std.LearningComponents))
		for _, lc := range std.LearningComponents {
			lcs = append(lcs, lcInfo{Code: lc.Code, Description: lc.Description})
		}
		out = append(out, standardInfo{
			Code:               std.Code,
			Grade:              std.Grade,
			Description:        std.Description,
			LearningComponents: lcs,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleProgressions(w http.ResponseWriter, _ *http.Request) {
	type levelInfo struct {
		Grade         int      `json:"grade"`
		Label         string   `json:"label"`
		Standards     []string `json:"standards"`
		Prerequisites []string `json:"prerequisites"`
		NextLevels    []string `json:"next_levels"`
	}

	out := make([]levelInfo, 0)
	for _, level := range domain.Progression() {
		out = append(out, levelInfo{
			Grade:         level.Grade,
			Label:         level.Label,
			Standards:     level.Standards,
			Prerequisites: level.Prerequisites,
			NextLevels:    level.NextLevels,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleMisconceptions(w http.ResponseWriter, _ *http.Request) {
	type misconceptionInfo struct {
		ID               string   `json:"id"`
		Category         string   `json:"category"`
		Description      string   `json:"description"`
		Example          string   `json:"example"`
		RelatedStandards []string `json:"related_standards"`
	}

	out := make([]misconceptionInfo, 0)
	for _, m := range domain.AllMisconceptions() {
		out = append(out, misconceptionInfo{
			ID:               m.ID,
			Category:         string(m.Category),
			Description:      m.Description,
			Example:          m.Example,
			RelatedStandards: m.RelatedStandards,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DB().PingContext(r.Context()); err != nil {
		writeError(w, http.StatusServiceUnavailable, "database: %v", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
