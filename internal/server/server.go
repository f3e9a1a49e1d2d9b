// Package server exposes the assessment loop over HTTP. Assessment
// start and learner responses stream their events as SSE; the rest of
// the surface is read-only JSON over the store and domain tables.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/abhisek/fracmap/internal/agent"
	"github.com/abhisek/fracmap/internal/llm"
	"github.com/abhisek/fracmap/internal/persona"
	"github.com/abhisek/fracmap/internal/session"
	"github.com/abhisek/fracmap/internal/store"
)

// liveSession pairs an orchestrator with its synthetic responder (nil
// in real mode) for the registry.
type liveSession struct {
	orc       *agent.Orchestrator
	responder *persona.Responder
}

// Server wires the orchestrator, persona responders, and persistence
// behind an HTTP surface.
type Server struct {
	store    *store.Store
	provider llm.Provider
	cfg      agent.Config
	log      *slog.Logger

	sessions *session.Registry[*liveSession]
}

// New builds a Server. The provider drives both the assessment agent
// and, in synthetic mode, the persona responder (each keeps its own
// conversation).
func New(st *store.Store, provider llm.Provider, cfg agent.Config, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{
		store:    st,
		provider: provider,
		cfg:      cfg,
		log:      log,
		sessions: session.NewRegistry[*liveSession](),
	}
}

// Router assembles the HTTP routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Post("/assess", s.handleStartAssessment)
	r.Post("/assess/{sessionID}/respond", s.handleSubmitResponse)
	r.Get("/assessments", s.handleListAssessments)
	r.Get("/assessments/{sessionID}", s.handleGetAssessment)
	r.Get("/personas", s.handleListPersonas)
	r.Get("/domain/standards", s.handleStandards)
	r.Get("/domain/progressions", s.handleProgressions)
	r.Get("/domain/misconceptions", s.handleMisconceptions)
	r.Get("/health", s.handleHealth)

	return r
}

// persist saves a finished (or abnormally stopped) session. Failures
// are logged, not surfaced: the assessment itself already happened.
func (s *Server) persist(ctx context.Context, live *liveSession) {
	sess := live.orc.Session()

	conversation, err := json.Marshal(sess.Conversation)
	if err != nil {
		s.log.Error("marshal conversation", "session_id", sess.ID, "error", err)
		return
	}

	modelSnapshot := sess.LearnerModel
	if len(modelSnapshot) == 0 {
		// Session never concluded; snapshot the live model instead.
		if snap, err := live.orc.Model().Snapshot(); err == nil {
			modelSnapshot = snap
		}
	}

	rec := &store.AssessmentRecord{
		SessionID:    sess.ID,
		Mode:         string(sess.Mode),
		PersonaName:  sess.PersonaName,
		StartedAt:    sess.StartedAt,
		EndedAt:      sess.EndedAt,
		TurnCount:    sess.TurnCount,
		Conversation: conversation,
		LearnerModel: modelSnapshot,
		Report:       sess.Report,
	}
	if err := s.store.AssessmentRepo().Save(ctx, rec); err != nil {
		s.log.Error("save assessment", "session_id", sess.ID, "error", err)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, format string, args ...any) {
	writeJSON(w, status, map[string]string{"error": fmt.Sprintf(format, args...)})
}
