// Package http exposes the directive engine as a JSON API for editor
// frontends that run out of process.
package http

import (
	_ "embed"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/CakeVR/dialogic"
	"github.com/CakeVR/dialogic/pkg/domain"
	"github.com/CakeVR/dialogic/pkg/session"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

//go:embed openapi.yaml
var openAPISpec []byte

// OpenAPISpec returns the embedded API description.
func OpenAPISpec() []byte {
	return openAPISpec
}

// Server handles the preview API routes.
type Server struct {
	engine   *dialogic.Engine
	sessions *session.Manager
}

// ServerOption configures the handler.
type ServerOption func(*Server)

// WithSessionManager enables the /sessions routes.
func WithSessionManager(sessions *session.Manager) ServerOption {
	return func(s *Server) {
		s.sessions = sessions
	}
}

// NewHandler creates an HTTP handler for the engine. The engine needs a
// profile loader for /preview and /characters to work; session routes need
// WithSessionManager.
func NewHandler(engine *dialogic.Engine, opts ...ServerOption) http.Handler {
	s := &Server{engine: engine}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Post("/parse", s.Parse)
	r.Post("/preview", s.Preview)
	r.Get("/characters", s.Characters)
	r.Get("/sessions", s.ListSessions)
	r.Post("/sessions/{sessionID}/apply", s.ApplySession)
	r.Get("/sessions/{sessionID}", s.GetSession)
	r.Delete("/sessions/{sessionID}", s.DeleteSession)
	r.Get("/health", s.Health)
	r.Get("/metrics", promhttp.Handler().ServeHTTP)
	r.Get("/openapi.yaml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/yaml")
		_, _ = w.Write(openAPISpec)
	})
	return r
}

// ParseRequest mirrors the OpenAPI ParseRequest schema.
type ParseRequest struct {
	Directive string `json:"directive"`
}

// ParseResponse mirrors the OpenAPI ParseResponse schema.
type ParseResponse struct {
	Commands    []domain.Command    `json:"commands"`
	Diagnostics []domain.Diagnostic `json:"diagnostics"`
}

// Parse handles POST /parse.
func (s *Server) Parse(w http.ResponseWriter, r *http.Request) {
	var body ParseRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	commands, diags := s.engine.Parse(body.Directive)
	writeJSON(w, ParseResponse{Commands: commands, Diagnostics: diags})
}

// PreviewRequest mirrors the OpenAPI PreviewRequest schema.
type PreviewRequest struct {
	Character string `json:"character"`
	Directive string `json:"directive"`
}

// Preview handles POST /preview.
func (s *Server) Preview(w http.ResponseWriter, r *http.Request) {
	var body PreviewRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	result, err := s.engine.Preview(r.Context(), body.Character, body.Directive)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			http.Error(w, "Unknown character", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, result)
}

// Characters handles GET /characters.
func (s *Server) Characters(w http.ResponseWriter, r *http.Request) {
	names, err := s.engine.Characters()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, names)
}

// ApplyRequest mirrors the OpenAPI ApplyRequest schema.
type ApplyRequest struct {
	Character string `json:"character,omitempty"`
	Directive string `json:"directive"`
}

// ApplySession handles POST /sessions/{sessionID}/apply. An empty directive
// starts the session without applying anything.
func (s *Server) ApplySession(w http.ResponseWriter, r *http.Request) {
	if s.sessions == nil {
		http.Error(w, "Session storage not configured", http.StatusNotImplemented)
		return
	}

	var body ApplyRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	sessionID := chi.URLParam(r, "sessionID")
	result, err := s.engine.ApplySession(r.Context(), s.sessions, sessionID, body.Character, body.Directive)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrProfileNotFound):
			http.Error(w, "Unknown character", http.StatusNotFound)
		case errors.Is(err, domain.ErrSessionNotFound):
			http.Error(w, "New session needs a character", http.StatusBadRequest)
		default:
			http.Error(w, err.Error(), http.StatusConflict)
		}
		return
	}
	writeJSON(w, result)
}

// GetSession handles GET /sessions/{sessionID}.
func (s *Server) GetSession(w http.ResponseWriter, r *http.Request) {
	if s.sessions == nil {
		http.Error(w, "Session storage not configured", http.StatusNotImplemented)
		return
	}

	state, err := s.sessions.Load(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			http.Error(w, "Unknown session", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, state)
}

// DeleteSession handles DELETE /sessions/{sessionID}.
func (s *Server) DeleteSession(w http.ResponseWriter, r *http.Request) {
	if s.sessions == nil {
		http.Error(w, "Session storage not configured", http.StatusNotImplemented)
		return
	}

	if err := s.sessions.Delete(r.Context(), chi.URLParam(r, "sessionID")); err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			http.Error(w, "Unknown session", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListSessions handles GET /sessions.
func (s *Server) ListSessions(w http.ResponseWriter, r *http.Request) {
	if s.sessions == nil {
		http.Error(w, "Session storage not configured", http.StatusNotImplemented)
		return
	}

	ids, err := s.sessions.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, ids)
}

// Health handles GET /health.
func (s *Server) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, map[string]string{
		"status":  "ok",
		"version": dialogic.Version,
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, "Encoding error", http.StatusInternalServerError)
	}
}
