package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/cartridge/replay/internal/storage"
)

// Server exposes health and stats endpoints alongside the gRPC surface.
type Server struct {
	backend storage.Backend
	logger  *zerolog.Logger
}

// NewServer constructs a Server instance.
func NewServer(backend storage.Backend, logger *zerolog.Logger) *Server {
	return &Server{backend: backend, logger: logger}
}

// Routes builds the HTTP router for the replay service.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Get("/healthz", s.handleHealth)
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/buffers", s.handleListBuffers)
		r.Get("/buffers/{envID}", s.handleGetBuffer)
	})
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleListBuffers(w http.ResponseWriter, r *http.Request) {
	stats, err := s.backend.GetStats(r.Context(), "")
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]interface{}{"buffers": stats})
}

func (s *Server) handleGetBuffer(w http.ResponseWriter, r *http.Request) {
	envID := chi.URLParam(r, "envID")
	stats, err := s.backend.GetStats(r.Context(), envID)
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, stats[0])
}

func (s *Server) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, storage.ErrBufferNotFound):
		s.writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, storage.ErrBufferExists):
		s.writeError(w, http.StatusConflict, err.Error())
	default:
		s.writeError(w, http.StatusUnprocessableEntity, err.Error())
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error().Err(err).Msg("failed to encode response")
	}
}
