// Package http exposes the render engine over HTTP using chi.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/aretw0/wicker/pkg/domain"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Engine defines the interface for the Wicker render core.
type Engine interface {
	RenderHTML(ctx context.Context, name string, data map[string]any) (string, error)
	Templates(ctx context.Context) ([]string, error)
}

// Server handles the HTTP surface around an Engine.
type Server struct {
	engine Engine
}

// RenderRequest is the body of POST /render.
type RenderRequest struct {
	Template string         `json:"template"`
	Context  map[string]any `json:"context"`
}

// NewHandler creates the HTTP handler for the engine. A non-nil gatherer
// additionally mounts GET /metrics.
func NewHandler(engine Engine, gatherer prometheus.Gatherer) http.Handler {
	s := &Server{engine: engine}
	r := chi.NewRouter()

	r.Post("/render", s.render)
	r.Get("/templates", s.templates)
	r.Get("/healthz", s.health)
	if gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}
	return r
}

func (s *Server) render(w http.ResponseWriter, r *http.Request) {
	var body RenderRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if body.Template == "" {
		http.Error(w, "Missing template identifier", http.StatusBadRequest)
		return
	}

	markup, err := s.engine.RenderHTML(r.Context(), body.Template, body.Context)
	switch {
	case errors.Is(err, domain.ErrTemplateNotFound):
		http.Error(w, fmt.Sprintf("Template %q not found", body.Template), http.StatusNotFound)
		return
	case errors.Is(err, domain.ErrNoRootElement):
		http.Error(w, "Rendered markup has no root element", http.StatusUnprocessableEntity)
		return
	case err != nil:
		http.Error(w, fmt.Sprintf("Render error: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(markup))
}

func (s *Server) templates(w http.ResponseWriter, r *http.Request) {
	names, err := s.engine.Templates(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("List error: %v", err), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"templates": names})
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
