package http

import (
	"context"

	"github.com/aretw0/wicker/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors for render observability.
// It plugs into an engine through domain.RenderHooks.
type Metrics struct {
	renders     *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	diagnostics *prometheus.CounterVec
}

// NewMetrics creates and registers the render collectors.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		renders: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wicker_renders_total",
				Help: "Total number of render calls",
			},
			[]string{"template", "status"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "wicker_render_duration_seconds",
				Help: "Duration of render calls",
			},
			[]string{"template"},
		),
		diagnostics: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wicker_render_diagnostics_total",
				Help: "Non-fatal diagnostics emitted during renders",
			},
			[]string{"kind"},
		),
	}
	reg.MustRegister(m.renders, m.duration, m.diagnostics)
	return m
}

// Hooks returns the render hooks feeding these collectors.
func (m *Metrics) Hooks() domain.RenderHooks {
	return domain.RenderHooks{
		OnRender: func(_ context.Context, e *domain.RenderEvent) {
			status := "ok"
			if e.Err != nil {
				status = "error"
			}
			m.renders.WithLabelValues(e.Template, status).Inc()
			m.duration.WithLabelValues(e.Template).Observe(e.Duration.Seconds())
		},
		OnDiagnostic: func(_ context.Context, e *domain.DiagnosticEvent) {
			m.diagnostics.WithLabelValues(string(e.Kind)).Inc()
		},
	}
}
