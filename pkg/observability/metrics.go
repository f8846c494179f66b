// Package observability wires engine lifecycle hooks to Prometheus.
package observability

import (
	"context"

	"github.com/CakeVR/dialogic/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors for the directive engine.
type Metrics struct {
	CommandsApplied *prometheus.CounterVec
	Diagnostics     *prometheus.CounterVec
	LayerToggles    *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg.
// Pass prometheus.DefaultRegisterer outside of tests.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		CommandsApplied: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dialogic_commands_applied_total",
				Help: "Total directive commands evaluated, by operation",
			},
			[]string{"op"},
		),
		Diagnostics: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dialogic_diagnostics_total",
				Help: "Total non-fatal diagnostics, by kind",
			},
			[]string{"kind"},
		),
		LayerToggles: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dialogic_layer_toggles_total",
				Help: "Total layer visibility changes, by direction",
			},
			[]string{"direction"},
		),
	}
	reg.MustRegister(m.CommandsApplied, m.Diagnostics, m.LayerToggles)
	return m
}

// Hooks returns lifecycle hooks that feed the collectors. Combine with other
// hooks via domain.LifecycleHooks composition at the call site if needed.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnCommandApply: func(_ context.Context, e *domain.CommandEvent) {
			m.CommandsApplied.WithLabelValues(string(e.Op)).Inc()
		},
		OnDiagnostic: func(_ context.Context, e *domain.DiagnosticEvent) {
			m.Diagnostics.WithLabelValues(string(e.Diagnostic.Kind)).Inc()
		},
		OnLayerShow: func(_ context.Context, _ *domain.LayerEvent) {
			m.LayerToggles.WithLabelValues("show").Inc()
		},
		OnLayerHide: func(_ context.Context, _ *domain.LayerEvent) {
			m.LayerToggles.WithLabelValues("hide").Inc()
		},
	}
}
