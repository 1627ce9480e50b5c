// Package metrics exposes application metrics collectors.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	generationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockforge",
		Subsystem: "generator",
		Name:      "generations_total",
		Help:      "Count of contract generations by kind.",
	}, []string{"kind", "status"})

	generationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockforge",
		Subsystem: "generator",
		Name:      "generation_duration_seconds",
		Help:      "Duration of contract generations.",
		Buckets:   []float64{.0001, .0005, .001, .005, .01, .05, .1, .5},
	}, []string{"kind", "status"})

	generationDiagnosticsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockforge",
		Subsystem: "generator",
		Name:      "diagnostics_total",
		Help:      "Count of diagnostics reported while generating from blocks.",
	}, []string{"severity"})
)

// Generator tracks metrics for contract generation.
type Generator struct{}

// NewGenerator constructs a Generator metrics collector.
func NewGenerator() *Generator {
	return &Generator{}
}

// ObserveGenerate records a generation outcome and duration.
func (m Generator) ObserveGenerate(kind string, err error, started time.Time) {
	if kind == "" {
		kind = "unknown"
	}
	status := statusOf(err)
	generationsTotal.WithLabelValues(kind, status).Inc()
	generationDuration.WithLabelValues(kind, status).Observe(time.Since(started).Seconds())
}

// ObserveDiagnostic counts one generator diagnostic.
func (m Generator) ObserveDiagnostic(severity string) {
	generationDiagnosticsTotal.WithLabelValues(severity).Inc()
}

func statusOf(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
