package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	deployStagesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockforge",
		Subsystem: "deployer",
		Name:      "stages_total",
		Help:      "Count of deployment pipeline stages.",
	}, []string{"stage", "network", "method", "status"})

	deployStageDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockforge",
		Subsystem: "deployer",
		Name:      "stage_duration_seconds",
		Help:      "Duration of deployment pipeline stages.",
		Buckets:   []float64{.01, .05, .1, .5, 1, 2.5, 5, 10, 30, 60, 120, 300},
	}, []string{"stage", "network", "method", "status"})
)

// Deployer tracks metrics for contract deployments.
type Deployer struct {
	network string
	method  string
}

// NewDeployer constructs a Deployer collector for a network and deploy method.
func NewDeployer(network, method string) *Deployer {
	if network == "" {
		network = "unknown"
	}
	if method == "" {
		method = "unknown"
	}
	return &Deployer{network: network, method: method}
}

// Observe records one pipeline stage outcome and duration.
func (m Deployer) Observe(stage string, err error, started time.Time) {
	status := statusOf(err)
	deployStagesTotal.WithLabelValues(stage, m.network, m.method, status).Inc()
	deployStageDuration.WithLabelValues(stage, m.network, m.method, status).Observe(time.Since(started).Seconds())
}
