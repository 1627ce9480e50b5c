package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	eventSinkFlushTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockforge",
		Subsystem: "event_sink",
		Name:      "flush_total",
		Help:      "Count of generation event batch flushes.",
	}, []string{"status"})

	eventSinkFlushDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockforge",
		Subsystem: "event_sink",
		Name:      "flush_duration_seconds",
		Help:      "Duration of generation event batch flushes.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})

	eventSinkFlushSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "blockforge",
		Subsystem: "event_sink",
		Name:      "flush_batch_size",
		Help:      "Number of events written per flush.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12), // 1..2048
	})

	eventSinkDroppedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "blockforge",
		Subsystem: "event_sink",
		Name:      "dropped_total",
		Help:      "Count of generation events dropped because the sink was stopped or full.",
	})
)

// EventSink tracks metrics for the asynchronous generation event writer.
type EventSink struct{}

// NewEventSink constructs an EventSink metrics collector.
func NewEventSink() *EventSink {
	return &EventSink{}
}

// ObserveFlush records a batch flush.
func (m EventSink) ObserveFlush(err error, events int, started time.Time) {
	status := statusOf(err)
	eventSinkFlushTotal.WithLabelValues(status).Inc()
	eventSinkFlushDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
	eventSinkFlushSize.Observe(float64(events))
}

// ObserveDropped counts an event that was not accepted.
func (m EventSink) ObserveDropped() {
	eventSinkDroppedTotal.Inc()
}
