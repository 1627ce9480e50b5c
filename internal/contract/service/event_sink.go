package service

import (
	"context"
	"errors"
	"time"

	"github.com/goodnatureofminers/blockforge-backend/internal/contract/model"
	"github.com/goodnatureofminers/blockforge-backend/pkg/batcher"
	"go.uber.org/zap"
)

// EventSinkConfig tunes the generation event writer. Zero fields select defaults.
type EventSinkConfig struct {
	FlushSize     int
	FlushInterval time.Duration
	FlushRPS      int
}

func (c EventSinkConfig) withDefaults() EventSinkConfig {
	if c.FlushSize <= 0 {
		c.FlushSize = 100
	}
	if c.FlushInterval <= 0 {
		c.FlushInterval = 5 * time.Second
	}
	if c.FlushRPS <= 0 {
		c.FlushRPS = 10
	}
	return c
}

// EventSink records generation events asynchronously. Recording never blocks a
// request; events are dropped when the buffer is full or the sink is stopped.
type EventSink struct {
	batcher *batcher.Batcher[model.GenerationEvent]
	metrics EventSinkMetrics
	logger  *zap.Logger
}

// NewEventSink creates a sink flushing into store.
func NewEventSink(store EventStore, cfg EventSinkConfig, metrics EventSinkMetrics, logger *zap.Logger) *EventSink {
	cfg = cfg.withDefaults()
	s := &EventSink{
		metrics: metrics,
		logger:  logger.Named("event_sink"),
	}
	flush := func(ctx context.Context, events []model.GenerationEvent) (err error) {
		started := time.Now()
		defer func() {
			s.metrics.ObserveFlush(err, len(events), started)
		}()
		return store.InsertGenerationEvents(ctx, events)
	}
	s.batcher = batcher.New(s.logger, flush, cfg.FlushSize, cfg.FlushInterval, cfg.FlushRPS)
	return s
}

// Start begins flushing in the background until ctx is done or Stop is called.
func (s *EventSink) Start(ctx context.Context) {
	s.batcher.Start(ctx)
}

// Stop flushes buffered events and waits for the writer to exit.
func (s *EventSink) Stop() {
	s.batcher.Stop()
}

// Record queues event.
func (s *EventSink) Record(event model.GenerationEvent) {
	if err := s.batcher.TryAdd(event); err != nil {
		s.metrics.ObserveDropped()
		level := s.logger.Warn
		if errors.Is(err, batcher.ErrStopped) {
			level = s.logger.Debug
		}
		level("generation event dropped", zap.String("kind", string(event.Kind)), zap.Error(err))
	}
}
