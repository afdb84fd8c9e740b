package sweeper

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/feral-file/ff-canvas/internal/adapter"
	"github.com/feral-file/ff-canvas/internal/logger"
	"github.com/feral-file/ff-canvas/internal/messaging"
	"github.com/feral-file/ff-canvas/internal/metrics"
	"github.com/feral-file/ff-canvas/internal/store"
	"github.com/feral-file/ff-canvas/internal/store/schema"
)

const (
	DEFAULT_IDLE_INTERVAL = 5 * time.Second // Time to sleep when the outbox is empty
)

// EventRelayConfig holds configuration for the event relay sweeper
type EventRelayConfig struct {
	BatchSize      int           // Events loaded per cycle
	WorkerPoolSize int           // Concurrent publishers
	IdleInterval   time.Duration // Sleep between cycles when nothing was relayed

	// Retry policy of a single publish
	RetryInitialInterval time.Duration
	RetryMaxInterval     time.Duration
	RetryMaxElapsedTime  time.Duration
}

// eventRelay implements the Sweeper interface by publishing outbox events to the broker
type eventRelay struct {
	config    *EventRelayConfig
	store     store.Store
	publisher messaging.Publisher
	clock     adapter.Clock
	metrics   *metrics.Metrics
	pool      pond.Pool
	running   atomic.Bool
	stopOnce  sync.Once
	stopChan  chan struct{}
	stoppedCh chan struct{}
}

// NewEventRelay creates a new event relay sweeper
func NewEventRelay(
	config *EventRelayConfig,
	st store.Store,
	publisher messaging.Publisher,
	clock adapter.Clock,
	m *metrics.Metrics,
) Sweeper {
	if config.IdleInterval <= 0 {
		config.IdleInterval = DEFAULT_IDLE_INTERVAL
	}
	if config.WorkerPoolSize <= 0 {
		config.WorkerPoolSize = 1
	}
	if config.BatchSize <= 0 {
		config.BatchSize = 100
	}

	return &eventRelay{
		config:    config,
		store:     st,
		publisher: publisher,
		clock:     clock,
		metrics:   m,
		stopChan:  make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

// Name returns the sweeper's name
func (s *eventRelay) Name() string {
	return "event-relay"
}

// Start begins the relay loop
func (s *eventRelay) Start(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return fmt.Errorf("sweeper already running")
	}
	defer func() {
		s.running.Store(false)
		close(s.stoppedCh)
	}()

	logger.InfoCtx(ctx, "Starting event relay",
		zap.Int("batch_size", s.config.BatchSize),
		zap.Int("worker_pool_size", s.config.WorkerPoolSize),
		zap.Duration("idle_interval", s.config.IdleInterval),
	)

	s.pool = pond.NewPool(
		s.config.WorkerPoolSize,
		pond.WithQueueSize(s.config.BatchSize),
		pond.WithContext(ctx),
	)
	defer s.pool.StopAndWait()

	for {
		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "Event relay stopping due to context cancellation", zap.Error(ctx.Err()))
			return nil
		case <-s.stopChan:
			logger.InfoCtx(ctx, "Event relay stop requested")
			return nil
		default:
			relayed, err := s.runRelayCycle(ctx)
			if err != nil && !errors.Is(err, context.Canceled) {
				logger.ErrorCtx(ctx, err)
			}

			// A full clean batch means more events are probably waiting
			if err == nil && relayed == s.config.BatchSize {
				continue
			}
			s.sleep(ctx, s.config.IdleInterval)
		}
	}
}

// Stop gracefully stops the relay with timeout support
func (s *eventRelay) Stop(ctx context.Context) error {
	if !s.running.Load() {
		return nil
	}

	s.stopOnce.Do(func() {
		logger.InfoCtx(ctx, "Stopping event relay")
		close(s.stopChan)
	})

	select {
	case <-s.stoppedCh:
		logger.InfoCtx(ctx, "Event relay stopped gracefully")
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "Event relay stop interrupted by context timeout")
		return ctx.Err()
	}
}

// runRelayCycle publishes one batch of unpublished events and marks the delivered ones.
// It returns how many events were relayed.
func (s *eventRelay) runRelayCycle(ctx context.Context) (int, error) {
	startTime := s.clock.Now()

	events, err := s.store.GetUnpublishedEvents(ctx, s.config.BatchSize)
	if err != nil {
		return 0, fmt.Errorf("failed to get unpublished events: %w", err)
	}
	s.metrics.SetBacklog(len(events))

	if len(events) == 0 {
		logger.DebugCtx(ctx, "No events to relay")
		return 0, nil
	}

	logger.InfoCtx(ctx, "Found events to relay", zap.Int("count", len(events)))

	var (
		mu        sync.Mutex
		published []string
		failed    atomic.Int32
	)

	group := s.pool.NewGroup()
	for i := range events {
		event := &events[i]
		group.Submit(func() {
			if err := s.publishWithRetry(ctx, event); err != nil {
				failed.Add(1)
				logger.ErrorCtx(ctx, fmt.Errorf("failed to relay event: %w", err),
					zap.String("event_id", event.ID),
					zap.String("type", string(event.Type)),
				)
				return
			}

			mu.Lock()
			published = append(published, event.ID)
			mu.Unlock()
		})
	}
	if err := group.Wait(); err != nil {
		return 0, fmt.Errorf("relay group failed: %w", err)
	}

	if len(published) > 0 {
		if err := s.store.MarkEventsPublished(ctx, published, s.clock.Now()); err != nil {
			// The events stay unpublished and are sent again next cycle
			return 0, fmt.Errorf("failed to mark events published: %w", err)
		}
	}

	logger.InfoCtx(ctx, "Relay cycle completed",
		zap.Duration("duration", s.clock.Since(startTime)),
		zap.Int("published", len(published)),
		zap.Int32("failed", failed.Load()),
	)

	if failed.Load() > 0 {
		return len(published), fmt.Errorf("%d of %d events could not be relayed", failed.Load(), len(events))
	}

	return len(published), nil
}

// publishWithRetry publishes a single event with exponential backoff
func (s *eventRelay) publishWithRetry(ctx context.Context, event *schema.CustomizationEvent) error {
	b := backoff.NewExponentialBackOff()
	if s.config.RetryInitialInterval > 0 {
		b.InitialInterval = s.config.RetryInitialInterval
	}
	if s.config.RetryMaxInterval > 0 {
		b.MaxInterval = s.config.RetryMaxInterval
	}
	if s.config.RetryMaxElapsedTime > 0 {
		b.MaxElapsedTime = s.config.RetryMaxElapsedTime
	}
	b.RandomizationFactor = 0.5

	var attemptCount int
	notifyOnError := func(err error, duration time.Duration) {
		attemptCount++
		logger.WarnCtx(ctx, "Event publish failed, retrying",
			zap.Error(err),
			zap.String("event_id", event.ID),
			zap.Int("attempt", attemptCount),
			zap.Duration("next_retry_in", duration),
		)
	}

	operation := func() error {
		return s.publisher.PublishEvent(ctx, event)
	}

	err := backoff.RetryNotify(operation, backoff.WithContext(b, ctx), notifyOnError)
	s.metrics.RecordPublish(event.Type, err)
	if err != nil {
		return fmt.Errorf("failed after %d attempts: %w", attemptCount+1, err)
	}

	return nil
}

// sleep sleeps for the given duration but can be interrupted by context cancellation or Stop.
// Returns true if sleep completed normally.
func (s *eventRelay) sleep(ctx context.Context, duration time.Duration) bool {
	select {
	case <-s.clock.After(duration):
		return true
	case <-ctx.Done():
		return false
	case <-s.stopChan:
		return false
	}
}
