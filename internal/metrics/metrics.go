package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/feral-file/ff-canvas/internal/domain"
)

const DefaultNamespace = "ff_canvas"

// Metrics holds the prometheus collectors of the service.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	// OperationsTotal counts top-level operations by operation and result
	OperationsTotal *prometheus.CounterVec
	// OperationDuration observes operation latency in seconds
	OperationDuration *prometheus.HistogramVec
	// FeesCollected sums the fees settled to the fee sink by operation
	FeesCollected *prometheus.CounterVec
	// EventsPublished counts relayed outbox events by type and result
	EventsPublished *prometheus.CounterVec
	// OutboxBacklog is the size of the last unpublished batch loaded by the relay
	OutboxBacklog prometheus.Gauge
}

// New creates the collectors under the given namespace
func New(namespace string) *Metrics {
	if namespace == "" {
		namespace = DefaultNamespace
	}

	return &Metrics{
		OperationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "operations_total",
				Help:      "Top-level canvas operations",
			},
			[]string{"operation", "result"},
		),
		OperationDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "operation_duration_seconds",
				Help:      "Latency of top-level canvas operations",
				Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
			},
			[]string{"operation"},
		),
		FeesCollected: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "fees_collected_total",
				Help:      "Fees settled to the fee sink, in the smallest currency unit",
			},
			[]string{"operation"},
		),
		EventsPublished: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "events_published_total",
				Help:      "Outbox events relayed to the message broker",
			},
			[]string{"type", "result"},
		),
		OutboxBacklog: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "outbox_backlog",
				Help:      "Unpublished events loaded by the last relay sweep",
			},
		),
	}
}

// Register registers every collector
func (m *Metrics) Register(registerer prometheus.Registerer) error {
	collectors := []prometheus.Collector{
		m.OperationsTotal,
		m.OperationDuration,
		m.FeesCollected,
		m.EventsPublished,
		m.OutboxBacklog,
	}

	for _, c := range collectors {
		if err := registerer.Register(c); err != nil {
			return err
		}
	}

	return nil
}

// RecordOperation records one top-level operation
func (m *Metrics) RecordOperation(operation string, err error, seconds float64) {
	if m == nil {
		return
	}
	m.OperationsTotal.WithLabelValues(operation, Result(err)).Inc()
	m.OperationDuration.WithLabelValues(operation).Observe(seconds)
}

// RecordFee adds a settled fee
func (m *Metrics) RecordFee(operation string, amount domain.Amount) {
	if m == nil || amount == 0 {
		return
	}
	m.FeesCollected.WithLabelValues(operation).Add(float64(amount))
}

// RecordPublish records one relayed event
func (m *Metrics) RecordPublish(eventType domain.EventType, err error) {
	if m == nil {
		return
	}
	result := "success"
	if err != nil {
		result = "failed"
	}
	m.EventsPublished.WithLabelValues(string(eventType), result).Inc()
}

// SetBacklog sets the outbox backlog gauge
func (m *Metrics) SetBacklog(n int) {
	if m == nil {
		return
	}
	m.OutboxBacklog.Set(float64(n))
}

// Result maps an operation error to a bounded label value
func Result(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, domain.ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrAlreadyExists):
		return "already_exists"
	case errors.Is(err, domain.ErrInsufficientPayment):
		return "insufficient_payment"
	case errors.Is(err, domain.ErrInvalidTrait):
		return "invalid_trait"
	case errors.Is(err, domain.ErrCustomizationLocked):
		return "customization_locked"
	case errors.Is(err, domain.ErrMaxTraitsExceeded):
		return "max_traits_exceeded"
	case errors.Is(err, domain.ErrCapacityExceeded):
		return "capacity_exceeded"
	case errors.Is(err, domain.ErrConcurrentModification):
		return "concurrent_modification"
	default:
		return "error"
	}
}
