// Package metrics defines the per-module metrics contracts plus their
// prometheus-backed and no-op implementations.
package metrics

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// ServiceMetrics records service operation outcomes. Every module service
// shares this shape; the prometheus implementation labels by module.
type ServiceMetrics interface {
	RecordOperationAttempt(ctx context.Context, operation string)
	RecordOperationSuccess(ctx context.Context, operation string)
	RecordOperationFailure(ctx context.Context, operation string)
	RecordOperationDuration(ctx context.Context, operation string, duration time.Duration)
}

// HandlerMetrics records event handler outcomes, satisfying the
// handlerwrapper.Metrics contract.
type HandlerMetrics interface {
	RecordHandlerAttempt(ctx context.Context, handlerName string)
	RecordHandlerSuccess(ctx context.Context, handlerName string)
	RecordHandlerFailure(ctx context.Context, handlerName string)
	RecordHandlerDuration(ctx context.Context, handlerName string, duration time.Duration)
}

// Registry bundles one ServiceMetrics per module plus the shared handler
// metrics, all bound to a single prometheus registry.
type Registry struct {
	Round    ServiceMetrics
	Bet      ServiceMetrics
	Ranking  ServiceMetrics
	Champion ServiceMetrics
	Handlers HandlerMetrics
}

// NewRegistry registers the pool metric vectors on reg and returns the
// per-module views.
func NewRegistry(reg *prometheus.Registry) *Registry {
	operationAttempts := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "pool_operation_attempts_total",
		Help: "Service operations attempted, by module and operation.",
	}, []string{"module", "operation"})
	operationOutcomes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "pool_operation_outcomes_total",
		Help: "Service operation outcomes, by module, operation, and outcome.",
	}, []string{"module", "operation", "outcome"})
	operationDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "pool_operation_duration_seconds",
		Help:    "Service operation latency, by module and operation.",
		Buckets: prometheus.DefBuckets,
	}, []string{"module", "operation"})

	handlerAttempts := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "pool_handler_attempts_total",
		Help: "Event handler invocations, by handler.",
	}, []string{"handler"})
	handlerOutcomes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "pool_handler_outcomes_total",
		Help: "Event handler outcomes, by handler and outcome.",
	}, []string{"handler", "outcome"})
	handlerDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "pool_handler_duration_seconds",
		Help:    "Event handler latency, by handler.",
		Buckets: prometheus.DefBuckets,
	}, []string{"handler"})

	reg.MustRegister(
		operationAttempts,
		operationOutcomes,
		operationDuration,
		handlerAttempts,
		handlerOutcomes,
		handlerDuration,
	)

	forModule := func(module string) ServiceMetrics {
		return &serviceMetrics{
			module:    module,
			attempts:  operationAttempts,
			outcomes:  operationOutcomes,
			durations: operationDuration,
		}
	}

	return &Registry{
		Round:    forModule("round"),
		Bet:      forModule("bet"),
		Ranking:  forModule("ranking"),
		Champion: forModule("champion"),
		Handlers: &handlerMetrics{
			attempts:  handlerAttempts,
			outcomes:  handlerOutcomes,
			durations: handlerDuration,
		},
	}
}

type serviceMetrics struct {
	module    string
	attempts  *prometheus.CounterVec
	outcomes  *prometheus.CounterVec
	durations *prometheus.HistogramVec
}

func (m *serviceMetrics) RecordOperationAttempt(_ context.Context, operation string) {
	m.attempts.WithLabelValues(m.module, operation).Inc()
}

func (m *serviceMetrics) RecordOperationSuccess(_ context.Context, operation string) {
	m.outcomes.WithLabelValues(m.module, operation, "success").Inc()
}

func (m *serviceMetrics) RecordOperationFailure(_ context.Context, operation string) {
	m.outcomes.WithLabelValues(m.module, operation, "failure").Inc()
}

func (m *serviceMetrics) RecordOperationDuration(_ context.Context, operation string, duration time.Duration) {
	m.durations.WithLabelValues(m.module, operation).Observe(duration.Seconds())
}

type handlerMetrics struct {
	attempts  *prometheus.CounterVec
	outcomes  *prometheus.CounterVec
	durations *prometheus.HistogramVec
}

func (m *handlerMetrics) RecordHandlerAttempt(_ context.Context, handlerName string) {
	m.attempts.WithLabelValues(handlerName).Inc()
}

func (m *handlerMetrics) RecordHandlerSuccess(_ context.Context, handlerName string) {
	m.outcomes.WithLabelValues(handlerName, "success").Inc()
}

func (m *handlerMetrics) RecordHandlerFailure(_ context.Context, handlerName string) {
	m.outcomes.WithLabelValues(handlerName, "failure").Inc()
}

func (m *handlerMetrics) RecordHandlerDuration(_ context.Context, handlerName string, duration time.Duration) {
	m.durations.WithLabelValues(handlerName).Observe(duration.Seconds())
}
