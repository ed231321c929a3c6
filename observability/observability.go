// Package observability wires logging, metrics, and tracing for the pool
// backend.
package observability

import (
	"log/slog"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/palpite-club/pool-backend/config"
	poolmetrics "github.com/palpite-club/pool-backend/observability/metrics"
)

// Observability bundles the process-wide logger, metric registry, and tracer.
type Observability struct {
	Logger   *slog.Logger
	Registry *prometheus.Registry
	Tracer   trace.Tracer
	Metrics  *poolmetrics.Registry
}

// Init builds the observability stack from config. Production environments
// log JSON; everything else logs text for readability.
func Init(cfg config.ObservabilityConfig) *Observability {
	level := parseLevel(cfg.LogLevel)

	var handler slog.Handler
	if cfg.Environment == "production" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}
	logger := slog.New(handler)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &Observability{
		Logger:   logger,
		Registry: registry,
		Tracer:   noop.NewTracerProvider().Tracer("pool-backend"),
		Metrics:  poolmetrics.NewRegistry(registry),
	}
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
