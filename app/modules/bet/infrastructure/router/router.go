package betrouter

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/ThreeDotsLabs/watermill/components/metrics"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/trace"

	"github.com/palpite-club/pool-backend/app/eventbus"
	betevents "github.com/palpite-club/pool-backend/app/modules/bet/domain/events"
	bethandlers "github.com/palpite-club/pool-backend/app/modules/bet/infrastructure/handlers"
	"github.com/palpite-club/pool-backend/app/shared/attr"
	"github.com/palpite-club/pool-backend/app/shared/handlerwrapper"
	"github.com/palpite-club/pool-backend/app/shared/utils"
	"github.com/palpite-club/pool-backend/config"
	poolmetrics "github.com/palpite-club/pool-backend/observability/metrics"
)

const (
	TestEnvironmentFlag  = "APP_ENV"
	TestEnvironmentValue = "test"
)

// BetRouter subscribes the bet module's handlers to their topics.
type BetRouter struct {
	logger             *slog.Logger
	Router             *message.Router
	subscriber         eventbus.EventBus
	publisher          eventbus.EventBus
	config             *config.Config
	helper             utils.Helpers
	tracer             trace.Tracer
	middlewareHelper   utils.MiddlewareHelpers
	metricsBuilder     *metrics.PrometheusMetricsBuilder
	prometheusRegistry *prometheus.Registry
	metricsEnabled     bool
}

// NewBetRouter creates a new instance of the router.
func NewBetRouter(
	logger *slog.Logger,
	router *message.Router,
	subscriber eventbus.EventBus,
	publisher eventbus.EventBus,
	config *config.Config,
	helper utils.Helpers,
	tracer trace.Tracer,
	prometheusRegistry *prometheus.Registry,
) *BetRouter {
	inTestEnv := os.Getenv(TestEnvironmentFlag) == TestEnvironmentValue

	var metricsBuilder *metrics.PrometheusMetricsBuilder
	if prometheusRegistry != nil && !inTestEnv {
		builder := metrics.NewPrometheusMetricsBuilder(prometheusRegistry, "", "")
		metricsBuilder = &builder
	}

	return &BetRouter{
		logger:             logger,
		Router:             router,
		subscriber:         subscriber,
		publisher:          publisher,
		config:             config,
		helper:             helper,
		tracer:             tracer,
		middlewareHelper:   utils.NewMiddlewareHelper(),
		metricsBuilder:     metricsBuilder,
		prometheusRegistry: prometheusRegistry,
		metricsEnabled:     prometheusRegistry != nil && !inTestEnv,
	}
}

// Configure sets up the middlewares and registers the module's handlers.
func (r *BetRouter) Configure(routerCtx context.Context, handlers bethandlers.Handlers, handlerMetrics poolmetrics.HandlerMetrics) error {
	if r.metricsEnabled && r.metricsBuilder != nil {
		r.metricsBuilder.AddPrometheusRouterMetrics(r.Router)
	}

	r.Router.AddMiddleware(
		middleware.CorrelationID,
		r.middlewareHelper.CommonMetadataMiddleware("bet"),
		middleware.Recoverer,
		middleware.Retry{MaxRetries: 3}.Middleware,
	)

	return r.RegisterHandlers(routerCtx, handlers, handlerMetrics)
}

// handlerDeps provides a scannable structure for the registerHandler helper.
type handlerDeps struct {
	router     *message.Router
	subscriber eventbus.EventBus
	publisher  eventbus.EventBus
	logger     *slog.Logger
	tracer     trace.Tracer
	helper     utils.Helpers
	metrics    poolmetrics.HandlerMetrics
}

// registerHandler wires one typed handler to its topic. Result messages carry
// their destination topic in metadata; the closure publishes them through the
// event bus.
func registerHandler[T any](
	deps handlerDeps,
	topic string,
	handler func(context.Context, *T) ([]handlerwrapper.Result, error),
) {
	handlerName := "bet." + topic
	wrapped := handlerwrapper.WrapTyped(handlerName, deps.logger, deps.tracer, deps.helper, deps.metrics, handler)
	deps.router.AddHandler(
		handlerName,
		topic,
		deps.subscriber,
		"",
		nil,
		func(msg *message.Message) ([]*message.Message, error) {
			messages, err := wrapped(msg)
			if err != nil {
				return nil, err
			}
			for _, m := range messages {
				publishTopic := m.Metadata.Get("topic")
				if publishTopic == "" {
					deps.logger.Error("router failed to resolve publish topic - message dropped",
						attr.String("handler", handlerName),
						attr.String("msg_uuid", m.UUID),
					)
					continue
				}
				if err := deps.publisher.Publish(publishTopic, m); err != nil {
					return nil, fmt.Errorf("failed to publish to %s: %w", publishTopic, err)
				}
			}
			return nil, nil
		},
	)
}

// RegisterHandlers binds event topics to their handler logic.
func (r *BetRouter) RegisterHandlers(ctx context.Context, handlers bethandlers.Handlers, handlerMetrics poolmetrics.HandlerMetrics) error {
	r.logger.InfoContext(ctx, "Registering Bet Event Handlers")

	deps := handlerDeps{
		router:     r.Router,
		subscriber: r.subscriber,
		publisher:  r.publisher,
		logger:     r.logger,
		tracer:     r.tracer,
		helper:     r.helper,
		metrics:    handlerMetrics,
	}

	registerHandler(deps, betevents.PaymentConfirmedV1, handlers.HandlePaymentConfirmed)

	return nil
}

// Close stops the router.
func (r *BetRouter) Close() error {
	return r.Router.Close()
}
