package championrouter

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
	championevents "github.com/palpite-club/pool-backend/app/modules/champion/domain/events"
	championhandlers "github.com/palpite-club/pool-backend/app/modules/champion/infrastructure/handlers"
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

// ChampionRouter subscribes the prize workflow handlers to their topics.
type ChampionRouter struct {
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

// NewChampionRouter creates a new instance of the router.
func NewChampionRouter(
	logger *slog.Logger,
	router *message.Router,
	subscriber eventbus.EventBus,
	publisher eventbus.EventBus,
	config *config.Config,
	helper utils.Helpers,
	tracer trace.Tracer,
	prometheusRegistry *prometheus.Registry,
) *ChampionRouter {
	inTestEnv := os.Getenv(TestEnvironmentFlag) == TestEnvironmentValue

	var metricsBuilder *metrics.PrometheusMetricsBuilder
	if prometheusRegistry != nil && !inTestEnv {
		builder := metrics.NewPrometheusMetricsBuilder(prometheusRegistry, "", "")
		metricsBuilder = &builder
	}

	return &ChampionRouter{
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
func (r *ChampionRouter) Configure(routerCtx context.Context, handlers championhandlers.Handlers, handlerMetrics poolmetrics.HandlerMetrics) error {
	if r.metricsEnabled && r.metricsBuilder != nil {
		r.metricsBuilder.AddPrometheusRouterMetrics(r.Router)
	}

	r.Router.AddMiddleware(
		middleware.CorrelationID,
		r.middlewareHelper.CommonMetadataMiddleware("champion"),
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
	handlerName := "champion." + topic
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
func (r *ChampionRouter) RegisterHandlers(ctx context.Context, handlers championhandlers.Handlers, handlerMetrics poolmetrics.HandlerMetrics) error {
	r.logger.InfoContext(ctx, "Registering Champion Event Handlers")

	deps := handlerDeps{
		router:     r.Router,
		subscriber: r.subscriber,
		publisher:  r.publisher,
		logger:     r.logger,
		tracer:     r.tracer,
		helper:     r.helper,
		metrics:    handlerMetrics,
	}

	registerHandler(deps, championevents.PrizeRequestedV1, handlers.HandlePrizeRequested)
	registerHandler(deps, championevents.PrizePaidV1, handlers.HandlePrizePaid)

	return nil
}

// Close stops the router.
func (r *ChampionRouter) Close() error {
	return r.Router.Close()
}
