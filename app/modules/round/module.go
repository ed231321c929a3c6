// Package round wires the round module: repository, deadline queue, service,
// handlers, router.
package round

import (
	"context"
	"fmt"
	"sync"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/uptrace/bun"

	"github.com/palpite-club/pool-backend/app/eventbus"
	roundservice "github.com/palpite-club/pool-backend/app/modules/round/application"
	roundhandlers "github.com/palpite-club/pool-backend/app/modules/round/infrastructure/handlers"
	roundqueue "github.com/palpite-club/pool-backend/app/modules/round/infrastructure/queue"
	rounddb "github.com/palpite-club/pool-backend/app/modules/round/infrastructure/repositories"
	roundrouter "github.com/palpite-club/pool-backend/app/modules/round/infrastructure/router"
	"github.com/palpite-club/pool-backend/app/shared/utils"
	"github.com/palpite-club/pool-backend/config"
	"github.com/palpite-club/pool-backend/observability"
)

// Module represents the round module.
type Module struct {
	EventBus      eventbus.EventBus
	RoundService  roundservice.Service
	QueueService  roundqueue.QueueService
	config        *config.Config
	RoundRouter   *roundrouter.RoundRouter
	cancelFunc    context.CancelFunc
	Helper        utils.Helpers
	observability *observability.Observability
}

// NewRoundModule creates a new instance of the round module. The queue
// service is passed in so the app can start River once and share its pool.
func NewRoundModule(
	ctx context.Context,
	cfg *config.Config,
	obs *observability.Observability,
	repo rounddb.Repository,
	queueService roundqueue.QueueService,
	eventBus eventbus.EventBus,
	router *message.Router,
	helpers utils.Helpers,
	bunDB *bun.DB,
	routerCtx context.Context,
) (*Module, error) {
	logger := obs.Logger
	metrics := obs.Metrics.Round
	tracer := obs.Tracer

	service := roundservice.NewRoundService(repo, queueService, eventBus, logger, metrics, tracer, bunDB)
	handlers := roundhandlers.NewRoundHandlers(service)

	roundRouter := roundrouter.NewRoundRouter(logger, router, eventBus, eventBus, cfg, helpers, tracer, obs.Registry)
	if err := roundRouter.Configure(routerCtx, handlers, obs.Metrics.Handlers); err != nil {
		return nil, fmt.Errorf("failed to configure round router: %w", err)
	}

	return &Module{
		EventBus:      eventBus,
		RoundService:  service,
		QueueService:  queueService,
		config:        cfg,
		RoundRouter:   roundRouter,
		Helper:        helpers,
		observability: obs,
	}, nil
}

// Run keeps the module alive until the context is canceled.
func (m *Module) Run(ctx context.Context, wg *sync.WaitGroup) {
	logger := m.observability.Logger
	logger.InfoContext(ctx, "Starting round module")

	ctx, cancel := context.WithCancel(ctx)
	m.cancelFunc = cancel
	defer cancel()

	if wg != nil {
		defer wg.Done()
	}

	<-ctx.Done()
	logger.InfoContext(ctx, "Round module goroutine stopped")
}

// Close stops the round module and cleans up resources.
func (m *Module) Close() error {
	logger := m.observability.Logger
	logger.Info("Stopping round module")

	if m.cancelFunc != nil {
		m.cancelFunc()
	}

	if m.RoundRouter != nil {
		if err := m.RoundRouter.Close(); err != nil {
			return fmt.Errorf("error closing RoundRouter: %w", err)
		}
	}

	logger.Info("Round module stopped")
	return nil
}
