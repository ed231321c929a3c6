// Package bet wires the bet module: repository, service, handlers, router.
package bet

import (
	"context"
	"fmt"
	"sync"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/uptrace/bun"

	"github.com/palpite-club/pool-backend/app/eventbus"
	betservice "github.com/palpite-club/pool-backend/app/modules/bet/application"
	betdb "github.com/palpite-club/pool-backend/app/modules/bet/infrastructure/repositories"
	bethandlers "github.com/palpite-club/pool-backend/app/modules/bet/infrastructure/handlers"
	betrouter "github.com/palpite-club/pool-backend/app/modules/bet/infrastructure/router"
	"github.com/palpite-club/pool-backend/app/shared/utils"
	"github.com/palpite-club/pool-backend/config"
	"github.com/palpite-club/pool-backend/observability"
)

// Module represents the bet module.
type Module struct {
	EventBus      eventbus.EventBus
	BetService    betservice.Service
	config        *config.Config
	BetRouter     *betrouter.BetRouter
	cancelFunc    context.CancelFunc
	Helper        utils.Helpers
	observability *observability.Observability
}

// NewBetModule creates a new instance of the bet module.
func NewBetModule(
	ctx context.Context,
	cfg *config.Config,
	obs *observability.Observability,
	repo betdb.Repository,
	eventBus eventbus.EventBus,
	router *message.Router,
	helpers utils.Helpers,
	bunDB *bun.DB,
	routerCtx context.Context,
) (*Module, error) {
	logger := obs.Logger
	metrics := obs.Metrics.Bet
	tracer := obs.Tracer

	service := betservice.NewBetService(repo, eventBus, logger, metrics, tracer, bunDB)
	handlers := bethandlers.NewBetHandlers(service)

	betRouter := betrouter.NewBetRouter(logger, router, eventBus, eventBus, cfg, helpers, tracer, obs.Registry)
	if err := betRouter.Configure(routerCtx, handlers, obs.Metrics.Handlers); err != nil {
		return nil, fmt.Errorf("failed to configure bet router: %w", err)
	}

	return &Module{
		EventBus:      eventBus,
		BetService:    service,
		config:        cfg,
		BetRouter:     betRouter,
		Helper:        helpers,
		observability: obs,
	}, nil
}

// Run keeps the module alive until the context is canceled.
func (m *Module) Run(ctx context.Context, wg *sync.WaitGroup) {
	logger := m.observability.Logger
	logger.InfoContext(ctx, "Starting bet module")

	ctx, cancel := context.WithCancel(ctx)
	m.cancelFunc = cancel
	defer cancel()

	if wg != nil {
		defer wg.Done()
	}

	<-ctx.Done()
	logger.InfoContext(ctx, "Bet module goroutine stopped")
}

// Close stops the bet module and cleans up resources.
func (m *Module) Close() error {
	logger := m.observability.Logger
	logger.Info("Stopping bet module")

	if m.cancelFunc != nil {
		m.cancelFunc()
	}

	if m.BetRouter != nil {
		if err := m.BetRouter.Close(); err != nil {
			return fmt.Errorf("error closing BetRouter: %w", err)
		}
	}

	logger.Info("Bet module stopped")
	return nil
}
