// Package champion wires the champion module: repository, resolver service,
// prize workflow handlers, router.
package champion

import (
	"context"
	"fmt"
	"sync"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/uptrace/bun"

	"github.com/palpite-club/pool-backend/app/eventbus"
	championservice "github.com/palpite-club/pool-backend/app/modules/champion/application"
	championhandlers "github.com/palpite-club/pool-backend/app/modules/champion/infrastructure/handlers"
	championdb "github.com/palpite-club/pool-backend/app/modules/champion/infrastructure/repositories"
	championrouter "github.com/palpite-club/pool-backend/app/modules/champion/infrastructure/router"
	"github.com/palpite-club/pool-backend/app/shared/utils"
	"github.com/palpite-club/pool-backend/config"
	"github.com/palpite-club/pool-backend/observability"
)

// Module represents the champion module.
type Module struct {
	EventBus        eventbus.EventBus
	ChampionService championservice.Service
	config          *config.Config
	ChampionRouter  *championrouter.ChampionRouter
	cancelFunc      context.CancelFunc
	Helper          utils.Helpers
	observability   *observability.Observability
}

// NewChampionModule creates a new instance of the champion module.
func NewChampionModule(
	ctx context.Context,
	cfg *config.Config,
	obs *observability.Observability,
	repo championdb.Repository,
	eventBus eventbus.EventBus,
	router *message.Router,
	helpers utils.Helpers,
	bunDB *bun.DB,
	routerCtx context.Context,
) (*Module, error) {
	logger := obs.Logger
	metrics := obs.Metrics.Champion
	tracer := obs.Tracer

	service := championservice.NewChampionService(repo, eventBus, logger, metrics, tracer, bunDB)
	handlers := championhandlers.NewChampionHandlers(service)

	championRouter := championrouter.NewChampionRouter(logger, router, eventBus, eventBus, cfg, helpers, tracer, obs.Registry)
	if err := championRouter.Configure(routerCtx, handlers, obs.Metrics.Handlers); err != nil {
		return nil, fmt.Errorf("failed to configure champion router: %w", err)
	}

	return &Module{
		EventBus:        eventBus,
		ChampionService: service,
		config:          cfg,
		ChampionRouter:  championRouter,
		Helper:          helpers,
		observability:   obs,
	}, nil
}

// Run keeps the module alive until the context is canceled.
func (m *Module) Run(ctx context.Context, wg *sync.WaitGroup) {
	logger := m.observability.Logger
	logger.InfoContext(ctx, "Starting champion module")

	ctx, cancel := context.WithCancel(ctx)
	m.cancelFunc = cancel
	defer cancel()

	if wg != nil {
		defer wg.Done()
	}

	<-ctx.Done()
	logger.InfoContext(ctx, "Champion module goroutine stopped")
}

// Close stops the champion module and cleans up resources.
func (m *Module) Close() error {
	logger := m.observability.Logger
	logger.Info("Stopping champion module")

	if m.cancelFunc != nil {
		m.cancelFunc()
	}

	if m.ChampionRouter != nil {
		if err := m.ChampionRouter.Close(); err != nil {
			return fmt.Errorf("error closing ChampionRouter: %w", err)
		}
	}

	logger.Info("Champion module stopped")
	return nil
}
