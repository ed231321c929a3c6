// Package ranking wires the ranking module: snapshot repository, recompute
// pipeline, handlers, router.
package ranking

import (
	"context"
	"fmt"
	"sync"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/uptrace/bun"

	"github.com/palpite-club/pool-backend/app/eventbus"
	rankingservice "github.com/palpite-club/pool-backend/app/modules/ranking/application"
	rankinghandlers "github.com/palpite-club/pool-backend/app/modules/ranking/infrastructure/handlers"
	rankingdb "github.com/palpite-club/pool-backend/app/modules/ranking/infrastructure/repositories"
	rankingrouter "github.com/palpite-club/pool-backend/app/modules/ranking/infrastructure/router"
	"github.com/palpite-club/pool-backend/app/shared/utils"
	"github.com/palpite-club/pool-backend/config"
	"github.com/palpite-club/pool-backend/observability"
)

// Module represents the ranking module.
type Module struct {
	EventBus       eventbus.EventBus
	RankingService rankingservice.Service
	config         *config.Config
	RankingRouter  *rankingrouter.RankingRouter
	cancelFunc     context.CancelFunc
	Helper         utils.Helpers
	observability  *observability.Observability
}

// Ports bundles the cross-module dependencies the pipeline runs against.
type Ports struct {
	Rounds       rankingservice.RoundPort
	Bets         rankingservice.BetPort
	Champions    rankingservice.ChampionPort
	Participants rankingservice.ParticipantPort
}

// NewRankingModule creates a new instance of the ranking module.
func NewRankingModule(
	ctx context.Context,
	cfg *config.Config,
	obs *observability.Observability,
	repo rankingdb.Repository,
	ports Ports,
	eventBus eventbus.EventBus,
	router *message.Router,
	helpers utils.Helpers,
	bunDB *bun.DB,
	routerCtx context.Context,
) (*Module, error) {
	logger := obs.Logger
	metrics := obs.Metrics.Ranking
	tracer := obs.Tracer

	service := rankingservice.NewRankingService(
		repo, ports.Rounds, ports.Bets, ports.Champions, ports.Participants,
		eventBus, logger, metrics, tracer, bunDB,
	)
	service.SetDatasetRecomputeRate(cfg.Recompute.DatasetRecomputesPerMinute)
	handlers := rankinghandlers.NewRankingHandlers(service)

	rankingRouter := rankingrouter.NewRankingRouter(logger, router, eventBus, eventBus, cfg, helpers, tracer, obs.Registry)
	if err := rankingRouter.Configure(routerCtx, handlers, obs.Metrics.Handlers); err != nil {
		return nil, fmt.Errorf("failed to configure ranking router: %w", err)
	}

	return &Module{
		EventBus:       eventBus,
		RankingService: service,
		config:         cfg,
		RankingRouter:  rankingRouter,
		Helper:         helpers,
		observability:  obs,
	}, nil
}

// Run keeps the module alive until the context is canceled.
func (m *Module) Run(ctx context.Context, wg *sync.WaitGroup) {
	logger := m.observability.Logger
	logger.InfoContext(ctx, "Starting ranking module")

	ctx, cancel := context.WithCancel(ctx)
	m.cancelFunc = cancel
	defer cancel()

	if wg != nil {
		defer wg.Done()
	}

	<-ctx.Done()
	logger.InfoContext(ctx, "Ranking module goroutine stopped")
}

// Close stops the ranking module and cleans up resources.
func (m *Module) Close() error {
	logger := m.observability.Logger
	logger.Info("Stopping ranking module")

	if m.cancelFunc != nil {
		m.cancelFunc()
	}

	if m.RankingRouter != nil {
		if err := m.RankingRouter.Close(); err != nil {
			return fmt.Errorf("error closing RankingRouter: %w", err)
		}
	}

	logger.Info("Ranking module stopped")
	return nil
}
