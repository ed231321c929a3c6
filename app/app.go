// Package app assembles the pool backend: config, observability, database,
// event bus, queue, and the four domain modules.
package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/palpite-club/pool-backend/app/adapters"
	"github.com/palpite-club/pool-backend/app/eventbus"
	"github.com/palpite-club/pool-backend/app/modules/bet"
	"github.com/palpite-club/pool-backend/app/modules/champion"
	"github.com/palpite-club/pool-backend/app/modules/ranking"
	"github.com/palpite-club/pool-backend/app/modules/round"
	roundqueue "github.com/palpite-club/pool-backend/app/modules/round/infrastructure/queue"
	"github.com/palpite-club/pool-backend/app/shared/utils"
	"github.com/palpite-club/pool-backend/config"
	"github.com/palpite-club/pool-backend/db/bundb"
	"github.com/palpite-club/pool-backend/observability"
)

// App is the fully wired application.
type App struct {
	Config        *config.Config
	Observability *observability.Observability
	DBService     *bundb.DBService
	EventBus      eventbus.EventBus
	Router        *message.Router
	QueueService  roundqueue.QueueService
	OpsServer     *observability.OpsServer

	RoundModule    *round.Module
	BetModule      *bet.Module
	RankingModule  *ranking.Module
	ChampionModule *champion.Module

	cancel context.CancelFunc
}

// NewApp wires every component. Modules register their handlers on one shared
// watermill router; Run starts it.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	obs := observability.Init(cfg.Observability)
	logger := obs.Logger

	dbService, err := bundb.NewBunDBService(ctx, cfg.Postgres)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database service: %w", err)
	}

	bus, err := eventbus.NewEventBus(ctx, cfg.NATS.URL, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize event bus: %w", err)
	}

	for _, stream := range eventbus.AllStreams() {
		if err := bus.CreateStream(ctx, stream); err != nil {
			return nil, fmt.Errorf("failed to create stream %s: %w", stream, err)
		}
	}

	router, err := message.NewRouter(
		message.RouterConfig{CloseTimeout: 30 * time.Second},
		watermill.NewSlogLogger(logger),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create watermill router: %w", err)
	}

	helpers := utils.NewHelpers()
	bunDB := dbService.GetDB()

	queueService, err := roundqueue.NewService(ctx, bunDB, logger, cfg.Postgres.DSN, bus, helpers)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize queue service: %w", err)
	}

	roundModule, err := round.NewRoundModule(ctx, cfg, obs, dbService.RoundDB, queueService, bus, router, helpers, bunDB, ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize round module: %w", err)
	}

	betModule, err := bet.NewBetModule(ctx, cfg, obs, dbService.BetDB, bus, router, helpers, bunDB, ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize bet module: %w", err)
	}

	championModule, err := champion.NewChampionModule(ctx, cfg, obs, dbService.ChampionDB, bus, router, helpers, bunDB, ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize champion module: %w", err)
	}

	ports := ranking.Ports{
		Rounds:       &adapters.RoundPortAdapter{Service: roundModule.RoundService},
		Bets:         &adapters.BetPortAdapter{Service: betModule.BetService},
		Champions:    &adapters.ChampionPortAdapter{Service: championModule.ChampionService},
		Participants: &adapters.ParticipantPortAdapter{Repo: dbService.UserDB},
	}

	rankingModule, err := ranking.NewRankingModule(ctx, cfg, obs, dbService.RankingDB, ports, bus, router, helpers, bunDB, ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize ranking module: %w", err)
	}

	return &App{
		Config:         cfg,
		Observability:  obs,
		DBService:      dbService,
		EventBus:       bus,
		Router:         router,
		QueueService:   queueService,
		OpsServer:      observability.NewOpsServer(cfg.Observability.MetricsAddress, obs),
		RoundModule:    roundModule,
		BetModule:      betModule,
		RankingModule:  rankingModule,
		ChampionModule: championModule,
	}, nil
}

// Run starts the router, the queue workers, the ops server, and the module
// goroutines, then blocks until the context is canceled.
func (a *App) Run(ctx context.Context) error {
	logger := a.Observability.Logger

	ctx, cancel := context.WithCancel(ctx)
	a.cancel = cancel
	defer cancel()

	if err := a.QueueService.Start(ctx); err != nil {
		return fmt.Errorf("failed to start queue service: %w", err)
	}

	go func() {
		if err := a.OpsServer.Run(ctx); err != nil {
			logger.Error("ops server stopped", "error", err)
		}
	}()

	var wg sync.WaitGroup
	for _, mod := range []interface {
		Run(ctx context.Context, wg *sync.WaitGroup)
	}{a.RoundModule, a.BetModule, a.RankingModule, a.ChampionModule} {
		wg.Add(1)
		go mod.Run(ctx, &wg)
	}

	logger.InfoContext(ctx, "Starting watermill router")
	if err := a.Router.Run(ctx); err != nil && ctx.Err() == nil {
		return fmt.Errorf("watermill router stopped: %w", err)
	}

	wg.Wait()
	return nil
}

// Close shuts everything down in reverse dependency order.
func (a *App) Close() error {
	logger := a.Observability.Logger
	logger.Info("Shutting down application")

	if a.cancel != nil {
		a.cancel()
	}

	for _, mod := range []interface{ Close() error }{
		a.RankingModule, a.ChampionModule, a.BetModule, a.RoundModule,
	} {
		if err := mod.Close(); err != nil {
			logger.Error("error closing module", "error", err)
		}
	}

	stopCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := a.QueueService.Stop(stopCtx); err != nil {
		logger.Error("error stopping queue service", "error", err)
	}

	if err := a.EventBus.Close(); err != nil {
		logger.Error("error closing event bus", "error", err)
	}

	if err := a.DBService.GetDB().Close(); err != nil {
		logger.Error("error closing database", "error", err)
	}

	logger.Info("Application shut down")
	return nil
}
