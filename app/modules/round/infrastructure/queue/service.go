package roundqueue

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"github.com/uptrace/bun"

	"github.com/palpite-club/pool-backend/app/eventbus"
	"github.com/palpite-club/pool-backend/app/shared/attr"
	"github.com/palpite-club/pool-backend/app/shared/utils"
	sharedtypes "github.com/palpite-club/pool-backend/app/shared/types"
)

// QueueService schedules deadline jobs for the round module.
type QueueService interface {
	// ScheduleBettingClose schedules the betting-closed announcement for a
	// round. Unique per round; rescheduling the same round is a no-op.
	ScheduleBettingClose(ctx context.Context, roundID sharedtypes.RoundID, closeAt time.Time) error
	// Start starts the queue workers.
	Start(ctx context.Context) error
	// Stop drains and stops the queue workers.
	Stop(ctx context.Context) error
}

var _ QueueService = (*Service)(nil)

// Service is the River-backed QueueService.
type Service struct {
	client *river.Client[pgx.Tx]
	pool   *pgxpool.Pool
	logger *slog.Logger
	db     *bun.DB
}

// NewService creates the River-based queue service. River needs its own pgx
// pool; bun's database/sql pool cannot be shared with it.
func NewService(ctx context.Context, bunDB *bun.DB, logger *slog.Logger, dsn string, eventBus eventbus.EventBus, helpers utils.Helpers) (*Service, error) {
	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse DSN for River: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create pgx pool for River: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database for River: %w", err)
	}

	workers := river.NewWorkers()
	river.AddWorker(workers, NewBettingCloseWorker(logger, eventBus, helpers))

	riverClient, err := river.NewClient(riverpgxv5.New(pool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: 10},
			"round":            {MaxWorkers: 5},
		},
		Workers: workers,
	})
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to create River client: %w", err)
	}

	return &Service{
		client: riverClient,
		pool:   pool,
		logger: logger,
		db:     bunDB,
	}, nil
}

func (s *Service) Start(ctx context.Context) error {
	s.logger.Info("Starting round queue service")
	if err := s.client.Start(ctx); err != nil {
		return fmt.Errorf("failed to start River client: %w", err)
	}
	return nil
}

func (s *Service) Stop(ctx context.Context) error {
	s.logger.Info("Stopping round queue service")
	if err := s.client.Stop(ctx); err != nil {
		return fmt.Errorf("failed to stop River client: %w", err)
	}
	s.pool.Close()
	return nil
}

func (s *Service) ScheduleBettingClose(ctx context.Context, roundID sharedtypes.RoundID, closeAt time.Time) error {
	ctxLogger := s.logger.With(
		attr.RoundID("round_id", roundID),
		attr.String("operation", "schedule_betting_close"),
	)

	if closeAt.Before(time.Now()) {
		ctxLogger.Warn("Betting deadline already passed, skipping schedule")
		return nil
	}

	jobResult, err := s.client.Insert(ctx, BettingCloseJob{RoundID: roundID}, &river.InsertOpts{
		Queue:       "round",
		ScheduledAt: closeAt,
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to schedule betting close job: %w", err)
	}

	ctxLogger.Info("Betting close job scheduled",
		attr.Any("scheduled_at", closeAt),
		attr.Any("job_id", jobResult.Job.ID),
	)
	return nil
}
