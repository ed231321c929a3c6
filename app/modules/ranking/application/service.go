package rankingservice

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/palpite-club/pool-backend/app/eventbus"
	rankingdb "github.com/palpite-club/pool-backend/app/modules/ranking/infrastructure/repositories"
	"github.com/palpite-club/pool-backend/app/shared/attr"
	"github.com/palpite-club/pool-backend/app/shared/results"
	sharedtypes "github.com/palpite-club/pool-backend/app/shared/types"
	poolmetrics "github.com/palpite-club/pool-backend/observability/metrics"
)

// RankingService implements the Service interface: the recompute pipeline
// over the three snapshot types plus champion resolution.
type RankingService struct {
	repo         rankingdb.Repository
	rounds       RoundPort
	bets         BetPort
	champions    ChampionPort
	participants ParticipantPort
	EventBus     eventbus.EventBus
	logger       *slog.Logger
	metrics      poolmetrics.ServiceMetrics
	tracer       trace.Tracer
	db           *bun.DB

	// roundLocks serializes pipelines per round so unrelated rounds
	// recompute concurrently. datasetMu single-writes the dataset-wide
	// snapshots. datasetLimiter throttles manual dataset triggers.
	roundLocks     sync.Map
	datasetMu      sync.Mutex
	datasetLimiter *rate.Limiter
}

// NewRankingService creates a new RankingService.
func NewRankingService(
	repo rankingdb.Repository,
	rounds RoundPort,
	bets BetPort,
	champions ChampionPort,
	participants ParticipantPort,
	eventBus eventbus.EventBus,
	logger *slog.Logger,
	metrics poolmetrics.ServiceMetrics,
	tracer trace.Tracer,
	db *bun.DB,
) *RankingService {
	return &RankingService{
		repo:           repo,
		rounds:         rounds,
		bets:           bets,
		champions:      champions,
		participants:   participants,
		EventBus:       eventBus,
		logger:         logger,
		metrics:        metrics,
		tracer:         tracer,
		db:             db,
		datasetLimiter: rate.NewLimiter(rate.Every(30*time.Second), 1),
	}
}

// SetDatasetRecomputeRate overrides the default throttle on dataset-wide
// recompute triggers. Non-positive values keep the default.
func (s *RankingService) SetDatasetRecomputeRate(perMinute float64) {
	if perMinute <= 0 {
		return
	}
	s.datasetLimiter = rate.NewLimiter(rate.Limit(perMinute/60), 1)
}

// lockRound takes the per-round critical section and returns its release.
func (s *RankingService) lockRound(roundID sharedtypes.RoundID) func() {
	v, _ := s.roundLocks.LoadOrStore(roundID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

// operationFunc is the generic signature for service operation functions.
type operationFunc[S any, F any] func(ctx context.Context) (results.OperationResult[S, F], error)

// withTelemetry wraps a service operation with tracing, metrics, and panic
// recovery.
func withTelemetry[S any, F any](
	s *RankingService,
	ctx context.Context,
	operationName string,
	keyAttr slog.Attr,
	op operationFunc[S, F],
) (result results.OperationResult[S, F], err error) {
	ctx, span := s.tracer.Start(ctx, operationName, trace.WithAttributes(
		attribute.String("operation", operationName),
		attribute.String(keyAttr.Key, keyAttr.Value.String()),
	))
	defer span.End()

	s.metrics.RecordOperationAttempt(ctx, operationName)

	startTime := time.Now()
	defer func() {
		s.metrics.RecordOperationDuration(ctx, operationName, time.Since(startTime))
	}()

	s.logger.InfoContext(ctx, operationName+" triggered",
		attr.String("operation", operationName),
		keyAttr,
		attr.ExtractCorrelationID(ctx),
	)

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in %s: %v", operationName, r)
			s.logger.ErrorContext(ctx, "Critical panic recovered",
				keyAttr,
				attr.ExtractCorrelationID(ctx),
				attr.Error(err),
			)
			s.metrics.RecordOperationFailure(ctx, operationName)
			span.RecordError(err)
			result = results.OperationResult[S, F]{}
		}
	}()

	result, err = op(ctx)

	if err != nil {
		wrappedErr := fmt.Errorf("%s: %w", operationName, err)
		s.logger.ErrorContext(ctx, "Operation failed with error",
			attr.ExtractCorrelationID(ctx),
			attr.String("operation", operationName),
			keyAttr,
			attr.Error(wrappedErr),
		)
		s.metrics.RecordOperationFailure(ctx, operationName)
		span.RecordError(wrappedErr)
		return result, wrappedErr
	}

	if result.IsFailure() {
		s.logger.WarnContext(ctx, "Operation returned failure result",
			attr.ExtractCorrelationID(ctx),
			attr.String("operation", operationName),
			keyAttr,
			attr.Any("failure_payload", *result.Failure),
		)
	}

	if result.IsSuccess() {
		s.logger.InfoContext(ctx, operationName+" completed successfully",
			attr.String("operation", operationName),
			keyAttr,
			attr.ExtractCorrelationID(ctx),
		)
		s.metrics.RecordOperationSuccess(ctx, operationName)
	}

	return result, nil
}

// runInTx ensures the operation runs within a transaction.
func runInTx(
	s *RankingService,
	ctx context.Context,
	fn func(ctx context.Context, db bun.IDB) error,
) error {
	if s.db == nil {
		return fn(ctx, nil)
	}
	return s.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		return fn(ctx, tx)
	})
}
