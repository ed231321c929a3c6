package rankingservice

import (
	"context"

	rankingevents "github.com/palpite-club/pool-backend/app/modules/ranking/domain/events"
	roundevents "github.com/palpite-club/pool-backend/app/modules/round/domain/events"
	"github.com/palpite-club/pool-backend/app/shared/results"
	sharedtypes "github.com/palpite-club/pool-backend/app/shared/types"
)

// Service is the ranking module's application surface.
type Service interface {
	RecomputeRound(ctx context.Context, roundID sharedtypes.RoundID) (results.OperationResult[rankingevents.RoundRankingComputedPayloadV1, rankingevents.RoundRankingFailedPayloadV1], error)
	FinalizeRound(ctx context.Context, roundID sharedtypes.RoundID) (results.OperationResult[roundevents.RoundFinalizedPayloadV1, roundevents.FinalizeFailedPayloadV1], error)
	RecomputeDataset(ctx context.Context) (results.OperationResult[rankingevents.RecomputeCompletedPayloadV1, rankingevents.RecomputeFailedPayloadV1], error)
	ExportRoundRankingXLSX(ctx context.Context, roundID sharedtypes.RoundID) ([]byte, error)
	RenderAffinityChart(ctx context.Context) ([]byte, error)
}

var _ Service = (*RankingService)(nil)
