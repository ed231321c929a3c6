package roundservice

import (
	"context"

	roundevents "github.com/palpite-club/pool-backend/app/modules/round/domain/events"
	"github.com/palpite-club/pool-backend/app/shared/results"
	sharedtypes "github.com/palpite-club/pool-backend/app/shared/types"
)

// Service is the round module's application surface.
type Service interface {
	CreateRound(ctx context.Context, payload roundevents.CreateRoundRequestedPayloadV1) (results.OperationResult[roundevents.RoundCreatedPayloadV1, roundevents.RoundCreationFailedPayloadV1], error)
	UpdateMatchScore(ctx context.Context, payload roundevents.MatchScoreUpdateRequestedPayloadV1) (results.OperationResult[roundevents.MatchScoreUpdatedPayloadV1, roundevents.MatchScoreUpdateFailedPayloadV1], error)
	GetRound(ctx context.Context, roundID sharedtypes.RoundID) (sharedtypes.RoundSnapshot, error)
	MarkFinalized(ctx context.Context, roundID sharedtypes.RoundID) error
	SetChampionSummary(ctx context.Context, roundID sharedtypes.RoundID, summary []sharedtypes.ChampionSummary) error
}

var _ Service = (*RoundService)(nil)
