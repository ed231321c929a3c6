package betservice

import (
	"context"
	"time"

	betevents "github.com/palpite-club/pool-backend/app/modules/bet/domain/events"
	"github.com/palpite-club/pool-backend/app/shared/results"
	sharedtypes "github.com/palpite-club/pool-backend/app/shared/types"
)

// Service is the bet module's application surface.
type Service interface {
	ScoreRoundBets(ctx context.Context, roundID sharedtypes.RoundID, matches []sharedtypes.Match) (results.OperationResult[ScoredRound, ScoreRoundFailure], error)
	ListActionableBets(ctx context.Context) ([]sharedtypes.BetSnapshot, error)
	MarkChampions(ctx context.Context, roundID sharedtypes.RoundID, betIDs []sharedtypes.BetID) error
	ConfirmPayment(ctx context.Context, betID sharedtypes.BetID, paidAt time.Time) (results.OperationResult[betevents.PaymentAppliedPayloadV1, betevents.PaymentFailedPayloadV1], error)
}

var _ Service = (*BetService)(nil)
