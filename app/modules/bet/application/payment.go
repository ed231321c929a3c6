package betservice

import (
	"context"
	"errors"
	"time"

	"github.com/uptrace/bun"

	betevents "github.com/palpite-club/pool-backend/app/modules/bet/domain/events"
	betdb "github.com/palpite-club/pool-backend/app/modules/bet/infrastructure/repositories"
	"github.com/palpite-club/pool-backend/app/shared/attr"
	"github.com/palpite-club/pool-backend/app/shared/results"
	sharedtypes "github.com/palpite-club/pool-backend/app/shared/types"
)

// ConfirmPayment moves an active bet to paid. Re-delivery of an already
// applied confirmation succeeds without touching the row; cancelled bets are
// rejected as a business failure.
func (s *BetService) ConfirmPayment(ctx context.Context, betID sharedtypes.BetID, paidAt time.Time) (results.OperationResult[betevents.PaymentAppliedPayloadV1, betevents.PaymentFailedPayloadV1], error) {
	return withTelemetry(s, ctx, "ConfirmPayment", attr.BetID("bet_id", betID),
		func(ctx context.Context) (results.OperationResult[betevents.PaymentAppliedPayloadV1, betevents.PaymentFailedPayloadV1], error) {
			return runInTx(s, ctx, func(ctx context.Context, db bun.IDB) (results.OperationResult[betevents.PaymentAppliedPayloadV1, betevents.PaymentFailedPayloadV1], error) {
				bet, err := s.repo.GetBet(ctx, db, betID)
				if err != nil {
					if errors.Is(err, betdb.ErrBetNotFound) {
						return results.Failure[betevents.PaymentAppliedPayloadV1](betevents.PaymentFailedPayloadV1{
							BetID:  betID,
							Reason: "bet not found",
						}), nil
					}
					return results.OperationResult[betevents.PaymentAppliedPayloadV1, betevents.PaymentFailedPayloadV1]{}, err
				}

				switch bet.Status {
				case sharedtypes.BetStatusActive:
					if err := s.repo.MarkPaid(ctx, db, betID, paidAt); err != nil {
						return results.OperationResult[betevents.PaymentAppliedPayloadV1, betevents.PaymentFailedPayloadV1]{}, err
					}
				case sharedtypes.BetStatusCancelled:
					return results.Failure[betevents.PaymentAppliedPayloadV1](betevents.PaymentFailedPayloadV1{
						BetID:  betID,
						Reason: "bet is cancelled",
					}), nil
				default:
					// Already paid or advanced further; confirmation is a no-op.
					applied := bet.PaidAt
					if applied == nil {
						applied = &paidAt
					}
					return results.Success[betevents.PaymentAppliedPayloadV1, betevents.PaymentFailedPayloadV1](betevents.PaymentAppliedPayloadV1{
						BetID:         bet.ID,
						RoundID:       bet.RoundID,
						ParticipantID: bet.ParticipantID,
						Status:        bet.Status,
						PaidAt:        *applied,
					}), nil
				}

				return results.Success[betevents.PaymentAppliedPayloadV1, betevents.PaymentFailedPayloadV1](betevents.PaymentAppliedPayloadV1{
					BetID:         bet.ID,
					RoundID:       bet.RoundID,
					ParticipantID: bet.ParticipantID,
					Status:        sharedtypes.BetStatusPaid,
					PaidAt:        paidAt,
				}), nil
			})
		})
}
