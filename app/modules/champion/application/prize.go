package championservice

import (
	"context"
	"errors"

	"github.com/uptrace/bun"

	championevents "github.com/palpite-club/pool-backend/app/modules/champion/domain/events"
	championdb "github.com/palpite-club/pool-backend/app/modules/champion/infrastructure/repositories"
	"github.com/palpite-club/pool-backend/app/shared/attr"
	"github.com/palpite-club/pool-backend/app/shared/results"
	sharedtypes "github.com/palpite-club/pool-backend/app/shared/types"
)

// RequestPrize advances a champion's prize from pending to requested with
// the claim details. Double requests and already-paid records are rejected.
func (s *ChampionService) RequestPrize(ctx context.Context, payload championevents.PrizeRequestedPayloadV1) (results.OperationResult[championevents.PrizeRequestAppliedPayloadV1, championevents.PrizeRequestFailedPayloadV1], error) {
	return withTelemetry(s, ctx, "RequestPrize", attr.String("champion_id", payload.ChampionID.String()),
		func(ctx context.Context) (results.OperationResult[championevents.PrizeRequestAppliedPayloadV1, championevents.PrizeRequestFailedPayloadV1], error) {
			return runInTx(s, ctx, func(ctx context.Context, db bun.IDB) (results.OperationResult[championevents.PrizeRequestAppliedPayloadV1, championevents.PrizeRequestFailedPayloadV1], error) {
				fail := func(reason string) results.OperationResult[championevents.PrizeRequestAppliedPayloadV1, championevents.PrizeRequestFailedPayloadV1] {
					return results.Failure[championevents.PrizeRequestAppliedPayloadV1](championevents.PrizeRequestFailedPayloadV1{
						ChampionID: payload.ChampionID,
						Reason:     reason,
					})
				}

				champion, err := s.repo.GetChampion(ctx, db, payload.ChampionID)
				if err != nil {
					if errors.Is(err, championdb.ErrChampionNotFound) {
						return fail("champion not found"), nil
					}
					return results.OperationResult[championevents.PrizeRequestAppliedPayloadV1, championevents.PrizeRequestFailedPayloadV1]{}, err
				}

				switch champion.PrizeStatus {
				case sharedtypes.PrizeStatusRequested:
					return fail("prize already requested"), nil
				case sharedtypes.PrizeStatusPaid:
					return fail("prize already paid"), nil
				}

				if err := s.repo.MarkPrizeRequested(ctx, db, payload.ChampionID, payload.Details, payload.RequestedAt); err != nil {
					if errors.Is(err, championdb.ErrNoRowsAffected) {
						return fail("prize is not pending"), nil
					}
					return results.OperationResult[championevents.PrizeRequestAppliedPayloadV1, championevents.PrizeRequestFailedPayloadV1]{}, err
				}

				return results.Success[championevents.PrizeRequestAppliedPayloadV1, championevents.PrizeRequestFailedPayloadV1](championevents.PrizeRequestAppliedPayloadV1{
					ChampionID:  payload.ChampionID,
					RoundID:     champion.RoundID,
					PrizeStatus: sharedtypes.PrizeStatusRequested,
					RequestedAt: payload.RequestedAt,
				}), nil
			})
		})
}

// MarkPrizePaid advances a requested prize to paid.
func (s *ChampionService) MarkPrizePaid(ctx context.Context, payload championevents.PrizePaidPayloadV1) (results.OperationResult[championevents.PrizePaidAppliedPayloadV1, championevents.PrizePaidFailedPayloadV1], error) {
	return withTelemetry(s, ctx, "MarkPrizePaid", attr.String("champion_id", payload.ChampionID.String()),
		func(ctx context.Context) (results.OperationResult[championevents.PrizePaidAppliedPayloadV1, championevents.PrizePaidFailedPayloadV1], error) {
			return runInTx(s, ctx, func(ctx context.Context, db bun.IDB) (results.OperationResult[championevents.PrizePaidAppliedPayloadV1, championevents.PrizePaidFailedPayloadV1], error) {
				fail := func(reason string) results.OperationResult[championevents.PrizePaidAppliedPayloadV1, championevents.PrizePaidFailedPayloadV1] {
					return results.Failure[championevents.PrizePaidAppliedPayloadV1](championevents.PrizePaidFailedPayloadV1{
						ChampionID: payload.ChampionID,
						Reason:     reason,
					})
				}

				champion, err := s.repo.GetChampion(ctx, db, payload.ChampionID)
				if err != nil {
					if errors.Is(err, championdb.ErrChampionNotFound) {
						return fail("champion not found"), nil
					}
					return results.OperationResult[championevents.PrizePaidAppliedPayloadV1, championevents.PrizePaidFailedPayloadV1]{}, err
				}

				switch champion.PrizeStatus {
				case sharedtypes.PrizeStatusPending:
					return fail("prize has not been requested"), nil
				case sharedtypes.PrizeStatusPaid:
					return fail("prize already paid"), nil
				}

				if err := s.repo.MarkPrizePaid(ctx, db, payload.ChampionID, payload.PaidAt); err != nil {
					if errors.Is(err, championdb.ErrNoRowsAffected) {
						return fail("prize is not in requested state"), nil
					}
					return results.OperationResult[championevents.PrizePaidAppliedPayloadV1, championevents.PrizePaidFailedPayloadV1]{}, err
				}

				return results.Success[championevents.PrizePaidAppliedPayloadV1, championevents.PrizePaidFailedPayloadV1](championevents.PrizePaidAppliedPayloadV1{
					ChampionID:  payload.ChampionID,
					RoundID:     champion.RoundID,
					PrizeStatus: sharedtypes.PrizeStatusPaid,
					PaidAt:      payload.PaidAt,
				}), nil
			})
		})
}
