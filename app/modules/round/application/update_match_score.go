package roundservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/uptrace/bun"

	roundevents "github.com/palpite-club/pool-backend/app/modules/round/domain/events"
	rounddb "github.com/palpite-club/pool-backend/app/modules/round/infrastructure/repositories"
	"github.com/palpite-club/pool-backend/app/shared/attr"
	"github.com/palpite-club/pool-backend/app/shared/results"
	sharedtypes "github.com/palpite-club/pool-backend/app/shared/types"
)

// UpdateMatchScore writes one match's reported score onto the round's slate.
// Edits are allowed on active and finalized rounds alike; the ranking module
// reruns the round pipeline off the emitted event.
func (s *RoundService) UpdateMatchScore(ctx context.Context, payload roundevents.MatchScoreUpdateRequestedPayloadV1) (results.OperationResult[roundevents.MatchScoreUpdatedPayloadV1, roundevents.MatchScoreUpdateFailedPayloadV1], error) {
	return withTelemetry(s, ctx, "UpdateMatchScore", attr.RoundID("round_id", payload.RoundID),
		func(ctx context.Context) (results.OperationResult[roundevents.MatchScoreUpdatedPayloadV1, roundevents.MatchScoreUpdateFailedPayloadV1], error) {
			return runInTx(s, ctx, func(ctx context.Context, db bun.IDB) (results.OperationResult[roundevents.MatchScoreUpdatedPayloadV1, roundevents.MatchScoreUpdateFailedPayloadV1], error) {
				fail := func(reason string) results.OperationResult[roundevents.MatchScoreUpdatedPayloadV1, roundevents.MatchScoreUpdateFailedPayloadV1] {
					return results.Failure[roundevents.MatchScoreUpdatedPayloadV1](roundevents.MatchScoreUpdateFailedPayloadV1{
						RoundID:      payload.RoundID,
						MatchOrdinal: payload.MatchOrdinal,
						Reason:       reason,
					})
				}

				round, err := s.repo.GetRound(ctx, db, payload.RoundID)
				if err != nil {
					if errors.Is(err, rounddb.ErrRoundNotFound) {
						return fail("round not found"), nil
					}
					return results.OperationResult[roundevents.MatchScoreUpdatedPayloadV1, roundevents.MatchScoreUpdateFailedPayloadV1]{}, err
				}

				if payload.MatchOrdinal < 1 || payload.MatchOrdinal > len(round.Matches) {
					return fail(fmt.Sprintf("match ordinal %d out of range 1..%d",
						payload.MatchOrdinal, len(round.Matches))), nil
				}
				if payload.HomeScore < 0 || payload.AwayScore < 0 {
					return fail("scores must not be negative"), nil
				}

				home, away := payload.HomeScore, payload.AwayScore
				match := &round.Matches[payload.MatchOrdinal-1]
				match.HomeScore = &home
				match.AwayScore = &away
				match.Finalized = payload.Finalized

				if err := s.repo.UpdateMatches(ctx, db, round.ID, round.Matches); err != nil {
					return results.OperationResult[roundevents.MatchScoreUpdatedPayloadV1, roundevents.MatchScoreUpdateFailedPayloadV1]{}, err
				}

				return results.Success[roundevents.MatchScoreUpdatedPayloadV1, roundevents.MatchScoreUpdateFailedPayloadV1](roundevents.MatchScoreUpdatedPayloadV1{
					RoundID:      round.ID,
					MatchOrdinal: payload.MatchOrdinal,
					HomeScore:    payload.HomeScore,
					AwayScore:    payload.AwayScore,
					Finalized:    payload.Finalized,
				}), nil
			})
		})
}

// GetRound returns the round as a cross-module snapshot.
func (s *RoundService) GetRound(ctx context.Context, roundID sharedtypes.RoundID) (sharedtypes.RoundSnapshot, error) {
	round, err := s.repo.GetRound(ctx, nil, roundID)
	if err != nil {
		return sharedtypes.RoundSnapshot{}, err
	}
	return sharedtypes.RoundSnapshot{
		RoundID:         round.ID,
		Number:          round.Number,
		Name:            round.Name,
		Kind:            round.Kind,
		State:           round.State,
		Matches:         round.Matches,
		BetsCloseAt:     round.BetsCloseAt,
		ChampionSummary: round.ChampionSummary,
	}, nil
}

// MarkFinalized flips the round to finalized. The recompute pipeline calls
// this as its last step.
func (s *RoundService) MarkFinalized(ctx context.Context, roundID sharedtypes.RoundID) error {
	now := timeNow()
	return s.repo.UpdateRoundState(ctx, nil, roundID, sharedtypes.RoundStateFinalized, &now)
}

// SetChampionSummary writes the denormalized champion summary onto the round.
func (s *RoundService) SetChampionSummary(ctx context.Context, roundID sharedtypes.RoundID, summary []sharedtypes.ChampionSummary) error {
	return s.repo.SetChampionSummary(ctx, nil, roundID, summary)
}
