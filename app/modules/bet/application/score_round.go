package betservice

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/palpite-club/pool-backend/app/shared/attr"
	"github.com/palpite-club/pool-backend/app/shared/results"
	sharedtypes "github.com/palpite-club/pool-backend/app/shared/types"
)

// ScoredRound is the outcome of a scoring pass over one round's bets.
type ScoredRound struct {
	RoundID sharedtypes.RoundID         `json:"round_id"`
	Bets    []sharedtypes.BetSnapshot   `json:"bets"`
}

// ScoreRoundFailure reports why a scoring pass could not run.
type ScoreRoundFailure struct {
	RoundID sharedtypes.RoundID `json:"round_id"`
	Reason  string              `json:"reason"`
}

// ScoreRoundBets refreshes the derived line totals and round performance of
// every actionable bet in the round against the given matches, and returns the
// scored snapshots ordered by bet creation time. Matches without reported
// scores contribute zero, so the pass is safe to run mid-round.
func (s *BetService) ScoreRoundBets(ctx context.Context, roundID sharedtypes.RoundID, matches []sharedtypes.Match) (results.OperationResult[ScoredRound, ScoreRoundFailure], error) {
	return withTelemetry(s, ctx, "ScoreRoundBets", attr.RoundID("round_id", roundID),
		func(ctx context.Context) (results.OperationResult[ScoredRound, ScoreRoundFailure], error) {
			return runInTx(s, ctx, func(ctx context.Context, db bun.IDB) (results.OperationResult[ScoredRound, ScoreRoundFailure], error) {
				bets, err := s.repo.GetActionableBetsForRound(ctx, db, roundID)
				if err != nil {
					return results.OperationResult[ScoredRound, ScoreRoundFailure]{}, err
				}

				snapshots := make([]sharedtypes.BetSnapshot, 0, len(bets))
				for _, bet := range bets {
					scored, malformed := ScoreLines(bet.Lines, matches)
					if malformed > 0 {
						s.logger.WarnContext(ctx, "Bet contains unresolvable guesses, scored as zero",
							attr.BetID("bet_id", bet.ID),
							attr.RoundID("round_id", roundID),
							attr.Int("malformed_guesses", malformed),
							attr.ExtractCorrelationID(ctx),
						)
					}
					performance := BestPerformance(scored)

					if err := s.repo.UpdateDerived(ctx, db, bet.ID, scored, performance); err != nil {
						return results.OperationResult[ScoredRound, ScoreRoundFailure]{}, err
					}

					bet.Lines = scored
					bet.Performance = &performance
					snapshots = append(snapshots, bet.Snapshot())
				}

				return results.Success[ScoredRound, ScoreRoundFailure](ScoredRound{
					RoundID: roundID,
					Bets:    snapshots,
				}), nil
			})
		})
}

// ListActionableBets returns every non-cancelled bet across all rounds, for
// the cumulative leaderboard pass.
func (s *BetService) ListActionableBets(ctx context.Context) ([]sharedtypes.BetSnapshot, error) {
	bets, err := s.repo.ListActionableBets(ctx, nil)
	if err != nil {
		return nil, err
	}
	snapshots := make([]sharedtypes.BetSnapshot, 0, len(bets))
	for _, bet := range bets {
		snapshots = append(snapshots, bet.Snapshot())
	}
	return snapshots, nil
}

// MarkChampions flags the given bets of a round with champion status. Called
// by the champion resolver after a round finalizes.
func (s *BetService) MarkChampions(ctx context.Context, roundID sharedtypes.RoundID, betIDs []sharedtypes.BetID) error {
	return s.repo.MarkChampionBets(ctx, nil, roundID, betIDs)
}
