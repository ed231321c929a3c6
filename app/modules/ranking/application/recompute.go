package rankingservice

import (
	"context"
	"errors"

	"github.com/uptrace/bun"

	rankingevents "github.com/palpite-club/pool-backend/app/modules/ranking/domain/events"
	rankingdb "github.com/palpite-club/pool-backend/app/modules/ranking/infrastructure/repositories"
	roundevents "github.com/palpite-club/pool-backend/app/modules/round/domain/events"
	"github.com/palpite-club/pool-backend/app/shared/attr"
	"github.com/palpite-club/pool-backend/app/shared/results"
	sharedtypes "github.com/palpite-club/pool-backend/app/shared/types"
)

// Pipeline step names carried in failure payloads so callers know where a
// finalize retry has to pick up.
const (
	stepLoadRound     = "load_round"
	stepPreconditions = "preconditions"
	stepRoundRanking  = "round_ranking"
	stepOverall       = "overall_ranking"
	stepAffinity      = "affinity_ranking"
	stepStats         = "participant_stats"
	stepChampions     = "champion_resolution"
	stepStatusFlip    = "status_flip"
)

// RecomputeRound is the partial trigger: refreshes scoring and replaces the
// round's ranking snapshot. Champion state and round status stay untouched.
func (s *RankingService) RecomputeRound(ctx context.Context, roundID sharedtypes.RoundID) (results.OperationResult[rankingevents.RoundRankingComputedPayloadV1, rankingevents.RoundRankingFailedPayloadV1], error) {
	return withTelemetry(s, ctx, "RecomputeRound", attr.RoundID("round_id", roundID),
		func(ctx context.Context) (results.OperationResult[rankingevents.RoundRankingComputedPayloadV1, rankingevents.RoundRankingFailedPayloadV1], error) {
			unlock := s.lockRound(roundID)
			defer unlock()

			round, err := s.rounds.GetRound(ctx, roundID)
			if err != nil {
				if errors.Is(err, ErrRoundNotFound) {
					return results.Failure[rankingevents.RoundRankingComputedPayloadV1](rankingevents.RoundRankingFailedPayloadV1{
						RoundID: roundID,
						Reason:  "round not found",
					}), nil
				}
				return results.OperationResult[rankingevents.RoundRankingComputedPayloadV1, rankingevents.RoundRankingFailedPayloadV1]{}, err
			}

			entries, err := s.computeRoundRanking(ctx, round)
			if err != nil {
				return results.OperationResult[rankingevents.RoundRankingComputedPayloadV1, rankingevents.RoundRankingFailedPayloadV1]{}, err
			}

			return results.Success[rankingevents.RoundRankingComputedPayloadV1, rankingevents.RoundRankingFailedPayloadV1](rankingevents.RoundRankingComputedPayloadV1{
				RoundID: roundID,
				Entries: len(entries),
			}), nil
		})
}

// FinalizeRound runs the full pipeline as one logical unit: round ranking,
// overall, affinity (plus the stats rollup), champion resolution, and the
// status flip last. Any step failure aborts the rest and reports the step;
// the round is never left finalized with incomplete derived state.
func (s *RankingService) FinalizeRound(ctx context.Context, roundID sharedtypes.RoundID) (results.OperationResult[roundevents.RoundFinalizedPayloadV1, roundevents.FinalizeFailedPayloadV1], error) {
	return withTelemetry(s, ctx, "FinalizeRound", attr.RoundID("round_id", roundID),
		func(ctx context.Context) (results.OperationResult[roundevents.RoundFinalizedPayloadV1, roundevents.FinalizeFailedPayloadV1], error) {
			unlock := s.lockRound(roundID)
			defer unlock()

			fail := func(step, reason string) results.OperationResult[roundevents.RoundFinalizedPayloadV1, roundevents.FinalizeFailedPayloadV1] {
				return results.Failure[roundevents.RoundFinalizedPayloadV1](roundevents.FinalizeFailedPayloadV1{
					RoundID: roundID,
					Step:    step,
					Reason:  reason,
				})
			}

			round, err := s.rounds.GetRound(ctx, roundID)
			if err != nil {
				if errors.Is(err, ErrRoundNotFound) {
					return fail(stepLoadRound, "round not found"), nil
				}
				return fail(stepLoadRound, err.Error()), nil
			}
			if !round.AllMatchesFinalized() {
				return fail(stepPreconditions, "not all matches are finalized"), nil
			}

			entries, err := s.computeRoundRanking(ctx, round)
			if err != nil {
				return fail(stepRoundRanking, err.Error()), nil
			}

			if step, err := s.recomputeDatasetSnapshots(ctx); err != nil {
				return fail(step, err.Error()), nil
			}

			resolution, err := s.champions.ResolveChampions(ctx, round, entries)
			if err != nil {
				return fail(stepChampions, err.Error()), nil
			}
			if err := s.bets.MarkChampions(ctx, roundID, resolution.BetIDs); err != nil {
				return fail(stepChampions, err.Error()), nil
			}
			if err := s.rounds.SetChampionSummary(ctx, roundID, resolution.Summaries); err != nil {
				return fail(stepChampions, err.Error()), nil
			}

			// Status flips last: a retry after any failure above still finds
			// the round active.
			if err := s.rounds.MarkFinalized(ctx, roundID); err != nil {
				return fail(stepStatusFlip, err.Error()), nil
			}

			return results.Success[roundevents.RoundFinalizedPayloadV1, roundevents.FinalizeFailedPayloadV1](roundevents.RoundFinalizedPayloadV1{
				RoundID:   roundID,
				Champions: resolution.Summaries,
			}), nil
		})
}

// RecomputeDataset is the maintenance trigger for the dataset-wide
// snapshots. Rate-limited; overlapping manual triggers are rejected rather
// than queued.
func (s *RankingService) RecomputeDataset(ctx context.Context) (results.OperationResult[rankingevents.RecomputeCompletedPayloadV1, rankingevents.RecomputeFailedPayloadV1], error) {
	return withTelemetry(s, ctx, "RecomputeDataset", attr.String("scope", "dataset"),
		func(ctx context.Context) (results.OperationResult[rankingevents.RecomputeCompletedPayloadV1, rankingevents.RecomputeFailedPayloadV1], error) {
			if !s.datasetLimiter.Allow() {
				return results.Failure[rankingevents.RecomputeCompletedPayloadV1](rankingevents.RecomputeFailedPayloadV1{
					Step:   stepOverall,
					Reason: "dataset recompute throttled, retry later",
				}), nil
			}

			if step, err := s.recomputeDatasetSnapshots(ctx); err != nil {
				return results.Failure[rankingevents.RecomputeCompletedPayloadV1](rankingevents.RecomputeFailedPayloadV1{
					Step:   step,
					Reason: err.Error(),
				}), nil
			}

			overall, err := s.repo.GetOverallRanking(ctx, nil)
			if err != nil {
				return results.OperationResult[rankingevents.RecomputeCompletedPayloadV1, rankingevents.RecomputeFailedPayloadV1]{}, err
			}
			affinity, err := s.repo.GetAffinityRanking(ctx, nil)
			if err != nil {
				return results.OperationResult[rankingevents.RecomputeCompletedPayloadV1, rankingevents.RecomputeFailedPayloadV1]{}, err
			}

			return results.Success[rankingevents.RecomputeCompletedPayloadV1, rankingevents.RecomputeFailedPayloadV1](rankingevents.RecomputeCompletedPayloadV1{
				OverallEntries:  len(overall.Entries),
				AffinityBuckets: len(affinity.Buckets),
			}), nil
		})
}

// computeRoundRanking reruns scoring for the round's actionable bets, builds
// the ordered snapshot, and replaces it. Caller holds the round lock.
func (s *RankingService) computeRoundRanking(ctx context.Context, round sharedtypes.RoundSnapshot) ([]sharedtypes.RoundRankingEntry, error) {
	bets, err := s.bets.ScoreRoundBets(ctx, round.RoundID, round.Matches)
	if err != nil {
		return nil, err
	}
	participants, err := s.participants.ListParticipants(ctx)
	if err != nil {
		return nil, err
	}

	entries := BuildRoundRanking(bets, rosterByID(participants))

	err = s.retryOnConflict(ctx, stepRoundRanking, func() error {
		return s.repo.ReplaceRoundRanking(ctx, nil, round.RoundID, entries)
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// recomputeDatasetSnapshots replaces the overall and affinity snapshots and
// refreshes the participant stats rollup under the global single-writer
// lock. Both snapshots are computed fully off to the side and swapped in a
// transaction. Returns the failing step name alongside the error.
func (s *RankingService) recomputeDatasetSnapshots(ctx context.Context) (string, error) {
	s.datasetMu.Lock()
	defer s.datasetMu.Unlock()

	bets, err := s.bets.ListActionableBets(ctx)
	if err != nil {
		return stepOverall, err
	}
	participants, err := s.participants.ListParticipants(ctx)
	if err != nil {
		return stepOverall, err
	}
	roster := rosterByID(participants)

	overall := BuildOverallRanking(bets, roster)
	err = s.retryOnConflict(ctx, stepOverall, func() error {
		return runInTx(s, ctx, func(ctx context.Context, db bun.IDB) error {
			return s.repo.ReplaceOverallRanking(ctx, db, overall)
		})
	})
	if err != nil {
		return stepOverall, err
	}

	affinity := BuildAffinityDistribution(participants)
	err = s.retryOnConflict(ctx, stepAffinity, func() error {
		return runInTx(s, ctx, func(ctx context.Context, db bun.IDB) error {
			return s.repo.ReplaceAffinityRanking(ctx, db, affinity)
		})
	})
	if err != nil {
		return stepAffinity, err
	}

	if err := s.participants.UpdateStats(ctx, BuildParticipantStats(bets)); err != nil {
		return stepStats, err
	}
	return "", nil
}

// retryOnConflict reruns a snapshot write once when storage reports a
// conflict, then surfaces it as transient.
func (s *RankingService) retryOnConflict(ctx context.Context, step string, fn func() error) error {
	err := fn()
	if errors.Is(err, rankingdb.ErrSnapshotConflict) {
		s.logger.WarnContext(ctx, "Snapshot write conflict, retrying step once",
			attr.String("step", step),
			attr.ExtractCorrelationID(ctx),
		)
		err = fn()
	}
	return err
}
