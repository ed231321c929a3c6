package championservice

import (
	"context"
	"fmt"

	championdb "github.com/palpite-club/pool-backend/app/modules/champion/infrastructure/repositories"
	"github.com/palpite-club/pool-backend/app/shared/attr"
	sharedtypes "github.com/palpite-club/pool-backend/app/shared/types"
)

// ResolveChampions upserts champion records for every rank-1 entry of a
// finalized round's ranking. All tied rank-1 bets are co-champions. The
// upsert only refreshes scoring fields, so prize progress made by the
// fulfillment workflow survives recomputation, and the (participant, round)
// uniqueness keeps duplicate triggers from creating second records.
func (s *ChampionService) ResolveChampions(ctx context.Context, round sharedtypes.RoundSnapshot, entries []sharedtypes.RoundRankingEntry) ([]sharedtypes.ChampionSummary, []sharedtypes.BetID, error) {
	prizeType := sharedtypes.PrizeTypeFor(round.Kind)

	var summaries []sharedtypes.ChampionSummary
	var betIDs []sharedtypes.BetID

	for _, entry := range entries {
		if entry.Rank != 1 {
			continue
		}

		champion := &championdb.Champion{
			RoundID:       round.RoundID,
			ParticipantID: entry.ParticipantID,
			BetID:         entry.BetID,
			Nickname:      entry.Nickname,
			Points:        entry.BestLine.Points,
			Hits:          entry.BestLine.Hits,
			BestLine:      entry.BestLine.BestLine,
			PrizeType:     prizeType,
			PrizeStatus:   sharedtypes.PrizeStatusPending,
		}
		if err := s.repo.UpsertScoring(ctx, nil, champion); err != nil {
			return nil, nil, fmt.Errorf("failed to record champion for round %s: %w", round.RoundID, err)
		}

		summaries = append(summaries, champion.Summary())
		betIDs = append(betIDs, entry.BetID)
	}

	s.logger.InfoContext(ctx, "Champions resolved",
		attr.RoundID("round_id", round.RoundID),
		attr.Int("co_champions", len(summaries)),
		attr.ExtractCorrelationID(ctx),
	)
	return summaries, betIDs, nil
}
