package rankingservice

import (
	"sort"

	sharedtypes "github.com/palpite-club/pool-backend/app/shared/types"
)

// BuildOverallRanking sums every line's points of every actionable bet per
// participant, across all rounds. This deliberately counts all lines, not
// each bet's best line, so the cumulative standings reward volume. Ranks are
// strictly sequential: among equal totals, first-accumulated keeps the lower
// rank (bets arrive ordered by creation time).
func BuildOverallRanking(bets []sharedtypes.BetSnapshot, roster map[sharedtypes.ParticipantID]sharedtypes.Participant) []sharedtypes.OverallRankingEntry {
	totals := map[sharedtypes.ParticipantID]*sharedtypes.OverallRankingEntry{}
	var order []sharedtypes.ParticipantID

	for _, bet := range bets {
		entry, ok := totals[bet.ParticipantID]
		if !ok {
			participant := roster[bet.ParticipantID]
			entry = &sharedtypes.OverallRankingEntry{
				ParticipantID: bet.ParticipantID,
				Nickname:      participant.Nickname,
				FavoriteTeam:  participant.FavoriteTeam,
			}
			totals[bet.ParticipantID] = entry
			order = append(order, bet.ParticipantID)
		}
		for _, line := range bet.Lines {
			entry.TotalPoints += line.Points
		}
		entry.BetsCounted++
	}

	entries := make([]sharedtypes.OverallRankingEntry, 0, len(order))
	for _, id := range order {
		entries = append(entries, *totals[id])
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].TotalPoints > entries[j].TotalPoints
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}

// BuildParticipantStats derives the per-participant rollup from the same
// actionable bet set: rounds played (distinct rounds with a bet) and the
// all-lines cumulative total.
func BuildParticipantStats(bets []sharedtypes.BetSnapshot) []sharedtypes.ParticipantStats {
	type acc struct {
		rounds map[sharedtypes.RoundID]struct{}
		points int
	}
	byParticipant := map[sharedtypes.ParticipantID]*acc{}
	var order []sharedtypes.ParticipantID

	for _, bet := range bets {
		a, ok := byParticipant[bet.ParticipantID]
		if !ok {
			a = &acc{rounds: map[sharedtypes.RoundID]struct{}{}}
			byParticipant[bet.ParticipantID] = a
			order = append(order, bet.ParticipantID)
		}
		a.rounds[bet.RoundID] = struct{}{}
		for _, line := range bet.Lines {
			a.points += line.Points
		}
	}

	stats := make([]sharedtypes.ParticipantStats, 0, len(order))
	for _, id := range order {
		a := byParticipant[id]
		stats = append(stats, sharedtypes.ParticipantStats{
			ParticipantID: id,
			RoundsPlayed:  len(a.rounds),
			TotalPoints:   a.points,
		})
	}
	return stats
}
