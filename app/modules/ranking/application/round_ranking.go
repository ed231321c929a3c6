package rankingservice

import (
	"sort"

	sharedtypes "github.com/palpite-club/pool-backend/app/shared/types"
)

// BuildRoundRanking orders scored bets into a round's ranking snapshot:
// points descending, earlier bet wins ties, competition ranks assigned over
// the sorted order. Pure; the caller persists the result.
func BuildRoundRanking(bets []sharedtypes.BetSnapshot, roster map[sharedtypes.ParticipantID]sharedtypes.Participant) []sharedtypes.RoundRankingEntry {
	sorted := make([]sharedtypes.BetSnapshot, len(bets))
	copy(sorted, bets)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Performance.Points != sorted[j].Performance.Points {
			return sorted[i].Performance.Points > sorted[j].Performance.Points
		}
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})

	entries := make([]sharedtypes.RoundRankingEntry, len(sorted))
	points := make([]int, len(sorted))
	for i, bet := range sorted {
		participant := roster[bet.ParticipantID]
		entries[i] = sharedtypes.RoundRankingEntry{
			ParticipantID: bet.ParticipantID,
			BetID:         bet.BetID,
			Nickname:      participant.Nickname,
			FavoriteTeam:  participant.FavoriteTeam,
			BestLine:      bet.Performance,
			BetCreatedAt:  bet.CreatedAt,
		}
		points[i] = bet.Performance.Points
	}

	for i, rank := range CompetitionRanks(points) {
		entries[i].Rank = rank
	}
	return entries
}
