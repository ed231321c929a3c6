package rankingservice

import (
	"math"
	"sort"
	"strings"

	sharedtypes "github.com/palpite-club/pool-backend/app/shared/types"
)

// NoTeamBucket collects participants without a declared favorite team.
const NoTeamBucket = "Sem time"

// BuildAffinityDistribution tallies the roster by favorite-team label.
// Labels are trimmed; a blank label lands in the explicit no-team bucket.
// Share is each bucket's percentage of the roster, one decimal place.
func BuildAffinityDistribution(participants []sharedtypes.Participant) []sharedtypes.AffinityBucket {
	counts := map[string]int{}
	var order []string

	for _, p := range participants {
		team := strings.TrimSpace(p.FavoriteTeam)
		if team == "" {
			team = NoTeamBucket
		}
		if _, ok := counts[team]; !ok {
			order = append(order, team)
		}
		counts[team]++
	}

	total := len(participants)
	buckets := make([]sharedtypes.AffinityBucket, 0, len(order))
	for _, team := range order {
		count := counts[team]
		share := 0.0
		if total > 0 {
			share = math.Round(float64(count)/float64(total)*1000) / 10
		}
		buckets = append(buckets, sharedtypes.AffinityBucket{
			Team:       team,
			Supporters: count,
			Share:      share,
		})
	}

	sort.SliceStable(buckets, func(i, j int) bool {
		return buckets[i].Supporters > buckets[j].Supporters
	})
	return buckets
}
