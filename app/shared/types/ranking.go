package sharedtypes

import "time"

// RoundRankingEntry is one participant's row in a round's ranking snapshot.
type RoundRankingEntry struct {
	ParticipantID ParticipantID    `json:"participant_id"`
	BetID         BetID            `json:"bet_id"`
	Nickname      string           `json:"nickname"`
	FavoriteTeam  string           `json:"favorite_team"`
	BestLine      RoundPerformance `json:"best_line"`
	Rank          int              `json:"rank"`
	BetCreatedAt  time.Time        `json:"bet_created_at"`
}

// OverallRankingEntry is one participant's row in the cumulative leaderboard.
// TotalPoints sums every line of every actionable bet, not just best lines.
type OverallRankingEntry struct {
	ParticipantID ParticipantID `json:"participant_id"`
	Nickname      string        `json:"nickname"`
	FavoriteTeam  string        `json:"favorite_team"`
	TotalPoints   int           `json:"total_points"`
	BetsCounted   int           `json:"bets_counted"`
	Rank          int           `json:"rank"`
}

// AffinityBucket is one favorite-team bucket in the supporter distribution.
type AffinityBucket struct {
	Team       string  `json:"team"`
	Supporters int     `json:"supporters"`
	Share      float64 `json:"share"`
}
