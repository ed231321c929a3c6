package sharedtypes

// Participant is the roster view of one player: identity, display fields,
// and the derived stats rollup.
type Participant struct {
	ParticipantID ParticipantID `json:"participant_id"`
	Nickname      string        `json:"nickname"`
	FavoriteTeam  string        `json:"favorite_team"`
	RoundsPlayed  int           `json:"rounds_played"`
	TotalPoints   int           `json:"total_points"`
}

// ParticipantStats is the derived rollup written back after a recompute.
type ParticipantStats struct {
	ParticipantID ParticipantID `json:"participant_id"`
	RoundsPlayed  int           `json:"rounds_played"`
	TotalPoints   int           `json:"total_points"`
}
