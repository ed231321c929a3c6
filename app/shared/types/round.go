package sharedtypes

import "time"

// RoundKind determines what kind of prize a round pays out.
type RoundKind string

const (
	RoundKindCash     RoundKind = "cash"
	RoundKindGiveaway RoundKind = "giveaway"
)

// RoundState is the lifecycle state of a round.
type RoundState string

const (
	RoundStateActive    RoundState = "active"
	RoundStateFinalized RoundState = "finalized"
)

// Match is a single fixture inside a round. Actual scores stay nil until an
// admin reports them; a match contributes to scoring only when both are set.
type Match struct {
	HomeTeam  string    `json:"home_team"`
	AwayTeam  string    `json:"away_team"`
	KickoffAt time.Time `json:"kickoff_at"`
	Venue     string    `json:"venue,omitempty"`
	HomeScore *int      `json:"home_score"`
	AwayScore *int      `json:"away_score"`
	Finalized bool      `json:"finalized"`
	Ordinal   int       `json:"ordinal"`
}

// Playable reports whether the match has both actual scores reported.
func (m Match) Playable() bool {
	return m.HomeScore != nil && m.AwayScore != nil
}

// ChampionSummary is the denormalized champion info stored on the round for
// fast reads.
type ChampionSummary struct {
	ParticipantID ParticipantID `json:"participant_id"`
	BetID         BetID         `json:"bet_id"`
	Nickname      string        `json:"nickname"`
	Points        int           `json:"points"`
	Hits          int           `json:"hits"`
	PrizeType     PrizeType     `json:"prize_type"`
}

// RoundSnapshot is a read-only view of a round handed between modules.
type RoundSnapshot struct {
	RoundID         RoundID           `json:"round_id"`
	Number          int               `json:"number"`
	Name            string            `json:"name"`
	Kind            RoundKind         `json:"kind"`
	State           RoundState        `json:"state"`
	Matches         []Match           `json:"matches"`
	BetsCloseAt     time.Time         `json:"bets_close_at"`
	ChampionSummary []ChampionSummary `json:"champion_summary,omitempty"`
}

// AllMatchesFinalized reports whether the round is eligible for finalization.
func (r RoundSnapshot) AllMatchesFinalized() bool {
	for _, m := range r.Matches {
		if !m.Finalized {
			return false
		}
	}
	return len(r.Matches) > 0
}

// PrizeTypeFor maps a round kind to the prize type its champions receive.
func PrizeTypeFor(kind RoundKind) PrizeType {
	if kind == RoundKindGiveaway {
		return PrizeTypeGiveaway
	}
	return PrizeTypeCash
}
