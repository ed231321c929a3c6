package sharedtypes

import "time"

// BetStatus is the lifecycle status of a bet. Only the external payment
// collaborator and the champion resolver move a bet between statuses; the
// scoring pass never does.
type BetStatus string

const (
	BetStatusActive    BetStatus = "active"
	BetStatusPaid      BetStatus = "paid"
	BetStatusCancelled BetStatus = "cancelled"
	BetStatusChampion  BetStatus = "champion"
	BetStatusGiveaway  BetStatus = "giveaway"
	BetStatusFinalized BetStatus = "finalized"
)

// ActionableBetStatuses are the statuses that participate in scoring and
// ranking. Cancelled bets are excluded everywhere.
func ActionableBetStatuses() []BetStatus {
	return []BetStatus{
		BetStatusActive,
		BetStatusPaid,
		BetStatusGiveaway,
		BetStatusFinalized,
		BetStatusChampion,
	}
}

// BetKind mirrors the round kind the bet was placed for.
type BetKind string

const (
	BetKindCash     BetKind = "cash"
	BetKindGiveaway BetKind = "giveaway"
)

// Guess is one predicted scoreline for one match. It may arrive as a composed
// "2x1" string or as two integers; both forms resolve identically. Points and
// Hit are derived by the scoring pass, never authored by the participant.
type Guess struct {
	Raw    string `json:"guess,omitempty"`
	Home   *int   `json:"home,omitempty"`
	Away   *int   `json:"away,omitempty"`
	Points int    `json:"points"`
	Hit    bool   `json:"hit"`
}

// PredictionLine is one full set of guesses, index-aligned with the round's
// matches. Points and Hits are derived totals.
type PredictionLine struct {
	Number  int     `json:"line"`
	Guesses []Guess `json:"guesses"`
	Points  int     `json:"points"`
	Hits    int     `json:"hits"`
}

// RoundPerformance is a bet's best line for the round: the quantity ranked.
type RoundPerformance struct {
	Points   int `json:"points"`
	Hits     int `json:"hits"`
	BestLine int `json:"best_line"`
}

// BetSnapshot is a scored, read-only view of a bet handed between modules.
type BetSnapshot struct {
	BetID         BetID            `json:"bet_id"`
	RoundID       RoundID          `json:"round_id"`
	ParticipantID ParticipantID    `json:"participant_id"`
	Status        BetStatus        `json:"status"`
	Lines         []PredictionLine `json:"lines"`
	Performance   RoundPerformance `json:"performance"`
	CreatedAt     time.Time        `json:"created_at"`
}
