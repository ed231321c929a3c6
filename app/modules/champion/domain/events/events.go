package championevents

import (
	"time"

	sharedtypes "github.com/palpite-club/pool-backend/app/shared/types"
)

// Versioned topics for the prize fulfillment workflow. Champion records are
// created by the resolver during round finalization; these events only move
// prize status forward.
const (
	PrizeRequestedV1      = "champion.prize.requested.v1"
	PrizeRequestAppliedV1 = "champion.prize.request.applied.v1"
	PrizeRequestFailedV1  = "champion.prize.request.failed.v1"

	PrizePaidV1        = "champion.prize.paid.v1"
	PrizePaidAppliedV1 = "champion.prize.paid.applied.v1"
	PrizePaidFailedV1  = "champion.prize.paid.failed.v1"
)

// PrizeRequestedPayloadV1 is the champion's claim: delivery or payout
// details plus when they asked.
type PrizeRequestedPayloadV1 struct {
	ChampionID  sharedtypes.ChampionID `json:"champion_id"`
	Details     string                 `json:"details"`
	RequestedAt time.Time              `json:"requested_at"`
}

// PrizeRequestAppliedPayloadV1 confirms the status advance to requested.
type PrizeRequestAppliedPayloadV1 struct {
	ChampionID  sharedtypes.ChampionID  `json:"champion_id"`
	RoundID     sharedtypes.RoundID     `json:"round_id"`
	PrizeStatus sharedtypes.PrizeStatus `json:"prize_status"`
	RequestedAt time.Time               `json:"requested_at"`
}

// PrizeRequestFailedPayloadV1 reports why a claim was rejected.
type PrizeRequestFailedPayloadV1 struct {
	ChampionID sharedtypes.ChampionID `json:"champion_id"`
	Reason     string                 `json:"reason"`
}

// PrizePaidPayloadV1 is the admin's confirmation that the prize went out.
type PrizePaidPayloadV1 struct {
	ChampionID sharedtypes.ChampionID `json:"champion_id"`
	PaidAt     time.Time              `json:"paid_at"`
}

// PrizePaidAppliedPayloadV1 confirms the status advance to paid.
type PrizePaidAppliedPayloadV1 struct {
	ChampionID  sharedtypes.ChampionID  `json:"champion_id"`
	RoundID     sharedtypes.RoundID     `json:"round_id"`
	PrizeStatus sharedtypes.PrizeStatus `json:"prize_status"`
	PaidAt      time.Time               `json:"paid_at"`
}

// PrizePaidFailedPayloadV1 reports why a payout confirmation was rejected.
type PrizePaidFailedPayloadV1 struct {
	ChampionID sharedtypes.ChampionID `json:"champion_id"`
	Reason     string                 `json:"reason"`
}
