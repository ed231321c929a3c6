package roundevents

import (
	"time"

	sharedtypes "github.com/palpite-club/pool-backend/app/shared/types"
)

// Versioned topics consumed and produced by the round module. Finalization is
// requested here but executed by the ranking module's recompute pipeline.
const (
	CreateRoundRequestedV1 = "round.create.requested.v1"
	RoundCreatedV1         = "round.created.v1"
	RoundCreationFailedV1  = "round.creation.failed.v1"

	MatchScoreUpdateRequestedV1 = "round.match.score.update.requested.v1"
	MatchScoreUpdatedV1         = "round.match.score.updated.v1"
	MatchScoreUpdateFailedV1    = "round.match.score.update.failed.v1"

	FinalizeRequestedV1 = "round.finalize.requested.v1"
	RoundFinalizedV1    = "round.finalized.v1"
	FinalizeFailedV1    = "round.finalize.failed.v1"

	BettingClosedV1 = "round.betting.closed.v1"
)

// MatchInput is one fixture of a round-creation request. Kickoff accepts
// RFC3339 or natural language ("next saturday 16:00").
type MatchInput struct {
	HomeTeam string `json:"home_team"`
	AwayTeam string `json:"away_team"`
	Kickoff  string `json:"kickoff"`
	Venue    string `json:"venue,omitempty"`
}

// CreateRoundRequestedPayloadV1 asks for a new round with its match slate.
type CreateRoundRequestedPayloadV1 struct {
	Number      int                   `json:"number"`
	Name        string                `json:"name"`
	Kind        sharedtypes.RoundKind `json:"kind"`
	BetsCloseAt time.Time             `json:"bets_close_at"`
	Matches     []MatchInput          `json:"matches"`
}

// RoundCreatedPayloadV1 announces a newly created round.
type RoundCreatedPayloadV1 struct {
	RoundID     sharedtypes.RoundID `json:"round_id"`
	Number      int                 `json:"number"`
	Name        string              `json:"name"`
	MatchCount  int                 `json:"match_count"`
	BetsCloseAt time.Time           `json:"bets_close_at"`
}

// RoundCreationFailedPayloadV1 reports why a round could not be created.
type RoundCreationFailedPayloadV1 struct {
	Number int    `json:"number"`
	Reason string `json:"reason"`
}

// MatchScoreUpdateRequestedPayloadV1 edits one match's reported score.
type MatchScoreUpdateRequestedPayloadV1 struct {
	RoundID      sharedtypes.RoundID `json:"round_id"`
	MatchOrdinal int                 `json:"match_ordinal"`
	HomeScore    int                 `json:"home_score"`
	AwayScore    int                 `json:"away_score"`
	Finalized    bool                `json:"finalized"`
}

// MatchScoreUpdatedPayloadV1 confirms a match score edit. The ranking module
// consumes it to run a partial recompute of the round.
type MatchScoreUpdatedPayloadV1 struct {
	RoundID      sharedtypes.RoundID `json:"round_id"`
	MatchOrdinal int                 `json:"match_ordinal"`
	HomeScore    int                 `json:"home_score"`
	AwayScore    int                 `json:"away_score"`
	Finalized    bool                `json:"finalized"`
}

// MatchScoreUpdateFailedPayloadV1 reports why a match edit was rejected.
type MatchScoreUpdateFailedPayloadV1 struct {
	RoundID      sharedtypes.RoundID `json:"round_id"`
	MatchOrdinal int                 `json:"match_ordinal"`
	Reason       string              `json:"reason"`
}

// FinalizeRequestedPayloadV1 asks for the full finalize pipeline on a round.
type FinalizeRequestedPayloadV1 struct {
	RoundID sharedtypes.RoundID `json:"round_id"`
}

// RoundFinalizedPayloadV1 announces a finalized round and its champions.
type RoundFinalizedPayloadV1 struct {
	RoundID   sharedtypes.RoundID           `json:"round_id"`
	Champions []sharedtypes.ChampionSummary `json:"champions"`
}

// FinalizeFailedPayloadV1 reports which pipeline step failed so the caller
// can retry the whole trigger.
type FinalizeFailedPayloadV1 struct {
	RoundID sharedtypes.RoundID `json:"round_id"`
	Step    string              `json:"step"`
	Reason  string              `json:"reason"`
}

// BettingClosedPayloadV1 is published by the deadline queue when a round's
// betting window closes.
type BettingClosedPayloadV1 struct {
	RoundID  sharedtypes.RoundID `json:"round_id"`
	ClosedAt time.Time           `json:"closed_at"`
}
