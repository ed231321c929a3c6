package rankingservice

import (
	"context"
	"errors"

	sharedtypes "github.com/palpite-club/pool-backend/app/shared/types"
)

// The recompute pipeline reads and writes through narrow ports onto the
// other modules. Adapters in the app wiring map each module's service onto
// these, translating module sentinels to the port sentinels below.

// ErrRoundNotFound is returned by RoundPort when the round does not exist.
var ErrRoundNotFound = errors.New("round not found")

// RoundPort exposes the round module to the pipeline.
type RoundPort interface {
	GetRound(ctx context.Context, roundID sharedtypes.RoundID) (sharedtypes.RoundSnapshot, error)
	MarkFinalized(ctx context.Context, roundID sharedtypes.RoundID) error
	SetChampionSummary(ctx context.Context, roundID sharedtypes.RoundID, summary []sharedtypes.ChampionSummary) error
}

// BetPort exposes the bet module: refreshing derived scores and reading
// scored snapshots.
type BetPort interface {
	// ScoreRoundBets reruns the scoring pass for every actionable bet of the
	// round against the given match slate and returns the scored snapshots.
	ScoreRoundBets(ctx context.Context, roundID sharedtypes.RoundID, matches []sharedtypes.Match) ([]sharedtypes.BetSnapshot, error)

	// ListActionableBets returns every actionable bet across all rounds,
	// ordered by creation time.
	ListActionableBets(ctx context.Context) ([]sharedtypes.BetSnapshot, error)

	// MarkChampions flips the given bets to champion status.
	MarkChampions(ctx context.Context, roundID sharedtypes.RoundID, betIDs []sharedtypes.BetID) error
}

// ChampionResolution is what the champion module reports back after an
// idempotent resolve pass.
type ChampionResolution struct {
	Summaries []sharedtypes.ChampionSummary
	BetIDs    []sharedtypes.BetID
}

// ChampionPort exposes the champion module's resolver.
type ChampionPort interface {
	// ResolveChampions upserts champion records for every rank-1 entry and
	// returns the resolved summaries. Safe to re-invoke for the same round.
	ResolveChampions(ctx context.Context, round sharedtypes.RoundSnapshot, entries []sharedtypes.RoundRankingEntry) (ChampionResolution, error)
}

// ParticipantPort exposes the roster.
type ParticipantPort interface {
	ListParticipants(ctx context.Context) ([]sharedtypes.Participant, error)
	UpdateStats(ctx context.Context, stats []sharedtypes.ParticipantStats) error
}

func rosterByID(participants []sharedtypes.Participant) map[sharedtypes.ParticipantID]sharedtypes.Participant {
	roster := make(map[sharedtypes.ParticipantID]sharedtypes.Participant, len(participants))
	for _, p := range participants {
		roster[p.ParticipantID] = p
	}
	return roster
}
