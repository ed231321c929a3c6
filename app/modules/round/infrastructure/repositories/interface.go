package rounddb

import (
	"context"
	"time"

	"github.com/uptrace/bun"

	sharedtypes "github.com/palpite-club/pool-backend/app/shared/types"
)

// Repository defines the contract for round persistence.
//
// Error semantics:
//   - ErrRoundNotFound: record does not exist
//   - ErrDuplicateRoundNumber: unique round number violated
//   - ErrMatchOrdinalOutOfRange: ordinal outside the match slate
//   - other errors: infrastructure failures
type Repository interface {
	// CreateRound inserts a new round with its match slate.
	CreateRound(ctx context.Context, db bun.IDB, round *Round) error

	// GetRound retrieves a round with its embedded matches.
	GetRound(ctx context.Context, db bun.IDB, roundID sharedtypes.RoundID) (*Round, error)

	// UpdateMatches replaces the round's match slate wholesale.
	UpdateMatches(ctx context.Context, db bun.IDB, roundID sharedtypes.RoundID, matches []sharedtypes.Match) error

	// UpdateRoundState flips the round lifecycle state. finalizedAt is stamped
	// only when moving to finalized.
	UpdateRoundState(ctx context.Context, db bun.IDB, roundID sharedtypes.RoundID, state sharedtypes.RoundState, finalizedAt *time.Time) error

	// SetChampionSummary writes the denormalized champion summary.
	SetChampionSummary(ctx context.Context, db bun.IDB, roundID sharedtypes.RoundID, summary []sharedtypes.ChampionSummary) error
}
