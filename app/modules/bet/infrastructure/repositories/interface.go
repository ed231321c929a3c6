package betdb

import (
	"context"
	"time"

	"github.com/uptrace/bun"

	sharedtypes "github.com/palpite-club/pool-backend/app/shared/types"
)

// Repository defines the contract for bet persistence. Methods accept a
// bun.IDB so callers can pass a transaction; nil falls back to the pooled DB.
//
// Error semantics:
//   - ErrBetNotFound: record does not exist
//   - ErrNoRowsAffected: UPDATE matched no rows
//   - other errors: infrastructure failures
type Repository interface {
	// CreateBet inserts a new bet. The (participant, round) pair is unique.
	CreateBet(ctx context.Context, db bun.IDB, bet *Bet) error

	// GetBet retrieves a bet by id.
	GetBet(ctx context.Context, db bun.IDB, betID sharedtypes.BetID) (*Bet, error)

	// GetActionableBetsForRound loads the round's bets with an actionable
	// status, ordered by creation time ascending (the ranking tie-break key).
	GetActionableBetsForRound(ctx context.Context, db bun.IDB, roundID sharedtypes.RoundID) ([]*Bet, error)

	// ListActionableBets loads every actionable bet across all rounds, for
	// the cumulative leaderboard pass.
	ListActionableBets(ctx context.Context, db bun.IDB) ([]*Bet, error)

	// UpdateDerived persists the scored lines and round performance for a bet.
	// Never touches status.
	UpdateDerived(ctx context.Context, db bun.IDB, betID sharedtypes.BetID, lines []sharedtypes.PredictionLine, performance sharedtypes.RoundPerformance) error

	// MarkPaid moves an active bet to paid and stamps the payment time.
	MarkPaid(ctx context.Context, db bun.IDB, betID sharedtypes.BetID, paidAt time.Time) error

	// MarkChampionBets sets status=champion on the given bets of a round.
	MarkChampionBets(ctx context.Context, db bun.IDB, roundID sharedtypes.RoundID, betIDs []sharedtypes.BetID) error
}
