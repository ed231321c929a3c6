package championdb

import (
	"context"
	"time"

	"github.com/uptrace/bun"

	sharedtypes "github.com/palpite-club/pool-backend/app/shared/types"
)

// Repository defines the contract for champion persistence.
//
// Error semantics:
//   - ErrChampionNotFound: record does not exist
//   - ErrNoRowsAffected: guarded update found the record in another state
//   - other errors: infrastructure failures
type Repository interface {
	// UpsertScoring inserts a champion record or, when one already exists
	// for (participant, round), refreshes only the scoring fields. Prize
	// status, details, and timestamps are never touched by this path.
	UpsertScoring(ctx context.Context, db bun.IDB, champion *Champion) error

	// GetChampion retrieves one champion record.
	GetChampion(ctx context.Context, db bun.IDB, championID sharedtypes.ChampionID) (*Champion, error)

	// GetChampionsForRound returns the round's champion records.
	GetChampionsForRound(ctx context.Context, db bun.IDB, roundID sharedtypes.RoundID) ([]*Champion, error)

	// ListLatest returns the newest champion records across rounds, for the
	// public gallery.
	ListLatest(ctx context.Context, db bun.IDB, limit int) ([]*Champion, error)

	// MarkPrizeRequested advances pending → requested with the claim details.
	MarkPrizeRequested(ctx context.Context, db bun.IDB, championID sharedtypes.ChampionID, details string, requestedAt time.Time) error

	// MarkPrizePaid advances requested → paid.
	MarkPrizePaid(ctx context.Context, db bun.IDB, championID sharedtypes.ChampionID, paidAt time.Time) error
}
