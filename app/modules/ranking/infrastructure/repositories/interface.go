package rankingdb

import (
	"context"

	"github.com/uptrace/bun"

	sharedtypes "github.com/palpite-club/pool-backend/app/shared/types"
)

// Repository persists the three derived snapshot types. All writes are
// full replacements; snapshots are never patched in place.
//
// Error semantics:
//   - ErrSnapshotNotFound: no snapshot exists for the key
//   - ErrSnapshotConflict: concurrent replace collided, retryable once
//   - other errors: infrastructure failures
type Repository interface {
	// ReplaceRoundRanking overwrites the round's ranking snapshot wholesale.
	ReplaceRoundRanking(ctx context.Context, db bun.IDB, roundID sharedtypes.RoundID, entries []sharedtypes.RoundRankingEntry) error

	// GetRoundRanking returns the round's current ranking snapshot.
	GetRoundRanking(ctx context.Context, db bun.IDB, roundID sharedtypes.RoundID) (*RoundRankingSnapshot, error)

	// ReplaceOverallRanking swaps in a new active overall snapshot.
	ReplaceOverallRanking(ctx context.Context, db bun.IDB, entries []sharedtypes.OverallRankingEntry) error

	// GetOverallRanking returns the active overall snapshot.
	GetOverallRanking(ctx context.Context, db bun.IDB) (*OverallRankingSnapshot, error)

	// ReplaceAffinityRanking swaps in a new active affinity snapshot.
	ReplaceAffinityRanking(ctx context.Context, db bun.IDB, buckets []sharedtypes.AffinityBucket) error

	// GetAffinityRanking returns the active affinity snapshot.
	GetAffinityRanking(ctx context.Context, db bun.IDB) (*AffinityRankingSnapshot, error)
}
