package rankingdb

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	sharedtypes "github.com/palpite-club/pool-backend/app/shared/types"
)

// RoundRankingSnapshot is one round's full ordered ranking, stored as a
// single jsonb document keyed by round id. Recomputation replaces the row
// wholesale.
type RoundRankingSnapshot struct {
	bun.BaseModel `bun:"table:round_rankings,alias:rr"`

	ID         uuid.UUID                       `bun:"id,pk,type:uuid"`
	RoundID    sharedtypes.RoundID             `bun:"round_id,notnull,type:uuid"`
	Entries    []sharedtypes.RoundRankingEntry `bun:"entries,type:jsonb,notnull"`
	Version    int64                           `bun:"version,notnull"`
	ComputedAt time.Time                       `bun:"computed_at,nullzero,notnull,default:current_timestamp"`
}

var _ bun.BeforeInsertHook = (*RoundRankingSnapshot)(nil)

func (s *RoundRankingSnapshot) BeforeInsert(ctx context.Context, _ *bun.InsertQuery) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// OverallRankingSnapshot is the cumulative leaderboard. Replacement inserts
// a fresh active row and deactivates the prior one in the same transaction,
// so readers never see an interleaved partial snapshot.
type OverallRankingSnapshot struct {
	bun.BaseModel `bun:"table:overall_rankings,alias:ovr"`

	ID         uuid.UUID                         `bun:"id,pk,type:uuid"`
	Entries    []sharedtypes.OverallRankingEntry `bun:"entries,type:jsonb,notnull"`
	IsActive   bool                              `bun:"is_active,notnull"`
	ComputedAt time.Time                         `bun:"computed_at,nullzero,notnull,default:current_timestamp"`
}

var _ bun.BeforeInsertHook = (*OverallRankingSnapshot)(nil)

func (s *OverallRankingSnapshot) BeforeInsert(ctx context.Context, _ *bun.InsertQuery) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// AffinityRankingSnapshot is the favorite-team distribution, replaced with
// the same activate/deactivate discipline as the overall snapshot.
type AffinityRankingSnapshot struct {
	bun.BaseModel `bun:"table:affinity_rankings,alias:afr"`

	ID         uuid.UUID                    `bun:"id,pk,type:uuid"`
	Buckets    []sharedtypes.AffinityBucket `bun:"buckets,type:jsonb,notnull"`
	IsActive   bool                         `bun:"is_active,notnull"`
	ComputedAt time.Time                    `bun:"computed_at,nullzero,notnull,default:current_timestamp"`
}

var _ bun.BeforeInsertHook = (*AffinityRankingSnapshot)(nil)

func (s *AffinityRankingSnapshot) BeforeInsert(ctx context.Context, _ *bun.InsertQuery) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
