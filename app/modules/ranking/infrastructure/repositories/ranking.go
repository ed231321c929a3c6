package rankingdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/uptrace/bun"

	sharedtypes "github.com/palpite-club/pool-backend/app/shared/types"
)

// RankingDBImpl is the bun-backed Repository implementation.
type RankingDBImpl struct {
	DB *bun.DB
}

var _ Repository = (*RankingDBImpl)(nil)

func (r *RankingDBImpl) idb(db bun.IDB) bun.IDB {
	if db != nil {
		return db
	}
	return r.DB
}

// ReplaceRoundRanking upserts on round_id so a round always has exactly one
// snapshot row. The version bump detects racing writers at the storage
// level, backing the keyed in-process lock.
func (r *RankingDBImpl) ReplaceRoundRanking(ctx context.Context, db bun.IDB, roundID sharedtypes.RoundID, entries []sharedtypes.RoundRankingEntry) error {
	snapshot := &RoundRankingSnapshot{
		RoundID:    roundID,
		Entries:    entries,
		Version:    1,
		ComputedAt: time.Now().UTC(),
	}

	_, err := r.idb(db).NewInsert().
		Model(snapshot).
		On("CONFLICT (round_id) DO UPDATE").
		Set("entries = EXCLUDED.entries").
		Set("version = rr.version + 1").
		Set("computed_at = EXCLUDED.computed_at").
		Exec(ctx)
	if err != nil {
		if isSerializationFailure(err) {
			return ErrSnapshotConflict
		}
		return fmt.Errorf("failed to replace round ranking for round %s: %w", roundID, err)
	}
	return nil
}

func (r *RankingDBImpl) GetRoundRanking(ctx context.Context, db bun.IDB, roundID sharedtypes.RoundID) (*RoundRankingSnapshot, error) {
	snapshot := new(RoundRankingSnapshot)
	err := r.idb(db).NewSelect().
		Model(snapshot).
		Where("round_id = ?", roundID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("failed to fetch round ranking for round %s: %w", roundID, err)
	}
	return snapshot, nil
}

// ReplaceOverallRanking deactivates the prior snapshot and inserts the new
// one as active. Callers run it inside a transaction so readers flip from
// old to new atomically.
func (r *RankingDBImpl) ReplaceOverallRanking(ctx context.Context, db bun.IDB, entries []sharedtypes.OverallRankingEntry) error {
	idb := r.idb(db)

	if _, err := idb.NewUpdate().
		Model((*OverallRankingSnapshot)(nil)).
		Set("is_active = FALSE").
		Where("is_active = TRUE").
		Exec(ctx); err != nil {
		if isSerializationFailure(err) {
			return ErrSnapshotConflict
		}
		return fmt.Errorf("failed to deactivate overall ranking: %w", err)
	}

	snapshot := &OverallRankingSnapshot{
		Entries:    entries,
		IsActive:   true,
		ComputedAt: time.Now().UTC(),
	}
	if _, err := idb.NewInsert().Model(snapshot).Exec(ctx); err != nil {
		if isSerializationFailure(err) {
			return ErrSnapshotConflict
		}
		return fmt.Errorf("failed to insert overall ranking: %w", err)
	}
	return nil
}

func (r *RankingDBImpl) GetOverallRanking(ctx context.Context, db bun.IDB) (*OverallRankingSnapshot, error) {
	snapshot := new(OverallRankingSnapshot)
	err := r.idb(db).NewSelect().
		Model(snapshot).
		Where("is_active = TRUE").
		Order("computed_at DESC").
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("failed to fetch overall ranking: %w", err)
	}
	return snapshot, nil
}

func (r *RankingDBImpl) ReplaceAffinityRanking(ctx context.Context, db bun.IDB, buckets []sharedtypes.AffinityBucket) error {
	idb := r.idb(db)

	if _, err := idb.NewUpdate().
		Model((*AffinityRankingSnapshot)(nil)).
		Set("is_active = FALSE").
		Where("is_active = TRUE").
		Exec(ctx); err != nil {
		if isSerializationFailure(err) {
			return ErrSnapshotConflict
		}
		return fmt.Errorf("failed to deactivate affinity ranking: %w", err)
	}

	snapshot := &AffinityRankingSnapshot{
		Buckets:    buckets,
		IsActive:   true,
		ComputedAt: time.Now().UTC(),
	}
	if _, err := idb.NewInsert().Model(snapshot).Exec(ctx); err != nil {
		if isSerializationFailure(err) {
			return ErrSnapshotConflict
		}
		return fmt.Errorf("failed to insert affinity ranking: %w", err)
	}
	return nil
}

func (r *RankingDBImpl) GetAffinityRanking(ctx context.Context, db bun.IDB) (*AffinityRankingSnapshot, error) {
	snapshot := new(AffinityRankingSnapshot)
	err := r.idb(db).NewSelect().
		Model(snapshot).
		Where("is_active = TRUE").
		Order("computed_at DESC").
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("failed to fetch affinity ranking: %w", err)
	}
	return snapshot, nil
}

// isSerializationFailure matches postgres serialization and deadlock SQLSTATEs
// (40001, 40P01) surfaced through the driver's error text.
func isSerializationFailure(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "40001") || strings.Contains(msg, "40P01")
}
