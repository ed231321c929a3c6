package rounddb

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

// RoundDBImpl is the bun-backed Repository implementation.
type RoundDBImpl struct {
	DB *bun.DB
}

var _ Repository = (*RoundDBImpl)(nil)

func (r *RoundDBImpl) idb(db bun.IDB) bun.IDB {
	if db != nil {
		return db
	}
	return r.DB
}

func (r *RoundDBImpl) CreateRound(ctx context.Context, db bun.IDB, round *Round) error {
	if _, err := r.idb(db).NewInsert().Model(round).Exec(ctx); err != nil {
		// Unique violation on the round number surfaces as a sentinel so the
		// service can report it as a business failure.
		if strings.Contains(err.Error(), "rounds_number_key") {
			return ErrDuplicateRoundNumber
		}
		return fmt.Errorf("failed to insert round %d: %w", round.Number, err)
	}
	return nil
}

func (r *RoundDBImpl) GetRound(ctx context.Context, db bun.IDB, roundID sharedtypes.RoundID) (*Round, error) {
	round := new(Round)
	err := r.idb(db).NewSelect().
		Model(round).
		Where("id = ?", roundID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRoundNotFound
		}
		return nil, fmt.Errorf("failed to fetch round %s: %w", roundID, err)
	}
	return round, nil
}

func (r *RoundDBImpl) UpdateMatches(ctx context.Context, db bun.IDB, roundID sharedtypes.RoundID, matches []sharedtypes.Match) error {
	res, err := r.idb(db).NewUpdate().
		Model((*Round)(nil)).
		Set("matches = ?", matches).
		Where("id = ?", roundID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update matches for round %s: %w", roundID, err)
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return ErrRoundNotFound
	}
	return nil
}

func (r *RoundDBImpl) UpdateRoundState(ctx context.Context, db bun.IDB, roundID sharedtypes.RoundID, state sharedtypes.RoundState, finalizedAt *time.Time) error {
	res, err := r.idb(db).NewUpdate().
		Model((*Round)(nil)).
		Set("state = ?", state).
		Set("finalized_at = ?", finalizedAt).
		Where("id = ?", roundID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update state for round %s: %w", roundID, err)
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return ErrRoundNotFound
	}
	return nil
}

func (r *RoundDBImpl) SetChampionSummary(ctx context.Context, db bun.IDB, roundID sharedtypes.RoundID, summary []sharedtypes.ChampionSummary) error {
	res, err := r.idb(db).NewUpdate().
		Model((*Round)(nil)).
		Set("champion_summary = ?", summary).
		Where("id = ?", roundID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to set champion summary for round %s: %w", roundID, err)
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return ErrRoundNotFound
	}
	return nil
}
