package championdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	sharedtypes "github.com/palpite-club/pool-backend/app/shared/types"
)

// ChampionDBImpl is the bun-backed Repository implementation.
type ChampionDBImpl struct {
	DB *bun.DB
}

var _ Repository = (*ChampionDBImpl)(nil)

func (r *ChampionDBImpl) idb(db bun.IDB) bun.IDB {
	if db != nil {
		return db
	}
	return r.DB
}

func (r *ChampionDBImpl) UpsertScoring(ctx context.Context, db bun.IDB, champion *Champion) error {
	_, err := r.idb(db).NewInsert().
		Model(champion).
		On("CONFLICT (participant_id, round_id) DO UPDATE").
		Set("bet_id = EXCLUDED.bet_id").
		Set("nickname = EXCLUDED.nickname").
		Set("points = EXCLUDED.points").
		Set("hits = EXCLUDED.hits").
		Set("best_line = EXCLUDED.best_line").
		Set("prize_type = EXCLUDED.prize_type").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert champion for participant %s round %s: %w",
			champion.ParticipantID, champion.RoundID, err)
	}
	return nil
}

func (r *ChampionDBImpl) GetChampion(ctx context.Context, db bun.IDB, championID sharedtypes.ChampionID) (*Champion, error) {
	champion := new(Champion)
	err := r.idb(db).NewSelect().
		Model(champion).
		Where("id = ?", championID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrChampionNotFound
		}
		return nil, fmt.Errorf("failed to fetch champion %s: %w", championID, err)
	}
	return champion, nil
}

func (r *ChampionDBImpl) GetChampionsForRound(ctx context.Context, db bun.IDB, roundID sharedtypes.RoundID) ([]*Champion, error) {
	var champions []*Champion
	err := r.idb(db).NewSelect().
		Model(&champions).
		Where("round_id = ?", roundID).
		Order("points DESC", "created_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch champions for round %s: %w", roundID, err)
	}
	return champions, nil
}

func (r *ChampionDBImpl) ListLatest(ctx context.Context, db bun.IDB, limit int) ([]*Champion, error) {
	var champions []*Champion
	err := r.idb(db).NewSelect().
		Model(&champions).
		Order("created_at DESC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list latest champions: %w", err)
	}
	return champions, nil
}

func (r *ChampionDBImpl) MarkPrizeRequested(ctx context.Context, db bun.IDB, championID sharedtypes.ChampionID, details string, requestedAt time.Time) error {
	res, err := r.idb(db).NewUpdate().
		Model((*Champion)(nil)).
		Set("prize_status = ?", sharedtypes.PrizeStatusRequested).
		Set("prize_details = ?", details).
		Set("requested_at = ?", requestedAt).
		Where("id = ?", championID).
		Where("prize_status = ?", sharedtypes.PrizeStatusPending).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark prize requested for champion %s: %w", championID, err)
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return ErrNoRowsAffected
	}
	return nil
}

func (r *ChampionDBImpl) MarkPrizePaid(ctx context.Context, db bun.IDB, championID sharedtypes.ChampionID, paidAt time.Time) error {
	res, err := r.idb(db).NewUpdate().
		Model((*Champion)(nil)).
		Set("prize_status = ?", sharedtypes.PrizeStatusPaid).
		Set("paid_at = ?", paidAt).
		Where("id = ?", championID).
		Where("prize_status = ?", sharedtypes.PrizeStatusRequested).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark prize paid for champion %s: %w", championID, err)
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return ErrNoRowsAffected
	}
	return nil
}
