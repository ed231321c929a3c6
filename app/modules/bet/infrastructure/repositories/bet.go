package betdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	sharedtypes "github.com/palpite-club/pool-backend/app/shared/types"
)

// BetDBImpl is the bun-backed Repository implementation.
type BetDBImpl struct {
	DB *bun.DB
}

var _ Repository = (*BetDBImpl)(nil)

func (r *BetDBImpl) idb(db bun.IDB) bun.IDB {
	if db != nil {
		return db
	}
	return r.DB
}

func (r *BetDBImpl) CreateBet(ctx context.Context, db bun.IDB, bet *Bet) error {
	if _, err := r.idb(db).NewInsert().Model(bet).Exec(ctx); err != nil {
		return fmt.Errorf("failed to insert bet for participant %s round %s: %w",
			bet.ParticipantID, bet.RoundID, err)
	}
	return nil
}

func (r *BetDBImpl) GetBet(ctx context.Context, db bun.IDB, betID sharedtypes.BetID) (*Bet, error) {
	bet := new(Bet)
	err := r.idb(db).NewSelect().
		Model(bet).
		Where("id = ?", betID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBetNotFound
		}
		return nil, fmt.Errorf("failed to fetch bet %s: %w", betID, err)
	}
	return bet, nil
}

func (r *BetDBImpl) GetActionableBetsForRound(ctx context.Context, db bun.IDB, roundID sharedtypes.RoundID) ([]*Bet, error) {
	var bets []*Bet
	err := r.idb(db).NewSelect().
		Model(&bets).
		Where("round_id = ?", roundID).
		Where("status IN (?)", bun.In(sharedtypes.ActionableBetStatuses())).
		Order("created_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bets for round %s: %w", roundID, err)
	}
	return bets, nil
}

func (r *BetDBImpl) ListActionableBets(ctx context.Context, db bun.IDB) ([]*Bet, error) {
	var bets []*Bet
	err := r.idb(db).NewSelect().
		Model(&bets).
		Where("status IN (?)", bun.In(sharedtypes.ActionableBetStatuses())).
		Order("created_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch actionable bets: %w", err)
	}
	return bets, nil
}

func (r *BetDBImpl) UpdateDerived(ctx context.Context, db bun.IDB, betID sharedtypes.BetID, lines []sharedtypes.PredictionLine, performance sharedtypes.RoundPerformance) error {
	res, err := r.idb(db).NewUpdate().
		Model((*Bet)(nil)).
		Set("lines = ?", lines).
		Set("performance = ?", performance).
		Where("id = ?", betID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update derived totals for bet %s: %w", betID, err)
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return ErrNoRowsAffected
	}
	return nil
}

func (r *BetDBImpl) MarkPaid(ctx context.Context, db bun.IDB, betID sharedtypes.BetID, paidAt time.Time) error {
	res, err := r.idb(db).NewUpdate().
		Model((*Bet)(nil)).
		Set("status = ?", sharedtypes.BetStatusPaid).
		Set("paid_at = ?", paidAt).
		Where("id = ?", betID).
		Where("status = ?", sharedtypes.BetStatusActive).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark bet %s paid: %w", betID, err)
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return ErrNoRowsAffected
	}
	return nil
}

func (r *BetDBImpl) MarkChampionBets(ctx context.Context, db bun.IDB, roundID sharedtypes.RoundID, betIDs []sharedtypes.BetID) error {
	if len(betIDs) == 0 {
		return nil
	}
	_, err := r.idb(db).NewUpdate().
		Model((*Bet)(nil)).
		Set("status = ?", sharedtypes.BetStatusChampion).
		Where("round_id = ?", roundID).
		Where("id IN (?)", bun.In(betIDs)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark champion bets for round %s: %w", roundID, err)
	}
	return nil
}
