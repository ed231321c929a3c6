package userdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/uptrace/bun"

	sharedtypes "github.com/palpite-club/pool-backend/app/shared/types"
)

// UserDBImpl is the bun-backed Repository implementation.
type UserDBImpl struct {
	DB *bun.DB
}

var _ Repository = (*UserDBImpl)(nil)

func (r *UserDBImpl) idb(db bun.IDB) bun.IDB {
	if db != nil {
		return db
	}
	return r.DB
}

func (r *UserDBImpl) CreateParticipant(ctx context.Context, db bun.IDB, participant *Participant) error {
	if _, err := r.idb(db).NewInsert().Model(participant).Exec(ctx); err != nil {
		if isUniqueViolation(err) {
			return ErrNicknameTaken
		}
		return fmt.Errorf("failed to insert participant %q: %w", participant.Nickname, err)
	}
	return nil
}

func (r *UserDBImpl) GetParticipant(ctx context.Context, db bun.IDB, participantID sharedtypes.ParticipantID) (*Participant, error) {
	participant := new(Participant)
	err := r.idb(db).NewSelect().
		Model(participant).
		Where("id = ?", participantID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrParticipantNotFound
		}
		return nil, fmt.Errorf("failed to fetch participant %s: %w", participantID, err)
	}
	return participant, nil
}

func (r *UserDBImpl) ListParticipants(ctx context.Context, db bun.IDB) ([]*Participant, error) {
	var participants []*Participant
	err := r.idb(db).NewSelect().
		Model(&participants).
		Order("nickname ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch participants: %w", err)
	}
	return participants, nil
}

func (r *UserDBImpl) UpdateStats(ctx context.Context, db bun.IDB, stats []sharedtypes.ParticipantStats) error {
	if len(stats) == 0 {
		return nil
	}
	for _, s := range stats {
		_, err := r.idb(db).NewUpdate().
			Model((*Participant)(nil)).
			Set("rounds_played = ?", s.RoundsPlayed).
			Set("total_points = ?", s.TotalPoints).
			Set("updated_at = CURRENT_TIMESTAMP").
			Where("id = ?", s.ParticipantID).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to update stats for participant %s: %w", s.ParticipantID, err)
		}
	}
	return nil
}

// isUniqueViolation matches postgres SQLSTATE 23505 from the driver error.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "23505")
}
