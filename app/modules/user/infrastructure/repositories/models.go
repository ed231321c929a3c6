package userdb

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	sharedtypes "github.com/palpite-club/pool-backend/app/shared/types"
)

// Participant is one roster member. RoundsPlayed and TotalPoints are derived
// rollups refreshed by the ranking pipeline; everything else is profile data.
type Participant struct {
	bun.BaseModel `bun:"table:participants,alias:p"`

	ID           sharedtypes.ParticipantID `bun:"id,pk,type:uuid"`
	Nickname     string                    `bun:"nickname,notnull,unique"`
	FavoriteTeam string                    `bun:"favorite_team,nullzero"`
	RoundsPlayed int                       `bun:"rounds_played,notnull,default:0"`
	TotalPoints  int                       `bun:"total_points,notnull,default:0"`
	CreatedAt    time.Time                 `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt    time.Time                 `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

var _ bun.BeforeInsertHook = (*Participant)(nil)

func (p *Participant) BeforeInsert(ctx context.Context, _ *bun.InsertQuery) error {
	if uuid.UUID(p.ID) == uuid.Nil {
		p.ID = sharedtypes.ParticipantID(uuid.New())
	}
	return nil
}

// Snapshot converts the record into the shared read-only view.
func (p *Participant) Snapshot() sharedtypes.Participant {
	return sharedtypes.Participant{
		ParticipantID: p.ID,
		Nickname:      p.Nickname,
		FavoriteTeam:  p.FavoriteTeam,
		RoundsPlayed:  p.RoundsPlayed,
		TotalPoints:   p.TotalPoints,
	}
}
