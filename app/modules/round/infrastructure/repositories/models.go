package rounddb

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	sharedtypes "github.com/palpite-club/pool-backend/app/shared/types"
)

// Round is one contest period. The match slate lives as an ordered jsonb
// document on the row; matches share the round's lifetime.
type Round struct {
	bun.BaseModel `bun:"table:rounds,alias:r"`

	ID              sharedtypes.RoundID           `bun:"id,pk,type:uuid"`
	Number          int                           `bun:"number,notnull"`
	Name            string                        `bun:"name,notnull"`
	Kind            sharedtypes.RoundKind         `bun:"kind,notnull"`
	State           sharedtypes.RoundState        `bun:"state,notnull"`
	Matches         []sharedtypes.Match           `bun:"matches,type:jsonb,notnull"`
	BetsCloseAt     time.Time                     `bun:"bets_close_at,notnull"`
	ChampionSummary []sharedtypes.ChampionSummary `bun:"champion_summary,type:jsonb"`
	CreatedAt       time.Time                     `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	FinalizedAt     *time.Time                    `bun:"finalized_at,nullzero"`
}

var _ bun.BeforeInsertHook = (*Round)(nil)

func (r *Round) BeforeInsert(ctx context.Context, _ *bun.InsertQuery) error {
	if uuid.UUID(r.ID) == uuid.Nil {
		r.ID = sharedtypes.RoundID(uuid.New())
	}
	return nil
}

// AllMatchesFinalized reports whether the round is eligible for finalization.
func (r *Round) AllMatchesFinalized() bool {
	for _, m := range r.Matches {
		if !m.Finalized {
			return false
		}
	}
	return len(r.Matches) > 0
}
