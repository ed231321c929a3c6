package championdb

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	sharedtypes "github.com/palpite-club/pool-backend/app/shared/types"
)

// Champion is one participant's win in one round. Uniqueness on
// (participant_id, round_id) is what makes the resolver idempotent under
// concurrent triggers. Scoring fields are refreshed on every resolve; the
// prize workflow fields belong to fulfillment and survive recomputation.
type Champion struct {
	bun.BaseModel `bun:"table:champions,alias:ch"`

	ID            sharedtypes.ChampionID  `bun:"id,pk,type:uuid"`
	RoundID       sharedtypes.RoundID     `bun:"round_id,notnull,type:uuid"`
	ParticipantID sharedtypes.ParticipantID `bun:"participant_id,notnull,type:uuid"`
	BetID         sharedtypes.BetID       `bun:"bet_id,notnull,type:uuid"`
	Nickname      string                  `bun:"nickname,notnull"`
	Points        int                     `bun:"points,notnull"`
	Hits          int                     `bun:"hits,notnull"`
	BestLine      int                     `bun:"best_line,notnull"`
	PrizeType     sharedtypes.PrizeType   `bun:"prize_type,notnull"`
	PrizeStatus   sharedtypes.PrizeStatus `bun:"prize_status,notnull"`
	PrizeDetails  string                  `bun:"prize_details,nullzero"`
	RequestedAt   *time.Time              `bun:"requested_at,nullzero"`
	PaidAt        *time.Time              `bun:"paid_at,nullzero"`
	CreatedAt     time.Time               `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

var _ bun.BeforeInsertHook = (*Champion)(nil)

func (c *Champion) BeforeInsert(ctx context.Context, _ *bun.InsertQuery) error {
	if uuid.UUID(c.ID) == uuid.Nil {
		c.ID = sharedtypes.ChampionID(uuid.New())
	}
	if c.PrizeStatus == "" {
		c.PrizeStatus = sharedtypes.PrizeStatusPending
	}
	return nil
}

// Summary converts the record into the denormalized form stored on rounds.
func (c *Champion) Summary() sharedtypes.ChampionSummary {
	return sharedtypes.ChampionSummary{
		ParticipantID: c.ParticipantID,
		BetID:         c.BetID,
		Nickname:      c.Nickname,
		Points:        c.Points,
		Hits:          c.Hits,
		PrizeType:     c.PrizeType,
	}
}
