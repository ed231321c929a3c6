package betdb

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	sharedtypes "github.com/palpite-club/pool-backend/app/shared/types"
)

// Bet is one participant's entry for a round. Prediction lines and the derived
// round performance live as jsonb documents on the row; the (participant,
// round) pair is unique.
type Bet struct {
	bun.BaseModel `bun:"table:bets,alias:b"`

	ID            sharedtypes.BetID             `bun:"id,pk,type:uuid"`
	RoundID       sharedtypes.RoundID           `bun:"round_id,type:uuid,notnull"`
	ParticipantID sharedtypes.ParticipantID     `bun:"participant_id,type:uuid,notnull"`
	TicketNumber  int64                         `bun:"ticket_number,notnull"`
	AmountCents   int64                         `bun:"amount_cents,notnull"`
	Kind          sharedtypes.BetKind           `bun:"kind,notnull"`
	Status        sharedtypes.BetStatus         `bun:"status,notnull"`
	Lines         []sharedtypes.PredictionLine  `bun:"lines,type:jsonb,notnull"`
	Performance   *sharedtypes.RoundPerformance `bun:"performance,type:jsonb"`
	PaidAt        *time.Time                    `bun:"paid_at,nullzero"`
	CreatedAt     time.Time                     `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

var _ bun.BeforeInsertHook = (*Bet)(nil)

func (b *Bet) BeforeInsert(ctx context.Context, _ *bun.InsertQuery) error {
	if uuid.UUID(b.ID) == uuid.Nil {
		b.ID = sharedtypes.BetID(uuid.New())
	}
	return nil
}

// Snapshot converts the row into the cross-module read view.
func (b *Bet) Snapshot() sharedtypes.BetSnapshot {
	var perf sharedtypes.RoundPerformance
	if b.Performance != nil {
		perf = *b.Performance
	}
	return sharedtypes.BetSnapshot{
		BetID:         b.ID,
		RoundID:       b.RoundID,
		ParticipantID: b.ParticipantID,
		Status:        b.Status,
		Lines:         b.Lines,
		Performance:   perf,
		CreatedAt:     b.CreatedAt,
	}
}
