package roundqueue

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/riverqueue/river"

	"github.com/palpite-club/pool-backend/app/eventbus"
	roundevents "github.com/palpite-club/pool-backend/app/modules/round/domain/events"
	"github.com/palpite-club/pool-backend/app/shared/attr"
	"github.com/palpite-club/pool-backend/app/shared/utils"
)

// BettingCloseWorker fires when a round's betting deadline passes and
// announces it on the round stream.
type BettingCloseWorker struct {
	river.WorkerDefaults[BettingCloseJob]
	logger   *slog.Logger
	eventBus eventbus.EventBus
	helpers  utils.Helpers
}

// NewBettingCloseWorker creates the deadline worker.
func NewBettingCloseWorker(logger *slog.Logger, eventBus eventbus.EventBus, helpers utils.Helpers) *BettingCloseWorker {
	return &BettingCloseWorker{
		logger:   logger,
		eventBus: eventBus,
		helpers:  helpers,
	}
}

func (w *BettingCloseWorker) Work(ctx context.Context, job *river.Job[BettingCloseJob]) error {
	w.logger.InfoContext(ctx, "Betting deadline reached",
		attr.RoundID("round_id", job.Args.RoundID),
		attr.Int("attempt", job.Attempt),
	)

	payload := roundevents.BettingClosedPayloadV1{
		RoundID:  job.Args.RoundID,
		ClosedAt: time.Now().UTC(),
	}

	msg, err := w.helpers.CreateNewMessage(payload, roundevents.BettingClosedV1)
	if err != nil {
		return fmt.Errorf("failed to create betting closed message: %w", err)
	}

	if err := w.eventBus.Publish(roundevents.BettingClosedV1, msg); err != nil {
		return fmt.Errorf("failed to publish betting closed for round %s: %w", job.Args.RoundID, err)
	}
	return nil
}
