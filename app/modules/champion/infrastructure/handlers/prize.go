package championhandlers

import (
	"context"
	"errors"

	championevents "github.com/palpite-club/pool-backend/app/modules/champion/domain/events"
	"github.com/palpite-club/pool-backend/app/shared/handlerwrapper"
)

// HandlePrizeRequested applies a champion's prize claim.
func (h *ChampionHandlers) HandlePrizeRequested(ctx context.Context, payload *championevents.PrizeRequestedPayloadV1) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload is nil")
	}

	result, err := h.service.RequestPrize(ctx, *payload)
	if err != nil {
		return nil, err
	}

	if result.IsFailure() {
		return []handlerwrapper.Result{
			{Topic: championevents.PrizeRequestFailedV1, Payload: result.Failure},
		}, nil
	}

	return []handlerwrapper.Result{
		{Topic: championevents.PrizeRequestAppliedV1, Payload: result.Success},
	}, nil
}

// HandlePrizePaid applies an admin payout confirmation.
func (h *ChampionHandlers) HandlePrizePaid(ctx context.Context, payload *championevents.PrizePaidPayloadV1) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload is nil")
	}

	result, err := h.service.MarkPrizePaid(ctx, *payload)
	if err != nil {
		return nil, err
	}

	if result.IsFailure() {
		return []handlerwrapper.Result{
			{Topic: championevents.PrizePaidFailedV1, Payload: result.Failure},
		}, nil
	}

	return []handlerwrapper.Result{
		{Topic: championevents.PrizePaidAppliedV1, Payload: result.Success},
	}, nil
}
