package roundhandlers

import (
	"context"
	"errors"

	roundevents "github.com/palpite-club/pool-backend/app/modules/round/domain/events"
	"github.com/palpite-club/pool-backend/app/shared/handlerwrapper"
)

// HandleCreateRoundRequested creates a round from an admin request.
func (h *RoundHandlers) HandleCreateRoundRequested(ctx context.Context, payload *roundevents.CreateRoundRequestedPayloadV1) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload is nil")
	}

	result, err := h.service.CreateRound(ctx, *payload)
	if err != nil {
		return nil, err
	}

	if result.IsFailure() {
		return []handlerwrapper.Result{
			{Topic: roundevents.RoundCreationFailedV1, Payload: result.Failure},
		}, nil
	}

	return []handlerwrapper.Result{
		{Topic: roundevents.RoundCreatedV1, Payload: result.Success},
	}, nil
}
