package roundhandlers

import (
	"context"
	"errors"

	roundevents "github.com/palpite-club/pool-backend/app/modules/round/domain/events"
	"github.com/palpite-club/pool-backend/app/shared/handlerwrapper"
)

// HandleMatchScoreUpdateRequested edits one match's reported score. The
// success event feeds the ranking module's partial recompute.
func (h *RoundHandlers) HandleMatchScoreUpdateRequested(ctx context.Context, payload *roundevents.MatchScoreUpdateRequestedPayloadV1) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload is nil")
	}

	result, err := h.service.UpdateMatchScore(ctx, *payload)
	if err != nil {
		return nil, err
	}

	if result.IsFailure() {
		return []handlerwrapper.Result{
			{Topic: roundevents.MatchScoreUpdateFailedV1, Payload: result.Failure},
		}, nil
	}

	return []handlerwrapper.Result{
		{Topic: roundevents.MatchScoreUpdatedV1, Payload: result.Success},
	}, nil
}
