package rankinghandlers

import (
	"context"
	"errors"

	rankingevents "github.com/palpite-club/pool-backend/app/modules/ranking/domain/events"
	roundevents "github.com/palpite-club/pool-backend/app/modules/round/domain/events"
	"github.com/palpite-club/pool-backend/app/shared/handlerwrapper"
)

// HandleMatchScoreUpdated runs the partial pipeline: the edited round's
// ranking snapshot is refreshed, nothing else moves.
func (h *RankingHandlers) HandleMatchScoreUpdated(ctx context.Context, payload *roundevents.MatchScoreUpdatedPayloadV1) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload is nil")
	}

	result, err := h.service.RecomputeRound(ctx, payload.RoundID)
	if err != nil {
		return nil, err
	}

	if result.IsFailure() {
		return []handlerwrapper.Result{
			{Topic: rankingevents.RoundRankingFailedV1, Payload: result.Failure},
		}, nil
	}

	return []handlerwrapper.Result{
		{Topic: rankingevents.RoundRankingComputedV1, Payload: result.Success},
	}, nil
}

// HandleFinalizeRequested runs the full finalize pipeline for the round.
func (h *RankingHandlers) HandleFinalizeRequested(ctx context.Context, payload *roundevents.FinalizeRequestedPayloadV1) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload is nil")
	}

	result, err := h.service.FinalizeRound(ctx, payload.RoundID)
	if err != nil {
		return nil, err
	}

	if result.IsFailure() {
		return []handlerwrapper.Result{
			{Topic: roundevents.FinalizeFailedV1, Payload: result.Failure},
		}, nil
	}

	return []handlerwrapper.Result{
		{Topic: roundevents.RoundFinalizedV1, Payload: result.Success},
	}, nil
}

// HandleRecomputeRequested runs the dataset-wide maintenance recompute.
func (h *RankingHandlers) HandleRecomputeRequested(ctx context.Context, payload *rankingevents.RecomputeRequestedPayloadV1) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload is nil")
	}

	result, err := h.service.RecomputeDataset(ctx)
	if err != nil {
		return nil, err
	}

	if result.IsFailure() {
		return []handlerwrapper.Result{
			{Topic: rankingevents.RecomputeFailedV1, Payload: result.Failure},
		}, nil
	}

	return []handlerwrapper.Result{
		{Topic: rankingevents.RecomputeCompletedV1, Payload: result.Success},
	}, nil
}
