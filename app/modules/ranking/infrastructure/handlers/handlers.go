// Package rankinghandlers contains the typed event handlers for the ranking
// module: the recompute pipeline's trigger surface.
package rankinghandlers

import (
	"context"

	rankingservice "github.com/palpite-club/pool-backend/app/modules/ranking/application"
	rankingevents "github.com/palpite-club/pool-backend/app/modules/ranking/domain/events"
	roundevents "github.com/palpite-club/pool-backend/app/modules/round/domain/events"
	"github.com/palpite-club/pool-backend/app/shared/handlerwrapper"
)

// Handlers is the ranking module's handler surface.
type Handlers interface {
	HandleMatchScoreUpdated(ctx context.Context, payload *roundevents.MatchScoreUpdatedPayloadV1) ([]handlerwrapper.Result, error)
	HandleFinalizeRequested(ctx context.Context, payload *roundevents.FinalizeRequestedPayloadV1) ([]handlerwrapper.Result, error)
	HandleRecomputeRequested(ctx context.Context, payload *rankingevents.RecomputeRequestedPayloadV1) ([]handlerwrapper.Result, error)
}

// RankingHandlers handles recompute trigger events.
type RankingHandlers struct {
	service rankingservice.Service
}

// NewRankingHandlers creates a new RankingHandlers.
func NewRankingHandlers(service rankingservice.Service) Handlers {
	return &RankingHandlers{service: service}
}
