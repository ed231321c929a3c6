// Package roundhandlers contains the typed event handlers for the round
// module.
package roundhandlers

import (
	"context"

	roundservice "github.com/palpite-club/pool-backend/app/modules/round/application"
	roundevents "github.com/palpite-club/pool-backend/app/modules/round/domain/events"
	"github.com/palpite-club/pool-backend/app/shared/handlerwrapper"
)

// Handlers is the round module's handler surface.
type Handlers interface {
	HandleCreateRoundRequested(ctx context.Context, payload *roundevents.CreateRoundRequestedPayloadV1) ([]handlerwrapper.Result, error)
	HandleMatchScoreUpdateRequested(ctx context.Context, payload *roundevents.MatchScoreUpdateRequestedPayloadV1) ([]handlerwrapper.Result, error)
}

// RoundHandlers handles round-related events.
type RoundHandlers struct {
	service roundservice.Service
}

// NewRoundHandlers creates a new RoundHandlers.
func NewRoundHandlers(service roundservice.Service) Handlers {
	return &RoundHandlers{service: service}
}
