// Package championhandlers contains the typed event handlers for the prize
// fulfillment workflow.
package championhandlers

import (
	"context"

	championservice "github.com/palpite-club/pool-backend/app/modules/champion/application"
	championevents "github.com/palpite-club/pool-backend/app/modules/champion/domain/events"
	"github.com/palpite-club/pool-backend/app/shared/handlerwrapper"
)

// Handlers is the champion module's handler surface.
type Handlers interface {
	HandlePrizeRequested(ctx context.Context, payload *championevents.PrizeRequestedPayloadV1) ([]handlerwrapper.Result, error)
	HandlePrizePaid(ctx context.Context, payload *championevents.PrizePaidPayloadV1) ([]handlerwrapper.Result, error)
}

// ChampionHandlers handles prize workflow events.
type ChampionHandlers struct {
	service championservice.Service
}

// NewChampionHandlers creates a new ChampionHandlers.
func NewChampionHandlers(service championservice.Service) Handlers {
	return &ChampionHandlers{service: service}
}
