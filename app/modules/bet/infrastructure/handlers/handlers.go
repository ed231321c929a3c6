// Package bethandlers contains the typed event handlers for the bet module.
package bethandlers

import (
	"context"

	betevents "github.com/palpite-club/pool-backend/app/modules/bet/domain/events"
	betservice "github.com/palpite-club/pool-backend/app/modules/bet/application"
	"github.com/palpite-club/pool-backend/app/shared/handlerwrapper"
)

// Handlers is the bet module's handler surface.
type Handlers interface {
	HandlePaymentConfirmed(ctx context.Context, payload *betevents.PaymentConfirmedPayloadV1) ([]handlerwrapper.Result, error)
}

// BetHandlers handles bet-related events.
type BetHandlers struct {
	service betservice.Service
}

// NewBetHandlers creates a new BetHandlers.
func NewBetHandlers(service betservice.Service) Handlers {
	return &BetHandlers{service: service}
}
