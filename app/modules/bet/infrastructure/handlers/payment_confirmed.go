package bethandlers

import (
	"context"
	"errors"

	betevents "github.com/palpite-club/pool-backend/app/modules/bet/domain/events"
	"github.com/palpite-club/pool-backend/app/shared/handlerwrapper"
)

// HandlePaymentConfirmed applies an external payment confirmation to the bet
// and reports the outcome on the bet stream.
func (h *BetHandlers) HandlePaymentConfirmed(ctx context.Context, payload *betevents.PaymentConfirmedPayloadV1) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload is nil")
	}

	result, err := h.service.ConfirmPayment(ctx, payload.BetID, payload.PaidAt)
	if err != nil {
		return nil, err
	}

	if result.IsFailure() {
		return []handlerwrapper.Result{
			{Topic: betevents.PaymentFailedV1, Payload: result.Failure},
		}, nil
	}

	return []handlerwrapper.Result{
		{Topic: betevents.PaymentAppliedV1, Payload: result.Success},
	}, nil
}
