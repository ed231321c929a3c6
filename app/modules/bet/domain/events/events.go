package betevents

import (
	"time"

	sharedtypes "github.com/palpite-club/pool-backend/app/shared/types"
)

// Versioned topics consumed and produced by the bet module.
const (
	PaymentConfirmedV1 = "bet.payment.confirmed.v1"
	PaymentAppliedV1   = "bet.payment.applied.v1"
	PaymentFailedV1    = "bet.payment.failed.v1"
)

// PaymentConfirmedPayloadV1 arrives from the external payment collaborator
// once a bet's payment cleared.
type PaymentConfirmedPayloadV1 struct {
	BetID  sharedtypes.BetID `json:"bet_id"`
	PaidAt time.Time         `json:"paid_at"`
}

// PaymentAppliedPayloadV1 confirms the bet moved to paid.
type PaymentAppliedPayloadV1 struct {
	BetID         sharedtypes.BetID         `json:"bet_id"`
	RoundID       sharedtypes.RoundID       `json:"round_id"`
	ParticipantID sharedtypes.ParticipantID `json:"participant_id"`
	Status        sharedtypes.BetStatus     `json:"status"`
	PaidAt        time.Time                 `json:"paid_at"`
}

// PaymentFailedPayloadV1 reports why a payment confirmation was not applied.
type PaymentFailedPayloadV1 struct {
	BetID  sharedtypes.BetID `json:"bet_id"`
	Reason string            `json:"reason"`
}
