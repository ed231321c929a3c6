package sharedtypes

// PrizeType is what a round's champion wins, derived from the round kind.
type PrizeType string

const (
	PrizeTypeCash     PrizeType = "cash"
	PrizeTypeGiveaway PrizeType = "giveaway"
)

// PrizeStatus tracks the fulfillment workflow for a champion's prize. The
// scoring engine only ever creates records at pending; the fulfillment
// collaborator advances them.
type PrizeStatus string

const (
	PrizeStatusPending   PrizeStatus = "pending"
	PrizeStatusRequested PrizeStatus = "requested"
	PrizeStatusPaid      PrizeStatus = "paid"
)
