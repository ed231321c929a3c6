package roundqueue

import (
	sharedtypes "github.com/palpite-club/pool-backend/app/shared/types"
)

// BettingCloseJob publishes the betting-closed event at the round's deadline.
type BettingCloseJob struct {
	RoundID sharedtypes.RoundID `json:"round_id"`
}

// Kind returns the job type identifier for River.
func (BettingCloseJob) Kind() string { return "round_betting_close" }
