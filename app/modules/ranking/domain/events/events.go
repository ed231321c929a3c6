package rankingevents

import (
	sharedtypes "github.com/palpite-club/pool-backend/app/shared/types"
)

// Versioned topics for dataset-wide recompute maintenance. Round-scoped
// triggers (match score updated, finalize requested) live in the round
// module's events; this module consumes them.
const (
	RecomputeRequestedV1 = "ranking.recompute.requested.v1"
	RecomputeCompletedV1 = "ranking.recompute.completed.v1"
	RecomputeFailedV1    = "ranking.recompute.failed.v1"

	RoundRankingComputedV1 = "ranking.round.computed.v1"
	RoundRankingFailedV1   = "ranking.round.failed.v1"
)

// RecomputeRequestedPayloadV1 asks for a full overall + affinity recompute.
// Carries no arguments; the pipeline reads the whole dataset.
type RecomputeRequestedPayloadV1 struct {
	Reason string `json:"reason,omitempty"`
}

// RecomputeCompletedPayloadV1 reports the sizes of the replaced snapshots.
type RecomputeCompletedPayloadV1 struct {
	OverallEntries  int `json:"overall_entries"`
	AffinityBuckets int `json:"affinity_buckets"`
}

// RecomputeFailedPayloadV1 reports why a dataset recompute was not run.
type RecomputeFailedPayloadV1 struct {
	Step   string `json:"step"`
	Reason string `json:"reason"`
}

// RoundRankingComputedPayloadV1 confirms a partial (round-only) recompute.
type RoundRankingComputedPayloadV1 struct {
	RoundID sharedtypes.RoundID `json:"round_id"`
	Entries int                 `json:"entries"`
}

// RoundRankingFailedPayloadV1 reports why a partial recompute was rejected.
type RoundRankingFailedPayloadV1 struct {
	RoundID sharedtypes.RoundID `json:"round_id"`
	Reason  string              `json:"reason"`
}
