package roundservice

import (
	"context"
	"time"

	"github.com/uptrace/bun"

	roundqueue "github.com/palpite-club/pool-backend/app/modules/round/infrastructure/queue"
	rounddb "github.com/palpite-club/pool-backend/app/modules/round/infrastructure/repositories"
	sharedtypes "github.com/palpite-club/pool-backend/app/shared/types"
)

// ------------------------
// Fake Round Repo
// ------------------------

// FakeRoundRepository provides a programmable stub for the rounddb.Repository
// interface.
type FakeRoundRepository struct {
	trace []string

	CreateRoundFunc        func(ctx context.Context, db bun.IDB, round *rounddb.Round) error
	GetRoundFunc           func(ctx context.Context, db bun.IDB, roundID sharedtypes.RoundID) (*rounddb.Round, error)
	UpdateMatchesFunc      func(ctx context.Context, db bun.IDB, roundID sharedtypes.RoundID, matches []sharedtypes.Match) error
	UpdateRoundStateFunc   func(ctx context.Context, db bun.IDB, roundID sharedtypes.RoundID, state sharedtypes.RoundState, finalizedAt *time.Time) error
	SetChampionSummaryFunc func(ctx context.Context, db bun.IDB, roundID sharedtypes.RoundID, summary []sharedtypes.ChampionSummary) error

	// LastMatches captures the most recent UpdateMatches call per round.
	LastMatches map[sharedtypes.RoundID][]sharedtypes.Match
}

// NewFakeRoundRepository initializes a new FakeRoundRepository with an empty
// trace.
func NewFakeRoundRepository() *FakeRoundRepository {
	return &FakeRoundRepository{
		trace:       []string{},
		LastMatches: map[sharedtypes.RoundID][]sharedtypes.Match{},
	}
}

// Trace returns the sequence of method calls made to the fake.
func (f *FakeRoundRepository) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeRoundRepository) record(step string) {
	f.trace = append(f.trace, step)
}

// --- Repository Interface Implementation ---

func (f *FakeRoundRepository) CreateRound(ctx context.Context, db bun.IDB, round *rounddb.Round) error {
	f.record("CreateRound")
	if f.CreateRoundFunc != nil {
		return f.CreateRoundFunc(ctx, db, round)
	}
	return nil
}

func (f *FakeRoundRepository) GetRound(ctx context.Context, db bun.IDB, roundID sharedtypes.RoundID) (*rounddb.Round, error) {
	f.record("GetRound")
	if f.GetRoundFunc != nil {
		return f.GetRoundFunc(ctx, db, roundID)
	}
	return nil, rounddb.ErrRoundNotFound
}

func (f *FakeRoundRepository) UpdateMatches(ctx context.Context, db bun.IDB, roundID sharedtypes.RoundID, matches []sharedtypes.Match) error {
	f.record("UpdateMatches")
	f.LastMatches[roundID] = matches
	if f.UpdateMatchesFunc != nil {
		return f.UpdateMatchesFunc(ctx, db, roundID, matches)
	}
	return nil
}

func (f *FakeRoundRepository) UpdateRoundState(ctx context.Context, db bun.IDB, roundID sharedtypes.RoundID, state sharedtypes.RoundState, finalizedAt *time.Time) error {
	f.record("UpdateRoundState")
	if f.UpdateRoundStateFunc != nil {
		return f.UpdateRoundStateFunc(ctx, db, roundID, state, finalizedAt)
	}
	return nil
}

func (f *FakeRoundRepository) SetChampionSummary(ctx context.Context, db bun.IDB, roundID sharedtypes.RoundID, summary []sharedtypes.ChampionSummary) error {
	f.record("SetChampionSummary")
	if f.SetChampionSummaryFunc != nil {
		return f.SetChampionSummaryFunc(ctx, db, roundID, summary)
	}
	return nil
}

// Ensure the fake actually satisfies the interface
var _ rounddb.Repository = (*FakeRoundRepository)(nil)

// ------------------------
// Fake Queue Service
// ------------------------

// FakeQueueService records ScheduleBettingClose calls.
type FakeQueueService struct {
	Scheduled []sharedtypes.RoundID

	ScheduleBettingCloseFunc func(ctx context.Context, roundID sharedtypes.RoundID, closeAt time.Time) error
}

func (f *FakeQueueService) ScheduleBettingClose(ctx context.Context, roundID sharedtypes.RoundID, closeAt time.Time) error {
	f.Scheduled = append(f.Scheduled, roundID)
	if f.ScheduleBettingCloseFunc != nil {
		return f.ScheduleBettingCloseFunc(ctx, roundID, closeAt)
	}
	return nil
}

func (f *FakeQueueService) Start(ctx context.Context) error { return nil }
func (f *FakeQueueService) Stop(ctx context.Context) error  { return nil }

var _ roundqueue.QueueService = (*FakeQueueService)(nil)
