package betservice

import (
	"context"
	"time"

	"github.com/uptrace/bun"

	betdb "github.com/palpite-club/pool-backend/app/modules/bet/infrastructure/repositories"
	sharedtypes "github.com/palpite-club/pool-backend/app/shared/types"
)

// ------------------------
// Fake Bet Repo
// ------------------------

// FakeBetRepository provides a programmable stub for the betdb.Repository
// interface.
type FakeBetRepository struct {
	trace []string

	CreateBetFunc                 func(ctx context.Context, db bun.IDB, bet *betdb.Bet) error
	GetBetFunc                    func(ctx context.Context, db bun.IDB, betID sharedtypes.BetID) (*betdb.Bet, error)
	GetActionableBetsForRoundFunc func(ctx context.Context, db bun.IDB, roundID sharedtypes.RoundID) ([]*betdb.Bet, error)
	ListActionableBetsFunc        func(ctx context.Context, db bun.IDB) ([]*betdb.Bet, error)
	UpdateDerivedFunc             func(ctx context.Context, db bun.IDB, betID sharedtypes.BetID, lines []sharedtypes.PredictionLine, performance sharedtypes.RoundPerformance) error
	MarkPaidFunc                  func(ctx context.Context, db bun.IDB, betID sharedtypes.BetID, paidAt time.Time) error
	MarkChampionBetsFunc          func(ctx context.Context, db bun.IDB, roundID sharedtypes.RoundID, betIDs []sharedtypes.BetID) error

	// LastDerived captures the most recent UpdateDerived call per bet.
	LastDerived map[sharedtypes.BetID]sharedtypes.RoundPerformance
}

// NewFakeBetRepository initializes a new FakeBetRepository with an empty trace.
func NewFakeBetRepository() *FakeBetRepository {
	return &FakeBetRepository{
		trace:       []string{},
		LastDerived: map[sharedtypes.BetID]sharedtypes.RoundPerformance{},
	}
}

// Trace returns the sequence of method calls made to the fake.
func (f *FakeBetRepository) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeBetRepository) record(step string) {
	f.trace = append(f.trace, step)
}

// --- Repository Interface Implementation ---

func (f *FakeBetRepository) CreateBet(ctx context.Context, db bun.IDB, bet *betdb.Bet) error {
	f.record("CreateBet")
	if f.CreateBetFunc != nil {
		return f.CreateBetFunc(ctx, db, bet)
	}
	return nil
}

func (f *FakeBetRepository) GetBet(ctx context.Context, db bun.IDB, betID sharedtypes.BetID) (*betdb.Bet, error) {
	f.record("GetBet")
	if f.GetBetFunc != nil {
		return f.GetBetFunc(ctx, db, betID)
	}
	return nil, betdb.ErrBetNotFound
}

func (f *FakeBetRepository) GetActionableBetsForRound(ctx context.Context, db bun.IDB, roundID sharedtypes.RoundID) ([]*betdb.Bet, error) {
	f.record("GetActionableBetsForRound")
	if f.GetActionableBetsForRoundFunc != nil {
		return f.GetActionableBetsForRoundFunc(ctx, db, roundID)
	}
	return []*betdb.Bet{}, nil
}

func (f *FakeBetRepository) ListActionableBets(ctx context.Context, db bun.IDB) ([]*betdb.Bet, error) {
	f.record("ListActionableBets")
	if f.ListActionableBetsFunc != nil {
		return f.ListActionableBetsFunc(ctx, db)
	}
	return []*betdb.Bet{}, nil
}

func (f *FakeBetRepository) UpdateDerived(ctx context.Context, db bun.IDB, betID sharedtypes.BetID, lines []sharedtypes.PredictionLine, performance sharedtypes.RoundPerformance) error {
	f.record("UpdateDerived")
	f.LastDerived[betID] = performance
	if f.UpdateDerivedFunc != nil {
		return f.UpdateDerivedFunc(ctx, db, betID, lines, performance)
	}
	return nil
}

func (f *FakeBetRepository) MarkPaid(ctx context.Context, db bun.IDB, betID sharedtypes.BetID, paidAt time.Time) error {
	f.record("MarkPaid")
	if f.MarkPaidFunc != nil {
		return f.MarkPaidFunc(ctx, db, betID, paidAt)
	}
	return nil
}

func (f *FakeBetRepository) MarkChampionBets(ctx context.Context, db bun.IDB, roundID sharedtypes.RoundID, betIDs []sharedtypes.BetID) error {
	f.record("MarkChampionBets")
	if f.MarkChampionBetsFunc != nil {
		return f.MarkChampionBetsFunc(ctx, db, roundID, betIDs)
	}
	return nil
}

// Ensure the fake actually satisfies the interface
var _ betdb.Repository = (*FakeBetRepository)(nil)
