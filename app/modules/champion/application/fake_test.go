package championservice

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	championdb "github.com/palpite-club/pool-backend/app/modules/champion/infrastructure/repositories"
	sharedtypes "github.com/palpite-club/pool-backend/app/shared/types"
)

// ------------------------
// Fake Champion Repo
// ------------------------

type championKey struct {
	participant sharedtypes.ParticipantID
	round       sharedtypes.RoundID
}

// FakeChampionRepository provides a programmable stub for the
// championdb.Repository interface. UpsertScoring reproduces the real
// conflict behavior so idempotency tests exercise the same semantics.
type FakeChampionRepository struct {
	trace []string

	Records map[championKey]*championdb.Champion

	UpsertScoringFunc      func(ctx context.Context, db bun.IDB, champion *championdb.Champion) error
	ListLatestFunc         func(ctx context.Context, db bun.IDB, limit int) ([]*championdb.Champion, error)
	MarkPrizeRequestedFunc func(ctx context.Context, db bun.IDB, championID sharedtypes.ChampionID, details string, requestedAt time.Time) error
}

// NewFakeChampionRepository initializes a new FakeChampionRepository.
func NewFakeChampionRepository() *FakeChampionRepository {
	return &FakeChampionRepository{
		trace:   []string{},
		Records: map[championKey]*championdb.Champion{},
	}
}

// Trace returns the sequence of method calls made to the fake.
func (f *FakeChampionRepository) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeChampionRepository) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeChampionRepository) find(championID sharedtypes.ChampionID) *championdb.Champion {
	for _, c := range f.Records {
		if c.ID == championID {
			return c
		}
	}
	return nil
}

func (f *FakeChampionRepository) UpsertScoring(ctx context.Context, db bun.IDB, champion *championdb.Champion) error {
	f.record("UpsertScoring")
	if f.UpsertScoringFunc != nil {
		return f.UpsertScoringFunc(ctx, db, champion)
	}

	key := championKey{participant: champion.ParticipantID, round: champion.RoundID}
	if existing, ok := f.Records[key]; ok {
		// scoring fields only; prize workflow fields untouched
		existing.BetID = champion.BetID
		existing.Nickname = champion.Nickname
		existing.Points = champion.Points
		existing.Hits = champion.Hits
		existing.BestLine = champion.BestLine
		existing.PrizeType = champion.PrizeType
		champion.ID = existing.ID
		return nil
	}

	if uuid.UUID(champion.ID) == uuid.Nil {
		champion.ID = sharedtypes.ChampionID(uuid.New())
	}
	if champion.PrizeStatus == "" {
		champion.PrizeStatus = sharedtypes.PrizeStatusPending
	}
	stored := *champion
	f.Records[key] = &stored
	return nil
}

func (f *FakeChampionRepository) GetChampion(ctx context.Context, db bun.IDB, championID sharedtypes.ChampionID) (*championdb.Champion, error) {
	f.record("GetChampion")
	if c := f.find(championID); c != nil {
		copied := *c
		return &copied, nil
	}
	return nil, championdb.ErrChampionNotFound
}

func (f *FakeChampionRepository) GetChampionsForRound(ctx context.Context, db bun.IDB, roundID sharedtypes.RoundID) ([]*championdb.Champion, error) {
	f.record("GetChampionsForRound")
	var out []*championdb.Champion
	for _, c := range f.Records {
		if c.RoundID == roundID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *FakeChampionRepository) ListLatest(ctx context.Context, db bun.IDB, limit int) ([]*championdb.Champion, error) {
	f.record("ListLatest")
	if f.ListLatestFunc != nil {
		return f.ListLatestFunc(ctx, db, limit)
	}
	var out []*championdb.Champion
	for _, c := range f.Records {
		out = append(out, c)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (f *FakeChampionRepository) MarkPrizeRequested(ctx context.Context, db bun.IDB, championID sharedtypes.ChampionID, details string, requestedAt time.Time) error {
	f.record("MarkPrizeRequested")
	if f.MarkPrizeRequestedFunc != nil {
		return f.MarkPrizeRequestedFunc(ctx, db, championID, details, requestedAt)
	}
	c := f.find(championID)
	if c == nil || c.PrizeStatus != sharedtypes.PrizeStatusPending {
		return championdb.ErrNoRowsAffected
	}
	c.PrizeStatus = sharedtypes.PrizeStatusRequested
	c.PrizeDetails = details
	c.RequestedAt = &requestedAt
	return nil
}

func (f *FakeChampionRepository) MarkPrizePaid(ctx context.Context, db bun.IDB, championID sharedtypes.ChampionID, paidAt time.Time) error {
	f.record("MarkPrizePaid")
	c := f.find(championID)
	if c == nil || c.PrizeStatus != sharedtypes.PrizeStatusRequested {
		return championdb.ErrNoRowsAffected
	}
	c.PrizeStatus = sharedtypes.PrizeStatusPaid
	c.PaidAt = &paidAt
	return nil
}

// Ensure the fake actually satisfies the interface
var _ championdb.Repository = (*FakeChampionRepository)(nil)
