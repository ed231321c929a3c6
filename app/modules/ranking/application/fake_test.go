package rankingservice

import (
	"context"
	"sync"

	"github.com/uptrace/bun"

	rankingdb "github.com/palpite-club/pool-backend/app/modules/ranking/infrastructure/repositories"
	sharedtypes "github.com/palpite-club/pool-backend/app/shared/types"
)

// ------------------------
// Fake Ranking Repo
// ------------------------

// FakeRankingRepository provides a programmable stub for the
// rankingdb.Repository interface.
type FakeRankingRepository struct {
	mu    sync.Mutex
	trace []string

	RoundRankings   map[sharedtypes.RoundID][]sharedtypes.RoundRankingEntry
	OverallEntries  []sharedtypes.OverallRankingEntry
	AffinityBuckets []sharedtypes.AffinityBucket

	ReplaceRoundRankingFunc    func(ctx context.Context, db bun.IDB, roundID sharedtypes.RoundID, entries []sharedtypes.RoundRankingEntry) error
	ReplaceOverallRankingFunc  func(ctx context.Context, db bun.IDB, entries []sharedtypes.OverallRankingEntry) error
	ReplaceAffinityRankingFunc func(ctx context.Context, db bun.IDB, buckets []sharedtypes.AffinityBucket) error
}

// NewFakeRankingRepository initializes a new FakeRankingRepository with an
// empty trace.
func NewFakeRankingRepository() *FakeRankingRepository {
	return &FakeRankingRepository{
		trace:         []string{},
		RoundRankings: map[sharedtypes.RoundID][]sharedtypes.RoundRankingEntry{},
	}
}

// Trace returns the sequence of method calls made to the fake.
func (f *FakeRankingRepository) Trace() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeRankingRepository) record(step string) {
	f.mu.Lock()
	f.trace = append(f.trace, step)
	f.mu.Unlock()
}

func (f *FakeRankingRepository) ReplaceRoundRanking(ctx context.Context, db bun.IDB, roundID sharedtypes.RoundID, entries []sharedtypes.RoundRankingEntry) error {
	f.record("ReplaceRoundRanking")
	if f.ReplaceRoundRankingFunc != nil {
		if err := f.ReplaceRoundRankingFunc(ctx, db, roundID, entries); err != nil {
			return err
		}
	}
	f.mu.Lock()
	f.RoundRankings[roundID] = entries
	f.mu.Unlock()
	return nil
}

func (f *FakeRankingRepository) GetRoundRanking(ctx context.Context, db bun.IDB, roundID sharedtypes.RoundID) (*rankingdb.RoundRankingSnapshot, error) {
	f.record("GetRoundRanking")
	f.mu.Lock()
	defer f.mu.Unlock()
	entries, ok := f.RoundRankings[roundID]
	if !ok {
		return nil, rankingdb.ErrSnapshotNotFound
	}
	return &rankingdb.RoundRankingSnapshot{RoundID: roundID, Entries: entries}, nil
}

func (f *FakeRankingRepository) ReplaceOverallRanking(ctx context.Context, db bun.IDB, entries []sharedtypes.OverallRankingEntry) error {
	f.record("ReplaceOverallRanking")
	if f.ReplaceOverallRankingFunc != nil {
		if err := f.ReplaceOverallRankingFunc(ctx, db, entries); err != nil {
			return err
		}
	}
	f.mu.Lock()
	f.OverallEntries = entries
	f.mu.Unlock()
	return nil
}

func (f *FakeRankingRepository) GetOverallRanking(ctx context.Context, db bun.IDB) (*rankingdb.OverallRankingSnapshot, error) {
	f.record("GetOverallRanking")
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.OverallEntries == nil {
		return nil, rankingdb.ErrSnapshotNotFound
	}
	return &rankingdb.OverallRankingSnapshot{Entries: f.OverallEntries, IsActive: true}, nil
}

func (f *FakeRankingRepository) ReplaceAffinityRanking(ctx context.Context, db bun.IDB, buckets []sharedtypes.AffinityBucket) error {
	f.record("ReplaceAffinityRanking")
	if f.ReplaceAffinityRankingFunc != nil {
		if err := f.ReplaceAffinityRankingFunc(ctx, db, buckets); err != nil {
			return err
		}
	}
	f.mu.Lock()
	f.AffinityBuckets = buckets
	f.mu.Unlock()
	return nil
}

func (f *FakeRankingRepository) GetAffinityRanking(ctx context.Context, db bun.IDB) (*rankingdb.AffinityRankingSnapshot, error) {
	f.record("GetAffinityRanking")
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.AffinityBuckets == nil {
		return nil, rankingdb.ErrSnapshotNotFound
	}
	return &rankingdb.AffinityRankingSnapshot{Buckets: f.AffinityBuckets, IsActive: true}, nil
}

var _ rankingdb.Repository = (*FakeRankingRepository)(nil)

// ------------------------
// Fake Ports
// ------------------------

// FakeRoundPort provides a programmable stub for RoundPort and records the
// order of cross-module calls.
type FakeRoundPort struct {
	mu    sync.Mutex
	trace []string

	Rounds map[sharedtypes.RoundID]sharedtypes.RoundSnapshot

	MarkFinalizedFunc      func(ctx context.Context, roundID sharedtypes.RoundID) error
	SetChampionSummaryFunc func(ctx context.Context, roundID sharedtypes.RoundID, summary []sharedtypes.ChampionSummary) error

	Finalized []sharedtypes.RoundID
	Summaries map[sharedtypes.RoundID][]sharedtypes.ChampionSummary
}

func NewFakeRoundPort() *FakeRoundPort {
	return &FakeRoundPort{
		trace:     []string{},
		Rounds:    map[sharedtypes.RoundID]sharedtypes.RoundSnapshot{},
		Summaries: map[sharedtypes.RoundID][]sharedtypes.ChampionSummary{},
	}
}

func (f *FakeRoundPort) Trace() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeRoundPort) record(step string) {
	f.mu.Lock()
	f.trace = append(f.trace, step)
	f.mu.Unlock()
}

func (f *FakeRoundPort) GetRound(ctx context.Context, roundID sharedtypes.RoundID) (sharedtypes.RoundSnapshot, error) {
	f.record("GetRound")
	f.mu.Lock()
	defer f.mu.Unlock()
	round, ok := f.Rounds[roundID]
	if !ok {
		return sharedtypes.RoundSnapshot{}, ErrRoundNotFound
	}
	return round, nil
}

func (f *FakeRoundPort) MarkFinalized(ctx context.Context, roundID sharedtypes.RoundID) error {
	f.record("MarkFinalized")
	if f.MarkFinalizedFunc != nil {
		return f.MarkFinalizedFunc(ctx, roundID)
	}
	f.mu.Lock()
	f.Finalized = append(f.Finalized, roundID)
	f.mu.Unlock()
	return nil
}

func (f *FakeRoundPort) SetChampionSummary(ctx context.Context, roundID sharedtypes.RoundID, summary []sharedtypes.ChampionSummary) error {
	f.record("SetChampionSummary")
	if f.SetChampionSummaryFunc != nil {
		return f.SetChampionSummaryFunc(ctx, roundID, summary)
	}
	f.mu.Lock()
	f.Summaries[roundID] = summary
	f.mu.Unlock()
	return nil
}

var _ RoundPort = (*FakeRoundPort)(nil)

// FakeBetPort provides a programmable stub for BetPort.
type FakeBetPort struct {
	mu    sync.Mutex
	trace []string

	RoundBets map[sharedtypes.RoundID][]sharedtypes.BetSnapshot
	AllBets   []sharedtypes.BetSnapshot

	ScoreRoundBetsFunc func(ctx context.Context, roundID sharedtypes.RoundID, matches []sharedtypes.Match) ([]sharedtypes.BetSnapshot, error)
	MarkChampionsFunc  func(ctx context.Context, roundID sharedtypes.RoundID, betIDs []sharedtypes.BetID) error

	ChampionBets map[sharedtypes.RoundID][]sharedtypes.BetID
}

func NewFakeBetPort() *FakeBetPort {
	return &FakeBetPort{
		trace:        []string{},
		RoundBets:    map[sharedtypes.RoundID][]sharedtypes.BetSnapshot{},
		ChampionBets: map[sharedtypes.RoundID][]sharedtypes.BetID{},
	}
}

func (f *FakeBetPort) Trace() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeBetPort) record(step string) {
	f.mu.Lock()
	f.trace = append(f.trace, step)
	f.mu.Unlock()
}

func (f *FakeBetPort) ScoreRoundBets(ctx context.Context, roundID sharedtypes.RoundID, matches []sharedtypes.Match) ([]sharedtypes.BetSnapshot, error) {
	f.record("ScoreRoundBets")
	if f.ScoreRoundBetsFunc != nil {
		return f.ScoreRoundBetsFunc(ctx, roundID, matches)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.RoundBets[roundID], nil
}

func (f *FakeBetPort) ListActionableBets(ctx context.Context) ([]sharedtypes.BetSnapshot, error) {
	f.record("ListActionableBets")
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.AllBets, nil
}

func (f *FakeBetPort) MarkChampions(ctx context.Context, roundID sharedtypes.RoundID, betIDs []sharedtypes.BetID) error {
	f.record("MarkChampions")
	if f.MarkChampionsFunc != nil {
		return f.MarkChampionsFunc(ctx, roundID, betIDs)
	}
	f.mu.Lock()
	f.ChampionBets[roundID] = betIDs
	f.mu.Unlock()
	return nil
}

var _ BetPort = (*FakeBetPort)(nil)

// FakeChampionPort provides a programmable stub for ChampionPort.
type FakeChampionPort struct {
	mu    sync.Mutex
	trace []string

	ResolveChampionsFunc func(ctx context.Context, round sharedtypes.RoundSnapshot, entries []sharedtypes.RoundRankingEntry) (ChampionResolution, error)
}

func NewFakeChampionPort() *FakeChampionPort {
	return &FakeChampionPort{trace: []string{}}
}

func (f *FakeChampionPort) Trace() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeChampionPort) ResolveChampions(ctx context.Context, round sharedtypes.RoundSnapshot, entries []sharedtypes.RoundRankingEntry) (ChampionResolution, error) {
	f.mu.Lock()
	f.trace = append(f.trace, "ResolveChampions")
	f.mu.Unlock()
	if f.ResolveChampionsFunc != nil {
		return f.ResolveChampionsFunc(ctx, round, entries)
	}

	var resolution ChampionResolution
	for _, entry := range entries {
		if entry.Rank != 1 {
			continue
		}
		resolution.BetIDs = append(resolution.BetIDs, entry.BetID)
		resolution.Summaries = append(resolution.Summaries, sharedtypes.ChampionSummary{
			ParticipantID: entry.ParticipantID,
			BetID:         entry.BetID,
			Nickname:      entry.Nickname,
			Points:        entry.BestLine.Points,
			Hits:          entry.BestLine.Hits,
			PrizeType:     sharedtypes.PrizeTypeFor(round.Kind),
		})
	}
	return resolution, nil
}

var _ ChampionPort = (*FakeChampionPort)(nil)

// FakeParticipantPort provides a programmable stub for ParticipantPort.
type FakeParticipantPort struct {
	mu    sync.Mutex
	trace []string

	Participants []sharedtypes.Participant
	LastStats    []sharedtypes.ParticipantStats

	UpdateStatsFunc func(ctx context.Context, stats []sharedtypes.ParticipantStats) error
}

func NewFakeParticipantPort(participants ...sharedtypes.Participant) *FakeParticipantPort {
	return &FakeParticipantPort{trace: []string{}, Participants: participants}
}

func (f *FakeParticipantPort) ListParticipants(ctx context.Context) ([]sharedtypes.Participant, error) {
	f.mu.Lock()
	f.trace = append(f.trace, "ListParticipants")
	f.mu.Unlock()
	return f.Participants, nil
}

func (f *FakeParticipantPort) UpdateStats(ctx context.Context, stats []sharedtypes.ParticipantStats) error {
	f.mu.Lock()
	f.trace = append(f.trace, "UpdateStats")
	f.LastStats = stats
	f.mu.Unlock()
	if f.UpdateStatsFunc != nil {
		return f.UpdateStatsFunc(ctx, stats)
	}
	return nil
}

var _ ParticipantPort = (*FakeParticipantPort)(nil)
