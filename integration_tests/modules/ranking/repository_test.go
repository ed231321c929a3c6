package ranking_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"

	rankingdb "github.com/palpite-club/pool-backend/app/modules/ranking/infrastructure/repositories"
	sharedtypes "github.com/palpite-club/pool-backend/app/shared/types"
	"github.com/palpite-club/pool-backend/integration_tests/testutils"
)

func TestRankingRepository(t *testing.T) {
	env := testutils.NewTestEnvironment(t)
	repo := &rankingdb.RankingDBImpl{DB: env.DB}

	entry := func(nickname string, rank, points int) sharedtypes.RoundRankingEntry {
		return sharedtypes.RoundRankingEntry{
			ParticipantID: sharedtypes.ParticipantID(uuid.New()),
			BetID:         sharedtypes.BetID(uuid.New()),
			Nickname:      nickname,
			BestLine:      sharedtypes.RoundPerformance{Points: points, BestLine: 1},
			Rank:          rank,
		}
	}

	t.Run("round ranking replace bumps the version", func(t *testing.T) {
		roundID := sharedtypes.RoundID(uuid.New())

		first := []sharedtypes.RoundRankingEntry{entry("alice", 1, 10)}
		if err := repo.ReplaceRoundRanking(env.Ctx, nil, roundID, first); err != nil {
			t.Fatalf("ReplaceRoundRanking: %v", err)
		}

		snap, err := repo.GetRoundRanking(env.Ctx, nil, roundID)
		if err != nil {
			t.Fatalf("GetRoundRanking: %v", err)
		}
		initialVersion := snap.Version

		second := []sharedtypes.RoundRankingEntry{entry("alice", 1, 13), entry("bob", 2, 8)}
		if err := repo.ReplaceRoundRanking(env.Ctx, nil, roundID, second); err != nil {
			t.Fatalf("second ReplaceRoundRanking: %v", err)
		}

		snap, err = repo.GetRoundRanking(env.Ctx, nil, roundID)
		if err != nil {
			t.Fatalf("GetRoundRanking after replace: %v", err)
		}
		if len(snap.Entries) != 2 {
			t.Errorf("expected 2 entries after replace, got %d", len(snap.Entries))
		}
		if snap.Version <= initialVersion {
			t.Errorf("version not bumped: %d -> %d", initialVersion, snap.Version)
		}
	})

	t.Run("missing round ranking yields not found", func(t *testing.T) {
		_, err := repo.GetRoundRanking(env.Ctx, nil, sharedtypes.RoundID(uuid.New()))
		if !errors.Is(err, rankingdb.ErrSnapshotNotFound) {
			t.Errorf("expected ErrSnapshotNotFound, got %v", err)
		}
	})

	t.Run("overall replace keeps exactly one active snapshot", func(t *testing.T) {
		first := []sharedtypes.OverallRankingEntry{{Nickname: "alice", TotalPoints: 10, Rank: 1}}
		if err := repo.ReplaceOverallRanking(env.Ctx, nil, first); err != nil {
			t.Fatalf("ReplaceOverallRanking: %v", err)
		}

		second := []sharedtypes.OverallRankingEntry{
			{Nickname: "alice", TotalPoints: 18, Rank: 1},
			{Nickname: "bob", TotalPoints: 5, Rank: 2},
		}
		if err := repo.ReplaceOverallRanking(env.Ctx, nil, second); err != nil {
			t.Fatalf("second ReplaceOverallRanking: %v", err)
		}

		snap, err := repo.GetOverallRanking(env.Ctx, nil)
		if err != nil {
			t.Fatalf("GetOverallRanking: %v", err)
		}
		if diff := cmp.Diff(second, snap.Entries); diff != "" {
			t.Errorf("active overall snapshot mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("affinity replace keeps exactly one active snapshot", func(t *testing.T) {
		if err := repo.ReplaceAffinityRanking(env.Ctx, nil, []sharedtypes.AffinityBucket{{Team: "Flamengo", Supporters: 1, Share: 100}}); err != nil {
			t.Fatalf("ReplaceAffinityRanking: %v", err)
		}

		buckets := []sharedtypes.AffinityBucket{
			{Team: "Flamengo", Supporters: 2, Share: 66.7},
			{Team: "Sem time", Supporters: 1, Share: 33.3},
		}
		if err := repo.ReplaceAffinityRanking(env.Ctx, nil, buckets); err != nil {
			t.Fatalf("second ReplaceAffinityRanking: %v", err)
		}

		snap, err := repo.GetAffinityRanking(env.Ctx, nil)
		if err != nil {
			t.Fatalf("GetAffinityRanking: %v", err)
		}
		if diff := cmp.Diff(buckets, snap.Buckets); diff != "" {
			t.Errorf("active affinity snapshot mismatch (-want +got):\n%s", diff)
		}
	})
}
