package rankingservice

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"

	sharedtypes "github.com/palpite-club/pool-backend/app/shared/types"
)

func betWithLines(participant sharedtypes.ParticipantID, roundID sharedtypes.RoundID, createdAt time.Time, linePoints ...int) sharedtypes.BetSnapshot {
	lines := make([]sharedtypes.PredictionLine, len(linePoints))
	best := sharedtypes.RoundPerformance{BestLine: 1}
	for i, p := range linePoints {
		lines[i] = sharedtypes.PredictionLine{Number: i + 1, Points: p}
		if i == 0 || p > best.Points {
			best = sharedtypes.RoundPerformance{Points: p, BestLine: i + 1}
		}
	}
	return sharedtypes.BetSnapshot{
		BetID:         sharedtypes.BetID(uuid.New()),
		RoundID:       roundID,
		ParticipantID: participant,
		Status:        sharedtypes.BetStatusPaid,
		Lines:         lines,
		Performance:   best,
		CreatedAt:     createdAt,
	}
}

func TestBuildOverallRanking(t *testing.T) {
	base := time.Date(2026, 4, 10, 12, 0, 0, 0, time.UTC)
	roundA := sharedtypes.RoundID(uuid.New())
	roundB := sharedtypes.RoundID(uuid.New())

	t.Run("sums every line across rounds", func(t *testing.T) {
		alice := sharedtypes.ParticipantID(uuid.New())

		// 5+3 in round A and 5 in round B: cumulative 13, not best-line 10.
		bets := []sharedtypes.BetSnapshot{
			betWithLines(alice, roundA, base, 5, 3),
			betWithLines(alice, roundB, base.Add(time.Hour), 5),
		}

		entries := BuildOverallRanking(bets, nil)
		if len(entries) != 1 {
			t.Fatalf("len = %d, want 1", len(entries))
		}
		if entries[0].TotalPoints != 13 {
			t.Errorf("TotalPoints = %d, want 13", entries[0].TotalPoints)
		}
		if entries[0].BetsCounted != 2 {
			t.Errorf("BetsCounted = %d, want 2", entries[0].BetsCounted)
		}
		if entries[0].Rank != 1 {
			t.Errorf("Rank = %d, want 1", entries[0].Rank)
		}
	})

	t.Run("ranks are strictly sequential even on ties", func(t *testing.T) {
		alice := sharedtypes.ParticipantID(uuid.New())
		bob := sharedtypes.ParticipantID(uuid.New())
		carol := sharedtypes.ParticipantID(uuid.New())

		bets := []sharedtypes.BetSnapshot{
			betWithLines(alice, roundA, base, 8),
			betWithLines(bob, roundA, base.Add(time.Minute), 8),
			betWithLines(carol, roundA, base.Add(2*time.Minute), 3),
		}
		roster := map[sharedtypes.ParticipantID]sharedtypes.Participant{
			alice: {ParticipantID: alice, Nickname: "alice"},
			bob:   {ParticipantID: bob, Nickname: "bob"},
			carol: {ParticipantID: carol, Nickname: "carol"},
		}

		entries := BuildOverallRanking(bets, roster)

		gotRanks := []int{entries[0].Rank, entries[1].Rank, entries[2].Rank}
		if diff := cmp.Diff([]int{1, 2, 3}, gotRanks); diff != "" {
			t.Errorf("ranks mismatch (-want +got):\n%s", diff)
		}
		// first-accumulated keeps the lower rank among equal totals
		if entries[0].Nickname != "alice" || entries[1].Nickname != "bob" {
			t.Errorf("tie order = [%s, %s], want [alice, bob]", entries[0].Nickname, entries[1].Nickname)
		}
	})

	t.Run("empty input yields empty snapshot", func(t *testing.T) {
		entries := BuildOverallRanking(nil, nil)
		if len(entries) != 0 {
			t.Errorf("len = %d, want 0", len(entries))
		}
	})
}

func TestBuildParticipantStats(t *testing.T) {
	base := time.Date(2026, 4, 10, 12, 0, 0, 0, time.UTC)
	roundA := sharedtypes.RoundID(uuid.New())
	roundB := sharedtypes.RoundID(uuid.New())
	alice := sharedtypes.ParticipantID(uuid.New())
	bob := sharedtypes.ParticipantID(uuid.New())

	bets := []sharedtypes.BetSnapshot{
		betWithLines(alice, roundA, base, 5, 3),
		betWithLines(alice, roundB, base.Add(time.Hour), 5),
		betWithLines(bob, roundA, base.Add(time.Minute), 0),
	}

	stats := BuildParticipantStats(bets)
	if len(stats) != 2 {
		t.Fatalf("len = %d, want 2", len(stats))
	}

	byID := map[sharedtypes.ParticipantID]sharedtypes.ParticipantStats{}
	for _, s := range stats {
		byID[s.ParticipantID] = s
	}
	if got := byID[alice]; got.RoundsPlayed != 2 || got.TotalPoints != 13 {
		t.Errorf("alice stats = %+v, want rounds 2 points 13", got)
	}
	if got := byID[bob]; got.RoundsPlayed != 1 || got.TotalPoints != 0 {
		t.Errorf("bob stats = %+v, want rounds 1 points 0", got)
	}
}
