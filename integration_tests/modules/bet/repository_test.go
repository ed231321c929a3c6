package bet_test

import (
	"errors"
	"testing"
	"time"

	betdb "github.com/palpite-club/pool-backend/app/modules/bet/infrastructure/repositories"
	sharedtypes "github.com/palpite-club/pool-backend/app/shared/types"
	"github.com/palpite-club/pool-backend/integration_tests/testutils"
)

func TestBetRepository(t *testing.T) {
	env := testutils.NewTestEnvironment(t)
	gen := testutils.NewTestDataGenerator(42)
	repo := &betdb.BetDBImpl{DB: env.DB}

	round := gen.Round(1, 2)

	t.Run("create and get round trip", func(t *testing.T) {
		bet := gen.Bet(round.ID, gen.Participant().ID, 2)
		if err := repo.CreateBet(env.Ctx, nil, bet); err != nil {
			t.Fatalf("CreateBet: %v", err)
		}

		got, err := repo.GetBet(env.Ctx, nil, bet.ID)
		if err != nil {
			t.Fatalf("GetBet: %v", err)
		}
		if got.Status != sharedtypes.BetStatusActive {
			t.Errorf("expected active status, got %q", got.Status)
		}
		if len(got.Lines) != 1 || len(got.Lines[0].Guesses) != 2 {
			t.Errorf("lines not persisted: %+v", got.Lines)
		}
	})

	t.Run("cancelled bets excluded from actionable reads", func(t *testing.T) {
		cancelled := gen.Bet(round.ID, gen.Participant().ID, 2)
		cancelled.Status = sharedtypes.BetStatusCancelled
		if err := repo.CreateBet(env.Ctx, nil, cancelled); err != nil {
			t.Fatalf("CreateBet: %v", err)
		}

		bets, err := repo.GetActionableBetsForRound(env.Ctx, nil, round.ID)
		if err != nil {
			t.Fatalf("GetActionableBetsForRound: %v", err)
		}
		for _, b := range bets {
			if b.ID == cancelled.ID {
				t.Error("cancelled bet appeared in actionable reads")
			}
		}
	})

	t.Run("derived scores persist without touching status", func(t *testing.T) {
		bet := gen.Bet(round.ID, gen.Participant().ID, 2)
		if err := repo.CreateBet(env.Ctx, nil, bet); err != nil {
			t.Fatalf("CreateBet: %v", err)
		}

		scored := bet.Lines
		scored[0].Points = 8
		scored[0].Hits = 2
		perf := sharedtypes.RoundPerformance{Points: 8, Hits: 2, BestLine: 1}
		if err := repo.UpdateDerived(env.Ctx, nil, bet.ID, scored, perf); err != nil {
			t.Fatalf("UpdateDerived: %v", err)
		}

		got, err := repo.GetBet(env.Ctx, nil, bet.ID)
		if err != nil {
			t.Fatalf("GetBet: %v", err)
		}
		if got.Performance == nil || got.Performance.Points != 8 {
			t.Errorf("performance not persisted: %+v", got.Performance)
		}
		if got.Status != sharedtypes.BetStatusActive {
			t.Errorf("status changed by scoring pass: %q", got.Status)
		}
	})

	t.Run("mark paid is guarded by active status", func(t *testing.T) {
		bet := gen.Bet(round.ID, gen.Participant().ID, 2)
		if err := repo.CreateBet(env.Ctx, nil, bet); err != nil {
			t.Fatalf("CreateBet: %v", err)
		}

		paidAt := time.Now().Truncate(time.Second)
		if err := repo.MarkPaid(env.Ctx, nil, bet.ID, paidAt); err != nil {
			t.Fatalf("MarkPaid: %v", err)
		}
		if err := repo.MarkPaid(env.Ctx, nil, bet.ID, paidAt); !errors.Is(err, betdb.ErrNoRowsAffected) {
			t.Errorf("second MarkPaid should hit the guard, got %v", err)
		}

		got, err := repo.GetBet(env.Ctx, nil, bet.ID)
		if err != nil {
			t.Fatalf("GetBet: %v", err)
		}
		if got.Status != sharedtypes.BetStatusPaid || got.PaidAt == nil {
			t.Errorf("paid transition not persisted: status=%q paidAt=%v", got.Status, got.PaidAt)
		}
	})

	t.Run("champion bets flipped in one statement", func(t *testing.T) {
		first := gen.Bet(round.ID, gen.Participant().ID, 2)
		second := gen.Bet(round.ID, gen.Participant().ID, 2)
		for _, b := range []*betdb.Bet{first, second} {
			if err := repo.CreateBet(env.Ctx, nil, b); err != nil {
				t.Fatalf("CreateBet: %v", err)
			}
		}

		if err := repo.MarkChampionBets(env.Ctx, nil, round.ID, []sharedtypes.BetID{first.ID, second.ID}); err != nil {
			t.Fatalf("MarkChampionBets: %v", err)
		}

		for _, id := range []sharedtypes.BetID{first.ID, second.ID} {
			got, err := repo.GetBet(env.Ctx, nil, id)
			if err != nil {
				t.Fatalf("GetBet: %v", err)
			}
			if got.Status != sharedtypes.BetStatusChampion {
				t.Errorf("bet %s not flipped to champion: %q", id, got.Status)
			}
		}
	})
}
