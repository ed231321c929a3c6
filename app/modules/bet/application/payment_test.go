package betservice

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	betdb "github.com/palpite-club/pool-backend/app/modules/bet/infrastructure/repositories"
	sharedtypes "github.com/palpite-club/pool-backend/app/shared/types"
)

func TestBetService_ConfirmPayment(t *testing.T) {
	ctx := context.Background()
	paidAt := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	makeBet := func(status sharedtypes.BetStatus) *betdb.Bet {
		return &betdb.Bet{
			ID:            sharedtypes.BetID(uuid.New()),
			RoundID:       sharedtypes.RoundID(uuid.New()),
			ParticipantID: sharedtypes.ParticipantID(uuid.New()),
			Status:        status,
		}
	}

	t.Run("active bet becomes paid", func(t *testing.T) {
		bet := makeBet(sharedtypes.BetStatusActive)
		repo := NewFakeBetRepository()
		repo.GetBetFunc = func(_ context.Context, _ bun.IDB, _ sharedtypes.BetID) (*betdb.Bet, error) {
			return bet, nil
		}

		service := newTestBetService(repo)
		result, err := service.ConfirmPayment(ctx, bet.ID, paidAt)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.IsSuccess() {
			t.Fatalf("expected success, got %+v", result)
		}
		if result.Success.Status != sharedtypes.BetStatusPaid {
			t.Errorf("status = %s, want paid", result.Success.Status)
		}
		if got := repo.Trace(); len(got) != 2 || got[1] != "MarkPaid" {
			t.Errorf("trace = %v, want [GetBet MarkPaid]", got)
		}
	})

	t.Run("cancelled bet is rejected", func(t *testing.T) {
		bet := makeBet(sharedtypes.BetStatusCancelled)
		repo := NewFakeBetRepository()
		repo.GetBetFunc = func(_ context.Context, _ bun.IDB, _ sharedtypes.BetID) (*betdb.Bet, error) {
			return bet, nil
		}

		service := newTestBetService(repo)
		result, err := service.ConfirmPayment(ctx, bet.ID, paidAt)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.IsFailure() {
			t.Fatalf("expected failure, got %+v", result)
		}
		if result.Failure.Reason != "bet is cancelled" {
			t.Errorf("reason = %q", result.Failure.Reason)
		}
	})

	t.Run("redelivered confirmation is a no-op success", func(t *testing.T) {
		earlier := paidAt.Add(-time.Hour)
		bet := makeBet(sharedtypes.BetStatusPaid)
		bet.PaidAt = &earlier
		repo := NewFakeBetRepository()
		repo.GetBetFunc = func(_ context.Context, _ bun.IDB, _ sharedtypes.BetID) (*betdb.Bet, error) {
			return bet, nil
		}

		service := newTestBetService(repo)
		result, err := service.ConfirmPayment(ctx, bet.ID, paidAt)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.IsSuccess() {
			t.Fatalf("expected success, got %+v", result)
		}
		if !result.Success.PaidAt.Equal(earlier) {
			t.Errorf("paid at = %v, want original %v", result.Success.PaidAt, earlier)
		}
		for _, step := range repo.Trace() {
			if step == "MarkPaid" {
				t.Error("MarkPaid called on an already-paid bet")
			}
		}
	})

	t.Run("unknown bet is a business failure", func(t *testing.T) {
		repo := NewFakeBetRepository()

		service := newTestBetService(repo)
		result, err := service.ConfirmPayment(ctx, sharedtypes.BetID(uuid.New()), paidAt)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.IsFailure() || result.Failure.Reason != "bet not found" {
			t.Fatalf("expected bet-not-found failure, got %+v", result)
		}
	})
}
