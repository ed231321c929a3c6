package roundservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	roundevents "github.com/palpite-club/pool-backend/app/modules/round/domain/events"
	rounddb "github.com/palpite-club/pool-backend/app/modules/round/infrastructure/repositories"
	sharedtypes "github.com/palpite-club/pool-backend/app/shared/types"
)

func testRound(roundID sharedtypes.RoundID, matchCount int) *rounddb.Round {
	matches := make([]sharedtypes.Match, matchCount)
	for i := range matches {
		matches[i] = sharedtypes.Match{
			HomeTeam:  "Home",
			AwayTeam:  "Away",
			KickoffAt: time.Date(2026, 4, 10, 16, 0, 0, 0, time.UTC),
			Ordinal:   i + 1,
		}
	}
	return &rounddb.Round{
		ID:          roundID,
		Number:      7,
		Name:        "Rodada 7",
		Kind:        sharedtypes.RoundKindCash,
		State:       sharedtypes.RoundStateActive,
		Matches:     matches,
		BetsCloseAt: time.Date(2026, 4, 10, 15, 0, 0, 0, time.UTC),
	}
}

func TestRoundService_UpdateMatchScore(t *testing.T) {
	ctx := context.Background()
	roundID := sharedtypes.RoundID(uuid.New())

	payload := func(ordinal, home, away int, finalized bool) roundevents.MatchScoreUpdateRequestedPayloadV1 {
		return roundevents.MatchScoreUpdateRequestedPayloadV1{
			RoundID:      roundID,
			MatchOrdinal: ordinal,
			HomeScore:    home,
			AwayScore:    away,
			Finalized:    finalized,
		}
	}

	t.Run("writes score onto the addressed match", func(t *testing.T) {
		repo := NewFakeRoundRepository()
		repo.GetRoundFunc = func(_ context.Context, _ bun.IDB, _ sharedtypes.RoundID) (*rounddb.Round, error) {
			return testRound(roundID, 3), nil
		}

		service := newTestRoundService(repo, nil)
		result, err := service.UpdateMatchScore(ctx, payload(2, 3, 1, true))
		if err != nil {
			t.Fatalf("UpdateMatchScore returned error: %v", err)
		}
		if !result.IsSuccess() {
			t.Fatalf("expected success, got failure: %+v", result.Failure)
		}

		matches := repo.LastMatches[roundID]
		if matches == nil {
			t.Fatal("expected UpdateMatches to be called")
		}
		m := matches[1]
		if m.HomeScore == nil || *m.HomeScore != 3 {
			t.Errorf("HomeScore = %v, want 3", m.HomeScore)
		}
		if m.AwayScore == nil || *m.AwayScore != 1 {
			t.Errorf("AwayScore = %v, want 1", m.AwayScore)
		}
		if !m.Finalized {
			t.Error("expected match to be finalized")
		}
		if matches[0].HomeScore != nil || matches[2].HomeScore != nil {
			t.Error("other matches must stay untouched")
		}
	})

	t.Run("ordinal out of range", func(t *testing.T) {
		for _, ordinal := range []int{0, 4, -1} {
			repo := NewFakeRoundRepository()
			repo.GetRoundFunc = func(_ context.Context, _ bun.IDB, _ sharedtypes.RoundID) (*rounddb.Round, error) {
				return testRound(roundID, 3), nil
			}

			service := newTestRoundService(repo, nil)
			result, err := service.UpdateMatchScore(ctx, payload(ordinal, 1, 0, false))
			if err != nil {
				t.Fatalf("ordinal %d: UpdateMatchScore returned error: %v", ordinal, err)
			}
			if !result.IsFailure() {
				t.Errorf("ordinal %d: expected failure", ordinal)
			}
		}
	})

	t.Run("negative scores rejected", func(t *testing.T) {
		repo := NewFakeRoundRepository()
		repo.GetRoundFunc = func(_ context.Context, _ bun.IDB, _ sharedtypes.RoundID) (*rounddb.Round, error) {
			return testRound(roundID, 1), nil
		}

		service := newTestRoundService(repo, nil)
		result, err := service.UpdateMatchScore(ctx, payload(1, -1, 0, false))
		if err != nil {
			t.Fatalf("UpdateMatchScore returned error: %v", err)
		}
		if !result.IsFailure() {
			t.Fatal("expected failure for negative score")
		}
	})

	t.Run("round not found", func(t *testing.T) {
		service := newTestRoundService(NewFakeRoundRepository(), nil)
		result, err := service.UpdateMatchScore(ctx, payload(1, 1, 1, false))
		if err != nil {
			t.Fatalf("UpdateMatchScore returned error: %v", err)
		}
		if !result.IsFailure() {
			t.Fatal("expected failure for unknown round")
		}
		if result.Failure.Reason != "round not found" {
			t.Errorf("Reason = %q", result.Failure.Reason)
		}
	})

	t.Run("repository infrastructure error propagates", func(t *testing.T) {
		repo := NewFakeRoundRepository()
		repo.GetRoundFunc = func(_ context.Context, _ bun.IDB, _ sharedtypes.RoundID) (*rounddb.Round, error) {
			return nil, errors.New("connection reset")
		}

		service := newTestRoundService(repo, nil)
		_, err := service.UpdateMatchScore(ctx, payload(1, 1, 1, false))
		if err == nil {
			t.Fatal("expected error from repository failure")
		}
	})
}

func TestRoundService_MarkFinalized(t *testing.T) {
	ctx := context.Background()
	roundID := sharedtypes.RoundID(uuid.New())

	repo := NewFakeRoundRepository()
	var gotState sharedtypes.RoundState
	var gotFinalizedAt *time.Time
	repo.UpdateRoundStateFunc = func(_ context.Context, _ bun.IDB, _ sharedtypes.RoundID, state sharedtypes.RoundState, finalizedAt *time.Time) error {
		gotState = state
		gotFinalizedAt = finalizedAt
		return nil
	}

	service := newTestRoundService(repo, nil)
	if err := service.MarkFinalized(ctx, roundID); err != nil {
		t.Fatalf("MarkFinalized returned error: %v", err)
	}
	if gotState != sharedtypes.RoundStateFinalized {
		t.Errorf("state = %q, want %q", gotState, sharedtypes.RoundStateFinalized)
	}
	if gotFinalizedAt == nil {
		t.Error("expected a finalized timestamp")
	}
}
