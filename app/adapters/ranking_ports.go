// Package adapters maps module services onto the narrow ports other modules
// consume, translating sentinels and unwrapping operation results at the
// seams.
package adapters

import (
	"context"
	"errors"
	"fmt"

	betservice "github.com/palpite-club/pool-backend/app/modules/bet/application"
	championservice "github.com/palpite-club/pool-backend/app/modules/champion/application"
	rankingservice "github.com/palpite-club/pool-backend/app/modules/ranking/application"
	roundservice "github.com/palpite-club/pool-backend/app/modules/round/application"
	rounddb "github.com/palpite-club/pool-backend/app/modules/round/infrastructure/repositories"
	userdb "github.com/palpite-club/pool-backend/app/modules/user/infrastructure/repositories"
	sharedtypes "github.com/palpite-club/pool-backend/app/shared/types"
)

// RoundPortAdapter exposes the round service to the ranking pipeline.
type RoundPortAdapter struct {
	Service roundservice.Service
}

var _ rankingservice.RoundPort = (*RoundPortAdapter)(nil)

func (a *RoundPortAdapter) GetRound(ctx context.Context, roundID sharedtypes.RoundID) (sharedtypes.RoundSnapshot, error) {
	snapshot, err := a.Service.GetRound(ctx, roundID)
	if err != nil {
		if errors.Is(err, rounddb.ErrRoundNotFound) {
			return sharedtypes.RoundSnapshot{}, rankingservice.ErrRoundNotFound
		}
		return sharedtypes.RoundSnapshot{}, err
	}
	return snapshot, nil
}

func (a *RoundPortAdapter) MarkFinalized(ctx context.Context, roundID sharedtypes.RoundID) error {
	return a.Service.MarkFinalized(ctx, roundID)
}

func (a *RoundPortAdapter) SetChampionSummary(ctx context.Context, roundID sharedtypes.RoundID, summary []sharedtypes.ChampionSummary) error {
	return a.Service.SetChampionSummary(ctx, roundID, summary)
}

// BetPortAdapter exposes the bet service to the ranking pipeline. Business
// failures from the scoring pass surface as plain errors here; the pipeline
// reports them as a failed step.
type BetPortAdapter struct {
	Service betservice.Service
}

var _ rankingservice.BetPort = (*BetPortAdapter)(nil)

func (a *BetPortAdapter) ScoreRoundBets(ctx context.Context, roundID sharedtypes.RoundID, matches []sharedtypes.Match) ([]sharedtypes.BetSnapshot, error) {
	result, err := a.Service.ScoreRoundBets(ctx, roundID, matches)
	if err != nil {
		return nil, err
	}
	if result.IsFailure() {
		return nil, fmt.Errorf("scoring pass rejected for round %s: %s", roundID, result.Failure.Reason)
	}
	return result.Success.Bets, nil
}

func (a *BetPortAdapter) ListActionableBets(ctx context.Context) ([]sharedtypes.BetSnapshot, error) {
	return a.Service.ListActionableBets(ctx)
}

func (a *BetPortAdapter) MarkChampions(ctx context.Context, roundID sharedtypes.RoundID, betIDs []sharedtypes.BetID) error {
	return a.Service.MarkChampions(ctx, roundID, betIDs)
}

// ChampionPortAdapter exposes the champion resolver to the ranking pipeline.
type ChampionPortAdapter struct {
	Service championservice.Service
}

var _ rankingservice.ChampionPort = (*ChampionPortAdapter)(nil)

func (a *ChampionPortAdapter) ResolveChampions(ctx context.Context, round sharedtypes.RoundSnapshot, entries []sharedtypes.RoundRankingEntry) (rankingservice.ChampionResolution, error) {
	summaries, betIDs, err := a.Service.ResolveChampions(ctx, round, entries)
	if err != nil {
		return rankingservice.ChampionResolution{}, err
	}
	return rankingservice.ChampionResolution{Summaries: summaries, BetIDs: betIDs}, nil
}

// ParticipantPortAdapter exposes the roster repository to the ranking
// pipeline.
type ParticipantPortAdapter struct {
	Repo userdb.Repository
}

var _ rankingservice.ParticipantPort = (*ParticipantPortAdapter)(nil)

func (a *ParticipantPortAdapter) ListParticipants(ctx context.Context) ([]sharedtypes.Participant, error) {
	records, err := a.Repo.ListParticipants(ctx, nil)
	if err != nil {
		return nil, err
	}
	participants := make([]sharedtypes.Participant, 0, len(records))
	for _, r := range records {
		participants = append(participants, r.Snapshot())
	}
	return participants, nil
}

func (a *ParticipantPortAdapter) UpdateStats(ctx context.Context, stats []sharedtypes.ParticipantStats) error {
	return a.Repo.UpdateStats(ctx, nil, stats)
}
