package roundservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
	"github.com/uptrace/bun"

	roundevents "github.com/palpite-club/pool-backend/app/modules/round/domain/events"
	rounddb "github.com/palpite-club/pool-backend/app/modules/round/infrastructure/repositories"
	"github.com/palpite-club/pool-backend/app/shared/attr"
	"github.com/palpite-club/pool-backend/app/shared/results"
	sharedtypes "github.com/palpite-club/pool-backend/app/shared/types"
)

// kickoffParser handles natural-language kickoff entries. Shared and
// stateless, safe for concurrent use.
var kickoffParser = func() *when.Parser {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return w
}()

// parseKickoff accepts RFC3339 first, then natural language relative to now.
func parseKickoff(raw string, now time.Time) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	r, err := kickoffParser.Parse(raw, now)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse kickoff %q: %w", raw, err)
	}
	if r == nil {
		return time.Time{}, fmt.Errorf("unrecognized kickoff time %q", raw)
	}
	return r.Time, nil
}

// CreateRound creates a round from the requested match slate, assigning
// 1-based ordinals, and schedules the betting-deadline job.
func (s *RoundService) CreateRound(ctx context.Context, payload roundevents.CreateRoundRequestedPayloadV1) (results.OperationResult[roundevents.RoundCreatedPayloadV1, roundevents.RoundCreationFailedPayloadV1], error) {
	return withTelemetry(s, ctx, "CreateRound", attr.Int("round_number", payload.Number),
		func(ctx context.Context) (results.OperationResult[roundevents.RoundCreatedPayloadV1, roundevents.RoundCreationFailedPayloadV1], error) {
			fail := func(reason string) results.OperationResult[roundevents.RoundCreatedPayloadV1, roundevents.RoundCreationFailedPayloadV1] {
				return results.Failure[roundevents.RoundCreatedPayloadV1](roundevents.RoundCreationFailedPayloadV1{
					Number: payload.Number,
					Reason: reason,
				})
			}

			if len(payload.Matches) == 0 {
				return fail("round needs at least one match"), nil
			}
			if payload.Kind != sharedtypes.RoundKindCash && payload.Kind != sharedtypes.RoundKindGiveaway {
				return fail(fmt.Sprintf("unknown round kind %q", payload.Kind)), nil
			}

			now := time.Now()
			matches := make([]sharedtypes.Match, len(payload.Matches))
			for i, in := range payload.Matches {
				kickoff, err := parseKickoff(in.Kickoff, now)
				if err != nil {
					return fail(err.Error()), nil
				}
				matches[i] = sharedtypes.Match{
					HomeTeam:  in.HomeTeam,
					AwayTeam:  in.AwayTeam,
					KickoffAt: kickoff,
					Venue:     in.Venue,
					Ordinal:   i + 1,
				}
			}

			round := &rounddb.Round{
				Number:      payload.Number,
				Name:        payload.Name,
				Kind:        payload.Kind,
				State:       sharedtypes.RoundStateActive,
				Matches:     matches,
				BetsCloseAt: payload.BetsCloseAt,
			}

			result, err := runInTx(s, ctx, func(ctx context.Context, db bun.IDB) (results.OperationResult[roundevents.RoundCreatedPayloadV1, roundevents.RoundCreationFailedPayloadV1], error) {
				if err := s.repo.CreateRound(ctx, db, round); err != nil {
					if errors.Is(err, rounddb.ErrDuplicateRoundNumber) {
						return fail("round number already exists"), nil
					}
					return results.OperationResult[roundevents.RoundCreatedPayloadV1, roundevents.RoundCreationFailedPayloadV1]{}, err
				}
				return results.Success[roundevents.RoundCreatedPayloadV1, roundevents.RoundCreationFailedPayloadV1](roundevents.RoundCreatedPayloadV1{
					RoundID:     round.ID,
					Number:      round.Number,
					Name:        round.Name,
					MatchCount:  len(round.Matches),
					BetsCloseAt: round.BetsCloseAt,
				}), nil
			})
			if err != nil || result.IsFailure() {
				return result, err
			}

			// Deadline job sits outside the transaction: River has its own
			// pool, and a missed schedule is recoverable by re-issuing.
			if s.queue != nil {
				if err := s.queue.ScheduleBettingClose(ctx, round.ID, round.BetsCloseAt); err != nil {
					s.logger.ErrorContext(ctx, "Failed to schedule betting close job",
						attr.RoundID("round_id", round.ID),
						attr.Error(err),
					)
				}
			}

			return result, nil
		})
}
