package user_test

import (
	"errors"
	"testing"

	userdb "github.com/palpite-club/pool-backend/app/modules/user/infrastructure/repositories"
	sharedtypes "github.com/palpite-club/pool-backend/app/shared/types"
	"github.com/palpite-club/pool-backend/integration_tests/testutils"
)

func TestUserRepository(t *testing.T) {
	env := testutils.NewTestEnvironment(t)
	gen := testutils.NewTestDataGenerator(42)
	repo := &userdb.UserDBImpl{DB: env.DB}

	t.Run("create and get round trip", func(t *testing.T) {
		participant := gen.Participant()
		if err := repo.CreateParticipant(env.Ctx, nil, participant); err != nil {
			t.Fatalf("CreateParticipant: %v", err)
		}

		got, err := repo.GetParticipant(env.Ctx, nil, participant.ID)
		if err != nil {
			t.Fatalf("GetParticipant: %v", err)
		}
		if got.Nickname != participant.Nickname {
			t.Errorf("nickname mismatch: %q vs %q", got.Nickname, participant.Nickname)
		}
	})

	t.Run("duplicate nickname rejected", func(t *testing.T) {
		first := gen.Participant()
		if err := repo.CreateParticipant(env.Ctx, nil, first); err != nil {
			t.Fatalf("CreateParticipant: %v", err)
		}

		duplicate := gen.Participant()
		duplicate.Nickname = first.Nickname
		if err := repo.CreateParticipant(env.Ctx, nil, duplicate); !errors.Is(err, userdb.ErrNicknameTaken) {
			t.Errorf("expected ErrNicknameTaken, got %v", err)
		}
	})

	t.Run("unknown participant yields not found", func(t *testing.T) {
		missing := gen.Participant()
		if _, err := repo.GetParticipant(env.Ctx, nil, missing.ID); !errors.Is(err, userdb.ErrParticipantNotFound) {
			t.Errorf("expected ErrParticipantNotFound, got %v", err)
		}
	})

	t.Run("stats rollup writes only the batch", func(t *testing.T) {
		updated := gen.Participant()
		untouched := gen.Participant()
		untouched.RoundsPlayed = 3
		untouched.TotalPoints = 21
		for _, p := range []*userdb.Participant{updated, untouched} {
			if err := repo.CreateParticipant(env.Ctx, nil, p); err != nil {
				t.Fatalf("CreateParticipant: %v", err)
			}
		}

		stats := []sharedtypes.ParticipantStats{
			{ParticipantID: updated.ID, RoundsPlayed: 2, TotalPoints: 16},
		}
		if err := repo.UpdateStats(env.Ctx, nil, stats); err != nil {
			t.Fatalf("UpdateStats: %v", err)
		}

		got, err := repo.GetParticipant(env.Ctx, nil, updated.ID)
		if err != nil {
			t.Fatalf("GetParticipant: %v", err)
		}
		if got.RoundsPlayed != 2 || got.TotalPoints != 16 {
			t.Errorf("rollup not applied: %+v", got)
		}

		other, err := repo.GetParticipant(env.Ctx, nil, untouched.ID)
		if err != nil {
			t.Fatalf("GetParticipant untouched: %v", err)
		}
		if other.RoundsPlayed != 3 || other.TotalPoints != 21 {
			t.Errorf("participant outside the batch was modified: %+v", other)
		}
	})
}
