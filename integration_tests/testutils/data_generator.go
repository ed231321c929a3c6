package testutils

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"

	betdb "github.com/palpite-club/pool-backend/app/modules/bet/infrastructure/repositories"
	rounddb "github.com/palpite-club/pool-backend/app/modules/round/infrastructure/repositories"
	userdb "github.com/palpite-club/pool-backend/app/modules/user/infrastructure/repositories"
	sharedtypes "github.com/palpite-club/pool-backend/app/shared/types"
)

// TestDataGenerator builds seeded domain fixtures for the repository tests.
type TestDataGenerator struct {
	faker *gofakeit.Faker
}

// NewTestDataGenerator creates a generator with an optional seed for
// reproducible fixtures.
func NewTestDataGenerator(seed ...uint64) *TestDataGenerator {
	var s uint64
	if len(seed) > 0 {
		s = seed[0]
	} else {
		s = uint64(time.Now().UnixNano())
	}
	return &TestDataGenerator{faker: gofakeit.New(s)}
}

// Participant builds a roster member with a unique nickname.
func (g *TestDataGenerator) Participant() *userdb.Participant {
	return &userdb.Participant{
		ID:           sharedtypes.ParticipantID(uuid.New()),
		Nickname:     fmt.Sprintf("%s-%s", g.faker.Username(), uuid.NewString()[:8]),
		FavoriteTeam: g.faker.RandomString([]string{"Flamengo", "Vasco", "Santos", "Palmeiras", ""}),
	}
}

// Round builds an active round with the given number of unfinalized matches.
func (g *TestDataGenerator) Round(number, matchCount int) *rounddb.Round {
	matches := make([]sharedtypes.Match, matchCount)
	kickoff := time.Now().Add(48 * time.Hour).Truncate(time.Second)
	for i := range matches {
		matches[i] = sharedtypes.Match{
			HomeTeam:  g.faker.City(),
			AwayTeam:  g.faker.City(),
			KickoffAt: kickoff.Add(time.Duration(i) * 2 * time.Hour),
			Ordinal:   i + 1,
		}
	}
	return &rounddb.Round{
		ID:          sharedtypes.RoundID(uuid.New()),
		Number:      number,
		Name:        fmt.Sprintf("Rodada %d", number),
		Kind:        sharedtypes.RoundKindCash,
		State:       sharedtypes.RoundStateActive,
		Matches:     matches,
		BetsCloseAt: kickoff.Add(-time.Hour),
	}
}

// Bet builds an active bet with one line of string guesses, one per match.
func (g *TestDataGenerator) Bet(roundID sharedtypes.RoundID, participantID sharedtypes.ParticipantID, matchCount int) *betdb.Bet {
	guesses := make([]sharedtypes.Guess, matchCount)
	for i := range guesses {
		guesses[i] = sharedtypes.Guess{
			Raw: fmt.Sprintf("%dx%d", g.faker.Number(0, 4), g.faker.Number(0, 4)),
		}
	}
	return &betdb.Bet{
		ID:            sharedtypes.BetID(uuid.New()),
		RoundID:       roundID,
		ParticipantID: participantID,
		TicketNumber:  int64(g.faker.Number(1000, 999999)),
		AmountCents:   1500,
		Kind:          sharedtypes.BetKindCash,
		Status:        sharedtypes.BetStatusActive,
		Lines:         []sharedtypes.PredictionLine{{Number: 1, Guesses: guesses}},
	}
}
