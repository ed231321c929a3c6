package sharedtypes

import (
	"github.com/google/uuid"
)

// RoundID is the unique identifier for a round.
type RoundID uuid.UUID

func (id RoundID) String() string {
	return uuid.UUID(id).String()
}

func (id RoundID) IsNil() bool {
	return uuid.UUID(id) == uuid.Nil
}

// MarshalText implements encoding.TextMarshaler so RoundID serializes as a
// plain UUID string in JSON payloads and bun queries.
func (id RoundID) MarshalText() ([]byte, error) {
	return []byte(uuid.UUID(id).String()), nil
}

func (id *RoundID) UnmarshalText(data []byte) error {
	parsed, err := uuid.Parse(string(data))
	if err != nil {
		return err
	}
	*id = RoundID(parsed)
	return nil
}

// BetID is the unique identifier for a bet.
type BetID uuid.UUID

func (id BetID) String() string {
	return uuid.UUID(id).String()
}

func (id BetID) MarshalText() ([]byte, error) {
	return []byte(uuid.UUID(id).String()), nil
}

func (id *BetID) UnmarshalText(data []byte) error {
	parsed, err := uuid.Parse(string(data))
	if err != nil {
		return err
	}
	*id = BetID(parsed)
	return nil
}

// ParticipantID is the unique identifier for a participant.
type ParticipantID uuid.UUID

func (id ParticipantID) String() string {
	return uuid.UUID(id).String()
}

func (id ParticipantID) MarshalText() ([]byte, error) {
	return []byte(uuid.UUID(id).String()), nil
}

func (id *ParticipantID) UnmarshalText(data []byte) error {
	parsed, err := uuid.Parse(string(data))
	if err != nil {
		return err
	}
	*id = ParticipantID(parsed)
	return nil
}

// ChampionID is the unique identifier for a champion record.
type ChampionID uuid.UUID

func (id ChampionID) String() string {
	return uuid.UUID(id).String()
}

func (id ChampionID) MarshalText() ([]byte, error) {
	return []byte(uuid.UUID(id).String()), nil
}

func (id *ChampionID) UnmarshalText(data []byte) error {
	parsed, err := uuid.Parse(string(data))
	if err != nil {
		return err
	}
	*id = ChampionID(parsed)
	return nil
}
