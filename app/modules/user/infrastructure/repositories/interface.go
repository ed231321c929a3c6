package userdb

import (
	"context"

	"github.com/uptrace/bun"

	sharedtypes "github.com/palpite-club/pool-backend/app/shared/types"
)

// Repository defines the contract for the participant roster. The ranking
// pipeline is the main consumer: it reads the roster for nicknames and team
// affinity, and writes the derived stats rollup back after each recompute.
type Repository interface {
	// CreateParticipant adds a roster member. ErrNicknameTaken on duplicates.
	CreateParticipant(ctx context.Context, db bun.IDB, participant *Participant) error

	// GetParticipant retrieves one roster member.
	GetParticipant(ctx context.Context, db bun.IDB, participantID sharedtypes.ParticipantID) (*Participant, error)

	// ListParticipants returns the full roster ordered by nickname.
	ListParticipants(ctx context.Context, db bun.IDB) ([]*Participant, error)

	// UpdateStats writes the derived per-participant rollups. Participants
	// absent from the batch keep their current values.
	UpdateStats(ctx context.Context, db bun.IDB, stats []sharedtypes.ParticipantStats) error
}
