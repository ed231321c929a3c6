package userdb

import "errors"

var (
	// ErrParticipantNotFound indicates the participant does not exist.
	ErrParticipantNotFound = errors.New("participant not found")

	// ErrNicknameTaken indicates the nickname is already in use.
	ErrNicknameTaken = errors.New("nickname already taken")
)
