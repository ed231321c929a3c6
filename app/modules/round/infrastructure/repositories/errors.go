package rounddb

import "errors"

// Sentinel errors for the repository layer.
var (
	// ErrRoundNotFound indicates the requested round does not exist.
	ErrRoundNotFound = errors.New("round not found")

	// ErrDuplicateRoundNumber indicates the round number is already taken.
	ErrDuplicateRoundNumber = errors.New("round number already exists")

	// ErrMatchOrdinalOutOfRange indicates the match ordinal does not exist in
	// the round's slate.
	ErrMatchOrdinalOutOfRange = errors.New("match ordinal out of range")
)
