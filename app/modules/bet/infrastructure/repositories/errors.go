package betdb

import "errors"

// Sentinel errors for the repository layer.
var (
	// ErrBetNotFound indicates the requested bet does not exist.
	ErrBetNotFound = errors.New("bet not found")

	// ErrNoRowsAffected indicates an UPDATE matched no rows.
	ErrNoRowsAffected = errors.New("no rows affected")
)
