package championdb

import "errors"

var (
	// ErrChampionNotFound is returned when no champion record exists.
	ErrChampionNotFound = errors.New("champion not found")

	// ErrNoRowsAffected is returned when a guarded status update matched no
	// rows, meaning the record was not in the expected state.
	ErrNoRowsAffected = errors.New("no rows affected")
)
