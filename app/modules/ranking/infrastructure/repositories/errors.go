package rankingdb

import "errors"

var (
	// ErrSnapshotNotFound is returned when no snapshot exists for the key.
	ErrSnapshotNotFound = errors.New("ranking snapshot not found")

	// ErrSnapshotConflict is returned when a concurrent writer raced the
	// replace. The pipeline retries the step once before surfacing it.
	ErrSnapshotConflict = errors.New("ranking snapshot write conflict")
)
