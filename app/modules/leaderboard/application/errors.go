package leaderboardservice

import "errors"

var (
	// ErrMissingInput is returned when a file the run reads from does not exist.
	// Nothing has been written when it is returned.
	ErrMissingInput = errors.New("input file not found")

	// ErrOverwriteDeclined is returned when the user chose to keep an existing
	// output file. The run stops cleanly without writing anything.
	ErrOverwriteDeclined = errors.New("overwrite declined")
)
