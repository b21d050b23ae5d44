package leaderboardservice

import (
	"context"
)

// Service defines the contract for leaderboard operations.
type Service interface {
	// Run cleans the round results, merges them into any prior leaderboard,
	// ranks the players and writes the outputs.
	Run(ctx context.Context, req RunRequest) (*RunResult, error)

	// Clean runs only the record cleaner and writes the cleaned export.
	Clean(ctx context.Context, req CleanRequest) error
}

// Confirmer decides whether an existing output file may be replaced.
type Confirmer interface {
	ConfirmOverwrite(ctx context.Context, path string) (bool, error)
}
