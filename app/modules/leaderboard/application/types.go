package leaderboardservice

import (
	leaderboarddomain "github.com/Black-And-White-Club/pingpong-leaderboard/app/modules/leaderboard/domain"
)

// RunRequest describes one leaderboard calculation.
//
// Relative output names and the previous leaderboard path are resolved against
// the base folder, which defaults to the directory of the input file. When
// BaseFolder is set, a relative input path is resolved against it too.
type RunRequest struct {
	InputPath        string
	PreviousPath     string
	BaseFolder       string
	RequiredPrefixes []string

	OutputFile string
	HTMLFile   string
	XLSXFile   string
	ChartFile  string
	Chart      ChartOptions
}

// CleanRequest describes a standalone cleaning pass.
type CleanRequest struct {
	InputPath        string
	OutputPath       string
	RequiredPrefixes []string
}

// RunResult reports what a run computed and where it was written.
// Paths of outputs that were not requested or not written are empty.
type RunResult struct {
	Leaderboard      []leaderboarddomain.LeaderboardEntry
	MatchesProcessed int
	OutputPath       string
	HTMLPath         string
	XLSXPath         string
	ChartPath        string
}
