package exporters

import (
	"io"

	leaderboarddomain "github.com/Black-And-White-Club/pingpong-leaderboard/app/modules/leaderboard/domain"
	"github.com/Black-And-White-Club/pingpong-leaderboard/app/modules/round/application/parsers"
)

// WriteStandingsCSV writes the leaderboard in the same layout the prior
// leaderboard reader accepts, so a run's output can seed the next run.
func WriteStandingsCSV(w io.Writer, entries []leaderboarddomain.LeaderboardEntry) error {
	rows := make([][]string, 0, len(entries)+1)
	rows = append(rows, parsers.StandingsHeader)
	for _, e := range entries {
		rows = append(rows, parsers.StandingRow(e.PlayerStanding))
	}
	return parsers.WriteCSV(w, rows)
}
