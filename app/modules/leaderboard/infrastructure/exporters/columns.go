package exporters

import (
	"strconv"

	leaderboarddomain "github.com/Black-And-White-Club/pingpong-leaderboard/app/modules/leaderboard/domain"
)

// DisplayHeader labels the columns of every human-facing leaderboard view.
var DisplayHeader = []string{
	"Name",
	"Matches Played",
	"Matches Won",
	"Matches Lost",
	"Games Played",
	"Games Won",
	"Games Lost",
}

func displayRow(e leaderboarddomain.LeaderboardEntry) []string {
	return []string{
		e.Name,
		strconv.Itoa(e.MatchesPlayed),
		strconv.Itoa(e.MatchesWon),
		strconv.Itoa(e.MatchesLost),
		strconv.Itoa(e.GamesPlayed),
		strconv.Itoa(e.GamesWon),
		strconv.Itoa(e.GamesLost),
	}
}
