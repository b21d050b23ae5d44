package leaderboarddomain

import (
	"cmp"
	"slices"
)

// CompareStandings orders standings by matches won (descending), then games won
// (descending), then name (ascending, byte-wise).
func CompareStandings(a, b *PlayerStanding) int {
	if c := cmp.Compare(b.MatchesWon, a.MatchesWon); c != 0 {
		return c
	}
	if c := cmp.Compare(b.GamesWon, a.GamesWon); c != 0 {
		return c
	}
	return cmp.Compare(a.Name, b.Name)
}

// Rank sorts the standings into leaderboard order and numbers them from 1.
// Entries are copies; the standings map is left untouched.
func Rank(standings Standings) []LeaderboardEntry {
	sorted := make([]*PlayerStanding, 0, len(standings))
	for _, p := range standings {
		sorted = append(sorted, p)
	}

	slices.SortFunc(sorted, CompareStandings)

	entries := make([]LeaderboardEntry, len(sorted))
	for i, p := range sorted {
		entries[i] = LeaderboardEntry{
			Rank:           i + 1,
			PlayerStanding: *p,
		}
	}

	return entries
}
