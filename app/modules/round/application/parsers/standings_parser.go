package parsers

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	leaderboarddomain "github.com/Black-And-White-Club/pingpong-leaderboard/app/modules/leaderboard/domain"
)

// StandingsHeader is the column layout of a computed leaderboard file.
var StandingsHeader = []string{
	"name",
	"group",
	"matches_played",
	"matches_won",
	"matches_lost",
	"games_played",
	"games_won",
	"games_lost",
}

// ParseStandings reads a previously written leaderboard back into standings.
//
// Columns may appear in any order but must be exactly the leaderboard columns.
// Blank counters read as zero and a blank group as the default group. A name
// that appears twice keeps the later row.
func ParseStandings(rows [][]string) (leaderboarddomain.Standings, error) {
	standings := make(leaderboarddomain.Standings)
	if len(rows) == 0 {
		return standings, nil
	}

	positions, err := standingsColumns(rows[0])
	if err != nil {
		return nil, err
	}

	for i, row := range rows[1:] {
		line := i + 2
		p, err := parseStandingRow(row, positions, line)
		if err != nil {
			return nil, err
		}
		standings[p.Name] = p
	}

	return standings, nil
}

func standingsColumns(header []string) (map[string]int, error) {
	positions := make(map[string]int, len(header))
	for i, name := range header {
		if !slices.Contains(StandingsHeader, name) {
			return nil, &ParseError{Line: 1, Column: name, Value: name, Err: fmt.Errorf("unexpected leaderboard column")}
		}
		if _, dup := positions[name]; dup {
			return nil, &ParseError{Line: 1, Column: name, Value: name, Err: fmt.Errorf("duplicate leaderboard column")}
		}
		positions[name] = i
	}
	for _, name := range StandingsHeader {
		if _, ok := positions[name]; !ok {
			return nil, &ParseError{Line: 1, Column: name}
		}
	}
	return positions, nil
}

func parseStandingRow(row []string, positions map[string]int, line int) (*leaderboarddomain.PlayerStanding, error) {
	get := func(col string) (string, error) {
		v, ok := cell(row, positions[col])
		if !ok {
			return "", &ParseError{Line: line, Column: col}
		}
		return v, nil
	}

	counter := func(col string) (int, error) {
		v, err := get(col)
		if err != nil {
			return 0, err
		}
		v = strings.TrimSpace(v)
		if v == "" {
			return 0, nil
		}
		n, convErr := strconv.Atoi(v)
		if convErr != nil {
			return 0, &ParseError{Line: line, Column: col, Value: v, Err: convErr}
		}
		return n, nil
	}

	name, err := get("name")
	if err != nil {
		return nil, err
	}
	if name == "" {
		return nil, &ParseError{Line: line, Column: "name"}
	}

	group, err := get("group")
	if err != nil {
		return nil, err
	}
	if group == "" {
		group = leaderboarddomain.DefaultGroup
	}

	p := &leaderboarddomain.PlayerStanding{Name: name, Group: group}
	targets := []struct {
		col string
		dst *int
	}{
		{"matches_played", &p.MatchesPlayed},
		{"matches_won", &p.MatchesWon},
		{"matches_lost", &p.MatchesLost},
		{"games_played", &p.GamesPlayed},
		{"games_won", &p.GamesWon},
		{"games_lost", &p.GamesLost},
	}
	for _, t := range targets {
		if *t.dst, err = counter(t.col); err != nil {
			return nil, err
		}
	}
	p.RecomputePlayed()

	return p, nil
}

// StandingRow formats a standing in StandingsHeader order.
func StandingRow(p leaderboarddomain.PlayerStanding) []string {
	return []string{
		p.Name,
		p.Group,
		strconv.Itoa(p.MatchesPlayed),
		strconv.Itoa(p.MatchesWon),
		strconv.Itoa(p.MatchesLost),
		strconv.Itoa(p.GamesPlayed),
		strconv.Itoa(p.GamesWon),
		strconv.Itoa(p.GamesLost),
	}
}
