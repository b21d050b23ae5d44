package parsers

import (
	"fmt"
	"strconv"
	"strings"

	leaderboarddomain "github.com/Black-And-White-Club/pingpong-leaderboard/app/modules/leaderboard/domain"
)

// Export column headers. These must match the tracker export exactly.
const (
	ColPlayer1 = "Player 1"
	ColPlayer2 = "Player 2"
	ColCreated = "Created"
	ColSprint  = "Sprint"
)

// GameScoreColumn returns the header of the given game (1-based) and player (1 or 2).
func GameScoreColumn(game, player int) string {
	return fmt.Sprintf("Game %d Score (P%d)", game, player)
}

// ParseError reports a data row that could not be turned into a record.
// Line is the 1-based record number, counting the header as record 1.
type ParseError struct {
	Line   int
	Column string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Value == "" && e.Err == nil {
		return fmt.Sprintf("line %d: column %q: missing value", e.Line, e.Column)
	}
	return fmt.Sprintf("line %d: column %q: invalid value %q: %v", e.Line, e.Column, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// MatchColumns holds the resolved positions of the match export columns.
type MatchColumns struct {
	Player1 int
	Player2 int
	Created int
	Sprint  int
	// Scores[g][0] is player 1's score in game g, Scores[g][1] player 2's.
	Scores [leaderboarddomain.GamesPerMatch][2]int
}

// NewMatchColumns locates every mapped column in the header. Extra columns are
// ignored; a missing one is a ParseError on line 1.
func NewMatchColumns(header []string) (*MatchColumns, error) {
	positions := make(map[string]int, len(header))
	for i, name := range header {
		if _, dup := positions[name]; !dup {
			positions[name] = i
		}
	}

	find := func(name string) (int, error) {
		idx, ok := positions[name]
		if !ok {
			return -1, &ParseError{Line: 1, Column: name}
		}
		return idx, nil
	}

	var (
		cols MatchColumns
		err  error
	)
	if cols.Player1, err = find(ColPlayer1); err != nil {
		return nil, err
	}
	if cols.Player2, err = find(ColPlayer2); err != nil {
		return nil, err
	}
	if cols.Created, err = find(ColCreated); err != nil {
		return nil, err
	}
	if cols.Sprint, err = find(ColSprint); err != nil {
		return nil, err
	}
	for g := 0; g < leaderboarddomain.GamesPerMatch; g++ {
		for p := 0; p < 2; p++ {
			if cols.Scores[g][p], err = find(GameScoreColumn(g+1, p+1)); err != nil {
				return nil, err
			}
		}
	}

	return &cols, nil
}

// ParseMatchRecord converts one data row. line is used for error reporting only.
func (c *MatchColumns) ParseMatchRecord(row []string, line int) (leaderboarddomain.MatchRecord, error) {
	var m leaderboarddomain.MatchRecord

	text := func(idx int, name string) (string, error) {
		v, ok := cell(row, idx)
		if !ok {
			return "", &ParseError{Line: line, Column: name}
		}
		return v, nil
	}

	player := func(idx int, name string) (string, error) {
		v, err := text(idx, name)
		if err != nil {
			return "", err
		}
		v = trimSpaces(v)
		if v == "" {
			return "", &ParseError{Line: line, Column: name}
		}
		return v, nil
	}

	score := func(idx int, name string) (int, error) {
		v, err := text(idx, name)
		if err != nil {
			return 0, err
		}
		n, convErr := strconv.Atoi(strings.TrimSpace(v))
		if convErr != nil {
			return 0, &ParseError{Line: line, Column: name, Value: v, Err: convErr}
		}
		return n, nil
	}

	var err error
	if m.Player1, err = player(c.Player1, ColPlayer1); err != nil {
		return m, err
	}
	if m.Player2, err = player(c.Player2, ColPlayer2); err != nil {
		return m, err
	}
	if m.Created, err = text(c.Created, ColCreated); err != nil {
		return m, err
	}
	if m.Sprint, err = text(c.Sprint, ColSprint); err != nil {
		return m, err
	}

	for g := range m.Games {
		if m.Games[g].P1, err = score(c.Scores[g][0], GameScoreColumn(g+1, 1)); err != nil {
			return m, err
		}
		if m.Games[g].P2, err = score(c.Scores[g][1], GameScoreColumn(g+1, 2)); err != nil {
			return m, err
		}
	}

	return m, nil
}

// ParseMatchRecords converts a cleaned export, header first, into match records.
// It stops at the first malformed row.
func ParseMatchRecords(rows [][]string) ([]leaderboarddomain.MatchRecord, error) {
	if len(rows) == 0 {
		return nil, nil
	}

	cols, err := NewMatchColumns(rows[0])
	if err != nil {
		return nil, err
	}

	records := make([]leaderboarddomain.MatchRecord, 0, len(rows)-1)
	for i, row := range rows[1:] {
		m, err := cols.ParseMatchRecord(row, i+2)
		if err != nil {
			return nil, err
		}
		records = append(records, m)
	}

	return records, nil
}
