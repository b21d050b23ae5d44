package testutils

import (
	"strconv"
	"time"

	leaderboarddomain "github.com/Black-And-White-Club/pingpong-leaderboard/app/modules/leaderboard/domain"
	"github.com/brianvoe/gofakeit/v7"
)

// ExportHeader is the column layout of a Jira match-results export.
var ExportHeader = []string{
	"Summary", "Issue key", "Issue Type", "Status", "Assignee",
	"Player 1", "Player 2", "Created", "Resolved",
	"Game 1 Score (P1)", "Game 2 Score (P1)", "Game 3 Score (P1)",
	"Game 1 Score (P2)", "Game 2 Score (P2)", "Game 3 Score (P2)",
	"Sprint",
}

// TestDataGenerator provides methods to create match data for tests
type TestDataGenerator struct {
	faker *gofakeit.Faker
	seed  int64
}

// NewTestDataGenerator creates a new test data generator with optional seed
func NewTestDataGenerator(seed ...int64) *TestDataGenerator {
	var s int64
	if len(seed) > 0 {
		s = seed[0]
	} else {
		s = time.Now().UnixNano()
	}

	return &TestDataGenerator{
		faker: gofakeit.New(uint64(s)),
		seed:  s,
	}
}

// Seed returns the seed used by the generator so failures can be replayed.
func (g *TestDataGenerator) Seed() int64 {
	return g.seed
}

// GeneratePlayers returns count distinct player names.
func (g *TestDataGenerator) GeneratePlayers(count int) []string {
	seen := make(map[string]struct{}, count)
	players := make([]string, 0, count)
	for len(players) < count {
		name := g.faker.FirstName() + " " + g.faker.LastName()
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		players = append(players, name)
	}
	return players
}

// GenerateMatch picks two different players and plays three games between them.
// Scores never tie, so every game has a winner.
func (g *TestDataGenerator) GenerateMatch(players []string) leaderboarddomain.MatchRecord {
	i := g.faker.Number(0, len(players)-1)
	j := g.faker.Number(0, len(players)-2)
	if j >= i {
		j++
	}

	var games [leaderboarddomain.GamesPerMatch]leaderboarddomain.GameScore
	for k := range games {
		winner := 11
		loser := g.faker.Number(0, 9)
		if g.faker.Bool() {
			games[k] = leaderboarddomain.GameScore{P1: winner, P2: loser}
		} else {
			games[k] = leaderboarddomain.GameScore{P1: loser, P2: winner}
		}
	}

	return leaderboarddomain.MatchRecord{
		Player1: players[i],
		Player2: players[j],
		Games:   games,
		Created: g.faker.Date().Format("02/Jan/06 3:04 PM"),
		Sprint:  "Season 1 Round " + strconv.Itoa(g.faker.Number(1, 4)),
	}
}

// GenerateMatches creates count matches among the given players.
func (g *TestDataGenerator) GenerateMatches(count int, players []string) []leaderboarddomain.MatchRecord {
	matches := make([]leaderboarddomain.MatchRecord, count)
	for i := range matches {
		matches[i] = g.GenerateMatch(players)
	}
	return matches
}

// ExportRows renders matches the way the tracker exports them, header first.
// When withBlankRows is set, fully empty ticket rows are scattered between them.
func (g *TestDataGenerator) ExportRows(matches []leaderboarddomain.MatchRecord, withBlankRows bool) [][]string {
	rows := [][]string{append([]string(nil), ExportHeader...)}
	for _, m := range matches {
		if withBlankRows && g.faker.Bool() {
			rows = append(rows, g.blankTicketRow())
		}
		rows = append(rows, []string{
			g.faker.Sentence(3),
			"TT-" + strconv.Itoa(g.faker.Number(1, 999)),
			"Task",
			"Done",
			g.faker.FirstName(),
			m.Player1,
			m.Player2,
			m.Created,
			m.Created,
			strconv.Itoa(m.Games[0].P1),
			strconv.Itoa(m.Games[1].P1),
			strconv.Itoa(m.Games[2].P1),
			strconv.Itoa(m.Games[0].P2),
			strconv.Itoa(m.Games[1].P2),
			strconv.Itoa(m.Games[2].P2),
			m.Sprint,
		})
	}
	return rows
}

// blankTicketRow is a ticket that was opened but never had a result recorded.
func (g *TestDataGenerator) blankTicketRow() []string {
	row := make([]string, len(ExportHeader))
	row[0] = g.faker.Sentence(2)
	row[1] = "TT-" + strconv.Itoa(g.faker.Number(1000, 1999))
	row[2] = "Task"
	row[3] = "To Do"
	return row
}
