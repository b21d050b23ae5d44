package leaderboarddomain

// GamesPerMatch is the fixed number of games played in every match.
const GamesPerMatch = 3

// DefaultGroup is assigned to players first seen in match results.
const DefaultGroup = "1"

// GameScore holds the points each side scored in a single game.
type GameScore struct {
	P1 int
	P2 int
}

// MatchRecord is one cleaned row of the exported match results.
// Created and Sprint are carried through but take no part in aggregation.
type MatchRecord struct {
	Player1 string
	Player2 string
	Games   [GamesPerMatch]GameScore
	Created string
	Sprint  string
}

// PlayerStanding is the cumulative record of a single player.
type PlayerStanding struct {
	Name          string
	Group         string
	MatchesPlayed int
	MatchesWon    int
	MatchesLost   int
	GamesPlayed   int
	GamesWon      int
	GamesLost     int
}

// NewPlayerStanding returns a zeroed standing in the default group.
func NewPlayerStanding(name string) *PlayerStanding {
	return &PlayerStanding{Name: name, Group: DefaultGroup}
}

// Standings maps a player name to that player's standing. Names are the only key.
type Standings map[string]*PlayerStanding

// LeaderboardEntry is a standing with its 1-based position on the leaderboard.
type LeaderboardEntry struct {
	Rank int
	PlayerStanding
}

// Consistent reports whether the played counters equal won plus lost.
func (p PlayerStanding) Consistent() bool {
	return p.MatchesPlayed == p.MatchesWon+p.MatchesLost &&
		p.GamesPlayed == p.GamesWon+p.GamesLost
}

// RecomputePlayed sets both played counters to won plus lost.
func (p *PlayerStanding) RecomputePlayed() {
	p.MatchesPlayed = p.MatchesWon + p.MatchesLost
	p.GamesPlayed = p.GamesWon + p.GamesLost
}
