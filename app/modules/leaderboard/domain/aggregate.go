package leaderboarddomain

// GamesWonByPlayer1 counts the games in which player 1 scored strictly more
// points than player 2. A tied game is credited to nobody.
func GamesWonByPlayer1(m MatchRecord) int {
	won := 0
	for _, g := range m.Games {
		if g.P1 > g.P2 {
			won++
		}
	}
	return won
}

// Player1WonMatch reports whether player 1 took at least two of the three games.
// Any other outcome awards the match to player 2.
func Player1WonMatch(gamesWon int) bool {
	return gamesWon >= 2
}

// Aggregate folds the match records into standings in input order.
//
// A nil standings map starts an empty leaderboard. The map is updated in place
// and returned so callers can chain a prior leaderboard straight into ranking.
// Player 2's games are the complement of player 1's wins, so a tied game lands
// in player 1's losses and player 2's wins.
func Aggregate(records []MatchRecord, standings Standings) Standings {
	if standings == nil {
		standings = make(Standings)
	}

	for _, m := range records {
		p1 := standings.lookupOrCreate(m.Player1)
		p2 := standings.lookupOrCreate(m.Player2)

		won := GamesWonByPlayer1(m)

		p1.GamesWon += won
		p1.GamesLost += GamesPerMatch - won
		p2.GamesWon += GamesPerMatch - won
		p2.GamesLost += won

		if Player1WonMatch(won) {
			p1.MatchesWon++
			p2.MatchesLost++
		} else {
			p2.MatchesWon++
			p1.MatchesLost++
		}

		p1.RecomputePlayed()
		p2.RecomputePlayed()
	}

	return standings
}

func (s Standings) lookupOrCreate(name string) *PlayerStanding {
	if p, ok := s[name]; ok {
		return p
	}
	p := NewPlayerStanding(name)
	s[name] = p
	return p
}
