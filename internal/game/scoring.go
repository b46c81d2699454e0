package game

import (
	"log"

	"courtpiece-game/internal/shared"
)

// applyTrickCollection applies per-variant trick accounting. Single Sar
// collects every trick immediately; the Sar variants hold tricks pending
// until a team wins two in a row, at which point everything pending moves
// into that team's permanent total. Assumes lock is held.
func (g *Game) applyTrickCollection(record TrickRecord) {
	if g.Variant == SingleSar {
		g.tricksWon[record.Team] = append(g.tricksWon[record.Team], record)
		return
	}

	g.pendingTricks = append(g.pendingTricks, record)
	g.consecutiveWins[shared.OpposingTeam(record.Team)] = 0
	g.consecutiveWins[record.Team]++
	if g.consecutiveWins[record.Team] >= 2 {
		g.tricksWon[record.Team] = append(g.tricksWon[record.Team], g.pendingTricks...)
		g.pendingTricks = nil
		g.consecutiveWins[record.Team] = 0
		log.Printf("Game %s: team %s collected pending tricks (%d total).", g.ID, record.Team, len(g.tricksWon[record.Team]))
	}
}

// countedTricks returns a team's tricks that count toward the win
// condition. Pending tricks do not count until collected. Assumes lock is
// held.
func (g *Game) countedTricks(team shared.TeamID) int {
	if g.Variant == SingleSar {
		total := 0
		for _, p := range g.Players {
			if p != nil && p.Team == team {
				total += p.Tricks
			}
		}
		return total
	}
	return len(g.tricksWon[team])
}

// checkGameEnd runs after every trick resolution. The counted-trick check
// runs first; the 13-round cap only terminates the game when neither team
// has reached seven. Assumes lock is held.
func (g *Game) checkGameEnd() {
	teamA := g.countedTricks(shared.TeamA)
	teamB := g.countedTricks(shared.TeamB)

	switch {
	case teamA >= WinningTricks:
		g.complete(shared.TeamA, teamA, teamB)
	case teamB >= WinningTricks:
		g.complete(shared.TeamB, teamA, teamB)
	case g.CurrentRound > MaxRounds:
		// Round cap with no collected majority: the higher counted total
		// wins; on a tie the defenders hold since the contract was not met.
		winner := shared.OpposingTeam(shared.TeamOf(g.BiddingPlayer))
		if teamA != teamB {
			winner = shared.TeamA
			if teamB > teamA {
				winner = shared.TeamB
			}
		}
		g.complete(winner, teamA, teamB)
	}
}

// complete marks the game finished and evaluates the contract. Assumes lock
// is held.
func (g *Game) complete(winner shared.TeamID, teamA, teamB int) {
	g.winningTeam = winner
	biddingTeam := shared.TeamOf(g.BiddingPlayer)
	biddingTotal := teamA
	if biddingTeam == shared.TeamB {
		biddingTotal = teamB
	}
	g.bidSuccessful = biddingTotal >= g.HighestBid
	g.Phase = PhaseCompleted
	g.Status = StatusCompleted
	log.Printf("Game %s: completed, team %s wins %d-%d (contract %d by team %s, success=%t)",
		g.ID, winner, teamA, teamB, g.HighestBid, biddingTeam, g.bidSuccessful)
}
