package game

import (
	"fmt"
	"log"

	"courtpiece-game/internal/shared"
)

// HandlePlayCard processes one card play. The card must be held by the
// acting player; the fourth card of a trick triggers resolution.
func (g *Game) HandlePlayCard(playerID string, suit shared.Suit, rank string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	seat, err := g.requireActor(playerID, PhasePlaying)
	if err != nil {
		return err
	}

	card, found := g.Players[seat].FindCard(suit, rank)
	if !found {
		return fmt.Errorf("%w: card not in your hand", ErrInvalidPayload)
	}

	g.Players[seat].RemoveCard(card)
	g.currentTrick.AddCard(playerID, seat, card)
	log.Printf("Game %s: seat %d played %s of %s", g.ID, seat, rank, suit)

	if g.currentTrick.Complete() {
		g.resolveTrick()
	} else {
		g.CurrentPlayer = shared.NextSeat(seat)
	}
	return nil
}

// resolveTrick determines the trick winner, applies variant scoring,
// advances the round and runs the win check. Assumes lock is held.
func (g *Game) resolveTrick() {
	winner := g.currentTrick.DetermineWinner(g.TrumpSuit, g.TrumpRevealed)
	team := shared.TeamOf(winner.PlayerNumber)
	record := TrickRecord{
		Winner: winner.PlayerNumber,
		Team:   team,
		Cards:  g.currentTrick.Cards,
	}
	g.Players[winner.PlayerNumber].Tricks++
	g.applyTrickCollection(record)

	g.currentTrick = shared.NewTrick()
	g.lastTrickWinner = winner.PlayerNumber
	g.CurrentPlayer = winner.PlayerNumber
	g.CurrentRound++
	log.Printf("Game %s: trick won by seat %d (team %s)", g.ID, winner.PlayerNumber, team)

	g.checkGameEnd()
}
