package game

import (
	"fmt"
	"log"

	"courtpiece-game/internal/shared"
)

// HandleSelectTrump lets the winning bidder choose the trump suit and card.
// In Single Sar the trump is open and revealed immediately; the other
// variants keep it concealed until a reveal. Selection deals the remaining
// eight cards per seat and opens play with the bid winner leading.
func (g *Game) HandleSelectTrump(playerID string, suit shared.Suit, card shared.Card) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.Phase != PhaseTrumpSelection {
		return fmt.Errorf("%w: action not allowed in phase %s", ErrIllegalAction, g.Phase)
	}
	seat := g.seatOf(playerID)
	if seat == -1 {
		return fmt.Errorf("%w: unknown player", ErrNotFound)
	}
	if seat != g.BiddingPlayer {
		return fmt.Errorf("%w: only the bid winner selects trump", ErrIllegalAction)
	}
	if !shared.ValidSuit(suit) {
		return fmt.Errorf("%w: unknown suit", ErrInvalidPayload)
	}
	if card.Suit != suit {
		return fmt.Errorf("%w: trump card must be of the selected suit", ErrInvalidPayload)
	}
	value := shared.ValueOf(card.Rank)
	if value == 0 {
		return fmt.Errorf("%w: unknown rank", ErrInvalidPayload)
	}

	trump := shared.Card{Suit: suit, Rank: card.Rank, Value: value}
	g.TrumpSuit = suit
	g.TrumpCard = &trump
	g.TrumpRevealed = g.Variant == SingleSar

	hands := g.deck.DealRemainder()
	for i, hand := range hands {
		g.Players[i].AddCards(hand)
	}

	g.Phase = PhasePlaying
	g.Status = StatusPlaying
	g.CurrentPlayer = g.BiddingPlayer
	log.Printf("Game %s: trump %s selected by seat %d (revealed=%t), play begins.", g.ID, suit, seat, g.TrumpRevealed)
	return nil
}

// HandleRevealTrump discloses the concealed trump during play. Revealing an
// already-revealed trump is a safe no-op.
func (g *Game) HandleRevealTrump(playerID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.Phase != PhasePlaying {
		return fmt.Errorf("%w: action not allowed in phase %s", ErrIllegalAction, g.Phase)
	}
	if g.seatOf(playerID) == -1 {
		return fmt.Errorf("%w: unknown player", ErrNotFound)
	}
	if g.TrumpRevealed {
		return nil
	}
	g.TrumpRevealed = true
	log.Printf("Game %s: trump revealed (%s).", g.ID, g.TrumpSuit)
	return nil
}
