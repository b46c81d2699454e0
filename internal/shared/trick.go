package shared

import "log"

// TrickCard stores a card along with the identity and seat of the player
// who played it.
type TrickCard struct {
	PlayerID     string `json:"playerId"`
	PlayerNumber int    `json:"playerNumber"`
	Card         Card   `json:"card"`
}

// Trick represents a single trick: one card per seat, resolved to one winner.
type Trick struct {
	Cards []TrickCard `json:"cards"`
}

// NewTrick creates an empty trick.
func NewTrick() *Trick {
	return &Trick{Cards: []TrickCard{}}
}

// AddCard appends a played card to the trick.
func (t *Trick) AddCard(playerID string, seat int, card Card) {
	t.Cards = append(t.Cards, TrickCard{PlayerID: playerID, PlayerNumber: seat, Card: card})
}

// Complete reports whether every seat has played into the trick.
func (t *Trick) Complete() bool {
	return len(t.Cards) == NumSeats
}

// LeadSuit returns the suit of the first card played this trick.
func (t *Trick) LeadSuit() Suit {
	if len(t.Cards) == 0 {
		return ""
	}
	return t.Cards[0].Card.Suit
}

// DetermineWinner resolves the trick and returns the winning entry.
// The rules are evaluated in strict precedence order: a revealed trump beats
// any non-trump, higher value wins between two trumps, higher value wins
// between two cards of the lead suit, a lead-suit card beats an offsuit
// non-trump, and otherwise the earlier card stands. The result is a pure
// function of the played cards, the trump suit and the reveal flag.
func (t *Trick) DetermineWinner(trumpSuit Suit, trumpRevealed bool) TrickCard {
	if len(t.Cards) == 0 {
		log.Panicf("Error: cannot determine winner of an empty trick.")
	}

	leadSuit := t.LeadSuit()
	winner := t.Cards[0]
	for _, challenger := range t.Cards[1:] {
		if beats(challenger.Card, winner.Card, leadSuit, trumpSuit, trumpRevealed) {
			winner = challenger
		}
	}
	return winner
}

// beats reports whether the challenger card takes the trick from the current
// winning card.
func beats(challenger, winning Card, leadSuit, trumpSuit Suit, trumpRevealed bool) bool {
	if trumpRevealed {
		challengerTrump := challenger.Suit == trumpSuit
		winningTrump := winning.Suit == trumpSuit
		switch {
		case challengerTrump && !winningTrump:
			return true
		case winningTrump && !challengerTrump:
			return false
		case challengerTrump && winningTrump:
			return challenger.Value > winning.Value
		}
	}
	if challenger.Suit == leadSuit && winning.Suit == leadSuit {
		return challenger.Value > winning.Value
	}
	if challenger.Suit == leadSuit {
		// The winning card neither follows the lead nor holds trump.
		return true
	}
	return false
}
