package shared

import (
	"log"
	"math/rand/v2"
)

const (
	// NumSeats is the number of players at the table.
	NumSeats = 4
	// InitialDealSize is the number of cards each seat receives before bidding.
	InitialDealSize = 5
	// RemainderDealSize is the number of cards each seat receives after trump selection.
	RemainderDealSize = 8
)

// Deck represents a collection of cards.
type Deck struct {
	Cards []Card
}

// NewDeck creates a standard 52-card deck, one card per (suit, rank) pair.
func NewDeck() *Deck {
	cards := make([]Card, 0, len(Suits)*len(ranks))
	for _, suit := range Suits {
		for _, rank := range ranks {
			cards = append(cards, Card{
				Suit:  suit,
				Rank:  rank,
				Value: rankValues[rank],
			})
		}
	}
	return &Deck{Cards: cards}
}

// Shuffle randomizes the order of cards in the deck.
func (d *Deck) Shuffle() {
	rand.Shuffle(len(d.Cards), func(i, j int) {
		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	})
}

// DealInitial removes the first 5 cards per seat from the deck, round-robin
// in seat order, and returns the four hands. Returns nil if the deck is short.
func (d *Deck) DealInitial() [NumSeats][]Card {
	return d.deal(InitialDealSize)
}

// DealRemainder removes the next 8 cards per seat, exhausting a full deck
// that has already had its initial tranche dealt.
func (d *Deck) DealRemainder() [NumSeats][]Card {
	return d.deal(RemainderDealSize)
}

func (d *Deck) deal(cardsPerSeat int) [NumSeats][]Card {
	var hands [NumSeats][]Card
	needed := NumSeats * cardsPerSeat
	if len(d.Cards) < needed {
		log.Printf("Error: not enough cards in deck (%d) to deal %d per seat.", len(d.Cards), cardsPerSeat)
		return hands
	}

	for i := 0; i < cardsPerSeat; i++ {
		for seat := 0; seat < NumSeats; seat++ {
			hands[seat] = append(hands[seat], d.Cards[0])
			d.Cards = d.Cards[1:]
		}
	}
	return hands
}
