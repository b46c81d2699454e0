package shared

// Suit represents the suit of a card.
type Suit string

const (
	Hearts   Suit = "hearts"
	Diamonds Suit = "diamonds"
	Clubs    Suit = "clubs"
	Spades   Suit = "spades"
)

// Suits lists the four suits in deck-building order.
var Suits = []Suit{Hearts, Diamonds, Clubs, Spades}

// Card represents a single card in a standard 52-card deck.
type Card struct {
	Suit  Suit   `json:"suit"`
	Rank  string `json:"rank"`
	Value int    `json:"value"` // Rank strength for trick comparison (2-14)
}

// Ranks in ascending strength. The Value field follows this ladder:
// 2..10 keep their face value, J=11, Q=12, K=13, A=14.
var ranks = []string{"2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A"}

var rankValues = map[string]int{
	"2":  2,
	"3":  3,
	"4":  4,
	"5":  5,
	"6":  6,
	"7":  7,
	"8":  8,
	"9":  9,
	"10": 10,
	"J":  11,
	"Q":  12,
	"K":  13,
	"A":  14,
}

// ValidSuit reports whether s names one of the four suits.
func ValidSuit(s Suit) bool {
	switch s {
	case Hearts, Diamonds, Clubs, Spades:
		return true
	}
	return false
}

// ValueOf returns the rank strength for a rank string, or 0 if unknown.
func ValueOf(rank string) int {
	return rankValues[rank]
}

// Same reports whether two cards are the same card, matching by suit and rank.
func (c Card) Same(other Card) bool {
	return c.Suit == other.Suit && c.Rank == other.Rank
}
