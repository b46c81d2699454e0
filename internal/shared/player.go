package shared

// Player represents one seated participant of a game. Seat and team are
// fixed at join time and never reassigned; only the hand, bid, trick counter
// and connectivity flag change afterwards.
type Player struct {
	ID           string `json:"id"`
	GameID       string `json:"gameId"`
	UserID       string `json:"userId,omitempty"`
	Name         string `json:"name,omitempty"`
	PlayerNumber int    `json:"playerNumber"` // Table seat, 0-3
	Team         TeamID `json:"team"`
	Hand         []Card `json:"hand"`
	Bid          int    `json:"bid"`
	Tricks       int    `json:"tricks"` // Immediate tricks won this game
	IsConnected  bool   `json:"isConnected"`
}

// NewPlayer creates a player seated at the given table position.
func NewPlayer(id, gameID, userID, name string, seat int) *Player {
	return &Player{
		ID:           id,
		GameID:       gameID,
		UserID:       userID,
		Name:         name,
		PlayerNumber: seat,
		Team:         TeamOf(seat),
		Hand:         []Card{},
	}
}

// AddCards appends cards to the player's hand.
func (p *Player) AddCards(cards []Card) {
	p.Hand = append(p.Hand, cards...)
}

// RemoveCard removes a card from the player's hand, matching by suit and
// rank. Returns false if the card is not held.
func (p *Player) RemoveCard(card Card) bool {
	for i, c := range p.Hand {
		if c.Same(card) {
			p.Hand = append(p.Hand[:i], p.Hand[i+1:]...)
			return true
		}
	}
	return false
}

// FindCard looks up a card in the player's hand by suit and rank.
func (p *Player) FindCard(suit Suit, rank string) (Card, bool) {
	for _, card := range p.Hand {
		if card.Suit == suit && card.Rank == rank {
			return card, true
		}
	}
	return Card{}, false
}
