package game

import "courtpiece-game/internal/shared"

// StateBag is the serialized extension state carried inside a game view.
type StateBag struct {
	DeckRemaining   int                      `json:"deckRemaining"`
	BiddingHistory  []BidEntry               `json:"biddingHistory"`
	CurrentTrick    []shared.TrickCard       `json:"currentTrick"`
	TricksWon       map[shared.TeamID]int    `json:"tricksWon"`
	PendingTricks   int                      `json:"pendingTricks"`
	ConsecutiveWins map[shared.TeamID]int    `json:"consecutiveWins"`
	LastTrickWinner int                      `json:"lastTrickWinner"`
	WinningTeam     shared.TeamID            `json:"winningTeam,omitempty"`
	BidSuccessful   bool                     `json:"bidSuccessful,omitempty"`
}

// View is the public shape of a game broadcast to clients.
type View struct {
	ID            string       `json:"id"`
	Status        Status       `json:"status"`
	Phase         Phase        `json:"phase"`
	Variant       Variant      `json:"variant"`
	CurrentRound  int          `json:"currentRound"`
	CurrentPlayer int          `json:"currentPlayer"`
	TrumpSuit     shared.Suit  `json:"trumpSuit,omitempty"`
	TrumpRevealed bool         `json:"trumpRevealed"`
	TrumpCard     *shared.Card `json:"trumpCard,omitempty"`
	HighestBid    int          `json:"highestBid"`
	BiddingPlayer int          `json:"biddingPlayer"`
	GameState     StateBag     `json:"gameState"`
}

// Snapshot is the canonical post-mutation state fanned out to every
// connected participant.
type Snapshot struct {
	Game    View            `json:"game"`
	Players []shared.Player `json:"players"`
}

// Snapshot builds an immutable copy of the current state.
func (g *Game) Snapshot() *Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	deckRemaining := 0
	if g.deck != nil {
		deckRemaining = len(g.deck.Cards)
	}
	trick := make([]shared.TrickCard, len(g.currentTrick.Cards))
	copy(trick, g.currentTrick.Cards)
	history := make([]BidEntry, len(g.biddingHistory))
	copy(history, g.biddingHistory)

	view := View{
		ID:            g.ID,
		Status:        g.Status,
		Phase:         g.Phase,
		Variant:       g.Variant,
		CurrentRound:  g.CurrentRound,
		CurrentPlayer: g.CurrentPlayer,
		TrumpSuit:     g.publicTrumpSuit(),
		TrumpRevealed: g.TrumpRevealed,
		TrumpCard:     g.publicTrumpCard(),
		HighestBid:    g.HighestBid,
		BiddingPlayer: g.BiddingPlayer,
		GameState: StateBag{
			DeckRemaining:  deckRemaining,
			BiddingHistory: history,
			CurrentTrick:   trick,
			TricksWon: map[shared.TeamID]int{
				shared.TeamA: g.countedTricks(shared.TeamA),
				shared.TeamB: g.countedTricks(shared.TeamB),
			},
			PendingTricks: len(g.pendingTricks),
			ConsecutiveWins: map[shared.TeamID]int{
				shared.TeamA: g.consecutiveWins[shared.TeamA],
				shared.TeamB: g.consecutiveWins[shared.TeamB],
			},
			LastTrickWinner: g.lastTrickWinner,
			WinningTeam:     g.winningTeam,
			BidSuccessful:   g.bidSuccessful,
		},
	}

	players := make([]shared.Player, 0, shared.NumSeats)
	for _, p := range g.Players {
		if p == nil {
			continue
		}
		cp := *p
		cp.Hand = make([]shared.Card, len(p.Hand))
		copy(cp.Hand, p.Hand)
		players = append(players, cp)
	}

	return &Snapshot{Game: view, Players: players}
}

// publicTrumpSuit hides the trump suit until it is revealed in the
// concealed variants. Assumes lock is held.
func (g *Game) publicTrumpSuit() shared.Suit {
	if g.TrumpSuit == "" || g.TrumpRevealed {
		return g.TrumpSuit
	}
	return ""
}

func (g *Game) publicTrumpCard() *shared.Card {
	if g.TrumpCard == nil || !g.TrumpRevealed {
		return nil
	}
	card := *g.TrumpCard
	return &card
}
