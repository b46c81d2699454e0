package game

import (
	"fmt"
	"log"
	"sync"
	"time"

	"courtpiece-game/internal/shared"

	"github.com/google/uuid"
)

// Variant selects the Court Piece rule variant.
type Variant string

const (
	SingleSar   Variant = "single_sar"   // Open trump, immediate trick collection
	DoubleSar   Variant = "double_sar"   // Hidden trump, consecutive-win collection
	HiddenTrump Variant = "hidden_trump" // Hidden trump, consecutive-win collection
)

// ValidVariant reports whether v names a supported variant.
func ValidVariant(v Variant) bool {
	switch v {
	case SingleSar, DoubleSar, HiddenTrump:
		return true
	}
	return false
}

// Phase is the authoritative driver of message legality.
type Phase string

const (
	PhaseBidding        Phase = "bidding"
	PhaseTrumpSelection Phase = "trump_selection"
	PhasePlaying        Phase = "playing"
	PhaseCompleted      Phase = "completed"
)

// Status is the coarser public-facing view of the game's lifecycle.
type Status string

const (
	StatusWaiting   Status = "waiting"
	StatusBidding   Status = "bidding"
	StatusPlaying   Status = "playing"
	StatusCompleted Status = "completed"
)

const (
	// MinBid is the minimum legal contract.
	MinBid = 9
	// MaxBid is the maximum legal contract.
	MaxBid = 13
	// WinningTricks is the counted-trick total that ends the game.
	WinningTricks = 7
	// MaxRounds caps a game at one full round cycle of 13 tricks.
	MaxRounds = 13
)

// BidEntry records one bidding action in order.
type BidEntry struct {
	Player int    `json:"player"`
	Action string `json:"action"` // "bid" or "pass"
	Bid    int    `json:"bid,omitempty"`
}

// TrickRecord is one resolved trick.
type TrickRecord struct {
	Winner int                `json:"winner"`
	Team   shared.TeamID      `json:"team"`
	Cards  []shared.TrickCard `json:"cards"`
}

// Result summarizes a completed game for the results archive.
type Result struct {
	GameID        string
	Variant       Variant
	WinningTeam   shared.TeamID
	TeamATricks   int
	TeamBTricks   int
	Contract      int
	BiddingTeam   shared.TeamID
	BidSuccessful bool
	PlayerNames   [shared.NumSeats]string
}

// Game is the authoritative state machine for one table. Every inbound
// action is serialized through the game's mutex; a rejected action never
// changes state.
type Game struct {
	ID            string
	Variant       Variant
	Status        Status
	Phase         Phase
	CurrentRound  int
	CurrentPlayer int
	TrumpSuit     shared.Suit
	TrumpRevealed bool
	TrumpCard     *shared.Card
	HighestBid    int
	BiddingPlayer int
	Players       [shared.NumSeats]*shared.Player
	CreatedAt     time.Time

	deck            *shared.Deck
	biddingHistory  []BidEntry
	currentTrick    *shared.Trick
	tricksWon       map[shared.TeamID][]TrickRecord
	pendingTricks   []TrickRecord
	consecutiveWins map[shared.TeamID]int
	lastTrickWinner int

	winningTeam    shared.TeamID
	bidSuccessful  bool
	resultRecorded bool

	mu sync.Mutex
}

// NewGame creates a game waiting for players.
func NewGame(variant Variant) *Game {
	return &Game{
		ID:              uuid.NewString(),
		Variant:         variant,
		Status:          StatusWaiting,
		Phase:           PhaseBidding,
		CurrentRound:    1,
		CurrentPlayer:   0,
		BiddingPlayer:   0,
		CreatedAt:       time.Now(),
		currentTrick:    shared.NewTrick(),
		tricksWon:       map[shared.TeamID][]TrickRecord{},
		consecutiveWins: map[shared.TeamID]int{shared.TeamA: 0, shared.TeamB: 0},
		lastTrickWinner: -1,
	}
}

// Join seats a new player at the next free position. The fourth join
// triggers the shuffle and the initial five-card deal.
func (g *Game) Join(userID, name string) (*shared.Player, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	seat := -1
	for i, p := range g.Players {
		if p == nil {
			seat = i
			break
		}
	}
	if seat == -1 {
		return nil, ErrCapacityViolation
	}

	player := shared.NewPlayer(uuid.NewString(), g.ID, userID, name, seat)
	g.Players[seat] = player
	log.Printf("Game %s: %s seated at position %d (team %s)", g.ID, name, seat, player.Team)

	if seat == shared.NumSeats-1 {
		g.startBidding()
	}
	return player, nil
}

// startBidding shuffles a fresh deck, deals the initial tranche and opens
// the bidding. Assumes lock is held.
func (g *Game) startBidding() {
	g.deck = shared.NewDeck()
	g.deck.Shuffle()
	hands := g.deck.DealInitial()
	for seat, hand := range hands {
		g.Players[seat].Hand = hand
	}
	g.Status = StatusBidding
	g.Phase = PhaseBidding
	g.CurrentPlayer = 0
	g.biddingHistory = nil
	log.Printf("Game %s: table full, dealt %d cards each, bidding opens at seat 0.", g.ID, shared.InitialDealSize)
}

// seatOf returns the seat index for a player ID, or -1.
func (g *Game) seatOf(playerID string) int {
	for i, p := range g.Players {
		if p != nil && p.ID == playerID {
			return i
		}
	}
	return -1
}

// requireActor checks phase and acting seat before any mutation.
// Assumes lock is held.
func (g *Game) requireActor(playerID string, phase Phase) (int, error) {
	if g.Phase != phase {
		return -1, fmt.Errorf("%w: action not allowed in phase %s", ErrIllegalAction, g.Phase)
	}
	seat := g.seatOf(playerID)
	if seat == -1 {
		return -1, fmt.Errorf("%w: unknown player", ErrNotFound)
	}
	if seat != g.CurrentPlayer {
		return -1, fmt.Errorf("%w: not your turn", ErrIllegalAction)
	}
	return seat, nil
}

// SetConnected toggles a player's connectivity flag. It never pauses or
// cancels an in-progress action.
func (g *Game) SetConnected(playerID string, connected bool) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	seat := g.seatOf(playerID)
	if seat == -1 {
		return false
	}
	g.Players[seat].IsConnected = connected
	return true
}

// TakeCompletionResult returns the final result exactly once after the game
// completes, for persistence by the caller.
func (g *Game) TakeCompletionResult() (Result, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.Phase != PhaseCompleted || g.resultRecorded {
		return Result{}, false
	}
	g.resultRecorded = true

	var names [shared.NumSeats]string
	for i, p := range g.Players {
		if p != nil {
			names[i] = p.Name
		}
	}
	return Result{
		GameID:        g.ID,
		Variant:       g.Variant,
		WinningTeam:   g.winningTeam,
		TeamATricks:   g.countedTricks(shared.TeamA),
		TeamBTricks:   g.countedTricks(shared.TeamB),
		Contract:      g.HighestBid,
		BiddingTeam:   shared.TeamOf(g.BiddingPlayer),
		BidSuccessful: g.bidSuccessful,
		PlayerNames:   names,
	}, true
}
