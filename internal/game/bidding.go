package game

import (
	"fmt"
	"log"

	"courtpiece-game/internal/shared"
)

// HandleBid processes a bid from a player. A bid is legal only when it is
// that player's turn during the bidding phase and the amount is within
// [9,13] and strictly above the current highest bid.
func (g *Game) HandleBid(playerID string, amount int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	seat, err := g.requireActor(playerID, PhaseBidding)
	if err != nil {
		return err
	}
	if amount < MinBid || amount > MaxBid || amount <= g.HighestBid {
		floor := g.HighestBid + 1
		if floor < MinBid {
			floor = MinBid
		}
		return fmt.Errorf("%w: bid must be between %d and %d", ErrInvalidPayload, floor, MaxBid)
	}

	g.biddingHistory = append(g.biddingHistory, BidEntry{Player: seat, Action: "bid", Bid: amount})
	g.HighestBid = amount
	g.BiddingPlayer = seat
	g.Players[seat].Bid = amount
	g.CurrentPlayer = shared.NextSeat(seat)
	log.Printf("Game %s: seat %d bid %d", g.ID, seat, amount)
	return nil
}

// HandlePass processes a pass. Three passes immediately following the most
// recent bid end the bidding; four passes with no bid on the table tear the
// deal down and start over.
func (g *Game) HandlePass(playerID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	seat, err := g.requireActor(playerID, PhaseBidding)
	if err != nil {
		return err
	}

	g.biddingHistory = append(g.biddingHistory, BidEntry{Player: seat, Action: "pass"})
	g.CurrentPlayer = shared.NextSeat(seat)
	log.Printf("Game %s: seat %d passed", g.ID, seat)

	if g.HighestBid == 0 {
		// No contract yet. Passes alone never terminate bidding; once the
		// whole table has passed the hand is re-dealt.
		if len(g.biddingHistory) >= shared.NumSeats {
			log.Printf("Game %s: all four seats passed with no bid, re-dealing.", g.ID)
			g.redeal()
		}
		return nil
	}

	if g.trailingPasses() >= shared.NumSeats-1 {
		g.Phase = PhaseTrumpSelection
		g.CurrentPlayer = g.BiddingPlayer
		log.Printf("Game %s: bidding closed at %d, seat %d selects trump.", g.ID, g.HighestBid, g.BiddingPlayer)
	}
	return nil
}

// trailingPasses counts history entries since the most recent bid.
// Assumes lock is held.
func (g *Game) trailingPasses() int {
	passes := 0
	for i := len(g.biddingHistory) - 1; i >= 0; i-- {
		if g.biddingHistory[i].Action != "pass" {
			break
		}
		passes++
	}
	return passes
}

// redeal discards every hand, reshuffles a fresh deck and restarts the
// bidding from seat 0. Assumes lock is held.
func (g *Game) redeal() {
	for _, p := range g.Players {
		p.Hand = []shared.Card{}
		p.Bid = 0
	}
	g.HighestBid = 0
	g.BiddingPlayer = 0
	g.startBidding()
}
