package shared

import "testing"

func buildTrick(cards []Card) *Trick {
	t := NewTrick()
	for seat, c := range cards {
		t.AddCard("", seat, c)
	}
	return t
}

func TestRevealedTrumpBeatsHigherLeadCard(t *testing.T) {
	// Lead hearts, trump spades revealed: the spades 2 takes the trick.
	trick := buildTrick([]Card{
		{Suit: Hearts, Rank: "10", Value: 10},
		{Suit: Spades, Rank: "2", Value: 2},
		{Suit: Hearts, Rank: "K", Value: 13},
		{Suit: Clubs, Rank: "A", Value: 14},
	})
	winner := trick.DetermineWinner(Spades, true)
	if winner.PlayerNumber != 1 {
		t.Fatalf("expected trump at seat 1 to win, got seat %d", winner.PlayerNumber)
	}
}

func TestHigherTrumpWinsBetweenTwoTrumps(t *testing.T) {
	trick := buildTrick([]Card{
		{Suit: Spades, Rank: "5", Value: 5},
		{Suit: Spades, Rank: "J", Value: 11},
		{Suit: Hearts, Rank: "A", Value: 14},
		{Suit: Spades, Rank: "3", Value: 3},
	})
	winner := trick.DetermineWinner(Spades, true)
	if winner.PlayerNumber != 1 {
		t.Fatalf("expected highest trump at seat 1 to win, got seat %d", winner.PlayerNumber)
	}
}

func TestHiddenTrumpDoesNotBeatLeadSuit(t *testing.T) {
	// Trump not yet revealed: the trick goes to the highest lead-suit card.
	trick := buildTrick([]Card{
		{Suit: Hearts, Rank: "10", Value: 10},
		{Suit: Spades, Rank: "A", Value: 14},
		{Suit: Hearts, Rank: "K", Value: 13},
		{Suit: Diamonds, Rank: "A", Value: 14},
	})
	winner := trick.DetermineWinner(Spades, false)
	if winner.PlayerNumber != 2 {
		t.Fatalf("expected hearts K at seat 2 to win, got seat %d", winner.PlayerNumber)
	}
}

func TestOffsuitNeverBeatsLead(t *testing.T) {
	trick := buildTrick([]Card{
		{Suit: Clubs, Rank: "2", Value: 2},
		{Suit: Diamonds, Rank: "A", Value: 14},
		{Suit: Hearts, Rank: "A", Value: 14},
		{Suit: Diamonds, Rank: "K", Value: 13},
	})
	winner := trick.DetermineWinner("", false)
	if winner.PlayerNumber != 0 {
		t.Fatalf("expected the lead clubs 2 to hold, got seat %d", winner.PlayerNumber)
	}
}

func TestDetermineWinnerIsDeterministic(t *testing.T) {
	cards := []Card{
		{Suit: Hearts, Rank: "10", Value: 10},
		{Suit: Spades, Rank: "2", Value: 2},
		{Suit: Hearts, Rank: "K", Value: 13},
		{Suit: Clubs, Rank: "A", Value: 14},
	}
	first := buildTrick(cards).DetermineWinner(Spades, true)
	for i := 0; i < 100; i++ {
		again := buildTrick(cards).DetermineWinner(Spades, true)
		if again.PlayerNumber != first.PlayerNumber {
			t.Fatalf("resolution not deterministic: got seat %d then seat %d", first.PlayerNumber, again.PlayerNumber)
		}
	}
}

func TestNextSeatWrapsAround(t *testing.T) {
	for seat := 0; seat < NumSeats; seat++ {
		want := (seat + 1) % NumSeats
		if got := NextSeat(seat); got != want {
			t.Fatalf("NextSeat(%d) = %d, want %d", seat, got, want)
		}
	}
}

func TestTeamOfAlternatesBySeat(t *testing.T) {
	if TeamOf(0) != TeamA || TeamOf(2) != TeamA {
		t.Fatalf("even seats should be team A")
	}
	if TeamOf(1) != TeamB || TeamOf(3) != TeamB {
		t.Fatalf("odd seats should be team B")
	}
	if OpposingTeam(TeamA) != TeamB || OpposingTeam(TeamB) != TeamA {
		t.Fatalf("opposing team mapping wrong")
	}
}
