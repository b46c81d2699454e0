package shared

// TeamID identifies one of the two fixed teams at the table.
type TeamID string

const (
	TeamA TeamID = "A" // Seats 0 and 2
	TeamB TeamID = "B" // Seats 1 and 3
)

// NextSeat returns the seat that acts after the given one.
func NextSeat(seat int) int {
	return (seat + 1) % NumSeats
}

// TeamOf returns the team a seat belongs to. Even seats form team A,
// odd seats team B.
func TeamOf(seat int) TeamID {
	if seat%2 == 0 {
		return TeamA
	}
	return TeamB
}

// OpposingTeam returns the other team.
func OpposingTeam(team TeamID) TeamID {
	if team == TeamA {
		return TeamB
	}
	return TeamA
}
