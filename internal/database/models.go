package database

// GameResult is one completed game as stored in the results archive.
type GameResult struct {
	ID            string `json:"id"`
	CreatedAt     string `json:"created_at"`
	Variant       string `json:"variant"`
	Player1       string `json:"player1"`
	Player2       string `json:"player2"`
	Player3       string `json:"player3"`
	Player4       string `json:"player4"`
	WinningTeam   string `json:"winning_team"`
	TeamATricks   int    `json:"team_a_tricks"`
	TeamBTricks   int    `json:"team_b_tricks"`
	Contract      int    `json:"contract"`
	BiddingTeam   string `json:"bidding_team"`
	BidSuccessful bool   `json:"bid_successful"`
}
