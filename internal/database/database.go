package database

import (
	"database/sql"
	"os"
	"sync"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/joho/godotenv/autoload"
	_ "github.com/mattn/go-sqlite3"
)

// Service archives completed game results. The driver defaults to sqlite;
// set DATABASE_DRIVER=pgx and DATABASE_URL to run against Postgres.
type Service struct {
	db         *sql.DB
	m          *sync.Mutex
	table_name string
}

var (
	tableName  = "court_piece_results"
	dbInstance *Service
)

func New() Service {
	driver := os.Getenv("DATABASE_DRIVER")
	dsn := os.Getenv("DATABASE_URL")
	if driver == "" {
		driver = "sqlite3"
	}
	if dsn == "" {
		dsn = "./courtpiece.db"
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		panic(err)
	}

	sqlStmt := `
	create table if not exists court_piece_results (
		id string not null primary key,
		created_at string,
		variant string,
		player1 string,
		player2 string,
		player3 string,
		player4 string,
		winning_team string,
		team_a_tricks integer,
		team_b_tricks integer,
		contract integer,
		bidding_team string,
		bid_successful integer
	);
	`
	_, err = db.Exec(sqlStmt)
	if err != nil {
		panic(err)
	}

	dbInstance = &Service{
		db:         db,
		table_name: tableName,
		m:          &sync.Mutex{},
	}

	return *dbInstance
}

func (s *Service) Close() error {
	return s.db.Close()
}

func (s *Service) TableName() string {
	return s.table_name
}

func (s *Service) GetAll() ([]GameResult, error) {
	s.m.Lock()
	defer s.m.Unlock()
	rows, err := s.db.Query("SELECT * FROM " + s.table_name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []GameResult
	for rows.Next() {
		var result GameResult
		if err := scanResult(rows, &result); err != nil {
			return nil, err
		}
		results = append(results, result)
	}

	return results, nil
}

func (s *Service) GetByID(id string) (GameResult, error) {
	s.m.Lock()
	defer s.m.Unlock()
	var result GameResult
	err := s.db.QueryRow("SELECT * FROM "+s.table_name+" WHERE id = ?", id).Scan(
		&result.ID,
		&result.CreatedAt,
		&result.Variant,
		&result.Player1,
		&result.Player2,
		&result.Player3,
		&result.Player4,
		&result.WinningTeam,
		&result.TeamATricks,
		&result.TeamBTricks,
		&result.Contract,
		&result.BiddingTeam,
		&result.BidSuccessful)
	if err != nil {
		return GameResult{}, err
	}
	return result, nil
}

func (s *Service) Insert(result GameResult) error {
	s.m.Lock()
	defer s.m.Unlock()
	_, err := s.db.Exec("INSERT INTO "+s.table_name+
		" (id, created_at, variant, player1, player2, player3, player4, winning_team, team_a_tricks, team_b_tricks, contract, bidding_team, bid_successful) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		result.ID,
		result.CreatedAt,
		result.Variant,
		result.Player1,
		result.Player2,
		result.Player3,
		result.Player4,
		result.WinningTeam,
		result.TeamATricks,
		result.TeamBTricks,
		result.Contract,
		result.BiddingTeam,
		result.BidSuccessful)

	return err
}

func (s *Service) GetByPlayer(player_name string) ([]GameResult, error) {
	s.m.Lock()
	defer s.m.Unlock()
	rows, err := s.db.Query("SELECT * FROM "+s.table_name+
		" WHERE player1 = ? OR player2 = ? OR player3 = ? OR player4 = ?",
		player_name,
		player_name,
		player_name,
		player_name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []GameResult
	for rows.Next() {
		var result GameResult
		if err := scanResult(rows, &result); err != nil {
			return nil, err
		}
		results = append(results, result)
	}

	if len(results) == 0 {
		return nil, sql.ErrNoRows
	}

	return results, nil
}

func scanResult(rows *sql.Rows, result *GameResult) error {
	return rows.Scan(
		&result.ID,
		&result.CreatedAt,
		&result.Variant,
		&result.Player1,
		&result.Player2,
		&result.Player3,
		&result.Player4,
		&result.WinningTeam,
		&result.TeamATricks,
		&result.TeamBTricks,
		&result.Contract,
		&result.BiddingTeam,
		&result.BidSuccessful)
}
