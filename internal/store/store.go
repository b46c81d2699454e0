package store

import (
	"sync"

	"courtpiece-game/internal/game"
	"courtpiece-game/internal/shared"

	"github.com/google/uuid"
)

// User attaches a display name to a seat. Identity is name-only; there is
// no authentication.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// Store holds every live game, player and user. It is constructed once at
// process start and injected into the server; games are never deleted, a
// completed game is retained for final score reporting.
type Store struct {
	mu      sync.RWMutex
	users   map[string]*User
	games   map[string]*game.Game
	players map[string]*shared.Player
}

// New creates an empty store.
func New() *Store {
	return &Store{
		users:   make(map[string]*User),
		games:   make(map[string]*game.Game),
		players: make(map[string]*shared.Player),
	}
}

// CreateGame registers a new game for the given variant.
func (s *Store) CreateGame(variant game.Variant) *game.Game {
	g := game.NewGame(variant)
	s.mu.Lock()
	s.games[g.ID] = g
	s.mu.Unlock()
	return g
}

// GetGame looks up a game by ID.
func (s *Store) GetGame(id string) (*game.Game, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	g, ok := s.games[id]
	return g, ok
}

// PutPlayer registers a seated player for later lookup by ID.
func (s *Store) PutPlayer(p *shared.Player) {
	s.mu.Lock()
	s.players[p.ID] = p
	s.mu.Unlock()
}

// GetPlayer looks up a player by ID.
func (s *Store) GetPlayer(id string) (*shared.Player, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.players[id]
	return p, ok
}

// GetPlayersByGame returns every seated player of a game in seat order.
func (s *Store) GetPlayersByGame(gameID string) []*shared.Player {
	s.mu.RLock()
	defer s.mu.RUnlock()
	players := make([]*shared.Player, 0, shared.NumSeats)
	for seat := 0; seat < shared.NumSeats; seat++ {
		for _, p := range s.players {
			if p.GameID == gameID && p.PlayerNumber == seat {
				players = append(players, p)
				break
			}
		}
	}
	return players
}

// GetUserByUsername finds a user by display name.
func (s *Store) GetUserByUsername(username string) (*User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Username == username {
			return u, true
		}
	}
	return nil, false
}

// CreateUser registers a new user.
func (s *Store) CreateUser(username string) *User {
	u := &User{ID: uuid.NewString(), Username: username}
	s.mu.Lock()
	s.users[u.ID] = u
	s.mu.Unlock()
	return u
}

// EnsureUser returns the existing user with the given name or creates one.
func (s *Store) EnsureUser(username string) *User {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == username {
			return u
		}
	}
	u := &User{ID: uuid.NewString(), Username: username}
	s.users[u.ID] = u
	return u
}
