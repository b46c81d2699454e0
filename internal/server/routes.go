package server

import (
	"database/sql"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"courtpiece-game/internal/database"
	"courtpiece-game/internal/game"
	"courtpiece-game/internal/shared"
	"courtpiece-game/internal/store"
)

type createGameRequest struct {
	Variant game.Variant `json:"variant"`
}

type joinGameRequest struct {
	Username string `json:"username"`
}

type joinGameResponse struct {
	Player *shared.Player `json:"player"`
	Game   game.View      `json:"game"`
}

// HandleRoutes registers the HTTP boundary: game creation, joining, state
// reads and the results archive.
func HandleRoutes(st *store.Store, db *database.Service, hub *Hub) {
	http.HandleFunc("POST /api/games", func(w http.ResponseWriter, r *http.Request) {
		CreateGameHandler(st, w, r)
	})

	http.HandleFunc("POST /api/games/{gameId}/join", func(w http.ResponseWriter, r *http.Request) {
		JoinGameHandler(st, hub, w, r)
	})

	http.HandleFunc("GET /api/games/{gameId}", func(w http.ResponseWriter, r *http.Request) {
		GetGameHandler(st, w, r)
	})

	http.HandleFunc("/api/results/player/{name}", func(w http.ResponseWriter, r *http.Request) {
		GetResultsByPlayerHandler(db, w, r)
	})

	http.HandleFunc("/api/results", func(w http.ResponseWriter, r *http.Request) {
		GetResultsHandler(db, w, r)
	})

	log.Println("Registered routes: /api/games, /api/results")
}

// CreateGameHandler creates a new game for the requested variant
// (default single_sar).
func CreateGameHandler(st *store.Store, w http.ResponseWriter, r *http.Request) {
	var req createGameRequest
	// An empty body means defaults; a malformed one is rejected.
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Variant == "" {
		req.Variant = game.SingleSar
	}
	if !game.ValidVariant(req.Variant) {
		http.Error(w, "Unknown variant", http.StatusBadRequest)
		return
	}

	g := st.CreateGame(req.Variant)
	log.Printf("Created game %s (variant %s)", g.ID, req.Variant)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(g.Snapshot().Game)
}

// JoinGameHandler seats a player at the next free position; the fourth join
// triggers the shuffle and initial deal.
func JoinGameHandler(st *store.Store, hub *Hub, w http.ResponseWriter, r *http.Request) {
	gameID := r.PathValue("gameId")
	g, ok := st.GetGame(gameID)
	if !ok {
		http.Error(w, "Game not found", http.StatusNotFound)
		return
	}

	var req joinGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Username == "" {
		http.Error(w, "Username is required", http.StatusBadRequest)
		return
	}

	user := st.EnsureUser(req.Username)
	player, err := g.Join(user.ID, user.Username)
	if err != nil {
		if errors.Is(err, game.ErrCapacityViolation) {
			http.Error(w, "Game is full", http.StatusBadRequest)
			return
		}
		http.Error(w, "Failed to join game", http.StatusInternalServerError)
		return
	}
	st.PutPlayer(player)
	hub.BroadcastGame(gameID)

	// Respond with the snapshot's copy of the player: a concurrent fourth
	// join may be dealing into the live record while this marshals.
	snap := g.Snapshot()
	var seated *shared.Player
	for i := range snap.Players {
		if snap.Players[i].ID == player.ID {
			seated = &snap.Players[i]
			break
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(joinGameResponse{Player: seated, Game: snap.Game})
}

// GetGameHandler returns the canonical game state with its players.
func GetGameHandler(st *store.Store, w http.ResponseWriter, r *http.Request) {
	gameID := r.PathValue("gameId")
	g, ok := st.GetGame(gameID)
	if !ok {
		http.Error(w, "Game not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(g.Snapshot())
}

// GetResultsByPlayerHandler fetches archived results for one player name.
func GetResultsByPlayerHandler(db *database.Service, w http.ResponseWriter, r *http.Request) {
	player := r.PathValue("name")
	if player == "" {
		http.Error(w, "Player name is required", http.StatusBadRequest)
		return
	}

	results, err := db.GetByPlayer(player)
	if err != nil {
		if err == sql.ErrNoRows {
			http.Error(w, "No results found for player", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to fetch results", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(results)
}

// GetResultsHandler fetches every archived game result.
func GetResultsHandler(db *database.Service, w http.ResponseWriter, r *http.Request) {
	results, err := db.GetAll()
	if err != nil {
		http.Error(w, "Failed to fetch results", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(results)
}
