package server

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"courtpiece-game/internal/database"
	"courtpiece-game/internal/game"
	"courtpiece-game/internal/protocol"
	"courtpiece-game/internal/shared"
	"courtpiece-game/internal/store"

	"github.com/google/uuid"
)

// clientMessage is a helper struct to pass messages along with the client reference.
type clientMessage struct {
	client  *Client
	message protocol.Message
}

// Hub manages active WebSocket connections and routes decoded actions into
// the game engine. Every inbound action drains through one channel, and
// each game additionally serializes mutation behind its own lock, so two
// "simultaneous" actions against the same game always observe each other's
// result.
type Hub struct {
	store          *store.Store
	db             *database.Service
	clients        map[*Client]bool
	connections    map[string][]*Client // Game ID to connected clients
	processMessage chan clientMessage
	register       chan *Client
	unregister     chan *Client
	broadcast      chan string // Game IDs whose state must be fanned out
	clientMu       sync.RWMutex
	connMu         sync.RWMutex
}

// NewHub creates a new Hub instance backed by the given store and results
// archive.
func NewHub(st *store.Store, db *database.Service) *Hub {
	return &Hub{
		store:          st,
		db:             db,
		clients:        make(map[*Client]bool),
		connections:    make(map[string][]*Client),
		processMessage: make(chan clientMessage),
		register:       make(chan *Client),
		unregister:     make(chan *Client),
		broadcast:      make(chan string),
	}
}

// Run starts the Hub's main loop.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			client.ID = uuid.NewString()
			log.Printf("Client %s (%s) connected", client.ID, client.conn.RemoteAddr())
			h.clientMu.Lock()
			h.clients[client] = true
			h.clientMu.Unlock()

		case client := <-h.unregister:
			h.dropClient(client)

		case gameID := <-h.broadcast:
			if g, ok := h.store.GetGame(gameID); ok {
				h.broadcastGameUpdate(g)
			}

		case clientMsg := <-h.processMessage:
			h.handleMessage(clientMsg.client, clientMsg.message)
		}
	}
}

// dropClient removes a connection and flips the player's connectivity flag.
// A disconnect never pauses or cancels a game action; a disconnected player
// whose turn it is simply stalls the game.
func (h *Hub) dropClient(client *Client) {
	h.clientMu.Lock()
	if _, exists := h.clients[client]; exists {
		delete(h.clients, client)
		close(client.send)
		log.Printf("Client %s disconnected", client.ID)
	}
	h.clientMu.Unlock()

	if client.GameID == "" {
		return
	}

	h.connMu.Lock()
	conns := h.connections[client.GameID]
	remaining := conns[:0]
	for _, c := range conns {
		if c != client {
			remaining = append(remaining, c)
		}
	}
	h.connections[client.GameID] = remaining
	h.connMu.Unlock()

	if g, ok := h.store.GetGame(client.GameID); ok && client.PlayerID != "" {
		g.SetConnected(client.PlayerID, false)
		h.broadcastGameUpdate(g)
	}
}

// handleMessage processes a message received from a client.
func (h *Hub) handleMessage(client *Client, msg protocol.Message) {
	switch msg.Type {
	case "join":
		h.handleJoin(client, msg)
	case "bid", "pass", "play_card", "select_trump", "reveal_trump":
		h.handleGameAction(client, msg)
	case "ping":
		pongMsg, _ := protocol.NewMessage("pong", nil)
		client.send <- pongMsg
	default:
		log.Printf("Received unknown message type '%s' from client %s", msg.Type, client.ID)
		h.sendErrorToClient(client, "Unknown message type.")
	}
}

// handleJoin attaches a connection to its game and seat, marks the player
// connected and replies with the current canonical state.
func (h *Hub) handleJoin(client *Client, msg protocol.Message) {
	var payload protocol.JoinPayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("Error unmarshalling join payload from client %s: %v", client.ID, err)
		h.sendErrorToClient(client, "Invalid join message format.")
		return
	}
	if payload.GameID == "" || payload.PlayerID == "" {
		h.sendErrorToClient(client, "Game and player are required to join.")
		return
	}

	g, ok := h.store.GetGame(payload.GameID)
	if !ok {
		log.Printf("Client %s tried to join unknown game %s", client.ID, payload.GameID)
		h.sendErrorToClient(client, "Game not found.")
		return
	}
	if !g.SetConnected(payload.PlayerID, true) {
		log.Printf("Client %s tried to join game %s as unknown player %s", client.ID, payload.GameID, payload.PlayerID)
		h.sendErrorToClient(client, "Player not found in this game.")
		return
	}

	client.GameID = payload.GameID
	client.PlayerID = payload.PlayerID

	h.connMu.Lock()
	h.connections[payload.GameID] = append(h.connections[payload.GameID], client)
	h.connMu.Unlock()

	log.Printf("Client %s joined game %s as player %s", client.ID, payload.GameID, payload.PlayerID)
	h.broadcastGameUpdate(g)
}

// handleGameAction dispatches one engine action. A rejected action never
// mutates state and never broadcasts; the offending connection alone gets
// the error.
func (h *Hub) handleGameAction(client *Client, msg protocol.Message) {
	if client.GameID == "" || client.PlayerID == "" {
		h.sendErrorToClient(client, "You are not in a game. Send join first.")
		return
	}
	g, ok := h.store.GetGame(client.GameID)
	if !ok {
		h.sendErrorToClient(client, "Game not found.")
		return
	}

	var err error
	switch msg.Type {
	case "bid":
		var payload protocol.BidPayload
		if err = json.Unmarshal(msg.Payload, &payload); err != nil {
			h.sendErrorToClient(client, "Invalid bid message.")
			return
		}
		err = g.HandleBid(client.PlayerID, payload.Amount)
	case "pass":
		err = g.HandlePass(client.PlayerID)
	case "play_card":
		var payload protocol.PlayCardPayload
		if err = json.Unmarshal(msg.Payload, &payload); err != nil {
			h.sendErrorToClient(client, "Invalid play_card message.")
			return
		}
		err = g.HandlePlayCard(client.PlayerID, payload.Card.Suit, payload.Card.Rank)
	case "select_trump":
		var payload protocol.SelectTrumpPayload
		if err = json.Unmarshal(msg.Payload, &payload); err != nil {
			h.sendErrorToClient(client, "Invalid select_trump message.")
			return
		}
		err = g.HandleSelectTrump(client.PlayerID, payload.Suit, shared.Card{Suit: payload.Card.Suit, Rank: payload.Card.Rank})
	case "reveal_trump":
		err = g.HandleRevealTrump(client.PlayerID)
	}

	if err != nil {
		log.Printf("Game %s: rejected '%s' from player %s: %v", client.GameID, msg.Type, client.PlayerID, err)
		h.sendErrorToClient(client, err.Error())
		return
	}

	h.broadcastGameUpdate(g)
	h.archiveIfCompleted(g)
}

// broadcastGameUpdate fans the canonical snapshot out to every connection
// of the game. Sends are non-blocking; a stuck connection is cleaned up
// instead of stalling the mutation path.
func (h *Hub) broadcastGameUpdate(g *game.Game) {
	snapshot := g.Snapshot()
	msgBytes, err := protocol.NewMessage("game_update", snapshot)
	if err != nil {
		log.Printf("Game %s: error creating game_update message: %v", g.ID, err)
		return
	}

	h.connMu.RLock()
	conns := make([]*Client, len(h.connections[g.ID]))
	copy(conns, h.connections[g.ID])
	h.connMu.RUnlock()

	for _, client := range conns {
		h.sendToClient(client, msgBytes)
	}
}

// archiveIfCompleted persists the final result the first time a game
// reaches its terminal state.
func (h *Hub) archiveIfCompleted(g *game.Game) {
	result, ok := g.TakeCompletionResult()
	if !ok {
		return
	}
	record := database.GameResult{
		ID:            result.GameID,
		CreatedAt:     time.Now().UTC().Format(time.RFC3339),
		Variant:       string(result.Variant),
		Player1:       result.PlayerNames[0],
		Player2:       result.PlayerNames[1],
		Player3:       result.PlayerNames[2],
		Player4:       result.PlayerNames[3],
		WinningTeam:   string(result.WinningTeam),
		TeamATricks:   result.TeamATricks,
		TeamBTricks:   result.TeamBTricks,
		Contract:      result.Contract,
		BiddingTeam:   string(result.BiddingTeam),
		BidSuccessful: result.BidSuccessful,
	}
	// Archive off the mutation path; a database failure never affects the game.
	go func() {
		if err := h.db.Insert(record); err != nil {
			log.Printf("Game %s: failed to archive result: %v", result.GameID, err)
		}
	}()
}

// sendToClient delivers a message with a non-blocking send, cleaning up
// the client when its channel is full or closed.
func (h *Hub) sendToClient(client *Client, message []byte) {
	if client == nil {
		return
	}
	select {
	case client.send <- message:
	default:
		log.Printf("Failed to send message to client %s (channel full or closed), initiating cleanup.", client.ID)
		go func() {
			h.clientMu.RLock()
			_, stillConnected := h.clients[client]
			h.clientMu.RUnlock()
			if stillConnected {
				h.unregister <- client
			}
		}()
	}
}

// sendErrorToClient sends an error message to a specific client.
func (h *Hub) sendErrorToClient(client *Client, errorMsg string) {
	payload := protocol.ErrorPayload{Message: errorMsg}
	msgBytes, err := protocol.NewMessage("error", payload)
	if err != nil {
		log.Printf("Error creating error message for client %s: %v", client.ID, err)
		return
	}
	h.sendToClient(client, msgBytes)
}

// BroadcastGame lets the HTTP boundary push a state update after a
// join-triggered mutation. The fan-out rides the hub's own loop so every
// send stays serialized with disconnect cleanup; a send on a channel that
// dropClient just closed can therefore never happen.
func (h *Hub) BroadcastGame(gameID string) {
	h.broadcast <- gameID
}
