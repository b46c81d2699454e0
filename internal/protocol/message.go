package protocol

import (
	"encoding/json"

	"courtpiece-game/internal/shared"
)

// Message represents a generic WebSocket message structure.
type Message struct {
	Type    string          `json:"type"`              // e.g. "bid", "play_card", "game_update"
	Payload json.RawMessage `json:"payload,omitempty"` // Raw JSON payload, allows flexible structures
}

// --- Client -> Server Payload Structs ---

type JoinPayload struct {
	GameID   string `json:"gameId"`
	PlayerID string `json:"playerId"`
}

type BidPayload struct {
	Amount int `json:"amount"`
}

type CardRef struct {
	Suit shared.Suit `json:"suit"`
	Rank string      `json:"rank"`
}

type PlayCardPayload struct {
	Card CardRef `json:"card"`
}

type SelectTrumpPayload struct {
	Suit shared.Suit `json:"suit"`
	Card CardRef     `json:"card"`
}

// --- Server -> Client Payload Structs ---

type ErrorPayload struct {
	Message string `json:"message"`
}

// NewMessage builds a JSON-encoded message envelope.
func NewMessage(msgType string, payload interface{}) ([]byte, error) {
	if payload == nil {
		return json.Marshal(Message{Type: msgType})
	}
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return json.Marshal(Message{Type: msgType, Payload: payloadBytes})
}
