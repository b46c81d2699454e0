package game

import "errors"

// Engine error taxonomy. A rejected action never mutates game state and is
// surfaced to the offending caller only.
var (
	// ErrIllegalAction marks an action that does not match the current phase
	// or was sent by a seat that is not the designated actor.
	ErrIllegalAction = errors.New("illegal action")
	// ErrInvalidPayload marks a malformed message, an out-of-range amount or
	// a card reference not present in the claimed hand.
	ErrInvalidPayload = errors.New("invalid payload")
	// ErrCapacityViolation marks an attempt to join a game with four seated
	// players.
	ErrCapacityViolation = errors.New("game is full")
	// ErrNotFound marks a reference to an unknown game or player.
	ErrNotFound = errors.New("not found")
)
