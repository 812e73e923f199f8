// Package protocol defines the JSON message contract exchanged with
// clients over the persistent connection. Every message is an envelope of
// a type tag and a structured payload.
package protocol

import (
	"encoding/json"

	"sequence/internal/domain"
)

// Client to server intents.
const (
	TypeCreateGame = "CREATE_GAME"
	TypeJoinGame   = "JOIN_GAME"
	TypeMakeMove   = "MAKE_MOVE"
	TypeReconnect  = "RECONNECT"
)

// Server to client events.
const (
	TypeGameCreated       = "GAME_CREATED"
	TypeGameJoined        = "GAME_JOINED"
	TypePlayerJoined      = "PLAYER_JOINED"
	TypeGameStarted       = "GAME_STARTED"
	TypeGameStateUpdated  = "GAME_STATE_UPDATED"
	TypeReconnectSuccess  = "RECONNECT_SUCCESS"
	TypeSequenceCompleted = "SEQUENCE_COMPLETED"
	TypeGameOver          = "GAME_OVER"
	TypeError             = "ERROR"
)

// Message is the wire envelope. Payload stays raw until the type tag has
// been inspected.
type Message struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// NewMessage wraps a payload value in an envelope.
func NewMessage(msgType string, payload any) (Message, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Message{}, err
	}
	return Message{Type: msgType, Payload: raw}, nil
}

// PlayerInfo is the public roster entry for a player: never the hand.
type PlayerInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type CreateGamePayload struct {
	PlayerName string `json:"playerName"`
}

type JoinGamePayload struct {
	GameID     string `json:"gameId"`
	PlayerName string `json:"playerName"`
}

type MakeMovePayload struct {
	GameID    string          `json:"gameId"`
	CardIndex int             `json:"cardIndex"`
	Position  domain.Position `json:"position"`
	PlayerID  string          `json:"playerId"`
}

type ReconnectPayload struct {
	GameID   string `json:"gameId"`
	PlayerID string `json:"playerId"`
}

type GameCreatedPayload struct {
	GameID   string       `json:"gameId"`
	PlayerID string       `json:"playerId"`
	Players  []PlayerInfo `json:"players"`
}

type GameJoinedPayload struct {
	GameID   string       `json:"gameId"`
	PlayerID string       `json:"playerId"`
	Players  []PlayerInfo `json:"players"`
}

type PlayerJoinedPayload struct {
	GameID      string       `json:"gameId"`
	PlayerCount int          `json:"playerCount"`
	Players     []PlayerInfo `json:"players"`
}

type GameStartedPayload struct {
	GameID    string            `json:"gameId"`
	GameState *domain.GameState `json:"gameState"`
	Players   []PlayerInfo      `json:"players"`
	PlayerID  string            `json:"playerId"`
}

type GameStateUpdatedPayload struct {
	GameID    string            `json:"gameId"`
	GameState *domain.GameState `json:"gameState"`
}

type ReconnectSuccessPayload struct {
	GameID    string            `json:"gameId"`
	PlayerID  string            `json:"playerId"`
	Players   []PlayerInfo      `json:"players"`
	GameState *domain.GameState `json:"gameState"`
}

type SequenceCompletedPayload struct {
	GameID   string            `json:"gameId"`
	PlayerID string            `json:"playerId"`
	Cells    []domain.Position `json:"cells"`
}

type GameOverPayload struct {
	GameID     string `json:"gameId"`
	WinnerID   string `json:"winnerId"`
	WinnerName string `json:"winnerName"`
}

type ErrorPayload struct {
	Message string `json:"message"`
}

// Error builds an ERROR event carrying a human-readable message.
func Error(message string) Message {
	msg, _ := NewMessage(TypeError, ErrorPayload{Message: message})
	return msg
}
