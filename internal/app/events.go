package app

import "sequence/internal/domain"

// EventKind identifies emitted game events for transport dispatch.
type EventKind string

const (
	EventStateUpdated      EventKind = "state_updated"
	EventSequenceCompleted EventKind = "sequence_completed"
	EventGameEnded         EventKind = "game_ended"
)

// Event is a game event with optional targeted recipients.
type Event struct {
	Kind       EventKind
	Payload    any
	Recipients []string // player ids; empty means broadcast
}

type StateUpdatedPayload struct {
	State *domain.GameState
}

type SequenceCompletedPayload struct {
	Run      domain.SequenceRun
	PlayerID string
}

type GameEndedPayload struct {
	WinnerID   string
	WinnerName string
}
