// Package session owns the set of live matches and maps connections to
// players. All mutations of a match funnel through its per-session lock;
// independent matches never contend.
package session

import (
	"github.com/sasha-s/go-deadlock"

	"sequence/internal/domain"
	"sequence/internal/protocol"
)

// Conn is the transport handle bound to a player. Send must be
// fire-and-forget: it queues the message and never blocks, so broadcasts
// cannot stall a session's critical section. The session does not own the
// connection lifecycle; it only routes to whichever handle last registered
// for a player id.
type Conn interface {
	Send(msg protocol.Message)
}

// playerSlot joins a player identity to its current transport handle.
// Identity continuity across reconnects is by player id, never by
// connection.
type playerSlot struct {
	ID   string
	Name string
	Conn Conn
}

// Session is one pending or in-progress match. state stays nil until the
// second player joins. closed marks a session already removed from the
// registry, for callers that resolved it before the removal.
type Session struct {
	mu     deadlock.Mutex
	id     string
	slots  []*playerSlot
	state  *domain.GameState
	closed bool
}

// ID returns the opaque session id.
func (s *Session) ID() string {
	return s.id
}

func (s *Session) roster() []protocol.PlayerInfo {
	players := make([]protocol.PlayerInfo, len(s.slots))
	for i, slot := range s.slots {
		players[i] = protocol.PlayerInfo{ID: slot.ID, Name: slot.Name}
	}
	return players
}

func (s *Session) slotByID(playerID string) *playerSlot {
	for _, slot := range s.slots {
		if slot.ID == playerID {
			return slot
		}
	}
	return nil
}

func (s *Session) slotByConn(conn Conn) *playerSlot {
	for _, slot := range s.slots {
		if slot.Conn == conn {
			return slot
		}
	}
	return nil
}

// broadcast queues a message on every bound handle.
func (s *Session) broadcast(msg protocol.Message) {
	for _, slot := range s.slots {
		if slot.Conn != nil {
			slot.Conn.Send(msg)
		}
	}
}
