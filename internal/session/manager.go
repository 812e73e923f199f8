package session

import (
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"sequence/internal/app"
	"sequence/internal/domain"
	"sequence/internal/protocol"
)

var (
	ErrGameNotFound   = errors.New("game not found")
	ErrGameFull       = errors.New("game is full")
	ErrGameNotStarted = errors.New("game not found or not started")
	ErrPlayerNotFound = errors.New("player not found in this game")
)

// maxSessionPlayers caps a session at two players; the match auto-starts
// the moment the second one joins.
const maxSessionPlayers = 2

var seatTokens = []domain.TokenType{domain.TokenPlayer1, domain.TokenPlayer2}

// Manager routes intents to sessions. It is the only component that
// mutates session state, always under the session's lock.
type Manager struct {
	registry *Registry
	svc      *app.Service
	log      zerolog.Logger
	newID    func() string
}

// NewManager constructs a manager around an injected registry and game
// service.
func NewManager(registry *Registry, svc *app.Service, log zerolog.Logger) *Manager {
	return &Manager{
		registry: registry,
		svc:      svc,
		log:      log,
		newID:    uuid.NewString,
	}
}

// CreateGame opens a new session with the requester as its first player
// and confirms with a GAME_CREATED event. The returned ids are opaque.
func (m *Manager) CreateGame(conn Conn, playerName string) (gameID, playerID string) {
	if playerName == "" {
		playerName = "Player 1"
	}
	gameID = m.newID()
	playerID = m.newID()

	sess := m.registry.Create(gameID)
	sess.mu.Lock()
	sess.slots = append(sess.slots, &playerSlot{ID: playerID, Name: playerName, Conn: conn})
	roster := sess.roster()
	sess.mu.Unlock()

	m.log.Info().Str("game", gameID).Str("player", playerID).Msg("game created")

	if msg, err := protocol.NewMessage(protocol.TypeGameCreated, protocol.GameCreatedPayload{
		GameID:   gameID,
		PlayerID: playerID,
		Players:  roster,
	}); err == nil {
		conn.Send(msg)
	}
	return gameID, playerID
}

// JoinGame adds a player to a pending session and auto-starts the match
// once it is full. The joiner gets GAME_JOINED, everyone gets
// PLAYER_JOINED, and on start every player gets a GAME_STARTED carrying
// their own player id.
func (m *Manager) JoinGame(conn Conn, gameID, playerName string) error {
	if playerName == "" {
		playerName = "Player 2"
	}
	sess := m.registry.Lookup(gameID)
	if sess == nil {
		return ErrGameNotFound
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.closed {
		return ErrGameNotFound
	}
	if len(sess.slots) >= maxSessionPlayers {
		return ErrGameFull
	}
	playerID := m.newID()
	sess.slots = append(sess.slots, &playerSlot{ID: playerID, Name: playerName, Conn: conn})
	roster := sess.roster()

	m.log.Info().Str("game", gameID).Str("player", playerID).Msg("player joined")

	if msg, err := protocol.NewMessage(protocol.TypeGameJoined, protocol.GameJoinedPayload{
		GameID:   gameID,
		PlayerID: playerID,
		Players:  roster,
	}); err == nil {
		conn.Send(msg)
	}
	if msg, err := protocol.NewMessage(protocol.TypePlayerJoined, protocol.PlayerJoinedPayload{
		GameID:      gameID,
		PlayerCount: len(sess.slots),
		Players:     roster,
	}); err == nil {
		sess.broadcast(msg)
	}

	if len(sess.slots) == maxSessionPlayers {
		if err := m.startLocked(sess); err != nil {
			// Give the seat back so the session can accept a later join
			// instead of sitting full but unstarted.
			sess.slots = sess.slots[:len(sess.slots)-1]
			m.log.Error().Err(err).Str("game", gameID).Msg("match start failed")
			return err
		}
	}
	return nil
}

// startLocked deals the match for a full session. Callers hold the
// session lock.
func (m *Manager) startLocked(sess *Session) error {
	players := make([]domain.Player, len(sess.slots))
	for i, slot := range sess.slots {
		players[i] = domain.Player{
			ID:        slot.ID,
			Name:      slot.Name,
			TokenType: seatTokens[i],
		}
	}

	state, err := m.svc.StartMatch(players)
	if err != nil {
		return err
	}
	sess.state = state

	m.log.Info().Str("game", sess.id).Int("players", len(players)).Msg("game started")

	roster := sess.roster()
	for _, slot := range sess.slots {
		if slot.Conn == nil {
			continue
		}
		if msg, err := protocol.NewMessage(protocol.TypeGameStarted, protocol.GameStartedPayload{
			GameID:    sess.id,
			GameState: state,
			Players:   roster,
			PlayerID:  slot.ID,
		}); err == nil {
			slot.Conn.Send(msg)
		}
	}
	return nil
}

// MakeMove resolves the acting player, applies the move and broadcasts
// the resulting state. The player is resolved by connection handle first,
// then by the explicit player id; a match on id re-binds the handle, which
// heals stale handles after silent reconnects.
func (m *Manager) MakeMove(conn Conn, req protocol.MakeMovePayload) error {
	sess := m.registry.Lookup(req.GameID)
	if sess == nil {
		return ErrGameNotStarted
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.state == nil {
		return ErrGameNotStarted
	}

	slot := sess.slotByConn(conn)
	if slot == nil && req.PlayerID != "" {
		if slot = sess.slotByID(req.PlayerID); slot != nil {
			m.log.Info().Str("game", sess.id).Str("player", slot.ID).Msg("re-binding stale connection handle")
			slot.Conn = conn
		}
	}
	if slot == nil {
		return ErrPlayerNotFound
	}

	if !domain.IsPlayerTurn(sess.state, slot.ID) {
		return domain.ErrNotYourTurn
	}

	next, events, err := m.svc.PlayCard(sess.state, slot.ID, req.CardIndex, req.Position)
	if err != nil {
		return err
	}
	sess.state = next

	m.log.Debug().
		Str("game", sess.id).
		Str("player", slot.ID).
		Int("row", req.Position.Row).
		Int("col", req.Position.Col).
		Msg("move applied")

	m.dispatchLocked(sess, events)
	return nil
}

// Reconnect re-binds a player's connection handle and replies with a full
// state snapshot. Player identity is never recreated, so re-issuing the
// same reconnect is safe.
func (m *Manager) Reconnect(conn Conn, gameID, playerID string) error {
	sess := m.registry.Lookup(gameID)
	if sess == nil {
		return ErrGameNotFound
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.closed {
		return ErrGameNotFound
	}
	slot := sess.slotByID(playerID)
	if slot == nil {
		return ErrPlayerNotFound
	}
	slot.Conn = conn

	m.log.Info().Str("game", gameID).Str("player", playerID).Msg("player reconnected")

	if msg, err := protocol.NewMessage(protocol.TypeReconnectSuccess, protocol.ReconnectSuccessPayload{
		GameID:    gameID,
		PlayerID:  playerID,
		Players:   sess.roster(),
		GameState: sess.state,
	}); err == nil {
		conn.Send(msg)
	}
	return nil
}

// DropConn unbinds a disconnected handle wherever it is registered. The
// player entry is kept so the player can reconnect; sessions that never
// started and have no bound handles left are discarded.
func (m *Manager) DropConn(conn Conn) {
	for _, sess := range m.registry.All() {
		sess.mu.Lock()
		slot := sess.slotByConn(conn)
		if slot == nil {
			sess.mu.Unlock()
			continue
		}
		slot.Conn = nil
		abandoned := sess.state == nil
		for _, other := range sess.slots {
			if other.Conn != nil {
				abandoned = false
			}
		}
		if abandoned {
			// Remove from the registry while still holding the session
			// lock, so a join that resolved the session concurrently sees
			// the closed marker instead of a live session.
			sess.closed = true
			m.registry.Delete(sess.id)
		}
		sess.mu.Unlock()

		m.log.Info().Str("game", sess.id).Str("player", slot.ID).Msg("connection dropped")
		if abandoned {
			m.log.Info().Str("game", sess.id).Msg("abandoned session discarded")
		}
	}
}

// dispatchLocked converts game events to wire messages. Events with
// recipients go only to those players; the rest are broadcast.
func (m *Manager) dispatchLocked(sess *Session, events []app.Event) {
	for _, ev := range events {
		var msg protocol.Message
		var err error
		switch payload := ev.Payload.(type) {
		case app.StateUpdatedPayload:
			msg, err = protocol.NewMessage(protocol.TypeGameStateUpdated, protocol.GameStateUpdatedPayload{
				GameID:    sess.id,
				GameState: payload.State,
			})
		case app.SequenceCompletedPayload:
			msg, err = protocol.NewMessage(protocol.TypeSequenceCompleted, protocol.SequenceCompletedPayload{
				GameID:   sess.id,
				PlayerID: payload.PlayerID,
				Cells:    payload.Run.Cells,
			})
		case app.GameEndedPayload:
			msg, err = protocol.NewMessage(protocol.TypeGameOver, protocol.GameOverPayload{
				GameID:     sess.id,
				WinnerID:   payload.WinnerID,
				WinnerName: payload.WinnerName,
			})
		default:
			continue
		}
		if err != nil {
			m.log.Error().Err(err).Str("game", sess.id).Msg("failed to encode event")
			continue
		}

		if len(ev.Recipients) == 0 {
			sess.broadcast(msg)
			continue
		}
		for _, id := range ev.Recipients {
			if slot := sess.slotByID(id); slot != nil && slot.Conn != nil {
				slot.Conn.Send(msg)
			}
		}
	}
}
