// Package ws adapts the websocket transport to the session manager. It
// decodes the JSON message envelope, dispatches intents and reports
// failures back as ERROR events. Unparseable input is transport noise:
// logged locally, never surfaced to any client.
package ws

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"
	"nhooyr.io/websocket"

	"sequence/internal/protocol"
	"sequence/internal/session"
)

var errIdsRequired = errors.New("game ID and player ID are required")

// Handler accepts websocket connections on an HTTP endpoint and runs the
// read loop for each.
type Handler struct {
	manager      *session.Manager
	allowOrigins []string
	log          zerolog.Logger
}

// NewHandler constructs the websocket endpoint handler.
func NewHandler(manager *session.Manager, allowOrigins []string, log zerolog.Logger) *Handler {
	return &Handler{
		manager:      manager,
		allowOrigins: allowOrigins,
		log:          log,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: h.allowOrigins,
	})
	if err != nil {
		h.log.Warn().Err(err).Msg("websocket accept failed")
		return
	}
	defer conn.Close(websocket.StatusInternalError, "")

	client := newClient(conn, h.log)
	h.log.Info().Str("addr", r.RemoteAddr).Msg("client connected")

	ctx := r.Context()
	go client.writePump(ctx)

	// The player entry survives the connection so the client can
	// RECONNECT; only the handle is unbound.
	defer h.manager.DropConn(client)

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			h.log.Info().Str("addr", r.RemoteAddr).Msg("client disconnected")
			return
		}
		var msg protocol.Message
		if err := json.Unmarshal(data, &msg); err != nil {
			h.log.Debug().Err(err).Msg("dropping unparseable message")
			continue
		}
		h.dispatch(client, msg)
	}
}

// dispatch routes one decoded envelope. Session and rule violations go
// back to the requester as an ERROR event; the match stays live.
func (h *Handler) dispatch(client *Client, msg protocol.Message) {
	var err error
	switch msg.Type {
	case protocol.TypeCreateGame:
		var p protocol.CreateGamePayload
		if !h.decode(msg, &p) {
			return
		}
		h.manager.CreateGame(client, p.PlayerName)

	case protocol.TypeJoinGame:
		var p protocol.JoinGamePayload
		if !h.decode(msg, &p) {
			return
		}
		err = h.manager.JoinGame(client, p.GameID, p.PlayerName)

	case protocol.TypeMakeMove:
		var p protocol.MakeMovePayload
		if !h.decode(msg, &p) {
			return
		}
		err = h.manager.MakeMove(client, p)

	case protocol.TypeReconnect:
		var p protocol.ReconnectPayload
		if !h.decode(msg, &p) {
			return
		}
		if p.GameID == "" || p.PlayerID == "" {
			err = errIdsRequired
		} else {
			err = h.manager.Reconnect(client, p.GameID, p.PlayerID)
		}

	default:
		h.log.Warn().Str("type", msg.Type).Msg("unknown message type")
	}

	if err != nil {
		client.Send(protocol.Error(err.Error()))
	}
}

// decode unmarshals an intent payload. A missing payload decodes to the
// zero value; malformed JSON is dropped as noise.
func (h *Handler) decode(msg protocol.Message, out any) bool {
	if len(msg.Payload) == 0 {
		return true
	}
	if err := json.Unmarshal(msg.Payload, out); err != nil {
		h.log.Debug().Err(err).Str("type", msg.Type).Msg("dropping malformed payload")
		return false
	}
	return true
}
