package ws

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog"
	"nhooyr.io/websocket"

	"sequence/internal/protocol"
)

const (
	sendBuffer   = 64
	writeTimeout = 5 * time.Second
	pingInterval = 15 * time.Second
)

// Client wraps one websocket connection. It implements session.Conn:
// outgoing messages are queued on a buffered channel drained by a single
// writer goroutine, so sessions never block on delivery.
type Client struct {
	conn *websocket.Conn
	send chan []byte
	log  zerolog.Logger
}

func newClient(conn *websocket.Conn, log zerolog.Logger) *Client {
	return &Client{
		conn: conn,
		send: make(chan []byte, sendBuffer),
		log:  log,
	}
}

// Send queues a message for delivery. Messages to a client that cannot
// keep up are dropped; the server push is not acknowledged.
func (c *Client) Send(msg protocol.Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		c.log.Error().Err(err).Str("type", msg.Type).Msg("failed to encode message")
		return
	}
	select {
	case c.send <- data:
	default:
		c.log.Warn().Str("type", msg.Type).Msg("dropping message to slow client")
	}
}

// writePump drains the send queue and keeps the connection alive with
// pings. It exits when the context is canceled or a write fails.
func (c *Client) writePump(ctx context.Context) {
	ping := time.NewTicker(pingInterval)
	defer ping.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case data := <-c.send:
			if err := c.write(ctx, data); err != nil {
				return
			}
		case <-ping.C:
			if err := c.conn.Ping(ctx); err != nil {
				return
			}
		}
	}
}

func (c *Client) write(ctx context.Context, data []byte) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	return c.conn.Write(ctx, websocket.MessageText, data)
}
