package websocket

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
	sendBuffer     = 64

	// RefreshInterval is the minimum gap between two refresh requests of one client
	RefreshInterval = 5 * time.Second
)

// MessageTypeRefresh asks the server to recompute the workspace's projection now
const MessageTypeRefresh = "projection.refresh"

// ClientMessage is a request sent by a subscriber
type ClientMessage struct {
	Type string `json:"type"`
}

// RefreshFunc recomputes a workspace's projection and publishes it to its subscribers
type RefreshFunc func(workspaceID int32) error

// Client is one browser connection subscribed to a workspace's plan events
type Client struct {
	id          string
	workspaceID int32
	conn        *websocket.Conn
	hub         *Hub
	send        chan []byte
	refresh     RefreshFunc
	limiter     *rate.Limiter
	closed      bool
	mu          sync.RWMutex
	closeOnce   sync.Once
}

// NewClient wraps an upgraded connection. refresh may be nil, in which case
// refresh requests are ignored.
func NewClient(conn *websocket.Conn, workspaceID int32, hub *Hub, refresh RefreshFunc) *Client {
	return &Client{
		id:          uuid.New().String(),
		workspaceID: workspaceID,
		conn:        conn,
		hub:         hub,
		send:        make(chan []byte, sendBuffer),
		refresh:     refresh,
		limiter:     rate.NewLimiter(rate.Every(RefreshInterval), 1),
	}
}

// ID returns the client's unique identifier
func (c *Client) ID() string {
	return c.id
}

// WorkspaceID returns the workspace the client listens to
func (c *Client) WorkspaceID() int32 {
	return c.workspaceID
}

// Send queues a message. A full buffer means the client is too slow; it is dropped.
func (c *Client) Send(data []byte) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.closed {
		return ErrClientClosed
	}

	select {
	case c.send <- data:
		return nil
	default:
		return ErrClientClosed
	}
}

// Close closes the connection. Safe to call more than once.
func (c *Client) Close() error {
	var closeErr error
	c.closeOnce.Do(func() {
		c.mu.Lock()
		c.closed = true
		close(c.send)
		c.mu.Unlock()

		if c.conn != nil {
			closeErr = c.conn.Close()
		}
	})
	return closeErr
}

// HandleMessage acts on one frame received from the client.
// It reports whether a refresh was triggered.
func (c *Client) HandleMessage(data []byte) bool {
	var msg ClientMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		log.Debug().Err(err).Str("client_id", c.id).Msg("Ignoring malformed client message")
		return false
	}

	if msg.Type != MessageTypeRefresh {
		log.Debug().Str("client_id", c.id).Str("type", msg.Type).Msg("Ignoring unknown client message")
		return false
	}
	if c.refresh == nil {
		return false
	}
	if !c.limiter.Allow() {
		log.Debug().Str("client_id", c.id).Int32("workspace_id", c.workspaceID).Msg("Refresh throttled")
		return false
	}

	if err := c.refresh(c.workspaceID); err != nil {
		log.Warn().
			Err(err).
			Str("client_id", c.id).
			Int32("workspace_id", c.workspaceID).
			Msg("Projection refresh failed")
		return false
	}
	return true
}

// ReadPump reads refresh requests and processes pongs until the connection drops
func (c *Client) ReadPump() {
	defer func() {
		c.hub.Unregister(c)
		c.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		msgType, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Warn().
					Err(err).
					Str("client_id", c.id).
					Int32("workspace_id", c.workspaceID).
					Msg("WebSocket unexpected close")
			}
			return
		}
		if msgType == websocket.TextMessage {
			c.HandleMessage(data)
		}
	}
}

// WritePump writes queued events and keeps the connection alive with pings
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				log.Warn().
					Err(err).
					Str("client_id", c.id).
					Int32("workspace_id", c.workspaceID).
					Msg("WebSocket write error")
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
