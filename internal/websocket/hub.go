// Package livews pushes cache invalidation events to a user's open sockets.
package livews

import (
	"context"
	"encoding/json"
	"time"

	websocket "github.com/gofiber/contrib/websocket"
	"github.com/rs/zerolog"
)

const (
	clientBuffer  = 32
	publishBuffer = 256
	pingInterval  = 30 * time.Second
)

// Event tells a client that data behind path changed.
type Event struct {
	Type string    `json:"type"`
	Path string    `json:"path"`
	At   time.Time `json:"at"`
}

type delivery struct {
	userID string
	event  Event
}

// Hub owns the client map from a single goroutine started by Run.
type Hub struct {
	clients    map[string]map[*Client]struct{}
	register   chan *Client
	unregister chan *Client
	broadcast  chan delivery
	done       chan struct{}
	logger     zerolog.Logger
	now        func() time.Time
}

type Client struct {
	hub    *Hub
	conn   *websocket.Conn
	userID string
	send   chan []byte
}

func NewHub(logger zerolog.Logger) *Hub {
	return &Hub{
		clients:    make(map[string]map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan delivery, publishBuffer),
		done:       make(chan struct{}),
		logger:     logger,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func NewClient(hub *Hub, conn *websocket.Conn, userID string) *Client {
	return &Client{
		hub:    hub,
		conn:   conn,
		userID: userID,
		send:   make(chan []byte, clientBuffer),
	}
}

// Run serves registrations and deliveries until ctx is cancelled, then
// closes every client.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			for userID, set := range h.clients {
				for client := range set {
					close(client.send)
				}
				delete(h.clients, userID)
			}
			return
		case client := <-h.register:
			set, ok := h.clients[client.userID]
			if !ok {
				set = make(map[*Client]struct{})
				h.clients[client.userID] = set
			}
			set[client] = struct{}{}
		case client := <-h.unregister:
			h.remove(client)
		case d := <-h.broadcast:
			h.deliver(d)
		}
	}
}

func (h *Hub) Register(client *Client) bool {
	select {
	case h.register <- client:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// Publish queues an invalidation for userID without blocking the caller.
// Events are dropped when the queue is full.
func (h *Hub) Publish(userID, path string) {
	d := delivery{userID: userID, event: Event{Type: "invalidate", Path: path, At: h.now()}}
	select {
	case h.broadcast <- d:
	default:
		h.logger.Warn().Str("user_id", userID).Str("path", path).Msg("event queue full, dropping")
	}
}

func (h *Hub) remove(client *Client) {
	set, ok := h.clients[client.userID]
	if !ok {
		return
	}
	if _, exists := set[client]; exists {
		delete(set, client)
		close(client.send)
	}
	if len(set) == 0 {
		delete(h.clients, client.userID)
	}
}

func (h *Hub) deliver(d delivery) {
	set, ok := h.clients[d.userID]
	if !ok {
		return
	}
	payload, err := json.Marshal(d.event)
	if err != nil {
		h.logger.Error().Err(err).Msg("encode event")
		return
	}

	for client := range set {
		select {
		case client.send <- payload:
		default:
			// Slow consumer.
			delete(set, client)
			close(client.send)
		}
	}
	if len(set) == 0 {
		delete(h.clients, d.userID)
	}
}

// ReadPump drains the socket until the peer goes away. Clients never send
// anything meaningful; reading is what notices a closed connection.
func (c *Client) ReadPump() {
	defer func() {
		c.hub.Unregister(c)
		_ = c.conn.Close()
	}()

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *Client) WritePump() {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case payload, ok := <-c.send:
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, nil)
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ticker.C:
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
