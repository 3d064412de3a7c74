package wshub

import (
	"context"
	"log"
	"sync"

	"github.com/coder/websocket"
)

type Role string

const (
	RolePlayer    = Role("player")
	RoleSpectator = Role("spectator")
)

// Client represents a single WebSocket connection in the hub.
type Client struct {
	ID    string
	Role  Role
	Codec Codec
	Conn  *websocket.Conn
	Send  chan []byte
}

func NewClient(id string, role Role, codec Codec, conn *websocket.Conn) *Client {
	return &Client{
		ID:    id,
		Role:  role,
		Codec: codec,
		Conn:  conn,
		Send:  make(chan []byte, 64),
	}
}

// WritePump reads from the Send channel and writes to the WebSocket connection.
func (c *Client) WritePump(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-c.Send:
			if !ok {
				return
			}
			if err := c.Conn.Write(ctx, c.Codec.MessageType(), msg); err != nil {
				return
			}
		}
	}
}

// Hub manages the WebSocket connections of one room.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*Client
}

// NewHub creates a new Hub.
func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]*Client),
	}
}

// Register adds a client to the hub.
func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c.ID] = c
}

// Unregister removes a client and closes its Send channel. The rest of the
// room is not told; spectators come and go silently.
func (h *Hub) Unregister(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if c, ok := h.clients[id]; ok {
		close(c.Send)
		delete(h.clients, id)
	}
}

func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Broadcast sends a message to every client.
func (h *Hub) Broadcast(msg ServerMessage) {
	h.BroadcastExcept("", msg)
}

// BroadcastExcept sends a message to all clients except the sender. Each
// codec encodes the message once. Non-blocking: drops if channel full.
func (h *Hub) BroadcastExcept(senderID string, msg ServerMessage) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	encoded := make(map[string][]byte, 2)
	for id, c := range h.clients {
		if id == senderID {
			continue
		}
		data, ok := encoded[c.Codec.Name()]
		if !ok {
			var err error
			data, err = c.Codec.Marshal(msg)
			if err != nil {
				log.Printf("[WSHub] Marshal error: %v\n", err)
				continue
			}
			encoded[c.Codec.Name()] = data
		}
		select {
		case c.Send <- data:
		default:
			// Drop message if channel full
		}
	}
}

// SendTo delivers a message to one client. Non-blocking.
func (h *Hub) SendTo(id string, msg ServerMessage) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()

	c, ok := h.clients[id]
	if !ok {
		return false
	}
	data, err := c.Codec.Marshal(msg)
	if err != nil {
		log.Printf("[WSHub] Marshal error: %v\n", err)
		return false
	}
	select {
	case c.Send <- data:
		return true
	default:
		return false
	}
}
