package wshub

import (
	"context"
	"livequiz/internal/events"
	"log"
	"sync"

	"github.com/coder/websocket"
)

// Client represents a single WebSocket connection in the hub.
type Client struct {
	ID   string
	Conn *websocket.Conn
	Send chan []byte
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
			if err := c.Conn.Write(ctx, websocket.MessageText, msg); err != nil {
				return
			}
		}
	}
}

// Hub tracks connections and their room subscriptions, and delivers
// outbound events to one connection or to every member of a room.
// Delivery is fire-and-forget: sends never block and drop when a client's
// channel is full.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*Client
	rooms   map[string]map[string]bool // pin -> set of client IDs
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]*Client),
		rooms:   make(map[string]map[string]bool),
	}
}

// Register adds a client to the hub.
func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c.ID] = c
}

// Unregister removes a client from the hub and every room it joined,
// closing its Send channel.
func (h *Hub) Unregister(clientID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	c, ok := h.clients[clientID]
	if !ok {
		return
	}
	close(c.Send)
	delete(h.clients, clientID)
	for pin, members := range h.rooms {
		delete(members, clientID)
		if len(members) == 0 {
			delete(h.rooms, pin)
		}
	}
}

// Join subscribes a client to a room's broadcasts.
func (h *Hub) Join(pin string, clientID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.rooms[pin] == nil {
		h.rooms[pin] = make(map[string]bool)
	}
	h.rooms[pin][clientID] = true
}

// Leave unsubscribes a client from a room.
func (h *Hub) Leave(pin string, clientID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if members, ok := h.rooms[pin]; ok {
		delete(members, clientID)
		if len(members) == 0 {
			delete(h.rooms, pin)
		}
	}
}

// DropRoom removes a room's subscription group. The clients themselves
// stay registered; their connections are torn down separately.
func (h *Hub) DropRoom(pin string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.rooms, pin)
}

// SendTo delivers an event to a single connection.
func (h *Hub) SendTo(clientID string, event string, data any) {
	msg, err := events.Marshal(event, data)
	if err != nil {
		log.Printf("[Hub] Marshal error: %v\n", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	c, ok := h.clients[clientID]
	if !ok {
		return
	}
	select {
	case c.Send <- msg:
	default:
		// Drop message if channel full
	}
}

// Broadcast delivers an event to every member of a room.
func (h *Hub) Broadcast(pin string, event string, data any) {
	msg, err := events.Marshal(event, data)
	if err != nil {
		log.Printf("[Hub] Marshal error: %v\n", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for id := range h.rooms[pin] {
		c, ok := h.clients[id]
		if !ok {
			continue
		}
		select {
		case c.Send <- msg:
		default:
			// Drop message if channel full
		}
	}
}
