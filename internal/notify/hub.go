// Package notify pushes progression events (new badges, level unlocks) to
// connected UI clients over WebSocket, so the game screen can show a toast
// the moment a session is processed.
package notify

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/coder/websocket"
)

// Event is the JSON structure sent to clients.
type Event struct {
	Type      string `json:"t"` // "badge" or "unlock"
	ProfileID string `json:"profile"`
	BadgeType string `json:"badge,omitempty"`
	Name      string `json:"name,omitempty"`
	Icon      string `json:"icon,omitempty"`
	GameType  string `json:"game,omitempty"`
	Level     int    `json:"level,omitempty"`
}

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

// Hub manages the connected clients.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*Client
}

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

// Unregister removes a client and closes its Send channel.
func (h *Hub) Unregister(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if c, ok := h.clients[id]; ok {
		close(c.Send)
		delete(h.clients, id)
	}
}

// Broadcast sends an event to every client. Non-blocking: drops if a client's
// channel is full.
func (h *Hub) Broadcast(ev Event) {
	data, err := json.Marshal(ev)
	if err != nil {
		slog.Error("marshaling notify event", "error", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, c := range h.clients {
		select {
		case c.Send <- data:
		default:
			// Drop event if channel full
		}
	}
}
