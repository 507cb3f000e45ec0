// Package realtime delivers committed message rows to connected users over
// WebSocket, replacing the hosted realtime channel the mobile app subscribed
// to. Events reach only the addressed user, so a sender never receives an
// echo of its own message.
package realtime

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

type Event struct {
	Type    string      `json:"type"` // message.created
	Payload interface{} `json:"payload"`
}

type Hub struct {
	mu    sync.RWMutex
	users map[uuid.UUID]map[*Client]bool
}

func NewHub() *Hub {
	return &Hub{users: make(map[uuid.UUID]map[*Client]bool)}
}

func (h *Hub) Join(userID uuid.UUID, c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.users[userID] == nil {
		h.users[userID] = make(map[*Client]bool)
	}
	h.users[userID][c] = true
}

func (h *Hub) Leave(userID uuid.UUID, c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if conns := h.users[userID]; conns != nil {
		delete(conns, c)
		if len(conns) == 0 {
			delete(h.users, userID)
		}
	}
}

// Publish fans the event out to every open connection of userID. A client
// whose send buffer is full is dropped instead of blocking delivery to the
// rest.
func (h *Hub) Publish(userID uuid.UUID, event Event) {
	b, err := json.Marshal(event)
	if err != nil {
		return
	}

	h.mu.RLock()
	conns := make([]*Client, 0, len(h.users[userID]))
	for c := range h.users[userID] {
		conns = append(conns, c)
	}
	h.mu.RUnlock()

	for _, c := range conns {
		if !c.trySend(b) {
			go c.Close()
		}
	}
}
