package services

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
)

type WSClient struct {
	UserID uint
	Conn   *websocket.Conn
}

// RealtimeHub carries both the per-second timer snapshots and alert
// events to a user's open connections.
type RealtimeHub struct {
	mu      sync.RWMutex
	clients map[uint]map[*WSClient]struct{}
}

func NewRealtimeHub() *RealtimeHub {
	return &RealtimeHub{clients: make(map[uint]map[*WSClient]struct{})}
}

func (h *RealtimeHub) Register(c *WSClient) {
	h.mu.Lock()
	if h.clients[c.UserID] == nil {
		h.clients[c.UserID] = make(map[*WSClient]struct{})
	}
	h.clients[c.UserID][c] = struct{}{}
	h.mu.Unlock()
}

func (h *RealtimeHub) Unregister(c *WSClient) {
	h.mu.Lock()
	if set := h.clients[c.UserID]; set != nil {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, c.UserID)
		}
	}
	h.mu.Unlock()
	_ = c.Conn.Close()
}

func (h *RealtimeHub) BroadcastAlert(userID uint, payload any) {
	h.broadcast(userID, payload)
}

// BroadcastTimer wraps a snapshot in a typed envelope so clients can tell
// ticks apart from alerts on the same socket.
func (h *RealtimeHub) BroadcastTimer(userID uint, snap TimerSnapshot) {
	h.broadcast(userID, map[string]any{
		"kind":  "timer.tick",
		"timer": snap,
	})
}

func (h *RealtimeHub) broadcast(userID uint, payload any) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if len(h.clients[userID]) == 0 {
		return
	}
	msg, err := json.Marshal(payload)
	if err != nil {
		return
	}
	for c := range h.clients[userID] {
		_ = c.Conn.WriteMessage(websocket.TextMessage, msg)
	}
}
