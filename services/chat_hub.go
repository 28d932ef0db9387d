package services

import (
	"sync"
)

// ChatHub keeps per-user conversation history across websocket
// connections. Sessions are independent between users; within one user the
// history is guarded by the hub's lock.
type ChatHub struct {
	mu       sync.RWMutex
	sessions map[uint][]ChatMessage
}

func NewChatHub() *ChatHub {
	return &ChatHub{sessions: make(map[uint][]ChatMessage)}
}

// History returns a copy of the user's conversation so far.
func (h *ChatHub) History(userID uint) []ChatMessage {
	h.mu.RLock()
	defer h.mu.RUnlock()
	history := h.sessions[userID]
	out := make([]ChatMessage, len(history))
	copy(out, history)
	return out
}

func (h *ChatHub) Append(userID uint, role, content string) {
	h.mu.Lock()
	h.sessions[userID] = append(h.sessions[userID], ChatMessage{Role: role, Content: content})
	h.mu.Unlock()
}

func (h *ChatHub) Reset(userID uint) {
	h.mu.Lock()
	delete(h.sessions, userID)
	h.mu.Unlock()
}
