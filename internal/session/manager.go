// Package session tracks per-chat conversational state for the bot.
package session

import (
	"log/slog"
	"sync"

	"github.com/ashmarin/vinbot/internal/domain"
)

// Manager holds the active conversation sessions keyed by chat ID.
// The chat transport delivers at most one event at a time per chat, but
// different chats are handled concurrently, so access is serialized here.
type Manager struct {
	mu     sync.RWMutex
	active map[int64]*domain.Session
}

// NewManager creates an empty session manager.
func NewManager() *Manager {
	return &Manager{
		active: make(map[int64]*domain.Session),
	}
}

// Get returns the session for a chat, or nil if none is active.
func (m *Manager) Get(chatID int64) *domain.Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.active[chatID]
}

// Start creates a fresh session for a chat, replacing any existing one.
func (m *Manager) Start(chatID int64) *domain.Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	sess := &domain.Session{ChatID: chatID, State: domain.StateAwaitingVIN}
	m.active[chatID] = sess
	slog.Info("Conversation session started", "chat_id", chatID)
	return sess
}

// SetState records a state transition for a chat. Sessions that reach
// the terminal state are dropped.
func (m *Manager) SetState(chatID int64, state domain.State) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sess, ok := m.active[chatID]
	if !ok {
		return
	}
	sess.State = state
	if state == domain.StateEnded {
		delete(m.active, chatID)
		slog.Info("Conversation session ended", "chat_id", chatID)
	}
}

// End removes the session for a chat if one is active.
func (m *Manager) End(chatID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.active[chatID]; ok {
		delete(m.active, chatID)
		slog.Info("Conversation session ended", "chat_id", chatID)
	}
}

// Count returns the number of active sessions.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.active)
}
