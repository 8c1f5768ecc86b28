package chat

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

const sweepInterval = 5 * time.Minute

// SessionManager tracks live conversation sessions per user.
type SessionManager struct {
	mu     sync.RWMutex
	active map[string]map[string]*Session
}

// NewSessionManager creates a new session manager.
func NewSessionManager() *SessionManager {
	return &SessionManager{
		active: make(map[string]map[string]*Session),
	}
}

// Get returns the session for a user and session ID, or nil.
func (m *SessionManager) Get(userID, sessionID string) *Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if sessions, ok := m.active[userID]; ok {
		return sessions[sessionID]
	}
	return nil
}

// GetOrCreate returns the existing session or registers a fresh one.
func (m *SessionManager) GetOrCreate(userID, sessionID string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.active[userID]; !exists {
		m.active[userID] = make(map[string]*Session)
	}
	if sess, exists := m.active[userID][sessionID]; exists {
		return sess
	}

	sess := NewSession(userID, sessionID)
	m.active[userID][sessionID] = sess
	slog.Info("Chat session created", "user_id", userID, "session_id", sessionID)
	return sess
}

// Remove discards a session. The in-progress draft or lead record goes
// with it; nothing is committed.
func (m *SessionManager) Remove(userID, sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if sessions, ok := m.active[userID]; ok {
		if sess, exists := sessions[sessionID]; exists {
			sess.cancelGreeting()
			delete(sessions, sessionID)
			if len(sessions) == 0 {
				delete(m.active, userID)
			}
			slog.Info("Chat session removed", "user_id", userID, "session_id", sessionID)
		}
	}
}

// Count returns the number of live sessions.
func (m *SessionManager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	n := 0
	for _, sessions := range m.active {
		n += len(sessions)
	}
	return n
}

// StartTTLSweeper runs a background goroutine that discards sessions idle
// longer than ttl. Runs until ctx is cancelled.
func (m *SessionManager) StartTTLSweeper(ctx context.Context, ttl time.Duration) {
	ticker := time.NewTicker(sweepInterval)
	go func() {
		defer ticker.Stop()
		slog.Info("Session TTL sweeper started", "interval", sweepInterval, "ttl", ttl)
		for {
			select {
			case <-ticker.C:
				m.sweep(ttl)
			case <-ctx.Done():
				slog.Info("Session TTL sweeper shutting down", "reason", ctx.Err())
				return
			}
		}
	}()
}

func (m *SessionManager) sweep(ttl time.Duration) {
	cutoff := time.Now().Add(-ttl)

	m.mu.Lock()
	defer m.mu.Unlock()
	for userID, sessions := range m.active {
		for sessionID, sess := range sessions {
			if sess.LastActive().Before(cutoff) {
				sess.cancelGreeting()
				delete(sessions, sessionID)
				slog.Info("Expired chat session swept", "user_id", userID, "session_id", sessionID)
			}
		}
		if len(sessions) == 0 {
			delete(m.active, userID)
		}
	}
}
