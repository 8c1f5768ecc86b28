package chat

import (
	"testing"
	"time"
)

func TestGetOrCreateReturnsSameSession(t *testing.T) {
	m := NewSessionManager()

	a := m.GetOrCreate("u1", "s1")
	b := m.GetOrCreate("u1", "s1")
	if a != b {
		t.Error("GetOrCreate returned different sessions for the same key")
	}

	c := m.GetOrCreate("u1", "s2")
	if a == c {
		t.Error("Different session IDs share one session")
	}
	if m.Count() != 2 {
		t.Errorf("Count = %d, want 2", m.Count())
	}
}

func TestGetMissingReturnsNil(t *testing.T) {
	m := NewSessionManager()
	if m.Get("nobody", "nothing") != nil {
		t.Error("Get returned a session that was never created")
	}
}

func TestRemoveDropsSession(t *testing.T) {
	m := NewSessionManager()
	m.GetOrCreate("u1", "s1")
	m.Remove("u1", "s1")

	if m.Get("u1", "s1") != nil {
		t.Error("Session survived Remove")
	}
	if m.Count() != 0 {
		t.Errorf("Count = %d, want 0", m.Count())
	}
}

func TestSweepDropsIdleSessions(t *testing.T) {
	m := NewSessionManager()

	stale := m.GetOrCreate("u1", "s1")
	stale.mu.Lock()
	stale.lastActive = time.Now().Add(-2 * time.Hour)
	stale.mu.Unlock()

	fresh := m.GetOrCreate("u2", "s1")
	fresh.mu.Lock()
	fresh.lastActive = time.Now()
	fresh.mu.Unlock()

	m.sweep(time.Hour)

	if m.Get("u1", "s1") != nil {
		t.Error("Stale session survived sweep")
	}
	if m.Get("u2", "s1") == nil {
		t.Error("Fresh session was swept")
	}
}
