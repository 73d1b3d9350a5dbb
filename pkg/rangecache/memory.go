package rangecache

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	payload   []byte
	expiresAt time.Time
}

// Memory is an in-process Cache with lazy eviction
type Memory struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry

	// now is swappable in tests
	now func() time.Time
}

// NewMemory creates an empty in-process cache
func NewMemory() *Memory {
	return &Memory{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

// NewMemoryWithClock creates a cache using the given clock.
// Used by tests to drive expiry deterministically.
func NewMemoryWithClock(now func() time.Time) *Memory {
	return &Memory{
		entries: make(map[string]memoryEntry),
		now:     now,
	}
}

// Get returns the cached payload, evicting it first if expired
func (m *Memory) Get(_ context.Context, key string) ([]byte, bool) {
	m.mu.RLock()
	entry, ok := m.entries[key]
	m.mu.RUnlock()

	if !ok {
		return nil, false
	}

	if m.now().After(entry.expiresAt) {
		m.mu.Lock()
		// Re-check under the write lock: a concurrent Set may have refreshed it
		if cur, still := m.entries[key]; still && m.now().After(cur.expiresAt) {
			delete(m.entries, key)
		}
		m.mu.Unlock()
		return nil, false
	}

	return entry.payload, true
}

// Set stores the payload for the given TTL
func (m *Memory) Set(_ context.Context, key string, payload []byte, ttl time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = memoryEntry{
		payload:   payload,
		expiresAt: m.now().Add(ttl),
	}
}

// InvalidateAll drops every entry
func (m *Memory) InvalidateAll(_ context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = make(map[string]memoryEntry)
}

// Len returns the number of live entries (test helper)
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
