package tokenstore

import "sync"

// Keys under which the token pair is stored. The cookie mirror uses the same
// names, so one logical key identifies a token in both trust domains.
const (
	AccessTokenKey  = "betracked_access_token"
	RefreshTokenKey = "betracked_refresh_token"
)

// Store is the local, authoritative key-value backend.
type Store interface {
	// Get returns the value for key and whether it is present.
	Get(key string) (string, bool)

	// Set stores the value under key.
	Set(key, value string)

	// Delete removes key. Deleting an absent key is a no-op.
	Delete(key string)
}

// MemoryStore implements Store with a mutex-guarded map.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (m *MemoryStore) Get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.values[key]
	return value, ok
}

func (m *MemoryStore) Set(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = value
}

func (m *MemoryStore) Delete(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.values, key)
}
