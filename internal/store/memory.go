package store

// MemoryStore is the session-only fallback used when the SQLite store
// cannot be opened. Also handy in tests.
type MemoryStore struct {
	slots map[string]string
}

// NewMemory returns an empty in-memory store.
func NewMemory() *MemoryStore {
	return &MemoryStore{slots: map[string]string{}}
}

func (m *MemoryStore) Read(key string) (string, bool) {
	value, ok := m.slots[key]
	return value, ok
}

func (m *MemoryStore) Write(key, value string) {
	m.slots[key] = value
}
