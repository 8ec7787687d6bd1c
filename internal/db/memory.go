package db

// MemorySlots keeps slots in a map. It satisfies the same Get/Set contract
// as Store and is used when no database is wanted. Like its only caller,
// state.Store, it is not safe for concurrent use.
type MemorySlots struct {
	values map[string]string
}

// NewMemorySlots returns an empty MemorySlots.
func NewMemorySlots() *MemorySlots {
	return &MemorySlots{values: make(map[string]string)}
}

// Get returns the value stored under key and whether it exists.
func (m *MemorySlots) Get(key string) (string, bool, error) {
	v, ok := m.values[key]
	return v, ok, nil
}

// Set stores value under key.
func (m *MemorySlots) Set(key, value string) error {
	m.values[key] = value
	return nil
}
