package syncmap

import "sync"

// Map is a thread-safe generic map keyed by string.
type Map[T any] struct {
	mux   sync.RWMutex
	items map[string]T
}

// New creates an empty Map.
func New[T any]() *Map[T] {
	return &Map[T]{items: make(map[string]T)}
}

// Get retrieves the item stored under name.
func (m *Map[T]) Get(name string) (T, bool) {
	m.mux.RLock()
	defer m.mux.RUnlock()
	value, ok := m.items[name]
	return value, ok
}

// Set adds or replaces the item stored under name.
func (m *Map[T]) Set(name string, value T) {
	m.mux.Lock()
	defer m.mux.Unlock()
	m.items[name] = value
}

// Delete removes the item stored under name.
func (m *Map[T]) Delete(name string) {
	m.mux.Lock()
	defer m.mux.Unlock()
	delete(m.items, name)
}

// List returns all stored items in unspecified order.
func (m *Map[T]) List() []T {
	m.mux.RLock()
	defer m.mux.RUnlock()
	result := make([]T, 0, len(m.items))
	for _, value := range m.items {
		result = append(result, value)
	}
	return result
}

// Len returns the number of stored items.
func (m *Map[T]) Len() int {
	m.mux.RLock()
	defer m.mux.RUnlock()
	return len(m.items)
}
