package orderedmap

import (
	"errors"
	"iter"
)

var ErrDuplicateEntry = errors.New("duplicate entry")

// Map is a map that remembers the order in which keys were first set.
// Iteration via Range yields entries in insertion order.
type Map[K comparable, V any] struct {
	order  []K
	values map[K]V
}

func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{
		values: make(map[K]V),
	}
}

// Set stores the value under key. Keys are write-once: setting a key
// that already exists returns ErrDuplicateEntry and leaves the stored
// value untouched.
func (m *Map[K, V]) Set(key K, value V) error {
	if _, exists := m.values[key]; exists {
		return ErrDuplicateEntry
	}
	m.order = append(m.order, key)
	m.values[key] = value
	return nil
}

// Get returns the value stored under key. The second return value is
// false when the key has never been set.
func (m *Map[K, V]) Get(key K) (V, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m *Map[K, V]) Len() int {
	return len(m.order)
}

func (m *Map[K, V]) Range() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, k := range m.order {
			if !yield(k, m.values[k]) {
				break
			}
		}
	}
}
