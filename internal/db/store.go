package db

import (
	"fmt"

	"fortio.org/safecast"
)

// store is a slice-backed arena with index 0 reserved for the null sentinel.
type store[T any] struct {
	data []T
}

func newStore[T any](capacity uint32) store[T] {
	if capacity == 0 {
		capacity = 32
	}
	return store[T]{
		data: make([]T, 1, capacity+1), // index 0 reserved for the No*ID sentinel
	}
}

// alloc appends a record and returns its raw index.
func (s *store[T]) alloc(value T) uint32 {
	idx, err := safecast.Conv[uint32](len(s.data))
	if err != nil {
		panic(fmt.Errorf("database arena overflow: %w", err))
	}
	s.data = append(s.data, value)
	return idx
}

// get returns a pointer into the arena or nil for an out-of-range index.
func (s *store[T]) get(idx uint32) *T {
	if idx == 0 || int(idx) >= len(s.data) {
		return nil
	}
	return &s.data[idx]
}

// len reports stored records excluding the sentinel.
func (s *store[T]) len() int { return len(s.data) - 1 }
