// Package memory is the process-local store. Runtime overrides are
// deliberately ephemeral, so this is the only store the daemon uses.
package memory

import (
	"fmt"
	"sync"
)

type Store[T any] struct {
	mu   sync.RWMutex
	data map[string]T
}

func NewStore[T any]() *Store[T] {
	return &Store[T]{
		data: make(map[string]T),
	}
}

func (s *Store[T]) Save(key string, data T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = data
	return nil
}

func (s *Store[T]) Load(key string) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, exist := s.data[key]
	if !exist {
		var zero T
		return zero, fmt.Errorf("resource: %s, does not exist", key)
	}
	return val, nil
}

func (s *Store[T]) LoadAll() ([]T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]T, 0, len(s.data))
	for _, val := range s.data {
		result = append(result, val)
	}

	return result, nil
}

func (s *Store[T]) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}
