package kv

import (
	"context"
	"sync"
)

// MemoryStore хранилище в памяти процесса
// Все операции выполняются под одним мьютексом, поэтому SetIfAbsent и операции со списками атомарны.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string][]byte
	lists  map[string][]string
}

// NewMemoryStore создает пустое хранилище в памяти
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		values: make(map[string][]byte),
		lists:  make(map[string][]string),
	}
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	if !ok {
		return nil, ErrNotFound
	}
	return clone(value), nil
}

func (s *MemoryStore) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = clone(value)
	return nil
}

func (s *MemoryStore) SetIfAbsent(_ context.Context, key string, value []byte) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.values[key]; exists {
		return false, nil
	}
	s.values[key] = clone(value)
	return true, nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, key)
	delete(s.lists, key)
	return nil
}

func (s *MemoryStore) MGet(_ context.Context, keys []string) ([][]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([][]byte, len(keys))
	for i, key := range keys {
		if value, ok := s.values[key]; ok {
			result[i] = clone(value)
		}
	}
	return result, nil
}

func (s *MemoryStore) Append(_ context.Context, listKey, member string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lists[listKey] = append(s.lists[listKey], member)
	return nil
}

func (s *MemoryStore) Remove(_ context.Context, listKey, member string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	members := s.lists[listKey]
	kept := members[:0]
	for _, m := range members {
		if m != member {
			kept = append(kept, m)
		}
	}
	s.lists[listKey] = kept
	return nil
}

func (s *MemoryStore) Members(_ context.Context, listKey string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	members := s.lists[listKey]
	result := make([]string, len(members))
	copy(result, members)
	return result, nil
}

func (s *MemoryStore) Ping(_ context.Context) error {
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}

func clone(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
