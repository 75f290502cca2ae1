package storage

import (
	"fmt"
	"sync"

	"github.com/julianstephens/lifeadvance/internal/errors"
)

// MemoryStore is a volatile Provider. It records how many writes each key
// received and can be told to fail writes, which tests use to observe
// persistence behaviour.
type MemoryStore struct {
	mu       sync.RWMutex
	values   map[string][]byte
	writes   map[string]int
	writeErr error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		values: make(map[string][]byte),
		writes: make(map[string]int),
	}
}

func (s *MemoryStore) Init() error  { return nil }
func (s *MemoryStore) Load() error  { return nil }
func (s *MemoryStore) Close() error { return nil }

func (s *MemoryStore) Get(key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.values[key]
	if !ok {
		return nil, fmt.Errorf("%s: %w", key, errors.ErrNotFound)
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (s *MemoryStore) Set(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.writes[key]++
	if s.writeErr != nil {
		return s.writeErr
	}
	v := make([]byte, len(value))
	copy(v, value)
	s.values[key] = v
	return nil
}

func (s *MemoryStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.writeErr != nil {
		return s.writeErr
	}
	delete(s.values, key)
	return nil
}

func (s *MemoryStore) GetConfigPath() string {
	return ":memory:"
}

// Writes returns how many times Set was called for key, failed calls included.
func (s *MemoryStore) Writes(key string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.writes[key]
}

// FailWrites makes every later Set and Delete return err. Pass nil to recover.
func (s *MemoryStore) FailWrites(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writeErr = err
}
