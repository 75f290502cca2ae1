package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/julianstephens/lifeadvance/internal/errors"
)

// document is the on-disk layout of a JSONStore.
type document struct {
	Version int                        `json:"version"`
	Entries map[string]json.RawMessage `json:"entries"`
}

// JSONStore keeps every key in one JSON file, rewritten on each change.
type JSONStore struct {
	mu   sync.RWMutex
	path string
	doc  *document
}

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{
		path: path,
	}
}

func (s *JSONStore) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return s.read()
	}

	s.doc = &document{
		Version: 1,
		Entries: make(map[string]json.RawMessage),
	}
	return s.save()
}

func (s *JSONStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read()
}

func (s *JSONStore) read() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.ErrNotInitialized
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	doc := &document{}
	if err := json.Unmarshal(data, doc); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}
	if doc.Entries == nil {
		doc.Entries = make(map[string]json.RawMessage)
	}
	s.doc = doc
	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	// Write to a sibling file first so a crash never leaves a truncated store
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace storage: %w", err)
	}
	return nil
}

func (s *JSONStore) Get(key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.doc == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	raw, ok := s.doc.Entries[key]
	if !ok {
		return nil, fmt.Errorf("%s: %w", key, errors.ErrNotFound)
	}
	out := make([]byte, len(raw))
	copy(out, raw)
	return out, nil
}

func (s *JSONStore) Set(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}
	if !json.Valid(value) {
		return fmt.Errorf("value for %s is not valid JSON", key)
	}
	raw := make(json.RawMessage, len(value))
	copy(raw, value)
	s.doc.Entries[key] = raw
	return s.save()
}

func (s *JSONStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}
	if _, ok := s.doc.Entries[key]; !ok {
		return nil
	}
	delete(s.doc.Entries, key)
	return s.save()
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
