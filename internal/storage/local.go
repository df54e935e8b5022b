package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

const sessionFileName = "session.json"

// LocalStore implements Store on a single JSON file in the client directory
type LocalStore struct {
	mu       sync.Mutex
	filePath string
	data     map[string]json.RawMessage
}

// NewLocalStore creates a new file-backed store instance
func NewLocalStore(cfg Config) (*LocalStore, error) {
	if cfg.BasePath == "" {
		cfg.BasePath = "./.campushub"
	}

	// Create base directory if it doesn't exist
	if err := os.MkdirAll(cfg.BasePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	s := &LocalStore{
		filePath: filepath.Join(cfg.BasePath, sessionFileName),
		data:     make(map[string]json.RawMessage),
	}

	// Отсутствующий или битый файл = пустое хранилище, не ошибка
	if raw, err := os.ReadFile(s.filePath); err == nil {
		_ = json.Unmarshal(raw, &s.data)
	}
	if s.data == nil {
		s.data = make(map[string]json.RawMessage)
	}

	return s, nil
}

// Get retrieves the raw value for a key
func (s *LocalStore) Get(key string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok := s.data[key]
	if !ok {
		return nil, false
	}
	return raw, true
}

// Set stores the raw value for a key
func (s *LocalStore) Set(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = json.RawMessage(value)
	return s.flush()
}

// Delete removes a key
func (s *LocalStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.data[key]; !ok {
		return nil
	}
	delete(s.data, key)
	return s.flush()
}

// Clear drops all keys
func (s *LocalStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = make(map[string]json.RawMessage)
	return s.flush()
}

// flush пишет снимок хранилища на диск. Вызывается под mutex.
func (s *LocalStore) flush() error {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode session file: %w", err)
	}

	tmpPath := s.filePath + ".tmp"
	if err := os.WriteFile(tmpPath, raw, 0600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}

	if err := os.Rename(tmpPath, s.filePath); err != nil {
		return fmt.Errorf("failed to replace session file: %w", err)
	}

	return nil
}
