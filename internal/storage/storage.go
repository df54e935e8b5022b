package storage

import (
	"encoding/json"
	"fmt"
)

// Ключи durable client storage (layout фиксирован контрактом клиента)
const (
	KeyToken               = "token"
	KeyUser                = "user"
	KeyPendingVerification = "pendingVerification"
)

// Store defines the interface for durable key-value session storage.
// Чтение никогда не падает: отсутствующий ключ - это (nil, false).
type Store interface {
	// Get retrieves the raw value for a key
	Get(key string) ([]byte, bool)

	// Set stores the raw value for a key
	Set(key string, value []byte) error

	// Delete removes a key; missing keys are not an error
	Delete(key string) error

	// Clear drops all keys
	Clear() error
}

// Config holds storage configuration
type Config struct {
	Type     string // local, memory
	BasePath string // For local storage
}

// NewStore creates a new store instance based on configuration
func NewStore(cfg Config) (Store, error) {
	switch cfg.Type {
	case "local":
		return NewLocalStore(cfg)
	case "memory":
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}

// GetJSON декодирует значение ключа в out. Отсутствие ключа - (false, nil).
func GetJSON(s Store, key string, out interface{}) (bool, error) {
	raw, ok := s.Get(key)
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, fmt.Errorf("failed to decode stored %q: %w", key, err)
	}
	return true, nil
}

// SetJSON кодирует значение и сохраняет его под ключом
func SetJSON(s Store, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %q: %w", key, err)
	}
	return s.Set(key, raw)
}
