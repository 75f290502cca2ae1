package storage

import (
	"encoding/json"
	"fmt"

	"github.com/julianstephens/lifeadvance/internal/constants"
	"github.com/julianstephens/lifeadvance/internal/errors"
)

// Collection reads and writes a whole slice of T under one provider key.
type Collection[T any] struct {
	provider Provider
	key      string
}

func NewCollection[T any](provider Provider, key string) *Collection[T] {
	return &Collection[T]{provider: provider, key: key}
}

func (c *Collection[T]) Key() string {
	return c.key
}

// LoadAll returns errors.ErrNotFound when nothing is stored under the key and
// a wrapped decode error when the stored value is not a JSON array of T.
func (c *Collection[T]) LoadAll() ([]T, error) {
	data, err := c.provider.Get(c.key)
	if err != nil {
		return nil, err
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", c.key, err)
	}
	return items, nil
}

func (c *Collection[T]) SaveAll(items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", c.key, err)
	}
	if err := c.provider.Set(c.key, data); err != nil {
		return fmt.Errorf("failed to write %s: %w", c.key, err)
	}
	return nil
}

// ResetAll clears every collection key and the onboarding flag. The keys are
// deleted one after another; the first failure stops the reset.
func ResetAll(provider Provider) error {
	for _, key := range constants.StorageKeys {
		if err := provider.Delete(key); err != nil {
			return fmt.Errorf("failed to clear %s: %w", key, err)
		}
	}
	return nil
}

// GetFlag reads a boolean flag. A missing or unreadable flag is false.
func GetFlag(provider Provider, key string) (bool, error) {
	data, err := provider.Get(key)
	if err != nil {
		if errors.Is(err, errors.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	var v bool
	if err := json.Unmarshal(data, &v); err != nil {
		return false, nil
	}
	return v, nil
}

func SetFlag(provider Provider, key string, value bool) error {
	data, _ := json.Marshal(value)
	return provider.Set(key, data)
}
