package tracker

import (
	"fmt"
	"sync"

	"github.com/julianstephens/lifeadvance/internal/errors"
	"github.com/julianstephens/lifeadvance/internal/logger"
	"github.com/julianstephens/lifeadvance/internal/storage"
)

// collection is the ordered, persisted list behind every manager. All
// access goes through mu; change callbacks run after mu is released so they
// may read the collection again.
type collection[T any] struct {
	mu       sync.Mutex
	store    *storage.Collection[T]
	items    []T
	idOf     func(T) string
	clone    func(T) T
	onChange []func()
}

func newCollection[T any](provider storage.Provider, key string, idOf func(T) string, clone func(T) T) *collection[T] {
	if clone == nil {
		clone = func(v T) T { return v }
	}
	return &collection[T]{
		store: storage.NewCollection[T](provider, key),
		idOf:  idOf,
		clone: clone,
	}
}

// load replaces the in-memory items. Missing or undecodable data degrades
// to fallback() (nil for no fallback) and is never reported to the caller.
func (c *collection[T]) load(fallback func() []T) {
	items, err := c.store.LoadAll()
	if err != nil && !errors.Is(err, errors.ErrNotFound) {
		logger.Warn("Discarding unreadable collection", "key", c.store.Key(), "error", err)
	}
	if len(items) == 0 && fallback != nil {
		items = fallback()
	}

	c.mu.Lock()
	c.items = items
	callbacks := c.callbacksLocked()
	c.mu.Unlock()

	runCallbacks(callbacks)
}

// persistLocked writes the whole collection. A failure leaves the in-memory
// state as is and is reported wrapped in ErrPersist.
func (c *collection[T]) persistLocked() error {
	if err := c.store.SaveAll(c.items); err != nil {
		logger.Warn("Failed to persist collection", "key", c.store.Key(), "error", err)
		return fmt.Errorf("%w: %w", errors.ErrPersist, err)
	}
	return nil
}

func (c *collection[T]) callbacksLocked() []func() {
	out := make([]func(), len(c.onChange))
	copy(out, c.onChange)
	return out
}

func runCallbacks(callbacks []func()) {
	for _, fn := range callbacks {
		fn()
	}
}

func (c *collection[T]) subscribe(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onChange = append(c.onChange, fn)
}

func (c *collection[T]) indexLocked(id string) int {
	for i, item := range c.items {
		if c.idOf(item) == id {
			return i
		}
	}
	return -1
}

func (c *collection[T]) all() []T {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]T, len(c.items))
	for i, item := range c.items {
		out[i] = c.clone(item)
	}
	return out
}

func (c *collection[T]) get(id string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if i := c.indexLocked(id); i >= 0 {
		return c.clone(c.items[i]), true
	}
	var zero T
	return zero, false
}

func (c *collection[T]) add(item T) error {
	c.mu.Lock()
	c.items = append(c.items, c.clone(item))
	err := c.persistLocked()
	callbacks := c.callbacksLocked()
	c.mu.Unlock()

	runCallbacks(callbacks)
	return err
}

// mutate applies fn to the item with the given id and persists. An unknown
// id is a silent no-op: nothing changes and nothing is written.
func (c *collection[T]) mutate(id string, fn func(current T) (T, error)) error {
	c.mu.Lock()
	i := c.indexLocked(id)
	if i < 0 {
		c.mu.Unlock()
		return nil
	}

	next, err := fn(c.clone(c.items[i]))
	if err != nil {
		c.mu.Unlock()
		return err
	}
	c.items[i] = next
	err = c.persistLocked()
	callbacks := c.callbacksLocked()
	c.mu.Unlock()

	runCallbacks(callbacks)
	return err
}

// remove drops every item with the given id and always persists, even when
// nothing matched.
func (c *collection[T]) remove(id string) error {
	c.mu.Lock()
	kept := c.items[:0:0]
	for _, item := range c.items {
		if c.idOf(item) != id {
			kept = append(kept, item)
		}
	}
	c.items = kept
	err := c.persistLocked()
	callbacks := c.callbacksLocked()
	c.mu.Unlock()

	runCallbacks(callbacks)
	return err
}
