package storage

// Provider is a local key/value store. Each tracked collection lives under
// its own fixed key and is always read and written as a whole.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Get returns errors.ErrNotFound when key holds no value.
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(key string) error

	// Utils
	GetConfigPath() string
}
