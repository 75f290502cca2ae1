package storage

import (
	"fmt"

	"github.com/julianstephens/lifeadvance/internal/constants"
	"github.com/julianstephens/lifeadvance/internal/storage/sqlite"
)

// New builds the provider for the named backend without opening it.
func New(backend, path string) (Provider, error) {
	switch backend {
	case constants.BackendSQLite, "":
		return sqlite.NewStore(path), nil
	case constants.BackendJSON:
		return NewJSONStore(path), nil
	case constants.BackendMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q (expected sqlite, json or memory)", backend)
	}
}
