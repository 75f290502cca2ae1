package sqlite

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/lifeadvance/internal/errors"
)

func setupTestStore(t *testing.T) (*Store, string) {
	path := filepath.Join(t.TempDir(), "lifeadvance.db")
	store := NewStore(path)
	require.NoError(t, store.Init())
	t.Cleanup(func() { store.Close() })
	return store, path
}

func TestLoadBeforeInit(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "absent.db"))
	err := store.Load()
	assert.True(t, errors.Is(err, errors.ErrNotInitialized))
}

func TestInitAppliesMigrations(t *testing.T) {
	store, _ := setupTestStore(t)

	var version int
	require.NoError(t, store.GetDB().QueryRow("SELECT version FROM schema_version").Scan(&version))
	assert.Equal(t, 2, version)

	var count int
	require.NoError(t, store.GetDB().QueryRow("SELECT count(*) FROM kv").Scan(&count))
	assert.Zero(t, count)
}

func TestReopenKeepsValues(t *testing.T) {
	store, path := setupTestStore(t)
	require.NoError(t, store.Set("goals", []byte(`[{"id":"g"}]`)))
	require.NoError(t, store.Set("habits", []byte(`[]`)))
	require.NoError(t, store.Close())

	reopened := NewStore(path)
	require.NoError(t, reopened.Load())
	defer reopened.Close()

	got, err := reopened.Get("goals")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"g"}]`, string(got))

	keys, err := reopened.Keys()
	require.NoError(t, err)
	assert.Equal(t, []string{"goals", "habits"}, keys)
}

func TestOperationsRequireOpenDatabase(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "x.db"))

	_, err := store.Get("k")
	assert.Error(t, err)
	assert.Error(t, store.Set("k", []byte(`1`)))
	assert.Error(t, store.Delete("k"))
	assert.NoError(t, store.Close())
}
