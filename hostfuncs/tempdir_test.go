package hostfuncs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTempDirRegistryCreate(t *testing.T) {
	registry := NewTempDirRegistry()
	t.Cleanup(registry.CleanupAll)

	first, err := registry.Create()
	require.NoError(t, err)
	second, err := registry.Create()
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, filepath.IsAbs(first))
	assert.True(t, filepath.IsAbs(second))

	for _, dir := range []string{first, second} {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Empty(t, entries)
	}

	assert.Equal(t, []string{first, second}, registry.Tracked())
}

func TestTempDirRegistryCleanupAll(t *testing.T) {
	registry := NewTempDirRegistry()

	first, err := registry.Create()
	require.NoError(t, err)
	second, err := registry.Create()
	require.NoError(t, err)

	// Populate one directory; cleanup is recursive.
	require.NoError(t, os.WriteFile(filepath.Join(first, "leftover.txt"), []byte("x"), 0o644))

	// One directory was already removed by the script itself; cleanup
	// tolerates that.
	require.NoError(t, os.RemoveAll(second))

	registry.CleanupAll()

	_, err = os.Stat(first)
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(second)
	assert.True(t, os.IsNotExist(err))
	assert.Empty(t, registry.Tracked())
}

func TestTempDirRegistryCleanupIsIdempotent(t *testing.T) {
	registry := NewTempDirRegistry()

	dir, err := registry.Create()
	require.NoError(t, err)

	registry.CleanupAll()
	assert.NotPanics(t, registry.CleanupAll)

	_, err = os.Stat(dir)
	assert.True(t, os.IsNotExist(err))
}
