package index

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstallReplacesDeps(t *testing.T) {
	src := filepath.Join(t.TempDir(), "deps")
	require.NoError(t, os.MkdirAll(filepath.Join(src, "zlib"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "zlib", "index.toml"), []byte(`name = "zlib"`), 0644))

	cache := t.TempDir()
	stale := filepath.Join(cache, "deps", "stale")
	require.NoError(t, os.MkdirAll(stale, 0755))

	require.NoError(t, Install(src, cache, nil))

	data, err := os.ReadFile(filepath.Join(cache, "deps", "zlib", "index.toml"))
	require.NoError(t, err)
	assert.Equal(t, `name = "zlib"`, string(data))
	assert.NoDirExists(t, stale)
}

func TestInstallMissingSource(t *testing.T) {
	err := Install(filepath.Join(t.TempDir(), "nope"), t.TempDir(), nil)
	require.Error(t, err)
}

func TestSyncCloneFailure(t *testing.T) {
	dir := t.TempDir()
	err := Sync(context.Background(), Options{
		CacheDir: dir,
		URL:      filepath.Join(dir, "no-such-repo"),
	})
	require.ErrorContains(t, err, "git clone failed")
	assert.NoDirExists(t, filepath.Join(dir, "deps"))
}

func TestSyncRequiresURL(t *testing.T) {
	dir := t.TempDir()
	err := Sync(context.Background(), Options{CacheDir: dir})
	require.ErrorIs(t, err, ErrNoURL)
	assert.NoDirExists(t, filepath.Join(dir, "deps"))
}
