package registry

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEntry(t *testing.T, cacheDir, name, body string) {
	t.Helper()
	dir := filepath.Join(cacheDir, "deps", name)
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.toml"), []byte(body), 0644))
}

func testRegistry(t *testing.T) *Registry {
	t.Helper()
	cache := t.TempDir()
	writeEntry(t, cache, "sdl2_mixer", `
name = "sdl2_mixer"
headers = ["SDL2/SDL_mixer.h"]
libs = ["SDL2_mixer"]
[backends]
dpkg = "libsdl2-mixer-dev"
pacman = "sdl2_mixer"
brew = "sdl2_mixer"
`)
	writeEntry(t, cache, "zlib", `
name = "zlib"
[backends]
dpkg = "zlib1g-dev"
`)
	writeEntry(t, cache, "broken", `name = [`)
	require.NoError(t, os.MkdirAll(filepath.Join(cache, "deps", "empty"), 0755))
	return New(cache, nil)
}

func TestList(t *testing.T) {
	r := testRegistry(t)
	entries, err := r.List()
	require.NoError(t, err)

	var names []string
	for _, e := range entries {
		names = append(names, e.Name)
	}
	if diff := cmp.Diff([]string{"sdl2_mixer", "zlib"}, names); diff != "" {
		t.Errorf("List names diff (-want +got):\n%s", diff)
	}
}

func TestFindByHeader(t *testing.T) {
	r := testRegistry(t)
	for _, tc := range []struct {
		include string
		want    string
	}{
		{include: "SDL2/SDL_mixer.h", want: "sdl2_mixer"},
		{include: "zlib.h", want: "zlib"},
		{include: "ZLIB/zconf.h", want: "zlib"},
		{include: "SDL2/SDL_ttf.h", want: ""},
	} {
		t.Run(tc.include, func(t *testing.T) {
			e, err := r.FindByHeader(tc.include)
			require.NoError(t, err)
			got := ""
			if e != nil {
				got = e.Name
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestRecommend(t *testing.T) {
	r := testRegistry(t)
	assert.Equal(t, "sdl2_mixer", r.Recommend("SDL2/SDL_mixer.h", "pacman"))
	assert.Empty(t, r.Recommend("SDL2/SDL_mixer.h", "pkg"))
	assert.Empty(t, r.Recommend("png.h", "dpkg"))
}

func TestNotSynced(t *testing.T) {
	r := New(t.TempDir(), nil)
	_, err := r.FindByHeader("zlib.h")
	assert.True(t, errors.Is(err, ErrNotSynced))
	assert.Empty(t, r.Recommend("zlib.h", "dpkg"))

	_, err = r.Load("zlib")
	assert.True(t, errors.Is(err, ErrNotSynced))
}

func TestLoadErrors(t *testing.T) {
	r := testRegistry(t)

	_, err := r.Load("empty")
	require.ErrorContains(t, err, "missing index.toml")

	_, err = r.Load("nope")
	require.ErrorContains(t, err, "not found")
}
