package backend

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arc-language/depflags/pkg/core"
	"github.com/arc-language/depflags/pkg/env"
	"github.com/arc-language/depflags/pkg/flags"
	"github.com/arc-language/depflags/pkg/platform"
	"github.com/arc-language/depflags/pkg/platform/platformtest"
)

type testHost struct {
	root   string
	runner *platformtest.FakeRunner
	logs   *bytes.Buffer
	config *Config
}

func newTestHost(t *testing.T, tools ...string) *testHost {
	t.Helper()
	root := t.TempDir()
	r := platformtest.New(tools...)
	var logs bytes.Buffer
	return &testHost{
		root:   root,
		runner: r,
		logs:   &logs,
		config: &Config{
			Runner:  r,
			Logger:  log.New(&logs),
			Layout:  env.Rooted(root),
			Machine: platform.NewMachine(r, ""),
		},
	}
}

func (h *testHost) path(rel string) string {
	return filepath.Join(h.root, rel)
}

func (h *testHost) touch(t *testing.T, rel string) string {
	t.Helper()
	p := h.path(rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
	require.NoError(t, os.WriteFile(p, nil, 0644))
	return p
}

func TestDetect(t *testing.T) {
	for _, tc := range []struct {
		name  string
		tools []string
		want  BackendType
	}{
		{name: "debian", tools: []string{"dpkg-query", "pkg-config"}, want: BackendDpkg},
		{name: "archWithDpkg", tools: []string{"dpkg-query", "pacman"}, want: BackendPacman},
		{name: "arch", tools: []string{"pacman"}, want: BackendPacman},
		{name: "freebsd", tools: []string{"/usr/sbin/pkg", "/usr/sbin/pkg_info", "brew"}, want: BackendFreeBSD},
		{name: "openbsd", tools: []string{"/usr/sbin/pkg_info"}, want: BackendOpenBSD},
		{name: "macos", tools: []string{"brew"}, want: BackendBrew},
		{name: "unknown", tools: nil, want: BackendGeneric},
	} {
		t.Run(tc.name, func(t *testing.T) {
			h := newTestHost(t, tc.tools...)
			b := Detect(h.config)
			assert.Equal(t, string(tc.want), b.Name())
		})
	}
}

func TestNew(t *testing.T) {
	h := newTestHost(t)
	b, err := New(BackendOpenBSD, h.config)
	require.NoError(t, err)
	assert.Equal(t, "openbsd", b.Name())

	b, err = New(BackendAuto, h.config)
	require.NoError(t, err)
	assert.Equal(t, "generic", b.Name())

	_, err = New("nix", h.config)
	require.Error(t, err)
}

// Headers owned by a package without .pc files link against the library
// named after the last two path segments, plus its ++ variant.
func TestResolveIncludeLibraryProbe(t *testing.T) {
	h := newTestHost(t, "dpkg-query")
	header := h.touch(t, "usr/include/boost/filesystem.hpp")
	h.touch(t, "usr/lib/libboost_filesystem.so")
	h.touch(t, "usr/lib/libboost_filesystem++.so")
	h.runner.
		On("dpkg-query -S "+header, "libboost-filesystem1.83-dev:amd64: "+header+"\n").
		On("dpkg-query -L libboost-filesystem1.83-dev", "/usr/share/doc/libboost-filesystem1.83-dev/copyright\n")

	r := NewResolver(NewDpkgBackend(h.config), h.config.Logger)
	out, err := r.ResolveInclude(context.Background(), "boost/filesystem.hpp", []string{h.path("usr/include")})
	require.NoError(t, err)

	fs := flags.Split(out, false)
	if diff := cmp.Diff([]string{"boost_filesystem", "boost_filesystem++"}, fs.Libs.Items()); diff != "" {
		t.Errorf("Libs diff (-want +got):\n%s", diff)
	}
	assert.Equal(t, []string{filepath.Dir(header)}, fs.Includes.Items())
	assert.NotContains(t, h.logs.String(), "No pkg-config files")
}

func TestResolvePathUnowned(t *testing.T) {
	h := newTestHost(t, "dpkg-query")
	header := h.touch(t, "usr/include/mystery/mystery.h")
	h.runner.Fail("dpkg-query -S "+header, errors.New("exit status 1"))

	r := NewResolver(NewDpkgBackend(h.config), h.config.Logger)
	_, err := r.ResolveInclude(context.Background(), "mystery/mystery.h", []string{h.path("usr/include")})
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrUnownedPath))
	assert.True(t, core.IsFatal(err))
	assert.Contains(t, err.Error(), header)
}

func TestResolvePathToolchain(t *testing.T) {
	h := newTestHost(t, "dpkg-query")
	unowned := h.touch(t, "usr/include/gcc/builtins.h")
	owned := h.touch(t, "usr/include/features.h")
	h.runner.
		Fail("dpkg-query -S "+unowned, errors.New("exit status 1")).
		On("dpkg-query -S "+owned, "libc6-dev:amd64: "+owned)

	r := NewResolver(NewDpkgBackend(h.config), h.config.Logger)
	ctx := context.Background()

	out, err := r.ResolvePath(ctx, unowned)
	require.NoError(t, err)
	assert.Empty(t, out)

	out, err = r.ResolvePath(ctx, owned)
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Zero(t, h.runner.Count("dpkg-query -L libc6-dev"))
}

func TestResolvePathListsOncePerPackage(t *testing.T) {
	h := newTestHost(t, "dpkg-query", "pkg-config")
	sdl := h.touch(t, "usr/include/SDL2/SDL.h")
	video := h.touch(t, "usr/include/SDL2/SDL_video.h")
	h.runner.
		On("dpkg-query -S "+sdl, "libsdl2-dev:amd64: "+sdl).
		On("dpkg-query -S "+video, "libsdl2-dev:amd64: "+video).
		On("dpkg-query -L libsdl2-dev", "/usr/include/SDL2/SDL.h\n/usr/lib/x86_64-linux-gnu/pkgconfig/sdl2.pc\n").
		On("pkg-config --cflags --libs sdl2", "-D_REENTRANT -I/usr/include/SDL2 -lSDL2\n")

	r := NewResolver(NewDpkgBackend(h.config), h.config.Logger)
	ctx := context.Background()
	for _, p := range []string{sdl, video} {
		out, err := r.ResolvePath(ctx, p)
		require.NoError(t, err)
		assert.Equal(t, "-D_REENTRANT -I/usr/include/SDL2 -lSDL2", out)
	}
	assert.Equal(t, 1, h.runner.Count("dpkg-query -L libsdl2-dev"))
}

func TestResolvePathPkgConfigFallback(t *testing.T) {
	h := newTestHost(t, "dpkg-query", "pkg-config")
	header := h.touch(t, "usr/include/foo/foo.h")
	h.runner.
		On("dpkg-query -S "+header, "libfoo-dev: "+header).
		On("dpkg-query -L libfoo-dev", "/usr/lib/pkgconfig/foo.pc\n/usr/lib/pkgconfig/foo-extra.pc\n").
		On("pkg-config --cflags --libs foo", "-lfoo -lm").
		On("pkg-config --cflags --libs foo-extra", "")

	r := NewResolver(NewDpkgBackend(h.config), h.config.Logger)
	out, err := r.ResolvePath(context.Background(), header)
	require.NoError(t, err)
	assert.Equal(t, "-lfoo -lm -lfoo-extra", out)
	assert.Contains(t, h.logs.String(), "this command failed to run:\npkg-config --cflags --libs foo-extra")
}

func TestProbeWarnings(t *testing.T) {
	h := newTestHost(t, "pacman")
	boost := h.touch(t, "usr/include/boost/any.hpp")
	other := h.touch(t, "usr/include/nolib/nolib.h")
	h.runner.
		On("pacman -Qo "+boost, boost+" is owned by boost 1.83.0-5").
		On("pacman -Ql boost", "boost "+boost+"\n").
		On("pacman -Qo "+other, other+" is owned by nolib 1.0-1").
		On("pacman -Ql nolib", "nolib "+other+"\n")

	r := NewResolver(NewPacmanBackend(h.config), h.config.Logger)
	ctx := context.Background()

	_, err := r.ResolvePath(ctx, boost)
	require.NoError(t, err)
	assert.NotContains(t, h.logs.String(), "No pkg-config files")

	_, err = r.ResolvePath(ctx, other)
	require.NoError(t, err)
	assert.Contains(t, h.logs.String(), "No pkg-config files for: nolib")
}

func TestGenericProbeMissIsQuiet(t *testing.T) {
	h := newTestHost(t)
	header := h.touch(t, "usr/include/nolib/nolib.h")

	r := NewResolver(NewGenericBackend(h.config), h.config.Logger)
	out, err := r.ResolvePath(context.Background(), header)
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.NotContains(t, h.logs.String(), "No pkg-config files")
}

func TestLocateHighestVersion(t *testing.T) {
	h := newTestHost(t, "dpkg-query")
	dir := h.path("usr/include")
	require.NoError(t, os.MkdirAll(dir, 0755))
	h.runner.On("find "+dir+" -maxdepth 3 -type f -wholename *QtCore/qstring.h",
		dir+"/qt5/QtCore/qstring.h\n"+dir+"/qt10/QtCore/qstring.h\n"+dir+"/qt6/QtCore/qstring.h\n")

	b := NewDpkgBackend(h.config)
	assert.Equal(t, dir+"/qt10/QtCore/qstring.h", b.Locate(context.Background(), dir, "QtCore/qstring.h"))
	assert.Empty(t, b.Locate(context.Background(), h.path("missing"), "QtCore/qstring.h"))

	ob := NewOpenBSDBackend(h.config)
	ob.Locate(context.Background(), dir, "QtCore/qstring.h")
	assert.Equal(t, 1, h.runner.Count("find "+dir+" -maxdepth 3 -type f -path *QtCore/qstring.h"))
}

func TestSortVersions(t *testing.T) {
	got := []string{"sdl2-2.0.10", "sdl2-2.0.9", "sdl2-2.0.9a", "qt6", "qt10", "qt5", "a"}
	SortVersions(got)
	want := []string{"a", "qt5", "qt6", "qt10", "sdl2-2.0.9", "sdl2-2.0.9a", "sdl2-2.0.10"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("SortVersions diff (-want +got):\n%s", diff)
	}
	assert.Empty(t, HighestVersion(nil))
}

func TestLibCandidates(t *testing.T) {
	got := libCandidates("sdl2", "/usr/include/SDL2/SDL_mixer.h", false)
	if diff := cmp.Diff([]string{"sdl2", "SDL2_SDL_mixer", "SDL2", "SDL_mixer"}, got); diff != "" {
		t.Errorf("libCandidates diff (-want +got):\n%s", diff)
	}
	got = libCandidates("GL", "/usr/include/GL/glut.h", true)
	if diff := cmp.Diff([]string{"GL", "GL_glut", "glut", "gl"}, got); diff != "" {
		t.Errorf("libCandidates lower diff (-want +got):\n%s", diff)
	}
}

func TestDpkgLibDirsMultiarch(t *testing.T) {
	h := newTestHost(t, "g++")
	h.runner.On("g++ -dumpmachine", "aarch64-linux-gnu\n")
	b := NewDpkgBackend(h.config)
	dirs := b.LibDirs(context.Background())
	assert.Equal(t, h.path("usr/lib/aarch64-linux-gnu"), dirs[len(dirs)-1])
	b.LibDirs(context.Background())
	assert.Equal(t, 1, h.runner.Count("g++ -dumpmachine"))
}

func TestRecommend(t *testing.T) {
	ctx := context.Background()

	t.Run("aptFile", func(t *testing.T) {
		h := newTestHost(t, "apt-file")
		h.runner.On("apt-file find -l include/SDL2/SDL_mixer.h", "libsdl2-mixer-dev\n")
		pkgs, err := NewDpkgBackend(h.config).Recommend(ctx, "SDL2/SDL_mixer.h")
		require.NoError(t, err)
		assert.Equal(t, []string{"libsdl2-mixer-dev"}, pkgs)
	})

	t.Run("contentsWithoutAptFile", func(t *testing.T) {
		h := newTestHost(t)
		lists := h.config.Layout.AptListsDir
		require.NoError(t, os.MkdirAll(lists, 0755))
		require.NoError(t, os.WriteFile(filepath.Join(lists, "deb_dists_main_Contents-amd64"),
			[]byte("usr/include/SDL2/SDL_mixer.h libdevel/libsdl2-mixer-dev\n"), 0644))
		pkgs, err := NewDpkgBackend(h.config).Recommend(ctx, "SDL2/SDL_mixer.h")
		require.NoError(t, err)
		assert.Equal(t, []string{"libsdl2-mixer-dev"}, pkgs)
	})

	t.Run("aptFileMissing", func(t *testing.T) {
		h := newTestHost(t)
		_, err := NewDpkgBackend(h.config).Recommend(ctx, "SDL2/SDL_mixer.h")
		require.Error(t, err)
		assert.True(t, errors.Is(err, core.ErrMissingTool))
		assert.Contains(t, err.Error(), "apt install apt-file")
	})

	t.Run("pkgfile", func(t *testing.T) {
		h := newTestHost(t, "pkgfile")
		h.runner.On("pkgfile -g */SDL2/SDL_mixer.h", "extra/sdl2_mixer\n")
		b := NewPacmanBackend(h.config)
		pkgs, err := b.Recommend(ctx, "SDL2/SDL_mixer.h")
		require.NoError(t, err)
		assert.Equal(t, []string{"sdl2_mixer"}, pkgs)
		assert.Equal(t, "pacman -S sdl2_mixer", b.InstallCommand(pkgs[0]))
	})

	t.Run("pkgfileMissing", func(t *testing.T) {
		h := newTestHost(t)
		_, err := NewPacmanBackend(h.config).Recommend(ctx, "SDL2/SDL_mixer.h")
		require.Error(t, err)
		assert.True(t, strings.Contains(err.Error(), "pacman -S pkgfile"))
	})

	t.Run("generic", func(t *testing.T) {
		h := newTestHost(t)
		b := NewGenericBackend(h.config)
		pkgs, err := b.Recommend(ctx, "SDL2/SDL_mixer.h")
		require.NoError(t, err)
		assert.Empty(t, pkgs)
		assert.Empty(t, b.InstallCommand("x"))
	})
}

func TestBrewQueryMetadata(t *testing.T) {
	h := newTestHost(t, "brew", "pkg-config")
	h.runner.On("pkg-config --cflags --libs sdl2", "-I/usr/local/include/SDL2 -lSDL2")
	b := NewBrewBackend(h.config)

	out, err := b.QueryMetadata(context.Background(), "/usr/local/Cellar/sdl2/2.28.5/lib/pkgconfig/sdl2.pc")
	require.NoError(t, err)
	assert.Equal(t, "-I/usr/local/include/SDL2 -lSDL2", out)
	cmd, ok := h.runner.LastCmd("pkg-config")
	require.True(t, ok)
	assert.Equal(t, []string{"PKG_CONFIG_PATH=/usr/local/Cellar/sdl2/2.28.5/lib/pkgconfig"}, cmd.Env)
}

func TestBrewUnknownOwnerIsNotFatal(t *testing.T) {
	h := newTestHost(t, "brew")
	header := h.touch(t, "opt/include/thing.h")
	r := NewResolver(NewBrewBackend(h.config), h.config.Logger)
	out, err := r.ResolvePath(context.Background(), header)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestGenericNetBSDRoot(t *testing.T) {
	h := newTestHost(t)
	h.touch(t, "usr/pkg/include/png/png.h")
	h.touch(t, "usr/pkg/lib/libpng.so")

	r := NewResolver(NewGenericBackend(h.config), h.config.Logger)
	out, err := r.ResolveInclude(context.Background(), "png/png.h", []string{h.path("usr/include")})
	require.NoError(t, err)
	assert.Equal(t, "-lpng -I"+h.path("usr/pkg/include/png"), out)
}
