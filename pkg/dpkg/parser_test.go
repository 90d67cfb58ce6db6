package dpkg

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/require"
	"github.com/ulikunitz/xz"
)

func TestParseOwner(t *testing.T) {
	for _, tc := range []struct {
		name string
		out  string
		want string
	}{
		{name: "simple", out: "libsdl2-dev:amd64: /usr/include/SDL2/SDL.h\n", want: "libsdl2-dev"},
		{name: "noArch", out: "libglm-dev: /usr/include/glm/glm.hpp", want: "libglm-dev"},
		{name: "commaList", out: "libc6-dev:amd64, libc6-dev:i386: /usr/include/stdio.h", want: "libc6-dev"},
		{
			name: "diversion",
			out:  "diversion by libgl1-nvidia from: /usr/include/GL/gl.h\nmesa-common-dev:amd64: /usr/include/GL/gl.h\n",
			want: "mesa-common-dev",
		},
		{name: "empty", out: "", want: ""},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if got := ParseOwner(tc.out); got != tc.want {
				t.Errorf("ParseOwner(%q)=%q; want %q", tc.out, got, tc.want)
			}
		})
	}
}

func TestParseAptFile(t *testing.T) {
	got := ParseAptFile("libsdl2-mixer-dev\nlibsdl2-mixer-dev\n\nlibsdl2-mixer-dbg\n")
	if diff := cmp.Diff([]string{"libsdl2-mixer-dev", "libsdl2-mixer-dbg"}, got); diff != "" {
		t.Errorf("ParseAptFile diff (-want +got):\n%s", diff)
	}
}

const contents = `usr/include/SDL2/SDL_mixer.h                            libdevel/libsdl2-mixer-dev
usr/include/SDL2/SDL_image.h                            libdevel/libsdl2-image-dev
usr/include/x86_64-linux-gnu/SDL2/SDL_mixer.h           libdevel/libsdl2-mixer-dev,libdevel/libsdl2-mixer-alt
usr/share/doc/SDL2/SDL_mixer.h.txt                      doc/libsdl2-doc
`

func TestSearchContents(t *testing.T) {
	got, err := SearchContents(strings.NewReader(contents), "SDL2/SDL_mixer.h")
	require.NoError(t, err)
	if diff := cmp.Diff([]string{"libsdl2-mixer-dev", "libsdl2-mixer-alt"}, got); diff != "" {
		t.Errorf("SearchContents diff (-want +got):\n%s", diff)
	}

	got, err = SearchContents(strings.NewReader(contents), "SDL_mixer.h")
	require.NoError(t, err)
	require.Empty(t, got)
}

func compressed(t *testing.T, ext string) []byte {
	t.Helper()
	var buf bytes.Buffer
	var w io.WriteCloser
	var err error
	switch ext {
	case ".lz4":
		w = lz4.NewWriter(&buf)
	case ".xz":
		w, err = xz.NewWriter(&buf)
	case ".gz":
		w = gzip.NewWriter(&buf)
	case ".zst":
		w, err = zstd.NewWriter(&buf)
	default:
		return []byte(contents)
	}
	require.NoError(t, err)
	_, err = io.WriteString(w, contents)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestSearchContentsFile(t *testing.T) {
	for _, ext := range []string{"", ".lz4", ".xz", ".gz", ".zst"} {
		t.Run("ext"+ext, func(t *testing.T) {
			dir := t.TempDir()
			name := filepath.Join(dir, "deb.debian.org_debian_dists_bookworm_main_Contents-amd64"+ext)
			require.NoError(t, os.WriteFile(name, compressed(t, ext), 0644))

			files := ContentsFiles(dir)
			require.Equal(t, []string{name}, files)

			got, err := SearchContentsFile(name, "SDL2/SDL_image.h")
			require.NoError(t, err)
			require.Equal(t, []string{"libsdl2-image-dev"}, got)
		})
	}
}
