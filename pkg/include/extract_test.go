package include

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/arc-language/depflags/pkg/platform"
	"github.com/arc-language/depflags/pkg/platform/platformtest"
)

func TestParseIncludes(t *testing.T) {
	lines := []string{
		"#include <SDL2/SDL.h>",
		`#include "local.h"`,
		"  #include <vector>",
		"#include <a.h> <b.h>",
		`#include "x.h" "y.h"`,
		"int main() { return 0; }",
		"#include <SDL2/SDL.h>",
		"#include <>",
	}
	got := ParseIncludes(lines)
	if diff := cmp.Diff([]string{"SDL2/SDL.h", "local.h", "vector"}, got); diff != "" {
		t.Errorf("ParseIncludes diff (-want +got):\n%s", diff)
	}
}

// cppEcho stands in for the preprocessor: it drops the #if 0 block
// and returns the rest unchanged.
func cppEcho(cmd platform.Cmd) ([]byte, error, bool) {
	if cmd.Name != "cpp" {
		return nil, nil, false
	}
	var out []string
	skip := false
	for _, line := range strings.Split(string(cmd.Stdin), "\n") {
		switch {
		case strings.HasPrefix(line, "#if 0"):
			skip = true
		case strings.HasPrefix(line, "#endif"):
			skip = false
		case !skip && !strings.HasPrefix(line, "#"):
			out = append(out, line)
		}
	}
	return []byte(strings.Join(out, "\n") + "\n"), nil, true
}

func TestExtract(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "main.cpp")
	require.NoError(t, os.WriteFile(src, []byte(
		"#include <GL/glut.h>\n#if 0\n#include <windows.h>\n#endif\n#include <vector>\nint main() { gluLookAt(); }\n"), 0644))

	r := platformtest.New("cpp")
	r.Handler = cppEcho
	e := NewExtractor(r, log.New(io.Discard), nil)

	res, err := e.Extract(context.Background(), src)
	require.NoError(t, err)
	if diff := cmp.Diff([]string{"GL/glut.h", "vector"}, res.Includes); diff != "" {
		t.Errorf("Includes diff (-want +got):\n%s", diff)
	}
	require.Contains(t, res.Lines, "int main() { gluLookAt(); }")

	cmd, ok := r.LastCmd("cpp")
	require.True(t, ok)
	require.Equal(t, "cpp -E -P -w -pipe", cmd.Key())
	require.NotContains(t, string(cmd.Stdin), "#include")
}

func TestExtractPreprocessorFailure(t *testing.T) {
	src := filepath.Join(t.TempDir(), "main.c")
	require.NoError(t, os.WriteFile(src, []byte("#include <zlib.h>\n"), 0644))

	r := platformtest.New()
	r.Fail("cpp -E -P -w -pipe", errors.New("executable file not found"))
	e := NewExtractor(r, log.New(io.Discard), nil)

	res, err := e.Extract(context.Background(), src)
	require.NoError(t, err)
	require.Empty(t, res.Includes)
	require.Equal(t, 1, r.Count("cpp -E -P -w -pipe"))
}

func TestFilter(t *testing.T) {
	root := t.TempDir()
	srcDir := filepath.Join(root, "src")
	require.NoError(t, os.MkdirAll(filepath.Join(srcDir, "include", "game"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "common"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(srcDir, "include", "game", "world.h"), nil, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "common", "util.h"), nil, 0644))
	src := filepath.Join(srcDir, "main.cpp")

	e := NewExtractor(platformtest.New(), log.New(io.Discard), nil)
	includes := []string{"vector", "game/world.h", "SDL2/SDL.h", "d3d9.h", "util.h", "../common/util.h"}

	got := e.Filter(src, includes, false)
	if diff := cmp.Diff([]string{"SDL2/SDL.h", "d3d9.h"}, got); diff != "" {
		t.Errorf("Filter diff (-want +got):\n%s", diff)
	}

	got = e.Filter(src, includes, true)
	if diff := cmp.Diff([]string{"SDL2/SDL.h"}, got); diff != "" {
		t.Errorf("Filter cross diff (-want +got):\n%s", diff)
	}
}

func TestSkipLists(t *testing.T) {
	require.Len(t, standardHeaders, 112)
	require.Len(t, windowsSDKHeaders, 1500)
	for _, name := range []string{"vector", "stdio.h", "thread", "iostream"} {
		require.True(t, IsStandard(name), name)
	}
	require.False(t, IsStandard("SDL2/SDL.h"))
	require.True(t, IsWindowsSDK("d3d9.h"))
	require.True(t, IsThreadHeader("pthread.h"))
}
