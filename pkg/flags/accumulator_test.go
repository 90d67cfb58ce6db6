package flags

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAccumulator(t *testing.T) {
	a := NewAccumulator()
	a.AddDir("SDL2/SDL.h", "-I/usr/include")
	a.Add("SDL2/SDL.h", "-I/usr/include/SDL2 -lSDL2")
	a.Add("GL/gl.h", "-lGL")
	a.Add("SDL2/SDL.h", "-lSDL2 -D_REENTRANT")
	a.Add("zlib.h", "  ")

	if got, want := a.Raw(), "-I/usr/include/SDL2 -lSDL2 -D_REENTRANT -lGL -I/usr/include"; got != want {
		t.Errorf("Raw()=%q; want %q", got, want)
	}
	missing := a.Missing([]string{"SDL2/SDL.h", "zlib.h", "GL/gl.h", "png.h"})
	if diff := cmp.Diff([]string{"zlib.h", "png.h"}, missing); diff != "" {
		t.Errorf("Missing diff (-want +got):\n%s", diff)
	}
}

func TestAccumulatorDirOnly(t *testing.T) {
	a := NewAccumulator()
	a.AddDir("foo.h", "-I/usr/local/include")
	if !a.Resolved("foo.h") {
		t.Errorf("Resolved(foo.h)=false; want true")
	}
	if a.HasPrimary("foo.h") {
		t.Errorf("HasPrimary(foo.h)=true; want false")
	}
	if diff := cmp.Diff([]string{"-I/usr/local/include"}, a.Tokens("foo.h")); diff != "" {
		t.Errorf("Tokens diff (-want +got):\n%s", diff)
	}
}

func TestAccumulatorKeepsFrameworkPairs(t *testing.T) {
	a := NewAccumulator()
	a.Add("SFML/Graphics.hpp", "-F/Library/Frameworks -framework OpenGL")
	fs := Split(a.Raw(), false)
	if diff := cmp.Diff([]string{"-F/Library/Frameworks", "-framework OpenGL"}, fs.LinkFlags.Items()); diff != "" {
		t.Errorf("LinkFlags diff (-want +got):\n%s", diff)
	}
}
