package bsdpkg

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestStripVersion(t *testing.T) {
	for in, want := range map[string]string{
		"sdl2-2.28.5":     "sdl2",
		"py39-numpy-1.25": "py39-numpy",
		"glib-devel":      "glib-devel",
		"boost":           "boost",
		"gcc12-12.2.0_6":  "gcc12",
		"trailing-":       "trailing-",
	} {
		if got := StripVersion(in); got != want {
			t.Errorf("StripVersion(%q)=%q; want %q", in, got, want)
		}
	}
}

func TestParseOwners(t *testing.T) {
	if got, want := ParseFreeBSDOwner("sdl2-2.28.5\n"), "sdl2"; got != want {
		t.Errorf("ParseFreeBSDOwner=%q; want %q", got, want)
	}
	if got := ParseFreeBSDOwner(""); got != "" {
		t.Errorf("ParseFreeBSDOwner(empty)=%q; want empty", got)
	}
	out := "/usr/local/include/SDL2/SDL.h: sdl2-2.28.5\nsdl2-2.28.5         cross-platform multimedia library\n"
	if got, want := ParseOpenBSDOwner(out), "sdl2"; got != want {
		t.Errorf("ParseOpenBSDOwner=%q; want %q", got, want)
	}
	if got := ParseOpenBSDOwner("/usr/local/include/foo.h:\n"); got != "" {
		t.Errorf("ParseOpenBSDOwner(unowned)=%q; want empty", got)
	}
}

func TestParseFreeBSDProvides(t *testing.T) {
	out := `Name    : sdl2_mixer-2.6.3
Desc    : Sample multi-channel audio mixer library
Repo    : FreeBSD
Filename: usr/local/include/SDL2/SDL_mixer.h

Name    : sdl2_mixer-devel-2.7.0
Desc    : Sample multi-channel audio mixer library
Repo    : FreeBSD
Filename: usr/local/include/SDL2/SDL_mixer.h
`
	if diff := cmp.Diff([]string{"sdl2_mixer", "sdl2_mixer-devel"}, ParseFreeBSDProvides(out)); diff != "" {
		t.Errorf("ParseFreeBSDProvides diff (-want +got):\n%s", diff)
	}
}

func TestParseOpenBSDLocate(t *testing.T) {
	out := "sdl2-mixer-2.6.3:devel/sdl2-mixer:/usr/local/include/SDL2/SDL_mixer.h\n"
	if diff := cmp.Diff([]string{"sdl2-mixer"}, ParseOpenBSDLocate(out)); diff != "" {
		t.Errorf("ParseOpenBSDLocate diff (-want +got):\n%s", diff)
	}
}

func TestParseFileList(t *testing.T) {
	out := "Information for inst:sdl2-2.28.5\n\nFiles:\n/usr/local/include/SDL2/SDL.h\n/usr/local/lib/pkgconfig/sdl2.pc\n"
	want := []string{"/usr/local/include/SDL2/SDL.h", "/usr/local/lib/pkgconfig/sdl2.pc"}
	if diff := cmp.Diff(want, ParseFileList(out)); diff != "" {
		t.Errorf("ParseFileList diff (-want +got):\n%s", diff)
	}
}
