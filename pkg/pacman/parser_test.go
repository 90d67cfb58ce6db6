package pacman

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseOwner(t *testing.T) {
	for _, tc := range []struct {
		out  string
		want string
	}{
		{out: "/usr/include/SDL2/SDL.h is owned by sdl2 2.28.5-1\n", want: "sdl2"},
		{out: "error: No package owns /usr/include/foo.h\n", want: ""},
		{out: "", want: ""},
	} {
		if got := ParseOwner(tc.out); got != tc.want {
			t.Errorf("ParseOwner(%q)=%q; want %q", tc.out, got, tc.want)
		}
	}
}

func TestParseFileList(t *testing.T) {
	out := "sdl2 /usr/\nsdl2 /usr/include/SDL2/SDL.h\nsdl2 /usr/lib/pkgconfig/sdl2.pc\n\n"
	want := []string{"/usr/", "/usr/include/SDL2/SDL.h", "/usr/lib/pkgconfig/sdl2.pc"}
	if diff := cmp.Diff(want, ParseFileList(out)); diff != "" {
		t.Errorf("ParseFileList diff (-want +got):\n%s", diff)
	}
}

func TestParsePkgfile(t *testing.T) {
	out := "extra/sdl2_mixer\ncommunity/sdl2_mixer\nmultilib/lib32-sdl2_mixer\n"
	want := []string{"sdl2_mixer", "lib32-sdl2_mixer"}
	if diff := cmp.Diff(want, ParsePkgfile(out)); diff != "" {
		t.Errorf("ParsePkgfile diff (-want +got):\n%s", diff)
	}
}
