// pkg/env/layout.go
package env

import (
	"path/filepath"
)

// Layout holds the absolute host paths used during resolution
type Layout struct {
	// LibDirs are the library directories probed for lib<name>.so, per backend
	LibDirs map[string][]string

	// MultiarchBase is joined with the compiler's machine triple (/usr/lib)
	MultiarchBase string

	// GLUTLibDirs are searched in addition to the generic dirs for libglut
	GLUTLibDirs []string

	// FrameworkDir holds third-party macOS frameworks (/Library/Frameworks)
	FrameworkDir string

	// SystemFrameworkDir holds Apple frameworks (/System/Library/Frameworks)
	SystemFrameworkDir string

	// ExtraIncludeRoots are probed for every include before backend resolution
	ExtraIncludeRoots []string

	// MinGWInclude is the cross toolchain include directory
	MinGWInclude string

	// NetBSDInclude is searched by the generic backend (/usr/pkg/include)
	NetBSDInclude string

	// LocalInclude is /usr/local/include
	LocalInclude string

	// CellarDirs are Homebrew cellars, newest layout last
	CellarDirs []string

	// AptListsDir holds downloaded apt Contents indexes
	AptListsDir string

	// AptFileCacheDir holds apt-file's own Contents caches
	AptFileCacheDir string
}

// DefaultLayout returns the layout of a conventional Unix host
func DefaultLayout() *Layout {
	return &Layout{
		LibDirs: map[string][]string{
			"dpkg":    {"/usr/lib", "/usr/lib/x86_64-linux-gnu", "/usr/local/lib"},
			"pacman":  {"/usr/lib"},
			"pkg":     {"/usr/local/lib"},
			"openbsd": {"/usr/local/lib"},
			"brew":    {"/usr/local/lib", "/usr/lib"},
			"generic": {"/usr/lib", "/usr/lib/x86_64-linux-gnu", "/usr/local/lib", "/usr/pkg/lib"},
		},
		MultiarchBase:      "/usr/lib",
		GLUTLibDirs:        []string{"/usr/X11R7/lib"},
		FrameworkDir:       "/Library/Frameworks",
		SystemFrameworkDir: "/System/Library/Frameworks",
		ExtraIncludeRoots:  []string{"/usr/pkg/include", "/usr/local/include"},
		MinGWInclude:       "/usr/x86_64-w64-mingw32/include",
		NetBSDInclude:      "/usr/pkg/include",
		LocalInclude:       "/usr/local/include",
		CellarDirs:         []string{"/usr/local/Cellar", "/opt/homebrew/Cellar"},
		AptListsDir:        "/var/lib/apt/lists",
		AptFileCacheDir:    "/var/cache/apt/apt-file",
	}
}

// Rooted returns a layout with every path moved under root
func Rooted(root string) *Layout {
	def := DefaultLayout()
	re := func(p string) string { return filepath.Join(root, p) }
	reAll := func(ps []string) []string {
		out := make([]string, len(ps))
		for i, p := range ps {
			out[i] = re(p)
		}
		return out
	}

	l := &Layout{
		LibDirs:            make(map[string][]string, len(def.LibDirs)),
		MultiarchBase:      re(def.MultiarchBase),
		GLUTLibDirs:        reAll(def.GLUTLibDirs),
		FrameworkDir:       re(def.FrameworkDir),
		SystemFrameworkDir: re(def.SystemFrameworkDir),
		ExtraIncludeRoots:  reAll(def.ExtraIncludeRoots),
		MinGWInclude:       re(def.MinGWInclude),
		NetBSDInclude:      re(def.NetBSDInclude),
		LocalInclude:       re(def.LocalInclude),
		CellarDirs:         reAll(def.CellarDirs),
		AptListsDir:        re(def.AptListsDir),
		AptFileCacheDir:    re(def.AptFileCacheDir),
	}
	for backend, dirs := range def.LibDirs {
		l.LibDirs[backend] = reAll(dirs)
	}
	return l
}

// LibDirsFor returns the library directories for a backend.
// Unknown backends get the generic directories.
func (l *Layout) LibDirsFor(backend string) []string {
	if dirs, ok := l.LibDirs[backend]; ok {
		return append([]string(nil), dirs...)
	}
	return append([]string(nil), l.LibDirs["generic"]...)
}

// MultiarchDir returns /usr/lib/<triple>, or "" without a triple
func (l *Layout) MultiarchDir(triple string) string {
	if triple == "" {
		return ""
	}
	return filepath.Join(l.MultiarchBase, triple)
}
