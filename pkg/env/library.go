// pkg/env/library.go
package env

import (
	"os"
	"path/filepath"
)

// Library represents a found shared library file
type Library struct {
	Name string // Library name (e.g., "glut")
	Dir  string // Directory holding the file
	Path string // Absolute path to lib<name>.so
}

// Flag returns the -l flag for the library
func (l *Library) Flag() string {
	return "-l" + l.Name
}

// HasSibling reports whether lib<name><suffix>.so sits next to the library,
// e.g. libboost_filesystem++.so
func (l *Library) HasSibling(suffix string) bool {
	return fileExists(filepath.Join(l.Dir, SharedLibraryFile(l.Name+suffix)))
}

// SharedLibraryFile returns lib<name>.so
func SharedLibraryFile(name string) string {
	return "lib" + name + ".so"
}

// FindSharedLibrary searches dirs in order for lib<name>.so.
// Returns nil when no directory holds it.
func FindSharedLibrary(dirs []string, name string) *Library {
	if name == "" {
		return nil
	}
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		fullPath := filepath.Join(dir, SharedLibraryFile(name))
		if fileExists(fullPath) {
			return &Library{
				Name: name,
				Dir:  dir,
				Path: fullPath,
			}
		}
	}
	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
