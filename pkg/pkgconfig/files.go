// pkg/pkgconfig/files.go
package pkgconfig

import (
	"path/filepath"
	"strings"
)

// FilterFiles keeps the .pc files of a package file listing
func FilterFiles(files []string) []string {
	var pcFiles []string
	for _, f := range files {
		f = strings.TrimSpace(f)
		if strings.HasSuffix(f, ".pc") {
			pcFiles = append(pcFiles, f)
		}
	}
	return pcFiles
}

// ModuleName returns the module name of a .pc file, e.g. "sdl2" for
// /usr/lib/pkgconfig/sdl2.pc
func ModuleName(pcFile string) string {
	return strings.TrimSuffix(filepath.Base(pcFile), ".pc")
}
