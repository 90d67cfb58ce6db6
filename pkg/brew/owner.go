// owner.go
package brew

import (
	"path/filepath"
	"strings"
)

// OwnerOf infers the formula owning a header. Homebrew links headers into
// the include prefix from <cellar>/<formula>/<version>/include, so the
// symlink target names the formula. Otherwise the first directory below
// localInclude is used as a guess. Returns "" when nothing fits.
func OwnerOf(includePath string, cellars []string, localInclude string) string {
	realpath, err := filepath.EvalSymlinks(includePath)
	if err != nil {
		realpath = includePath
	}
	for _, cellar := range cellars {
		if formula := formulaIn(realpath, cellar); formula != "" {
			return formula
		}
	}

	prefix := strings.TrimSuffix(localInclude, "/") + "/"
	if localInclude == "" || !strings.HasPrefix(includePath, prefix) {
		return ""
	}
	rest := strings.TrimPrefix(includePath, prefix)
	first, _, _ := strings.Cut(rest, "/")
	return first
}

// formulaIn returns <formula> when path is <cellar>/<formula>/<version>/...
func formulaIn(path, cellar string) string {
	if cellar == "" {
		return ""
	}
	prefix := strings.TrimSuffix(cellar, "/") + "/"
	if !strings.HasPrefix(path, prefix) {
		return ""
	}
	parts := strings.Split(strings.TrimPrefix(path, prefix), "/")
	if len(parts) < 3 {
		return ""
	}
	return parts[0]
}

// ParseList returns the files of `brew ls --verbose <formula>` output
func ParseList(out string) []string {
	var files []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			files = append(files, line)
		}
	}
	return files
}
