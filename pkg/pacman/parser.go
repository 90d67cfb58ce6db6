package pacman

import (
	"strings"
)

const ownedBy = "is owned by"

// ParseOwner extracts the package from `pacman -Qo <path>` output:
// "/usr/include/SDL2/SDL.h is owned by sdl2 2.28.5-1"
func ParseOwner(out string) string {
	idx := strings.Index(out, ownedBy)
	if idx == -1 {
		return ""
	}
	fields := strings.Fields(out[idx+len(ownedBy):])
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// ParseFileList returns the paths of `pacman -Ql <pkg>` output,
// where each line is "<pkg> <path>".
func ParseFileList(out string) []string {
	var files []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		_, file, ok := strings.Cut(line, " ")
		if !ok || file == "" {
			continue
		}
		files = append(files, strings.TrimSpace(file))
	}
	return files
}

// ParsePkgfile returns package names from `pkgfile` output,
// with the repository prefix ("extra/") removed.
func ParsePkgfile(out string) []string {
	var pkgs []string
	seen := make(map[string]bool)
	for _, line := range strings.Split(out, "\n") {
		pkg := strings.TrimSpace(line)
		if pkg == "" {
			continue
		}
		if _, name, ok := strings.Cut(pkg, "/"); ok {
			pkg = name
		}
		if !seen[pkg] {
			seen[pkg] = true
			pkgs = append(pkgs, pkg)
		}
	}
	return pkgs
}
