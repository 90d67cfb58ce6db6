// pkg/dpkg/parser.go
package dpkg

import (
	"bufio"
	"io"
	"path"
	"strings"
)

// ParseOwner extracts the package name from `dpkg-query -S <path>` output.
// Diversion lines are skipped; for "a, b: /path" the first package wins.
// The architecture qualifier of "libfoo-dev:amd64" is dropped.
func ParseOwner(out string) string {
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "diversion") {
			continue
		}
		idx := strings.Index(line, ":")
		if idx <= 0 {
			continue
		}
		pkg := line[:idx]
		if comma := strings.Index(pkg, ","); comma != -1 {
			pkg = pkg[:comma]
		}
		return strings.TrimSpace(pkg)
	}
	return ""
}

// ParseAptFile returns the package names printed by `apt-file find -l`
func ParseAptFile(out string) []string {
	var pkgs []string
	seen := make(map[string]bool)
	for _, line := range strings.Split(out, "\n") {
		pkg := strings.TrimSpace(line)
		if pkg == "" || seen[pkg] {
			continue
		}
		seen[pkg] = true
		pkgs = append(pkgs, pkg)
	}
	return pkgs
}

// SearchContents scans a Contents index for a file ending in include/<target>.
// Each line is "<path> <section>/<pkg>[,<section>/<pkg>...]".
func SearchContents(r io.Reader, target string) ([]string, error) {
	suffix := path.Join("include", target)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var pkgs []string
	seen := make(map[string]bool)
	for scanner.Scan() {
		line := scanner.Text()
		sep := strings.LastIndexAny(line, " \t")
		if sep == -1 {
			continue
		}
		file := strings.TrimSpace(line[:sep])
		if file != suffix && !strings.HasSuffix(file, "/"+suffix) {
			continue
		}
		for _, qualified := range strings.Split(line[sep+1:], ",") {
			pkg := qualified
			if slash := strings.LastIndex(pkg, "/"); slash != -1 {
				pkg = pkg[slash+1:]
			}
			if pkg != "" && !seen[pkg] {
				seen[pkg] = true
				pkgs = append(pkgs, pkg)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return pkgs, err
	}
	return pkgs, nil
}
