// Package bsdpkg parses the output of the FreeBSD pkg(8) and OpenBSD
// pkg_info(1) tools.
package bsdpkg

import (
	"strings"
	"unicode"
)

const (
	// FreeBSDBinary is the FreeBSD package tool
	FreeBSDBinary = "/usr/sbin/pkg"

	// OpenBSDInfoBinary queries installed OpenBSD packages
	OpenBSDInfoBinary = "/usr/sbin/pkg_info"

	// OpenBSDLocateBinary searches OpenBSD packages that are not installed
	OpenBSDLocateBinary = "pkg_locate"

	// FreeBSDInstallCommand installs a FreeBSD package
	FreeBSDInstallCommand = "pkg install"

	// OpenBSDInstallCommand installs an OpenBSD package
	OpenBSDInstallCommand = "pkg_add"
)

// StripVersion removes a trailing "-<version>" from a package name,
// e.g. "sdl2-2.28.5" becomes "sdl2" and "py39-numpy-1.25" becomes "py39-numpy".
func StripVersion(pkg string) string {
	idx := strings.LastIndex(pkg, "-")
	if idx <= 0 || idx == len(pkg)-1 {
		return pkg
	}
	if unicode.IsDigit(rune(pkg[idx+1])) {
		return pkg[:idx]
	}
	return pkg
}

// ParseFreeBSDOwner reads `pkg which -q <path>` output
func ParseFreeBSDOwner(out string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(out), "\n")
	return StripVersion(strings.TrimSpace(line))
}

// ParseFreeBSDProvides returns the package names listed by `pkg provides`:
//
//	Name    : sdl2-2.28.5
//	Filename: usr/local/include/SDL2/SDL.h
func ParseFreeBSDProvides(out string) []string {
	var pkgs []string
	seen := make(map[string]bool)
	for _, line := range strings.Split(out, "\n") {
		key, value, ok := strings.Cut(line, ":")
		if !ok || strings.TrimSpace(key) != "Name" {
			continue
		}
		pkg := StripVersion(strings.TrimSpace(value))
		if pkg != "" && !seen[pkg] {
			seen[pkg] = true
			pkgs = append(pkgs, pkg)
		}
	}
	return pkgs
}

// ParseOpenBSDOwner reads `pkg_info -E <path>` output. The first line is
// "<path>: <pkg>-<version>"; the name is cut at the first dash.
func ParseOpenBSDOwner(out string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(out), "\n")
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return ""
	}
	name, _, _ := strings.Cut(fields[1], "-")
	return name
}

// ParseOpenBSDLocate returns the package names of `pkg_locate` output,
// where each line is "<pkg>-<version>:<pkgpath>:<file>".
func ParseOpenBSDLocate(out string) []string {
	var pkgs []string
	seen := make(map[string]bool)
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		stem, _, _ := strings.Cut(line, ":")
		pkg := StripVersion(stem)
		if pkg != "" && !seen[pkg] {
			seen[pkg] = true
			pkgs = append(pkgs, pkg)
		}
	}
	return pkgs
}

// ParseFileList returns the absolute paths of `pkg list` or `pkg_info -L`
// output, skipping headers such as "Information for inst:sdl2-2.28.5".
func ParseFileList(out string) []string {
	var files []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "/") {
			files = append(files, line)
		}
	}
	return files
}
