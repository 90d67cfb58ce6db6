// pkg/backend/resolver.go
package backend

import (
	"context"
	"errors"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/arc-language/depflags/pkg/core"
	"github.com/arc-language/depflags/pkg/env"
	"github.com/arc-language/depflags/pkg/flags"
	"github.com/arc-language/depflags/pkg/pccache"
	"github.com/arc-language/depflags/pkg/pkgconfig"
	"github.com/arc-language/depflags/pkg/platform"
)

// toolchainPackages belong to the compiler or C library and never add flags
var toolchainPackages = map[string]bool{
	"glibc":          true,
	"gcc":            true,
	"wine":           true,
	"libc6-dev":      true,
	"linux-libc-dev": true,
	"musl":           true,
	"musl-dev":       true,
}

// IsToolchainPackage reports whether pkg is part of the toolchain
func IsToolchainPackage(pkg string) bool {
	return toolchainPackages[pkg]
}

// Resolver turns header paths into flags using one backend.
// The .pc listing of each package is fetched at most once.
type Resolver struct {
	backend Backend
	cache   *pccache.Cache
	logger  *log.Logger
}

// NewResolver creates a Resolver with an empty cache
func NewResolver(b Backend, logger *log.Logger) *Resolver {
	if logger == nil {
		logger = log.Default()
	}
	return &Resolver{
		backend: b,
		cache:   pccache.New(logger),
		logger:  logger,
	}
}

// Backend returns the backend in use
func (r *Resolver) Backend() Backend {
	return r.backend
}

// Ownership describes what the package database knows about a header
type Ownership struct {
	Path    string
	Package string
	PCFiles []string
	Flags   string
}

// ResolvePath returns the flags needed for the header at path.
// An existing header without an owner is a core.ErrUnownedPath error.
func (r *Resolver) ResolvePath(ctx context.Context, path string) (string, error) {
	o, err := r.Inspect(ctx, path)
	if err != nil {
		return "", err
	}
	return o.Flags, nil
}

// Inspect resolves path and reports the owner and .pc files it used
func (r *Resolver) Inspect(ctx context.Context, path string) (*Ownership, error) {
	o := &Ownership{Path: path}
	pkg, err := r.backend.OwnerOf(ctx, path)
	if err != nil && !errors.Is(err, ErrNoOwner) {
		r.logger.Debug("owner query failed", "path", path, "err", err)
	}
	if pkg == "" {
		if r.guessesOwner() {
			return o, nil
		}
		if IsToolchainPackage(guessFromPath(path)) || !platform.Exists(path) {
			return o, nil
		}
		return o, &core.Error{Op: "resolve", Path: path, Err: core.ErrUnownedPath}
	}
	o.Package = pkg
	if IsToolchainPackage(pkg) {
		r.logger.Debug("toolchain package", "pkg", pkg, "path", path)
		return o, nil
	}

	pcFiles, err := r.cache.GetOrFetch(ctx, pkg, r.backend.ListMetadataFiles)
	if err != nil {
		r.logger.Debug("listing .pc files failed", "pkg", pkg, "err", err)
	}
	r.logger.Debug("pc files", "pkg", pkg, "files", pcFiles, "cached", r.cache.Len())
	o.PCFiles = pcFiles

	if len(pcFiles) > 0 {
		o.Flags = r.queryAll(ctx, pcFiles)
	} else {
		o.Flags = r.probeLibrary(ctx, pkg, path)
	}
	return o, nil
}

// queryAll merges the pkg-config output of every .pc file.
// A query that gives nothing falls back to -l<name>.
func (r *Resolver) queryAll(ctx context.Context, pcFiles []string) string {
	merged := flags.NewSet()
	for _, pcFile := range pcFiles {
		out, err := r.backend.QueryMetadata(ctx, pcFile)
		if err != nil || out == "" {
			if err != nil {
				r.logger.Warn(err.Error())
			}
			out = "-l" + pkgconfig.ModuleName(pcFile)
		}
		merged.Add(strings.Fields(out)...)
	}
	return merged.String()
}

// probeLibrary looks for lib<candidate>.so when a package ships no .pc files
func (r *Resolver) probeLibrary(ctx context.Context, pkg, path string) string {
	dirs := r.backend.LibDirs(ctx)
	for _, candidate := range libCandidates(pkg, path, r.guessesOwner()) {
		lib := env.FindSharedLibrary(dirs, candidate)
		if lib == nil {
			continue
		}
		found := []string{lib.Flag()}
		if dir := filepath.Dir(path); platform.IsDir(dir) {
			found = append(found, "-I"+dir)
		}
		if lib.HasSibling("++") {
			found = append(found, "-l"+candidate+"++")
		}
		r.logger.Debug("library probe", "pkg", pkg, "lib", lib.Path)
		return strings.Join(found, " ")
	}
	_, generic := r.backend.(*GenericBackend)
	switch {
	case pkg == "boost":
	case generic:
		// every owner is a guess without a package manager
		r.logger.Debug("no pkg-config files", "pkg", pkg)
	default:
		r.logger.Warn("No pkg-config files for: " + pkg)
	}
	return ""
}

// ResolveInclude resolves include against the system include directories,
// then searches them with the backend's Locate.
func (r *Resolver) ResolveInclude(ctx context.Context, include string, systemDirs []string) (string, error) {
	contributed := flags.NewSet()
	resolve := func(path string) error {
		out, err := r.ResolvePath(ctx, path)
		if err != nil {
			return err
		}
		contributed.Add(strings.Fields(out)...)
		return nil
	}

	for _, dir := range systemDirs {
		path := filepath.Join(dir, include)
		if !platform.Exists(path) {
			continue
		}
		if err := resolve(path); err != nil {
			return "", err
		}
	}
	if contributed.Len() == 0 {
		for _, dir := range systemDirs {
			path := r.backend.Locate(ctx, dir, include)
			if path == "" {
				continue
			}
			if err := resolve(path); err != nil {
				return "", err
			}
		}
	}
	if extra, ok := r.backend.(extraRooter); ok && contributed.Len() == 0 {
		for _, dir := range extra.ExtraIncludeDirs() {
			path := filepath.Join(dir, include)
			if !platform.Exists(path) {
				continue
			}
			if err := resolve(path); err != nil {
				return "", err
			}
		}
	}
	return contributed.String(), nil
}

func (r *Resolver) guessesOwner() bool {
	g, ok := r.backend.(ownerGuesser)
	return ok && g.GuessesOwner()
}

// guessFromPath returns the directory after the include root in path,
// e.g. "boost" for /usr/include/boost/filesystem.hpp
func guessFromPath(path string) string {
	parts := strings.Split(filepath.ToSlash(path), "/")
	for i, part := range parts {
		if part == "include" && i+1 < len(parts) {
			return parts[i+1]
		}
	}
	if len(parts) <= 3 {
		return ""
	}
	return parts[3]
}

// libCandidates returns library names to probe, in order, without duplicates
func libCandidates(pkg, path string, lower bool) []string {
	parts := strings.Split(path, "/")
	if len(parts) > 2 {
		parts = parts[len(parts)-2:]
	}
	booststyle := strings.TrimSuffix(strings.Join(parts, "_"), filepath.Ext(path))
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	names := []string{pkg, booststyle, strings.ToUpper(pkg), base}
	if lower {
		names = append(names, strings.ToLower(pkg))
	}
	set := flags.NewSet(names...)
	return set.Items()
}
