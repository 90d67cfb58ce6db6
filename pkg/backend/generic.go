// pkg/backend/generic.go
package backend

import (
	"context"
)

// GenericBackend is used when no package manager is found.
// The owner is guessed from the directory below the include root.
type GenericBackend struct {
	base
}

// NewGenericBackend creates the fallback backend
func NewGenericBackend(config *Config) *GenericBackend {
	return &GenericBackend{base: newBase(config)}
}

// Name returns the backend name
func (b *GenericBackend) Name() string {
	return string(BackendGeneric)
}

// GuessesOwner reports that owners are inferred from paths
func (b *GenericBackend) GuessesOwner() bool {
	return true
}

// OwnerOf guesses "boost" for /usr/include/boost/filesystem.hpp
func (b *GenericBackend) OwnerOf(ctx context.Context, path string) (string, error) {
	if pkg := guessFromPath(path); pkg != "" {
		return pkg, nil
	}
	return "", ErrNoOwner
}

// ListMetadataFiles returns nothing; only library probing is possible
func (b *GenericBackend) ListMetadataFiles(ctx context.Context, pkg string) ([]string, error) {
	return nil, nil
}

// LibDirs returns the common Linux and NetBSD library directories
func (b *GenericBackend) LibDirs(ctx context.Context) []string {
	return b.libDirs(BackendGeneric)
}

// Locate does not search
func (b *GenericBackend) Locate(ctx context.Context, dir, include string) string {
	return ""
}

// ExtraIncludeDirs returns the NetBSD include root
func (b *GenericBackend) ExtraIncludeDirs() []string {
	if b.cfg.Layout.NetBSDInclude == "" {
		return nil
	}
	return []string{b.cfg.Layout.NetBSDInclude}
}

// Recommend is not supported without a package manager
func (b *GenericBackend) Recommend(ctx context.Context, include string) ([]string, error) {
	return nil, nil
}

// InstallCommand is empty without a package manager
func (b *GenericBackend) InstallCommand(pkg string) string {
	return ""
}
