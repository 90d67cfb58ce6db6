// pkg/backend/bsd.go
package backend

import (
	"context"
	"fmt"

	"github.com/arc-language/depflags/pkg/bsdpkg"
	"github.com/arc-language/depflags/pkg/pkgconfig"
)

// FreeBSDBackend implements the Backend interface for FreeBSD pkg(8)
type FreeBSDBackend struct {
	base
}

// NewFreeBSDBackend creates a new FreeBSD backend
func NewFreeBSDBackend(config *Config) *FreeBSDBackend {
	return &FreeBSDBackend{base: newBase(config)}
}

// Name returns the backend name
func (b *FreeBSDBackend) Name() string {
	return string(BackendFreeBSD)
}

// OwnerOf asks pkg which package installed path
func (b *FreeBSDBackend) OwnerOf(ctx context.Context, path string) (string, error) {
	out, err := b.output(ctx, bsdpkg.FreeBSDBinary, "which", "-q", path)
	if pkg := bsdpkg.ParseFreeBSDOwner(out); pkg != "" {
		return pkg, nil
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNoOwner, err)
	}
	return "", ErrNoOwner
}

// ListMetadataFiles lists the .pc files installed by pkg
func (b *FreeBSDBackend) ListMetadataFiles(ctx context.Context, pkg string) ([]string, error) {
	out, err := b.output(ctx, bsdpkg.FreeBSDBinary, "list", pkg)
	if err != nil {
		return nil, err
	}
	return pkgconfig.FilterFiles(bsdpkg.ParseFileList(out)), nil
}

// LibDirs returns /usr/local/lib
func (b *FreeBSDBackend) LibDirs(ctx context.Context) []string {
	return b.libDirs(BackendFreeBSD)
}

// Locate searches dir with find -wholename
func (b *FreeBSDBackend) Locate(ctx context.Context, dir, include string) string {
	return b.findHeader(ctx, dir, include, "-wholename")
}

// Recommend asks `pkg provides`, which may list several packages
func (b *FreeBSDBackend) Recommend(ctx context.Context, include string) ([]string, error) {
	out, err := b.output(ctx, bsdpkg.FreeBSDBinary, "provides", "include/"+include+"$")
	if err != nil {
		b.cfg.Logger.Debug("pkg provides failed", "include", include, "err", err)
	}
	return bsdpkg.ParseFreeBSDProvides(out), nil
}

// InstallCommand returns "pkg install <pkg>"
func (b *FreeBSDBackend) InstallCommand(pkg string) string {
	return bsdpkg.FreeBSDInstallCommand + " " + pkg
}

// OpenBSDBackend implements the Backend interface for OpenBSD pkg_info
type OpenBSDBackend struct {
	base
}

// NewOpenBSDBackend creates a new OpenBSD backend
func NewOpenBSDBackend(config *Config) *OpenBSDBackend {
	return &OpenBSDBackend{base: newBase(config)}
}

// Name returns the backend name
func (b *OpenBSDBackend) Name() string {
	return string(BackendOpenBSD)
}

// OwnerOf asks pkg_info which package installed path
func (b *OpenBSDBackend) OwnerOf(ctx context.Context, path string) (string, error) {
	out, err := b.output(ctx, bsdpkg.OpenBSDInfoBinary, "-E", path)
	if pkg := bsdpkg.ParseOpenBSDOwner(out); pkg != "" {
		return pkg, nil
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNoOwner, err)
	}
	return "", ErrNoOwner
}

// ListMetadataFiles lists the .pc files installed by pkg
func (b *OpenBSDBackend) ListMetadataFiles(ctx context.Context, pkg string) ([]string, error) {
	out, err := b.output(ctx, bsdpkg.OpenBSDInfoBinary, "-L", pkg)
	if err != nil {
		return nil, err
	}
	return pkgconfig.FilterFiles(bsdpkg.ParseFileList(out)), nil
}

// LibDirs returns /usr/local/lib
func (b *OpenBSDBackend) LibDirs(ctx context.Context) []string {
	return b.libDirs(BackendOpenBSD)
}

// Locate searches dir with find -path
func (b *OpenBSDBackend) Locate(ctx context.Context, dir, include string) string {
	return b.findHeader(ctx, dir, include, "-path")
}

// Recommend asks pkg_locate which package ships include
func (b *OpenBSDBackend) Recommend(ctx context.Context, include string) ([]string, error) {
	if !b.has(bsdpkg.OpenBSDLocateBinary) {
		return nil, nil
	}
	out, err := b.output(ctx, bsdpkg.OpenBSDLocateBinary, "include/"+include)
	if err != nil {
		b.cfg.Logger.Debug("pkg_locate failed", "include", include, "err", err)
	}
	return bsdpkg.ParseOpenBSDLocate(out), nil
}

// InstallCommand returns "pkg_add <pkg>"
func (b *OpenBSDBackend) InstallCommand(pkg string) string {
	return bsdpkg.OpenBSDInstallCommand + " " + pkg
}
