// pkg/backend/dpkg.go
package backend

import (
	"context"
	"fmt"

	"github.com/arc-language/depflags/pkg/core"
	"github.com/arc-language/depflags/pkg/dpkg"
	"github.com/arc-language/depflags/pkg/pkgconfig"
	"github.com/arc-language/depflags/pkg/platform"
)

// DpkgBackend implements the Backend interface for Debian packages
type DpkgBackend struct {
	base
}

// NewDpkgBackend creates a new Debian package backend
func NewDpkgBackend(config *Config) *DpkgBackend {
	return &DpkgBackend{base: newBase(config)}
}

// Name returns the backend name
func (b *DpkgBackend) Name() string {
	return string(BackendDpkg)
}

// OwnerOf asks dpkg-query which package installed path
func (b *DpkgBackend) OwnerOf(ctx context.Context, path string) (string, error) {
	out, err := b.output(ctx, dpkg.QueryBinary, "-S", path)
	if pkg := dpkg.ParseOwner(out); pkg != "" {
		return pkg, nil
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNoOwner, err)
	}
	return "", ErrNoOwner
}

// ListMetadataFiles lists the .pc files installed by pkg
func (b *DpkgBackend) ListMetadataFiles(ctx context.Context, pkg string) ([]string, error) {
	out, err := b.cfg.Runner.Output(ctx, platform.Command(dpkg.QueryBinary, "-L", pkg))
	if err != nil {
		return nil, err
	}
	return pkgconfig.FilterFiles(platform.Lines(out)), nil
}

// LibDirs returns the Debian library directories plus the multiarch one
func (b *DpkgBackend) LibDirs(ctx context.Context) []string {
	dirs := b.libDirs(BackendDpkg)
	if dir := b.cfg.Layout.MultiarchDir(b.cfg.Machine.Triple(ctx)); dir != "" {
		dirs = append(dirs, dir)
	}
	return dirs
}

// Locate searches dir with find -wholename
func (b *DpkgBackend) Locate(ctx context.Context, dir, include string) string {
	return b.findHeader(ctx, dir, include, "-wholename")
}

// Recommend asks apt-file, then the apt Contents indexes, which
// package ships include
func (b *DpkgBackend) Recommend(ctx context.Context, include string) ([]string, error) {
	if b.has(dpkg.AptFileBinary) {
		out, err := b.output(ctx, dpkg.AptFileBinary, "find", "-l", "include/"+include)
		if err != nil {
			b.cfg.Logger.Debug("apt-file failed", "include", include, "err", err)
		}
		if pkgs := dpkg.ParseAptFile(out); len(pkgs) > 0 {
			return pkgs, nil
		}
	}

	layout := b.cfg.Layout
	for _, name := range dpkg.ContentsFiles(layout.AptListsDir, layout.AptFileCacheDir) {
		pkgs, err := dpkg.SearchContentsFile(name, include)
		if err != nil {
			b.cfg.Logger.Debug("reading Contents index", "file", name, "err", err)
			continue
		}
		if len(pkgs) > 0 {
			return pkgs, nil
		}
	}

	if !b.has(dpkg.AptFileBinary) {
		return nil, &core.Error{
			Op:      "recommend",
			Include: include,
			Msg:     fmt.Sprintf("Could not find %q. Having apt-file would help, try: %s", include, dpkg.AptFileInstallHint),
			Err:     core.ErrMissingTool,
		}
	}
	return nil, nil
}

// InstallCommand returns "apt install <pkg>"
func (b *DpkgBackend) InstallCommand(pkg string) string {
	return dpkg.InstallCommand + " " + pkg
}
