// pkg/backend/pacman.go
package backend

import (
	"context"
	"fmt"

	"github.com/arc-language/depflags/pkg/core"
	"github.com/arc-language/depflags/pkg/pacman"
	"github.com/arc-language/depflags/pkg/pkgconfig"
)

// PacmanBackend implements the Backend interface for Arch Linux
type PacmanBackend struct {
	base
}

// NewPacmanBackend creates a new Arch Linux backend
func NewPacmanBackend(config *Config) *PacmanBackend {
	return &PacmanBackend{base: newBase(config)}
}

// Name returns the backend name
func (b *PacmanBackend) Name() string {
	return string(BackendPacman)
}

// OwnerOf asks pacman which package owns path
func (b *PacmanBackend) OwnerOf(ctx context.Context, path string) (string, error) {
	out, err := b.output(ctx, pacman.Binary, "-Qo", path)
	if pkg := pacman.ParseOwner(out); pkg != "" {
		return pkg, nil
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNoOwner, err)
	}
	return "", ErrNoOwner
}

// ListMetadataFiles lists the .pc files installed by pkg
func (b *PacmanBackend) ListMetadataFiles(ctx context.Context, pkg string) ([]string, error) {
	out, err := b.output(ctx, pacman.Binary, "-Ql", pkg)
	if err != nil {
		return nil, err
	}
	return pkgconfig.FilterFiles(pacman.ParseFileList(out)), nil
}

// LibDirs returns /usr/lib
func (b *PacmanBackend) LibDirs(ctx context.Context) []string {
	return b.libDirs(BackendPacman)
}

// Locate searches dir with find -wholename
func (b *PacmanBackend) Locate(ctx context.Context, dir, include string) string {
	return b.findHeader(ctx, dir, include, "-wholename")
}

// Recommend asks pkgfile which repository package ships include
func (b *PacmanBackend) Recommend(ctx context.Context, include string) ([]string, error) {
	if !b.has(pacman.PkgfileBinary) {
		return nil, &core.Error{
			Op:      "recommend",
			Include: include,
			Msg:     fmt.Sprintf("Could not find %q. Having pkgfile would help, try: %s", include, pacman.PkgfileInstallHint),
			Err:     core.ErrMissingTool,
		}
	}
	out, err := b.output(ctx, pacman.PkgfileBinary, "-g", "*/"+include)
	if err != nil {
		b.cfg.Logger.Debug("pkgfile failed", "include", include, "err", err)
	}
	return pacman.ParsePkgfile(out), nil
}

// InstallCommand returns "pacman -S <pkg>"
func (b *PacmanBackend) InstallCommand(pkg string) string {
	return pacman.InstallCommand + " " + pkg
}
