// pkg/backend/brew.go
package backend

import (
	"context"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arc-language/depflags/pkg/brew"
	"github.com/arc-language/depflags/pkg/pkgconfig"
	"github.com/arc-language/depflags/pkg/platform"
)

// BrewBackend implements the Backend interface for Homebrew.
// Homebrew cannot name the owner of a file, so owners are inferred.
type BrewBackend struct {
	base
}

// NewBrewBackend creates a new Homebrew backend
func NewBrewBackend(config *Config) *BrewBackend {
	return &BrewBackend{base: newBase(config)}
}

// Name returns the backend name
func (b *BrewBackend) Name() string {
	return string(BackendBrew)
}

// GuessesOwner reports that owners are inferred from paths
func (b *BrewBackend) GuessesOwner() bool {
	return true
}

// OwnerOf infers the formula from the Cellar symlink target
func (b *BrewBackend) OwnerOf(ctx context.Context, path string) (string, error) {
	layout := b.cfg.Layout
	if pkg := brew.OwnerOf(path, layout.CellarDirs, layout.LocalInclude); pkg != "" {
		return pkg, nil
	}
	return "", ErrNoOwner
}

// ListMetadataFiles lists the .pc files of a formula
func (b *BrewBackend) ListMetadataFiles(ctx context.Context, pkg string) ([]string, error) {
	out, err := b.output(ctx, brew.Binary, "ls", "--verbose", pkg)
	if err != nil {
		return nil, err
	}
	return pkgconfig.FilterFiles(brew.ParseList(out)), nil
}

// QueryMetadata runs pkg-config with PKG_CONFIG_PATH set to the .pc directory
func (b *BrewBackend) QueryMetadata(ctx context.Context, pcFile string) (string, error) {
	return b.pc.FlagsIn(ctx, filepath.Dir(pcFile), pkgconfig.ModuleName(pcFile))
}

// LibDirs returns /usr/local/lib and /usr/lib
func (b *BrewBackend) LibDirs(ctx context.Context) []string {
	return b.libDirs(BackendBrew)
}

// Locate follows symlinks below dir, then falls back to the newest
// Frameworks directory of each formula in the Cellar.
func (b *BrewBackend) Locate(ctx context.Context, dir, include string) string {
	if platform.IsDir(dir) {
		out, _ := b.cfg.Runner.Output(ctx, platform.Command("find", "-s", "-L", dir,
			"-type", "f", "-wholename", "*"+include, "-maxdepth", "4"))
		if lines := platform.Lines(out); len(lines) > 0 {
			return lines[len(lines)-1]
		}
	}
	for _, fwDir := range b.frameworkDirs(ctx) {
		out, _ := b.cfg.Runner.Output(ctx, platform.Command("find", "-L", fwDir,
			"-type", "f", "-maxdepth", "4", "-name", filepath.Base(include)))
		if lines := platform.Lines(out); len(lines) > 0 {
			return lines[len(lines)-1]
		}
	}
	return ""
}

// frameworkDirs returns the Frameworks directory of the highest
// version of every formula, ordered by formula name
func (b *BrewBackend) frameworkDirs(ctx context.Context) []string {
	latest := make(map[string]string)
	for _, cellar := range b.cfg.Layout.CellarDirs {
		if !platform.IsDir(cellar) {
			continue
		}
		out, _ := b.cfg.Runner.Output(ctx, platform.Command("find", cellar,
			"-name", "Frameworks", "-type", "d", "-maxdepth", "3"))
		dirs := platform.Lines(out)
		SortVersions(dirs)
		prefix := strings.TrimSuffix(cellar, "/") + "/"
		for _, dir := range dirs {
			formula, _, _ := strings.Cut(strings.TrimPrefix(dir, prefix), "/")
			latest[formula] = filepath.Clean(dir)
		}
	}
	formulas := make([]string, 0, len(latest))
	for formula := range latest {
		formulas = append(formulas, formula)
	}
	sort.Strings(formulas)
	dirs := make([]string, 0, len(formulas))
	for _, formula := range formulas {
		dirs = append(dirs, latest[formula])
	}
	return dirs
}

// Recommend is not supported by Homebrew
func (b *BrewBackend) Recommend(ctx context.Context, include string) ([]string, error) {
	return nil, nil
}

// InstallCommand returns "brew install <pkg>"
func (b *BrewBackend) InstallCommand(pkg string) string {
	return brew.InstallCommand + " " + pkg
}
