// pkg/backend/types.go
package backend

import (
	"context"
	"errors"

	"github.com/charmbracelet/log"

	"github.com/arc-language/depflags/pkg/env"
	"github.com/arc-language/depflags/pkg/platform"
	"github.com/arc-language/depflags/pkg/pkgconfig"
)

// BackendType represents the package database queried for header ownership
type BackendType string

const (
	// BackendDpkg uses dpkg-query on Debian and Ubuntu
	BackendDpkg BackendType = "dpkg"
	// BackendPacman uses pacman on Arch Linux
	BackendPacman BackendType = "pacman"
	// BackendFreeBSD uses pkg(8) on FreeBSD
	BackendFreeBSD BackendType = "pkg"
	// BackendOpenBSD uses pkg_info on OpenBSD
	BackendOpenBSD BackendType = "openbsd"
	// BackendBrew uses Homebrew on macOS
	BackendBrew BackendType = "brew"
	// BackendGeneric guesses package names from header paths
	BackendGeneric BackendType = "generic"
	// BackendAuto automatically detects the best backend
	BackendAuto BackendType = "auto"
)

// ErrNoOwner is returned by OwnerOf when no installed package owns a path
var ErrNoOwner = errors.New("no owner")

// Backend defines the interface that all package database backends must implement
type Backend interface {
	// Name returns the name of the backend
	Name() string

	// OwnerOf returns the installed package owning path, or ErrNoOwner
	OwnerOf(ctx context.Context, path string) (string, error)

	// ListMetadataFiles returns the .pc files installed by pkg
	ListMetadataFiles(ctx context.Context, pkg string) ([]string, error)

	// QueryMetadata returns the compile and link flags of a .pc file
	QueryMetadata(ctx context.Context, pcFile string) (string, error)

	// LibDirs returns the directories probed for lib<name>.so
	LibDirs(ctx context.Context) []string

	// Locate searches dir for a file path ending in include, or returns ""
	Locate(ctx context.Context, dir, include string) string

	// Recommend returns packages, installed or not, that ship include.
	// It returns a core.ErrMissingTool error when the search tool is absent.
	Recommend(ctx context.Context, include string) ([]string, error)

	// InstallCommand returns the command line that installs pkg
	InstallCommand(pkg string) string
}

// ownerGuesser is implemented by backends that infer owners from paths
// instead of asking a package database. A missing owner is not fatal there.
type ownerGuesser interface {
	GuessesOwner() bool
}

// extraRooter is implemented by backends that search include roots
// beyond the system include directories.
type extraRooter interface {
	ExtraIncludeDirs() []string
}

// Config holds configuration shared by all backends
type Config struct {
	// Runner executes external tools
	Runner platform.Runner

	// Logger for warnings and debug traces
	Logger *log.Logger

	// Layout is the host filesystem layout
	Layout *env.Layout

	// Machine provides the compiler target triple
	Machine *platform.Machine
}

// DefaultConfig returns a configuration for the running host
func DefaultConfig() *Config {
	logger := log.Default()
	runner := platform.ExecRunner{Logger: logger}
	return &Config{
		Runner:  runner,
		Logger:  logger,
		Layout:  env.DefaultLayout(),
		Machine: platform.NewMachine(runner, ""),
	}
}

// withDefaults fills unset fields
func (c *Config) withDefaults() *Config {
	if c == nil {
		return DefaultConfig()
	}
	cfg := *c
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	if cfg.Runner == nil {
		cfg.Runner = platform.ExecRunner{Logger: cfg.Logger}
	}
	if cfg.Layout == nil {
		cfg.Layout = env.DefaultLayout()
	}
	if cfg.Machine == nil {
		cfg.Machine = platform.NewMachine(cfg.Runner, "")
	}
	return &cfg
}

// base carries what every backend needs
type base struct {
	cfg *Config
	pc  *pkgconfig.Client
}

func newBase(cfg *Config) base {
	cfg = cfg.withDefaults()
	return base{cfg: cfg, pc: pkgconfig.New(cfg.Runner, cfg.Logger)}
}

func (b base) output(ctx context.Context, name string, args ...string) (string, error) {
	return platform.OutputString(ctx, b.cfg.Runner, platform.Command(name, args...))
}

func (b base) has(tool string) bool {
	return platform.CommandExists(b.cfg.Runner, tool)
}

// QueryMetadata runs pkg-config on the module named by the .pc file
func (b base) QueryMetadata(ctx context.Context, pcFile string) (string, error) {
	return b.pc.Flags(ctx, pkgconfig.ModuleName(pcFile))
}

func (b base) libDirs(name BackendType) []string {
	return b.cfg.Layout.LibDirsFor(string(name))
}
