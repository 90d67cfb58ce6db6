// depflags.go
package depflags

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/arc-language/depflags/pkg/backend"
	"github.com/arc-language/depflags/pkg/core"
	"github.com/arc-language/depflags/pkg/env"
	"github.com/arc-language/depflags/pkg/flags"
	"github.com/arc-language/depflags/pkg/include"
	"github.com/arc-language/depflags/pkg/pkgconfig"
	"github.com/arc-language/depflags/pkg/platform"
	"github.com/arc-language/depflags/pkg/registry"
	"github.com/arc-language/depflags/pkg/report"
	"github.com/arc-language/depflags/pkg/rules"
)

// Re-export types for convenience
type (
	BackendType = backend.BackendType
	FlagSet     = flags.FlagSet
	Context     = platform.Context
	Ownership   = backend.Ownership
	// RegistryEntry is a recommendation entry from the deps/ registry
	RegistryEntry = registry.Entry
)

// Re-export backend constants
const (
	BackendDpkg    = backend.BackendDpkg
	BackendPacman  = backend.BackendPacman
	BackendFreeBSD = backend.BackendFreeBSD
	BackendOpenBSD = backend.BackendOpenBSD
	BackendBrew    = backend.BackendBrew
	BackendGeneric = backend.BackendGeneric
	BackendAuto    = backend.BackendAuto
)

// Config holds the engine configuration
type Config struct {
	// Logger receives warnings and, at debug level, command traces
	Logger *log.Logger

	// Runner executes external tools
	Runner platform.Runner

	// Layout is the host filesystem layout
	Layout *env.Layout

	// Backend selects the package database, BackendAuto probes the host
	Backend BackendType

	// Compiler is asked for its target triple; guessed when empty
	Compiler string

	// Lenient turns missing includes into a warning
	Lenient bool

	// Strict drops the warning-silencing flags added for Qt, glm and GLUT
	Strict bool

	// LocalIncludePaths are project include roots relative to the source file
	LocalIncludePaths []string

	// DLLDir is searched for import libraries when cross compiling
	DLLDir string

	// CachePath holds the deps/ recommendation registry; empty disables it
	CachePath string
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	logger := log.NewWithOptions(os.Stdout, log.Options{Level: log.WarnLevel})
	return &Config{
		Logger:    logger,
		Runner:    platform.ExecRunner{Logger: logger},
		Layout:    env.DefaultLayout(),
		Backend:   BackendAuto,
		CachePath: core.DefaultConfig().CachePath,
	}
}

// Engine finds the compiler and linker flags a source file needs
type Engine struct {
	config     *Config
	backend    backend.Backend
	resolver   *backend.Resolver
	extractor  *include.Extractor
	pkgConfig  *pkgconfig.Client
	machine    *platform.Machine
	registry   *registry.Registry
	classifier *flags.Classifier
}

// New creates an Engine, selecting the backend once
func New(config *Config) (*Engine, error) {
	if config == nil {
		config = DefaultConfig()
	}
	cfg := *config
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	if cfg.Runner == nil {
		cfg.Runner = platform.ExecRunner{Logger: cfg.Logger}
	}
	if cfg.Layout == nil {
		cfg.Layout = env.DefaultLayout()
	}

	machine := platform.NewMachine(cfg.Runner, cfg.Compiler)
	b, err := backend.New(cfg.Backend, &backend.Config{
		Runner:  cfg.Runner,
		Logger:  cfg.Logger,
		Layout:  cfg.Layout,
		Machine: machine,
	})
	if err != nil {
		return nil, fmt.Errorf("initializing backend: %w", err)
	}

	e := &Engine{
		config:     &cfg,
		backend:    b,
		resolver:   backend.NewResolver(b, cfg.Logger),
		extractor:  include.NewExtractor(cfg.Runner, cfg.Logger, cfg.LocalIncludePaths),
		pkgConfig:  pkgconfig.New(cfg.Runner, cfg.Logger),
		machine:    machine,
		classifier: &flags.Classifier{DLLDir: cfg.DLLDir, Logger: cfg.Logger},
	}
	if cfg.CachePath != "" {
		e.registry = registry.New(cfg.CachePath, cfg.Logger)
	}
	return e, nil
}

// Backend returns the name of the active backend
func (e *Engine) Backend() string {
	return e.backend.Name()
}

// Owner reports the package owning the header at path and the flags it gives
func (e *Engine) Owner(ctx context.Context, path string) (*Ownership, error) {
	return e.resolver.Inspect(ctx, path)
}

// BuildFlags returns the categorized flags needed to compile and link source.
// A fatal condition is returned as an error matching one of
// ErrUnresolvedInclude, ErrUnownedPath or ErrMissingTool.
func (e *Engine) BuildFlags(ctx context.Context, source string, pc *Context) (*FlagSet, error) {
	if source == "" {
		return flags.NewFlagSet(), nil
	}
	if pc == nil {
		pc = platform.NewContext()
	}

	res, err := e.extractor.Extract(ctx, source)
	if err != nil {
		return nil, err
	}

	acc := flags.NewAccumulator()
	for _, inc := range res.Includes {
		if include.IsThreadHeader(inc) {
			acc.Add(inc, "-pthread -lpthread")
		}
	}

	includes := e.extractor.Filter(source, res.Includes, pc.CrossWindows)
	e.addFrameworks(acc, includes, pc)
	if pc.CrossWindows {
		e.addIncludeRoot(acc, includes, e.config.Layout.MinGWInclude)
	} else {
		e.addSystemIncludes(ctx, acc, includes, pc)
	}
	for _, root := range e.config.Layout.ExtraIncludeRoots {
		e.addIncludeRoot(acc, includes, root)
	}

	if len(acc.Missing(includes)) > 0 && !e.pkgConfig.Available() {
		return nil, &core.Error{Op: "build", Path: pkgconfig.Binary, Err: core.ErrMissingTool}
	}

	for _, inc := range includes {
		if acc.HasPrimary(inc) {
			continue
		}
		out, err := e.resolver.ResolveInclude(ctx, inc, pc.SystemIncludeDirs)
		if err != nil {
			return nil, err
		}
		acc.Add(inc, out)
	}

	re := &rules.Env{
		Platform:  pc,
		Layout:    e.config.Layout,
		PkgConfig: e.pkgConfig,
		Machine:   e.machine,
		Logger:    e.config.Logger,
		Strict:    e.config.Strict,
		Lines:     res.Lines,
	}
	for _, inc := range includes {
		names := rules.Matching(inc)
		if len(names) == 0 {
			continue
		}
		e.config.Logger.Debug("special-case rules", "include", inc, "rules", names)
		acc.Add(inc, rules.Apply(ctx, re, inc))
	}

	rep := report.New(report.Config{
		Backend:  e.backend,
		Registry: e.registry,
		Platform: pc,
		Lenient:  e.config.Lenient,
		Logger:   e.config.Logger,
	})
	if err := rep.Report(ctx, acc.Missing(includes)); err != nil {
		return nil, err
	}

	fs := flags.NewFlagSet()
	e.classifier.Classify(fs, acc.Raw(), pc.CrossWindows)
	for _, dir := range pc.CompilerIncludeDirs {
		fs.Includes.Remove(dir)
	}
	return fs, nil
}

// addFrameworks adds /Library/Frameworks/<name>.framework on macOS
func (e *Engine) addFrameworks(acc *flags.Accumulator, includes []string, pc *Context) {
	if !pc.IsDarwin() {
		return
	}
	layout := e.config.Layout
	for _, inc := range includes {
		name := inc
		if first, _, ok := strings.Cut(inc, "/"); ok {
			name = strings.ToLower(strings.TrimSpace(first))
		}
		if !platform.Exists(filepath.Join(layout.FrameworkDir, name+".framework")) {
			continue
		}
		var raw []string
		if !pc.HasCompilerInclude(layout.LocalInclude) {
			raw = append(raw, "-I"+layout.LocalInclude)
		}
		raw = append(raw, "-F"+layout.FrameworkDir, "-framework", name)
		acc.Add(inc, strings.Join(raw, " "))
	}
}

// addSystemIncludes records -I<dir> for includes found directly below a
// system include dir, plus pkg-config flags for the include's first word
func (e *Engine) addSystemIncludes(ctx context.Context, acc *flags.Accumulator, includes []string, pc *Context) {
	hasPkgConfig := e.pkgConfig.Available()
	for _, inc := range includes {
		if acc.HasPrimary(inc) {
			continue
		}
		for _, dir := range pc.SystemIncludeDirs {
			if !platform.Exists(filepath.Join(dir, inc)) {
				continue
			}
			acc.AddDir(inc, "-I"+dir)
			if !hasPkgConfig {
				continue
			}
			first, _, _ := strings.Cut(inc, "/")
			if out, err := e.pkgConfig.Flags(ctx, strings.ToLower(first)); err == nil {
				acc.Add(inc, out)
			}
		}
	}
}

// addIncludeRoot records -I<root> for includes found below root
func (e *Engine) addIncludeRoot(acc *flags.Accumulator, includes []string, root string) {
	if root == "" || !platform.IsDir(root) {
		return
	}
	for _, inc := range includes {
		if acc.HasPrimary(inc) {
			continue
		}
		if platform.Exists(filepath.Join(root, inc)) {
			acc.AddDir(inc, "-I"+root)
		}
	}
}
