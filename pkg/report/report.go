// pkg/report/report.go
package report

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/arc-language/depflags/pkg/backend"
	"github.com/arc-language/depflags/pkg/core"
	"github.com/arc-language/depflags/pkg/platform"
	"github.com/arc-language/depflags/pkg/registry"
)

// Config holds what the reporter needs to recommend packages
type Config struct {
	Backend  backend.Backend
	Registry *registry.Registry // Optional
	Platform *platform.Context
	Lenient  bool
	Logger   *log.Logger
}

// Reporter turns unresolved includes into install recommendations
type Reporter struct {
	cfg Config
}

// New creates a Reporter
func New(cfg Config) *Reporter {
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	if cfg.Platform == nil {
		cfg.Platform = platform.NewContext()
	}
	return &Reporter{cfg: cfg}
}

// Report explains the missing includes. It returns nil when nothing is
// missing or in lenient mode, otherwise an error wrapping
// core.ErrUnresolvedInclude, or core.ErrMissingTool when the package
// index tool is absent.
func (r *Reporter) Report(ctx context.Context, missing []string) error {
	missing = Relevant(missing)
	if len(missing) == 0 {
		return nil
	}

	for _, hint := range Hints(r.cfg.Platform, missing) {
		r.cfg.Logger.Warn(hint)
	}

	if r.cfg.Lenient {
		r.cfg.Logger.Warn("missing include: " + missing[0])
		return nil
	}

	for _, include := range missing {
		if err := r.recommend(ctx, include); err != nil {
			return err
		}
	}
	return &core.Error{Op: "report", Include: missing[0], Err: core.ErrUnresolvedInclude}
}

func (r *Reporter) recommend(ctx context.Context, include string) error {
	b := r.cfg.Backend
	if b == nil {
		return nil
	}

	if r.cfg.Registry != nil {
		if pkg := r.cfg.Registry.Recommend(include, b.Name()); pkg != "" {
			r.cfg.Logger.Debug("registry recommendation", "include", include, "pkg", pkg)
			return installError(include, b.InstallCommand(pkg))
		}
	}

	pkgs, err := b.Recommend(ctx, include)
	if err != nil {
		return err
	}
	var candidates []string
	for _, pkg := range pkgs {
		if !backend.IsToolchainPackage(pkg) {
			candidates = append(candidates, pkg)
		}
	}

	switch len(candidates) {
	case 0:
		return nil
	case 1:
		return installError(include, b.InstallCommand(candidates[0]))
	default:
		return &core.Error{
			Op:      "report",
			Include: include,
			Msg: fmt.Sprintf("Could not find package for missing include %q.\n       It could belong to one of these:\n           %s",
				include, strings.Join(candidates, "\n           ")),
			Err: core.ErrUnresolvedInclude,
		}
	}
}

func installError(include, command string) error {
	return &core.Error{
		Op:      "report",
		Include: include,
		Msg:     fmt.Sprintf("Could not find %q, install with: %s", include, command),
		Err:     core.ErrUnresolvedInclude,
	}
}

// Relevant drops includes that are artifacts of the "linux" macro,
// which cpp expands to 1.
func Relevant(missing []string) []string {
	var out []string
	for _, include := range missing {
		if !strings.HasPrefix(include, "1/") {
			out = append(out, include)
		}
	}
	return out
}

var appleHints = []struct {
	include, apple string
}{
	{include: "GL/glut.h", apple: "GLUT/glut.h"},
	{include: "GL/gl.h", apple: "OpenGL/gl.h"},
}

// Hints returns platform specific advice for the missing includes
func Hints(pc *platform.Context, missing []string) []string {
	if pc == nil || !pc.IsDarwin() {
		return nil
	}
	var hints []string
	for _, h := range appleHints {
		for _, include := range missing {
			if include != h.include {
				continue
			}
			hints = append(hints, fmt.Sprintf(`On macOS, include %s instead of %s.

Suggested code:

    #ifdef __APPLE__
    #include <%s>
    #else
    #include <%s>
    #endif`, h.apple, h.include, h.apple, h.include))
			break
		}
	}
	return hints
}
