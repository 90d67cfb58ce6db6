// pkg/rules/rules.go
package rules

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/arc-language/depflags/pkg/env"
	"github.com/arc-language/depflags/pkg/pkgconfig"
	"github.com/arc-language/depflags/pkg/platform"
)

// Env is what the rules may look at while producing flags
type Env struct {
	Platform  *platform.Context
	Layout    *env.Layout
	PkgConfig *pkgconfig.Client
	Machine   *platform.Machine
	Logger    *log.Logger

	// Strict suppresses the warning-silencing flags
	Strict bool

	// Lines are the preprocessed source lines
	Lines []string
}

// Rule adds flags for a library whose .pc files are known to be incomplete
type Rule struct {
	Name  string
	Match func(include string) bool
	Apply func(ctx context.Context, e *Env, include string) []string
}

// Table holds every rule in the order they are applied
var Table = []Rule{
	{Name: "SFML", Match: matchSFML, Apply: applySFML},
	{Name: "OpenGL", Match: matchOpenGL, Apply: applyOpenGL},
	{Name: "OpenAL", Match: matchOpenAL, Apply: applyOpenAL},
	{Name: "SDL2", Match: matchSDL2, Apply: applySDL2},
	{Name: "GLUT", Match: matchGLUT, Apply: applyGLUT},
	{Name: "GLEW", Match: matchGLEW, Apply: applyGLEW},
	{Name: "Qt", Match: matchQt, Apply: applyQt},
	{Name: "glm", Match: matchGLM, Apply: applyGLM},
}

// Matching returns the names of the rules that apply to include
func Matching(include string) []string {
	var names []string
	for _, r := range Table {
		if r.Match(include) {
			names = append(names, r.Name)
		}
	}
	return names
}

// Apply runs every matching rule and returns their flags joined by spaces.
// Rules only add flags; duplicates are left to the classifier.
func Apply(ctx context.Context, e *Env, include string) string {
	var out []string
	for _, r := range Table {
		if !r.Match(include) {
			continue
		}
		got := r.Apply(ctx, e, include)
		e.logger().Debug("rule", "name", r.Name, "include", include, "flags", got)
		out = append(out, got...)
	}
	return strings.Join(out, " ")
}

func (e *Env) logger() *log.Logger {
	if e.Logger == nil {
		return log.Default()
	}
	return e.Logger
}

func (e *Env) cross() bool {
	return e.Platform != nil && e.Platform.CrossWindows
}

// frameworks reports whether dir exists and native frameworks can be used
func (e *Env) frameworks(dir string) bool {
	return !e.cross() && platform.IsDir(dir)
}

// includeUnlessBuiltin returns -I<dir> unless the compiler searches dir already
func (e *Env) includeUnlessBuiltin(dir string) []string {
	if e.Platform != nil && e.Platform.HasCompilerInclude(dir) {
		return nil
	}
	return []string{"-I" + dir}
}

// pkgConfig returns the flags for the modules, or nil when pkg-config
// is missing or knows nothing about them
func (e *Env) pkgConfig(ctx context.Context, names ...string) []string {
	if e.PkgConfig == nil || !e.PkgConfig.Available() {
		return nil
	}
	out, err := e.PkgConfig.Flags(ctx, names...)
	if err != nil {
		return nil
	}
	return []string{out}
}

// probe returns -l<name> when lib<name>.so is in one of dirs.
// Nothing is probed when cross compiling.
func (e *Env) probe(name string, dirs []string) []string {
	if e.cross() {
		return nil
	}
	if lib := env.FindSharedLibrary(dirs, name); lib != nil {
		return []string{lib.Flag()}
	}
	return nil
}

func (e *Env) libDirs() []string {
	return e.Layout.LibDirsFor("generic")
}

// mentions reports whether any source line contains s
func (e *Env) mentions(s string) bool {
	for _, line := range e.Lines {
		if strings.Contains(line, s) {
			return true
		}
	}
	return false
}

func framework(dir, name string) string {
	return "-F" + dir + " -framework " + name
}

func matchSFML(include string) bool {
	first, _, _ := strings.Cut(include, "/")
	return strings.ToLower(strings.TrimSpace(first)) == "sfml"
}

func applySFML(ctx context.Context, e *Env, include string) []string {
	var out []string
	fw := e.Layout.FrameworkDir
	switch {
	case e.frameworks(fw):
		out = append(out, e.includeUnlessBuiltin(e.Layout.LocalInclude)...)
		out = append(out, framework(fw, "OpenGL"))
		if e.Platform != nil && e.Platform.Clang {
			out = append(out, "-stdlib=libc++")
		} else if e.Platform != nil && strings.HasPrefix(filepath.Base(e.Platform.Compiler), "g") {
			e.logger().Warn("Compiling an application that uses SFML may require clang. Try: --clang")
		}
	case e.cross():
		out = append(out, "-lopengl32")
	}
	return append(out, e.pkgConfig(ctx, "gl")...)
}

func matchOpenGL(include string) bool {
	return strings.Contains(strings.ToLower(include), "opengl") ||
		strings.HasPrefix(include, "GL/") ||
		strings.HasPrefix(include, "GLUT/")
}

func applyOpenGL(ctx context.Context, e *Env, include string) []string {
	glu := e.mentions("glu")
	var out []string
	fw := e.Layout.FrameworkDir
	switch {
	case e.frameworks(fw):
		out = append(out, e.includeUnlessBuiltin(e.Layout.LocalInclude)...)
		out = append(out, framework(fw, "OpenGL"))
		if glu {
			out = append(out, "-framework GLUT")
		}
	case e.cross():
		out = append(out, "-lopengl32")
		if glu {
			out = append(out, "-lglu32")
		}
	}

	modules := []string{"gl"}
	if glu {
		modules = append(modules, "glu")
	}
	out = append(out, e.pkgConfig(ctx, modules...)...)

	if gl := e.probe("GL", e.libDirs()); gl != nil {
		out = append(out, gl...)
		if glu {
			out = append(out, "-lGLU")
		}
	}
	return out
}

func matchOpenAL(include string) bool {
	return strings.HasPrefix(include, "AL/") ||
		strings.HasPrefix(include, "OpenAL") ||
		strings.Contains(include, "/al.h")
}

func applyOpenAL(ctx context.Context, e *Env, include string) []string {
	var out []string
	fw := e.Layout.SystemFrameworkDir
	switch {
	case e.frameworks(fw):
		out = append(out, e.includeUnlessBuiltin(filepath.Join(fw, "OpenAL.framework", "Headers"))...)
		out = append(out, framework(fw, "OpenAL"))
	case e.cross():
		out = append(out, "-lopenal32")
	}
	out = append(out, e.pkgConfig(ctx, "openal")...)
	return append(out, e.probe("openal", e.libDirs())...)
}

const sdl2Prefix = "SDL2/SDL_"

func matchSDL2(include string) bool {
	return strings.HasPrefix(include, sdl2Prefix)
}

// applySDL2 maps SDL2/SDL_mixer.h to the SDL2_mixer library
func applySDL2(ctx context.Context, e *Env, include string) []string {
	component, _, _ := strings.Cut(strings.TrimPrefix(include, sdl2Prefix), ".")
	name := "SDL2_" + component
	out := e.pkgConfig(ctx, name)
	return append(out, e.probe(name, e.libDirs())...)
}

func matchGLUT(include string) bool {
	return strings.HasPrefix(include, "GLUT/") || strings.HasSuffix(include, "/glut.h")
}

func applyGLUT(ctx context.Context, e *Env, include string) []string {
	var out []string
	fw := e.Layout.FrameworkDir
	switch {
	case e.frameworks(fw):
		out = append(out, e.includeUnlessBuiltin(e.Layout.LocalInclude)...)
		out = append(out, framework(fw, "GLUT"))
		if !e.Strict {
			out = append(out, "-Wno-deprecated-declarations")
		}
	case e.cross():
		out = append(out, "-lglu32")
	default:
		out = append(out, e.probe("glut", e.glutDirs(ctx))...)
	}

	for _, modules := range [][]string{{"glu"}, {"freeglut", "glut"}, {"freeglut"}} {
		if found := e.pkgConfig(ctx, modules...); found != nil {
			out = append(out, found...)
			break
		}
	}
	return out
}

// glutDirs are the generic library dirs plus the X11R7 and multiarch dirs
func (e *Env) glutDirs(ctx context.Context) []string {
	dirs := append(e.libDirs(), e.Layout.GLUTLibDirs...)
	if e.Machine != nil {
		if dir := e.Layout.MultiarchDir(e.Machine.Triple(ctx)); dir != "" {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}

func matchGLEW(include string) bool {
	return strings.HasSuffix(include, "/glew.h")
}

func applyGLEW(ctx context.Context, e *Env, include string) []string {
	var out []string
	if e.cross() {
		out = append(out, "-lglew32")
	}
	return append(out, e.pkgConfig(ctx, "glew")...)
}

func matchQt(include string) bool {
	return strings.HasPrefix(include, "Q")
}

// applyQt silences warnings raised by the Qt headers themselves
// and adds <sysdir>/qt when it exists
func applyQt(ctx context.Context, e *Env, include string) []string {
	var out []string
	if e.Platform == nil {
		return nil
	}
	for _, dir := range e.Platform.SystemIncludeDirs {
		if !e.Strict {
			out = append(out, "-Wno-class-memaccess", "-Wno-pedantic")
		}
		if qtDir := filepath.Join(dir, "qt"); platform.IsDir(qtDir) {
			out = append(out, "-I"+qtDir)
		}
	}
	return out
}

func matchGLM(include string) bool {
	return strings.HasPrefix(include, "glm/")
}

func applyGLM(ctx context.Context, e *Env, include string) []string {
	if e.Strict {
		return nil
	}
	return []string{"-Wno-shadow"}
}
