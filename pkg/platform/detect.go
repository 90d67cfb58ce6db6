package platform

import (
	"context"
	"fmt"
	"runtime"
	"strings"
	"sync"
)

// Context is the platform information supplied by the build orchestrator.
// It is read-only for the duration of a resolution.
type Context struct {
	OS                  string   // linux, darwin, freebsd, openbsd, ...
	CrossWindows        bool     // Building Windows binaries from a non-Windows host
	SystemIncludeDirs   []string // Where system headers are searched
	CompilerIncludeDirs []string // Directories the compiler searches by itself
	Compiler            string   // Active compiler, e.g. g++ or clang++
	Clang               bool     // The active compiler is clang-like
}

// NewContext returns a Context for the host OS
func NewContext() *Context {
	return &Context{
		OS:                runtime.GOOS,
		SystemIncludeDirs: []string{"/usr/include", "/usr/local/include"},
	}
}

// IsDarwin reports whether the host is macOS
func (c *Context) IsDarwin() bool {
	return c.OS == "darwin"
}

// HasCompilerInclude reports whether dir is searched by the compiler already
func (c *Context) HasCompilerInclude(dir string) bool {
	return contains(c.CompilerIncludeDirs, dir)
}

// String returns a string representation of the context
func (c *Context) String() string {
	return fmt.Sprintf("%s (win64: %v, compiler: %s, system includes: %v)",
		c.OS, c.CrossWindows, c.Compiler, c.SystemIncludeDirs)
}

// compilerGuesses are tried in order when the configured compiler is not found
var compilerGuesses = []string{"g++", "gcc", "g++9", "g++-9", "g++8", "g++-8", "g++7", "g++-7", "eg++"}

// FindCompiler returns compiler if it is in PATH, otherwise the first
// available guess, or "" when there is none.
func FindCompiler(r Runner, compiler string) string {
	if compiler != "" && CommandExists(r, compiler) {
		return compiler
	}
	for _, guess := range compilerGuesses {
		if CommandExists(r, guess) {
			return guess
		}
	}
	return ""
}

// MachineTriple asks the compiler for its target triple, e.g. x86_64-linux-gnu
func MachineTriple(ctx context.Context, r Runner, compiler string) string {
	compiler = FindCompiler(r, compiler)
	if compiler == "" {
		return ""
	}
	out, err := OutputString(ctx, r, Command(compiler, "-dumpmachine"))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(out)
}

// Machine memoizes the compiler's target triple
type Machine struct {
	runner   Runner
	compiler string

	once   sync.Once
	triple string
}

// NewMachine creates a Machine that asks compiler, or a guessed compiler
func NewMachine(r Runner, compiler string) *Machine {
	return &Machine{runner: r, compiler: compiler}
}

// Triple runs `<compiler> -dumpmachine` on first use only
func (m *Machine) Triple(ctx context.Context) string {
	m.once.Do(func() {
		m.triple = MachineTriple(ctx, m.runner, m.compiler)
	})
	return m.triple
}
