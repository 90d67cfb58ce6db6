// Package platformtest provides a scripted platform.Runner for tests.
package platformtest

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"sync"

	"github.com/arc-language/depflags/pkg/platform"
)

// ErrNoScript is returned for commands that have no scripted output
var ErrNoScript = errors.New("exit status 1")

// FakeRunner returns scripted outputs keyed by Cmd.Key and records every call.
type FakeRunner struct {
	mu sync.Mutex

	// Outputs maps a command line (name and args) to its stdout.
	Outputs map[string]string
	// Errors maps a command line to the error it returns.
	Errors map[string]error
	// Paths are the executables visible to LookPath, name -> path.
	Paths map[string]string
	// Handler, when set, is consulted before Outputs.
	// It returns ok=false to fall through.
	Handler func(cmd platform.Cmd) (out []byte, err error, ok bool)

	calls []platform.Cmd
}

// New returns a FakeRunner where tools are available at /usr/bin/<tool>
func New(tools ...string) *FakeRunner {
	f := &FakeRunner{
		Outputs: make(map[string]string),
		Errors:  make(map[string]error),
		Paths:   make(map[string]string),
	}
	for _, tool := range tools {
		f.Paths[tool] = "/usr/bin/" + tool
	}
	return f
}

// On scripts stdout for the command line key
func (f *FakeRunner) On(key, stdout string) *FakeRunner {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Outputs[key] = stdout
	return f
}

// Fail scripts an error for the command line key
func (f *FakeRunner) Fail(key string, err error) *FakeRunner {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Errors[key] = err
	return f
}

// Output implements platform.Runner
func (f *FakeRunner) Output(ctx context.Context, cmd platform.Cmd) ([]byte, error) {
	f.mu.Lock()
	f.calls = append(f.calls, cmd)
	handler := f.Handler
	out, hasOut := f.Outputs[cmd.Key()]
	err := f.Errors[cmd.Key()]
	f.mu.Unlock()

	if handler != nil {
		if b, herr, ok := handler(cmd); ok {
			return b, herr
		}
	}
	if err != nil {
		return []byte(out), fmt.Errorf("running %s: %w", cmd.Key(), err)
	}
	if !hasOut {
		return nil, fmt.Errorf("running %s: %w", cmd.Key(), ErrNoScript)
	}
	return []byte(out), nil
}

// LookPath implements platform.Runner
func (f *FakeRunner) LookPath(file string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p, ok := f.Paths[file]; ok {
		return p, nil
	}
	return "", &exec.Error{Name: file, Err: exec.ErrNotFound}
}

// Calls returns the command lines run so far, in order
func (f *FakeRunner) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	keys := make([]string, 0, len(f.calls))
	for _, c := range f.calls {
		keys = append(keys, c.Key())
	}
	return keys
}

// Count returns how many times the command line key was run
func (f *FakeRunner) Count(key string) int {
	n := 0
	for _, c := range f.Calls() {
		if c == key {
			n++
		}
	}
	return n
}

// LastCmd returns the most recent Cmd with the given name
func (f *FakeRunner) LastCmd(name string) (platform.Cmd, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := len(f.calls) - 1; i >= 0; i-- {
		if f.calls[i].Name == name {
			return f.calls[i], true
		}
	}
	return platform.Cmd{}, false
}

// Echo returns a Handler that answers every run of name with its stdin,
// like a preprocessor with no conditionals to evaluate
func Echo(name string) func(cmd platform.Cmd) ([]byte, error, bool) {
	return func(cmd platform.Cmd) ([]byte, error, bool) {
		if cmd.Name != name {
			return nil, nil, false
		}
		return append([]byte(nil), cmd.Stdin...), nil, true
	}
}
