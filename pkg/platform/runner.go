package platform

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/charmbracelet/log"
)

// Cmd describes one external process invocation
type Cmd struct {
	Name  string   // Executable name or absolute path
	Args  []string // Arguments
	Env   []string // Extra KEY=VALUE entries added to the environment
	Stdin []byte   // Optional standard input
}

// Command creates a Cmd for name and args
func Command(name string, args ...string) Cmd {
	return Cmd{Name: name, Args: args}
}

// Key returns the command line without environment, used for matching
func (c Cmd) Key() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// String returns the command line the way an operator would type it
func (c Cmd) String() string {
	if len(c.Env) == 0 {
		return c.Key()
	}
	return strings.Join(c.Env, " ") + " " + c.Key()
}

// Runner runs external processes and locates tools in PATH
type Runner interface {
	// Output runs cmd and returns its standard output.
	// Standard output is returned even when the process fails.
	Output(ctx context.Context, cmd Cmd) ([]byte, error)

	// LookPath searches for an executable, like exec.LookPath
	LookPath(file string) (string, error)
}

// ExecRunner runs commands with os/exec under the C locale
type ExecRunner struct {
	Logger *log.Logger
}

// Output runs the command with LC_ALL=C and stderr discarded
func (r ExecRunner) Output(ctx context.Context, cmd Cmd) ([]byte, error) {
	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	c.Env = append(os.Environ(), "LC_ALL=C")
	c.Env = append(c.Env, cmd.Env...)
	if cmd.Stdin != nil {
		c.Stdin = bytes.NewReader(cmd.Stdin)
	}
	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr
	err := c.Run()
	if r.Logger != nil {
		r.Logger.Debug("exec", "cmd", cmd.String(), "stdout", stdout.Len(), "err", err)
	}
	if err != nil {
		return stdout.Bytes(), fmt.Errorf("running %s: %w", cmd.Key(), err)
	}
	return stdout.Bytes(), nil
}

// LookPath searches PATH for file
func (ExecRunner) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// OutputString runs cmd and returns its trimmed standard output
func OutputString(ctx context.Context, r Runner, cmd Cmd) (string, error) {
	out, err := r.Output(ctx, cmd)
	return strings.TrimSpace(string(out)), err
}

// Lines splits command output into non-empty trimmed lines
func Lines(out []byte) []string {
	var lines []string
	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
