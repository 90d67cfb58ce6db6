// pkg/pkgconfig/client.go
package pkgconfig

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/arc-language/depflags/pkg/core"
	"github.com/arc-language/depflags/pkg/platform"
)

// Binary is the metadata tool name looked up in PATH
const Binary = "pkg-config"

// Client queries pkg-config for compile and link flags
type Client struct {
	runner platform.Runner
	logger *log.Logger
}

// New creates a pkg-config client
func New(runner platform.Runner, logger *log.Logger) *Client {
	if logger == nil {
		logger = log.Default()
	}
	return &Client{runner: runner, logger: logger}
}

// Available reports whether pkg-config is in PATH
func (c *Client) Available() bool {
	return platform.CommandExists(c.runner, Binary)
}

// Command returns `pkg-config --cflags --libs <names>`.
// When pcDir is set, PKG_CONFIG_PATH points at it.
func Command(pcDir string, names ...string) platform.Cmd {
	cmd := platform.Command(Binary, append([]string{"--cflags", "--libs"}, names...)...)
	if pcDir != "" {
		cmd.Env = []string{"PKG_CONFIG_PATH=" + pcDir}
	}
	return cmd
}

// Flags returns the flags for the named modules
func (c *Client) Flags(ctx context.Context, names ...string) (string, error) {
	return c.run(ctx, Command("", names...))
}

// FlagsIn returns the flags for the named modules, searching pcDir first
func (c *Client) FlagsIn(ctx context.Context, pcDir string, names ...string) (string, error) {
	return c.run(ctx, Command(pcDir, names...))
}

func (c *Client) run(ctx context.Context, cmd platform.Cmd) (string, error) {
	out, err := platform.OutputString(ctx, c.runner, cmd)
	if err != nil || out == "" {
		c.logger.Debug("pkg-config gave nothing", "cmd", cmd.String(), "err", err)
		return "", &QueryError{Cmd: cmd, Err: err}
	}
	return out, nil
}

// QueryError reports a pkg-config run that produced no flags
type QueryError struct {
	Cmd platform.Cmd
	Err error // Process error, nil when the output was just empty
}

func (e *QueryError) Error() string {
	return "this command failed to run:\n" + e.Cmd.String()
}

// Unwrap lets errors.Is match core.ErrToolInvocation
func (e *QueryError) Unwrap() []error {
	if e.Err == nil {
		return []error{core.ErrToolInvocation}
	}
	return []error{core.ErrToolInvocation, e.Err}
}
