package core

import (
	"errors"
	"fmt"
)

var (
	// ErrUnresolvedInclude indicates no backend or rule produced flags for an include
	ErrUnresolvedInclude = errors.New("missing include")

	// ErrUnownedPath indicates an existing header is not owned by any installed package
	ErrUnownedPath = errors.New("no package owns")

	// ErrMissingTool indicates a required discovery tool is not in PATH
	ErrMissingTool = errors.New("missing in PATH")

	// ErrToolInvocation indicates an external process failed or returned nothing usable
	ErrToolInvocation = errors.New("command failed")

	// ErrUnsupportedFlag indicates a flag token matched no classification rule
	ErrUnsupportedFlag = errors.New("unsupported flag")
)

// Error wraps an error with additional context
type Error struct {
	Op      string // Operation that failed
	Include string // Include target if applicable
	Path    string // Header path or tool name if applicable
	Package string // Package name if applicable
	Msg     string // Operator-facing message, overrides the default format
	Err     error  // Underlying error
}

func (e *Error) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	switch {
	case e.Path != "":
		return fmt.Sprintf("%v: %s", e.Err, e.Path)
	case e.Include != "":
		return fmt.Sprintf("%v: %s", e.Err, e.Include)
	case e.Package != "":
		return fmt.Sprintf("%s %s: %v", e.Op, e.Package, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsFatal reports whether err must stop the run.
func IsFatal(err error) bool {
	return errors.Is(err, ErrUnresolvedInclude) ||
		errors.Is(err, ErrUnownedPath) ||
		errors.Is(err, ErrMissingTool)
}
