// errors.go
package depflags

import (
	"github.com/arc-language/depflags/pkg/core"
)

var (
	// ErrUnresolvedInclude indicates no backend or rule produced flags for an include
	ErrUnresolvedInclude = core.ErrUnresolvedInclude

	// ErrUnownedPath indicates an existing header is not owned by any installed package
	ErrUnownedPath = core.ErrUnownedPath

	// ErrMissingTool indicates a required tool is not in PATH
	ErrMissingTool = core.ErrMissingTool

	// ErrToolInvocation indicates an external process failed
	ErrToolInvocation = core.ErrToolInvocation

	// ErrUnsupportedFlag indicates a flag token matched no classification rule
	ErrUnsupportedFlag = core.ErrUnsupportedFlag
)

// Error wraps an error with additional context
type Error = core.Error

// IsFatal reports whether err must stop the run
func IsFatal(err error) bool {
	return core.IsFatal(err)
}
