// pkg/backend/detect.go
package backend

import (
	"fmt"

	"github.com/arc-language/depflags/pkg/brew"
	"github.com/arc-language/depflags/pkg/bsdpkg"
	"github.com/arc-language/depflags/pkg/dpkg"
	"github.com/arc-language/depflags/pkg/pacman"
	"github.com/arc-language/depflags/pkg/platform"
)

// New creates the backend of the given type. BackendAuto and "" probe the host.
func New(backendType BackendType, config *Config) (Backend, error) {
	config = config.withDefaults()

	switch backendType {
	case BackendDpkg:
		return NewDpkgBackend(config), nil
	case BackendPacman:
		return NewPacmanBackend(config), nil
	case BackendFreeBSD:
		return NewFreeBSDBackend(config), nil
	case BackendOpenBSD:
		return NewOpenBSDBackend(config), nil
	case BackendBrew:
		return NewBrewBackend(config), nil
	case BackendGeneric:
		return NewGenericBackend(config), nil
	case BackendAuto, "":
		return Detect(config), nil
	default:
		return nil, fmt.Errorf("unsupported backend type: %s", backendType)
	}
}

// Detect picks the backend for the host by probing tools in priority
// order: dpkg (without pacman), pacman, FreeBSD pkg, OpenBSD pkg_info,
// brew, and finally the generic fallback.
func Detect(config *Config) Backend {
	config = config.withDefaults()
	has := func(tool string) bool {
		return platform.CommandExists(config.Runner, tool)
	}

	var b Backend
	switch {
	case has(dpkg.QueryBinary) && !has(pacman.Binary):
		b = NewDpkgBackend(config)
	case has(pacman.Binary):
		b = NewPacmanBackend(config)
	case has(bsdpkg.FreeBSDBinary):
		b = NewFreeBSDBackend(config)
	case has(bsdpkg.OpenBSDInfoBinary):
		b = NewOpenBSDBackend(config)
	case has(brew.Binary):
		b = NewBrewBackend(config)
	default:
		b = NewGenericBackend(config)
	}
	config.Logger.Debug("selected backend", "backend", b.Name())
	return b
}
