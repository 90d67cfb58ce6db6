// constants.go
package brew

const (
	// Binary is the Homebrew command
	Binary = "brew"

	// InstallCommand installs a formula by name
	InstallCommand = "brew install"

	// DefaultInstallPathIntel is the default Homebrew install path for Intel Macs
	DefaultInstallPathIntel = "/usr/local"

	// DefaultInstallPathARM is the default Homebrew install path for ARM Macs
	DefaultInstallPathARM = "/opt/homebrew"

	// DefaultCellar is the Cellar subdirectory name
	DefaultCellar = "Cellar"
)
