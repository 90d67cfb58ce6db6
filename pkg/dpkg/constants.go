// pkg/dpkg/constants.go
package dpkg

const (
	// QueryBinary answers ownership and file-list questions about installed packages
	QueryBinary = "dpkg-query"

	// AptFileBinary searches the contents of packages that are not installed
	AptFileBinary = "apt-file"

	// InstallCommand installs a package by name
	InstallCommand = "apt install"

	// AptFileInstallHint is shown when apt-file is missing
	AptFileInstallHint = "apt install apt-file"
)

// contentsGlob matches Contents indexes under the apt lists directory
const contentsGlob = "*Contents-*"
