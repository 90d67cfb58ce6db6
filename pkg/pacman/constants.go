package pacman

const (
	// Binary queries the local package database
	Binary = "pacman"

	// PkgfileBinary searches the file lists of repository packages
	PkgfileBinary = "pkgfile"

	// InstallCommand installs a package by name
	InstallCommand = "pacman -S"

	// PkgfileInstallHint is shown when pkgfile is missing
	PkgfileInstallHint = "pacman -S pkgfile"
)

// Repository names, stripped from pkgfile output
const (
	RepoCore     = "core"     // Critical system packages
	RepoExtra    = "extra"    // General application packages
	RepoMultilib = "multilib" // 32-bit compatibility libraries
)
