// pkg/env/doc.go
package env

/*
Package env describes the host filesystem layout that dependency
resolution probes, and finds shared libraries inside it.

It knows:
  - Which library directories each package manager installs into
  - Where macOS frameworks, Homebrew cellars and apt lists live
  - Which extra include roots are searched before asking a backend

Basic Usage:

	layout := env.DefaultLayout()

	dirs := layout.LibDirsFor("dpkg")
	if lib := env.FindSharedLibrary(dirs, "glut"); lib != nil {
		fmt.Printf("Found: %s at %s\n", lib.Name, lib.Path) // -lglut
	}

Tests build a Layout rooted in a temporary directory so library and
header probing never touches the real /usr.
*/
