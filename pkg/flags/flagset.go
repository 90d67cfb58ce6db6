// pkg/flags/flagset.go
package flags

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// FlagSet holds classified compiler and linker flags.
// Includes, Defines and Libs store the token without its -I, -D or -l prefix.
type FlagSet struct {
	Includes  *Set `yaml:"includes"`
	Defines   *Set `yaml:"defines"`
	Libs      *Set `yaml:"libs"`
	LibPaths  *Set `yaml:"libpaths"`
	LinkFlags *Set `yaml:"linkflags"`
	Other     *Set `yaml:"other"`
}

// NewFlagSet returns an empty FlagSet
func NewFlagSet() *FlagSet {
	return &FlagSet{
		Includes:  NewSet(),
		Defines:   NewSet(),
		Libs:      NewSet(),
		LibPaths:  NewSet(),
		LinkFlags: NewSet(),
		Other:     NewSet(),
	}
}

// Empty reports whether no bucket holds a token
func (fs *FlagSet) Empty() bool {
	for _, b := range fs.buckets() {
		if b.set.Len() > 0 {
			return false
		}
	}
	return true
}

type bucket struct {
	name string
	set  *Set
}

func (fs *FlagSet) buckets() []bucket {
	return []bucket{
		{"includes", fs.Includes},
		{"defines", fs.Defines},
		{"libs", fs.Libs},
		{"libpaths", fs.LibPaths},
		{"linkflags", fs.LinkFlags},
		{"other", fs.Other},
	}
}

// Text renders one "name: tokens" line per bucket
func (fs *FlagSet) Text() string {
	var sb strings.Builder
	for _, b := range fs.buckets() {
		fmt.Fprintf(&sb, "%s: %s\n", b.name, b.set.String())
	}
	return sb.String()
}

// YAML renders the buckets as a YAML document
func (fs *FlagSet) YAML() (string, error) {
	data, err := yaml.Marshal(fs)
	if err != nil {
		return "", fmt.Errorf("marshaling flags: %w", err)
	}
	return string(data), nil
}

// CompilerArgs returns the flags as compiler command-line arguments
func (fs *FlagSet) CompilerArgs() []string {
	var args []string
	for _, inc := range fs.Includes.items {
		args = append(args, "-I"+inc)
	}
	for _, def := range fs.Defines.items {
		args = append(args, "-D"+def)
	}
	args = append(args, fs.Other.items...)
	return args
}

// LinkerArgs returns the flags as linker command-line arguments
func (fs *FlagSet) LinkerArgs() []string {
	args := append([]string(nil), fs.LibPaths.items...)
	for _, lib := range fs.Libs.items {
		args = append(args, "-l"+lib)
	}
	for _, lf := range fs.LinkFlags.items {
		// Multi-word flags such as "-framework OpenGL" become two arguments
		args = append(args, strings.Fields(lf)...)
	}
	return args
}
