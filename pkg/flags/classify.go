// pkg/flags/classify.go
package flags

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/arc-language/depflags/pkg/core"
)

const frameworkFlag = "-framework"

// Classifier sorts raw flag strings into the buckets of a FlagSet
type Classifier struct {
	// DLLDir is searched for *.dll files when translating frameworks
	// for a Windows cross build. Empty means the working directory.
	DLLDir string

	Logger *log.Logger
}

// Split classifies raw into a new FlagSet with a default Classifier
func Split(raw string, cross bool) *FlagSet {
	fs := NewFlagSet()
	(&Classifier{}).Classify(fs, raw, cross)
	return fs
}

// Classify appends every recognized token of raw to fs.
// Unsupported tokens are logged and dropped.
func (c *Classifier) Classify(fs *FlagSet, raw string, cross bool) {
	sawFramework := false
	for _, tok := range tokenize(raw) {
		switch {
		case strings.HasPrefix(tok, "-I"):
			fs.Includes.Add(tok[2:])
		case strings.HasPrefix(tok, "-D"):
			fs.Defines.Add(tok[2:])
		case strings.HasPrefix(tok, "-l"):
			fs.Libs.Add(tok[2:])
		case strings.HasPrefix(tok, "-L"):
			fs.LibPaths.Add(tok)
		case strings.HasPrefix(tok, "-Wl,"):
			if cross && strings.Contains(tok, frameworkFlag) {
				continue
			}
			fs.LinkFlags.Add(tok)
		case strings.HasPrefix(tok, "-p"):
			fs.Other.Add(tok)
		case tok == frameworkFlag:
			// -framework without a name
			c.logger().Warn(unsupported(tok))
		case strings.HasPrefix(strings.ToLower(tok), "-f"):
			if strings.HasPrefix(tok, frameworkFlag+" ") {
				sawFramework = true
				name := strings.TrimPrefix(tok, frameworkFlag+" ")
				c.addFramework(fs, name, cross)
				continue
			}
			if cross && strings.HasPrefix(tok, "-F") {
				continue
			}
			fs.LinkFlags.Add(tok)
		case strings.HasPrefix(tok, "-stdlib"):
			fs.LinkFlags.Add(tok)
			fs.Other.Add(tok)
		case sawFramework && !strings.HasPrefix(tok, "-") && !strings.Contains(tok, "."):
			// pkg-config output for Qt lists several frameworks after one -framework
			c.addFramework(fs, tok, cross)
		case strings.HasPrefix(tok, "-W"):
			fs.Other.Add(tok)
		default:
			c.logger().Warn(unsupported(tok))
		}
	}
}

func unsupported(tok string) error {
	return &core.Error{
		Op:   "classify",
		Path: tok,
		Msg:  "Unsupported flag for configuring packages: " + tok,
		Err:  core.ErrUnsupportedFlag,
	}
}

// addFramework adds "-framework name", or its import library when cross compiling
func (c *Classifier) addFramework(fs *FlagSet, name string, cross bool) {
	if !cross {
		fs.LinkFlags.Add(frameworkFlag + " " + name)
		return
	}
	lib := "-l" + c.importLibrary(name)
	if lib != "-lFrameworks" {
		fs.LinkFlags.Add(lib)
	}
	fs.LinkFlags.Add("-L.")
}

// importLibrary finds the DLL matching a framework name, ignoring case.
// A numeric suffix is accepted, so OpenAL matches OpenAL32.dll.
func (c *Classifier) importLibrary(name string) string {
	dir := c.DLLDir
	if dir == "" {
		dir = "."
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return name
	}
	var bases []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".dll") {
			continue
		}
		bases = append(bases, strings.TrimSuffix(e.Name(), filepath.Ext(e.Name())))
	}
	for _, base := range bases {
		if strings.EqualFold(base, name) {
			return base
		}
	}
	for _, base := range bases {
		if len(base) > len(name) && strings.EqualFold(base[:len(name)], name) && isDigits(base[len(name):]) {
			return base
		}
	}
	return name
}

func (c *Classifier) logger() *log.Logger {
	if c.Logger == nil {
		return log.Default()
	}
	return c.Logger
}

// tokenize splits raw on whitespace and joins "-framework" with its argument.
// A following flag is not an argument, so "-framework" stays alone.
func tokenize(raw string) []string {
	fields := strings.Fields(raw)
	tokens := make([]string, 0, len(fields))
	for i := 0; i < len(fields); i++ {
		if fields[i] == frameworkFlag && i+1 < len(fields) && !strings.HasPrefix(fields[i+1], "-") {
			tokens = append(tokens, frameworkFlag+" "+fields[i+1])
			i++
			continue
		}
		tokens = append(tokens, fields[i])
	}
	return tokens
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
