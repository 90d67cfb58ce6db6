// Package include finds the headers a source file includes on its taken
// preprocessor branches.
package include

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/arc-language/depflags/pkg/platform"
)

// marker hides #include from the preprocessor
const marker = "@@@@@include"

// DefaultLocalPaths are the project include roots, relative to the source
// file directory, in search order.
var DefaultLocalPaths = []string{
	".", "include", "Include", "..", "../include", "../Include",
	"common", "Common", "../common", "../Common",
}

// threadHeaders need -pthread -lpthread
var threadHeaders = newNameSet("condition_variable", "future", "mutex", "new", "pthread.h", "thread")

// Result is what Extract found in a source file
type Result struct {
	// Includes are unique include targets in first-seen order
	Includes []string
	// Lines are the preprocessed source lines
	Lines []string
}

// Extractor runs the preprocessor over a source file and filters includes
type Extractor struct {
	runner     platform.Runner
	logger     *log.Logger
	localPaths []string
}

// NewExtractor creates an Extractor. With no localPaths, DefaultLocalPaths is used.
func NewExtractor(runner platform.Runner, logger *log.Logger, localPaths []string) *Extractor {
	if logger == nil {
		logger = log.Default()
	}
	if len(localPaths) == 0 {
		localPaths = DefaultLocalPaths
	}
	return &Extractor{runner: runner, logger: logger, localPaths: localPaths}
}

// Extract preprocesses source and returns its includes and lines.
// When the preprocessor cannot run, a warning is logged and the result is empty.
func (e *Extractor) Extract(ctx context.Context, source string) (*Result, error) {
	data, err := os.ReadFile(source)
	if err != nil {
		return nil, fmt.Errorf("reading source: %w", err)
	}

	cmd := platform.Command("cpp", "-E", "-P", "-w", "-pipe")
	cmd.Stdin = hideIncludes(data)
	out, err := e.runner.Output(ctx, cmd)
	if err != nil {
		e.logger.Warn("Command failed: "+cmd.String(), "err", err)
		return &Result{}, nil
	}

	lines := restoreIncludes(out)
	return &Result{
		Includes: ParseIncludes(lines),
		Lines:    lines,
	}, nil
}

func hideIncludes(src []byte) []byte {
	lines := bytes.Split(src, []byte("\n"))
	for i, line := range lines {
		if bytes.HasPrefix(line, []byte("#include")) {
			lines[i] = append([]byte(marker), line[len("#include"):]...)
		}
	}
	return bytes.Join(lines, []byte("\n"))
}

func restoreIncludes(out []byte) []string {
	text := strings.TrimSuffix(string(out), "\n")
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if strings.HasPrefix(line, marker) {
			lines[i] = "#include" + line[len(marker):]
		}
	}
	return lines
}

// ParseIncludes returns the unique include targets found in lines.
// Lines with more than one <...> pair or more than two quotes are ignored.
func ParseIncludes(lines []string) []string {
	var includes []string
	seen := make(map[string]bool)
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "#include") {
			continue
		}
		target, ok := parseTarget(line)
		if !ok || target == "" || seen[target] {
			continue
		}
		seen[target] = true
		includes = append(includes, target)
	}
	return includes
}

func parseTarget(line string) (string, bool) {
	if strings.Count(line, "<") == 1 && strings.Count(line, ">") == 1 {
		start := strings.Index(line, "<")
		end := strings.Index(line, ">")
		if end < start {
			return "", false
		}
		return line[start+1 : end], true
	}
	if strings.Count(line, `"`) == 2 {
		parts := strings.Split(line, `"`)
		return parts[1], true
	}
	return "", false
}

// Filter drops standard headers, headers found under the local include
// roots of source, and Windows SDK headers when cross compiling.
func (e *Extractor) Filter(source string, includes []string, cross bool) []string {
	base := filepath.Dir(source)
	var filtered []string
	for _, inc := range includes {
		if IsStandard(inc) {
			continue
		}
		if cross && IsWindowsSDK(inc) {
			continue
		}
		if e.isLocal(base, inc) {
			e.logger.Debug("local include", "include", inc)
			continue
		}
		filtered = append(filtered, inc)
	}
	return filtered
}

func (e *Extractor) isLocal(base, inc string) bool {
	for _, p := range e.localPaths {
		dir := p
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(base, p)
		}
		if platform.Exists(filepath.Join(dir, inc)) {
			return true
		}
	}
	return false
}

// IsStandard reports whether name is a standard library header
func IsStandard(name string) bool {
	return standardHeaders.has(strings.TrimSpace(name))
}

// IsWindowsSDK reports whether name is provided by the MinGW toolchain
func IsWindowsSDK(name string) bool {
	return windowsSDKHeaders.has(strings.TrimSpace(name))
}

// IsThreadHeader reports whether name needs the pthread flags
func IsThreadHeader(name string) bool {
	return threadHeaders.has(strings.TrimSpace(name))
}

type nameSet map[string]struct{}

func newNameSet(names ...string) nameSet {
	s := make(nameSet, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

func (s nameSet) has(name string) bool {
	_, ok := s[name]
	return ok
}
