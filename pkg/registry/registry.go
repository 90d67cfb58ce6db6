// pkg/registry/registry.go
package registry

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// ErrNotSynced is returned when the deps directory has not been fetched yet
var ErrNotSynced = errors.New("registry: deps not found, run sync first")

// Entry represents a single deps/<name>/index.toml file
type Entry struct {
	Name     string            `toml:"name"`
	Headers  []string          `toml:"headers"`
	Libs     []string          `toml:"libs"`
	Backends map[string]string `toml:"backends"`
}

// Provides reports whether the entry ships include, either listed in
// headers or by name: SDL2/SDL_mixer.h is provided by "sdl2".
func (e *Entry) Provides(include string) bool {
	for _, h := range e.Headers {
		if h == include {
			return true
		}
	}
	first, _, _ := strings.Cut(include, "/")
	first = strings.TrimSuffix(first, filepath.Ext(first))
	return first != "" && strings.EqualFold(first, e.Name)
}

// Registry provides lookup into the cached deps/ folder
type Registry struct {
	depsDir string
	logger  *log.Logger

	once    sync.Once
	entries []*Entry
	listErr error
}

// New creates a Registry pointed at the cached deps directory
func New(cacheDir string, logger *log.Logger) *Registry {
	if logger == nil {
		logger = log.Default()
	}
	return &Registry{
		depsDir: filepath.Join(cacheDir, "deps"),
		logger:  logger,
	}
}

// Dir returns the deps directory
func (r *Registry) Dir() string {
	return r.depsDir
}

// Load reads and parses deps/<name>/index.toml.
func (r *Registry) Load(name string) (*Entry, error) {
	if _, err := os.Stat(r.depsDir); os.IsNotExist(err) {
		return nil, ErrNotSynced
	}

	path := filepath.Join(r.depsDir, name, "index.toml")

	data, err := os.ReadFile(path)
	if err != nil {
		// Check if the directory exists, to give a better error message.
		dirPath := filepath.Dir(path)
		if _, statErr := os.Stat(dirPath); statErr == nil {
			return nil, fmt.Errorf("registry: found package '%s' directory, but missing index.toml", name)
		}
		return nil, fmt.Errorf("registry: package '%s' not found", name)
	}

	var entry Entry
	if _, err := toml.Decode(string(data), &entry); err != nil {
		return nil, fmt.Errorf("registry: failed to parse '%s': %w", name, err)
	}
	if entry.Name == "" {
		entry.Name = name
	}

	return &entry, nil
}

// List loads every entry once, sorted by name. Broken entries are skipped.
func (r *Registry) List() ([]*Entry, error) {
	r.once.Do(func() {
		dirs, err := os.ReadDir(r.depsDir)
		if err != nil {
			if os.IsNotExist(err) {
				r.listErr = ErrNotSynced
			} else {
				r.listErr = fmt.Errorf("registry: reading deps: %w", err)
			}
			return
		}
		for _, d := range dirs {
			if !d.IsDir() {
				continue
			}
			entry, err := r.Load(d.Name())
			if err != nil {
				r.logger.Debug("skipping registry entry", "name", d.Name(), "err", err)
				continue
			}
			r.entries = append(r.entries, entry)
		}
		sort.Slice(r.entries, func(i, j int) bool {
			return r.entries[i].Name < r.entries[j].Name
		})
	})
	return r.entries, r.listErr
}

// FindByHeader returns the first entry providing include, or nil
func (r *Registry) FindByHeader(include string) (*Entry, error) {
	entries, err := r.List()
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		if e.Provides(include) {
			return e, nil
		}
	}
	return nil, nil
}

// Recommend returns the backend package that provides include, or ""
func (r *Registry) Recommend(include, backend string) string {
	entry, err := r.FindByHeader(include)
	if err != nil || entry == nil {
		if err != nil && !errors.Is(err, ErrNotSynced) {
			r.logger.Debug("registry lookup failed", "include", include, "err", err)
		}
		return ""
	}
	return entry.Backends[backend]
}
