// Package pccache memoizes the metadata (.pc) files of installed packages.
package pccache

import (
	"context"
	"sync"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/singleflight"
)

// FetchFunc lists the metadata files of one package
type FetchFunc func(ctx context.Context, pkg string) ([]string, error)

// Cache maps a package name to its metadata file paths.
// Entries are never invalidated; a failed fetch is stored as an empty list.
type Cache struct {
	mu     sync.Mutex
	s      singleflight.Group
	m      map[string][]string
	logger *log.Logger
}

// New creates an empty Cache
func New(logger *log.Logger) *Cache {
	if logger == nil {
		logger = log.Default()
	}
	return &Cache{
		m:      make(map[string][]string),
		logger: logger,
	}
}

// GetOrFetch returns the cached files for pkg, calling fetch on first use.
// Concurrent callers for the same package share one fetch.
func (c *Cache) GetOrFetch(ctx context.Context, pkg string, fetch FetchFunc) ([]string, error) {
	c.mu.Lock()
	files, ok := c.m[pkg]
	c.mu.Unlock()
	if ok {
		c.logger.Debug("pccache hit", "pkg", pkg, "files", len(files))
		return files, nil
	}
	v, err, _ := c.s.Do(pkg, func() (any, error) {
		c.mu.Lock()
		files, ok := c.m[pkg]
		c.mu.Unlock()
		if ok {
			return files, nil
		}
		files, err := fetch(ctx, pkg)
		if err != nil {
			files = nil
		}
		c.logger.Debug("pccache set", "pkg", pkg, "files", len(files), "err", err)
		c.mu.Lock()
		c.m[pkg] = files
		c.mu.Unlock()
		return files, err
	})
	files, _ = v.([]string)
	return files, err
}

// Len returns the number of cached packages
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.m)
}
