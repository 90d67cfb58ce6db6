// pkg/index/sync.go
package index

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// RepoBranch is the branch holding the recommendation registry
const RepoBranch = "main"

// ErrNoURL is returned by Sync when no registry repository is configured
var ErrNoURL = errors.New("no registry URL configured, set registry_url")

// Options configures a registry sync
type Options struct {
	// CacheDir receives deps/
	CacheDir string

	// URL of the registry repository, required
	URL string

	// Branch to clone, RepoBranch when empty
	Branch string

	// Progress receives git's progress output, may be nil
	Progress io.Writer

	Logger *log.Logger
}

// Sync shallow-clones the registry repository and replaces the cached deps/
func Sync(ctx context.Context, opts Options) error {
	if opts.URL == "" {
		return ErrNoURL
	}
	if opts.Branch == "" {
		opts.Branch = RepoBranch
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	tempDir, err := os.MkdirTemp("", "depflags-clone-*")
	if err != nil {
		return fmt.Errorf("creating temp dir: %w", err)
	}
	defer os.RemoveAll(tempDir)

	opts.Logger.Info("Updating recommendation registry", "url", opts.URL)

	_, err = git.PlainCloneContext(ctx, tempDir, false, &git.CloneOptions{
		URL:           opts.URL,
		ReferenceName: plumbing.NewBranchReferenceName(opts.Branch),
		SingleBranch:  true,
		Depth:         1,
		Progress:      opts.Progress,
	})
	if err != nil {
		return fmt.Errorf("git clone failed: %w", err)
	}

	return Install(filepath.Join(tempDir, "deps"), opts.CacheDir, opts.Logger)
}

// Install replaces <cacheDir>/deps with the contents of src
func Install(src, cacheDir string, logger *log.Logger) error {
	if _, err := os.Stat(src); err != nil {
		return fmt.Errorf("deps registry: %w", err)
	}
	dst := filepath.Join(cacheDir, "deps")
	if err := os.RemoveAll(dst); err != nil {
		return fmt.Errorf("removing old deps: %w", err)
	}
	if err := copyDir(src, dst); err != nil {
		return fmt.Errorf("deps registry: %w", err)
	}
	if logger != nil {
		logger.Info("Recommendation registry updated", "dir", dst)
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, in)
	return err
}

func copyDir(src, dst string) error {
	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dst, 0755); err != nil {
		return err
	}

	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		if entry.IsDir() {
			if err := copyDir(srcPath, dstPath); err != nil {
				return err
			}
		} else {
			if err := copyFile(srcPath, dstPath); err != nil {
				return err
			}
		}
	}

	return nil
}
