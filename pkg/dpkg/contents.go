// pkg/dpkg/contents.go
package dpkg

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/ulikunitz/xz"
)

// ContentsFiles returns the Contents indexes found in dirs, in name order
func ContentsFiles(dirs ...string) []string {
	var files []string
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		matches, err := filepath.Glob(filepath.Join(dir, contentsGlob))
		if err != nil {
			continue
		}
		sort.Strings(matches)
		files = append(files, matches...)
	}
	return files
}

// SearchContentsFile opens a possibly compressed Contents index and
// returns the packages that ship include/<target>.
func SearchContentsFile(name, target string) ([]string, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r, closer, err := decompress(f, name)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", filepath.Base(name), err)
	}
	if closer != nil {
		defer closer()
	}
	return SearchContents(r, target)
}

// decompress picks a reader from the file extension
func decompress(r io.Reader, name string) (io.Reader, func(), error) {
	switch {
	case strings.HasSuffix(name, ".lz4"):
		return lz4.NewReader(r), nil, nil
	case strings.HasSuffix(name, ".xz"):
		xzReader, err := xz.NewReader(r)
		if err != nil {
			return nil, nil, fmt.Errorf("creating xz reader: %w", err)
		}
		return xzReader, nil, nil
	case strings.HasSuffix(name, ".gz"):
		gzReader, err := gzip.NewReader(r)
		if err != nil {
			return nil, nil, fmt.Errorf("creating gzip reader: %w", err)
		}
		return gzReader, func() { gzReader.Close() }, nil
	case strings.HasSuffix(name, ".zst"):
		zstReader, err := zstd.NewReader(r)
		if err != nil {
			return nil, nil, fmt.Errorf("creating zstd reader: %w", err)
		}
		return zstReader, zstReader.Close, nil
	default:
		return r, nil, nil
	}
}
