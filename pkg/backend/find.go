// pkg/backend/find.go
package backend

import (
	"context"
	"sort"
	"strings"
	"unicode"

	"github.com/arc-language/depflags/pkg/platform"
)

// findHeader runs find(1) below dir for files whose path matches *<include>
// and returns the match with the highest version.
func (b base) findHeader(ctx context.Context, dir, include, pathTest string) string {
	if !platform.IsDir(dir) {
		return ""
	}
	out, err := b.cfg.Runner.Output(ctx, platform.Command("find", dir,
		"-maxdepth", "3", "-type", "f", pathTest, "*"+include))
	if err != nil {
		b.cfg.Logger.Debug("find failed", "dir", dir, "include", include, "err", err)
	}
	return HighestVersion(platform.Lines(out))
}

// HighestVersion returns the last path in natural version order, or ""
func HighestVersion(paths []string) string {
	if len(paths) == 0 {
		return ""
	}
	sorted := append([]string(nil), paths...)
	SortVersions(sorted)
	return sorted[len(sorted)-1]
}

// SortVersions sorts strings so embedded numbers compare by value,
// like `sort -V`: qt5 < qt6 < qt10.
func SortVersions(s []string) {
	sort.SliceStable(s, func(i, j int) bool {
		return compareVersions(s[i], s[j]) < 0
	})
}

func compareVersions(a, b string) int {
	for a != "" && b != "" {
		ca, restA := nextChunk(a)
		cb, restB := nextChunk(b)
		if c := compareChunk(ca, cb); c != 0 {
			return c
		}
		a, b = restA, restB
	}
	switch {
	case a == "" && b == "":
		return 0
	case a == "":
		return -1
	default:
		return 1
	}
}

// nextChunk splits off a leading run of digits or of non-digits
func nextChunk(s string) (string, string) {
	digit := unicode.IsDigit(rune(s[0]))
	i := 1
	for i < len(s) && unicode.IsDigit(rune(s[i])) == digit {
		i++
	}
	return s[:i], s[i:]
}

func compareChunk(a, b string) int {
	if isNumber(a) && isNumber(b) {
		a = strings.TrimLeft(a, "0")
		b = strings.TrimLeft(b, "0")
		if len(a) != len(b) {
			if len(a) < len(b) {
				return -1
			}
			return 1
		}
	}
	return strings.Compare(a, b)
}

func isNumber(s string) bool {
	return s != "" && unicode.IsDigit(rune(s[0]))
}
