package util

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// GlobFilter matches slash-separated relative paths against a set of include
// patterns and a set of exclude patterns (prefixed with '!' in the source
// string). With no include patterns every path is included.
type GlobFilter struct {
	include []string
	exclude []string
}

// ParseGlobFilter parses a comma-separated pattern list, e.g.
// "**/*.tap,!**/fixtures/**".
func ParseGlobFilter(patterns string) *GlobFilter {
	gf := &GlobFilter{}

	for _, pattern := range strings.Split(patterns, ",") {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}
		if rest, ok := strings.CutPrefix(pattern, "!"); ok {
			gf.exclude = append(gf.exclude, rest)
		} else {
			gf.include = append(gf.include, pattern)
		}
	}

	return gf
}

func (gf *GlobFilter) Match(path string) (bool, error) {
	path = filepath.ToSlash(path)

	included := len(gf.include) == 0
	for _, pattern := range gf.include {
		matched, err := doublestar.Match(pattern, path)
		if err != nil {
			return false, fmt.Errorf("invalid glob pattern '%s': %w", pattern, err)
		}
		if matched {
			included = true
			break
		}
	}
	if !included {
		return false, nil
	}

	for _, pattern := range gf.exclude {
		matched, err := doublestar.Match(pattern, path)
		if err != nil {
			return false, fmt.Errorf("invalid glob pattern '%s': %w", pattern, err)
		}
		if matched {
			return false, nil
		}
	}

	return true, nil
}

// FilterWithGlob keeps the items whose extracted path matches the pattern
// list. An empty pattern list keeps everything.
func FilterWithGlob[T any](items []T, patterns string, pathExtractor func(T) string) ([]T, error) {
	if patterns == "" {
		return items, nil
	}

	gf := ParseGlobFilter(patterns)
	var filtered []T

	for _, item := range items {
		matched, err := gf.Match(pathExtractor(item))
		if err != nil {
			return nil, err
		}
		if matched {
			filtered = append(filtered, item)
		}
	}

	return filtered, nil
}
