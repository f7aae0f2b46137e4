// Package pathfilter provides glob-based file discovery using doublestar patterns.
package pathfilter

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Filter holds the include and exclude patterns for file discovery
type Filter struct {
	include []string
	exclude []string
}

// New creates a new Filter with the given include and exclude patterns
func New(include, exclude []string) *Filter {
	return &Filter{
		include: include,
		exclude: exclude,
	}
}

// DefaultFilter matches Go source files, skipping vendored and
// underscore-prefixed trees
func DefaultFilter() *Filter {
	return New(
		[]string{"**/*.go"},
		[]string{"vendor/**", "**/testdata/**", "_*/**"},
	)
}

// FilterFiles returns files under dir that match the include patterns
// and no exclude pattern. Paths are relative to dir, in glob order.
func (f *Filter) FilterFiles(dir string) ([]string, error) {
	fsys := os.DirFS(dir)
	seen := make(map[string]bool)
	var result []string

	for _, pattern := range f.include {
		matches, err := doublestar.Glob(fsys, pattern)
		if err != nil {
			return nil, err
		}
		for _, match := range matches {
			if seen[match] {
				continue
			}
			seen[match] = true

			excluded, err := f.isExcluded(match)
			if err != nil {
				return nil, err
			}
			if !excluded {
				result = append(result, match)
			}
		}
	}

	return result, nil
}

// MatchFile checks if a single path matches the filter criteria.
// The path is normalized to forward slashes before matching.
func (f *Filter) MatchFile(path string) (bool, error) {
	path = strings.ReplaceAll(path, string(filepath.Separator), "/")

	included := false
	for _, pattern := range f.include {
		match, err := doublestar.Match(pattern, path)
		if err != nil {
			return false, err
		}
		if match {
			included = true
			break
		}
	}
	if !included {
		return false, nil
	}

	excluded, err := f.isExcluded(path)
	if err != nil {
		return false, err
	}
	return !excluded, nil
}

func (f *Filter) isExcluded(path string) (bool, error) {
	for _, pattern := range f.exclude {
		match, err := doublestar.Match(pattern, path)
		if err != nil {
			return false, err
		}
		if match {
			return true, nil
		}
	}
	return false, nil
}
