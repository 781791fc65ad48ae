// Package discovery finds ERB template files from explicit paths or by
// expanding a glob pattern from the working directory.
package discovery

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultGlob matches the ERB templates linted when no explicit paths are
// given. It covers plain and variant templates (index.html.erb,
// index.html+mobile.erb).
const DefaultGlob = "**/*.html{+*,}.erb"

// PathNotFoundError reports an explicitly named path that does not exist.
type PathNotFoundError struct {
	Path string
}

func (e *PathNotFoundError) Error() string {
	return fmt.Sprintf("no such file or directory: %s", e.Path)
}

// Discover resolves explicit paths into a deduplicated, sorted list of
// target files. Files are taken as-is; directories are walked recursively
// and matched against pattern. A named path that does not exist is a
// *PathNotFoundError.
func Discover(paths []string, pattern string) ([]string, error) {
	if pattern == "" {
		pattern = DefaultGlob
	}

	seen := make(map[string]bool)
	var result []string
	add := func(path string) {
		abs, err := filepath.Abs(path)
		if err != nil {
			abs = path
		}
		if !seen[abs] {
			seen[abs] = true
			result = append(result, path)
		}
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return nil, &PathNotFoundError{Path: path}
			}
			return nil, fmt.Errorf("cannot access %q: %w", path, err)
		}

		if !info.IsDir() {
			add(path)
			continue
		}

		matches, err := walk(path, pattern)
		if err != nil {
			return nil, err
		}
		for _, m := range matches {
			add(m)
		}
	}

	sort.Strings(result)
	return result, nil
}

// DiscoverAll walks baseDir and returns all files matching pattern,
// deduplicated and sorted.
func DiscoverAll(baseDir, pattern string) ([]string, error) {
	if baseDir == "" {
		baseDir = "."
	}
	if pattern == "" {
		pattern = DefaultGlob
	}
	files, err := walk(baseDir, pattern)
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// walk recursively walks dir and collects files whose path relative to dir
// matches pattern.
func walk(dir, pattern string) ([]string, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid glob pattern %q", pattern)
	}

	var files []string
	err := filepath.Walk(dir, func(path string, info os.FileInfo, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if info.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)

		matched, err := doublestar.Match(pattern, rel)
		if err == nil && matched {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %q: %w", dir, err)
	}
	return files, nil
}
