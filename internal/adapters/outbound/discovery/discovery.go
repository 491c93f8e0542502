package discovery

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
)

// Directories never traversed, regardless of caller patterns: dependency
// installs, build output and version-control metadata.
var skipDirs = map[string]bool{
	"node_modules": true,
	"vendor":       true,
	".git":         true,
	".svn":         true,
	".hg":          true,
	"dist":         true,
	"build":        true,
	"target":       true,
	"__pycache__":  true,
}

// Discoverer implements domain.FileDiscoverer by walking the filesystem.
type Discoverer struct{}

// New creates a Discoverer.
func New() *Discoverer { return &Discoverer{} }

// Discover expands every glob in patterns relative to basePath and
// returns the union as a lexicographically sorted list of absolute
// paths. Caller-supplied excludePatterns drop a path even if an include
// pattern matched it. No matches is not an error.
func (d *Discoverer) Discover(patterns []string, basePath string, excludePatterns []string) ([]string, error) {
	absBase, err := filepath.Abs(basePath)
	if err != nil {
		return nil, err
	}

	paths := []string{}
	err = filepath.WalkDir(absBase, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if entry.IsDir() {
			if path != absBase && skipDirs[entry.Name()] {
				return filepath.SkipDir
			}
			return nil
		}

		rel, err := filepath.Rel(absBase, path)
		if err != nil {
			return err
		}

		if !matchAny(patterns, rel) {
			return nil
		}
		if matchAny(excludePatterns, rel) {
			return nil
		}

		paths = append(paths, path)
		return nil
	})
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}

	// Walk order is already lexical per directory, but the contract is a
	// total lexicographic order over absolute paths.
	sort.Strings(paths)

	slog.Debug("discovered files", "base", absBase, "patterns", patterns, "count", len(paths))
	return paths, nil
}
