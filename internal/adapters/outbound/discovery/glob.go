package discovery

import (
	"path/filepath"
	"strings"
)

// globMatch matches a slash-separated relative path against a glob
// pattern. Supported syntax:
//
//   - *      any run of non-separator characters
//   - **     any run of path segments, including none
//   - ?      one non-separator character
//   - [abc]  character class
//
// A pattern without a separator matches against the file's base name, so
// "*.py" finds Python files at any depth.
func globMatch(pattern, path string) bool {
	pattern = strings.TrimPrefix(filepath.ToSlash(pattern), "./")
	path = filepath.ToSlash(path)

	if !strings.Contains(pattern, "/") {
		matched, _ := filepath.Match(pattern, filepath.Base(path))
		return matched
	}

	return matchSegments(strings.Split(pattern, "/"), strings.Split(path, "/"))
}

func matchSegments(pattern, parts []string) bool {
	if len(pattern) == 0 {
		return len(parts) == 0
	}

	if pattern[0] == "**" {
		// ** consumes zero or more leading segments.
		if matchSegments(pattern[1:], parts) {
			return true
		}
		if len(parts) == 0 {
			return false
		}
		return matchSegments(pattern, parts[1:])
	}

	if len(parts) == 0 {
		return false
	}

	matched, err := filepath.Match(pattern[0], parts[0])
	if err != nil || !matched {
		return false
	}
	return matchSegments(pattern[1:], parts[1:])
}

// matchAny reports whether the path matches at least one pattern.
func matchAny(patterns []string, path string) bool {
	for _, pattern := range patterns {
		if globMatch(pattern, path) {
			return true
		}
	}
	return false
}
