package domain

import "context"

// RuleLoader reads and strictly validates one rule document.
// It either returns a fully-formed document or a rejection naming the
// exact missing/malformed field — never a partially valid one.
type RuleLoader interface {
	Load(path string) (*RuleDocument, error)
}

// FileDiscoverer expands glob patterns into a deterministic, sorted list
// of absolute file paths. Default exclusions (dependency, build and VCS
// directories) always apply; excludePatterns are additional filters.
// No matches is not an error.
type FileDiscoverer interface {
	Discover(patterns []string, basePath string, excludePatterns []string) ([]string, error)
}

// RuleRunner parses a source file and executes compatible rules over it.
type RuleRunner interface {
	// Run executes every given rule against the file's content and
	// returns the matches per rule, in rule order. The caller has
	// already gated rules for language compatibility.
	Run(ctx context.Context, path string, source []byte, lang Language, rules []RuleSpec) ([][]Match, error)
}

// GitInfo reports version-control metadata for a scanned tree.
type GitInfo interface {
	IsGitRepo(path string) bool
	CommitHash(path string) (string, error)
}
