package rules

import (
	"path/filepath"
	"sort"
)

// DomainsDir is the conventional directory holding compiled rule
// documents, relative to the scanned tree.
const DomainsDir = ".flight/domains"

// DiscoverDomainDocs lists every compiled rule document under the
// conventional domains directory, sorted for deterministic processing
// order. Both the CLI and the MCP adapter use this discovery.
func DiscoverDomainDocs(basePath string) ([]string, error) {
	dir := filepath.Join(basePath, DomainsDir)

	var docs []string
	for _, pattern := range []string{"*.rules.yaml", "*.rules.yml", "*.rules.json"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, err
		}
		docs = append(docs, matches...)
	}

	sort.Strings(docs)
	return docs, nil
}
