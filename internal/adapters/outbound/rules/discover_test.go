package rules_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/flightlint/flightlint/internal/adapters/outbound/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDomainFile(t *testing.T, base, rel, content string) {
	t.Helper()
	path := filepath.Join(base, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestDiscoverDomainDocs_SortedAcrossExtensions(t *testing.T) {
	dir := t.TempDir()
	writeDomainFile(t, dir, ".flight/domains/b.rules.json", "{}")
	writeDomainFile(t, dir, ".flight/domains/a.rules.yaml", "")
	writeDomainFile(t, dir, ".flight/domains/c.rules.yml", "")
	writeDomainFile(t, dir, ".flight/domains/notes.txt", "ignored")

	docs, err := rules.DiscoverDomainDocs(dir)
	require.NoError(t, err)

	require.Len(t, docs, 3)
	assert.Equal(t, filepath.Join(dir, rules.DomainsDir, "a.rules.yaml"), docs[0])
	assert.Equal(t, filepath.Join(dir, rules.DomainsDir, "b.rules.json"), docs[1])
	assert.Equal(t, filepath.Join(dir, rules.DomainsDir, "c.rules.yml"), docs[2])
}

func TestDiscoverDomainDocs_MissingDirIsEmpty(t *testing.T) {
	docs, err := rules.DiscoverDomainDocs(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, docs)
}
