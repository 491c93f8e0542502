package treesitter

import (
	"sync"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/bash"
	"github.com/smacker/go-tree-sitter/c"
	"github.com/smacker/go-tree-sitter/golang"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/python"
	"github.com/smacker/go-tree-sitter/rust"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
	"github.com/smacker/go-tree-sitter/yaml"

	"github.com/flightlint/flightlint/internal/domain"
)

// Registry lazily constructs and memoizes grammar handles per language.
// The cache is append-only: a grammar, once constructed, is never evicted
// or mutated, so abandoning a construction mid-way cannot corrupt prior
// entries.
type Registry struct {
	mu       sync.Mutex
	grammars map[domain.Language]*sitter.Language
}

// NewRegistry creates an empty registry. Each invocation owns its own
// registry; there is no package-level grammar state.
func NewRegistry() *Registry {
	return &Registry{grammars: make(map[domain.Language]*sitter.Language)}
}

// Grammar returns the cached grammar handle for the identifier,
// constructing it on first use. Unsupported identifiers fail with
// UnsupportedLanguageError.
func (r *Registry) Grammar(id domain.Language) (*sitter.Language, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if lang, ok := r.grammars[id]; ok {
		return lang, nil
	}

	lang := grammarFor(id)
	if lang == nil {
		return nil, &domain.UnsupportedLanguageError{ID: id}
	}

	r.grammars[id] = lang
	return lang, nil
}

func grammarFor(id domain.Language) *sitter.Language {
	switch id {
	case domain.LangGo:
		return golang.GetLanguage()
	case domain.LangPython:
		return python.GetLanguage()
	case domain.LangRust:
		return rust.GetLanguage()
	case domain.LangC:
		return c.GetLanguage()
	case domain.LangJavaScript:
		return javascript.GetLanguage()
	case domain.LangTypeScript:
		return typescript.GetLanguage()
	case domain.LangTSX:
		return tsx.GetLanguage()
	case domain.LangBash:
		return bash.GetLanguage()
	case domain.LangYAML:
		return yaml.GetLanguage()
	default:
		return nil
	}
}
