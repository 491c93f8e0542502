package treesitter

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/flightlint/flightlint/internal/domain"
)

// parse builds a concrete syntax tree for one file. A tree whose root
// contains syntax errors fails with ParseError naming the path: malformed
// source is never silently skipped.
func (r *Runner) parse(ctx context.Context, path string, source []byte, lang domain.Language) (*sitter.Tree, error) {
	grammar, err := r.registry.Grammar(lang)
	if err != nil {
		return nil, err
	}

	parser := sitter.NewParser()
	parser.SetLanguage(grammar)

	tree, err := parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, &domain.ParseError{Path: path, Err: err}
	}
	if tree.RootNode().HasError() {
		tree.Close()
		return nil, &domain.ParseError{Path: path, Err: fmt.Errorf("source contains syntax errors")}
	}
	return tree, nil
}
