package treesitter

import (
	"context"
	"regexp"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/flightlint/flightlint/internal/domain"
)

// Runner implements domain.RuleRunner on top of tree-sitter. Compiled
// queries are memoized per (rule, language) and compiled regexps per grep
// rule, so repeated files never pay compilation cost twice.
type Runner struct {
	registry *Registry
	queries  map[string]*sitter.Query
	regexps  map[string]*regexp.Regexp
}

// NewRunner creates a Runner backed by the given grammar registry.
func NewRunner(registry *Registry) *Runner {
	return &Runner{
		registry: registry,
		queries:  make(map[string]*sitter.Query),
		regexps:  make(map[string]*regexp.Regexp),
	}
}

// Run executes the given rules against one file's content. The returned
// slice is parallel to rules: out[i] holds rule i's matches in tree
// traversal order. The file is parsed at most once, and only if at least
// one ast rule applies.
func (r *Runner) Run(ctx context.Context, path string, source []byte, lang domain.Language, rules []domain.RuleSpec) ([][]domain.Match, error) {
	out := make([][]domain.Match, len(rules))

	var tree *sitter.Tree
	defer func() {
		if tree != nil {
			tree.Close()
		}
	}()

	for i, rule := range rules {
		if rule.Type == domain.RuleTypeGrep {
			matches, err := r.runGrep(rule, source)
			if err != nil {
				return nil, err
			}
			out[i] = matches
			continue
		}

		// An ast rule cannot run without a grammar; files with no
		// detected language are gated out by the orchestrator.
		if lang == domain.LangNone {
			continue
		}

		if tree == nil {
			parsed, err := r.parse(ctx, path, source, lang)
			if err != nil {
				return nil, err
			}
			tree = parsed
		}

		matches, err := r.runQuery(tree, source, rule, lang)
		if err != nil {
			return nil, err
		}
		out[i] = matches
	}

	return out, nil
}

// runQuery compiles the rule's query against the file's grammar and
// collects every capture bound to the violation capture name, converting
// tree-sitter's 0-indexed points to 1-indexed line/column.
func (r *Runner) runQuery(tree *sitter.Tree, source []byte, rule domain.RuleSpec, lang domain.Language) ([]domain.Match, error) {
	query, err := r.compiledQuery(rule, lang)
	if err != nil {
		return nil, err
	}

	cursor := sitter.NewQueryCursor()
	cursor.Exec(query, tree.RootNode())

	var matches []domain.Match
	for {
		m, ok := cursor.NextMatch()
		if !ok {
			break
		}
		m = cursor.FilterPredicates(m, source)
		for _, capture := range m.Captures {
			if query.CaptureNameForId(capture.Index) != domain.ViolationCapture {
				continue
			}
			point := capture.Node.StartPoint()
			matches = append(matches, domain.Match{
				Line:   int(point.Row) + 1,
				Column: int(point.Column) + 1,
				Text:   capture.Node.Content(source),
			})
		}
	}
	return matches, nil
}

func (r *Runner) compiledQuery(rule domain.RuleSpec, lang domain.Language) (*sitter.Query, error) {
	key := rule.ID + "\x00" + string(lang)
	if query, ok := r.queries[key]; ok {
		return query, nil
	}

	grammar, err := r.registry.Grammar(lang)
	if err != nil {
		return nil, err
	}

	query, err := sitter.NewQuery([]byte(rule.Query), grammar)
	if err != nil {
		return nil, &domain.QueryCompileError{RuleID: rule.ID, Language: lang, Err: err}
	}

	r.queries[key] = query
	return query, nil
}

// runGrep runs a plain-text rule: the pattern is matched per line, every
// occurrence becomes a match with a 1-indexed line and column.
func (r *Runner) runGrep(rule domain.RuleSpec, source []byte) ([]domain.Match, error) {
	re, err := r.compiledRegexp(rule)
	if err != nil {
		return nil, err
	}

	var matches []domain.Match
	for i, line := range strings.Split(string(source), "\n") {
		for _, loc := range re.FindAllStringIndex(line, -1) {
			matches = append(matches, domain.Match{
				Line:   i + 1,
				Column: loc[0] + 1,
				Text:   line[loc[0]:loc[1]],
			})
		}
	}
	return matches, nil
}

func (r *Runner) compiledRegexp(rule domain.RuleSpec) (*regexp.Regexp, error) {
	if re, ok := r.regexps[rule.ID]; ok {
		return re, nil
	}

	re, err := regexp.Compile(rule.Pattern)
	if err != nil {
		return nil, &domain.QueryCompileError{RuleID: rule.ID, Err: err}
	}

	r.regexps[rule.ID] = re
	return re, nil
}
