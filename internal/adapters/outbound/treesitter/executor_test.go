package treesitter_test

import (
	"context"
	"testing"

	"github.com/flightlint/flightlint/internal/adapters/outbound/treesitter"
	"github.com/flightlint/flightlint/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRunner() *treesitter.Runner {
	return treesitter.NewRunner(treesitter.NewRegistry())
}

const goSource = `package main

func main() {
	panic("boom")
}

// panic("inside a comment")

func helper() {
	msg := "panic(\"inside a string\")"
	_ = msg
}
`

var panicRule = domain.RuleSpec{
	ID:       "N1",
	Title:    "No panic",
	Severity: domain.SeverityNever,
	Type:     domain.RuleTypeAST,
	Query:    `(call_expression function: (identifier) @fn (#eq? @fn "panic")) @violation`,
	Message:  "Return an error instead of panicking.",
}

func TestRunner_NoFalsePositivesFromCommentsOrStrings(t *testing.T) {
	matches, err := newRunner().Run(context.Background(), "main.go",
		[]byte(goSource), domain.LangGo, []domain.RuleSpec{panicRule})
	require.NoError(t, err)

	require.Len(t, matches, 1)
	require.Len(t, matches[0], 1, "only the real call site is a violation")
	assert.Equal(t, 4, matches[0][0].Line)
	assert.Equal(t, 2, matches[0][0].Column)
	assert.Equal(t, `panic("boom")`, matches[0][0].Text)
}

func TestRunner_ExactPositiveDetection(t *testing.T) {
	source := []byte(`package main

func one() {}

func two() {}

func three() {}
`)
	rule := domain.RuleSpec{
		ID:       "G1",
		Severity: domain.SeverityGuidance,
		Type:     domain.RuleTypeAST,
		Query:    `(function_declaration name: (identifier) @violation)`,
		Message:  "m",
	}

	matches, err := newRunner().Run(context.Background(), "main.go",
		source, domain.LangGo, []domain.RuleSpec{rule})
	require.NoError(t, err)

	require.Len(t, matches[0], 3)
	assert.Equal(t, 3, matches[0][0].Line)
	assert.Equal(t, 5, matches[0][1].Line)
	assert.Equal(t, 7, matches[0][2].Line)
	assert.Equal(t, "one", matches[0][0].Text)
	assert.Equal(t, "two", matches[0][1].Text)
	assert.Equal(t, "three", matches[0][2].Text)
}

func TestRunner_PythonBareExcept(t *testing.T) {
	source := []byte(`def load(path):
    try:
        return open(path).read()
    except:
        return None
`)
	rule := domain.RuleSpec{
		ID:       "N1",
		Severity: domain.SeverityNever,
		Type:     domain.RuleTypeAST,
		Query:    `(except_clause) @violation`,
		Message:  "m",
	}

	matches, err := newRunner().Run(context.Background(), "load.py",
		source, domain.LangPython, []domain.RuleSpec{rule})
	require.NoError(t, err)

	require.Len(t, matches[0], 1)
	assert.Equal(t, 4, matches[0][0].Line)
	assert.Equal(t, 5, matches[0][0].Column)
}

func TestRunner_Deterministic(t *testing.T) {
	runner := newRunner()
	run := func() [][]domain.Match {
		matches, err := runner.Run(context.Background(), "main.go",
			[]byte(goSource), domain.LangGo, []domain.RuleSpec{panicRule})
		require.NoError(t, err)
		return matches
	}

	assert.Equal(t, run(), run(), "unchanged tree and query must yield identical matches")
}

func TestRunner_ZeroCapturesIsNotAnError(t *testing.T) {
	source := []byte("package main\n\nvar x = 1\n")
	rule := domain.RuleSpec{
		ID:       "G1",
		Severity: domain.SeverityGuidance,
		Type:     domain.RuleTypeAST,
		Query:    `(function_declaration name: (identifier) @violation)`,
		Message:  "m",
	}

	matches, err := newRunner().Run(context.Background(), "main.go",
		source, domain.LangGo, []domain.RuleSpec{rule})
	require.NoError(t, err)
	assert.Empty(t, matches[0])
}

func TestRunner_InvalidQueryNamesRule(t *testing.T) {
	rule := domain.RuleSpec{
		ID:       "N9",
		Severity: domain.SeverityNever,
		Type:     domain.RuleTypeAST,
		Query:    `(((`,
		Message:  "m",
	}

	_, err := newRunner().Run(context.Background(), "main.go",
		[]byte("package main\n"), domain.LangGo, []domain.RuleSpec{rule})

	var compileErr *domain.QueryCompileError
	require.ErrorAs(t, err, &compileErr)
	assert.Equal(t, "N9", compileErr.RuleID)
	assert.Contains(t, err.Error(), "N9")
}

func TestRunner_SyntaxErrorFailsFast(t *testing.T) {
	rule := domain.RuleSpec{
		ID:       "G1",
		Severity: domain.SeverityGuidance,
		Type:     domain.RuleTypeAST,
		Query:    `(function_declaration name: (identifier) @violation)`,
		Message:  "m",
	}

	_, err := newRunner().Run(context.Background(), "broken.go",
		[]byte("package main\n\nfunc (\n"), domain.LangGo, []domain.RuleSpec{rule})

	var parseErr *domain.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "broken.go", parseErr.Path)
}

func TestRunner_GrepRulesSkipParsing(t *testing.T) {
	rule := domain.RuleSpec{
		ID:       "S1",
		Severity: domain.SeverityShould,
		Type:     domain.RuleTypeGrep,
		Pattern:  "TODO",
		Message:  "m",
	}

	// Malformed source is fine for plain-text rules: nothing parses.
	matches, err := newRunner().Run(context.Background(), "broken.go",
		[]byte("func ( TODO\nTODO TODO\n"), domain.LangGo, []domain.RuleSpec{rule})
	require.NoError(t, err)

	require.Len(t, matches[0], 3)
	assert.Equal(t, domain.Match{Line: 1, Column: 8, Text: "TODO"}, matches[0][0])
	assert.Equal(t, domain.Match{Line: 2, Column: 1, Text: "TODO"}, matches[0][1])
	assert.Equal(t, domain.Match{Line: 2, Column: 6, Text: "TODO"}, matches[0][2])
}

func TestRunner_InvalidGrepPatternNamesRule(t *testing.T) {
	rule := domain.RuleSpec{
		ID:       "S9",
		Severity: domain.SeverityShould,
		Type:     domain.RuleTypeGrep,
		Pattern:  "[unclosed",
		Message:  "m",
	}

	_, err := newRunner().Run(context.Background(), "any.txt",
		[]byte("text\n"), domain.LangNone, []domain.RuleSpec{rule})

	var compileErr *domain.QueryCompileError
	require.ErrorAs(t, err, &compileErr)
	assert.Equal(t, "S9", compileErr.RuleID)
}

func TestRunner_TypeScriptRuleOnTSXFile(t *testing.T) {
	// tsx is a strict syntactic superset of typescript, so a rule
	// written against base-language node types runs on tsx trees.
	source := []byte(`const render = () => <div>hello</div>;

function legacy(cb: () => void): void {
	cb();
}
`)
	rule := domain.RuleSpec{
		ID:       "M1",
		Severity: domain.SeverityMust,
		Type:     domain.RuleTypeAST,
		Query:    `(function_declaration name: (identifier) @violation)`,
		Message:  "m",
		Language: domain.LangTypeScript,
	}

	matches, err := newRunner().Run(context.Background(), "App.tsx",
		source, domain.LangTSX, []domain.RuleSpec{rule})
	require.NoError(t, err)

	require.Len(t, matches[0], 1)
	assert.Equal(t, "legacy", matches[0][0].Text)
	assert.Equal(t, 3, matches[0][0].Line)
}
