package domain

import "fmt"

// Configuration errors are deterministic functions of the input: a
// malformed rule document, an unsupported language, an invalid query.
// They are always fatal, always name the offending path/field/rule, and
// map to exit code 2. Violations are never errors; they are data.

// RuleFileReadError means the rule document could not be read at all.
type RuleFileReadError struct {
	Path string
	Err  error
}

func (e *RuleFileReadError) Error() string {
	return fmt.Sprintf("reading rule document %s: %v", e.Path, e.Err)
}

func (e *RuleFileReadError) Unwrap() error { return e.Err }

// RuleFileParseError means the document is not well-formed YAML/JSON.
type RuleFileParseError struct {
	Path string
	Err  error
}

func (e *RuleFileParseError) Error() string {
	return fmt.Sprintf("parsing rule document %s: %v", e.Path, e.Err)
}

func (e *RuleFileParseError) Unwrap() error { return e.Err }

// SchemaError names a missing or malformed top-level field.
type SchemaError struct {
	Path  string
	Field string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: missing or invalid field %q", e.Path, e.Field)
}

// RuleSchemaError names the zero-based index of a defective rule and the
// field that is missing or malformed.
type RuleSchemaError struct {
	Path  string
	Index int
	Field string
}

func (e *RuleSchemaError) Error() string {
	return fmt.Sprintf("%s: rule %d missing %q", e.Path, e.Index, e.Field)
}

// SeverityError names a rule whose severity is not one of the four
// recognized values.
type SeverityError struct {
	Path  string
	Index int
	Value string
}

func (e *SeverityError) Error() string {
	return fmt.Sprintf("%s: rule %d has invalid severity %q", e.Path, e.Index, e.Value)
}

// UnsupportedLanguageError means no grammar exists for the identifier.
type UnsupportedLanguageError struct {
	ID Language
}

func (e *UnsupportedLanguageError) Error() string {
	return fmt.Sprintf("unsupported language %q", string(e.ID))
}

// QueryCompileError means a rule's query does not compile against the
// target grammar. The rule id is part of the message so a malformed rule
// traces directly to its source.
type QueryCompileError struct {
	RuleID   string
	Language Language
	Err      error
}

func (e *QueryCompileError) Error() string {
	if e.Language == LangNone {
		return fmt.Sprintf("compiling pattern for rule %s: %v", e.RuleID, e.Err)
	}
	return fmt.Sprintf("compiling query for rule %s (%s): %v", e.RuleID, e.Language, e.Err)
}

func (e *QueryCompileError) Unwrap() error { return e.Err }

// ParseError is a scan error: a source file that could not be read or
// parsed. Fail-fast by design — a silently skipped file would produce a
// false "clean" report.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
