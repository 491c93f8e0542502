package domain

// Rule check types. AST rules run a tree-sitter query against the parsed
// tree; grep rules run a regular expression against raw lines.
const (
	RuleTypeAST  = "ast"
	RuleTypeGrep = "grep"
)

// ViolationCapture is the reserved capture name a query binds to the node
// it considers the reportable site of a match. Captures under other names
// are structural constraints only and are never reported.
const ViolationCapture = "violation"

// RuleSpec is one declarative check: a structural query or text pattern,
// a severity, and a message.
type RuleSpec struct {
	ID       string   `yaml:"id" json:"id"`
	Title    string   `yaml:"title" json:"title"`
	Severity Severity `yaml:"-" json:"severity"`
	Type     string   `yaml:"type" json:"type"`
	Query    string   `yaml:"query" json:"query,omitempty"`
	Pattern  string   `yaml:"pattern" json:"pattern,omitempty"`
	Message  string   `yaml:"message" json:"message"`
	Language Language `yaml:"language" json:"language,omitempty"`
}

// EffectiveLanguage resolves the language the rule targets. An explicit
// rule-level tag wins; an ast rule without one inherits the document
// default. A grep rule without a tag is a plain-text rule (LangNone) and
// applies to every file.
func (r RuleSpec) EffectiveLanguage(docDefault Language) Language {
	if r.Language != LangNone {
		return r.Language
	}
	if r.Type == RuleTypeAST {
		return docDefault
	}
	return LangNone
}

// Provenance is audit metadata carried through from the rule document
// unmodified.
type Provenance struct {
	LastFullAudit string `yaml:"last_full_audit" json:"last_full_audit,omitempty"`
	AuditedBy     string `yaml:"audited_by" json:"audited_by,omitempty"`
}

// RuleDocument is a named, versioned collection of rules plus the file
// patterns they apply to. Constructed once per invocation by the loader;
// immutable thereafter.
type RuleDocument struct {
	Domain          string      `yaml:"domain" json:"domain"`
	Version         string      `yaml:"version" json:"version"`
	Language        Language    `yaml:"language" json:"language,omitempty"`
	FilePatterns    []string    `yaml:"file_patterns" json:"file_patterns"`
	ExcludePatterns []string    `yaml:"exclude_patterns" json:"exclude_patterns,omitempty"`
	Provenance      *Provenance `yaml:"provenance" json:"provenance,omitempty"`
	Rules           []RuleSpec  `yaml:"rules" json:"rules"`
}
