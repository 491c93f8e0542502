package rules

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/flightlint/flightlint/internal/domain"
)

// Loader implements domain.RuleLoader by reading YAML rule documents.
// JSON documents produced by the rule compiler parse through the same
// decoder, since JSON is a YAML subset.
type Loader struct{}

// New creates a Loader.
func New() *Loader { return &Loader{} }

// rawRule mirrors one rule entry before validation. Severity stays a
// string here so an invalid value can be reported with its rule index
// instead of failing the whole decode.
type rawRule struct {
	ID       string `yaml:"id"`
	Title    string `yaml:"title"`
	Severity string `yaml:"severity"`
	Type     string `yaml:"type"`
	Query    string `yaml:"query"`
	Pattern  string `yaml:"pattern"`
	Message  string `yaml:"message"`
	Language string `yaml:"language"`
}

type rawDocument struct {
	Domain          string             `yaml:"domain"`
	Version         string             `yaml:"version"`
	Language        string             `yaml:"language"`
	FilePatterns    []string           `yaml:"file_patterns"`
	ExcludePatterns []string           `yaml:"exclude_patterns"`
	Provenance      *domain.Provenance `yaml:"provenance"`
	Rules           []rawRule          `yaml:"rules"`
}

// Load reads and strictly validates one rule document. Validation either
// produces a fully-formed document or fails naming the exact defect;
// there is no partially valid result.
func (l *Loader) Load(path string) (*domain.RuleDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &domain.RuleFileReadError{Path: path, Err: err}
	}

	var raw rawDocument
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, &domain.RuleFileParseError{Path: path, Err: err}
	}

	if raw.Domain == "" {
		return nil, &domain.SchemaError{Path: path, Field: "domain"}
	}
	if raw.Version == "" {
		return nil, &domain.SchemaError{Path: path, Field: "version"}
	}
	if len(raw.FilePatterns) == 0 {
		return nil, &domain.SchemaError{Path: path, Field: "file_patterns"}
	}
	if len(raw.Rules) == 0 {
		return nil, &domain.SchemaError{Path: path, Field: "rules"}
	}

	doc := &domain.RuleDocument{
		Domain:          raw.Domain,
		Version:         raw.Version,
		Language:        domain.Language(raw.Language),
		FilePatterns:    raw.FilePatterns,
		ExcludePatterns: raw.ExcludePatterns,
		Provenance:      raw.Provenance,
		Rules:           make([]domain.RuleSpec, 0, len(raw.Rules)),
	}

	seen := make(map[string]bool, len(raw.Rules))
	for i, r := range raw.Rules {
		rule, err := validateRule(path, i, r, seen)
		if err != nil {
			return nil, err
		}
		doc.Rules = append(doc.Rules, rule)
	}

	return doc, nil
}

func validateRule(path string, index int, r rawRule, seen map[string]bool) (domain.RuleSpec, error) {
	if r.ID == "" {
		return domain.RuleSpec{}, &domain.RuleSchemaError{Path: path, Index: index, Field: "id"}
	}
	if seen[r.ID] {
		// Two rules sharing an id would make findings untraceable;
		// rejected rather than treated as an alias.
		return domain.RuleSpec{}, &domain.RuleSchemaError{Path: path, Index: index, Field: "id (duplicate)"}
	}
	seen[r.ID] = true

	if r.Severity == "" {
		return domain.RuleSpec{}, &domain.RuleSchemaError{Path: path, Index: index, Field: "severity"}
	}
	severity, err := domain.ParseSeverity(r.Severity)
	if err != nil {
		return domain.RuleSpec{}, &domain.SeverityError{Path: path, Index: index, Value: r.Severity}
	}

	if r.Message == "" {
		return domain.RuleSpec{}, &domain.RuleSchemaError{Path: path, Index: index, Field: "message"}
	}

	ruleType := r.Type
	if ruleType == "" {
		// The rule compiler historically omitted type on grep rules.
		if r.Query != "" {
			ruleType = domain.RuleTypeAST
		} else {
			ruleType = domain.RuleTypeGrep
		}
	}

	switch ruleType {
	case domain.RuleTypeAST:
		if r.Query == "" {
			return domain.RuleSpec{}, &domain.RuleSchemaError{Path: path, Index: index, Field: "query"}
		}
	case domain.RuleTypeGrep:
		if r.Pattern == "" {
			return domain.RuleSpec{}, &domain.RuleSchemaError{Path: path, Index: index, Field: "pattern"}
		}
	default:
		return domain.RuleSpec{}, &domain.RuleSchemaError{Path: path, Index: index, Field: "type"}
	}

	return domain.RuleSpec{
		ID:       r.ID,
		Title:    r.Title,
		Severity: severity,
		Type:     ruleType,
		Query:    r.Query,
		Pattern:  r.Pattern,
		Message:  r.Message,
		Language: domain.Language(r.Language),
	}, nil
}
