package application

import (
	"context"
	"log/slog"
	"os"

	"github.com/flightlint/flightlint/internal/domain"
)

// LintService orchestrates the lint pipeline:
// load rules -> discover files -> gate compatibility -> parse/match -> aggregate.
type LintService struct {
	loader     domain.RuleLoader
	discoverer domain.FileDiscoverer
	runner     domain.RuleRunner
}

func NewLintService(
	loader domain.RuleLoader,
	discoverer domain.FileDiscoverer,
	runner domain.RuleRunner,
) *LintService {
	return &LintService{
		loader:     loader,
		discoverer: discoverer,
		runner:     runner,
	}
}

// LintDocument loads one rule document and lints the tree under basePath.
func (s *LintService) LintDocument(ctx context.Context, docPath, basePath string) (*domain.Summary, error) {
	doc, err := s.loader.Load(docPath)
	if err != nil {
		return nil, err
	}
	return s.LintFiles(ctx, doc, basePath)
}

// LintFiles lints every file the document's patterns select under
// basePath. Processing is sequential — one file at a time, one rule at a
// time — so result ordering is file path order, then rule order within a
// file. The first read or parse failure halts the run: a silently
// skipped file would produce a false "clean" report.
func (s *LintService) LintFiles(ctx context.Context, doc *domain.RuleDocument, basePath string) (*domain.Summary, error) {
	paths, err := s.discoverer.Discover(doc.FilePatterns, basePath, doc.ExcludePatterns)
	if err != nil {
		return nil, err
	}

	summary := &domain.Summary{
		Domain:  doc.Domain,
		Results: []domain.Result{},
	}

	for _, path := range paths {
		source, err := os.ReadFile(path)
		if err != nil {
			return nil, &domain.ParseError{Path: path, Err: err}
		}

		lang := domain.DetectLanguage(path)
		applicable := applicableRules(doc, lang)

		slog.Debug("linting file", "path", path, "language", string(lang), "rules", len(applicable))

		matchSets, err := s.runner.Run(ctx, path, source, lang, applicable)
		if err != nil {
			return nil, err
		}
		summary.FileCount++

		for i, rule := range applicable {
			for _, m := range matchSets[i] {
				summary.Results = append(summary.Results, domain.Result{
					FilePath: path,
					Line:     m.Line,
					Column:   m.Column,
					RuleID:   rule.ID,
					Severity: rule.Severity,
					Message:  rule.Message,
				})
			}
		}
	}

	return summary, nil
}

// applicableRules gates every rule/file pairing before the executor is
// invoked, so an incompatible pairing never incurs parse or query cost.
func applicableRules(doc *domain.RuleDocument, fileLang domain.Language) []domain.RuleSpec {
	applicable := make([]domain.RuleSpec, 0, len(doc.Rules))
	for _, rule := range doc.Rules {
		ruleLang := rule.EffectiveLanguage(doc.Language)
		if !domain.Compatible(fileLang, ruleLang) {
			continue
		}
		if rule.Type == domain.RuleTypeAST && fileLang == domain.LangNone {
			// Structural rules need a grammar; files with no detected
			// language only receive plain-text rules.
			continue
		}
		applicable = append(applicable, rule)
	}
	return applicable
}
