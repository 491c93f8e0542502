package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/flightlint/flightlint/internal/adapters/outbound/discovery"
	"github.com/flightlint/flightlint/internal/adapters/outbound/gitinfo"
	"github.com/flightlint/flightlint/internal/adapters/outbound/report"
	"github.com/flightlint/flightlint/internal/adapters/outbound/rules"
	"github.com/flightlint/flightlint/internal/adapters/outbound/treesitter"
	"github.com/flightlint/flightlint/internal/adapters/outbound/tui"
	"github.com/flightlint/flightlint/internal/application"
	"github.com/flightlint/flightlint/internal/domain"
)

func newLintCmd() *cobra.Command {
	var (
		all         bool
		path        string
		format      string
		minSeverity string
	)

	cmd := &cobra.Command{
		Use:   "lint [rule-docs...]",
		Short: "Lint a source tree against rule documents",
		Long:  "Run every rule in the given rule documents against the files their patterns select. With --all, rule documents are discovered under " + rules.DomainsDir + ".",
		RunE: func(cmd *cobra.Command, args []string) error {
			docs := args
			if all {
				discovered, err := rules.DiscoverDomainDocs(path)
				if err != nil {
					return err
				}
				docs = discovered
			}
			if len(docs) == 0 {
				return fmt.Errorf("specify rule documents or use --all to discover them under %s", rules.DomainsDir)
			}

			min, err := domain.ParseSeverity(strings.ToUpper(minSeverity))
			if err != nil {
				return err
			}

			svc := application.NewLintService(
				rules.New(),
				discovery.New(),
				treesitter.NewRunner(treesitter.NewRegistry()),
			)

			// The exit-code gate looks at the unfiltered results: the
			// --severity flag shapes output, never the CI verdict.
			blocking := false
			summaries := make([]domain.Summary, 0, len(docs))
			for _, doc := range docs {
				summary, err := svc.LintDocument(cmd.Context(), doc, path)
				if err != nil {
					return err
				}
				if domain.HasBlocking(summary.Results) {
					blocking = true
				}
				summary.Results = domain.FilterBySeverity(summary.Results, min)
				summaries = append(summaries, *summary)
			}

			if err := renderSummaries(cmd, summaries, format, path); err != nil {
				return err
			}

			if blocking {
				return ErrBlockingViolations
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Discover all rule documents under "+rules.DomainsDir)
	cmd.Flags().StringVar(&path, "path", ".", "Source tree to lint")
	cmd.Flags().StringVar(&format, "format", "pretty", "Output format: pretty, json, sarif")
	cmd.Flags().StringVar(&minSeverity, "severity", "SHOULD", "Minimum severity included in output")

	return cmd
}

func renderSummaries(cmd *cobra.Command, summaries []domain.Summary, format, path string) error {
	out := cmd.OutOrStdout()

	switch format {
	case "pretty":
		for i, summary := range summaries {
			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprint(out, tui.RenderSummary(summary))
		}
		return nil
	case "json":
		return report.WriteJSON(out, summaries)
	case "sarif":
		revision := ""
		git := gitinfo.New()
		if git.IsGitRepo(path) {
			if hash, err := git.CommitHash(path); err == nil {
				revision = hash
			}
		}
		return report.WriteSARIF(out, summaries, revision)
	default:
		return fmt.Errorf("unknown format %q (want pretty, json or sarif)", format)
	}
}
