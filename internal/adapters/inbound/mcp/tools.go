package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/flightlint/flightlint/internal/adapters/outbound/discovery"
	"github.com/flightlint/flightlint/internal/adapters/outbound/rules"
	"github.com/flightlint/flightlint/internal/adapters/outbound/treesitter"
	"github.com/flightlint/flightlint/internal/application"
	"github.com/flightlint/flightlint/internal/domain"
)

// registerTools registers the flightlint MCP tools on the given server.
func registerTools(s *server.MCPServer, basePath string) {
	// 1. flightlint_lint
	s.AddTool(
		mcplib.NewTool("flightlint_lint",
			mcplib.WithDescription("Lint the source tree against its rule documents and return summaries as JSON"),
			mcplib.WithString("domain",
				mcplib.Description("Lint only the named rule domain instead of all discovered documents"),
			),
			mcplib.WithString("severity",
				mcplib.Description("Minimum severity included in results: NEVER, MUST, SHOULD or GUIDANCE (default SHOULD)"),
			),
		),
		handleLint(basePath),
	)

	// 2. flightlint_list_domains
	s.AddTool(
		mcplib.NewTool("flightlint_list_domains",
			mcplib.WithDescription("List the rule domains discovered under the conventional domains directory"),
		),
		handleListDomains(basePath),
	)
}

func newLintService() *application.LintService {
	return application.NewLintService(
		rules.New(),
		discovery.New(),
		treesitter.NewRunner(treesitter.NewRegistry()),
	)
}

func handleLint(basePath string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		docs, err := rules.DiscoverDomainDocs(basePath)
		if err != nil {
			return errorResult(fmt.Sprintf("discovering rule documents: %v", err)), nil
		}

		if name := request.GetString("domain", ""); name != "" {
			docs = filterDocsByDomain(docs, name)
			if len(docs) == 0 {
				return errorResult(fmt.Sprintf("no rule document for domain %q", name)), nil
			}
		}
		if len(docs) == 0 {
			return errorResult(fmt.Sprintf("no rule documents under %s", rules.DomainsDir)), nil
		}

		min := domain.SeverityShould
		if raw := request.GetString("severity", ""); raw != "" {
			parsed, err := domain.ParseSeverity(strings.ToUpper(raw))
			if err != nil {
				return errorResult(err.Error()), nil
			}
			min = parsed
		}

		svc := newLintService()
		summaries := make([]domain.Summary, 0, len(docs))
		for _, doc := range docs {
			summary, err := svc.LintDocument(ctx, doc, basePath)
			if err != nil {
				return errorResult(fmt.Sprintf("lint failed: %v", err)), nil
			}
			summary.Results = domain.FilterBySeverity(summary.Results, min)
			summaries = append(summaries, *summary)
		}

		return jsonResult(summaries)
	}
}

func handleListDomains(basePath string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		domains, err := listDomains(basePath)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		return jsonResult(domains)
	}
}

// domainInfo describes one discovered rule document.
type domainInfo struct {
	Domain    string `json:"domain"`
	Version   string `json:"version"`
	Language  string `json:"language,omitempty"`
	RuleCount int    `json:"rule_count"`
	Path      string `json:"path"`
}

func listDomains(basePath string) ([]domainInfo, error) {
	docs, err := rules.DiscoverDomainDocs(basePath)
	if err != nil {
		return nil, fmt.Errorf("discovering rule documents: %w", err)
	}

	loader := rules.New()
	infos := make([]domainInfo, 0, len(docs))
	for _, path := range docs {
		doc, err := loader.Load(path)
		if err != nil {
			return nil, err
		}
		infos = append(infos, domainInfo{
			Domain:    doc.Domain,
			Version:   doc.Version,
			Language:  string(doc.Language),
			RuleCount: len(doc.Rules),
			Path:      path,
		})
	}
	return infos, nil
}

// filterDocsByDomain keeps the documents whose file name carries the
// given domain, e.g. python.rules.yaml for domain "python".
func filterDocsByDomain(docs []string, name string) []string {
	var kept []string
	for _, doc := range docs {
		base := filepath.Base(doc)
		if strings.HasPrefix(base, name+".rules.") {
			kept = append(kept, doc)
		}
	}
	return kept
}

// jsonResult marshals v and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
