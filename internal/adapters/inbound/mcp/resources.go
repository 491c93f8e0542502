package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// registerResources registers the flightlint MCP resources on the given
// server.
func registerResources(s *server.MCPServer, basePath string) {
	// flightlint://domains - discovered rule domains
	s.AddResource(
		mcplib.NewResource(
			"flightlint://domains",
			"Rule Domains",
			mcplib.WithResourceDescription("Rule documents discovered under the conventional domains directory"),
			mcplib.WithMIMEType("application/json"),
		),
		handleDomainsResource(basePath),
	)
}

func handleDomainsResource(basePath string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		domains, err := listDomains(basePath)
		if err != nil {
			return nil, err
		}

		data, err := json.MarshalIndent(domains, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling domains: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      "flightlint://domains",
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}
