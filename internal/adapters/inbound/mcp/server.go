package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewFlightlintMCPServer creates an MCP server with the flightlint tools
// and resources registered. basePath is the root of the source tree to
// lint; rule documents are discovered under its conventional domains
// directory.
func NewFlightlintMCPServer(basePath string) *server.MCPServer {
	s := server.NewMCPServer(
		"flightlint",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, basePath)
	registerResources(s, basePath)

	return s
}
