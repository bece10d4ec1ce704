// Package mcp exposes the analysis pipeline as Model Context Protocol
// tools, so AI agents can analyze and simplify legal documents directly.
package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/legisclaro/legisclaro/internal/pipeline"
	"github.com/legisclaro/legisclaro/internal/simplifier"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server around the pipeline.
type Server struct {
	pipeline   *pipeline.Pipeline
	simplifier *simplifier.Simplifier
	mcp        *server.MCPServer
}

// NewServer creates an MCP server with the given dependencies.
func NewServer(p *pipeline.Pipeline, s *simplifier.Simplifier) *Server {
	srv := &Server{pipeline: p, simplifier: s}

	srv.mcp = server.NewMCPServer(
		"legisclaro",
		Version,
		server.WithToolCapabilities(false),
	)

	srv.mcp.AddTool(analyzeDocumentTool, srv.handleAnalyzeDocument)
	srv.mcp.AddTool(simplifyTextTool, srv.handleSimplifyText)

	return srv
}

// Serve starts the MCP server on stdio. Stdout carries protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
