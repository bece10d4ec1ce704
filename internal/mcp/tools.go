package mcp

import "github.com/mark3labs/mcp-go/mcp"

// analyzeDocumentTool defines the analyze_document MCP tool.
var analyzeDocumentTool = mcp.NewTool("analyze_document",
	mcp.WithDescription("Analyze a Brazilian legal document: extract statute citations, cross-check them against the cited laws, flag discrepancies and produce a plain-language rewrite."),
	mcp.WithString("text",
		mcp.Required(),
		mcp.Description("The legal document text to analyze"),
	),
)

// simplifyTextTool defines the simplify_text MCP tool.
var simplifyTextTool = mcp.NewTool("simplify_text",
	mcp.WithDescription("Rewrite legal prose into plain Portuguese, keeping all numbers, deadlines and article references intact."),
	mcp.WithString("text",
		mcp.Required(),
		mcp.Description("The legal text to simplify"),
	),
)
