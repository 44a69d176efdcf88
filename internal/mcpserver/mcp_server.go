// Package mcpserver provides the Model Context Protocol (MCP) server implementation.
package mcpserver

import (
	"context"

	"github.com/huangsam/skillscope/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the Skillscope MCP server without
// starting it. This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, store contract.ScanStore) *server.MCPServer {
	s := server.NewMCPServer(
		"Skillscope Attribution Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		store:   store,
	}

	// --- 1. Tool: analyze_archive ---
	s.AddTool(mcp.NewTool("analyze_archive",
		mcp.WithDescription("Classify the files of a zip archive or directory, group them into projects and score each project."),
		mcp.WithString("path", mcp.Description("Path to the .zip archive or directory to analyze."), mcp.Required()),
		mcp.WithBoolean("detailed", mcp.Description("Mine git history for repository roots (slower).")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of ranked projects returned.")),
	), h.handleAnalyzeArchive)

	// --- 2. Tool: get_leaderboard ---
	s.AddTool(mcp.NewTool("get_leaderboard",
		mcp.WithDescription("Return the contributor leaderboard of a stored scan."),
		mcp.WithNumber("scan_id", mcp.Description("ID of the stored scan."), mcp.Required()),
	), h.handleGetLeaderboard)

	// --- 3. Tool: list_scans ---
	s.AddTool(mcp.NewTool("list_scans",
		mcp.WithDescription("List stored scans, newest first."),
	), h.handleListScans)

	return s
}

// StartMCPServer starts the Skillscope MCP server over stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, store contract.ScanStore) error {
	s := NewMCPServer(baseCfg, store)
	return server.ServeStdio(s)
}
