package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/huangsam/skillscope/core"
	"github.com/huangsam/skillscope/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	store   contract.ScanStore
}

func (h *toolHandler) handleAnalyzeArchive(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	archivePath := request.GetString("path", "")
	if archivePath == "" {
		return mcp.NewToolResultError("path is required"), nil
	}

	cfg := h.baseCfg.Clone()
	cfg.Detailed = request.GetBool("detailed", cfg.Detailed)
	if l := request.GetInt("limit", 0); l > 0 {
		cfg.ResultLimit = l
	}

	out, err := core.AnalyzeArtifact(ctx, archivePath, cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", err)), nil
	}

	report := *out.Report
	if len(report.ProjectSummaries) > cfg.ResultLimit {
		report.ProjectSummaries = report.ProjectSummaries[:cfg.ResultLimit]
	}

	jsonData, _ := json.MarshalIndent(report, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetLeaderboard(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if h.store == nil {
		return mcp.NewToolResultError("no scan store configured"), nil
	}

	scanID := request.GetInt("scan_id", 0)
	if scanID <= 0 {
		return mcp.NewToolResultError("scan_id is required"), nil
	}

	report, err := h.store.GetScan(int64(scanID))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("cannot load scan: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(report.Leaderboard, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleListScans(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if h.store == nil {
		return mcp.NewToolResultError("no scan store configured"), nil
	}

	metas, err := h.store.ListScans()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("cannot list scans: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(metas, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
