package mcpserver_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huangsam/skillscope/internal/contract"
	"github.com/huangsam/skillscope/internal/mcpserver"
	"github.com/huangsam/skillscope/schema"
)

// stubStore serves a single canned report for ID 1.
type stubStore struct{}

func (stubStore) SaveScan(*schema.ScanReport) (int64, error) { return 1, nil }

func (stubStore) ListScans() ([]contract.ScanMeta, error) {
	return []contract.ScanMeta{
		{ID: 2, Timestamp: "2023-07-02T00:00:00Z", AnalysisMode: "basic", ProjectCount: 3},
		{ID: 1, Timestamp: "2023-07-01T00:00:00Z", AnalysisMode: "detailed", ProjectCount: 1},
	}, nil
}

func (stubStore) GetScan(id int64) (*schema.ScanReport, error) {
	if id != 1 {
		return nil, assert.AnError
	}
	return &schema.ScanReport{
		Leaderboard: []schema.LeaderboardEntry{
			{Identity: "alice@example.com", ProjectCount: 1, TotalScore: 48.0, TotalPct: 60.0},
		},
	}, nil
}

func (stubStore) DeleteScan(int64) error                   { return nil }
func (stubStore) GetStatus() (contract.StoreStatus, error) { return contract.StoreStatus{}, nil }
func (stubStore) Close() error                             { return nil }

func callTool(t *testing.T, s *server.MCPServer, name string, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	tool := s.GetTool(name)
	require.NotNil(t, tool, "tool %s should exist", name)

	req := mcp.CallToolRequest{
		Params: mcp.CallToolParams{Name: name, Arguments: args},
	}
	res, err := tool.Handler(context.Background(), req)
	require.NoError(t, err, "handlers report tool failures in the result, not as raw errors")
	return res
}

func baseConfig() *contract.Config {
	return &contract.Config{
		ResultLimit: contract.DefaultResultLimit,
		Filters:     schema.DefaultFilters(),
	}
}

func TestMCPServerValidationErrors(t *testing.T) {
	s := mcpserver.NewMCPServer(baseConfig(), stubStore{})

	t.Run("analyze_archive missing path", func(t *testing.T) {
		res := callTool(t, s, "analyze_archive", map[string]any{})
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "path is required")
	})

	t.Run("get_leaderboard missing scan_id", func(t *testing.T) {
		res := callTool(t, s, "get_leaderboard", map[string]any{})
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "scan_id is required")
	})

	t.Run("get_leaderboard unknown scan", func(t *testing.T) {
		res := callTool(t, s, "get_leaderboard", map[string]any{"scan_id": 42.0})
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "cannot load scan")
	})
}

func TestMCPServerAnalyzeArchive(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "webapp"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "webapp", "app.py"), []byte("print('hi')\n"), 0o644))

	s := mcpserver.NewMCPServer(baseConfig(), stubStore{})

	res := callTool(t, s, "analyze_archive", map[string]any{"path": dir})
	require.False(t, res.IsError)

	text := res.Content[0].(mcp.TextContent).Text
	assert.Contains(t, text, `"project": "webapp"`)
	assert.Contains(t, text, `"analysis_mode": "basic"`)
}

func TestMCPServerGetLeaderboard(t *testing.T) {
	s := mcpserver.NewMCPServer(baseConfig(), stubStore{})

	res := callTool(t, s, "get_leaderboard", map[string]any{"scan_id": 1.0})
	require.False(t, res.IsError)
	assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "alice@example.com")
}

func TestMCPServerListScans(t *testing.T) {
	s := mcpserver.NewMCPServer(baseConfig(), stubStore{})

	res := callTool(t, s, "list_scans", map[string]any{})
	require.False(t, res.IsError)

	text := res.Content[0].(mcp.TextContent).Text
	assert.Contains(t, text, `"id": 2`)
	assert.Contains(t, text, `"analysis_mode": "detailed"`)
}
