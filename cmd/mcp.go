package cmd

import (
	"github.com/huangsam/skillscope/internal/contract"
	"github.com/huangsam/skillscope/internal/mcpserver"
	"github.com/huangsam/skillscope/schema"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the Skillscope MCP server",
	Long:  `Launch an MCP server that allows AI agents to analyze archives and query stored scans via standard tools.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// Suppress the normal header logs when running in MCP mode
		// to avoid polluting stdio which is used for the protocol.
		return sharedSetup(cmd, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		var store contract.ScanStore
		if cfg.Backend != schema.NoneBackend {
			s, err := openStore()
			if err != nil {
				return err
			}
			defer func() { _ = s.Close() }()
			store = s
		}
		return mcpserver.StartMCPServer(rootCtx, cfg, store)
	},
}
