package cmd

import (
	"github.com/huangsam/flowstate/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the FlowState MCP server",
	Long:  `Launch an MCP server that lets AI agents run FlowState queries and reach the dashboard resource via standard tools.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// Keep setup output away from stdio which carries the protocol.
		return sharedSetup(rootCtx, cmd, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg, datasetStore)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
