package cmd

import (
	"github.com/huangsam/roadmap/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the Roadmap MCP server",
	Long:  `Launch an MCP server that allows AI agents to lay out milestone sheets, generate timeline headers and estimate sprints via standard tools.`,
	Args:  cobra.NoArgs,
	// Stored journey orders are read but never rewritten by tool calls.
	PreRunE: sharedSetup,
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg, orderManager)
	},
}
