package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "xero-mcp",
	Short: "MCP server exposing the Xero accounting API as agent tools",
	Long: `xero-mcp bridges the Xero accounting API into the Model Context Protocol.

Each tool forwards one Xero operation (list/get/create/update and a few
status transitions) for a single tenant. Credentials travel with every
request: the server holds no tokens of its own.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
