package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "scaudit-mcp",
	Short: "Smart contract audit tools over MCP",
	Long: `scaudit-mcp exposes smart-contract analyzers (Slither, Mythril, Aderyn)
and a built-in pattern scanner as MCP tools, and can also run them directly
from the command line or through an interactive AI agent session.`,
}

var DebugMode bool

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&DebugMode, "debug", false, "Enable debug logging")
}
