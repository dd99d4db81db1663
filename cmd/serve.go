package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/user/scaudit-mcp/pkg/mcp"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP server on stdio",
	Long: `Starts the MCP stdio server. Point an MCP client (Claude Desktop, Cursor,
VS Code) at this command to expose the audit tools.`,
	Run: func(cmd *cobra.Command, args []string) {
		server := mcp.NewServer()
		if err := server.RunStdio(context.Background()); err != nil {
			fmt.Fprintf(os.Stderr, "server error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
