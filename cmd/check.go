package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/user/scaudit-mcp/pkg/audit"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Report which analyzers are installed",
	Run: func(cmd *cobra.Command, args []string) {
		result := audit.CheckTools(context.Background())
		fmt.Println(audit.RenderText(result))
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
