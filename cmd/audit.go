package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/user/scaudit-mcp/pkg/audit"
)

var (
	auditTool             string
	auditDetectors        string
	auditExcludeDetectors string
	auditExecutionTimeout int
)

// toolActions maps the short CLI tool names onto action names.
var toolActions = map[string]string{
	"slither":  audit.ActionSlither,
	"mythril":  audit.ActionMythril,
	"aderyn":   audit.ActionAderyn,
	"patterns": audit.ActionPatterns,
	"read":     audit.ActionReadContract,
}

var auditCmd = &cobra.Command{
	Use:   "audit <contract>",
	Short: "Run one audit tool against a contract",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		action, ok := toolActions[auditTool]
		if !ok {
			fmt.Printf("Unknown tool: %s (use slither, mythril, aderyn, patterns or read)\n", auditTool)
			return
		}

		toolArgs := map[string]interface{}{
			"contract_path": args[0],
		}
		if auditDetectors != "" {
			toolArgs["detectors"] = auditDetectors
		}
		if auditExcludeDetectors != "" {
			toolArgs["exclude_detectors"] = auditExcludeDetectors
		}
		if auditExecutionTimeout > 0 {
			toolArgs["execution_timeout"] = auditExecutionTimeout
		}

		result := audit.Execute(context.Background(), action, toolArgs)
		fmt.Println(audit.RenderText(result))
	},
}

func init() {
	auditCmd.Flags().StringVar(&auditTool, "tool", "patterns", "Tool to run: slither, mythril, aderyn, patterns, read")
	auditCmd.Flags().StringVar(&auditDetectors, "detectors", "", "Comma-separated Slither detectors to run")
	auditCmd.Flags().StringVar(&auditExcludeDetectors, "exclude-detectors", "", "Comma-separated Slither detectors to exclude")
	auditCmd.Flags().IntVar(&auditExecutionTimeout, "execution-timeout", 0, "Mythril execution timeout in seconds")
	rootCmd.AddCommand(auditCmd)
}
