package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/user/scaudit-mcp/pkg/adk"
	"github.com/user/scaudit-mcp/pkg/config"
	"github.com/user/scaudit-mcp/pkg/wrappers"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Start the interactive audit agent session",
	Run: func(cmd *cobra.Command, args []string) {
		adk.DebugEnabled = DebugMode

		cfg, err := config.LoadConfig()
		if err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			return
		}

		providerName := cfg.SelectedProvider
		if providerName == "" {
			providerName = "gemini" // Default
		}

		apiKey := cfg.GetAPIKey(providerName)
		if apiKey == "" {
			// Fallback to env var for Gemini if not in config
			if providerName == "gemini" {
				apiKey = os.Getenv("GOOGLE_API_KEY")
			}
		}

		if apiKey == "" {
			fmt.Println("Error: API Key not found.")
			fmt.Println("Please run 'scaudit-mcp config setup' to configure your keys.")
			return
		}

		ctx := context.Background()
		modelName := cfg.SelectedModel
		fmt.Printf("Connecting to %s (Model: %s)...\n", providerName, modelName)

		provider, err := adk.NewProvider(ctx, providerName, apiKey, modelName)
		if err != nil {
			fmt.Printf("Error creating AI provider: %v\n", err)
			return
		}
		if closer, ok := provider.(interface{ Close() }); ok {
			defer closer.Close()
		}

		agent := adk.NewAgent(provider)
		for _, tool := range wrappers.All() {
			agent.RegisterTool(tool)
		}
		agent.SetSystemPrompt(adk.GetSystemPrompt())

		scanner := bufio.NewScanner(os.Stdin)
		fmt.Println("\n---------------------------------------------------------")
		fmt.Println("Contract Audit Agent Initialized. Ready for commands.")
		fmt.Println("Example: 'Run slither on contracts/Vault.sol'")
		fmt.Println("Example: 'Which audit tools are installed?'")
		fmt.Println("Type 'quit' or 'exit' to stop.")
		fmt.Println("---------------------------------------------------------")

		for {
			fmt.Print("\n> ")
			if !scanner.Scan() {
				break
			}
			input := scanner.Text()
			if input == "quit" || input == "exit" {
				break
			}
			if input == "" {
				continue
			}

			fmt.Print("Agent thinking... ")
			resp, err := agent.Chat(ctx, input, func(msg string) {
				fmt.Printf("\r\033[K[Progress]: %s\nAgent thinking... ", msg)
			})
			fmt.Print("\r\033[K")

			if err != nil {
				fmt.Printf("Error: %v\n", err)
			} else {
				fmt.Printf("\n[Agent]: %s\n", resp)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}
