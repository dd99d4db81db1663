package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/user/scaudit-mcp/pkg/audit"
)

var watchCmd = &cobra.Command{
	Use:   "watch <contract>",
	Short: "Re-run pattern analysis whenever the contract changes",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runWatch(args[0], nil)
	},
}

func runWatch(contractPath string, stop <-chan struct{}) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: watch init failed: %v\n", err)
		os.Exit(1)
	}
	defer watcher.Close()

	// Watch the directory: editors replace files on save, which would drop a
	// watch placed on the file itself.
	if err := watcher.Add(filepath.Dir(contractPath)); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: watch failed: %v\n", err)
		os.Exit(1)
	}

	target := filepath.Clean(contractPath)
	rerun := func() {
		result := audit.AnalyzePatterns(contractPath)
		fmt.Printf("--- %s ---\n%s\n", time.Now().Format("15:04:05"), audit.RenderText(result))
	}
	rerun()

	var timer *time.Timer
	debounce := 300 * time.Millisecond

	for {
		select {
		case <-stop:
			return
		case ev, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounce, rerun)
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			fmt.Fprintf(os.Stderr, "ERROR: watch error: %v\n", err)
		}
	}
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
