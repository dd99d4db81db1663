package audit

import (
	"context"
	"strings"
	"time"
)

const aderynTimeout = 300 * time.Second

// RunAderyn runs the Aderyn linter on a smart contract file or project root.
// Aderyn prints a human-readable report, so output is passed through as-is and
// no structured findings are extracted.
func RunAderyn(ctx context.Context, contractPath string) Result {
	if strings.TrimSpace(contractPath) == "" {
		return missingContractPath()
	}
	if !fileExists(contractPath) {
		return failuref("Contract file not found: %s", contractPath)
	}
	if !commandExists("aderyn") {
		return failuref("Aderyn is not installed. Install it with Cyfrinup: %s", installInstructions["aderyn"])
	}

	run, err := runCommand(ctx, aderynTimeout, "aderyn", contractPath)
	if err != nil {
		return failuref("Aderyn analysis failed: %v", err)
	}
	if run.TimedOut {
		return failuref("Aderyn analysis timed out")
	}
	if run.ExitCode != 0 {
		return failuref("Aderyn analysis failed: %s", execFailureMessage("Aderyn", run))
	}

	return successResult(run.Stdout, nil)
}
