package audit

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

const mythrilTimeout = 600 * time.Second

// RunMythril runs Mythril symbolic execution on a smart contract file.
// executionTimeout, when positive, is forwarded to the binary as its own
// per-analysis budget in seconds; the wall-clock timeout here applies
// regardless.
func RunMythril(ctx context.Context, contractPath string, executionTimeout int) Result {
	if strings.TrimSpace(contractPath) == "" {
		return missingContractPath()
	}
	if !fileExists(contractPath) {
		return failuref("Contract file not found: %s", contractPath)
	}
	if !commandExists("myth") {
		return failuref("Mythril is not installed. Please install it with: %s", installInstructions["mythril"])
	}

	args := []string{"analyze", contractPath, "-o", "json"}
	if executionTimeout > 0 {
		args = append(args, "--execution-timeout", strconv.Itoa(executionTimeout))
	}

	run, err := runCommand(ctx, mythrilTimeout, "myth", args...)
	if err != nil {
		return failuref("Mythril analysis failed: %v", err)
	}
	if run.TimedOut {
		return failuref("Mythril analysis timed out")
	}
	if run.ExitCode != 0 {
		return failuref("Mythril analysis failed: %s", execFailureMessage("Mythril", run))
	}

	return successResult(run.Stdout, mythrilFindings(run.Stdout))
}

// mythrilFindings extracts the issues sequence from Mythril's JSON output,
// tolerating non-JSON output the same way slitherFindings does.
func mythrilFindings(stdout string) []interface{} {
	var payload struct {
		Issues []interface{} `json:"issues"`
	}
	if err := json.Unmarshal([]byte(stdout), &payload); err != nil {
		return nil
	}
	return payload.Issues
}
