package audit

import (
	"context"
	"encoding/json"
	"strings"
	"time"
)

const slitherTimeout = 300 * time.Second

// RunSlither runs Slither static analysis on a smart contract file. The
// optional detectors and excludeDetectors values are comma-separated detector
// lists passed through to the binary.
func RunSlither(ctx context.Context, contractPath, detectors, excludeDetectors string) Result {
	if strings.TrimSpace(contractPath) == "" {
		return missingContractPath()
	}
	if !fileExists(contractPath) {
		return failuref("Contract file not found: %s", contractPath)
	}
	if !commandExists("slither") {
		return failuref("Slither is not installed. Please install it with: %s", installInstructions["slither"])
	}

	args := []string{contractPath, "--json", "-"}
	if detectors != "" {
		args = append(args, "--detect", detectors)
	}
	if excludeDetectors != "" {
		args = append(args, "--exclude", excludeDetectors)
	}

	run, err := runCommand(ctx, slitherTimeout, "slither", args...)
	if err != nil {
		return failuref("Slither analysis failed: %v", err)
	}
	if run.TimedOut {
		return failuref("Slither analysis timed out")
	}
	if run.ExitCode != 0 {
		return failuref("Slither analysis failed: %s", execFailureMessage("Slither", run))
	}

	return successResult(run.Stdout, slitherFindings(run.Stdout))
}

// slitherFindings extracts the results.detectors sequence from Slither's JSON
// output. Output that does not decode is not an error; the raw text is still
// returned to the caller and findings stay empty.
func slitherFindings(stdout string) []interface{} {
	var payload struct {
		Results struct {
			Detectors []interface{} `json:"detectors"`
		} `json:"results"`
	}
	if err := json.Unmarshal([]byte(stdout), &payload); err != nil {
		return nil
	}
	return payload.Results.Detectors
}
