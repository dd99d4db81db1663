package audit

import (
	"context"
	"encoding/json"
	"strings"
	"time"
)

// auditTools lists every known analyzer with the binary it resolves to,
// in the order they are reported.
var auditTools = []struct {
	Name   string
	Binary string
}{
	{"slither", "slither"},
	{"aderyn", "aderyn"},
	{"mythril", "myth"},
}

var installInstructions = map[string]string{
	"slither": "pip install slither-analyzer",
	"aderyn":  "curl -LsSf https://raw.githubusercontent.com/Cyfrin/up/main/install | bash && CYFRINUP_ONLY_INSTALL=aderyn cyfrinup",
	"mythril": "pip install mythril",
}

// versionCommands lists candidate version subcommands per tool, tried in
// order until one exits zero.
var versionCommands = map[string][][]string{
	"slither": {{"slither", "--version"}},
	"aderyn":  {{"aderyn", "--version"}},
	"mythril": {{"myth", "--version"}, {"myth", "version"}},
}

const versionProbeTimeout = 30 * time.Second

// ToolStatus describes one analyzer's availability. Version stays empty when
// the tool is missing or none of its version commands succeeded.
type ToolStatus struct {
	Installed bool   `json:"installed"`
	Version   string `json:"version,omitempty"`
}

// CheckTools probes every known analyzer and aggregates the results. The
// probe itself never fails: unavailable tools are simply reported missing and
// an unknown version is an explicit state, not an error.
func CheckTools(ctx context.Context) Result {
	details := make(map[string]ToolStatus, len(auditTools))
	available := []string{}
	missing := []string{}

	for _, tool := range auditTools {
		status := ToolStatus{Installed: commandExists(tool.Binary)}
		if status.Installed {
			status.Version = probeVersion(ctx, versionCommands[tool.Name])
			available = append(available, tool.Name)
		} else {
			missing = append(missing, tool.Name)
		}
		details[tool.Name] = status
	}

	payload := map[string]interface{}{
		"available":           available,
		"missing":             missing,
		"toolDetails":         details,
		"installInstructions": installInstructions,
	}
	out, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return failuref("Tool check failed: %v", err)
	}

	return successResult(string(out), []interface{}{details})
}

// probeVersion tries each candidate command and keeps the first line of the
// first zero-exit result, preferring stdout over stderr. Launch faults and
// non-zero exits just move on to the next candidate.
func probeVersion(ctx context.Context, commands [][]string) string {
	for _, command := range commands {
		run, err := runCommand(ctx, versionProbeTimeout, command[0], command[1:]...)
		if err != nil || run.TimedOut || run.ExitCode != 0 {
			continue
		}
		text := strings.TrimSpace(run.Stdout)
		if text == "" {
			text = strings.TrimSpace(run.Stderr)
		}
		if text != "" {
			return strings.TrimSpace(strings.SplitN(text, "\n", 2)[0])
		}
	}
	return ""
}
