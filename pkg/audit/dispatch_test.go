package audit

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExecuteUnknownAction(t *testing.T) {
	result := Execute(context.Background(), "nonexistent_tool", nil)
	if result.Success {
		t.Fatalf("expected failure for unknown action")
	}
	if result.Error != "Unknown tool: nonexistent_tool" {
		t.Fatalf("unexpected error: %q", result.Error)
	}
}

func TestExecuteRequiresContractPath(t *testing.T) {
	actions := []string{ActionSlither, ActionAderyn, ActionMythril, ActionPatterns, ActionReadContract}
	bags := map[string]map[string]interface{}{
		"nil args":        nil,
		"empty args":      {},
		"whitespace path": {"contract_path": "   "},
		"wrong type":      {"contract_path": 42},
	}

	for _, action := range actions {
		for name, args := range bags {
			t.Run(action+"/"+name, func(t *testing.T) {
				result := Execute(context.Background(), action, args)
				if result.Success {
					t.Fatalf("expected failure")
				}
				if result.Error != "Missing required argument: contract_path" {
					t.Fatalf("unexpected error: %q", result.Error)
				}
			})
		}
	}
}

func TestExecuteMissingContractFile(t *testing.T) {
	actions := []string{ActionSlither, ActionAderyn, ActionMythril, ActionPatterns}
	for _, action := range actions {
		t.Run(action, func(t *testing.T) {
			result := Execute(context.Background(), action, map[string]interface{}{
				"contract_path": "/no/such/Contract.sol",
			})
			if result.Success {
				t.Fatalf("expected failure")
			}
			if result.Error != "Contract file not found: /no/such/Contract.sol" {
				t.Fatalf("unexpected error: %q", result.Error)
			}
		})
	}
}

func TestExecutePatternAnalysisEndToEnd(t *testing.T) {
	path := writeContract(t, "pragma solidity ^0.8.0;\ncontract C { function f() external { selfdestruct(payable(msg.sender)); } }\n")

	result := Execute(context.Background(), ActionPatterns, map[string]interface{}{
		"contract_path": path,
	})
	if !result.Success {
		t.Fatalf("expected success, got error: %s", result.Error)
	}
	if !strings.Contains(result.Output, "selfdestruct") {
		t.Fatalf("output missing finding:\n%s", result.Output)
	}
}

func TestExecuteReadContract(t *testing.T) {
	const code = "pragma solidity ^0.8.0;\ncontract C {}\n"
	path := writeContract(t, code)

	result := Execute(context.Background(), ActionReadContract, map[string]interface{}{
		"contract_path": path,
	})
	if !result.Success {
		t.Fatalf("expected success, got error: %s", result.Error)
	}
	if result.Output != code {
		t.Fatalf("content round-trip failed:\n%q", result.Output)
	}
}

func TestReadContractRejectsBinaryContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blob.sol")
	if err := os.WriteFile(path, []byte{0xff, 0xfe, 0x00, 0x80}, 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	result := ReadContract(path)
	if result.Success {
		t.Fatalf("expected failure for non-UTF-8 content")
	}
	if !strings.HasPrefix(result.Error, "Failed to read contract:") {
		t.Fatalf("unexpected error: %q", result.Error)
	}
}

func TestIntArgAcceptsJSONNumbers(t *testing.T) {
	tests := []struct {
		name string
		args map[string]interface{}
		want int
	}{
		{"float64 from JSON", map[string]interface{}{"execution_timeout": float64(42)}, 42},
		{"plain int", map[string]interface{}{"execution_timeout": 90}, 90},
		{"absent", map[string]interface{}{}, 0},
		{"wrong type", map[string]interface{}{"execution_timeout": "soon"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := intArg(tt.args, "execution_timeout"); got != tt.want {
				t.Fatalf("intArg = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRenderText(t *testing.T) {
	tests := []struct {
		name   string
		result Result
		want   string
	}{
		{"failure uses error", Result{Success: false, Error: "boom"}, "boom"},
		{"failure without message", Result{Success: false}, "Unknown error occurred"},
		{"output wins", Result{Success: true, Output: "report", Findings: []interface{}{"x"}}, "report"},
		{"empty success", Result{Success: true}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RenderText(tt.result); got != tt.want {
				t.Fatalf("RenderText = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderTextFindingsFallback(t *testing.T) {
	got := RenderText(Result{Success: true, Findings: []interface{}{"first", "second"}})
	if !strings.Contains(got, `"first"`) || !strings.Contains(got, `"second"`) {
		t.Fatalf("findings JSON missing entries: %q", got)
	}
}
