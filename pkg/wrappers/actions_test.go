package wrappers

import (
	"context"
	"strings"
	"testing"

	"github.com/user/scaudit-mcp/pkg/audit"
)

func TestAllCoversCatalog(t *testing.T) {
	tools := All()
	defs := audit.Actions()
	if len(tools) != len(defs) {
		t.Fatalf("expected %d tools, got %d", len(defs), len(tools))
	}
	for i, tool := range tools {
		if tool.Name() != defs[i].Name {
			t.Fatalf("tool %d = %s, want %s", i, tool.Name(), defs[i].Name)
		}
		if tool.Description() == "" {
			t.Fatalf("%s has no description", tool.Name())
		}
	}
}

func TestNormalizeArgs(t *testing.T) {
	tests := []struct {
		name string
		args map[string]interface{}
		want string
	}{
		{"nil bag", nil, ""},
		{"structured args untouched", map[string]interface{}{"contract_path": "a.sol", "args": "b.sol"}, "a.sol"},
		{"plain path", map[string]interface{}{"args": "contracts/Token.sol"}, "contracts/Token.sol"},
		{"skips flags", map[string]interface{}{"args": "--json contracts/Token.sol"}, "contracts/Token.sol"},
		{"empty string", map[string]interface{}{"args": ""}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeArgs(tt.args)
			path, _ := got["contract_path"].(string)
			if path != tt.want {
				t.Fatalf("contract_path = %q, want %q", path, tt.want)
			}
		})
	}
}

func TestExecuteReturnsActionErrorsAsText(t *testing.T) {
	w := &ActionWrapper{Def: audit.Actions()[0]}
	out, err := w.Execute(context.Background(), map[string]interface{}{}, nil)
	if err != nil {
		t.Fatalf("action failures must come back as text, got error: %v", err)
	}
	if !strings.Contains(out, "Missing required argument") {
		t.Fatalf("unexpected output: %q", out)
	}
}
