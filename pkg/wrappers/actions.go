// Package wrappers adapts the audit actions to the agent's Tool interface so
// an interactive session can drive the same operations the MCP server exposes.
package wrappers

import (
	"context"
	"strings"

	"github.com/user/scaudit-mcp/pkg/adk"
	"github.com/user/scaudit-mcp/pkg/audit"
)

// ActionWrapper exposes one audit action as an agent tool.
type ActionWrapper struct {
	Def audit.ActionDefinition
}

func (w *ActionWrapper) Name() string {
	return w.Def.Name
}

func (w *ActionWrapper) Description() string {
	return w.Def.Description
}

func (w *ActionWrapper) Schema() map[string]interface{} {
	return w.Def.InputSchema
}

func (w *ActionWrapper) Execute(ctx context.Context, args map[string]interface{}, progress func(string)) (string, error) {
	args = normalizeArgs(args)
	if progress != nil {
		progress("Running " + w.Def.Name)
	}
	result := audit.Execute(ctx, w.Def.Name, args)
	return audit.RenderText(result), nil
}

// normalizeArgs handles the simplified 'args' string some providers send
// instead of structured arguments: the first non-flag token is treated as the
// contract path.
func normalizeArgs(args map[string]interface{}) map[string]interface{} {
	if args == nil {
		return map[string]interface{}{}
	}
	if _, ok := args["contract_path"].(string); ok {
		return args
	}
	raw, ok := args["args"].(string)
	if !ok || raw == "" {
		return args
	}
	for _, field := range strings.Fields(raw) {
		if !strings.HasPrefix(field, "-") {
			args["contract_path"] = field
			break
		}
	}
	return args
}

// All returns a wrapper for every action in the catalog.
func All() []adk.Tool {
	defs := audit.Actions()
	tools := make([]adk.Tool, 0, len(defs))
	for _, def := range defs {
		tools = append(tools, &ActionWrapper{Def: def})
	}
	return tools
}
