package audit

import (
	"context"
	"encoding/json"
	"strings"
)

// Per-action request structures, decoded from the untyped argument bag before
// any filesystem or process work happens.
type slitherRequest struct {
	ContractPath     string
	Detectors        string
	ExcludeDetectors string
}

type mythrilRequest struct {
	ContractPath     string
	ExecutionTimeout int
}

type contractRequest struct {
	ContractPath string
}

func stringArg(args map[string]interface{}, key string) string {
	v, _ := args[key].(string)
	return v
}

// intArg reads a numeric argument. JSON numbers decode as float64, but plain
// ints are accepted too for direct callers.
func intArg(args map[string]interface{}, key string) int {
	switch v := args[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	default:
		return 0
	}
}

func parseContractRequest(args map[string]interface{}) (contractRequest, bool) {
	path := strings.TrimSpace(stringArg(args, "contract_path"))
	return contractRequest{ContractPath: path}, path != ""
}

func parseSlitherRequest(args map[string]interface{}) (slitherRequest, bool) {
	base, ok := parseContractRequest(args)
	return slitherRequest{
		ContractPath:     base.ContractPath,
		Detectors:        stringArg(args, "detectors"),
		ExcludeDetectors: stringArg(args, "exclude_detectors"),
	}, ok
}

func parseMythrilRequest(args map[string]interface{}) (mythrilRequest, bool) {
	base, ok := parseContractRequest(args)
	return mythrilRequest{
		ContractPath:     base.ContractPath,
		ExecutionTimeout: intArg(args, "execution_timeout"),
	}, ok
}

// Execute maps an action name and argument bag onto one audit operation.
// Required arguments are validated here, before any handler touches the
// filesystem or spawns a process. Every outcome is a terminal Result; nothing
// escapes as an error.
func Execute(ctx context.Context, name string, args map[string]interface{}) Result {
	if args == nil {
		args = map[string]interface{}{}
	}

	switch name {
	case ActionSlither:
		req, ok := parseSlitherRequest(args)
		if !ok {
			return missingContractPath()
		}
		return RunSlither(ctx, req.ContractPath, req.Detectors, req.ExcludeDetectors)
	case ActionAderyn:
		req, ok := parseContractRequest(args)
		if !ok {
			return missingContractPath()
		}
		return RunAderyn(ctx, req.ContractPath)
	case ActionMythril:
		req, ok := parseMythrilRequest(args)
		if !ok {
			return missingContractPath()
		}
		return RunMythril(ctx, req.ContractPath, req.ExecutionTimeout)
	case ActionPatterns:
		req, ok := parseContractRequest(args)
		if !ok {
			return missingContractPath()
		}
		return AnalyzePatterns(req.ContractPath)
	case ActionReadContract:
		req, ok := parseContractRequest(args)
		if !ok {
			return missingContractPath()
		}
		return ReadContract(req.ContractPath)
	case ActionCheckTools:
		return CheckTools(ctx)
	default:
		return failuref("Unknown tool: %s", name)
	}
}

// RenderText flattens a result into the single text payload handed back to
// the transport: the error message on failure, otherwise the tool output,
// otherwise the findings as indented JSON.
func RenderText(res Result) string {
	if !res.Success {
		if res.Error != "" {
			return res.Error
		}
		return "Unknown error occurred"
	}
	if res.Output != "" {
		return res.Output
	}
	if len(res.Findings) > 0 {
		if b, err := json.MarshalIndent(res.Findings, "", "  "); err == nil {
			return string(b)
		}
	}
	return ""
}
