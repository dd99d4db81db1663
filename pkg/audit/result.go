package audit

import "fmt"

// Result is the uniform outcome of one audit operation. Exactly one of Output
// and Error is meaningful: a failed result carries an error message, a
// successful one carries the tool output plus any structured findings.
type Result struct {
	Success  bool          `json:"success"`
	Output   string        `json:"output,omitempty"`
	Error    string        `json:"error,omitempty"`
	Findings []interface{} `json:"findings,omitempty"`
}

func successResult(output string, findings []interface{}) Result {
	return Result{
		Success:  true,
		Output:   output,
		Findings: findings,
	}
}

func failuref(format string, args ...interface{}) Result {
	return Result{
		Success: false,
		Error:   fmt.Sprintf(format, args...),
	}
}

func missingContractPath() Result {
	return failuref("Missing required argument: contract_path")
}
