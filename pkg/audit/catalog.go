package audit

// Action names exposed across the RPC boundary.
const (
	ActionSlither      = "slither_audit"
	ActionAderyn       = "aderyn_audit"
	ActionMythril      = "mythril_audit"
	ActionPatterns     = "pattern_analysis"
	ActionReadContract = "read_contract"
	ActionCheckTools   = "check_tools"
)

// ActionDefinition describes one callable action: its name, a human-readable
// description, and a JSON-Schema-shaped input contract.
type ActionDefinition struct {
	Name        string
	Description string
	InputSchema map[string]interface{}
}

func contractPathProperty(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": description,
	}
}

// Actions returns the catalog of every action this server exposes.
func Actions() []ActionDefinition {
	return []ActionDefinition{
		{
			Name: ActionSlither,
			Description: "Run Slither static analysis on a smart contract. Slither is a powerful " +
				"Solidity & Vyper static analysis framework that detects vulnerabilities and " +
				"code quality issues.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"contract_path": contractPathProperty("Path to the smart contract file (.sol or .vy)"),
					"detectors": map[string]interface{}{
						"type":        "string",
						"description": "Optional: Comma-separated list of specific detectors to run",
					},
					"exclude_detectors": map[string]interface{}{
						"type":        "string",
						"description": "Optional: Comma-separated list of detectors to exclude",
					},
				},
				"required": []string{"contract_path"},
			},
		},
		{
			Name: ActionAderyn,
			Description: "Run Aderyn static analysis on a smart contract. Aderyn is a Rust-based static " +
				"analyzer for Solidity that focuses on finding common vulnerabilities and code smells.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"contract_path": contractPathProperty("Path to the smart contract file or project root"),
				},
				"required": []string{"contract_path"},
			},
		},
		{
			Name: ActionMythril,
			Description: "Run Mythril symbolic execution analysis on a smart contract. Mythril uses " +
				"symbolic execution to detect security vulnerabilities in Ethereum smart contracts.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"contract_path": contractPathProperty("Path to the smart contract file (.sol)"),
					"execution_timeout": map[string]interface{}{
						"type":        "number",
						"description": "Optional: Maximum execution time in seconds (default: 300)",
					},
				},
				"required": []string{"contract_path"},
			},
		},
		{
			Name: ActionPatterns,
			Description: "Perform basic pattern-based security analysis on a smart contract. Checks for " +
				"common anti-patterns and potential vulnerabilities like reentrancy, tx.origin usage, " +
				"selfdestruct, etc.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"contract_path": contractPathProperty("Path to the smart contract file"),
				},
				"required": []string{"contract_path"},
			},
		},
		{
			Name: ActionReadContract,
			Description: "Read and return the source code of a smart contract file. Useful for reviewing the " +
				"contract before or after analysis.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"contract_path": contractPathProperty("Path to the smart contract file"),
				},
				"required": []string{"contract_path"},
			},
		},
		{
			Name: ActionCheckTools,
			Description: "Check which audit tools are installed and available on the system. Returns a list of " +
				"available and missing tools with installation instructions.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},
	}
}
