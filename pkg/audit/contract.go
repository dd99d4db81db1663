package audit

import (
	"os"
	"strings"
	"unicode/utf8"
)

// ReadContract returns the raw source of a smart contract file.
func ReadContract(contractPath string) Result {
	if strings.TrimSpace(contractPath) == "" {
		return missingContractPath()
	}
	if !fileExists(contractPath) {
		return failuref("Contract file not found: %s", contractPath)
	}

	data, err := os.ReadFile(contractPath)
	if err != nil {
		return failuref("Failed to read contract: %v", err)
	}
	if !utf8.Valid(data) {
		return failuref("Failed to read contract: %s is not valid UTF-8 text", contractPath)
	}
	return successResult(string(data), nil)
}
