package audit

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

var (
	versionPragmaPattern = regexp.MustCompile(`pragma solidity\s+[\^]?([\d.]+)`)
	arithmeticPattern    = regexp.MustCompile(`[\+\-\*\/]`)
	callValuePattern     = regexp.MustCompile(`\.call\{value:`)
)

// AnalyzePatterns runs the heuristic checks over a contract's full source.
// Every check is evaluated independently; each one that triggers appends a
// fixed message to the findings in a deterministic order.
func AnalyzePatterns(contractPath string) Result {
	if strings.TrimSpace(contractPath) == "" {
		return missingContractPath()
	}
	if !fileExists(contractPath) {
		return failuref("Contract file not found: %s", contractPath)
	}

	data, err := os.ReadFile(contractPath)
	if err != nil {
		return failuref("Pattern analysis failed: %v", err)
	}
	if !utf8.Valid(data) {
		return failuref("Pattern analysis failed: %s is not valid UTF-8 text", contractPath)
	}
	content := string(data)

	var findings []interface{}

	if strings.Contains(content, "selfdestruct") {
		findings = append(findings, "WARNING: Contract contains selfdestruct - potential security risk")
	}
	if strings.Contains(content, "delegatecall") {
		findings = append(findings, "WARNING: Contract uses delegatecall - ensure proper access control")
	}
	if strings.Contains(content, "tx.origin") {
		findings = append(findings, "WARNING: Contract uses tx.origin - vulnerable to phishing attacks")
	}
	if !strings.Contains(content, "SafeMath") && arithmeticPattern.MatchString(content) && !hasCheckedArithmetic(content) {
		findings = append(findings, "WARNING: Consider using SafeMath library or upgrading to Solidity 0.8+ for arithmetic overflow protection")
	}
	if strings.Contains(content, "block.timestamp") {
		findings = append(findings, "INFO: Contract uses block.timestamp - be aware of miner manipulation")
	}
	if callValuePattern.MatchString(content) {
		findings = append(findings, "WARNING: Potential reentrancy risk - ensure checks-effects-interactions pattern")
	}

	return successResult(renderPatternReport(findings), findings)
}

// hasCheckedArithmetic reports whether the version pragma pins a Solidity
// release with built-in overflow checks (0.8 and up). A missing or malformed
// pragma counts as unchecked arithmetic.
func hasCheckedArithmetic(content string) bool {
	m := versionPragmaPattern.FindStringSubmatch(content)
	if m == nil {
		return false
	}
	parts := strings.Split(m[1], ".")
	if len(parts) < 2 {
		return false
	}
	major, err := strconv.Atoi(parts[0])
	if err != nil {
		return false
	}
	minor, err := strconv.Atoi(parts[1])
	if err != nil {
		return false
	}
	return major == 0 && minor >= 8
}

func renderPatternReport(findings []interface{}) string {
	if len(findings) == 0 {
		return "No security issues found in pattern analysis"
	}

	lines := []string{"Pattern Analysis Results:", ""}
	for _, f := range findings {
		lines = append(lines, fmt.Sprint(f))
	}
	lines = append(lines, "", fmt.Sprintf("Total: %d potential issues found", len(findings)))
	return strings.Join(lines, "\n")
}
