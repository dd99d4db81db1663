package audit

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"
)

// commandExists reports whether a binary is resolvable on the executable
// search path.
func commandExists(binary string) bool {
	_, err := exec.LookPath(binary)
	return err == nil
}

// fileExists reports whether path names an existing regular file.
func fileExists(path string) bool {
	st, err := os.Stat(path)
	return err == nil && st.Mode().IsRegular()
}

// execResult carries the raw outcome of one subprocess run.
type execResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
	TimedOut bool
}

// execWaitDelay bounds how long Wait keeps reading the output pipes after the
// context is cancelled. The analyzers fork helpers (solc, workers) that
// inherit those pipes and outlive the killed parent; without the delay a hung
// descendant stalls Run past the deadline.
const execWaitDelay = time.Second

// runCommand executes a binary synchronously under a hard wall-clock timeout.
// Stdout and stderr are captured separately, never streamed. When the deadline
// passes the process is killed and no partial output is retained. A non-zero
// exit is reported through ExitCode; only launch faults surface as errors.
func runCommand(ctx context.Context, timeout time.Duration, binary string, args ...string) (execResult, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, binary, args...)
	cmd.WaitDelay = execWaitDelay
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return execResult{TimedOut: true}, nil
	}

	res := execResult{Stdout: stdout.String(), Stderr: stderr.String()}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
			return res, nil
		}
		return res, err
	}
	return res, nil
}

// execFailureMessage derives the error text for a non-zero exit: trimmed
// stderr, then trimmed stdout, then a generic exit-code message.
func execFailureMessage(tool string, run execResult) string {
	msg := strings.TrimSpace(run.Stderr)
	if msg == "" {
		msg = strings.TrimSpace(run.Stdout)
	}
	if msg == "" {
		msg = fmt.Sprintf("%s exited with code %d", tool, run.ExitCode)
	}
	return msg
}
