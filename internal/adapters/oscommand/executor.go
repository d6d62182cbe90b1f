package oscommand

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/AntonioJCosta/muxmark/internal/core/ports"
)

// OSCommandExecutor implements the CommandExecutor interface using os/exec.
type OSCommandExecutor struct{}

// NewOSCommandExecutor creates a new OSCommandExecutor.
func NewOSCommandExecutor() ports.CommandExecutor {
	return &OSCommandExecutor{}
}

// Execute runs the given command and returns its captured stdout, stderr,
// and any error.
func (e *OSCommandExecutor) Execute(name string, args ...string) (string, string, error) {
	cmd := exec.Command(name, args...)
	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	err := cmd.Run()
	stdout := outBuf.String()
	stderr := errBuf.String()

	if err != nil {
		// Include stderr in the error message for better diagnostics.
		return stdout, stderr, fmt.Errorf("executing '%s': %w. Stderr: %s", name, err, strings.TrimSpace(stderr))
	}
	return stdout, stderr, nil
}

// ExecuteInteractive runs the given command wired to the invoking terminal
// and blocks until it exits. Used for terminal-takeover calls like attach.
func (e *OSCommandExecutor) ExecuteInteractive(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("executing '%s' interactively: %w", name, err)
	}
	return nil
}
