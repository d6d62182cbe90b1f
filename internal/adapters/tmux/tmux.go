/*
Package tmux drives the tmux command-line interface behind the
ports.Multiplexer interface. All calls go through a CommandExecutor so tests
can fake the binary.
*/
package tmux

import (
	"fmt"
	"os"
	"strings"

	"github.com/AntonioJCosta/muxmark/internal/core/ports"
)

const defaultCommand = "tmux"

// Multiplexer implements ports.Multiplexer by invoking the tmux binary.
type Multiplexer struct {
	executor ports.CommandExecutor
	command  string
}

// NewMultiplexer creates a tmux-backed Multiplexer. command is the tmux
// binary to invoke; empty means "tmux" from PATH.
// It panics if the executor is nil.
func NewMultiplexer(executor ports.CommandExecutor, command string) ports.Multiplexer {
	if executor == nil {
		panic("executor cannot be nil")
	}
	if command == "" {
		command = defaultCommand
	}
	return &Multiplexer{executor: executor, command: command}
}

// ListSessions returns the names of all live tmux sessions. tmux exits
// non-zero when its server is not running at all; that counts as an empty
// list here, not a failure.
func (m *Multiplexer) ListSessions() ([]string, error) {
	stdout, stderr, err := m.executor.Execute(m.command, "list-sessions", "-F", "#{session_name}")
	if err != nil {
		if strings.Contains(stderr, "no server running") || strings.Contains(stderr, "error connecting to") {
			return nil, nil
		}
		return nil, fmt.Errorf("tmux list-sessions failed: %w", err)
	}

	var names []string
	for _, line := range strings.Split(stdout, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			names = append(names, line)
		}
	}
	return names, nil
}

// CreateSession creates a detached session rooted at workingDir.
func (m *Multiplexer) CreateSession(name, workingDir string) error {
	_, _, err := m.executor.Execute(m.command, "new-session", "-d", "-s", name, "-c", workingDir)
	if err != nil {
		return fmt.Errorf("tmux new-session failed: %w", err)
	}
	return nil
}

// AttachSession hands the terminal to tmux. Inside an existing tmux client
// a nested attach-session is refused, so the current client is switched to
// the target session instead.
func (m *Multiplexer) AttachSession(name string) error {
	if os.Getenv("TMUX") != "" {
		if _, _, err := m.executor.Execute(m.command, "switch-client", "-t", name); err != nil {
			return fmt.Errorf("tmux switch-client failed: %w", err)
		}
		return nil
	}
	if err := m.executor.ExecuteInteractive(m.command, "attach-session", "-t", name); err != nil {
		return fmt.Errorf("tmux attach-session failed: %w", err)
	}
	return nil
}
