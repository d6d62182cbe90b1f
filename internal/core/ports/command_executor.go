package ports

// CommandExecutor defines an interface for running external commands.
type CommandExecutor interface {
	// Execute runs the command with the given arguments and returns its
	// captured stdout and stderr.
	Execute(name string, args ...string) (stdout string, stderr string, err error)

	// ExecuteInteractive runs the command wired to the invoking terminal's
	// stdin/stdout/stderr and blocks until it exits.
	ExecuteInteractive(name string, args ...string) error
}
