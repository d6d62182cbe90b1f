package ports

/*
Multiplexer abstracts the terminal multiplexer the tool drives. The real
implementation shells out to the tmux binary; tests replace it with a fake.
*/
type Multiplexer interface {
	// ListSessions returns the names of all live sessions. A multiplexer
	// server that is not running at all yields an empty list, not an error.
	ListSessions() ([]string, error)

	// CreateSession creates a detached session with the given name, its
	// working directory set to workingDir.
	CreateSession(name, workingDir string) error

	// AttachSession takes over the invoking terminal to display the named
	// session. It blocks until the user detaches or the session ends.
	AttachSession(name string) error
}
