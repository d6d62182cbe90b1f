package cli

import (
	"fmt"

	"github.com/AntonioJCosta/muxmark/internal/core/ports"
	"github.com/spf13/cobra"
)

// NewGoCommand creates the 'go' subcommand.
func NewGoCommand(sessionDirector ports.SessionDirector) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "go <alias>",
		Short: "Attach to the tmux session for a bookmarked directory.",
		Long: `Looks up the alias and attaches to the tmux session rooted at its
directory, creating the session first if none exists. Going to the same
alias twice lands in the same session. Blocks until you detach.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGoCmd(cmd, args, sessionDirector)
		},
	}
	return cmd
}

func runGoCmd(
	_ *cobra.Command,
	args []string,
	sessionDirector ports.SessionDirector,
) error {
	if err := sessionDirector.Go(args[0]); err != nil {
		return fmt.Errorf("could not go to '%s': %w", args[0], err)
	}
	return nil
}
