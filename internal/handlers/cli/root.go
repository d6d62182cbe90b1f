package cli

import (
	"fmt"

	"github.com/AntonioJCosta/muxmark/internal/core/ports"
	"github.com/spf13/cobra"
)

var rootCmd *cobra.Command

func NewRootCommand(
	version string,
	bookmarkService ports.BookmarkService,
	sessionDirector ports.SessionDirector,
) *cobra.Command {
	rootCmd = &cobra.Command{
		Use:   "muxmark",
		Short: "muxmark bookmarks directories and drops you into tmux sessions rooted at them.",
		Long: `muxmark keeps a small store of alias-to-directory bookmarks.
'go <alias>' attaches to the tmux session for that directory,
creating the session first if none exists yet.`,
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch cmd.Name() {
			case "add", "remove", "list", "show":
				if bookmarkService == nil {
					return fmt.Errorf("bookmark service not initialized for command %s", cmd.Name())
				}
			case "go":
				if sessionDirector == nil {
					return fmt.Errorf("session director not initialized for command %s", cmd.Name())
				}
			}
			return nil
		},
	}

	rootCmd.AddCommand(NewAddCommand(bookmarkService))
	rootCmd.AddCommand(NewRemoveCommand(bookmarkService))
	rootCmd.AddCommand(NewGoCommand(sessionDirector))
	rootCmd.AddCommand(NewListCommand(bookmarkService))
	rootCmd.AddCommand(NewShowCommand(bookmarkService))

	return rootCmd
}
