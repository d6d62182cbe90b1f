package cli

import (
	"fmt"

	"github.com/AntonioJCosta/muxmark/internal/core/ports"
	"github.com/AntonioJCosta/muxmark/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// NewRemoveCommand creates the 'remove' subcommand.
func NewRemoveCommand(bookmarkService ports.BookmarkService) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "remove <alias>",
		Aliases: []string{"rm"},
		Short:   "Delete a bookmark.",
		Long: `Deletes the bookmark for the given alias. The tmux session the alias
pointed at, if any, is left running.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemoveCmd(cmd, args, bookmarkService)
		},
	}
	return cmd
}

func runRemoveCmd(
	_ *cobra.Command,
	args []string,
	bookmarkService ports.BookmarkService,
) error {
	if err := bookmarkService.Remove(args[0]); err != nil {
		return fmt.Errorf("could not remove bookmark: %w", err)
	}
	fmt.Println(ui.SuccessColor(fmt.Sprintf("Removed bookmark '%s'.", args[0])))
	return nil
}
