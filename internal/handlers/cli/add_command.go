package cli

import (
	"fmt"

	"github.com/AntonioJCosta/muxmark/internal/core/ports"
	"github.com/AntonioJCosta/muxmark/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// NewAddCommand creates the 'add' subcommand.
func NewAddCommand(bookmarkService ports.BookmarkService) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <alias> [path]",
		Short: "Bookmark a directory under a short alias.",
		Long: `Stores an alias pointing at the given directory (default: the current
directory). The path is canonicalized before it is stored. Adding an alias
that already exists overwrites its path.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAddCmd(cmd, args, bookmarkService)
		},
	}
	return cmd
}

func runAddCmd(
	_ *cobra.Command,
	args []string,
	bookmarkService ports.BookmarkService,
) error {
	rawPath := ""
	if len(args) == 2 {
		rawPath = args[1]
	}

	b, err := bookmarkService.Add(args[0], rawPath)
	if err != nil {
		return fmt.Errorf("could not add bookmark: %w", err)
	}

	fmt.Printf("%s %s %s\n",
		ui.SuccessColor(fmt.Sprintf("Bookmarked '%s'", b.Alias)),
		ui.DetailColor("at"),
		ui.PathColor(b.Path))
	return nil
}
