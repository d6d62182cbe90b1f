package cli

import (
	"fmt"

	"github.com/AntonioJCosta/muxmark/internal/core/ports"
	"github.com/spf13/cobra"
)

// NewShowCommand creates the 'show' subcommand.
func NewShowCommand(bookmarkService ports.BookmarkService) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <alias>",
		Short: "Print the directory a bookmark points at.",
		Long: `Prints the stored canonical path for the alias, nothing else, so the
output can be used in command substitution, e.g. cd "$(muxmark show proj)".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShowCmd(cmd, args, bookmarkService)
		},
	}
	return cmd
}

func runShowCmd(
	_ *cobra.Command,
	args []string,
	bookmarkService ports.BookmarkService,
) error {
	b, err := bookmarkService.Get(args[0])
	if err != nil {
		return fmt.Errorf("could not show bookmark: %w", err)
	}
	// Plain output on purpose: no color, path only.
	fmt.Println(b.Path)
	return nil
}
