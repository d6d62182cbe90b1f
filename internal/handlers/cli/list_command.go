package cli

import (
	"fmt"
	"os"

	"github.com/AntonioJCosta/muxmark/internal/core/ports"
	"github.com/AntonioJCosta/muxmark/internal/handlers/ui"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewListCommand creates the 'list' subcommand.
func NewListCommand(bookmarkService ports.BookmarkService) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all bookmarks.",
		Long:    `Displays every stored bookmark with its canonical directory path.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runListCmd(cmd, args, bookmarkService)
		},
	}
	return cmd
}

// runListCmd contains the core logic for the 'list' command.
func runListCmd(
	_ *cobra.Command,
	_ []string,
	bookmarkService ports.BookmarkService,
) error {
	bookmarks, err := bookmarkService.List()
	if err != nil {
		return fmt.Errorf("could not list bookmarks: %w", err)
	}

	if len(bookmarks) == 0 {
		fmt.Println(ui.InfoColor("No bookmarks yet. Use 'muxmark add <alias> [path]' to create one."))
		return nil
	}

	fmt.Println(ui.HeaderColor("Bookmarks:"))

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Alias", "Directory"})
	table.SetBorder(true)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, b := range bookmarks {
		table.Append([]string{b.Alias, b.Path})
	}
	table.Render()
	return nil
}
