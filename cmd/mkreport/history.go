package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/mkreport/mkreport/internal/archive"
	"github.com/mkreport/mkreport/internal/config"
)

// NewHistoryCmd creates the history command.
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List archived renders",
		Long: `History lists documents stored in the local archive, newest first.

Each entry shows the render ID, report title, format, size, and
creation time. Use 'mkreport show <id>' to print a stored document.

Examples:
  # List all archived renders
  mkreport history

  # List the five most recent renders
  mkreport history --limit 5

  # Delete an archived render
  mkreport history --delete 2f1c9a30-...`,
		Args: cobra.NoArgs,
		RunE: runHistoryCmd,
	}

	cmd.Flags().IntP("limit", "n", 0,
		"Maximum number of renders to list (0 lists all)")
	cmd.Flags().String("delete", "",
		"Delete the archived render with this ID")
	cmd.Flags().String("archive-dir", config.XDGDataDir(),
		"Directory holding the archive database")

	return cmd
}

// runHistoryCmd executes the history command.
func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	archiveDir, err := cmd.Flags().GetString("archive-dir")
	if err != nil {
		return err
	}

	store, err := archive.Open(archiveDir, archive.Options{EnableWAL: true})
	if err != nil {
		return fmt.Errorf("no archive found (render with --archive first): %w", err)
	}
	defer func() { _ = store.Close() }()

	if deleteID, err := cmd.Flags().GetString("delete"); err != nil {
		return err
	} else if deleteID != "" {
		if err := store.DeleteRender(cmd.Context(), deleteID); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted render %s\n", deleteID)
		return nil
	}

	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return err
	}

	renders, err := store.ListRenders(cmd.Context(), limit)
	if err != nil {
		return err
	}

	if len(renders) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No archived renders.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tFORMAT\tSIZE\tCREATED")
	for _, render := range renders {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
			render.ID,
			render.Title,
			render.Format,
			render.Size,
			render.CreatedAt.UTC().Format(time.RFC3339),
		)
	}
	return w.Flush()
}
