package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkreport/mkreport/internal/archive"
	"github.com/mkreport/mkreport/internal/config"
)

// NewShowCmd creates the show command.
func NewShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <render-id>",
		Short: "Print an archived render",
		Long: `Show prints the full content of an archived render to stdout,
or writes it to a file with --output.

Use 'mkreport history' to list render IDs.

Examples:
  # Print an archived document
  mkreport show 2f1c9a30-...

  # Restore an archived document to a file
  mkreport show -o report.html 2f1c9a30-...`,
		Args: cobra.ExactArgs(1),
		RunE: runShowCmd,
	}

	cmd.Flags().StringP("output", "o", "",
		"Write the document to this path instead of stdout")
	cmd.Flags().String("archive-dir", config.XDGDataDir(),
		"Directory holding the archive database")

	return cmd
}

// runShowCmd executes the show command.
func runShowCmd(cmd *cobra.Command, args []string) error {
	archiveDir, err := cmd.Flags().GetString("archive-dir")
	if err != nil {
		return err
	}

	store, err := archive.Open(archiveDir, archive.Options{EnableWAL: true})
	if err != nil {
		return fmt.Errorf("no archive found (render with --archive first): %w", err)
	}
	defer func() { _ = store.Close() }()

	render, err := store.GetRender(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}
	if output != "" {
		return writeDocument(output, render.Content)
	}

	_, err = fmt.Fprint(cmd.OutOrStdout(), render.Content)
	return err
}
