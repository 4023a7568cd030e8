package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mkreport/mkreport/internal/archive"
	"github.com/mkreport/mkreport/internal/config"
	"github.com/mkreport/mkreport/internal/log"
	"github.com/mkreport/mkreport/internal/server"
)

// NewServeCmd creates the serve command.
func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve archived renders for local preview",
		Long: `Serve starts a local HTTP server over the archive.

Endpoints:
  GET /reports       List archived renders as JSON
  GET /reports/{id}  Serve a stored document with its native content type
  GET /healthz       Liveness check

HTML renders open directly in a browser. The server runs until
interrupted and shuts down gracefully.

Examples:
  # Serve on the default address
  mkreport serve

  # Serve on a custom address
  mkreport serve --addr localhost:9000`,
		Args: cobra.NoArgs,
		RunE: runServeCmd,
	}

	cmd.Flags().String("addr", config.DefaultServeAddr,
		"Listen address in host:port format")
	cmd.Flags().String("archive-dir", config.XDGDataDir(),
		"Directory holding the archive database")

	return cmd
}

// runServeCmd executes the serve command.
func runServeCmd(cmd *cobra.Command, _ []string) error {
	addr, err := cmd.Flags().GetString("addr")
	if err != nil {
		return err
	}
	archiveDir, err := cmd.Flags().GetString("archive-dir")
	if err != nil {
		return err
	}

	logger := log.NewLogger(os.Stderr, getVerboseFlag(cmd))
	slog.SetDefault(logger)

	store, err := archive.Open(archiveDir, archive.DefaultOptions())
	if err != nil {
		return fmt.Errorf("failed to open archive: %w", err)
	}
	defer func() { _ = store.Close() }()

	return server.New(logger, store, addr).Start()
}
