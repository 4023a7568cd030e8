package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/mkreport/mkreport/internal/archive"
	"github.com/mkreport/mkreport/internal/config"
	"github.com/mkreport/mkreport/internal/log"
	"github.com/mkreport/mkreport/internal/render"
)

// defaultRenderWorkers is the number of definitions rendered concurrently
// when multiple files are given.
const defaultRenderWorkers = 4

// NewRenderCmd creates the render command.
func NewRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render <definition.yml> [definition.yml...]",
		Short: "Render report definitions into documents",
		Long: `Render loads YAML report definitions, validates them, and renders
each one into a document.

With a single definition the document is written to stdout, or to the
path given with --output. With multiple definitions each document is
written next to its definition file, named after it.

Examples:
  # Render to stdout as HTML
  mkreport render report.yml

  # Render to a file as Markdown
  mkreport render --format markdown -o report.md report.yml

  # Render several definitions concurrently
  mkreport render q1.yml q2.yml q3.yml

  # Render with a timestamp footer and archive the result
  mkreport render --timestamp --archive report.yml`,
		Args: cobra.MinimumNArgs(1),
		RunE: runRenderCmd,
	}

	cmd.Flags().StringP("format", "F", config.DefaultFormat,
		"Output format: html, markdown, or json")
	cmd.Flags().StringP("output", "o", "",
		"Write the document to this path (single definition only)")
	cmd.Flags().BoolP("archive", "a", false,
		"Store the rendered document in the local archive")
	cmd.Flags().String("archive-dir", config.XDGDataDir(),
		"Directory holding the archive database")
	cmd.Flags().Bool("timestamp", false,
		"Include the generation time in the document")

	return cmd
}

// runRenderCmd executes the render command.
func runRenderCmd(cmd *cobra.Command, args []string) error {
	settings, err := buildSettings(cmd)
	if err != nil {
		return err
	}
	if err := settings.Validate(); err != nil {
		return fmt.Errorf("settings error: %w", err)
	}
	if settings.OutputPath != "" && len(args) > 1 {
		return fmt.Errorf("--output cannot be used with multiple definitions")
	}

	logger := log.NewLogger(os.Stderr, settings.Verbose)
	slog.SetDefault(logger)

	timestamp, err := cmd.Flags().GetBool("timestamp")
	if err != nil {
		return err
	}

	engine, err := newEngine(settings.Format, timestamp)
	if err != nil {
		return err
	}

	var store *archive.Store
	if settings.Archive {
		store, err = archive.Open(settings.ArchiveDir, archive.DefaultOptions())
		if err != nil {
			return fmt.Errorf("failed to open archive: %w", err)
		}
		defer func() { _ = store.Close() }()
	}

	if len(args) == 1 {
		return renderOne(cmd, engine, store, settings, args[0])
	}
	return renderMany(cmd.Context(), logger, engine, store, settings, args)
}

// renderOne renders a single definition to stdout or the output path.
func renderOne(cmd *cobra.Command, engine render.Engine, store *archive.Store, settings *config.Settings, path string) error {
	title, doc, err := renderFile(engine, path)
	if err != nil {
		return err
	}

	if store != nil {
		saved, err := store.SaveRender(cmd.Context(), title, settings.Format, doc)
		if err != nil {
			return err
		}
		slog.Debug("archived render", "id", saved.ID, "sha256", saved.SHA256)
	}

	if settings.OutputPath == "" {
		_, err := fmt.Fprint(cmd.OutOrStdout(), doc)
		return err
	}
	return writeDocument(settings.OutputPath, doc)
}

// renderMany renders definitions concurrently, writing each document
// next to its definition file.
func renderMany(ctx context.Context, logger *slog.Logger, engine render.Engine, store *archive.Store, settings *config.Settings, paths []string) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(defaultRenderWorkers)

	for _, path := range paths {
		path := path
		g.Go(func() error {
			title, doc, err := renderFile(engine, path)
			if err != nil {
				return err
			}

			if store != nil {
				if _, err := store.SaveRender(ctx, title, settings.Format, doc); err != nil {
					return err
				}
			}

			outPath := outputPath(path, settings.Format)
			if err := writeDocument(outPath, doc); err != nil {
				return err
			}
			logger.Info("rendered definition", "definition", path, "output", outPath)
			return nil
		})
	}

	return g.Wait()
}

// renderFile loads, builds, and renders one definition file.
// It returns the report title alongside the rendered document.
func renderFile(engine render.Engine, path string) (title, doc string, err error) {
	def, err := config.LoadDefinition(path)
	if err != nil {
		return "", "", fmt.Errorf("%s: %w", path, err)
	}

	report, err := def.Build()
	if err != nil {
		return "", "", fmt.Errorf("%s: %w", path, err)
	}

	doc, err = engine.Render(report)
	if err != nil {
		return "", "", fmt.Errorf("%s: %w", path, err)
	}
	return report.Title(), doc, nil
}

// buildSettings creates Settings from cobra command flags.
func buildSettings(cmd *cobra.Command) (*config.Settings, error) {
	settings := config.NewSettings()

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return nil, err
	}
	settings.Format = format

	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}
	settings.OutputPath = output

	doArchive, err := cmd.Flags().GetBool("archive")
	if err != nil {
		return nil, err
	}
	settings.Archive = doArchive

	archiveDir, err := cmd.Flags().GetString("archive-dir")
	if err != nil {
		return nil, err
	}
	settings.ArchiveDir = archiveDir

	settings.Verbose = getVerboseFlag(cmd)
	return settings, nil
}

// newEngine creates the render engine for the requested format.
func newEngine(format string, timestamp bool) (render.Engine, error) {
	switch format {
	case config.FormatHTML:
		var opts []render.HTMLOption
		if timestamp {
			opts = append(opts, render.WithGeneratedAt(time.Now()))
		}
		return render.NewHTMLEngine(opts...), nil
	case config.FormatMarkdown:
		return render.NewMarkdownEngine(), nil
	case config.FormatJSON:
		return render.NewJSONEngine(render.WithPrettyPrint()), nil
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownFormat, format)
	}
}

// outputPath derives the document path for a definition file.
func outputPath(definitionPath, format string) string {
	base := strings.TrimSuffix(definitionPath, filepath.Ext(definitionPath))
	return base + formatExt(format)
}

// formatExt maps a format to its file extension.
func formatExt(format string) string {
	switch format {
	case config.FormatMarkdown:
		return ".md"
	case config.FormatJSON:
		return ".json"
	default:
		return ".html"
	}
}

// writeDocument writes a rendered document, creating parent directories
// if needed.
func writeDocument(path, doc string) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(doc), 0600); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}
	return nil
}
