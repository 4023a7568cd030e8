package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// Default settings values.
const (
	// DefaultFormat is the output format used when none is requested.
	// HTML is the default because it is the only format that renders
	// charts visually.
	DefaultFormat = FormatHTML

	// DefaultServeAddr is the listen address of the preview server.
	// Port 8417 is unassigned by IANA and unlikely to collide with
	// common development servers.
	DefaultServeAddr = "localhost:8417"

	// AppName is the application name used for XDG directory paths.
	AppName = "mkreport"
)

// Supported output formats. Each maps to one render engine.
const (
	FormatHTML     = "html"
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
)

// Settings holds the render options resolved from CLI flags.
// It is populated once after flag parsing and passed through the
// application via dependency injection rather than global state.
//
// Design decision: We use a single flat struct instead of nested structs
// (e.g., RenderSettings, ArchiveSettings) for simplicity. The number of
// options is manageable, and nesting would add complexity without
// significant benefit.
type Settings struct {
	// Format selects the render engine: html, markdown, or json.
	Format string

	// OutputPath is the file to write the rendered document to.
	// When empty, output goes to stdout.
	OutputPath string

	// Archive stores the rendered document in the local archive
	// database in addition to writing it out.
	Archive bool

	// ArchiveDir is the directory holding the archive database.
	// Defaults to the XDG data directory for mkreport.
	ArchiveDir string

	// Addr is the listen address of the preview server.
	Addr string

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only info and above are logged.
	Verbose bool
}

// NewSettings creates Settings with default values.
//
// Design decision: We use a constructor function instead of relying on
// zero values because several defaults are non-zero (format, listen
// address, archive directory). This also serves as documentation of
// what the defaults are.
func NewSettings() *Settings {
	return &Settings{
		Format:     DefaultFormat,
		Addr:       DefaultServeAddr,
		ArchiveDir: XDGDataDir(),
	}
}

// XDGDataDir returns the XDG data directory for mkreport.
// On Linux: ~/.local/share/mkreport
// On macOS: ~/Library/Application Support/mkreport
// On Windows: %LOCALAPPDATA%\mkreport
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// Validate checks if the settings are valid.
// It returns the first error found rather than collecting all errors
// because fixing one error often makes others irrelevant.
func (s *Settings) Validate() error {
	switch s.Format {
	case FormatHTML, FormatMarkdown, FormatJSON:
	default:
		return ErrUnknownFormat
	}
	return nil
}

// ArchivePath returns the path of the archive database file.
func (s *Settings) ArchivePath() string {
	return filepath.Join(s.ArchiveDir, "mkreport.db")
}
