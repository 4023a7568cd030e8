// Package log provides logging with automatic truncation of oversized
// attribute values, built on top of the standard slog package.
//
// Report trees carry user data: table cells, series, and whole rendered
// documents can reach megabytes. Logging such values verbatim makes logs
// unreadable and can fill disks. The TrimHandler intercepts log records
// and shortens any string attribute beyond a length cap before passing
// the record to the underlying handler.
//
// # Usage
//
//	logger := log.NewLogger(os.Stderr, true) // verbose=true
//
//	logger.Info("render finished",
//	    "format", "html",
//	    "document", doc, // trimmed if oversized
//	)
//
//	slog.SetDefault(logger)
package log
