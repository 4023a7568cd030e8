package config

import "errors"

// Definition and settings validation errors.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances at each call site. This allows callers to
// use errors.Is() for programmatic error handling while still providing
// human-readable messages.
var (
	// ErrDefinitionNotFound is returned when the definition file does not
	// exist at the given path.
	ErrDefinitionNotFound = errors.New("definition file not found")

	// ErrMissingKind is returned when a content entry has no kind field.
	// Every entry must name one of: section, box, table, line_chart,
	// bar_chart, combo_chart.
	ErrMissingKind = errors.New("content entry is missing a kind")

	// ErrUnknownKind is returned when a content entry names a kind this
	// version does not know how to build.
	ErrUnknownKind = errors.New("unknown content kind")

	// ErrUnknownOrientation is returned when a box names an orientation
	// other than vertical or horizontal.
	ErrUnknownOrientation = errors.New("unknown box orientation")

	// ErrUnknownSize is returned when a chart names a size hint other than
	// small, medium, large, or auto.
	ErrUnknownSize = errors.New("unknown chart size")

	// ErrUnknownFormat is returned when the requested output format has no
	// engine. Supported formats are html, markdown, and json.
	ErrUnknownFormat = errors.New("unknown output format")
)
