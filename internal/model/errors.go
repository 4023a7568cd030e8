package model

import "errors"

// Construction errors.
// These errors are returned by the node constructors and describe a
// structural problem with the content passed in.
//
// Design decision: We use package-level sentinel errors wrapped with
// positional context (row index, series title) at the point of failure.
// Callers can branch on errors.Is while users still see which part of the
// data was malformed.
var (
	// ErrRaggedRow is returned when a table row's cell count does not match
	// the column count. Every row must have exactly one cell per column.
	ErrRaggedRow = errors.New("table row does not match column count")

	// ErrUnknownColumn is returned when a column style references a column
	// name that does not exist in the table.
	ErrUnknownColumn = errors.New("column style references unknown column")

	// ErrNoSeries is returned when a chart is constructed without any data
	// series. A chart needs at least one series to have a defined rendering.
	ErrNoSeries = errors.New("chart requires at least one data series")

	// ErrSeriesLength is returned when a data series' x and y coordinate
	// slices have different lengths.
	ErrSeriesLength = errors.New("data series coordinates must be paired")
)
