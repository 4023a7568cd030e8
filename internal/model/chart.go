package model

import "fmt"

// ChartSize is a rendering size hint for charts.
type ChartSize string

// Chart size hints. Engines translate these into concrete dimensions.
const (
	SizeSmall  ChartSize = "small"
	SizeMedium ChartSize = "medium"
	SizeLarge  ChartSize = "large"

	// SizeAuto sizes the chart according to its container.
	SizeAuto ChartSize = "auto"
)

// DataSeries is a single named series of paired coordinates feeding a chart.
type DataSeries struct {
	title string
	x     []float64
	y     []float64
}

// NewDataSeries creates a DataSeries from paired coordinate slices.
// X and Y must have the same length; a mismatch fails with ErrSeriesLength.
func NewDataSeries(title string, x, y []float64) (DataSeries, error) {
	if len(x) != len(y) {
		return DataSeries{}, fmt.Errorf("%w: series %q has %d x values and %d y values",
			ErrSeriesLength, title, len(x), len(y))
	}

	return DataSeries{
		title: title,
		x:     append([]float64(nil), x...),
		y:     append([]float64(nil), y...),
	}, nil
}

// Title returns the series title.
func (s DataSeries) Title() string {
	return s.title
}

// X returns the x coordinates. The returned slice must not be modified.
func (s DataSeries) X() []float64 {
	return s.x
}

// Y returns the y coordinates. The returned slice must not be modified.
func (s DataSeries) Y() []float64 {
	return s.y
}

// Len returns the number of points in the series.
func (s DataSeries) Len() int {
	return len(s.x)
}

// chart holds the attributes shared by all chart kinds.
type chart struct {
	title string
	size  ChartSize
}

// ChartOption configures a chart of any kind.
type ChartOption func(*chart)

// WithSize sets the chart size hint. The default is SizeMedium.
func WithSize(size ChartSize) ChartOption {
	return func(c *chart) {
		c.size = size
	}
}

// Title returns the chart title.
func (c *chart) Title() string {
	return c.title
}

// Size returns the chart size hint.
func (c *chart) Size() ChartSize {
	return c.size
}

// LineChart plots one or more data series as connected lines.
type LineChart struct {
	chart
	series []DataSeries
}

// NewLineChart creates a LineChart from one or more data series.
// At least one series is required; none fails with ErrNoSeries.
func NewLineChart(title string, series []DataSeries, opts ...ChartOption) (*LineChart, error) {
	if len(series) == 0 {
		return nil, fmt.Errorf("%w: line chart %q", ErrNoSeries, title)
	}

	c := &LineChart{
		chart:  chart{title: title, size: SizeMedium},
		series: append([]DataSeries(nil), series...),
	}

	for _, opt := range opts {
		opt(&c.chart)
	}

	return c, nil
}

// Series returns the chart's data series in insertion order.
// The returned slice must not be modified.
func (c *LineChart) Series() []DataSeries {
	return c.series
}

func (c *LineChart) node() {}

// BarChart plots one or more data series as grouped vertical bars.
type BarChart struct {
	chart
	series []DataSeries
}

// NewBarChart creates a BarChart from one or more data series.
// At least one series is required; none fails with ErrNoSeries.
func NewBarChart(title string, series []DataSeries, opts ...ChartOption) (*BarChart, error) {
	if len(series) == 0 {
		return nil, fmt.Errorf("%w: bar chart %q", ErrNoSeries, title)
	}

	c := &BarChart{
		chart:  chart{title: title, size: SizeMedium},
		series: append([]DataSeries(nil), series...),
	}

	for _, opt := range opts {
		opt(&c.chart)
	}

	return c, nil
}

// Series returns the chart's data series in insertion order.
// The returned slice must not be modified.
func (c *BarChart) Series() []DataSeries {
	return c.series
}

func (c *BarChart) node() {}

// ComboChart plots bar series and line series on the same axes, with the bars
// read against a secondary axis.
type ComboChart struct {
	chart
	bars  []DataSeries
	lines []DataSeries
}

// NewComboChart creates a ComboChart from bar and line series.
// At least one series across both groups is required; none fails with
// ErrNoSeries.
func NewComboChart(title string, bars, lines []DataSeries, opts ...ChartOption) (*ComboChart, error) {
	if len(bars)+len(lines) == 0 {
		return nil, fmt.Errorf("%w: combo chart %q", ErrNoSeries, title)
	}

	c := &ComboChart{
		chart: chart{title: title, size: SizeMedium},
		bars:  append([]DataSeries(nil), bars...),
		lines: append([]DataSeries(nil), lines...),
	}

	for _, opt := range opts {
		opt(&c.chart)
	}

	return c, nil
}

// Bars returns the bar series in insertion order.
// The returned slice must not be modified.
func (c *ComboChart) Bars() []DataSeries {
	return c.bars
}

// Lines returns the line series in insertion order.
// The returned slice must not be modified.
func (c *ComboChart) Lines() []DataSeries {
	return c.lines
}

func (c *ComboChart) node() {}
