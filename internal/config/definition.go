package config

import (
	"fmt"

	"github.com/mkreport/mkreport/internal/model"
)

// Definition is the top-level structure of a report definition file.
type Definition struct {
	// Title is the report title. Rendered as the document heading.
	Title string `yaml:"title"`
	// Content is the ordered list of top-level content entries.
	Content []ContentDef `yaml:"content"`
}

// ContentDef describes one node of the report tree. Kind selects which of
// the remaining fields are meaningful; unused fields are ignored.
type ContentDef struct {
	// Kind names the node type: section, box, table, line_chart,
	// bar_chart, or combo_chart.
	Kind string `yaml:"kind"`
	// Title is the node title. Used by sections, tables, and charts.
	Title string `yaml:"title,omitempty"`

	// Orientation lays out a box: vertical (default) or horizontal.
	Orientation string `yaml:"orientation,omitempty"`

	// Columns and Rows hold table data. Every row must match the column
	// count.
	Columns []string   `yaml:"columns,omitempty"`
	Rows    [][]string `yaml:"rows,omitempty"`
	// Header toggles the table header row. Defaults to true when omitted.
	Header *bool `yaml:"header,omitempty"`
	// Index adds a leading row-number column to a table.
	Index bool `yaml:"index,omitempty"`
	// Styles maps column names to text styles.
	Styles map[string]StyleDef `yaml:"styles,omitempty"`

	// Size is a chart size hint: small, medium, large, or auto.
	Size string `yaml:"size,omitempty"`
	// Series holds the data series of a line or bar chart.
	Series []SeriesDef `yaml:"series,omitempty"`
	// Bars and Lines hold the two series groups of a combo chart.
	Bars  []SeriesDef `yaml:"bars,omitempty"`
	Lines []SeriesDef `yaml:"lines,omitempty"`

	// Content holds the children of a section or box.
	Content []ContentDef `yaml:"content,omitempty"`
}

// StyleDef describes the text style of a table column.
type StyleDef struct {
	Size   string `yaml:"size,omitempty"`
	Weight string `yaml:"weight,omitempty"`
	Align  string `yaml:"align,omitempty"`
	Color  string `yaml:"color,omitempty"`
}

// SeriesDef describes one data series of a chart. X and Y must be the
// same length.
type SeriesDef struct {
	Title string    `yaml:"title"`
	X     []float64 `yaml:"x"`
	Y     []float64 `yaml:"y"`
}

// Build converts the definition into a validated report tree. It returns
// an error when any entry is structurally invalid; the error names the
// position of the offending entry so it can be located in the file.
func (d *Definition) Build() (*model.Report, error) {
	children, err := buildContent(d.Content)
	if err != nil {
		return nil, err
	}
	return model.NewReport(d.Title, children...), nil
}

// buildContent converts a list of content entries into model nodes,
// preserving order.
func buildContent(defs []ContentDef) ([]model.Node, error) {
	nodes := make([]model.Node, 0, len(defs))
	for i, def := range defs {
		node, err := buildNode(def)
		if err != nil {
			return nil, fmt.Errorf("content[%d]: %w", i, err)
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

// buildNode converts a single content entry into a model node.
func buildNode(def ContentDef) (model.Node, error) {
	switch def.Kind {
	case "":
		return nil, ErrMissingKind
	case "section":
		children, err := buildContent(def.Content)
		if err != nil {
			return nil, err
		}
		return model.NewSection(def.Title, children...), nil
	case "box":
		return buildBox(def)
	case "table":
		return buildTable(def)
	case "line_chart":
		series, err := buildSeries(def.Series)
		if err != nil {
			return nil, err
		}
		opts, err := chartOptions(def)
		if err != nil {
			return nil, err
		}
		return model.NewLineChart(def.Title, series, opts...)
	case "bar_chart":
		series, err := buildSeries(def.Series)
		if err != nil {
			return nil, err
		}
		opts, err := chartOptions(def)
		if err != nil {
			return nil, err
		}
		return model.NewBarChart(def.Title, series, opts...)
	case "combo_chart":
		bars, err := buildSeries(def.Bars)
		if err != nil {
			return nil, err
		}
		lines, err := buildSeries(def.Lines)
		if err != nil {
			return nil, err
		}
		opts, err := chartOptions(def)
		if err != nil {
			return nil, err
		}
		return model.NewComboChart(def.Title, bars, lines, opts...)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, def.Kind)
	}
}

// buildBox converts a box entry and its children.
func buildBox(def ContentDef) (model.Node, error) {
	children, err := buildContent(def.Content)
	if err != nil {
		return nil, err
	}

	var opts []model.BoxOption
	switch def.Orientation {
	case "", "vertical":
		// Default orientation.
	case "horizontal":
		opts = append(opts, model.WithOrientation(model.Horizontal))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownOrientation, def.Orientation)
	}
	return model.NewBox(children, opts...), nil
}

// buildTable converts a table entry, mapping its flags and styles to
// table options.
func buildTable(def ContentDef) (model.Node, error) {
	opts := []model.TableOption{}
	if def.Title != "" {
		opts = append(opts, model.WithTableTitle(def.Title))
	}
	if def.Header != nil && !*def.Header {
		opts = append(opts, model.WithoutHeader())
	}
	if def.Index {
		opts = append(opts, model.WithIndex())
	}
	for column, style := range def.Styles {
		opts = append(opts, model.WithColumnStyle(column, model.TextStyle{
			Size:   style.Size,
			Weight: style.Weight,
			Align:  style.Align,
			Color:  style.Color,
		}))
	}
	return model.NewTable(def.Columns, def.Rows, opts...)
}

// buildSeries converts chart series entries.
func buildSeries(defs []SeriesDef) ([]model.DataSeries, error) {
	series := make([]model.DataSeries, 0, len(defs))
	for i, def := range defs {
		s, err := model.NewDataSeries(def.Title, def.X, def.Y)
		if err != nil {
			return nil, fmt.Errorf("series[%d]: %w", i, err)
		}
		series = append(series, s)
	}
	return series, nil
}

// chartOptions maps a size hint to chart options.
func chartOptions(def ContentDef) ([]model.ChartOption, error) {
	switch def.Size {
	case "", "medium":
		return nil, nil
	case "small":
		return []model.ChartOption{model.WithSize(model.SizeSmall)}, nil
	case "large":
		return []model.ChartOption{model.WithSize(model.SizeLarge)}, nil
	case "auto":
		return []model.ChartOption{model.WithSize(model.SizeAuto)}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSize, def.Size)
	}
}
